package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/one-more-match3/internal/config"
	"github.com/vovakirdan/one-more-match3/internal/core"
	gamematch3 "github.com/vovakirdan/one-more-match3/internal/games/match3"
	"github.com/vovakirdan/one-more-match3/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}
}

func newTestModel(t *testing.T, setup Setup, opts Options) *Model {
	t.Helper()
	m, err := NewModel(setup, testConfig(), opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func snapshot(t *testing.T, m *Model) gamematch3.Snapshot {
	t.Helper()
	s, ok := m.game.(snapshotter)
	if !ok {
		t.Fatalf("game %T has no snapshot", m.game)
	}
	return s.Snapshot()
}

func tick(m *Model) {
	m.Update(TickMsg(time.Now()))
}

func TestNewModelUnknownGame(t *testing.T) {
	if _, err := NewModel(Setup{GameID: "tetris"}, testConfig(), Options{}); err == nil {
		t.Fatal("expected an error for an unknown game")
	}
}

func TestNewModelAppliesSetup(t *testing.T) {
	limit := gamematch3.CurrentConfig().Moves.Limit

	tests := []struct {
		preset config.DifficultyPreset
		moves  int
	}{
		{config.DifficultyEasy, limit * 150 / 100},
		{config.DifficultyNormal, limit},
		{config.DifficultyHard, limit * 60 / 100},
		{config.DifficultyFixed, limit},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			m := newTestModel(t, Setup{GameID: gamematch3.IDLimited, Size: 6, Difficulty: tc.preset}, Options{})
			st := m.State()
			if st.GridSize != 6 {
				t.Errorf("GridSize = %d, want 6", st.GridSize)
			}
			if st.MovesLeft != tc.moves {
				t.Errorf("MovesLeft = %d, want %d", st.MovesLeft, tc.moves)
			}
		})
	}

	if got := gamematch3.CurrentConfig().Moves.Limit; got != limit {
		t.Errorf("package config changed to %d moves", got)
	}
}

func TestModelKeysReachTheGame(t *testing.T) {
	m := newTestModel(t, Setup{GameID: gamematch3.IDLimited, Size: 5}, Options{})

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	tick(m)
	if got := snapshot(t, m).State; got != gamematch3.StateArmed {
		t.Fatalf("state after select = %q, want armed", got)
	}

	// Esc during play disarms instead of leaving.
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	tick(m)
	if m.BackToMenu() {
		t.Fatal("esc during play must not leave the game")
	}
	if got := snapshot(t, m).State; got != gamematch3.StatePlaying {
		t.Fatalf("state after esc = %q, want playing", got)
	}

	m.Update(runeKey('p'))
	tick(m)
	if !m.State().Paused {
		t.Fatal("expected paused")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil || !m.BackToMenu() {
		t.Fatal("esc while paused should go back to the menu")
	}
}

func TestModelGrowKey(t *testing.T) {
	m := newTestModel(t, Setup{GameID: gamematch3.IDEndless, Size: 5}, Options{})
	m.Update(runeKey('+'))
	tick(m)
	if got := m.State().GridSize; got != 6 {
		t.Errorf("GridSize = %d, want 6", got)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, Setup{GameID: gamematch3.IDLimited, Size: 5}, Options{})
	before := snapshot(t, m)

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 8})
	if got := snapshot(t, m).State; got != gamematch3.StatePausedSmall {
		t.Fatalf("state in a tiny window = %q, want %q", got, gamematch3.StatePausedSmall)
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	after := snapshot(t, m)
	if diff := cmp.Diff(before.Grid, after.Grid); diff != "" {
		t.Errorf("resize regenerated the board (-before +after):\n%s", diff)
	}
	if after.State != gamematch3.StatePlaying {
		t.Errorf("state after restoring size = %q", after.State)
	}
}

func TestModelMouseClickSelects(t *testing.T) {
	m := newTestModel(t, Setup{GameID: gamematch3.IDLimited, Size: 5}, Options{})

	// Find a board cell on screen by looking for the cursor marker.
	m.View()
	var at core.Point
	found := false
	for y := 0; y < m.screen.Height() && !found; y++ {
		for x := 0; x < m.screen.Width(); x++ {
			if m.screen.Get(x, y) == '[' {
				at = core.Point{X: x + 1, Y: y}
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("cursor not rendered:\n%s", m.screen.String())
	}

	m.Update(tea.MouseMsg{X: at.X, Y: at.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tick(m)
	if got := snapshot(t, m).State; got != gamematch3.StateArmed {
		t.Errorf("state after click = %q, want armed", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Setup{GameID: gamematch3.IDLimited}, Options{})
	if _, cmd := m.Update(runeKey('q')); cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.Quitting() {
		t.Error("expected quitting")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Setup{GameID: gamematch3.IDLimited, Size: 5}, Options{Store: store, Player: "ana"})
	m.gameState = core.GameState{Score: 120, GameOver: true, GridSize: 5}
	m.saveScore()

	scores, err := store.TopScores(gamematch3.IDLimited, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 120 || got.Player != "ana" || got.GridSize != 5 {
		t.Errorf("saved %+v", got)
	}

	// A finished endless run with no points is not recorded.
	e := newTestModel(t, Setup{GameID: gamematch3.IDEndless, Size: 5}, Options{Store: store})
	e.Update(runeKey('f'))
	tick(e)
	if !e.State().GameOver {
		t.Fatal("finish should end the endless run")
	}
	if n, _ := store.TopScores(gamematch3.IDEndless, 10); len(n) != 0 {
		t.Errorf("zero-score run was saved: %+v", n)
	}
}
