package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	gamematch3 "github.com/vovakirdan/one-more-match3/internal/games/match3"
	"github.com/vovakirdan/one-more-match3/internal/storage"
)

func TestScoreboardFiltersAndSwitchesMode(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	runs := []storage.Run{
		{GameID: gamematch3.IDLimited, Player: "ana", Score: 300, GridSize: 8, Matches: 30},
		{GameID: gamematch3.IDLimited, Player: "bo", Score: 150, GridSize: 4, Matches: 15},
		{GameID: gamematch3.IDEndless, Player: "cy", Score: 90, GridSize: 6, Matches: 9},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30, 4, 12)
	if len(m.scores) != 2 {
		t.Fatalf("got %d scores for %s, want 2", len(m.scores), gamematch3.IDLimited)
	}
	if m.stats.GamesCount != 2 || m.stats.HighScore != 300 {
		t.Errorf("stats = %+v", m.stats)
	}

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(ScoreboardModel)
	}

	press(runeKey('s')) // 4x4 only
	if m.sizeFilter != 4 || len(m.scores) != 1 || m.scores[0].Player != "bo" {
		t.Fatalf("size filter %d gave %+v", m.sizeFilter, m.scores)
	}
	if !strings.Contains(m.View(), "4x4") {
		t.Errorf("view does not name the size filter:\n%s", m.View())
	}

	press(tea.KeyMsg{Type: tea.KeyTab})
	if len(m.scores) != 0 {
		t.Errorf("endless has no 4x4 runs, got %+v", m.scores)
	}
	for range 9 {
		press(runeKey('s'))
	}
	if m.sizeFilter != 0 || len(m.scores) != 1 || m.scores[0].Player != "cy" {
		t.Errorf("after cycling back to all sizes: filter %d scores %+v", m.sizeFilter, m.scores)
	}

	press(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.View() != "" {
		t.Error("esc should leave the scoreboard")
	}
}
