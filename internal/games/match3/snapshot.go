package match3

import m3 "github.com/vovakirdan/one-more-match3/internal/match3"

// GameStateType names the phase a game is in.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateArmed       GameStateType = "armed"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state. Tests compare snapshots for
// determinism and the TUI dumps one next to each screenshot.
type Snapshot struct {
	Tick      uint64        `yaml:"tick"`
	Mode      string        `yaml:"mode"`
	Size      int           `yaml:"size"`
	Grid      string        `yaml:"grid"` // one row per line, token chars
	Cursor    m3.Position   `yaml:"cursor"`
	Armed     *m3.Position  `yaml:"armed,omitempty"`
	Score     int           `yaml:"score"`
	Matches   int           `yaml:"matches"`
	MovesUsed int           `yaml:"moves_used"`
	MovesLeft int           `yaml:"moves_left"` // -1 in endless mode
	State     GameStateType `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.hasArmed:
		state = StateArmed
	}

	var armed *m3.Position
	if g.hasArmed {
		a := g.armed
		armed = &a
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Size:      g.size,
		Grid:      g.grid.String(),
		Cursor:    g.cursor,
		Armed:     armed,
		Score:     g.score,
		Matches:   g.matches,
		MovesUsed: g.movesUsed,
		MovesLeft: g.movesLeft(),
		State:     state,
	}
}
