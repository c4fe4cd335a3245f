// Package match3 is the playable match-3 mode: cursor, selection, swaps,
// scoring and move budget on top of the internal/match3 engine.
package match3

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/one-more-match3/internal/config"
	"github.com/vovakirdan/one-more-match3/internal/core"
	m3 "github.com/vovakirdan/one-more-match3/internal/match3"
	"github.com/vovakirdan/one-more-match3/internal/registry"
)

// Mode selects how a run ends.
type Mode string

const (
	ModeLimited Mode = "limited" // fixed move budget
	ModeEndless Mode = "endless" // ends when the player finishes
)

const (
	IDLimited = "match3"
	IDEndless = "match3_endless"
)

// Package-level configuration shared by every new game. Set once at
// startup by the CLI, read on each Reset.
var (
	confMu sync.RWMutex
	conf   = config.DefaultMatch3Config()
)

// SetConfig replaces the configuration used by subsequent resets.
func SetConfig(c config.Match3Config) {
	confMu.Lock()
	defer confMu.Unlock()
	conf = c
}

// CurrentConfig returns the configuration new games start from.
func CurrentConfig() config.Match3Config {
	confMu.RLock()
	defer confMu.RUnlock()
	return conf
}

// Game implements registry.Game for both modes.
type Game struct {
	mode   Mode
	cfg    config.Match3Config
	custom *config.Match3Config
	engine *m3.Engine
	tick   uint64

	grid     m3.Grid
	size     int
	wantSize int // requested via SetSize, applied on Reset

	cursor   m3.Position
	armed    m3.Position
	hasArmed bool

	score     int
	matches   int
	movesUsed int
	last      m3.Resolution
	message   string

	screenW  int
	screenH  int
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a limited-moves game.
func New() *Game {
	return &Game{mode: ModeLimited}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register(IDLimited, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDLimited
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match3 (Endless)"
	}
	return "Match3"
}

// SetSize requests a board dimension for the next Reset. Values outside
// the configured range are clamped.
func (g *Game) SetSize(n int) {
	g.wantSize = n
}

// Configure pins a configuration to this game in place of the
// package-level one.
func (g *Game) Configure(c config.Match3Config) {
	g.custom = &c
}

// Reset starts a new run on a freshly generated board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.custom != nil {
		g.cfg = *g.custom
	} else {
		g.cfg = CurrentConfig()
	}
	opts := append(g.cfg.EngineOptions(), m3.WithSeed(cfg.Seed))
	g.engine = m3.NewEngine(opts...)

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false

	size := g.cfg.Board.Size
	if g.wantSize > 0 {
		size = g.wantSize
	}
	g.newBoard(size)
}

// newBoard regenerates the grid at size and clears the run's progress.
func (g *Game) newBoard(size int) {
	g.size = core.Clamp(size, g.cfg.Board.MinSize, g.cfg.Board.MaxSize)
	g.wantSize = g.size
	g.grid = g.engine.Generate(g.size)

	g.score = 0
	g.matches = 0
	g.movesUsed = 0
	g.last = m3.Resolution{}
	g.hasArmed = false
	g.cursor = m3.P(g.size/2, g.size/2)
	g.message = ""
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	l := g.layout()
	g.tooSmall = g.screenW < l.minW || g.screenH < l.minH
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []string

	if g.tooSmall || g.gameOver {
		return g.result(events)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(events)
	}

	switch {
	case in.Has(core.ActionGrow):
		events = append(events, g.changeSize(g.size+1)...)
	case in.Has(core.ActionShrink):
		events = append(events, g.changeSize(g.size-1)...)
	}

	if in.Has(core.ActionFinish) && g.mode == ModeEndless {
		g.gameOver = true
		events = append(events, fmt.Sprintf("run finished with %d points", g.score))
		return g.result(events)
	}

	g.moveCursor(in)

	if in.Has(core.ActionCancel) && g.hasArmed {
		g.hasArmed = false
		g.message = ""
	}

	switch {
	case in.Has(core.ActionClick):
		if p, ok := g.cellAt(in.Click); ok {
			g.cursor = p
			events = append(events, g.selectCell(p)...)
		}
	case in.Has(core.ActionSelect):
		events = append(events, g.selectCell(g.cursor)...)
	}

	return g.result(events)
}

func (g *Game) result(events []string) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) moveCursor(in core.InputFrame) {
	dr, dc := 0, 0
	if in.Has(core.ActionUp) {
		dr--
	}
	if in.Has(core.ActionDown) {
		dr++
	}
	if in.Has(core.ActionLeft) {
		dc--
	}
	if in.Has(core.ActionRight) {
		dc++
	}
	g.cursor = m3.P(
		core.Clamp(g.cursor.Row+dr, 0, g.size-1),
		core.Clamp(g.cursor.Col+dc, 0, g.size-1),
	)
}

// changeSize starts a new board at n. A request that clamps to the current
// size leaves the run alone.
func (g *Game) changeSize(n int) []string {
	if core.Clamp(n, g.cfg.Board.MinSize, g.cfg.Board.MaxSize) == g.size {
		return nil
	}
	g.newBoard(n)
	return []string{fmt.Sprintf("board resized to %dx%d, score reset", g.size, g.size)}
}

// selectCell runs the selection flow for p: arm, disarm, or swap with the
// armed cell. Non-adjacent picks leave the armed cell in place.
func (g *Game) selectCell(p m3.Position) []string {
	switch {
	case !g.hasArmed:
		g.armed = p
		g.hasArmed = true
		g.message = ""
		return nil
	case p == g.armed:
		g.hasArmed = false
		g.message = ""
		return nil
	case !m3.IsAdjacent(g.armed, p):
		g.message = fmt.Sprintf("%v is not next to %v", p, g.armed)
		return []string{"rejected swap: " + g.message}
	}

	res, err := g.engine.Swap(g.grid, g.armed, p)
	switch {
	case errors.Is(err, m3.ErrInvalidSwap):
		g.message = "invalid swap"
		return []string{err.Error()}
	case errors.Is(err, m3.ErrCascadeDidNotConverge):
		// Keep the partially resolved board; the points already counted stand.
		g.message = "cascade stopped early"
	case err != nil:
		g.message = err.Error()
		return []string{err.Error()}
	default:
		g.message = ""
	}

	from := g.armed
	g.grid = res.Grid
	g.last = res
	g.score += res.Score(g.cfg.Scoring.PointsPerMatch)
	g.matches += res.TotalMatches
	g.movesUsed++
	g.hasArmed = false

	events := []string{fmt.Sprintf("swap %v<->%v: %d matches over %d passes", from, p, res.TotalMatches, res.Passes)}
	if err != nil {
		events = append(events, err.Error())
	}
	if g.mode == ModeLimited && g.movesLeft() == 0 {
		g.gameOver = true
		events = append(events, fmt.Sprintf("out of moves with %d points", g.score))
	}
	return events
}

func (g *Game) movesLeft() int {
	if g.mode == ModeEndless {
		return -1
	}
	return max(0, g.cfg.Moves.Limit-g.movesUsed)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
		GridSize:  g.size,
		MovesLeft: g.movesLeft(),
	}
}

// Matches returns the total matches resolved this run.
func (g *Game) Matches() int {
	return g.matches
}

// MovesUsed returns the number of swaps made this run.
func (g *Game) MovesUsed() int {
	return g.movesUsed
}

// Grid returns the current board.
func (g *Game) Grid() m3.Grid {
	return g.grid
}
