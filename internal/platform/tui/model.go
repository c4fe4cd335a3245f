package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/one-more-match3/internal/config"
	"github.com/vovakirdan/one-more-match3/internal/core"
	gamematch3 "github.com/vovakirdan/one-more-match3/internal/games/match3"
	"github.com/vovakirdan/one-more-match3/internal/registry"
	"github.com/vovakirdan/one-more-match3/internal/storage"
)

// Optional capabilities a game may offer beyond registry.Game.
type (
	resizer interface {
		Resize(w, h int)
	}
	sizer interface {
		SetSize(n int)
	}
	configurable interface {
		Configure(c config.Match3Config)
	}
	runStats interface {
		Matches() int
		MovesUsed() int
	}
	snapshotter interface {
		Snapshot() gamematch3.Snapshot
	}
)

// Setup is what a player picked before starting a run.
type Setup struct {
	GameID     string
	Size       int
	Difficulty config.DifficultyPreset
}

// Options configure a game model.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Player string
}

// Model is the Bubble Tea model for one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keys       GameKeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a model for the chosen setup. The game is reset and ready.
func NewModel(setup Setup, cfg core.RuntimeConfig, opts Options) (*Model, error) {
	game, err := registry.Create(setup.GameID)
	if err != nil {
		return nil, err
	}

	if c, ok := game.(configurable); ok {
		gameCfg := gamematch3.CurrentConfig()
		config.ApplyMatch3Preset(&gameCfg, setup.Difficulty)
		c.Configure(gameCfg)
	}
	if s, ok := game.(sizer); ok && setup.Size > 0 {
		s.SetSize(setup.Size)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger.With("game", game.ID()),
		player:     player,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.SetClick(msg.X, msg.Y)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "err", err)
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Esc disarms during play; it only leaves once the run is over or paused.
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionCancel)
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

func (m *Model) handleResize(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)

	if r, ok := m.game.(resizer); ok {
		r.Resize(w, h)
	} else {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver && m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.gameState = m.game.State()
		m.logger.Debug("run restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.logger.Debug(ev, "score", result.State.Score, "moves_left", result.State.MovesLeft)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.Run{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    m.gameState.Score,
		GridSize: m.gameState.GridSize,
	}
	if s, ok := m.game.(runStats); ok {
		run.Matches = s.Matches()
		run.Moves = s.MovesUsed()
	}

	if _, err := m.store.SaveScore(run); err != nil {
		m.logger.Error("failed to save score", "err", err)
		return
	}
	m.logger.Info("score saved", "player", run.Player, "score", run.Score, "size", run.GridSize)
}

// saveScreenshot writes the plain screen and, when available, a YAML
// snapshot of the board to ~/.match3/screenshots.
func (m *Model) saveScreenshot() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("home dir: %w", err)
	}
	dir := filepath.Join(home, ".match3", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create screenshot dir: %w", err)
	}

	stamp := time.Now().Format("20060102-150405")
	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), stamp))

	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}

	if s, ok := m.game.(snapshotter); ok {
		data, err := yaml.Marshal(s.Snapshot())
		if err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		if err := os.WriteFile(base+".yaml", data, 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}

	m.logger.Info("screenshot saved", "path", base+".txt")
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m *Model) State() core.GameState {
	return m.gameState
}

// BackToMenu reports whether the player asked to return to the menu.
func (m *Model) BackToMenu() bool {
	return m.backToMenu
}

// Quitting reports whether the player asked to quit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Run plays one game in the local terminal until the player quits or
// goes back. It reports whether the player wants the menu again.
func Run(setup Setup, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	m, err := NewModel(setup, cfg, opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run game: %w", err)
	}
	if fm, ok := final.(*Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
