package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/one-more-match3/internal/config"
	"github.com/vovakirdan/one-more-match3/internal/core"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel runs the whole flow in one program: menu, game, scoreboard
// and back. It backs both the local menu command and SSH sessions.
type SessionModel struct {
	opts   Options
	config core.RuntimeConfig
	board  config.BoardConfig
	setup  Setup

	screen     sessionScreen
	menu       MenuModel
	game       *Model
	scoreboard ScoreboardModel
	quitting   bool
	err        error
}

// NewSessionModel creates a session that opens on the setup menu.
func NewSessionModel(cfg core.RuntimeConfig, board config.BoardConfig, initial Setup, opts Options) SessionModel {
	return SessionModel{
		opts:   opts,
		config: cfg,
		board:  board,
		setup:  initial,
		menu:   NewMenuModel(cfg, board, initial),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// Sub-models end themselves with tea.Quit; the session swallows that
// command when it only means "leave this screen".
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		m.setup = m.menu.Setup()
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH, m.board.MinSize, m.board.MaxSize)
		m.screen = screenScores
		return m, m.scoreboard.Init()
	case m.menu.Started():
		m.setup = m.menu.Setup()
		game, err := NewModel(m.setup, m.config, m.opts)
		if err != nil {
			m.err = fmt.Errorf("start %s: %w", m.setup.GameID, err)
			m.quitting = true
			return m, tea.Quit
		}
		m.game = game
		m.screen = screenGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.game.Update(msg)

	switch {
	case m.game.Quitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.game = nil
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sm
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config, m.board, m.setup)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View implements tea.Model.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession runs the menu-driven flow in the local terminal.
func RunSession(cfg core.RuntimeConfig, board config.BoardConfig, initial Setup, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, board, initial, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.Err()
	}
	return nil
}

// Setup returns the last choices made in the menu.
func (m SessionModel) Setup() Setup {
	return m.setup
}
