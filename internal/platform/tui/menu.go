package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/one-more-match3/internal/config"
	"github.com/vovakirdan/one-more-match3/internal/core"
	"github.com/vovakirdan/one-more-match3/internal/registry"
)

// menuRow identifies a line of the setup menu.
type menuRow int

const (
	rowMode menuRow = iota
	rowSize
	rowDifficulty
	rowStart
	rowScores
	rowQuit
	rowCount
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the run setup menu.
type MenuModel struct {
	games      []registry.GameInfo
	gameIdx    int
	size       int
	minSize    int
	maxSize    int
	difficulty int
	cursor     menuRow
	width      int
	height     int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model

	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates a setup menu starting from the given choices.
func NewMenuModel(cfg core.RuntimeConfig, board config.BoardConfig, initial Setup) MenuModel {
	m := MenuModel{
		games:   registry.List(),
		size:    board.Size,
		minSize: board.MinSize,
		maxSize: board.MaxSize,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
	}
	m.help.Width = cfg.ScreenW

	for i, g := range m.games {
		if g.ID == initial.GameID {
			m.gameIdx = i
		}
	}
	if initial.Size > 0 {
		m.size = core.Clamp(initial.Size, m.minSize, m.maxSize)
	}
	m.difficulty = presetIndex(config.DifficultyNormal)
	if initial.Difficulty != "" {
		m.difficulty = presetIndex(initial.Difficulty)
	}
	if len(m.games) == 0 {
		m.cursor = rowScores
	}
	return m
}

func presetIndex(p config.DifficultyPreset) int {
	for i, preset := range config.Presets {
		if preset == p {
			return i
		}
	}
	return 0
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = (m.cursor + rowCount - 1) % rowCount
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % rowCount
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		switch m.cursor {
		case rowStart, rowMode, rowSize, rowDifficulty:
			if len(m.games) == 0 {
				return m, nil
			}
			m.started = true
		case rowScores:
			m.openScoreboard = true
		case rowQuit:
			m.quitting = true
		}
		return m, tea.Quit
	}
	return m, nil
}

// adjust changes the value on the focused row by delta, wrapping lists and
// clamping the size.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor {
	case rowMode:
		if n := len(m.games); n > 0 {
			m.gameIdx = (m.gameIdx + delta + n) % n
		}
	case rowSize:
		m.size = core.Clamp(m.size+delta, m.minSize, m.maxSize)
	case rowDifficulty:
		n := len(config.Presets)
		m.difficulty = (m.difficulty + delta + n) % n
	}
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting || m.started || m.openScoreboard {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("O N E   M O R E   M A T C H 3"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Swap neighbours, line up three, chase the cascade"), m.width))
	b.WriteString("\n\n")

	mode := "none"
	if len(m.games) > 0 {
		mode = m.games[m.gameIdx].Title
	}
	lines := map[menuRow]string{
		rowMode:       fmt.Sprintf("Mode        < %s >", mode),
		rowSize:       fmt.Sprintf("Board       < %dx%d >", m.size, m.size),
		rowDifficulty: fmt.Sprintf("Difficulty  < %s >", config.Presets[m.difficulty]),
		rowStart:      "Start",
		rowScores:     "High scores",
		rowQuit:       "Quit",
	}

	for row := range rowCount {
		line := "  " + lines[row] + "  "
		if row == m.cursor {
			line = menuFocusStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		if row == rowDifficulty {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Setup returns the choices currently shown in the menu.
func (m MenuModel) Setup() Setup {
	s := Setup{
		Size:       m.size,
		Difficulty: config.Presets[m.difficulty],
	}
	if len(m.games) > 0 {
		s.GameID = m.games[m.gameIdx].ID
	}
	return s
}

// Started reports whether the player chose to start a run.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting reports whether the player asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
