package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/one-more-match3/internal/registry"
	"github.com/vovakirdan/one-more-match3/internal/storage"
)

const maxScores = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Mode key.Binding
	Size key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "scroll")),
		Mode: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "mode")),
		Size: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "board size")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Mode, k.Size, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ScoreboardModel shows the best runs per mode, optionally for one board size.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	scores     []storage.ScoreEntry
	stats      storage.GameStats
	sizeFilter int // 0 shows every board size
	minSize    int
	maxSize    int
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard. minSize and maxSize bound the
// board-size filter.
func NewScoreboardModel(store *storage.Store, width, height, minSize, maxSize int) ScoreboardModel {
	m := ScoreboardModel{
		games:   registry.List(),
		store:   store,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
		minSize: minSize,
		maxSize: maxSize,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 7},
			{Title: "Size", Width: 6},
			{Title: "Matches", Width: 8},
			{Title: "Player", Width: max(10, min(24, m.width-60))},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches scores and stats for the selected mode and size.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	m.stats = storage.GameStats{}
	if m.store != nil && len(m.games) > 0 {
		gameID := m.games[m.gameCursor].ID

		var err error
		if m.sizeFilter > 0 {
			m.scores, err = m.store.TopScoresForSize(gameID, m.sizeFilter, maxScores)
		} else {
			m.scores, err = m.store.TopScores(gameID, maxScores)
		}
		if err != nil {
			m.scores = nil
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil && stats != nil {
			m.stats = *stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%dx%d", s.GridSize, s.GridSize),
			fmt.Sprintf("%d", s.Matches),
			s.Player,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycleSize steps the filter through all sizes, then min..max.
func (m *ScoreboardModel) cycleSize() {
	switch {
	case m.sizeFilter == 0:
		m.sizeFilter = m.minSize
	case m.sizeFilter >= m.maxSize:
		m.sizeFilter = 0
	default:
		m.sizeFilter++
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			if n := len(m.games); n > 0 {
				step := 1
				if msg.String() == "left" || msg.String() == "h" {
					step = n - 1
				}
				m.gameCursor = (m.gameCursor + step) % n
				m.reload()
			}
			return m, nil
		case key.Matches(msg, m.keys.Size):
			if m.maxSize > 0 {
				m.cycleSize()
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	size := "all sizes"
	if m.sizeFilter > 0 {
		size = fmt.Sprintf("%dx%d", m.sizeFilter, m.sizeFilter)
	}

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = menuFocusStyle.Render(" " + g.Title + " ")
		} else {
			tabs[i] = menuDimStyle.Render(" " + g.Title + " ")
		}
	}

	body := m.table.View()
	if len(m.scores) == 0 {
		body = boardEmptyStyle.Render("No scores recorded yet.\nFinish a run to set one!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES ("+size+")"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")
	if m.stats.GamesCount > 0 {
		line := fmt.Sprintf("runs %d  best %d  avg %.0f  matches %d",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalMatches)
		b.WriteString(centerText(boardStatsStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in the local terminal and reports
// whether the player went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height, minSize, maxSize int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height, minSize, maxSize), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
