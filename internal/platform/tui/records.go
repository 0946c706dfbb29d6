package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// Records board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show level list sidebar
	sidebarWidth       = 24  // Width of level list sidebar
	maxRecords         = 100 // Max solves to load per level
)

// RecordsSource lists the best solves of a level. *storage.Store implements it.
type RecordsSource interface {
	BestSolves(gameID, levelID string, limit int) ([]storage.Solve, error)
}

// RecordsKeyMap defines the key bindings for the records board.
type RecordsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev level"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for the solve records board.
// It pages through the levels of a pack and lists the best solves of each.
type RecordsModel struct {
	pack        *sokoban.Pack
	levelCursor int
	source      RecordsSource
	solves      []storage.Solve
	table       table.Model
	help        help.Model
	keys        RecordsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewRecordsModel creates a new records board. source may be nil.
func NewRecordsModel(pack *sokoban.Pack, source RecordsSource, width, height int) RecordsModel {
	h := help.New()
	h.ShowAll = false

	m := RecordsModel{
		pack:        pack,
		source:      source,
		keys:        DefaultRecordsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if pack.Len() > 0 {
		m.loadSolves()
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Moves", Width: 6},
		{Title: "Pushes", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 12},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Give spare width to the player column
	if spare := tableWidth - 52; spare > 0 {
		columns[3].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// currentLevel returns the level under the cursor.
func (m RecordsModel) currentLevel() *sokoban.Level {
	return m.pack.Level(m.levelCursor)
}

// loadSolves loads solves for the current level.
func (m *RecordsModel) loadSolves() {
	m.solves = nil
	if m.source != nil {
		if solves, err := m.source.BestSolves(sokoban.GameID, m.currentLevel().ID(), maxRecords); err == nil {
			m.solves = solves
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current solves.
func (m *RecordsModel) updateTableRows() {
	rows := make([]table.Row, len(m.solves))
	for i, s := range m.solves {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Moves),
			fmt.Sprintf("%d", s.Pushes),
			player,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records board.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel), key.Matches(msg, m.keys.Right):
			if m.pack.Len() > 0 {
				m.levelCursor = m.pack.Next(m.levelCursor)
				m.loadSolves()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel), key.Matches(msg, m.keys.Left):
			if m.pack.Len() > 0 {
				m.levelCursor = m.pack.Prev(m.levelCursor)
				m.loadSolves()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records board.
func (m RecordsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RECORDS"
	if m.pack.Len() > 0 {
		title = fmt.Sprintf("RECORDS - %d. %s", m.levelCursor+1, m.currentLevel().Name())
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(menuHelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the board with a sidebar listing nearby levels.
func (m RecordsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString(m.pack.Name + "\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	// Window of levels around the cursor
	rows := max(m.height-10, 3)
	start := core.Clamp(m.levelCursor-rows/2, 0, max(m.pack.Len()-rows, 0))
	end := min(start+rows, m.pack.Len())

	for i := start; i < end; i++ {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.levelCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := fmt.Sprintf("%d. %s", i+1, m.pack.Levels[i].Name())
		maxLen := sidebarWidth - 6
		if r := []rune(name); len(r) > maxLen {
			name = string(r[:maxLen-1]) + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the board with a level switcher above the table.
func (m RecordsModel) renderNarrowLayout() string {
	var b strings.Builder

	if m.pack.Len() > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %d/%d >", m.levelCursor+1, m.pack.Len()), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RecordsModel) renderTableContent() string {
	if len(m.solves) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No solves recorded yet.\nSolve this level to set a record!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RecordsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RecordsModel) IsQuitting() bool {
	return m.quitting
}

// RunRecords runs the records board.
// Returns true if user wants to go back to menu, false if quitting.
func RunRecords(pack *sokoban.Pack, source RecordsSource, width, height int) (goBack bool, err error) {
	model := NewRecordsModel(pack, source, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RecordsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
