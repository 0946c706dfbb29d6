package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

// SokobanSelection holds the user's selection from the level picker.
type SokobanSelection struct {
	Level int // 1-indexed level within the pack
}

// SokobanLevelModel lets users choose the starting Sokoban level.
type SokobanLevelModel struct {
	pack     *sokoban.Pack
	best     []string // Best-solve label per level
	cursor   int
	offset   int // First visible row
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	choosing bool
	quitting bool
	back     bool
}

// NewSokobanLevelModel creates a new level picker. records may be nil.
func NewSokobanLevelModel(pack *sokoban.Pack, records SolveStore, width, height int) SokobanLevelModel {
	best := make([]string, pack.Len())
	for i, l := range pack.Levels {
		if records == nil {
			continue
		}
		best[i] = "unsolved"
		if b, err := records.Best(sokoban.GameID, l.ID()); err == nil && b != nil {
			best[i] = fmt.Sprintf("best %d/%d", b.Moves, b.Pushes)
		}
	}

	keys := DefaultMenuKeyMap()
	keys.Scoreboard.SetEnabled(false)

	h := help.New()
	h.Width = width

	return SokobanLevelModel{
		pack:     pack,
		best:     best,
		width:    width,
		height:   height,
		keys:     keys,
		help:     h,
		choosing: true,
	}
}

// Init initializes the model.
func (m SokobanLevelModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SokobanLevelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampOffset()
		return m, nil
	}
	return m, nil
}

func (m SokobanLevelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.pack.Len()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.pack.Len() > 0 {
			m.choosing = false
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	m.clampOffset()
	return m, nil
}

// visibleRows is the number of level rows that fit on screen.
func (m SokobanLevelModel) visibleRows() int {
	return max(m.height-8, 3)
}

// clampOffset keeps the cursor inside the visible window.
func (m *SokobanLevelModel) clampOffset() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = core.Clamp(m.offset, 0, max(m.pack.Len()-rows, 0))
}

// View renders the level list.
func (m SokobanLevelModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S O K O B A N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%s: select a level", m.pack.Name), m.width))
	b.WriteString("\n\n")

	end := min(m.offset+m.visibleRows(), m.pack.Len())
	for i := m.offset; i < end; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%3d. %-20s %s", cursor, i+1, m.pack.Levels[i].Name(), m.best[i])
		if i == m.cursor {
			line = menuCursorStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SokobanLevelModel) Selected() *SokobanSelection {
	if m.choosing {
		return nil
	}
	return &SokobanSelection{Level: m.cursor + 1}
}

// IsQuitting returns true if user wants to quit.
func (m SokobanLevelModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SokobanLevelModel) WantsBack() bool {
	return m.back
}

// RunSokobanLevelSelector runs the level picker and returns the selection.
// A nil selection means the user went back or quit.
func RunSokobanLevelSelector(pack *sokoban.Pack, records SolveStore, cfg core.RuntimeConfig) (*SokobanSelection, error) {
	model := NewSokobanLevelModel(pack, records, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SokobanLevelModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
