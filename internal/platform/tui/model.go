package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// SolveStore persists solve records. *storage.Store implements it.
type SolveStore interface {
	SaveSolve(solve storage.Solve) (int64, error)
	Best(gameID, levelID string) (*storage.Solve, error)
}

// RecordsFrom adapts a possibly nil store to SolveStore.
func RecordsFrom(store *storage.Store) SolveStore {
	if store == nil {
		return nil
	}
	return store
}

// LevelSelector is implemented by games that can jump to a level.
type LevelSelector interface {
	SelectLevel(index int)
}

// GameModel runs one registry game. Input is event driven: every key press
// steps the game once, synchronously, and there is no tick loop.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	records    SolveStore
	config     core.RuntimeConfig
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	logger     *log.Logger
	palette    Palette
	player     string
	status     string // Message shown above the footer, e.g. after a solve
	quitting   bool
	backToMenu bool
	standalone bool // Program exits on back instead of returning to a parent model
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Records SolveStore  // Nil disables solve records
	Logger  *log.Logger // Nil discards log output
	Player  string      // Stored with solve records

	// Renderer styles the screen. Nil uses the lipgloss default renderer.
	Renderer *lipgloss.Renderer
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		records: opts.Records,
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    h,
		logger:  logger,
		palette: NewPalette(opts.Renderer),
		player:  opts.Player,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	m = m.step(core.FrameOf(action))
	return m, nil
}

// step runs the game once and records a solve if one was reported.
func (m GameModel) step(frame core.InputFrame) GameModel {
	if frame.Has(core.ActionNext) || frame.Has(core.ActionPrev) || frame.Has(core.ActionRestart) {
		m.status = ""
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if result.Solved != nil {
		m.status = m.recordSolve(*result.Solved)
	}
	return m
}

// recordSolve stores a solve and returns the status line to show.
func (m GameModel) recordSolve(rec core.SolveRecord) string {
	status := fmt.Sprintf("Solved in %d moves, %d pushes", rec.Moves, rec.Pushes)
	m.logger.Info("level solved",
		"game", m.game.ID(),
		"level", rec.LevelID,
		"moves", rec.Moves,
		"pushes", rec.Pushes,
		"player", m.player,
	)

	if m.records == nil {
		return status
	}

	prev, err := m.records.Best(m.game.ID(), rec.LevelID)
	if err != nil {
		m.logger.Warn("could not read best solve", "level", rec.LevelID, "err", err)
	}

	_, err = m.records.SaveSolve(storage.Solve{
		GameID:  m.game.ID(),
		LevelID: rec.LevelID,
		Player:  m.player,
		Moves:   rec.Moves,
		Pushes:  rec.Pushes,
	})
	if err != nil {
		m.logger.Warn("could not save solve", "level", rec.LevelID, "err", err)
		return status
	}

	switch {
	case prev == nil:
		return status + " (first solve)"
	case rec.Moves < prev.Moves || (rec.Moves == prev.Moves && rec.Pushes < prev.Pushes):
		return status + fmt.Sprintf(" (new best, was %d/%d)", prev.Moves, prev.Pushes)
	default:
		return status + fmt.Sprintf(" (best %d/%d)", prev.Moves, prev.Pushes)
	}
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	// Games keep their progress across Reset after the first call
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.status = "Screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	if m.status != "" && m.screen.Height() > 4 {
		y := m.screen.Height() - 2
		x := (m.screen.Width() - len([]rune(m.status))) / 2
		m.screen.DrawTextColored(x, y, m.status, core.ColorBrightGreen)
	}

	if m.help.ShowAll {
		helpView := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Render(m.help.View(m.keys))
		return lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, helpView)
	}

	return m.palette.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Status returns the current status line.
func (m GameModel) Status() string {
	return m.status
}

// Screen returns the screen buffer after rendering the current state.
func (m GameModel) Screen() *core.Screen {
	m.game.Render(m.screen)
	return m.screen
}

// Run starts the Bubble Tea program for a single game.
// It returns true if the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
