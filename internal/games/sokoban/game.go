package sokoban

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// GameID is the registry and record-store identifier.
const GameID = "sokoban"

const (
	hudHeight    = 2 // Status line + separator
	footerHeight = 2 // Blank line + key hints
)

// Game implements the Sokoban puzzle on the arcade platform.
// It owns one State and replaces it on every accepted move.
type Game struct {
	pack  *Pack
	theme Theme
	state State

	moves  int // Moves on the current level
	pushes int // Pushes on the current level
	solved int // Levels solved this session

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	started  bool
}

// Package-level settings applied to new games, following the platform's
// configure-then-create pattern.
var (
	settingsMu         sync.RWMutex
	selectedPack       *Pack
	selectedTheme      *Theme
	selectedStartLevel int
)

// SetLevelPack sets the pack used by games created afterwards.
// A nil pack restores the built-in pack.
func SetLevelPack(p *Pack) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedPack = p
}

// CurrentPack returns the pack new games will use.
func CurrentPack() *Pack {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if selectedPack == nil || selectedPack.Len() == 0 {
		return BuiltinPack()
	}
	return selectedPack
}

// SetTheme sets the theme used by games created afterwards.
func SetTheme(t Theme) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedTheme = &t
}

// SetStartLevel sets the 1-indexed starting level. 0 means start from the first level.
// The value is consumed by the next Reset.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return selectedStartLevel
}

// takeStartLevel returns the pending start level and clears it.
func takeStartLevel() int {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	level := selectedStartLevel
	selectedStartLevel = 0
	return level
}

// New creates a Sokoban game using the current package settings.
func New() *Game {
	theme := DefaultTheme()
	settingsMu.RLock()
	if selectedTheme != nil {
		theme = *selectedTheme
	}
	settingsMu.RUnlock()

	return &Game{
		pack:  CurrentPack(),
		theme: theme,
	}
}

// NewWithPack creates a game over an explicit pack and theme.
func NewWithPack(p *Pack, theme Theme) *Game {
	if p == nil || p.Len() == 0 {
		p = BuiltinPack()
	}
	return &Game{pack: p, theme: theme}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sokoban"
}

// Pack returns the level pack in play.
func (g *Game) Pack() *Pack {
	return g.pack
}

// Reset prepares the game for the given screen.
// The first call loads the start level; later calls (terminal resizes) keep
// the current position on the board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if !g.started {
		g.started = true
		g.solved = 0
		g.paused = false

		index := 0
		if start := takeStartLevel(); start > 0 && start <= g.pack.Len() {
			index = start - 1
		}
		g.loadLevel(index)
		return
	}

	g.checkScreenSize()
}

// loadLevel (re)initializes the state for the level at index.
func (g *Game) loadLevel(index int) {
	index = core.Wrap(index, g.pack.Len())
	g.state = NewState(index, g.pack.Level(index))
	g.moves = 0
	g.pushes = 0
	g.checkScreenSize()
}

// Level returns the active level.
func (g *Game) Level() *Level {
	return g.pack.Level(g.state.LevelIndex)
}

// checkScreenSize checks if the level fits on screen.
func (g *Game) checkScreenSize() {
	level := g.Level()
	requiredW := level.Width()*CellWidth + 2
	requiredH := level.Height() + hudHeight + footerHeight
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step applies one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionNext):
		g.Advance()
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionPrev):
		g.Retreat()
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionRestart):
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	var solvedRecord *core.SolveRecord
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !in.Has(a) {
			continue
		}
		if rec := g.apply(a); rec != nil {
			solvedRecord = rec
		}
		break // one move per input event
	}

	return core.StepResult{State: g.State(), Solved: solvedRecord}
}

// apply dispatches a directional action and returns a record if it solved the level.
func (g *Game) apply(a core.Action) *core.SolveRecord {
	wasWon := g.state.Won
	next, outcome := Dispatch(g.state, a, g.Level())

	switch outcome {
	case MoveRejected:
		return nil
	case MoveWalked:
		g.moves++
	case MovePushed:
		g.moves++
		g.pushes++
	}
	g.state = next

	if g.state.Won && !wasWon {
		g.solved++
		return &core.SolveRecord{
			LevelID: g.Level().ID(),
			Moves:   g.moves,
			Pushes:  g.pushes,
		}
	}
	return nil
}

// Advance moves to the next level, wrapping after the last one.
func (g *Game) Advance() {
	g.loadLevel(g.pack.Next(g.state.LevelIndex))
}

// Retreat moves to the previous level, wrapping before the first one.
func (g *Game) Retreat() {
	g.loadLevel(g.pack.Prev(g.state.LevelIndex))
}

// Restart re-initializes the current level.
func (g *Game) Restart() {
	g.loadLevel(g.state.LevelIndex)
}

// SelectLevel jumps to the level at the 0-based index.
func (g *Game) SelectLevel(index int) {
	g.loadLevel(index)
}

// Current returns a copy of the current state.
func (g *Game) Current() State {
	return g.state.Clone()
}

// State returns the platform-level game state.
// The score is the number of levels solved this session.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.solved,
		GameOver: false,
		Paused:   g.paused || g.tooSmall,
	}
}

// HUD returns the status line text.
func (g *Game) HUD() string {
	level := g.Level()
	return fmt.Sprintf(" %s — %s %d/%d: %s   Moves: %d  Pushes: %d  Boxes: %d/%d",
		g.Title(), g.pack.Name, g.state.LevelIndex+1, g.pack.Len(), level.Name(),
		g.moves, g.pushes, BoxesOnGoal(g.state.Boxes, level), len(g.state.Boxes))
}
