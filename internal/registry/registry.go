// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "sokoban").
	// Used for CLI commands and record storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Sokoban").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when the terminal is resized.
	// The RuntimeConfig provides screen dimensions.
	Reset(cfg core.RuntimeConfig)

	// Step applies one input event synchronously.
	// Input is abstracted to platform-level actions (Up, Next, Restart, etc.).
	// Returns the result of this step including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Unavailable describes a game that is listed but cannot be played yet.
type Unavailable struct {
	ID     string
	Title  string
	Reason string
}

var (
	factories   = make(map[string]Factory)
	titles      = make(map[string]string)
	unavailable = make(map[string]Unavailable)
	mu          sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Titles returns the title for each registered ID.
func Titles() map[string]string {
	mu.RLock()
	defer mu.RUnlock()

	out := make(map[string]string, len(titles))
	for id, t := range titles {
		out[id] = t
	}
	return out
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// RegisterUnavailable lists a game that has no playable implementation.
// Such games never appear in List and cannot be created.
func RegisterUnavailable(id, title, reason string) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	unavailable[id] = Unavailable{ID: id, Title: title, Reason: reason}
}

// ListUnavailable returns all unavailable games, sorted by ID.
func ListUnavailable() []Unavailable {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Unavailable, 0, len(unavailable))
	for _, u := range unavailable {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
