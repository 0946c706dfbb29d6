package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// SolveRecord describes a finished puzzle level.
// Fewer moves is better; pushes break ties.
type SolveRecord struct {
	LevelID string
	Moves   int
	Pushes  int
}

// StepResult is returned by Game.Step() after each input.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Solved is set exactly once, on the step that completed a level.
	Solved *SolveRecord
}
