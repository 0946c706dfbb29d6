package sokoban

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for tests and replay checks.
type Snapshot struct {
	Level   int    // Current level (1-indexed for display)
	LevelID string // Level identifier within the pack
	Player  Position
	Boxes   []Position
	Won     bool
	Moves   int
	Pushes  int
	Solved  int // Levels solved this session
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.Won:
		state = StateSolved
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Level:   g.state.LevelIndex + 1,
		LevelID: g.Level().ID(),
		Player:  g.state.Player,
		Boxes:   append([]Position(nil), g.state.Boxes...),
		Won:     g.state.Won,
		Moves:   g.moves,
		Pushes:  g.pushes,
		Solved:  g.solved,
		State:   state,
	}
}
