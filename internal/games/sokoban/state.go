package sokoban

import "github.com/vovakirdan/tui-sokoban/internal/core"

// State is the mutable part of a Sokoban session.
// Boxes keep their slot order for the lifetime of a level.
type State struct {
	LevelIndex int
	Player     Position
	Boxes      []Position
	Won        bool
}

// Scan finds the player start and the box starts of a level in row-major order.
// A level without a player start yields (0, 0); with several, the last one wins.
func Scan(l *Level) (player Position, boxes []Position) {
	for y, row := range l.cells {
		for x, code := range row {
			switch code {
			case CodePlayer, CodePlayerOnGoal:
				player = Pos(x, y)
			case CodeBox, CodeBoxOnGoal:
				boxes = append(boxes, Pos(x, y))
			}
		}
	}
	return player, boxes
}

// NewState initializes the state for the level at index.
func NewState(index int, l *Level) State {
	player, boxes := Scan(l)
	return State{
		LevelIndex: index,
		Player:     player,
		Boxes:      boxes,
		Won:        false,
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := s
	if s.Boxes != nil {
		c.Boxes = make([]Position, len(s.Boxes))
		copy(c.Boxes, s.Boxes)
	}
	return c
}

// Equal reports whether two states match in every field.
func (s State) Equal(o State) bool {
	if s.LevelIndex != o.LevelIndex || s.Player != o.Player || s.Won != o.Won {
		return false
	}
	if len(s.Boxes) != len(o.Boxes) {
		return false
	}
	for i := range s.Boxes {
		if s.Boxes[i] != o.Boxes[i] {
			return false
		}
	}
	return true
}

// BoxAt returns the slot of the first box at p, or -1.
func (s State) BoxAt(p Position) int {
	for i, b := range s.Boxes {
		if b == p {
			return i
		}
	}
	return -1
}

// MoveOutcome describes what a move did.
type MoveOutcome int

const (
	MoveRejected MoveOutcome = iota // Nothing changed
	MoveWalked                      // Player moved onto an empty cell
	MovePushed                      // Player moved and pushed a box
)

// String returns the outcome name.
func (o MoveOutcome) String() string {
	switch o {
	case MoveRejected:
		return "rejected"
	case MoveWalked:
		return "walked"
	case MovePushed:
		return "pushed"
	default:
		return "unknown"
	}
}

// Move resolves one player step in direction d.
// The input state is never modified. A rejected move returns s unchanged.
func Move(s State, d Direction, l *Level) (State, MoveOutcome) {
	target := s.Player.Add(d)
	if !l.Walkable(target) {
		return s, MoveRejected
	}

	slot := s.BoxAt(target)
	if slot < 0 {
		next := s.Clone()
		next.Player = target
		return next, MoveWalked
	}

	beyond := target.Add(d)
	if !l.Walkable(beyond) || s.BoxAt(beyond) >= 0 {
		return s, MoveRejected
	}

	next := s.Clone()
	next.Boxes[slot] = beyond
	next.Player = target
	next.Won = Solved(next.Boxes, l)
	return next, MovePushed
}

// Dispatch applies an input action to the state.
// Non-directional actions are ignored, and so is everything once the level is won.
func Dispatch(s State, a core.Action, l *Level) (State, MoveOutcome) {
	if s.Won {
		return s, MoveRejected
	}
	d, ok := DirectionFor(a)
	if !ok {
		return s, MoveRejected
	}
	return Move(s, d, l)
}

// Solved reports whether every box rests on a goal cell.
// An empty box list is trivially solved.
func Solved(boxes []Position, l *Level) bool {
	for _, b := range boxes {
		if !l.IsGoal(b) {
			return false
		}
	}
	return true
}

// BoxesOnGoal counts boxes that rest on goal cells.
func BoxesOnGoal(boxes []Position, l *Level) int {
	n := 0
	for _, b := range boxes {
		if l.IsGoal(b) {
			n++
		}
	}
	return n
}

// Tag is the render classification of a cell.
type Tag int

const (
	TagEmpty Tag = iota
	TagGoal
	TagWall
	TagBox
	TagPlayer
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagEmpty:
		return "empty"
	case TagGoal:
		return "goal"
	case TagWall:
		return "wall"
	case TagBox:
		return "box"
	case TagPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Classify returns the render tag for cell p.
// Precedence: player > box > wall > goal > empty.
func Classify(s State, l *Level, p Position) Tag {
	switch {
	case s.Player == p:
		return TagPlayer
	case s.BoxAt(p) >= 0:
		return TagBox
	case l.IsWall(p):
		return TagWall
	case l.IsGoal(p):
		return TagGoal
	default:
		return TagEmpty
	}
}
