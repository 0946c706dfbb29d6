// Package sokoban implements the Sokoban box-pushing puzzle.
//
// The rules live in plain functions over value types (Level, State) so they
// can be tested without a terminal; Game adapts them to the arcade platform.
package sokoban

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Cell codes used in level rows. Any other rune is open floor.
const (
	CodeWall         = '#'
	CodeGoal         = '.'
	CodePlayer       = '@'
	CodeBox          = '$'
	CodeBoxOnGoal    = '*'
	CodePlayerOnGoal = '+'
	CodeFloor        = ' '
)

// Position is a grid cell coordinate. X is the column, Y the row.
type Position struct {
	X, Y int
}

// Pos is a convenience constructor for Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position one step in direction d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit move vector.
type Direction struct {
	DX, DY int
}

// The four move directions.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Directions lists the four move directions in a fixed order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// DirectionFor maps a directional action to its move vector.
// Returns false for every other action.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return Direction{}, false
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Level is an immutable puzzle layout. Rows may differ in length.
type Level struct {
	id    string
	name  string
	rows  []string
	cells [][]rune
}

// NewLevel creates a level from its rows. The rows are copied.
func NewLevel(id, name string, rows []string) *Level {
	l := &Level{
		id:    id,
		name:  name,
		rows:  make([]string, len(rows)),
		cells: make([][]rune, len(rows)),
	}
	for y, row := range rows {
		l.rows[y] = row
		l.cells[y] = []rune(row)
	}
	return l
}

// ParseLevel builds a level from a newline-separated block.
// Blank leading and trailing lines are dropped; inner blank lines are kept.
func ParseLevel(id, name, text string) *Level {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return NewLevel(id, name, lines)
}

// ID returns the level identifier.
func (l *Level) ID() string {
	return l.id
}

// Name returns the display name, falling back to the ID.
func (l *Level) Name() string {
	if l.name == "" {
		return l.id
	}
	return l.name
}

// Rows returns a copy of the level rows.
func (l *Level) Rows() []string {
	out := make([]string, len(l.rows))
	copy(out, l.rows)
	return out
}

// Height returns the number of rows.
func (l *Level) Height() int {
	return len(l.cells)
}

// Width returns the length of the longest row.
func (l *Level) Width() int {
	w := 0
	for _, row := range l.cells {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// RowWidth returns the length of row y, or 0 if y is out of range.
func (l *Level) RowWidth(y int) int {
	if y < 0 || y >= len(l.cells) {
		return 0
	}
	return len(l.cells[y])
}

// InBounds reports whether p lies within its own row.
func (l *Level) InBounds(p Position) bool {
	return p.Y >= 0 && p.Y < len(l.cells) && p.X >= 0 && p.X < len(l.cells[p.Y])
}

// Code returns the raw cell code at p, or 0 if p is out of bounds.
func (l *Level) Code(p Position) rune {
	if !l.InBounds(p) {
		return 0
	}
	return l.cells[p.Y][p.X]
}

// IsWall reports whether p is a wall cell.
func (l *Level) IsWall(p Position) bool {
	return l.Code(p) == CodeWall
}

// IsGoal reports whether p is a goal cell.
func (l *Level) IsGoal(p Position) bool {
	switch l.Code(p) {
	case CodeGoal, CodeBoxOnGoal, CodePlayerOnGoal:
		return true
	}
	return false
}

// Walkable reports whether p is in bounds and not a wall.
// Both the player and boxes may only occupy walkable cells.
func (l *Level) Walkable(p Position) bool {
	return l.InBounds(p) && !l.IsWall(p)
}

// Goals returns every goal cell in row-major order.
func (l *Level) Goals() []Position {
	var goals []Position
	for y, row := range l.cells {
		for x := range row {
			if p := Pos(x, y); l.IsGoal(p) {
				goals = append(goals, p)
			}
		}
	}
	return goals
}
