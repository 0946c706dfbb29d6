// Package invaders declares the entity shapes of a Space Invaders game.
//
// Only the shapes exist. There is no game loop, collision model or scoring,
// so the package registers itself only as an unavailable game.
package invaders

import (
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// Field dimensions in pixels.
const (
	FieldWidth  = 800
	FieldHeight = 600
)

// Player dimensions in pixels.
const (
	PlayerWidth  = 50
	PlayerHeight = 30
)

// Title is the display name used when listing games.
const Title = "Space Invaders"

// Entity is a rectangle on the playing field.
type Entity struct {
	X, Y          int
	Width, Height int
}

// Bounds returns the entity rectangle.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Direction is the horizontal march direction of an alien.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Alien is an entity with a movement direction.
type Alien struct {
	Entity
	Direction Direction
}

// NewPlayer returns the player at its starting position:
// horizontally centered, 60 pixels above the bottom edge.
func NewPlayer() Entity {
	return Entity{
		X:      FieldWidth/2 - PlayerWidth/2,
		Y:      FieldHeight - 60,
		Width:  PlayerWidth,
		Height: PlayerHeight,
	}
}

// NewAlien returns an alien at (x, y) with the given size and direction.
func NewAlien(x, y, width, height int, dir Direction) Alien {
	return Alien{
		Entity:    Entity{X: x, Y: y, Width: width, Height: height},
		Direction: dir,
	}
}

// Field returns the playing field rectangle.
func Field() core.Rect {
	return core.NewRect(0, 0, FieldWidth, FieldHeight)
}

func init() {
	registry.RegisterUnavailable("invaders", Title, "in development: entity shapes only")
}
