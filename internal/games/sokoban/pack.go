package sokoban

import "github.com/vovakirdan/tui-sokoban/internal/core"

// Pack is a named, ordered collection of levels.
type Pack struct {
	ID     string
	Name   string
	Levels []*Level
}

// NewPack creates a pack from the given levels.
func NewPack(id, name string, levels ...*Level) *Pack {
	return &Pack{ID: id, Name: name, Levels: levels}
}

// Len returns the number of levels.
func (p *Pack) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Levels)
}

// Level returns the level at index i (wrapped into range).
// Returns nil for an empty pack.
func (p *Pack) Level(i int) *Level {
	if p.Len() == 0 {
		return nil
	}
	return p.Levels[core.Wrap(i, len(p.Levels))]
}

// Next returns the index after i, wrapping past the last level to the first.
func (p *Pack) Next(i int) int {
	return core.Wrap(i+1, p.Len())
}

// Prev returns the index before i, wrapping before the first level to the last.
func (p *Pack) Prev(i int) int {
	return core.Wrap(i-1, p.Len())
}

// IndexOf returns the index of the level with the given ID, or -1.
func (p *Pack) IndexOf(id string) int {
	for i, l := range p.Levels {
		if l.ID() == id {
			return i
		}
	}
	return -1
}

// Names returns the display names of all levels.
func (p *Pack) Names() []string {
	names := make([]string, p.Len())
	for i, l := range p.Levels {
		names[i] = l.Name()
	}
	return names
}
