package sokoban

import (
	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// CellWidth is the number of screen columns one board cell occupies.
// Two columns keep the board roughly square in a terminal.
const CellWidth = 2

// Glyph is the on-screen look of one board cell.
type Glyph struct {
	Text  string
	Color core.Color
}

// normalize pads or truncates the glyph text to CellWidth runes.
func (g Glyph) normalize() Glyph {
	runes := []rune(g.Text)
	if len(runes) > CellWidth {
		runes = runes[:CellWidth]
	}
	for len(runes) < CellWidth {
		runes = append(runes, ' ')
	}
	g.Text = string(runes)
	return g
}

// Theme maps presentation tags to glyphs.
// BoxOnGoal and PlayerOnGoal refine the Box and Player tags; the tag itself
// does not change.
type Theme struct {
	Wall         Glyph
	Floor        Glyph
	Goal         Glyph
	Box          Glyph
	BoxOnGoal    Glyph
	Player       Glyph
	PlayerOnGoal Glyph
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		Wall:         Glyph{Text: "▓▓", Color: core.ColorGray},
		Floor:        Glyph{Text: "  ", Color: core.ColorDefault},
		Goal:         Glyph{Text: "<>", Color: core.ColorYellow},
		Box:          Glyph{Text: "[]", Color: core.ColorOrange},
		BoxOnGoal:    Glyph{Text: "[]", Color: core.ColorBrightGreen},
		Player:       Glyph{Text: "@@", Color: core.ColorBrightCyan},
		PlayerOnGoal: Glyph{Text: "@@", Color: core.ColorBrightYellow},
	}
}

// Glyph returns the glyph for a tag. onGoal selects the goal variant for
// boxes and the player.
func (t Theme) Glyph(tag Tag, onGoal bool) Glyph {
	var g Glyph
	switch tag {
	case TagPlayer:
		g = t.Player
		if onGoal {
			g = t.PlayerOnGoal
		}
	case TagBox:
		g = t.Box
		if onGoal {
			g = t.BoxOnGoal
		}
	case TagWall:
		g = t.Wall
	case TagGoal:
		g = t.Goal
	default:
		g = t.Floor
	}
	return g.normalize()
}

// ThemeFromConfig builds a theme from configuration.
// Empty text or unknown colors fall back to the default glyph.
func ThemeFromConfig(cfg config.ThemeConfig) Theme {
	def := DefaultTheme()
	return Theme{
		Wall:         glyphFromConfig(cfg.Wall, def.Wall),
		Floor:        glyphFromConfig(cfg.Floor, def.Floor),
		Goal:         glyphFromConfig(cfg.Goal, def.Goal),
		Box:          glyphFromConfig(cfg.Box, def.Box),
		BoxOnGoal:    glyphFromConfig(cfg.BoxOnGoal, def.BoxOnGoal),
		Player:       glyphFromConfig(cfg.Player, def.Player),
		PlayerOnGoal: glyphFromConfig(cfg.PlayerOnGoal, def.PlayerOnGoal),
	}
}

func glyphFromConfig(gc config.GlyphConfig, fallback Glyph) Glyph {
	g := fallback
	if gc.Text != "" {
		g.Text = gc.Text
	}
	if c, ok := core.ParseColor(gc.Color); ok {
		g.Color = c
	}
	return g
}
