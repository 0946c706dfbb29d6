package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette holds one lipgloss style per screen color.
// SSH sessions build their own palette from the session renderer so colour
// detection follows the remote terminal.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPalette builds a palette. A nil renderer uses the lipgloss default.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	p := Palette{
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
		plain:  r.NewStyle(),
	}
	for c, code := range colorCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// Style returns the style for a color, falling back to the unstyled one.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

var defaultPalette = NewPalette(nil)

// RenderScreen converts a Screen buffer to a styled string using the
// default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
