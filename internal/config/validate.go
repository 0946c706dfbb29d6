package config

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// MaxGlyphWidth is the widest glyph text accepted in a theme.
const MaxGlyphWidth = 2

// Validate reports every invalid field in the configuration.
func (c SokobanConfig) Validate() error {
	var errs []error

	if c.Levels.StartLevel < 0 {
		errs = append(errs, fmt.Errorf("levels.start_level: must be >= 0, got %d", c.Levels.StartLevel))
	}
	if c.Levels.SolverLimit < 0 {
		errs = append(errs, fmt.Errorf("levels.solver_limit: must be >= 0, got %d", c.Levels.SolverLimit))
	}
	if c.Records.Top < 0 {
		errs = append(errs, fmt.Errorf("records.top: must be >= 0, got %d", c.Records.Top))
	}

	glyphs := c.Theme.Glyphs()
	names := make([]string, 0, len(glyphs))
	for name := range glyphs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		g := glyphs[name]
		if n := utf8.RuneCountInString(g.Text); n > MaxGlyphWidth {
			errs = append(errs, fmt.Errorf("theme.%s.text: %q is wider than %d columns", name, g.Text, MaxGlyphWidth))
		}
		if g.Color != "" {
			if _, ok := core.ParseColor(g.Color); !ok {
				errs = append(errs, fmt.Errorf("theme.%s.color: unknown color %q", name, g.Color))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
