package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultSokobanConfig returns the default Sokoban configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Levels: LevelsConfig{
			Path:        "",
			StartLevel:  0,
			SolverLimit: 2_000_000,
		},
		Theme: ThemeConfig{
			Wall:         GlyphConfig{Text: "▓▓", Color: "gray"},
			Floor:        GlyphConfig{Text: "  ", Color: "default"},
			Goal:         GlyphConfig{Text: "<>", Color: "yellow"},
			Box:          GlyphConfig{Text: "[]", Color: "orange"},
			BoxOnGoal:    GlyphConfig{Text: "[]", Color: "bright_green"},
			Player:       GlyphConfig{Text: "@@", Color: "bright_cyan"},
			PlayerOnGoal: GlyphConfig{Text: "@@", Color: "bright_yellow"},
		},
		Records: RecordsConfig{
			Enabled: true,
			Top:     10,
		},
	}
}
