// Package config provides YAML-based configuration loading for the Sokoban
// arcade: level pack location, board theme and solve records.
package config

// SokobanConfig contains all configuration for the Sokoban game.
type SokobanConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Theme   ThemeConfig   `yaml:"theme"`
	Records RecordsConfig `yaml:"records"`
}

// LevelsConfig selects the level pack.
type LevelsConfig struct {
	Path        string `yaml:"path"`         // File or directory; empty uses the built-in pack
	StartLevel  int    `yaml:"start_level"`  // 1-indexed, 0 = first
	SolverLimit int    `yaml:"solver_limit"` // Positions explored by `levels validate --solve`
}

// GlyphConfig describes how one kind of cell is drawn.
type GlyphConfig struct {
	Text  string `yaml:"text"`
	Color string `yaml:"color"`
}

// ThemeConfig holds a glyph for every cell kind.
type ThemeConfig struct {
	Wall         GlyphConfig `yaml:"wall"`
	Floor        GlyphConfig `yaml:"floor"`
	Goal         GlyphConfig `yaml:"goal"`
	Box          GlyphConfig `yaml:"box"`
	BoxOnGoal    GlyphConfig `yaml:"box_on_goal"`
	Player       GlyphConfig `yaml:"player"`
	PlayerOnGoal GlyphConfig `yaml:"player_on_goal"`
}

// Glyphs returns the theme entries keyed by their YAML name.
func (t ThemeConfig) Glyphs() map[string]GlyphConfig {
	return map[string]GlyphConfig{
		"wall":           t.Wall,
		"floor":          t.Floor,
		"goal":           t.Goal,
		"box":            t.Box,
		"box_on_goal":    t.BoxOnGoal,
		"player":         t.Player,
		"player_on_goal": t.PlayerOnGoal,
	}
}

// RecordsConfig controls the solve record store.
type RecordsConfig struct {
	Enabled bool `yaml:"enabled"`
	Top     int  `yaml:"top"` // Rows shown on the records board
}
