package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSokoban loads Sokoban configuration.
// Search order: customPath -> ~/.arcade/configs/sokoban.yaml -> ./configs/sokoban.yaml -> embedded default
// Fields missing from the chosen file keep their default values.
func LoadSokoban(customPath string) (SokobanConfig, error) {
	cfg := DefaultSokobanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("sokoban.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "sokoban.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSokobanYAML, &cfg); err != nil {
		return DefaultSokobanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (SokobanConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SokobanConfig{}, false
	}
	cfg := DefaultSokobanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SokobanConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return SokobanConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// UserConfigDir returns ~/.arcade, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade")
}
