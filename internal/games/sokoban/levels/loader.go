// Package levels loads Sokoban level packs from YAML files.
// This package depends on sokoban but sokoban does not depend on levels.
package levels

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
)

// Loader handles loading level packs from a file or directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new level loader. A nil logger discards output.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: root, Logger: logger}
}

// Load reads Root, which may be a single pack file or a directory of packs.
func (l *Loader) Load() (*sokoban.Pack, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if info.IsDir() {
		return l.LoadDir()
	}
	return l.LoadFile(l.Root)
}

// LoadDir recursively loads every pack file under Root and merges them into
// one pack, ordered by file path. Invalid files are skipped with a warning.
func (l *Loader) LoadDir() (*sokoban.Pack, error) {
	var paths []string

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	// Sort for determinism
	slices.Sort(paths)

	name := filepath.Base(filepath.Clean(l.Root))
	merged := sokoban.NewPack(name, name)
	for _, path := range paths {
		pack, err := l.LoadFile(path)
		if err != nil {
			l.Logger.Warn("skipping level pack", "path", path, "err", err)
			continue
		}
		merged.Levels = append(merged.Levels, pack.Levels...)
	}

	if merged.Len() == 0 {
		return nil, fmt.Errorf("levels: no valid level packs in %s", l.Root)
	}
	return merged, nil
}

// LoadFile loads a single pack file.
func (l *Loader) LoadFile(path string) (*sokoban.Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	fallbackID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	pack, err := Parse(data, fallbackID)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	l.Logger.Debug("loaded level pack", "path", path, "pack", pack.ID, "levels", pack.Len())
	return pack, nil
}

// Parse decodes pack data. fallbackID names the pack when the file has no id.
func Parse(data []byte, fallbackID string) (*sokoban.Pack, error) {
	yp, err := formats.ParseYAML(data)
	if err != nil {
		return nil, err
	}

	id := yp.ID
	if id == "" {
		id = fallbackID
	}
	name := yp.Name
	if name == "" {
		name = id
	}

	levels := make([]*sokoban.Level, len(yp.Levels))
	for i, yl := range yp.Levels {
		levelID := yl.ID
		if levelID == "" {
			levelID = fmt.Sprintf("%s-%02d", id, i+1)
		}
		levelName := yl.Name
		if levelName == "" {
			levelName = fmt.Sprintf("Level %d", i+1)
		}

		if yl.Map != "" {
			levels[i] = sokoban.ParseLevel(levelID, levelName, yl.Map)
		} else {
			levels[i] = sokoban.NewLevel(levelID, levelName, yl.Rows)
		}
	}

	return sokoban.NewPack(id, name, levels...), nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}
