package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// annotationTUI marks commands that take over the terminal.
// Their logs are discarded unless --log-file is set.
const annotationTUI = "tui"

var (
	appConfig config.SokobanConfig
	logger    = log.New(io.Discard)
	logFile   *os.File
)

// setup loads config, builds the logger and installs the level pack before
// any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSokoban(flagConfig)
	if err != nil {
		return err
	}
	if flagLevels != "" {
		cfg.Levels.Path = flagLevels
	}
	appConfig = cfg

	if err := setupLogger(cmd.Annotations[annotationTUI] == "true"); err != nil {
		return err
	}

	pack, err := loadPack(cfg.Levels.Path)
	if err != nil {
		return err
	}

	sokoban.SetLevelPack(pack)
	sokoban.SetTheme(sokoban.ThemeFromConfig(cfg.Theme))
	sokoban.SetStartLevel(cfg.Levels.StartLevel)
	return nil
}

// setupLogger configures the package logger from the global flags.
func setupLogger(interactive bool) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(expandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	case interactive:
		out = io.Discard
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "arcade",
	})
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// loadPack loads a YAML pack from path. An empty path keeps the built-in pack.
func loadPack(path string) (*sokoban.Pack, error) {
	if path == "" {
		return nil, nil
	}

	pack, err := levels.NewLoader(expandHome(path), logger).Load()
	if err != nil {
		return nil, err
	}

	for _, issue := range sokoban.LintPack(pack) {
		logger.Warn("level lint", "level", issue.LevelID, "code", issue.Code, "msg", issue.Message)
	}
	logger.Debug("level pack loaded", "pack", pack.ID, "levels", pack.Len())
	return pack, nil
}

// openStore opens the records database. It returns nil when records are
// disabled or the database cannot be opened; games still work without it.
func openStore() *storage.Store {
	if !appConfig.Records.Enabled {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open records database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig returns the current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{ScreenW: width, ScreenH: height}
}

// playerName is stored with local solve records.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
