// arcade is a terminal Sokoban arcade.
//
// Usage:
//
//	arcade list                  - List games
//	arcade play <game>           - Play a game
//	arcade menu                  - Start menu to pick games interactively
//	arcade serve                 - Start SSH server for remote play
//	arcade records [level]       - Show solve records
//	arcade levels list|validate  - Inspect a level pack
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.arcade/records.db)
//	--levels <path>     - Load a YAML level pack file or directory
//	--config <path>     - Use a custom config file
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-sokoban/internal/games/invaders"
	_ "github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

var (
	// Global flags
	flagDBPath   string
	flagLevels   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "TUI Arcade - Push boxes in your terminal",
	Long: `TUI Arcade is a terminal puzzle arcade built around Sokoban.

Available commands:
  list     - Show all games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  records  - View solve records
  levels   - List or validate a level pack

Examples:
  arcade list
  arcade play sokoban --level 3
  arcade menu --levels ./packs
  arcade serve --ssh :2222
  arcade records classic-02
  arcade levels validate --levels ./packs --solve`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLog()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "YAML level pack file or directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(levelsCmd)
}
