package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD/hjkl - Move
  R                - Restart level
  N / ]            - Next level
  [                - Previous level
  P                - Pause
  Esc              - Back
  ?                - Help
  Q/Ctrl+C         - Quit

Without --level a level picker is shown first.

Examples:
  arcade play sokoban
  arcade play sokoban --level 4
  arcade play sokoban --levels ./packs/microban.yaml`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{annotationTUI: "true"},
	Run:         runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Start at this level (1-indexed), skipping the level picker")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		for _, u := range registry.ListUnavailable() {
			if u.ID == gameID {
				fmt.Fprintf(os.Stderr, "Error: %s is not playable yet (%s)\n", u.Title, u.Reason)
				os.Exit(1)
			}
		}
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	records := tui.RecordsFrom(store)

	if gameID == sokoban.GameID {
		switch {
		case flagStartLevel > 0:
			sokoban.SetStartLevel(flagStartLevel)
		case !cmd.Flags().Changed("level"):
			selection, err := tui.RunSokobanLevelSelector(sokoban.CurrentPack(), records, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			// User pressed back or quit
			if selection == nil {
				return
			}
			sokoban.SetStartLevel(selection.Level)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting game", "game", gameID)
	if _, err := tui.Run(game, cfg, tui.GameOptions{
		Records: records,
		Logger:  logger,
		Player:  playerName(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
