package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Solve records
  Q            - Quit

Examples:
  arcade menu
  arcade menu --levels ./packs
  arcade menu --db ./records.db`,
	Annotations: map[string]string{annotationTUI: "true"},
	Run:         runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	records := tui.RecordsFrom(store)

	var source tui.RecordsSource
	if store != nil {
		source = store
	}

	cfg := runtimeConfig()
	pack := sokoban.CurrentPack()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, recErr := tui.RunRecords(pack, source, cfg.ScreenW, cfg.ScreenH)
			if recErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", recErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from records
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		if gameID == sokoban.GameID {
			selection, selErr := tui.RunSokobanLevelSelector(pack, records, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			// User pressed back or quit
			if selection == nil {
				continue
			}
			sokoban.SetStartLevel(selection.Level)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		logger.Info("starting game", "game", gameID)
		backToMenu, err := tui.Run(game, cfg, tui.GameOptions{
			Records: records,
			Logger:  logger,
			Player:  playerName(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
