package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all games",
	Long:  `Shows the games registered in the arcade, including ones still in development.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	planned := registry.ListUnavailable()

	if len(games) == 0 && len(planned) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	for _, u := range planned {
		maxIDLen = max(maxIDLen, len(u.ID))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	if len(planned) > 0 {
		fmt.Println()
		fmt.Println("Not playable yet:")
		fmt.Println()
		for _, u := range planned {
			fmt.Printf("  %-*s  %s (%s)\n", maxIDLen, u.ID, u.Title, u.Reason)
		}
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
