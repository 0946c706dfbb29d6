package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagClear bool

var recordsCmd = &cobra.Command{
	Use:   "records [level-id]",
	Short: "Show solve records",
	Long: `Without arguments, shows a summary of every solved level.
With a level ID, shows the best solves for that level, fewest moves first.

Examples:
  arcade records
  arcade records classic-03
  arcade records classic-03 --clear
  arcade records --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the records for the level (or all levels)")
}

func runRecords(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		clearRecords(store, args)
		return
	}

	if len(args) == 0 {
		printLevelStats(store)
		return
	}
	printLevelRecords(store, args[0])
}

func clearRecords(store *storage.Store, args []string) {
	var err error
	if len(args) == 0 {
		err = store.ClearGame(sokoban.GameID)
	} else {
		err = store.ClearLevel(sokoban.GameID, args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Records cleared.")
}

func printLevelStats(store *storage.Store) {
	stats, err := store.LevelStats(sokoban.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		return
	}

	if len(stats) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arcade play sokoban' to set the first record!")
		return
	}

	fmt.Println("Solved levels")
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-6s  %-6s  %s\n", "Level", "Solves", "Moves", "Pushes", "Last solved")
	fmt.Printf("  %-16s  %-6s  %-6s  %-6s  %s\n", "-----", "------", "-----", "------", "-----------")
	for _, st := range stats {
		fmt.Printf("  %-16s  %-6d  %-6d  %-6d  %s\n",
			st.LevelID, st.Solves, st.BestMoves, st.BestPushes, st.LastSolved.Format("2006-01-02 15:04"))
	}
}

func printLevelRecords(store *storage.Store, levelID string) {
	title := levelID
	pack := sokoban.CurrentPack()
	if i := pack.IndexOf(levelID); i >= 0 {
		title = fmt.Sprintf("%s (%s)", pack.Level(i).Name(), levelID)
	}

	solves, err := store.BestSolves(sokoban.GameID, levelID, appConfig.Records.Top)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Records - %s\n", title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-12s  %s\n", "Rank", "Moves", "Pushes", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "------", "------", "----")
	for i, s := range solves {
		player := s.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-6d  %-12s  %s\n",
			i+1, s.Moves, s.Pushes, player, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
