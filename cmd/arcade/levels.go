package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

var (
	flagSolve       bool
	flagSolverLimit int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect the level pack",
	Long: `List or validate the active level pack (built-in, or the one given with --levels).

Examples:
  arcade levels list
  arcade levels validate --levels ./packs
  arcade levels validate --levels ./packs/microban.yaml --solve`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels of the pack",
	Args:  cobra.NoArgs,
	Run:   runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the pack for malformed levels",
	Long: `Reports levels without a player start, with several player starts, without
boxes, or with a box count different from the goal count. With --solve each
level is also searched for a solution.

Exits with status 1 if any issue is found.`,
	Args: cobra.NoArgs,
	Run:  runLevelsValidate,
}

func init() {
	levelsValidateCmd.Flags().BoolVar(&flagSolve, "solve", false, "Also check every level can be solved")
	levelsValidateCmd.Flags().IntVar(&flagSolverLimit, "limit", 0, "Positions the solver may explore per level (0 = config value)")

	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

func runLevelsList(_ *cobra.Command, _ []string) {
	pack := sokoban.CurrentPack()

	fmt.Printf("%s (%s), %d levels\n", pack.Name, pack.ID, pack.Len())
	fmt.Println()
	fmt.Printf("  %-3s  %-16s  %-20s  %-7s  %s\n", "#", "ID", "Name", "Size", "Boxes")
	fmt.Printf("  %-3s  %-16s  %-20s  %-7s  %s\n", "-", "--", "----", "----", "-----")
	for i, l := range pack.Levels {
		_, boxes := sokoban.Scan(l)
		size := fmt.Sprintf("%dx%d", l.Width(), l.Height())
		fmt.Printf("  %-3d  %-16s  %-20s  %-7s  %d\n", i+1, l.ID(), l.Name(), size, len(boxes))
	}
}

func runLevelsValidate(_ *cobra.Command, _ []string) {
	pack := sokoban.CurrentPack()
	issues := sokoban.LintPack(pack)

	if flagSolve {
		limit := flagSolverLimit
		if limit <= 0 {
			limit = appConfig.Levels.SolverLimit
		}
		for _, l := range pack.Levels {
			logger.Debug("solving", "level", l.ID(), "limit", limit)
			issues = append(issues, sokoban.LintSolvable(l, limit)...)
		}
	}

	if len(issues) == 0 {
		fmt.Printf("%s: %d levels OK\n", pack.Name, pack.Len())
		return
	}

	for _, issue := range issues {
		fmt.Println(issue.Error())
	}
	fmt.Fprintf(os.Stderr, "%d issue(s) found\n", len(issues))
	os.Exit(1)
}
