package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warmaxegames/sort-resort-solver/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded batch runs",
	Long: `Display the latest batch runs from the results database.

Examples:
  sortsolve runs
  sortsolve runs --limit 25`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "How many runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	// Calculate column width
	maxWorldLen := len("World")
	for _, r := range runs {
		if len(r.World) > maxWorldLen {
			maxWorldLen = len(r.World)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-7s  %s\n", maxWorldLen, "World", "Solved", "Total", "When")
	for _, r := range runs {
		fmt.Printf("  %-*s  %-7d  %-7d  %s\n",
			maxWorldLen, r.World, r.LevelsSolved, r.LevelsTotal,
			r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
