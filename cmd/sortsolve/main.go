// sortsolve is the level validation and difficulty-scoring tool for
// sorting levels: it runs the heuristic solver against level files to
// decide solvability and derive star move thresholds.
//
// Usage:
//
//	sortsolve solve <level-file>   - Run one solve attempt on a level
//	sortsolve best <level-file>    - Run the full strategy ensemble
//	sortsolve batch <world-dir>    - Validate every level of a world
//	sortsolve runs                 - Show recorded batch runs
//
// Global flags:
//
//	--config <path>  - Solver config file (default: search order)
//	--db <path>      - Results database path (default: ~/.sortsolve/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "sortsolve",
	Short:         "Heuristic solver for sorting levels",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `sortsolve decides whether a sorting level can be fully cleared by
single-item relocations, produces the move sequence, and derives star
move thresholds from the best run.

Available commands:
  solve    - Run one greedy attempt on a level file
  best     - Run the full strategy ensemble and keep the shortest solution
  batch    - Validate every level of a world directory
  runs     - Show recorded batch runs

Examples:
  sortsolve solve levels/island/level_042.json
  sortsolve best levels/island/level_042.json
  sortsolve batch levels/island --best
  sortsolve runs`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to solver config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sortsolve/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(runsCmd)
}
