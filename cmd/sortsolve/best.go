package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warmaxegames/sort-resort-solver/internal/config"
	"github.com/warmaxegames/sort-resort-solver/internal/level"
	"github.com/warmaxegames/sort-resort-solver/internal/solver"
)

var (
	flagBestVerbose bool
	flagBestJSON    bool
)

var bestCmd = &cobra.Command{
	Use:   "best <level-file>",
	Short: "Run the full strategy ensemble and keep the shortest solution",
	Long: `Run every configured strategy plus seeded noise restarts against a
level file, keep the successful attempt with the fewest moves, and print
the derived star move thresholds.

Examples:
  sortsolve best levels/island/level_042.json
  sortsolve best level.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBest,
}

func init() {
	bestCmd.Flags().BoolVarP(&flagBestVerbose, "verbose", "v", false, "Print the move sequence")
	bestCmd.Flags().BoolVar(&flagBestJSON, "json", false, "Emit the result as JSON")
}

func runBest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	lvl, err := level.LoadFile(args[0])
	if err != nil {
		return err
	}

	result := solver.SolveLevelBest(&lvl, cfg.BestOptions())

	if flagBestJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	printResult(&lvl, result, flagBestVerbose)
	if result.Success {
		t := solver.StarThresholds(result.TotalMoves)
		fmt.Printf("Star thresholds: 3*<=%d 2*<=%d 1*<=%d fail>%d\n", t[0], t[1], t[2], t[3])
	}
	return nil
}
