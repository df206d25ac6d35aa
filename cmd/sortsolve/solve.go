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
	flagStrategy  string
	flagSeed      int64
	flagMoveLimit int
	flagVerbose   bool
	flagJSON      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <level-file>",
	Short: "Run one greedy solve attempt on a level",
	Long: `Run a single greedy solve attempt against a level file and print
the outcome.

Examples:
  sortsolve solve levels/island/level_042.json
  sortsolve solve level.yaml --strategy cautious --verbose
  sortsolve solve level.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagStrategy, "strategy", "balanced", "Scorer strategy name")
	solveCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Noise seed (only used by noisy strategies)")
	solveCmd.Flags().IntVar(&flagMoveLimit, "move-limit", 0, "Move cap override (0 = proportional to item count)")
	solveCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the move sequence")
	solveCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit the result as JSON")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	lvl, err := level.LoadFile(args[0])
	if err != nil {
		return err
	}

	strat, ok := cfg.StrategyByName(flagStrategy)
	if !ok {
		return fmt.Errorf("unknown strategy %q", flagStrategy)
	}

	moveLimit := flagMoveLimit
	if moveLimit <= 0 {
		moveLimit = cfg.MoveLimit
	}

	result := solver.SolveLevel(&lvl, solver.Options{
		Strategy:  strat,
		Seed:      flagSeed,
		MoveLimit: moveLimit,
	})

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	printResult(&lvl, result, flagVerbose)
	return nil
}

func printResult(lvl *level.Level, result solver.SolveResult, verbose bool) {
	name := lvl.Name
	if name == "" {
		name = fmt.Sprintf("level_%03d", lvl.ID)
	}

	if result.Success {
		fmt.Printf("SOLVED %s: %d moves, %d matches (%.1fms, %s)\n",
			name, result.TotalMoves, result.TotalMatches, result.ElapsedMs, result.Strategy)
	} else {
		fmt.Printf("FAILED %s: %s (%.1fms)\n", name, result.FailureReason, result.ElapsedMs)
	}

	if verbose {
		for i, m := range result.Moves {
			fmt.Printf("  %3d. %-20s %s[%d] -> %s[%d]\n",
				i+1, m.Item, m.FromContainer, m.FromSlot, m.ToContainer, m.ToSlot)
		}
	}
}
