package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/warmaxegames/sort-resort-solver/internal/batch"
	"github.com/warmaxegames/sort-resort-solver/internal/config"
	"github.com/warmaxegames/sort-resort-solver/internal/storage"
)

var (
	flagBatchBest    bool
	flagBatchNoStore bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <world-dir>",
	Short: "Validate every level of a world directory",
	Long: `Run the solver across every level file under a world directory,
record the outcomes in the results database, and print a summary.

Examples:
  sortsolve batch levels/island
  sortsolve batch levels/farm --best
  sortsolve batch levels/space --no-store`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&flagBatchBest, "best", false, "Run the full ensemble per level")
	batchCmd.Flags().BoolVar(&flagBatchNoStore, "no-store", false, "Skip the results database")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sortsolve",
	})

	var store *storage.Store
	if !flagBatchNoStore {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			// Continue without storage
		} else {
			defer store.Close()
		}
	}

	runner := &batch.Runner{
		Store:       store,
		Logger:      logger,
		UseBest:     flagBatchBest,
		BestOptions: cfg.BestOptions(),
	}

	summary, err := runner.Run(args[0])
	if err != nil {
		return err
	}

	fmt.Println(renderSummary(summary))

	if store != nil {
		if regressions, err := store.Regressions(summary.World); err == nil && len(regressions) > 0 {
			logger.Warn("regressions since previous run", "levels", regressions)
		}
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d levels failed", summary.Failed, summary.Total)
	}
	return nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// renderSummary renders the batch outcome as a small styled report.
func renderSummary(s batch.Summary) string {
	out := titleStyle.Render(fmt.Sprintf("World %s: %d levels", s.World, s.Total)) + "\n"
	out += solvedStyle.Render(fmt.Sprintf("  solved: %d", s.Solved)) + "\n"

	if s.Failed == 0 {
		return out
	}

	out += failedStyle.Render(fmt.Sprintf("  failed: %d", s.Failed)) + "\n"

	reasons := make([]string, 0, len(s.ByReason))
	for reason := range s.ByReason {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		out += faintStyle.Render(fmt.Sprintf("    %s: %d", reason, s.ByReason[reason])) + "\n"
	}

	for _, o := range s.Outcomes {
		if !o.Result.Success {
			out += failedStyle.Render(fmt.Sprintf("    %s: %s", o.Name, o.Result.FailureReason)) + "\n"
		}
	}
	return out
}
