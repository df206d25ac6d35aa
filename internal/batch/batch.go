// Package batch runs the solver across every level of a world
// directory, aggregates solved/failed counts, and optionally persists
// outcomes to the results database.
package batch

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/warmaxegames/sort-resort-solver/internal/level"
	"github.com/warmaxegames/sort-resort-solver/internal/solver"
	"github.com/warmaxegames/sort-resort-solver/internal/storage"
)

// Runner drives a batch validation run.
type Runner struct {
	// Store is optional; nil skips persistence.
	Store  *storage.Store
	Logger *log.Logger

	// UseBest runs the full ensemble per level instead of a single
	// balanced attempt.
	UseBest bool
	// BestOptions configures the ensemble when UseBest is set.
	BestOptions solver.BestOptions
}

// LevelOutcome pairs a level with its solve result.
type LevelOutcome struct {
	Name   string
	Result solver.SolveResult
}

// Summary aggregates one batch run.
type Summary struct {
	World    string
	RunID    string
	Total    int
	Solved   int
	Failed   int
	ByReason map[string]int
	Outcomes []LevelOutcome
}

// Run solves every level under worldDir. Levels are visited in
// deterministic name order. Per-level failures are aggregated, not
// fatal; only infrastructure problems (unreadable directory, broken
// level file, storage errors) return an error.
func (r *Runner) Run(worldDir string) (Summary, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	levels, err := level.NewLoader(worldDir).LoadAll()
	if err != nil {
		return Summary{}, err
	}
	if len(levels) == 0 {
		return Summary{}, fmt.Errorf("no levels found under %s", worldDir)
	}

	summary := Summary{
		World:    filepath.Base(filepath.Clean(worldDir)),
		ByReason: make(map[string]int),
	}

	if r.Store != nil {
		runID, err := r.Store.CreateRun(summary.World)
		if err != nil {
			return Summary{}, err
		}
		summary.RunID = runID
	}

	for i := range levels {
		lvl := &levels[i]
		name := lvl.Name
		if name == "" {
			name = fmt.Sprintf("level_%03d", lvl.ID)
		}

		var res solver.SolveResult
		if r.UseBest {
			res = solver.SolveLevelBest(lvl, r.BestOptions)
		} else {
			res = solver.SolveLevel(lvl, solver.Options{})
		}

		summary.Total++
		if res.Success {
			summary.Solved++
			logger.Info("solved", "level", name, "moves", res.TotalMoves,
				"matches", res.TotalMatches, "strategy", res.Strategy,
				"elapsed_ms", res.ElapsedMs)
		} else {
			summary.Failed++
			summary.ByReason[res.FailureReason.String()]++
			logger.Warn("failed", "level", name, "reason", res.FailureReason.String(),
				"moves", res.TotalMoves, "elapsed_ms", res.ElapsedMs)
		}
		summary.Outcomes = append(summary.Outcomes, LevelOutcome{Name: name, Result: res})

		if r.Store != nil {
			if _, err := r.Store.SaveLevelResult(summary.RunID, name, res); err != nil {
				return Summary{}, err
			}
		}
	}

	if r.Store != nil {
		if err := r.Store.FinishRun(summary.RunID, summary.Total, summary.Solved); err != nil {
			return Summary{}, err
		}
	}

	return summary, nil
}
