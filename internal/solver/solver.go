package solver

import (
	"math/rand"
	"sort"
	"time"

	"github.com/warmaxegames/sort-resort-solver/internal/level"
)

// Options configures a single solve attempt. The zero value runs the
// balanced strategy with no noise and the proportional move cap.
type Options struct {
	// Strategy is the weight profile; zero value means Balanced.
	Strategy Strategy
	// Seed drives the noise RNG when the strategy carries noise. The
	// same level and seed always reproduce the same move sequence.
	Seed int64
	// MoveLimit overrides the proportional cap when positive. The
	// ensemble uses it to abandon runs that cannot beat the best so far.
	MoveLimit int
}

// BestOptions configures the multi-attempt ensemble.
type BestOptions struct {
	// Strategies run in order; nil means DefaultStrategies.
	Strategies []Strategy
	// NoiseRuns is the number of noisy restarts per strategy.
	NoiseRuns int
	// NoiseMagnitude is the per-move noise amplitude of those restarts.
	NoiseMagnitude int
	// MoveLimit caps every attempt when positive.
	MoveLimit int
}

// DefaultBestOptions mirrors the generator's validation settings.
func DefaultBestOptions() BestOptions {
	return BestOptions{NoiseRuns: 3, NoiseMagnitude: 8}
}

// SolveLevel runs one greedy attempt against the level and reports the
// outcome. The level is consumed read-only; the attempt works on its
// own board clone. Every failure comes back as data in the result.
func SolveLevel(lvl *level.Level, opts Options) SolveResult {
	start := time.Now()

	strat := opts.Strategy
	if strat.Name == "" {
		strat = Balanced()
	}
	result := SolveResult{Strategy: strat.Name, Seed: opts.Seed}

	if reason, ok := checkCardinality(lvl); !ok {
		result.FailureReason = reason
		result.Failure = reason.String()
		result.ElapsedMs = elapsedMs(start)
		return result
	}

	b := NewBoard(lvl)

	moveLimit := opts.MoveLimit
	if moveLimit <= 0 {
		moveLimit = MoveCapFor(b.TotalItems())
	}

	var rng *rand.Rand
	if strat.NoiseMagnitude > 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	status, moves := runAttempt(b, strat, rng, moveLimit)

	result.Moves = recordMoves(b, moves)
	result.TotalMoves = b.MoveCount
	result.TotalMatches = b.MatchCount
	switch status {
	case StatusSolved:
		result.Success = true
	case StatusStuck:
		result.FailureReason = FailureStuck
	case StatusMoveCapExceeded:
		result.FailureReason = FailureMoveCapExceeded
	}
	result.Failure = result.FailureReason.String()
	result.ElapsedMs = elapsedMs(start)
	return result
}

// SolveLevelBest runs the full ensemble - every strategy once clean,
// then NoiseRuns seeded noisy restarts of each - and returns the
// successful attempt with the fewest moves. As better runs are found
// the move limit tightens, so weaker restarts abandon early. When
// nothing succeeds, the final clean balanced attempt's failure is
// reported. Attempts are sequential and independent; each clones a
// fresh board.
//
// An explicit MoveLimit bounds every attempt. Without one, a level that
// records its construction move count bounds attempts to that count, so
// validation rejects levels the search cannot clear within the budget
// they were built under.
func SolveLevelBest(lvl *level.Level, opts BestOptions) SolveResult {
	start := time.Now()

	strategies := opts.Strategies
	if strategies == nil {
		strategies = DefaultStrategies()
	}

	moveLimit := opts.MoveLimit
	if moveLimit <= 0 && lvl.ConstructionMoves > 0 {
		moveLimit = lvl.ConstructionMoves
	}
	var best *SolveResult

	consider := func(r SolveResult) {
		if !r.Success {
			return
		}
		if best == nil || r.TotalMoves < best.TotalMoves {
			best = &r
			moveLimit = r.TotalMoves
		}
	}

	for _, strat := range strategies {
		consider(SolveLevel(lvl, Options{Strategy: strat, MoveLimit: moveLimit}))

		for run := 1; run <= opts.NoiseRuns; run++ {
			noisy := strat.withNoise(opts.NoiseMagnitude, run)
			consider(SolveLevel(lvl, Options{
				Strategy:  noisy,
				Seed:      int64(run),
				MoveLimit: moveLimit,
			}))
		}
	}

	if best == nil {
		fallback := SolveLevel(lvl, Options{MoveLimit: moveLimit})
		fallback.ElapsedMs = elapsedMs(start)
		return fallback
	}

	result := *best
	result.ElapsedMs = elapsedMs(start)
	return result
}

// checkCardinality verifies every item type's total count is a multiple
// of three before search begins. Types are checked in sorted order so
// failure reporting is deterministic, though the reason is the same
// whichever type trips it.
func checkCardinality(lvl *level.Level) (FailureReason, bool) {
	counts := lvl.ItemCounts()
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		if counts[t]%matchSize != 0 {
			return FailureInvalidCardinality, false
		}
	}
	return FailureNone, true
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
