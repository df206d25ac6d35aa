package solver

import "math/rand"

// Status is the state of one greedy search attempt.
type Status int

const (
	StatusRunning Status = iota
	StatusSolved
	StatusStuck
	StatusMoveCapExceeded
)

// Move-cap parameters: the cap is proportional to the item count and
// clamped to the original tool's hard bound.
const (
	movesPerItemCap = 12
	minMoveCap      = 60
	maxMoveCap      = 500

	// patternWindow is how many recent moves are remembered to penalize
	// shuttling an item back and forth.
	patternWindow = 10
)

// MoveCapFor returns the safety cap on move count for a board with the
// given number of items. The cap substitutes for a wall-clock timeout;
// pathological shuffling hits it long before any real solution would.
func MoveCapFor(itemCount int) int {
	limit := itemCount * movesPerItemCap
	if limit < minMoveCap {
		limit = minMoveCap
	}
	if limit > maxMoveCap {
		limit = maxMoveCap
	}
	return limit
}

// shuttle identifies an item traveling between two containers, used for
// the reversal and pattern penalties.
type shuttle struct {
	item     ItemType
	from, to int
}

// runAttempt drives one greedy search to completion on the given board.
// The board is consumed. rng is nil unless the strategy carries noise.
// Returns the terminal status and the applied moves in order.
//
// The loop is single-ply: the best-scored move is applied and never
// undone. Solutions that require temporarily wasting moves to set up a
// multi-step reveal are beyond it; such levels report StatusStuck even
// when a solution exists.
func runAttempt(b *Board, strat Strategy, rng *rand.Rand, moveLimit int) (Status, []Move) {
	// A board can load with triples already formed; they resolve before
	// the first move.
	b.ResolveMatches()

	var moves []Move
	var lastMove *Move
	var recent []shuttle

	for !b.IsClear() {
		if b.MoveCount >= moveLimit {
			return StatusMoveCapExceeded, moves
		}

		best := pickMove(b, lastMove, recent, strat, rng)
		if best == nil {
			return StatusStuck, moves
		}

		matched := b.Apply(*best)
		moves = append(moves, *best)
		lastMove = best

		recent = append(recent, shuttle{best.Item, best.FromContainer, best.ToContainer})
		if len(recent) > patternWindow {
			recent = recent[1:]
		}
		if matched > 0 {
			// A match resets the shuttle history; the board changed shape.
			lastMove = nil
			recent = recent[:0]
		}
	}

	return StatusSolved, moves
}

// pickMove selects the best move from the current position, or nil if
// no legal move exists.
//
// An immediate one-move match is always taken. Otherwise every legal
// move is scored; reversal and recent-pattern penalties are applied on
// top, then optional noise. Ties resolve to the earliest candidate in
// enumeration order (container index, then slot), keeping selection
// deterministic for a fixed seed.
func pickMove(b *Board, lastMove *Move, recent []shuttle, strat Strategy, rng *rand.Rand) *Move {
	if m := findOneMoveMatch(b); m != nil {
		m.Score = oneMoveMatchScore
		m.Reason = "1-move match"
		return m
	}

	candidates := LegalMoves(b)
	if len(candidates) == 0 {
		return nil
	}

	recentSet := make(map[shuttle]bool, len(recent))
	for _, s := range recent {
		recentSet[s] = true
	}

	access := analyzeAccess(b)

	var best *Move
	for i := range candidates {
		m := &candidates[i]
		score, reason := scoreMove(b, *m, access, strat)

		if lastMove != nil && isReversal(*m, *lastMove) {
			score -= reversalPenalty
			reason += ", reversal penalty"
		}
		if recentSet[shuttle{m.Item, m.ToContainer, m.FromContainer}] {
			score -= patternPenalty
			reason += ", pattern penalty"
		}
		if rng != nil && strat.NoiseMagnitude > 0 {
			score += rng.Intn(2*strat.NoiseMagnitude+1) - strat.NoiseMagnitude
		}

		m.Score = score
		m.Reason = reason
		if best == nil || score > best.Score {
			best = m
		}
	}

	return best
}

// isReversal reports whether a move sends the item straight back where
// the previous move took it from.
func isReversal(current, previous Move) bool {
	return current.Item == previous.Item &&
		current.FromContainer == previous.ToContainer &&
		current.ToContainer == previous.FromContainer
}
