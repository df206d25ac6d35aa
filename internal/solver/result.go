package solver

// FailureReason categorizes why an attempt did not clear the board.
// Failures are data; the solving entry points never panic over them.
type FailureReason int

const (
	// FailureNone means the attempt succeeded.
	FailureNone FailureReason = iota
	// FailureInvalidCardinality means some item type's total count is
	// not a multiple of three, so full clearance is structurally
	// impossible. Detected before any search.
	FailureInvalidCardinality
	// FailureStuck means no legal move existed on a non-clear board.
	// May be a true dead end or the single-ply incompleteness limit.
	FailureStuck
	// FailureMoveCapExceeded means the safety bound on move count was
	// hit without clearing the board.
	FailureMoveCapExceeded
)

func (f FailureReason) String() string {
	switch f {
	case FailureNone:
		return ""
	case FailureInvalidCardinality:
		return "invalid item cardinality"
	case FailureStuck:
		return "no valid moves"
	case FailureMoveCapExceeded:
		return "move cap exceeded"
	default:
		return "unknown"
	}
}

// MoveRecord is one relocation in a solution, expressed with the
// level's container IDs so callers never see board internals.
type MoveRecord struct {
	Item          string `json:"item"`
	FromContainer string `json:"from_container"`
	FromSlot      int    `json:"from_slot"`
	ToContainer   string `json:"to_container"`
	ToSlot        int    `json:"to_slot"`
}

// SolveResult is the only artifact a solve attempt returns. Immutable
// once produced; it outlives the board it was computed on.
type SolveResult struct {
	Success       bool          `json:"success"`
	Moves         []MoveRecord  `json:"moves,omitempty"`
	TotalMoves    int           `json:"total_moves"`
	TotalMatches  int           `json:"total_matches"`
	FailureReason FailureReason `json:"-"`
	Failure       string        `json:"failure_reason,omitempty"`
	Strategy      string        `json:"strategy,omitempty"`
	Seed          int64         `json:"seed"`
	ElapsedMs     float64       `json:"solve_time_ms"`
}

// recordMoves converts board-index moves to ID-based records.
func recordMoves(b *Board, moves []Move) []MoveRecord {
	if len(moves) == 0 {
		return nil
	}
	out := make([]MoveRecord, len(moves))
	for i, m := range moves {
		out[i] = MoveRecord{
			Item:          b.TypeName(m.Item),
			FromContainer: b.Containers[m.FromContainer].ID,
			FromSlot:      m.FromSlot,
			ToContainer:   b.Containers[m.ToContainer].ID,
			ToSlot:        m.ToSlot,
		}
	}
	return out
}
