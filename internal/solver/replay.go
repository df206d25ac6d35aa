package solver

import (
	"fmt"

	"github.com/warmaxegames/sort-resort-solver/internal/level"
)

// Replay applies a recorded move list to a fresh board built from the
// same level, resolving matches after each move exactly as the search
// did. It backs the hint/auto-play consumers and the soundness check
// that a successful solution really clears the board.
func Replay(lvl *level.Level, moves []MoveRecord) (*Board, error) {
	b := NewBoard(lvl)
	b.ResolveMatches()

	index := make(map[string]int, len(b.Containers))
	for i := range b.Containers {
		index[b.Containers[i].ID] = i
	}

	for i, rec := range moves {
		from, ok := index[rec.FromContainer]
		if !ok {
			return nil, fmt.Errorf("replay move %d: unknown container %q", i, rec.FromContainer)
		}
		to, ok := index[rec.ToContainer]
		if !ok {
			return nil, fmt.Errorf("replay move %d: unknown container %q", i, rec.ToContainer)
		}

		item := b.Containers[from].FrontItem(rec.FromSlot)
		if item == NoItem {
			return nil, fmt.Errorf("replay move %d: %s slot %d has no front item", i, rec.FromContainer, rec.FromSlot)
		}
		if name := b.TypeName(item); name != rec.Item {
			return nil, fmt.Errorf("replay move %d: expected %q at %s slot %d, found %q", i, rec.Item, rec.FromContainer, rec.FromSlot, name)
		}
		if !b.Containers[to].FrontEmpty(rec.ToSlot) {
			return nil, fmt.Errorf("replay move %d: %s slot %d is occupied", i, rec.ToContainer, rec.ToSlot)
		}

		b.Apply(Move{
			FromContainer: from,
			FromSlot:      rec.FromSlot,
			ToContainer:   to,
			ToSlot:        rec.ToSlot,
			Item:          item,
		})
	}

	return b, nil
}
