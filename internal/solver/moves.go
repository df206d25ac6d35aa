package solver

// Move is a single-item relocation between two slots, expressed with
// board indices. Score and Reason are filled in by the scorer for
// diagnostics.
type Move struct {
	FromContainer int
	FromSlot      int
	ToContainer   int
	ToSlot        int
	Item          ItemType

	Score  int
	Reason string
}

// canSend reports whether a container may act as a move source.
func canSend(c *Container) bool {
	return !c.Locked && !c.Despawned
}

// canReceive reports whether a container may act as a move destination.
func canReceive(c *Container) bool {
	return !c.Locked && !c.Despawned
}

// LegalMoves returns every legal relocation: each occupied front slot of
// an unlocked, non-despawned container to an empty front slot of a
// different unlocked, non-despawned container.
//
// Two prunings keep the candidate set small without losing solutions:
//   - completely empty containers are interchangeable per shape, so only
//     one representative per slot count is offered as a destination;
//   - within a destination only the first empty slot is offered, since
//     matching inspects the whole front row, not slot positions.
func LegalMoves(b *Board) []Move {
	emptyRep := make(map[int]int) // slot count -> container index
	emptySet := make(map[int]bool)
	for i := range b.Containers {
		c := &b.Containers[i]
		if canReceive(c) && c.IsEmpty() {
			emptySet[i] = true
			if _, ok := emptyRep[c.SlotCount]; !ok {
				emptyRep[c.SlotCount] = i
			}
		}
	}

	var moves []Move
	for fromIdx := range b.Containers {
		from := &b.Containers[fromIdx]
		if !canSend(from) {
			continue
		}
		for fromSlot := 0; fromSlot < from.SlotCount; fromSlot++ {
			item := from.FrontItem(fromSlot)
			if item == NoItem {
				continue
			}
			for toIdx := range b.Containers {
				if toIdx == fromIdx {
					continue
				}
				to := &b.Containers[toIdx]
				if !canReceive(to) {
					continue
				}
				if emptySet[toIdx] && toIdx != emptyRep[to.SlotCount] {
					continue
				}
				toSlot := to.FirstEmptySlot()
				if toSlot < 0 {
					continue
				}
				moves = append(moves, Move{
					FromContainer: fromIdx,
					FromSlot:      fromSlot,
					ToContainer:   toIdx,
					ToSlot:        toSlot,
					Item:          item,
				})
			}
		}
	}
	return moves
}
