package solver

// nearUnlockWindow is how close a lock counter must be to zero before
// its front items count as nearly accessible.
const nearUnlockWindow = 2

// typeAccess classifies one item type's reachability.
type typeAccess struct {
	accessible int // front of an unlocked, live container
	nearly     int // front of a near-unlock container, or one reveal away
	total      int
}

// actionable reports whether enough copies are reachable (now or one
// step away) to work toward a triple with this type.
func (a typeAccess) actionable() bool {
	return a.accessible+a.nearly >= 2
}

// analyzeAccess classifies every item type on the board. Accessible
// items sit at the front of an unlocked container; nearly accessible
// items either sit at the front of a container within nearUnlockWindow
// matches of unlocking, or directly behind a movable front item.
func analyzeAccess(b *Board) []typeAccess {
	access := make([]typeAccess, b.TypeCount())

	for i := range b.Containers {
		c := &b.Containers[i]
		if c.Despawned {
			continue
		}
		nearUnlock := c.Locked && c.UnlockMatchesRequired-c.UnlockProgress <= nearUnlockWindow

		for s := range c.slots {
			for r, item := range c.slots[s] {
				a := &access[item]
				a.total++
				switch {
				case r == 0 && !c.Locked:
					a.accessible++
				case r == 0 && nearUnlock:
					a.nearly++
				case r == 1 && !c.Locked:
					a.nearly++
				}
			}
		}
	}

	return access
}

// hasWaitingPair reports whether some unlocked matchable container holds
// two front items of the given type plus an empty slot for the third.
func hasWaitingPair(b *Board, item ItemType) bool {
	for i := range b.Containers {
		c := &b.Containers[i]
		if c.Locked || c.Despawned || c.SlotCount < matchSize {
			continue
		}
		if c.FrontCount(item) == matchSize-1 && c.EmptyFrontSlots() >= 1 {
			return true
		}
	}
	return false
}

// frontAccessibleCount counts copies of an item type at the front of
// unlocked, live containers.
func frontAccessibleCount(b *Board, item ItemType) int {
	n := 0
	for i := range b.Containers {
		c := &b.Containers[i]
		if c.Locked || c.Despawned {
			continue
		}
		n += c.FrontCount(item)
	}
	return n
}
