package solver

import "strings"

// The scorer assigns each candidate move a scalar on a unified scale;
// higher is preferred. Signals are independent deltas on a zero base.
// Pair, reveal and penalty deltas are also accumulated separately so a
// Strategy can rescale each family.

const (
	oneMoveMatchScore = 999 // immediate matches are always taken

	reversalPenalty = 1000 // undoing the previous move
	patternPenalty  = 500  // repeating a recent shuttle
)

// scoreMove scores a single candidate against the current board.
// The board is not mutated; simulation happens on clones.
func scoreMove(b *Board, m Move, access []typeAccess, strat Strategy) (int, string) {
	score := 0
	var reasons []string

	var pairContrib, revealContrib, penaltyContrib int

	from := &b.Containers[m.FromContainer]
	to := &b.Containers[m.ToContainer]

	acc := access[m.Item]
	destItems := to.FrontRowItems()
	matchingAtDest := to.FrontCount(m.Item)

	// One ply ahead: the board after the move, before match resolution.
	test := b.Clone()
	test.relocate(m)

	// Match-enabling bonuses.
	creditedPair := false
	tempLocation := false
	if test.wouldMatch() {
		score += 200
		reasons = append(reasons, "creates match")
	} else if followUp := findOneMoveMatch(test); followUp != nil {
		switch {
		case matchingAtDest >= 1:
			score += 120
			creditedPair = true
			reasons = append(reasons, "enables match + creates pair")
		case len(destItems) == 0:
			score += 80
			reasons = append(reasons, "enables match (to empty)")
		default:
			score += 40
			tempLocation = true
			reasons = append(reasons, "enables match (temp location)")
		}

		// Follow-up quality: reveals at its source, chains into another.
		fuFrom := &test.Containers[followUp.FromContainer]
		if fuFrom.SlotDepth(followUp.FromSlot) > 1 {
			score += 30
			revealContrib += 30
			reasons = append(reasons, "follow-up reveals")
		}
		fuState := test.Clone()
		fuState.Apply(*followUp)
		if findOneMoveMatch(fuState) != nil {
			score += 15
			revealContrib += 15
			reasons = append(reasons, "follow-up chains into match")
		}
	}

	// Pairing.
	pairRoomWillOpen := false
	if matchingAtDest == 1 && !creditedPair {
		thirdAccessible := acc.accessible >= matchSize
		thirdNearly := acc.accessible+acc.nearly >= matchSize
		hasRoomForThird := to.EmptyFrontSlots() >= 2

		switch {
		case thirdAccessible && hasRoomForThird:
			score += 180
			pairContrib += 180
			reasons = append(reasons, "creates completable pair")
		case thirdAccessible:
			score -= 50
			pairContrib -= 50
			reasons = append(reasons, "creates blocked pair (no room for 3rd)")
		case thirdNearly && hasRoomForThird:
			if to.HasBackItem(m.Item) {
				score -= 200
				pairContrib -= 200
				reasons = append(reasons, "self-blocking pair (3rd hidden here)")
			} else {
				score += 100
				pairContrib += 100
				reasons = append(reasons, "creates near-completable pair")
			}
		case hasRoomForThird:
			score += 20
			pairContrib += 20
			reasons = append(reasons, "creates waiting pair (3rd hidden)")
			if to.HasBackItems() {
				score -= 80
				pairContrib -= 80
				reasons = append(reasons, "pair blocks reveals")
			}
		default:
			// Worst pair: third hidden and no room. Exempt it when every
			// blocking type at the destination is fully accessible
			// elsewhere, because that room is expected to open anyway.
			if roomWillOpen(test, destItems, m.Item) {
				score += 30
				pairContrib += 30
				pairRoomWillOpen = true
				reasons = append(reasons, "creates pair (room will open)")
			} else {
				score -= 100
				pairContrib -= 100
				reasons = append(reasons, "creates useless pair (hidden + blocked)")
			}
		}
	} else if matchingAtDest == 0 && len(destItems) > 0 && !tempLocation {
		score -= 10
		penaltyContrib -= 10
		reasons = append(reasons, "mixes items")
	}

	// Self-blocking check on the enables-match path too.
	if creditedPair && to.HasBackItem(m.Item) {
		score -= 200
		pairContrib -= 200
		reasons = append(reasons, "self-blocking pair (3rd hidden here)")
	}

	// Actionability.
	if acc.actionable() {
		score += 30
		reasons = append(reasons, "actionable item")
	} else if !hasUsefulReason(reasons) {
		score -= 40
		penaltyContrib -= 40
		reasons = append(reasons, "stuck item shuffle")
	}

	// Pair destruction: pulling one item out of an existing front pair.
	if from.FrontCount(m.Item) == matchSize-1 && matchingAtDest != matchSize-1 {
		if acc.accessible >= matchSize {
			if from.EmptyFrontSlots() >= 1 {
				score -= 150
				pairContrib -= 150
				reasons = append(reasons, "destroys completable pair")
			} else {
				score -= 30
				pairContrib -= 30
				reasons = append(reasons, "breaks blocked pair")
			}
		}
	}

	// Row advancement: the source slot surfaces its next back item.
	revealsItem := from.SlotDepth(m.FromSlot) > 1
	if revealsItem {
		score += 60
		revealContrib += 60
		reasons = append(reasons, "reveals back-row item")

		revealed := from.slots[m.FromSlot][1]
		if hasWaitingPair(b, revealed) {
			score += 80
			revealContrib += 80
			reasons = append(reasons, "reveals item for waiting pair")
		}

		// Combo: building a pair while keeping stock flowing.
		if matchingAtDest == 1 && acc.accessible >= matchSize {
			score += 60
			revealContrib += 60
			reasons = append(reasons, "combo: completable pair + reveal")
		} else if matchingAtDest == 1 && acc.accessible+acc.nearly >= matchSize {
			score += 50
			revealContrib += 50
			reasons = append(reasons, "combo: near-pair + reveal")
		}
	}

	// Leaving a pair exposed at the source front row.
	if exposesSourcePair(from, m) {
		score += 25
		pairContrib += 25
		reasons = append(reasons, "exposes source pair")
	}

	// Destination quality: occupying the last empty front slot reduces
	// flexibility unless the room-will-open exemption holds.
	if to.EmptyFrontSlots() <= 1 && !pairRoomWillOpen {
		score -= 15
		penaltyContrib -= 15
		reasons = append(reasons, "fills container")
	}

	// Deadlock prevention: how tight is the board after this move?
	deadlockTest := test.Clone()
	matchesFromMove := deadlockTest.ResolveMatches()
	if matchesFromMove == 0 {
		emptySlots, nearUnlocks := boardBreathingRoom(deadlockTest)
		switch {
		case emptySlots == 0 && nearUnlocks == 0:
			score -= 500
			penaltyContrib -= 500
			reasons = append(reasons, "deadlock: leaves 0 empty slots")
		case emptySlots == 0:
			score -= 150
			penaltyContrib -= 150
			reasons = append(reasons, "tight board (unlocks coming)")
		case emptySlots == 1 && nearUnlocks == 0:
			score -= 100
			penaltyContrib -= 100
			reasons = append(reasons, "near-deadlock: 1 empty slot left")
		case emptySlots <= 2 && nearUnlocks == 0:
			score -= 30
			penaltyContrib -= 30
			reasons = append(reasons, "low slots remaining")
		}
	}

	// Staging into an empty container.
	if len(destItems) == 0 && matchingAtDest == 0 {
		if revealsItem {
			score += 20
			reasons = append(reasons, "productive staging")
		} else {
			score -= 5
			penaltyContrib -= 5
			reasons = append(reasons, "staging move")
		}
	}

	// A roomy source with an actionable item could host its own triple;
	// shipping the item elsewhere disrupts that.
	if from.EmptyFrontSlots() >= 2 && acc.actionable() && matchingAtDest == 0 && !revealsItem {
		score -= 35
		penaltyContrib -= 35
		reasons = append(reasons, "disrupts match-in-place potential")
	}

	// Completing a triple at a container that still hides stock clears
	// the lid off everything behind it.
	willComplete := matchingAtDest >= matchSize-1 ||
		(matchingAtDest == 1 && acc.accessible >= matchSize)
	if to.HasBackItems() && matchingAtDest >= 1 && willComplete {
		hidden := to.BackItemCount()
		bonus := 50 + hidden*20
		score += bonus
		revealContrib += bonus
		reasons = append(reasons, "triple reveals hidden items")

		if hasOtherHiddenType(to, m.Item) {
			score += 30
			revealContrib += 30
			reasons = append(reasons, "clears container for revealed items")
		}
	}

	// Strategy weights rescale each contribution family.
	score += int(float64(pairContrib) * (strat.PairWeight - 1.0))
	score += int(float64(revealContrib) * (strat.RevealWeight - 1.0))
	score += int(float64(penaltyContrib) * (strat.CautionWeight - 1.0))

	if len(reasons) == 0 {
		return score, "neutral"
	}
	return score, strings.Join(reasons, ", ")
}

// hasUsefulReason reports whether the move already earned a
// match-oriented credit.
func hasUsefulReason(reasons []string) bool {
	for _, r := range reasons {
		if strings.HasPrefix(r, "creates match") || strings.HasPrefix(r, "enables match") {
			return true
		}
	}
	return false
}

// roomWillOpen reports whether every non-matching type at the
// destination front row is fully accessible on the board after the
// move, meaning the destination is expected to clear soon anyway.
func roomWillOpen(after *Board, destItems []ItemType, moved ItemType) bool {
	blocking := make(map[ItemType]bool)
	for _, it := range destItems {
		if it != moved {
			blocking[it] = true
		}
	}
	if len(blocking) == 0 {
		return false
	}
	for it := range blocking {
		if frontAccessibleCount(after, it) < matchSize {
			return false
		}
	}
	return true
}

// exposesSourcePair reports whether the source front row, minus the
// moved item, still shows two of a kind.
func exposesSourcePair(from *Container, m Move) bool {
	counts := make(map[ItemType]int)
	for s := 0; s < from.SlotCount; s++ {
		if s == m.FromSlot {
			continue
		}
		if it := from.FrontItem(s); it != NoItem {
			counts[it]++
		}
	}
	for _, n := range counts {
		if n >= matchSize-1 {
			return true
		}
	}
	return false
}

// hasOtherHiddenType reports whether the container hides an item of a
// different type than the one being matched.
func hasOtherHiddenType(c *Container, item ItemType) bool {
	for _, hidden := range c.BackItemTypes() {
		if hidden != item {
			return true
		}
	}
	return false
}

// boardBreathingRoom counts empty front slots across unlocked live
// containers and locked containers within the near-unlock window.
func boardBreathingRoom(b *Board) (emptySlots, nearUnlocks int) {
	for i := range b.Containers {
		c := &b.Containers[i]
		if c.Despawned {
			continue
		}
		if c.Locked {
			if c.UnlockMatchesRequired-c.UnlockProgress <= nearUnlockWindow {
				nearUnlocks++
			}
			continue
		}
		emptySlots += c.EmptyFrontSlots()
	}
	return emptySlots, nearUnlocks
}

// findOneMoveMatch looks for a move that completes a match right now: a
// container one slot short of a uniform front row, with a copy of that
// type movable from elsewhere. When several exist it prefers the one
// with the most reveal potential; ties resolve in board order, keeping
// selection deterministic.
func findOneMoveMatch(b *Board) *Move {
	var best *Move
	bestScore := -1

	for ci := range b.Containers {
		c := &b.Containers[ci]
		if c.Locked || c.Despawned || c.SlotCount < matchSize {
			continue
		}
		emptySlot := c.FirstEmptySlot()
		if emptySlot < 0 || c.EmptyFrontSlots() != 1 {
			continue
		}
		// One empty slot left; a match needs the rest of the front uniform.
		front := c.FrontRowItems()
		needed := front[0]
		uniform := true
		for _, it := range front[1:] {
			if it != needed {
				uniform = false
				break
			}
		}
		if !uniform {
			continue
		}

		for oci := range b.Containers {
			if oci == ci {
				continue
			}
			other := &b.Containers[oci]
			if !canSend(other) {
				continue
			}
			for os := 0; os < other.SlotCount; os++ {
				target := other.FrontItem(os)
				if target != needed {
					continue
				}

				reveal := 0
				if other.SlotDepth(os) > 1 {
					reveal += 120
					if hasWaitingPair(b, other.slots[os][1]) {
						reveal += 50
					}
				}
				if c.HasBackItems() {
					reveal += 50 + 15*c.BackItemCount()
				}

				if reveal > bestScore {
					bestScore = reveal
					best = &Move{
						FromContainer: oci,
						FromSlot:      os,
						ToContainer:   ci,
						ToSlot:        emptySlot,
						Item:          target,
					}
				}
			}
		}
	}

	return best
}
