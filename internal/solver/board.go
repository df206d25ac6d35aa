// Package solver implements the heuristic solvability and difficulty
// engine for sorting levels: a board simulation, legal move enumeration,
// a weighted move scorer and a greedy single-ply search. The entry
// points SolveLevel and SolveLevelBest report every outcome as data in
// a SolveResult; they never panic on solvable-or-not questions.
package solver

import "github.com/warmaxegames/sort-resort-solver/internal/level"

// ItemType is an item type interned to a dense integer for cheap
// equality checks in the enumeration and scoring hot path. Values are
// indices into the owning Board's type table.
type ItemType int16

// NoItem marks an empty cell.
const NoItem ItemType = -1

// matchSize is the number of identical front-row items that clear as a
// unit. Containers with fewer slots never match; they act as buffers.
const matchSize = 3

// Container is the mutable solve-time state of one container.
// Slot stacks are slot-major with index 0 at the front; stacks are
// compact, so an empty front means an empty slot.
type Container struct {
	ID        string
	SlotCount int
	MaxRows   int

	Locked                bool
	UnlockMatchesRequired int
	UnlockProgress        int

	DespawnOnMatch bool
	Despawned      bool

	slots [][]ItemType
}

func (c *Container) clone() Container {
	out := *c
	out.slots = make([][]ItemType, len(c.slots))
	for i, s := range c.slots {
		out.slots[i] = append(make([]ItemType, 0, cap(s)), s...)
	}
	return out
}

// FrontItem returns the front item of a slot, or NoItem.
func (c *Container) FrontItem(slot int) ItemType {
	if slot < 0 || slot >= len(c.slots) || len(c.slots[slot]) == 0 {
		return NoItem
	}
	return c.slots[slot][0]
}

// FrontEmpty reports whether a slot has no front item.
func (c *Container) FrontEmpty(slot int) bool {
	return c.FrontItem(slot) == NoItem
}

// EmptyFrontSlots returns how many slots have an empty front.
func (c *Container) EmptyFrontSlots() int {
	n := 0
	for s := 0; s < c.SlotCount; s++ {
		if c.FrontEmpty(s) {
			n++
		}
	}
	return n
}

// FirstEmptySlot returns the lowest-index slot with an empty front, or -1.
func (c *Container) FirstEmptySlot() int {
	for s := 0; s < c.SlotCount; s++ {
		if c.FrontEmpty(s) {
			return s
		}
	}
	return -1
}

// OccupiedFrontSlots returns how many slots have a front item.
func (c *Container) OccupiedFrontSlots() int {
	return c.SlotCount - c.EmptyFrontSlots()
}

// FrontRowItems returns the front items of all occupied slots.
func (c *Container) FrontRowItems() []ItemType {
	items := make([]ItemType, 0, c.SlotCount)
	for s := 0; s < c.SlotCount; s++ {
		if it := c.FrontItem(s); it != NoItem {
			items = append(items, it)
		}
	}
	return items
}

// FrontCount returns how many front items equal the given type.
func (c *Container) FrontCount(item ItemType) int {
	n := 0
	for s := 0; s < c.SlotCount; s++ {
		if c.FrontItem(s) == item {
			n++
		}
	}
	return n
}

// SlotDepth returns the stack depth of a slot.
func (c *Container) SlotDepth(slot int) int {
	if slot < 0 || slot >= len(c.slots) {
		return 0
	}
	return len(c.slots[slot])
}

// HasBackItems reports whether any slot hides items behind its front.
func (c *Container) HasBackItems() bool {
	for s := range c.slots {
		if len(c.slots[s]) > 1 {
			return true
		}
	}
	return false
}

// BackItemCount returns the total number of hidden (non-front) items.
func (c *Container) BackItemCount() int {
	n := 0
	for s := range c.slots {
		if len(c.slots[s]) > 1 {
			n += len(c.slots[s]) - 1
		}
	}
	return n
}

// BackItemTypes returns the hidden items across all slots.
func (c *Container) BackItemTypes() []ItemType {
	var items []ItemType
	for s := range c.slots {
		for r := 1; r < len(c.slots[s]); r++ {
			items = append(items, c.slots[s][r])
		}
	}
	return items
}

// HasBackItem reports whether the given type is hidden in any slot.
func (c *Container) HasBackItem(item ItemType) bool {
	for s := range c.slots {
		for r := 1; r < len(c.slots[s]); r++ {
			if c.slots[s][r] == item {
				return true
			}
		}
	}
	return false
}

// RevealedOnAdvance returns the items that would surface if each
// currently occupied front were removed: the row-1 item of every slot
// with depth > 1.
func (c *Container) RevealedOnAdvance() []ItemType {
	var items []ItemType
	for s := range c.slots {
		if len(c.slots[s]) > 1 {
			items = append(items, c.slots[s][1])
		}
	}
	return items
}

// IsEmpty reports whether the container holds no items at all.
func (c *Container) IsEmpty() bool {
	for s := range c.slots {
		if len(c.slots[s]) > 0 {
			return false
		}
	}
	return true
}

// TotalItems returns the number of items in the container.
func (c *Container) TotalItems() int {
	n := 0
	for s := range c.slots {
		n += len(c.slots[s])
	}
	return n
}

// Board is an isolated simulation of level state. It is built by
// cloning the input level, so solving never mutates caller data, and it
// is exclusively owned by a single solve attempt.
type Board struct {
	Containers []Container

	MoveCount  int
	MatchCount int

	typeNames []string
}

// NewBoard builds a Board from a level description. Item types are
// interned; placements outside a container's bounds are ignored, as the
// generator never emits them. The input level is read-only here.
func NewBoard(lvl *level.Level) *Board {
	b := &Board{
		Containers: make([]Container, 0, len(lvl.Containers)),
	}
	index := make(map[string]ItemType)

	for i := range lvl.Containers {
		def := &lvl.Containers[i]
		slotCount := def.SlotCount
		if slotCount <= 0 {
			slotCount = level.DefaultSlotCount
		}
		maxRows := def.MaxRowsPerSlot
		if maxRows <= 0 {
			maxRows = level.DefaultMaxRowsPerSlot
		}

		c := Container{
			ID:                    def.ID,
			SlotCount:             slotCount,
			MaxRows:               maxRows,
			Locked:                def.IsLocked,
			UnlockMatchesRequired: def.UnlockMatchesRequired,
			DespawnOnMatch:        def.DespawnOnMatch,
			slots:                 make([][]ItemType, slotCount),
		}

		// Place by (slot, row) into a scratch grid, then compact each
		// slot into a front-first stack.
		grid := make([][]ItemType, slotCount)
		for s := range grid {
			grid[s] = make([]ItemType, maxRows)
			for r := range grid[s] {
				grid[s][r] = NoItem
			}
		}
		for _, item := range def.InitialItems {
			if item.Slot < 0 || item.Slot >= slotCount || item.Row < 0 || item.Row >= maxRows {
				continue
			}
			id, ok := index[item.ID]
			if !ok {
				id = ItemType(len(b.typeNames))
				index[item.ID] = id
				b.typeNames = append(b.typeNames, item.ID)
			}
			grid[item.Slot][item.Row] = id
		}
		for s := range grid {
			stack := make([]ItemType, 0, maxRows)
			for _, it := range grid[s] {
				if it != NoItem {
					stack = append(stack, it)
				}
			}
			c.slots[s] = stack
		}

		b.Containers = append(b.Containers, c)
	}

	return b
}

// Clone deep-copies the board.
func (b *Board) Clone() *Board {
	out := &Board{
		Containers: make([]Container, len(b.Containers)),
		MoveCount:  b.MoveCount,
		MatchCount: b.MatchCount,
		typeNames:  b.typeNames,
	}
	for i := range b.Containers {
		out.Containers[i] = b.Containers[i].clone()
	}
	return out
}

// TypeName resolves an interned item type back to its string id.
func (b *Board) TypeName(item ItemType) string {
	if item < 0 || int(item) >= len(b.typeNames) {
		return ""
	}
	return b.typeNames[int(item)]
}

// TypeCount returns the number of distinct item types on the board.
func (b *Board) TypeCount() int {
	return len(b.typeNames)
}

// TotalItems returns the number of items remaining on the board.
func (b *Board) TotalItems() int {
	n := 0
	for i := range b.Containers {
		n += b.Containers[i].TotalItems()
	}
	return n
}

// IsClear reports whether every slot of every container is empty.
func (b *Board) IsClear() bool {
	return b.TotalItems() == 0
}

// relocate moves the front item of the source slot to the destination
// slot and increments the move counter. Row advancement is implicit:
// removing a stack front exposes the item behind it. The move must be
// legal; only enumerator output is ever applied.
func (b *Board) relocate(m Move) {
	from := &b.Containers[m.FromContainer]
	to := &b.Containers[m.ToContainer]

	from.slots[m.FromSlot] = from.slots[m.FromSlot][1:]
	to.slots[m.ToSlot] = append(to.slots[m.ToSlot], m.Item)
	b.MoveCount++
}

// wouldMatch reports whether any matchable container currently has a
// full, uniform front row.
func (b *Board) wouldMatch() bool {
	for i := range b.Containers {
		if b.containerMatches(&b.Containers[i]) {
			return true
		}
	}
	return false
}

func (b *Board) containerMatches(c *Container) bool {
	if c.SlotCount < matchSize || c.Despawned {
		return false
	}
	first := c.FrontItem(0)
	if first == NoItem {
		return false
	}
	for s := 1; s < c.SlotCount; s++ {
		if c.FrontItem(s) != first {
			return false
		}
	}
	return true
}

// ResolveMatches clears full uniform front rows to a fixed point and
// returns how many matches fired. Each match increments the global
// tally, advances every locked container's unlock progress (a container
// unlocks the instant its threshold is reached, wherever the match
// occurred), and despawns a flagged container that it leaves empty.
func (b *Board) ResolveMatches() int {
	total := 0
	for {
		fired := false
		for i := range b.Containers {
			c := &b.Containers[i]
			if !b.containerMatches(c) {
				continue
			}
			for s := 0; s < c.SlotCount; s++ {
				c.slots[s] = c.slots[s][1:]
			}
			b.MatchCount++
			total++
			fired = true

			for j := range b.Containers {
				other := &b.Containers[j]
				if !other.Locked {
					continue
				}
				other.UnlockProgress++
				if other.UnlockProgress >= other.UnlockMatchesRequired {
					other.Locked = false
				}
			}

			if c.DespawnOnMatch && c.IsEmpty() {
				c.Despawned = true
			}
		}
		if !fired {
			return total
		}
	}
}

// Apply executes a move and resolves any resulting matches, returning
// the number of matches fired. Applying a move the enumerator did not
// produce is a contract violation; the board does not re-validate.
func (b *Board) Apply(m Move) int {
	b.relocate(m)
	return b.ResolveMatches()
}
