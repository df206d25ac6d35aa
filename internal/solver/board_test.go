package solver

import (
	"testing"

	"github.com/warmaxegames/sort-resort-solver/internal/level"
)

// at places an item at (slot, row) for test levels.
func at(item string, slot, row int) level.ItemPlacement {
	return level.ItemPlacement{ID: item, Slot: slot, Row: row}
}

// tc builds a test container with the given shape and items.
func tc(id string, slotCount, maxRows int, items ...level.ItemPlacement) level.Container {
	return level.Container{
		ID:             id,
		SlotCount:      slotCount,
		MaxRowsPerSlot: maxRows,
		InitialItems:   items,
	}
}

// locked marks a test container locked with the given threshold.
func locked(c level.Container, matches int) level.Container {
	c.IsLocked = true
	c.UnlockMatchesRequired = matches
	return c
}

// despawning marks a test container despawn-on-match.
func despawning(c level.Container) level.Container {
	c.DespawnOnMatch = true
	return c
}

// lvl builds a test level from containers.
func lvl(containers ...level.Container) *level.Level {
	return &level.Level{Name: "test_level", Containers: containers}
}

// mustMove finds the enumerated move between two container IDs, failing
// the test when absent.
func mustMove(t *testing.T, b *Board, fromID, toID string) Move {
	t.Helper()
	for _, m := range LegalMoves(b) {
		if b.Containers[m.FromContainer].ID == fromID && b.Containers[m.ToContainer].ID == toID {
			return m
		}
	}
	t.Fatalf("no legal move from %s to %s", fromID, toID)
	return Move{}
}

func TestNewBoardInternsTypes(t *testing.T) {
	b := NewBoard(lvl(
		tc("c1", 3, 2, at("apple", 0, 0), at("pear", 1, 0), at("apple", 0, 1)),
	))

	if got := b.TypeCount(); got != 2 {
		t.Fatalf("TypeCount() = %d, want 2", got)
	}
	if got := b.TotalItems(); got != 3 {
		t.Fatalf("TotalItems() = %d, want 3", got)
	}

	c := &b.Containers[0]
	if name := b.TypeName(c.FrontItem(0)); name != "apple" {
		t.Errorf("front of slot 0 = %q, want apple", name)
	}
	if got := c.SlotDepth(0); got != 2 {
		t.Errorf("SlotDepth(0) = %d, want 2", got)
	}
	if !c.HasBackItem(c.FrontItem(0)) {
		t.Error("expected a hidden apple behind slot 0")
	}
}

func TestApplyAdvancesSourceSlot(t *testing.T) {
	b := NewBoard(lvl(
		tc("c1", 3, 2, at("X", 0, 0), at("Y", 0, 1)),
		tc("c2", 3, 1),
	))

	m := mustMove(t, b, "c1", "c2")
	if name := b.TypeName(m.Item); name != "X" {
		t.Fatalf("move item = %q, want X", name)
	}

	if matches := b.Apply(m); matches != 0 {
		t.Fatalf("Apply() fired %d matches, want 0", matches)
	}

	// The hidden Y advances to the front the moment X leaves.
	if name := b.TypeName(b.Containers[0].FrontItem(0)); name != "Y" {
		t.Errorf("front of c1 slot 0 = %q, want Y", name)
	}
	if b.MoveCount != 1 {
		t.Errorf("MoveCount = %d, want 1", b.MoveCount)
	}
}

func TestApplyResolvesMatch(t *testing.T) {
	b := NewBoard(lvl(
		tc("c1", 3, 1, at("X", 0, 0), at("X", 1, 0)),
		tc("c2", 3, 1, at("X", 2, 0)),
	))

	m := mustMove(t, b, "c2", "c1")
	if matches := b.Apply(m); matches != 1 {
		t.Fatalf("Apply() fired %d matches, want 1", matches)
	}
	if !b.IsClear() {
		t.Error("board should be clear after the triple resolves")
	}
	if b.MatchCount != 1 {
		t.Errorf("MatchCount = %d, want 1", b.MatchCount)
	}
}

func TestChainMatchesAfterAdvance(t *testing.T) {
	// Front row A,A,A clears on load; the B row behind it advances and
	// clears as well.
	b := NewBoard(lvl(
		tc("c1", 3, 2,
			at("A", 0, 0), at("A", 1, 0), at("A", 2, 0),
			at("B", 0, 1), at("B", 1, 1), at("B", 2, 1)),
	))

	if matches := b.ResolveMatches(); matches != 2 {
		t.Fatalf("ResolveMatches() = %d, want 2", matches)
	}
	if !b.IsClear() {
		t.Error("board should be clear after chained matches")
	}
}

func TestSingleSlotContainerNeverMatches(t *testing.T) {
	b := NewBoard(lvl(
		tc("buffer", 1, 3, at("X", 0, 0), at("X", 0, 1), at("X", 0, 2)),
	))

	if matches := b.ResolveMatches(); matches != 0 {
		t.Fatalf("ResolveMatches() = %d, want 0 for a single-slot container", matches)
	}
	if b.TotalItems() != 3 {
		t.Errorf("TotalItems() = %d, want 3", b.TotalItems())
	}
}

func TestLockDecrementsOnEveryMatch(t *testing.T) {
	b := NewBoard(lvl(
		tc("c1", 3, 1, at("X", 0, 0), at("X", 1, 0)),
		tc("c2", 3, 1, at("X", 2, 0)),
		locked(tc("vault", 3, 1, at("Y", 0, 0)), 1),
		locked(tc("deep", 3, 1, at("Z", 0, 0)), 2),
	))

	vault := &b.Containers[2]
	deep := &b.Containers[3]
	if !vault.Locked || !deep.Locked {
		t.Fatal("locked containers should start locked")
	}

	// A match anywhere on the board decrements every lock counter.
	b.Apply(mustMove(t, b, "c2", "c1"))

	if vault.Locked {
		t.Error("vault should unlock the instant the match tally reaches 1")
	}
	if !deep.Locked {
		t.Error("deep should stay locked until a second match")
	}
	if deep.UnlockProgress != 1 {
		t.Errorf("deep.UnlockProgress = %d, want 1", deep.UnlockProgress)
	}
}

func TestDespawnAfterMatch(t *testing.T) {
	b := NewBoard(lvl(
		despawning(tc("crate", 3, 1, at("X", 0, 0), at("X", 1, 0))),
		tc("c2", 3, 1, at("X", 0, 0)),
	))

	b.Apply(mustMove(t, b, "c2", "crate"))

	if !b.Containers[0].Despawned {
		t.Fatal("crate should despawn once emptied by its match")
	}
}

func TestDespawnOnlyWhenEmpty(t *testing.T) {
	b := NewBoard(lvl(
		despawning(tc("crate", 3, 2,
			at("X", 0, 0), at("X", 1, 0), at("Y", 0, 1))),
		tc("c2", 3, 1, at("X", 0, 0)),
	))

	b.Apply(mustMove(t, b, "c2", "crate"))

	if b.Containers[0].Despawned {
		t.Fatal("crate still holds a Y; it must not despawn")
	}
	if name := b.TypeName(b.Containers[0].FrontItem(0)); name != "Y" {
		t.Errorf("front of crate slot 0 = %q, want Y", name)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(lvl(
		tc("c1", 3, 2, at("X", 0, 0), at("Y", 0, 1)),
		tc("c2", 3, 1),
	))

	clone := b.Clone()
	clone.Apply(mustMove(t, clone, "c1", "c2"))

	if b.MoveCount != 0 {
		t.Errorf("original MoveCount = %d, want 0", b.MoveCount)
	}
	if name := b.TypeName(b.Containers[0].FrontItem(0)); name != "X" {
		t.Errorf("original front = %q, want X", name)
	}
	if name := clone.TypeName(clone.Containers[0].FrontItem(0)); name != "Y" {
		t.Errorf("clone front = %q, want Y", name)
	}
}
