package storage

import (
	"path/filepath"
	"testing"

	"github.com/warmaxegames/sort-resort-solver/internal/solver"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "results.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.Close()
}

func TestRunRoundTrip(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.CreateRun("world_1")
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if runID == "" {
		t.Fatal("CreateRun returned empty ID")
	}

	solved := solver.SolveResult{
		Success:      true,
		TotalMoves:   14,
		TotalMatches: 6,
		Strategy:     "balanced",
		ElapsedMs:    3.5,
	}
	failed := solver.SolveResult{
		Success:       false,
		FailureReason: solver.FailureStuck,
		Strategy:      "cautious",
	}

	if _, err := store.SaveLevelResult(runID, "level_001", solved); err != nil {
		t.Fatalf("SaveLevelResult: %v", err)
	}
	if _, err := store.SaveLevelResult(runID, "level_002", failed); err != nil {
		t.Fatalf("SaveLevelResult: %v", err)
	}
	if err := store.FinishRun(runID, 2, 1); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("RecentRuns returned %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != runID || run.World != "world_1" {
		t.Errorf("run = %q %q", run.ID, run.World)
	}
	if run.LevelsTotal != 2 || run.LevelsSolved != 1 {
		t.Errorf("tallies = %d/%d, want 2/1", run.LevelsSolved, run.LevelsTotal)
	}

	results, err := store.RunResults(runID)
	if err != nil {
		t.Fatalf("RunResults: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("RunResults returned %d rows, want 2", len(results))
	}
	if results[0].LevelName != "level_001" || results[1].LevelName != "level_002" {
		t.Errorf("order = %q, %q", results[0].LevelName, results[1].LevelName)
	}
	if !results[0].Success || results[0].TotalMoves != 14 || results[0].TotalMatches != 6 {
		t.Errorf("solved row = %+v", results[0])
	}
	if results[0].Strategy != "balanced" || results[0].ElapsedMs != 3.5 {
		t.Errorf("solved row meta = %+v", results[0])
	}
	if results[1].Success {
		t.Error("failed row marked successful")
	}
	if results[1].FailureReason != solver.FailureStuck.String() {
		t.Errorf("failure reason = %q", results[1].FailureReason)
	}
}

func TestRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := store.CreateRun("world_1")
		if err != nil {
			t.Fatalf("CreateRun: %v", err)
		}
		ids = append(ids, id)
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	// Newest first.
	for i, want := range []string{ids[4], ids[3], ids[2]} {
		if runs[i].ID != want {
			t.Errorf("runs[%d].ID = %q, want %q", i, runs[i].ID, want)
		}
	}
}

func TestRegressions(t *testing.T) {
	store := openTestStore(t)

	saveOutcome := func(runID, name string, ok bool) {
		t.Helper()
		res := solver.SolveResult{Success: ok}
		if !ok {
			res.FailureReason = solver.FailureStuck
		}
		if _, err := store.SaveLevelResult(runID, name, res); err != nil {
			t.Fatalf("SaveLevelResult: %v", err)
		}
	}

	first, err := store.CreateRun("world_1")
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	saveOutcome(first, "level_001", true)
	saveOutcome(first, "level_002", true)
	saveOutcome(first, "level_003", false)

	names, err := store.Regressions("world_1")
	if err != nil {
		t.Fatalf("Regressions: %v", err)
	}
	if names != nil {
		t.Errorf("regressions with one run = %v, want none", names)
	}

	second, err := store.CreateRun("world_1")
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	saveOutcome(second, "level_001", true)
	saveOutcome(second, "level_002", false) // regressed
	saveOutcome(second, "level_003", false) // already failing

	names, err = store.Regressions("world_1")
	if err != nil {
		t.Fatalf("Regressions: %v", err)
	}
	if len(names) != 1 || names[0] != "level_002" {
		t.Errorf("regressions = %v, want [level_002]", names)
	}

	// Other worlds are not consulted.
	names, err = store.Regressions("world_2")
	if err != nil {
		t.Fatalf("Regressions: %v", err)
	}
	if names != nil {
		t.Errorf("regressions for unknown world = %v", names)
	}
}
