package main

import (
	"os"
	"path/filepath"
	"testing"
)

const passingLevel = `{
  "id": 1,
  "name": "level_001",
  "containers": [
    {
      "id": "a",
      "slot_count": 3,
      "max_rows_per_slot": 1,
      "initial_items": [
        {"id": "apple", "slot": 0, "row": 0},
        {"id": "apple", "slot": 1, "row": 0},
        {"id": "apple", "slot": 2, "row": 0}
      ]
    }
  ]
}`

const failingLevel = `{
  "id": 2,
  "name": "level_002",
  "containers": [
    {
      "id": "a",
      "slot_count": 3,
      "max_rows_per_slot": 1,
      "initial_items": [
        {"id": "pear", "slot": 0, "row": 0},
        {"id": "pear", "slot": 1, "row": 0}
      ]
    },
    {"id": "b", "slot_count": 3, "max_rows_per_slot": 1}
  ]
}`

func writeBatchWorld(t *testing.T, levels map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "world_1")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, body := range levels {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// Failed levels surface as an error return, not a process exit, so
// deferred cleanup (the results database handle) still runs.
func TestRunBatchReportsFailuresAsError(t *testing.T) {
	flagBatchNoStore = true
	t.Cleanup(func() { flagBatchNoStore = false })

	dir := writeBatchWorld(t, map[string]string{
		"level_001.json": passingLevel,
		"level_002.json": failingLevel,
	})
	if err := runBatch(batchCmd, []string{dir}); err == nil {
		t.Error("expected an error when levels fail")
	}

	dir = writeBatchWorld(t, map[string]string{"level_001.json": passingLevel})
	if err := runBatch(batchCmd, []string{dir}); err != nil {
		t.Errorf("clean world returned error: %v", err)
	}
}
