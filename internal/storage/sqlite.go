// Package storage provides SQLite-based persistence for batch solver
// runs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/warmaxegames/sort-resort-solver/internal/solver"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run represents one batch validation run over a world's levels.
type Run struct {
	ID           string
	World        string
	LevelsTotal  int
	LevelsSolved int
	CreatedAt    time.Time
}

// LevelResult is one level's outcome within a run.
type LevelResult struct {
	ID            int64
	RunID         string
	LevelName     string
	Success       bool
	TotalMoves    int
	TotalMatches  int
	FailureReason string
	Strategy      string
	ElapsedMs     float64
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			world TEXT NOT NULL,
			levels_total INTEGER NOT NULL DEFAULT 0,
			levels_solved INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_world ON runs(world, created_at DESC);

		CREATE TABLE IF NOT EXISTS level_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			level_name TEXT NOT NULL,
			success INTEGER NOT NULL,
			total_moves INTEGER NOT NULL DEFAULT 0,
			total_matches INTEGER NOT NULL DEFAULT 0,
			failure_reason TEXT,
			strategy TEXT,
			elapsed_ms REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_results_run ON level_results(run_id);
		CREATE INDEX IF NOT EXISTS idx_level_results_level ON level_results(level_name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateRun records the start of a batch run and returns its ID.
func (s *Store) CreateRun(world string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO runs (id, world) VALUES (?, ?)",
		id, world,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot create run: %w", err)
	}
	return id, nil
}

// FinishRun stores the final tallies of a run.
func (s *Store) FinishRun(runID string, total, solved int) error {
	_, err := s.db.Exec(
		"UPDATE runs SET levels_total = ?, levels_solved = ? WHERE id = ?",
		total, solved, runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	return nil
}

// SaveLevelResult records one level's solve outcome for a run.
// Returns the ID of the inserted record.
func (s *Store) SaveLevelResult(runID, levelName string, res solver.SolveResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO level_results
		 (run_id, level_name, success, total_moves, total_matches, failure_reason, strategy, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, levelName, boolToInt(res.Success), res.TotalMoves, res.TotalMatches,
		res.FailureReason.String(), res.Strategy, res.ElapsedMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, world, levels_total, levels_solved, created_at
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.World, &r.LevelsTotal, &r.LevelsSolved, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunResults retrieves every level result of a run, in level order.
func (s *Store) RunResults(runID string) ([]LevelResult, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, level_name, success, total_moves, total_matches,
		        failure_reason, strategy, elapsed_ms, created_at
		 FROM level_results
		 WHERE run_id = ?
		 ORDER BY level_name`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var lr LevelResult
		var success int
		var createdAt any
		if err := rows.Scan(&lr.ID, &lr.RunID, &lr.LevelName, &success, &lr.TotalMoves,
			&lr.TotalMatches, &lr.FailureReason, &lr.Strategy, &lr.ElapsedMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		lr.Success = success != 0
		lr.CreatedAt = parseTimestamp(createdAt)
		results = append(results, lr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Regressions returns levels of a world that solved in the previous run
// but failed in the latest one. Needs at least two recorded runs.
func (s *Store) Regressions(world string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT id FROM runs WHERE world = ? ORDER BY created_at DESC, rowid DESC LIMIT 2`,
		world,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	var runIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runIDs = append(runIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	if len(runIDs) < 2 {
		return nil, nil
	}

	latest, previous := runIDs[0], runIDs[1]
	rows, err = s.db.Query(
		`SELECT cur.level_name
		 FROM level_results cur
		 JOIN level_results prev
		   ON prev.level_name = cur.level_name AND prev.run_id = ?
		 WHERE cur.run_id = ? AND cur.success = 0 AND prev.success = 1
		 ORDER BY cur.level_name`,
		previous, latest,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query regressions: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return names, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTimestamp handles both time.Time and string values from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
