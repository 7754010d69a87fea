// Package store provides SQLite persistence for the run history.
//
// Every checking run is recorded with its settings, counters and the
// candidates it confirmed. The text result file remains the primary output;
// the store exists so past runs can be inspected after the fact.
//
// Store is safe for concurrent use. The underlying sql.DB handles connection
// pooling and serialization.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/abelbrown/vanity/internal/logging"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// Run is one recorded checking run.
type Run struct {
	ID          int64
	Endpoint    string
	Pattern     string
	MinLen      int
	MaxLen      int
	Source      string // "range" or "file"
	Generated   int64  // candidates produced
	Dispatched  int64  // verification requests issued
	Confirmed   int64  // candidates confirmed available
	Failed      int64  // requests swallowed by the best-effort policy
	Interrupted bool
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Store handles persistence of checking runs.
type Store struct {
	db *sql.DB
}

// Open creates a SQLite store at the given path. The database is created if
// it doesn't exist, and migrations are applied automatically.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logging.Info("Database initialized", "path", dbPath)
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		endpoint TEXT NOT NULL,
		pattern TEXT,
		min_len INTEGER,
		max_len INTEGER,
		source TEXT NOT NULL,
		generated INTEGER DEFAULT 0,
		dispatched INTEGER DEFAULT 0,
		confirmed INTEGER DEFAULT 0,
		failed INTEGER DEFAULT 0,
		interrupted INTEGER DEFAULT 0,
		started_at DATETIME NOT NULL,
		finished_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_endpoint ON runs(endpoint);

	CREATE TABLE IF NOT EXISTS confirmed (
		run_id INTEGER NOT NULL,
		candidate TEXT NOT NULL,
		PRIMARY KEY (run_id, candidate),
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_confirmed_candidate ON confirmed(candidate);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun records a finished run and its confirmed candidates.
// On success run.ID carries the assigned row id.
func (s *Store) SaveRun(run *Run, confirmed []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO runs (endpoint, pattern, min_len, max_len, source,
			generated, dispatched, confirmed, failed, interrupted,
			started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.Endpoint,
		run.Pattern,
		run.MinLen,
		run.MaxLen,
		run.Source,
		run.Generated,
		run.Dispatched,
		run.Confirmed,
		run.Failed,
		run.Interrupted,
		run.StartedAt,
		run.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO confirmed (run_id, candidate)
		VALUES (?, ?)
		ON CONFLICT(run_id, candidate) DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, candidate := range confirmed {
		if _, err := stmt.Exec(id, candidate); err != nil {
			return fmt.Errorf("failed to insert candidate %q: %w", candidate, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	run.ID = id
	return nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT id, endpoint, pattern, min_len, max_len, source,
			generated, dispatched, confirmed, failed, interrupted,
			started_at, finished_at
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Endpoint, &r.Pattern, &r.MinLen, &r.MaxLen,
			&r.Source, &r.Generated, &r.Dispatched, &r.Confirmed, &r.Failed,
			&r.Interrupted, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Confirmed returns the confirmed candidates of a run, sorted.
func (s *Store) Confirmed(runID int64) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT candidate FROM confirmed
		WHERE run_id = ?
		ORDER BY candidate
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// Totals returns the number of recorded runs and distinct confirmed
// candidates across all of them.
func (s *Store) Totals() (runs, confirmed int64, err error) {
	if err = s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRow("SELECT COUNT(DISTINCT candidate) FROM confirmed").Scan(&confirmed); err != nil {
		return 0, 0, err
	}
	return runs, confirmed, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
