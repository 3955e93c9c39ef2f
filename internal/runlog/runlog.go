// Package runlog persists kdbench benchmark results to a SQLite database
// so timings can be compared across code changes and machines.
package runlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded benchmark invocation: a mode ("euclidean" or
// "periodic") with its workload parameters and per-run mean/stddev
// timings in milliseconds.
type Run struct {
	ID       int64
	Mode     string
	Points   int
	Queries  int
	Runs     int
	LeafSize int
	Workers  int

	BuildMeanMs float64
	BuildStdMs  float64
	QueryMeanMs float64
	QueryStdMs  float64

	CreatedAt time.Time
}

// Store handles persistence of benchmark runs.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the run database at dbPath.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		mode TEXT NOT NULL,
		points INTEGER NOT NULL,
		queries INTEGER NOT NULL,
		runs INTEGER NOT NULL,
		leaf_size INTEGER NOT NULL,
		workers INTEGER NOT NULL,
		build_mean_ms REAL NOT NULL,
		build_std_ms REAL NOT NULL,
		query_mean_ms REAL NOT NULL,
		query_std_ms REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun inserts a run and fills in its ID and CreatedAt.
func (s *Store) SaveRun(r *Run) error {
	now := time.Now().UTC()
	res, err := s.db.Exec(`
		INSERT INTO runs (mode, points, queries, runs, leaf_size, workers,
			build_mean_ms, build_std_ms, query_mean_ms, query_std_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.Points, r.Queries, r.Runs, r.LeafSize, r.Workers,
		r.BuildMeanMs, r.BuildStdMs, r.QueryMeanMs, r.QueryStdMs, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get run id: %w", err)
	}
	r.ID = id
	r.CreatedAt = now
	return nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means all.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT id, mode, points, queries, runs, leaf_size, workers,
			build_mean_ms, build_std_ms, query_mean_ms, query_std_ms, created_at
		FROM runs ORDER BY created_at DESC, id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Mode, &r.Points, &r.Queries, &r.Runs,
			&r.LeafSize, &r.Workers,
			&r.BuildMeanMs, &r.BuildStdMs, &r.QueryMeanMs, &r.QueryStdMs,
			&r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
