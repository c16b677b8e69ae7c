// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run recordings.
type Store struct {
	db *sql.DB
}

// Frame is one recorded step of a run.
type Frame struct {
	Delta float64
	Jump  bool
}

// Run is a recorded run: everything needed to re-simulate it.
type Run struct {
	ID         int64
	Seed       int64
	ConfigYAML string // Config snapshot the run was played with
	Score      int
	FrameCount int
	Frames     []Frame // Nil in listings
	CreatedAt  time.Time
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			config_yaml TEXT NOT NULL,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS run_frames (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			delta REAL NOT NULL,
			jump INTEGER NOT NULL,
			PRIMARY KEY (run_id, idx)
		);
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

// SaveRun records a finished run and its frames in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(seed int64, configYAML string, score int, frames []Frame) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	result, err := tx.Exec(
		"INSERT INTO runs (seed, config_yaml, score, frames) VALUES (?, ?, ?, ?)",
		seed, configYAML, score, len(frames),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO run_frames (run_id, idx, delta, jump) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range frames {
		if _, err := stmt.Exec(id, i, f.Delta, f.Jump); err != nil {
			return 0, fmt.Errorf("storage: cannot save frame %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs without their frames.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, config_yaml, score, frames, created_at
		 FROM runs
		 ORDER BY id DESC
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
		if err := rows.Scan(&r.ID, &r.Seed, &r.ConfigYAML, &r.Score, &r.FrameCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Run retrieves a run with all of its frames in recorded order.
// Returns ErrRunNotFound if there is no run with that ID.
func (s *Store) Run(id int64) (*Run, error) {
	var r Run
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed, config_yaml, score, frames, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Seed, &r.ConfigYAML, &r.Score, &r.FrameCount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		"SELECT delta, jump FROM run_frames WHERE run_id = ? ORDER BY idx",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	r.Frames = make([]Frame, 0, r.FrameCount)
	for rows.Next() {
		var f Frame
		if err := rows.Scan(&f.Delta, &f.Jump); err != nil {
			return nil, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		r.Frames = append(r.Frames, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// DeleteRun removes a run and its frames.
func (s *Store) DeleteRun(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM run_frames WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}
	res, err := tx.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
