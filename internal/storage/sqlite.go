// Package storage provides SQLite-based persistence for finished-run
// summaries. The live game state is never persisted (every run starts from
// zero), but final tallies feed the stats leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished run's summary.
type RunEntry struct {
	ID             int64
	LifetimeEarned float64
	Clicks         uint64
	UpgradesOwned  int
	Achievements   int
	DurationSecs   int
	CreatedAt      time.Time
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lifetime_earned REAL NOT NULL,
			clicks INTEGER NOT NULL,
			upgrades_owned INTEGER NOT NULL,
			achievements INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(lifetime_earned DESC);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (lifetime_earned, clicks, upgrades_owned, achievements, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		run.LifetimeEarned, run.Clicks, run.UpgradesOwned, run.Achievements, run.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs ordered by lifetime gold earned.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, lifetime_earned, clicks, upgrades_owned, achievements, duration_secs, created_at
		 FROM runs
		 ORDER BY lifetime_earned DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestLifetime returns the highest lifetime gold earned in any run.
// Returns 0 if no runs exist.
func (s *Store) BestLifetime() (float64, error) {
	var best sql.NullFloat64
	err := s.db.QueryRow("SELECT MAX(lifetime_earned) FROM runs").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return best.Float64, nil
}

// RunCount returns the number of recorded runs.
func (s *Store) RunCount() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return count, nil
}

func scanRun(rows *sql.Rows) (RunEntry, error) {
	var e RunEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.LifetimeEarned, &e.Clicks, &e.UpgradesOwned, &e.Achievements, &e.DurationSecs, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}

	return e, nil
}
