// Package storage provides SQLite-based persistence for settings and the run log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/ontop/internal/config"
)

// Run outcomes.
const (
	OutcomeWin  = "win"
	OutcomeDied = "died"
	OutcomeQuit = "quit"
)

const keyVolume = "volume"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one recorded playthrough.
type RunEntry struct {
	ID        int64
	Level     string
	Outcome   string // OutcomeWin, OutcomeDied or OutcomeQuit
	Cause     string // Death cause, empty otherwise
	Duration  time.Duration
	Kills     int
	Throws    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			outcome TEXT NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			kills INTEGER NOT NULL DEFAULT 0,
			throws INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level, outcome, duration_ms);
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

// Volume returns the stored master volume, or def if none was saved.
func (s *Store) Volume(def float64) (float64, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", keyVolume).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot query volume: %w", err)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def, fmt.Errorf("storage: invalid stored volume %q: %w", raw, err)
	}
	return v, nil
}

// SaveVolume stores the master volume.
func (s *Store) SaveVolume(v float64) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		keyVolume, strconv.FormatFloat(v, 'f', -1, 64),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save volume: %w", err)
	}
	return nil
}

// SaveRun records a finished playthrough.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (level, outcome, cause, duration_ms, kills, throws)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Level, run.Outcome, run.Cause, run.Duration.Milliseconds(), run.Kills, run.Throws,
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

const runColumns = `id, level, outcome, cause, duration_ms, kills, throws, created_at`

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// BestRuns retrieves the fastest wins on a level.
func (s *Store) BestRuns(level string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE level = ? AND outcome = ?
		 ORDER BY duration_ms ASC
		 LIMIT ?`,
		level, OutcomeWin, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Outcome, &e.Cause, &durationMs, &e.Kills, &e.Throws, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
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

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	Level      string
	Runs       int
	Wins       int
	Deaths     int
	BestTime   time.Duration // Zero if never won
	Kills      int
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for every level that has been played.
func (s *Store) Stats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level,
		        COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN duration_ms END), 0),
		        COALESCE(SUM(kills), 0),
		        MAX(created_at)
		 FROM runs
		 GROUP BY level
		 ORDER BY level`,
		OutcomeWin, OutcomeDied, OutcomeWin,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var bestMs int64
		var lastPlayed any
		if err := rows.Scan(&st.Level, &st.Runs, &st.Wins, &st.Deaths, &bestMs, &st.Kills, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(bestMs) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes the run log for a level, or every level when level is empty.
func (s *Store) ClearRuns(level string) error {
	var err error
	if level == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE level = ?", level)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
