// Package store persists card progress, study plans, and settings in a
// local SQLite database.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the database handle and hands out repositories.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn, applies pragmas, and
// creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows one writer; a second connection would only block.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Progress returns the card progress repository.
func (s *Store) Progress() *ProgressRepo {
	return &ProgressRepo{db: s.db}
}

// Plans returns the study plan repository.
func (s *Store) Plans() *PlanRepo {
	return &PlanRepo{db: s.db}
}

// Settings returns the settings repository.
func (s *Store) Settings() *SettingsRepo {
	return &SettingsRepo{db: s.db}
}

func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func createSchema(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS card_progress (
		card_id       TEXT PRIMARY KEY,
		dataset_id    TEXT NOT NULL,
		ease_factor   REAL NOT NULL,
		interval_days INTEGER NOT NULL,
		repetitions   INTEGER NOT NULL,
		next_review   TEXT NOT NULL,
		last_rating   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_progress_dataset ON card_progress(dataset_id);

	CREATE TABLE IF NOT EXISTS study_plans (
		dataset_id TEXT PRIMARY KEY,
		total_days INTEGER NOT NULL,
		card_ids   TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	_, err := db.Exec(schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. KIOKU_DB environment variable
// 2. $XDG_DATA_HOME/kioku/kioku.db
// 3. ~/.local/share/kioku/kioku.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("KIOKU_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "kioku", "kioku.db")
	return p, EnsureDir(p)
}

// DefaultDataDir resolves the dataset directory: KIOKU_DATA if set,
// otherwise ./data.
func DefaultDataDir() string {
	if p := os.Getenv("KIOKU_DATA"); p != "" {
		return p
	}
	return "data"
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
