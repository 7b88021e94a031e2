package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	pkgLog "smart-day-planner/pkg/log"
)

const currentVersion = 1

// Repository is the SQLite-backed planner store.
type Repository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string, l pkgLog.Logger) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dbPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	r := &Repository{db: db, l: l}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

// NewMemory creates an in-memory repository for testing.
func NewMemory(l pkgLog.Logger) (*Repository, error) {
	return New(":memory:", l)
}

// Close closes the underlying database.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) migrate() error {
	var version int
	if err := r.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := r.migrateV1(); err != nil {
			return err
		}
	}

	_, err := r.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (r *Repository) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		duration       INTEGER NOT NULL,
		priority       INTEGER NOT NULL DEFAULT 3,
		deadline       TEXT,
		preferred_time TEXT NOT NULL DEFAULT '',
		completed      INTEGER NOT NULL DEFAULT 0,
		category       TEXT NOT NULL DEFAULT '',
		date           TEXT NOT NULL,
		raw_input      TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);

	CREATE TABLE IF NOT EXISTS schedules (
		date        TEXT PRIMARY KEY,
		slots       TEXT NOT NULL,
		unscheduled TEXT NOT NULL DEFAULT '[]',
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS preferences (
		id              INTEGER PRIMARY KEY CHECK (id = 1),
		work_start_hour INTEGER NOT NULL,
		work_end_hour   INTEGER NOT NULL,
		lunch_duration  INTEGER NOT NULL,
		break_duration  INTEGER NOT NULL,
		population_size INTEGER NOT NULL,
		generations     INTEGER NOT NULL
	);
	`
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
