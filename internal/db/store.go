// Package db provides SQLite-backed persistence for viewer settings.
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mgalindo/wpeek/internal/settings"
)

// Store implements settings.Store on a SQLite key/value table. The whole
// settings struct lives as one JSON blob under settings.StorageKey, so every
// save replaces the complete shape in a single statement.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the settings database at path.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating kv table: %w", err)
	}
	return nil
}

// Load returns the persisted settings. A missing or corrupt blob falls back
// to the documented defaults; only storage-level failures are errors.
func (s *Store) Load() (settings.Settings, error) {
	var blob string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, settings.StorageKey).Scan(&blob)
	if err == sql.ErrNoRows {
		return settings.Default(), nil
	}
	if err != nil {
		return settings.Default(), fmt.Errorf("reading settings: %w", err)
	}

	loaded := settings.Default()
	if err := json.Unmarshal([]byte(blob), &loaded); err != nil {
		// Corrupt blob: fall back rather than fail startup.
		return settings.Default(), nil
	}
	return loaded.Normalize(), nil
}

// Save writes the settings as one blob in a single UPSERT.
func (s *Store) Save(cfg settings.Settings) error {
	blob, err := json.Marshal(cfg.Normalize())
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	query := `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.Exec(query, settings.StorageKey, string(blob)); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
