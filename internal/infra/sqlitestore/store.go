// Package sqlitestore keeps the snapshot record in a SQLite key/value table.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// Ensure Store implements domain.SnapshotRepository.
var _ domain.SnapshotRepository = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS storage (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// Store reads and writes one row of the storage table, keyed by namespace.
type Store struct {
	db        *sql.DB
	namespace string
}

// Open opens (or creates) the database at dataSourceName and ensures the schema.
func Open(dataSourceName, namespace string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, namespace: namespace}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the snapshot stored under the namespace, or nil if there is none.
func (s *Store) Load() (*domain.Snapshot, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM storage WHERE key = ?`, s.namespace).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var record domain.PersistedRecord
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	snap := record.State.Clone()
	return &snap, nil
}

// Save upserts the snapshot row.
func (s *Store) Save(snapshot domain.Snapshot) error {
	value, err := json.Marshal(domain.PersistedRecord{
		State:   snapshot.Clone(),
		Version: domain.SnapshotVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, s.namespace, string(value), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// UpdatedAt returns when the namespace row was last written.
func (s *Store) UpdatedAt() (time.Time, error) {
	var updated time.Time
	err := s.db.QueryRow(`SELECT updated_at FROM storage WHERE key = ?`, s.namespace).Scan(&updated)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read updated_at: %w", err)
	}
	return updated, nil
}
