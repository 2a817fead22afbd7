package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// DurableStore persists values in the app_state table keyed by name.
// It survives restarts and is shared across all local users; the
// playlist collection lives under a single key as one JSON document.
type DurableStore struct {
	db *sql.DB
}

// NewDurableStore creates a DurableStore over the given database
// connection. The schema is managed by [shared.RunMigrations].
func NewDurableStore(db *sql.DB) *DurableStore {
	return &DurableStore{db: db}
}

// Get returns the value stored under key. A missing key reports
// ok=false with a nil error.
func (s *DurableStore) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM app_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Set writes the value under key, replacing any previous value.
func (s *DurableStore) Set(key string, value []byte) error {
	query := `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, key, string(value), time.Now()); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Deleting an absent key is
// not an error.
func (s *DurableStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM app_state WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
