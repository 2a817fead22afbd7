package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SessionStore persists session-scoped entries as one JSON object in a
// single file. Clearing the session removes the file entirely.
type SessionStore struct {
	path string
}

// NewSessionStore creates a SessionStore backed by the file at path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// DefaultSessionPath returns the session file location used when the
// config leaves it unset.
func DefaultSessionPath() string {
	return filepath.Join(os.TempDir(), "mixtape_session.json")
}

// Path returns the session file location.
func (s *SessionStore) Path() string {
	return s.path
}

// Get returns the entry stored under key. A missing file or key
// reports ok=false with a nil error.
func (s *SessionStore) Get(key string) ([]byte, bool, error) {
	entries, err := s.load()
	if err != nil {
		return nil, false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

// Set writes the entry under key, replacing any previous value.
func (s *SessionStore) Set(key string, value []byte) error {
	entries, err := s.load()
	if err != nil {
		// A corrupt session file is abandoned rather than preserved.
		entries = map[string]json.RawMessage{}
	}
	entries[key] = json.RawMessage(value)
	return s.save(entries)
}

// Delete removes the entry stored under key.
func (s *SessionStore) Delete(key string) error {
	entries, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.save(entries)
}

// Clear removes the session file entirely.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session store: %w", err)
	}
	return nil
}

func (s *SessionStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session store: %w", err)
	}

	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse session store: %w", err)
	}
	return entries, nil
}

func (s *SessionStore) save(entries map[string]json.RawMessage) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize session store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session store: %w", err)
	}
	return nil
}
