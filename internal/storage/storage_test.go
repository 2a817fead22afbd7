package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mixtape-cli/mixtape/internal/shared"
)

func newTestDurable(t *testing.T) *DurableStore {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return NewDurableStore(db)
}

func TestDurableStore(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		store := newTestDurable(t)

		if _, ok, err := store.Get(KeyPlaylists); err != nil {
			t.Fatalf("expected no error, got %v", err)
		} else if ok {
			t.Error("expected missing key to report ok=false")
		}
	})

	t.Run("set then get", func(t *testing.T) {
		store := newTestDurable(t)

		if err := store.Set(KeyPlaylists, []byte(`[{"id":"playlist_1"}]`)); err != nil {
			t.Fatalf("failed to set: %v", err)
		}

		value, ok, err := store.Get(KeyPlaylists)
		if err != nil || !ok {
			t.Fatalf("expected stored value, got ok=%v err=%v", ok, err)
		}
		if string(value) != `[{"id":"playlist_1"}]` {
			t.Errorf("unexpected value %s", value)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		store := newTestDurable(t)

		store.Set(KeyLastArtistQuery, []byte(`"Queen"`))
		store.Set(KeyLastArtistQuery, []byte(`"Muse"`))

		value, _, err := store.Get(KeyLastArtistQuery)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(value) != `"Muse"` {
			t.Errorf("expected overwritten value, got %s", value)
		}
	})

	t.Run("delete", func(t *testing.T) {
		store := newTestDurable(t)

		store.Set(KeyLastAlbumResults, []byte(`[]`))
		if err := store.Delete(KeyLastAlbumResults); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if _, ok, _ := store.Get(KeyLastAlbumResults); ok {
			t.Error("expected key to be gone after delete")
		}

		if err := store.Delete(KeyLastAlbumResults); err != nil {
			t.Errorf("deleting an absent key should not error: %v", err)
		}
	})
}

func TestSessionStore(t *testing.T) {
	newStore := func(t *testing.T) *SessionStore {
		t.Helper()
		return NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	}

	t.Run("missing file", func(t *testing.T) {
		store := newStore(t)

		if _, ok, err := store.Get(KeyUser); err != nil {
			t.Fatalf("expected no error, got %v", err)
		} else if ok {
			t.Error("expected missing file to report ok=false")
		}
	})

	t.Run("set then get", func(t *testing.T) {
		store := newStore(t)

		if err := store.Set(KeyUser, []byte(`{"id":"user_a_b_com"}`)); err != nil {
			t.Fatalf("failed to set: %v", err)
		}
		store.Set(KeySession, []byte(`{"lastLogin":"2024-01-01T00:00:00Z"}`))

		value, ok, err := store.Get(KeyUser)
		if err != nil || !ok {
			t.Fatalf("expected stored value, got ok=%v err=%v", ok, err)
		}
		if string(value) != `{"id":"user_a_b_com"}` {
			t.Errorf("unexpected value %s", value)
		}
	})

	t.Run("clear removes file", func(t *testing.T) {
		store := newStore(t)

		store.Set(KeyUser, []byte(`{}`))
		if err := store.Clear(); err != nil {
			t.Fatalf("failed to clear: %v", err)
		}

		if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
			t.Error("expected session file to be removed")
		}

		if err := store.Clear(); err != nil {
			t.Errorf("clearing an absent file should not error: %v", err)
		}
	})

	t.Run("corrupt file surfaces an error on read", func(t *testing.T) {
		store := newStore(t)

		if err := os.WriteFile(store.Path(), []byte("not json"), 0600); err != nil {
			t.Fatalf("failed to write corrupt file: %v", err)
		}
		if _, _, err := store.Get(KeyUser); err == nil {
			t.Error("expected error for corrupt session file")
		}

		// Writes abandon the corrupt content instead of failing.
		if err := store.Set(KeyUser, []byte(`{"id":"u"}`)); err != nil {
			t.Fatalf("expected set to recover from corrupt file: %v", err)
		}
		if _, ok, err := store.Get(KeyUser); err != nil || !ok {
			t.Errorf("expected recovered value, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		store := newStore(t)

		store.Set(KeyUser, []byte(`{}`))
		store.Set(KeySession, []byte(`{}`))

		if err := store.Delete(KeyUser); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if _, ok, _ := store.Get(KeyUser); ok {
			t.Error("expected user entry to be gone")
		}
		if _, ok, _ := store.Get(KeySession); !ok {
			t.Error("expected session entry to remain")
		}
	})
}
