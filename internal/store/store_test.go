package store

import (
	"path/filepath"
	"testing"

	"github.com/mixtape-cli/mixtape/internal/services"
	"github.com/mixtape-cli/mixtape/internal/shared"
	"github.com/mixtape-cli/mixtape/internal/storage"
	tu "github.com/mixtape-cli/mixtape/internal/testing"
)

// testEnv holds the persistence fixtures so a test can build several
// Store instances over the same underlying state.
type testEnv struct {
	durable  *storage.DurableStore
	sessions *storage.SessionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &testEnv{
		durable:  storage.NewDurableStore(db),
		sessions: storage.NewSessionStore(filepath.Join(t.TempDir(), "session.json")),
	}
}

func (e *testEnv) newStore(metadata services.MetadataService) *Store {
	return New(Opts{
		Durable:  e.durable,
		Sessions: e.sessions,
		Metadata: metadata,
	})
}

func TestNew(t *testing.T) {
	env := newTestEnv(t)

	t.Run("starts empty on a fresh environment", func(t *testing.T) {
		s := env.newStore(&tu.MockMetadataService{})

		if user := s.Session().CurrentUser(); user != nil {
			t.Errorf("expected no user, got %q", user.Email)
		}
		if got := s.Playlists().All(); len(got) != 0 {
			t.Errorf("expected no playlists, got %d", len(got))
		}
		if got := s.Music().AlbumResults(); len(got) != 0 {
			t.Errorf("expected no album results, got %d", len(got))
		}
	})

	t.Run("restores persisted state", func(t *testing.T) {
		first := env.newStore(&tu.MockMetadataService{})
		user := first.Session().Login("maria@test.com")
		playlist := first.Playlists().Create("Road Trip", user.ID)

		second := env.newStore(&tu.MockMetadataService{})
		restored := second.Session().CurrentUser()
		if restored == nil || restored.ID != user.ID {
			t.Fatalf("expected restored user %q, got %+v", user.ID, restored)
		}
		if _, ok := second.Playlists().Get(playlist.ID); !ok {
			t.Errorf("expected playlist %q to survive restart", playlist.ID)
		}
	})
}
