package store

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mixtape-cli/mixtape/internal/services"
	"github.com/mixtape-cli/mixtape/internal/shared"
	"github.com/mixtape-cli/mixtape/internal/storage"
)

// Store is the composition root wiring the three state containers into
// one addressable tree.
type Store struct {
	mu sync.Mutex

	session   *SessionContainer
	playlists *PlaylistContainer
	music     *MusicContainer
}

// Opts contains the dependencies for creating a Store.
type Opts struct {
	Durable  *storage.DurableStore
	Sessions *storage.SessionStore
	Metadata services.MetadataService
	Logger   *log.Logger
}

// New creates a Store and restores persisted state: the playlist
// collection from the durable store and any previous session from the
// session store. Missing or corrupt data restores to empty defaults.
func New(opts Opts) *Store {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	s := &Store{}
	s.session = &SessionContainer{
		mu:       &s.mu,
		sessions: opts.Sessions,
		durable:  opts.Durable,
		logger:   shared.WithLogger(opts.Logger, "container", "session"),
	}
	s.playlists = &PlaylistContainer{
		mu:      &s.mu,
		durable: opts.Durable,
		logger:  shared.WithLogger(opts.Logger, "container", "playlists"),
	}
	s.music = &MusicContainer{
		mu:       &s.mu,
		metadata: opts.Metadata,
		durable:  opts.Durable,
		logger:   shared.WithLogger(opts.Logger, "container", "music"),
	}

	s.session.Restore()
	s.playlists.Reload()

	return s
}

// Session returns the session container.
func (s *Store) Session() *SessionContainer { return s.session }

// Playlists returns the playlist container.
func (s *Store) Playlists() *PlaylistContainer { return s.playlists }

// Music returns the music search container.
func (s *Store) Music() *MusicContainer { return s.music }
