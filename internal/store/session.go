package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mixtape-cli/mixtape/internal/models"
	"github.com/mixtape-cli/mixtape/internal/storage"
)

// SessionContainer owns the logged-in user and ephemeral session
// metadata, persisted to the session-scoped store.
type SessionContainer struct {
	mu      *sync.Mutex
	current *models.User
	data    models.SessionData

	sessions *storage.SessionStore
	durable  *storage.DurableStore
	logger   *log.Logger
}

// Login marks a user as logged in. The id is derived deterministically
// from the email, so repeated logins with the same email resolve to
// the same user and therefore the same playlists. Credential checking
// happens before this action is dispatched.
func (c *SessionContainer) Login(email string) models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	user := models.User{
		ID:       models.UserIDFromEmail(email),
		Email:    email,
		LoggedIn: true,
	}

	c.current = &user
	c.data.LastLogin = time.Now().Format(time.RFC3339)

	c.persistUser()
	c.persistData()

	return user
}

// Logout clears the current user and session metadata. As a documented
// cross-container side effect it also erases the durable last-search
// mirror, which is not keyed to any user.
func (c *SessionContainer) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = nil
	c.data = models.SessionData{}

	if err := c.sessions.Clear(); err != nil {
		c.logger.Warnf("failed to clear session store: %v", err)
	}

	for _, key := range []string{storage.KeyLastArtistQuery, storage.KeyLastAlbumResults} {
		if err := c.durable.Delete(key); err != nil {
			c.logger.Warnf("failed to clear last search key %s: %v", key, err)
		}
	}
}

// UpdateLastPlaylistAccessed records the playlist id in the session
// metadata and persists the metadata only.
func (c *SessionContainer) UpdateLastPlaylistAccessed(playlistID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data.LastPlaylistAccessed = playlistID
	c.persistData()
}

// Restore re-reads the user record and session metadata from the
// session store. Absent or corrupt data restores to "no user" and
// empty metadata, never an error.
func (c *SessionContainer) Restore() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = nil
	c.data = models.SessionData{}

	if raw, ok, err := c.sessions.Get(storage.KeyUser); err != nil {
		c.logger.Warnf("failed to read stored user: %v", err)
	} else if ok {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			c.logger.Warnf("discarding corrupt stored user: %v", err)
		} else {
			c.current = &user
		}
	}

	if raw, ok, err := c.sessions.Get(storage.KeySession); err != nil {
		c.logger.Warnf("failed to read session metadata: %v", err)
	} else if ok {
		var data models.SessionData
		if err := json.Unmarshal(raw, &data); err != nil {
			c.logger.Warnf("discarding corrupt session metadata: %v", err)
		} else {
			c.data = data
		}
	}
}

// CurrentUser returns a copy of the logged-in user, or nil when no one
// is logged in.
func (c *SessionContainer) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	user := *c.current
	return &user
}

// Data returns a copy of the session metadata.
func (c *SessionContainer) Data() models.SessionData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

func (c *SessionContainer) persistUser() {
	raw, err := json.Marshal(c.current)
	if err != nil {
		c.logger.Warnf("failed to serialize user: %v", err)
		return
	}
	if err := c.sessions.Set(storage.KeyUser, raw); err != nil {
		c.logger.Warnf("failed to persist user: %v", err)
	}
}

func (c *SessionContainer) persistData() {
	raw, err := json.Marshal(c.data)
	if err != nil {
		c.logger.Warnf("failed to serialize session metadata: %v", err)
		return
	}
	if err := c.sessions.Set(storage.KeySession, raw); err != nil {
		c.logger.Warnf("failed to persist session metadata: %v", err)
	}
}
