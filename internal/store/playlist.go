package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mixtape-cli/mixtape/internal/models"
	"github.com/mixtape-cli/mixtape/internal/shared"
	"github.com/mixtape-cli/mixtape/internal/storage"
)

// PlaylistContainer owns the full playlist collection across all local
// users plus the current selection. Every mutating action serializes
// the whole collection to the durable store before returning; a failed
// write is logged and the in-memory collection stays authoritative.
type PlaylistContainer struct {
	mu        *sync.Mutex
	playlists []models.Playlist
	current   *models.Playlist

	durable *storage.DurableStore
	logger  *log.Logger
}

// Create appends a new, empty playlist owned by userID and returns a
// copy of it. The caller is responsible for rejecting blank names.
func (c *PlaylistContainer) Create(name, userID string) models.Playlist {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	playlist := models.Playlist{
		ID:        "playlist_" + shared.GenerateID(),
		Name:      name,
		UserID:    userID,
		Musics:    []models.Music{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	c.playlists = append(c.playlists, playlist)
	c.persist()

	return playlist.Clone()
}

// Rename changes a playlist's name in place and bumps its updated
// timestamp. Renaming an absent id is a silent no-op.
func (c *PlaylistContainer) Rename(id, newName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return
	}

	c.playlists[idx].Name = newName
	c.playlists[idx].UpdatedAt = time.Now()
	c.persist()
}

// Delete removes a playlist from the collection. If it was the current
// selection, the selection clears. Deleting an absent id is a no-op.
func (c *PlaylistContainer) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return
	}

	c.playlists = append(c.playlists[:idx], c.playlists[idx+1:]...)
	if c.current != nil && c.current.ID == id {
		c.current = nil
	}
	c.persist()
}

// AddMusic appends a track to a playlist. Adding a track whose id is
// already present is idempotent; the absent-playlist case is a no-op.
func (c *PlaylistContainer) AddMusic(playlistID string, music models.Music) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(playlistID)
	if idx < 0 {
		return
	}
	if c.playlists[idx].HasTrack(music.ID) {
		return
	}

	c.playlists[idx].Musics = append(c.playlists[idx].Musics, music)
	c.playlists[idx].UpdatedAt = time.Now()
	c.persist()
}

// RemoveMusic filters a track out of a playlist, preserving the order
// of the remaining tracks. Absent playlist or track ids are no-ops.
func (c *PlaylistContainer) RemoveMusic(playlistID, musicID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(playlistID)
	if idx < 0 || !c.playlists[idx].HasTrack(musicID) {
		return
	}

	musics := c.playlists[idx].Musics[:0]
	for _, m := range c.playlists[idx].Musics {
		if m.ID != musicID {
			musics = append(musics, m)
		}
	}
	c.playlists[idx].Musics = musics
	c.playlists[idx].UpdatedAt = time.Now()
	c.persist()
}

// SetCurrent selects the playlist with the given id, storing a value
// snapshot. An empty or unknown id clears the selection.
func (c *PlaylistContainer) SetCurrent(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = nil
	if id == "" {
		return
	}
	if idx := c.indexOf(id); idx >= 0 {
		snapshot := c.playlists[idx].Clone()
		c.current = &snapshot
	}
}

// Current returns a copy of the selected playlist snapshot, or nil.
// The snapshot is taken at selection time; re-select to observe later
// mutations.
func (c *PlaylistContainer) Current() *models.Playlist {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	snapshot := c.current.Clone()
	return &snapshot
}

// Reload discards the in-memory collection and re-reads it from the
// durable store. Used when switching users, since the durable store
// holds every user's playlists. Missing or corrupt data loads as an
// empty collection.
func (c *PlaylistContainer) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.playlists = []models.Playlist{}

	raw, ok, err := c.durable.Get(storage.KeyPlaylists)
	if err != nil {
		c.logger.Warnf("failed to read playlists: %v", err)
		return
	}
	if !ok {
		return
	}

	var playlists []models.Playlist
	if err := json.Unmarshal(raw, &playlists); err != nil {
		c.logger.Warnf("discarding corrupt playlist collection: %v", err)
		return
	}
	c.playlists = playlists
}

// All returns a copy of the full collection, every user included.
func (c *PlaylistContainer) All() []models.Playlist {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clonePlaylists(c.playlists)
}

// ForUser returns copies of the playlists owned by userID. Ownership
// filtering happens here at read time, not inside mutations.
func (c *PlaylistContainer) ForUser(userID string) []models.Playlist {
	c.mu.Lock()
	defer c.mu.Unlock()

	var owned []models.Playlist
	for _, p := range c.playlists {
		if p.UserID == userID {
			owned = append(owned, p.Clone())
		}
	}
	return owned
}

// Get returns a copy of the playlist with the given id.
func (c *PlaylistContainer) Get(id string) (models.Playlist, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(id); idx >= 0 {
		return c.playlists[idx].Clone(), true
	}
	return models.Playlist{}, false
}

// indexOf returns the position of a playlist id, or -1. Callers hold
// the mutex.
func (c *PlaylistContainer) indexOf(id string) int {
	for i := range c.playlists {
		if c.playlists[i].ID == id {
			return i
		}
	}
	return -1
}

// persist serializes the entire collection to the durable store.
// Callers hold the mutex.
func (c *PlaylistContainer) persist() {
	raw, err := json.Marshal(c.playlists)
	if err != nil {
		c.logger.Warnf("failed to serialize playlists: %v", err)
		return
	}
	if err := c.durable.Set(storage.KeyPlaylists, raw); err != nil {
		c.logger.Warnf("failed to persist playlists: %v", err)
	}
}

func clonePlaylists(playlists []models.Playlist) []models.Playlist {
	copies := make([]models.Playlist, len(playlists))
	for i := range playlists {
		copies[i] = playlists[i].Clone()
	}
	return copies
}
