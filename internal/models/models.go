package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// UserIDFromEmail derives a stable identifier from an email address.
// The same email always maps to the same id, so playlists keyed by
// user id survive logout/login cycles without a backend.
func UserIDFromEmail(email string) string {
	return "user_" + nonAlnum.ReplaceAllString(email, "_")
}

// User represents the logged-in account.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	LoggedIn bool   `json:"isLoggedIn"`
}

// SessionData holds ephemeral session metadata. Timestamps are stored
// as RFC 3339 strings to keep the serialized form human-readable.
type SessionData struct {
	LastLogin            string `json:"lastLogin,omitempty"`
	LastPlaylistAccessed string `json:"lastPlaylistAccessed,omitempty"`
}

// IsEmpty reports whether no session metadata has been recorded.
func (d SessionData) IsEmpty() bool {
	return d.LastLogin == "" && d.LastPlaylistAccessed == ""
}

// Music represents a single track from the metadata service. Identity
// is the service-assigned ID; every other field is display-only.
type Music struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	Genre       string `json:"genre"`
	Year        int    `json:"year,omitempty"`
	Album       string `json:"album,omitempty"`
	TrackNumber int    `json:"trackNumber,omitempty"`
	Thumb       string `json:"thumb,omitempty"`
}

// Album represents an album search result.
type Album struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	Year        int    `json:"year,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Thumb       string `json:"thumb,omitempty"`
	Description string `json:"description,omitempty"`
}

// Playlist is a named, user-owned ordered collection of tracks.
// Track order is insertion order and track ids are unique within one
// playlist.
type Playlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	Musics    []Music   `json:"musics"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the playlist invariants: non-empty name, an owning
// user, UpdatedAt >= CreatedAt, and unique track ids.
func (p *Playlist) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("playlist name is empty")
	}
	if p.UserID == "" {
		return fmt.Errorf("playlist %s has no owning user", p.ID)
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		return fmt.Errorf("playlist %s updated before created", p.ID)
	}

	seen := make(map[string]struct{}, len(p.Musics))
	for _, m := range p.Musics {
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("playlist %s contains duplicate track %s", p.ID, m.ID)
		}
		seen[m.ID] = struct{}{}
	}

	return nil
}

// HasTrack reports whether a track with the given id is already in the
// playlist.
func (p *Playlist) HasTrack(id string) bool {
	for _, m := range p.Musics {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the playlist. Selections handed to
// callers are value copies, never live references into the container.
func (p *Playlist) Clone() Playlist {
	clone := *p
	clone.Musics = make([]Music, len(p.Musics))
	copy(clone.Musics, p.Musics)
	return clone
}
