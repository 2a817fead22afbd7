// Package storage implements the two persistence stores backing the
// state containers: a durable sqlite-backed key/value store shared by
// all local users, and a session-scoped JSON file wiped on logout.
//
// Both stores return errors to their callers; the containers decide
// whether a failure is swallowed (it always is) and keep the in-memory
// state authoritative.
package storage

// Durable store keys.
const (
	KeyPlaylists        = "playlists"
	KeyLastArtistQuery  = "last_artist_query"
	KeyLastAlbumResults = "last_album_results"
)

// Session store keys.
const (
	KeyUser    = "user"
	KeySession = "session"
)
