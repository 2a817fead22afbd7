package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mixtape-cli/mixtape/internal/models"
	"github.com/mixtape-cli/mixtape/internal/services"
	"github.com/mixtape-cli/mixtape/internal/storage"
)

// topTrackLimit caps the top-tracks cache.
const topTrackLimit = 3

// MusicContainer owns the transient results of the three remote
// queries plus the shared loading flag and error slot.
//
// Each fetch follows a three-phase protocol: the pending phase marks
// loading and clears the previous error, a fulfilled phase stores the
// mapped collection in its own slot, and a rejected phase stores a
// human-readable message while leaving the stale slot untouched.
//
// A monotonic token per query kind fences out late responses: when a
// second fetch of the same kind starts before the first resolves, the
// superseded resolution is ignored instead of overwriting newer state.
type MusicContainer struct {
	mu                 *sync.Mutex
	albumResults       []models.Album
	currentAlbumTracks []models.Music
	topTracks          []models.Music
	loading            bool
	errMsg             string

	albumToken uint64
	trackToken uint64
	topToken   uint64

	metadata services.MetadataService
	durable  *storage.DurableStore
	logger   *log.Logger
}

// SearchAlbumsByArtist fetches albums matching the artist name and
// stores them in the album-results slot.
func (c *MusicContainer) SearchAlbumsByArtist(ctx context.Context, artist string) ([]models.Album, error) {
	token := c.begin(&c.albumToken)

	albums, err := c.metadata.SearchAlbums(ctx, artist)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.albumToken {
		// A newer search superseded this one.
		return albums, err
	}
	c.loading = false
	if err != nil {
		c.errMsg = fmt.Sprintf("album search failed: %v", err)
		return nil, err
	}

	c.albumResults = albums
	return cloneAlbums(albums), nil
}

// GetMusicsByAlbum fetches the track listing for one album and stores
// it in the current-album slot.
func (c *MusicContainer) GetMusicsByAlbum(ctx context.Context, albumID, albumName string) ([]models.Music, error) {
	token := c.begin(&c.trackToken)

	tracks, err := c.metadata.AlbumTracks(ctx, albumID, albumName)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.trackToken {
		return tracks, err
	}
	c.loading = false
	if err != nil {
		c.errMsg = fmt.Sprintf("album tracks fetch failed: %v", err)
		return nil, err
	}

	c.currentAlbumTracks = tracks
	return cloneMusics(tracks), nil
}

// GetTop3Musics fetches an artist's top tracks, keeping at most three,
// and stores them in the top-tracks slot.
func (c *MusicContainer) GetTop3Musics(ctx context.Context, artist string) ([]models.Music, error) {
	token := c.begin(&c.topToken)

	tracks, err := c.metadata.TopTracks(ctx, artist)
	if err == nil && len(tracks) > topTrackLimit {
		tracks = tracks[:topTrackLimit]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.topToken {
		return tracks, err
	}
	c.loading = false
	if err != nil {
		c.errMsg = fmt.Sprintf("top tracks fetch failed: %v", err)
		return nil, err
	}

	c.topTracks = tracks
	return cloneMusics(tracks), nil
}

// ClearSearch resets the album results and removes the durable
// last-search mirror.
func (c *MusicContainer) ClearSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.albumResults = nil
	c.errMsg = ""

	for _, key := range []string{storage.KeyLastArtistQuery, storage.KeyLastAlbumResults} {
		if err := c.durable.Delete(key); err != nil {
			c.logger.Warnf("failed to clear last search key %s: %v", key, err)
		}
	}
}

// SaveLastSearch mirrors the artist query and its album results into
// the durable store so a later run can restore the search without
// re-issuing it. Empty results are not mirrored.
func (c *MusicContainer) SaveLastSearch(artist string, albums []models.Album) {
	if artist == "" || len(albums) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	query, err := json.Marshal(artist)
	if err != nil {
		c.logger.Warnf("failed to serialize last query: %v", err)
		return
	}
	results, err := json.Marshal(albums)
	if err != nil {
		c.logger.Warnf("failed to serialize last results: %v", err)
		return
	}

	if err := c.durable.Set(storage.KeyLastArtistQuery, query); err != nil {
		c.logger.Warnf("failed to mirror last query: %v", err)
	}
	if err := c.durable.Set(storage.KeyLastAlbumResults, results); err != nil {
		c.logger.Warnf("failed to mirror last results: %v", err)
	}
}

// RestoreLastSearch loads the mirrored query and results back into the
// album-results slot, returning the artist query. Missing or corrupt
// mirror data reports ok=false and leaves the slot untouched.
func (c *MusicContainer) RestoreLastSearch() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rawQuery, ok, err := c.durable.Get(storage.KeyLastArtistQuery)
	if err != nil || !ok {
		if err != nil {
			c.logger.Warnf("failed to read last query: %v", err)
		}
		return "", false
	}
	rawResults, ok, err := c.durable.Get(storage.KeyLastAlbumResults)
	if err != nil || !ok {
		if err != nil {
			c.logger.Warnf("failed to read last results: %v", err)
		}
		return "", false
	}

	var artist string
	if err := json.Unmarshal(rawQuery, &artist); err != nil {
		c.logger.Warnf("discarding corrupt last query: %v", err)
		return "", false
	}
	var albums []models.Album
	if err := json.Unmarshal(rawResults, &albums); err != nil {
		c.logger.Warnf("discarding corrupt last results: %v", err)
		return "", false
	}

	c.albumResults = albums
	return artist, true
}

// AlbumResults returns a copy of the last album search results.
func (c *MusicContainer) AlbumResults() []models.Album {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneAlbums(c.albumResults)
}

// CurrentAlbumTracks returns a copy of the last album track listing.
func (c *MusicContainer) CurrentAlbumTracks() []models.Music {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneMusics(c.currentAlbumTracks)
}

// TopTracks returns a copy of the top-tracks cache.
func (c *MusicContainer) TopTracks() []models.Music {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneMusics(c.topTracks)
}

// Loading reports whether a fetch is in flight.
func (c *MusicContainer) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Error returns the message from the last rejected fetch, or "" when
// the last resolution succeeded.
func (c *MusicContainer) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// begin runs the pending phase: loading on, error cleared, and a fresh
// token for the query kind.
func (c *MusicContainer) begin(counter *uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = true
	c.errMsg = ""
	*counter++
	return *counter
}

func cloneAlbums(albums []models.Album) []models.Album {
	if albums == nil {
		return []models.Album{}
	}
	copies := make([]models.Album, len(albums))
	copy(copies, albums)
	return copies
}

func cloneMusics(musics []models.Music) []models.Music {
	if musics == nil {
		return []models.Music{}
	}
	copies := make([]models.Music, len(musics))
	copy(copies, musics)
	return copies
}
