package services

import (
	"context"

	"github.com/mixtape-cli/mixtape/internal/models"
)

// MetadataService defines the remote queries backing music search.
type MetadataService interface {
	// SearchAlbums returns albums matching an artist name. An empty or
	// malformed result list resolves to an empty slice, not an error.
	SearchAlbums(ctx context.Context, artist string) ([]models.Album, error)

	// AlbumTracks returns the tracks of one album. Tracks whose record
	// omits the album name are tagged with the supplied albumName.
	AlbumTracks(ctx context.Context, albumID, albumName string) ([]models.Music, error)

	// TopTracks returns an artist's most popular tracks, untagged.
	TopTracks(ctx context.Context, artist string) ([]models.Music, error)

	// Name returns the name of the metadata provider.
	Name() string
}
