package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mixtape-cli/mixtape/internal/models"
	"github.com/mixtape-cli/mixtape/internal/shared"
	"github.com/urfave/cli/v3"
)

// SearchAlbums queries the metadata service for an artist's albums and
// mirrors the result as the most recent search.
func (r *Runner) SearchAlbums(ctx context.Context, cmd *cli.Command) error {
	artist := strings.TrimSpace(cmd.StringArg("artist"))
	if artist == "" {
		return fmt.Errorf("%w: artist name is required", shared.ErrMissingArgument)
	}

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	albums, err := s.Music().SearchAlbumsByArtist(ctx, artist)
	if err != nil {
		return fmt.Errorf("album search failed: %w", err)
	}

	s.Music().SaveLastSearch(artist, albums)

	if cmd.Bool("json") {
		return r.writeJSON(albums, cmd.Bool("pretty"))
	}

	r.printAlbums(artist, albums)
	return nil
}

// SearchTracks lists the tracks of one album.
func (r *Runner) SearchTracks(ctx context.Context, cmd *cli.Command) error {
	albumID := strings.TrimSpace(cmd.StringArg("album-id"))
	if albumID == "" {
		return fmt.Errorf("%w: album id is required", shared.ErrMissingArgument)
	}
	albumName := cmd.String("album-name")

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	tracks, err := s.Music().GetMusicsByAlbum(ctx, albumID, albumName)
	if err != nil {
		return fmt.Errorf("album tracks fetch failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, cmd.Bool("pretty"))
	}

	if len(tracks) == 0 {
		r.writePlain("No tracks found for album %s\n", albumID)
		return nil
	}

	for _, track := range tracks {
		num := ""
		if track.TrackNumber > 0 {
			num = fmt.Sprintf("%d. ", track.TrackNumber)
		}
		r.writePlain("%s%s - %s [%s]\n", num, track.Artist, track.Name, track.Genre)
	}
	return nil
}

// SearchTop shows an artist's top three tracks.
func (r *Runner) SearchTop(ctx context.Context, cmd *cli.Command) error {
	artist := strings.TrimSpace(cmd.StringArg("artist"))
	if artist == "" {
		return fmt.Errorf("%w: artist name is required", shared.ErrMissingArgument)
	}

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	tracks, err := s.Music().GetTop3Musics(ctx, artist)
	if err != nil {
		return fmt.Errorf("top tracks fetch failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, cmd.Bool("pretty"))
	}

	if len(tracks) == 0 {
		r.writePlain("No top tracks found for %s\n", artist)
		return nil
	}

	r.writePlain("Top tracks for %s:\n", artist)
	for i, track := range tracks {
		r.writePlain("%d. %s\n", i+1, track.Name)
	}
	return nil
}

// SearchLast restores and prints the most recent album search.
func (r *Runner) SearchLast(ctx context.Context, cmd *cli.Command) error {
	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	artist, ok := s.Music().RestoreLastSearch()
	if !ok {
		r.writePlain("No stored search\n")
		return nil
	}

	albums := s.Music().AlbumResults()

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"artist": artist,
			"albums": albums,
		}, cmd.Bool("pretty"))
	}

	r.printAlbums(artist, albums)
	return nil
}

// SearchClear erases the in-memory results and the stored mirror.
func (r *Runner) SearchClear(ctx context.Context, cmd *cli.Command) error {
	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	s.Music().ClearSearch()
	r.writePlain("✓ Search results cleared\n")
	return nil
}

func (r *Runner) printAlbums(artist string, albums []models.Album) {
	if len(albums) == 0 {
		r.writePlain("No albums found for %s\n", artist)
		return
	}

	r.writePlain("Albums by %s:\n", artist)
	for _, album := range albums {
		year := ""
		if album.Year > 0 {
			year = fmt.Sprintf(" (%d)", album.Year)
		}
		r.writePlain("%s  %s%s\n", album.ID, album.Name, year)
	}
}
