package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mixtape-cli/mixtape/internal/formatter"
	"github.com/mixtape-cli/mixtape/internal/models"
	"github.com/mixtape-cli/mixtape/internal/shared"
	"github.com/mixtape-cli/mixtape/internal/store"
	"github.com/urfave/cli/v3"
)

// PlaylistCreate creates a new empty playlist for the logged-in user.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(cmd.StringArg("name"))
	if name == "" {
		return fmt.Errorf("%w: playlist name is required", shared.ErrMissingArgument)
	}

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := r.requireUser(s)
	if err != nil {
		return err
	}

	playlist := s.Playlists().Create(name, user.ID)
	r.logger.Info("playlist created", "id", playlist.ID, "name", playlist.Name)
	r.writePlain("✓ Created playlist '%s' (%s)\n", playlist.Name, playlist.ID)

	return nil
}

// PlaylistRename renames one of the user's playlists.
func (r *Runner) PlaylistRename(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	name := strings.TrimSpace(cmd.StringArg("name"))
	if name == "" {
		return fmt.Errorf("%w: new playlist name is required", shared.ErrMissingArgument)
	}

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := r.requireUser(s)
	if err != nil {
		return err
	}

	if _, err := r.ownedPlaylist(s, user.ID, id); err != nil {
		return err
	}

	s.Playlists().Rename(id, name)
	r.writePlain("✓ Renamed playlist to '%s'\n", name)
	return nil
}

// PlaylistDelete deletes one of the user's playlists.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := r.requireUser(s)
	if err != nil {
		return err
	}

	playlist, err := r.ownedPlaylist(s, user.ID, id)
	if err != nil {
		return err
	}

	s.Playlists().Delete(id)
	r.writePlain("✓ Deleted playlist '%s'\n", playlist.Name)
	return nil
}

// PlaylistList prints the user's playlists.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := r.requireUser(s)
	if err != nil {
		return err
	}

	playlists := s.Playlists().ForUser(user.ID)

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		r.writePlain("No playlists yet. Create one with 'mixtape playlist create'.\n")
		return nil
	}

	for _, playlist := range playlists {
		r.writePlain("%s  %s (%d tracks)\n", playlist.ID, playlist.Name, len(playlist.Musics))
	}
	return nil
}

// PlaylistShow prints a playlist with its track listing and records it
// as the last one accessed.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := r.requireUser(s)
	if err != nil {
		return err
	}

	playlist, err := r.ownedPlaylist(s, user.ID, id)
	if err != nil {
		return err
	}

	s.Playlists().SetCurrent(id)
	s.Session().UpdateLastPlaylistAccessed(id)

	if cmd.Bool("json") {
		return r.writeJSON(playlist, cmd.Bool("pretty"))
	}

	r.writePlain("%s (%d tracks)\n", playlist.Name, len(playlist.Musics))
	for i, track := range playlist.Musics {
		r.writePlain("%d. %s - %s", i+1, track.Artist, track.Name)
		if track.Album != "" {
			r.writePlain(" (%s)", track.Album)
		}
		r.writePlain("\n")
	}
	return nil
}

// PlaylistAdd fetches an album's track listing, resolves the requested
// track and appends it to the playlist.
func (r *Runner) PlaylistAdd(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	albumID := cmd.String("album-id")
	albumName := cmd.String("album-name")
	trackQuery := cmd.String("track")

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := r.requireUser(s)
	if err != nil {
		return err
	}

	if _, err := r.ownedPlaylist(s, user.ID, id); err != nil {
		return err
	}

	tracks, err := s.Music().GetMusicsByAlbum(ctx, albumID, albumName)
	if err != nil {
		return fmt.Errorf("failed to fetch album tracks: %w", err)
	}

	track, ok := matchTrack(tracks, trackQuery)
	if !ok {
		return fmt.Errorf("%w: no track %q in album %s", shared.ErrTrackNotFound, trackQuery, albumID)
	}

	s.Playlists().AddMusic(id, track)
	r.writePlain("✓ Added '%s - %s'\n", track.Artist, track.Name)
	return nil
}

// PlaylistRemove removes a track from a playlist.
func (r *Runner) PlaylistRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	trackID := cmd.StringArg("track-id")

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := r.requireUser(s)
	if err != nil {
		return err
	}

	if _, err := r.ownedPlaylist(s, user.ID, id); err != nil {
		return err
	}

	s.Playlists().RemoveMusic(id, trackID)
	r.writePlain("✓ Removed track %s\n", trackID)
	return nil
}

// PlaylistExport writes a playlist to disk in the requested format.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	format := strings.ToLower(cmd.String("format"))
	output := cmd.String("output")

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := r.requireUser(s)
	if err != nil {
		return err
	}

	playlist, err := r.ownedPlaylist(s, user.ID, id)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(&playlist, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported to %s\n", result.TracksFile)
	case "markdown", "md":
		result, err := formatter.WriteMarkdownExport(&playlist, output, "")
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported to %s\n", result.Directory)
	case "text", "txt":
		path, err := formatter.WriteTextExport(&playlist, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported to %s\n", path)
	case "json":
		path, err := formatter.WriteJSONExport(&playlist, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported to %s\n", path)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}

	return nil
}

// ownedPlaylist resolves a playlist id and checks it belongs to userID.
func (r *Runner) ownedPlaylist(s *store.Store, userID, id string) (models.Playlist, error) {
	playlist, ok := s.Playlists().Get(id)
	if !ok || playlist.UserID != userID {
		return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}
	return playlist, nil
}

// matchTrack finds a track by id first, then by case-insensitive name.
func matchTrack(tracks []models.Music, query string) (models.Music, bool) {
	for _, track := range tracks {
		if track.ID == query {
			return track, true
		}
	}
	for _, track := range tracks {
		if strings.EqualFold(track.Name, query) {
			return track, true
		}
	}
	return models.Music{}, false
}
