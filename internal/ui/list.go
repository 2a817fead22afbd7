package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/mixtape-cli/mixtape/internal/models"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = trackItem{}
)

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	return fmt.Sprintf("%d tracks • updated %s", len(i.playlist.Musics), i.playlist.UpdatedAt.Format("2006-01-02"))
}

// trackItem wraps [models.Music] to implement [list.Item].
type trackItem struct {
	track models.Music
}

func (i trackItem) FilterValue() string { return i.track.Name }
func (i trackItem) Title() string       { return i.track.Name }
func (i trackItem) Description() string {
	desc := i.track.Artist
	if i.track.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Album)
	}
	return desc
}
