package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mixtape-cli/mixtape/internal/models"
	"github.com/mixtape-cli/mixtape/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	TrackListView
)

// Model represents the TUI application state.
type Model struct {
	store    *store.Store
	view     ViewState
	width    int
	height   int
	owner    string
	sized    bool
	selected *models.Playlist

	playlistList list.Model
	trackList    list.Model
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model showing the playlists owned by userID.
func NewModel(s *store.Store, userID string) *Model {
	playlists := s.Playlists().ForUser(userID)
	items := make([]list.Item, len(playlists))
	for i, pl := range playlists {
		items[i] = playlistItem{playlist: pl}
	}

	playlistList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	playlistList.Title = "Playlists"

	return &Model{
		store:        s,
		view:         PlaylistListView,
		owner:        userID,
		playlistList: playlistList,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sized = true
		m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		m.trackList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case TrackListView:
			return m.handleTrackListKeys(msg)
		}
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case PlaylistListView:
		return m.renderPlaylistList()
	case TrackListView:
		return m.renderTrackList()
	default:
		return ""
	}
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.playlistList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(playlistItem); ok {
				m.openPlaylist(item.playlist)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleTrackListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		m.selected = nil
		m.store.Playlists().SetCurrent("")
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

// openPlaylist switches to the track view, marking the playlist as the
// current selection and the last one accessed in this session.
func (m *Model) openPlaylist(playlist models.Playlist) {
	m.store.Playlists().SetCurrent(playlist.ID)
	m.store.Session().UpdateLastPlaylistAccessed(playlist.ID)

	m.selected = &playlist
	items := make([]list.Item, len(playlist.Musics))
	for i, track := range playlist.Musics {
		items[i] = trackItem{track: track}
	}
	m.trackList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.trackList.Title = fmt.Sprintf("Tracks in '%s'", playlist.Name)
	if m.sized {
		m.trackList.SetSize(m.width-4, m.height-8)
	}
	m.view = TrackListView
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case TrackListView:
		m.trackList, cmd = m.trackList.Update(msg)
	}
	return m, cmd
}

func (m *Model) renderPlaylistList() string {
	if len(m.playlistList.Items()) == 0 {
		title := styles.title.Render("Playlists")
		empty := styles.warn.Render("No playlists yet. Create one with 'mixtape playlist create'.")
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.quit})
		return fmt.Sprintf("%s\n%s\n\n%s", title, empty, helpView)
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) renderTrackList() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.trackList.View(), helpView)
}
