// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow for browsing the local library:
//  1. [PlaylistListView] : Browse the logged-in user's playlists
//  2. [TrackListView] : View the tracks of a selected playlist
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Selecting a playlist marks it as the current selection in the store and records
// it as the last accessed playlist for the session.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual
// help displayed via charmbracelet/bubbles/help.
package ui
