// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the local session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in with a demo account",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "email"},
					&cli.StringArg{Name: "password"},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Log out and clear the session",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session state",
				Flags:  []cli.Flag{jsonFlag(), prettyFlag(true)},
				Action: r.AuthStatus,
			},
		},
	}
}

// playlistCommand handles playlist operations
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Manage playlists",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a new empty playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "rename",
				Usage: "Rename a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
					&cli.StringArg{Name: "name"},
				},
				Action: r.PlaylistRename,
			},
			{
				Name:  "delete",
				Usage: "Delete a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.PlaylistDelete,
			},
			{
				Name:   "list",
				Usage:  "List your playlists",
				Flags:  []cli.Flag{jsonFlag(), prettyFlag(true)},
				Action: r.PlaylistList,
			},
			{
				Name:  "show",
				Usage: "Show a playlist and its tracks",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{jsonFlag(), prettyFlag(true)},
				Action: r.PlaylistShow,
			},
			{
				Name:  "add",
				Usage: "Add a track from an album to a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "album-id",
						Usage:    "Album the track belongs to",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "album-name",
						Usage: "Album name, used when the listing omits it",
					},
					&cli.StringFlag{
						Name:     "track",
						Usage:    "Track id or name within the album",
						Required: true,
					},
				},
				Action: r.PlaylistAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a track from a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
					&cli.StringArg{Name: "track-id"},
				},
				Action: r.PlaylistRemove,
			},
			{
				Name:  "export",
				Usage: "Export a playlist to a file",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown, text, or json",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file or directory path",
					},
				},
				Action: r.PlaylistExport,
			},
		},
	}
}

// searchCommand handles metadata lookups
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the music metadata service",
		Commands: []*cli.Command{
			{
				Name:  "albums",
				Usage: "Search albums by artist name",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "artist"},
				},
				Flags:  []cli.Flag{jsonFlag(), prettyFlag(true)},
				Action: r.SearchAlbums,
			},
			{
				Name:  "tracks",
				Usage: "List the tracks of an album",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "album-id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "album-name",
						Usage: "Album name, used when the listing omits it",
					},
					jsonFlag(),
					prettyFlag(true),
				},
				Action: r.SearchTracks,
			},
			{
				Name:  "top",
				Usage: "Show an artist's top three tracks",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "artist"},
				},
				Flags:  []cli.Flag{jsonFlag(), prettyFlag(true)},
				Action: r.SearchTop,
			},
			{
				Name:   "last",
				Usage:  "Show the most recent album search",
				Flags:  []cli.Flag{jsonFlag(), prettyFlag(true)},
				Action: r.SearchLast,
			},
			{
				Name:   "clear",
				Usage:  "Clear stored search results",
				Action: r.SearchClear,
			},
		},
	}
}

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for playlist browsing",
		Action:  r.TUI,
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Output raw JSON",
	}
}

func prettyFlag(value bool) cli.Flag {
	return &cli.BoolFlag{
		Name:  "pretty",
		Usage: "Pretty-print output",
		Value: value,
	}
}
