package main

import (
	"context"
	"fmt"

	"github.com/mixtape-cli/mixtape/internal/auth"
	"github.com/mixtape-cli/mixtape/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin validates the supplied credentials against the allow list
// and starts a session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.StringArg("email")
	password := cmd.StringArg("password")

	if fieldErrs := auth.Validate(email, password); len(fieldErrs) > 0 {
		for field, msg := range fieldErrs {
			r.writePlain("%s: %s\n", field, msg)
		}
		return fmt.Errorf("%w: fix the fields above", shared.ErrInvalidInput)
	}

	if !auth.Check(r.config.Credentials, email, password) {
		return fmt.Errorf("%w: unknown email or wrong password", shared.ErrInvalidCredentials)
	}

	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	user := s.Session().Login(email)
	r.logger.Info("logged in", "user", user.ID)
	r.writePlain("✓ Logged in as %s\n", user.Email)

	return nil
}

// AuthLogout ends the session and clears session-scoped state.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if s.Session().CurrentUser() == nil {
		r.writePlain("Not logged in\n")
		return nil
	}

	s.Session().Logout()
	r.writePlain("✓ Logged out\n")
	return nil
}

// AuthStatus reports the current session and library summary.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	s, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	user := s.Session().CurrentUser()
	data := s.Session().Data()

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"user":    user,
			"session": data,
		}, cmd.Bool("pretty"))
	}

	if user == nil {
		r.writePlain("Not logged in\n")
		return nil
	}

	r.writePlain("Logged in as: %s\n", user.Email)
	if data.LastLogin != "" {
		r.writePlain("Last login: %s\n", data.LastLogin)
	}
	if data.LastPlaylistAccessed != "" {
		r.writePlain("Last playlist: %s\n", data.LastPlaylistAccessed)
	}
	r.writePlain("Playlists: %d\n", len(s.Playlists().ForUser(user.ID)))

	return nil
}
