package store

import (
	"testing"

	"github.com/mixtape-cli/mixtape/internal/models"
	tu "github.com/mixtape-cli/mixtape/internal/testing"
)

func TestSessionContainer(t *testing.T) {
	t.Run("login derives a stable user id", func(t *testing.T) {
		s := newTestEnv(t).newStore(&tu.MockMetadataService{})

		first := s.Session().Login("maria@test.com")
		if first.ID != "user_maria_test_com" {
			t.Errorf("expected user_maria_test_com, got %q", first.ID)
		}
		if !first.LoggedIn {
			t.Error("expected LoggedIn true")
		}

		s.Session().Logout()
		second := s.Session().Login("maria@test.com")
		if second.ID != first.ID {
			t.Errorf("expected stable id across logins, got %q then %q", first.ID, second.ID)
		}
	})

	t.Run("login stamps the session metadata", func(t *testing.T) {
		s := newTestEnv(t).newStore(&tu.MockMetadataService{})

		s.Session().Login("user@test.com")

		data := s.Session().Data()
		if data.LastLogin == "" {
			t.Error("expected LastLogin to be set")
		}
	})

	t.Run("last playlist accessed is tracked", func(t *testing.T) {
		s := newTestEnv(t).newStore(&tu.MockMetadataService{})
		s.Session().Login("user@test.com")

		s.Session().UpdateLastPlaylistAccessed("playlist_abc")

		if got := s.Session().Data().LastPlaylistAccessed; got != "playlist_abc" {
			t.Errorf("expected playlist_abc, got %q", got)
		}
	})

	t.Run("session survives a restart", func(t *testing.T) {
		env := newTestEnv(t)
		first := env.newStore(&tu.MockMetadataService{})
		first.Session().Login("maria@test.com")
		first.Session().UpdateLastPlaylistAccessed("playlist_abc")

		second := env.newStore(&tu.MockMetadataService{})
		user := second.Session().CurrentUser()
		if user == nil || user.Email != "maria@test.com" {
			t.Fatalf("expected restored user maria@test.com, got %+v", user)
		}
		if got := second.Session().Data().LastPlaylistAccessed; got != "playlist_abc" {
			t.Errorf("expected restored playlist id, got %q", got)
		}
	})

	t.Run("logout clears everything", func(t *testing.T) {
		env := newTestEnv(t)
		s := env.newStore(&tu.MockMetadataService{})
		s.Session().Login("maria@test.com")

		s.Session().Logout()

		if user := s.Session().CurrentUser(); user != nil {
			t.Errorf("expected no user after logout, got %+v", user)
		}
		if data := s.Session().Data(); !data.IsEmpty() {
			t.Errorf("expected empty session metadata, got %+v", data)
		}

		restarted := env.newStore(&tu.MockMetadataService{})
		if user := restarted.Session().CurrentUser(); user != nil {
			t.Errorf("expected logout to survive restart, got %+v", user)
		}
	})

	t.Run("logout erases the last search mirror", func(t *testing.T) {
		env := newTestEnv(t)
		s := env.newStore(&tu.MockMetadataService{})
		s.Session().Login("maria@test.com")
		s.Music().SaveLastSearch("Queen", []models.Album{{ID: "a1", Name: "A Night at the Opera", Artist: "Queen"}})

		s.Session().Logout()

		if _, ok := s.Music().RestoreLastSearch(); ok {
			t.Error("expected the last search mirror to be gone")
		}
	})

	t.Run("current user is a copy", func(t *testing.T) {
		s := newTestEnv(t).newStore(&tu.MockMetadataService{})
		s.Session().Login("maria@test.com")

		user := s.Session().CurrentUser()
		user.Email = "mutated"

		again := s.Session().CurrentUser()
		if again.Email != "maria@test.com" {
			t.Error("expected CurrentUser to return a copy")
		}
	})
}
