package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAudioDBService(t *testing.T) {
	t.Run("NewAudioDBService", func(t *testing.T) {
		t.Run("creates service with default URL", func(t *testing.T) {
			if svc := NewAudioDBService("", "123", nil); svc.baseURL != defaultAudioDBBaseURL {
				t.Errorf("expected baseURL to be %s, got %s", defaultAudioDBBaseURL, svc.baseURL)
			}
		})

		t.Run("creates service with custom URL", func(t *testing.T) {
			customURL := "http://localhost:9000"
			if svc := NewAudioDBService(customURL, "123", nil); svc.baseURL != customURL {
				t.Errorf("expected baseURL to be %s, got %s", customURL, svc.baseURL)
			}
		})
	})

	t.Run("Name", func(t *testing.T) {
		if svc := NewAudioDBService("", "123", nil); svc.Name() != "TheAudioDB" {
			t.Errorf("expected name TheAudioDB, got %s", svc.Name())
		}
	})

	t.Run("SearchAlbums", func(t *testing.T) {
		mockResponse := map[string]any{
			"album": []map[string]any{
				{
					"idAlbum":         "2109407",
					"strAlbum":        "A Night at the Opera",
					"strArtist":       "Queen",
					"intYearReleased": "1975",
					"strGenre":        "Rock",
					"strAlbumThumb":   "https://img.example/opera.jpg",
					"strDescriptionEN": "Fourth studio album.",
				},
				{
					"idAlbum":  "2109408",
					"strAlbum": "Jazz",
				},
			},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/123/searchalbum.php" {
				t.Errorf("expected path /123/searchalbum.php, got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("s"); got != "Queen" {
				t.Errorf("expected artist query Queen, got %s", got)
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(mockResponse)
		}))
		defer server.Close()

		svc := NewAudioDBService(server.URL, "123", nil)
		albums, err := svc.SearchAlbums(context.Background(), "Queen")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(albums) != 2 {
			t.Fatalf("expected 2 albums, got %d", len(albums))
		}

		first := albums[0]
		if first.ID != "2109407" {
			t.Errorf("expected id 2109407, got %s", first.ID)
		}
		if first.Name != "A Night at the Opera" {
			t.Errorf("unexpected album name %s", first.Name)
		}
		if first.Year != 1975 {
			t.Errorf("expected year 1975, got %d", first.Year)
		}
		if first.Description != "Fourth studio album." {
			t.Errorf("unexpected description %s", first.Description)
		}

		// Missing optional fields stay absent; the artist falls back to
		// the query string.
		second := albums[1]
		if second.Artist != "Queen" {
			t.Errorf("expected artist fallback Queen, got %s", second.Artist)
		}
		if second.Year != 0 || second.Genre != "" || second.Thumb != "" {
			t.Errorf("expected absent optional fields, got %+v", second)
		}
	})

	t.Run("SearchAlbums with no album key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"album": nil})
		}))
		defer server.Close()

		svc := NewAudioDBService(server.URL, "123", nil)
		albums, err := svc.SearchAlbums(context.Background(), "Xyzzy123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(albums) != 0 {
			t.Errorf("expected empty result, got %d albums", len(albums))
		}
	})

	t.Run("AlbumTracks", func(t *testing.T) {
		mockResponse := map[string]any{
			"track": []map[string]any{
				{
					"idTrack":         "32793500",
					"strTrack":        "Bohemian Rhapsody",
					"strArtist":       "Queen",
					"strGenre":        "Rock",
					"strAlbum":        "A Night at the Opera",
					"intTrackNumber":  "11",
					"intYearReleased": "1975",
				},
				{
					"idTrack":  "32793501",
					"strTrack": "Love of My Life",
				},
			},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/123/track.php" {
				t.Errorf("expected path /123/track.php, got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("m"); got != "2109407" {
				t.Errorf("expected album id 2109407, got %s", got)
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(mockResponse)
		}))
		defer server.Close()

		svc := NewAudioDBService(server.URL, "123", nil)
		tracks, err := svc.AlbumTracks(context.Background(), "2109407", "A Night at the Opera")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(tracks) != 2 {
			t.Fatalf("expected 2 tracks, got %d", len(tracks))
		}

		first := tracks[0]
		if first.ID != "32793500" || first.TrackNumber != 11 || first.Year != 1975 {
			t.Errorf("unexpected first track %+v", first)
		}

		// Genre defaults to Unknown, album name falls back to the
		// supplied tag.
		second := tracks[1]
		if second.Genre != "Unknown" {
			t.Errorf("expected genre Unknown, got %s", second.Genre)
		}
		if second.Album != "A Night at the Opera" {
			t.Errorf("expected album tag fallback, got %s", second.Album)
		}
	})

	t.Run("TopTracks", func(t *testing.T) {
		mockResponse := map[string]any{
			"track": []map[string]any{
				{"idTrack": "t1", "strTrack": "Song One", "strArtist": "Queen"},
				{"idTrack": "t2", "strTrack": "Song Two", "strArtist": "Queen"},
			},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/123/track-top10.php" {
				t.Errorf("expected path /123/track-top10.php, got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("s"); got != "Queen" {
				t.Errorf("expected artist query Queen, got %s", got)
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(mockResponse)
		}))
		defer server.Close()

		svc := NewAudioDBService(server.URL, "123", nil)
		tracks, err := svc.TopTracks(context.Background(), "Queen")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(tracks) != 2 {
			t.Fatalf("expected 2 tracks, got %d", len(tracks))
		}
		if tracks[0].Album != "" {
			t.Errorf("expected no album tag on top tracks, got %s", tracks[0].Album)
		}
	})

	t.Run("Error Handling", func(t *testing.T) {
		t.Run("handles non-success status", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer server.Close()

			svc := NewAudioDBService(server.URL, "123", nil)
			if _, err := svc.SearchAlbums(context.Background(), "Queen"); err == nil {
				t.Fatal("expected error for 429")
			}
		})

		t.Run("handles malformed body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			}))
			defer server.Close()

			svc := NewAudioDBService(server.URL, "123", nil)
			if _, err := svc.TopTracks(context.Background(), "Queen"); err == nil {
				t.Fatal("expected error for malformed body")
			}
		})

		t.Run("handles unreachable server", func(t *testing.T) {
			svc := NewAudioDBService("http://127.0.0.1:1", "123", nil)
			if _, err := svc.AlbumTracks(context.Background(), "1", "x"); err == nil {
				t.Fatal("expected transport error")
			}
		})
	})
}
