// TheAudioDB implementation of [MetadataService]
//
// Response types based on https://www.theaudiodb.com/free_music_api
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mixtape-cli/mixtape/internal/models"
	"github.com/mixtape-cli/mixtape/internal/shared"
)

const defaultAudioDBBaseURL = "https://www.theaudiodb.com/api/v1/json"

// audioDBAlbum is one raw album record. Every field is a string and
// any of them may be absent or null.
type audioDBAlbum struct {
	IDAlbum          string `json:"idAlbum"`
	StrAlbum         string `json:"strAlbum"`
	StrArtist        string `json:"strArtist"`
	IntYearReleased  string `json:"intYearReleased"`
	StrGenre         string `json:"strGenre"`
	StrAlbumThumb    string `json:"strAlbumThumb"`
	StrDescriptionEN string `json:"strDescriptionEN"`
	StrDescription   string `json:"strDescription"`
}

// audioDBTrack is one raw track record.
type audioDBTrack struct {
	IDTrack         string `json:"idTrack"`
	StrTrack        string `json:"strTrack"`
	StrArtist       string `json:"strArtist"`
	StrGenre        string `json:"strGenre"`
	IntYearReleased string `json:"intYearReleased"`
	StrAlbum        string `json:"strAlbum"`
	IntTrackNumber  string `json:"intTrackNumber"`
	StrTrackThumb   string `json:"strTrackThumb"`
}

// albumSearchResponse wraps the album array. A missing key decodes to
// a nil slice and is treated as zero results.
type albumSearchResponse struct {
	Album []audioDBAlbum `json:"album"`
}

type trackListResponse struct {
	Track []audioDBTrack `json:"track"`
}

// AudioDBService implements [MetadataService] against TheAudioDB.
type AudioDBService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAudioDBService creates a TheAudioDB client. An empty baseURL
// selects the public API; a nil client selects [http.DefaultClient].
func NewAudioDBService(baseURL, apiKey string, client *http.Client) *AudioDBService {
	if baseURL == "" {
		baseURL = defaultAudioDBBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &AudioDBService{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
	}
}

func (s *AudioDBService) Name() string {
	return "TheAudioDB"
}

// get performs a GET request against one endpoint and decodes the JSON
// body into result.
func (s *AudioDBService) get(ctx context.Context, endpoint string, query url.Values, result any) error {
	fullURL := fmt.Sprintf("%s/%s/%s?%s", s.baseURL, s.apiKey, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// SearchAlbums queries searchalbum.php for albums by artist name.
func (s *AudioDBService) SearchAlbums(ctx context.Context, artist string) ([]models.Album, error) {
	var resp albumSearchResponse
	if err := s.get(ctx, "searchalbum.php", url.Values{"s": {artist}}, &resp); err != nil {
		return nil, err
	}

	albums := make([]models.Album, 0, len(resp.Album))
	for _, raw := range resp.Album {
		albums = append(albums, mapAlbum(raw, artist))
	}
	return albums, nil
}

// AlbumTracks queries track.php for the tracks of one album.
func (s *AudioDBService) AlbumTracks(ctx context.Context, albumID, albumName string) ([]models.Music, error) {
	var resp trackListResponse
	if err := s.get(ctx, "track.php", url.Values{"m": {albumID}}, &resp); err != nil {
		return nil, err
	}

	tracks := make([]models.Music, 0, len(resp.Track))
	for _, raw := range resp.Track {
		tracks = append(tracks, mapTrack(raw, albumName))
	}
	return tracks, nil
}

// TopTracks queries track-top10.php for an artist's most popular
// tracks. Results carry no album tag.
func (s *AudioDBService) TopTracks(ctx context.Context, artist string) ([]models.Music, error) {
	var resp trackListResponse
	if err := s.get(ctx, "track-top10.php", url.Values{"s": {artist}}, &resp); err != nil {
		return nil, err
	}

	tracks := make([]models.Music, 0, len(resp.Track))
	for _, raw := range resp.Track {
		tracks = append(tracks, mapTrack(raw, ""))
	}
	return tracks, nil
}

// mapAlbum converts a raw album record. The artist falls back to the
// query string when the record omits it; absent optional fields stay
// absent.
func mapAlbum(raw audioDBAlbum, queryArtist string) models.Album {
	album := models.Album{
		ID:          raw.IDAlbum,
		Name:        raw.StrAlbum,
		Artist:      raw.StrArtist,
		Genre:       raw.StrGenre,
		Thumb:       raw.StrAlbumThumb,
		Description: raw.StrDescriptionEN,
	}
	if album.Artist == "" {
		album.Artist = queryArtist
	}
	if album.Description == "" {
		album.Description = raw.StrDescription
	}
	if year, err := strconv.Atoi(raw.IntYearReleased); err == nil {
		album.Year = year
	}
	return album
}

// mapTrack converts a raw track record. Genre defaults to the literal
// "Unknown"; the album name falls back to albumName when supplied.
func mapTrack(raw audioDBTrack, albumName string) models.Music {
	music := models.Music{
		ID:     raw.IDTrack,
		Name:   raw.StrTrack,
		Artist: raw.StrArtist,
		Genre:  raw.StrGenre,
		Album:  raw.StrAlbum,
		Thumb:  raw.StrTrackThumb,
	}
	if music.Genre == "" {
		music.Genre = "Unknown"
	}
	if music.Album == "" {
		music.Album = albumName
	}
	if year, err := strconv.Atoi(raw.IntYearReleased); err == nil {
		music.Year = year
	}
	if num, err := strconv.Atoi(raw.IntTrackNumber); err == nil {
		music.TrackNumber = num
	}
	return music
}
