package igdb

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"gamediary/config"
)

// Client talks to the IGDB metadata API (Twitch authentication).
// All IGDB endpoints take a POST with a small query language body and
// answer with a JSON array.
type Client struct {
	baseURL     string
	clientID    string
	accessToken string
	httpClient  *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:     config.IGDBBaseURL,
		clientID:    config.IGDBClientID,
		accessToken: config.IGDBAccessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NamedEntry is a bare id/name pair used by the genre, perspective and
// franchise endpoints
type NamedEntry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SearchResult is one hit of a game title search
type SearchResult struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
}

// GameData is the normalized detail payload for one game. Rating is
// nil when the API carries no aggregate rating, FranchiseID is nil for
// games outside any franchise.
type GameData struct {
	ID            uint
	Name          string
	CoverURL      string
	Year          int
	Rating        *int
	Summary       string
	FranchiseID   *uint
	FranchiseName string
	Genres        []uint
	Perspectives  []uint
}

func (c *Client) query(endpoint, body string, out interface{}) error {
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/"+endpoint, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("igdb %s: unexpected status %s", endpoint, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// Genres lists all genres known to the metadata API
func (c *Client) Genres() ([]NamedEntry, error) {
	var genres []NamedEntry
	if err := c.query("genres", "fields id, name; limit 50;", &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

// Perspectives lists all player perspectives known to the metadata API
func (c *Client) Perspectives() ([]NamedEntry, error) {
	var perspectives []NamedEntry
	if err := c.query("player_perspectives", "fields id, name; limit 50;", &perspectives); err != nil {
		return nil, err
	}
	return perspectives, nil
}

type rawSearchHit struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	FirstReleaseDate *int64 `json:"first_release_date"`
}

// SearchGames searches games by title. Hits without a release date are
// dropped, matching what the catalog can store.
func (c *Client) SearchGames(name string) ([]SearchResult, error) {
	var hits []rawSearchHit
	body := fmt.Sprintf("fields id, name, first_release_date; search %q; limit 100;", name)
	if err := c.query("games", body, &hits); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		if hit.FirstReleaseDate == nil {
			continue
		}
		results = append(results, SearchResult{
			ID:   hit.ID,
			Name: hit.Name,
			Year: yearOf(*hit.FirstReleaseDate),
		})
	}
	return results, nil
}

type rawGame struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	FirstReleaseDate int64    `json:"first_release_date"`
	TotalRating      *float64 `json:"total_rating"`
	Summary          string   `json:"summary"`
	Franchises       []uint   `json:"franchises"`
	Genres           []uint   `json:"genres"`
	Perspectives     []uint   `json:"player_perspectives"`
}

// GameData fetches the full detail payload for one game, including the
// cover url and the franchise name, which live behind separate
// endpoints.
func (c *Client) GameData(gameID uint) (*GameData, error) {
	var games []rawGame
	body := fmt.Sprintf("fields id, name, first_release_date, total_rating, summary, franchises, genres, player_perspectives; where id = %d;", gameID)
	if err := c.query("games", body, &games); err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("igdb: game %d not found", gameID)
	}
	raw := games[0]

	data := &GameData{
		ID:           raw.ID,
		Name:         raw.Name,
		Year:         yearOf(raw.FirstReleaseDate),
		Summary:      raw.Summary,
		Genres:       raw.Genres,
		Perspectives: raw.Perspectives,
	}

	if raw.TotalRating != nil {
		rating := int(math.Round(*raw.TotalRating))
		data.Rating = &rating
	}

	coverURL, err := c.coverURL(gameID)
	if err != nil {
		return nil, err
	}
	data.CoverURL = coverURL

	if len(raw.Franchises) > 0 {
		franchiseID := raw.Franchises[0]
		name, err := c.franchiseName(franchiseID)
		if err != nil {
			return nil, err
		}
		data.FranchiseID = &franchiseID
		data.FranchiseName = name
	}

	return data, nil
}

func (c *Client) coverURL(gameID uint) (string, error) {
	var covers []struct {
		URL string `json:"url"`
	}
	body := fmt.Sprintf("fields url; where game = %d;", gameID)
	if err := c.query("covers", body, &covers); err != nil {
		return "", err
	}
	if len(covers) == 0 {
		return "", nil
	}
	return covers[0].URL, nil
}

func (c *Client) franchiseName(franchiseID uint) (string, error) {
	var franchises []NamedEntry
	body := fmt.Sprintf("fields name; where id = %d;", franchiseID)
	if err := c.query("franchises", body, &franchises); err != nil {
		return "", err
	}
	if len(franchises) == 0 {
		return "", fmt.Errorf("igdb: franchise %d not found", franchiseID)
	}
	return franchises[0].Name, nil
}

func yearOf(unix int64) int {
	return time.Unix(unix, 0).UTC().Year()
}
