package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrPlayerNotFound means the upstream API has no player for the given
// username/platform pair.
var ErrPlayerNotFound = errors.New("player not found in API")

// Config holds stats API configuration from environment variables.
type Config struct {
	APIKey  string
	BaseURL string
}

// PlayerStats is the decoded upstream payload for one player.
type PlayerStats struct {
	Level          int
	Kills          int
	Deaths         int
	KillDeathRatio float64
	Damage         int
	Wins           int
	Rank           string
	ActiveLegend   string
	CurrentMap     string
}

// Client fetches player statistics from the Apex Legends status API.
type Client struct {
	config  Config
	client  *http.Client
	baseURL string
}

// NewClient creates a stats API client with the given configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.mozambiquehe.re/bridge"
	}
	return &Client{
		config:  cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

type apiResponse struct {
	Error  string `json:"Error"`
	Global struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
		Rank  struct {
			RankName string `json:"rankName"`
			RankDiv  int    `json:"rankDiv"`
		} `json:"rank"`
	} `json:"global"`
	Realtime struct {
		SelectedLegend string `json:"selectedLegend"`
		CurrentMap     string `json:"map"`
	} `json:"realtime"`
	Total struct {
		Kills  apiMetric      `json:"kills"`
		Deaths apiMetric      `json:"deaths"`
		Damage apiMetric      `json:"damage"`
		Wins   apiMetric      `json:"wins"`
		KD     apiFloatMetric `json:"kd"`
	} `json:"total"`
}

type apiMetric struct {
	Value int `json:"value"`
}

type apiFloatMetric struct {
	Value float64 `json:"value"`
}

// apiPlatform translates site platform names into the identifiers the
// upstream API expects.
func apiPlatform(platform string) string {
	switch platform {
	case "XBOX":
		return "X1"
	case "PSN":
		return "PS4"
	default:
		return platform
	}
}

// FetchPlayerStats retrieves statistics for a username on a platform.
// Returns ErrPlayerNotFound when the API does not know the player; any
// other failure is returned as-is for the caller to map to a response.
func (c *Client) FetchPlayerStats(ctx context.Context, username, platform string) (*PlayerStats, error) {
	q := url.Values{}
	q.Set("auth", c.config.APIKey)
	q.Set("player", username)
	q.Set("platform", apiPlatform(platform))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build stats request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stats API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPlayerNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats API returned status %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode stats response: %w", err)
	}

	// The API reports unknown players inside a 200 body.
	if apiResp.Error != "" {
		return nil, ErrPlayerNotFound
	}

	kd := apiResp.Total.KD.Value
	if kd == 0 && apiResp.Total.Deaths.Value > 0 {
		kd = float64(apiResp.Total.Kills.Value) / float64(apiResp.Total.Deaths.Value)
	}

	return &PlayerStats{
		Level:          apiResp.Global.Level,
		Kills:          apiResp.Total.Kills.Value,
		Deaths:         apiResp.Total.Deaths.Value,
		KillDeathRatio: kd,
		Damage:         apiResp.Total.Damage.Value,
		Wins:           apiResp.Total.Wins.Value,
		Rank:           apiResp.Global.Rank.RankName,
		ActiveLegend:   apiResp.Realtime.SelectedLegend,
		CurrentMap:     apiResp.Realtime.CurrentMap,
	}, nil
}
