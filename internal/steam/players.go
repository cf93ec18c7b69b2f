package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"steam-inventory/internal/domain"
)

const defaultAPIBaseURL = "https://api.steampowered.com"

// PlayerClient reads player summaries from the Steam Web API.
type PlayerClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewPlayerClient creates a PlayerClient. An empty baseURL uses the public
// Steam Web API and a nil client uses http.DefaultClient.
func NewPlayerClient(apiKey, baseURL string, client *http.Client) *PlayerClient {
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &PlayerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

type playerSummariesResponse struct {
	Response struct {
		Players []struct {
			SteamID      string `json:"steamid"`
			PersonaName  string `json:"personaname"`
			ProfileURL   string `json:"profileurl"`
			AvatarMedium string `json:"avatarmedium"`
			PersonaState int    `json:"personastate"`
			RealName     string `json:"realname"`
		} `json:"players"`
	} `json:"response"`
}

// Summary fetches the profile of steamID and builds the Principal from it.
func (c *PlayerClient) Summary(ctx context.Context, steamID string) (domain.Principal, error) {
	if c.apiKey == "" {
		return domain.Principal{}, fmt.Errorf("steam api key is not configured")
	}
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("steamids", steamID)
	endpoint := c.baseURL + "/ISteamUser/GetPlayerSummaries/v0002/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("build player summary request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("player summary request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Principal{}, domain.ErrUpstream("steam web api", resp.StatusCode, "%s", strings.TrimSpace(string(body)))
	}

	var payload playerSummariesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Principal{}, fmt.Errorf("decode player summary: %w", err)
	}
	for _, pl := range payload.Response.Players {
		if pl.SteamID != steamID {
			continue
		}
		return domain.NewPrincipal(domain.ProfileInput{
			SteamID:      pl.SteamID,
			PersonaName:  pl.PersonaName,
			AvatarMedium: pl.AvatarMedium,
			ProfileURL:   pl.ProfileURL,
			PersonaState: pl.PersonaState,
			RealName:     pl.RealName,
		})
	}
	return domain.Principal{}, domain.ErrUpstream("steam web api", 0, "no player summary for %s", steamID)
}
