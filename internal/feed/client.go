// Package feed fetches the external MMA results scoreboard. The feed is
// untrusted: callers treat any error as "no results this cycle" and try
// again on the next tick.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cageside/fightcred/internal/metrics"
)

// DefaultBaseURL points at the public UFC scoreboard
const DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/mma/ufc"

// DefaultTimeout bounds one scoreboard fetch
const DefaultTimeout = 15 * time.Second

const userAgent = "Mozilla/5.0 (compatible; fightcred/1.0)"

// Client handles results feed requests
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new feed client. Zero values fall back to the public
// scoreboard with the default timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchScoreboard fetches the current scoreboard: recent and in-progress
// events with their bouts
func (c *Client) FetchScoreboard(ctx context.Context) (*Scoreboard, error) {
	url := fmt.Sprintf("%s/scoreboard", c.baseURL)

	metrics.FeedRequests.Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.FeedRequestErrors.Inc()
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.FeedRequestErrors.Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var scoreboard Scoreboard
	if err := json.NewDecoder(resp.Body).Decode(&scoreboard); err != nil {
		metrics.FeedRequestErrors.Inc()
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &scoreboard, nil
}
