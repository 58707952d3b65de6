package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://serpapi.com/search"

// ErrMissingAPIKey is returned when a search is attempted without a
// configured SerpAPI credential. The credential is deliberately not
// checked at startup.
var ErrMissingAPIKey = errors.New("serpapi key is not configured")

// Result is one organic search result. Snippet may be empty; callers are
// expected to skip snippet-less results.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type response struct {
	OrganicResults []Result `json:"organic_results"`
}

// Client queries the SerpAPI web-search endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient constructs a search client. The key may be empty; Search then
// fails with ErrMissingAPIKey on first use.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// SetBaseURL overrides the SerpAPI endpoint, used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// Search runs a web search and returns the organic results.
func (c *Client) Search(ctx context.Context, query string, num int) ([]Result, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("q", query)
	params.Set("engine", "google")
	params.Set("num", strconv.Itoa(num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	c.logger.Debug("searching", zap.String("query", query), zap.Int("num", num))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return body.OrganicResults, nil
}
