package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ErrBadStatus reports a non-2xx response from the site. Callers treat it
// differently from transport errors: a bad status falls back to the
// sports-results path, a transport error does not.
var ErrBadStatus = errors.New("site returned non-success status")

// Fetcher downloads and parses the fixed site.
type Fetcher struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewFetcher constructs a Fetcher for the given site URL.
func NewFetcher(siteURL string, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		url:        siteURL,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// URL returns the configured site URL.
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch downloads the site and parses its HTML body.
func (f *Fetcher) Fetch(ctx context.Context) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build site request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Warn("site fetch failed", zap.String("url", f.url), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.url, err)
	}
	return doc, nil
}
