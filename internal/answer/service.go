package answer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/Reshmasriram29/AudioProcessor/internal/scrape"
	"github.com/Reshmasriram29/AudioProcessor/internal/search"
)

// sportsKeywords trigger the cricket-results path on a substring match.
// This is a coarse heuristic; "yesterday" alone is enough.
var sportsKeywords = []string{"cricket", "sports", "match", "game", "wicket", "yesterday"}

const (
	cricketUnavailableMsg = "Unable to fetch cricket results. Please try again later."
	siteUnavailableMsg    = "Unable to access sena.services. Please try again later or visit the website directly."
	siteBusyMsg           = "Unable to access sena.services at the moment. Please try again later or visit the website directly."
)

// SnippetSearcher yields web-search results for a query.
type SnippetSearcher interface {
	Search(ctx context.Context, query string, num int) ([]search.Result, error)
}

// SiteFetcher downloads and parses the fixed site.
type SiteFetcher interface {
	Fetch(ctx context.Context) (*goquery.Document, error)
	URL() string
}

// Service routes a query to an information source and always comes back
// with a usable answer text; every failure is absorbed into a substitute
// message.
type Service struct {
	searcher SnippetSearcher
	site     SiteFetcher
	logger   *zap.Logger
	now      func() time.Time
}

// NewService constructs the responder.
func NewService(searcher SnippetSearcher, site SiteFetcher, logger *zap.Logger) *Service {
	return &Service{
		searcher: searcher,
		site:     site,
		logger:   logger,
		now:      time.Now,
	}
}

// Answer classifies the query and resolves the matching fallback plan.
func (s *Service) Answer(ctx context.Context, query string) string {
	query = strings.ToLower(query)
	date := s.yesterday()

	if isSportsQuery(query) {
		s.logger.Debug("detected cricket-related query", zap.String("query", query))
		plan := Plan{
			Strategies: []Strategy{s.cricketResults(date)},
			OnError:    cricketUnavailableMsg,
		}
		return plan.Resolve(ctx)
	}

	plan := Plan{
		Strategies: []Strategy{s.siteServices(), s.cricketResults(date)},
		OnEmpty:    siteBusyMsg,
		OnError:    siteUnavailableMsg,
	}
	return plan.Resolve(ctx)
}

func isSportsQuery(query string) bool {
	for _, kw := range sportsKeywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

// yesterday formats the previous calendar day as a long human-readable
// date, e.g. "August 22, 2026".
func (s *Service) yesterday() string {
	return s.now().AddDate(0, 0, -1).Format("January 2, 2006")
}

// cricketResults searches for yesterday's cricket scorecards and joins the
// top snippets into an answer.
func (s *Service) cricketResults(date string) Strategy {
	return Strategy{
		Name: "cricket-results",
		Run: func(ctx context.Context) (string, Outcome) {
			query := fmt.Sprintf("cricket match results %s scorecard highlights", date)
			results, err := s.searcher.Search(ctx, query, 5)
			if err != nil {
				s.logger.Warn("cricket search failed", zap.Error(err))
				return "", OutcomeError
			}
			if len(results) == 0 {
				return fmt.Sprintf("No cricket results found for %s. Please try searching for a different date.", date), OutcomeEmpty
			}

			top := results
			if len(top) > 3 {
				top = top[:3]
			}
			var snippets []string
			for _, r := range top {
				if r.Snippet != "" {
					snippets = append(snippets, r.Snippet)
				}
			}
			if len(snippets) == 0 {
				return fmt.Sprintf("No detailed cricket results found for %s. Please try searching for a different date.", date), OutcomeEmpty
			}

			return fmt.Sprintf("Here are the cricket results from %s:\n\n%s", date, strings.Join(snippets, "\n\n")), OutcomeSuccess
		},
	}
}

// siteServices fetches the fixed site and summarizes the services it
// advertises. A non-success HTTP status comes back empty so the plan can
// fall back to cricket results; any other failure is terminal.
func (s *Service) siteServices() Strategy {
	return Strategy{
		Name: "site-services",
		Run: func(ctx context.Context) (string, Outcome) {
			doc, err := s.site.Fetch(ctx)
			if err != nil {
				if errors.Is(err, scrape.ErrBadStatus) {
					s.logger.Warn("site fetch failed, falling back to cricket results", zap.Error(err))
					return "", OutcomeEmpty
				}
				s.logger.Warn("site unreachable", zap.Error(err))
				return "", OutcomeError
			}

			services := scrape.Extract(doc)
			lines := make([]string, 0, len(services))
			for _, svc := range services {
				lines = append(lines, "- "+svc)
			}
			text := fmt.Sprintf("Sena provides the following services:\n%s\n\nFor more detailed information, please visit %s directly.",
				strings.Join(lines, "\n"), s.site.URL())
			return text, OutcomeSuccess
		},
	}
}
