package answer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/Reshmasriram29/AudioProcessor/internal/scrape"
	"github.com/Reshmasriram29/AudioProcessor/internal/search"
)

// fixedNow pins "yesterday" to June 14, 2024 for deterministic output.
var fixedNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

const fixedDate = "June 14, 2024"

type fakeSearcher struct {
	results []search.Result
	err     error
	queries []string
	nums    []int
}

func (f *fakeSearcher) Search(ctx context.Context, query string, num int) ([]search.Result, error) {
	f.queries = append(f.queries, query)
	f.nums = append(f.nums, num)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

type fakeSite struct {
	html    string
	err     error
	fetches int
}

func (f *fakeSite) Fetch(ctx context.Context) (*goquery.Document, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(f.html))
}

func (f *fakeSite) URL() string {
	return "https://sena.services"
}

func newTestService(searcher SnippetSearcher, site SiteFetcher) *Service {
	svc := NewService(searcher, site, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func snippetResults(n int) []search.Result {
	results := make([]search.Result, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, search.Result{
			Title:   fmt.Sprintf("Result %d", i+1),
			Link:    fmt.Sprintf("https://example.com/%d", i+1),
			Snippet: fmt.Sprintf("snippet %d", i+1),
		})
	}
	return results
}

func TestSportsClassification(t *testing.T) {
	cases := []struct {
		query  string
		sports bool
	}{
		{"cricket scores", true},
		{"Who won the CRICKET match", true},
		{"any sports news", true},
		{"what happened yesterday", true},
		{"how many wickets fell", true},
		{"board game night", true}, // "game" substring, accepted false positive
		{"what services does sena provide", false},
		{"tell me about the company", false},
	}
	for _, tc := range cases {
		if got := isSportsQuery(strings.ToLower(tc.query)); got != tc.sports {
			t.Fatalf("query %q: expected sports=%v, got %v", tc.query, tc.sports, got)
		}
	}
}

func TestSportsPathUsesTopThreeSnippets(t *testing.T) {
	searcher := &fakeSearcher{results: snippetResults(5)}
	svc := newTestService(searcher, &fakeSite{})

	got := svc.Answer(context.Background(), "cricket results please")

	wantPrefix := fmt.Sprintf("Here are the cricket results from %s:\n\n", fixedDate)
	if !strings.HasPrefix(got, wantPrefix) {
		t.Fatalf("missing date prefix, got %q", got)
	}
	body := strings.TrimPrefix(got, wantPrefix)
	if body != "snippet 1\n\nsnippet 2\n\nsnippet 3" {
		t.Fatalf("expected top three snippets joined by blank lines, got %q", body)
	}

	if len(searcher.queries) != 1 {
		t.Fatalf("expected one search, got %d", len(searcher.queries))
	}
	wantQuery := fmt.Sprintf("cricket match results %s scorecard highlights", fixedDate)
	if searcher.queries[0] != wantQuery {
		t.Fatalf("expected query %q, got %q", wantQuery, searcher.queries[0])
	}
	if searcher.nums[0] != 5 {
		t.Fatalf("expected result count 5, got %d", searcher.nums[0])
	}
}

func TestSportsPathFewResults(t *testing.T) {
	for _, n := range []int{1, 2} {
		searcher := &fakeSearcher{results: snippetResults(n)}
		svc := newTestService(searcher, &fakeSite{})

		got := svc.Answer(context.Background(), "cricket")
		if count := strings.Count(got, "snippet"); count != n {
			t.Fatalf("n=%d: expected %d snippets, got %d in %q", n, n, count, got)
		}
	}
}

func TestSportsPathSkipsSnippetlessResults(t *testing.T) {
	searcher := &fakeSearcher{results: []search.Result{
		{Title: "A", Snippet: "first"},
		{Title: "B"},
		{Title: "C", Snippet: "third"},
		{Title: "D", Snippet: "fourth, beyond the top three"},
	}}
	svc := newTestService(searcher, &fakeSite{})

	got := svc.Answer(context.Background(), "cricket")
	if !strings.Contains(got, "first\n\nthird") {
		t.Fatalf("expected snippet-bearing results from the top three, got %q", got)
	}
	if strings.Contains(got, "fourth") {
		t.Fatalf("result beyond the top three must be ignored, got %q", got)
	}
}

func TestSportsPathNoResults(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := newTestService(searcher, &fakeSite{})

	got := svc.Answer(context.Background(), "cricket")
	want := fmt.Sprintf("No cricket results found for %s. Please try searching for a different date.", fixedDate)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSportsPathNoSnippets(t *testing.T) {
	searcher := &fakeSearcher{results: []search.Result{{Title: "A"}, {Title: "B"}}}
	svc := newTestService(searcher, &fakeSite{})

	got := svc.Answer(context.Background(), "cricket")
	want := fmt.Sprintf("No detailed cricket results found for %s. Please try searching for a different date.", fixedDate)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSportsPathProviderError(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("boom")}
	svc := newTestService(searcher, &fakeSite{})

	got := svc.Answer(context.Background(), "cricket")
	if got != cricketUnavailableMsg {
		t.Fatalf("expected apology, got %q", got)
	}
}

func TestSitePathFormatsServices(t *testing.T) {
	site := &fakeSite{html: `
		<html><body>
		<section class="services">
			<li>Custom Web Development</li>
			<li>Cloud Migration Support</li>
		</section>
		</body></html>`}
	searcher := &fakeSearcher{}
	svc := newTestService(searcher, site)

	got := svc.Answer(context.Background(), "what does sena do")
	want := "Sena provides the following services:\n" +
		"- Custom Web Development\n" +
		"- Cloud Migration Support\n\n" +
		"For more detailed information, please visit https://sena.services directly."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if len(searcher.queries) != 0 {
		t.Fatalf("search provider must not be called on site success")
	}
}

func TestSitePathDefaultsWhenPageIsBare(t *testing.T) {
	site := &fakeSite{html: `<html><body><p>Hi.</p></body></html>`}
	svc := newTestService(&fakeSearcher{}, site)

	got := svc.Answer(context.Background(), "what does sena do")
	for _, svcName := range scrape.DefaultServices {
		if !strings.Contains(got, "- "+svcName) {
			t.Fatalf("expected default service %q in %q", svcName, got)
		}
	}
}

func TestSiteBadStatusFallsBackToCricket(t *testing.T) {
	searcher := &fakeSearcher{results: snippetResults(5)}
	site := &fakeSite{err: fmt.Errorf("%w: 503", scrape.ErrBadStatus)}
	svc := newTestService(searcher, site)

	got := svc.Answer(context.Background(), "what does sena do")

	// The fallback must be exactly the direct sports answer for the date.
	direct := newTestService(&fakeSearcher{results: snippetResults(5)}, &fakeSite{}).
		Answer(context.Background(), "cricket")
	if got != direct {
		t.Fatalf("fallback output %q differs from direct sports output %q", got, direct)
	}
}

func TestSiteBadStatusThenEmptyCricket(t *testing.T) {
	searcher := &fakeSearcher{}
	site := &fakeSite{err: fmt.Errorf("%w: 503", scrape.ErrBadStatus)}
	svc := newTestService(searcher, site)

	got := svc.Answer(context.Background(), "what does sena do")
	if got != siteBusyMsg {
		t.Fatalf("expected %q, got %q", siteBusyMsg, got)
	}
}

func TestSiteTransportErrorIsTerminal(t *testing.T) {
	searcher := &fakeSearcher{results: snippetResults(5)}
	site := &fakeSite{err: errors.New("connection refused")}
	svc := newTestService(searcher, site)

	got := svc.Answer(context.Background(), "what does sena do")
	if got != siteUnavailableMsg {
		t.Fatalf("expected %q, got %q", siteUnavailableMsg, got)
	}
	if len(searcher.queries) != 0 {
		t.Fatalf("transport errors must not fall back to the search provider")
	}
}
