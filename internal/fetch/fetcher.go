// Package fetch retrieves grounding sources for the researcher agent.
// Fetching is polite: robots.txt is honored and requests are rate
// limited per domain. Failures degrade to an ungrounded run.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pmorozov/newscrew/internal/model"
	"github.com/pmorozov/newscrew/internal/util"
	"github.com/pmorozov/newscrew/internal/worker"
)

// Fetcher fetches source pages and extracts text excerpts
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	maxExcerpt int
	robots     *util.RobotsChecker // nil when robots checking is disabled
	limiter    *worker.Limiter
	verbose    bool
}

// NewFetcher creates a new Fetcher from configuration
func NewFetcher(httpCfg model.HTTPConfig, srcCfg model.SourcesConfig, verbose bool) *Fetcher {
	var robots *util.RobotsChecker
	if srcCfg.RespectRobots {
		robots = util.NewRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout)
	}

	maxExcerpt := srcCfg.MaxExcerptBytes
	if maxExcerpt <= 0 {
		maxExcerpt = 4000
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: httpCfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
			},
		},
		userAgent:  httpCfg.UserAgent,
		maxBytes:   httpCfg.MaxBodyBytes,
		maxExcerpt: maxExcerpt,
		robots:     robots,
		limiter:    worker.NewLimiter(srcCfg.RequestsPerSecond, srcCfg.Burst),
		verbose:    verbose,
	}
}

// FetchSources fetches the configured source URLs and returns whatever
// succeeded. Individual failures are logged and skipped, never fatal.
func (f *Fetcher) FetchSources(ctx context.Context, urls []string) []model.Source {
	var sources []model.Source

	for _, rawURL := range urls {
		src, err := f.fetchOne(ctx, rawURL)
		if err != nil {
			if f.verbose {
				fmt.Fprintf(os.Stderr, "Skipping source %s: %v\n", rawURL, err)
			}
			continue
		}
		sources = append(sources, src)
	}

	return sources
}

func (f *Fetcher) fetchOne(ctx context.Context, rawURL string) (model.Source, error) {
	crawlDelay := time.Duration(0)

	if f.robots != nil {
		allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return model.Source{}, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return model.Source{}, fmt.Errorf("disallowed by robots.txt")
		}
		crawlDelay = delay
	}

	if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return model.Source{}, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return model.Source{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return model.Source{}, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Source{}, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return model.Source{}, fmt.Errorf("read body: %w", err)
	}

	title, text := extractText(string(body))
	text = truncateExcerpt(text, f.maxExcerpt)

	return model.Source{
		URL:     resp.Request.URL.String(),
		Title:   title,
		Excerpt: strings.TrimSpace(text),
	}, nil
}

// truncateExcerpt caps text at max bytes, backing off to the previous
// rune boundary so a multi-byte character is never split.
func truncateExcerpt(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
