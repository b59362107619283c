// Package directions extracts cooking steps from a recipe's source page.
package directions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
)

// ErrNoDirections is returned when the page has no recognisable steps.
var ErrNoDirections = errors.New("directions: no steps found")

// selectors are tried in order; the first one yielding steps wins.
var selectors = []string{
	"[itemprop=recipeInstructions]",
	".recipe-directions li, .directions li, .instructions li",
	"ol li",
}

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

var defaultBackoffs = []time.Duration{0, 500 * time.Millisecond, 1 * time.Second, 2 * time.Second}

// Option configures the Scraper.
type Option func(*Scraper)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(s *Scraper) { s.http = h }
}

// WithBackoffs sets the delays before each attempt. The first entry is
// normally zero.
func WithBackoffs(b ...time.Duration) Option {
	return func(s *Scraper) { s.backoffs = b }
}

var _ domain.DirectionsSource = (*Scraper)(nil)

// Scraper fetches recipe pages and pulls out their directions.
type Scraper struct {
	http     *http.Client
	backoffs []time.Duration
	log      *logger.Logger
}

// New creates a Scraper.
func New(log *logger.Logger, opts ...Option) *Scraper {
	s := &Scraper{
		http:     &http.Client{Timeout: 25 * time.Second},
		backoffs: defaultBackoffs,
		log:      log.With("directions"),
	}
	for _, o := range opts {
		o(s)
	}
	if len(s.backoffs) == 0 {
		s.backoffs = []time.Duration{0}
	}
	return s
}

// Directions fetches sourceURL and returns its steps in page order.
func (s *Scraper) Directions(ctx context.Context, sourceURL string) ([]string, error) {
	if sourceURL == "" {
		return nil, ErrNoDirections
	}

	body, err := s.fetch(ctx, sourceURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("directions: parse %s: %w", sourceURL, err)
	}

	steps := Extract(doc)
	if len(steps) == 0 {
		return nil, ErrNoDirections
	}
	s.log.Debug("%d steps from %s", len(steps), sourceURL)
	return steps, nil
}

// Extract returns the steps found in doc using the first selector that
// matches any non-empty text.
func Extract(doc *goquery.Document) []string {
	for _, sel := range selectors {
		var steps []string
		doc.Find(sel).Each(func(_ int, item *goquery.Selection) {
			if text := clean(item.Text()); text != "" {
				steps = append(steps, text)
			}
		})
		if len(steps) > 0 {
			return steps
		}
	}
	return nil
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// fetch performs a GET with a bounded retry on network errors, 5xx and
// 429 responses.
func (s *Scraper) fetch(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	var resp *http.Response
	var err error
	for i, d := range s.backoffs {
		if d > 0 {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, rerr := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if rerr != nil {
			return nil, fmt.Errorf("directions: create request: %w", rerr)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

		last := i == len(s.backoffs)-1
		resp, err = s.http.Do(req)
		if err != nil {
			if !last {
				s.log.Debug("attempt %d failed: %v", i+1, err)
				continue
			}
			return nil, fmt.Errorf("directions: request failed: %w", err)
		}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			if !last {
				s.log.Debug("attempt %d: %s", i+1, resp.Status)
				continue
			}
			return nil, fmt.Errorf("directions: server error: %s", resp.Status)
		}
		break
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("directions: bad status %s", resp.Status)
	}
	return resp.Body, nil
}
