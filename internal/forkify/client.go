// Package forkify is the HTTP client for the recipe search and detail API.
package forkify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
)

// DefaultBaseURL is the public recipe API.
const DefaultBaseURL = "https://forkify-api.herokuapp.com/api"

// ── Wire types ───────────────────────────────────────────────────

type searchResponse struct {
	Count   int          `json:"count"`
	Recipes []wireRecipe `json:"recipes"`
}

type getResponse struct {
	Recipe *wireRecipe `json:"recipe"`
}

type wireRecipe struct {
	ID          flexString `json:"recipe_id"`
	Title       string     `json:"title"`
	Publisher   string     `json:"publisher"`
	ImageURL    string     `json:"image_url"`
	SourceURL   string     `json:"source_url"`
	Ingredients []string   `json:"ingredients"`
	Servings    flexString `json:"servings"`
	CookingTime flexString `json:"cooking_time"`
}

// empty reports a recipe object with nothing identifying in it.
func (r *wireRecipe) empty() bool {
	return strings.TrimSpace(string(r.ID)) == "" && strings.TrimSpace(r.Title) == "" && len(r.Ingredients) == 0
}

// flexString accepts a JSON string or number. The API is not consistent
// about the type of ids and numeric extras.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) int() int {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(f)), 64)
	if err != nil || v < 0 {
		return 0
	}
	return int(v)
}

// ── Client ───────────────────────────────────────────────────────

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithAPIKey sends key as the "key" query parameter on every request.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) { c.apiKey = key }
}

var _ domain.RecipeSource = (*Client)(nil)

// Client talks to the recipe API. It never retries; a failed request is
// reported to the caller once.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a client for baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, log *logger.Logger, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 20 * time.Second},
		log:     log.With("forkify"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search returns the summaries matching query.
func (c *Client) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	var resp searchResponse
	if err := c.get(ctx, "search", url.Values{"q": {query}}, &resp); err != nil {
		return nil, err
	}

	out := make([]domain.RecipeSummary, 0, len(resp.Recipes))
	for _, r := range resp.Recipes {
		out = append(out, domain.RecipeSummary{
			ID:       string(r.ID),
			Title:    html.UnescapeString(r.Title),
			Author:   html.UnescapeString(r.Publisher),
			ImageURL: r.ImageURL,
		})
	}
	c.log.Debug("search %q: %d results (count=%d)", query, len(out), resp.Count)
	return out, nil
}

// Get returns the full recipe with id.
func (c *Client) Get(ctx context.Context, id string) (*domain.RecipeData, error) {
	var resp getResponse
	if err := c.get(ctx, "get", url.Values{"rId": {id}}, &resp); err != nil {
		return nil, err
	}
	if resp.Recipe == nil || resp.Recipe.empty() {
		return nil, fmt.Errorf("forkify: recipe %s: %w: %w", id, domain.ErrFetchFailed, domain.ErrNotFound)
	}

	r := resp.Recipe
	data := &domain.RecipeData{
		ID:              string(r.ID),
		Title:           html.UnescapeString(r.Title),
		Author:          html.UnescapeString(r.Publisher),
		ImageURL:        r.ImageURL,
		SourceURL:       r.SourceURL,
		Servings:        r.Servings.int(),
		CookTime:        r.CookingTime.int(),
		IngredientLines: r.Ingredients,
	}
	c.log.Debug("get %s: %q, %d ingredient lines", id, data.Title, len(data.IngredientLines))
	return data, nil
}

func (c *Client) get(ctx context.Context, resource string, params url.Values, out any) error {
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	endpoint := c.baseURL + "/" + resource + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("forkify: create request: %w: %w", domain.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("GET %s/%s", c.baseURL, resource)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("forkify: request failed: %w: %w", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("forkify: read response: %w: %w", domain.ErrFetchFailed, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("forkify: %s: %w: %w", resource, domain.ErrFetchFailed, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("forkify: API %s: %w: %s", resp.Status, domain.ErrFetchFailed, truncate(string(body), 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("forkify: unmarshal response: %w: %w", domain.ErrFetchFailed, err)
	}
	return nil
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
