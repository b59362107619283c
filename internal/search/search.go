// Package search holds the active search session and result pagination.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammamikhairi/forkify/internal/domain"
)

// ResultsPerPage is the default page size of the results list.
const ResultsPerPage = 10

// TitleLimit is the default display width of a result title.
const TitleLimit = 17

// Session is one submitted query and its results. A new submission
// replaces the whole session.
type Session struct {
	Query   string
	Results []domain.RecipeSummary
}

// New starts a session for query with no results yet.
func New(query string) *Session {
	return &Session{Query: query}
}

// Fetch asks src for the results of the session's query. Exactly one
// call is issued. On error Results stay empty.
func (s *Session) Fetch(ctx context.Context, src domain.RecipeSource) error {
	results, err := src.Search(ctx, s.Query)
	if err != nil {
		return fmt.Errorf("search %q: %w", s.Query, err)
	}
	s.Results = results
	return nil
}

// Pages returns the number of pages needed for n results.
func Pages(n, perPage int) int {
	if perPage <= 0 {
		perPage = ResultsPerPage
	}
	if n <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// Page returns the results shown on the 1-based page. Out-of-range
// pages yield an empty slice.
func Page(results []domain.RecipeSummary, page, perPage int) []domain.RecipeSummary {
	if perPage <= 0 {
		perPage = ResultsPerPage
	}
	if page < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(results) {
		return nil
	}
	end := start + perPage
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

// Controls describes the page buttons shown under the results. A zero
// field means the button is absent.
type Controls struct {
	Prev int
	Next int
}

// None reports whether no page button is shown.
func (c Controls) None() bool { return c.Prev == 0 && c.Next == 0 }

// PageControls computes the buttons for page out of n results. Result
// sets that fit on one page get no buttons.
func PageControls(page, n, perPage int) Controls {
	pages := Pages(n, perPage)
	if pages <= 1 || page < 1 || page > pages {
		return Controls{}
	}
	var c Controls
	if page > 1 {
		c.Prev = page - 1
	}
	if page < pages {
		c.Next = page + 1
	}
	return c
}

// LimitTitle shortens title to at most limit characters, cutting on word
// boundaries and appending " ...".
func LimitTitle(title string, limit int) string {
	if limit <= 0 {
		limit = TitleLimit
	}
	if len([]rune(title)) <= limit {
		return title
	}

	var kept []string
	n := 0
	for _, w := range strings.Fields(title) {
		if n+len([]rune(w)) > limit {
			break
		}
		kept = append(kept, w)
		n += len([]rune(w))
	}
	if len(kept) == 0 {
		return string([]rune(title)[:limit]) + " ..."
	}
	return strings.Join(kept, " ") + " ..."
}
