// Package controller wires user commands to state changes and view updates.
package controller

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/likes"
	"github.com/hammamikhairi/forkify/internal/logger"
	"github.com/hammamikhairi/forkify/internal/recipe"
	"github.com/hammamikhairi/forkify/internal/search"
	"github.com/hammamikhairi/forkify/internal/shopping"
)

// Alert texts shown to the user. Failures are never told apart.
const (
	AlertSearch     = "Something wrong with the search..."
	AlertRecipe     = "Error processing recipe!"
	AlertDirections = "Could not load the directions for this recipe."
	AlertExport     = "Could not export the shopping list!"
)

// State is the application state. It holds at most one active search,
// one active recipe, one shopping list and the likes collection.
type State struct {
	Search *search.Session
	Recipe *recipe.Detail
	List   *shopping.List
	Likes  *likes.Likes
}

// Option configures the Controller.
type Option func(*Controller)

// WithDirections enables the directions command backed by src.
func WithDirections(src domain.DirectionsSource) Option {
	return func(c *Controller) { c.dirs = src }
}

// WithResultsPerPage overrides the result page size.
func WithResultsPerPage(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// Controller runs the search, recipe, list and like flows against a
// State. Methods are safe to call from multiple goroutines; fetches run
// without holding the lock and their results are dropped when a newer
// request for the same slot was issued in the meantime.
type Controller struct {
	src   domain.RecipeSource
	dirs  domain.DirectionsSource
	view  domain.View
	state *State
	log   *logger.Logger

	perPage int

	mu        sync.Mutex
	page      int
	searchGen uint64
	recipeGen uint64
}

// New creates a controller. state.Likes must be set; the other fields
// may start nil.
func New(src domain.RecipeSource, view domain.View, state *State, log *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		src:     src,
		view:    view,
		state:   state,
		log:     log.With("controller"),
		perPage: search.ResultsPerPage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Search ───────────────────────────────────────────────────────

// Search submits query. Blank queries are ignored without a fetch. The
// new session replaces the old one before the fetch completes, so a
// failed search leaves an empty session behind.
func (c *Controller) Search(ctx context.Context, query string) domain.Outcome {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.OutcomeIgnored
	}

	c.mu.Lock()
	c.searchGen++
	gen := c.searchGen
	c.state.Search = search.New(query)
	c.page = 1
	c.view.ClearInput()
	c.view.ClearResults()
	c.view.RenderLoader(domain.AreaResults)
	c.mu.Unlock()

	pending := search.New(query)
	err := pending.Fetch(ctx, c.src)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.searchGen {
		c.log.Debug("discarding stale results for %q (gen %d, current %d)", query, gen, c.searchGen)
		return domain.OutcomeStale
	}
	if err != nil {
		c.log.Warn("%v", err)
		c.view.Alert(AlertSearch)
		c.view.ClearLoader()
		return domain.OutcomeFailed
	}

	c.state.Search = pending
	c.view.ClearLoader()
	c.view.RenderResults(pending.Results, 1, c.perPage)
	c.log.Info("search %q: %d results", query, len(pending.Results))
	return domain.OutcomeApplied
}

// Page re-renders the current results at page. No fetch is made.
func (c *Controller) Page(page int) domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderPage(page)
}

// NextPage moves one page forward.
func (c *Controller) NextPage() domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderPage(c.page + 1)
}

// PrevPage moves one page back.
func (c *Controller) PrevPage() domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderPage(c.page - 1)
}

func (c *Controller) renderPage(page int) domain.Outcome {
	s := c.state.Search
	if s == nil || len(s.Results) == 0 {
		return domain.OutcomeIgnored
	}
	if page < 1 || page > search.Pages(len(s.Results), c.perPage) {
		return domain.OutcomeIgnored
	}
	c.page = page
	c.view.ClearResults()
	c.view.RenderResults(s.Results, page, c.perPage)
	return domain.OutcomeApplied
}

// Select opens result n (1-based) of the page currently shown.
func (c *Controller) Select(ctx context.Context, n int) domain.Outcome {
	c.mu.Lock()
	var id string
	if s := c.state.Search; s != nil {
		shown := search.Page(s.Results, c.page, c.perPage)
		if n >= 1 && n <= len(shown) {
			id = shown[n-1].ID
		}
	}
	c.mu.Unlock()

	if id == "" {
		return domain.OutcomeIgnored
	}
	return c.OpenRecipe(ctx, id)
}

// ── Recipe ───────────────────────────────────────────────────────

// Navigate opens the recipe encoded in location: a "#<id>" fragment, a
// URL ending in one, or a bare id.
func (c *Controller) Navigate(ctx context.Context, location string) domain.Outcome {
	location = strings.TrimSpace(location)
	if i := strings.LastIndex(location, "#"); i >= 0 {
		location = location[i+1:]
	}
	return c.OpenRecipe(ctx, location)
}

// OpenRecipe fetches and shows recipe id. The new detail is installed
// before the fetch, so a failure leaves an unpopulated recipe in state.
func (c *Controller) OpenRecipe(ctx context.Context, id string) domain.Outcome {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.OutcomeIgnored
	}

	c.mu.Lock()
	c.recipeGen++
	gen := c.recipeGen
	detail := recipe.New(id)
	c.state.Recipe = detail
	c.view.ClearRecipe()
	c.view.RenderLoader(domain.AreaRecipe)
	if c.state.Search != nil {
		c.view.HighlightSelected(id)
	}
	c.mu.Unlock()

	data, err := c.src.Get(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.recipeGen {
		c.log.Debug("discarding stale recipe %s (gen %d, current %d)", id, gen, c.recipeGen)
		return domain.OutcomeStale
	}
	if err != nil {
		c.log.Warn("open recipe %s: %v", id, err)
		c.view.Alert(AlertRecipe)
		c.view.ClearLoader()
		return domain.OutcomeFailed
	}

	detail.Load(data)
	detail.Prepare()

	c.view.ClearLoader()
	c.view.RenderRecipe(detail.Snapshot(), c.isLiked(detail.ID))
	c.log.Info("opened recipe %s %q (%d ingredients)", detail.ID, detail.Title, len(detail.Ingredients))
	return domain.OutcomeApplied
}

// UpdateServings changes servings by one and rescales the ingredients.
// Going below one serving is ignored.
func (c *Controller) UpdateServings(dir recipe.Direction) domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.readyRecipe()
	if r == nil || !r.UpdateServings(dir) {
		return domain.OutcomeIgnored
	}
	c.view.UpdateServingsIngredients(r.Snapshot())
	c.log.Debug("servings %s -> %d", dir, r.Servings)
	return domain.OutcomeApplied
}

// Directions fetches the cooking steps from the recipe's source page.
func (c *Controller) Directions(ctx context.Context) domain.Outcome {
	c.mu.Lock()
	r := c.readyRecipe()
	if r == nil || c.dirs == nil {
		c.mu.Unlock()
		return domain.OutcomeIgnored
	}
	gen := c.recipeGen
	sourceURL := r.SourceURL
	c.view.RenderLoader(domain.AreaRecipe)
	c.mu.Unlock()

	steps, err := c.dirs.Directions(ctx, sourceURL)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.recipeGen {
		return domain.OutcomeStale
	}
	c.view.ClearLoader()
	if err != nil {
		c.log.Warn("directions %s: %v", sourceURL, err)
		c.view.Alert(AlertDirections)
		return domain.OutcomeFailed
	}
	c.view.RenderDirections(steps)
	return domain.OutcomeApplied
}

// readyRecipe returns the active recipe once it has been fetched.
func (c *Controller) readyRecipe() *recipe.Detail {
	if c.state.Recipe == nil || !c.state.Recipe.Ready() {
		return nil
	}
	return c.state.Recipe
}

// ── Shopping list ────────────────────────────────────────────────

// AddToList copies every ingredient of the active recipe into the
// shopping list, creating the list on first use.
func (c *Controller) AddToList() domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.readyRecipe()
	if r == nil {
		return domain.OutcomeIgnored
	}
	if c.state.List == nil {
		c.state.List = shopping.New()
	}
	for _, ing := range r.Ingredients {
		item := c.state.List.AddItem(ing.Count, ing.Unit, ing.Name)
		c.view.RenderListItem(item)
	}
	c.log.Debug("added %d items to the list (now %d)", len(r.Ingredients), c.state.List.Len())
	return domain.OutcomeApplied
}

// DeleteItem removes the item referenced by ref, a 1-based position or
// an item id. Unknown items are ignored.
func (c *Controller) DeleteItem(ref string) domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.List == nil {
		return domain.OutcomeIgnored
	}
	id := c.resolveItem(ref)
	if !c.state.List.DeleteItem(id) {
		return domain.OutcomeIgnored
	}
	c.view.DeleteListItem(id)
	return domain.OutcomeApplied
}

// UpdateCount sets the count of the item referenced by ref. Values that
// are not finite numbers are ignored and the count is kept.
func (c *Controller) UpdateCount(ref, raw string) domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.List == nil {
		return domain.OutcomeIgnored
	}
	id := c.resolveItem(ref)
	if !c.state.List.UpdateCount(id, raw) {
		c.log.Debug("rejected count %q for item %s", raw, ref)
		return domain.OutcomeIgnored
	}
	item, _ := c.state.List.Get(id)
	c.view.RenderListItem(item)
	return domain.OutcomeApplied
}

// Export writes the shopping list to path.
func (c *Controller) Export(path string) domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	path = strings.TrimSpace(path)
	if c.state.List == nil || c.state.List.Len() == 0 || path == "" {
		return domain.OutcomeIgnored
	}
	if err := c.state.List.Export(path); err != nil {
		c.log.Warn("%v", err)
		c.view.Alert(AlertExport)
		return domain.OutcomeFailed
	}
	c.log.Info("exported %d items to %s", c.state.List.Len(), path)
	return domain.OutcomeApplied
}

// ShowList renders every item of the shopping list.
func (c *Controller) ShowList() domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.List == nil || c.state.List.Len() == 0 {
		return domain.OutcomeIgnored
	}
	for _, item := range c.state.List.Items() {
		c.view.RenderListItem(item)
	}
	return domain.OutcomeApplied
}

func (c *Controller) resolveItem(ref string) string {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		items := c.state.List.Items()
		if n >= 1 && n <= len(items) {
			return items[n-1].ID
		}
	}
	return ref
}

// ── Likes ────────────────────────────────────────────────────────

// ToggleLike likes the active recipe, or unlikes it when already liked.
func (c *Controller) ToggleLike(ctx context.Context) domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.readyRecipe()
	if r == nil || c.state.Likes == nil {
		return domain.OutcomeIgnored
	}

	if !c.state.Likes.IsLiked(r.ID) {
		like, _ := c.state.Likes.Add(ctx, r.Like())
		c.view.ToggleLikeButton(true)
		c.view.RenderLike(like)
		c.log.Info("liked %s", r.ID)
	} else {
		c.state.Likes.Delete(ctx, r.ID)
		c.view.ToggleLikeButton(false)
		c.view.DeleteLike(r.ID)
		c.log.Info("unliked %s", r.ID)
	}
	c.view.ToggleLikeMenu(c.state.Likes.Count())
	return domain.OutcomeApplied
}

// RestoreLikes loads the persisted likes and renders them.
func (c *Controller) RestoreLikes(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Likes == nil {
		return
	}
	c.state.Likes.Restore(ctx)
	c.view.ToggleLikeMenu(c.state.Likes.Count())
	for _, like := range c.state.Likes.All() {
		c.view.RenderLike(like)
	}
}

// ShowLikes renders the likes collection.
func (c *Controller) ShowLikes() domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Likes == nil {
		return domain.OutcomeIgnored
	}
	c.view.ToggleLikeMenu(c.state.Likes.Count())
	for _, like := range c.state.Likes.All() {
		c.view.RenderLike(like)
	}
	return domain.OutcomeApplied
}

func (c *Controller) isLiked(id string) bool {
	return c.state.Likes != nil && c.state.Likes.IsLiked(id)
}
