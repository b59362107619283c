package display

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
	"github.com/hammamikhairi/forkify/internal/recipe"
	"github.com/hammamikhairi/forkify/internal/search"
)

// PrintFunc prints one formatted line. Matches the signature of both
// UI.Printf and LineUI.Printf.
type PrintFunc func(format string, a ...interface{})

var _ domain.View = (*View)(nil)

// View renders controller updates as styled terminal lines. It keeps the
// little bookkeeping the terminal needs: which results are on screen,
// the order of list items and whether a loader is running.
type View struct {
	mu      sync.Mutex
	printFn PrintFunc
	log     *logger.Logger

	shown    []domain.RecipeSummary
	selected string
	listIDs  []string
	likes    map[string]domain.Like
	numLikes int
	loading  domain.Area
	busy     bool
}

// NewView creates a view printing through printFn. If printFn is nil,
// lines go to stdout.
func NewView(printFn PrintFunc, log *logger.Logger) *View {
	if printFn == nil {
		printFn = func(format string, a ...interface{}) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return &View{
		printFn: printFn,
		log:     log.With("view"),
		likes:   make(map[string]domain.Like),
	}
}

func (v *View) println(s string) { v.printFn("%s", s) }

// ── Input / loader ───────────────────────────────────────────────

// ClearInput is a no-op: the prompt resets itself on submit.
func (v *View) ClearInput() {}

// RenderLoader marks area as loading and prints a short notice.
func (v *View) RenderLoader(area domain.Area) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = area
	v.busy = true
	v.println(secondaryStyle.Render(LineLoading(area)))
}

// ClearLoader stops the loading indicator.
func (v *View) ClearLoader() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = false
}

// Loading returns the area currently loading, if any.
func (v *View) Loading() (domain.Area, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading, v.busy
}

// ── Results ──────────────────────────────────────────────────────

// ClearResults forgets the results on screen.
func (v *View) ClearResults() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.shown = nil
}

// RenderResults prints page of results followed by the page buttons.
func (v *View) RenderResults(results []domain.RecipeSummary, page, perPage int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.shown = search.Page(results, page, perPage)
	if len(v.shown) == 0 {
		v.println(secondaryStyle.Render(LineNoResults()))
		return
	}

	pages := search.Pages(len(results), perPage)
	v.println(headerStyle.Render(fmt.Sprintf("  Results (%d) · page %d/%d", len(results), page, pages)))
	for i, r := range v.shown {
		v.println(v.resultLine(i+1, r))
	}

	ctl := search.PageControls(page, len(results), perPage)
	if ctl.None() {
		return
	}
	var parts []string
	if ctl.Prev > 0 {
		parts = append(parts, fmt.Sprintf("‹ prev: page %d", ctl.Prev))
	}
	if ctl.Next > 0 {
		parts = append(parts, fmt.Sprintf("next: page %d ›", ctl.Next))
	}
	v.println(secondaryStyle.Render("  " + strings.Join(parts, "   ")))
}

func (v *View) resultLine(n int, r domain.RecipeSummary) string {
	marker := "  "
	title := primaryStyle.Render(search.LimitTitle(r.Title, search.TitleLimit))
	if r.ID == v.selected {
		marker = accentStyle.Render("▸ ")
		title = accentStyle.Render(search.LimitTitle(r.Title, search.TitleLimit))
	}
	return fmt.Sprintf("  %s%2d. %s %s", marker, n, title, secondaryStyle.Render("· "+r.Author))
}

// HighlightSelected marks id as the selected result.
func (v *View) HighlightSelected(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = id
	for i, r := range v.shown {
		if r.ID == id {
			v.println(v.resultLine(i+1, r))
			return
		}
	}
}

// ── Recipe ───────────────────────────────────────────────────────

// ClearRecipe prints a separator before the next recipe.
func (v *View) ClearRecipe() {
	v.println("")
}

// RenderRecipe prints the full recipe card.
func (v *View) RenderRecipe(r domain.Recipe, liked bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.println(titleStyle.Render("  " + strings.ToUpper(r.Title)))
	v.println(secondaryStyle.Render(fmt.Sprintf("  by %s · #%s", r.Author, r.ID)))
	v.println(primaryStyle.Render(fmt.Sprintf("  %d minutes · %s", r.CookTime, servingsLabel(r.Servings))) +
		"  " + likeBadge(liked))
	v.printIngredients(r.Ingredients)
	if r.SourceURL != "" {
		v.println(secondaryStyle.Render("  source: " + r.SourceURL))
	}
	v.println(secondaryStyle.Render(LineRecipeHint()))
}

// UpdateServingsIngredients reprints the servings and scaled ingredients.
func (v *View) UpdateServingsIngredients(r domain.Recipe) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.println(headerStyle.Render("  " + servingsLabel(r.Servings)))
	v.printIngredients(r.Ingredients)
}

func (v *View) printIngredients(ings []domain.Ingredient) {
	for _, ing := range ings {
		v.println(primaryStyle.Render("    • " + ingredientText(ing.Count, ing.Unit, ing.Name)))
	}
}

// RenderDirections prints numbered cooking steps.
func (v *View) RenderDirections(steps []string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.println(headerStyle.Render("  Directions"))
	for i, s := range steps {
		v.println(primaryStyle.Render(fmt.Sprintf("  %2d. %s", i+1, s)))
	}
}

// ── Shopping list ────────────────────────────────────────────────

// RenderListItem prints item with its current position. Known items are
// reprinted in place of a new entry.
func (v *View) RenderListItem(item domain.ListItem) {
	v.mu.Lock()
	defer v.mu.Unlock()

	pos := v.listPos(item.ID)
	if pos == 0 {
		v.listIDs = append(v.listIDs, item.ID)
		pos = len(v.listIDs)
	}
	v.println(primaryStyle.Render(fmt.Sprintf("  [%d] %s", pos, ingredientText(item.Count, item.Unit, item.Name))))
}

// DeleteListItem forgets item id. Later items move up one position.
func (v *View) DeleteListItem(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	pos := v.listPos(id)
	if pos == 0 {
		return
	}
	v.listIDs = append(v.listIDs[:pos-1], v.listIDs[pos:]...)
	v.println(secondaryStyle.Render(fmt.Sprintf("  removed item %d", pos)))
}

func (v *View) listPos(id string) int {
	for i, lid := range v.listIDs {
		if lid == id {
			return i + 1
		}
	}
	return 0
}

// ── Likes ────────────────────────────────────────────────────────

// ToggleLikeButton prints the new like state of the open recipe.
func (v *View) ToggleLikeButton(liked bool) {
	v.println("  " + likeBadge(liked))
}

// RenderLike prints one liked recipe.
func (v *View) RenderLike(like domain.Like) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.likes[like.ID] = like
	v.println(likeStyle.Render("  ♥ ") +
		primaryStyle.Render(search.LimitTitle(like.Title, search.TitleLimit)) +
		secondaryStyle.Render(fmt.Sprintf(" · %s · #%s", like.Author, like.ID)))
}

// DeleteLike forgets like id.
func (v *View) DeleteLike(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.likes, id)
}

// ToggleLikeMenu records the number of likes; the status bar shows it.
func (v *View) ToggleLikeMenu(numLikes int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.numLikes = numLikes
	if numLikes == 0 {
		v.println(secondaryStyle.Render(LineNoLikes()))
	}
}

// NumLikes returns the last count passed to ToggleLikeMenu.
func (v *View) NumLikes() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.numLikes
}

// ── Messages ─────────────────────────────────────────────────────

// Alert prints an error message.
func (v *View) Alert(message string) {
	v.log.Debug("alert: %s", message)
	v.println(urgentOutputStyle.Render("  " + message))
}

// Hint prints a dimmed line.
func (v *View) Hint(text string) {
	v.println(secondaryStyle.Render("  " + text))
}

// Info prints a normal line.
func (v *View) Info(text string) {
	v.println(chatStyle.Render("  " + text))
}

// ── Helpers ──────────────────────────────────────────────────────

func ingredientText(count *float64, unit, name string) string {
	parts := make([]string, 0, 3)
	if count != nil {
		parts = append(parts, recipe.FormatCount(count))
	}
	if unit != "" {
		parts = append(parts, unit)
	}
	parts = append(parts, name)
	return strings.Join(parts, " ")
}

func servingsLabel(n int) string {
	if n == 1 {
		return "1 serving"
	}
	return fmt.Sprintf("%d servings", n)
}

func likeBadge(liked bool) string {
	if liked {
		return likeStyle.Render("♥ liked")
	}
	return secondaryStyle.Render("♡ not liked")
}
