package domain

import "context"

// RecipeSource answers search queries and recipe lookups. The production
// implementation is the HTTP client in package forkify.
type RecipeSource interface {
	Search(ctx context.Context, query string) ([]RecipeSummary, error)
	Get(ctx context.Context, id string) (*RecipeData, error)
}

// LikesStore persists the likes collection in a single logical slot.
// Load returns an empty slice when nothing was stored yet. Save replaces
// the whole slot.
type LikesStore interface {
	Load(ctx context.Context) ([]Like, error)
	Save(ctx context.Context, likes []Like) error
}

// DirectionsSource extracts cooking directions from a recipe's source page.
type DirectionsSource interface {
	Directions(ctx context.Context, sourceURL string) ([]string, error)
}

// Area names a region of the display that can host a loading indicator.
type Area int

const (
	AreaResults Area = iota
	AreaRecipe
)

// String returns a human-readable area name.
func (a Area) String() string {
	switch a {
	case AreaResults:
		return "results"
	case AreaRecipe:
		return "recipe"
	default:
		return "unknown"
	}
}

// View is the display boundary. Controllers never touch display
// primitives directly; every UI change goes through one of these calls.
type View interface {
	ClearInput()
	ClearResults()
	RenderLoader(area Area)
	ClearLoader()
	RenderResults(results []RecipeSummary, page, perPage int)
	HighlightSelected(id string)

	ClearRecipe()
	RenderRecipe(r Recipe, liked bool)
	UpdateServingsIngredients(r Recipe)
	RenderDirections(steps []string)

	RenderListItem(item ListItem)
	DeleteListItem(id string)

	ToggleLikeButton(liked bool)
	RenderLike(like Like)
	DeleteLike(id string)
	ToggleLikeMenu(numLikes int)

	Alert(message string)
}
