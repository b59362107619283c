// Package domain defines the core types and interfaces for the recipe browser.
// All other packages depend on domain; domain depends on nothing.
package domain

// RecipeSummary is a search hit. Read-only projection of the API.
type RecipeSummary struct {
	ID       string
	Title    string
	Author   string
	ImageURL string
}

// RecipeData is the full recipe as returned by the recipe API.
// Zero values mean the field was absent in the response.
type RecipeData struct {
	ID              string
	Title           string
	Author          string
	ImageURL        string
	SourceURL       string
	Servings        int
	CookTime        int // minutes
	IngredientLines []string
}

// Recipe is a display snapshot of the active recipe: API fields plus the
// parsed ingredients scaled to the current servings.
type Recipe struct {
	ID          string
	Title       string
	Author      string
	ImageURL    string
	SourceURL   string
	Servings    int
	CookTime    int
	Ingredients []Ingredient
}

// Ingredient is a free-text ingredient line parsed into parts.
// Count is nil when the quantity could not be parsed.
type Ingredient struct {
	Count *float64
	Unit  string
	Name  string
}

// ListItem is a single shopping-list row. Items are copies of recipe
// ingredients so they survive the recipe being replaced.
type ListItem struct {
	ID    string
	Count *float64
	Unit  string
	Name  string
}

// Like is a persisted bookmark of a recipe.
type Like struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	ImageURL string `json:"img"`
}

// Float returns a pointer to v. Handy for building counts.
func Float(v float64) *float64 { return &v }
