// Package recipe holds the active recipe model: parsed ingredients,
// servings scaling and the display defaults for time and servings.
package recipe

import (
	"math"

	"github.com/hammamikhairi/forkify/internal/domain"
)

// Defaults used when the API does not provide a value.
const (
	DefaultServings    = 4
	minutesPerPeriod   = 15
	ingredientsPerStep = 3
)

// Direction is a servings adjustment.
type Direction int

const (
	Decrease Direction = iota
	Increase
)

// String returns "dec" or "inc".
func (d Direction) String() string {
	if d == Increase {
		return "inc"
	}
	return "dec"
}

// Detail is the recipe currently open. It keeps an unscaled baseline so
// repeated servings changes never accumulate rounding error.
type Detail struct {
	ID        string
	Title     string
	Author    string
	ImageURL  string
	SourceURL string
	Servings  int
	CookTime  int
	Lines     []string

	Ingredients []domain.Ingredient

	baseServings int
	baseCounts   []*float64
}

// New creates an empty detail for id. It is populated by Load.
func New(id string) *Detail {
	return &Detail{ID: id}
}

// Load copies API data into the detail. The id is kept when the response
// omits it.
func (d *Detail) Load(data *domain.RecipeData) {
	if data.ID != "" {
		d.ID = data.ID
	}
	d.Title = data.Title
	d.Author = data.Author
	d.ImageURL = data.ImageURL
	d.SourceURL = data.SourceURL
	d.Servings = data.Servings
	d.CookTime = data.CookTime
	d.Lines = append([]string(nil), data.IngredientLines...)
}

// ParseIngredients parses every raw line and resets the baseline.
func (d *Detail) ParseIngredients() {
	d.Ingredients = make([]domain.Ingredient, len(d.Lines))
	for i, line := range d.Lines {
		d.Ingredients[i] = ParseIngredient(line)
	}
	d.rebase()
}

// CalcTime estimates cook time when the API gave none: 15 minutes for
// every 3 ingredients, rounded up.
func (d *Detail) CalcTime() {
	if d.CookTime > 0 {
		return
	}
	periods := int(math.Ceil(float64(len(d.Lines)) / ingredientsPerStep))
	d.CookTime = periods * minutesPerPeriod
}

// CalcServings falls back to DefaultServings when the API gave none.
func (d *Detail) CalcServings() {
	if d.Servings < 1 {
		d.Servings = DefaultServings
	}
	d.rebase()
}

// Prepare runs the full post-fetch pipeline in order.
func (d *Detail) Prepare() {
	d.ParseIngredients()
	d.CalcTime()
	d.CalcServings()
}

// Ready reports whether Prepare has run, i.e. the detail was fetched and
// has usable servings.
func (d *Detail) Ready() bool { return d.Servings >= 1 && d.baseServings >= 1 }

// UpdateServings moves servings by one in the given direction and rescales
// every ingredient from the baseline. Decreasing below 1 is rejected and
// reported with false.
func (d *Detail) UpdateServings(dir Direction) bool {
	next := d.Servings + 1
	if dir == Decrease {
		next = d.Servings - 1
	}
	if next < 1 {
		return false
	}
	d.Servings = next

	if d.baseServings < 1 {
		d.rebase()
		return true
	}
	for i := range d.Ingredients {
		if i >= len(d.baseCounts) || d.baseCounts[i] == nil {
			continue
		}
		v := *d.baseCounts[i]
		if next != d.baseServings {
			v = v * float64(next) / float64(d.baseServings)
		}
		d.Ingredients[i].Count = &v
	}
	return true
}

// rebase records the current servings and counts as the unscaled baseline.
func (d *Detail) rebase() {
	d.baseServings = d.Servings
	d.baseCounts = make([]*float64, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		if ing.Count != nil {
			v := *ing.Count
			d.baseCounts[i] = &v
		}
	}
}

// Snapshot returns a copy safe to hand to the view or to the shopping list.
func (d *Detail) Snapshot() domain.Recipe {
	return domain.Recipe{
		ID:          d.ID,
		Title:       d.Title,
		Author:      d.Author,
		ImageURL:    d.ImageURL,
		SourceURL:   d.SourceURL,
		Servings:    d.Servings,
		CookTime:    d.CookTime,
		Ingredients: CopyIngredients(d.Ingredients),
	}
}

// Like returns the like snapshot of this recipe.
func (d *Detail) Like() domain.Like {
	return domain.Like{ID: d.ID, Title: d.Title, Author: d.Author, ImageURL: d.ImageURL}
}

// CopyIngredients deep-copies ingredients including their counts.
func CopyIngredients(in []domain.Ingredient) []domain.Ingredient {
	out := make([]domain.Ingredient, len(in))
	for i, ing := range in {
		out[i] = domain.Ingredient{Unit: ing.Unit, Name: ing.Name}
		if ing.Count != nil {
			v := *ing.Count
			out[i].Count = &v
		}
	}
	return out
}
