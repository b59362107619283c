package display

import (
	"fmt"

	"github.com/hammamikhairi/forkify/internal/domain"
)

// ── Greeting / Global ────────────────────────────────────────────

func LineWelcome() string {
	return "  Type 'search <something>' to find recipes, 'help' for commands, 'quit' to exit."
}

func LineBye() string {
	return "Bye."
}

func LineUnknown(input string) string {
	return fmt.Sprintf("Not sure what %q means. Type 'help' for commands.", input)
}

// ── Loading ──────────────────────────────────────────────────────

func LineLoading(area domain.Area) string {
	switch area {
	case domain.AreaResults:
		return "  searching..."
	case domain.AreaRecipe:
		return "  loading recipe..."
	default:
		return "  loading..."
	}
}

// ── Results / recipe ─────────────────────────────────────────────

func LineNoResults() string {
	return "  No recipes found. Try another search."
}

func LineRecipeHint() string {
	return "  + / - servings · add to list · like · directions"
}

func LineNoRecipe() string {
	return "Open a recipe first: pick a result number or type #<id>."
}

// ── List / likes ─────────────────────────────────────────────────

func LineEmptyList() string {
	return "Your shopping list is empty. Open a recipe and type 'add'."
}

func LineExported(path string, n int) string {
	return fmt.Sprintf("Saved %d items to %s.", n, path)
}

func LineNoLikes() string {
	return "  No likes yet. Find a nice recipe and like it."
}

func LineNoItem(ref string) string {
	return fmt.Sprintf("No list item %q. Type 'list' to see the numbers.", ref)
}

func LineNoResult() string {
	return "No such result on this page. Search first or pick a listed number."
}

func LineNoPage() string {
	return "No such page."
}
