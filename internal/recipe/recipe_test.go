package recipe

import (
	"math"
	"testing"

	"github.com/hammamikhairi/forkify/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func sameCount(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return math.Abs(*a-*b) < 1e-9
}

func TestParseIngredient(t *testing.T) {
	tests := []struct {
		line string
		want domain.Ingredient
	}{
		{"4 1/2 cups flour", domain.Ingredient{Count: ptr(4.5), Unit: "cup", Name: "flour"}},
		{"1 tablespoon olive oil", domain.Ingredient{Count: ptr(1), Unit: "tbsp", Name: "olive oil"}},
		{"2 Teaspoons salt", domain.Ingredient{Count: ptr(2), Unit: "tsp", Name: "salt"}},
		{"8 ounces (about 2 cups) mozzarella", domain.Ingredient{Count: ptr(8), Unit: "oz", Name: "mozzarella"}},
		{"½ cup sugar", domain.Ingredient{Count: ptr(0.5), Unit: "cup", Name: "sugar"}},
		{"1½ pounds ground beef", domain.Ingredient{Count: ptr(1.5), Unit: "pound", Name: "ground beef"}},
		{"4-6 cups water", domain.Ingredient{Count: ptr(5), Unit: "cup", Name: "water"}},
		{"500 g spaghetti", domain.Ingredient{Count: ptr(500), Unit: "g", Name: "spaghetti"}},
		{"0.5 kg potatoes", domain.Ingredient{Count: ptr(0.5), Unit: "kg", Name: "potatoes"}},
		{"1 (8 ounce) package cream cheese", domain.Ingredient{Count: ptr(1), Name: "package cream cheese"}},
		{"3 large eggs", domain.Ingredient{Count: ptr(3), Name: "large eggs"}},
		{"Salt and pepper to taste", domain.Ingredient{Name: "salt and pepper to taste"}},
		{"a pinch of cumin", domain.Ingredient{Name: "a pinch of cumin"}},
		{"cup of tea", domain.Ingredient{Name: "cup of tea"}},
		{"", domain.Ingredient{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := ParseIngredient(tt.line)
			if !sameCount(got.Count, tt.want.Count) {
				t.Fatalf("count = %v, want %v", fmtPtr(got.Count), fmtPtr(tt.want.Count))
			}
			if got.Unit != tt.want.Unit {
				t.Fatalf("unit = %q, want %q", got.Unit, tt.want.Unit)
			}
			if got.Name != tt.want.Name {
				t.Fatalf("name = %q, want %q", got.Name, tt.want.Name)
			}
		})
	}
}

func fmtPtr(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func TestParseQuantityRejectsJunk(t *testing.T) {
	for _, tok := range []string{"inf", "nan", "1e5", "0x10", "1/0", "-", "a-b", "all-purpose"} {
		if _, ok := parseQuantity(tok); ok {
			t.Errorf("parseQuantity(%q) accepted", tok)
		}
	}
}

func loadedDetail() *Detail {
	d := New("47746")
	d.Load(&domain.RecipeData{
		ID:    "47746",
		Title: "Best Pizza Dough Ever",
		IngredientLines: []string{
			"4 1/2 cups flour",
			"1 tablespoon yeast",
			"1/3 cup olive oil",
			"salt to taste",
		},
	})
	d.Prepare()
	return d
}

func TestPrepareDefaults(t *testing.T) {
	if New("x").Ready() {
		t.Fatal("unfetched detail reported ready")
	}
	d := loadedDetail()
	if !d.Ready() {
		t.Fatal("prepared detail not ready")
	}
	if d.Servings != DefaultServings {
		t.Fatalf("servings = %d, want %d", d.Servings, DefaultServings)
	}
	// 4 ingredients -> 2 periods of 15 minutes.
	if d.CookTime != 30 {
		t.Fatalf("cook time = %d, want 30", d.CookTime)
	}

	d2 := New("x")
	d2.Load(&domain.RecipeData{Servings: 2, CookTime: 50, IngredientLines: []string{"1 egg"}})
	d2.Prepare()
	if d2.Servings != 2 || d2.CookTime != 50 {
		t.Fatalf("API values overwritten: servings=%d time=%d", d2.Servings, d2.CookTime)
	}
}

func TestUpdateServingsScales(t *testing.T) {
	d := loadedDetail()

	if !d.UpdateServings(Increase) {
		t.Fatal("increase rejected")
	}
	if d.Servings != 5 {
		t.Fatalf("servings = %d, want 5", d.Servings)
	}
	if want := 4.5 * 5 / 4; !sameCount(d.Ingredients[0].Count, &want) {
		t.Fatalf("flour = %v, want %v", *d.Ingredients[0].Count, want)
	}
	if d.Ingredients[3].Count != nil {
		t.Fatal("nil count became non-nil after scaling")
	}
}

func TestUpdateServingsRoundTrip(t *testing.T) {
	d := loadedDetail()
	orig := CopyIngredients(d.Ingredients)

	for steps := 1; steps <= 7; steps++ {
		for i := 0; i < steps; i++ {
			d.UpdateServings(Increase)
		}
		for i := 0; i < steps; i++ {
			d.UpdateServings(Decrease)
		}
		for i := range orig {
			if !sameCount(d.Ingredients[i].Count, orig[i].Count) {
				t.Fatalf("after %d steps ingredient %d = %v, want %v",
					steps, i, fmtPtr(d.Ingredients[i].Count), fmtPtr(orig[i].Count))
			}
		}
	}
}

func TestUpdateServingsFloorAtOne(t *testing.T) {
	d := loadedDetail()
	for d.Servings > 1 {
		if !d.UpdateServings(Decrease) {
			t.Fatalf("decrease rejected at %d", d.Servings)
		}
	}

	before := CopyIngredients(d.Ingredients)
	if d.UpdateServings(Decrease) {
		t.Fatal("decrease below 1 accepted")
	}
	if d.Servings != 1 {
		t.Fatalf("servings = %d, want 1", d.Servings)
	}
	for i := range before {
		if !sameCount(d.Ingredients[i].Count, before[i].Count) {
			t.Fatalf("ingredient %d changed on rejected decrease", i)
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	d := loadedDetail()
	snap := d.Snapshot()
	*snap.Ingredients[0].Count = 99
	if *d.Ingredients[0].Count == 99 {
		t.Fatal("snapshot shares counts with detail")
	}
	if snap.Title != "Best Pizza Dough Ever" || snap.Servings != 4 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{nil, "?"},
		{ptr(2), "2"},
		{ptr(4.5), "4 1/2"},
		{ptr(0.5), "1/2"},
		{ptr(1.0 / 3), "1/3"},
		{ptr(0.75), "3/4"},
		{ptr(5.625), "5 5/8"},
		{ptr(1.999999), "2"},
		{ptr(0.123), "1/8"},
		{ptr(0.03), "0.03"},
		{ptr(12345678901.5), "12345678901 1/2"},
		{ptr(1e19), "1e+19"},
		{ptr(1e300), "1e+300"},
		{ptr(-1e19), "-1e+19"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%v) = %q, want %q", fmtPtr(tt.in), got, tt.want)
		}
	}
}
