package catalog

import (
	"testing"
)

func TestCatalogIntegrity(t *testing.T) {
	c := New()

	ids := c.AllMealIDs()
	if len(ids) < 50 {
		t.Fatalf("catalog has %d meals, expected at least 50", len(ids))
	}

	for _, id := range ids {
		if !c.Exists(id) {
			t.Errorf("meal %q listed but Exists returns false", id)
		}
		ingredients, ok := c.Ingredients(id)
		if !ok || len(ingredients) == 0 {
			t.Errorf("meal %q has no ingredients", id)
			continue
		}
		for _, ing := range ingredients {
			if ing.ProductID == "" {
				t.Errorf("meal %q has an ingredient without a product id", id)
			}
			if ing.QtyPerServing <= 0 {
				t.Errorf("meal %q ingredient %q has non-positive quantity %v", id, ing.ProductID, ing.QtyPerServing)
			}
			if ing.Unit == "" {
				t.Errorf("meal %q ingredient %q has no unit", id, ing.ProductID)
			}
		}
		if c.Category(id) == "Uncategorized" {
			t.Errorf("meal %q has no category", id)
		}
	}
}

func TestCategories(t *testing.T) {
	c := New()

	want := []string{"American", "Asian", "Breakfast", "Italian", "Mexican", "Seafood"}
	got := c.Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories() = %v, want %v", got, want)
		}
	}

	for _, cat := range got {
		if cat == "Comfort Food" {
			t.Error("retired category still listed")
		}
	}
}

func TestMealsByCategory(t *testing.T) {
	c := New()

	asian := c.MealsByCategory("Asian")
	if len(asian) == 0 {
		t.Fatal("no Asian meals")
	}
	for _, id := range asian {
		if c.Category(id) != "Asian" {
			t.Errorf("meal %q in Asian listing but category is %q", id, c.Category(id))
		}
	}
	for i := 1; i < len(asian); i++ {
		if asian[i-1] >= asian[i] {
			t.Fatalf("meal listing not sorted: %v", asian)
		}
	}

	if got := c.MealsByCategory("Comfort Food"); len(got) != 0 {
		t.Errorf("retired category returned meals: %v", got)
	}
	if got := c.MealsByCategory("Nonexistent"); len(got) != 0 {
		t.Errorf("unknown category returned meals: %v", got)
	}
}

func TestRetiredCategoryMealStillOrderable(t *testing.T) {
	c := New()

	if !c.Exists("Chicken and Dumplings") {
		t.Fatal("retired-category meal missing from the catalog")
	}
	if got := c.Category("Chicken and Dumplings"); got != "Comfort Food" {
		t.Errorf("category = %q, want Comfort Food", got)
	}
	if ingredients, ok := c.Ingredients("Chicken and Dumplings"); !ok || len(ingredients) == 0 {
		t.Error("retired-category meal has no ingredients")
	}

	for _, id := range c.MealsByCategory("Comfort Food") {
		t.Errorf("retired category listed meal %q", id)
	}
	for _, cat := range c.Categories() {
		if cat == "Comfort Food" {
			t.Error("retired category still in Categories")
		}
	}
}

func TestFromRecipes(t *testing.T) {
	c := FromRecipes([]Recipe{
		{MealID: "Toast", Category: "Breakfast", Ingredients: []Ingredient{
			{ProductID: "Bread", QtyPerServing: 2, Unit: "unit"},
			{ProductID: "Butter", QtyPerServing: 0.1, Unit: "unit"},
		}},
	})

	if !c.Exists("Toast") {
		t.Fatal("recipe not registered")
	}
	if got := c.Category("Toast"); got != "Breakfast" {
		t.Errorf("category = %q, want Breakfast", got)
	}
	ingredients, ok := c.Ingredients("Toast")
	if !ok || len(ingredients) != 2 {
		t.Fatalf("ingredients = %v", ingredients)
	}
	if ingredients[0].ProductID != "Bread" {
		t.Errorf("ingredient order not preserved: %v", ingredients)
	}
}

func TestUnknownMeal(t *testing.T) {
	c := New()
	if c.Exists("Stone Soup") {
		t.Error("unknown meal reported as existing")
	}
	if _, ok := c.Ingredients("Stone Soup"); ok {
		t.Error("unknown meal returned ingredients")
	}
}
