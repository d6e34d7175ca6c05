package suggest

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"smartcart/internal/core/catalog"
	"smartcart/internal/core/deals"
	"smartcart/internal/core/pantry"
)

var testDay = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

func testCatalog() *catalog.Catalog {
	return catalog.FromRecipes([]catalog.Recipe{
		{MealID: "Cheese Omelette", Category: "Breakfast", Ingredients: []catalog.Ingredient{
			{ProductID: "Eggs", QtyPerServing: 3, Unit: "count"},
			{ProductID: "Cheddar Cheese", QtyPerServing: 0.25, Unit: "unit"},
		}},
		{MealID: "Steak Dinner", Category: "American", Ingredients: []catalog.Ingredient{
			{ProductID: "Ribeye Steak", QtyPerServing: 1, Unit: "lb"},
			{ProductID: "Potatoes", QtyPerServing: 2, Unit: "unit"},
		}},
		{MealID: "Lobster Bisque", Category: "Seafood", Ingredients: []catalog.Ingredient{
			{ProductID: "Lobster", QtyPerServing: 1, Unit: "lb"},
			{ProductID: "Heavy Cream", QtyPerServing: 0.5, Unit: "qt"},
		}},
	})
}

func promoDeal(storeID, product string, unitPrice, promoPrice float64) deals.Deal {
	return deals.Deal{
		StoreID:     storeID,
		StoreName:   storeID,
		Date:        deals.FormatDate(testDay),
		ProductID:   product,
		ProductName: product,
		UnitPrice:   unitPrice,
		PromoPrice:  &promoPrice,
	}
}

func TestRankOrdersByPantryThenDeals(t *testing.T) {
	pantryItems := []pantry.Item{
		{ProductID: "p1", Name: "Eggs", Quantity: 6, Unit: "count"},
		{ProductID: "p2", Name: "Cheddar Cheese", Quantity: 1, Unit: "unit"},
	}
	dealSet := []deals.Deal{
		promoDeal("store-a", "Ribeye Steak", 20.0, 15.0),
	}

	got := Rank(testCatalog(), pantryItems, dealSet, testDay, 3)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(got))
	}

	// fully stocked omelette first, then the steak on sale, then the
	// meal with nothing going for it
	if got[0].MealID != "Cheese Omelette" || got[1].MealID != "Steak Dinner" || got[2].MealID != "Lobster Bisque" {
		t.Fatalf("order = [%s, %s, %s]", got[0].MealID, got[1].MealID, got[2].MealID)
	}

	omelette := got[0]
	if omelette.PantryMatchCount != 2 || omelette.DealMatchCount != 0 || omelette.MissingCount != 0 {
		t.Errorf("omelette counts = %+v", omelette)
	}
	if omelette.Score != 2*pantryMatchScore {
		t.Errorf("omelette score = %v, want %v", omelette.Score, 2*pantryMatchScore)
	}

	// 25% off, capped at dealDiscountCap; one missing ingredient
	steak := got[1]
	if steak.PantryMatchCount != 0 || steak.DealMatchCount != 1 || steak.MissingCount != 1 {
		t.Errorf("steak counts = %+v", steak)
	}
	want := dealMatchScore + dealDiscountCap - missingPenalty + dealBonus
	if steak.Score != want {
		t.Errorf("steak score = %v, want %v", steak.Score, want)
	}

	if got[2].Score >= got[1].Score {
		t.Errorf("bisque score %v not below steak %v", got[2].Score, got[1].Score)
	}
}

func TestRankReasons(t *testing.T) {
	pantryItems := []pantry.Item{
		{ProductID: "p1", Name: "Eggs", Quantity: 6, Unit: "count"},
	}

	got := Rank(testCatalog(), pantryItems, nil, testDay, 1)
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	reason := got[0].Reason
	if reason == "" {
		t.Fatal("no reason given")
	}
	if got[0].MealID != "Cheese Omelette" {
		t.Fatalf("top meal = %s", got[0].MealID)
	}
	// mentions the pantry match and what still needs buying
	for _, want := range []string{"1 pantry item(s)", "Cheddar Cheese"} {
		if !strings.Contains(reason, want) {
			t.Errorf("reason %q missing %q", reason, want)
		}
	}
}

func TestRankExpiredPromoDoesNotScore(t *testing.T) {
	expired := promoDeal("store-a", "Ribeye Steak", 20.0, 15.0)
	expired.PromoEnds = "2020-01-01"

	got := Rank(testCatalog(), nil, []deals.Deal{expired}, testDay, 3)
	for _, s := range got {
		if s.DealMatchCount != 0 {
			t.Errorf("meal %s counts an expired promo as a deal", s.MealID)
		}
	}
}

func TestRankDeterministic(t *testing.T) {
	pantryItems := []pantry.Item{
		{ProductID: "p1", Name: "Potatoes", Quantity: 4, Unit: "unit"},
	}
	dealSet := []deals.Deal{
		promoDeal("store-a", "Lobster", 30.0, 24.0),
	}

	first := Rank(testCatalog(), pantryItems, dealSet, testDay, 3)
	second := Rank(testCatalog(), pantryItems, dealSet, testDay, 3)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs ranked differently:\n%+v\n%+v", first, second)
	}
}

func TestRankEmptyPantryZeroDeals(t *testing.T) {
	got := Rank(testCatalog(), nil, nil, testDay, 2)
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want limit 2", len(got))
	}
	// all equally bad; ties break alphabetically
	if got[0].MealID != "Cheese Omelette" {
		t.Errorf("tie-break gave %s first", got[0].MealID)
	}
}
