// Package suggest ranks catalog meals by how much of them the user
// already has on hand and how much of the rest is on sale. It is a
// read over the same pantry and deal snapshots the optimizer takes;
// nothing here mutates state.
package suggest

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"smartcart/internal/core/catalog"
	"smartcart/internal/core/deals"
	"smartcart/internal/core/match"
	"smartcart/internal/core/pantry"
)

// Suggestion is one ranked meal idea.
type Suggestion struct {
	MealID           string  `json:"mealId"`
	Category         string  `json:"category"`
	Score            float64 `json:"score"`
	Reason           string  `json:"reason"`
	PantryMatchCount int     `json:"pantryMatchCount"`
	DealMatchCount   int     `json:"dealMatchCount"`
	MissingCount     int     `json:"missingCount"`
}

// scoring weights: pantry coverage dominates, active promotions earn a
// base plus up to dealDiscountCap points of discount percentage, and
// every ingredient the user would have to hunt down costs a little
const (
	pantryMatchScore = 20.0
	dealMatchScore   = 15.0
	dealDiscountCap  = 10.0
	missingPenalty   = 5.0
	pantryBonus      = 10.0
	dealBonus        = 5.0

	defaultLimit = 3
)

// Rank scores every catalog meal against the pantry and the active
// promotions and returns the top meals, best first. Ties break toward
// the smaller meal id, so identical inputs always suggest the same
// meals.
func Rank(cat *catalog.Catalog, pantryItems []pantry.Item, dealSet []deals.Deal, today time.Time, limit int) []Suggestion {
	if limit <= 0 {
		limit = defaultLimit
	}

	mealIDs := cat.AllMealIDs()
	suggestions := make([]Suggestion, 0, len(mealIDs))
	for _, mealID := range mealIDs {
		ingredients, ok := cat.Ingredients(mealID)
		if !ok {
			continue
		}
		suggestions = append(suggestions, scoreMeal(mealID, cat.Category(mealID), ingredients, pantryItems, dealSet, today))
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].MealID < suggestions[j].MealID
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func scoreMeal(mealID, category string, ingredients []catalog.Ingredient, pantryItems []pantry.Item, dealSet []deals.Deal, today time.Time) Suggestion {
	s := Suggestion{MealID: mealID, Category: category}
	var missing []string

	for _, ing := range ingredients {
		if pantryHas(pantryItems, ing.ProductID) {
			s.PantryMatchCount++
			s.Score += pantryMatchScore
			continue
		}
		if pct, ok := bestDiscount(dealSet, ing.ProductID, today); ok {
			s.DealMatchCount++
			s.Score += dealMatchScore + math.Min(pct, dealDiscountCap)
			continue
		}
		s.MissingCount++
		missing = append(missing, ing.ProductID)
	}

	s.Score -= float64(s.MissingCount) * missingPenalty
	if s.PantryMatchCount > 2 {
		s.Score += pantryBonus
	}
	if s.DealMatchCount > 0 {
		s.Score += dealBonus
	}
	s.Reason = reason(&s, missing)
	return s
}

func pantryHas(items []pantry.Item, productID string) bool {
	for i := range items {
		if items[i].Quantity > 0 && match.Same(productID, items[i].Name) {
			return true
		}
	}
	return false
}

// bestDiscount finds the steepest active promotion on a product across
// all stores, as a percentage off the unit price.
func bestDiscount(dealSet []deals.Deal, productID string, today time.Time) (float64, bool) {
	best, found := 0.0, false
	for i := range dealSet {
		d := &dealSet[i]
		if !d.PromoActive(today) || !match.Same(productID, d.ProductName) {
			continue
		}
		pct := (d.UnitPrice - *d.PromoPrice) / d.UnitPrice * 100
		if !found || pct > best {
			best, found = pct, true
		}
	}
	return best, found
}

func reason(s *Suggestion, missing []string) string {
	var parts []string
	if s.PantryMatchCount > 0 {
		parts = append(parts, fmt.Sprintf("uses %d pantry item(s)", s.PantryMatchCount))
	}
	if s.DealMatchCount > 0 {
		parts = append(parts, fmt.Sprintf("%d ingredient(s) on sale", s.DealMatchCount))
	}
	if len(missing) > 0 {
		shown := missing
		if len(shown) > 3 {
			shown = shown[:3]
		}
		parts = append(parts, "need to buy "+strings.Join(shown, ", "))
	}
	return strings.Join(parts, "; ")
}
