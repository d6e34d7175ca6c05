package optimizer

import (
	"sort"

	"smartcart/internal/core/catalog"
	"smartcart/internal/core/match"
	"smartcart/internal/core/units"
)

// requirement is one aggregated ingredient need. ProductID and Unit
// keep the first spelling encountered; later occurrences of the same
// product are converted into that unit.
type requirement struct {
	ProductID string
	Qty       float64
	Unit      string
}

// aggregate expands the meal selection into per-product requirements.
// Meals are visited in sorted id order and ingredients in recipe
// order, so the requirement list order is deterministic for a given
// selection.
func aggregate(req *Request, cat *catalog.Catalog) ([]requirement, error) {
	mealIDs := make([]string, 0, len(req.MealServings))
	for id := range req.MealServings {
		mealIDs = append(mealIDs, id)
	}
	sort.Strings(mealIDs)

	var out []requirement
	index := make(map[string]int)

	for _, mealID := range mealIDs {
		servings := req.MealServings[mealID]
		ingredients, ok := cat.Ingredients(mealID)
		if !ok {
			return nil, &UnknownMealError{MealID: mealID}
		}
		if servings < 1 {
			return nil, &InvalidServingsError{MealID: mealID, Servings: servings}
		}

		for _, ing := range ingredients {
			qty := ing.QtyPerServing * float64(servings)
			key := match.Normalize(ing.ProductID)

			i, seen := index[key]
			if !seen {
				index[key] = len(out)
				out = append(out, requirement{
					ProductID: ing.ProductID,
					Qty:       qty,
					Unit:      ing.Unit,
				})
				continue
			}

			r := &out[i]
			switch {
			case units.Compatible(r.Unit, ing.Unit) && units.CountLike(r.Unit) && units.CountLike(ing.Unit):
				// discrete items count 1:1 across count-like spellings
				r.Qty += qty
			default:
				converted, ok := units.Convert(qty, ing.Unit, r.Unit)
				if !ok {
					return nil, &IncompatibleUnitsError{
						ProductID: r.ProductID,
						UnitA:     r.Unit,
						UnitB:     ing.Unit,
					}
				}
				r.Qty += converted
			}
		}
	}

	return out, nil
}
