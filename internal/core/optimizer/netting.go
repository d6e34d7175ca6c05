package optimizer

import (
	"fmt"

	"smartcart/internal/core/match"
	"smartcart/internal/core/pantry"
	"smartcart/internal/core/units"
)

// netResult is what survives pantry netting: the shortfalls still to
// buy, the products fully covered on hand, and per-product notes.
type netResult struct {
	shortfalls []requirement
	usesPantry []string
	notes      []string
}

// net subtracts pantry coverage from each requirement. A requirement
// fully covered by the pantry moves into usesPantry; a partially
// covered one continues as its shortfall. Pantry quantities are never
// modified here.
func net(reqs []requirement, items []pantry.Item) netResult {
	var res netResult

	for _, r := range reqs {
		item := findPantryItem(r.ProductID, items)
		if item == nil {
			res.shortfalls = append(res.shortfalls, r)
			continue
		}

		available, ok := availableQty(item, r.Unit)
		if !ok {
			res.notes = append(res.notes,
				fmt.Sprintf("Pantry has %s in different units; buying fresh", r.ProductID))
			res.shortfalls = append(res.shortfalls, r)
			continue
		}

		if available >= r.Qty {
			res.usesPantry = append(res.usesPantry, r.ProductID)
			continue
		}
		if available > 0 {
			r.Qty -= available
		}
		res.shortfalls = append(res.shortfalls, r)
	}

	return res
}

// findPantryItem returns the first pantry entry naming the same
// product. Items arrive name-ordered, so the choice is stable.
func findPantryItem(productID string, items []pantry.Item) *pantry.Item {
	for i := range items {
		if match.Same(productID, items[i].Name) {
			return &items[i]
		}
	}
	return nil
}

// availableQty expresses the pantry quantity in the requirement's
// unit. Count-like units net 1:1 against each other; weight and
// volume convert numerically; anything else reports incompatible.
func availableQty(item *pantry.Item, unit string) (float64, bool) {
	if units.CountLike(item.Unit) && units.CountLike(unit) {
		return item.Quantity, true
	}
	return units.Convert(item.Quantity, item.Unit, unit)
}
