// Package units reconciles the measurement units used by the meal
// catalog, the pantry and the deal feeds. Weight units convert through
// grams, volume units through milliliters. Count-like units (loaves,
// slices, pieces) do not convert numerically but are treated as
// mutually compatible for pantry matching.
package units

import "strings"

// conversion factors to the base unit of each family
var weightToGrams = map[string]float64{
	"g":         1.0,
	"gram":      1.0,
	"grams":     1.0,
	"kg":        1000.0,
	"kilogram":  1000.0,
	"kilograms": 1000.0,
	"oz":        28.35,
	"ounce":     28.35,
	"ounces":    28.35,
	"lb":        453.6,
	"lbs":       453.6,
	"pound":     453.6,
	"pounds":    453.6,
}

var volumeToMilliliters = map[string]float64{
	"ml":           1.0,
	"milliliter":   1.0,
	"milliliters":  1.0,
	"l":            1000.0,
	"liter":        1000.0,
	"liters":       1000.0,
	"fl oz":        29.57,
	"fluid ounce":  29.57,
	"fluid ounces": 29.57,
	"cup":          236.59,
	"cups":         236.59,
	"pt":           473.18,
	"pint":         473.18,
	"pints":        473.18,
	"qt":           946.35,
	"quart":        946.35,
	"quarts":       946.35,
	"gal":          3785.41,
	"gallon":       3785.41,
	"gallons":      3785.41,
	"tbsp":         14.79,
	"tablespoon":   14.79,
	"tablespoons":  14.79,
	"tsp":          4.93,
	"teaspoon":     4.93,
	"teaspoons":    4.93,
}

var countLike = map[string]bool{
	"unit": true, "units": true,
	"count": true, "counts": true,
	"loaf": true, "loaves": true,
	"slice": true, "slices": true,
	"piece": true, "pieces": true,
	"item": true, "items": true,
	"bun": true, "buns": true,
	"roll": true, "rolls": true,
}

func normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// IsWeight reports whether unit is a known weight unit.
func IsWeight(unit string) bool {
	_, ok := weightToGrams[normalize(unit)]
	return ok
}

// IsVolume reports whether unit is a known volume unit.
func IsVolume(unit string) bool {
	_, ok := volumeToMilliliters[normalize(unit)]
	return ok
}

// CountLike reports whether unit counts discrete items. An empty unit
// defaults to count-like, matching how pantry entries without a unit
// behave.
func CountLike(unit string) bool {
	u := normalize(unit)
	if u == "" {
		return true
	}
	return countLike[u]
}

// Compatible reports whether two units can net against each other.
func Compatible(a, b string) bool {
	ua, ub := normalize(a), normalize(b)
	if ua == ub {
		return true
	}
	return (IsWeight(ua) && IsWeight(ub)) ||
		(IsVolume(ua) && IsVolume(ub)) ||
		(CountLike(ua) && CountLike(ub))
}

// Convert converts qty from one unit to another. The second return
// value is false when no conversion exists. Weight and volume bridge
// through an approximate water density (1 g/ml), which is what the
// pantry matcher wants for common liquids; the error for dense solids
// is acceptable there because a near-miss purchase beats a silent
// double purchase.
func Convert(qty float64, from, to string) (float64, bool) {
	uf, ut := normalize(from), normalize(to)
	if uf == ut {
		return qty, true
	}

	switch {
	case IsWeight(uf) && IsWeight(ut):
		return qty * weightToGrams[uf] / weightToGrams[ut], true
	case IsVolume(uf) && IsVolume(ut):
		return qty * volumeToMilliliters[uf] / volumeToMilliliters[ut], true
	case IsWeight(uf) && IsVolume(ut):
		grams := qty * weightToGrams[uf]
		return grams / volumeToMilliliters[ut], true
	case IsVolume(uf) && IsWeight(ut):
		milliliters := qty * volumeToMilliliters[uf]
		return milliliters / weightToGrams[ut], true
	}

	return 0, false
}
