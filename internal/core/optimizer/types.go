// Package optimizer turns a meal selection into a purchase plan:
// aggregate ingredient requirements, net out the pantry, assign each
// remaining item to a store at the best effective price, and explain
// the result. Optimize itself is a pure function of its snapshot
// inputs; all I/O happens in the surrounding service.
package optimizer

import (
	"fmt"
	"time"

	"smartcart/internal/core/catalog"
	"smartcart/internal/core/deals"
	"smartcart/internal/core/pantry"
)

// Request selects meals by servings. SingleStore constrains the whole
// list to the one store with the lowest basket total.
type Request struct {
	MealServings map[string]int `json:"mealServings" binding:"required,min=1"`
	SingleStore  bool           `json:"singleStore"`
}

// ShoppingItem is one line of the purchase plan. Price is the
// per-unit effective price; OriginalPrice and Savings are set only
// when an active promotion was applied.
type ShoppingItem struct {
	ProductID     string   `json:"productId"`
	Qty           float64  `json:"qty"`
	Unit          string   `json:"unit"`
	StoreID       string   `json:"storeId"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Savings       *float64 `json:"savings,omitempty"`
	HasDeal       bool     `json:"hasDeal"`
}

// Response is the purchase plan. Every ingredient implied by the
// request appears exactly once, either in UsesPantry or in List.
type Response struct {
	List        []ShoppingItem     `json:"list"`
	UsesPantry  []string           `json:"usesPantry"`
	CostByStore map[string]float64 `json:"costByStore"`
	Notes       []string           `json:"notes"`
}

// Snapshot bundles the read-only inputs of one optimize call. DealDate
// is the partition the deals were read from, which may lag Today when
// no feed has arrived yet.
type Snapshot struct {
	Catalog      *catalog.Catalog
	Pantry       []pantry.Item
	Deals        []deals.Deal
	Today        time.Time
	DealDate     string
	DefaultPrice float64
	DefaultStore string
}

// UnknownMealError rejects a meal id not in the catalog.
type UnknownMealError struct {
	MealID string
}

func (e *UnknownMealError) Error() string {
	return fmt.Sprintf("unknown meal %q", e.MealID)
}

// InvalidServingsError rejects a servings count below one.
type InvalidServingsError struct {
	MealID   string
	Servings int
}

func (e *InvalidServingsError) Error() string {
	return fmt.Sprintf("invalid servings %d for meal %q", e.Servings, e.MealID)
}

// IncompatibleUnitsError rejects a selection whose meals require the
// same product in units that cannot be reconciled.
type IncompatibleUnitsError struct {
	ProductID string
	UnitA     string
	UnitB     string
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("incompatible units %q and %q for product %q", e.UnitA, e.UnitB, e.ProductID)
}
