// Package shoppinglist keeps the history of generated shopping lists
// so users can revisit past plans. Rows are immutable once saved.
package shoppinglist

// SavedItem is one purchase line as it was priced at save time.
type SavedItem struct {
	ProductID string  `json:"productId"`
	Qty       float64 `json:"qty"`
	Unit      string  `json:"unit"`
	StoreID   string  `json:"storeId"`
	Price     float64 `json:"price"`
}

// List is one saved optimization result.
type List struct {
	ListID        string             `json:"listId"`
	CreatedAt     int64              `json:"createdAt"` // unix millis
	Meals         map[string]int     `json:"meals"`
	TotalServings int                `json:"totalServings"`
	UsesPantry    []string           `json:"usesPantry"`
	Items         []SavedItem        `json:"items"`
	CostByStore   map[string]float64 `json:"costByStore"`
	TotalCost     float64            `json:"totalCost"`
}
