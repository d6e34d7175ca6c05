// Package pantry tracks what each user already has on hand. The
// optimizer reads immutable snapshots from here; quantity changes
// only happen through the explicit CRUD and Adjust operations, never
// as a side effect of building a shopping list.
package pantry

// Item is one on-hand product.
type Item struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	EstExpiry   string  `json:"estExpiry,omitempty"`
	Source      string  `json:"source"`
	LastUpdated string  `json:"lastUpdated"`
}

// CreateItemRequest is the create/update payload.
type CreateItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gte=0"`
	Unit      string  `json:"unit"`
	EstExpiry string  `json:"estExpiry"`
}

// AdjustRequest changes an item's quantity by a signed delta.
type AdjustRequest struct {
	Delta float64 `json:"delta" binding:"required"`
}
