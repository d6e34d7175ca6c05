// Package favorites stores named meal selections so a user can rerun
// a regular plan without retyping it. A favorite is input to the
// optimizer, not output: it holds the selection, never the priced
// list.
package favorites

// Favorite is one saved meal selection.
type Favorite struct {
	FavoriteID   string         `json:"favoriteId"`
	Name         string         `json:"name"`
	MealServings map[string]int `json:"mealServings"`
	CreatedAt    int64          `json:"createdAt"`
	LastUsed     int64          `json:"lastUsed"`
}

// CreateRequest names a meal selection worth keeping.
type CreateRequest struct {
	Name         string         `json:"name" binding:"required"`
	MealServings map[string]int `json:"mealServings" binding:"required,min=1"`
}
