package favorites

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"smartcart/internal/pkg/common"
)

// Repository persists favorites in sqlite, keyed by
// (userID, favoriteID). The meal selection is a JSON blob; rows are
// only ever read back whole.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a favorites repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts or replaces a favorite.
func (r *Repository) Save(ctx context.Context, userID string, fav *Favorite) error {
	mealServings, err := json.Marshal(fav.MealServings)
	if err != nil {
		return fmt.Errorf("failed to encode meal selection: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO meal_favorites (user_id, favorite_id, name, meal_servings, created_at, last_used)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, favorite_id) DO UPDATE SET
			name = excluded.name,
			meal_servings = excluded.meal_servings,
			last_used = excluded.last_used`,
		userID, fav.FavoriteID, fav.Name, string(mealServings), fav.CreatedAt, fav.LastUsed,
	)
	if err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil
}

// FindByUser returns a user's favorites, newest first.
func (r *Repository) FindByUser(ctx context.Context, userID string) ([]Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT favorite_id, name, meal_servings, created_at, last_used
		FROM meal_favorites
		WHERE user_id = ?
		ORDER BY created_at DESC, favorite_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var favs []Favorite
	for rows.Next() {
		fav, err := scanFavorite(rows.Scan)
		if err != nil {
			return nil, err
		}
		favs = append(favs, *fav)
	}
	return favs, rows.Err()
}

// Find returns one favorite, or sql.ErrNoRows.
func (r *Repository) Find(ctx context.Context, userID, favoriteID string) (*Favorite, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT favorite_id, name, meal_servings, created_at, last_used
		FROM meal_favorites
		WHERE user_id = ? AND favorite_id = ?`, userID, favoriteID)
	return scanFavorite(row.Scan)
}

// Delete removes one favorite, returning sql.ErrNoRows when absent.
func (r *Repository) Delete(ctx context.Context, userID, favoriteID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM meal_favorites WHERE user_id = ? AND favorite_id = ?`,
		userID, favoriteID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanFavorite(scan func(...any) error) (*Favorite, error) {
	var fav Favorite
	var mealServings string
	if err := scan(&fav.FavoriteID, &fav.Name, &mealServings, &fav.CreatedAt, &fav.LastUsed); err != nil {
		return nil, err
	}
	if err := common.ParseJSON(mealServings, &fav.MealServings); err != nil {
		return nil, fmt.Errorf("failed to decode meal selection: %w", err)
	}
	return &fav, nil
}
