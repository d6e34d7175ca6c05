package pantry

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository persists pantry items in sqlite, keyed by
// (userID, productID).
type Repository struct {
	db *sql.DB
}

// NewRepository creates a pantry repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts or replaces an item.
func (r *Repository) Save(ctx context.Context, userID string, item *Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pantry_items (user_id, product_id, name, quantity, unit, est_expiry, source, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, product_id) DO UPDATE SET
			name = excluded.name,
			quantity = excluded.quantity,
			unit = excluded.unit,
			est_expiry = excluded.est_expiry,
			source = excluded.source,
			last_updated = excluded.last_updated`,
		userID, item.ProductID, item.Name, item.Quantity, item.Unit,
		nullable(item.EstExpiry), item.Source, item.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to save pantry item: %w", err)
	}
	return nil
}

// FindByUser returns a user's items ordered by name for stable
// snapshots.
func (r *Repository) FindByUser(ctx context.Context, userID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, name, quantity, unit, est_expiry, source, last_updated
		FROM pantry_items
		WHERE user_id = ?
		ORDER BY name, product_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pantry: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		var estExpiry sql.NullString
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.Unit,
			&estExpiry, &item.Source, &item.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan pantry item: %w", err)
		}
		item.EstExpiry = estExpiry.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// FindByUserAndProduct returns one item, or sql.ErrNoRows.
func (r *Repository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*Item, error) {
	var item Item
	var estExpiry sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT product_id, name, quantity, unit, est_expiry, source, last_updated
		FROM pantry_items
		WHERE user_id = ? AND product_id = ?`, userID, productID).
		Scan(&item.ProductID, &item.Name, &item.Quantity, &item.Unit,
			&estExpiry, &item.Source, &item.LastUpdated)
	if err != nil {
		return nil, err
	}
	item.EstExpiry = estExpiry.String
	return &item, nil
}

// Delete removes one item.
func (r *Repository) Delete(ctx context.Context, userID, productID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM pantry_items WHERE user_id = ? AND product_id = ?`,
		userID, productID)
	if err != nil {
		return fmt.Errorf("failed to delete pantry item: %w", err)
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

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
