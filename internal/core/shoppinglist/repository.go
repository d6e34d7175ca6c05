package shoppinglist

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"smartcart/internal/pkg/common"
)

// Repository persists saved lists in sqlite. Structured columns hold
// what queries need; the rest is stored as JSON blobs since rows are
// only ever read back whole.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a shopping list repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts one list.
func (r *Repository) Save(ctx context.Context, userID string, list *List) error {
	meals, err := json.Marshal(list.Meals)
	if err != nil {
		return fmt.Errorf("failed to encode meals: %w", err)
	}
	usesPantry, err := json.Marshal(list.UsesPantry)
	if err != nil {
		return fmt.Errorf("failed to encode pantry usage: %w", err)
	}
	items, err := json.Marshal(list.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	costByStore, err := json.Marshal(list.CostByStore)
	if err != nil {
		return fmt.Errorf("failed to encode store costs: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO shopping_lists (user_id, list_id, created_at, meals, total_servings, uses_pantry, items, cost_by_store, total_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, list.ListID, list.CreatedAt, string(meals), list.TotalServings,
		string(usesPantry), string(items), string(costByStore), list.TotalCost,
	)
	if err != nil {
		return fmt.Errorf("failed to save shopping list: %w", err)
	}
	return nil
}

// FindByUser returns a user's lists, newest first.
func (r *Repository) FindByUser(ctx context.Context, userID string) ([]List, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT list_id, created_at, meals, total_servings, uses_pantry, items, cost_by_store, total_cost
		FROM shopping_lists
		WHERE user_id = ?
		ORDER BY created_at DESC, list_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping lists: %w", err)
	}
	defer rows.Close()

	var lists []List
	for rows.Next() {
		list, err := scanList(rows.Scan)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *list)
	}
	return lists, rows.Err()
}

// Find returns one list, or sql.ErrNoRows.
func (r *Repository) Find(ctx context.Context, userID, listID string) (*List, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT list_id, created_at, meals, total_servings, uses_pantry, items, cost_by_store, total_cost
		FROM shopping_lists
		WHERE user_id = ? AND list_id = ?`, userID, listID)
	return scanList(row.Scan)
}

// Delete removes one list, returning sql.ErrNoRows when absent.
func (r *Repository) Delete(ctx context.Context, userID, listID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM shopping_lists WHERE user_id = ? AND list_id = ?`,
		userID, listID)
	if err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
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

func scanList(scan func(...any) error) (*List, error) {
	var list List
	var meals, usesPantry, items, costByStore string
	if err := scan(&list.ListID, &list.CreatedAt, &meals, &list.TotalServings,
		&usesPantry, &items, &costByStore, &list.TotalCost); err != nil {
		return nil, err
	}

	if err := common.ParseJSON(meals, &list.Meals); err != nil {
		return nil, fmt.Errorf("failed to decode meals: %w", err)
	}
	if err := common.ParseJSON(usesPantry, &list.UsesPantry); err != nil {
		return nil, fmt.Errorf("failed to decode pantry usage: %w", err)
	}
	if err := common.ParseJSON(items, &list.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	if err := common.ParseJSON(costByStore, &list.CostByStore); err != nil {
		return nil, fmt.Errorf("failed to decode store costs: %w", err)
	}
	return &list, nil
}
