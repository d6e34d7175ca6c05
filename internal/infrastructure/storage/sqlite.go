// Package storage opens the sqlite database backing the pantry,
// shopping-list history and saved favorites, and bootstraps its
// schema.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the shared database connection.
type DB struct {
	SQL *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS pantry_items (
	user_id      TEXT NOT NULL,
	product_id   TEXT NOT NULL,
	name         TEXT NOT NULL,
	quantity     REAL NOT NULL DEFAULT 0,
	unit         TEXT NOT NULL DEFAULT 'unit',
	est_expiry   TEXT,
	source       TEXT NOT NULL DEFAULT 'manual',
	last_updated TEXT NOT NULL,
	PRIMARY KEY (user_id, product_id)
);

CREATE TABLE IF NOT EXISTS shopping_lists (
	user_id        TEXT NOT NULL,
	list_id        TEXT NOT NULL,
	created_at     INTEGER NOT NULL,
	meals          TEXT NOT NULL,
	total_servings INTEGER NOT NULL,
	uses_pantry    TEXT NOT NULL,
	items          TEXT NOT NULL,
	cost_by_store  TEXT NOT NULL,
	total_cost     REAL NOT NULL,
	PRIMARY KEY (user_id, list_id)
);

CREATE INDEX IF NOT EXISTS idx_shopping_lists_created
	ON shopping_lists (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS meal_favorites (
	user_id       TEXT NOT NULL,
	favorite_id   TEXT NOT NULL,
	name          TEXT NOT NULL,
	meal_servings TEXT NOT NULL,
	created_at    INTEGER NOT NULL,
	last_used     INTEGER NOT NULL,
	PRIMARY KEY (user_id, favorite_id)
);
`

// NewDB opens (creating if needed) the sqlite database at path and
// applies the schema.
func NewDB(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{SQL: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.SQL.Close()
}
