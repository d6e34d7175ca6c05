package pantry

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"smartcart/internal/infrastructure/storage"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := storage.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func TestSaveAndFind(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	item := &Item{
		ProductID:   "p1",
		Name:        "Milk",
		Quantity:    2,
		Unit:        "qt",
		Source:      "manual",
		LastUpdated: "2025-08-01T00:00:00Z",
	}
	if err := repo.Save(ctx, "alice", item); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindByUserAndProduct(ctx, "alice", "p1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Milk" || got.Quantity != 2 || got.Unit != "qt" {
		t.Errorf("got %+v", got)
	}

	// upsert replaces
	item.Quantity = 5
	if err := repo.Save(ctx, "alice", item); err != nil {
		t.Fatal(err)
	}
	got, err = repo.FindByUserAndProduct(ctx, "alice", "p1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Quantity != 5 {
		t.Errorf("quantity after upsert = %v, want 5", got.Quantity)
	}
}

func TestFindByUserOrdersByName(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, item := range []*Item{
		{ProductID: "p1", Name: "Zucchini", Quantity: 1, Unit: "unit", Source: "manual", LastUpdated: "2025-08-01T00:00:00Z"},
		{ProductID: "p2", Name: "Apples", Quantity: 3, Unit: "unit", Source: "manual", LastUpdated: "2025-08-01T00:00:00Z"},
		{ProductID: "p3", Name: "Milk", Quantity: 1, Unit: "qt", Source: "manual", LastUpdated: "2025-08-01T00:00:00Z"},
	} {
		if err := repo.Save(ctx, "alice", item); err != nil {
			t.Fatal(err)
		}
	}

	items, err := repo.FindByUser(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Apples", "Milk", "Zucchini"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, name)
		}
	}
}

func TestUserIsolation(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	item := &Item{ProductID: "p1", Name: "Milk", Quantity: 1, Unit: "qt", Source: "manual", LastUpdated: "2025-08-01T00:00:00Z"}
	if err := repo.Save(ctx, "alice", item); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.FindByUserAndProduct(ctx, "bob", "p1"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("cross-user read returned %v, want ErrNoRows", err)
	}
	items, err := repo.FindByUser(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("bob sees %d of alice's items", len(items))
	}
}

func TestDeleteMissing(t *testing.T) {
	repo := testRepo(t)
	if err := repo.Delete(context.Background(), "alice", "nope"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("got %v, want ErrNoRows", err)
	}
}
