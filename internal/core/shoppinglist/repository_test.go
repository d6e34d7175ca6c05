package shoppinglist

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

func sampleList(id string, createdAt int64) *List {
	return &List{
		ListID:        id,
		CreatedAt:     createdAt,
		Meals:         map[string]int{"Mac and Cheese": 2},
		TotalServings: 2,
		UsesPantry:    []string{"Butter"},
		Items: []SavedItem{
			{ProductID: "Macaroni", Qty: 1, Unit: "lb", StoreID: "store-a", Price: 1.5},
		},
		CostByStore: map[string]float64{"store-a": 1.5},
		TotalCost:   1.5,
	}
}

func TestSaveAndRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	want := sampleList("l1", 1000)
	if err := repo.Save(ctx, "alice", want); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Find(ctx, "alice", "l1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Meals["Mac and Cheese"] != 2 {
		t.Errorf("meals = %v", got.Meals)
	}
	if len(got.UsesPantry) != 1 || got.UsesPantry[0] != "Butter" {
		t.Errorf("usesPantry = %v", got.UsesPantry)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != "Macaroni" {
		t.Errorf("items = %v", got.Items)
	}
	if got.CostByStore["store-a"] != 1.5 || got.TotalCost != 1.5 {
		t.Errorf("costs = %v / %v", got.CostByStore, got.TotalCost)
	}
}

func TestFindByUserNewestFirst(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, list := range []*List{
		sampleList("old", 1000),
		sampleList("new", 3000),
		sampleList("mid", 2000),
	} {
		if err := repo.Save(ctx, "alice", list); err != nil {
			t.Fatal(err)
		}
	}

	lists, err := repo.FindByUser(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"new", "mid", "old"}
	if len(lists) != len(want) {
		t.Fatalf("got %d lists, want %d", len(lists), len(want))
	}
	for i, id := range want {
		if lists[i].ListID != id {
			t.Errorf("lists[%d] = %q, want %q", i, lists[i].ListID, id)
		}
	}
}

func TestFindMissing(t *testing.T) {
	repo := testRepo(t)
	if _, err := repo.Find(context.Background(), "alice", "nope"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("got %v, want ErrNoRows", err)
	}
}

func TestDeleteMissing(t *testing.T) {
	repo := testRepo(t)
	if err := repo.Delete(context.Background(), "alice", "nope"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("got %v, want ErrNoRows", err)
	}
}
