package favorites

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"smartcart/internal/infrastructure/storage"
	"smartcart/internal/pkg/common"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := storage.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return NewService(NewRepository(db.SQL))
}

func TestCreateAndGet(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	fav, err := svc.Create(ctx, "alice", &CreateRequest{
		Name:         "Weeknight staples",
		MealServings: map[string]int{"Mac and Cheese": 4, "Chicken Tacos": 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	if fav.FavoriteID == "" {
		t.Error("no favorite id generated")
	}
	if fav.CreatedAt == 0 || fav.LastUsed != fav.CreatedAt {
		t.Errorf("timestamps: createdAt=%d lastUsed=%d", fav.CreatedAt, fav.LastUsed)
	}

	got, err := svc.Get(ctx, "alice", fav.FavoriteID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Weeknight staples" {
		t.Errorf("name = %q", got.Name)
	}
	if got.MealServings["Mac and Cheese"] != 4 || got.MealServings["Chicken Tacos"] != 2 {
		t.Errorf("meal selection = %v", got.MealServings)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "alice", &CreateRequest{Name: "first", MealServings: map[string]int{"Pancakes": 2}})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Create(ctx, "alice", &CreateRequest{Name: "second", MealServings: map[string]int{"Waffles": 2}})
	if err != nil {
		t.Fatal(err)
	}
	// force distinct ordering even when both writes land in the same
	// millisecond
	second.CreatedAt = first.CreatedAt + 1
	if err := svc.repo.Save(ctx, "alice", second); err != nil {
		t.Fatal(err)
	}

	favs, err := svc.All(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(favs) != 2 {
		t.Fatalf("got %d favorites, want 2", len(favs))
	}
	if favs[0].Name != "second" || favs[1].Name != "first" {
		t.Errorf("order = [%s, %s], want newest first", favs[0].Name, favs[1].Name)
	}

	favs, err = svc.All(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if len(favs) != 0 {
		t.Errorf("bob sees alice's favorites: %v", favs)
	}
}

func TestMarkUsed(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	fav, err := svc.Create(ctx, "alice", &CreateRequest{Name: "taco night", MealServings: map[string]int{"Chicken Tacos": 4}})
	if err != nil {
		t.Fatal(err)
	}

	// backdate so the touch is observable
	fav.LastUsed = fav.CreatedAt - 1000
	if err := svc.repo.Save(ctx, "alice", fav); err != nil {
		t.Fatal(err)
	}

	used, err := svc.MarkUsed(ctx, "alice", fav.FavoriteID)
	if err != nil {
		t.Fatal(err)
	}
	if used.LastUsed < fav.CreatedAt {
		t.Errorf("lastUsed = %d not advanced past %d", used.LastUsed, fav.CreatedAt)
	}

	if _, err := svc.MarkUsed(ctx, "alice", "nope"); !errors.Is(err, common.ErrFavoriteNotFound) {
		t.Errorf("got %v, want ErrFavoriteNotFound", err)
	}
}

func TestDeleteFavorite(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	fav, err := svc.Create(ctx, "alice", &CreateRequest{Name: "soup week", MealServings: map[string]int{"Tomato Soup": 2}})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, "alice", fav.FavoriteID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, "alice", fav.FavoriteID); !errors.Is(err, common.ErrFavoriteNotFound) {
		t.Errorf("second delete got %v, want ErrFavoriteNotFound", err)
	}
	if _, err := svc.Get(ctx, "alice", fav.FavoriteID); !errors.Is(err, common.ErrFavoriteNotFound) {
		t.Errorf("get after delete got %v, want ErrFavoriteNotFound", err)
	}
}
