package pantry

import (
	"context"
	"errors"
	"testing"

	"smartcart/internal/pkg/common"
)

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(testRepo(t))
}

func TestCreateDefaults(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, "alice", &CreateItemRequest{Name: "Eggs", Quantity: 12})
	if err != nil {
		t.Fatal(err)
	}
	if item.ProductID == "" {
		t.Error("no product id generated")
	}
	if item.Unit != "unit" {
		t.Errorf("unit = %q, want default", item.Unit)
	}
	if item.Source != "manual" {
		t.Errorf("source = %q, want manual", item.Source)
	}
	if item.LastUpdated == "" {
		t.Error("lastUpdated not set")
	}
}

func TestAdjustClampsAtZero(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, "alice", &CreateItemRequest{Name: "Milk", Quantity: 2, Unit: "qt"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Adjust(ctx, "alice", item.ProductID, -1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Quantity != 1 {
		t.Errorf("quantity = %v, want 1", got.Quantity)
	}

	got, err = svc.Adjust(ctx, "alice", item.ProductID, -10)
	if err != nil {
		t.Fatal(err)
	}
	if got.Quantity != 0 {
		t.Errorf("quantity = %v, want clamp at 0", got.Quantity)
	}

	got, err = svc.Adjust(ctx, "alice", item.ProductID, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got.Quantity != 3 {
		t.Errorf("quantity = %v, want 3", got.Quantity)
	}
}

func TestAdjustMissingItem(t *testing.T) {
	svc := testService(t)
	_, err := svc.Adjust(context.Background(), "alice", "nope", 1)
	if !errors.Is(err, common.ErrPantryItemNotFound) {
		t.Errorf("got %v, want ErrPantryItemNotFound", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, "alice", &CreateItemRequest{Name: "Rice", Quantity: 1, Unit: "lb"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(ctx, "alice", item.ProductID, &CreateItemRequest{Name: "Jasmine Rice", Quantity: 2, Unit: "lb"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Jasmine Rice" || updated.Quantity != 2 {
		t.Errorf("got %+v", updated)
	}

	if err := svc.Delete(ctx, "alice", item.ProductID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, "alice", item.ProductID); !errors.Is(err, common.ErrPantryItemNotFound) {
		t.Errorf("second delete got %v, want ErrPantryItemNotFound", err)
	}
}
