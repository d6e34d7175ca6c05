package deals

import (
	"testing"
	"time"
)

func ptr(f float64) *float64 { return &f }

func TestPromoActive(t *testing.T) {
	today := time.Date(2025, 8, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		deal Deal
		want bool
	}{
		{"no promo price", Deal{UnitPrice: 4.0}, false},
		{"open ended promo", Deal{UnitPrice: 4.0, PromoPrice: ptr(3.0)}, true},
		{"promo ends today", Deal{UnitPrice: 4.0, PromoPrice: ptr(3.0), PromoEnds: "2025-08-01"}, true},
		{"promo ends tomorrow", Deal{UnitPrice: 4.0, PromoPrice: ptr(3.0), PromoEnds: "2025-08-02"}, true},
		{"promo expired", Deal{UnitPrice: 4.0, PromoPrice: ptr(3.0), PromoEnds: "2025-07-31"}, false},
		{"promo not cheaper", Deal{UnitPrice: 4.0, PromoPrice: ptr(4.0)}, false},
		{"promo more expensive", Deal{UnitPrice: 4.0, PromoPrice: ptr(4.5)}, false},
		{"malformed end date", Deal{UnitPrice: 4.0, PromoPrice: ptr(3.0), PromoEnds: "soon"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.deal.PromoActive(today); got != tt.want {
				t.Errorf("PromoActive = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 8, 1, 23, 59, 0, 0, time.UTC)
	if got := FormatDate(d); got != "20250801" {
		t.Errorf("FormatDate = %q, want 20250801", got)
	}
}

func TestImportRejectsBadDate(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Import(nil, &ImportRequest{
		StoreID:   "store-a",
		StoreName: "Store A",
		Date:      "2025-08-01", // wrong layout
		Deals:     []ImportItem{{ProductName: "Milk", UnitPrice: 3.0}},
	})
	if err == nil {
		t.Fatal("import accepted a malformed date")
	}
}
