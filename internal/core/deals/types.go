// Package deals is the Deal/Price Index: store- and date-scoped
// product prices with optional promotions, kept in redis and refreshed
// by feed imports. The optimizer consumes read-only snapshots from
// here and never writes back.
package deals

import "time"

// dateLayout is the partition date format (YYYYMMDD), promoLayout the
// ISO date used by feeds for promotion expiry.
const (
	dateLayout  = "20060102"
	promoLayout = "2006-01-02"
)

// Deal is one priced product at one store on one date.
type Deal struct {
	StoreID     string   `json:"storeId"`
	StoreName   string   `json:"storeName"`
	Date        string   `json:"date"` // YYYYMMDD
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	SizeText    string   `json:"sizeText,omitempty"`
	UnitPrice   float64  `json:"unitPrice"`
	PromoPrice  *float64 `json:"promoPrice,omitempty"`
	PromoEnds   string   `json:"promoEnds,omitempty"` // ISO date, empty when open-ended
	SourceURL   string   `json:"sourceUrl,omitempty"`
}

// PromoActive reports whether the deal's promotion applies on the
// given day: a promo price must exist, beat the unit price, and not
// have expired.
func (d *Deal) PromoActive(today time.Time) bool {
	if d.PromoPrice == nil || *d.PromoPrice >= d.UnitPrice {
		return false
	}
	if d.PromoEnds == "" {
		return true
	}
	ends, err := time.Parse(promoLayout, d.PromoEnds)
	if err != nil {
		return false
	}
	day, _ := time.Parse(promoLayout, today.Format(promoLayout))
	return !ends.Before(day)
}

// FormatDate renders a time as a deal partition date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ImportRequest is the feed payload: one store, one date, many items.
type ImportRequest struct {
	StoreID   string       `json:"storeId" binding:"required"`
	StoreName string       `json:"storeName" binding:"required"`
	Date      string       `json:"date" binding:"required"` // YYYYMMDD
	SourceURL string       `json:"sourceUrl"`
	Deals     []ImportItem `json:"deals" binding:"required,min=1"`
}

// ImportItem is one product line in a feed.
type ImportItem struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName" binding:"required"`
	SizeText    string   `json:"sizeText"`
	UnitPrice   float64  `json:"unitPrice" binding:"required,gt=0"`
	PromoPrice  *float64 `json:"promoPrice"`
	PromoEnds   string   `json:"promoEnds"`
}
