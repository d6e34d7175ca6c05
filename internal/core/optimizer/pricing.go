package optimizer

import (
	"sort"

	"smartcart/internal/core/match"

	"github.com/shopspring/decimal"
)

// candidate is the best offer for one product at one store.
type candidate struct {
	storeID   string
	unitPrice float64
	effective float64
	promo     bool
}

// pricingStats carries what the assembler needs to explain pricing.
// fallbackStore is where fallback-priced items actually ended up; in
// single-store mode that is the chosen store, not the default.
type pricingStats struct {
	fallbackIDs   []string
	fallbackStore string
	totalSavings  decimal.Decimal
	dealCount     int
}

// price assigns every shortfall to a store. In cost-minimizing mode
// each item independently takes the lowest effective price, with ties
// preferring stores already in the list and then the smaller store
// id. In single-store mode the one store with the lowest basket total
// wins, pricing unstocked items at the default price.
func price(shortfalls []requirement, snap *Snapshot, singleStore bool) ([]ShoppingItem, *pricingStats) {
	stats := &pricingStats{totalSavings: decimal.Zero, fallbackStore: snap.DefaultStore}
	if len(shortfalls) == 0 {
		return nil, stats
	}

	candidates := make([][]candidate, len(shortfalls))
	for i, r := range shortfalls {
		candidates[i] = candidatesFor(r, snap)
	}

	if singleStore {
		return priceSingleStore(shortfalls, candidates, snap, stats), stats
	}
	return priceCostMin(shortfalls, candidates, snap, stats), stats
}

func priceCostMin(shortfalls []requirement, candidates [][]candidate, snap *Snapshot, stats *pricingStats) []ShoppingItem {
	items := make([]ShoppingItem, 0, len(shortfalls))
	chosen := make(map[string]bool)

	for i, r := range shortfalls {
		var best *candidate
		for j := range candidates[i] {
			c := &candidates[i][j]
			switch {
			case best == nil, c.effective < best.effective:
				best = c
			case c.effective == best.effective && chosen[c.storeID] && !chosen[best.storeID]:
				best = c
			}
		}

		item := buildItem(r, best, snap, stats)
		chosen[item.StoreID] = true
		items = append(items, item)
	}
	return items
}

func priceSingleStore(shortfalls []requirement, candidates [][]candidate, snap *Snapshot, stats *pricingStats) []ShoppingItem {
	stores := make(map[string]bool)
	for _, cs := range candidates {
		for _, c := range cs {
			stores[c.storeID] = true
		}
	}
	storeIDs := make([]string, 0, len(stores))
	for id := range stores {
		storeIDs = append(storeIDs, id)
	}
	sort.Strings(storeIDs)

	// exhaustive basket total per candidate store; store count is small
	bestStore := snap.DefaultStore
	var bestTotal decimal.Decimal
	for i, storeID := range storeIDs {
		total := decimal.Zero
		for j, r := range shortfalls {
			unit := snap.DefaultPrice
			if c := candidateAt(candidates[j], storeID); c != nil {
				unit = c.effective
			}
			total = total.Add(decimal.NewFromFloat(unit).Mul(decimal.NewFromFloat(r.Qty)))
		}
		if i == 0 || total.LessThan(bestTotal) {
			bestStore, bestTotal = storeID, total
		}
	}
	stats.fallbackStore = bestStore

	items := make([]ShoppingItem, 0, len(shortfalls))
	for i, r := range shortfalls {
		c := candidateAt(candidates[i], bestStore)
		item := buildItem(r, c, snap, stats)
		// unstocked items still come home from the same trip
		item.StoreID = bestStore
		items = append(items, item)
	}
	return items
}

// candidatesFor finds the cheapest offer per store for one product.
// Deals arrive sorted by store and product id, so the result order is
// stable.
func candidatesFor(r requirement, snap *Snapshot) []candidate {
	best := make(map[string]*candidate)
	var order []string

	for i := range snap.Deals {
		d := &snap.Deals[i]
		if !match.Same(r.ProductID, d.ProductName) {
			continue
		}
		effective := d.UnitPrice
		promo := d.PromoActive(snap.Today)
		if promo {
			effective = *d.PromoPrice
		}
		if cur, ok := best[d.StoreID]; !ok {
			best[d.StoreID] = &candidate{
				storeID:   d.StoreID,
				unitPrice: d.UnitPrice,
				effective: effective,
				promo:     promo,
			}
			order = append(order, d.StoreID)
		} else if effective < cur.effective {
			cur.unitPrice = d.UnitPrice
			cur.effective = effective
			cur.promo = promo
		}
	}

	sort.Strings(order)
	out := make([]candidate, 0, len(order))
	for _, id := range order {
		out = append(out, *best[id])
	}
	return out
}

func candidateAt(cs []candidate, storeID string) *candidate {
	for i := range cs {
		if cs[i].storeID == storeID {
			return &cs[i]
		}
	}
	return nil
}

// buildItem renders one shopping line. A nil candidate means no store
// prices the product; the default price applies and the substitution
// is recorded for disclosure.
func buildItem(r requirement, c *candidate, snap *Snapshot, stats *pricingStats) ShoppingItem {
	if c == nil {
		stats.fallbackIDs = append(stats.fallbackIDs, r.ProductID)
		return ShoppingItem{
			ProductID: r.ProductID,
			Qty:       r.Qty,
			Unit:      r.Unit,
			StoreID:   snap.DefaultStore,
			Price:     snap.DefaultPrice,
		}
	}

	item := ShoppingItem{
		ProductID: r.ProductID,
		Qty:       r.Qty,
		Unit:      r.Unit,
		StoreID:   c.storeID,
		Price:     c.effective,
	}
	if c.promo {
		saving := decimal.NewFromFloat(c.unitPrice).
			Sub(decimal.NewFromFloat(c.effective)).Round(2)
		original := c.unitPrice
		savingF, _ := saving.Float64()
		item.OriginalPrice = &original
		item.Savings = &savingF
		item.HasDeal = true

		stats.totalSavings = stats.totalSavings.
			Add(saving.Mul(decimal.NewFromFloat(r.Qty)))
		stats.dealCount++
	}
	return item
}
