package optimizer

import (
	"fmt"
	"sort"
	"strings"

	"smartcart/internal/core/deals"

	"github.com/shopspring/decimal"
)

// assemble builds the response: per-store cost totals and the note
// list, one note per condition.
func assemble(items []ShoppingItem, nr netResult, stats *pricingStats, snap *Snapshot) *Response {
	costByStore := make(map[string]float64)
	totals := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromFloat(item.Qty))
		totals[item.StoreID] = totals[item.StoreID].Add(line)
		total = total.Add(line)
	}
	for storeID, sum := range totals {
		costByStore[storeID], _ = sum.Round(2).Float64()
	}
	total = total.Round(2)

	usesPantry := nr.usesPantry
	if usesPantry == nil {
		usesPantry = []string{}
	}
	if items == nil {
		items = []ShoppingItem{}
	}

	return &Response{
		List:        items,
		UsesPantry:  usesPantry,
		CostByStore: costByStore,
		Notes:       buildNotes(items, nr, stats, snap, costByStore, total),
	}
}

func buildNotes(items []ShoppingItem, nr netResult, stats *pricingStats, snap *Snapshot, costByStore map[string]float64, total decimal.Decimal) []string {
	notes := []string{}
	seen := make(map[string]bool)
	add := func(note string) {
		if note != "" && !seen[note] {
			seen[note] = true
			notes = append(notes, note)
		}
	}

	if len(stats.fallbackIDs) > 0 {
		add(fmt.Sprintf("No price data for %s; using default price $%.2f at %s",
			strings.Join(stats.fallbackIDs, ", "), snap.DefaultPrice, stats.fallbackStore))
	}
	if len(snap.Deals) > 0 && snap.DealDate != deals.FormatDate(snap.Today) {
		add(fmt.Sprintf("No prices for today; using the latest available from %s", snap.DealDate))
	}
	for _, note := range nr.notes {
		add(note)
	}
	if n := len(nr.usesPantry); n > 0 {
		add(fmt.Sprintf("%d item(s) covered by your pantry and left off the list", n))
	}
	if stats.totalSavings.IsPositive() {
		savings := stats.totalSavings.Round(2)
		full := total.Add(savings)
		pct := decimal.Zero
		if full.IsPositive() {
			pct = savings.Div(full).Mul(decimal.NewFromInt(100)).Round(0)
		}
		add(fmt.Sprintf("Deals on %d item(s) save you $%s (%s%% off)",
			stats.dealCount, savings.StringFixed(2), pct.String()))
	}
	if len(items) > 0 {
		add(storeNote(costByStore))
		add(fmt.Sprintf("Estimated total: $%s", total.StringFixed(2)))
	}

	return notes
}

// storeNote summarizes the trip: a per-store breakdown when the list
// spans stores, a one-stop mention otherwise.
func storeNote(costByStore map[string]float64) string {
	storeIDs := make([]string, 0, len(costByStore))
	for id := range costByStore {
		storeIDs = append(storeIDs, id)
	}
	sort.Strings(storeIDs)

	if len(storeIDs) == 1 {
		return fmt.Sprintf("Everything is available at %s", storeIDs[0])
	}

	parts := make([]string, 0, len(storeIDs))
	for _, id := range storeIDs {
		parts = append(parts, fmt.Sprintf("%s $%.2f", id, costByStore[id]))
	}
	return fmt.Sprintf("Shopping across %d stores: %s", len(storeIDs), strings.Join(parts, ", "))
}
