package pantry

import (
	"fmt"
	"strconv"
	"time"
)

// items surface as alerts this many days before their estimated expiry
const expiryAlertDays = 3

// Alert is one pantry item at or past its expiry window.
type Alert struct {
	Item
	Status string `json:"status"`
}

// expiryLayouts are the date shapes seen in estExpiry values. API
// writes use the ISO form; imported data sometimes carries regional
// formats. Order matters for ambiguous day/month strings.
var expiryLayouts = []string{
	"01/02/2006",
	"01-02-2006",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
}

// ParseExpiry reads an estExpiry value as a calendar day. ISO dates
// first, then millisecond timestamps, then the legacy layouts.
func ParseExpiry(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if millis, err := strconv.ParseInt(s, 10, 64); err == nil {
		t := time.UnixMilli(millis).UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// expiryAlert evaluates one item against today. Items without a
// parseable expiry never alert.
func expiryAlert(item Item, today time.Time) (Alert, bool) {
	expiry, ok := ParseExpiry(item.EstExpiry)
	if !ok {
		return Alert{}, false
	}
	days := daysUntil(today, expiry)
	if days > expiryAlertDays {
		return Alert{}, false
	}
	return Alert{Item: item, Status: expiryStatus(days)}, true
}

func expiryStatus(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("Expired %d day(s) ago", -days)
	case days == 0:
		return "Expires today"
	default:
		return fmt.Sprintf("Expires in %d day(s)", days)
	}
}

// daysUntil counts whole calendar days from one day to another,
// ignoring the time of day on either side.
func daysUntil(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
