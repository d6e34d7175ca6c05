// Package match decides whether two product names refer to the same
// grocery item. Meal ingredients, pantry entries and deal feeds all
// spell names differently ("Milk" / "Whole Milk" / "2% Milk"), so
// matching runs through a priority-ordered rule table instead of
// nested string checks: each rule is independently testable and
// tie-breaks are deterministic.
package match

import (
	"regexp"
	"sort"
	"strings"
)

// Rule maps a normalized name pattern to a canonical product group.
// Lower priority values are evaluated first; the first matching rule
// wins. Guard rules keep lookalikes ("bread crumbs", "coconut milk")
// out of the broader groups below them.
type Rule struct {
	Pattern   *regexp.Regexp
	Canonical string
	Priority  int
}

var rules = []Rule{
	// guards
	{regexp.MustCompile(`^bread crumbs?$`), "bread crumbs", 10},
	{regexp.MustCompile(`^coconut milk$`), "coconut milk", 10},
	{regexp.MustCompile(`^buttermilk$`), "buttermilk", 10},
	{regexp.MustCompile(`^rice noodles?$`), "rice noodles", 10},

	// variation groups
	{regexp.MustCompile(`^(?:(?:2%|skim|almond|soy|oat) )?milk$`), "milk", 20},
	{regexp.MustCompile(`^(?:(?:white|brown|jasmine|basmati|long grain) )?rice$`), "rice", 20},
	{regexp.MustCompile(`^(?:large )?eggs?$`), "eggs", 20},
	{regexp.MustCompile(`^(?:(?:white|wheat|whole wheat|sourdough|rye) )?bread$`), "bread", 20},
	{regexp.MustCompile(`^baguette$|^dinner rolls?$`), "bread", 20},
	{regexp.MustCompile(`^(?:(?:dark|light) )?soy sauce$`), "soy sauce", 20},
	{regexp.MustCompile(`^(?:(?:all[- ]purpose|whole wheat|white|bread|cake|tempura) )?flour$`), "flour", 20},
}

func init() {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority < rules[j].Priority
		}
		return rules[i].Pattern.String() < rules[j].Pattern.String()
	})
}

var (
	spaceRe     = regexp.MustCompile(`\s+`)
	prefixRe    = regexp.MustCompile(`^(?:whole|fresh|canned|frozen)\s+`)
	trailDashRe = regexp.MustCompile(`\s+-\s*.*$`)
	nonAlnumRe  = regexp.MustCompile(`[^a-z0-9\s]`)
)

// Normalize lowercases a product name, collapses whitespace and strips
// packaging qualifiers. It never merges distinct products; that is the
// rule table's job.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = spaceRe.ReplaceAllString(n, " ")
	n = trailDashRe.ReplaceAllString(n, "")
	n = prefixRe.ReplaceAllString(n, "")
	return strings.TrimSpace(n)
}

func singular(name string) string {
	if len(name) >= 4 && strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss") {
		return name[:len(name)-1]
	}
	return name
}

// Group returns the canonical group for a name, if any rule matches.
func Group(name string) (string, bool) {
	n := Normalize(name)
	for _, r := range rules {
		if r.Pattern.MatchString(n) {
			return r.Canonical, true
		}
	}
	return "", false
}

// Same reports whether two product names refer to the same item.
func Same(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return true
	}
	if singular(na) == singular(nb) {
		return true
	}

	ga, oka := Group(na)
	gb, okb := Group(nb)
	if oka && okb {
		// both names are governed by rules; the rules decide
		return ga == gb
	}
	if oka && ga == singular(nb) {
		return true
	}
	if okb && gb == singular(na) {
		return true
	}

	// phrase containment at word boundaries: "Soy Sauce" vs
	// "Dark Soy Sauce", but never "Corn" vs "Cornstarch"
	if len(na) >= 4 && containsPhrase(nb, na) {
		return true
	}
	if len(nb) >= 4 && containsPhrase(na, nb) {
		return true
	}

	// single word against a compound: "Cheese" vs "Cheddar Cheese"
	if w := singular(na); !strings.Contains(na, " ") && len(w) >= 4 {
		for _, part := range strings.Fields(nb) {
			if singular(part) == w {
				return true
			}
		}
	}
	if w := singular(nb); !strings.Contains(nb, " ") && len(w) >= 4 {
		for _, part := range strings.Fields(na) {
			if singular(part) == w {
				return true
			}
		}
	}

	return false
}

func containsPhrase(haystack, phrase string) bool {
	return strings.Contains(" "+haystack+" ", " "+phrase+" ")
}

// ProductKey derives a stable slug from a product name, used when a
// deal feed omits explicit product ids.
func ProductKey(name string) string {
	if name == "" {
		return "unknown"
	}
	key := strings.ToLower(name)
	key = nonAlnumRe.ReplaceAllString(key, "")
	key = spaceRe.ReplaceAllString(strings.TrimSpace(key), "-")
	if len(key) > 50 {
		key = key[:50]
	}
	return key
}
