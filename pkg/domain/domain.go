// Package domain scores project descriptions against a small table of named
// domain archetypes and expands base keywords into the final scope profile.
package domain

import (
	"sort"
	"strings"

	"github.com/dtnitsch/reqscope/pkg/catalog"
)

// Label names a detected domain archetype.
type Label string

// Generic is the sentinel for descriptions matching no archetype.
const Generic Label = "generic"

type archetype struct {
	Label       Label
	Identifiers []string
}

// archetypes is scanned in declaration order; ties on match count resolve to
// the earlier entry. The order here is therefore part of the contract.
var archetypes = []archetype{
	{Label: "online shopping", Identifiers: []string{"shopping", "ecommerce", "store", "product", "cart", "checkout"}},
	{Label: "library management", Identifiers: []string{"library", "book", "catalog", "borrow", "return"}},
	{Label: "hospital management", Identifiers: []string{"hospital", "doctor", "patient", "clinic"}},
	{Label: "school management", Identifiers: []string{"school", "student", "teacher", "exam"}},
	{Label: "banking system", Identifiers: []string{"bank", "account", "transaction", "loan"}},
}

// expansions maps known domains to their curated keyword expansion lists.
var expansions = map[Label][]string{
	"online shopping": {
		"product", "products", "cart", "add to cart", "checkout", "payment",
		"order", "order tracking", "shipping", "delivery", "invoice",
		"login", "signup", "register", "authentication",
		"wishlist", "discount", "coupon",
	},
	"library management": {
		"book", "isbn", "borrow", "return", "catalog",
		"reservation", "author", "publication", "librarian",
		"ebook", "digital library",
		"login", "signup", "register", "authentication",
	},
	"hospital management": {
		"patient", "doctor", "appointment", "medicine",
		"prescription", "billing", "emergency",
		"lab report", "treatment plan",
		"login", "signup", "authentication",
	},
	"school management": {
		"student", "teacher", "timetable", "attendance",
		"exam", "grades", "courses", "report card",
		"login", "signup", "authentication",
	},
	"banking system": {
		"account", "transfer", "fund transfer", "balance",
		"withdraw", "deposit", "loan", "credit card",
		"login", "signup", "authentication",
	},
}

// Detect scores each archetype by counting how many of its identifier
// phrases occur as substrings of the lowercased description joined with the
// extracted keywords. The strictly highest count wins; on a tie the earliest
// declared archetype is kept. A best score of zero yields Generic.
func Detect(description string, keywords []string) Label {
	combined := strings.ToLower(description) + " " + strings.ToLower(strings.Join(keywords, " "))

	best := Generic
	bestScore := 0
	for _, a := range archetypes {
		score := 0
		for _, id := range a.Identifiers {
			if strings.Contains(combined, id) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = a.Label
		}
	}
	return best
}

// Expand returns the final keyword profile for a project. Known domains get
// the union of base keywords and their curated expansion; unknown domains
// fall back to the union with the full universal catalog. Output is
// deduplicated and sorted.
func Expand(base []string, d Label) []string {
	extra, known := expansions[d]
	if !known {
		extra = catalog.Universal()
	}

	set := make(map[string]struct{}, len(base)+len(extra))
	for _, k := range base {
		set[k] = struct{}{}
	}
	for _, k := range extra {
		set[k] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Expansion exposes the curated expansion list for a known domain, nil
// otherwise. Callers must not mutate the returned slice.
func Expansion(d Label) []string {
	return expansions[d]
}
