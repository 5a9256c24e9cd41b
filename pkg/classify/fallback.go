package classify

import "strings"

// fallbackCategory pairs an NFR sub-category with its trigger keywords.
// Scanned in declaration order; the first category with any hit wins, so the
// result is deterministic for text matching several categories.
type fallbackCategory struct {
	Name     string
	Keywords []string
}

var fallbackCategories = []fallbackCategory{
	{"Performance", []string{"performance", "speed", "response time", "latency", "throughput"}},
	{"Security", []string{"security", "encrypt", "encryption", "authentication", "authorization", "privacy"}},
	{"Usability", []string{"usability", "user-friendly", "intuitive", "accessible", "ux", "ui"}},
	{"Reliability", []string{"reliability", "uptime", "backup", "restore", "failover"}},
	{"Scalability", []string{"scalability", "scale", "concurrent", "concurrent users", "load"}},
	{"Maintainability", []string{"maintainability", "refactor", "modular", "documentation"}},
}

// FallbackSubCategory assigns an NFR sub-category by plain substring
// matching. Used when no trained sub-model is configured or it fails.
func FallbackSubCategory(requirement string) string {
	req := strings.ToLower(requirement)
	for _, cat := range fallbackCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(req, kw) {
				return cat.Name
			}
		}
	}
	return "General"
}
