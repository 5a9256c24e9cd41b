package catalog

import (
	"regexp"
	"strings"
)

// Pattern pairs a catalog phrase with its compiled strict-boundary matcher.
type Pattern struct {
	Phrase string
	re     *regexp.Regexp
}

// Match reports whether the phrase occurs in text under strict boundary
// rules.
func (p Pattern) Match(text string) bool {
	return p.re.MatchString(text)
}

// buildStrictPattern compiles a strict matcher for a catalog phrase.
//
// Single-token phrases require a non-alphanumeric character (or string edge)
// on both sides, so "cat" never fires inside "category" but "re-login" still
// fires "login": the boundary class is exactly [A-Za-z0-9], which makes
// hyphens and apostrophes boundaries. Multi-word phrases match as a whole
// with \b on both ends. Go's RE2 has no lookarounds, so the single-token
// form uses non-capturing boundary groups instead.
func buildStrictPattern(phrase string) Pattern {
	escaped := regexp.QuoteMeta(phrase)
	var expr string
	if strings.Contains(phrase, " ") {
		expr = `(?i)\b` + escaped + `\b`
	} else {
		expr = `(?i)(?:^|[^a-z0-9])` + escaped + `(?:[^a-z0-9]|$)`
	}
	return Pattern{Phrase: phrase, re: regexp.MustCompile(expr)}
}

// UniversalPatterns is the process-wide index of compiled universal keyword
// patterns, in catalog order. Built once at package init, never mutated, safe
// to share across goroutines.
var UniversalPatterns = buildUniversalPatterns()

func buildUniversalPatterns() []Pattern {
	phrases := Universal()
	patterns := make([]Pattern, len(phrases))
	for i, p := range phrases {
		patterns[i] = buildStrictPattern(p)
	}
	return patterns
}

// MatchUniversal scans text against the universal index in catalog order and
// returns the first matching phrase. First match wins: any universal phrase
// is sufficient for the override, order only decides which phrase is cited.
func MatchUniversal(text string) (string, bool) {
	for _, p := range UniversalPatterns {
		if p.Match(text) {
			return p.Phrase, true
		}
	}
	return "", false
}
