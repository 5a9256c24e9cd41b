package catalog

import (
	"strings"
	"testing"
)

func TestFlattenPreservesFirstOccurrenceOrder(t *testing.T) {
	cats := []Category{
		{Name: "a", Phrases: []string{"login", "token", "session"}},
		{Name: "b", Phrases: []string{"token", "backup", "login", "restore"}},
	}

	got := Flatten(cats)
	want := []string{"login", "token", "session", "backup", "restore"}

	if len(got) != len(want) {
		t.Fatalf("Flatten() returned %d phrases, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Flatten()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUniversalHasNoDuplicates(t *testing.T) {
	seen := make(map[string]int)
	for _, p := range Universal() {
		seen[p]++
	}
	for p, n := range seen {
		if n > 1 {
			t.Errorf("phrase %q appears %d times in Universal()", p, n)
		}
	}
}

func TestUniversalStartsWithAuthentication(t *testing.T) {
	// The first declared category is authentication and its first phrase is
	// "login"; first-match citation depends on this ordering.
	got := Universal()
	if len(got) == 0 || got[0] != "login" {
		t.Fatalf("Universal()[0] = %q, want \"login\"", got[0])
	}
}

func TestStrictPatternWordBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		text   string
		want   bool
	}{
		{"whole word matches", "login", "users must login daily", true},
		{"case insensitive", "login", "Users must LOGIN daily", true},
		{"no partial word match", "cat", "organized by category", false},
		{"hyphen is a boundary", "login", "support re-login after timeout", true},
		{"apostrophe is a boundary", "session", "the session's owner", true},
		{"digit neighbor blocks", "login", "the login2 endpoint", false},
		{"letter neighbor blocks", "auth", "oauthn handshake", false},
		{"start of string", "backup", "backup runs nightly", true},
		{"end of string", "backup", "the system performs a backup", true},
		{"multi-word phrase", "sign in", "users can sign in with email", true},
		{"multi-word not split", "sign in", "design innovation", false},
		{"hyphenated phrase", "two-factor", "requires two-factor auth", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildStrictPattern(tt.phrase)
			if got := p.Match(tt.text); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.phrase, tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchUniversalFirstMatchWins(t *testing.T) {
	// "login" is declared before "password" in the catalog; a requirement
	// containing both must cite "login".
	phrase, ok := MatchUniversal("the system shall allow users to login with a password")
	if !ok {
		t.Fatal("MatchUniversal() found no match, want one")
	}
	if phrase != "login" {
		t.Errorf("MatchUniversal() cited %q, want \"login\"", phrase)
	}
}

func TestMatchUniversalNoMatch(t *testing.T) {
	if phrase, ok := MatchUniversal("the quarterly board meeting was rescheduled"); ok {
		t.Errorf("MatchUniversal() matched %q, want no match", phrase)
	}
}

func TestMatchUniversalDeterministic(t *testing.T) {
	const req = "the service must support two-factor authentication"
	first, ok := MatchUniversal(req)
	if !ok {
		t.Fatal("MatchUniversal() found no match")
	}
	for i := 0; i < 10; i++ {
		got, _ := MatchUniversal(req)
		if got != first {
			t.Fatalf("MatchUniversal() returned %q then %q for identical input", first, got)
		}
	}
}

func TestAllCatalogPhrasesAreLowercase(t *testing.T) {
	for _, cat := range Categories {
		for _, p := range cat.Phrases {
			if p != strings.ToLower(p) {
				t.Errorf("catalog phrase %q in %q is not lowercase", p, cat.Name)
			}
		}
	}
}
