package domain

import (
	"testing"
)

func TestDetectOnlineShopping(t *testing.T) {
	got := Detect(
		"An online shopping system where users can browse products and checkout",
		[]string{"product", "checkout", "online shopping system"})
	if got != "online shopping" {
		t.Errorf("Detect() = %q, want \"online shopping\"", got)
	}
}

func TestDetectGenericWhenNothingMatches(t *testing.T) {
	got := Detect("A tool for composing ambient music", []string{"music", "composition"})
	if got != Generic {
		t.Errorf("Detect() = %q, want %q", got, Generic)
	}
}

func TestDetectTieBreaksByDeclarationOrder(t *testing.T) {
	// "catalog" hits both online shopping ("store" via nothing... ) and
	// library; construct a text hitting exactly one identifier of two
	// archetypes: "store" (online shopping) and "book" (library management).
	// Online shopping is declared first and must win the tie.
	got := Detect("a store of book", nil)
	if got != "online shopping" {
		t.Errorf("Detect() tie = %q, want \"online shopping\" (declaration order)", got)
	}
}

func TestDetectDeterministic(t *testing.T) {
	desc := "patients visit the clinic and the hospital"
	first := Detect(desc, nil)
	for i := 0; i < 10; i++ {
		if got := Detect(desc, nil); got != first {
			t.Fatalf("Detect() returned %q then %q for identical input", first, got)
		}
	}
	if first != "hospital management" {
		t.Errorf("Detect() = %q, want \"hospital management\"", first)
	}
}

func TestExpandKnownDomainIsSupersetOfExpansion(t *testing.T) {
	base := []string{"product", "checkout", "storefront"}
	got := Expand(base, "online shopping")

	set := make(map[string]struct{}, len(got))
	for _, k := range got {
		set[k] = struct{}{}
	}
	for _, want := range Expansion("online shopping") {
		if _, ok := set[want]; !ok {
			t.Errorf("Expand() missing curated expansion keyword %q", want)
		}
	}
	for _, want := range base {
		if _, ok := set[want]; !ok {
			t.Errorf("Expand() missing base keyword %q", want)
		}
	}
}

func TestExpandUnknownDomainUsesUniversalCatalog(t *testing.T) {
	got := Expand([]string{"music"}, Generic)

	set := make(map[string]struct{}, len(got))
	for _, k := range got {
		set[k] = struct{}{}
	}
	// Spot-check phrases that only the universal catalog would contribute.
	for _, want := range []string{"login", "backup", "scalability", "music"} {
		if _, ok := set[want]; !ok {
			t.Errorf("Expand(generic) missing %q", want)
		}
	}
}

func TestExpandSortedAndDeduplicated(t *testing.T) {
	got := Expand([]string{"login", "login", "cart"}, "online shopping")
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("Expand() not strictly sorted at %d: %q >= %q", i, got[i-1], got[i])
		}
	}
}
