package ingest

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const requirementsDoc = `<!DOCTYPE html>
<html>
<head><title>Online Store Requirements</title></head>
<body>
<article>
<h1>Online Store Requirements</h1>
<p>This document describes the planned online store. The system shall allow
customers to browse the product catalog. Development started in March.
Checkout must complete within three steps.</p>
<ul>
<li>Users must be able to add products to a shopping cart.</li>
<li>The team enjoys Friday demos.</li>
<li>Order history should be visible to signed-in customers.</li>
</ul>
<p>Questions go to the project mailing list.</p>
</article>
</body>
</html>`

func TestExtractRequirements(t *testing.T) {
	requirements, err := ExtractRequirements(requirementsDoc, "https://example.com/requirements")
	if err != nil {
		t.Fatalf("ExtractRequirements() error = %v", err)
	}

	want := []string{
		"The system shall allow customers to browse the product catalog",
		"Checkout must complete within three steps",
		"Users must be able to add products to a shopping cart.",
		"Order history should be visible to signed-in customers.",
	}

	for _, w := range want {
		found := false
		for _, got := range requirements {
			if strings.Contains(got, strings.TrimSuffix(w, ".")) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing requirement %q in %v", w, requirements)
		}
	}

	for _, got := range requirements {
		if strings.Contains(got, "Friday demos") {
			t.Errorf("non-requirement sentence extracted: %q", got)
		}
		if strings.Contains(got, "mailing list") {
			t.Errorf("non-requirement sentence extracted: %q", got)
		}
		if strings.Contains(got, "March") {
			t.Errorf("sentence without modal extracted: %q", got)
		}
	}
}

func TestExtractRequirements_Deduplicates(t *testing.T) {
	doc := `<html><body><article>
<ul>
<li>The system shall send order confirmations.</li>
<li>The system shall send order confirmations.</li>
</ul>
</article></body></html>`

	requirements, err := ExtractRequirements(doc, "https://example.com/doc")
	if err != nil {
		t.Fatalf("ExtractRequirements() error = %v", err)
	}
	if len(requirements) != 1 {
		t.Errorf("got %d requirements, want 1 after dedup: %v", len(requirements), requirements)
	}
}

func TestExtractRequirements_InvalidURL(t *testing.T) {
	if _, err := ExtractRequirements("<html></html>", "://not-a-url"); err == nil {
		t.Error("ExtractRequirements() with invalid URL should fail")
	}
}

func TestFetcherGetHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(requirementsDoc))
	}))
	defer server.Close()

	f := NewFetcher()
	html, err := f.GetHTML(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetHTML() error = %v", err)
	}
	if !strings.Contains(html, "Online Store Requirements") {
		t.Errorf("unexpected body: %q", html)
	}
}

func TestFetcherGetHTML_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := NewFetcher().GetHTML(context.Background(), server.URL); err == nil {
		t.Error("GetHTML() on 404 should fail")
	}
}

func TestRunOrdersResultsAndRecordsErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/missing") {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(requirementsDoc))
	}))
	defer server.Close()

	logger := slog.New(slog.DiscardHandler)
	urls := []string{
		server.URL + "/doc-a",
		server.URL + "/missing",
		server.URL + "/doc-b",
	}

	results := Run(context.Background(), logger, urls, 2)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if r.URL != urls[i] {
			t.Errorf("results[%d].URL = %q, want %q", i, r.URL, urls[i])
		}
	}

	if results[0].ErrorType != "" || len(results[0].Requirements) == 0 {
		t.Errorf("results[0] should carry requirements: %+v", results[0])
	}
	if results[1].ErrorType != "fetch_error" {
		t.Errorf("results[1].ErrorType = %q, want fetch_error", results[1].ErrorType)
	}
	if results[2].ErrorType != "" || len(results[2].Requirements) == 0 {
		t.Errorf("results[2] should carry requirements: %+v", results[2])
	}
}
