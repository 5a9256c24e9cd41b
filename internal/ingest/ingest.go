// Package ingest pulls candidate requirement sentences out of HTML
// requirements documents so they can be fed to batch analysis.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Fetcher retrieves requirement documents over HTTP.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{},
	}
}

// GetHTML fetches a URL and returns the raw document body.
func (f *Fetcher) GetHTML(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch document, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

// modalPattern marks a sentence as a candidate requirement. Requirements
// documents phrase obligations with these auxiliaries.
var modalPattern = regexp.MustCompile(`(?i)\b(shall|must|should|will)\b`)

// sentenceEnd splits paragraph text into sentences.
var sentenceEnd = regexp.MustCompile(`[.!?]+(\s+|$)`)

// ExtractRequirements distills an HTML document down to its main content and
// returns candidate requirement sentences: list items and paragraph
// sentences that carry a requirement modal. Order follows the document;
// duplicates are dropped.
func ExtractRequirements(html, pageURL string) ([]string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid document URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to distill document: %w", err)
	}

	content := article.Content
	if strings.TrimSpace(content) == "" {
		// Short fixture pages can fall below readability's content
		// heuristics; fall back to the raw document.
		content = html
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse distilled content: %w", err)
	}

	var requirements []string
	seen := make(map[string]bool)
	add := func(sentence string) {
		sentence = strings.Join(strings.Fields(sentence), " ")
		if len(sentence) < 10 || !modalPattern.MatchString(sentence) {
			return
		}
		if seen[sentence] {
			return
		}
		seen[sentence] = true
		requirements = append(requirements, sentence)
	}

	doc.Find("li,p").Each(func(i int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		text := s.Text()

		switch tag {
		case "li":
			// List items are usually one requirement each.
			add(text)
		case "p":
			for _, sentence := range splitSentences(text) {
				add(sentence)
			}
		}
	})

	return requirements, nil
}

// splitSentences breaks paragraph text on sentence-ending punctuation.
func splitSentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}
