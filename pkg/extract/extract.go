// Package extract derives candidate domain keywords from a free-text project
// description. It runs a lexical part-of-speech pass (no external NLP
// service) and collects noun-phrase chunks plus singularized nouns, filtered
// against a generic stop set.
package extract

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// ErrUnsupportedLanguage is returned when the description is not detectably
// English. Extraction degrades to an empty keyword set rather than guessing
// keywords from a language the tagger cannot handle.
var ErrUnsupportedLanguage = errors.New("description language not supported")

// Extractor turns project descriptions into keyword sets. Construct via New;
// the language detector is built once and reused.
type Extractor struct {
	detector lingua.LanguageDetector
}

// New builds an Extractor with its language-detection capability ready. The
// detector is the expensive part; callers should construct one Extractor per
// process and share it.
func New() *Extractor {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Spanish,
			lingua.French,
			lingua.German,
			lingua.Portuguese,
			lingua.Italian,
		).
		Build()
	return &Extractor{detector: detector}
}

// Extract returns the deduplicated, sorted candidate keywords of a project
// description. A non-English description yields an empty set and
// ErrUnsupportedLanguage; same input always yields the same output.
func (e *Extractor) Extract(description string) ([]string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return []string{}, nil
	}

	if lang, ok := e.detector.DetectLanguageOf(trimmed); !ok || lang != lingua.English {
		return []string{}, fmt.Errorf("detected language %v: %w", lang, ErrUnsupportedLanguage)
	}

	tokens := tagTokens(Tokenize(trimmed))
	keywords := make(map[string]struct{})

	for _, chunk := range nounChunks(tokens) {
		if len(chunk) < 3 {
			continue
		}
		if allStopWords(chunk) {
			continue
		}
		keywords[chunk] = struct{}{}
	}

	for _, tok := range tokens {
		if tok.POS != POSNoun && tok.POS != POSProperNoun {
			continue
		}
		lemma := Singularize(tok.Lower)
		if _, stop := genericStopWords[lemma]; stop {
			continue
		}
		keywords[lemma] = struct{}{}
	}

	out := make([]string, 0, len(keywords))
	for k := range keywords {
		k = strings.TrimSpace(k)
		if len(k) > 2 {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out, nil
}

// nounChunks collects maximal runs of adjective/noun tokens that end in a
// noun and span at least two words. Single nouns are picked up separately.
func nounChunks(tokens []Token) []string {
	var chunks []string
	var run []Token

	flush := func() {
		// Trim trailing non-nouns so runs like "online shopping and" end
		// cleanly at the last noun.
		end := len(run)
		for end > 0 && run[end-1].POS != POSNoun && run[end-1].POS != POSProperNoun {
			end--
		}
		if end >= 2 {
			words := make([]string, end)
			for i := 0; i < end; i++ {
				words[i] = run[i].Lower
			}
			chunks = append(chunks, strings.Join(words, " "))
		}
		run = run[:0]
	}

	for _, tok := range tokens {
		switch tok.POS {
		case POSNoun, POSProperNoun, POSAdjective:
			run = append(run, tok)
		default:
			flush()
		}
	}
	flush()
	return chunks
}

func allStopWords(chunk string) bool {
	for _, w := range strings.Fields(chunk) {
		if _, ok := genericStopWords[w]; !ok {
			return false
		}
	}
	return true
}
