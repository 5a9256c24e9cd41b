package extract

import (
	"regexp"
	"strings"
)

// PartOfSpeech is the coarse tag assigned by the lexical tagger.
type PartOfSpeech int

const (
	POSOther PartOfSpeech = iota
	POSNoun
	POSProperNoun
	POSVerb
	POSAdjective
)

// Token is one word of a description with its tag. Text keeps original
// casing; Lower is the normalized form used for lookups.
type Token struct {
	Text  string
	Lower string
	POS   PartOfSpeech
}

var wordPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9'-]*`)

// Tokenize splits text into word tokens, keeping intra-word hyphens and
// apostrophes ("two-factor", "customer's").
func Tokenize(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// Tag tokenizes and tags free text in one step.
func Tag(text string) []Token {
	return tagTokens(Tokenize(text))
}

// tagTokens assigns a coarse part of speech to each token. Lookup order
// matters: closed-class words first, then the verb and adjective lexicons,
// then suffix heuristics; anything left is treated as a noun, which is the
// right default for the content words of a project description.
func tagTokens(words []string) []Token {
	tokens := make([]Token, len(words))
	for i, w := range words {
		lower := strings.ToLower(w)
		tokens[i] = Token{Text: w, Lower: lower, POS: tagWord(w, lower, i)}
	}
	return tokens
}

func tagWord(word, lower string, position int) PartOfSpeech {
	if _, ok := functionWords[lower]; ok {
		return POSOther
	}
	if _, ok := verbLexicon[lower]; ok {
		return POSVerb
	}
	if _, ok := adjectiveLexicon[lower]; ok {
		return POSAdjective
	}
	if hasAnySuffix(lower, "ous", "ful", "ive", "able", "ible", "less", "ical") {
		return POSAdjective
	}
	// Mid-sentence capitalization marks proper nouns.
	if position > 0 && word != lower {
		return POSProperNoun
	}
	return POSNoun
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if len(w) > len(s)+2 && strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

// Singularize reduces common English plural forms to singular. It is a
// heuristic, not a full lemmatizer; irregular plurals pass through.
func Singularize(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return strings.TrimSuffix(w, "ies") + "y"
	case strings.HasSuffix(w, "sses"), strings.HasSuffix(w, "ches"),
		strings.HasSuffix(w, "shes"), strings.HasSuffix(w, "xes"):
		return strings.TrimSuffix(w, "es")
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"), strings.HasSuffix(w, "is"):
		return w
	case strings.HasSuffix(w, "s") && len(w) > 3:
		return strings.TrimSuffix(w, "s")
	}
	return w
}
