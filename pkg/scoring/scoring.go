// Package scoring computes the two relevance signals used by scope
// checking: a semantic similarity against the profile's embedding centroid
// and a lexical keyword-overlap ratio.
package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dtnitsch/reqscope/pkg/embed"
)

// Scorer computes semantic similarity through an injected embedder. The
// embedder is shared, read-only state; Scorer methods are safe for
// concurrent use.
type Scorer struct {
	embedder embed.Embedder
}

func NewScorer(embedder embed.Embedder) *Scorer {
	return &Scorer{embedder: embedder}
}

// Semantic returns the cosine similarity between the requirement's embedding
// and the element-wise mean of the profile phrase embeddings, clamped to
// [0,1]. Negative cosine floors at 0: dissimilarity is not negatively
// informative for relevance. An empty profile scores 0.
func (s *Scorer) Semantic(ctx context.Context, requirement string, profile []string) (float64, error) {
	phrases := make([]string, 0, len(profile))
	for _, p := range profile {
		if strings.TrimSpace(p) != "" {
			phrases = append(phrases, p)
		}
	}
	if len(phrases) == 0 {
		return 0.0, nil
	}

	phraseVecs, err := s.embedder.EmbedBatch(ctx, phrases)
	if err != nil {
		return 0.0, fmt.Errorf("failed to embed profile: %w", err)
	}
	reqVec, err := s.embedder.Embed(ctx, requirement)
	if err != nil {
		return 0.0, fmt.Errorf("failed to embed requirement: %w", err)
	}

	sim := cosine(centroid(phraseVecs), reqVec)
	if sim < 0 {
		sim = 0
	}
	if sim > 1 {
		sim = 1
	}
	return sim, nil
}

// Overlap is the fraction of profile phrases literally present in the
// requirement. A phrase matches on case-insensitive substring containment;
// failing that, a multi-word phrase still matches when each of its words
// appears somewhere in the requirement.
func Overlap(requirement string, profile []string) float64 {
	if len(profile) == 0 {
		return 0.0
	}

	req := strings.ToLower(requirement)
	matches := 0
	for _, kw := range profile {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k == "" {
			continue
		}
		if strings.Contains(req, k) {
			matches++
			continue
		}
		words := strings.Fields(k)
		if len(words) > 1 && allContained(req, words) {
			matches++
		}
	}

	denom := len(profile)
	if denom < 1 {
		denom = 1
	}
	return float64(matches) / float64(denom)
}

func allContained(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

// centroid averages the vectors element-wise. Vectors of mismatched length
// are truncated to the shortest; in practice one model produces one length.
func centroid(vecs [][]float32) []float32 {
	if len(vecs) == 0 {
		return nil
	}
	dim := len(vecs[0])
	for _, v := range vecs {
		if len(v) < dim {
			dim = len(v)
		}
	}

	out := make([]float32, dim)
	for _, v := range vecs {
		for i := 0; i < dim; i++ {
			out[i] += v[i]
		}
	}
	n := float32(len(vecs))
	for i := range out {
		out[i] /= n
	}
	return out
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
