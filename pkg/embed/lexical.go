package embed

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

// DefaultDimension is the vector size of the lexical embedder.
const DefaultDimension = 256

var lexicalTokens = regexp.MustCompile(`[a-z0-9][a-z0-9'-]*`)

// Lexical is a deterministic, offline embedding provider: signed feature
// hashing over lowercased tokens, L2-normalized. It captures lexical overlap
// only, not meaning, and exists for air-gapped runs and tests. It is never
// selected implicitly.
type Lexical struct {
	dim int
}

func NewLexical(dim int) *Lexical {
	if dim <= 0 {
		dim = DefaultDimension
	}
	return &Lexical{dim: dim}
}

func (l *Lexical) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, l.dim)
	for _, tok := range lexicalTokens.FindAllString(strings.ToLower(text), -1) {
		h := fnv.New64a()
		h.Write([]byte(tok))
		sum := h.Sum64()
		bucket := int(sum % uint64(l.dim))
		// Top bit picks the sign so unrelated texts stay near-orthogonal.
		if sum>>63 == 1 {
			vec[bucket]--
		} else {
			vec[bucket]++
		}
	}
	normalize(vec)
	return vec, nil
}

func (l *Lexical) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := l.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		vecs[i] = v
	}
	return vecs, nil
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
