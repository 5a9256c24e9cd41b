// Package embed provides the sentence-embedding resource handle used by
// semantic scope scoring. The handle is constructed once at process
// bootstrap and injected into the components that need it; there is no
// package-level singleton and no silent fallback between providers; an
// unusable configuration fails at construction time.
package embed

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtnitsch/reqscope/models"
)

// Embedder maps text to fixed-length vectors. Implementations must be safe
// for concurrent use after construction.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// ErrNoProvider is returned when the configuration names no embedding
// provider.
var ErrNoProvider = errors.New("embedding provider not configured")

// New constructs the configured Embedder, wrapped in a cache so repeated
// texts are embedded once. Unknown or missing providers are configuration
// errors, not degraded modes.
func New(ctx context.Context, cfg models.EmbeddingConfig) (Embedder, error) {
	var inner Embedder
	switch cfg.Provider {
	case "gemini":
		g, err := NewGemini(ctx, cfg.Model, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini embedder: %w", err)
		}
		inner = g
	case "lexical":
		inner = NewLexical(DefaultDimension)
	case "":
		return nil, ErrNoProvider
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}

	return NewCached(inner, cfg.CacheDir)
}
