package embed

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Cached decorates an Embedder with an in-memory vector cache and an
// optional on-disk cache, keyed by sha256 of the text. Embedding models see
// each distinct text once per process (or once ever, with a cache
// directory).
type Cached struct {
	inner Embedder

	mu  sync.RWMutex
	mem map[string][]float32

	dir string // empty disables the disk layer
}

// NewCached wraps inner with caching. dir may be empty; if set it is created
// on first use.
func NewCached(inner Embedder, dir string) (*Cached, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create embedding cache directory: %w", err)
		}
	}
	return &Cached{
		inner: inner,
		mem:   make(map[string][]float32),
		dir:   dir,
	}, nil
}

func cacheKey(text string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(text)))
}

func (c *Cached) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch serves what it can from cache and forwards only the misses to
// the inner embedder in a single call.
func (c *Cached) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	var missTexts []string
	var missIdx []int

	c.mu.RLock()
	for i, t := range texts {
		if v, ok := c.mem[cacheKey(t)]; ok {
			out[i] = v
			continue
		}
		missTexts = append(missTexts, t)
		missIdx = append(missIdx, i)
	}
	c.mu.RUnlock()

	if len(missTexts) == 0 {
		return out, nil
	}

	// Second chance from disk before hitting the model.
	var fetchTexts []string
	var fetchIdx []int
	for j, t := range missTexts {
		if v, ok := c.readDisk(t); ok {
			c.put(t, v)
			out[missIdx[j]] = v
			continue
		}
		fetchTexts = append(fetchTexts, t)
		fetchIdx = append(fetchIdx, missIdx[j])
	}

	if len(fetchTexts) == 0 {
		return out, nil
	}

	vecs, err := c.inner.EmbedBatch(ctx, fetchTexts)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(fetchTexts) {
		return nil, fmt.Errorf("inner embedder returned %d vectors for %d inputs", len(vecs), len(fetchTexts))
	}

	for j, v := range vecs {
		t := fetchTexts[j]
		c.put(t, v)
		c.writeDisk(t, v)
		out[fetchIdx[j]] = v
	}
	return out, nil
}

func (c *Cached) put(text string, vec []float32) {
	c.mu.Lock()
	c.mem[cacheKey(text)] = vec
	c.mu.Unlock()
}

func (c *Cached) readDisk(text string) ([]float32, bool) {
	if c.dir == "" {
		return nil, false
	}
	data, err := os.ReadFile(filepath.Join(c.dir, cacheKey(text)+".json"))
	if err != nil {
		return nil, false
	}
	var vec []float32
	if err := json.Unmarshal(data, &vec); err != nil {
		return nil, false
	}
	return vec, true
}

func (c *Cached) writeDisk(text string, vec []float32) {
	if c.dir == "" {
		return
	}
	data, err := json.Marshal(vec)
	if err != nil {
		return
	}
	// Best effort: a failed cache write only costs a re-embed later.
	_ = os.WriteFile(filepath.Join(c.dir, cacheKey(text)+".json"), data, 0644)
}
