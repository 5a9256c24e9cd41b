// Package scope owns the per-project keyword profile and decides whether a
// requirement is relevant to the declared project.
package scope

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dtnitsch/reqscope/models"
	"github.com/dtnitsch/reqscope/pkg/catalog"
	"github.com/dtnitsch/reqscope/pkg/domain"
	"github.com/dtnitsch/reqscope/pkg/extract"
	"github.com/dtnitsch/reqscope/pkg/scoring"
)

// DefaultThreshold is the scope score cutoff used when none is configured.
const DefaultThreshold = 0.40

// Weights of the combined scope score. Similarity dominates because lexical
// overlap is noisy for paraphrased requirements.
const (
	similarityWeight = 0.7
	overlapWeight    = 0.3
)

// profileState is the immutable snapshot published by SetProjectDescription.
// CheckScope readers either see the whole snapshot or the previous one,
// never a half-built profile.
type profileState struct {
	description string
	base        []string
	profile     []string
	domain      domain.Label
}

// Manager transitions from uninitialized to ready on the first
// SetProjectDescription and stays ready; re-initialization replaces the
// snapshot atomically. There is no reset.
type Manager struct {
	threshold float64
	extractor *extract.Extractor
	scorer    *scoring.Scorer
	logger    *slog.Logger

	state atomic.Pointer[profileState]
}

// NewManager wires a Manager with its collaborators. A non-positive
// threshold falls back to DefaultThreshold.
func NewManager(extractor *extract.Extractor, scorer *scoring.Scorer, threshold float64, logger *slog.Logger) *Manager {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		threshold: threshold,
		extractor: extractor,
		scorer:    scorer,
		logger:    logger,
	}
}

// SetProjectDescription builds the keyword profile for a project and
// publishes it in one step. Keyword extraction failures (unsupported
// language, missing capability) degrade to an empty base set; the expansion
// then falls back to the universal catalog, which keeps scope checking
// usable.
func (m *Manager) SetProjectDescription(ctx context.Context, description string) (*models.ProjectProfile, error) {
	base, err := m.extractor.Extract(description)
	if err != nil {
		m.logger.Warn("keyword extraction degraded", "error", err)
		base = []string{}
	}

	label := domain.Detect(description, base)
	profile := domain.Expand(base, label)

	next := &profileState{
		description: description,
		base:        base,
		profile:     profile,
		domain:      label,
	}
	m.state.Store(next)

	m.logger.Info("project scope initialized",
		"domain", string(label),
		"base_keywords", len(base),
		"profile_keywords", len(profile))

	return &models.ProjectProfile{
		Description:  description,
		Domain:       string(label),
		BaseKeywords: base,
		Keywords:     profile,
	}, nil
}

// CheckScope evaluates one requirement. It always returns a decision: the
// universal override applies even before initialization, and the weighted
// fallback degrades to a zero score on an empty profile or a failing
// embedder.
func (m *Manager) CheckScope(ctx context.Context, requirement string) models.ScopeDecision {
	if phrase, ok := catalog.MatchUniversal(requirement); ok {
		return models.ScopeDecision{
			InScope:    true,
			Confidence: 0.95,
			Similarity: 1.0,
			Overlap:    1.0,
			Reason:     fmt.Sprintf("Universal requirement detected (%q) - valid for all domains", phrase),
		}
	}

	var profile []string
	if st := m.state.Load(); st != nil {
		profile = st.profile
	}

	sim, err := m.scorer.Semantic(ctx, requirement, profile)
	if err != nil {
		m.logger.Warn("semantic similarity unavailable", "error", err)
		sim = 0.0
	}
	overlap := scoring.Overlap(requirement, profile)
	score := similarityWeight*sim + overlapWeight*overlap

	return models.ScopeDecision{
		InScope:    score >= m.threshold,
		Confidence: score,
		Similarity: sim,
		Overlap:    overlap,
		Reason:     m.reason(score, sim),
	}
}

func (m *Manager) reason(score, sim float64) string {
	if score >= m.threshold {
		return "Relevant to project scope"
	}
	if sim < 0.2 {
		return "Low semantic relevance"
	}
	return "Partially related but outside project scope"
}

// Ready reports whether a project profile has been published.
func (m *Manager) Ready() bool {
	return m.state.Load() != nil
}

// Domain returns the detected domain label, or Generic before
// initialization.
func (m *Manager) Domain() domain.Label {
	if st := m.state.Load(); st != nil {
		return st.domain
	}
	return domain.Generic
}

// Profile returns the current expanded keyword profile. The returned slice
// is the published snapshot and must not be mutated.
func (m *Manager) Profile() []string {
	if st := m.state.Load(); st != nil {
		return st.profile
	}
	return nil
}

// Threshold returns the configured scope cutoff.
func (m *Manager) Threshold() float64 {
	return m.threshold
}
