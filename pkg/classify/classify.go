// Package classify is the boundary to the trained FR/NFR classifiers. The
// models and the TF-IDF part of featurization are external collaborators
// behind small interfaces; this package owns the calling convention, the
// error taxonomy and the keyword fallback for NFR sub-categories.
package classify

import (
	"fmt"
	"log/slog"

	"github.com/dtnitsch/reqscope/models"
)

// Featurizer turns requirement text into the numeric vector the models were
// trained on. Feature order is part of the training contract: TF-IDF terms
// first, then FR/NFR keyword counts, then verb/noun/adjective counts (see
// AppendLexicalFeatures).
type Featurizer interface {
	Featurize(text string) ([]float64, error)
}

// Model predicts a label from a feature vector.
type Model interface {
	Predict(features []float64) (string, error)
}

// ProbabilityModel is implemented by models that expose per-label
// probabilities. Models without it degrade to zero confidence, not errors.
type ProbabilityModel interface {
	Model
	Proba(features []float64) (map[string]float64, error)
}

// Classifier sequences featurize -> predict -> sub-categorize. A nil model
// or featurizer is a valid "unconfigured" state, reported per call as
// UNKNOWN rather than at construction, so scope-only deployments work.
type Classifier struct {
	featurizer Featurizer
	model      Model
	subModel   Model
	logger     *slog.Logger
}

func NewClassifier(featurizer Featurizer, model, subModel Model, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		featurizer: featurizer,
		model:      model,
		subModel:   subModel,
		logger:     logger,
	}
}

// Classify never returns an error: every failure path yields a typed result
// describing the failure.
func (c *Classifier) Classify(requirement string) models.ClassificationResult {
	if c.model == nil || c.featurizer == nil {
		return models.ClassificationResult{
			Type:       models.TypeUnknown,
			Confidence: 0.0,
			Message:    "FR/NFR classification model not loaded",
		}
	}

	features, err := c.featurizer.Featurize(requirement)
	if err != nil {
		return models.ClassificationResult{
			Type:       models.TypeError,
			Confidence: 0.0,
			Message:    fmt.Sprintf("Classification error: %v", err),
		}
	}

	label, err := c.model.Predict(features)
	if err != nil {
		return models.ClassificationResult{
			Type:       models.TypeError,
			Confidence: 0.0,
			Message:    fmt.Sprintf("Classification error: %v", err),
		}
	}

	confidence := 0.0
	if pm, ok := c.model.(ProbabilityModel); ok {
		proba, err := pm.Proba(features)
		if err != nil {
			c.logger.Warn("probability estimation unavailable", "error", err)
		} else {
			for _, p := range proba {
				if p > confidence {
					confidence = p
				}
			}
		}
	}

	result := models.ClassificationResult{
		Type:       models.RequirementType(label),
		Confidence: confidence,
		Message:    fmt.Sprintf("Classified as %s", label),
	}

	if result.Type == models.TypeNonFunctional {
		result.SubCategory = c.subCategory(requirement, features)
	}
	return result
}

// subCategory prefers the trained sub-model and falls back to the keyword
// table on any failure.
func (c *Classifier) subCategory(requirement string, features []float64) string {
	if c.subModel != nil {
		if sub, err := c.subModel.Predict(features); err == nil && sub != "" {
			return sub
		} else if err != nil {
			c.logger.Warn("NFR sub-model prediction failed, using keyword fallback", "error", err)
		}
	}
	return FallbackSubCategory(requirement)
}
