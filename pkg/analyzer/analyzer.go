// Package analyzer sequences scope checking and classification for single
// requirements and batches, and derives summary statistics.
package analyzer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dtnitsch/reqscope/models"
	"github.com/dtnitsch/reqscope/pkg/classify"
	"github.com/dtnitsch/reqscope/pkg/scope"
)

// Analyzer gates classification behind the scope check: an out-of-scope
// requirement never reaches the classifier.
type Analyzer struct {
	scope      *scope.Manager
	classifier *classify.Classifier
	workers    int
	logger     *slog.Logger
}

// New builds an Analyzer. workers bounds batch parallelism; values below 1
// fall back to 4.
func New(scopeMgr *scope.Manager, classifier *classify.Classifier, workers int, logger *slog.Logger) *Analyzer {
	if workers < 1 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		scope:      scopeMgr,
		classifier: classifier,
		workers:    workers,
		logger:     logger,
	}
}

// Analyze evaluates one requirement end to end.
func (a *Analyzer) Analyze(ctx context.Context, requirement string) models.AnalysisRecord {
	record := models.AnalysisRecord{Requirement: requirement}

	record.Scope = a.scope.CheckScope(ctx, requirement)

	if record.Scope.InScope {
		record.Classification = a.classifier.Classify(requirement)
		record.OverallStatus = models.StatusAnalyzed
	} else {
		record.Classification = models.ClassificationResult{
			Type:       models.TypeNotApplicable,
			Confidence: 0.0,
			Message:    "Out of scope",
		}
		record.OverallStatus = models.StatusOutOfScope
	}
	return record
}

type batchJob struct {
	idx         int
	requirement string
}

type batchResult struct {
	idx    int
	record models.AnalysisRecord
}

// AnalyzeBatch analyzes requirements independently across a bounded worker
// pool. Items share no state, so workers may interleave freely; results come
// back in input order.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, requirements []string) []models.AnalysisRecord {
	records := make([]models.AnalysisRecord, len(requirements))
	if len(requirements) == 0 {
		return records
	}

	workers := a.workers
	if workers > len(requirements) {
		workers = len(requirements)
	}

	jobs := make(chan batchJob, len(requirements))
	results := make(chan batchResult, len(requirements))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- batchResult{idx: job.idx, record: a.Analyze(ctx, job.requirement)}
			}
		}()
	}

	for i, r := range requirements {
		jobs <- batchJob{idx: i, requirement: r}
	}
	close(jobs)

	wg.Wait()
	close(results)

	for res := range results {
		records[res.idx] = res.record
	}
	return records
}

// Summarize aggregates batch statistics. FR/NFR percentages divide by the
// in-scope count; both report 0 when nothing was in scope.
func Summarize(records []models.AnalysisRecord) models.Summary {
	s := models.Summary{
		Total:            len(records),
		NFRSubcategories: make(map[string]int),
	}

	for _, r := range records {
		if !r.Scope.InScope {
			continue
		}
		s.InScope++
		switch r.Classification.Type {
		case models.TypeFunctional:
			s.Functional++
		case models.TypeNonFunctional:
			s.NonFunctional++
			sub := r.Classification.SubCategory
			if sub == "" {
				sub = "Unknown"
			}
			s.NFRSubcategories[sub]++
		}
	}
	s.OutOfScope = s.Total - s.InScope

	if s.Total > 0 {
		s.ScopePercentage = float64(s.InScope) / float64(s.Total) * 100
	}
	if s.InScope > 0 {
		s.FRPercentage = float64(s.Functional) / float64(s.InScope) * 100
		s.NFRPercentage = float64(s.NonFunctional) / float64(s.InScope) * 100
	}
	return s
}
