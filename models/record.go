// Package models defines the shared value types passed between the scope,
// classification and analysis layers.
package models

// RequirementType is the outcome label of requirement classification.
type RequirementType string

const (
	// TypeFunctional marks a functional requirement.
	TypeFunctional RequirementType = "FR"
	// TypeNonFunctional marks a non-functional requirement.
	TypeNonFunctional RequirementType = "NFR"
	// TypeUnknown is returned when no classification model is configured.
	TypeUnknown RequirementType = "UNKNOWN"
	// TypeError is returned when featurization or prediction failed.
	TypeError RequirementType = "ERROR"
	// TypeNotApplicable is synthesized for out-of-scope requirements.
	TypeNotApplicable RequirementType = "NOT_APPLICABLE"
)

// Analysis status values for AnalysisRecord.OverallStatus.
const (
	StatusAnalyzed   = "ANALYZED"
	StatusOutOfScope = "OUT_OF_SCOPE"
)

// ScopeDecision is the result of evaluating one requirement against the
// current project profile. It is recreated per call and never persisted by
// the scope layer itself.
type ScopeDecision struct {
	InScope    bool    `json:"in_scope"`
	Confidence float64 `json:"confidence"`
	Similarity float64 `json:"similarity"`
	Overlap    float64 `json:"overlap"`
	Reason     string  `json:"reason"`
}

// ClassificationResult is the outcome of the FR/NFR classification step.
// SubCategory is only set for NFR results.
type ClassificationResult struct {
	Type        RequirementType `json:"type"`
	Confidence  float64         `json:"confidence"`
	SubCategory string          `json:"sub_category,omitempty"`
	Message     string          `json:"message"`
}

// AnalysisRecord composes one requirement's text with its scope decision and
// classification outcome.
type AnalysisRecord struct {
	Requirement    string               `json:"requirement"`
	Scope          ScopeDecision        `json:"scope_check"`
	Classification ClassificationResult `json:"classification"`
	OverallStatus  string               `json:"overall_status"`
}

// Summary aggregates batch analysis statistics. FR/NFR percentages use the
// in-scope count as denominator; they are 0 when nothing was in scope.
type Summary struct {
	Total            int            `json:"total_requirements"`
	InScope          int            `json:"in_scope"`
	OutOfScope       int            `json:"out_of_scope"`
	Functional       int            `json:"functional_requirements"`
	NonFunctional    int            `json:"non_functional_requirements"`
	NFRSubcategories map[string]int `json:"nfr_subcategories"`
	ScopePercentage  float64        `json:"scope_percentage"`
	FRPercentage     float64        `json:"fr_percentage"`
	NFRPercentage    float64        `json:"nfr_percentage"`
}
