package classify

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/dtnitsch/reqscope/models"
)

type fakeFeaturizer struct {
	err error
}

func (f fakeFeaturizer) Featurize(text string) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return AppendLexicalFeatures(nil, text), nil
}

type fakeModel struct {
	label string
	err   error
	proba map[string]float64
}

func (m fakeModel) Predict([]float64) (string, error) {
	return m.label, m.err
}

type fakeProbaModel struct {
	fakeModel
	probaErr error
}

func (m fakeProbaModel) Proba([]float64) (map[string]float64, error) {
	if m.probaErr != nil {
		return nil, m.probaErr
	}
	return m.proba, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestClassifyWithoutModelReturnsUnknown(t *testing.T) {
	c := NewClassifier(nil, nil, nil, testLogger())
	got := c.Classify("The system shall export reports")

	if got.Type != models.TypeUnknown {
		t.Errorf("Type = %q, want UNKNOWN", got.Type)
	}
	if got.Confidence != 0.0 {
		t.Errorf("Confidence = %f, want 0.0", got.Confidence)
	}
	if !strings.Contains(got.Message, "not loaded") {
		t.Errorf("Message = %q, want mention of missing model", got.Message)
	}
}

func TestClassifyFeaturizerFailureReturnsError(t *testing.T) {
	c := NewClassifier(fakeFeaturizer{err: errors.New("vectorizer offline")},
		fakeModel{label: "FR"}, nil, testLogger())
	got := c.Classify("The system shall export reports")

	if got.Type != models.TypeError {
		t.Errorf("Type = %q, want ERROR", got.Type)
	}
	if !strings.Contains(got.Message, "vectorizer offline") {
		t.Errorf("Message = %q, want underlying cause", got.Message)
	}
}

func TestClassifyPredictFailureReturnsError(t *testing.T) {
	c := NewClassifier(fakeFeaturizer{},
		fakeModel{err: errors.New("model corrupt")}, nil, testLogger())
	got := c.Classify("The system shall export reports")

	if got.Type != models.TypeError {
		t.Errorf("Type = %q, want ERROR", got.Type)
	}
}

func TestClassifyFunctionalWithProbabilities(t *testing.T) {
	model := fakeProbaModel{
		fakeModel: fakeModel{label: "FR", proba: map[string]float64{"FR": 0.91, "NFR": 0.09}},
	}
	c := NewClassifier(fakeFeaturizer{}, model, nil, testLogger())
	got := c.Classify("The system shall let users upload documents")

	if got.Type != models.TypeFunctional {
		t.Errorf("Type = %q, want FR", got.Type)
	}
	if got.Confidence != 0.91 {
		t.Errorf("Confidence = %f, want 0.91 (max probability)", got.Confidence)
	}
	if got.SubCategory != "" {
		t.Errorf("SubCategory = %q, want empty for FR", got.SubCategory)
	}
}

func TestClassifyWithoutProbabilitySupportDegrades(t *testing.T) {
	c := NewClassifier(fakeFeaturizer{}, fakeModel{label: "FR"}, nil, testLogger())
	got := c.Classify("The system shall let users upload documents")

	if got.Type != models.TypeFunctional {
		t.Errorf("Type = %q, want FR", got.Type)
	}
	if got.Confidence != 0.0 {
		t.Errorf("Confidence = %f, want 0.0 when model lacks probabilities", got.Confidence)
	}
}

func TestClassifyNFRUsesSubModel(t *testing.T) {
	c := NewClassifier(fakeFeaturizer{}, fakeModel{label: "NFR"},
		fakeModel{label: "Security"}, testLogger())
	got := c.Classify("All data must be encrypted at rest")

	if got.Type != models.TypeNonFunctional {
		t.Errorf("Type = %q, want NFR", got.Type)
	}
	if got.SubCategory != "Security" {
		t.Errorf("SubCategory = %q, want \"Security\" from sub-model", got.SubCategory)
	}
}

func TestClassifyNFRSubModelFailureFallsBackToKeywords(t *testing.T) {
	c := NewClassifier(fakeFeaturizer{}, fakeModel{label: "NFR"},
		fakeModel{err: errors.New("sub-model corrupt")}, testLogger())
	got := c.Classify("The page must load with low latency")

	if got.SubCategory != "Performance" {
		t.Errorf("SubCategory = %q, want keyword fallback \"Performance\"", got.SubCategory)
	}
}

func TestFallbackSubCategory(t *testing.T) {
	tests := []struct {
		req  string
		want string
	}{
		{"response time must stay under 200ms", "Performance"},
		{"all traffic uses encryption", "Security"},
		{"the dashboard must be intuitive", "Usability"},
		{"nightly backup of all records", "Reliability"},
		{"must handle 10000 concurrent users", "Scalability"},
		{"code must stay modular", "Maintainability"},
		{"the logo is blue", "General"},
	}
	for _, tt := range tests {
		if got := FallbackSubCategory(tt.req); got != tt.want {
			t.Errorf("FallbackSubCategory(%q) = %q, want %q", tt.req, got, tt.want)
		}
	}
}

func TestFallbackSubCategoryOrderDeterministic(t *testing.T) {
	// "performance" and "security" both present: Performance is declared
	// first and must win every time.
	const req = "performance and security are critical"
	for i := 0; i < 10; i++ {
		if got := FallbackSubCategory(req); got != "Performance" {
			t.Fatalf("FallbackSubCategory() = %q, want \"Performance\"", got)
		}
	}
}

func TestKeywordFeatures(t *testing.T) {
	fr, nfr := KeywordFeatures("The system shall allow users to upload files")
	if fr == 0 {
		t.Error("KeywordFeatures() frHits = 0, want > 0 (\"shall\", \"allow\", \"upload\")")
	}

	_, nfrOnly := KeywordFeatures("encryption and scalability are required")
	if nfrOnly < 2 {
		t.Errorf("KeywordFeatures() nfrHits = %d, want >= 2", nfrOnly)
	}
	_ = nfr
}

func TestAppendLexicalFeaturesOrder(t *testing.T) {
	base := []float64{0.1, 0.2}
	got := AppendLexicalFeatures(base, "The system shall store encrypted data")
	if len(got) != len(base)+5 {
		t.Fatalf("AppendLexicalFeatures() length = %d, want %d", len(got), len(base)+5)
	}
	if got[0] != 0.1 || got[1] != 0.2 {
		t.Error("AppendLexicalFeatures() must preserve the base prefix")
	}
}
