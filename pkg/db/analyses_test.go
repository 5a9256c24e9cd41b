package db

import (
	"testing"

	"github.com/dtnitsch/reqscope/models"
)

func seedProject(t *testing.T, db *DB) string {
	t.Helper()
	projectID, err := db.CreateProject(shoppingProfile(), 0.40)
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	return projectID
}

func inScopeFR(requirement string) models.AnalysisRecord {
	return models.AnalysisRecord{
		Requirement: requirement,
		Scope: models.ScopeDecision{
			InScope:    true,
			Confidence: 0.72,
			Similarity: 0.6,
			Overlap:    1.0,
			Reason:     "Relevant to project scope",
		},
		Classification: models.ClassificationResult{
			Type:       models.TypeFunctional,
			Confidence: 0.85,
			Message:    "Classified as FR",
		},
		OverallStatus: models.StatusAnalyzed,
	}
}

func inScopeNFR(requirement, subCategory string) models.AnalysisRecord {
	rec := inScopeFR(requirement)
	rec.Classification.Type = models.TypeNonFunctional
	rec.Classification.SubCategory = subCategory
	rec.Classification.Message = "Classified as NFR"
	return rec
}

func outOfScope(requirement string) models.AnalysisRecord {
	return models.AnalysisRecord{
		Requirement: requirement,
		Scope: models.ScopeDecision{
			InScope: false,
			Reason:  "Low semantic relevance",
		},
		Classification: models.ClassificationResult{
			Type:    models.TypeNotApplicable,
			Message: "Out of scope",
		},
		OverallStatus: models.StatusOutOfScope,
	}
}

func TestInsertAnalysisRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	projectID := seedProject(t, db)

	record := inScopeNFR("All data must be encrypted", "Security")
	analysisID, err := db.InsertAnalysis(projectID, record)
	if err != nil {
		t.Fatalf("InsertAnalysis() error = %v", err)
	}
	if analysisID == 0 {
		t.Fatal("InsertAnalysis() returned 0 ID")
	}

	analyses, err := db.ListAnalyses(projectID, "")
	if err != nil {
		t.Fatalf("ListAnalyses() error = %v", err)
	}
	if len(analyses) != 1 {
		t.Fatalf("got %d analyses, want 1", len(analyses))
	}

	got := analyses[0].Record
	if got.Requirement != record.Requirement {
		t.Errorf("Requirement = %q, want %q", got.Requirement, record.Requirement)
	}
	if got.Classification.Type != models.TypeNonFunctional {
		t.Errorf("Type = %q, want %q", got.Classification.Type, models.TypeNonFunctional)
	}
	if got.Classification.SubCategory != "Security" {
		t.Errorf("SubCategory = %q, want Security", got.Classification.SubCategory)
	}
	if got.Scope.Confidence != 0.72 {
		t.Errorf("Scope.Confidence = %v, want 0.72", got.Scope.Confidence)
	}
	if got.OverallStatus != models.StatusAnalyzed {
		t.Errorf("OverallStatus = %q, want %q", got.OverallStatus, models.StatusAnalyzed)
	}
}

func TestInsertAnalyses_Batch(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	projectID := seedProject(t, db)

	records := []models.AnalysisRecord{
		inScopeFR("Users can add products to the cart"),
		inScopeNFR("Pages must load within two seconds", "Performance"),
		outOfScope("The cafeteria serves lunch at noon"),
	}
	if err := db.InsertAnalyses(projectID, records); err != nil {
		t.Fatalf("InsertAnalyses() error = %v", err)
	}

	analyses, err := db.ListAnalyses(projectID, "")
	if err != nil {
		t.Fatalf("ListAnalyses() error = %v", err)
	}
	if len(analyses) != 3 {
		t.Fatalf("got %d analyses, want 3", len(analyses))
	}

	// Insertion order preserved
	for i, a := range analyses {
		if a.Record.Requirement != records[i].Requirement {
			t.Errorf("analyses[%d].Requirement = %q, want %q", i, a.Record.Requirement, records[i].Requirement)
		}
	}
}

func TestInsertAnalysis_UnknownProject(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.InsertAnalysis("no-such-project", inScopeFR("x")); err == nil {
		t.Error("InsertAnalysis() with unknown project should fail the foreign key")
	}
}

func TestListAnalyses_Filtered(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	projectID := seedProject(t, db)

	records := []models.AnalysisRecord{
		inScopeFR("Users can add products to the cart"),
		inScopeNFR("Pages must load within two seconds", "Performance"),
		inScopeNFR("All data must be encrypted", "Security"),
		outOfScope("The cafeteria serves lunch at noon"),
	}
	if err := db.InsertAnalyses(projectID, records); err != nil {
		t.Fatalf("InsertAnalyses() error = %v", err)
	}

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{"all", "", 4},
		{"in scope only", "in_scope", 3},
		{"nfr only", "type=NFR", 2},
		{"security sub-category", "sub_category=Security", 1},
		{"in-scope and fr", "in_scope AND type=FR", 1},
		{"fr or nfr", "type=FR OR type=NFR", 3},
		{"confidence cutoff", "scope_confidence>=0.5", 3},
		{"status", "status=OUT_OF_SCOPE", 1},
		{"requirement text", "requirement:cart", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyses, err := db.ListAnalyses(projectID, tt.filter)
			if err != nil {
				t.Fatalf("ListAnalyses(%q) error = %v", tt.filter, err)
			}
			if len(analyses) != tt.want {
				t.Errorf("ListAnalyses(%q) returned %d rows, want %d", tt.filter, len(analyses), tt.want)
			}
		})
	}
}

func TestListAnalyses_ScopedToProject(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	firstID := seedProject(t, db)
	secondID := seedProject(t, db)

	if _, err := db.InsertAnalysis(firstID, inScopeFR("Users can add products to the cart")); err != nil {
		t.Fatalf("InsertAnalysis() error = %v", err)
	}

	analyses, err := db.ListAnalyses(secondID, "")
	if err != nil {
		t.Fatalf("ListAnalyses() error = %v", err)
	}
	if len(analyses) != 0 {
		t.Errorf("got %d analyses for the empty project, want 0", len(analyses))
	}
}

func TestRecords(t *testing.T) {
	analyses := []*Analysis{
		{Record: inScopeFR("a")},
		{Record: outOfScope("b")},
	}
	records := Records(analyses)
	if len(records) != 2 || records[0].Requirement != "a" || records[1].Requirement != "b" {
		t.Errorf("Records() = %+v", records)
	}
}
