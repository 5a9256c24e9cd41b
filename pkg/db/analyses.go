package db

import (
	"fmt"
	"time"

	"github.com/dtnitsch/reqscope/models"
)

// Analysis is one stored requirement analysis.
type Analysis struct {
	AnalysisID int64
	ProjectID  string
	Record     models.AnalysisRecord
	CreatedAt  time.Time
}

// InsertAnalysis stores one analysis record for a project.
func (db *DB) InsertAnalysis(projectID string, record models.AnalysisRecord) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO analyses (
			project_id, requirement,
			in_scope, scope_confidence, similarity, keyword_overlap, reason,
			type, type_confidence, sub_category, message,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		projectID, record.Requirement,
		record.Scope.InScope, record.Scope.Confidence, record.Scope.Similarity, record.Scope.Overlap, record.Scope.Reason,
		string(record.Classification.Type), record.Classification.Confidence, record.Classification.SubCategory, record.Classification.Message,
		record.OverallStatus,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	analysisID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis ID: %w", err)
	}
	return analysisID, nil
}

// InsertAnalyses stores a batch of records in one transaction so a batch is
// either fully recorded or not at all.
func (db *DB) InsertAnalyses(projectID string, records []models.AnalysisRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO analyses (
			project_id, requirement,
			in_scope, scope_confidence, similarity, keyword_overlap, reason,
			type, type_confidence, sub_category, message,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err := stmt.Exec(
			projectID, record.Requirement,
			record.Scope.InScope, record.Scope.Confidence, record.Scope.Similarity, record.Scope.Overlap, record.Scope.Reason,
			string(record.Classification.Type), record.Classification.Confidence, record.Classification.SubCategory, record.Classification.Message,
			record.OverallStatus,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert analysis: %w", err)
		}
	}

	return tx.Commit()
}

// ListAnalyses returns a project's analyses, oldest first, optionally
// restricted by a filter expression (see ParseFilter).
func (db *DB) ListAnalyses(projectID, filter string) ([]*Analysis, error) {
	parsed, err := ParseFilter(filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT analysis_id, project_id, requirement,
		       in_scope, scope_confidence, similarity, keyword_overlap, reason,
		       type, type_confidence, sub_category, message,
		       status, created_at
		FROM analyses
		WHERE project_id = ? AND (%s)
		ORDER BY analysis_id
	`, parsed.WhereClause)

	args := append([]interface{}{projectID}, parsed.Args...)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []*Analysis
	for rows.Next() {
		var a Analysis
		var typ string
		err := rows.Scan(
			&a.AnalysisID, &a.ProjectID, &a.Record.Requirement,
			&a.Record.Scope.InScope, &a.Record.Scope.Confidence, &a.Record.Scope.Similarity, &a.Record.Scope.Overlap, &a.Record.Scope.Reason,
			&typ, &a.Record.Classification.Confidence, &a.Record.Classification.SubCategory, &a.Record.Classification.Message,
			&a.Record.OverallStatus, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		a.Record.Classification.Type = models.RequirementType(typ)
		analyses = append(analyses, &a)
	}
	return analyses, rows.Err()
}

// Records extracts the stored analysis records, preserving order. Summary
// statistics are computed by the caller (analyzer.Summarize) so the storage
// layer does not duplicate the aggregation rules.
func Records(analyses []*Analysis) []models.AnalysisRecord {
	records := make([]models.AnalysisRecord, len(analyses))
	for i, a := range analyses {
		records[i] = a.Record
	}
	return records
}
