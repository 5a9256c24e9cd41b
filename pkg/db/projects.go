package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtnitsch/reqscope/models"
)

// Project is a stored project scope: the description plus the keyword
// profile that was derived from it.
type Project struct {
	ProjectID        string
	Description      string
	Domain           string
	BaseKeywords     []string
	ExpandedKeywords []string
	Threshold        float64
	CreatedAt        time.Time
}

// CreateProject stores a project profile and returns its generated ID.
func (db *DB) CreateProject(profile *models.ProjectProfile, threshold float64) (string, error) {
	projectID := uuid.NewString()

	baseJSON, err := json.Marshal(profile.BaseKeywords)
	if err != nil {
		return "", fmt.Errorf("failed to encode base keywords: %w", err)
	}
	expandedJSON, err := json.Marshal(profile.Keywords)
	if err != nil {
		return "", fmt.Errorf("failed to encode expanded keywords: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO projects (project_id, description, domain, base_keywords, expanded_keywords, threshold)
		VALUES (?, ?, ?, ?, ?, ?)
	`, projectID, profile.Description, profile.Domain, string(baseJSON), string(expandedJSON), threshold)
	if err != nil {
		return "", fmt.Errorf("failed to create project: %w", err)
	}

	return projectID, nil
}

// GetProject loads a project by ID.
func (db *DB) GetProject(projectID string) (*Project, error) {
	row := db.QueryRow(`
		SELECT project_id, description, domain, base_keywords, expanded_keywords, threshold, created_at
		FROM projects
		WHERE project_id = ?
	`, projectID)
	return scanProject(row)
}

// LatestProject returns the most recently created project, or nil when the
// database holds none.
func (db *DB) LatestProject() (*Project, error) {
	row := db.QueryRow(`
		SELECT project_id, description, domain, base_keywords, expanded_keywords, threshold, created_at
		FROM projects
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return project, err
}

// ListProjects returns all projects, newest first.
func (db *DB) ListProjects() ([]*Project, error) {
	rows, err := db.Query(`
		SELECT project_id, description, domain, base_keywords, expanded_keywords, threshold, created_at
		FROM projects
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// Profile rebuilds the models.ProjectProfile stored in this record.
func (p *Project) Profile() *models.ProjectProfile {
	return &models.ProjectProfile{
		Description:  p.Description,
		Domain:       p.Domain,
		BaseKeywords: p.BaseKeywords,
		Keywords:     p.ExpandedKeywords,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*Project, error) {
	var p Project
	var baseJSON, expandedJSON string

	err := row.Scan(&p.ProjectID, &p.Description, &p.Domain, &baseJSON, &expandedJSON, &p.Threshold, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	if err := json.Unmarshal([]byte(baseJSON), &p.BaseKeywords); err != nil {
		return nil, fmt.Errorf("failed to decode base keywords: %w", err)
	}
	if err := json.Unmarshal([]byte(expandedJSON), &p.ExpandedKeywords); err != nil {
		return nil, fmt.Errorf("failed to decode expanded keywords: %w", err)
	}
	return &p, nil
}
