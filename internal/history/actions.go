package history

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/reqscope/internal/analyze"
	"github.com/dtnitsch/reqscope/internal/common"
	"github.com/dtnitsch/reqscope/models"
	"github.com/dtnitsch/reqscope/pkg/analyzer"
	"github.com/dtnitsch/reqscope/pkg/db"
)

// ListAction prints a project's stored analyses, optionally restricted by a
// filter expression (e.g. "in_scope AND type=NFR").
func ListAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	database, err := common.OpenDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	project, err := analyze.SelectProject(c, database)
	if err != nil {
		return err
	}

	analyses, err := database.ListAnalyses(project.ProjectID, c.String("filter"))
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if len(analyses) == 0 {
		fmt.Println("No analyses found")
		return nil
	}

	type row struct {
		AnalysisID int64                 `json:"analysis_id"`
		CreatedAt  string                `json:"created_at"`
		Record     models.AnalysisRecord `json:"record"`
	}
	rows := make([]row, len(analyses))
	for i, a := range analyses {
		rows[i] = row{
			AnalysisID: a.AnalysisID,
			CreatedAt:  a.CreatedAt.Format("2006-01-02 15:04:05"),
			Record:     a.Record,
		}
	}
	return common.PrintJSON(rows)
}

// SummaryAction recomputes summary statistics over a project's stored
// analyses.
func SummaryAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	database, err := common.OpenDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	project, err := analyze.SelectProject(c, database)
	if err != nil {
		return err
	}

	analyses, err := database.ListAnalyses(project.ProjectID, "")
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	return common.PrintJSON(map[string]interface{}{
		"project_id": project.ProjectID,
		"domain":     project.Domain,
		"summary":    analyzer.Summarize(db.Records(analyses)),
	})
}
