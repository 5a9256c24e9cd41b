package project

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/reqscope/internal/common"
)

// InitAction derives a keyword profile from a project description and stores
// it as the active project.
func InitAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	description := c.String("description")
	if description == "" {
		description = cfg.Description
	}
	if description == "" {
		return fmt.Errorf("no project description provided via --description flag or config file")
	}

	pipeline, err := common.BuildPipeline(c.Context, cfg, logger)
	if err != nil {
		return err
	}

	profile, err := pipeline.Scope.SetProjectDescription(c.Context, description)
	if err != nil {
		return fmt.Errorf("failed to initialize project scope: %w", err)
	}

	database, err := common.OpenDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	projectID, err := database.CreateProject(profile, pipeline.Scope.Threshold())
	if err != nil {
		return fmt.Errorf("failed to store project: %w", err)
	}

	logger.Info("Project initialized", "project_id", projectID, "domain", profile.Domain)

	return common.PrintJSON(map[string]interface{}{
		"project_id": projectID,
		"profile":    profile,
	})
}

// ListAction prints the stored projects, newest first.
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

	projects, err := database.ListProjects()
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	type row struct {
		ProjectID   string `json:"project_id"`
		Domain      string `json:"domain"`
		Description string `json:"description"`
		Keywords    int    `json:"keyword_count"`
		CreatedAt   string `json:"created_at"`
	}
	rows := make([]row, len(projects))
	for i, p := range projects {
		rows[i] = row{
			ProjectID:   p.ProjectID,
			Domain:      p.Domain,
			Description: p.Description,
			Keywords:    len(p.ExpandedKeywords),
			CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return common.PrintJSON(rows)
}
