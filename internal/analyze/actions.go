package analyze

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/reqscope/internal/common"
	"github.com/dtnitsch/reqscope/models"
	"github.com/dtnitsch/reqscope/pkg/analyzer"
	"github.com/dtnitsch/reqscope/pkg/db"
)

// AnalyzeAction analyzes requirements given inline via --requirements or as
// positional arguments, against the active (or selected) project.
func AnalyzeAction(c *cli.Context) error {
	requirements := splitRequirements(c.String("requirements"))
	requirements = append(requirements, c.Args().Slice()...)
	if len(requirements) == 0 {
		return fmt.Errorf("no requirements provided via --requirements flag or arguments")
	}
	return runAnalysis(c, requirements)
}

// BatchAction analyzes requirements read from a file, one per line. Blank
// lines and #-comments are skipped.
func BatchAction(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		return fmt.Errorf("no input file provided via --file flag")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open requirements file: %w", err)
	}
	defer file.Close()

	var requirements []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		requirements = append(requirements, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read requirements file: %w", err)
	}
	if len(requirements) == 0 {
		return fmt.Errorf("no requirements found in %s", path)
	}

	return runAnalysis(c, requirements)
}

// Report is the JSON document analysis commands print to stdout.
type Report struct {
	ProjectID string                  `json:"project_id"`
	Domain    string                  `json:"domain"`
	Results   []models.AnalysisRecord `json:"results"`
	Summary   models.Summary          `json:"summary"`
}

func runAnalysis(c *cli.Context, requirements []string) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	database, err := common.OpenDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	project, err := SelectProject(c, database)
	if err != nil {
		return err
	}

	// The stored threshold travels with the project; an explicit flag
	// overrides it for this run.
	if !c.IsSet("threshold") && project.Threshold > 0 {
		cfg.Threshold = project.Threshold
	}

	pipeline, err := common.BuildPipeline(c.Context, cfg, logger)
	if err != nil {
		return err
	}

	// Re-deriving the profile from the stored description is deterministic,
	// so the scope manager ends up with the same keywords the project was
	// created with.
	if _, err := pipeline.Scope.SetProjectDescription(c.Context, project.Description); err != nil {
		return fmt.Errorf("failed to restore project scope: %w", err)
	}

	logger.Info("Analyzing requirements",
		"project_id", project.ProjectID,
		"count", len(requirements),
		"workers", cfg.Workers)

	records := pipeline.Analyzer.AnalyzeBatch(c.Context, requirements)

	if err := database.InsertAnalyses(project.ProjectID, records); err != nil {
		return fmt.Errorf("failed to store analyses: %w", err)
	}

	return common.PrintJSON(Report{
		ProjectID: project.ProjectID,
		Domain:    project.Domain,
		Results:   records,
		Summary:   analyzer.Summarize(records),
	})
}

// SelectProject resolves --project to a stored project, defaulting to the
// most recently created one.
func SelectProject(c *cli.Context, database *db.DB) (*db.Project, error) {
	if projectID := c.String("project"); projectID != "" {
		project, err := database.GetProject(projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to load project %s: %w", projectID, err)
		}
		return project, nil
	}

	project, err := database.LatestProject()
	if err != nil {
		return nil, fmt.Errorf("failed to load latest project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("no project found; run 'reqscope project init' first")
	}
	return project, nil
}

func splitRequirements(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	requirements := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			requirements = append(requirements, part)
		}
	}
	return requirements
}
