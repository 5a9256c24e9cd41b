package ingest

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/reqscope/internal/analyze"
	"github.com/dtnitsch/reqscope/internal/common"
	"github.com/dtnitsch/reqscope/models"
	"github.com/dtnitsch/reqscope/pkg/analyzer"
)

// IngestAction fetches requirement documents, extracts candidate requirement
// sentences and, unless --extract-only is set, runs them through batch
// analysis against the active project.
func IngestAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	urlsStr := c.String("urls")
	if urlsStr == "" {
		return fmt.Errorf("no URLs provided via --urls flag")
	}
	var urls []string
	for _, raw := range strings.Split(urlsStr, ",") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs provided via --urls flag")
	}

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	docs := Run(c.Context, logger, urls, cfg.Workers)

	var requirements []string
	for _, doc := range docs {
		requirements = append(requirements, doc.Requirements...)
	}

	if c.Bool("extract-only") {
		return common.PrintJSON(map[string]interface{}{
			"documents":    docs,
			"requirements": requirements,
		})
	}

	if len(requirements) == 0 {
		logger.Warn("No candidate requirements extracted")
		return common.PrintJSON(map[string]interface{}{
			"documents": docs,
		})
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
	if !c.IsSet("threshold") && project.Threshold > 0 {
		cfg.Threshold = project.Threshold
	}

	pipeline, err := common.BuildPipeline(c.Context, cfg, logger)
	if err != nil {
		return err
	}
	if _, err := pipeline.Scope.SetProjectDescription(c.Context, project.Description); err != nil {
		return fmt.Errorf("failed to restore project scope: %w", err)
	}

	logger.Info("Analyzing ingested requirements",
		"project_id", project.ProjectID,
		"documents", len(docs),
		"requirements", len(requirements))

	records := pipeline.Analyzer.AnalyzeBatch(c.Context, requirements)

	if err := database.InsertAnalyses(project.ProjectID, records); err != nil {
		return fmt.Errorf("failed to store analyses: %w", err)
	}

	return common.PrintJSON(struct {
		ProjectID string                  `json:"project_id"`
		Documents []Result                `json:"documents"`
		Results   []models.AnalysisRecord `json:"results"`
		Summary   models.Summary          `json:"summary"`
	}{
		ProjectID: project.ProjectID,
		Documents: docs,
		Results:   records,
		Summary:   analyzer.Summarize(records),
	})
}
