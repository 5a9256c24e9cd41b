package common

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/reqscope/models"
	"github.com/dtnitsch/reqscope/pkg/analyzer"
	"github.com/dtnitsch/reqscope/pkg/classify"
	"github.com/dtnitsch/reqscope/pkg/db"
	"github.com/dtnitsch/reqscope/pkg/embed"
	"github.com/dtnitsch/reqscope/pkg/extract"
	"github.com/dtnitsch/reqscope/pkg/scope"
	"github.com/dtnitsch/reqscope/pkg/scoring"
)

// NewLogger builds the JSON logger actions write to stderr, leaving stdout
// for result output.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads the config file named by --config (when present) and
// applies flag overrides; flags win over file values.
func LoadConfig(c *cli.Context) (models.AnalyzeConfig, error) {
	cfg := models.DefaultConfig()

	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("threshold") {
		cfg.Threshold = c.Float64("threshold")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("embedding-provider") {
		cfg.Embedding.Provider = c.String("embedding-provider")
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = key
	}
	return cfg, nil
}

// OpenDatabase opens the configured database, falling back to the default
// location next to the binary.
func OpenDatabase(cfg models.AnalyzeConfig) (*db.DB, error) {
	if cfg.DBPath != "" {
		return db.OpenAt(cfg.DBPath)
	}
	return db.Open()
}

// Pipeline bundles the collaborators an analysis action needs.
type Pipeline struct {
	Scope    *scope.Manager
	Analyzer *analyzer.Analyzer
}

// BuildPipeline wires extractor, embedder, scorer, scope manager, classifier
// and analyzer from the configuration. Provider selection is strict: an
// unknown or missing embedding provider is a construction error.
func BuildPipeline(ctx context.Context, cfg models.AnalyzeConfig, logger *slog.Logger) (*Pipeline, error) {
	embedder, err := embed.New(ctx, cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("failed to build embedder: %w", err)
	}

	extractor := extract.New()
	scorer := scoring.NewScorer(embedder)
	scopeMgr := scope.NewManager(extractor, scorer, cfg.Threshold, logger)

	var classifier *classify.Classifier
	switch cfg.Classifier {
	case "keyword", "":
		classifier = classify.NewClassifier(classify.LexicalFeaturizer{}, classify.KeywordModel{}, nil, logger)
	case "none":
		// Unconfigured classifier reports UNKNOWN per requirement.
		classifier = classify.NewClassifier(nil, nil, nil, logger)
	default:
		return nil, fmt.Errorf("unknown classifier %q (want keyword or none)", cfg.Classifier)
	}

	return &Pipeline{
		Scope:    scopeMgr,
		Analyzer: analyzer.New(scopeMgr, classifier, cfg.Workers, logger),
	}, nil
}

// PrintJSON writes indented JSON to stdout.
func PrintJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
