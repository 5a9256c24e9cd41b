package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EmbeddingConfig selects and configures the embedding provider. Provider is
// mandatory when semantic scoring is wanted; there is no implicit fallback
// between providers.
type EmbeddingConfig struct {
	Provider string `yaml:"provider"` // "gemini" or "lexical"
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	CacheDir string `yaml:"cache_dir"`
}

// AnalyzeConfig holds runtime configuration for analysis runs. Values come
// from an optional YAML file merged with CLI flags; flags win.
type AnalyzeConfig struct {
	Description string          `yaml:"project_description"`
	Threshold   float64         `yaml:"scope_threshold"`
	Workers     int             `yaml:"workers"`
	DBPath      string          `yaml:"db_path"`
	Classifier  string          `yaml:"classifier"` // "keyword" or "none"
	Embedding   EmbeddingConfig `yaml:"embedding"`
}

// DefaultConfig returns the baseline configuration used when no config file
// is present.
func DefaultConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Threshold:  0.40,
		Workers:    4,
		Classifier: "keyword",
		Embedding: EmbeddingConfig{
			Provider: "lexical",
			Model:    "text-embedding-004",
		},
	}
}

// LoadConfig reads an AnalyzeConfig from a YAML file, applying defaults for
// unset fields.
func LoadConfig(path string) (AnalyzeConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Threshold <= 0 {
		cfg.Threshold = 0.40
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Classifier == "" {
		cfg.Classifier = "keyword"
	}
	return cfg, nil
}
