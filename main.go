package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/reqscope/internal/analyze"
	"github.com/dtnitsch/reqscope/internal/history"
	"github.com/dtnitsch/reqscope/internal/ingest"
	"github.com/dtnitsch/reqscope/internal/project"
)

func main() {
	app := &cli.App{
		Name:  "reqscope",
		Usage: "Scope-check and classify software requirements against a project profile",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to YAML config file",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "path to the SQLite database (default: next to the binary)",
			},
			&cli.StringFlag{
				Name:  "project",
				Usage: "project ID to operate on (default: most recent project)",
			},
			&cli.Float64Flag{
				Name:  "threshold",
				Usage: "scope score cutoff (0-1)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "worker pool size for batch analysis and ingestion",
			},
			&cli.StringFlag{
				Name:  "embedding-provider",
				Usage: "embedding provider: gemini or lexical",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "project",
				Usage: "Manage project scope profiles",
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "Derive and store a keyword profile from a project description",
						Action: project.InitAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "description",
								Usage: "project description text",
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List stored projects",
						Action: project.ListAction,
					},
				},
			},
			{
				Name:      "analyze",
				Usage:     "Analyze requirements given inline",
				ArgsUsage: "[requirement ...]",
				Action:    analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "requirements",
						Usage: "semicolon-separated requirement texts",
					},
				},
			},
			{
				Name:   "batch",
				Usage:  "Analyze requirements from a file, one per line",
				Action: analyze.BatchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "path to the requirements file",
					},
				},
			},
			{
				Name:   "ingest",
				Usage:  "Extract requirements from HTML documents and analyze them",
				Action: ingest.IngestAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "comma-separated document URLs",
					},
					&cli.BoolFlag{
						Name:  "extract-only",
						Usage: "print extracted requirements without analyzing",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "Show stored analyses for a project",
				Action: history.ListAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "filter",
						Usage: "filter expression, e.g. 'in_scope AND type=NFR'",
					},
				},
				Subcommands: []*cli.Command{
					{
						Name:   "summary",
						Usage:  "Recompute summary statistics over stored analyses",
						Action: history.SummaryAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
