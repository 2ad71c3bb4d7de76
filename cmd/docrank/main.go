// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/docrank"
	"github.com/poiesic/docrank/ai"
	"github.com/poiesic/docrank/core"
	"github.com/poiesic/docrank/layout/pdftext"
	"github.com/poiesic/docrank/match"
	"github.com/poiesic/docrank/pipeline"
	"github.com/poiesic/docrank/reindex"
	"github.com/poiesic/docrank/structure"
)

func main() {
	app := &cli.App{
		Name:  "docrank",
		Usage: "Rank document sections against curated topics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Process documents and emit the ranked match list",
				ArgsUsage: "DOCUMENT...",
				Action:    analyzeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "persona",
						Usage: "Who the ranked output is for",
					},
					&cli.StringFlag{
						Name:  "job",
						Usage: "The job to be done with the documents",
					},
					&cli.StringSliceFlag{
						Name:    "topic",
						Aliases: []string{"t"},
						Usage:   "Topic phrase (repeatable, ranked by position); omit to derive topics",
					},
					&cli.StringFlag{
						Name:  "judge-host",
						Usage: "Relevance judge service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "judge-model",
						Usage: "Relevance judge model name",
					},
					&cli.BoolFlag{
						Name:  "no-ai",
						Usage: "Disable the relevance judge; rank on traditional scores only",
					},
					&cli.Float64Flag{
						Name:  "min-match-score",
						Usage: "Minimum blended score for a match to be emitted",
						Value: 0.1,
					},
					&cli.Float64Flag{
						Name:  "fuzzy-weight",
						Usage: "Weight of string similarity in the traditional score",
						Value: 0.3,
					},
					&cli.Float64Flag{
						Name:  "cosine-weight",
						Usage: "Weight of term-vector similarity in the traditional score",
						Value: 0.4,
					},
					&cli.Float64Flag{
						Name:  "ai-weight",
						Usage: "Share of the blended score taken by the judge signal",
						Value: 0.3,
					},
					&cli.IntFlag{
						Name:  "max-concurrent-ai",
						Usage: "Topic batch width for concurrent judge calls",
						Value: 3,
					},
					&cli.Float64Flag{
						Name:  "title-threshold",
						Usage: "Minimum confidence for a document title detection",
						Value: 0.8,
					},
					&cli.Float64Flag{
						Name:  "section-threshold",
						Usage: "Minimum confidence for a section header detection",
						Value: 0.7,
					},
					&cli.IntFlag{
						Name:  "min-text-length",
						Usage: "Minimum cleaned-text length for section content",
						Value: 10,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the output document to this file instead of stdout",
					},
				},
			},
			{
				Name:      "structure",
				Usage:     "Assemble and persist document structures without matching",
				ArgsUsage: "DOCUMENT...",
				Action:    structureCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "title-threshold",
						Usage: "Minimum confidence for a document title detection",
						Value: 0.8,
					},
					&cli.Float64Flag{
						Name:  "section-threshold",
						Usage: "Minimum confidence for a section header detection",
						Value: 0.7,
					},
					&cli.IntFlag{
						Name:  "min-text-length",
						Usage: "Minimum cleaned-text length for section content",
						Value: 10,
					},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Re-run detection and assembly over every persisted document",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts per document",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff between retries",
						Value: 1 * time.Second,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 10,
					},
					&cli.Float64Flag{
						Name:  "title-threshold",
						Usage: "Minimum confidence for a document title detection",
						Value: 0.8,
					},
					&cli.Float64Flag{
						Name:  "section-threshold",
						Usage: "Minimum confidence for a section header detection",
						Value: 0.7,
					},
					&cli.IntFlag{
						Name:  "min-text-length",
						Usage: "Minimum cleaned-text length for section content",
						Value: 10,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List persisted document structures",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func analyzeCommand(c *cli.Context) error {
	ctx := context.Background()

	documents := c.Args().Slice()
	if len(documents) == 0 {
		return fmt.Errorf("at least one input document is required")
	}

	analyzerOpts := []docrank.AnalyzerOption{}
	if c.Bool("no-ai") {
		analyzerOpts = append(analyzerOpts, docrank.WithoutJudge())
	} else {
		if c.String("judge-model") == "" {
			return fmt.Errorf("judge-model is required unless --no-ai is set")
		}
		analyzerOpts = append(analyzerOpts, docrank.WithAIConfig(ai.NewConfig(
			ai.WithHost(c.String("judge-host")),
			ai.WithModel(c.String("judge-model")),
		)))
	}

	analyzer, err := docrank.NewAnalyzer(c.String("db"), analyzerOpts...)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer analyzer.Close()

	p, err := analyzer.NewPipeline(pdftext.NewDetector(),
		pipeline.WithStructureConfig(structureConfig(c)),
		pipeline.WithMatchConfig(match.NewConfig(
			match.WithMinMatchScore(c.Float64("min-match-score")),
			match.WithFuzzyWeight(c.Float64("fuzzy-weight")),
			match.WithCosineWeight(c.Float64("cosine-weight")),
			match.WithAIWeight(c.Float64("ai-weight")),
			match.WithMaxConcurrentAIRequests(c.Int("max-concurrent-ai")),
		)),
	)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Release()

	out, err := p.Run(ctx, &pipeline.Request{
		Documents: documents,
		Persona:   c.String("persona"),
		Task:      c.String("job"),
		Topics:    c.StringSlice("topic"),
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return writeJSON(c.String("output"), out)
}

func structureCommand(c *cli.Context) error {
	ctx := context.Background()

	documents := c.Args().Slice()
	if len(documents) == 0 {
		return fmt.Errorf("at least one input document is required")
	}

	analyzer, err := docrank.NewAnalyzer(c.String("db"), docrank.WithoutJudge())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer analyzer.Close()

	detector := pdftext.NewDetector()
	builder, err := structure.NewBuilder(structureConfig(c), nil)
	if err != nil {
		return err
	}

	for _, path := range documents {
		detections, err := detector.Detect(ctx, path)
		if err != nil {
			return fmt.Errorf("detection failed for %s: %w", path, err)
		}

		result := builder.Build(detections)
		doc, err := analyzer.DocumentRepository().PutDocument(ctx, structureDocument(path, detector.Name(), result))
		if err != nil {
			return fmt.Errorf("failed to persist %s: %w", path, err)
		}

		fmt.Fprintf(os.Stderr, "%s: %d sections, %d index elements, quality %s\n",
			doc.Filename, len(doc.Structure.Sections), len(doc.SearchIndex), doc.Metadata.Quality.Rating)
	}
	return nil
}

func reindexCommand(c *cli.Context) error {
	analyzer, err := docrank.NewAnalyzer(c.String("db"), docrank.WithoutJudge())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer analyzer.Close()

	builder, err := structure.NewBuilder(structureConfig(c), nil)
	if err != nil {
		return err
	}

	r := reindex.NewReindexer(analyzer.DocumentRepository(), pdftext.NewDetector(), builder, &reindex.Config{
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}, os.Stderr)

	_, _, err = r.Run(context.Background())
	return err
}

func listCommand(c *cli.Context) error {
	analyzer, err := docrank.NewAnalyzer(c.String("db"), docrank.WithoutJudge())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer analyzer.Close()

	docs, err := analyzer.DocumentRepository().ListDocuments(context.Background())
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Printf("%s\t%q\t%d sections\t%s\n",
			doc.Filename, doc.Title, len(doc.Structure.Sections),
			doc.Metadata.GeneratedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func structureDocument(path, detector string, result *structure.Result) *core.StructureDocument {
	return &core.StructureDocument{
		Filename:    path,
		Title:       result.Structure.Title,
		Structure:   result.Structure,
		SearchIndex: result.Index,
		Metadata: core.DocumentMetadata{
			GeneratedAt:    time.Now().UTC(),
			Detector:       detector,
			DetectionCount: result.DetectionCount,
			Statistics:     result.Statistics,
			Quality:        result.Quality,
		},
	}
}

func structureConfig(c *cli.Context) *structure.Config {
	return structure.NewConfig(
		structure.WithTitleThreshold(c.Float64("title-threshold")),
		structure.WithSectionThreshold(c.Float64("section-threshold")),
		structure.WithMinTextLength(c.Int("min-text-length")),
	)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
