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


package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/poiesic/docrank/core"
	"github.com/poiesic/docrank/layout"
	"github.com/poiesic/docrank/storage"
	"github.com/poiesic/docrank/structure"
)

// Config holds configuration for a reindex run.
type Config struct {
	// ReportInterval is how often to report progress (number of documents)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ReportInterval: 10,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer re-runs detection and assembly over every stored document.
type Reindexer struct {
	repo     storage.DocumentRepository
	detector layout.Detector
	builder  *structure.Builder
	config   *Config
	progress io.Writer
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(repo storage.DocumentRepository, detector layout.Detector, builder *structure.Builder, config *Config, progress io.Writer) *Reindexer {
	if config == nil {
		config = DefaultConfig()
	}

	return &Reindexer{
		repo:     repo,
		detector: detector,
		builder:  builder,
		config:   config,
		progress: progress,
	}
}

// Run re-detects and re-assembles every stored document, persisting
// the refreshed structures. Documents whose source files cannot be
// read anymore are skipped and counted. Returns the number of
// refreshed and skipped documents.
func (r *Reindexer) Run(ctx context.Context) (refreshed, skipped int, err error) {
	docs, err := r.repo.ListDocuments(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		fmt.Fprintf(r.progress, "No documents found in database (0 documents)\n")
		return 0, 0, nil
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d documents\n", len(docs))

	tracker := NewProgressTracker(r.progress, len(docs), r.config.ReportInterval)
	tracker.Start()

	for i, doc := range docs {
		select {
		case <-ctx.Done():
			return refreshed, skipped, ctx.Err()
		default:
		}

		if err := r.reindexDocument(ctx, doc.Filename); err != nil {
			fmt.Fprintf(r.progress, "\nSkipping %s: %v\n", doc.Filename, err)
			skipped++
		} else {
			refreshed++
		}
		tracker.Update(i + 1)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Refreshed %d, skipped %d in %v\n",
		refreshed, skipped, elapsed.Round(time.Second))

	return refreshed, skipped, nil
}

// reindexDocument refreshes one document's stored structure, retrying
// transient failures with exponential backoff.
func (r *Reindexer) reindexDocument(ctx context.Context, filename string) error {
	return RetryWithBackoff(ctx, func() error {
		detections, err := r.detector.Detect(ctx, filename)
		if err != nil {
			return err
		}

		result := r.builder.Build(detections)
		_, err = r.repo.PutDocument(ctx, &core.StructureDocument{
			Filename:    filename,
			Title:       result.Structure.Title,
			Structure:   result.Structure,
			SearchIndex: result.Index,
			Metadata: core.DocumentMetadata{
				GeneratedAt:    time.Now().UTC(),
				Detector:       r.detector.Name(),
				DetectionCount: result.DetectionCount,
				Statistics:     result.Statistics,
				Quality:        result.Quality,
			},
		})
		return err
	}, r.config.MaxRetries, r.config.RetryDelay)
}
