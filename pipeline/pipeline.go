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


package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/docrank/ai"
	"github.com/poiesic/docrank/core"
	"github.com/poiesic/docrank/layout"
	"github.com/poiesic/docrank/match"
	"github.com/poiesic/docrank/storage"
	"github.com/poiesic/docrank/structure"
)

// Pipeline orchestrates detection, structure assembly, persistence,
// and matching for a whole run.
type Pipeline struct {
	detector  layout.Detector
	documents storage.DocumentRepository
	judge     ai.RelevanceJudge // nil runs traditional scoring only

	structureCfg *structure.Config
	matchCfg     *match.Config
	builder      *structure.Builder
	matcher      *match.Matcher

	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent document
// processing. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithStructureConfig overrides the structure assembly thresholds.
func WithStructureConfig(cfg *structure.Config) Option {
	return func(p *Pipeline) error {
		p.structureCfg = cfg
		return nil
	}
}

// WithMatchConfig overrides the scoring weights and scheduling bounds.
func WithMatchConfig(cfg *match.Config) Option {
	return func(p *Pipeline) error {
		p.matchCfg = cfg
		return nil
	}
}

// NewPipeline creates a pipeline. The provider may be nil, in which
// case matching runs on traditional scores alone and topics must be
// supplied or derivable from section titles.
func NewPipeline(
	detector layout.Detector,
	documents storage.DocumentRepository,
	provider ai.JudgeProvider,
	opts ...Option,
) (*Pipeline, error) {
	if detector == nil {
		return nil, ErrDetectorRequired
	}
	if documents == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		detector:  detector,
		documents: documents,
		pool:      pool,
		logger:    slog.Default(),
	}
	if provider != nil {
		p.judge = provider.Judge()
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Build components after options are applied so they see the
	// final configuration.
	builder, err := structure.NewBuilder(p.structureCfg, p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.builder = builder

	matcherOpts := []match.MatcherOption{match.WithLogger(p.logger)}
	if p.judge != nil {
		matcherOpts = append(matcherOpts, match.WithJudge(p.judge))
	}
	matcher, err := match.NewMatcher(p.matchCfg, matcherOpts...)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.matcher = matcher

	return p, nil
}

// Release releases the worker pool. The pipeline should not be used
// after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// Request describes one run.
type Request struct {
	// Documents are the input document paths. At least one is required.
	Documents []string

	// Persona and Task steer judge-derived topic ranking.
	Persona string
	Task    string

	// Topics, when non-empty, are used as-is (rank = position) instead
	// of being derived by the judge.
	Topics []string
}

// Run processes every input document and returns the assembled output.
// Per-document detection failures degrade to statistics; only
// malformed input or the failure of every document is fatal.
func (p *Pipeline) Run(ctx context.Context, req *Request) (*Output, error) {
	if req == nil || len(req.Documents) == 0 {
		return nil, ErrNoInputDocuments
	}
	start := time.Now()

	var stats Statistics
	docs := p.processDocuments(ctx, req.Documents, &stats)
	if len(docs) == 0 {
		return nil, ErrAllDocumentsFailed
	}

	topics := p.deriveTopics(ctx, req, docs)
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}

	results := make([]*match.Result, len(docs))
	for i, doc := range docs {
		result, err := p.matcher.Match(ctx, doc.Filename, doc.SearchIndex, topics)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}

	out := assembleOutput(req, topics, results, stats, time.Since(start))
	p.logger.Info("run complete",
		"documents", len(docs),
		"topics", len(topics),
		"matches", len(out.ExtractedSections),
		"elapsed", time.Since(start))
	return out, nil
}

// processDocuments detects, assembles, and persists each input
// document on the worker pool. Failed documents are logged and counted
// but never fail the run.
func (p *Pipeline) processDocuments(ctx context.Context, paths []string, stats *Statistics) []*core.StructureDocument {
	built := make([]*core.StructureDocument, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		task := func() {
			defer wg.Done()
			doc, err := p.processDocument(ctx, path)
			if err != nil {
				p.logger.Warn("document processing failed", "document", path, "error", err)
				return
			}
			built[i] = doc
		}
		if err := p.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	docs := make([]*core.StructureDocument, 0, len(built))
	for _, doc := range built {
		if doc == nil {
			stats.DocumentsFailed++
			continue
		}
		stats.DocumentsProcessed++
		stats.SectionsIndexed += len(doc.Structure.Sections)
		docs = append(docs, doc)
	}
	return docs
}

// processDocument runs one document through detection, assembly, and
// persistence.
func (p *Pipeline) processDocument(ctx context.Context, path string) (*core.StructureDocument, error) {
	detections, err := p.detector.Detect(ctx, path)
	if err != nil {
		return nil, err
	}

	result := p.builder.Build(detections)
	doc := &core.StructureDocument{
		Filename:    path,
		Title:       result.Structure.Title,
		Structure:   result.Structure,
		SearchIndex: result.Index,
		Metadata: core.DocumentMetadata{
			GeneratedAt:    time.Now().UTC(),
			Detector:       p.detector.Name(),
			DetectionCount: result.DetectionCount,
			Statistics:     result.Statistics,
			Quality:        result.Quality,
		},
	}

	if _, err := p.documents.PutDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
