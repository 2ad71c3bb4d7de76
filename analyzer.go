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


package docrank

import (
	"log/slog"

	"github.com/poiesic/docrank/ai"
	"github.com/poiesic/docrank/ai/openai"
	"github.com/poiesic/docrank/layout"
	"github.com/poiesic/docrank/pipeline"
	"github.com/poiesic/docrank/storage"
	"github.com/poiesic/docrank/storage/badger"
)

// Analyzer bundles the storage backend, document repository, and
// judge provider behind one handle. It is the library entry point;
// create one per database directory.
type Analyzer struct {
	backend  *badger.Backend
	docRepo  storage.DocumentRepository
	provider ai.JudgeProvider // nil when running without a judge
	logger   *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*analyzerOptions)

type analyzerOptions struct {
	aiConfig *ai.Config
	noJudge  bool
}

// WithAIConfig sets the judge service configuration.
func WithAIConfig(cfg *ai.Config) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.aiConfig = cfg
	}
}

// WithoutJudge disables the external relevance judge entirely;
// matching runs on traditional scores and topics must be supplied or
// derived from section titles.
func WithoutJudge() AnalyzerOption {
	return func(o *analyzerOptions) {
		o.noJudge = true
	}
}

// NewAnalyzer opens (or creates) the database at filePath and wires
// the components.
func NewAnalyzer(filePath string, opts ...AnalyzerOption) (*Analyzer, error) {
	options := &analyzerOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	var provider ai.JudgeProvider
	if !options.noJudge {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			docRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Analyzer{
		backend:  backend,
		docRepo:  docRepo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close releases all resources.
func (a *Analyzer) Close() error {
	if a.provider != nil {
		if err := a.provider.Close(); err != nil {
			a.logger.Error("error closing judge provider", "err", err)
		}
	}

	if err := a.docRepo.Close(); err != nil {
		a.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// DocumentRepository exposes the persisted structure documents.
func (a *Analyzer) DocumentRepository() storage.DocumentRepository {
	return a.docRepo
}

// NewPipeline creates a run pipeline using the analyzer's storage and
// judge with the given layout detector.
func (a *Analyzer) NewPipeline(detector layout.Detector, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	return pipeline.NewPipeline(detector, a.docRepo, a.provider, opts...)
}
