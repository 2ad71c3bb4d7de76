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


package openai

import (
	"log/slog"

	"github.com/poiesic/docrank/ai"
)

// Provider implements ai.JudgeProvider using OpenAI-compatible services.
type Provider struct {
	config *ai.Config
	judge  *Judge
	logger *slog.Logger
}

// NewProvider creates a new judge provider.
// The config is validated and normalized before use.
//
// Returns ai.JudgeProvider interface (not *Provider) to enforce
// abstraction and prevent coupling to OpenAI-specific details.
func NewProvider(config *ai.Config) (ai.JudgeProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	judge, err := newJudge(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config: config,
		judge:  judge,
		logger: slog.Default().With("component", "openai-provider"),
	}, nil
}

// Judge returns the relevance judge service.
func (p *Provider) Judge() ai.RelevanceJudge {
	return p.judge
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying client doesn't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI judge provider")
	return nil
}
