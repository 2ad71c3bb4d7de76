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


package mock

import "github.com/poiesic/docrank/ai"

// MockProvider is a test double for ai.JudgeProvider.
type MockProvider struct {
	judge *MockJudge
}

// NewMockProvider creates a new mock provider with a default mock judge.
//
// Returns ai.JudgeProvider interface for consistency with production
// constructors. Use GetMockJudge() to access the concrete type for
// test assertions.
func NewMockProvider() ai.JudgeProvider {
	return &MockProvider{judge: NewMockJudge()}
}

// NewMockProviderWithJudge creates a mock provider around a custom mock judge.
func NewMockProviderWithJudge(judge *MockJudge) ai.JudgeProvider {
	return &MockProvider{judge: judge}
}

// Judge returns the mock relevance judge.
func (p *MockProvider) Judge() ai.RelevanceJudge {
	return p.judge
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockJudge returns the underlying mock judge for test assertions.
func (p *MockProvider) GetMockJudge() *MockJudge {
	return p.judge
}
