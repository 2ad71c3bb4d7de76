package mock

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"

	"github.com/poiesic/docrank/ai"
)

// MockJudge is a test double for ai.RelevanceJudge.
// It allows custom behavior injection via function fields and is safe
// for concurrent use, matching the interface contract.
type MockJudge struct {
	// JudgeFunc is called by Judge if set.
	// If nil, uses default deterministic behavior.
	JudgeFunc func(ctx context.Context, topic, text string) (float64, error)

	// SummarizeFunc is called by Summarize if set.
	SummarizeFunc func(ctx context.Context, text, label string) (string, error)

	// RankTopicsFunc is called by RankTopics if set.
	RankTopicsFunc func(ctx context.Context, summaries []string, persona, task string) ([]string, error)

	mu             sync.Mutex
	judgeCalls     int
	summarizeCalls int
	rankCalls      int
}

var _ ai.RelevanceJudge = (*MockJudge)(nil)

// NewMockJudge creates a mock judge with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockJudge() *MockJudge {
	return &MockJudge{}
}

// Judge returns a deterministic score derived from the inputs.
func (m *MockJudge) Judge(ctx context.Context, topic, text string) (float64, error) {
	m.mu.Lock()
	m.judgeCalls++
	fn := m.JudgeFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, topic, text)
	}

	// Default: stable pseudo-score from the input hash.
	h := fnv.New32a()
	h.Write([]byte(topic))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return float64(h.Sum32()%1000) / 1000.0, nil
}

// Summarize returns a truncated echo of the text.
func (m *MockJudge) Summarize(ctx context.Context, text, label string) (string, error) {
	m.mu.Lock()
	m.summarizeCalls++
	fn := m.SummarizeFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, text, label)
	}

	text = strings.TrimSpace(text)
	if len(text) > 120 {
		text = text[:120]
	}
	if label != "" {
		return fmt.Sprintf("%s: %s", label, text), nil
	}
	return text, nil
}

// RankTopics returns the summaries' leading words as topic phrases.
func (m *MockJudge) RankTopics(ctx context.Context, summaries []string, persona, task string) ([]string, error) {
	m.mu.Lock()
	m.rankCalls++
	fn := m.RankTopicsFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, summaries, persona, task)
	}

	topics := make([]string, 0, len(summaries))
	for _, s := range summaries {
		words := strings.Fields(s)
		if len(words) == 0 {
			continue
		}
		if len(words) > 3 {
			words = words[:3]
		}
		topics = append(topics, strings.Join(words, " "))
		if len(topics) == ai.MaxRankedTopics {
			break
		}
	}
	return topics, nil
}

// JudgeCalls returns the number of Judge invocations.
func (m *MockJudge) JudgeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.judgeCalls
}

// SummarizeCalls returns the number of Summarize invocations.
func (m *MockJudge) SummarizeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summarizeCalls
}

// RankTopicsCalls returns the number of RankTopics invocations.
func (m *MockJudge) RankTopicsCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rankCalls
}

// Reset clears call counts and injected behavior.
func (m *MockJudge) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.judgeCalls = 0
	m.summarizeCalls = 0
	m.rankCalls = 0
	m.JudgeFunc = nil
	m.SummarizeFunc = nil
	m.RankTopicsFunc = nil
}
