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


package match

import (
	"context"
	"log/slog"

	"github.com/poiesic/docrank/ai"
	"github.com/poiesic/docrank/core"
)

// Matcher runs the full matching pass for one document: traditional
// scoring, the batched judge pass, and aggregation.
type Matcher struct {
	cfg    *Config
	scorer *Scorer
	judge  ai.RelevanceJudge // nil disables the judge pass
	logger *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) MatcherOption {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithJudge sets the external relevance judge. Without one, matching
// runs on traditional scores alone.
func WithJudge(judge ai.RelevanceJudge) MatcherOption {
	return func(m *Matcher) error {
		m.judge = judge
		return nil
	}
}

// NewMatcher creates a Matcher. A nil config uses the documented
// defaults.
func NewMatcher(cfg *Config, opts ...MatcherOption) (*Matcher, error) {
	scorer, err := NewScorer(cfg)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		cfg:    scorer.cfg,
		scorer: scorer,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Result is the outcome of one document's matching pass.
type Result struct {
	Matches []core.Match
	Refined []core.RefinedMatch
	Stats   Stats
}

// Match scores every (topic, element) pair in the index, judges the
// top candidates per topic in bounded batches, and returns the
// filtered, ranked matches. An empty index yields an empty result;
// judge failures degrade individual scores but never fail the pass.
func (m *Matcher) Match(ctx context.Context, document string, index core.SearchIndex, topics []core.Topic) (*Result, error) {
	return m.MatchWithMonitor(ctx, document, index, topics, nil)
}

// MatchWithMonitor is Match with observation hooks. The monitor
// receives callbacks at each stage of the pass.
func (m *Matcher) MatchWithMonitor(ctx context.Context, document string, index core.SearchIndex, topics []core.Topic, monitor MatchMonitor) (*Result, error) {
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(document, topics)

	tcs := m.scoreTopics(index, topics, monitor)

	if m.judge != nil && len(index) > 0 {
		m.judgePass(ctx, tcs, monitor)
	}

	result := &Result{}
	for _, tc := range tcs {
		result.Stats.Merge(tc.stats)
	}
	result.Stats.TopicsProcessed = len(topics)
	result.Matches, result.Refined = m.aggregate(document, tcs, &result.Stats)

	monitor.Finish(result.Matches)
	m.logger.Debug("matching pass complete",
		"document", document,
		"topics", len(topics),
		"matches", len(result.Matches),
		"judge_failures", result.Stats.JudgeFailures)

	return result, nil
}

// scoreTopics computes the traditional score of every (topic, element)
// pair.
func (m *Matcher) scoreTopics(index core.SearchIndex, topics []core.Topic, monitor MatchMonitor) []*topicCandidates {
	tcs := make([]*topicCandidates, len(topics))
	for ti, topic := range topics {
		tc := &topicCandidates{
			topic:      topic,
			candidates: make([]core.Candidate, 0, len(index)),
		}
		for _, el := range index {
			tc.candidates = append(tc.candidates, core.Candidate{
				Element:     el,
				Topic:       topic,
				Traditional: m.scorer.Traditional(topic.Phrase, el.Text),
			})
		}
		tc.stats.CandidatesScored = len(tc.candidates)
		monitor.TopicScored(topic, len(tc.candidates))
		tcs[ti] = tc
	}
	return tcs
}
