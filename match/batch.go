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
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/poiesic/docrank/core"
)

// topicCandidates is one topic's scored candidates plus the counters
// its goroutine owns during the judge pass. No other goroutine touches
// a topicCandidates value while its batch is in flight.
type topicCandidates struct {
	topic      core.Topic
	candidates []core.Candidate
	stats      Stats
}

// batchTopicCandidates chunks topics into groups of at most width.
func batchTopicCandidates(tcs []*topicCandidates, width int) [][]*topicCandidates {
	var batches [][]*topicCandidates
	for start := 0; start < len(tcs); start += width {
		end := start + width
		if end > len(tcs) {
			end = len(tcs)
		}
		batches = append(batches, tcs[start:end])
	}
	return batches
}

// judgeEligible returns the indices of the top-n candidates by
// traditional score, descending. Zero-score candidates are never
// eligible; there is nothing for the judge to confirm.
func judgeEligible(candidates []core.Candidate, n int) []int {
	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return candidates[idx[a]].Traditional > candidates[idx[b]].Traditional
	})

	eligible := make([]int, 0, n)
	for _, i := range idx {
		if len(eligible) == n {
			break
		}
		if candidates[i].Traditional == 0 {
			break
		}
		eligible = append(eligible, i)
	}
	return eligible
}

// judgePass runs the external judge over every topic's eligible
// candidates. Topics within a batch run concurrently; the next batch
// starts only after the previous one has fully resolved. Judge
// failures downgrade to an AI score of 0 and never abort the pass.
func (m *Matcher) judgePass(ctx context.Context, tcs []*topicCandidates, monitor MatchMonitor) {
	batches := batchTopicCandidates(tcs, m.cfg.MaxConcurrentAIRequests)

	for bi, batch := range batches {
		topics := make([]core.Topic, len(batch))
		for i, tc := range batch {
			topics[i] = tc.topic
		}
		monitor.BatchStart(bi+1, topics)

		g, gctx := errgroup.WithContext(ctx)
		for _, tc := range batch {
			tc := tc
			g.Go(func() error {
				m.judgeTopic(gctx, tc, monitor)
				return nil
			})
		}
		_ = g.Wait()

		monitor.BatchDone(bi + 1)
	}
}

// judgeTopic scores one topic's eligible candidates sequentially.
func (m *Matcher) judgeTopic(ctx context.Context, tc *topicCandidates, monitor MatchMonitor) {
	for _, i := range judgeEligible(tc.candidates, m.cfg.TopCandidates) {
		tc.stats.JudgeCalls++

		score, err := m.judge.Judge(ctx, tc.topic.Phrase, tc.candidates[i].Element.Text)
		if err != nil {
			tc.stats.JudgeFailures++
			monitor.JudgeFailed(tc.topic, err)
			m.logger.Warn("judge call failed, keeping traditional score",
				"topic", tc.topic.Phrase, "error", err)
			continue
		}

		tc.candidates[i].AI = clamp01(score)
		monitor.JudgeSucceeded(tc.topic, tc.candidates[i].AI)
	}
}
