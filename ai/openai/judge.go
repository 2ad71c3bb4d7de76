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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/poiesic/docrank/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrUnparseableScore indicates the model's reply contained no usable
// number. Callers must downgrade this to a zero score.
var ErrUnparseableScore = errors.New("unparseable relevance score")

// Judge implements ai.RelevanceJudge using OpenAI-compatible chat APIs.
type Judge struct {
	client      llms.Model
	judgePolicy ai.RetryPolicy
	callPolicy  ai.RetryPolicy
	logger      *slog.Logger
}

// rankedTopics is the wrapper structure for the RankTopics JSON response.
type rankedTopics struct {
	Topics []string `json:"topics"`
}

// newJudge is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newJudge(config *ai.Config) (*Judge, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication.
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Judge{
		client:      client,
		judgePolicy: config.JudgePolicy(),
		callPolicy:  config.CallPolicy(),
		logger:      slog.Default().With("component", "openai-judge"),
	}, nil
}

// NewJudge creates a new relevance judge using the provided configuration.
//
// Returns ai.RelevanceJudge interface to enforce abstraction.
func NewJudge(config *ai.Config) (ai.RelevanceJudge, error) {
	return newJudge(config)
}

// Judge returns a relevance score in [0,1] for a topic against element text.
func (j *Judge) Judge(ctx context.Context, topic, text string) (float64, error) {
	prompt := buildJudgePrompt(topic, text)

	var score float64
	err := j.judgePolicy.Do(ctx, func(ctx context.Context) error {
		reply, err := j.generate(ctx, judgeSystemPrompt, prompt, false)
		if err != nil {
			return err
		}
		score, err = parseScore(reply)
		return err
	})
	if err != nil {
		j.logger.Warn("relevance judgment failed", "topic", topic, "err", err)
		return 0, err
	}

	return clamp01(score), nil
}

// Summarize produces a short summary of text. The label names what is
// being summarized and may be empty.
func (j *Judge) Summarize(ctx context.Context, text, label string) (string, error) {
	text = truncateInput(text, maxSummaryInput)

	var summary string
	err := j.callPolicy.Do(ctx, func(ctx context.Context) error {
		reply, err := j.generate(ctx, summarizeSystemPrompt, buildSummarizePrompt(text, label), false)
		if err != nil {
			return err
		}
		summary = strings.TrimSpace(reply)
		if summary == "" {
			return errors.New("empty summary")
		}
		return nil
	})
	if err != nil {
		j.logger.Warn("summarization failed", "label", label, "err", err)
		return "", err
	}

	return summary, nil
}

// RankTopics derives an ordered list of short topic phrases from
// document summaries, most important first.
func (j *Judge) RankTopics(ctx context.Context, summaries []string, persona, task string) ([]string, error) {
	prompt := buildRankPrompt(summaries, persona, task)

	var result rankedTopics
	err := j.callPolicy.Do(ctx, func(ctx context.Context) error {
		reply, err := j.generate(ctx, rankSystemPrompt, prompt, true)
		if err != nil {
			return err
		}

		reply = stripFences(reply)
		reply = repairJSON(reply)
		if err := json.Unmarshal([]byte(reply), &result); err != nil {
			j.logger.Warn("error parsing ranked topics", "response", reply, "err", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	topics := make([]string, 0, len(result.Topics))
	for _, topic := range result.Topics {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}
		topics = append(topics, topic)
		if len(topics) == ai.MaxRankedTopics {
			break
		}
	}

	j.logger.Debug("ranked topics", "count", len(topics))
	return topics, nil
}

// generate runs one chat completion and returns the first choice.
func (j *Judge) generate(ctx context.Context, system, user string, jsonMode bool) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(system)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(user)},
		},
	}

	opts := []llms.CallOption{llms.WithTemperature(0.0)}
	if jsonMode {
		opts = append(opts, llms.WithJSONMode())
	}

	response, err := j.client.GenerateContent(ctx, content, opts...)
	if err != nil {
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", errors.New("no choices returned from model")
	}
	return response.Choices[0].Content, nil
}

// parseScore extracts a relevance score from a model reply. Accepts a
// bare number anywhere in the reply; percentages are scaled down.
func parseScore(reply string) (float64, error) {
	reply = stripFences(reply)

	for _, field := range strings.FieldsFunc(reply, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != '.'
	}) {
		field = strings.Trim(field, ".") // sentence punctuation
		score, err := strconv.ParseFloat(field, 64)
		if err != nil {
			continue
		}
		if score > 1 && score <= 100 {
			score = score / 100
		}
		return score, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnparseableScore, strings.TrimSpace(reply))
}

// stripFences removes markdown code fences around a model reply.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
