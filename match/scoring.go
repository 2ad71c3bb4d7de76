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
	"math"
	"strings"

	"github.com/xrash/smetrics"
)

// Jaro-Winkler parameters: standard prefix boost.
const (
	jaroWinklerBoost     = 0.7
	jaroWinklerPrefixLen = 4
)

// minScoreableLength is the shortest text that can score above 0.
const minScoreableLength = 3

// Scorer computes the traditional relevance signal and the final
// blended score for (topic, text) pairs. Scoring is deterministic:
// identical inputs always produce identical scores.
type Scorer struct {
	cfg *Config
}

// NewScorer creates a Scorer. A nil config uses the documented
// defaults.
func NewScorer(cfg *Config) (*Scorer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{cfg: cfg}, nil
}

// Fuzzy measures token-level string similarity: each topic token is
// matched against its best-scoring text token by Jaro-Winkler
// distance, and the per-token bests are averaged.
func (s *Scorer) Fuzzy(topic, text string) float64 {
	topicTokens := tokenize(topic)
	textTokens := tokenize(text)
	if len(topicTokens) == 0 || len(textTokens) == 0 {
		return 0
	}

	total := 0.0
	for _, tt := range topicTokens {
		best := 0.0
		for _, xt := range textTokens {
			sim := smetrics.JaroWinkler(tt, xt, jaroWinklerBoost, jaroWinklerPrefixLen)
			if sim > best {
				best = sim
			}
		}
		total += best
	}
	return total / float64(len(topicTokens))
}

// Cosine measures term-overlap similarity between stemmed,
// length-weighted term vectors. Longer stems carry more weight, so
// shared content words dominate shared particles.
func (s *Scorer) Cosine(topic, text string) float64 {
	a := termVector(topic)
	b := termVector(text)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	dot := 0.0
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (vectorNorm(a) * vectorNorm(b))
}

// Traditional combines the fuzzy and cosine signals under the
// configured weights. Texts shorter than 3 characters score 0
// unconditionally.
func (s *Scorer) Traditional(topic, text string) float64 {
	if len(strings.TrimSpace(text)) < minScoreableLength {
		return 0
	}
	return s.Fuzzy(topic, text)*s.cfg.FuzzyWeight + s.Cosine(topic, text)*s.cfg.CosineWeight
}

// Final produces the blended match score. Without an AI signal the
// traditional score is normalized to occupy the full [0,1] range;
// with one, the normalized traditional score and the AI score blend
// under AIWeight.
func (s *Scorer) Final(traditional, ai float64) float64 {
	normalized := traditional / (s.cfg.FuzzyWeight + s.cfg.CosineWeight)
	if ai == 0 {
		return clamp01(normalized)
	}
	return clamp01(normalized*(1-s.cfg.AIWeight) + ai*s.cfg.AIWeight)
}

// termVector builds a stem → weight map where each stem's weight is
// its length.
func termVector(text string) map[string]float64 {
	vec := make(map[string]float64)
	for _, stem := range stemTokens(text) {
		vec[stem] += float64(len(stem))
	}
	return vec
}

func vectorNorm(vec map[string]float64) float64 {
	sum := 0.0
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
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
