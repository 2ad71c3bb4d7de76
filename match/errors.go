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

import "errors"

var (
	// ErrInvalidWeight is returned when a scoring weight lies outside [0,1].
	ErrInvalidWeight = errors.New("scoring weight must be in [0,1]")

	// ErrInvalidBatchWidth is returned when the concurrent-request bound is not positive.
	ErrInvalidBatchWidth = errors.New("max concurrent AI requests must be positive")

	// ErrInvalidTopCandidates is returned when the judge-eligible candidate count is not positive.
	ErrInvalidTopCandidates = errors.New("top candidate count must be positive")

	// ErrInvalidMinMatchScore is returned when the match-score floor lies outside [0,1].
	ErrInvalidMinMatchScore = errors.New("minimum match score must be in [0,1]")

	// ErrNoTopics is returned when a matching pass is started without topics.
	ErrNoTopics = errors.New("no topics provided")
)
