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


// Package match scores document elements against curated topic phrases
// and produces the ranked match list.
//
// Every (topic, element) pair receives a traditional score: a blend of
// token-level string similarity and term-vector cosine similarity. The
// top traditional candidates per topic may additionally be scored by an
// external relevance judge; topics are grouped into fixed-size batches
// so judge calls within a batch run concurrently while batches run
// strictly one after another, bounding peak external concurrency.
//
// Judge failures never abort a run: the affected candidate keeps an AI
// score of 0 and the failure is counted in the returned Stats. The
// aggregation pass blends the two signals, filters by a minimum score,
// assigns importance rank from topic order, and sorts the result by
// rank ascending then score descending.
package match
