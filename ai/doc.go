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


// Package ai provides abstractions for the external AI collaborators
// used by docrank.
//
// The central interface is RelevanceJudge: a text-generation service
// that scores topic/text relevance, summarizes document text, and
// ranks candidate topics for a persona and task. The core matching
// engine depends only on this abstraction, never on a concrete model.
//
// All judge calls are wrapped in a RetryPolicy: bounded attempts, a
// per-attempt timeout that forcibly terminates the in-flight call, and
// a linear backoff between attempts. Callers must treat an exhausted
// judge call as a zero relevance score, never as a pipeline error.
//
// Implementation sub-packages:
//
//   - ai/openai: production implementation on OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors (openai.NewProvider, openai.NewJudge) return
// interface types to enforce abstraction. Mock constructors return
// concrete types so tests can inject behavior and assert call counts.
package ai
