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


// Package pipeline orchestrates a full document ranking run: layout
// detection, structure assembly, persistence, topic derivation, and
// the per-document matching pass, folded into one output document.
//
// Documents are processed concurrently on a worker pool; each
// document's matching pass is internally sequential per the batching
// rules in package match. Only malformed input is fatal. Failures of
// external collaborators (layout detection, the relevance judge)
// degrade the affected document or score and surface in the output
// statistics, never as run errors.
package pipeline
