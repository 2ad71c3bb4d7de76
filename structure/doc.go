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


// Package structure assembles flat page-level detections into a
// hierarchical document model and a flat searchable index.
//
// The Builder re-sorts detections into reading order (top-to-bottom
// with a vertical tolerance band, then left-to-right), walks them with
// an explicit two-state section cursor, and post-processes the result:
// sections without content and with short titles are dropped, sections
// are ordered by page, a missing document title is adopted from the
// first section, and 1-based indices are assigned.
//
// Assembly never fails on malformed input. Missing text and
// low-confidence detections are excluded from the structure, and
// anomalies (no title, no sections, sparse text) surface only as
// quality issues on the result.
package structure
