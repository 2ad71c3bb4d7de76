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


package pipeline

import "errors"

var (
	// ErrDetectorRequired is returned when a layout detector is not provided.
	ErrDetectorRequired = errors.New("layout detector required")

	// ErrRepositoryRequired is returned when a document repository is not provided.
	ErrRepositoryRequired = errors.New("document repository required")

	// ErrNoInputDocuments is returned when a run is started without input documents.
	ErrNoInputDocuments = errors.New("no input documents provided")

	// ErrNoTopics is returned when no topics were provided and none could be derived.
	ErrNoTopics = errors.New("no topics provided or derivable")

	// ErrAllDocumentsFailed is returned when every input document failed detection.
	ErrAllDocumentsFailed = errors.New("all input documents failed processing")
)
