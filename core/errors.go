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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidDetection indicates a Detection failed validation.
	ErrInvalidDetection = errors.New("invalid detection")

	// ErrInvalidLabel indicates a label outside the fixed label set.
	ErrInvalidLabel = errors.New("invalid label")

	// ErrInvalidConfidence indicates a confidence outside [0,1].
	ErrInvalidConfidence = errors.New("confidence must be between 0 and 1")

	// ErrInvalidPage indicates a non-positive page number.
	ErrInvalidPage = errors.New("page number must be positive")

	// ErrInvalidStructureDocument indicates a StructureDocument failed validation.
	ErrInvalidStructureDocument = errors.New("invalid structure document")

	// ErrEmptyFilename indicates the Filename field is empty.
	ErrEmptyFilename = errors.New("filename cannot be empty")

	// ErrNoTopics indicates an empty topic list where topics are required.
	ErrNoTopics = errors.New("at least one topic is required")
)
