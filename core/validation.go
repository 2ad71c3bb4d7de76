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

import (
	"fmt"
	"slices"
)

// ValidateDetection validates a Detection according to domain rules.
//
// Validation rules:
//   - Label must belong to the fixed label set
//   - Confidence must be in [0,1]
//   - Page must be 1-based
//
// NOT validated (legitimately empty or zero):
//   - Text (detectors may fail to extract text for a region)
//   - BBox (a zero box is degenerate but harmless; structure assembly
//     never fails on malformed geometry)
func ValidateDetection(d *Detection) error {
	if d == nil {
		return fmt.Errorf("%w: detection is nil", ErrInvalidDetection)
	}

	if err := ValidateLabel(d.Label); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDetection, err)
	}

	if d.Confidence < 0 || d.Confidence > 1 {
		return fmt.Errorf("%w: %w", ErrInvalidDetection, ErrInvalidConfidence)
	}

	if d.Page < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidDetection, ErrInvalidPage)
	}

	return nil
}

// ValidateLabel validates that a label belongs to the fixed label set.
func ValidateLabel(label Label) error {
	if !slices.Contains(Labels, label) {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return nil
}

// ValidateStructureDocument validates a persisted structure document.
//
// Validation rules:
//   - Filename must not be empty
//
// NOT validated (populated by structure assembly):
//   - Title (documents without a detectable title are legal)
//   - Id (0 is valid; repositories derive it from the filename)
func ValidateStructureDocument(doc *StructureDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidStructureDocument)
	}

	if doc.Filename == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStructureDocument, ErrEmptyFilename)
	}

	return nil
}
