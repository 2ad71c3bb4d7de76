package core

import (
	"errors"
	"testing"
)

func TestValidateDetection(t *testing.T) {
	valid := Detection{
		Label:      LabelText,
		Confidence: 0.7,
		Text:       "Use the Prepare Form tool to add fields.",
		Page:       3,
	}

	tests := []struct {
		name    string
		mutate  func(d *Detection)
		wantErr error
	}{
		{name: "valid detection", mutate: func(d *Detection) {}, wantErr: nil},
		{
			name:    "unknown label",
			mutate:  func(d *Detection) { d.Label = "Sidebar" },
			wantErr: ErrInvalidLabel,
		},
		{
			name:    "confidence above one",
			mutate:  func(d *Detection) { d.Confidence = 1.2 },
			wantErr: ErrInvalidConfidence,
		},
		{
			name:    "negative confidence",
			mutate:  func(d *Detection) { d.Confidence = -0.1 },
			wantErr: ErrInvalidConfidence,
		},
		{
			name:    "zero page",
			mutate:  func(d *Detection) { d.Page = 0 },
			wantErr: ErrInvalidPage,
		},
		{
			name:    "empty text is allowed",
			mutate:  func(d *Detection) { d.Text = "" },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)

			err := ValidateDetection(&d)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDetection() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDetection() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidDetection) {
				t.Errorf("ValidateDetection() error should wrap ErrInvalidDetection")
			}
		})
	}
}

func TestValidateDetection_Nil(t *testing.T) {
	if err := ValidateDetection(nil); !errors.Is(err, ErrInvalidDetection) {
		t.Errorf("ValidateDetection(nil) = %v, want ErrInvalidDetection", err)
	}
}

func TestValidateStructureDocument(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc := &StructureDocument{Filename: "guide.pdf"}
		if err := ValidateStructureDocument(doc); err != nil {
			t.Errorf("ValidateStructureDocument() unexpected error: %v", err)
		}
	})

	t.Run("empty filename", func(t *testing.T) {
		doc := &StructureDocument{}
		err := ValidateStructureDocument(doc)
		if !errors.Is(err, ErrEmptyFilename) {
			t.Errorf("ValidateStructureDocument() error = %v, want ErrEmptyFilename", err)
		}
	})

	t.Run("nil document", func(t *testing.T) {
		if err := ValidateStructureDocument(nil); !errors.Is(err, ErrInvalidStructureDocument) {
			t.Errorf("ValidateStructureDocument(nil) = %v, want ErrInvalidStructureDocument", err)
		}
	})
}
