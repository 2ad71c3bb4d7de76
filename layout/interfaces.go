// Package layout defines the contract for page-layout detection
// collaborators.
//
// A Detector produces labeled, positioned regions (core.Detection) for
// a document. The contract deliberately promises nothing about order:
// structure assembly re-sorts detections into reading order itself and
// must never assume the collaborator's order.
package layout

import (
	"context"
	"errors"

	"github.com/poiesic/docrank/core"
)

var (
	// ErrUnsupportedFormat indicates the detector cannot read the source.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrNoContent indicates the source yielded no detectable regions.
	ErrNoContent = errors.New("no detectable content")
)

// Detector finds labeled regions in a document.
// Implementations must be safe for concurrent use across documents and
// must fail fast on timeout rather than hang.
type Detector interface {
	// Detect returns every labeled region found in the document at
	// source, across all pages, in unspecified order.
	Detect(ctx context.Context, source string) ([]core.Detection, error)

	// Name identifies the detector in persisted document metadata.
	Name() string
}
