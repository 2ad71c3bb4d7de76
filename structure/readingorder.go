package structure

import (
	"sort"

	"github.com/poiesic/docrank/core"
)

// SortReadingOrder returns detections sorted into reading order:
// page ascending, then top-to-bottom, breaking ties left-to-right
// when two regions' vertical centers fall within the tolerance band.
//
// The sort is stable, so detections that tie on every key keep the
// detector's emission order; assembly stays deterministic for a fixed
// detection list.
func SortReadingOrder(detections []core.Detection, verticalTolerance float64) []core.Detection {
	ordered := make([]core.Detection, len(detections))
	copy(ordered, detections)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}

		dy := a.BBox.CenterY() - b.BBox.CenterY()
		if dy < -verticalTolerance {
			return true
		}
		if dy > verticalTolerance {
			return false
		}
		// Same band: left to right.
		return a.BBox.CenterX() < b.BBox.CenterX()
	})

	return ordered
}
