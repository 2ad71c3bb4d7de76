// Package pdftext implements layout.Detector for born-digital PDFs.
//
// It reads positioned text runs directly from the PDF content streams,
// groups them into lines, and labels each line with font-size
// heuristics. No OCR and no layout model are involved, so confidences
// are synthetic: high for unambiguous cases (a dominant oversized line
// on page one), moderate for everything else.
package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/poiesic/docrank/core"
	"github.com/poiesic/docrank/layout"
)

const (
	// lineTolerance groups text runs whose baselines differ by at most
	// this many points into one line.
	lineTolerance = 2.0

	// defaultPageWidth/Height are US Letter, used when a page carries
	// no readable MediaBox.
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Detector extracts labeled text lines from a PDF file.
type Detector struct {
	logger *slog.Logger
}

var _ layout.Detector = (*Detector)(nil)

// NewDetector creates a pdftext detector.
func NewDetector() *Detector {
	return &Detector{
		logger: slog.Default().With("component", "pdftext-detector"),
	}
}

// Name identifies the detector in persisted metadata.
func (d *Detector) Name() string {
	return "pdftext"
}

// Detect returns one Detection per text line of the PDF at source.
func (d *Detector) Detect(ctx context.Context, source string) ([]core.Detection, error) {
	if !strings.HasSuffix(strings.ToLower(source), ".pdf") {
		return nil, fmt.Errorf("%w: %s", layout.ErrUnsupportedFormat, source)
	}

	f, reader, err := pdflib.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var detections []core.Detection
	numPages := reader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		width, height := pageSize(page)
		lines := groupLines(page.Content().Text)
		detections = append(detections, labelLines(lines, pageNum, width, height)...)
	}

	if len(detections) == 0 {
		return nil, layout.ErrNoContent
	}

	d.logger.Debug("detected text lines", "source", source, "pages", numPages, "detections", len(detections))
	return detections, nil
}

// pageSize reads the page MediaBox, falling back to US Letter.
func pageSize(page pdflib.Page) (width, height float64) {
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageWidth, defaultPageHeight
	}
	llx := box.Index(0).Float64()
	lly := box.Index(1).Float64()
	urx := box.Index(2).Float64()
	ury := box.Index(3).Float64()
	width = urx - llx
	height = ury - lly
	if width <= 0 || height <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return width, height
}

// textLine is a horizontal run of text sharing one baseline.
type textLine struct {
	text     string
	x, y     float64 // left edge and baseline, PDF coordinates
	width    float64
	fontSize float64
}

// groupLines merges positioned text runs into baseline-aligned lines.
func groupLines(runs []pdflib.Text) []textLine {
	if len(runs) == 0 {
		return nil
	}

	// Top of page first (PDF origin is bottom-left), then left to right.
	sorted := make([]pdflib.Text, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []textLine
	var current *textLine
	var lastEnd float64

	for _, run := range sorted {
		if run.S == "" {
			continue
		}

		if current != nil && abs(current.y-run.Y) <= lineTolerance {
			// Same baseline; insert a space across visible gaps.
			if run.X-lastEnd > current.fontSize*0.2 {
				current.text += " "
			}
			current.text += run.S
			current.width = run.X + run.W - current.x
			if run.FontSize > current.fontSize {
				current.fontSize = run.FontSize
			}
			lastEnd = run.X + run.W
			continue
		}

		if current != nil {
			lines = append(lines, *current)
		}
		current = &textLine{
			text:     run.S,
			x:        run.X,
			y:        run.Y,
			width:    run.W,
			fontSize: run.FontSize,
		}
		lastEnd = run.X + run.W
	}
	if current != nil {
		lines = append(lines, *current)
	}

	return lines
}

// labelLines converts grouped lines into labeled detections.
func labelLines(lines []textLine, pageNum int, pageWidth, pageHeight float64) []core.Detection {
	if len(lines) == 0 {
		return nil
	}

	body := bodyFontSize(lines)
	sawTitle := false

	detections := make([]core.Detection, 0, len(lines))
	for _, line := range lines {
		text := strings.TrimSpace(line.text)
		if text == "" {
			continue
		}

		height := line.fontSize * 1.2
		if height <= 0 {
			height = 12
		}
		bbox := core.BoundingBox{
			X:      line.x,
			Y:      pageHeight - line.y - line.fontSize, // top-left origin
			Width:  line.width,
			Height: height,
		}

		label, confidence := classifyLine(text, line.fontSize, body, bbox.Y, pageHeight, pageNum, sawTitle)
		if label == core.LabelTitle {
			sawTitle = true
		}

		detections = append(detections, core.Detection{
			BBox:       bbox,
			NormBBox:   normalize(bbox, pageWidth, pageHeight),
			Label:      label,
			Confidence: confidence,
			Text:       text,
			Page:       pageNum,
		})
	}
	return detections
}

// classifyLine assigns a semantic label from typography and position.
func classifyLine(text string, size, body, yTop, pageHeight float64, pageNum int, sawTitle bool) (core.Label, float64) {
	words := len(strings.Fields(text))

	switch {
	case pageNum == 1 && !sawTitle && size >= body*1.5 && words <= 16:
		return core.LabelTitle, 0.9
	case size >= body*1.15 && words <= 12:
		return core.LabelSectionHeader, 0.8
	case yTop < pageHeight*0.06 && words <= 10:
		return core.LabelPageHeader, 0.6
	case yTop > pageHeight*0.94 && words <= 10:
		return core.LabelPageFooter, 0.6
	case isListItem(text):
		return core.LabelListItem, 0.7
	default:
		return core.LabelText, 0.7
	}
}

// isListItem recognizes bullet and enumerated prefixes.
func isListItem(text string) bool {
	for _, prefix := range []string{"•", "◦", "▪", "- ", "* "} {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	// "1. ", "2) " style enumerations.
	if len(text) > 2 && text[0] >= '0' && text[0] <= '9' && (text[1] == '.' || text[1] == ')') && text[2] == ' ' {
		return true
	}
	return false
}

// bodyFontSize finds the dominant font size, which stands in for the
// body text size when comparing headings.
func bodyFontSize(lines []textLine) float64 {
	counts := make(map[float64]int)
	for _, line := range lines {
		counts[line.fontSize]++
	}

	var best float64 = 12
	bestCount := 0
	for size, count := range counts {
		if count > bestCount || (count == bestCount && size < best) {
			best = size
			bestCount = count
		}
	}
	if best <= 0 {
		return 12
	}
	return best
}

func normalize(b core.BoundingBox, pageWidth, pageHeight float64) core.BoundingBox {
	if pageWidth <= 0 || pageHeight <= 0 {
		return core.BoundingBox{}
	}
	return core.BoundingBox{
		X:      b.X / pageWidth,
		Y:      b.Y / pageHeight,
		Width:  b.Width / pageWidth,
		Height: b.Height / pageHeight,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
