package pdftext

import (
	"testing"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/poiesic/docrank/core"
	"github.com/poiesic/docrank/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupLines(t *testing.T) {
	runs := []pdflib.Text{
		{S: "Create", X: 72, Y: 700, W: 40, FontSize: 18},
		{S: "Fillable", X: 116, Y: 700, W: 44, FontSize: 18},
		{S: "PDFs", X: 164, Y: 700.5, W: 30, FontSize: 18},
		{S: "Use the Prepare Form tool.", X: 72, Y: 680, W: 150, FontSize: 11},
	}

	lines := groupLines(runs)
	require.Len(t, lines, 2)

	assert.Equal(t, "Create Fillable PDFs", lines[0].text)
	assert.Equal(t, 18.0, lines[0].fontSize)
	assert.Equal(t, "Use the Prepare Form tool.", lines[1].text)
}

func TestGroupLines_OrdersTopToBottom(t *testing.T) {
	// Runs arrive bottom-up; grouping must not depend on input order.
	runs := []pdflib.Text{
		{S: "second", X: 72, Y: 600, W: 40, FontSize: 11},
		{S: "first", X: 72, Y: 700, W: 30, FontSize: 11},
	}

	lines := groupLines(runs)
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0].text)
	assert.Equal(t, "second", lines[1].text)
}

func TestClassifyLine(t *testing.T) {
	const body = 11.0
	const pageHeight = 792.0

	tests := []struct {
		name     string
		text     string
		size     float64
		yTop     float64
		page     int
		sawTitle bool
		want     core.Label
	}{
		{name: "oversized first-page line is title", text: "Form Design Guide", size: 20, yTop: 80, page: 1, want: core.LabelTitle},
		{name: "larger-than-body short line is header", text: "Create Fillable PDFs", size: 14, yTop: 200, page: 3, want: core.LabelSectionHeader},
		{name: "body line is text", text: "Use the Prepare Form tool to add fields.", size: 11, yTop: 300, page: 3, want: core.LabelText},
		{name: "bullet line is list item", text: "• Add a text field", size: 11, yTop: 320, page: 3, want: core.LabelListItem},
		{name: "enumerated line is list item", text: "1. Open the form editor", size: 11, yTop: 340, page: 3, want: core.LabelListItem},
		{name: "top strip is page header", text: "Adobe Acrobat", size: 9, yTop: 10, page: 2, want: core.LabelPageHeader},
		{name: "bottom strip is page footer", text: "Page 2 of 12", size: 9, yTop: 780, page: 2, want: core.LabelPageFooter},
		{name: "second oversized line is header once title seen", text: "Another Big Line", size: 20, yTop: 300, page: 1, sawTitle: true, want: core.LabelSectionHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, confidence := classifyLine(tt.text, tt.size, body, tt.yTop, pageHeight, tt.page, tt.sawTitle)
			assert.Equal(t, tt.want, label)
			assert.Greater(t, confidence, 0.0)
			assert.LessOrEqual(t, confidence, 1.0)
		})
	}
}

func TestBodyFontSize(t *testing.T) {
	lines := []textLine{
		{fontSize: 11}, {fontSize: 11}, {fontSize: 11},
		{fontSize: 18},
		{fontSize: 9},
	}
	assert.Equal(t, 11.0, bodyFontSize(lines))
}

func TestLabelLines_NormalizedBoxes(t *testing.T) {
	lines := []textLine{
		{text: "Create Fillable PDFs", x: 72, y: 700, width: 120, fontSize: 18},
	}

	detections := labelLines(lines, 1, 612, 792)
	require.Len(t, detections, 1)

	d := detections[0]
	assert.Equal(t, 1, d.Page)
	assert.InDelta(t, 72.0/612.0, d.NormBBox.X, 1e-9)
	assert.GreaterOrEqual(t, d.NormBBox.Y, 0.0)
	assert.LessOrEqual(t, d.NormBBox.Y, 1.0)
	require.NoError(t, core.ValidateDetection(&d))
}

func TestDetector_Name(t *testing.T) {
	assert.Equal(t, "pdftext", NewDetector().Name())
}

func TestDetector_RejectsNonPDF(t *testing.T) {
	_, err := NewDetector().Detect(t.Context(), "notes.txt")
	assert.ErrorIs(t, err, layout.ErrUnsupportedFormat)
}
