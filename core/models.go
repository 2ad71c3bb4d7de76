package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that identical
// content always maps to the same identity.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Label identifies the semantic class a layout detector assigned to a region.
type Label string

const (
	LabelTitle         Label = "Title"
	LabelSectionHeader Label = "Section-header"
	LabelText          Label = "Text"
	LabelListItem      Label = "List-item"
	LabelCaption       Label = "Caption"
	LabelTable         Label = "Table"
	LabelFormula       Label = "Formula"
	LabelPicture       Label = "Picture"
	LabelPageHeader    Label = "Page-header"
	LabelPageFooter    Label = "Page-footer"
	LabelFootnote      Label = "Footnote"
)

// Labels lists every label a detector may emit.
var Labels = []Label{
	LabelTitle,
	LabelSectionHeader,
	LabelText,
	LabelListItem,
	LabelCaption,
	LabelTable,
	LabelFormula,
	LabelPicture,
	LabelPageHeader,
	LabelPageFooter,
	LabelFootnote,
}

// labelWeights assigns each element type an importance weight in [0,1].
var labelWeights = map[Label]float64{
	LabelTitle:         1.0,
	LabelSectionHeader: 0.9,
	LabelText:          0.6,
	LabelListItem:      0.5,
	LabelTable:         0.5,
	LabelCaption:       0.4,
	LabelFormula:       0.4,
	LabelPicture:       0.3,
	LabelFootnote:      0.2,
	LabelPageHeader:    0.1,
	LabelPageFooter:    0.1,
}

// WeightForLabel returns the importance weight for an element type.
// Unknown labels get a neutral low weight.
func WeightForLabel(label Label) float64 {
	if w, ok := labelWeights[label]; ok {
		return w
	}
	return 0.3
}

// DisplayName returns a human-readable name for the label,
// e.g. "Section-header" becomes "Section Header".
func (l Label) DisplayName() string {
	parts := strings.Split(string(l), "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// BoundingBox is a rectangular region on a page.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CenterX returns the horizontal center of the box.
func (b BoundingBox) CenterX() float64 {
	return b.X + b.Width/2
}

// CenterY returns the vertical center of the box.
func (b BoundingBox) CenterY() float64 {
	return b.Y + b.Height/2
}

// Detection is a labeled, positioned region found on a page image.
// Detections are produced by layout+OCR collaborators and are immutable
// once created; structure assembly only reads them.
type Detection struct {
	BBox       BoundingBox `json:"bbox"`            // region in pixel space
	NormBBox   BoundingBox `json:"normalized_bbox"` // region in [0,1] page space
	Label      Label       `json:"label"`
	Confidence float64     `json:"confidence"` // detector confidence in [0,1]
	Text       string      `json:"text"`       // extracted text, possibly empty
	Page       int         `json:"page"`       // 1-based page number
}

// Element is a normalized, scoreable text unit derived from one Detection.
// Elements are created during structure assembly and never mutated afterward.
type Element struct {
	Type         Label       `json:"type"`
	Text         string      `json:"text"` // cleaned text
	Page         int         `json:"page"`
	SectionTitle string      `json:"section_title,omitempty"` // empty for the document title
	Weight       float64     `json:"weight"`                  // importance weight in [0,1], by type
	BBox         BoundingBox `json:"bbox"`
}

// Section is a titled span of document content.
// A section is retained only if it has content or a title longer than
// 3 characters.
type Section struct {
	Title      string      `json:"title"`
	Page       int         `json:"page"`
	Confidence float64     `json:"confidence"`
	BBox       BoundingBox `json:"bbox"`
	Content    []Element   `json:"content"`
	WordCount  int         `json:"word_count"`
	Index      int         `json:"index"` // 1-based, assigned after final ordering
}

// HasContent reports whether the section accumulated any content elements.
func (s *Section) HasContent() bool {
	return len(s.Content) > 0
}

// ElementCounts aggregates detection outcomes of structure assembly.
type ElementCounts struct {
	Total          int `json:"total"`
	Text           int `json:"text"`
	SectionHeaders int `json:"section_headers"`
	Titles         int `json:"titles"`
}

// DocumentStructure is the hierarchical document model produced by
// structure assembly: an optional title and page-ordered sections.
type DocumentStructure struct {
	Title    string        `json:"title,omitempty"`
	Sections []Section     `json:"sections"`
	Counts   ElementCounts `json:"counts"`
	AllText  string        `json:"-"` // newline-joined accumulator used for summarization
}

// SearchIndex is the flat ordered sequence of elements the matcher
// scores against: title first if present, then each section's header
// followed by its content, in section order.
type SearchIndex []Element

// TextStatistics describes the assembled document's text body.
type TextStatistics struct {
	WordCount            int     `json:"word_count"`
	SentenceCount        int     `json:"sentence_count"`
	AvgWordsPerSentence  float64 `json:"avg_words_per_sentence"`
	SectionsWithContent  int     `json:"sections_with_content"`
	AvgContentPerSection float64 `json:"avg_content_per_section"`
}

// QualityAssessment scores how well structure assembly went.
// Anomalies recorded here are non-fatal; they only inform the caller.
type QualityAssessment struct {
	StructureScore float64  `json:"structure_score"`
	ContentScore   float64  `json:"content_score"`
	TitleScore     float64  `json:"title_score"`
	Overall        float64  `json:"overall"`
	Rating         string   `json:"rating"` // excellent/good/fair/poor
	Issues         []string `json:"issues,omitempty"`
}

// DocumentMetadata accompanies a persisted structure document.
type DocumentMetadata struct {
	GeneratedAt    time.Time         `json:"generatedAt"`
	Detector       string            `json:"detector,omitempty"`
	DetectionCount int               `json:"detection_count"`
	Statistics     TextStatistics    `json:"statistics"`
	Quality        QualityAssessment `json:"quality"`
}

// StructureDocument is the persisted per-input artifact: the assembled
// structure plus the flat index the matcher runs against.
type StructureDocument struct {
	Id          ID                `json:"-"`
	Filename    string            `json:"filename"`
	Title       string            `json:"title,omitempty"`
	Structure   DocumentStructure `json:"structure"`
	SearchIndex SearchIndex       `json:"searchIndex"`
	Metadata    DocumentMetadata  `json:"metadata"`
}

// Topic is a short curated phrase with an implicit importance rank
// equal to its 1-based position in the input topic list.
type Topic struct {
	Phrase string `json:"phrase"`
	Rank   int    `json:"rank"`
}

// Candidate pairs a search-index element with a topic and carries the
// two relevance signals. The AI score stays 0 unless a judge scored it.
type Candidate struct {
	Element     Element
	Topic       Topic
	Traditional float64
	AI          float64
}

// Match is one ranked result. Immutable once emitted.
type Match struct {
	Document          string      `json:"document"`
	Topic             string      `json:"topic"`
	SectionTitle      string      `json:"section_title"`
	Page              int         `json:"page_number"`
	ImportanceRank    int         `json:"importance_rank"`
	Score             float64     `json:"match_score"`
	MatchType         Label       `json:"match_type"`
	Traditional       float64     `json:"traditional_score"`
	AI                float64     `json:"ai_score"`
	ElementImportance float64     `json:"element_importance"`
	BBox              BoundingBox `json:"bounding_box"`
}

// RefinedMatch is the secondary per-match analysis view.
type RefinedMatch struct {
	Document        string  `json:"document"`
	Topic           string  `json:"topic"`
	Page            int     `json:"page_number"`
	ElementType     string  `json:"element_type"` // human-readable label
	RefinedText     string  `json:"refined_text"`
	ConfidenceLevel string  `json:"confidence_level"` // High/Medium/Low/Very Low
	AIAssisted      bool    `json:"ai_assisted"`
	Score           float64 `json:"match_score"`
}

// displayTitleLimit caps section titles in emitted matches.
const displayTitleLimit = 60

// TruncateForDisplay shortens a title to a display-friendly length.
func TruncateForDisplay(title string) string {
	if len(title) <= displayTitleLimit {
		return title
	}
	return strings.TrimSpace(title[:displayTitleLimit-3]) + "..."
}

// ConfidenceBucket maps a combined match score to a coarse level.
func ConfidenceBucket(score float64) string {
	switch {
	case score >= 0.8:
		return "High"
	case score >= 0.5:
		return "Medium"
	case score >= 0.3:
		return "Low"
	default:
		return "Very Low"
	}
}
