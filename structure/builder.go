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

package structure

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/docrank/core"
)

// contentLabels are the detection labels that may become section
// content.
var contentLabels = map[core.Label]bool{
	core.LabelText:     true,
	core.LabelListItem: true,
	core.LabelCaption:  true,
}

// Result is everything assembly produces for one document.
type Result struct {
	Structure      core.DocumentStructure
	Index          core.SearchIndex
	Statistics     core.TextStatistics
	Quality        core.QualityAssessment
	DetectionCount int
}

// Builder assembles detections into a document structure and search
// index. A Builder is stateless across calls and safe for concurrent
// use.
type Builder struct {
	cfg    *Config
	logger *slog.Logger
}

// NewBuilder creates a Builder with the given configuration. A nil
// config uses the documented defaults.
func NewBuilder(cfg *Config, logger *slog.Logger) (*Builder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{cfg: cfg, logger: logger}, nil
}

// Build assembles the detections into a hierarchical structure, a flat
// search index, text statistics, and a quality assessment. Build never
// fails: malformed, empty, or low-confidence detections are excluded
// from the structure rather than reported as errors.
func (b *Builder) Build(detections []core.Detection) *Result {
	ordered := SortReadingOrder(detections, b.cfg.VerticalTolerance)

	var (
		cursor    sectionCursor
		counts    core.ElementCounts
		allText   []string
		title     string
		titlePage int
		titleBBox core.BoundingBox
	)
	counts.Total = len(ordered)

	for _, d := range ordered {
		cleaned := CleanText(d.Text)

		switch {
		case d.Label == core.LabelTitle && title == "" &&
			d.Confidence >= b.cfg.TitleThreshold && cleaned != "":
			title = cleaned
			titlePage = d.Page
			titleBBox = d.BBox
			counts.Titles++

		case d.Label == core.LabelSectionHeader &&
			d.Confidence >= b.cfg.SectionThreshold && cleaned != "":
			cursor.open(cleaned, d.Page, d.Confidence, d.BBox)
			counts.SectionHeaders++

		case cursor.state == openSection && contentLabels[d.Label] &&
			len(cleaned) >= b.cfg.MinTextLength:
			cursor.appendContent(core.Element{
				Type:   d.Label,
				Text:   cleaned,
				Page:   d.Page,
				Weight: core.WeightForLabel(d.Label),
				BBox:   d.BBox,
			})
			counts.Text++
		}

		if len(cleaned) >= b.cfg.MinTextLength && !IsExtractionFailure(cleaned) {
			allText = append(allText, cleaned)
		}
	}
	cursor.close()

	sections := retainSections(cursor.sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Page < sections[j].Page
	})

	if title == "" && len(sections) > 0 && len(sections[0].Title) > 5 {
		title = sections[0].Title
		titlePage = sections[0].Page
		titleBBox = sections[0].BBox
		b.logger.Debug("adopted document title from first section", "title", title)
	}

	for i := range sections {
		sections[i].Index = i + 1
	}

	structure := core.DocumentStructure{
		Title:    title,
		Sections: sections,
		Counts:   counts,
		AllText:  strings.Join(allText, "\n"),
	}

	result := &Result{
		Structure:      structure,
		Index:          buildIndex(structure, titlePage, titleBBox),
		Statistics:     deriveStatistics(structure),
		DetectionCount: len(detections),
	}
	result.Quality = assessQuality(structure, result.Statistics)

	b.logger.Debug("structure assembled",
		"sections", len(sections),
		"index_elements", len(result.Index),
		"quality", result.Quality.Rating)

	return result
}

// retainSections drops sections that have no content and a title of 3
// characters or fewer.
func retainSections(sections []core.Section) []core.Section {
	retained := make([]core.Section, 0, len(sections))
	for _, s := range sections {
		if s.HasContent() || len(s.Title) > 3 {
			retained = append(retained, s)
		}
	}
	return retained
}

// buildIndex flattens the structure into the scoreable element
// sequence: title first if present, then each section's header
// followed by its content.
func buildIndex(structure core.DocumentStructure, titlePage int, titleBBox core.BoundingBox) core.SearchIndex {
	var index core.SearchIndex

	if structure.Title != "" {
		index = append(index, core.Element{
			Type:   core.LabelTitle,
			Text:   structure.Title,
			Page:   titlePage,
			Weight: core.WeightForLabel(core.LabelTitle),
			BBox:   titleBBox,
		})
	}

	for _, s := range structure.Sections {
		index = append(index, core.Element{
			Type:         core.LabelSectionHeader,
			Text:         s.Title,
			Page:         s.Page,
			SectionTitle: s.Title,
			Weight:       core.WeightForLabel(core.LabelSectionHeader),
			BBox:         s.BBox,
		})
		index = append(index, s.Content...)
	}

	return index
}
