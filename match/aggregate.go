package match

import (
	"sort"

	"github.com/poiesic/docrank/core"
)

// aggregate blends every candidate's scores, filters by the minimum
// match score, and produces the globally ordered match list plus the
// refined per-match view.
func (m *Matcher) aggregate(document string, tcs []*topicCandidates, stats *Stats) ([]core.Match, []core.RefinedMatch) {
	var matches []core.Match
	var refined []core.RefinedMatch

	for _, tc := range tcs {
		for _, c := range tc.candidates {
			final := m.scorer.Final(c.Traditional, c.AI)
			if final < m.cfg.MinMatchScore {
				stats.FilteredOut++
				continue
			}

			matches = append(matches, core.Match{
				Document:          document,
				Topic:             c.Topic.Phrase,
				SectionTitle:      core.TruncateForDisplay(sectionTitleFor(c.Element)),
				Page:              c.Element.Page,
				ImportanceRank:    c.Topic.Rank,
				Score:             final,
				MatchType:         c.Element.Type,
				Traditional:       c.Traditional,
				AI:                c.AI,
				ElementImportance: c.Element.Weight,
				BBox:              c.Element.BBox,
			})
			refined = append(refined, core.RefinedMatch{
				Document:        document,
				Topic:           c.Topic.Phrase,
				Page:            c.Element.Page,
				ElementType:     c.Element.Type.DisplayName(),
				RefinedText:     c.Element.Text,
				ConfidenceLevel: core.ConfidenceBucket(final),
				AIAssisted:      c.AI > 0,
				Score:           final,
			})
		}
	}

	sortMatches(matches, refined)
	stats.MatchesEmitted += len(matches)
	return matches, refined
}

// sortMatches orders both views together: importance rank ascending,
// then match score descending. The refined view stays aligned with the
// match list.
func sortMatches(matches []core.Match, refined []core.RefinedMatch) {
	idx := make([]int, len(matches))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ma, mb := matches[idx[a]], matches[idx[b]]
		if ma.ImportanceRank != mb.ImportanceRank {
			return ma.ImportanceRank < mb.ImportanceRank
		}
		return ma.Score > mb.Score
	})

	sortedMatches := make([]core.Match, len(matches))
	sortedRefined := make([]core.RefinedMatch, len(refined))
	for pos, i := range idx {
		sortedMatches[pos] = matches[i]
		sortedRefined[pos] = refined[i]
	}
	copy(matches, sortedMatches)
	copy(refined, sortedRefined)
}

// sectionTitleFor picks the display title for a matched element: its
// owning section, or its own text for the document title element.
func sectionTitleFor(el core.Element) string {
	if el.SectionTitle != "" {
		return el.SectionTitle
	}
	return el.Text
}
