package structure

import "github.com/poiesic/docrank/core"

// deriveStatistics computes text statistics over the accumulated
// document text and the retained sections.
func deriveStatistics(structure core.DocumentStructure) core.TextStatistics {
	stats := core.TextStatistics{
		WordCount:     countWords(structure.AllText),
		SentenceCount: len(splitSentences(structure.AllText)),
	}
	if stats.SentenceCount > 0 {
		stats.AvgWordsPerSentence = float64(stats.WordCount) / float64(stats.SentenceCount)
	}

	contentItems := 0
	for _, s := range structure.Sections {
		if s.HasContent() {
			stats.SectionsWithContent++
		}
		contentItems += len(s.Content)
	}
	if len(structure.Sections) > 0 {
		stats.AvgContentPerSection = float64(contentItems) / float64(len(structure.Sections))
	}

	return stats
}
