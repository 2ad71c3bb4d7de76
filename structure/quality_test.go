package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/docrank/core"
)

func TestSubScores(t *testing.T) {
	assert.Equal(t, 0.2, structureScore(0))
	assert.Equal(t, 0.6, structureScore(2))
	assert.Equal(t, 0.9, structureScore(3))

	assert.Equal(t, 0.3, contentScore(99))
	assert.Equal(t, 0.6, contentScore(100))
	assert.Equal(t, 0.6, contentScore(499))
	assert.Equal(t, 0.9, contentScore(500))

	assert.Equal(t, 0.0, titleScore(""))
	assert.Equal(t, 0.5, titleScore("Tips"))
	assert.Equal(t, 1.0, titleScore("User Guide"))
}

func TestRatingBuckets(t *testing.T) {
	assert.Equal(t, ratingExcellent, rating(0.8))
	assert.Equal(t, ratingGood, rating(0.6))
	assert.Equal(t, ratingFair, rating(0.4))
	assert.Equal(t, ratingPoor, rating(0.39))
}

func TestAssessQualityOverallIsMean(t *testing.T) {
	structure := core.DocumentStructure{
		Title: "Complete Manual",
		Sections: []core.Section{
			{Title: "One"}, {Title: "Two"}, {Title: "Three"},
		},
	}
	stats := core.TextStatistics{WordCount: 600}

	q := assessQuality(structure, stats)

	assert.InDelta(t, (0.9+0.9+1.0)/3, q.Overall, 1e-9)
	assert.Equal(t, ratingExcellent, q.Rating)
	assert.Empty(t, q.Issues)
}

func TestAssessQualityIssues(t *testing.T) {
	q := assessQuality(core.DocumentStructure{}, core.TextStatistics{WordCount: 10})

	assert.Contains(t, q.Issues, "no document title detected")
	assert.Contains(t, q.Issues, "no sections detected")
	assert.Contains(t, q.Issues, "sparse text content")
}

func TestDeriveStatistics(t *testing.T) {
	structure := core.DocumentStructure{
		AllText: "One two three. Four five six seven.",
		Sections: []core.Section{
			{Title: "A", Content: []core.Element{{Text: "x"}, {Text: "y"}}},
			{Title: "B"},
		},
	}

	stats := deriveStatistics(structure)

	assert.Equal(t, 7, stats.WordCount)
	assert.Equal(t, 2, stats.SentenceCount)
	assert.InDelta(t, 3.5, stats.AvgWordsPerSentence, 1e-9)
	assert.Equal(t, 1, stats.SectionsWithContent)
	assert.InDelta(t, 1.0, stats.AvgContentPerSection, 1e-9)
}
