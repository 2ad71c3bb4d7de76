package structure

import "github.com/poiesic/docrank/core"

// Quality rating buckets, by overall score.
const (
	ratingExcellent = "excellent"
	ratingGood      = "good"
	ratingFair      = "fair"
	ratingPoor      = "poor"
)

// assessQuality scores how well assembly went: independent sub-scores
// for structure, content volume, and title presence, averaged into an
// overall rating.
func assessQuality(structure core.DocumentStructure, stats core.TextStatistics) core.QualityAssessment {
	q := core.QualityAssessment{
		StructureScore: structureScore(len(structure.Sections)),
		ContentScore:   contentScore(stats.WordCount),
		TitleScore:     titleScore(structure.Title),
	}
	q.Overall = (q.StructureScore + q.ContentScore + q.TitleScore) / 3
	q.Rating = rating(q.Overall)

	if structure.Title == "" {
		q.Issues = append(q.Issues, "no document title detected")
	}
	if len(structure.Sections) == 0 {
		q.Issues = append(q.Issues, "no sections detected")
	}
	if stats.WordCount < 100 {
		q.Issues = append(q.Issues, "sparse text content")
	}

	return q
}

func structureScore(sections int) float64 {
	switch {
	case sections == 0:
		return 0.2
	case sections < 3:
		return 0.6
	default:
		return 0.9
	}
}

func contentScore(words int) float64 {
	switch {
	case words < 100:
		return 0.3
	case words < 500:
		return 0.6
	default:
		return 0.9
	}
}

func titleScore(title string) float64 {
	switch {
	case title == "":
		return 0
	case len(title) < 5:
		return 0.5
	default:
		return 1.0
	}
}

func rating(overall float64) string {
	switch {
	case overall >= 0.8:
		return ratingExcellent
	case overall >= 0.6:
		return ratingGood
	case overall >= 0.4:
		return ratingFair
	default:
		return ratingPoor
	}
}
