package pipeline

import (
	"sort"
	"time"

	"github.com/poiesic/docrank/core"
	"github.com/poiesic/docrank/match"
)

// Statistics aggregates what happened across the whole run.
type Statistics struct {
	DocumentsProcessed int         `json:"documents_processed"`
	DocumentsFailed    int         `json:"documents_failed"`
	SectionsIndexed    int         `json:"sections_indexed"`
	Matching           match.Stats `json:"matching"`
}

// Metadata describes the run that produced an Output.
type Metadata struct {
	InputDocuments        []string   `json:"input_documents"`
	Persona               string     `json:"persona"`
	JobToBeDone           string     `json:"job_to_be_done"`
	ProcessingTimeSeconds float64    `json:"processing_time_seconds"`
	RankedTopics          []string   `json:"ranked_topics"`
	Statistics            Statistics `json:"statistics"`
}

// Output is the final document a run produces: ranked matches plus the
// refined per-match analysis.
type Output struct {
	Metadata           Metadata            `json:"metadata"`
	ExtractedSections  []core.Match        `json:"extracted_sections"`
	SubsectionAnalysis []core.RefinedMatch `json:"subsection_analysis"`
}

// assembleOutput folds per-document match results into the final
// output, globally re-sorted by importance rank then score.
func assembleOutput(req *Request, topics []core.Topic, results []*match.Result, stats Statistics, elapsed time.Duration) *Output {
	out := &Output{
		Metadata: Metadata{
			InputDocuments:        req.Documents,
			Persona:               req.Persona,
			JobToBeDone:           req.Task,
			ProcessingTimeSeconds: elapsed.Seconds(),
			RankedTopics:          make([]string, len(topics)),
		},
		ExtractedSections:  []core.Match{},
		SubsectionAnalysis: []core.RefinedMatch{},
	}
	for i, topic := range topics {
		out.Metadata.RankedTopics[i] = topic.Phrase
	}

	for _, r := range results {
		if r == nil {
			continue
		}
		out.ExtractedSections = append(out.ExtractedSections, r.Matches...)
		out.SubsectionAnalysis = append(out.SubsectionAnalysis, r.Refined...)
		stats.Matching.Merge(r.Stats)
	}
	sortOutput(out)

	out.Metadata.Statistics = stats
	return out
}

// sortOutput re-applies the global ordering across documents: rank
// ascending, then score descending.
func sortOutput(out *Output) {
	type pair struct {
		m core.Match
		r core.RefinedMatch
	}
	pairs := make([]pair, len(out.ExtractedSections))
	for i := range out.ExtractedSections {
		pairs[i] = pair{out.ExtractedSections[i], out.SubsectionAnalysis[i]}
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].m.ImportanceRank != pairs[b].m.ImportanceRank {
			return pairs[a].m.ImportanceRank < pairs[b].m.ImportanceRank
		}
		return pairs[a].m.Score > pairs[b].m.Score
	})

	for i, p := range pairs {
		out.ExtractedSections[i] = p.m
		out.SubsectionAnalysis[i] = p.r
	}
}
