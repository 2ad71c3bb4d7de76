package pipeline

import (
	"context"

	"github.com/poiesic/docrank/ai"
	"github.com/poiesic/docrank/core"
)

// deriveTopics produces the ranked topic list for a run: the caller's
// explicit topics if given, otherwise judge-ranked topics from the
// document summaries, otherwise the leading section titles. The result
// is capped at ai.MaxRankedTopics phrases.
func (p *Pipeline) deriveTopics(ctx context.Context, req *Request, docs []*core.StructureDocument) []core.Topic {
	phrases := req.Topics

	if len(phrases) == 0 && p.judge != nil {
		phrases = p.rankWithJudge(ctx, req, docs)
	}
	if len(phrases) == 0 {
		phrases = leadingSectionTitles(docs)
	}

	if len(phrases) > ai.MaxRankedTopics {
		phrases = phrases[:ai.MaxRankedTopics]
	}

	topics := make([]core.Topic, len(phrases))
	for i, phrase := range phrases {
		topics[i] = core.Topic{Phrase: phrase, Rank: i + 1}
	}
	return topics
}

// rankWithJudge summarizes each document and asks the judge for ranked
// topic phrases. Any judge failure falls through to the section-title
// fallback.
func (p *Pipeline) rankWithJudge(ctx context.Context, req *Request, docs []*core.StructureDocument) []string {
	summaries := make([]string, 0, len(docs))
	for _, doc := range docs {
		label := doc.Title
		if label == "" {
			label = doc.Filename
		}

		summary, err := p.judge.Summarize(ctx, doc.Structure.AllText, label)
		if err != nil {
			p.logger.Warn("summarization failed, using title", "document", doc.Filename, "error", err)
			summary = label
		}
		summaries = append(summaries, summary)
	}

	phrases, err := p.judge.RankTopics(ctx, summaries, req.Persona, req.Task)
	if err != nil {
		p.logger.Warn("topic ranking failed, falling back to section titles", "error", err)
		return nil
	}
	return phrases
}

// leadingSectionTitles collects distinct section titles in document
// order as a topic fallback when no judge is available.
func leadingSectionTitles(docs []*core.StructureDocument) []string {
	seen := make(map[string]bool)
	var titles []string
	for _, doc := range docs {
		for _, section := range doc.Structure.Sections {
			if seen[section.Title] {
				continue
			}
			seen[section.Title] = true
			titles = append(titles, section.Title)
			if len(titles) == ai.MaxRankedTopics {
				return titles
			}
		}
	}
	return titles
}
