package ai

import "context"

// MaxRankedTopics caps the number of phrases RankTopics may return.
const MaxRankedTopics = 7

// RelevanceJudge scores, summarizes, and ranks text for the matching
// engine. Implementations must be thread-safe for concurrent use, must
// fail fast on timeout rather than hang, and should be idempotent for
// identical inputs (modulo model non-determinism, which callers
// tolerate).
type RelevanceJudge interface {
	// Judge returns a relevance score in [0,1] for a topic against an
	// element's text. An error means the caller must fall back to a
	// zero score; it never aborts a batch.
	Judge(ctx context.Context, topic, text string) (float64, error)

	// Summarize produces a short free-form summary of text. The label
	// names what is being summarized (e.g. a filename or title) and
	// may be empty.
	Summarize(ctx context.Context, text, label string) (string, error)

	// RankTopics derives an ordered list of short topic phrases from
	// document summaries, most important first, tailored to the given
	// persona and task. At most MaxRankedTopics phrases are returned.
	RankTopics(ctx context.Context, summaries []string, persona, task string) ([]string, error)
}

// JudgeProvider manages the lifecycle of a RelevanceJudge.
type JudgeProvider interface {
	// Judge returns the relevance judge service.
	// The returned judge is safe for concurrent use.
	Judge() RelevanceJudge

	// Close releases resources held by the provider.
	// After Close is called, the provider and its judge should not be used.
	Close() error
}
