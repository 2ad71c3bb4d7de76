package match

// Stats counts what happened during a matching pass. A Stats value is
// owned by a single pass; cross-document aggregation happens by
// merging the per-document values.
type Stats struct {
	TopicsProcessed  int `json:"topics_processed"`
	CandidatesScored int `json:"candidates_scored"`
	JudgeCalls       int `json:"judge_calls"`
	JudgeFailures    int `json:"judge_failures"`
	MatchesEmitted   int `json:"matches_emitted"`
	FilteredOut      int `json:"filtered_out"`
}

// Merge adds another pass's counters into s.
func (s *Stats) Merge(other Stats) {
	s.TopicsProcessed += other.TopicsProcessed
	s.CandidatesScored += other.CandidatesScored
	s.JudgeCalls += other.JudgeCalls
	s.JudgeFailures += other.JudgeFailures
	s.MatchesEmitted += other.MatchesEmitted
	s.FilteredOut += other.FilteredOut
}
