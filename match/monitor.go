package match

import "github.com/poiesic/docrank/core"

// MatchMonitor provides hooks to observe a matching pass.
// Implement this interface to track batches, judge calls, and emitted
// matches as they happen. JudgeSucceeded and JudgeFailed may be called
// concurrently from topics within the same batch; implementations must
// synchronize their own state.
type MatchMonitor interface {
	Start(document string, topics []core.Topic)
	TopicScored(topic core.Topic, candidates int)
	BatchStart(batch int, topics []core.Topic)
	BatchDone(batch int)
	JudgeSucceeded(topic core.Topic, score float64)
	JudgeFailed(topic core.Topic, err error)
	Finish(matches []core.Match)
}

// noopMonitor is a no-op implementation of MatchMonitor.
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ []core.Topic)          {}
func (n *noopMonitor) TopicScored(_ core.Topic, _ int)         {}
func (n *noopMonitor) BatchStart(_ int, _ []core.Topic)        {}
func (n *noopMonitor) BatchDone(_ int)                         {}
func (n *noopMonitor) JudgeSucceeded(_ core.Topic, _ float64)  {}
func (n *noopMonitor) JudgeFailed(_ core.Topic, _ error)       {}
func (n *noopMonitor) Finish(_ []core.Match)                   {}
