package reindex

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker emits periodic progress lines while a reindex walks the
// document set. Output goes to a single writer using carriage returns, so
// it is meant for an interactive terminal rather than a log file.
type ProgressTracker struct {
	mu sync.Mutex

	writer         io.Writer
	total          int
	reportInterval int

	current      int
	lastReported int
	startTime    time.Time
	started      bool
}

// NewProgressTracker builds a tracker over total documents that reports at
// most once per reportInterval documents. Nothing is written until Start.
func NewProgressTracker(writer io.Writer, total, reportInterval int) *ProgressTracker {
	return &ProgressTracker{
		writer:         writer,
		total:          total,
		reportInterval: reportInterval,
	}
}

// Start resets counters and records the wall-clock start of the run.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.started = true
	p.current = 0
	p.lastReported = 0
	p.startTime = time.Now()
}

// Update records that current documents have been processed so far. Values
// past total are clamped. A progress line is written only when at least
// reportInterval documents have completed since the last line.
func (p *ProgressTracker) Update(current int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.current = min(current, p.total)

	if p.current-p.lastReported < p.reportInterval {
		return
	}
	p.lastReported = p.current
	p.writeLine()
}

// Finish forces the counter to total, writes a final progress line, and
// terminates it with a newline so subsequent output starts on a fresh line.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.current = p.total
	p.writeLine()
	fmt.Fprintln(p.writer)
}

// Elapsed reports the wall-clock time since Start. Zero before Start.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}
	return time.Since(p.startTime)
}

// writeLine renders one progress line. Caller holds the lock.
func (p *ProgressTracker) writeLine() {
	var pct float64
	if p.total > 0 {
		pct = 100 * float64(p.current) / float64(p.total)
	}
	rate := float64(p.current) / time.Since(p.startTime).Seconds()

	fmt.Fprintf(p.writer, "\rProgress: %d/%d (%.1f%%) - %.1f documents/s",
		p.current, p.total, pct, rate)
}
