package reindex

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressTrackerLifecycle(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 10)

	tracker.Start()
	require.True(t, tracker.started)

	tracker.Update(25)
	tracker.Update(50)
	tracker.Finish()

	assert.Greater(t, tracker.Elapsed(), time.Duration(0))

	out := buf.String()
	assert.Contains(t, out, "100/100", "finish should force counter to total")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "\n", "finish should end with a newline")
	assert.Contains(t, out, "documents/s")
}

func TestProgressTrackerClampsAtTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 10)

	tracker.Start()
	tracker.Update(150)

	assert.Contains(t, buf.String(), "100/100")
	assert.NotContains(t, buf.String(), "150/100")
}

func TestProgressTrackerZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 0, 10)

	tracker.Start()
	tracker.Finish()

	assert.Contains(t, buf.String(), "0/0")
}

func TestProgressTrackerSilentBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 10)

	tracker.Update(10)
	tracker.Finish()

	assert.Empty(t, buf.String())
	assert.Zero(t, tracker.Elapsed())
}

func TestProgressTrackerReportInterval(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 1000, 100)

	tracker.Start()

	steps := []struct {
		update int
		emits  bool
	}{
		{50, false},  // below interval
		{100, true},  // exactly one interval past last report
		{150, false}, // only 50 since last report
		{250, true},  // 150 since last report
	}
	for _, step := range steps {
		buf.Reset()
		tracker.Update(step.update)
		if step.emits {
			assert.NotEmpty(t, buf.String(), "Update(%d) should report", step.update)
		} else {
			assert.Empty(t, buf.String(), "Update(%d) should stay quiet", step.update)
		}
	}
}

func TestProgressTrackerLineFormat(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 5000, 1000)

	tracker.Start()
	tracker.Update(2500)
	time.Sleep(10 * time.Millisecond)
	tracker.Update(5000)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\r")
	require.NotEmpty(t, lines)

	last := lines[len(lines)-1]
	assert.Contains(t, last, "5000/5000")
	assert.Contains(t, last, "%")
	assert.Contains(t, last, "documents/s")
}
