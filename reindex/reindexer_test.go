package reindex

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/docrank/core"
	"github.com/poiesic/docrank/storage"
	"github.com/poiesic/docrank/storage/badger"
	"github.com/poiesic/docrank/structure"
)

// fakeDetector serves canned detections per source path, with optional
// per-source errors and a call counter for retry assertions.
type fakeDetector struct {
	mu         sync.Mutex
	detections map[string][]core.Detection
	errs       map[string]error
	failures   map[string]int // fail the first N calls per source
	calls      int
}

func (d *fakeDetector) Detect(_ context.Context, source string) ([]core.Detection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++

	if err, ok := d.errs[source]; ok {
		return nil, err
	}
	if d.failures[source] > 0 {
		d.failures[source]--
		return nil, errors.New("transient detector error")
	}
	dets, ok := d.detections[source]
	if !ok {
		return nil, errors.New("unknown source")
	}
	return dets, nil
}

func (d *fakeDetector) Name() string { return "fake" }

func guideDetections() []core.Detection {
	return []core.Detection{
		{Label: core.LabelTitle, Text: "Form Design Guide", Confidence: 0.9, Page: 1,
			BBox: core.BoundingBox{X: 50, Y: 40, Width: 400, Height: 24}},
		{Label: core.LabelSectionHeader, Text: "Create Fillable PDFs", Confidence: 0.85, Page: 3,
			BBox: core.BoundingBox{X: 50, Y: 100, Width: 300, Height: 18}},
		{Label: core.LabelText, Text: "Use the Prepare Form tool to add fields.", Confidence: 0.7, Page: 3,
			BBox: core.BoundingBox{X: 50, Y: 140, Width: 400, Height: 60}},
	}
}

func newTestRepo(t *testing.T) storage.DocumentRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func newTestBuilder(t *testing.T) *structure.Builder {
	t.Helper()
	builder, err := structure.NewBuilder(structure.DefaultConfig(), nil)
	require.NoError(t, err)
	return builder
}

func putStale(t *testing.T, repo storage.DocumentRepository, filename string) {
	t.Helper()
	_, err := repo.PutDocument(context.Background(), &core.StructureDocument{
		Filename: filename,
		Title:    "stale",
	})
	require.NoError(t, err)
}

func testConfig() *Config {
	return &Config{
		ReportInterval: 1,
		MaxRetries:     3,
		RetryDelay:     time.Millisecond,
	}
}

func TestReindexer_EmptyDatabase(t *testing.T) {
	repo := newTestRepo(t)
	detector := &fakeDetector{}

	var buf bytes.Buffer
	r := NewReindexer(repo, detector, newTestBuilder(t), testConfig(), &buf)

	refreshed, skipped, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, refreshed)
	assert.Equal(t, 0, skipped)
	assert.Contains(t, buf.String(), "No documents found")
	assert.Equal(t, 0, detector.calls, "should not run detection on empty database")
}

func TestReindexer_RefreshesStoredStructure(t *testing.T) {
	repo := newTestRepo(t)
	putStale(t, repo, "guide.pdf")

	detector := &fakeDetector{
		detections: map[string][]core.Detection{"guide.pdf": guideDetections()},
	}

	var buf bytes.Buffer
	r := NewReindexer(repo, detector, newTestBuilder(t), testConfig(), &buf)

	refreshed, skipped, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)
	assert.Equal(t, 0, skipped)

	doc, err := repo.GetDocumentByFilename(context.Background(), "guide.pdf")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Form Design Guide", doc.Title, "stored title should be refreshed")
	assert.Equal(t, "fake", doc.Metadata.Detector)
	assert.Equal(t, 3, doc.Metadata.DetectionCount)
	require.Len(t, doc.Structure.Sections, 1)
	assert.Equal(t, "Create Fillable PDFs", doc.Structure.Sections[0].Title)
}

func TestReindexer_SkipsMissingSources(t *testing.T) {
	repo := newTestRepo(t)
	putStale(t, repo, "gone.pdf")
	putStale(t, repo, "guide.pdf")

	detector := &fakeDetector{
		detections: map[string][]core.Detection{"guide.pdf": guideDetections()},
		errs:       map[string]error{"gone.pdf": errors.New("file not found")},
	}

	var buf bytes.Buffer
	r := NewReindexer(repo, detector, newTestBuilder(t), testConfig(), &buf)

	refreshed, skipped, err := r.Run(context.Background())
	require.NoError(t, err, "missing sources should not fail the run")
	assert.Equal(t, 1, refreshed)
	assert.Equal(t, 1, skipped)
	assert.Contains(t, buf.String(), "Skipping gone.pdf")
}

func TestReindexer_RetriesTransientFailures(t *testing.T) {
	repo := newTestRepo(t)
	putStale(t, repo, "guide.pdf")

	detector := &fakeDetector{
		detections: map[string][]core.Detection{"guide.pdf": guideDetections()},
		failures:   map[string]int{"guide.pdf": 2},
	}

	var buf bytes.Buffer
	r := NewReindexer(repo, detector, newTestBuilder(t), testConfig(), &buf)

	refreshed, skipped, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 3, detector.calls, "should retry until detection succeeds")
}

func TestReindexer_ContextCanceled(t *testing.T) {
	repo := newTestRepo(t)
	putStale(t, repo, "guide.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	detector := &fakeDetector{
		detections: map[string][]core.Detection{"guide.pdf": guideDetections()},
	}

	var buf bytes.Buffer
	r := NewReindexer(repo, detector, newTestBuilder(t), testConfig(), &buf)

	_, _, err := r.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReindexer_NilConfigUsesDefaults(t *testing.T) {
	repo := newTestRepo(t)
	detector := &fakeDetector{}

	var buf bytes.Buffer
	r := NewReindexer(repo, detector, newTestBuilder(t), nil, &buf)
	assert.Equal(t, DefaultConfig().MaxRetries, r.config.MaxRetries)
	assert.Equal(t, DefaultConfig().RetryDelay, r.config.RetryDelay)
}

func TestReindexer_ReportsSummary(t *testing.T) {
	repo := newTestRepo(t)
	putStale(t, repo, "guide.pdf")

	detector := &fakeDetector{
		detections: map[string][]core.Detection{"guide.pdf": guideDetections()},
	}

	var buf bytes.Buffer
	r := NewReindexer(repo, detector, newTestBuilder(t), testConfig(), &buf)

	_, _, err := r.Run(context.Background())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Starting reindex of 1 documents")
	assert.Contains(t, output, "Reindex complete. Refreshed 1, skipped 0")
}
