package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/docrank/core"
	"github.com/poiesic/docrank/storage"
)

func newTestRepo(t *testing.T) storage.DocumentRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func sampleDocument(filename string) *core.StructureDocument {
	return &core.StructureDocument{
		Filename: filename,
		Title:    "Form Design Guide",
		Structure: core.DocumentStructure{
			Title: "Form Design Guide",
			Sections: []core.Section{
				{Title: "Create Fillable PDFs", Page: 3, Index: 1},
			},
		},
		SearchIndex: core.SearchIndex{
			{Type: core.LabelTitle, Text: "Form Design Guide", Page: 1, Weight: 1.0},
		},
	}
}

func TestDocumentPutAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.PutDocument(ctx, sampleDocument("guide.pdf"))
	if err != nil {
		t.Fatalf("Failed to put document: %v", err)
	}
	if stored.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if stored.Metadata.GeneratedAt.IsZero() {
		t.Fatal("Expected GeneratedAt to be set")
	}

	retrieved, err := repo.GetDocument(ctx, stored.Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	if retrieved.Filename != "guide.pdf" {
		t.Fatalf("Expected 'guide.pdf', got '%s'", retrieved.Filename)
	}
	if len(retrieved.Structure.Sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(retrieved.Structure.Sections))
	}
	if len(retrieved.SearchIndex) != 1 {
		t.Fatalf("Expected 1 index element, got %d", len(retrieved.SearchIndex))
	}
}

func TestDocumentGetByFilename(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.PutDocument(ctx, sampleDocument("guide.pdf")); err != nil {
		t.Fatalf("Failed to put document: %v", err)
	}

	retrieved, err := repo.GetDocumentByFilename(ctx, "guide.pdf")
	if err != nil {
		t.Fatalf("Failed to get document by filename: %v", err)
	}
	if retrieved.Title != "Form Design Guide" {
		t.Fatalf("Unexpected title '%s'", retrieved.Title)
	}

	if _, err := repo.GetDocumentByFilename(ctx, "missing.pdf"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestDocumentPutReplacesSameFilename(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.PutDocument(ctx, sampleDocument("guide.pdf"))
	if err != nil {
		t.Fatalf("Failed to put document: %v", err)
	}

	updated := sampleDocument("guide.pdf")
	updated.Title = "Form Design Guide v2"
	second, err := repo.PutDocument(ctx, updated)
	if err != nil {
		t.Fatalf("Failed to replace document: %v", err)
	}

	if first.Id != second.Id {
		t.Fatalf("Expected stable ID for same filename, got %d and %d", first.Id, second.Id)
	}

	docs, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(docs))
	}
	if docs[0].Title != "Form Design Guide v2" {
		t.Fatalf("Expected replaced title, got '%s'", docs[0].Title)
	}
}

func TestDocumentList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"zeta.pdf", "alpha.pdf", "mid.pdf"} {
		if _, err := repo.PutDocument(ctx, sampleDocument(name)); err != nil {
			t.Fatalf("Failed to put %s: %v", name, err)
		}
	}

	docs, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("Expected 3 documents, got %d", len(docs))
	}
	want := []string{"alpha.pdf", "mid.pdf", "zeta.pdf"}
	for i, name := range want {
		if docs[i].Filename != name {
			t.Fatalf("Expected %s at position %d, got %s", name, i, docs[i].Filename)
		}
	}
}

func TestDocumentDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.PutDocument(ctx, sampleDocument("guide.pdf"))
	if err != nil {
		t.Fatalf("Failed to put document: %v", err)
	}

	if err := repo.DeleteDocuments(ctx, stored.Id); err != nil {
		t.Fatalf("Failed to delete document: %v", err)
	}

	if _, err := repo.GetDocument(ctx, stored.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
	if _, err := repo.GetDocumentByFilename(ctx, "guide.pdf"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected filename index removal, got %v", err)
	}

	if err := repo.DeleteDocuments(ctx, stored.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for double delete, got %v", err)
	}
}

func TestDocumentEmptyFilenameRejected(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.PutDocument(context.Background(), &core.StructureDocument{})
	if !errors.Is(err, storage.ErrEmptyFilename) {
		t.Fatalf("Expected ErrEmptyFilename, got %v", err)
	}
}
