package storage

import (
	"context"

	"github.com/poiesic/docrank/core"
)

// DocumentRepository provides operations for persisted structure
// documents. Implementations must be thread-safe and support
// concurrent access.
type DocumentRepository interface {
	// PutDocument stores a structure document, replacing any previous
	// version with the same filename. The document's ID is derived
	// from its filename, so re-processing a file overwrites its
	// earlier structure. Returns the document with its ID populated.
	PutDocument(ctx context.Context, doc *core.StructureDocument) (*core.StructureDocument, error)

	// GetDocument retrieves a document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.StructureDocument, error)

	// GetDocumentByFilename retrieves a document by its source filename.
	// Returns ErrNotFound if no document for that filename exists.
	GetDocumentByFilename(ctx context.Context, filename string) (*core.StructureDocument, error)

	// ListDocuments retrieves all stored documents, ordered by filename.
	ListDocuments(ctx context.Context) ([]*core.StructureDocument, error)

	// DeleteDocuments removes documents by their IDs.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
