// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"encoding/binary"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/docrank/core"
	"github.com/poiesic/docrank/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(backend *Backend) (storage.DocumentRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &DocumentRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is owned by the
// caller and stays open.
func (r *DocumentRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *DocumentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutDocument stores a structure document keyed by its content-derived
// ID, replacing any previous version for the same filename.
func (r *DocumentRepository) PutDocument(ctx context.Context, doc *core.StructureDocument) (*core.StructureDocument, error) {
	if doc.Filename == "" {
		return nil, storage.ErrEmptyFilename
	}

	doc.Id = core.IDFromContent(doc.Filename)
	if doc.Metadata.GeneratedAt.IsZero() {
		doc.Metadata.GeneratedAt = time.Now().UTC()
	}

	value, err := storage.MarshalStructureDocument(doc)
	if err != nil {
		return nil, err
	}

	err = r.backend.Update(func(tx *badger.Txn) error {
		if err := tx.Set(makeDocumentKey(doc.Id), value); err != nil {
			return err
		}
		return tx.Set(makeDocumentNameKey(doc.Filename), marshalID(doc.Id))
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// GetDocument retrieves a document by ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id core.ID) (*core.StructureDocument, error) {
	var doc *core.StructureDocument
	err := r.backend.View(func(tx *badger.Txn) error {
		var err error
		doc, err = readDocument(tx, makeDocumentKey(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, storage.ErrNotFound
	}
	return doc, nil
}

// GetDocumentByFilename retrieves a document via the filename index.
func (r *DocumentRepository) GetDocumentByFilename(ctx context.Context, filename string) (*core.StructureDocument, error) {
	var doc *core.StructureDocument
	err := r.backend.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDocumentNameKey(filename))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		var id core.ID
		if err := item.Value(func(val []byte) error {
			id, err = unmarshalID(val)
			return err
		}); err != nil {
			return err
		}

		doc, err = readDocument(tx, makeDocumentKey(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, storage.ErrNotFound
	}
	return doc, nil
}

// ListDocuments retrieves all stored documents, ordered by filename.
func (r *DocumentRepository) ListDocuments(ctx context.Context) ([]*core.StructureDocument, error) {
	var docs []*core.StructureDocument

	err := r.backend.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *core.StructureDocument
			err := iter.Item().Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalStructureDocument(val)
				return err
			})
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(docs, func(a, b *core.StructureDocument) int {
		return strings.Compare(a.Filename, b.Filename)
	})
	return docs, nil
}

// DeleteDocuments removes documents and their filename index entries.
func (r *DocumentRepository) DeleteDocuments(ctx context.Context, ids ...core.ID) error {
	return r.backend.Update(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeDocumentKey(id)
			doc, err := readDocument(tx, key)
			if err != nil {
				return err
			}
			if doc == nil {
				return storage.ErrNotFound
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
			if err := tx.Delete(makeDocumentNameKey(doc.Filename)); err != nil {
				return err
			}
		}
		return nil
	})
}

// readDocument reads and decodes one document. Returns (nil, nil) if
// the key doesn't exist.
func readDocument(tx *badger.Txn, key []byte) (*core.StructureDocument, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc *core.StructureDocument
	err = item.Value(func(val []byte) error {
		var err error
		doc, err = storage.UnmarshalStructureDocument(val)
		return err
	})
	return doc, err
}

// marshalID serializes an ID to its fixed 8-byte form.
func marshalID(id core.ID) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(id))
	return buf
}

// unmarshalID deserializes an ID from its fixed 8-byte form.
func unmarshalID(data []byte) (core.ID, error) {
	if len(data) != 8 {
		return 0, storage.ErrSerializationFailed
	}
	return core.ID(binary.BigEndian.Uint64(data)), nil
}
