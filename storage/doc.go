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


// Package storage provides the storage abstraction layer for docrank.
//
// This package defines repository interfaces that decouple storage
// implementation from the pipeline. It allows different storage
// backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// Public constructors return interfaces to keep consumers decoupled
// from backend specifics:
//
//	repo, err := badger.NewDocumentRepository(backend)  // returns storage.DocumentRepository
//
// Internal package constructors may return concrete types since
// they're only used within the implementation package.
//
// Structure documents are serialized as JSON: the persisted artifact
// is also the interchange format other tools read, so the on-disk
// bytes follow the same contract as the exported files.
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines. All methods accept
// context.Context for cancellation and timeout support.
package storage
