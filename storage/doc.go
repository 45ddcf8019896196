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

// Package storage persists frozen document frequency tables.
//
// Scoring never touches storage: a measure is handed a *corpus.Table that
// is already in memory. This package lets a table built from a large corpus
// be saved once and loaded by later processes.
//
// # Architecture
//
//   - TableRepository: named save, load, delete and list of tables
//   - MarshalTable / UnmarshalTable: versioned binary encoding (mus-go)
//   - storage/badger: the BadgerDB implementation
//
// # Usage
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
//	repo, err := badger.NewTableRepository(backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
//	err = repo.SaveTable(ctx, "products", table)
//
// Tests can use badger.NewMemoryTableRepository for an in-memory store.
//
// # Thread Safety
//
// Repository implementations must be safe for concurrent use.
package storage
