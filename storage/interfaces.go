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

package storage

import (
	"context"

	"github.com/poiesic/strsim/core"
	"github.com/poiesic/strsim/corpus"
)

// TableInfo summarises a stored table without loading it into a measure.
type TableInfo struct {
	Name        string
	Size        int     // number of documents
	Vocabulary  int     // number of distinct tokens
	Fingerprint core.ID // content identifier of the statistics
	Revision    uint64  // increases every time a table is saved
}

// TableRepository stores document frequency tables by name.
type TableRepository interface {
	// SaveTable stores table under name, replacing any previous table.
	SaveTable(ctx context.Context, name string, table *corpus.Table) error

	// LoadTable retrieves a table.
	// Returns ErrNotFound if no table has that name.
	LoadTable(ctx context.Context, name string) (*corpus.Table, error)

	// TableInfo returns the summary of a stored table.
	// Returns ErrNotFound if no table has that name.
	TableInfo(ctx context.Context, name string) (*TableInfo, error)

	// DeleteTable removes a table.
	// Returns ErrNotFound if no table has that name.
	DeleteTable(ctx context.Context, name string) error

	// ListTables returns summaries of all stored tables ordered by name.
	ListTables(ctx context.Context) ([]TableInfo, error)

	// Close releases repository resources. It does not close the backend.
	Close() error
}
