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

package corpus

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/strsim/core"
)

// Table maps each token to the number of documents containing it.
type Table struct {
	size int
	df   map[string]int
}

// Build counts, for every distinct token, how many documents contain it.
// A token repeated within one document is counted once for that document.
// Empty documents count towards the corpus size.
func Build(docs [][]string) (*Table, error) {
	if docs == nil {
		return nil, fmt.Errorf("%w: %w: corpus", core.ErrInvalidType, core.ErrNilInput)
	}
	df := make(map[string]int)
	seen := make(map[string]struct{})
	for _, doc := range docs {
		clear(seen)
		for _, tok := range doc {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	return &Table{size: len(docs), df: df}, nil
}

// FromCounts reconstructs a table from previously computed statistics.
// Every frequency must be between 1 and size.
func FromCounts(size int, df map[string]int) (*Table, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: corpus size must be non-negative, got %d", core.ErrInvalidValue, size)
	}
	copied := make(map[string]int, len(df))
	for tok, n := range df {
		if n < 1 || n > size {
			return nil, fmt.Errorf("%w: document frequency of %q is %d, corpus size %d", core.ErrInvalidValue, tok, n, size)
		}
		copied[tok] = n
	}
	return &Table{size: size, df: copied}, nil
}

// Size returns the number of documents the table was built from.
func (t *Table) Size() int {
	return t.size
}

// Len returns the number of distinct tokens.
func (t *Table) Len() int {
	return len(t.df)
}

// DocumentFrequency returns how many documents contain tok, 0 if none.
func (t *Table) DocumentFrequency(tok string) int {
	return t.df[tok]
}

// Contains reports whether tok occurs in at least one document.
func (t *Table) Contains(tok string) bool {
	_, ok := t.df[tok]
	return ok
}

// InverseRatio returns Size()/DocumentFrequency(tok). The second result is
// false for tokens that never occur.
func (t *Table) InverseRatio(tok string) (float64, bool) {
	n, ok := t.df[tok]
	if !ok {
		return 0, false
	}
	return float64(t.size) / float64(n), true
}

// IDF returns ln(Size()/DocumentFrequency(tok)), or 0 for unseen tokens.
func (t *Table) IDF(tok string) float64 {
	ratio, ok := t.InverseRatio(tok)
	if !ok {
		return 0
	}
	return math.Log(ratio)
}

// All iterates over tokens and their document frequencies in token order.
func (t *Table) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, tok := range slices.Sorted(maps.Keys(t.df)) {
			if !yield(tok, t.df[tok]) {
				return
			}
		}
	}
}

// Fingerprint identifies the table's contents. Tables with equal statistics
// have equal fingerprints regardless of how they were built. Tokens are
// length-prefixed, so no token content can imitate a boundary.
func (t *Table) Fingerprint() core.ID {
	size := varint.Int.Size(t.size)
	for tok, n := range t.All() {
		size += ord.String.Size(tok) + varint.Int.Size(n)
	}
	buf := make([]byte, size)
	off := varint.Int.Marshal(t.size, buf)
	for tok, n := range t.All() {
		off += ord.String.Marshal(tok, buf[off:])
		off += varint.Int.Marshal(n, buf[off:])
	}
	return core.IDFromContent(string(buf))
}
