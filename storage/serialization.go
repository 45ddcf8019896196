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
	"fmt"
	"strings"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/strsim/core"
	"github.com/poiesic/strsim/corpus"
)

// tableFormatVersion is the first byte of every encoded table.
const tableFormatVersion byte = 1

// maxNameLength bounds table names so keys stay small.
const maxNameLength = 256

// ValidateTableName checks that name is usable as a storage key.
func ValidateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name longer than %d bytes", ErrInvalidName, maxNameLength)
	}
	if strings.ContainsAny(name, ":\x00") {
		return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidName, name)
	}
	return nil
}

// MarshalTable serializes a table to bytes.
//
// Layout: version byte, corpus size, token count, then (token, frequency)
// pairs in token order, then the table fingerprint.
func MarshalTable(table *corpus.Table) []byte {
	fingerprint := uint64(table.Fingerprint())
	size := 1 + varint.Int.Size(table.Size()) + varint.Int.Size(table.Len())
	for tok, n := range table.All() {
		size += ord.String.Size(tok) + varint.Int.Size(n)
	}
	size += varint.Uint64.Size(fingerprint)

	buf := make([]byte, size)
	buf[0] = tableFormatVersion
	off := 1
	off += varint.Int.Marshal(table.Size(), buf[off:])
	off += varint.Int.Marshal(table.Len(), buf[off:])
	for tok, n := range table.All() {
		off += ord.String.Marshal(tok, buf[off:])
		off += varint.Int.Marshal(n, buf[off:])
	}
	varint.Uint64.Marshal(fingerprint, buf[off:])
	return buf
}

// UnmarshalTable deserializes a table and verifies its fingerprint.
func UnmarshalTable(data []byte) (*corpus.Table, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w: empty input", ErrSerializationFailed, ErrTruncatedData)
	}
	if data[0] != tableFormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrSerializationFailed, data[0])
	}

	r := reader{data: data, off: 1}
	size := r.int("corpus size")
	count := r.int("token count")
	if r.err == nil && (count < 0 || count > len(data)) {
		r.err = fmt.Errorf("%w: implausible token count %d", ErrSerializationFailed, count)
	}
	var df map[string]int
	if r.err == nil {
		df = make(map[string]int, count)
		for i := 0; i < count && r.err == nil; i++ {
			tok := r.string("token")
			df[tok] = r.int("document frequency")
		}
	}
	fingerprint := r.uint64("fingerprint")
	if r.err != nil {
		return nil, r.err
	}
	if r.off != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrSerializationFailed, len(data)-r.off)
	}

	table, err := corpus.FromCounts(size, df)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if table.Fingerprint() != core.ID(fingerprint) {
		return nil, fmt.Errorf("%w: fingerprint mismatch", ErrSerializationFailed)
	}
	return table, nil
}

// reader decodes fields in sequence and keeps the first error.
type reader struct {
	data []byte
	off  int
	err  error
}

func (r *reader) fail(field string, err error) {
	if r.off >= len(r.data) {
		r.err = fmt.Errorf("%w: %w: reading %s", ErrSerializationFailed, ErrTruncatedData, field)
		return
	}
	r.err = fmt.Errorf("%w: reading %s: %w", ErrSerializationFailed, field, err)
}

func (r *reader) int(field string) int {
	if r.err != nil {
		return 0
	}
	v, n, err := varint.Int.Unmarshal(r.data[r.off:])
	if err != nil {
		r.fail(field, err)
		return 0
	}
	r.off += n
	return v
}

func (r *reader) uint64(field string) uint64 {
	if r.err != nil {
		return 0
	}
	v, n, err := varint.Uint64.Unmarshal(r.data[r.off:])
	if err != nil {
		r.fail(field, err)
		return 0
	}
	r.off += n
	return v
}

func (r *reader) string(field string) string {
	if r.err != nil {
		return ""
	}
	v, n, err := ord.String.Unmarshal(r.data[r.off:])
	if err != nil {
		r.fail(field, err)
		return ""
	}
	r.off += n
	return v
}
