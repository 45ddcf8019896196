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

package strsim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/strsim/corpus"
	"github.com/poiesic/strsim/storage"
	"github.com/poiesic/strsim/storage/badger"
)

// Store persists named corpus tables for the TF-IDF measures.
type Store struct {
	backend *badger.Backend
	tables  *badger.TableRepository
	logger  *slog.Logger
}

type storeConfig struct {
	inMemory bool
	logger   *slog.Logger
}

// StoreOption configures OpenStore.
type StoreOption func(*storeConfig)

// InMemory keeps the store in memory. The path passed to OpenStore is ignored.
func InMemory() StoreOption {
	return func(c *storeConfig) {
		c.inMemory = true
	}
}

// WithLogger sets the logger used by the store and its backend.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(c *storeConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// OpenStore opens or creates a table store at filePath.
func OpenStore(filePath string, opts ...StoreOption) (*Store, error) {
	cfg := storeConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	backend, err := badger.OpenBackend(filePath, cfg.inMemory, badger.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	tables, err := badger.NewTableRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return &Store{
		backend: backend,
		tables:  tables,
		logger:  cfg.logger,
	}, nil
}

// Close releases the table repository and closes the backend.
func (s *Store) Close() error {
	var errs []error
	if err := s.tables.Close(); err != nil {
		s.logger.Error("error closing table repository", "err", err)
		errs = append(errs, err)
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend", "err", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Tables exposes the underlying repository.
func (s *Store) Tables() storage.TableRepository {
	return s.tables
}

// BuildTable builds a corpus table from tokenized documents and saves it under name.
func (s *Store) BuildTable(ctx context.Context, name string, docs [][]string) (*corpus.Table, error) {
	table, err := corpus.Build(docs)
	if err != nil {
		return nil, err
	}
	if err := s.tables.SaveTable(ctx, name, table); err != nil {
		return nil, fmt.Errorf("saving table %q: %w", name, err)
	}
	s.logger.Info("built corpus table", "name", name, "documents", table.Size(), "vocabulary", table.Len())
	return table, nil
}

// BuildTableFromText tokenizes each text with Tokenize, stems the tokens when
// stemmer is non-nil, and builds a table from the result.
func (s *Store) BuildTableFromText(ctx context.Context, name string, texts []string, stemmer *Stemmer) (*corpus.Table, error) {
	docs := make([][]string, len(texts))
	for i, text := range texts {
		docs[i] = Tokenize(text)
		if stemmer != nil {
			docs[i] = stemmer.Stem(docs[i])
		}
	}
	return s.BuildTable(ctx, name, docs)
}

// Table loads a previously saved table.
func (s *Store) Table(ctx context.Context, name string) (*corpus.Table, error) {
	return s.tables.LoadTable(ctx, name)
}

// NewMeasure builds the named measure with cfg.Corpus replaced by the stored table.
func (s *Store) NewMeasure(ctx context.Context, measure, table string, cfg MeasureConfig) (Measure, error) {
	t, err := s.Table(ctx, table)
	if err != nil {
		return nil, err
	}
	cfg.Corpus = t
	return NewMeasure(measure, cfg)
}
