package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/strsim/core"
	"github.com/poiesic/strsim/corpus"
	"github.com/poiesic/strsim/storage"
)

// TableRepository implements storage.TableRepository for BadgerDB.
type TableRepository struct {
	backend *Backend
	revSeq  *badger.Sequence
}

var _ storage.TableRepository = (*TableRepository)(nil)

// NewTableRepository creates a new TableRepository on an open backend.
func NewTableRepository(backend *Backend) (*TableRepository, error) {
	revSeq, err := backend.GetSequence(tableRevisionSeq)
	if err != nil {
		return nil, err
	}

	return &TableRepository{
		backend: backend,
		revSeq:  revSeq,
	}, nil
}

// Close releases the revision sequence.
func (r *TableRepository) Close() error {
	return r.revSeq.Release()
}

func (r *TableRepository) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return nil
}

// SaveTable stores table under name, replacing any previous table.
func (r *TableRepository) SaveTable(ctx context.Context, name string, table *corpus.Table) error {
	if err := r.ready(ctx); err != nil {
		return err
	}
	if err := storage.ValidateTableName(name); err != nil {
		return err
	}
	if table == nil {
		return fmt.Errorf("%w: %w: table", core.ErrInvalidType, core.ErrNilInput)
	}

	next, err := r.revSeq.Next()
	if err != nil {
		return err
	}
	revision := next + 1
	revBuf := make([]byte, varint.Uint64.Size(revision))
	varint.Uint64.Marshal(revision, revBuf)
	value := storage.MarshalTable(table)

	err = retryWithBackoff(ctx, func() error {
		return r.backend.WithTx(func(tx *badger.Txn) error {
			if err := tx.Set(makeTableKey(name), value); err != nil {
				return err
			}
			if err := tx.Set(makeTableRevisionKey(name), revBuf); err != nil {
				return err
			}
			return tx.Commit()
		}, true)
	}, isConflict, defaultMaxAttempts, defaultBaseDelay)
	if err != nil {
		return err
	}

	r.backend.logger.Debug("saved table", "name", name, "documents", table.Size(), "tokens", table.Len(), "revision", revision)
	return nil
}

// LoadTable retrieves a table by name.
func (r *TableRepository) LoadTable(ctx context.Context, name string) (*corpus.Table, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	var table *corpus.Table
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		table, err = readTable(tx, name)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// TableInfo returns the summary of a stored table.
func (r *TableRepository) TableInfo(ctx context.Context, name string) (*storage.TableInfo, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	var info *storage.TableInfo
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		table, err := readTable(tx, name)
		if err != nil {
			return err
		}
		info, err = describe(tx, name, table)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// DeleteTable removes a table by name.
func (r *TableRepository) DeleteTable(ctx context.Context, name string) error {
	if err := r.ready(ctx); err != nil {
		return err
	}
	return retryWithBackoff(ctx, func() error {
		return r.backend.WithTx(func(tx *badger.Txn) error {
			key := makeTableKey(name)
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("%w: %s", storage.ErrNotFound, name)
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
			if err := tx.Delete(makeTableRevisionKey(name)); err != nil {
				return err
			}
			return tx.Commit()
		}, true)
	}, isConflict, defaultMaxAttempts, defaultBaseDelay)
}

// ListTables returns summaries of all stored tables ordered by name.
func (r *TableRepository) ListTables(ctx context.Context) ([]storage.TableInfo, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	var infos []storage.TableInfo
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = tableKeyPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := iter.Item()
			name := tableNameFromKey(item.Key())

			var table *corpus.Table
			err := item.Value(func(val []byte) error {
				var err error
				table, err = storage.UnmarshalTable(val)
				return err
			})
			if err != nil {
				return fmt.Errorf("table %s: %w", name, err)
			}
			info, err := describe(tx, name, table)
			if err != nil {
				return err
			}
			infos = append(infos, *info)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return infos, nil
}

func readTable(tx *badger.Txn, name string) (*corpus.Table, error) {
	item, err := tx.Get(makeTableKey(name))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, name)
		}
		return nil, err
	}

	var table *corpus.Table
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		table, unmarshalErr = storage.UnmarshalTable(val)
		return unmarshalErr
	})
	return table, err
}

func describe(tx *badger.Txn, name string, table *corpus.Table) (*storage.TableInfo, error) {
	info := &storage.TableInfo{
		Name:        name,
		Size:        table.Size(),
		Vocabulary:  table.Len(),
		Fingerprint: table.Fingerprint(),
	}

	item, err := tx.Get(makeTableRevisionKey(name))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return info, nil
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		rev, _, err := varint.Uint64.Unmarshal(val)
		if err != nil {
			return fmt.Errorf("%w: revision of %s: %w", storage.ErrSerializationFailed, name, err)
		}
		info.Revision = rev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}
