package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/finsolve/finsight/core"
	"github.com/finsolve/finsight/storage"
)

// ChunkRegistry implements storage.ChunkRegistry for BadgerDB.
type ChunkRegistry struct {
	backend *Backend
}

var _ storage.ChunkRegistry = (*ChunkRegistry)(nil)

// NewChunkRegistry creates a new ChunkRegistry.
func NewChunkRegistry(backend *Backend) *ChunkRegistry {
	return &ChunkRegistry{backend: backend}
}

// Close is a no-op; the registry holds no resources beyond the backend.
func (r *ChunkRegistry) Close() error {
	return nil
}

// UpsertChunk writes a provenance record keyed by chunk ID.
// Writing the same chunk ID again replaces the record.
func (r *ChunkRegistry) UpsertChunk(ctx context.Context, record *core.ChunkRecord) error {
	if err := core.ValidateChunkRecord(record); err != nil {
		return err
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeChunkRecordKey(record.ChunkID)
		if err := tx.Set(key, storage.MarshalChunkRecord(record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetChunk retrieves a provenance record by chunk ID.
func (r *ChunkRegistry) GetChunk(ctx context.Context, chunkID string) (*core.ChunkRecord, error) {
	var record *core.ChunkRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChunkRecordKey(chunkID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalChunkRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListChunks returns every provenance record in the registry.
func (r *ChunkRegistry) ListChunks(ctx context.Context) ([]*core.ChunkRecord, error) {
	var records []*core.ChunkRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.ChunkRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalChunkRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return records, nil
}
