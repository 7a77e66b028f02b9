package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/finsolve/finsight/core"
	"github.com/finsolve/finsight/storage"
)

// ChatLog implements storage.ChatLog for BadgerDB.
// Entries are append-only; there is no update or delete path.
type ChatLog struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ChatLog = (*ChatLog)(nil)

// NewChatLog creates a new ChatLog.
func NewChatLog(backend *Backend) (*ChatLog, error) {
	idSeq, err := backend.GetSequence(chatLogIDSeq)
	if err != nil {
		return nil, err
	}

	return &ChatLog{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (l *ChatLog) Close() error {
	return l.idSeq.Release()
}

// AppendEntry inserts a log entry with a sequence-assigned monotonic ID.
func (l *ChatLog) AppendEntry(ctx context.Context, entry *core.ChatLogEntry) (*core.ChatLogEntry, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := core.ValidateChatLogEntry(entry); err != nil {
		return nil, err
	}

	err := l.backend.WithTx(func(tx *badger.Txn) error {
		nextID, err := l.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = l.idSeq.Next()
			if err != nil {
				return err
			}
		}
		entry.Id = core.ID(nextID)

		key := makeChatLogKey(entry.Id)
		if err := tx.Set(key, storage.MarshalChatLogEntry(entry)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// GetEntry retrieves a log entry by ID.
func (l *ChatLog) GetEntry(ctx context.Context, id core.ID) (*core.ChatLogEntry, error) {
	var entry *core.ChatLogEntry

	err := l.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChatLogKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = storage.UnmarshalChatLogEntry(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListEntries returns up to limit entries, most recent first.
func (l *ChatLog) ListEntries(ctx context.Context, limit int) ([]*core.ChatLogEntry, error) {
	var entries []*core.ChatLogEntry

	err := l.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chatLogPrefix + ":")
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the highest possible ID so reverse iteration starts at
		// the newest entry.
		seek := makeChatLogKey(core.ID(^uint64(0)))
		for iter.Seek(seek); iter.Valid() && (limit <= 0 || len(entries) < limit); iter.Next() {
			var entry *core.ChatLogEntry
			err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalChatLogEntry(val)
				return err
			})
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
