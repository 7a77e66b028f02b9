package storage

import (
	"context"

	"github.com/finsolve/finsight/core"
)

// ChunkRegistry records chunk provenance. Implementations must be
// thread-safe; concurrent ingestion relies on the store's own atomicity.
type ChunkRegistry interface {
	// UpsertChunk writes a provenance record, idempotent by ChunkID.
	// A zero CreatedAt is stamped with the current time.
	UpsertChunk(ctx context.Context, record *core.ChunkRecord) error

	// GetChunk retrieves a provenance record by chunk ID.
	// Returns ErrNotFound if the chunk was never registered.
	GetChunk(ctx context.Context, chunkID string) (*core.ChunkRecord, error)

	// ListChunks returns all provenance records, for administrative
	// inspection. Not exercised by the chat path.
	ListChunks(ctx context.Context) ([]*core.ChunkRecord, error)

	// Close releases resources held by the registry.
	Close() error
}

// ChatLog is the append-only audit log. Entries are never mutated or
// deleted after AppendEntry returns.
type ChatLog interface {
	// AppendEntry inserts a log entry, assigning a monotonic ID from the
	// store's sequence and stamping CreatedAt. Returns the entry with both
	// populated.
	AppendEntry(ctx context.Context, entry *core.ChatLogEntry) (*core.ChatLogEntry, error)

	// GetEntry retrieves a log entry by ID.
	// Returns ErrNotFound if no entry has that ID.
	GetEntry(ctx context.Context, id core.ID) (*core.ChatLogEntry, error)

	// ListEntries returns up to limit entries, most recent first, for
	// administrative inspection.
	ListEntries(ctx context.Context, limit int) ([]*core.ChatLogEntry, error)

	// Close releases resources held by the log.
	Close() error
}
