package vectorstore

import (
	"context"

	"github.com/finsolve/finsight/access"
	"github.com/finsolve/finsight/core"
)

// Store persists embedded chunks and answers scoped similarity searches.
type Store interface {
	// AddChunks stores the given chunks. Chunks without a vector are
	// embedded by the store before insertion.
	AddChunks(ctx context.Context, chunks []core.Chunk) error

	// Search returns up to k chunks most similar to the query text,
	// restricted by the retrieval filter, in descending score order.
	// An empty result is not an error.
	Search(ctx context.Context, query string, k int, filter access.RetrievalFilter) ([]core.ScoredChunk, error)

	// Close releases resources held by the store.
	Close() error
}
