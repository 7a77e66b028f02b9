package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/finsolve/finsight/access"
	"github.com/finsolve/finsight/ai"
	"github.com/finsolve/finsight/core"
	"github.com/finsolve/finsight/vectorstore"
)

// Store is an in-process vector store ranking by dot product.
type Store struct {
	mu       sync.RWMutex
	chunks   []core.Chunk
	embedder ai.Embedder
	closed   bool
	logger   *slog.Logger
}

// NewStore creates an in-memory vector store using the given embedder
// for chunks inserted without a vector and for query embedding.
//
// Returns vectorstore.Store interface to keep callers decoupled from
// the in-memory implementation.
func NewStore(embedder ai.Embedder) vectorstore.Store {
	return &Store{
		embedder: embedder,
		logger:   slog.Default().With("component", "memory-vectorstore"),
	}
}

// AddChunks stores the given chunks, embedding any without a vector.
func (s *Store) AddChunks(ctx context.Context, chunks []core.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return vectorstore.ErrStoreClosed
	}

	for _, chunk := range chunks {
		if chunk.Vector == nil {
			vector, err := s.embedder.EmbedText(ctx, chunk.Text)
			if err != nil {
				return fmt.Errorf("embedding chunk %s: %w", chunk.ChunkID, err)
			}
			chunk.Vector = vector
		}
		s.chunks = append(s.chunks, chunk)
	}

	s.logger.Debug("added chunks", "count", len(chunks), "total", len(s.chunks))
	return nil
}

// Search embeds the query and returns the k highest-scoring chunks
// that pass the retrieval filter.
func (s *Store) Search(ctx context.Context, query string, k int, filter access.RetrievalFilter) ([]core.ScoredChunk, error) {
	if k <= 0 {
		return nil, vectorstore.ErrInvalidK
	}

	queryVector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, vectorstore.ErrStoreClosed
	}

	scored := make([]core.ScoredChunk, 0, len(s.chunks))
	for _, chunk := range s.chunks {
		if !filter.Allows(chunk.RoleScope) {
			continue
		}
		scored = append(scored, core.ScoredChunk{
			Chunk: chunk,
			Score: dotProduct(queryVector, chunk.Vector),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

// Len returns the number of stored chunks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Close marks the store closed. Subsequent operations fail.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func dotProduct(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
