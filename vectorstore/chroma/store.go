package chroma

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores"
	lcchroma "github.com/tmc/langchaingo/vectorstores/chroma"

	"github.com/finsolve/finsight/access"
	"github.com/finsolve/finsight/ai"
	"github.com/finsolve/finsight/core"
	"github.com/finsolve/finsight/vectorstore"
)

// Metadata keys attached to every stored document.
const (
	metaChunkID    = "chunk_id"
	metaFileName   = "file_name"
	metaRoleScope  = "role_scope"
	metaDepartment = "department"
	metaSource     = "source"
)

// DefaultCollection is the Chroma collection name used when none is configured.
const DefaultCollection = "finsight-docs"

// Store implements vectorstore.Store against a Chroma server.
type Store struct {
	inner  lcchroma.Store
	logger *slog.Logger
}

// NewStore connects to a Chroma server at the given URL, storing chunks
// in the named collection and embedding with the given embedder.
//
// Returns vectorstore.Store interface to keep callers decoupled from
// the Chroma implementation.
func NewStore(url, collection string, embedder ai.Embedder) (vectorstore.Store, error) {
	if collection == "" {
		collection = DefaultCollection
	}

	inner, err := lcchroma.New(
		lcchroma.WithChromaURL(url),
		lcchroma.WithNameSpace(collection),
		lcchroma.WithEmbedder(&embedderAdapter{embedder: embedder}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to chroma: %v", core.ErrUpstreamService, err)
	}

	return &Store{
		inner:  inner,
		logger: slog.Default().With("component", "chroma-vectorstore"),
	}, nil
}

// AddChunks stores the given chunks with their provenance as metadata.
// Vectors are computed server-side through the configured embedder.
func (s *Store) AddChunks(ctx context.Context, chunks []core.Chunk) error {
	docs := make([]schema.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = schema.Document{
			PageContent: chunk.Text,
			Metadata: map[string]any{
				metaChunkID:    chunk.ChunkID,
				metaFileName:   chunk.FileName,
				metaRoleScope:  chunk.RoleScope,
				metaDepartment: chunk.Department,
				metaSource:     chunk.Source,
			},
		}
	}

	if _, err := s.inner.AddDocuments(ctx, docs); err != nil {
		return fmt.Errorf("%w: adding documents: %v", core.ErrUpstreamService, err)
	}

	s.logger.Debug("added chunks", "count", len(chunks))
	return nil
}

// Search runs a scoped similarity search. The retrieval filter becomes a
// server-side metadata filter unless the filter is unrestricted.
func (s *Store) Search(ctx context.Context, query string, k int, filter access.RetrievalFilter) ([]core.ScoredChunk, error) {
	if k <= 0 {
		return nil, vectorstore.ErrInvalidK
	}

	var opts []vectorstores.Option
	if !filter.Unrestricted {
		opts = append(opts, vectorstores.WithFilters(map[string]any{
			metaRoleScope: filter.RoleScope,
		}))
	}

	docs, err := s.inner.SimilaritySearch(ctx, query, k, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: similarity search: %v", core.ErrUpstreamService, err)
	}

	results := make([]core.ScoredChunk, 0, len(docs))
	for _, doc := range docs {
		results = append(results, core.ScoredChunk{
			Chunk: core.Chunk{
				ChunkRecord: recordFromMetadata(doc.Metadata),
				Text:        doc.PageContent,
			},
			Score: doc.Score,
		})
	}
	return results, nil
}

// Close is a no-op; the Chroma client holds no persistent connection.
func (s *Store) Close() error {
	return nil
}

func recordFromMetadata(metadata map[string]any) core.ChunkRecord {
	return core.ChunkRecord{
		ChunkID:    metadataString(metadata, metaChunkID),
		FileName:   metadataString(metadata, metaFileName),
		RoleScope:  metadataString(metadata, metaRoleScope),
		Department: metadataString(metadata, metaDepartment),
		Source:     metadataString(metadata, metaSource),
	}
}

func metadataString(metadata map[string]any, key string) string {
	if v, ok := metadata[key].(string); ok {
		return v
	}
	return ""
}
