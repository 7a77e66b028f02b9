package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsolve/finsight/access"
	"github.com/finsolve/finsight/ai/mock"
	"github.com/finsolve/finsight/core"
	"github.com/finsolve/finsight/vectorstore"
)

func testChunk(id, text, scope string) core.Chunk {
	return core.Chunk{
		ChunkRecord: core.ChunkRecord{
			ChunkID:    id,
			FileName:   "report.md",
			RoleScope:  scope,
			Department: scope,
			Source:     "data/" + scope + "/report.md",
		},
		Text: text,
	}
}

func TestStore_AddAndSearch(t *testing.T) {
	store := NewStore(mock.NewMockEmbedder())
	ctx := context.Background()

	err := store.AddChunks(ctx, []core.Chunk{
		testChunk("c1", "quarterly revenue grew by twelve percent", "finance"),
		testChunk("c2", "the onboarding checklist for new hires", "hr"),
		testChunk("c3", "company holiday calendar for the year", "general"),
	})
	require.NoError(t, err)

	results, err := store.Search(ctx, "revenue growth", 4, access.Unrestricted())
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// Descending score order.
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestStore_SearchRespectsFilter(t *testing.T) {
	store := NewStore(mock.NewMockEmbedder())
	ctx := context.Background()

	err := store.AddChunks(ctx, []core.Chunk{
		testChunk("c1", "quarterly revenue grew by twelve percent", "finance"),
		testChunk("c2", "the onboarding checklist for new hires", "hr"),
		testChunk("c3", "company holiday calendar for the year", "general"),
	})
	require.NoError(t, err)

	results, err := store.Search(ctx, "anything", 4, access.ScopeTo("hr"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c2", results[0].Chunk.ChunkID)

	results, err = store.Search(ctx, "anything", 4, access.ScopeTo("engineering"))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestStore_SearchLimitsToK(t *testing.T) {
	store := NewStore(mock.NewMockEmbedder())
	ctx := context.Background()

	chunks := make([]core.Chunk, 10)
	for i := range chunks {
		chunks[i] = testChunk(core.NewChunkID(), "document text variant", "general")
		chunks[i].Text += string(rune('a' + i))
	}
	require.NoError(t, store.AddChunks(ctx, chunks))

	results, err := store.Search(ctx, "document", 4, access.Unrestricted())
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestStore_SearchDeterministic(t *testing.T) {
	store := NewStore(mock.NewMockEmbedder())
	ctx := context.Background()

	err := store.AddChunks(ctx, []core.Chunk{
		testChunk("c1", "alpha", "general"),
		testChunk("c2", "beta", "general"),
		testChunk("c3", "gamma", "general"),
	})
	require.NoError(t, err)

	first, err := store.Search(ctx, "alpha", 3, access.Unrestricted())
	require.NoError(t, err)
	second, err := store.Search(ctx, "alpha", 3, access.Unrestricted())
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Chunk.ChunkID, second[i].Chunk.ChunkID)
	}
}

func TestStore_InvalidK(t *testing.T) {
	store := NewStore(mock.NewMockEmbedder())

	_, err := store.Search(context.Background(), "query", 0, access.Unrestricted())
	assert.ErrorIs(t, err, vectorstore.ErrInvalidK)
}

func TestStore_EmbedsChunksWithoutVector(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	store := NewStore(embedder)
	ctx := context.Background()

	preEmbedded := testChunk("c1", "already embedded", "general")
	preEmbedded.Vector = make([]float32, 384)

	require.NoError(t, store.AddChunks(ctx, []core.Chunk{
		preEmbedded,
		testChunk("c2", "needs embedding", "general"),
	}))

	// Only the chunk without a vector triggers the embedder.
	assert.Equal(t, 1, embedder.CallCount())
}

func TestStore_ClosedStoreFails(t *testing.T) {
	store := NewStore(mock.NewMockEmbedder())
	require.NoError(t, store.Close())

	err := store.AddChunks(context.Background(), []core.Chunk{testChunk("c1", "text", "general")})
	assert.ErrorIs(t, err, vectorstore.ErrStoreClosed)

	_, err = store.Search(context.Background(), "query", 4, access.Unrestricted())
	assert.ErrorIs(t, err, vectorstore.ErrStoreClosed)
}
