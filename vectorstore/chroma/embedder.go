package chroma

import (
	"context"

	"github.com/finsolve/finsight/ai"
)

// embedderAdapter bridges ai.Embedder to the langchaingo embeddings
// interface the chroma client expects.
type embedderAdapter struct {
	embedder ai.Embedder
}

func (a *embedderAdapter) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return a.embedder.EmbedTexts(ctx, texts)
}

func (a *embedderAdapter) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return a.embedder.EmbedText(ctx, text)
}
