package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch, returned in input order. Batch calls are cheaper than repeated
	// EmbedText calls during ingestion.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator is the LLM gateway: a synchronous text-completion call.
// The decoding configuration is fixed at construction; callers supply only
// the prompt. Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate produces a completion for the prompt. Transport errors and
	// non-success statuses are surfaced as core.ErrUpstreamService; a
	// context deadline surfaces as core.ErrDeadlineExceeded.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Generator returns the text generation service.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	Close() error
}
