package ingestion

import "github.com/tmc/langchaingo/textsplitter"

const (
	// DefaultChunkSize is the target chunk length in characters.
	DefaultChunkSize = 500

	// DefaultChunkOverlap is the number of characters shared between
	// adjacent chunks, preserving context across boundaries.
	DefaultChunkOverlap = 50
)

// newSplitter builds the recursive character splitter used for all
// document types.
func newSplitter(chunkSize, chunkOverlap int) textsplitter.RecursiveCharacter {
	return textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
	)
}
