package core

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ID is a monotonic identifier assigned by the audit store.
type ID uint64

// NewChunkID generates a fresh globally-unique chunk identifier.
// Chunk IDs are opaque and immutable once assigned; re-ingesting the same
// file produces new IDs rather than replacing old ones.
func NewChunkID() string {
	return uuid.NewString()
}

// ChunkRecord is the provenance of a single chunk, mirrored into the
// metadata store without the embedding vector.
type ChunkRecord struct {
	ChunkID    string
	FileName   string
	RoleScope  string
	Department string
	Source     string
	CreatedAt  time.Time
}

// Chunk is a bounded span of a source document's text, independently
// embedded and retrievable. The vector store owns text and vector; the
// metadata store keeps only the ChunkRecord fields.
type Chunk struct {
	ChunkRecord
	Text   string
	Vector []float32
}

// ScoredChunk is a chunk returned from a similarity search with its score.
type ScoredChunk struct {
	Chunk Chunk
	Score float32
}

// Role is an enumerated role with an explicit privilege flag.
// Privileged roles retrieve without any scope restriction.
type Role struct {
	Name       string
	Privileged bool
}

// User is an administratively created account. Users are create-only;
// there is no update or delete operation.
type User struct {
	Username     string
	PasswordHash string
	RoleName     string
}

// AnswerPreviewLimit is the maximum number of characters of an answer
// persisted in a chat log entry.
const AnswerPreviewLimit = 200

// ChatLogEntry is an append-only audit record of one answered query.
type ChatLogEntry struct {
	Id            ID
	Username      string
	Role          string
	Query         string
	ChunkIDs      []string
	AnswerPreview string
	CreatedAt     time.Time
}

// Preview truncates an answer to at most AnswerPreviewLimit characters.
// The limit counts runes, never splitting a multibyte character.
func Preview(answer string) string {
	if utf8.RuneCountInString(answer) <= AnswerPreviewLimit {
		return answer
	}
	runes := []rune(answer)
	return string(runes[:AnswerPreviewLimit])
}

// Answer is the result of one completed query.
// Sources lists the source file of each retrieved chunk in ranked order;
// duplicates are allowed when multiple chunks share a source.
type Answer struct {
	Username string
	Role     string
	Query    string
	Response string
	Sources  []string
}
