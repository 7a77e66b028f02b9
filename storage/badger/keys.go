package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/finsolve/finsight/core"
)

// Key prefixes for different data types
const (
	chunkRecordPrefix = "chkrec"
	chatLogPrefix     = "chatlog"
	chatLogIDSeq      = "chatlogseq"
)

// makeChunkRecordKey generates a key for a chunk provenance record.
func makeChunkRecordKey(chunkID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", chunkRecordPrefix, chunkID))
}

// makeChatLogKey generates a key for a chat log entry.
// The ID is written BigEndian so lexicographic iteration follows insertion
// order and reverse iteration yields most-recent-first.
func makeChatLogKey(id core.ID) []byte {
	prefix := chatLogPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
