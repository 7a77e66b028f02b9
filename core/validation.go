// Copyright 2026 FinSolve Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"unicode/utf8"
)

// ValidateChunkRecord validates a ChunkRecord according to domain rules.
//
// Validation rules:
//   - ChunkID must not be empty
//   - RoleScope must not be empty
//
// NOT validated:
//   - FileName/Source (loaders may produce nameless streams)
//   - CreatedAt (the store stamps it on upsert when zero)
func ValidateChunkRecord(record *ChunkRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidChunk)
	}

	if record.ChunkID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkID)
	}

	if record.RoleScope == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyRoleScope)
	}

	return nil
}

// ValidateChatLogEntry validates a ChatLogEntry according to domain rules.
//
// Validation rules:
//   - Username must not be empty
//   - AnswerPreview must not exceed AnswerPreviewLimit
//
// NOT validated:
//   - Id (0 is valid before the store assigns one from its sequence)
//   - ChunkIDs (empty is valid for no-evidence responses)
func ValidateChatLogEntry(entry *ChatLogEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidLogEntry)
	}

	if entry.Username == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLogEntry, ErrEmptyUsername)
	}

	if utf8.RuneCountInString(entry.AnswerPreview) > AnswerPreviewLimit {
		return fmt.Errorf("%w: %w", ErrInvalidLogEntry, ErrPreviewTooLong)
	}

	return nil
}
