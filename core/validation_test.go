package core

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateChunkRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *ChunkRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &ChunkRecord{
				ChunkID:    NewChunkID(),
				FileName:   "report.md",
				RoleScope:  "finance",
				Department: "finance",
				Source:     "report.md",
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidChunk,
		},
		{
			name: "missing chunk id",
			record: &ChunkRecord{
				RoleScope: "finance",
			},
			wantErr: ErrEmptyChunkID,
		},
		{
			name: "missing role scope",
			record: &ChunkRecord{
				ChunkID: NewChunkID(),
			},
			wantErr: ErrEmptyRoleScope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChunkRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateChunkRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateChunkRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateChatLogEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *ChatLogEntry
		wantErr error
	}{
		{
			name: "valid entry",
			entry: &ChatLogEntry{
				Username:      "deb",
				Role:          "engineering",
				Query:         "what changed?",
				AnswerPreview: "nothing much",
			},
			wantErr: nil,
		},
		{
			name: "no chunk ids is valid",
			entry: &ChatLogEntry{
				Username: "deb",
				Role:     "engineering",
				Query:    "anything?",
			},
			wantErr: nil,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidLogEntry,
		},
		{
			name: "missing username",
			entry: &ChatLogEntry{
				Role: "engineering",
			},
			wantErr: ErrEmptyUsername,
		},
		{
			name: "preview over limit",
			entry: &ChatLogEntry{
				Username:      "deb",
				AnswerPreview: strings.Repeat("x", AnswerPreviewLimit+1),
			},
			wantErr: ErrPreviewTooLong,
		},
		{
			name: "multibyte preview at the character limit is valid",
			entry: &ChatLogEntry{
				Username:      "deb",
				AnswerPreview: Preview(strings.Repeat("é", AnswerPreviewLimit*2)),
			},
			wantErr: nil,
		},
		{
			name: "multibyte preview over the character limit",
			entry: &ChatLogEntry{
				Username:      "deb",
				AnswerPreview: strings.Repeat("é", AnswerPreviewLimit+1),
			},
			wantErr: ErrPreviewTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChatLogEntry(tt.entry)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateChatLogEntry() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateChatLogEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
