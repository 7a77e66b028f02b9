package core

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewChunkID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewChunkID()
		if id == "" {
			t.Fatal("NewChunkID() returned empty string")
		}
		if seen[id] {
			t.Fatalf("NewChunkID() produced duplicate ID %s", id)
		}
		seen[id] = true
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		wantRunes int
	}{
		{
			name:      "short answer untouched",
			answer:    "short",
			wantRunes: 5,
		},
		{
			name:      "empty answer",
			answer:    "",
			wantRunes: 0,
		},
		{
			name:      "exactly at limit",
			answer:    strings.Repeat("a", AnswerPreviewLimit),
			wantRunes: AnswerPreviewLimit,
		},
		{
			name:      "over limit truncated",
			answer:    strings.Repeat("b", AnswerPreviewLimit*3),
			wantRunes: AnswerPreviewLimit,
		},
		{
			name:      "multibyte answer under limit untouched",
			answer:    strings.Repeat("é", 150),
			wantRunes: 150,
		},
		{
			name:      "multibyte answer truncated by characters",
			answer:    strings.Repeat("é", AnswerPreviewLimit+50),
			wantRunes: AnswerPreviewLimit,
		},
		{
			name:      "mixed answer never cut mid-character",
			answer:    strings.Repeat("a", AnswerPreviewLimit-1) + strings.Repeat("é", 10),
			wantRunes: AnswerPreviewLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(tt.answer)
			if n := utf8.RuneCountInString(got); n != tt.wantRunes {
				t.Errorf("Preview() rune count = %d, want %d", n, tt.wantRunes)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Preview() produced invalid UTF-8: %q", got)
			}
			if !strings.HasPrefix(tt.answer, got) {
				t.Errorf("Preview() is not a prefix of the answer")
			}
		})
	}
}
