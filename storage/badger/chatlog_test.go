package badger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/finsolve/finsight/core"
	"github.com/finsolve/finsight/storage"
)

func TestChatLogAppend(t *testing.T) {
	registry, chatLog, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { chatLog.Close(); registry.Close(); backend.Close() }()

	ctx := context.Background()

	entry := &core.ChatLogEntry{
		Username:      "binoy",
		Role:          "finance",
		Query:         "what was Q3 revenue?",
		ChunkIDs:      []string{core.NewChunkID()},
		AnswerPreview: "Q3 revenue grew 14%...",
	}

	added, err := chatLog.AppendEntry(ctx, entry)
	if err != nil {
		t.Fatalf("Failed to append entry: %v", err)
	}

	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be stamped")
	}

	retrieved, err := chatLog.GetEntry(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get entry: %v", err)
	}
	if retrieved.Query != "what was Q3 revenue?" {
		t.Fatalf("Expected query round-trip, got '%s'", retrieved.Query)
	}
	if len(retrieved.ChunkIDs) != 1 {
		t.Fatalf("Expected 1 chunk id, got %d", len(retrieved.ChunkIDs))
	}
}

func TestChatLogMonotonicIDs(t *testing.T) {
	registry, chatLog, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { chatLog.Close(); registry.Close(); backend.Close() }()

	ctx := context.Background()

	var last core.ID
	for i := 0; i < 5; i++ {
		added, err := chatLog.AppendEntry(ctx, &core.ChatLogEntry{
			Username: "deb",
			Role:     "engineering",
			Query:    fmt.Sprintf("question %d", i),
		})
		if err != nil {
			t.Fatalf("Failed to append entry %d: %v", i, err)
		}
		if added.Id <= last {
			t.Fatalf("Expected monotonic IDs, got %d after %d", added.Id, last)
		}
		last = added.Id
	}
}

func TestChatLogListRecentFirst(t *testing.T) {
	registry, chatLog, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { chatLog.Close(); registry.Close(); backend.Close() }()

	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := chatLog.AppendEntry(ctx, &core.ChatLogEntry{
			Username: "ved",
			Role:     "marketing",
			Query:    fmt.Sprintf("question %d", i),
		})
		if err != nil {
			t.Fatalf("Failed to append entry: %v", err)
		}
	}

	entries, err := chatLog.ListEntries(ctx, 3)
	if err != nil {
		t.Fatalf("Failed to list entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Query != "question 3" {
		t.Fatalf("Expected most recent entry first, got '%s'", entries[0].Query)
	}
	if entries[0].Id <= entries[1].Id || entries[1].Id <= entries[2].Id {
		t.Fatal("Expected descending IDs")
	}
}

func TestChatLogGetMissing(t *testing.T) {
	registry, chatLog, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { chatLog.Close(); registry.Close(); backend.Close() }()

	_, err = chatLog.GetEntry(context.Background(), 9999)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
