package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbConn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbConn.AutoMigrate(&QueryEvent{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewStore(dbConn)
}

func TestAppendAndList(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	if err := s.Append(ctx, 1, "first query", 5); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := s.Append(ctx, 1, "second query", 0); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	events, err := s.ByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ByUser failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Query != "second query" || events[1].Query != "first query" {
		t.Errorf("expected newest-first ordering, got %q then %q", events[0].Query, events[1].Query)
	}
	if events[0].ResultCount != 0 || events[1].ResultCount != 5 {
		t.Errorf("result counts not preserved: %+v", events)
	}
	if events[0].Timestamp.IsZero() {
		t.Errorf("timestamp must be assigned at write time")
	}
}

func TestByUser_ScopedToUser(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	if err := s.Append(ctx, 1, "mine", 3); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append(ctx, 2, "theirs", 4); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	events, err := s.ByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ByUser failed: %v", err)
	}
	if len(events) != 1 || events[0].Query != "mine" {
		t.Errorf("expected only user 1's events, got %+v", events)
	}
}

func TestByUser_Empty(t *testing.T) {
	s := setupStore(t)
	events, err := s.ByUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("ByUser failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}
