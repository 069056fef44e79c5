package memory

import (
	"context"
	"testing"
	"time"

	"github.com/konantech/hr-assistant/internal/chat"
	"github.com/konantech/hr-assistant/internal/mood"
)

func TestMoodLogOrdering(t *testing.T) {
	log := NewMoodLog()
	ctx := context.Background()

	t1 := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	if err := log.Append(ctx, mood.LabelStressed, t1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := log.Append(ctx, mood.LabelMotivated, t2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := log.ReadAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Label != mood.LabelStressed || records[1].Label != mood.LabelMotivated {
		t.Fatalf("records out of order: %#v", records)
	}
	if !records[0].Timestamp.Equal(t1) || !records[1].Timestamp.Equal(t2) {
		t.Fatalf("unexpected timestamps: %#v", records)
	}
}

func TestMoodLogReadAllReturnsCopy(t *testing.T) {
	log := NewMoodLog()
	ctx := context.Background()

	if err := log.Append(ctx, mood.LabelSad, time.Now()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := log.ReadAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	records[0].Label = mood.LabelHappy

	again, err := log.ReadAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if again[0].Label != mood.LabelSad {
		t.Fatal("ReadAll must not expose internal state")
	}
}

func TestHistoryStoreLimit(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		msg := chat.Message{SessionID: "s1", Role: "user", Content: "m", CreatedAt: time.Now()}
		if err := store.AppendMessage(ctx, msg); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	msgs, err := store.GetMessages(ctx, "s1", 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}

	all, err := store.GetMessages(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(all))
	}

	other, err := store.GetMessages(ctx, "s2", 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("sessions must be isolated, got %d messages", len(other))
	}
}
