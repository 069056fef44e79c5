package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/konantech/hr-assistant/internal/mood"
)

func TestMoodLogAppendReadAll(t *testing.T) {
	log := NewMoodLog(filepath.Join(t.TempDir(), "mood_log.csv"))
	ctx := context.Background()

	t1 := time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC)
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
	if records[0].Label != mood.LabelStressed || !records[0].Timestamp.Equal(t1) {
		t.Fatalf("unexpected first record: %#v", records[0])
	}
	if records[1].Label != mood.LabelMotivated || !records[1].Timestamp.Equal(t2) {
		t.Fatalf("unexpected second record: %#v", records[1])
	}
}

func TestMoodLogRoundTripSecondPrecision(t *testing.T) {
	log := NewMoodLog(filepath.Join(t.TempDir(), "mood_log.csv"))
	ctx := context.Background()

	now := time.Date(2026, 8, 30, 9, 15, 42, 987654321, time.UTC)
	if err := log.Append(ctx, mood.LabelHappy, now); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := log.ReadAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	want := now.Truncate(time.Second)
	if !records[0].Timestamp.Equal(want) {
		t.Fatalf("expected %v, got %v", want, records[0].Timestamp)
	}
}

func TestMoodLogReadAllIdempotent(t *testing.T) {
	log := NewMoodLog(filepath.Join(t.TempDir(), "mood_log.csv"))
	ctx := context.Background()

	if err := log.Append(ctx, mood.LabelSad, time.Now()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	first, err := log.ReadAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := log.ReadAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("read-all not idempotent: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("record %d differs: %#v vs %#v", i, first[i], second[i])
		}
	}
}

func TestMoodLogEmptyFileMissing(t *testing.T) {
	log := NewMoodLog(filepath.Join(t.TempDir(), "missing.csv"))

	records, err := log.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestMoodLogSkipsHeaderRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood_log.csv")
	content := "timestamp,mood\n2026-08-30T09:15:00Z,stressed\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	records, err := NewMoodLog(path).ReadAll(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 1 || records[0].Label != mood.LabelStressed {
		t.Fatalf("unexpected records: %#v", records)
	}
}

func TestMoodLogMalformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood_log.csv")
	content := "2026-08-30T09:15:00Z,stressed\nnot-a-timestamp,sad\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	_, err := NewMoodLog(path).ReadAll(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed row")
	}
	if !errors.Is(err, mood.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestCheckinLogAppendReadAll(t *testing.T) {
	log := NewCheckinLog(filepath.Join(t.TempDir(), "checkin_log.csv"))
	ctx := context.Background()

	t1 := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if err := log.Append(ctx, 7, t1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := log.Append(ctx, 3, t1.Add(time.Hour)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := log.ReadAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 || records[0].Score != 7 || records[1].Score != 3 {
		t.Fatalf("unexpected records: %#v", records)
	}
}
