// Package csvfile provides file-backed append-only logs. Each record
// is one CSV row; appends are serialized and synced to disk before
// returning so a reported append survives a crash.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/konantech/hr-assistant/internal/mood"
)

// MoodLog stores mood records as `timestamp,mood` rows with RFC 3339
// UTC timestamps at second precision. A header row is tolerated on
// read but never written.
type MoodLog struct {
	mu   sync.Mutex
	path string
}

// NewMoodLog returns a MoodLog writing to path. The file is created on
// first append.
func NewMoodLog(path string) *MoodLog {
	return &MoodLog{path: path}
}

// Append writes one record and syncs the file.
func (l *MoodLog) Append(ctx context.Context, label mood.Label, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", mood.ErrStorage, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	row := []string{formatTimestamp(now), string(label)}
	if err := appendRow(l.path, row); err != nil {
		return fmt.Errorf("%w: append mood record: %v", mood.ErrStorage, err)
	}
	return nil
}

// ReadAll returns every record in append order. Calling it again
// returns the current full state including records appended since the
// last call.
func (l *MoodLog) ReadAll(ctx context.Context) ([]mood.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", mood.ErrStorage, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := readRows(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read mood log: %v", mood.ErrStorage, err)
	}

	records := make([]mood.Record, 0, len(rows))
	for i, row := range rows {
		ts, parseErr := parseTimestamp(row[0])
		if parseErr != nil {
			if i == 0 {
				// Optional header row.
				continue
			}
			return nil, fmt.Errorf("%w: malformed row %d: %v", mood.ErrStorage, i+1, parseErr)
		}
		records = append(records, mood.Record{Timestamp: ts, Label: mood.Label(row[1])})
	}
	return records, nil
}

// CheckinLog stores check-in scores as `timestamp,score` rows.
type CheckinLog struct {
	mu   sync.Mutex
	path string
}

// NewCheckinLog returns a CheckinLog writing to path.
func NewCheckinLog(path string) *CheckinLog {
	return &CheckinLog{path: path}
}

// Append writes one score and syncs the file.
func (l *CheckinLog) Append(ctx context.Context, score int, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", mood.ErrStorage, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	row := []string{formatTimestamp(now), strconv.Itoa(score)}
	if err := appendRow(l.path, row); err != nil {
		return fmt.Errorf("%w: append check-in record: %v", mood.ErrStorage, err)
	}
	return nil
}

// ReadAll returns every score in append order.
func (l *CheckinLog) ReadAll(ctx context.Context) ([]mood.CheckinRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", mood.ErrStorage, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := readRows(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read check-in log: %v", mood.ErrStorage, err)
	}

	records := make([]mood.CheckinRecord, 0, len(rows))
	for i, row := range rows {
		ts, parseErr := parseTimestamp(row[0])
		if parseErr != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("%w: malformed row %d: %v", mood.ErrStorage, i+1, parseErr)
		}
		score, parseErr := strconv.Atoi(row[1])
		if parseErr != nil {
			return nil, fmt.Errorf("%w: malformed score in row %d: %v", mood.ErrStorage, i+1, parseErr)
		}
		records = append(records, mood.CheckinRecord{Timestamp: ts, Score: score})
	}
	return records, nil
}

func appendRow(path string, row []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}
