package mood

import (
	"context"
	"errors"
	"time"
)

// ErrStorage marks a mood log read or write failure. Callers test for
// it with errors.Is.
var ErrStorage = errors.New("mood storage failure")

// Log is an append-only store of mood detections. Append must durably
// persist the record before returning; ReadAll returns every record in
// append order.
type Log interface {
	Append(ctx context.Context, label Label, now time.Time) error
	ReadAll(ctx context.Context) ([]Record, error)
}

// CheckinStore persists wellbeing check-in scores with the same
// append-only contract as Log.
type CheckinStore interface {
	Append(ctx context.Context, score int, now time.Time) error
	ReadAll(ctx context.Context) ([]CheckinRecord, error)
}
