// Package mood detects mood keywords in employee messages and defines
// the append-only log their detections are written to.
package mood

import "time"

// Label is a detected mood from the closed label set.
type Label string

const (
	LabelStressed  Label = "stressed"
	LabelSad       Label = "sad"
	LabelTired     Label = "tired"
	LabelMotivated Label = "motivated"
	LabelHappy     Label = "happy"
	LabelNeutral   Label = "neutral"
)

// Record is one logged mood detection. Records are immutable once
// appended.
type Record struct {
	Timestamp time.Time
	Label     Label
}

// CheckinRecord is one logged wellbeing check-in score (1-10).
type CheckinRecord struct {
	Timestamp time.Time
	Score     int
}
