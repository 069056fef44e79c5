package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/konantech/hr-assistant/internal/mood"
)

// moodRecordModel maps to the mood_records table.
type moodRecordModel struct {
	ID        int
	Label     string
	CreatedAt time.Time
}

func (moodRecordModel) TableName() string {
	return "mood_records"
}

// MoodLog is a mood.Log backed by PostgreSQL.
type MoodLog struct {
	db *gorm.DB
}

// Append inserts one mood record.
func (l *MoodLog) Append(ctx context.Context, label mood.Label, now time.Time) error {
	record := moodRecordModel{
		Label:     string(label),
		CreatedAt: now.UTC().Truncate(time.Second),
	}
	if err := l.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("%w: insert mood record: %v", mood.ErrStorage, err)
	}
	return nil
}

// ReadAll returns every mood record in insertion order.
func (l *MoodLog) ReadAll(ctx context.Context) ([]mood.Record, error) {
	var records []moodRecordModel
	if err := l.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: query mood records: %v", mood.ErrStorage, err)
	}

	results := make([]mood.Record, 0, len(records))
	for _, record := range records {
		results = append(results, mood.Record{
			Timestamp: record.CreatedAt,
			Label:     mood.Label(record.Label),
		})
	}
	return results, nil
}

// checkinRecordModel maps to the checkin_records table.
type checkinRecordModel struct {
	ID        int
	Score     int
	CreatedAt time.Time
}

func (checkinRecordModel) TableName() string {
	return "checkin_records"
}

// CheckinLog is a mood.CheckinStore backed by PostgreSQL.
type CheckinLog struct {
	db *gorm.DB
}

// Append inserts one check-in score.
func (l *CheckinLog) Append(ctx context.Context, score int, now time.Time) error {
	record := checkinRecordModel{
		Score:     score,
		CreatedAt: now.UTC().Truncate(time.Second),
	}
	if err := l.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("%w: insert check-in record: %v", mood.ErrStorage, err)
	}
	return nil
}

// ReadAll returns every check-in score in insertion order.
func (l *CheckinLog) ReadAll(ctx context.Context) ([]mood.CheckinRecord, error) {
	var records []checkinRecordModel
	if err := l.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: query check-in records: %v", mood.ErrStorage, err)
	}

	results := make([]mood.CheckinRecord, 0, len(records))
	for _, record := range records {
		results = append(results, mood.CheckinRecord{
			Timestamp: record.CreatedAt,
			Score:     record.Score,
		})
	}
	return results, nil
}
