// Package postgres provides gorm-backed stores for the mood log,
// check-in scores, and chat history.
package postgres

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store holds the DB pool and the individual stores.
type Store struct {
	db *gorm.DB
}

// NewStore opens the PostgreSQL pool, verifies connectivity, and
// migrates the backing tables.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&moodRecordModel{}, &checkinRecordModel{}, &chatMessageModel{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return &Store{db: db}, nil
}

// MoodLog returns the mood log backed by this pool.
func (s *Store) MoodLog() *MoodLog {
	return &MoodLog{db: s.db}
}

// CheckinLog returns the check-in store backed by this pool.
func (s *Store) CheckinLog() *CheckinLog {
	return &CheckinLog{db: s.db}
}

// History returns the chat history store backed by this pool.
func (s *Store) History() *HistoryStore {
	return &HistoryStore{db: s.db}
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
