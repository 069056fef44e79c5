// Package memory provides in-memory store implementations used in
// tests and API-key-only deployments without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/konantech/hr-assistant/internal/chat"
	"github.com/konantech/hr-assistant/internal/mood"
)

// MoodLog is an in-memory mood.Log.
type MoodLog struct {
	mu      sync.Mutex
	records []mood.Record
}

// NewMoodLog returns an empty MoodLog.
func NewMoodLog() *MoodLog {
	return &MoodLog{}
}

// Append adds one record.
func (l *MoodLog) Append(ctx context.Context, label mood.Label, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, mood.Record{
		Timestamp: now.UTC().Truncate(time.Second),
		Label:     label,
	})
	return nil
}

// ReadAll returns a copy of the records in append order.
func (l *MoodLog) ReadAll(ctx context.Context) ([]mood.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]mood.Record, len(l.records))
	copy(out, l.records)
	return out, nil
}

// CheckinLog is an in-memory mood.CheckinStore.
type CheckinLog struct {
	mu      sync.Mutex
	records []mood.CheckinRecord
}

// NewCheckinLog returns an empty CheckinLog.
func NewCheckinLog() *CheckinLog {
	return &CheckinLog{}
}

// Append adds one score.
func (l *CheckinLog) Append(ctx context.Context, score int, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, mood.CheckinRecord{
		Timestamp: now.UTC().Truncate(time.Second),
		Score:     score,
	})
	return nil
}

// ReadAll returns a copy of the scores in append order.
func (l *CheckinLog) ReadAll(ctx context.Context) ([]mood.CheckinRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]mood.CheckinRecord, len(l.records))
	copy(out, l.records)
	return out, nil
}

// HistoryStore is an in-memory chat.HistoryStore keyed by session.
type HistoryStore struct {
	mu       sync.Mutex
	messages map[string][]chat.Message
}

// NewHistoryStore returns an empty HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{messages: make(map[string][]chat.Message)}
}

// AppendMessage records one chat turn.
func (s *HistoryStore) AppendMessage(ctx context.Context, msg chat.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[msg.SessionID] = append(s.messages[msg.SessionID], msg)
	return nil
}

// GetMessages returns up to limit most recent messages for a session,
// oldest first. A non-positive limit returns all messages.
func (s *HistoryStore) GetMessages(ctx context.Context, sessionID string, limit int) ([]chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.messages[sessionID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]chat.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
