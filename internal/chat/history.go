package chat

import (
	"context"
	"time"
)

// Message is one chat turn stored in history.
type Message struct {
	SessionID string
	Role      string
	Content   string
	CreatedAt time.Time
}

// HistoryStore persists chat turns per session.
type HistoryStore interface {
	AppendMessage(ctx context.Context, msg Message) error
	GetMessages(ctx context.Context, sessionID string, limit int) ([]Message, error)
}
