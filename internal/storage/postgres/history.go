package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/konantech/hr-assistant/internal/chat"
)

// chatMessageModel maps to the chat_messages table.
type chatMessageModel struct {
	ID        int
	SessionID string
	Role      string
	Content   string
	CreatedAt time.Time
}

func (chatMessageModel) TableName() string {
	return "chat_messages"
}

// HistoryStore is a chat.HistoryStore backed by PostgreSQL.
type HistoryStore struct {
	db *gorm.DB
}

// AppendMessage inserts one chat turn.
func (s *HistoryStore) AppendMessage(ctx context.Context, msg chat.Message) error {
	record := chatMessageModel{
		SessionID: msg.SessionID,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// GetMessages returns up to limit most recent messages for a session,
// oldest first.
func (s *HistoryStore) GetMessages(ctx context.Context, sessionID string, limit int) ([]chat.Message, error) {
	query := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []chatMessageModel
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}

	results := make([]chat.Message, 0, len(records))
	for _, record := range records {
		results = append(results, chat.Message{
			SessionID: record.SessionID,
			Role:      record.Role,
			Content:   record.Content,
			CreatedAt: record.CreatedAt,
		})
	}

	// Oldest -> newest
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}
