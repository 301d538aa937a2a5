package repository

import (
	"context"

	"app-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// ChatMessageRepository handles database operations for conversation messages
type ChatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// Create appends a message
func (r *ChatMessageRepository) Create(ctx context.Context, message *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListByProject returns the whole conversation in chronological order
func (r *ChatMessageRepository) ListByProject(ctx context.Context, projectID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// ListRecentByProject returns the last `limit` messages, still in chronological order
func (r *ChatMessageRepository) ListRecentByProject(ctx context.Context, projectID string, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
