package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatRole is the author of a conversation message
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// IsValid reports whether r is a known role
func (r ChatRole) IsValid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

// ChatMessage is one entry of a project's conversation
type ChatMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID string    `json:"project_id" gorm:"type:varchar(32);not null;index:idx_chat_messages_project_created,priority:1"`
	Role      ChatRole  `json:"role" gorm:"type:varchar(16);not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index:idx_chat_messages_project_created,priority:2"`
}

// TableName returns the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// BeforeCreate sets the UUID if not already set
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
