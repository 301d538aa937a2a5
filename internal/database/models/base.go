package models

import (
	"time"
)

// BaseModel provides the timestamp columns shared by every table
type BaseModel struct {
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;index"`
}
