package models

import "time"

// OrphanedDatabase is a database a failed build created but never released.
// A project may collect several before it is torn down.
type OrphanedDatabase struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	ProjectID  string    `json:"project_id" gorm:"type:varchar(32);not null;uniqueIndex:idx_orphaned_databases_project_db,priority:1"`
	DatabaseID string    `json:"database_id" gorm:"size:64;not null;uniqueIndex:idx_orphaned_databases_project_db,priority:2"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
}

// TableName returns the table name for OrphanedDatabase
func (OrphanedDatabase) TableName() string {
	return "orphaned_databases"
}
