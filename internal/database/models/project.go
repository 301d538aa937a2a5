package models

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusDraft    ProjectStatus = "draft"
	ProjectStatusBuilding ProjectStatus = "building"
	ProjectStatusDeployed ProjectStatus = "deployed"
	ProjectStatusError    ProjectStatus = "error"
)

// IsValid reports whether s is one of the known statuses
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusBuilding, ProjectStatusDeployed, ProjectStatusError:
		return true
	}
	return false
}

// DefaultProjectName is used when a project is created without a name
const DefaultProjectName = "Untitled Project"

// Project is one tenant application under construction or deployed.
//
// DeployedURL, DatabaseID and WorkerName are either all nil or all set.
// A project in error keeps the identifiers of its last successful deploy.
type Project struct {
	ID          string        `json:"id" gorm:"type:varchar(32);primaryKey"`
	UserID      string        `json:"user_id" gorm:"size:64;not null;index"`
	Name        string        `json:"name" gorm:"size:200;not null"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	DeployedURL *string       `json:"deployed_url" gorm:"type:text"`
	DatabaseID  *string       `json:"database_id" gorm:"size:64"`
	WorkerName  *string       `json:"worker_name" gorm:"size:128"`
	LastError   *string       `json:"last_error,omitempty" gorm:"type:text"`
	BaseModel

	ChatMessages      []ChatMessage      `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	OrphanedDatabases []OrphanedDatabase `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// IsDeployed reports whether the project carries a complete deployment identity
func (p *Project) IsDeployed() bool {
	return p.DeployedURL != nil && p.DatabaseID != nil && p.WorkerName != nil
}

// OrphanedDatabaseIDs returns the ids of databases left behind by failed builds, oldest first
func (p *Project) OrphanedDatabaseIDs() []string {
	ids := make([]string, 0, len(p.OrphanedDatabases))
	for _, o := range p.OrphanedDatabases {
		ids = append(ids, o.DatabaseID)
	}
	return ids
}
