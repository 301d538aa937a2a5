package repository

import (
	"context"
	"time"

	"app-builder-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project) error
	GetByIDForUser(ctx context.Context, id, userID string) (*models.Project, error)
	ListByUser(ctx context.Context, userID string) ([]models.Project, error)
	TransitionStatus(ctx context.Context, id string, from []models.ProjectStatus, to models.ProjectStatus) (bool, error)
	MarkDeployed(ctx context.Context, id string, deployment Deployment) error
	MarkFailed(ctx context.Context, id string, failure Failure) error
	FailStaleBuilds(ctx context.Context, startedBefore time.Time, message string) (int64, error)
	Delete(ctx context.Context, id string) error
}

// ChatMessageRepositoryInterface defines the interface for conversation storage
type ChatMessageRepositoryInterface interface {
	Create(ctx context.Context, message *models.ChatMessage) error
	ListByProject(ctx context.Context, projectID string) ([]models.ChatMessage, error)
	ListRecentByProject(ctx context.Context, projectID string, limit int) ([]models.ChatMessage, error)
}

// Deployment is the identity persisted on a successful build
type Deployment struct {
	DeployedURL string
	DatabaseID  string
	WorkerName  string
}

// Failure is what a failed build records. Deployment identifiers are not part
// of it: a failure never touches them.
type Failure struct {
	Message            string
	OrphanedDatabaseID string
}
