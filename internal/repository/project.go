package repository

import (
	"context"
	"strings"
	"time"

	"app-builder-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetByIDForUser retrieves a project owned by userID
func (r *ProjectRepository) GetByIDForUser(ctx context.Context, id, userID string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("OrphanedDatabases", orderOrphans).
		First(&project, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByUser retrieves the user's projects, most recently updated first
func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Preload("OrphanedDatabases", orderOrphans).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// TransitionStatus moves the project to `to` only if its current status is one of `from`.
// The boolean reports whether the row was updated.
func (r *ProjectRepository) TransitionStatus(ctx context.Context, id string, from []models.ProjectStatus, to models.ProjectStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// MarkDeployed records a successful build, overwriting any previous deployment identity.
// Orphaned databases recorded by earlier failures stay recorded until teardown.
func (r *ProjectRepository) MarkDeployed(ctx context.Context, id string, deployment Deployment) error {
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.ProjectStatusDeployed,
			"deployed_url": deployment.DeployedURL,
			"database_id":  deployment.DatabaseID,
			"worker_name":  deployment.WorkerName,
			"last_error":   nil,
			"updated_at":   time.Now(),
		}).Error
}

// MarkFailed records a failed build and leaves the deployment identity as it was.
// An orphaned database is appended to the ones already recorded.
func (r *ProjectRepository) MarkFailed(ctx context.Context, id string, failure Failure) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Project{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     models.ProjectStatusError,
				"last_error": storableText(failure.Message),
				"updated_at": time.Now(),
			}).Error
		if err != nil || failure.OrphanedDatabaseID == "" {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.OrphanedDatabase{ProjectID: id, DatabaseID: failure.OrphanedDatabaseID}).Error
	})
}

// FailStaleBuilds moves every project that entered building before startedBefore to error
func (r *ProjectRepository) FailStaleBuilds(ctx context.Context, startedBefore time.Time, message string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("status = ? AND updated_at < ?", models.ProjectStatusBuilding, startedBefore).
		Updates(map[string]interface{}{
			"status":     models.ProjectStatusError,
			"last_error": message,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// Delete removes the project's conversation and orphan records and then the project itself
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.OrphanedDatabase{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

func orderOrphans(db *gorm.DB) *gorm.DB {
	return db.Order("created_at, id")
}

// storableText makes text acceptable to a Postgres text column, which rejects
// invalid UTF-8 and NUL bytes.
func storableText(s string) string {
	return strings.ReplaceAll(strings.ToValidUTF8(s, "\uFFFD"), "\x00", "")
}
