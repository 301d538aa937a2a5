package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"app-builder-backend/internal/database/models"
	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/logger"
	"app-builder-backend/internal/repository"
	"app-builder-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ProjectService handles the project lifecycle: creation, builds and deletion
type ProjectService struct {
	repo         repository.ProjectRepositoryInterface
	builder      BuilderInterface
	teardown     TeardownInterface
	artifacts    storage.ArtifactStore
	locker       ProjectLocker
	validator    *validator.Validate
	buildTimeout time.Duration
}

// NewProjectService creates a new project service
func NewProjectService(
	repo repository.ProjectRepositoryInterface,
	builder BuilderInterface,
	teardown TeardownInterface,
	artifacts storage.ArtifactStore,
	locker ProjectLocker,
	validator *validator.Validate,
	buildTimeout time.Duration,
) *ProjectService {
	return &ProjectService{
		repo:         repo,
		builder:      builder,
		teardown:     teardown,
		artifacts:    artifacts,
		locker:       locker,
		validator:    validator,
		buildTimeout: buildTimeout,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=200"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID                  string               `json:"id"`
	UserID              string               `json:"user_id"`
	Name                string               `json:"name"`
	Status              models.ProjectStatus `json:"status"`
	DeployedURL         *string              `json:"deployed_url"`
	DatabaseID          *string              `json:"database_id"`
	WorkerName          *string              `json:"worker_name"`
	LastError           *string              `json:"last_error,omitempty"`
	OrphanedDatabaseIDs []string             `json:"orphaned_database_ids,omitempty"`
	CreatedAt           string               `json:"created_at"`
	UpdatedAt           string               `json:"updated_at"`
}

// BuildResponse is returned by a successful build
type BuildResponse struct {
	Success     bool             `json:"success"`
	DeployedURL string           `json:"deployed_url"`
	Project     *ProjectResponse `json:"project"`
}

// DeleteProjectResponse is returned by a completed deletion
type DeleteProjectResponse struct {
	Success  bool     `json:"success"`
	Warnings []string `json:"warnings"`
}

// Create creates a draft project owned by userID
func (s *ProjectService) Create(ctx context.Context, userID string, req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	name := models.DefaultProjectName
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name = strings.TrimSpace(*req.Name)
	}

	project := &models.Project{
		ID:     NewProjectID(),
		UserID: userID,
		Name:   name,
		Status: models.ProjectStatusDraft,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	logger.WithContext(ctx).WithField("project_id", project.ID).Info("Project created")
	return s.toResponse(project), nil
}

// List returns the user's projects, most recently updated first
func (s *ProjectService) List(ctx context.Context, userID string) ([]ProjectResponse, error) {
	projects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i])
	}
	return responses, nil
}

// Get retrieves one of the user's projects
func (s *ProjectService) Get(ctx context.Context, userID, id string) (*ProjectResponse, error) {
	project, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

// Build moves the project to building, runs the pipeline and records the
// outcome. A project that is already building is refused.
func (s *ProjectService) Build(ctx context.Context, userID, id, baseURL string) (*BuildResponse, error) {
	log := logger.WithContext(ctx).WithField("project_id", id)

	project, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	release, err := s.locker.Acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	moved, err := s.repo.TransitionStatus(ctx, id, statusesLeadingTo(models.ProjectStatusBuilding), models.ProjectStatusBuilding)
	if err != nil {
		return nil, fmt.Errorf("failed to mark project building: %w", err)
	}
	if !moved {
		return nil, apperrors.ErrBuildInProgress
	}

	// The run outlives a client that hangs up; only the build deadline stops it.
	persistCtx := context.WithoutCancel(ctx)
	runCtx, cancel := context.WithTimeout(persistCtx, s.buildTimeout)
	defer cancel()

	result, buildErr := s.builder.Build(runCtx, id, project.Name, baseURL)
	if buildErr != nil {
		failure := repository.Failure{Message: buildErr.Error()}
		if be, ok := apperrors.AsBuildError(buildErr); ok {
			failure.OrphanedDatabaseID = be.ProvisionedDatabaseID
		}
		if err := s.repo.MarkFailed(persistCtx, id, failure); err != nil {
			log.WithError(err).Error("Failed to record build failure")
		}
		return nil, buildErr
	}

	err = s.repo.MarkDeployed(persistCtx, id, repository.Deployment{
		DeployedURL: result.DeployedURL,
		DatabaseID:  result.DatabaseID,
		WorkerName:  result.ScriptName,
	})
	if err != nil {
		// The new database is live but unrecorded; keep it reachable for teardown.
		log.WithError(err).WithField("database_id", result.DatabaseID).Error("Failed to record deployment")
		failure := repository.Failure{
			Message:            "failed to record deployment: " + err.Error(),
			OrphanedDatabaseID: result.DatabaseID,
		}
		if markErr := s.repo.MarkFailed(persistCtx, id, failure); markErr != nil {
			log.WithError(markErr).Error("Failed to record build failure")
		}
		return nil, fmt.Errorf("failed to record deployment: %w", err)
	}

	updated, err := s.getOwned(persistCtx, userID, id)
	if err != nil {
		return nil, err
	}
	return &BuildResponse{
		Success:     true,
		DeployedURL: result.DeployedURL,
		Project:     s.toResponse(updated),
	}, nil
}

// ListFiles returns the names of the project's stored artifacts
func (s *ProjectService) ListFiles(ctx context.Context, userID, id string) ([]string, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	prefix := storage.ProjectPrefix(id)
	keys, err := s.artifacts.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return storage.RelativeNames(prefix, keys), nil
}

// Delete tears down everything the project provisioned and then removes its
// records. Records are kept when teardown fails hard.
func (s *ProjectService) Delete(ctx context.Context, userID, id string) (*DeleteProjectResponse, error) {
	project, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	// The lock is process-local without Redis; the stored status covers other instances.
	if project.Status == models.ProjectStatusBuilding {
		return nil, apperrors.ErrBuildInProgress
	}

	release, err := s.locker.Acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	report, err := s.teardown.Teardown(ctx, TeardownRequest{
		ProjectID:           id,
		ScriptName:          project.WorkerName,
		DatabaseID:          project.DatabaseID,
		OrphanedDatabaseIDs: project.OrphanedDatabaseIDs(),
	})
	if err != nil {
		return nil, fmt.Errorf("teardown failed: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	logger.WithContext(ctx).WithField("project_id", id).Info("Project deleted")
	return &DeleteProjectResponse{Success: true, Warnings: report.Warnings}, nil
}

func (s *ProjectService) getOwned(ctx context.Context, userID, id string) (*models.Project, error) {
	project, err := s.repo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, notFoundOr(err, "failed to get project")
	}
	return project, nil
}

// notFoundOr maps a missing row to ErrProjectNotFound and wraps anything else
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrProjectNotFound
	}
	return fmt.Errorf("%s: %w", message, err)
}

func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:                  project.ID,
		UserID:              project.UserID,
		Name:                project.Name,
		Status:              project.Status,
		DeployedURL:         project.DeployedURL,
		DatabaseID:          project.DatabaseID,
		WorkerName:          project.WorkerName,
		LastError:           project.LastError,
		OrphanedDatabaseIDs: project.OrphanedDatabaseIDs(),
		CreatedAt:           project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:           project.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// validationError turns validator output into a ValidationError naming the first failing field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
