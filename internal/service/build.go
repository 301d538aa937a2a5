package service

import (
	"context"
	"fmt"
	"time"

	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/logger"
	"app-builder-backend/internal/metrics"
	"app-builder-backend/internal/storage"
)

// recentWindow is how many trailing messages the code step sees
const recentWindow = 10

// BuildResult is the deployment identity of a successful build
type BuildResult struct {
	DeployedURL string
	DatabaseID  string
	ScriptName  string
}

// BuildService runs the build pipeline: conversation, plan, code, artifacts,
// database, migration and deployment, strictly in that order.
type BuildService struct {
	gateway      PlatformGatewayInterface
	generator    GeneratorInterface
	conversation ConversationStore
	artifacts    storage.ArtifactStore
	bucketName   string
	newSecret    func() string
}

// NewBuildService creates a new build orchestrator
func NewBuildService(
	gateway PlatformGatewayInterface,
	generator GeneratorInterface,
	conversation ConversationStore,
	artifacts storage.ArtifactStore,
	bucketName string,
) *BuildService {
	return &BuildService{
		gateway:      gateway,
		generator:    generator,
		conversation: conversation,
		artifacts:    artifacts,
		bucketName:   bucketName,
		newSecret:    newDeploymentSecret,
	}
}

// Build generates and deploys one project. The first failing step aborts the
// run and comes back as a *BuildError naming the stage.
func (s *BuildService) Build(ctx context.Context, projectID, projectName, baseURL string) (*BuildResult, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id":   projectID,
		"project_name": projectName,
	})
	started := time.Now()

	result, err := s.run(ctx, log, projectID, baseURL)
	if err != nil {
		stage := ""
		if buildErr, ok := apperrors.AsBuildError(err); ok {
			stage = string(buildErr.Stage)
			if buildErr.ProvisionedDatabaseID != "" {
				log.WithField("database_id", buildErr.ProvisionedDatabaseID).Warn("Build failed after creating a database; it is left in place")
			}
		}
		metrics.ObserveBuild(stage, started)
		log.WithError(err).WithField("stage", stage).Error("Build failed")
		return nil, err
	}

	metrics.ObserveBuild("", started)
	log.WithField("deployed_url", result.DeployedURL).Infof("Build deployed in %s", time.Since(started).Round(time.Millisecond))
	return result, nil
}

func (s *BuildService) run(ctx context.Context, log *logger.Logger, projectID, baseURL string) (*BuildResult, error) {
	if err := s.gateway.CheckConfigured(); err != nil {
		return nil, &apperrors.BuildError{Stage: apperrors.StageConfigure, Err: err}
	}

	conversation, err := s.conversation.History(ctx, projectID)
	if err != nil {
		return nil, &apperrors.BuildError{Stage: apperrors.StageLoadConversation, Err: err}
	}
	log.Infof("Planning from %d messages", len(conversation))

	plan, err := s.generator.ProducePlan(ctx, conversation)
	if err != nil {
		return nil, &apperrors.BuildError{Stage: apperrors.StagePlan, Err: err}
	}
	log.WithField("app_name", plan.AppName).Info("Plan ready")

	artifacts, err := s.generator.ProduceCode(ctx, plan, recentMessages(conversation))
	if err != nil {
		return nil, &apperrors.BuildError{Stage: apperrors.StageCode, Err: err}
	}

	if err := s.storeArtifacts(ctx, projectID, artifacts); err != nil {
		return nil, &apperrors.BuildError{Stage: apperrors.StageStoreArtifacts, Err: err}
	}

	name := ResourceName(projectID)
	databaseID, err := s.gateway.CreateDatabase(ctx, name)
	if err != nil {
		return nil, &apperrors.BuildError{Stage: apperrors.StageCreateDatabase, Err: err}
	}

	statements := SplitMigration(artifacts.Migration)
	for i, statement := range statements {
		if _, err := s.gateway.RunStatement(ctx, databaseID, statement); err != nil {
			return nil, &apperrors.BuildError{
				Stage:                 apperrors.StageMigrate,
				Err:                   fmt.Errorf("statement %d of %d: %w", i+1, len(statements), err),
				ProvisionedDatabaseID: databaseID,
			}
		}
	}
	log.Infof("Applied %d migration statements", len(statements))

	err = s.gateway.DeployService(ctx, &DeploySpec{
		ScriptName: name,
		Script:     artifacts.Script,
		Assets:     []Asset{{Path: "/" + storage.DocumentFile, Content: []byte(artifacts.Document)}},
		DatabaseID: databaseID,
		BucketName: s.bucketName,
		Secret:     s.newSecret(),
	})
	if err != nil {
		return nil, &apperrors.BuildError{Stage: apperrors.StageDeploy, Err: err, ProvisionedDatabaseID: databaseID}
	}

	return &BuildResult{
		DeployedURL: DeployedURL(baseURL, projectID),
		DatabaseID:  databaseID,
		ScriptName:  name,
	}, nil
}

func (s *BuildService) storeArtifacts(ctx context.Context, projectID string, artifacts *GeneratedArtifacts) error {
	files := []struct {
		name    string
		content string
	}{
		{storage.ScriptFile, artifacts.Script},
		{storage.DocumentFile, artifacts.Document},
		{storage.MigrationFile, artifacts.Migration},
	}
	for _, f := range files {
		if err := s.artifacts.Put(ctx, storage.ProjectKey(projectID, f.name), f.content); err != nil {
			return fmt.Errorf("failed to store %s: %w", f.name, err)
		}
	}
	return nil
}

func recentMessages(conversation []ConversationMessage) []ConversationMessage {
	if len(conversation) <= recentWindow {
		return conversation
	}
	return conversation[len(conversation)-recentWindow:]
}
