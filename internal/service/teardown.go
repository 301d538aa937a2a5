package service

import (
	"context"
	"fmt"

	"app-builder-backend/internal/logger"
	"app-builder-backend/internal/metrics"
	"app-builder-backend/internal/storage"
)

// TeardownRequest names what a project may have provisioned. Nil or empty
// identifiers are skipped.
type TeardownRequest struct {
	ProjectID           string
	ScriptName          *string
	DatabaseID          *string
	OrphanedDatabaseIDs []string
}

// TeardownReport lists the failures that were tolerated
type TeardownReport struct {
	Warnings         []string `json:"warnings"`
	DeletedArtifacts int      `json:"deleted_artifacts"`
}

// TeardownService removes a project's script, databases and artifacts
type TeardownService struct {
	gateway   PlatformGatewayInterface
	artifacts storage.ArtifactStore
}

// NewTeardownService creates a new teardown coordinator
func NewTeardownService(gateway PlatformGatewayInterface, artifacts storage.ArtifactStore) *TeardownService {
	return &TeardownService{gateway: gateway, artifacts: artifacts}
}

// Teardown deletes the remote resources first and the stored artifacts last.
// Remote failures become warnings; artifact failures abort.
func (s *TeardownService) Teardown(ctx context.Context, req TeardownRequest) (*TeardownReport, error) {
	log := logger.WithContext(ctx).WithField("project_id", req.ProjectID)
	report := &TeardownReport{Warnings: []string{}}

	scriptName := deref(req.ScriptName)
	databaseIDs := distinctNonEmpty(append([]string{deref(req.DatabaseID)}, req.OrphanedDatabaseIDs...)...)

	if scriptName != "" || len(databaseIDs) > 0 {
		if err := s.gateway.CheckConfigured(); err != nil {
			return nil, err
		}
	}

	if scriptName != "" {
		if err := s.gateway.DeleteService(ctx, scriptName); err != nil {
			report.warn(log, fmt.Sprintf("failed to delete script %s: %v", scriptName, err))
		}
	}
	for _, databaseID := range databaseIDs {
		if err := s.gateway.DeleteDatabase(ctx, databaseID); err != nil {
			report.warn(log, fmt.Sprintf("failed to delete database %s: %v", databaseID, err))
		}
	}

	prefix := storage.ProjectPrefix(req.ProjectID)
	keys, err := s.artifacts.List(ctx, prefix)
	if err != nil {
		return report, fmt.Errorf("failed to list artifacts: %w", err)
	}
	for _, key := range keys {
		if err := s.artifacts.Delete(ctx, key); err != nil {
			return report, fmt.Errorf("failed to delete artifact %s: %w", key, err)
		}
		report.DeletedArtifacts++
	}

	log.WithFields(map[string]interface{}{
		"warnings":          len(report.Warnings),
		"deleted_artifacts": report.DeletedArtifacts,
	}).Info("Teardown finished")
	return report, nil
}

func (r *TeardownReport) warn(log *logger.Logger, message string) {
	log.Warn(message)
	metrics.TeardownWarningsTotal.Inc()
	r.Warnings = append(r.Warnings, message)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func distinctNonEmpty(values ...string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
