package storage

import (
	"context"
	"fmt"

	"app-builder-backend/internal/config"
)

// NewFromConfig opens the artifact backend selected by STORAGE_BACKEND
func NewFromConfig(ctx context.Context, cfg *config.Config) (ArtifactStore, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendS3, "":
		return NewS3Store(ctx, S3Options{
			Endpoint:        cfg.R2Endpoint,
			Region:          cfg.R2Region,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			Bucket:          cfg.CodeBucket,
		})
	case config.StorageBackendSupabase:
		return NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.CodeBucket)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}
