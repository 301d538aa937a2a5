// Package storage holds generated build artifacts, keyed by path.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
)

//go:generate mockgen -source=artifacts.go -destination=../mocks/storage_mocks.go -package=mocks

// ArtifactStore is a flat blob store addressed by key
type ArtifactStore interface {
	Put(ctx context.Context, key, content string) error
	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, key string) error
}

// Generated artifact file names
const (
	ScriptFile    = "worker.js"
	DocumentFile  = "index.html"
	MigrationFile = "migration.sql"
)

// ProjectPrefix is the key prefix holding every artifact of a project
func ProjectPrefix(projectID string) string {
	return fmt.Sprintf("projects/%s/", projectID)
}

// ProjectKey is the storage key of one artifact file
func ProjectKey(projectID, file string) string {
	return ProjectPrefix(projectID) + file
}

// RelativeNames strips prefix from every key
func RelativeNames(prefix string, keys []string) []string {
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, prefix))
	}
	return names
}

func contentType(key string) string {
	switch path.Ext(key) {
	case ".js", ".mjs":
		return "application/javascript"
	case ".html":
		return "text/html; charset=utf-8"
	case ".sql":
		return "application/sql"
	case ".json":
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}
