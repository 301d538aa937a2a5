package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	supastorage "github.com/supabase-community/storage-go"
)

// SupabaseAPI is the subset of the storage-go client used by SupabaseStore
type SupabaseAPI interface {
	UploadFile(bucketID string, relativePath string, data io.Reader, fileOptions ...supastorage.FileOptions) (supastorage.FileUploadResponse, error)
	ListFiles(bucketID string, queryPath string, options supastorage.FileSearchOptions) ([]supastorage.FileObject, error)
	RemoveFile(bucketID string, paths []string) ([]supastorage.FileUploadResponse, error)
}

// SupabaseStore keeps artifacts in a Supabase Storage bucket
type SupabaseStore struct {
	client SupabaseAPI
	bucket string
}

// NewSupabaseStore connects to {supabaseURL}/storage/v1 with the service role key
func NewSupabaseStore(supabaseURL, serviceRoleKey, bucket string) (*SupabaseStore, error) {
	if supabaseURL == "" || serviceRoleKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required")
	}
	baseURL := strings.TrimRight(supabaseURL, "/")
	client := supastorage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)
	return NewSupabaseStoreWithClient(client, bucket), nil
}

// NewSupabaseStoreWithClient wraps an existing client
func NewSupabaseStoreWithClient(client SupabaseAPI, bucket string) *SupabaseStore {
	return &SupabaseStore{client: client, bucket: bucket}
}

// Put uploads content under key with upsert semantics.
// storage-go has no context support; ctx is only checked before the call.
func (s *SupabaseStore) Put(ctx context.Context, key, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ct := contentType(key)
	upsert := true
	_, err := s.client.UploadFile(s.bucket, key, strings.NewReader(content), supastorage.FileOptions{
		ContentType: &ct,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// List returns the full keys of the objects directly under prefix
func (s *SupabaseStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	folder := strings.TrimSuffix(prefix, "/")
	files, err := s.client.ListFiles(s.bucket, folder, supastorage.FileSearchOptions{Limit: 1000})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}
	keys := make([]string, 0, len(files))
	for _, file := range files {
		if file.Name == "" {
			continue
		}
		keys = append(keys, folder+"/"+file.Name)
	}
	return keys, nil
}

// Delete removes key
func (s *SupabaseStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.client.RemoveFile(s.bucket, []string{key}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
