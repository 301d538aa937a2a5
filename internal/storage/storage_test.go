package storage_test

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"app-builder-backend/internal/config"
	"app-builder-backend/internal/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	supastorage "github.com/supabase-community/storage-go"
)

// fakeS3 keeps objects in a map and pages listings two keys at a time
type fakeS3 struct {
	objects      map[string]string
	contentTypes map[string]string
	listCalls    int
	deleteErr    error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]string{}, contentTypes: map[string]string{}}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = string(body)
	f.contentTypes[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.listCalls++
	var keys []string
	for k := range f.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	start := 0
	if in.ContinuationToken != nil {
		for i, k := range keys {
			if k == aws.ToString(in.ContinuationToken) {
				start = i
			}
		}
	}
	end := start + 2
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	if end < len(keys) {
		out.IsTruncated = aws.Bool(true)
		out.NextContinuationToken = aws.String(keys[end])
	} else {
		end = len(keys)
	}
	for _, k := range keys[start:end] {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	return out, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

// S3StoreTestSuite tests the R2-backed artifact store
type S3StoreTestSuite struct {
	suite.Suite
	client *fakeS3
	store  *storage.S3Store
}

func (suite *S3StoreTestSuite) SetupTest() {
	suite.client = newFakeS3()
	suite.store = storage.NewS3StoreWithClient(suite.client, "user-code")
}

func (suite *S3StoreTestSuite) TestPutOverwrites() {
	ctx := context.Background()
	key := storage.ProjectKey("p1", storage.ScriptFile)

	require.NoError(suite.T(), suite.store.Put(ctx, key, "v1"))
	require.NoError(suite.T(), suite.store.Put(ctx, key, "v2"))

	assert.Equal(suite.T(), "v2", suite.client.objects["projects/p1/worker.js"])
	assert.Equal(suite.T(), "application/javascript", suite.client.contentTypes["projects/p1/worker.js"])
}

func (suite *S3StoreTestSuite) TestListFollowsPages() {
	ctx := context.Background()
	for _, f := range []string{"a", "b", "c", "d", "e"} {
		suite.client.objects["projects/p1/"+f] = f
	}
	suite.client.objects["projects/p10/other"] = "x"

	keys, err := suite.store.List(ctx, storage.ProjectPrefix("p1"))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{
		"projects/p1/a", "projects/p1/b", "projects/p1/c", "projects/p1/d", "projects/p1/e",
	}, keys)
	assert.Equal(suite.T(), 3, suite.client.listCalls)
}

func (suite *S3StoreTestSuite) TestDeleteError() {
	suite.client.deleteErr = errors.New("access denied")

	err := suite.store.Delete(context.Background(), "projects/p1/worker.js")

	assert.ErrorContains(suite.T(), err, "access denied")
}

func TestS3StoreTestSuite(t *testing.T) {
	suite.Run(t, new(S3StoreTestSuite))
}

type fakeSupabase struct {
	uploaded map[string]string
	options  []supastorage.FileOptions
	listed   []string
	removed  [][]string
	files    []supastorage.FileObject
}

func (f *fakeSupabase) UploadFile(bucketID string, relativePath string, data io.Reader, fileOptions ...supastorage.FileOptions) (supastorage.FileUploadResponse, error) {
	body, _ := io.ReadAll(data)
	f.uploaded[bucketID+"/"+relativePath] = string(body)
	f.options = append(f.options, fileOptions...)
	return supastorage.FileUploadResponse{}, nil
}

func (f *fakeSupabase) ListFiles(bucketID string, queryPath string, options supastorage.FileSearchOptions) ([]supastorage.FileObject, error) {
	f.listed = append(f.listed, bucketID+"/"+queryPath)
	return f.files, nil
}

func (f *fakeSupabase) RemoveFile(bucketID string, paths []string) ([]supastorage.FileUploadResponse, error) {
	f.removed = append(f.removed, paths)
	return nil, nil
}

func TestSupabaseStore(t *testing.T) {
	ctx := context.Background()
	client := &fakeSupabase{
		uploaded: map[string]string{},
		files: []supastorage.FileObject{
			{Name: "index.html"},
			{Name: "worker.js"},
		},
	}
	store := storage.NewSupabaseStoreWithClient(client, "user-code")

	t.Run("Put upserts with content type", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "projects/p1/index.html", "<html></html>"))
		assert.Equal(t, "<html></html>", client.uploaded["user-code/projects/p1/index.html"])
		require.Len(t, client.options, 1)
		assert.True(t, *client.options[0].Upsert)
		assert.Equal(t, "text/html; charset=utf-8", *client.options[0].ContentType)
	})

	t.Run("List returns full keys", func(t *testing.T) {
		keys, err := store.List(ctx, "projects/p1/")
		require.NoError(t, err)
		assert.Equal(t, []string{"projects/p1/index.html", "projects/p1/worker.js"}, keys)
		assert.Equal(t, []string{"user-code/projects/p1"}, client.listed)
	})

	t.Run("Delete removes one key", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "projects/p1/worker.js"))
		assert.Equal(t, [][]string{{"projects/p1/worker.js"}}, client.removed)
	})

	t.Run("cancelled context short-circuits", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, store.Put(cancelled, "projects/p1/x", "x"), context.Canceled)
	})
}

func TestRelativeNames(t *testing.T) {
	prefix := storage.ProjectPrefix("p1")
	names := storage.RelativeNames(prefix, []string{"projects/p1/worker.js", "projects/p1/index.html"})
	assert.Equal(t, []string{"worker.js", "index.html"}, names)
	assert.Equal(t, "projects/p1/migration.sql", storage.ProjectKey("p1", storage.MigrationFile))
}

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("s3", func(t *testing.T) {
		store, err := storage.NewFromConfig(ctx, &config.Config{
			StorageBackend:    config.StorageBackendS3,
			CodeBucket:        "user-code",
			R2Endpoint:        "https://acct.r2.cloudflarestorage.com",
			R2AccessKeyID:     "key",
			R2SecretAccessKey: "secret",
		})
		require.NoError(t, err)
		assert.IsType(t, &storage.S3Store{}, store)
	})

	t.Run("supabase without credentials", func(t *testing.T) {
		_, err := storage.NewFromConfig(ctx, &config.Config{StorageBackend: config.StorageBackendSupabase, CodeBucket: "user-code"})
		assert.Error(t, err)
	})

	t.Run("supabase", func(t *testing.T) {
		store, err := storage.NewFromConfig(ctx, &config.Config{
			StorageBackend:         config.StorageBackendSupabase,
			CodeBucket:             "user-code",
			SupabaseURL:            "https://proj.supabase.co/",
			SupabaseServiceRoleKey: "service-role",
		})
		require.NoError(t, err)
		assert.IsType(t, &storage.SupabaseStore{}, store)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := storage.NewFromConfig(ctx, &config.Config{StorageBackend: "gcs"})
		assert.EqualError(t, err, `unsupported storage backend "gcs"`)
	})
}
