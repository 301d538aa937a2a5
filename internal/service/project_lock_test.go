package service_test

import (
	"context"
	"testing"
	"time"

	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProjectLocker(t *testing.T) {
	locker := service.NewMemoryProjectLocker()
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "p1")
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, "p1")
	assert.ErrorIs(t, err, apperrors.ErrBuildInProgress)

	other, err := locker.Acquire(ctx, "p2")
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := locker.Acquire(ctx, "p1")
	require.NoError(t, err)
	again()
}

func newRedisLocker(t *testing.T, ttl time.Duration) (*service.RedisProjectLocker, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return service.NewRedisProjectLocker(client, ttl), mr
}

func TestRedisProjectLocker(t *testing.T) {
	locker, mr := newRedisLocker(t, time.Minute)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("app-builder:project-lock:p1"))

	_, err = locker.Acquire(ctx, "p1")
	assert.ErrorIs(t, err, apperrors.ErrBuildInProgress)

	release()
	assert.False(t, mr.Exists("app-builder:project-lock:p1"))

	again, err := locker.Acquire(ctx, "p1")
	require.NoError(t, err)
	again()
}

func TestRedisProjectLocker_ExpiredLeaseIsNotReleasedByOldHolder(t *testing.T) {
	locker, mr := newRedisLocker(t, time.Second)
	ctx := context.Background()

	staleRelease, err := locker.Acquire(ctx, "p1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	freshRelease, err := locker.Acquire(ctx, "p1")
	require.NoError(t, err)

	staleRelease()
	assert.True(t, mr.Exists("app-builder:project-lock:p1"), "stale holder removed the new lease")

	freshRelease()
	assert.False(t, mr.Exists("app-builder:project-lock:p1"))
}

func TestRedisProjectLocker_Unavailable(t *testing.T) {
	locker, mr := newRedisLocker(t, time.Minute)
	mr.Close()

	_, err := locker.Acquire(context.Background(), "p1")

	require.Error(t, err)
	assert.False(t, apperrors.IsConflict(err))
}
