package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// MemoryProjectLocker serializes work on a project inside one process
type MemoryProjectLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryProjectLocker creates a process-local locker
func NewMemoryProjectLocker() *MemoryProjectLocker {
	return &MemoryProjectLocker{held: make(map[string]struct{})}
}

// Acquire takes the project's lock or fails with ErrBuildInProgress
func (l *MemoryProjectLocker) Acquire(_ context.Context, projectID string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.held[projectID]; busy {
		return nil, apperrors.ErrBuildInProgress
	}
	l.held[projectID] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, projectID)
			l.mu.Unlock()
		})
	}, nil
}

// releaseScript deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisProjectLocker serializes work on a project across instances with a
// lease in Redis. The lease expires on its own if the holder dies.
type RedisProjectLocker struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisProjectLocker creates a Redis-backed locker. ttl should exceed the
// longest build.
func NewRedisProjectLocker(client *redis.Client, ttl time.Duration) *RedisProjectLocker {
	return &RedisProjectLocker{
		client: client,
		ttl:    ttl,
		prefix: "app-builder:project-lock:",
	}
}

// Acquire takes the project's lease or fails with ErrBuildInProgress
func (l *RedisProjectLocker) Acquire(ctx context.Context, projectID string) (func(), error) {
	key := l.prefix + projectID
	token := randomID()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire project lock: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrBuildInProgress
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
				logger.WithContext(ctx).WithError(err).WithField("project_id", projectID).Warn("Failed to release project lock")
			}
		})
	}, nil
}
