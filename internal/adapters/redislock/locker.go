// internal/adapters/redislock/locker.go

// Package redislock serializes scheduled passes. The scheduler fires on a
// fixed interval with no overlap guarantee, so each processor takes a
// short-lived redis lock before running; an overlapping tick is skipped, not
// queued. The TTL bounds how long a crashed pass can hold the lock.
package redislock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// PassLock is a best-effort mutex backed by redis SET NX with a TTL.
type PassLock struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewPassLock creates a new pass lock
func NewPassLock(client *redis.Client, ttl time.Duration, logger *slog.Logger) *PassLock {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &PassLock{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("adapter", "redislock")),
	}
}

// Acquire takes the named lock. It reports false without error when another
// pass currently holds it.
func (l *PassLock) Acquire(ctx context.Context, name string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(name), time.Now().UTC().Format(time.RFC3339), l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", name, err)
	}
	if ok {
		l.logger.DebugContext(ctx, "pass lock acquired", slog.String("lock", name))
	}
	return ok, nil
}

// Release drops the named lock. Safe to call on an expired lock.
func (l *PassLock) Release(ctx context.Context, name string) error {
	if err := l.client.Del(ctx, l.key(name)).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", name, err)
	}
	return nil
}

func (l *PassLock) key(name string) string {
	return "wms-sync:lock:" + name
}
