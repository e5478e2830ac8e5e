// Package redisadapter implements storage ports on Redis.
package redisadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"creative-sync/internal/core/port"
)

const defaultKeyPrefix = "creative-sync:notification:"

// DedupStore claims notification keys with SETNX so that replicas sharing a
// Redis instance agree on which one creates a notification.
type DedupStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewDedupStore returns a store using client. An empty keyPrefix selects
// the default.
func NewDedupStore(client *redis.Client, keyPrefix string) *DedupStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &DedupStore{client: client, keyPrefix: keyPrefix}
}

// Claim sets key for ttl if it is not already set. It returns true when
// this call set it.
func (s *DedupStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim dedup key: %w", err)
	}
	return ok, nil
}

// Release deletes key so it can be claimed again before its TTL runs out.
func (s *DedupStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release dedup key: %w", err)
	}
	return nil
}

var _ port.DedupStore = (*DedupStore)(nil)
