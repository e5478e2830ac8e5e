package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"creative-sync/internal/config/configs"
)

// NewRedisClient connects to the Redis instance described by cfg and
// verifies it answers a ping.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
