package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rescue_dashboard/internal/config"
)

// NewRedisClient создает клиент Redis для очереди уведомлений и хранилища токена
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPass,
		DB:          cfg.RedisDB,
		PoolSize:    10,
		DialTimeout: 5 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	return rdb, nil
}
