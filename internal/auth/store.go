package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// TokenStore хранит один bearer-токен под фиксированным ключом
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type RedisTokenStore struct {
	redisClient *redis.Client
	key         string
}

func NewRedisTokenStore(client *redis.Client, key string) *RedisTokenStore {
	if key == "" {
		key = "token"
	}
	return &RedisTokenStore{
		redisClient: client,
		key:         key,
	}
}

// Get возвращает сохраненный токен или ErrMissingToken, если его нет
func (s *RedisTokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.redisClient.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrMissingToken
		}
		return "", fmt.Errorf("failed to read token from Redis: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrMissingToken
	}
	if err := s.redisClient.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to store token in Redis: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.redisClient.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear token in Redis: %w", err)
	}
	return nil
}

// CurrentSubject декодирует сохраненный токен. Любая ошибка дает пустую строку.
func CurrentSubject(ctx context.Context, store TokenStore) string {
	token, err := store.Get(ctx)
	if err != nil {
		return ""
	}
	return Subject(token)
}
