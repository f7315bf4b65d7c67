package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rescue_dashboard/internal/models"
)

const (
	notificationQueueKey = "dashboard_notifications"
)

// RedisPublisher - реализация service.Notifier, складывающая уведомления в очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует уведомление в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, notification models.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// LPUSH кладет в левую часть списка, воркер забирает справа через BRPOP
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification to Redis: %w", err)
	}
	return nil
}
