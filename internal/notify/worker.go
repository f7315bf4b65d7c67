package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rescue_dashboard/internal/config"
	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const popTimeout = 2 * time.Second

// Broadcaster доставляет уведомление подключенным клиентам
type Broadcaster interface {
	Broadcast(notification models.Notification) int
}

// Worker забирает уведомления из очереди Redis, рассылает их в websocket
// и, если настроено, отправляет на вебхук
type Worker struct {
	redisClient *redis.Client
	broadcaster Broadcaster
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, broadcaster Broadcaster, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		broadcaster: broadcaster,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди уведомлений
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
			}

			result, err := w.redisClient.BRPop(ctx, popTimeout, notificationQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop notification from Redis")
				time.Sleep(w.cfg.WebhookBaseDelay)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var notification models.Notification
			if err := json.Unmarshal([]byte(payload), &notification); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal notification from Redis")
				continue
			}

			w.process(ctx, notification, payload)
		}
	}()
}

func (w *Worker) process(ctx context.Context, notification models.Notification, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"notification_id": notification.ID,
		"kind":            notification.Kind,
		"subject":         notification.Subject,
	})

	if w.broadcaster != nil {
		delivered := w.broadcaster.Broadcast(notification)
		log.WithField("delivered", delivered).Debug("Notification broadcast to websocket clients")
	}

	if w.cfg.WebhookURL == "" {
		return
	}
	w.deliverWebhook(ctx, log, rawPayload)
}

// deliverWebhook отправляет уведомление на вебхук с экспоненциальной задержкой между попытками
func (w *Worker) deliverWebhook(ctx context.Context, log *logrus.Entry, rawPayload string) bool {
	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(delay):
			}
			delay *= 2
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Error("Failed to create webhook request")
			return false
		}
		req.Header.Set("Content-Type", "application/json")

		// HMAC подпись, если WEBHOOK_SECRET задан
		if w.cfg.WebhookSecret != "" {
			req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retries left: %d", maxRetries-1-i)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Webhook delivered successfully.")
			return true
		}
		log.Warnf("Webhook delivery failed with status code %d. Retries left: %d", resp.StatusCode, maxRetries-1-i)
	}

	log.Errorf("Failed to deliver webhook after %d attempts.", maxRetries)
	return false
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
