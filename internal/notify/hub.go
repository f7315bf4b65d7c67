package notify

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// sendBufferSize - сколько уведомлений может ждать отправки одному клиенту
	sendBufferSize = 16
	pingPeriod     = 50 * time.Second
	writeTimeout   = 10 * time.Second
)

type client struct {
	key  string
	send chan models.Notification
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub хранит websocket подключения, сгруппированные по ключу токена (auth.Key)
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
	logger  *logrus.Logger
}

// NewHub создает новый Hub
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.key]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.key] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[c.key]; ok {
		if _, ok := set[c]; ok {
			delete(set, c)
			c.close()
		}
		if len(set) == 0 {
			delete(h.clients, c.key)
		}
	}
}

// Count возвращает число подключений владельца ключа
func (h *Hub) Count(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[key])
}

// Broadcast отправляет уведомление подключениям его получателя.
// Уведомление без получателя не доставляется никому. Клиент с переполненным буфером отключается.
func (h *Hub) Broadcast(notification models.Notification) int {
	if notification.Recipient == "" {
		h.logger.WithField("notification_id", notification.ID).Warn("Notification without recipient dropped")
		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.clients[notification.Recipient]
	delivered := 0
	for c := range set {
		select {
		case c.send <- notification:
			delivered++
		default:
			h.logger.Warn("Client send buffer full, disconnecting")
			delete(set, c)
			c.close()
		}
	}
	if len(set) == 0 {
		delete(h.clients, notification.Recipient)
	}
	return delivered
}

// Serve обслуживает принятое подключение до его закрытия или отмены ctx
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, key, subject string) {
	c := &client{
		key:  key,
		send: make(chan models.Notification, sendBufferSize),
	}
	h.register(c)
	defer h.unregister(c)

	log := h.logger.WithField("subject", subject)
	log.Info("Notification client connected")

	// входящие сообщения не ожидаются, CloseRead отменяет ctx при закрытии соединения
	ctx = conn.CloseRead(ctx)
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case notification, ok := <-c.send:
			if !ok {
				_ = conn.Close(websocket.StatusPolicyViolation, "too slow")
				log.Info("Notification client dropped")
				return
			}
			// ключ получателя клиенту не отдается
			notification.Recipient = ""
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, conn, notification)
			cancel()
			if err != nil {
				log.WithError(err).Warn("Failed to write notification")
				return
			}
		case <-ticker.C:
			if err := conn.Ping(ctx); err != nil {
				log.WithError(err).Debug("Failed to ping client")
				return
			}
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "")
			log.Info("Notification client disconnected")
			return
		}
	}
}
