package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/rescue_dashboard/internal/config"
	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBroadcaster struct {
	received []models.Notification
}

func (f *fakeBroadcaster) Broadcast(n models.Notification) int {
	f.received = append(f.received, n)
	return 1
}

func newTestWorker(cfg *config.Config, b Broadcaster) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewWorker(nil, b, logger, cfg)
}

func testPayload(t *testing.T) (models.Notification, string) {
	n := models.NewNotification(models.NotificationSuccess, "user-1", "a1", "Incident status updated")
	raw, err := json.Marshal(n)
	require.NoError(t, err)
	return n, string(raw)
}

func TestGenerateHMACSHA256(t *testing.T) {
	// эталон: echo -n 'payload' | openssl dgst -sha256 -hmac 'secret'
	assert.Equal(t,
		"b82fcb791acec57859b989b430a826488ce2e479fdf92326bd0a2e8375a42ba4",
		generateHMACSHA256("payload", "secret"))
}

func TestProcess_BroadcastsWithoutWebhook(t *testing.T) {
	b := &fakeBroadcaster{}
	w := newTestWorker(&config.Config{WebhookMaxRetries: 1}, b)
	n, raw := testPayload(t)

	w.process(context.Background(), n, raw)

	require.Len(t, b.received, 1)
	assert.Equal(t, n.ID, b.received[0].ID)
}

func TestDeliverWebhook_SignsPayload(t *testing.T) {
	_, raw := testPayload(t)
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, raw, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, generateHMACSHA256(raw, "s3cret"), r.Header.Get("X-Webhook-Signature"))
		rw.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}, nil)

	ok := w.deliverWebhook(context.Background(), logrus.NewEntry(w.logger), raw)

	assert.True(t, ok)
}

func TestDeliverWebhook_RetriesThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-Webhook-Signature"))
		if attempts.Add(1) < 3 {
			rw.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		rw.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}, nil)
	_, raw := testPayload(t)

	ok := w.deliverWebhook(context.Background(), logrus.NewEntry(w.logger), raw)

	assert.True(t, ok)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestDeliverWebhook_GivesUp(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	}, nil)
	_, raw := testPayload(t)

	ok := w.deliverWebhook(context.Background(), logrus.NewEntry(w.logger), raw)

	assert.False(t, ok)
	assert.Equal(t, int32(2), attempts.Load())
}
