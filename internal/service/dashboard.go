package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shenikar/rescue_dashboard/internal/auth"
	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard_mock.go -package=mocks

var ErrStorageDisabled = errors.New("service: media storage is not configured")

// MediaStore определяет контракт объектного хранилища фотографий
type MediaStore interface {
	Upload(ctx context.Context, content io.Reader) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

// DashboardService определяет контракт сводной статистики, Fitbit и медиа
type DashboardService interface {
	Stats(ctx context.Context, token string) (*models.Stats, error)
	FitbitConnect(ctx context.Context, token string) (*models.FitbitConnect, error)
	FitbitStatus(ctx context.Context, token string) (*models.FitbitStatus, error)
	FitbitData(ctx context.Context, token string) (*models.FitbitData, error)
	UploadPhoto(ctx context.Context, token string, content io.Reader) (string, error)
	DeletePhoto(ctx context.Context, token, publicURL string) error
}

type dashboardService struct {
	remote   RemoteAPI
	media    MediaStore
	notifier Notifier
	logger   *logrus.Logger
}

// NewDashboardService создает сервис; media может быть nil, если хранилище не настроено
func NewDashboardService(remote RemoteAPI, media MediaStore, notifier Notifier, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		remote:   remote,
		media:    media,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *dashboardService) Stats(ctx context.Context, token string) (*models.Stats, error) {
	return fetch(ctx, s, token, "Stats", "Failed to load statistics", s.remote.GetNGOStats)
}

func (s *dashboardService) FitbitConnect(ctx context.Context, token string) (*models.FitbitConnect, error) {
	return fetch(ctx, s, token, "FitbitConnect", "Failed to start Fitbit connection", s.remote.FitbitConnect)
}

func (s *dashboardService) FitbitStatus(ctx context.Context, token string) (*models.FitbitStatus, error) {
	return fetch(ctx, s, token, "FitbitStatus", "Failed to load Fitbit status", s.remote.FitbitStatus)
}

func (s *dashboardService) FitbitData(ctx context.Context, token string) (*models.FitbitData, error) {
	return fetch(ctx, s, token, "FitbitData", "Failed to load Fitbit data", s.remote.FitbitData)
}

// fetch - общий путь GET-запроса: проверка токена, лог, уведомление при ошибке
func fetch[T any](ctx context.Context, s *dashboardService, token, method, failure string, call func(context.Context, string) (*T, error)) (*T, error) {
	subject := auth.Subject(token)
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  method,
		"subject": subject,
	})
	if token == "" {
		log.Warn("Request without a token")
		return nil, auth.ErrMissingToken
	}
	log.Info("Fetching from remote API")

	out, err := call(ctx, token)
	if err != nil {
		log.WithError(err).Error("Remote API call failed")
		s.notify(ctx, token, models.NewNotification(models.NotificationError, subject, "", failure))
		return nil, fmt.Errorf("service: %s: %w", method, err)
	}
	return out, nil
}

// UploadPhoto загружает фотографию животного и возвращает публичный URL
func (s *dashboardService) UploadPhoto(ctx context.Context, token string, content io.Reader) (string, error) {
	subject := auth.Subject(token)
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "UploadPhoto",
		"subject": subject,
	})
	if token == "" {
		return "", auth.ErrMissingToken
	}
	if s.media == nil {
		return "", ErrStorageDisabled
	}

	publicURL, err := s.media.Upload(ctx, content)
	if err != nil {
		log.WithError(err).Error("Failed to upload photo")
		s.notify(ctx, token, models.NewNotification(models.NotificationError, subject, "", "Failed to upload photo"))
		return "", fmt.Errorf("service: could not upload photo: %w", err)
	}

	log.WithField("url", publicURL).Info("Photo uploaded successfully")
	return publicURL, nil
}

func (s *dashboardService) DeletePhoto(ctx context.Context, token, publicURL string) error {
	subject := auth.Subject(token)
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "DeletePhoto",
		"subject": subject,
		"url":     publicURL,
	})
	if token == "" {
		return auth.ErrMissingToken
	}
	if s.media == nil {
		return ErrStorageDisabled
	}

	if err := s.media.Delete(ctx, publicURL); err != nil {
		log.WithError(err).Error("Failed to delete photo")
		s.notify(ctx, token, models.NewNotification(models.NotificationError, subject, "", "Failed to delete photo"))
		return fmt.Errorf("service: could not delete photo: %w", err)
	}

	log.Info("Photo deleted successfully")
	return nil
}

func (s *dashboardService) notify(ctx context.Context, token string, notification models.Notification) {
	notification.Recipient = auth.Key(token)
	if err := s.notifier.Publish(context.WithoutCancel(ctx), notification); err != nil {
		s.logger.WithError(err).WithField("kind", notification.Kind).Warn("Failed to publish notification")
	}
}
