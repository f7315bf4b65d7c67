package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/rescue_dashboard/internal/auth"
	"github.com/shenikar/rescue_dashboard/internal/config"
	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/shenikar/rescue_dashboard/internal/view"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident_mock.go -package=mocks

var ErrInvalidStatus = errors.New("service: invalid incident status")

// RemoteAPI определяет контракт удаленного REST API бэкенда
type RemoteAPI interface {
	ListIncidents(ctx context.Context, token string) ([]*models.Incident, error)
	GetIncident(ctx context.Context, token, id string) (*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, token, id string, status models.IncidentStatus) (*models.Incident, error)
	GetVolunteer(ctx context.Context, token, id string) (*models.Volunteer, error)
	GetNGOStats(ctx context.Context, token string) (*models.Stats, error)
	FitbitConnect(ctx context.Context, token string) (*models.FitbitConnect, error)
	FitbitStatus(ctx context.Context, token string) (*models.FitbitStatus, error)
	FitbitData(ctx context.Context, token string) (*models.FitbitData, error)
}

// Notifier определяет контракт доставки уведомлений пользователю
type Notifier interface {
	Publish(ctx context.Context, notification models.Notification) error
}

// StatusChangeRepository определяет контракт для журнала смены статусов
type StatusChangeRepository interface {
	Record(ctx context.Context, change *models.StatusChange) error
	ListByIncident(ctx context.Context, incidentID string, limit int) ([]*models.StatusChange, error)
}

// IncidentService определяет контракт загрузки доски и оптимистичного обновления статуса
type IncidentService interface {
	LoadBoard(ctx context.Context, token string) (view.Snapshot, error)
	CurrentBoard(token string) view.Snapshot
	GetIncident(ctx context.Context, token, id string) (*models.Incident, error)
	UpdateStatus(ctx context.Context, token, id string, status models.IncidentStatus) (*models.Incident, error)
	History(ctx context.Context, token, id string) ([]*models.StatusChange, error)
	ForgetBoard(token string)
	EvictIdle(maxIdle time.Duration) int
}

type incidentService struct {
	remote   RemoteAPI
	repo     StatusChangeRepository
	notifier Notifier
	boards   *view.Registry
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewIncidentService(remote RemoteAPI, repo StatusChangeRepository, notifier Notifier, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		remote:   remote,
		repo:     repo,
		notifier: notifier,
		boards:   view.NewRegistry(),
		logger:   logger,
		cfg:      cfg,
	}
}

// boardKey - ключ доски: хэш самого токена, а не его непроверенный субъект
func boardKey(token string) string {
	return auth.Key(token)
}

// LoadBoard загружает список инцидентов, подтягивает волонтеров и раскрывает доску
func (s *incidentService) LoadBoard(ctx context.Context, token string) (view.Snapshot, error) {
	subject := auth.Subject(token)
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "LoadBoard",
		"subject": subject,
	})
	if token == "" {
		log.Warn("Board load requested without a token")
		return view.Snapshot{Phase: view.PhaseIdle}, auth.ErrMissingToken
	}

	board := s.boards.Board(boardKey(token))
	board.BeginLoad()
	log.Info("Loading incident board")

	incidents, err := s.remote.ListIncidents(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from remote API")
		board.Fail(err)
		s.notify(ctx, token, models.NewNotification(models.NotificationError, subject, "", "Failed to load incidents"))
		return board.Snapshot(), fmt.Errorf("service: could not load incidents: %w", err)
	}

	s.resolveVolunteers(ctx, token, incidents)

	if err := ctx.Err(); err != nil {
		log.WithError(err).Warn("Board load cancelled before reveal")
		board.Fail(err)
		return board.Snapshot(), fmt.Errorf("service: board load cancelled: %w", err)
	}

	board.Load(incidents)
	log.WithField("count", len(incidents)).Info("Incident board loaded")
	return board.Snapshot(), nil
}

// CurrentBoard возвращает текущее состояние доски без обращения к API
func (s *incidentService) CurrentBoard(token string) view.Snapshot {
	if token == "" {
		return view.Snapshot{Phase: view.PhaseIdle}
	}
	return s.boards.Board(boardKey(token)).Snapshot()
}

// ForgetBoard удаляет доску токена, например при выходе из сессии
func (s *incidentService) ForgetBoard(token string) {
	if token == "" {
		return
	}
	s.boards.Drop(boardKey(token))
}

// EvictIdle удаляет доски, не использовавшиеся дольше maxIdle
func (s *incidentService) EvictIdle(maxIdle time.Duration) int {
	evicted := s.boards.EvictIdle(maxIdle)
	if evicted > 0 {
		s.logger.WithField("evicted", evicted).Info("Evicted idle incident boards")
	}
	return evicted
}

// resolveVolunteers запрашивает детали каждого назначенного волонтера один раз
// и дожидается всех запросов. Ошибка отдельного запроса проглатывается,
// инцидент остается без изменений.
func (s *incidentService) resolveVolunteers(ctx context.Context, token string, incidents []*models.Incident) {
	pending := make(map[string]struct{})
	for _, incident := range incidents {
		if incident == nil || incident.VolunteerActivity == nil || incident.VolunteerActivity.Volunteer != nil {
			continue
		}
		if id := incident.AssignedVolunteerID(); id != "" {
			pending[id] = struct{}{}
		}
	}
	if len(pending) == 0 {
		return
	}

	var (
		mu       sync.Mutex
		resolved = make(map[string]*models.Volunteer, len(pending))
		g        errgroup.Group
	)
	if s.cfg != nil && s.cfg.FanOutLimit > 0 {
		g.SetLimit(s.cfg.FanOutLimit)
	}

	for id := range pending {
		g.Go(func() error {
			volunteer, err := s.remote.GetVolunteer(ctx, token, id)
			if err != nil {
				s.logger.WithError(err).WithField("volunteer_id", id).Warn("Failed to resolve volunteer, keeping incident as is")
				return nil
			}
			mu.Lock()
			resolved[id] = volunteer
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for _, incident := range incidents {
		if incident == nil || incident.VolunteerActivity == nil {
			continue
		}
		if volunteer, ok := resolved[incident.AssignedVolunteerID()]; ok && incident.VolunteerActivity.Volunteer == nil {
			v := *volunteer
			incident.VolunteerActivity.Volunteer = &v
		}
	}
}

// GetIncident получает инцидент с разрешенным волонтером и освежает его на доске
func (s *incidentService) GetIncident(ctx context.Context, token, id string) (*models.Incident, error) {
	subject := auth.Subject(token)
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
		"subject":     subject,
	})
	if token == "" {
		log.Warn("Incident requested without a token")
		return nil, auth.ErrMissingToken
	}
	log.Info("Fetching incident by ID")

	incident, err := s.remote.GetIncident(ctx, token, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident from remote API")
		s.notify(ctx, token, models.NewNotification(models.NotificationError, subject, id, "Failed to load incident"))
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	s.resolveVolunteers(ctx, token, []*models.Incident{incident})
	s.boards.Board(boardKey(token)).Patch(incident)

	log.Info("Incident fetched successfully")
	return incident, nil
}

// UpdateStatus записывает новый статус в удаленный API и при успехе
// исправляет только совпадающий по ID инцидент на доске, без повторной загрузки.
// При ошибке доска не меняется и публикуется ровно одно уведомление об ошибке.
func (s *incidentService) UpdateStatus(ctx context.Context, token, id string, status models.IncidentStatus) (*models.Incident, error) {
	subject := auth.Subject(token)
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
		"subject":     subject,
	})
	if token == "" {
		log.Warn("Status update requested without a token")
		return nil, auth.ErrMissingToken
	}
	if !status.IsValid() {
		log.Warn("Rejected invalid status")
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	log.Info("Attempting to update incident status")

	board := s.boards.Board(boardKey(token))
	previous, onBoard := board.Find(id)

	confirmed, err := s.remote.UpdateIncidentStatus(ctx, token, id, status)
	if err != nil {
		log.WithError(err).Error("Failed to update incident status in remote API")
		s.notify(ctx, token, models.NewNotification(models.NotificationError, subject, id, "Failed to update incident status"))
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}

	updated := mergeUpdated(previous, confirmed, id, status)
	if onBoard {
		board.Patch(updated)
	}

	change := &models.StatusChange{
		IncidentID: id,
		Subject:    subject,
		ToStatus:   status,
	}
	if previous != nil {
		change.FromStatus = previous.Status
	}
	if err := s.repo.Record(ctx, change); err != nil {
		log.WithError(err).Warn("Failed to record status change")
	}

	s.notify(ctx, token, models.NewNotification(models.NotificationSuccess, subject, id, "Incident status updated"))
	log.Info("Incident status updated successfully")
	return updated, nil
}

// mergeUpdated собирает итоговый инцидент: ответ бэкенда, если он есть,
// иначе локальная копия с новым статусом. Разрешенный волонтер сохраняется.
func mergeUpdated(previous, confirmed *models.Incident, id string, status models.IncidentStatus) *models.Incident {
	var updated *models.Incident
	switch {
	case confirmed != nil:
		updated = confirmed.Clone()
		updated.Status = status
	case previous != nil:
		updated = previous.Clone()
		updated.Status = status
	default:
		return &models.Incident{ID: id, Status: status}
	}

	if previous != nil && previous.VolunteerActivity != nil && previous.VolunteerActivity.Volunteer != nil &&
		updated.VolunteerActivity != nil && updated.VolunteerActivity.Volunteer == nil &&
		updated.AssignedVolunteerID() == previous.AssignedVolunteerID() {
		v := *previous.VolunteerActivity.Volunteer
		updated.VolunteerActivity.Volunteer = &v
	}
	return updated
}

// History возвращает журнал смен статуса инцидента
func (s *incidentService) History(ctx context.Context, token, id string) ([]*models.StatusChange, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "History",
		"incident_id": id,
	})
	if token == "" {
		log.Warn("History requested without a token")
		return nil, auth.ErrMissingToken
	}

	limit := 50
	if s.cfg != nil && s.cfg.HistoryLimit > 0 {
		limit = s.cfg.HistoryLimit
	}

	changes, err := s.repo.ListByIncident(ctx, id, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list status changes")
		return nil, fmt.Errorf("service: could not list status changes: %w", err)
	}
	log.WithField("count", len(changes)).Info("Status changes listed successfully")
	return changes, nil
}

// notify публикует уведомление владельцу токена; ошибка доставки только логируется
func (s *incidentService) notify(ctx context.Context, token string, notification models.Notification) {
	notification.Recipient = auth.Key(token)
	if err := s.notifier.Publish(context.WithoutCancel(ctx), notification); err != nil {
		s.logger.WithError(err).WithField("kind", notification.Kind).Warn("Failed to publish notification")
	}
}
