package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/rescue_dashboard/internal/auth"
	"github.com/shenikar/rescue_dashboard/internal/config"
	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/shenikar/rescue_dashboard/internal/presenter"
	"github.com/shenikar/rescue_dashboard/internal/service/mocks"
	"github.com/shenikar/rescue_dashboard/internal/view"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "opaque-test-token"

type incidentMocks struct {
	remote   *mocks.MockRemoteAPI
	repo     *mocks.MockStatusChangeRepository
	notifier *mocks.MockNotifier
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T, cfg *config.Config) (*incidentService, incidentMocks) {
	ctrl := gomock.NewController(t)
	m := incidentMocks{
		remote:   mocks.NewMockRemoteAPI(ctrl),
		repo:     mocks.NewMockStatusChangeRepository(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if cfg == nil {
		cfg = &config.Config{HistoryLimit: 20}
	}

	svc := NewIncidentService(m.remote, m.repo, m.notifier, logger, cfg)
	return svc.(*incidentService), m
}

func remoteIncidents() []*models.Incident {
	return []*models.Incident{
		{ID: "a1", Status: models.StatusPending, AnimalInfo: models.AnimalInfo{Type: "dog", Severity: 3}},
		{ID: "a2", Status: models.StatusPending, AnimalInfo: models.AnimalInfo{Severity: 4},
			VolunteerActivity: &models.VolunteerActivity{Status: models.AssignmentAssigned, VolunteerID: "v1"}},
		{ID: "a3", Status: models.StatusInProgress, AnimalInfo: models.AnimalInfo{Severity: 7},
			VolunteerActivity: &models.VolunteerActivity{Status: models.AssignmentAssigned, VolunteerID: "v1"}},
		{ID: "a4", Status: models.StatusPending,
			VolunteerActivity: &models.VolunteerActivity{Status: models.AssignmentAssigned, VolunteerID: "v2"}},
		{ID: "a5", Status: models.StatusPending,
			VolunteerActivity: &models.VolunteerActivity{Status: models.AssignmentPending}},
	}
}

// loadBoard загружает доску из remoteIncidents с разрешенным волонтером v1
func loadBoard(t *testing.T, svc *incidentService, m incidentMocks) view.Snapshot {
	t.Helper()
	m.remote.EXPECT().ListIncidents(gomock.Any(), testToken).Return(remoteIncidents(), nil).Times(1)
	m.remote.EXPECT().GetVolunteer(gomock.Any(), testToken, "v1").Return(&models.Volunteer{ID: "v1", Name: "Asha"}, nil).Times(1)
	m.remote.EXPECT().GetVolunteer(gomock.Any(), testToken, "v2").Return(nil, errors.New("volunteer service down")).Times(1)

	snapshot, err := svc.LoadBoard(context.Background(), testToken)
	require.NoError(t, err)
	return snapshot
}

func TestLoadBoard_ResolvesVolunteers(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t, nil)

	// Действие
	snapshot := loadBoard(t, svc, m)

	// Проверки
	assert.Equal(t, view.PhaseLoaded, snapshot.Phase)
	require.Len(t, snapshot.Incidents, 5)

	labels := make(map[string]string)
	for _, incident := range snapshot.Incidents {
		labels[incident.ID] = presenter.VolunteerLabel(incident)
	}
	assert.Equal(t, "No Volunteer Assigned", labels["a1"])
	assert.Equal(t, "Asha", labels["a2"])
	assert.Equal(t, "Asha", labels["a3"])
	assert.Equal(t, "Assigned ", labels["a4"]) // запрос волонтера упал, инцидент сохранен
	assert.Equal(t, "Assigned ", labels["a5"])
	assert.Nil(t, snapshot.Incidents[3].VolunteerActivity.Volunteer)
}

func TestLoadBoard_RemoteFailure(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx := context.Background()
	remoteErr := errors.New("connection refused")

	m.remote.EXPECT().ListIncidents(ctx, testToken).Return(nil, remoteErr).Times(1)
	m.remote.EXPECT().GetVolunteer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.notifier.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Notification) error {
			assert.Equal(t, models.NotificationError, n.Kind)
			return nil
		}).Times(1)

	snapshot, err := svc.LoadBoard(ctx, testToken)

	require.Error(t, err)
	assert.ErrorIs(t, err, remoteErr)
	assert.Equal(t, view.PhaseError, snapshot.Phase)
	assert.Equal(t, "connection refused", snapshot.Err)
	assert.Equal(t, view.PhaseError, svc.CurrentBoard(testToken).Phase)
}

func TestLoadBoard_MissingToken(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	m.remote.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.LoadBoard(context.Background(), "")

	assert.ErrorIs(t, err, auth.ErrMissingToken)
}

func TestLoadBoard_FanOutLimit(t *testing.T) {
	svc, m := newTestIncidentService(t, &config.Config{FanOutLimit: 2})
	ctx := context.Background()

	incidents := make([]*models.Incident, 0, 10)
	for i := 0; i < 10; i++ {
		incidents = append(incidents, &models.Incident{
			ID:                fmt.Sprintf("a%d", i),
			VolunteerActivity: &models.VolunteerActivity{VolunteerID: fmt.Sprintf("v%d", i)},
		})
	}

	var inFlight, peak atomic.Int32
	m.remote.EXPECT().ListIncidents(ctx, testToken).Return(incidents, nil).Times(1)
	m.remote.EXPECT().
		GetVolunteer(ctx, testToken, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, id string) (*models.Volunteer, error) {
			current := inFlight.Add(1)
			for {
				old := peak.Load()
				if current <= old || peak.CompareAndSwap(old, current) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return &models.Volunteer{ID: id, Name: "name-" + id}, nil
		}).Times(10)

	snapshot, err := svc.LoadBoard(ctx, testToken)

	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	for _, incident := range snapshot.Incidents {
		require.NotNil(t, incident.VolunteerActivity.Volunteer)
		assert.Equal(t, "name-"+incident.VolunteerActivity.VolunteerID, incident.VolunteerActivity.Volunteer.Name)
	}
}

func TestLoadBoard_SkipsEmbeddedVolunteer(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx := context.Background()
	incidents := []*models.Incident{{
		ID: "a1",
		VolunteerActivity: &models.VolunteerActivity{
			VolunteerID: "v1",
			Volunteer:   &models.Volunteer{ID: "v1", Name: "Embedded"},
		},
	}}

	m.remote.EXPECT().ListIncidents(ctx, testToken).Return(incidents, nil).Times(1)
	m.remote.EXPECT().GetVolunteer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	snapshot, err := svc.LoadBoard(ctx, testToken)

	require.NoError(t, err)
	assert.Equal(t, "Embedded", presenter.VolunteerLabel(snapshot.Incidents[0]))
}

func TestLoadBoard_Cancelled(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	incidents := []*models.Incident{{ID: "a1", VolunteerActivity: &models.VolunteerActivity{VolunteerID: "v1"}}}

	m.remote.EXPECT().ListIncidents(ctx, testToken).Return(incidents, nil).Times(1)
	m.remote.EXPECT().
		GetVolunteer(ctx, testToken, "v1").
		DoAndReturn(func(ctx context.Context, _, _ string) (*models.Volunteer, error) {
			cancel()
			return nil, ctx.Err()
		}).Times(1)

	snapshot, err := svc.LoadBoard(ctx, testToken)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, view.PhaseError, snapshot.Phase)
}

func TestUpdateStatus_PatchesOnlyMatching(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t, nil)
	before := loadBoard(t, svc, m)
	ctx := context.Background()

	// Ожидания
	m.remote.EXPECT().
		UpdateIncidentStatus(ctx, testToken, "a2", models.StatusResolved).
		Return(nil, nil).
		Times(1)
	m.repo.EXPECT().
		Record(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, change *models.StatusChange) error {
			assert.Equal(t, "a2", change.IncidentID)
			assert.Equal(t, models.StatusPending, change.FromStatus)
			assert.Equal(t, models.StatusResolved, change.ToStatus)
			return nil
		}).Times(1)
	m.notifier.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Notification) error {
			assert.Equal(t, models.NotificationSuccess, n.Kind)
			assert.Equal(t, "a2", n.IncidentID)
			return nil
		}).Times(1)

	// Действие
	updated, err := svc.UpdateStatus(ctx, testToken, "a2", models.StatusResolved)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
	assert.Equal(t, "Asha", presenter.VolunteerLabel(updated))

	after := svc.CurrentBoard(testToken)
	require.Len(t, after.Incidents, len(before.Incidents))
	for i := range before.Incidents {
		if before.Incidents[i].ID == "a2" {
			assert.Equal(t, models.StatusResolved, after.Incidents[i].Status)
			continue
		}
		assert.Equal(t, before.Incidents[i], after.Incidents[i])
	}
}

func TestUpdateStatus_UsesConfirmedIncident(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	loadBoard(t, svc, m)
	ctx := context.Background()

	confirmed := &models.Incident{
		ID:     "a3",
		Status: models.StatusResolved,
		Location: models.Location{
			Address: "Updated address",
		},
		VolunteerActivity: &models.VolunteerActivity{Status: models.AssignmentAssigned, VolunteerID: "v1"},
	}
	m.remote.EXPECT().UpdateIncidentStatus(ctx, testToken, "a3", models.StatusResolved).Return(confirmed, nil).Times(1)
	m.repo.EXPECT().Record(ctx, gomock.Any()).Return(nil).Times(1)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	updated, err := svc.UpdateStatus(ctx, testToken, "a3", models.StatusResolved)

	require.NoError(t, err)
	assert.Equal(t, "Updated address", updated.Location.Address)
	assert.Equal(t, "Asha", presenter.VolunteerLabel(updated))
	onBoard, ok := svc.boards.Board(boardKey(testToken)).Find("a3")
	require.True(t, ok)
	assert.Equal(t, "Updated address", onBoard.Location.Address)
}

func TestUpdateStatus_FailureLeavesStateUnchanged(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t, nil)
	before := loadBoard(t, svc, m)
	ctx := context.Background()
	remoteErr := errors.New("503 from backend")

	// Ожидания
	m.remote.EXPECT().
		UpdateIncidentStatus(ctx, testToken, "a2", models.StatusInProgress).
		Return(nil, remoteErr).
		Times(1)
	m.repo.EXPECT().Record(gomock.Any(), gomock.Any()).Times(0)
	published := 0
	m.notifier.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Notification) error {
			published++
			assert.Equal(t, models.NotificationError, n.Kind)
			assert.Equal(t, "a2", n.IncidentID)
			return nil
		}).Times(1)

	// Действие
	updated, err := svc.UpdateStatus(ctx, testToken, "a2", models.StatusInProgress)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, remoteErr)
	assert.Nil(t, updated)
	assert.Equal(t, 1, published)
	assert.Equal(t, before, svc.CurrentBoard(testToken))
}

func TestUpdateStatus_NotificationFailureDoesNotFailUpdate(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	loadBoard(t, svc, m)
	ctx := context.Background()

	m.remote.EXPECT().UpdateIncidentStatus(ctx, testToken, "a1", models.StatusInProgress).Return(nil, nil).Times(1)
	m.repo.EXPECT().Record(ctx, gomock.Any()).Return(errors.New("db down")).Times(1)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	updated, err := svc.UpdateStatus(ctx, testToken, "a1", models.StatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
}

func TestUpdateStatus_NotOnBoard(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx := context.Background()

	m.remote.EXPECT().UpdateIncidentStatus(ctx, testToken, "zz", models.StatusResolved).Return(nil, nil).Times(1)
	m.repo.EXPECT().
		Record(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, change *models.StatusChange) error {
			assert.Empty(t, change.FromStatus)
			return nil
		}).Times(1)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	updated, err := svc.UpdateStatus(ctx, testToken, "zz", models.StatusResolved)

	require.NoError(t, err)
	assert.Equal(t, &models.Incident{ID: "zz", Status: models.StatusResolved}, updated)
	assert.Empty(t, svc.CurrentBoard(testToken).Incidents)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	m.remote.EXPECT().UpdateIncidentStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Недопустимый статус отсекается до записи в API: это ошибка запроса (400),
	// а не сбой обновления, поэтому уведомление не публикуется.
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateStatus(context.Background(), testToken, "a1", "archived")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_MissingToken(t *testing.T) {
	svc, _ := newTestIncidentService(t, nil)

	_, err := svc.UpdateStatus(context.Background(), "", "a1", models.StatusResolved)

	assert.ErrorIs(t, err, auth.ErrMissingToken)
}

func TestUpdateStatus_NotificationCarriesSubject(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx := context.Background()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ngo-7"}).SignedString([]byte("k"))
	require.NoError(t, err)

	m.remote.EXPECT().UpdateIncidentStatus(ctx, token, "a1", models.StatusResolved).Return(nil, errors.New("boom")).Times(1)
	m.notifier.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Notification) error {
			assert.Equal(t, "ngo-7", n.Subject)
			assert.Equal(t, auth.Key(token), n.Recipient)
			return nil
		}).Times(1)

	_, err = svc.UpdateStatus(ctx, token, "a1", models.StatusResolved)

	require.Error(t, err)
}

func TestBoardsAreIsolatedPerToken(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	loadBoard(t, svc, m)

	assert.Equal(t, view.PhaseLoaded, svc.CurrentBoard(testToken).Phase)
	assert.Equal(t, view.PhaseIdle, svc.CurrentBoard("another-token").Phase)
	assert.Equal(t, view.PhaseIdle, svc.CurrentBoard("").Phase)
}

func TestBoardsAreIsolatedForSameSubject(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx := context.Background()
	victim, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ngo-42"}).SignedString([]byte("secret-a"))
	require.NoError(t, err)
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ngo-42"}).SignedString([]byte("secret-b"))
	require.NoError(t, err)

	m.remote.EXPECT().ListIncidents(ctx, victim).Return([]*models.Incident{
		{ID: "a1", Status: models.StatusPending, ReporterInfo: models.ReporterInfo{Name: "Priya", Contact: "+91-555"}},
	}, nil).Times(1)

	_, err = svc.LoadBoard(ctx, victim)
	require.NoError(t, err)

	assert.Equal(t, view.PhaseLoaded, svc.CurrentBoard(victim).Phase)
	other := svc.CurrentBoard(forged)
	assert.Equal(t, view.PhaseIdle, other.Phase)
	assert.Empty(t, other.Incidents)

	_, found := svc.boards.Board(boardKey(forged)).Find("a1")
	assert.False(t, found)
}

func TestLoadBoard_FailureNotificationAddressedToToken(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx := context.Background()

	m.remote.EXPECT().ListIncidents(ctx, testToken).Return(nil, errors.New("remote down")).Times(1)
	m.notifier.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Notification) error {
			assert.Empty(t, n.Subject)
			assert.Equal(t, auth.Key(testToken), n.Recipient)
			assert.NotEmpty(t, n.Recipient)
			return nil
		}).Times(1)

	_, err := svc.LoadBoard(ctx, testToken)

	require.Error(t, err)
}

func TestForgetBoard(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	loadBoard(t, svc, m)
	require.Equal(t, 1, svc.boards.Len())

	svc.ForgetBoard("")
	assert.Equal(t, 1, svc.boards.Len())

	svc.ForgetBoard(testToken)
	assert.Equal(t, 0, svc.boards.Len())
	assert.Equal(t, view.PhaseIdle, svc.CurrentBoard(testToken).Phase)
}

func TestEvictIdle(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	loadBoard(t, svc, m)

	assert.Equal(t, 0, svc.EvictIdle(time.Hour))
	assert.Equal(t, 1, svc.boards.Len())

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, svc.EvictIdle(time.Millisecond))
	assert.Equal(t, 0, svc.boards.Len())
}

func TestGetIncident_Success(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx := context.Background()
	incident := &models.Incident{ID: "a9", VolunteerActivity: &models.VolunteerActivity{VolunteerID: "v3"}}

	m.remote.EXPECT().GetIncident(ctx, testToken, "a9").Return(incident, nil).Times(1)
	m.remote.EXPECT().GetVolunteer(ctx, testToken, "v3").Return(&models.Volunteer{ID: "v3", Name: "Lena"}, nil).Times(1)

	got, err := svc.GetIncident(ctx, testToken, "a9")

	require.NoError(t, err)
	assert.Equal(t, "Lena", presenter.VolunteerLabel(got))
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx := context.Background()

	m.remote.EXPECT().GetIncident(ctx, testToken, "missing").Return(nil, errors.New("not found")).Times(1)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	got, err := svc.GetIncident(ctx, testToken, "missing")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "could not get incident")
}

func TestHistory(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx := context.Background()
	changes := []*models.StatusChange{{IncidentID: "a1", ToStatus: models.StatusResolved}}

	m.repo.EXPECT().ListByIncident(ctx, "a1", 20).Return(changes, nil).Times(1)

	got, err := svc.History(ctx, testToken, "a1")

	require.NoError(t, err)
	assert.Equal(t, changes, got)
}

func TestHistory_RepositoryError(t *testing.T) {
	svc, m := newTestIncidentService(t, nil)
	ctx := context.Background()

	m.repo.EXPECT().ListByIncident(ctx, "a1", 20).Return(nil, errors.New("db down")).Times(1)

	_, err := svc.History(ctx, testToken, "a1")

	assert.ErrorContains(t, err, "could not list status changes")
}
