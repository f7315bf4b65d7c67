package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shenikar/rescue_dashboard/internal/auth"
	"github.com/shenikar/rescue_dashboard/internal/models"
	"github.com/shenikar/rescue_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDashboardService(t *testing.T, withMedia bool) (DashboardService, *mocks.MockRemoteAPI, *mocks.MockMediaStore, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockRemoteAPI(ctrl)
	media := mocks.NewMockMediaStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	var store MediaStore
	if withMedia {
		store = media
	}
	return NewDashboardService(remote, store, notifier, logger), remote, media, notifier
}

func TestStats_Success(t *testing.T) {
	svc, remote, _, _ := newTestDashboardService(t, false)
	ctx := context.Background()
	expected := &models.Stats{Total: 12, Critical: 3, Pending: 4, Resolved: 5}

	remote.EXPECT().GetNGOStats(ctx, testToken).Return(expected, nil).Times(1)

	stats, err := svc.Stats(ctx, testToken)

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestStats_FailureNotifies(t *testing.T) {
	svc, remote, _, notifier := newTestDashboardService(t, false)
	ctx := context.Background()
	remoteErr := errors.New("timeout")

	remote.EXPECT().GetNGOStats(ctx, testToken).Return(nil, remoteErr).Times(1)
	notifier.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Notification) error {
			assert.Equal(t, models.NotificationError, n.Kind)
			assert.Equal(t, "Failed to load statistics", n.Message)
			return nil
		}).Times(1)

	_, err := svc.Stats(ctx, testToken)

	assert.ErrorIs(t, err, remoteErr)
}

func TestStats_MissingToken(t *testing.T) {
	svc, remote, _, _ := newTestDashboardService(t, false)
	remote.EXPECT().GetNGOStats(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Stats(context.Background(), "")

	assert.ErrorIs(t, err, auth.ErrMissingToken)
}

func TestFitbit_PassThrough(t *testing.T) {
	svc, remote, _, _ := newTestDashboardService(t, false)
	ctx := context.Background()

	remote.EXPECT().FitbitConnect(ctx, testToken).Return(&models.FitbitConnect{AuthorizationURL: "https://fitbit.example/auth"}, nil).Times(1)
	remote.EXPECT().FitbitStatus(ctx, testToken).Return(&models.FitbitStatus{Connected: true}, nil).Times(1)
	remote.EXPECT().FitbitData(ctx, testToken).Return(&models.FitbitData{Steps: 1200}, nil).Times(1)

	connect, err := svc.FitbitConnect(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, "https://fitbit.example/auth", connect.AuthorizationURL)

	status, err := svc.FitbitStatus(ctx, testToken)
	require.NoError(t, err)
	assert.True(t, status.Connected)

	data, err := svc.FitbitData(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 1200, data.Steps)
}

func TestUploadPhoto_Success(t *testing.T) {
	svc, _, media, _ := newTestDashboardService(t, true)
	ctx := context.Background()
	content := strings.NewReader("jpeg-bytes")

	media.EXPECT().Upload(ctx, content).Return("https://res.cloudinary.com/demo/image/upload/incident-photos/1.jpg", nil).Times(1)

	url, err := svc.UploadPhoto(ctx, testToken, content)

	require.NoError(t, err)
	assert.Contains(t, url, "incident-photos/1.jpg")
}

func TestUploadPhoto_FailureNotifies(t *testing.T) {
	svc, _, media, notifier := newTestDashboardService(t, true)
	ctx := context.Background()

	media.EXPECT().Upload(ctx, gomock.Any()).Return("", errors.New("quota exceeded")).Times(1)
	notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.UploadPhoto(ctx, testToken, strings.NewReader("x"))

	assert.ErrorContains(t, err, "could not upload photo")
}

func TestUploadPhoto_StorageDisabled(t *testing.T) {
	svc, _, _, _ := newTestDashboardService(t, false)

	_, err := svc.UploadPhoto(context.Background(), testToken, strings.NewReader("x"))

	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestDeletePhoto(t *testing.T) {
	svc, _, media, notifier := newTestDashboardService(t, true)
	ctx := context.Background()
	url := "https://res.cloudinary.com/demo/image/upload/v1/incident-photos/1.jpg"

	media.EXPECT().Delete(ctx, url).Return(nil).Times(1)
	require.NoError(t, svc.DeletePhoto(ctx, testToken, url))

	media.EXPECT().Delete(ctx, url).Return(errors.New("gone")).Times(1)
	notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	assert.Error(t, svc.DeletePhoto(ctx, testToken, url))

	assert.ErrorIs(t, svc.DeletePhoto(ctx, "", url), auth.ErrMissingToken)
}
