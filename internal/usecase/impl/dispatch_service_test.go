package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchTestFixture struct {
	service          usecase.DispatchUsecase
	appRepo          *mockRepo.MockAppRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationRepo *mockRepo.MockNotificationRepository
	pushSvc          *mockSvc.MockPushService
	publisher        *mockSvc.MockEventPublisher
}

func createTestDispatchService(t *testing.T) *dispatchTestFixture {
	appRepo := mockRepo.NewMockAppRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Push: &config.PushConfig{
			Retry: config.RetryConfig{
				MaxRetries:   2,
				InitialDelay: time.Millisecond,
				MaxDelay:     4 * time.Millisecond,
				Multiplier:   2.0,
			},
		},
	}

	service := NewDispatchService(logger, appRepo, deviceRepo, notificationRepo, pushSvc, publisher, cfg)

	return &dispatchTestFixture{
		service:          service,
		appRepo:          appRepo,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
		pushSvc:          pushSvc,
		publisher:        publisher,
	}
}

func testApp() *entity.App {
	return &entity.App{
		ID:              uuid.New(),
		Name:            "Test App",
		VAPIDPublicKey:  "test-public-key",
		VAPIDPrivateKey: "test-private-key",
	}
}

func testDevice(appID uuid.UUID) *entity.Device {
	return &entity.Device{
		ID:    uuid.New(),
		AppID: appID,
		Subscription: entity.PushSubscription{
			Endpoint: "https://push.example.com/" + uuid.New().String(),
			P256dh:   "p256dh-key",
			Auth:     "auth-secret",
		},
		IsActive: true,
	}
}

func testPayload() *entity.NotificationPayload {
	return &entity.NotificationPayload{Title: "Order shipped", Body: "Your order is on the way"}
}

func TestDispatchService_Dispatch_AllDevicesSucceed(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()
	devices := []*entity.Device{testDevice(app.ID), testDevice(app.ID), testDevice(app.ID)}

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByApp(ctx, app.ID, mock.Anything).Return(devices, nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything, app.Keys(), mock.Anything).Return(nil).Times(3)
	fx.notificationRepo.EXPECT().
		CreateDeliveryLog(mock.Anything, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Status == entity.DeliveryStatusSent && log.ErrorMessage == ""
		})).
		Return(nil).
		Times(3)
	fx.publisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.Dispatch(ctx, app.ID, testPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.NotEqual(t, uuid.Nil, result.NotificationID)
}

func TestDispatchService_Dispatch_EmptyPayload(t *testing.T) {
	fx := createTestDispatchService(t)

	_, err := fx.service.Dispatch(context.Background(), uuid.New(), nil, nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = fx.service.Dispatch(context.Background(), uuid.New(), &entity.NotificationPayload{Body: "no title"}, nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestDispatchService_Dispatch_AppNotFound(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	appID := uuid.New()

	fx.appRepo.EXPECT().FindAppByID(ctx, appID).Return(nil, repository.ErrAppNotFound)

	_, err := fx.service.Dispatch(ctx, appID, testPayload(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrAppNotFound)
}

func TestDispatchService_Dispatch_NotificationPersistedBeforeDelivery(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.AppID == app.ID && n.Payload.Title == "Order shipped"
		})).
		Return(errors.New("insert failed"))

	_, err := fx.service.Dispatch(ctx, app.ID, testPayload(), nil)
	assert.Error(t, err)
	// No device was resolved and nothing was pushed: the audit record is a
	// precondition for delivery, not a side effect of it.
	fx.pushSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_NoActiveDevices(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByApp(ctx, app.ID, mock.Anything).Return([]*entity.Device{}, nil)
	fx.publisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.Dispatch(ctx, app.ID, testPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
	fx.pushSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_TargetedAudience(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()
	targets := []string{"user-1", "user-2"}
	device := testDevice(app.ID)

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByApp(ctx, app.ID, targets).Return([]*entity.Device{device}, nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, device.Subscription, app.Keys(), mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().CreateDeliveryLog(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.Dispatch(ctx, app.ID, testPayload(), targets)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestDispatchService_Dispatch_ExpiredSubscriptionDeactivatesDevice(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()
	device := testDevice(app.ID)

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByApp(ctx, app.ID, mock.Anything).Return([]*entity.Device{device}, nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.PushError{StatusCode: 410, Message: "subscription expired"}).
		Once()
	fx.notificationRepo.EXPECT().
		CreateDeliveryLog(mock.Anything, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Status == entity.DeliveryStatusFailed &&
				log.DeviceID == device.ID &&
				strings.HasPrefix(log.ErrorMessage, "SUBSCRIPTION_EXPIRED: ")
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().DeactivateDevice(mock.Anything, device.ID).Return(nil)
	fx.publisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.Dispatch(ctx, app.ID, testPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestDispatchService_Dispatch_TransientErrorRetriesThenSucceeds(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()
	device := testDevice(app.ID)

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByApp(ctx, app.ID, mock.Anything).Return([]*entity.Device{device}, nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.PushError{StatusCode: 503, Message: "service unavailable"}).
		Twice()
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Once()
	fx.notificationRepo.EXPECT().
		CreateDeliveryLog(mock.Anything, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Status == entity.DeliveryStatusSent
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.Dispatch(ctx, app.ID, testPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Failed)
}

func TestDispatchService_Dispatch_RetryBudgetExhausted(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()
	device := testDevice(app.ID)

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByApp(ctx, app.ID, mock.Anything).Return([]*entity.Device{device}, nil)
	// MaxRetries is 2 in the fixture config: one initial attempt plus two retries.
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.PushError{StatusCode: 500, Message: "internal error"}).
		Times(3)
	fx.notificationRepo.EXPECT().
		CreateDeliveryLog(mock.Anything, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Status == entity.DeliveryStatusFailed &&
				strings.HasPrefix(log.ErrorMessage, "TRANSIENT_ERROR: ")
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.Dispatch(ctx, app.ID, testPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	fx.deviceRepo.AssertNotCalled(t, "DeactivateDevice", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_PermanentErrorDoesNotRetry(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()
	device := testDevice(app.ID)

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByApp(ctx, app.ID, mock.Anything).Return([]*entity.Device{device}, nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.PushError{StatusCode: 400, Message: "bad request"}).
		Once()
	fx.notificationRepo.EXPECT().
		CreateDeliveryLog(mock.Anything, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Status == entity.DeliveryStatusFailed &&
				strings.HasPrefix(log.ErrorMessage, "PERMANENT_ERROR: ")
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.Dispatch(ctx, app.ID, testPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	fx.deviceRepo.AssertNotCalled(t, "DeactivateDevice", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_MixedOutcomes(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()
	healthy := testDevice(app.ID)
	expired := testDevice(app.ID)

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByApp(ctx, app.ID, mock.Anything).
		Return([]*entity.Device{healthy, expired}, nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, healthy.Subscription, mock.Anything, mock.Anything).Return(nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, expired.Subscription, mock.Anything, mock.Anything).
		Return(&service.PushError{StatusCode: 410, Message: "gone"})
	fx.notificationRepo.EXPECT().CreateDeliveryLog(mock.Anything, mock.Anything).Return(nil).Times(2)
	fx.deviceRepo.EXPECT().DeactivateDevice(mock.Anything, expired.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishDispatchEvent(mock.Anything, mock.MatchedBy(func(event *service.DispatchEvent) bool {
			return event.Sent == 1 && event.Failed == 1 && event.AppID == app.ID.String()
		})).
		Return(nil)

	result, err := fx.service.Dispatch(ctx, app.ID, testPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestDispatchService_Dispatch_LogWriteFailureIsAbsorbed(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()
	device := testDevice(app.ID)

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByApp(ctx, app.ID, mock.Anything).Return([]*entity.Device{device}, nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().CreateDeliveryLog(mock.Anything, mock.Anything).
		Return(errors.New("log table unavailable"))
	fx.publisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).Return(nil)

	// The push was delivered; a missing log row must not turn that into a failure.
	result, err := fx.service.Dispatch(ctx, app.ID, testPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestDispatchService_Dispatch_PublisherFailureIsAbsorbed(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	app := testApp()
	device := testDevice(app.ID)

	fx.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByApp(ctx, app.ID, mock.Anything).Return([]*entity.Device{device}, nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().CreateDeliveryLog(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).
		Return(errors.New("broker unreachable"))

	result, err := fx.service.Dispatch(ctx, app.ID, testPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestDispatchService_GetNotificationLogs_Success(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	appID := uuid.New()
	notificationID := uuid.New()
	logs := []*entity.DeliveryLog{
		{ID: uuid.New(), NotificationID: notificationID, Status: entity.DeliveryStatusSent},
		{ID: uuid.New(), NotificationID: notificationID, Status: entity.DeliveryStatusFailed},
	}

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, AppID: appID}, nil)
	fx.notificationRepo.EXPECT().FindDeliveryLogsByNotification(ctx, notificationID).Return(logs, nil)

	got, err := fx.service.GetNotificationLogs(ctx, appID, notificationID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDispatchService_GetNotificationLogs_OtherAppsNotificationIsNotFound(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, AppID: uuid.New()}, nil)

	_, err := fx.service.GetNotificationLogs(ctx, uuid.New(), notificationID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	fx.notificationRepo.AssertNotCalled(t, "FindDeliveryLogsByNotification", mock.Anything, mock.Anything)
}

func TestDispatchService_GetNotificationLogs_NotFound(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).
		Return(nil, repository.ErrNotificationNotFound)

	_, err := fx.service.GetNotificationLogs(ctx, uuid.New(), notificationID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestDispatchService_GetAppNotifications_DefaultLimit(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	appID := uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationsByApp(ctx, appID, 50).
		Return([]*entity.Notification{}, nil)

	_, err := fx.service.GetAppNotifications(ctx, appID, 0)
	require.NoError(t, err)
}

func TestDispatchService_GetAppNotifications_ExplicitLimit(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	appID := uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationsByApp(ctx, appID, 5).
		Return([]*entity.Notification{{ID: uuid.New(), AppID: appID}}, nil)

	got, err := fx.service.GetAppNotifications(ctx, appID, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
