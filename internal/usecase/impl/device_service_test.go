package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceTestFixture struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
}

func createTestDeviceService(t *testing.T) *deviceTestFixture {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	return &deviceTestFixture{
		service:    NewDeviceService(deviceRepo, txManager),
		deviceRepo: deviceRepo,
		txManager:  txManager,
		factory:    factory,
	}
}

// expectTransaction makes the transaction manager run the callback against the
// fixture's repository factory, as a real committed transaction would.
func (fx *deviceTestFixture) expectTransaction(ctx context.Context) {
	fx.factory.EXPECT().NewDeviceRepository().Return(fx.deviceRepo)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func testRegistration() *usecase.DeviceRegistration {
	return &usecase.DeviceRegistration{
		ExternalUserID: "user-42",
		Subscription: entity.PushSubscription{
			Endpoint: "https://push.example.com/sub-1",
			P256dh:   "p256dh-key",
			Auth:     "auth-secret",
		},
		UserAgent: "Mozilla/5.0",
	}
}

func TestDeviceService_RegisterDevice_NewEndpoint(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	appID := uuid.New()
	registration := testRegistration()

	fx.expectTransaction(ctx)
	fx.deviceRepo.EXPECT().
		FindDeviceByEndpoint(ctx, appID, registration.Subscription.Endpoint).
		Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.MatchedBy(func(device *entity.Device) bool {
			return device.AppID == appID &&
				device.ExternalUserID == "user-42" &&
				device.Subscription == registration.Subscription &&
				device.IsActive
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, appID, registration)
	require.NoError(t, err)
	assert.Equal(t, appID, device.AppID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingEndpointRefreshes(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	appID := uuid.New()
	registration := testRegistration()
	existing := &entity.Device{
		ID:           uuid.New(),
		AppID:        appID,
		Subscription: entity.PushSubscription{Endpoint: registration.Subscription.Endpoint, P256dh: "stale", Auth: "stale"},
		IsActive:     false,
	}
	refreshed := &entity.Device{
		ID:           existing.ID,
		AppID:        appID,
		Subscription: registration.Subscription,
		IsActive:     true,
	}

	fx.expectTransaction(ctx)
	fx.deviceRepo.EXPECT().
		FindDeviceByEndpoint(ctx, appID, registration.Subscription.Endpoint).
		Return(existing, nil)
	fx.deviceRepo.EXPECT().
		UpdateSubscription(ctx, existing.ID, registration.Subscription).
		Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, appID, registration)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.True(t, device.IsActive)
	fx.deviceRepo.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything)
}

func TestDeviceService_RegisterDevice_InvalidSubscription(t *testing.T) {
	fx := createTestDeviceService(t)

	invalid := []*usecase.DeviceRegistration{
		{Subscription: entity.PushSubscription{P256dh: "k", Auth: "a"}},
		{Subscription: entity.PushSubscription{Endpoint: "https://push.example.com/x", Auth: "a"}},
		{Subscription: entity.PushSubscription{Endpoint: "https://push.example.com/x", P256dh: "k"}},
	}

	for _, registration := range invalid {
		_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), registration)
		assert.ErrorIs(t, err, ErrInvalidSubscription)
	}
}

func TestDeviceService_RegisterDevice_TransactionError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	appID := uuid.New()
	registration := testRegistration()

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("begin failed"))

	_, err := fx.service.RegisterDevice(ctx, appID, registration)
	assert.Error(t, err)
}

func TestDeviceService_GetAppDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	appID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), AppID: appID, IsActive: true},
		{ID: uuid.New(), AppID: appID, IsActive: false},
	}

	fx.deviceRepo.EXPECT().FindDevicesByApp(ctx, appID).Return(devices, nil)

	got, err := fx.service.GetAppDevices(ctx, appID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	appID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{ID: deviceID, AppID: appID, IsActive: true}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevice(ctx, deviceID).Return(nil)

	err := fx.service.DeactivateDevice(ctx, appID, deviceID)
	assert.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestDeviceService_DeactivateDevice_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{ID: deviceID, AppID: uuid.New()}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.ErrorIs(t, err, ErrDeviceUnauthorized)
	fx.deviceRepo.AssertNotCalled(t, "DeactivateDevice", mock.Anything, mock.Anything)
}
