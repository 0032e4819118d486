package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrDeviceNotFound is returned when a device is not found
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceUnauthorized is returned when an app tries to access a device it does not own
	ErrDeviceUnauthorized = errors.New("unauthorized to access this device")
	// ErrInvalidSubscription is returned when a registration lacks a usable subscription
	ErrInvalidSubscription = errors.New("subscription endpoint and keys are required")
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	txManager  repository.TransactionManager
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, txManager repository.TransactionManager) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		txManager:  txManager,
	}
}

// RegisterDevice registers a new device or refreshes the subscription of an
// existing device with the same endpoint. The lookup and write run in one
// transaction so two concurrent registrations of the same endpoint cannot both
// insert.
func (s *deviceService) RegisterDevice(ctx context.Context, appID uuid.UUID, registration *usecase.DeviceRegistration) (*entity.Device, error) {
	sub := registration.Subscription
	if sub.Endpoint == "" || sub.P256dh == "" || sub.Auth == "" {
		return nil, ErrInvalidSubscription
	}

	var device *entity.Device

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		txDeviceRepo := f.NewDeviceRepository()

		existing, err := txDeviceRepo.FindDeviceByEndpoint(ctx, appID, sub.Endpoint)
		if err == nil {
			// Same endpoint re-registered: refresh keys and reactivate.
			if err := txDeviceRepo.UpdateSubscription(ctx, existing.ID, sub); err != nil {
				return fmt.Errorf("failed to update subscription: %w", err)
			}

			device, err = txDeviceRepo.FindDeviceByID(ctx, existing.ID)
			if err != nil {
				return fmt.Errorf("failed to find device by ID: %w", err)
			}

			return nil
		}
		if !errors.Is(err, repository.ErrDeviceNotFound) {
			return fmt.Errorf("failed to find device by endpoint: %w", err)
		}

		device = &entity.Device{
			ID:             uuid.New(),
			AppID:          appID,
			ExternalUserID: registration.ExternalUserID,
			Subscription:   sub,
			UserAgent:      registration.UserAgent,
			IsActive:       true,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}

		if err := txDeviceRepo.CreateDevice(ctx, device); err != nil {
			return fmt.Errorf("failed to create device: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return device, nil
}

// GetAppDevices retrieves all devices registered for an app
func (s *deviceService) GetAppDevices(ctx context.Context, appID uuid.UUID) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindDevicesByApp(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by app: %w", err)
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, appID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}

		return fmt.Errorf("failed to find device by ID: %w", err)
	}

	if device.AppID != appID {
		return ErrDeviceUnauthorized
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to deactivate device: %w", err)
	}

	return nil
}
