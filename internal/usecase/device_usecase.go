package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration represents a browser subscription submitted at registration
type DeviceRegistration struct {
	ExternalUserID string                  `json:"external_user_id"`
	Subscription   entity.PushSubscription `json:"subscription"`
	UserAgent      string                  `json:"user_agent"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes an existing
	// subscription for the same endpoint
	RegisterDevice(ctx context.Context, appID uuid.UUID, registration *DeviceRegistration) (*entity.Device, error)

	// GetAppDevices retrieves all devices registered for an app
	GetAppDevices(ctx context.Context, appID uuid.UUID) ([]*entity.Device, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, appID, deviceID uuid.UUID) error
}
