// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to register an endpoint that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device subscription for an app.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDeviceByEndpoint retrieves a device by its subscription endpoint URL.
	FindDeviceByEndpoint(ctx context.Context, appID uuid.UUID, endpoint string) (*entity.Device, error)

	// FindActiveDevicesByApp retrieves all active devices for an app, optionally
	// filtered to the given external user IDs. A nil or empty filter matches all
	// active devices for the app.
	FindActiveDevicesByApp(ctx context.Context, appID uuid.UUID, externalUserIDs []string) ([]*entity.Device, error)

	// FindDevicesByApp retrieves all devices for an app (including inactive).
	FindDevicesByApp(ctx context.Context, appID uuid.UUID) ([]*entity.Device, error)

	// UpdateSubscription replaces the push subscription descriptor for a device
	// and reactivates it.
	UpdateSubscription(ctx context.Context, deviceID uuid.UUID, sub entity.PushSubscription) error

	// DeactivateDevice marks a device as inactive (soft delete). Device rows are
	// never removed so delivery history stays attributable.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}
