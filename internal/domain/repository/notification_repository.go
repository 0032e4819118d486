// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByApp retrieves the most recent notifications for an app.
	FindNotificationsByApp(ctx context.Context, appID uuid.UUID, limit int) ([]*entity.Notification, error)

	// CreateDeliveryLog persists a single delivery log entry.
	CreateDeliveryLog(ctx context.Context, log *entity.DeliveryLog) error

	// FindDeliveryLogsByNotification retrieves all delivery logs for a
	// notification, most recent first.
	FindDeliveryLogsByNotification(ctx context.Context, notificationID uuid.UUID) ([]*entity.DeliveryLog, error)
}
