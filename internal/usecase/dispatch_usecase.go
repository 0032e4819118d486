// Package usecase defines the application use case interfaces.
package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchResult is the aggregate outcome of one dispatch call. It is derived
// from the per-device delivery logs and never persisted itself.
type DispatchResult struct {
	NotificationID uuid.UUID `json:"notification_id"`
	Sent           int       `json:"sent"`
	Failed         int       `json:"failed"`
}

// DispatchUsecase defines the interface for the notification dispatch engine.
type DispatchUsecase interface {
	// Dispatch records a notification, resolves the target audience to active
	// devices, delivers the payload to each device concurrently with bounded
	// retries, and logs one terminal outcome per device. A nil or empty
	// externalUserIDs targets every active device of the app. Per-device
	// failures are absorbed into the result; only resolution or initial
	// persistence failures are returned as errors.
	Dispatch(ctx context.Context, appID uuid.UUID, payload *entity.NotificationPayload, externalUserIDs []string) (*DispatchResult, error)

	// GetNotificationLogs retrieves the delivery logs for a notification owned
	// by the given app.
	GetNotificationLogs(ctx context.Context, appID, notificationID uuid.UUID) ([]*entity.DeliveryLog, error)

	// GetAppNotifications retrieves the most recent notifications for an app.
	GetAppNotifications(ctx context.Context, appID uuid.UUID, limit int) ([]*entity.Notification, error)
}
