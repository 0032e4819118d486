package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// EventNotifier defines convenience operations that trigger dispatches from
// backend events. Failures are logged, never propagated: an event notification
// that cannot be delivered must not abort the flow that raised it.
type EventNotifier interface {
	// NotifyUser dispatches a notification to every active device of one
	// external user identity.
	NotifyUser(ctx context.Context, appID uuid.UUID, externalUserID string, payload *entity.NotificationPayload)

	// NotifyAdmins dispatches a notification to each approved super admin,
	// one independent dispatch per identity.
	NotifyAdmins(ctx context.Context, appID uuid.UUID, payload *entity.NotificationPayload)
}
