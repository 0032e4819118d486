// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Delivery log statuses.
const (
	DeliveryStatusSent   = "SENT"
	DeliveryStatusFailed = "FAILED"
)

// Delivery error categories recorded on failed delivery logs.
const (
	ErrorCategoryExpired   = "SUBSCRIPTION_EXPIRED" // Push service reported the subscription as gone.
	ErrorCategoryTransient = "TRANSIENT_ERROR"      // Retryable failure that exhausted its attempts.
	ErrorCategoryPermanent = "PERMANENT_ERROR"      // Non-retryable client-side failure.
)

// NotificationPayload is the wire shape delivered to the browser. It must
// round-trip verbatim through storage and transport.
type NotificationPayload struct {
	Title       string         `json:"title"`
	Body        string         `json:"body,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Image       string         `json:"image,omitempty"`
	ClickAction string         `json:"click_action,omitempty"`
	Silent      bool           `json:"silent,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

// Notification represents one dispatch request recorded for audit. It is
// created before any delivery attempt and never mutated afterwards.
type Notification struct {
	ID        uuid.UUID            `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	AppID     uuid.UUID            `json:"app_id"`     // The ID of the app this notification was dispatched for.
	Payload   *NotificationPayload `json:"payload"`    // Payload captured verbatim at dispatch time.
	IsSilent  bool                 `json:"is_silent"`  // Whether the payload requested a silent delivery.
	CreatedAt time.Time            `json:"created_at"` // Timestamp of when the dispatch was requested.
}

// DeliveryLog represents the terminal outcome of delivering one notification
// to one device. Exactly one row exists per targeted device per dispatch;
// retries are internal to a single logical delivery and are not logged
// individually.
type DeliveryLog struct {
	ID             uuid.UUID `json:"id"`                      // The Global Unique Identifier (GUID) for the log entry.
	NotificationID uuid.UUID `json:"notification_id"`         // The ID of the notification this log belongs to.
	DeviceID       uuid.UUID `json:"device_id"`               // The ID of the device the delivery targeted.
	Status         string    `json:"status"`                  // SENT or FAILED.
	ErrorMessage   string    `json:"error_message,omitempty"` // "<CATEGORY>: <text>" when Status is FAILED.
	SentAt         time.Time `json:"sent_at"`                 // Timestamp of when the delivery unit terminated.
}
