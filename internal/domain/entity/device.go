// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is the endpoint and encryption key bundle a browser push
// service issues to a device. It is required to send the device a push message.
type PushSubscription struct {
	Endpoint string `json:"endpoint"` // Push service endpoint URL for this device.
	P256dh   string `json:"p256dh"`   // Client public key for payload encryption.
	Auth     string `json:"auth"`     // Client authentication secret.
}

// Device represents a browser device registered for push notifications.
type Device struct {
	ID             uuid.UUID        `json:"id"`               // The Global Unique Identifier (GUID) for the device.
	AppID          uuid.UUID        `json:"app_id"`           // The ID of the app this device belongs to.
	ExternalUserID string           `json:"external_user_id"` // Caller-supplied user identity (e.g. an email) for targeting.
	Subscription   PushSubscription `json:"subscription"`     // Browser push subscription descriptor.
	UserAgent      string           `json:"user_agent"`       // User agent reported at registration time.
	IsActive       bool             `json:"is_active"`        // Indicates if this device is eligible for delivery.
	CreatedAt      time.Time        `json:"created_at"`       // Timestamp of when this device was registered.
	UpdatedAt      time.Time        `json:"updated_at"`       // Timestamp of the last modification.
}
