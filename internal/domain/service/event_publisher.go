package service

import (
	"context"
)

// DispatchEvent represents the terminal outcome of one dispatch call, published
// for downstream consumers (analytics, audit pipelines).
type DispatchEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`
	AppID          string `json:"app_id"`
	Sent           int    `json:"sent"`
	Failed         int    `json:"failed"`
}

// EventPublisher defines the interface for publishing dispatch events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch outcome event for async processing
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
