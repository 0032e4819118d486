package service

import (
	"context"
	"fmt"

	"beacon/internal/domain/entity"
)

// Transport-level error codes reported by PushError when the failure happened
// before any HTTP status was received.
const (
	PushErrCodeConnReset = "ECONNRESET"
	PushErrCodeTimeout   = "ETIMEDOUT"
	PushErrCodeNotFound  = "ENOTFOUND"
)

// PushError describes a failed delivery attempt. StatusCode carries the push
// service's HTTP status when one was received; Code carries a transport-level
// error code otherwise.
type PushError struct {
	StatusCode int    // HTTP status from the push service, 0 if none was received.
	Code       string // Transport-level error code, empty if the request reached the push service.
	Message    string // Human-readable description of the failure.
}

// Error implements the error interface.
func (e *PushError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("push service returned %d: %s", e.StatusCode, e.Message)
	}
	if e.Code != "" {
		return fmt.Sprintf("push transport error %s: %s", e.Code, e.Message)
	}

	return e.Message
}

// PushService defines the interface for the browser push delivery transport.
// It sends one encrypted payload to one subscription endpoint.
type PushService interface {
	// Send delivers payload to the subscription endpoint, signing the request
	// with the app's VAPID key pair. A non-2xx response or a transport failure
	// is returned as a *PushError.
	Send(ctx context.Context, sub entity.PushSubscription, keys entity.VAPIDKeys, payload []byte) error
}
