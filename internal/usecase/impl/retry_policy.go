package impl

import (
	"errors"
	"math"
	"net/http"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
)

// Decision is the retry policy's classification of one delivery error.
type Decision int

const (
	// DecisionRetryable marks transient failures: network-level errors,
	// push service overload, or 5xx responses.
	DecisionRetryable Decision = iota
	// DecisionPermanentGone marks a subscription the push service reports as
	// no longer existing (410 Gone). The device must be deactivated.
	DecisionPermanentGone
	// DecisionPermanentOther marks any other client-side failure (bad payload,
	// auth failure, malformed endpoint).
	DecisionPermanentOther
)

// ErrorCategory returns the category string recorded on failed delivery logs.
func (d Decision) ErrorCategory() string {
	switch d {
	case DecisionPermanentGone:
		return entity.ErrorCategoryExpired
	case DecisionRetryable:
		return entity.ErrorCategoryTransient
	default:
		return entity.ErrorCategoryPermanent
	}
}

// ClassifyPushError classifies a delivery error into a retry decision. It is a
// pure function of the error shape: the same error always yields the same
// decision.
func ClassifyPushError(err error) Decision {
	var pushErr *service.PushError
	if !errors.As(err, &pushErr) {
		return DecisionPermanentOther
	}

	if pushErr.StatusCode == http.StatusGone {
		return DecisionPermanentGone
	}
	if pushErr.StatusCode == http.StatusTooManyRequests {
		return DecisionRetryable
	}
	if pushErr.StatusCode >= 500 && pushErr.StatusCode < 600 {
		return DecisionRetryable
	}

	switch pushErr.Code {
	case service.PushErrCodeConnReset, service.PushErrCodeTimeout, service.PushErrCodeNotFound:
		return DecisionRetryable
	}

	return DecisionPermanentOther
}

// RetryPolicy is the bounded exponential backoff schedule for retryable
// delivery failures. It performs no I/O.
type RetryPolicy struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// NewRetryPolicy builds a policy from configuration.
func NewRetryPolicy(cfg config.RetryConfig) RetryPolicy {
	return RetryPolicy{
		MaxRetries:   cfg.MaxRetries,
		InitialDelay: cfg.InitialDelay,
		MaxDelay:     cfg.MaxDelay,
		Multiplier:   cfg.Multiplier,
	}
}

// Delay returns the backoff before re-attempting after the given zero-based
// attempt: min(InitialDelay * Multiplier^attempt, MaxDelay).
func (p RetryPolicy) Delay(attempt int) time.Duration {
	delay := time.Duration(float64(p.InitialDelay) * math.Pow(p.Multiplier, float64(attempt)))
	if delay <= 0 || delay > p.MaxDelay {
		return p.MaxDelay
	}

	return delay
}

// ShouldRetry reports whether another attempt is allowed after the given
// zero-based attempt failed with the given decision. A delivery unit therefore
// makes at most MaxRetries+1 transport attempts.
func (p RetryPolicy) ShouldRetry(d Decision, attempt int) bool {
	return d == DecisionRetryable && attempt < p.MaxRetries
}
