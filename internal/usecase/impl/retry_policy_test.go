package impl

import (
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPushError_Gone(t *testing.T) {
	err := &service.PushError{StatusCode: 410, Message: "subscription expired"}

	assert.Equal(t, DecisionPermanentGone, ClassifyPushError(err))
}

func TestClassifyPushError_WrappedGone(t *testing.T) {
	err := errors.Wrap(&service.PushError{StatusCode: 410}, "push failed")

	assert.Equal(t, DecisionPermanentGone, ClassifyPushError(err))
}

func TestClassifyPushError_Retryable(t *testing.T) {
	retryable := []*service.PushError{
		{StatusCode: 429},
		{StatusCode: 500},
		{StatusCode: 503},
		{StatusCode: 599},
		{Code: service.PushErrCodeConnReset},
		{Code: service.PushErrCodeTimeout},
		{Code: service.PushErrCodeNotFound},
	}

	for _, err := range retryable {
		assert.Equal(t, DecisionRetryable, ClassifyPushError(err), "error: %v", err)
	}
}

func TestClassifyPushError_PermanentOther(t *testing.T) {
	permanent := []*service.PushError{
		{StatusCode: 400, Message: "bad request"},
		{StatusCode: 403, Message: "vapid mismatch"},
		{StatusCode: 404, Message: "not found"},
		{StatusCode: 413, Message: "payload too large"},
	}

	for _, err := range permanent {
		assert.Equal(t, DecisionPermanentOther, ClassifyPushError(err), "error: %v", err)
	}
}

func TestClassifyPushError_NonPushError(t *testing.T) {
	assert.Equal(t, DecisionPermanentOther, ClassifyPushError(errors.New("marshal failure")))
}

func TestClassifyPushError_Idempotent(t *testing.T) {
	err := &service.PushError{StatusCode: 503}

	first := ClassifyPushError(err)
	for range 10 {
		assert.Equal(t, first, ClassifyPushError(err))
	}
}

func TestDecision_ErrorCategory(t *testing.T) {
	assert.Equal(t, "SUBSCRIPTION_EXPIRED", DecisionPermanentGone.ErrorCategory())
	assert.Equal(t, "TRANSIENT_ERROR", DecisionRetryable.ErrorCategory())
	assert.Equal(t, "PERMANENT_ERROR", DecisionPermanentOther.ErrorCategory())
}

func TestRetryPolicy_Delay_ExponentialGrowth(t *testing.T) {
	policy := NewRetryPolicy(config.RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	})

	assert.Equal(t, 1*time.Second, policy.Delay(0))
	assert.Equal(t, 2*time.Second, policy.Delay(1))
	assert.Equal(t, 4*time.Second, policy.Delay(2))
	assert.Equal(t, 8*time.Second, policy.Delay(3))
}

func TestRetryPolicy_Delay_CappedAtMax(t *testing.T) {
	policy := NewRetryPolicy(config.RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	})

	assert.Equal(t, 10*time.Second, policy.Delay(4))
	assert.Equal(t, 10*time.Second, policy.Delay(20))
	// Large exponents overflow the duration; the cap must still hold.
	assert.Equal(t, 10*time.Second, policy.Delay(500))
}

func TestRetryPolicy_Delay_NonDecreasing(t *testing.T) {
	policy := NewRetryPolicy(config.RetryConfig{
		MaxRetries:   5,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   1.5,
	})

	prev := time.Duration(0)
	for attempt := 0; attempt < 30; attempt++ {
		delay := policy.Delay(attempt)
		assert.GreaterOrEqual(t, delay, prev, "attempt %d", attempt)
		assert.LessOrEqual(t, delay, policy.MaxDelay, "attempt %d", attempt)
		prev = delay
	}
}

func TestRetryPolicy_ShouldRetry(t *testing.T) {
	policy := NewRetryPolicy(config.RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	})

	assert.True(t, policy.ShouldRetry(DecisionRetryable, 0))
	assert.True(t, policy.ShouldRetry(DecisionRetryable, 2))
	assert.False(t, policy.ShouldRetry(DecisionRetryable, 3))

	// Permanent failures never retry, regardless of remaining budget.
	assert.False(t, policy.ShouldRetry(DecisionPermanentGone, 0))
	assert.False(t, policy.ShouldRetry(DecisionPermanentOther, 0))
}

func TestRetryPolicy_ShouldRetry_ZeroBudget(t *testing.T) {
	policy := NewRetryPolicy(config.RetryConfig{MaxRetries: 0, InitialDelay: time.Second, MaxDelay: time.Second, Multiplier: 2.0})

	assert.False(t, policy.ShouldRetry(DecisionRetryable, 0))
}
