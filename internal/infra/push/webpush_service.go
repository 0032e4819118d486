// Package push contains the browser push protocol delivery transport.
package push

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// maxErrorBodyBytes bounds how much of a push service error response is kept.
const maxErrorBodyBytes = 1024

type webPushService struct {
	subscriber string
	ttl        int
	client     *http.Client
}

// NewWebPushService creates a web push transport instance
func NewWebPushService(cfg *config.Config) service.PushService {
	return &webPushService{
		subscriber: cfg.Push.Subscriber,
		ttl:        cfg.Push.TTL,
		client: &http.Client{
			Timeout: cfg.Push.RequestTimeout,
		},
	}
}

// Send delivers one encrypted payload to one subscription endpoint, signing
// the request with the app's VAPID key pair. Non-2xx responses and transport
// failures are returned as *service.PushError.
func (s *webPushService) Send(ctx context.Context, sub entity.PushSubscription, keys entity.VAPIDKeys, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  keys.PublicKey,
		VAPIDPrivateKey: keys.PrivateKey,
		TTL:             s.ttl,
	})
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	return &service.PushError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}

// transportError maps request-level failures (no HTTP status received) onto
// the transport error codes the retry policy understands.
func transportError(err error) *service.PushError {
	pushErr := &service.PushError{Message: err.Error()}

	var (
		dnsErr *net.DNSError
		netErr net.Error
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		pushErr.Code = service.PushErrCodeTimeout
	case errors.As(err, &dnsErr):
		pushErr.Code = service.PushErrCodeNotFound
	case errors.Is(err, syscall.ECONNRESET):
		pushErr.Code = service.PushErrCodeConnReset
	case errors.As(err, &netErr) && netErr.Timeout():
		pushErr.Code = service.PushErrCodeTimeout
	}

	return pushErr
}
