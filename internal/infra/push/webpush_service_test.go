package push

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"net"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPushConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Push: &config.PushConfig{
			Subscriber:     "mailto:ops@example.com",
			TTL:            60,
			RequestTimeout: 5 * time.Second,
		},
	}
}

// testSubscription builds a subscription with a real P-256 key pair so payload
// encryption succeeds before the request is sent.
func testSubscription(t *testing.T, endpoint string) entity.PushSubscription {
	t.Helper()

	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)

	return entity.PushSubscription{
		Endpoint: endpoint,
		P256dh:   base64.RawURLEncoding.EncodeToString(priv.PublicKey().Bytes()),
		Auth:     base64.RawURLEncoding.EncodeToString(auth),
	}
}

func testVAPIDKeys(t *testing.T) entity.VAPIDKeys {
	t.Helper()

	private, public, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	return entity.VAPIDKeys{PublicKey: public, PrivateKey: private}
}

func TestWebPushService_Send_Accepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	svc := NewWebPushService(testPushConfig(t))

	err := svc.Send(context.Background(), testSubscription(t, server.URL), testVAPIDKeys(t), []byte(`{"title":"hi"}`))
	assert.NoError(t, err)
}

func TestWebPushService_Send_Gone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
		_, _ = w.Write([]byte("subscription no longer valid"))
	}))
	defer server.Close()

	svc := NewWebPushService(testPushConfig(t))

	err := svc.Send(context.Background(), testSubscription(t, server.URL), testVAPIDKeys(t), []byte(`{}`))
	require.Error(t, err)

	var pushErr *service.PushError
	require.ErrorAs(t, err, &pushErr)
	assert.Equal(t, http.StatusGone, pushErr.StatusCode)
	assert.Equal(t, "subscription no longer valid", pushErr.Message)
}

func TestWebPushService_Send_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewWebPushService(testPushConfig(t))

	err := svc.Send(context.Background(), testSubscription(t, server.URL), testVAPIDKeys(t), []byte(`{}`))

	var pushErr *service.PushError
	require.ErrorAs(t, err, &pushErr)
	assert.Equal(t, http.StatusServiceUnavailable, pushErr.StatusCode)
}

func TestTransportError_DeadlineExceeded(t *testing.T) {
	err := transportError(errors.Wrap(context.DeadlineExceeded, "request failed"))

	assert.Equal(t, service.PushErrCodeTimeout, err.Code)
}

func TestTransportError_DNSFailure(t *testing.T) {
	err := transportError(&net.DNSError{Err: "no such host", Name: "push.invalid"})

	assert.Equal(t, service.PushErrCodeNotFound, err.Code)
}

func TestTransportError_ConnectionReset(t *testing.T) {
	err := transportError(&net.OpError{Op: "read", Err: syscall.ECONNRESET})

	assert.Equal(t, service.PushErrCodeConnReset, err.Code)
}

func TestTransportError_GenericTimeout(t *testing.T) {
	err := transportError(&net.OpError{Op: "dial", Err: &timeoutError{}})

	assert.Equal(t, service.PushErrCodeTimeout, err.Code)
}

func TestTransportError_Unclassified(t *testing.T) {
	err := transportError(errors.New("tls handshake failure"))

	assert.Empty(t, err.Code)
	assert.Equal(t, 0, err.StatusCode)
}

type timeoutError struct{}

func (*timeoutError) Error() string   { return "i/o timeout" }
func (*timeoutError) Timeout() bool   { return true }
func (*timeoutError) Temporary() bool { return true }
