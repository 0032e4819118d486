package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthMiddleware(t *testing.T) (*AppAuthMiddleware, *mockRepo.MockAppRepository) {
	appRepo := mockRepo.NewMockAppRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAppAuthMiddleware(appRepo, logger), appRepo
}

// invokeAuth runs the middleware against a synthetic request and reports the
// response plus the app the inner handler observed, if it ran at all.
func invokeAuth(t *testing.T, m *AppAuthMiddleware, apiKey, apiSecret string) (*httptest.ResponseRecorder, *entity.App) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	if apiKey != "" {
		req.Header.Set(HeaderAPIKey, apiKey)
	}
	if apiSecret != "" {
		req.Header.Set(HeaderAPISecret, apiSecret)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.App
	handler := m.Authenticate(func(c echo.Context) error {
		app, ok := GetApp(c)
		require.True(t, ok)
		seen = app

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, seen
}

func TestAppAuthMiddleware_ValidCredentials(t *testing.T) {
	m, appRepo := createTestAuthMiddleware(t)

	app := &entity.App{ID: uuid.New(), Name: "Shop", APIKey: "key-1", APISecret: "secret-1"}
	appRepo.EXPECT().FindAppByAPIKey(mock.Anything, "key-1").Return(app, nil)

	rec, seen := invokeAuth(t, m, "key-1", "secret-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, app.ID, seen.ID)
}

func TestAppAuthMiddleware_MissingHeaders(t *testing.T) {
	m, appRepo := createTestAuthMiddleware(t)

	rec, seen := invokeAuth(t, m, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)

	rec, seen = invokeAuth(t, m, "key-1", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)

	// No lookup should happen before both headers are present.
	appRepo.AssertNotCalled(t, "FindAppByAPIKey", mock.Anything, mock.Anything)
}

func TestAppAuthMiddleware_UnknownKey(t *testing.T) {
	m, appRepo := createTestAuthMiddleware(t)

	appRepo.EXPECT().FindAppByAPIKey(mock.Anything, "missing").Return(nil, repository.ErrAppNotFound)

	rec, seen := invokeAuth(t, m, "missing", "whatever")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAppAuthMiddleware_WrongSecret(t *testing.T) {
	m, appRepo := createTestAuthMiddleware(t)

	app := &entity.App{ID: uuid.New(), APIKey: "key-1", APISecret: "secret-1"}
	appRepo.EXPECT().FindAppByAPIKey(mock.Anything, "key-1").Return(app, nil)

	rec, seen := invokeAuth(t, m, "key-1", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAppAuthMiddleware_LookupFailure(t *testing.T) {
	m, appRepo := createTestAuthMiddleware(t)

	appRepo.EXPECT().FindAppByAPIKey(mock.Anything, "key-1").Return(nil, errors.New("db down"))

	rec, seen := invokeAuth(t, m, "key-1", "secret-1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, seen)
}
