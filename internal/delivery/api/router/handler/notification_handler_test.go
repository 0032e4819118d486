package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beacon/internal/delivery/api/validator"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockusecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationTestContext(t *testing.T, method, target, body string, app *entity.App) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if app != nil {
		c.Set("app", app)
	}

	return c, rec
}

func testApp() *entity.App {
	return &entity.App{
		ID:     uuid.New(),
		Name:   "test-app",
		APIKey: "key_test",
	}
}

func TestNotificationHandler_SendNotification_Success(t *testing.T) {
	dispatchUC := mockusecase.NewMockDispatchUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		DispatchUC: dispatchUC,
		Logger:     slog.Default(),
	})

	app := testApp()
	notificationID := uuid.New()
	dispatchUC.EXPECT().
		Dispatch(mock.Anything, app.ID, mock.MatchedBy(func(p *entity.NotificationPayload) bool {
			return p.Title == "Order shipped" && p.Body == "Your order is on the way" && p.ClickAction == "https://example.com/orders"
		}), []string{"user-1", "user-2"}).
		Return(&usecase.DispatchResult{NotificationID: notificationID, Sent: 2, Failed: 1}, nil)

	body := `{
		"title": "Order shipped",
		"body": "Your order is on the way",
		"click_action": "https://example.com/orders",
		"external_user_ids": ["user-1", "user-2"]
	}`
	c, rec := newNotificationTestContext(t, http.MethodPost, "/api/v1/notifications/send", body, app)

	require.NoError(t, h.SendNotification(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data usecase.DispatchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, notificationID, resp.Data.NotificationID)
	assert.Equal(t, 2, resp.Data.Sent)
	assert.Equal(t, 1, resp.Data.Failed)
}

func TestNotificationHandler_SendNotification_MissingTitle(t *testing.T) {
	dispatchUC := mockusecase.NewMockDispatchUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		DispatchUC: dispatchUC,
		Logger:     slog.Default(),
	})

	c, rec := newNotificationTestContext(t, http.MethodPost, "/api/v1/notifications/send", `{"body":"no title"}`, testApp())

	require.NoError(t, h.SendNotification(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	dispatchUC.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationHandler_SendNotification_NoAppInContext(t *testing.T) {
	dispatchUC := mockusecase.NewMockDispatchUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		DispatchUC: dispatchUC,
		Logger:     slog.Default(),
	})

	c, rec := newNotificationTestContext(t, http.MethodPost, "/api/v1/notifications/send", `{"title":"hi"}`, nil)

	require.NoError(t, h.SendNotification(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNotificationHandler_SendNotification_AppNotFound(t *testing.T) {
	dispatchUC := mockusecase.NewMockDispatchUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		DispatchUC: dispatchUC,
		Logger:     slog.Default(),
	})

	app := testApp()
	dispatchUC.EXPECT().
		Dispatch(mock.Anything, app.ID, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrAppNotFound)

	c, rec := newNotificationTestContext(t, http.MethodPost, "/api/v1/notifications/send", `{"title":"hi"}`, app)

	require.NoError(t, h.SendNotification(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "APP_NOT_FOUND")
}

func TestNotificationHandler_GetNotificationHistory(t *testing.T) {
	dispatchUC := mockusecase.NewMockDispatchUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		DispatchUC: dispatchUC,
		Logger:     slog.Default(),
	})

	app := testApp()
	notifications := []*entity.Notification{
		{ID: uuid.New(), AppID: app.ID, CreatedAt: time.Now()},
	}
	dispatchUC.EXPECT().
		GetAppNotifications(mock.Anything, app.ID, 10).
		Return(notifications, nil)

	c, rec := newNotificationTestContext(t, http.MethodGet, "/api/v1/notifications?limit=10", "", app)

	require.NoError(t, h.GetNotificationHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), notifications[0].ID.String())
}

func TestNotificationHandler_GetNotificationHistory_InvalidLimit(t *testing.T) {
	dispatchUC := mockusecase.NewMockDispatchUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		DispatchUC: dispatchUC,
		Logger:     slog.Default(),
	})

	c, rec := newNotificationTestContext(t, http.MethodGet, "/api/v1/notifications?limit=banana", "", testApp())

	require.NoError(t, h.GetNotificationHistory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_LIMIT")
}

func TestNotificationHandler_GetNotificationLogs(t *testing.T) {
	dispatchUC := mockusecase.NewMockDispatchUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		DispatchUC: dispatchUC,
		Logger:     slog.Default(),
	})

	app := testApp()
	notificationID := uuid.New()
	logs := []*entity.DeliveryLog{
		{ID: uuid.New(), NotificationID: notificationID, Status: entity.DeliveryStatusSent},
	}
	dispatchUC.EXPECT().
		GetNotificationLogs(mock.Anything, app.ID, notificationID).
		Return(logs, nil)

	c, rec := newNotificationTestContext(t, http.MethodGet, "/", "", app)
	c.SetParamNames("id")
	c.SetParamValues(notificationID.String())

	require.NoError(t, h.GetNotificationLogs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), logs[0].ID.String())
}

func TestNotificationHandler_GetNotificationLogs_InvalidID(t *testing.T) {
	dispatchUC := mockusecase.NewMockDispatchUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		DispatchUC: dispatchUC,
		Logger:     slog.Default(),
	})

	c, rec := newNotificationTestContext(t, http.MethodGet, "/", "", testApp())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetNotificationLogs(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestNotificationHandler_GetNotificationLogs_OtherAppNotification(t *testing.T) {
	dispatchUC := mockusecase.NewMockDispatchUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		DispatchUC: dispatchUC,
		Logger:     slog.Default(),
	})

	app := testApp()
	notificationID := uuid.New()
	dispatchUC.EXPECT().
		GetNotificationLogs(mock.Anything, app.ID, notificationID).
		Return(nil, domainerrors.ErrNotificationNotFound)

	c, rec := newNotificationTestContext(t, http.MethodGet, "/", "", app)
	c.SetParamNames("id")
	c.SetParamValues(notificationID.String())

	require.NoError(t, h.GetNotificationLogs(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOTIFICATION_NOT_FOUND")
}
