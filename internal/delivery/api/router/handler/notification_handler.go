package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"beacon/internal/delivery/api/middleware"
	"beacon/internal/delivery/api/response"
	"beacon/internal/domain/entity"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// SendNotificationRequest represents the request body for dispatching a notification
type SendNotificationRequest struct {
	Title           string         `json:"title" validate:"required"`
	Body            string         `json:"body"`
	Icon            string         `json:"icon" validate:"omitempty,url"`
	Image           string         `json:"image" validate:"omitempty,url"`
	ClickAction     string         `json:"click_action" validate:"omitempty,url"`
	Silent          bool           `json:"silent"`
	Data            map[string]any `json:"data"`
	ExternalUserIDs []string       `json:"external_user_ids"`
}

// SendNotification dispatches a notification to the authenticated app's devices.
// The response reports how many devices ended up SENT and how many FAILED.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	app, ok := middleware.GetApp(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "App not found in context")
	}

	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payload := &entity.NotificationPayload{
		Title:       req.Title,
		Body:        req.Body,
		Icon:        req.Icon,
		Image:       req.Image,
		ClickAction: req.ClickAction,
		Silent:      req.Silent,
		Data:        req.Data,
	}

	result, err := h.dispatchUC.Dispatch(c.Request().Context(), app.ID, payload, req.ExternalUserIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetNotificationHistory retrieves the most recent notifications for the app.
// An optional ?limit= query parameter caps the page size.
func (h *NotificationHandler) GetNotificationHistory(c echo.Context) error {
	app, ok := middleware.GetApp(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "App not found in context")
	}

	limit := 0
	if rawLimit := c.QueryParam("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a positive integer")
		}
		limit = parsed
	}

	notifications, err := h.dispatchUC.GetAppNotifications(c.Request().Context(), app.ID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// GetNotificationLogs retrieves the per-device delivery logs for a notification.
func (h *NotificationHandler) GetNotificationLogs(c echo.Context) error {
	app, ok := middleware.GetApp(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "App not found in context")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	logs, err := h.dispatchUC.GetNotificationLogs(c.Request().Context(), app.ID, notificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}
