package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/api/middleware"
	"beacon/internal/delivery/api/response"
	"beacon/internal/domain/entity"
	"beacon/internal/usecase"
	usecaseimpl "beacon/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// SubscriptionRequest mirrors the browser PushSubscription JSON shape.
type SubscriptionRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" validate:"required"`
		Auth   string `json:"auth" validate:"required"`
	} `json:"keys" validate:"required"`
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	ExternalUserID string              `json:"external_user_id"`
	Subscription   SubscriptionRequest `json:"subscription" validate:"required"`
	UserAgent      string              `json:"user_agent"`
}

// RegisterDevice handles device registration. Re-registering an endpoint the
// app already knows refreshes its keys instead of creating a duplicate.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	app, ok := middleware.GetApp(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "App not found in context")
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	registration := &usecase.DeviceRegistration{
		ExternalUserID: req.ExternalUserID,
		Subscription: entity.PushSubscription{
			Endpoint: req.Subscription.Endpoint,
			P256dh:   req.Subscription.Keys.P256dh,
			Auth:     req.Subscription.Keys.Auth,
		},
		UserAgent: req.UserAgent,
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), app.ID, registration)
	if err != nil {
		if errors.Is(err, usecaseimpl.ErrInvalidSubscription) {
			return response.BadRequest(c, "INVALID_SUBSCRIPTION", err.Error())
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetAppDevices handles retrieving all devices registered for the app
func (h *DeviceHandler) GetAppDevices(c echo.Context) error {
	app, ok := middleware.GetApp(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "App not found in context")
	}

	devices, err := h.deviceUC.GetAppDevices(c.Request().Context(), app.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// DeactivateDevice handles deactivating a device (soft delete)
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	app, ok := middleware.GetApp(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "App not found in context")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), app.ID, deviceID); err != nil {
		switch {
		case errors.Is(err, usecaseimpl.ErrDeviceNotFound):
			return response.NotFound(c, "DEVICE_NOT_FOUND", "Device not found")
		case errors.Is(err, usecaseimpl.ErrDeviceUnauthorized):
			return response.Forbidden(c, "DEVICE_FORBIDDEN", "Device belongs to another app")
		default:
			return response.HandleAppError(c, err)
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated successfully"})
}
