// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/config"
	"beacon/internal/delivery/api/middleware"
	"beacon/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	TestHandler         *handler.TestHandler
	AppAuthMiddleware   *middleware.AppAuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	testHandler         *handler.TestHandler
	appAuthMiddleware   *middleware.AppAuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		testHandler:         params.TestHandler,
		appAuthMiddleware:   params.AppAuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.appAuthMiddleware.Authenticate) // All API v1 routes require app credentials

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetAppDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	// Notification dispatch and history routes
	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.POST("/send", r.notificationHandler.SendNotification)
		notificationsGroup.GET("", r.notificationHandler.GetNotificationHistory)
		notificationsGroup.GET("/:id/logs", r.notificationHandler.GetNotificationLogs)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.appAuthMiddleware.Authenticate) // Apply app credential middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
