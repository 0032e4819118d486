package handler

import (
	"net/http"

	"beacon/internal/delivery/api/middleware"
	"beacon/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware tests the app authentication middleware
// This endpoint requires valid API credentials in the request headers
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	// Get app information from context (set by auth middleware)
	app, ok := middleware.GetApp(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "App not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"appID":   app.ID,
		"appName": app.Name,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
