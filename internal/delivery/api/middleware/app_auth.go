package middleware

import (
	"crypto/subtle"
	"log/slog"

	"beacon/internal/delivery/api/response"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const keyApp = "app"

// Header names for tenant credentials.
const (
	HeaderAPIKey    = "X-Api-Key"
	HeaderAPISecret = "X-Api-Secret"
)

// AppAuthMiddleware authenticates tenant applications by API key and secret.
type AppAuthMiddleware struct {
	appRepo repository.AppRepository
	logger  *slog.Logger
}

// NewAppAuthMiddleware is the constructor for AppAuthMiddleware.
func NewAppAuthMiddleware(appRepo repository.AppRepository, logger *slog.Logger) *AppAuthMiddleware {
	return &AppAuthMiddleware{appRepo: appRepo, logger: logger}
}

// Authenticate validates the X-Api-Key/X-Api-Secret header pair and stores the
// resolved app on the request context for handlers to use.
func (m *AppAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		apiKey := c.Request().Header.Get(HeaderAPIKey)
		apiSecret := c.Request().Header.Get(HeaderAPISecret)
		if apiKey == "" || apiSecret == "" {
			return response.Unauthorized(c, "MISSING_CREDENTIALS", "API key and secret headers are required")
		}

		app, err := m.appRepo.FindAppByAPIKey(c.Request().Context(), apiKey)
		if err != nil {
			if errors.Is(err, repository.ErrAppNotFound) {
				return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid API key or secret")
			}

			m.logger.Error("Failed to look up app for authentication",
				slog.Any("error", err),
			)

			return response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
		}

		// Constant-time compare so attackers cannot probe secret prefixes.
		if subtle.ConstantTimeCompare([]byte(app.APISecret), []byte(apiSecret)) != 1 {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid API key or secret")
		}

		c.Set(keyApp, app)

		return next(c)
	}
}

// GetApp extracts the authenticated app from echo.Context.
// It must be used AFTER the Authenticate middleware.
func GetApp(c echo.Context) (*entity.App, bool) {
	app, ok := c.Get(keyApp).(*entity.App)

	return app, ok
}
