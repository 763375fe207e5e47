// Package middleware provides HTTP middleware for request
// authentication, authorization, and logging.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/storeline/storeline-server/internal/api/http/handler"
	"github.com/storeline/storeline-server/internal/logger"
	"github.com/storeline/storeline-server/internal/model"
)

// TokenVerifier resolves an access token to the user it was issued to.
type TokenVerifier interface {
	UserID(ctx context.Context, accessToken string) (uuid.UUID, error)
}

// Auth authenticates requests from the access-token cookie and stores
// the user ID in the request context.
type Auth struct {
	verifier       TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates authentication middleware.
func NewAuth(verifier TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		verifier:       verifier,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Authenticate rejects requests without a valid access-token cookie.
func (m *Auth) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(handler.AccessTokenCookie)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized - No access token provided"})
		}

		userID, err := m.verifier.UserID(c.Request().Context(), cookie.Value)
		if err != nil {
			m.logger.Debug("Auth middleware: token rejected", "error", err.Error())
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized - Invalid access token"})
		}

		ctx := m.contextManager.SetUserIDToContext(c.Request().Context(), userID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
