package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeline/storeline-server/internal/logger"
	"github.com/storeline/storeline-server/internal/model"
)

// Admin restricts routes to users with the admin role. It must run
// after Auth.Authenticate.
type Admin struct {
	userStore      model.UserStore
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAdmin creates admin authorization middleware.
func NewAdmin(userStore model.UserStore, contextManager model.ContextManager, logger *logger.Logger) *Admin {
	return &Admin{
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// RequireAdmin rejects requests from non-admin users.
func (m *Admin) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := m.contextManager.GetUserIDFromContext(c.Request().Context())
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized - No access token provided"})
		}

		user, err := m.userStore.GetByID(c.Request().Context(), userID)
		if err != nil {
			m.logger.Error("Admin middleware: failed to load user",
				"user_id", userID,
				"error", err.Error())
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized - Invalid access token"})
		}

		if user.Role != model.RoleAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"message": "Access denied - Admin only"})
		}

		return next(c)
	}
}
