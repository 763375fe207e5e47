package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeline/storeline-server/internal/logger"
	"github.com/storeline/storeline-server/internal/model"
	"github.com/storeline/storeline-server/internal/token"
)

// Cookie names are a compatibility contract with API clients.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// AuthService defines signup, login, and logout operations.
type AuthService interface {
	SignUp(ctx context.Context, fullName, email, password string) (model.UserInfo, model.TokenPair, error)
	Login(ctx context.Context, email, password string) (model.UserInfo, model.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// SessionService defines the access-token renewal operation.
type SessionService interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	sessionService SessionService
	secureCookies  bool
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler. secureCookies toggles the Secure
// cookie attribute and is set in production.
func NewAuth(authService AuthService, sessionService SessionService, secureCookies bool, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		sessionService: sessionService,
		secureCookies:  secureCookies,
		logger:         logger,
	}
}

type signupRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUp registers a new user and opens its first session.
func (h *Auth) SignUp(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.logger.Debug("Auth handler: processing signup request", "email", req.Email)

	user, pair, err := h.authService.SignUp(c.Request().Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	h.setAuthCookies(c, pair)

	h.logger.Info("Auth handler: signup completed",
		"email", user.Email,
		"user_id", user.ID)

	return c.JSON(http.StatusCreated, map[string]any{
		"user":    user,
		"message": "User created successfully",
	})
}

// Login verifies credentials and opens a new session.
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	user, pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	h.setAuthCookies(c, pair)

	h.logger.Info("Auth handler: login completed",
		"email", user.Email,
		"user_id", user.ID)

	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// Logout revokes the caller's session and clears both cookies. It
// succeeds even when no usable refresh token was presented.
func (h *Auth) Logout(c echo.Context) error {
	refreshToken := cookieValue(c, RefreshTokenCookie)

	if err := h.authService.Logout(c.Request().Context(), refreshToken); err != nil {
		h.logger.Error("Auth handler: logout failed", "error", err.Error())
		return handleError(c, err)
	}

	h.clearAuthCookies(c)

	h.logger.Info("Auth handler: logout completed")

	return c.JSON(http.StatusOK, map[string]any{"message": "Logged out successfully"})
}

// Refresh exchanges the refresh-token cookie for a new access token.
func (h *Auth) Refresh(c echo.Context) error {
	refreshToken := cookieValue(c, RefreshTokenCookie)

	access, err := h.sessionService.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed", "error", err.Error())
		return handleError(c, err)
	}

	h.setCookie(c, AccessTokenCookie, access, int(token.AccessTTL.Seconds()))

	h.logger.Info("Auth handler: token refresh successful")

	return c.JSON(http.StatusOK, map[string]any{"message": "Token refreshed successfully"})
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Auth) setAuthCookies(c echo.Context, pair model.TokenPair) {
	h.setCookie(c, AccessTokenCookie, pair.AccessToken, int(token.AccessTTL.Seconds()))
	h.setCookie(c, RefreshTokenCookie, pair.RefreshToken, int(token.RefreshTTL.Seconds()))
}

func (h *Auth) clearAuthCookies(c echo.Context) {
	h.setCookie(c, AccessTokenCookie, "", -1)
	h.setCookie(c, RefreshTokenCookie, "", -1)
}

func (h *Auth) setCookie(c echo.Context, name, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
