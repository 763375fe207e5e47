package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeline/storeline-server/internal/model"
)

type errorResponse struct {
	Message string `json:"message"`
}

// handleError maps service sentinel errors to HTTP responses. Unknown
// errors surface as 500 with the raw error message.
func handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: model.ErrEmailTaken.Error()})
	case errors.Is(err, model.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: model.ErrInvalidCredentials.Error()})
	case errors.Is(err, model.ErrTokenMissing):
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: model.ErrTokenMissing.Error()})
	case errors.Is(err, model.ErrTokenInvalid):
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: model.ErrTokenInvalid.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: err.Error()})
	}
}
