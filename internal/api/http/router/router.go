// Package router wires HTTP handlers and middleware into the echo
// routing tree.
package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/storeline/storeline-server/internal/api/http/handler"
	"github.com/storeline/storeline-server/internal/api/http/middleware"
	"github.com/storeline/storeline-server/internal/logger"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// New builds the routing tree for the API.
func New(
	auth *handler.Auth,
	product *handler.Product,
	authMW *middleware.Auth,
	adminMW *middleware.Admin,
	l *logger.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(l))

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", auth.SignUp)
	authGroup.POST("/login", auth.Login)
	authGroup.POST("/logout", auth.Logout)
	authGroup.POST("/refresh", auth.Refresh)

	products := api.Group("/products", authMW.Authenticate, adminMW.RequireAdmin)
	products.GET("", product.List)

	return e
}
