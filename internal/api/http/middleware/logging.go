package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storeline/storeline-server/internal/logger"
)

// RequestLogger logs every request with its status and latency.
func RequestLogger(l *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			l.Info("request handled",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds())

			return nil
		}
	}
}
