package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs every HTTP request handled by the admin API
func EchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			status := c.Response().Status
			if raw != "" {
				path = path + "?" + raw
			}

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				String("client_ip", c.RealIP()),
				String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				Int("status", status),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case status >= 500:
				zl.Error("http request", fields...)
			case status >= 400:
				zl.Warn("http request", fields...)
			default:
				zl.Info("http request", fields...)
			}

			return err
		}
	}
}
