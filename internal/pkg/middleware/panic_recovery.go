package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/karhabty/admin-gateway/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and
// answers 500 instead of dropping the connection
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}) {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}

	logger.Error("Panic recovered in HTTP handler",
		logger.Err(err),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("stacktrace", string(debug.Stack())))

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
			"code":    http.StatusInternalServerError,
		})
	}
}
