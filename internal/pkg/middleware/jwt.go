package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	jwtpkg "github.com/karhabty/admin-gateway/internal/pkg/jwt"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware authenticates dashboard requests with a bearer token
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set("user_id", userID)
			c.Set("user_role", role)

			return next(c)
		}
	}
}

// RequireRole restricts a route group to the given roles. Must run after
// JWTAuthMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := fmt.Sprintf("%v", c.Get("user_role"))
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return utils.ErrorResponseHandler(c, 403, "Insufficient role")
		}
	}
}
