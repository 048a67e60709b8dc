package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"servicehub.com/servicehub/internal/constants"
	"servicehub.com/servicehub/internal/services"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// RequireAuth resolves the caller from a Bearer token and stores id + role
// in the request context. Handlers read them via CallerID / CallerRole.
func RequireAuth(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := auth.VerifyToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set(ContextUserID, claims.Subject)
			c.Set(ContextUserRole, claims.Role)
			return next(c)
		}
	}
}

func CallerID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}

func CallerRole(c echo.Context) constants.Role {
	role, _ := c.Get(ContextUserRole).(constants.Role)
	return role
}
