package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRoles enforces role-based access on API routes registered behind the
// session gate. Unlike the gate's dashboard handling (which redirects to the
// caller's own home), API routes answer with a plain 403.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
