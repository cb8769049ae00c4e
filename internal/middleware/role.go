package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware that enforces that the authenticated
// identity holds one of the listed roles.  Membership is literal: a
// superadmin is rejected by RequireRole("admin") unless the route names
// superadmin too.  It assumes SessionAuth ran earlier in the chain; a
// missing identity is treated as insufficient rather than leaking why.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := CurrentIdentity(c)
			if ident == nil || !allowed[ident.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
