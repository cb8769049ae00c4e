package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/garage-booking/internal/handler"
)

// RegisterRoutes registers routes that carry no auth requirement at all.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session lifecycle endpoints.  None of them
// is gated: register/login open sessions, logout is idempotent without
// one, and /api/me resolves the session itself and answers null for
// unauthenticated callers.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/api")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)
	g.GET("/me", a.Me)
}
