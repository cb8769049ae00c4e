package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/garage-booking/internal/handler"
	"github.com/iliyamo/garage-booking/internal/middleware"
	"github.com/iliyamo/garage-booking/internal/model"
)

// RegisterAdmin registers the /api/admin surface.  The whole group
// requires a live session; the role sets tighten per route.  Role sets
// are literal: superadmin appears wherever it is allowed, because nothing
// is implied by hierarchy.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, secret string, sessions middleware.IdentityFinder) {
	g := e.Group("/api/admin", middleware.SessionAuth(secret, sessions))

	// Garage listing is readable by any authenticated identity.
	g.GET("/garages", h.ListGarages)

	staff := g.Group("", middleware.RequireRole(model.RoleAdmin, model.RoleSuperadmin))
	staff.POST("/garages", h.CreateGarage)
	staff.GET("/bookings", h.ListAllBookings)

	root := g.Group("", middleware.RequireRole(model.RoleSuperadmin))
	root.POST("/reset-db", h.ResetDB)
	root.POST("/reset-users", h.ResetUsers)
	root.POST("/add-test-data", h.AddTestData)
	root.POST("/create-user", h.CreateUser)
}
