package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/garage-booking/internal/handler"
	"github.com/iliyamo/garage-booking/internal/middleware"
	"github.com/iliyamo/garage-booking/internal/model"
)

// RegisterGarage registers garage-staff endpoints.  All routes require a
// live session and one of the garage roles; the data scope inside the
// handler comes from the identity's bound garage.
func RegisterGarage(e *echo.Echo, h *handler.GarageHandler, secret string, sessions middleware.IdentityFinder) {
	g := e.Group(
		"/api/garage",
		middleware.SessionAuth(secret, sessions),
		middleware.RequireRole(model.RoleGarage, model.RoleGarageStaff),
	)
	g.GET("/bookings", h.ListBookings)
}
