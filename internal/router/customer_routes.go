package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/garage-booking/internal/handler"
	"github.com/iliyamo/garage-booking/internal/middleware"
	"github.com/iliyamo/garage-booking/internal/model"
)

// RegisterCustomer registers customer endpoints.  Only the customer role
// may create bookings; the owner recorded on the row is always the
// session identity.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, secret string, sessions middleware.IdentityFinder) {
	g := e.Group(
		"/api/customer",
		middleware.SessionAuth(secret, sessions),
		middleware.RequireRole(model.RoleCustomer),
	)
	g.POST("/book", h.Book)
}
