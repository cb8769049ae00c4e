package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/garage-booking/internal/middleware"
	"github.com/iliyamo/garage-booking/internal/model"
)

// GarageBookingLister lists bookings scoped to one garage.
type GarageBookingLister interface {
	ListByGarage(ctx context.Context, garageID uint64) ([]model.BookingView, error)
}

// GarageHandler serves the garage-staff view of incoming bookings.
type GarageHandler struct {
	Bookings GarageBookingLister
}

func NewGarageHandler(b GarageBookingLister) *GarageHandler {
	return &GarageHandler{Bookings: b}
}

// ListBookings returns the bookings targeting the caller's bound garage.
// The scope comes only from the session identity; a garage account with
// no affiliation is refused rather than allowed to name a garage itself.
func (h *GarageHandler) ListBookings(c echo.Context) error {
	ident := middleware.CurrentIdentity(c)
	if ident == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if ident.GarageID == nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	views, err := h.Bookings.ListByGarage(ctx, *ident.GarageID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, views)
}
