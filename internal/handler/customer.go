package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/garage-booking/internal/middleware"
	"github.com/iliyamo/garage-booking/internal/queue"
	"github.com/iliyamo/garage-booking/internal/repository"
)

// BookingCreator is the slice of the booking repository used by the
// customer handler.
type BookingCreator interface {
	Create(ctx context.Context, userID, garageID uint64, date, timeOfDay, service string, notes *string) (uint64, error)
}

// CustomerHandler serves the customer-facing booking endpoint.  Publish is
// swappable for tests and may be nil to disable event publication.
type CustomerHandler struct {
	Bookings BookingCreator
	Publish  func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

func NewCustomerHandler(b BookingCreator) *CustomerHandler {
	return &CustomerHandler{Bookings: b, Publish: queue.PublishBookingCreated}
}

type bookReq struct {
	GarageID uint64  `json:"garage_id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Service  string  `json:"service"`
	Notes    *string `json:"notes"`
}

// Book creates a booking for the calling customer.  The owner is always
// the session identity; any user_id in the body is ignored by virtue of
// never being bound.  Double-booking the same slot is allowed.
func (h *CustomerHandler) Book(c echo.Context) error {
	ident := middleware.CurrentIdentity(c)
	if ident == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Service = strings.TrimSpace(req.Service)
	if req.GarageID == 0 || req.Date == "" || req.Time == "" || req.Service == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "garage_id, date, time and service required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Bookings.Create(ctx, ident.ID, req.GarageID, req.Date, req.Time, req.Service, req.Notes)
	if err != nil {
		if err == repository.ErrGarageNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "garage not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	if h.Publish != nil {
		// Best-effort: the booking is already persisted.
		_ = h.Publish(ctx, queue.BookingCreatedEvent{
			BookingID: id,
			UserID:    ident.ID,
			GarageID:  req.GarageID,
			Date:      req.Date,
			Time:      req.Time,
			Service:   req.Service,
			Notes:     req.Notes,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "success": true})
}
