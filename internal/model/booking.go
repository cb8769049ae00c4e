package model

import "time"

// Booking mirrors the 'bookings' table.  The owner (UserID) is always the
// customer session that created the row; it is never taken from the
// request body.
type Booking struct {
	ID        uint64
	UserID    uint64
	GarageID  uint64
	Date      string
	Time      string
	Service   string
	Notes     *string
	CreatedAt time.Time
}

// BookingView is a booking joined with the owning customer's display
// fields.  It is what garage staff and admins see when listing bookings.
type BookingView struct {
	ID            uint64  `json:"id"`
	GarageID      uint64  `json:"garage_id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Service       string  `json:"service"`
	Notes         *string `json:"notes,omitempty"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
}
