// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a customer booking is accepted.
// It carries enough for downstream consumers to act without querying the
// primary database.
type BookingCreatedEvent struct {
	BookingID uint64  `json:"booking_id"`
	UserID    uint64  `json:"user_id"`
	GarageID  uint64  `json:"garage_id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Service   string  `json:"service"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}
