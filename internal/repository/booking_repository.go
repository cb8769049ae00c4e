package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/garage-booking/internal/model"
)

type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking owned by userID and returns the new id.  The
// owner comes from the caller's session, never from request input.  No
// slot-conflict check is made: identical (garage, date, time) bookings
// may coexist.
func (r *BookingRepo) Create(ctx context.Context, userID, garageID uint64, date, timeOfDay, service string, notes *string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (user_id, garage_id, date, time, service, notes) VALUES (?,?,?,?,?,?)",
		userID, garageID, date, timeOfDay, service, notes)
	if err != nil {
		if isFKViolation(err) {
			return 0, ErrGarageNotFound
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

const bookingViewSelect = `SELECT b.id, b.garage_id, b.date, b.time, b.service, b.notes,
	u.name, u.email, u.phone
	FROM bookings b
	JOIN users u ON u.id = b.user_id`

// ListByGarage returns the bookings targeting one garage, joined with the
// owning customer's display fields, ordered by (date, time) ascending.
func (r *BookingRepo) ListByGarage(ctx context.Context, garageID uint64) ([]model.BookingView, error) {
	rows, err := r.DB.QueryContext(ctx,
		bookingViewSelect+" WHERE b.garage_id = ? ORDER BY b.date, b.time", garageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookingViews(rows)
}

// ListAll returns every booking with owner display fields, ordered by
// (date, time) ascending.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.BookingView, error) {
	rows, err := r.DB.QueryContext(ctx,
		bookingViewSelect+" ORDER BY b.date, b.time")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookingViews(rows)
}

func scanBookingViews(rows *sql.Rows) ([]model.BookingView, error) {
	out := []model.BookingView{}
	for rows.Next() {
		var v model.BookingView
		if err := rows.Scan(&v.ID, &v.GarageID, &v.Date, &v.Time, &v.Service, &v.Notes,
			&v.CustomerName, &v.CustomerEmail, &v.CustomerPhone); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
