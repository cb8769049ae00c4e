package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/garage-booking/internal/model"
	"github.com/iliyamo/garage-booking/internal/utils"
)

// MaintenanceRepo implements the superadmin bulk operations.  Both resets
// run inside a single transaction so a partial clear is never observable:
// either every statement applies or none does.
type MaintenanceRepo struct{ DB *sql.DB }

func NewMaintenanceRepo(db *sql.DB) *MaintenanceRepo { return &MaintenanceRepo{DB: db} }

// ResetAll empties bookings, sessions, users and garages atomically.
// Deletion order respects the foreign keys.
func (r *MaintenanceRepo) ResetAll(ctx context.Context) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range []string{
			"DELETE FROM bookings",
			"DELETE FROM sessions",
			"DELETE FROM users",
			"DELETE FROM garages",
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

// ResetUsers removes every user except superadmins, so the acting
// identity is never locked out.  Sessions of removed users go in the same
// transaction and their bookings cascade.
func (r *MaintenanceRepo) ResetUsers(ctx context.Context) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE s FROM sessions s JOIN users u ON u.id = s.user_id WHERE u.role <> ?",
			model.RoleSuperadmin); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			"DELETE FROM users WHERE role <> ?", model.RoleSuperadmin)
		return err
	})
}

// AddTestData seeds a fixture garage plus an admin, a garage account
// bound to the fixture garage, and a customer.  Passwords are hashed at
// insert time; the plaintext for all three is "password".
func (r *MaintenanceRepo) AddTestData(ctx context.Context, bcryptCost int) error {
	hash, err := utils.HashPassword("password", bcryptCost)
	if err != nil {
		return err
	}
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO garages (name, address) VALUES ('Test Garage', '123 Test St')")
		if err != nil {
			return err
		}
		garageID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		fixtures := []struct {
			name, email, role string
			garageID          interface{}
		}{
			{"Admin", "admin@test.com", model.RoleAdmin, nil},
			{"Garage", "garage@test.com", model.RoleGarage, garageID},
			{"Customer", "customer@test.com", model.RoleCustomer, nil},
		}
		for _, f := range fixtures {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO users (name, email, password_hash, role, garage_id) VALUES (?,?,?,?,?)",
				f.name, f.email, hash, f.role, f.garageID); err != nil {
				if isDuplicateKey(err) {
					return ErrEmailExists
				}
				return err
			}
		}
		return nil
	})
}

func (r *MaintenanceRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
