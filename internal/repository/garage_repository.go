package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/garage-booking/internal/model"
)

type GarageRepo struct{ DB *sql.DB }

func NewGarageRepo(db *sql.DB) *GarageRepo { return &GarageRepo{DB: db} }

// Create inserts a garage and returns the stored record.
func (r *GarageRepo) Create(ctx context.Context, name, address string) (model.Garage, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO garages (name, address) VALUES (?,?)", name, address)
	if err != nil {
		return model.Garage{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Garage{}, err
	}
	var g model.Garage
	err = r.DB.QueryRowContext(ctx,
		"SELECT id, name, address, created_at FROM garages WHERE id=?",
		id).Scan(&g.ID, &g.Name, &g.Address, &g.CreatedAt)
	return g, err
}

// List returns every garage, most recent first.
func (r *GarageRepo) List(ctx context.Context) ([]model.Garage, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, address, created_at FROM garages ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Garage{}
	for rows.Next() {
		var g model.Garage
		if err := rows.Scan(&g.ID, &g.Name, &g.Address, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
