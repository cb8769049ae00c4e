package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/garage-booking/internal/model"
	"github.com/iliyamo/garage-booking/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// CreateUserParams carries everything needed to insert a user.  Password
// is the plaintext; it is hashed here and never stored.
type CreateUserParams struct {
	Name       string
	Email      string
	Phone      *string
	Password   string
	Role       string
	GarageID   *uint64
	BcryptCost int
}

// Create inserts a user and returns the stored record (hash included;
// handlers decide what to expose).
func (r *UserRepo) Create(ctx context.Context, p CreateUserParams) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	hash, err := utils.HashPassword(p.Password, p.BcryptCost)
	if err != nil {
		return model.User{}, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, phone, password_hash, role, garage_id) VALUES (?,?,?,?,?,?)",
		p.Name, email, p.Phone, hash, p.Role, p.GarageID)
	if err != nil {
		if isDuplicateKey(err) {
			return model.User{}, ErrEmailExists
		}
		if isFKViolation(err) {
			return model.User{}, ErrGarageNotFound
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:           uint64(id),
		Name:         p.Name,
		Email:        email,
		Phone:        p.Phone,
		PasswordHash: hash,
		Role:         p.Role,
		GarageID:     p.GarageID,
	}, nil
}

// GetByEmail fetches a user by normalized email.  sql.ErrNoRows passes
// through so the login handler can tell an unknown account apart from a
// store failure.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,phone,password_hash,role,garage_id,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.GarageID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
