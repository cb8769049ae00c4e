package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/garage-booking/internal/model"
)

// SessionRepo persists server-held sessions.  A session row is the single
// source of truth for an authenticated connection: the identity served to
// handlers is read through the users join on every request, so role or
// affiliation changes take effect immediately and deleting the row ends
// the session regardless of any token the client still holds.
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Create inserts a session row with an absolute expiry.
func (r *SessionRepo) Create(ctx context.Context, id string, userID uint64, expiresAt time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO sessions (id, user_id, expires_at) VALUES (?,?,?)",
		id, userID, expiresAt)
	return err
}

// FindIdentity resolves a live session to the current identity snapshot.
// It returns (nil, nil) when the session does not exist or has expired.
func (r *SessionRepo) FindIdentity(ctx context.Context, id string) (*model.Identity, error) {
	var ident model.Identity
	err := r.DB.QueryRowContext(ctx,
		`SELECT u.id, u.name, u.email, u.role, u.garage_id
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.id = ? AND s.expires_at > UTC_TIMESTAMP()`,
		id).Scan(&ident.ID, &ident.Name, &ident.Email, &ident.Role, &ident.GarageID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ident, nil
}

// Delete removes a session row.  Deleting an absent row is not an error,
// which makes logout idempotent.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM sessions WHERE id=?", id)
	return err
}

// DeleteExpired removes rows past their expiry and reports how many went.
// FindIdentity already refuses expired rows; deleting them only reclaims
// space.
func (r *SessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= UTC_TIMESTAMP()")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
