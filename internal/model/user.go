package model

import "time"

// Role values stored in users.role.  Checks against these values are
// strict set membership: superadmin does not implicitly satisfy an
// admin-only check unless the route lists it.
const (
	RoleCustomer    = "customer"
	RoleGarage      = "garage"
	RoleGarageStaff = "garage_staff"
	RoleAdmin       = "admin"
	RoleSuperadmin  = "superadmin"
)

// SelfRegisterRoles are the roles a client may pick on /api/register.
// admin and superadmin accounts are minted only through the superadmin
// create-user operation.
var SelfRegisterRoles = map[string]bool{
	RoleCustomer:    true,
	RoleGarage:      true,
	RoleGarageStaff: true,
}

// AllRoles covers every role the superadmin create-user path accepts.
var AllRoles = map[string]bool{
	RoleCustomer:    true,
	RoleGarage:      true,
	RoleGarageStaff: true,
	RoleAdmin:       true,
	RoleSuperadmin:  true,
}

// GarageRole reports whether role requires a garage affiliation.
// Invariant: users.garage_id is non-null iff the role is a garage role.
func GarageRole(role string) bool {
	return role == RoleGarage || role == RoleGarageStaff
}

// User mirrors the 'users' table.
type User struct {
	ID           uint64
	Name         string
	Email        string
	Phone        *string
	PasswordHash string
	Role         string
	GarageID     *uint64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the per-request snapshot of the authenticated user that the
// session middleware injects into the request context.  Authorization
// decisions read only this snapshot, never client-supplied claims.
type Identity struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	GarageID *uint64 `json:"garage_id,omitempty"`
}
