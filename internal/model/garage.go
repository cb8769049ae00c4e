package model

import "time"

// Garage mirrors the 'garages' table.  Garages are created by admins and
// readable by any authenticated user.
type Garage struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
