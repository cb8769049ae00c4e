package model

import "time"

// Session models an entry in the 'sessions' table.  The ID is a random
// hex value generated at login; the signed token handed to the client is
// only an envelope around it.  The row is the authority on whether the
// session is alive: logout deletes it and the resets clear it, which ends
// the session no matter how long the token itself would remain valid.
type Session struct {
	ID        string
	UserID    uint64
	ExpiresAt time.Time
	CreatedAt time.Time
}
