package repository

import (
	"context"
	"log"
	"time"
)

// ExpiredSessionStore is the slice of the session repository the pruner
// needs.
type ExpiredSessionStore interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// PruneSessions deletes expired session rows every interval until ctx is
// cancelled.  A store error is logged and the loop keeps ticking.
func PruneSessions(ctx context.Context, store ExpiredSessionStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.DeleteExpired(ctx)
			if err != nil {
				log.Printf("prune sessions: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("pruned %d expired sessions", n)
			}
		}
	}
}
