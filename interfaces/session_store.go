package interfaces

import (
	"context"

	"mypodinfo/domain"
)

// SessionStore keeps per-client sessions.
//
//go:generate moq -stub -out mock/session_store.go -pkg mock . SessionStore
type SessionStore interface {
	// Load returns the session with the given id, or entity_not_found when it is absent or expired.
	Load(ctx context.Context, id string) (*domain.Session, error)

	// Save stores the session and restarts its TTL.
	// Returns session_store_failure when the write fails.
	Save(ctx context.Context, session *domain.Session) error
}
