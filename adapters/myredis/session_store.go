package myredis

import (
	"context"
	"fmt"
	"time"

	"mypodinfo/domain"
	"mypodinfo/interfaces"
	"mypodinfo/service"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "session"

type sessionStore struct {
	cache interfaces.Cache[domain.Session]
	ttl   time.Duration
}

// NewSessionStore creates a session store keeping sessions as JSON under session:{id}.
// Every Save restarts the session TTL.
func NewSessionStore(client redis.UniversalClient, ttl time.Duration) *sessionStore {
	return &sessionStore{
		cache: NewJSONCache[domain.Session](client, sessionPrefix),
		ttl:   ttl,
	}
}

func (s *sessionStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.cache.ReadValue(ctx, id)
	if err != nil {
		if service.IsEntityNotFoundError(err) {
			return nil, err
		}
		return nil, service.NewSessionStoreFailureError("failed to load session", err)
	}
	if session.Values == nil {
		session.Values = make(map[string]any)
	}
	session.ID = id
	session.IsNew = false
	return &session, nil
}

func (s *sessionStore) Save(ctx context.Context, session *domain.Session) error {
	if err := s.cache.WriteValue(ctx, session.ID, *session, int(s.ttl/time.Millisecond)); err != nil {
		return service.NewSessionStoreFailureError("failed to save session", fmt.Errorf("session '%s': %w", session.ID, err))
	}
	return nil
}
