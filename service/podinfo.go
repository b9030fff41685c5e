package service

import (
	"context"
	"time"

	"mypodinfo/domain"
	"mypodinfo/helpers"
	"mypodinfo/interfaces"

	"github.com/go-kit/log"
)

// DefaultIncrementTimeout bounds a fire-and-forget cluster increment.
const DefaultIncrementTimeout = 5 * time.Second

// PodInfoService answers pod-info requests: it bumps the caller's session counter and
// issues a best-effort increment of the cluster counter.
type PodInfoService struct {
	id               domain.InstanceID
	sessions         interfaces.SessionStore
	counter          interfaces.ClusterCounter
	sessionCounter   SessionCounter
	incrementTimeout time.Duration
	logger           log.Logger
}

// NewPodInfoService creates a PodInfoService. Panics on empty id or nil dependencies.
func NewPodInfoService(id domain.InstanceID, sessions interfaces.SessionStore, counter interfaces.ClusterCounter, logger log.Logger) *PodInfoService {
	return &PodInfoService{
		id:               domain.InstanceID(helpers.StrPanic(string(id), "service.podinfo.go: instance id is required")),
		sessions:         helpers.NilPanic(sessions, "service.podinfo.go: sessions is required"),
		counter:          helpers.NilPanic(counter, "service.podinfo.go: counter is required"),
		incrementTimeout: DefaultIncrementTimeout,
		logger:           log.With(helpers.NilPanic(logger, "service.podinfo.go: logger is required"), "component", "podinfo_service"),
	}
}

// GetPodInfo increments the session counter, saves the session and fires the cluster increment.
// The result does not wait for the cluster increment; its failure is only logged.
//
// Returns session_store_failure when the session cannot be saved; the counter is not advanced in that case.
func (s *PodInfoService) GetPodInfo(ctx context.Context, session *domain.Session) (domain.PodInfo, error) {
	count := s.sessionCounter.ReadAndIncrement(session)
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.PodInfo{}, NewSessionStoreFailureError("failed to save session", err)
	}

	BestEffort(s.logger, "cluster_counter_increment", s.incrementTimeout, func(ctx context.Context) error {
		_, err := s.counter.Increment(ctx)
		return err
	})

	return domain.PodInfo{ID: s.id, RequestCount: count}, nil
}
