package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mypodinfo/domain"
	"mypodinfo/helpers"
	"mypodinfo/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// DefaultHeartbeatInterval is how often an instance refreshes its membership record.
	DefaultHeartbeatInterval = time.Second
	// DefaultMemberTTL is how long a membership record outlives its last heartbeat.
	DefaultMemberTTL = 10 * time.Second
)

// Members keeps this instance's membership record alive and lists the live members of the cluster.
type Members struct {
	id       domain.InstanceID
	cache    interfaces.Cache[domain.Member]
	config   interfaces.ConfigReader
	now      func() time.Time
	interval time.Duration
	ttl      time.Duration
	logger   log.Logger
}

// NewMembers creates the member registry. Panics on empty id or nil dependencies.
func NewMembers(id domain.InstanceID, cache interfaces.Cache[domain.Member], config interfaces.ConfigReader, now func() time.Time, logger log.Logger) *Members {
	return &Members{
		id:       domain.InstanceID(helpers.StrPanic(string(id), "service.members.go: instance id is required")),
		cache:    helpers.NilPanic(cache, "service.members.go: cache is required"),
		config:   helpers.NilPanic(config, "service.members.go: config is required"),
		now:      helpers.NilPanic(now, "service.members.go: now is required"),
		interval: DefaultHeartbeatInterval,
		ttl:      DefaultMemberTTL,
		logger:   log.With(helpers.NilPanic(logger, "service.members.go: logger is required"), "component", "members"),
	}
}

// Run writes the membership record now and then every interval until ctx is done.
// On exit the record is removed so other instances stop listing this one right away.
func (m *Members) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.beat(ctx)
	for {
		select {
		case <-ctx.Done():
			m.leave()
			return
		case <-ticker.C:
			m.beat(ctx)
		}
	}
}

func (m *Members) beat(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	member := domain.Member{
		ID:       m.id,
		AppName:  m.config.String(domain.ConfigAppName, ""),
		LastSeen: m.now(),
	}
	if err := m.cache.WriteValue(ctx, string(m.id), member, int(m.ttl/time.Millisecond)); err != nil {
		level.Warn(m.logger).Log("msg", "Membership heartbeat failed", "err", err)
	}
}

func (m *Members) leave() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := m.cache.DeleteValue(ctx, string(m.id)); err != nil {
		level.Warn(m.logger).Log("msg", "Failed to remove membership record", "err", err)
	}
}

// List returns live members sorted by id, at most limit of them when limit > 0.
// An empty cluster view yields an empty slice, not an error.
func (m *Members) List(ctx context.Context, limit int) ([]domain.Member, error) {
	members, err := m.cache.ListAllValues(ctx)
	if err != nil {
		if IsEntityNotFoundError(err) {
			return []domain.Member{}, nil
		}
		return nil, fmt.Errorf("list members failed, err: %w", err)
	}

	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	if limit > 0 && len(members) > limit {
		members = members[:limit]
	}
	return members, nil
}
