package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"mypodinfo/domain"
	"mypodinfo/helpers"
	"mypodinfo/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ConfigStore holds the process-wide configuration as an immutable snapshot behind an atomic pointer.
// Writers build a new snapshot and swap it in; readers never block and never see a partial merge.
type ConfigStore struct {
	current atomic.Pointer[domain.Configuration]
	// mu serializes writers so concurrent merges cannot lose keys.
	mu     sync.Mutex
	logger log.Logger
}

var _ interfaces.ConfigReader = (*ConfigStore)(nil)

// NewConfigStore seeds the store with defaults overlaid by the local file configuration.
func NewConfigStore(defaults, fileOverlay domain.Configuration, logger log.Logger) *ConfigStore {
	s := &ConfigStore{
		logger: log.With(helpers.NilPanic(logger, "service.config_store.go: logger is required"), "component", "config_store"),
	}
	initial := defaults.Clone()
	for k, v := range fileOverlay {
		initial[k] = v
	}
	s.current.Store(&initial)
	return s
}

// Snapshot returns the latest configuration. The returned map must not be mutated.
func (s *ConfigStore) Snapshot() domain.Configuration {
	return *s.current.Load()
}

// Merge overlays update onto the live configuration: every key in update replaces the
// current value, keys absent from update are kept. Values are not validated.
func (s *ConfigStore) Merge(update domain.Configuration) {
	if len(update) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.Snapshot().Clone()
	keys := make([]string, 0, len(update))
	for k, v := range update {
		next[k] = v
		keys = append(keys, k)
	}
	s.current.Store(&next)

	sort.Strings(keys)
	level.Info(s.logger).Log("msg", "Configuration updated", "keys", strings.Join(keys, ","))
}

// Get returns the raw value for key.
func (s *ConfigStore) Get(key string) (any, bool) {
	v, ok := s.Snapshot()[key]
	return v, ok
}

// String returns the value for key formatted as a string, or fallback when the key is absent or null.
func (s *ConfigStore) String(key, fallback string) string {
	v, ok := s.Get(key)
	if !ok || v == nil {
		return fallback
	}
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprint(v)
}

// Int returns the value for key as an int, or fallback when it is absent or not an integer.
func (s *ConfigStore) Int(key string, fallback int) int {
	v, ok := s.Get(key)
	if !ok || v == nil {
		return fallback
	}
	n, ok := toInt(v)
	if !ok {
		level.Warn(s.logger).Log("msg", "Configuration value is not an integer, using fallback", "key", key, "value", fmt.Sprint(v))
		return fallback
	}
	return n
}

// Duration reads key as a number of units (e.g. milliseconds) or as a Go duration string ("300ms").
// Non-positive or malformed values yield fallback.
func (s *ConfigStore) Duration(key string, unit time.Duration, fallback time.Duration) time.Duration {
	v, ok := s.Get(key)
	if !ok || v == nil {
		return fallback
	}
	if str, ok := v.(string); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(str)); err == nil && d > 0 {
			return d
		}
	}
	n, ok := toInt(v)
	if !ok || n <= 0 {
		level.Warn(s.logger).Log("msg", "Configuration value is not a positive duration, using fallback", "key", key, "value", fmt.Sprint(v))
		return fallback
	}
	return time.Duration(n) * unit
}

// AttachExternalWatcher probes source in the background and, when it is available, keeps
// merging its updates into the store until ctx is done. Probe or watch failures are logged
// and the store keeps serving defaults and file configuration.
//
// The returned channel is closed when the watcher goroutine exits.
func (s *ConfigStore) AttachExternalWatcher(ctx context.Context, source interfaces.ConfigSource) <-chan struct{} {
	source = helpers.NilPanic(source, "service.config_store.go: source is required")
	done := make(chan struct{})
	go func() {
		defer close(done)

		ok, err := source.Probe(ctx)
		if err != nil {
			err = NewConfigSourceUnavailableError("config source probe failed", err)
			level.Warn(s.logger).Log("msg", "External configuration source not attached", "err", err)
			return
		}
		if !ok {
			level.Info(s.logger).Log("msg", "No orchestration environment detected, using defaults and file configuration")
			return
		}

		level.Info(s.logger).Log("msg", "Watching external configuration source")
		if err := source.Watch(ctx, s.Merge); err != nil && ctx.Err() == nil {
			err = NewConfigSourceUnavailableError("config source watch failed", err)
			level.Error(s.logger).Log("msg", "External configuration watch stopped", "err", err)
		}
	}()
	return done
}
