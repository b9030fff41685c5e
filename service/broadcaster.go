package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"mypodinfo/domain"
	"mypodinfo/helpers"
	"mypodinfo/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultBroadcastInterval is used when the configuration carries no usable broadcastIntervalMs.
const DefaultBroadcastInterval = 200 * time.Millisecond

// StatusBroadcaster periodically publishes a StatusMessage with the cluster counter snapshot.
// Each tick runs on its own goroutine so a slow counter read never holds up the ticker;
// while a tick is still running, the next ones are skipped rather than stacked.
type StatusBroadcaster struct {
	id       domain.InstanceID
	counter  interfaces.ClusterCounter
	config   interfaces.ConfigReader
	bus      interfaces.EventBus
	interval time.Duration
	logger   log.Logger

	inFlight atomic.Bool
	skipped  atomic.Int64
}

// NewStatusBroadcaster creates a broadcaster. Panics on empty id, nil dependencies or non-positive interval.
func NewStatusBroadcaster(
	id domain.InstanceID,
	counter interfaces.ClusterCounter,
	config interfaces.ConfigReader,
	bus interfaces.EventBus,
	interval time.Duration,
	logger log.Logger,
) *StatusBroadcaster {
	if interval <= 0 {
		panic("service.broadcaster.go: interval must be positive")
	}
	return &StatusBroadcaster{
		id:       domain.InstanceID(helpers.StrPanic(string(id), "service.broadcaster.go: instance id is required")),
		counter:  helpers.NilPanic(counter, "service.broadcaster.go: counter is required"),
		config:   helpers.NilPanic(config, "service.broadcaster.go: config is required"),
		bus:      helpers.NilPanic(bus, "service.broadcaster.go: bus is required"),
		interval: interval,
		logger:   log.With(helpers.NilPanic(logger, "service.broadcaster.go: logger is required"), "component", "status_broadcaster"),
	}
}

// Run ticks every interval until ctx is done, then waits for the running tick to finish.
func (b *StatusBroadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !b.inFlight.CompareAndSwap(false, true) {
				b.skipped.Add(1)
				level.Debug(b.logger).Log("msg", "Previous tick still running, skipping")
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer b.inFlight.Store(false)
				if err := b.Tick(ctx); err != nil {
					level.Warn(b.logger).Log("msg", "Status broadcast dropped", "err", err)
				}
			}()
		}
	}
}

// Tick reads the cluster counter and publishes one status message. Bounded by the tick interval.
func (b *StatusBroadcaster) Tick(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	count, err := b.counter.Get(ctx)
	if err != nil {
		return fmt.Errorf("read cluster counter: %w", err)
	}

	msg := domain.StatusMessage{
		ID:           b.id,
		RequestCount: count,
		AppName:      b.config.String(domain.ConfigAppName, ""),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal status message: %w", err)
	}

	if err := b.bus.Publish(ctx, domain.StatusAddress, body); err != nil {
		return fmt.Errorf("publish status message: %w", err)
	}
	return nil
}

// Skipped returns how many ticks were skipped because the previous one was still running.
func (b *StatusBroadcaster) Skipped() int64 {
	return b.skipped.Load()
}
