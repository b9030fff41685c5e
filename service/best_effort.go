package service

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// BestEffort runs op on its own goroutine with a detached, bounded context.
// The caller never waits; a failure is logged and discarded.
func BestEffort(logger log.Logger, name string, timeout time.Duration, op func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := op(ctx); err != nil {
			level.Warn(logger).Log("msg", "Best-effort operation failed", "op", name, "err", err)
		}
	}()
}
