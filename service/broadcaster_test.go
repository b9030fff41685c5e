package service

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"mypodinfo/domain"
	"mypodinfo/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeStatus(t *testing.T, body []byte) domain.StatusMessage {
	t.Helper()
	var msg domain.StatusMessage
	require.NoError(t, json.Unmarshal(body, &msg))
	return msg
}

func TestNewStatusBroadcaster_Panics(t *testing.T) {
	counter := &mock.ClusterCounterMock{}
	bus := &mock.EventBusMock{}
	config := newTestConfigStore(nil)
	logger := log.NewNopLogger()

	assert.PanicsWithValue(t, "service.broadcaster.go: interval must be positive", func() {
		NewStatusBroadcaster("pod-1", counter, config, bus, 0, logger)
	})
	assert.PanicsWithValue(t, "service.broadcaster.go: instance id is required", func() {
		NewStatusBroadcaster("", counter, config, bus, time.Second, logger)
	})
	assert.PanicsWithValue(t, "service.broadcaster.go: bus is required", func() {
		NewStatusBroadcaster("pod-1", counter, config, nil, time.Second, logger)
	})
}

func TestStatusBroadcaster_Tick(t *testing.T) {
	counter := &mock.ClusterCounterMock{
		GetFunc: func(ctx context.Context) (int64, error) { return 42, nil },
	}
	bus := &mock.EventBusMock{}
	config := newTestConfigStore(domain.Configuration{"appname": "Demo"})
	b := NewStatusBroadcaster("pod-1", counter, config, bus, time.Second, log.NewNopLogger())

	require.NoError(t, b.Tick(context.Background()))

	calls := bus.PublishCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.StatusAddress, calls[0].Address)
	assert.Equal(t, domain.StatusMessage{ID: "pod-1", RequestCount: 42, AppName: "Demo"}, decodeStatus(t, calls[0].Body))
	assert.JSONEq(t, `{"id":"pod-1","requestCount":42,"appname":"Demo"}`, string(calls[0].Body))
}

func TestStatusBroadcaster_Tick_NoAppName(t *testing.T) {
	counter := &mock.ClusterCounterMock{}
	bus := &mock.EventBusMock{}
	b := NewStatusBroadcaster("pod-1", counter, newTestConfigStore(nil), bus, time.Second, log.NewNopLogger())

	require.NoError(t, b.Tick(context.Background()))
	require.Len(t, bus.PublishCalls(), 1)
	assert.JSONEq(t, `{"id":"pod-1","requestCount":0}`, string(bus.PublishCalls()[0].Body))
}

func TestStatusBroadcaster_Tick_PicksUpConfigChanges(t *testing.T) {
	bus := &mock.EventBusMock{}
	config := newTestConfigStore(domain.Configuration{"appname": "Demo"})
	b := NewStatusBroadcaster("pod-1", &mock.ClusterCounterMock{}, config, bus, time.Second, log.NewNopLogger())

	require.NoError(t, b.Tick(context.Background()))
	config.Merge(domain.Configuration{"appname": "Renamed"})
	require.NoError(t, b.Tick(context.Background()))

	calls := bus.PublishCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "Demo", decodeStatus(t, calls[0].Body).AppName)
	assert.Equal(t, "Renamed", decodeStatus(t, calls[1].Body).AppName)
}

func TestStatusBroadcaster_Tick_CounterFailureSkipsPublish(t *testing.T) {
	counter := &mock.ClusterCounterMock{
		GetFunc: func(ctx context.Context) (int64, error) {
			return 0, NewClusterUnavailableError("redis down", nil)
		},
	}
	bus := &mock.EventBusMock{}
	b := NewStatusBroadcaster("pod-1", counter, newTestConfigStore(nil), bus, time.Second, log.NewNopLogger())

	err := b.Tick(context.Background())
	require.Error(t, err)
	assert.True(t, IsClusterUnavailableError(err))
	assert.Empty(t, bus.PublishCalls())
}

func TestStatusBroadcaster_Run_ContinuesAfterFailure(t *testing.T) {
	var n atomic.Int64
	counter := &mock.ClusterCounterMock{
		GetFunc: func(ctx context.Context) (int64, error) {
			if n.Add(1) == 1 {
				return 0, assert.AnError
			}
			return 7, nil
		},
	}
	bus := &mock.EventBusMock{}
	b := NewStatusBroadcaster("pod-1", counter, newTestConfigStore(nil), bus, 10*time.Millisecond, log.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(bus.PublishCalls()) >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	for _, c := range bus.PublishCalls() {
		assert.Equal(t, int64(7), decodeStatus(t, c.Body).RequestCount)
	}
}

func TestStatusBroadcaster_Run_Cadence(t *testing.T) {
	bus := &mock.EventBusMock{}
	b := NewStatusBroadcaster("pod-1", &mock.ClusterCounterMock{}, newTestConfigStore(nil), bus, 20*time.Millisecond, log.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 210*time.Millisecond)
	defer cancel()
	b.Run(ctx)

	n := len(bus.PublishCalls())
	assert.GreaterOrEqual(t, n, 3)
	assert.LessOrEqual(t, n, 11)
}

func TestStatusBroadcaster_Run_SlowTickIsNotStacked(t *testing.T) {
	var running, maxRunning atomic.Int64
	counter := &mock.ClusterCounterMock{
		GetFunc: func(ctx context.Context) (int64, error) {
			cur := running.Add(1)
			defer running.Add(-1)
			for {
				old := maxRunning.Load()
				if cur <= old || maxRunning.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(45 * time.Millisecond)
			return 1, nil
		},
	}
	b := NewStatusBroadcaster("pod-1", counter, newTestConfigStore(nil), &mock.EventBusMock{}, 10*time.Millisecond, log.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	b.Run(ctx)

	assert.Equal(t, int64(1), maxRunning.Load())
	assert.Positive(t, b.Skipped())
	assert.Equal(t, int64(0), running.Load(), "Run returns only after the in-flight tick")
}
