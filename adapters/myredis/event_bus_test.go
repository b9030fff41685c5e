package myredis

import (
	"context"
	"testing"
	"time"

	"mypodinfo/domain"
	"mypodinfo/service"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan domain.BusMessage) domain.BusMessage {
	t.Helper()
	select {
	case m, ok := <-ch:
		require.True(t, ok, "listener channel closed")
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for bus message")
		return domain.BusMessage{}
	}
}

func TestEventBus_PublishReachesListenersOnOtherClients(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)

	other, err := NewRedisUniversalClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = other.Close() })

	publisher := NewEventBus(client, "eventbus", log.NewNopLogger())
	subscriber := NewEventBus(other, "eventbus", log.NewNopLogger())

	listener := subscriber.Listen()
	defer listener.Close()
	require.NoError(t, listener.Register(ctx, domain.StatusAddress))

	require.NoError(t, publisher.Publish(ctx, domain.StatusAddress, []byte(`{"id":"pod-1"}`)))

	m := receive(t, listener.Messages())
	assert.Equal(t, domain.StatusAddress, m.Address)
	assert.JSONEq(t, `{"id":"pod-1"}`, string(m.Body))
}

func TestEventBus_RegisterSecondAddress(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	bus := NewEventBus(client, "eventbus", log.NewNopLogger())

	listener := bus.Listen()
	defer listener.Close()
	require.NoError(t, listener.Register(ctx, "a"))
	require.NoError(t, listener.Register(ctx, "b"))

	// The second SUBSCRIBE is not confirmed synchronously; retry until it is live.
	require.Eventually(t, func() bool {
		_ = bus.Publish(ctx, "b", []byte(`1`))
		select {
		case m := <-listener.Messages():
			return m.Address == "b"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEventBus_UnregisterAndClose(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	bus := NewEventBus(client, "eventbus", log.NewNopLogger())

	t.Run("unregister before register is a no-op", func(t *testing.T) {
		listener := bus.Listen()
		assert.NoError(t, listener.Unregister(ctx, "a"))
		assert.NoError(t, listener.Close())
		_, ok := <-listener.Messages()
		assert.False(t, ok)
	})

	t.Run("close ends the message channel", func(t *testing.T) {
		listener := bus.Listen()
		require.NoError(t, listener.Register(ctx, "a"))
		require.NoError(t, listener.Unregister(ctx, "a"))
		require.NoError(t, listener.Close())
		require.NoError(t, listener.Close())

		require.Eventually(t, func() bool {
			select {
			case _, ok := <-listener.Messages():
				return !ok
			default:
				return false
			}
		}, 2*time.Second, 10*time.Millisecond)

		assert.ErrorIs(t, listener.Register(ctx, "a"), ErrListenerClosed)
	})
}

func TestEventBus_Publish_Unreachable(t *testing.T) {
	bus := NewEventBus(closedClient(t), "eventbus", log.NewNopLogger())

	err := bus.Publish(context.Background(), domain.StatusAddress, []byte(`{}`))
	require.Error(t, err)
	assert.True(t, service.IsClusterUnavailableError(err))
}
