package myredis

import (
	"context"
	"testing"
	"time"

	"mypodinfo/domain"
	"mypodinfo/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client, 30*time.Minute)

	session := domain.NewSession("s-1")
	session.Values[domain.SessionCountField] = 3
	require.NoError(t, store.Save(ctx, session))
	assert.Equal(t, 30*time.Minute, mr.TTL("session:s-1"))

	got, err := store.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", got.ID)
	assert.False(t, got.IsNew)
	// JSON numbers come back as float64.
	assert.Equal(t, float64(3), got.Values[domain.SessionCountField])
}

func TestSessionStore_Load(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client, time.Minute)

	t.Run("missing session returns entity not found", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("expired session returns entity not found", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.NewSession("old")))
		mr.FastForward(2 * time.Minute)

		_, err := store.Load(ctx, "old")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("corrupt session returns session_store_failure", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "session:corrupt", "not json", 0).Err())

		_, err := store.Load(ctx, "corrupt")
		require.Error(t, err)
		assert.True(t, service.IsSessionStoreFailureError(err))
	})

	t.Run("session without values gets an empty map", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "session:bare", `{"id":"bare"}`, 0).Err())

		got, err := store.Load(ctx, "bare")
		require.NoError(t, err)
		assert.NotNil(t, got.Values)
	})
}

func TestSessionStore_Save_Unreachable(t *testing.T) {
	store := NewSessionStore(closedClient(t), time.Minute)

	err := store.Save(context.Background(), domain.NewSession("s"))
	require.Error(t, err)
	assert.True(t, service.IsSessionStoreFailureError(err))
}
