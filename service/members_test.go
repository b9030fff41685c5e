package service

import (
	"context"
	"testing"
	"time"

	"mypodinfo/domain"
	"mypodinfo/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestMembers(cache *mock.CacheMock[domain.Member]) *Members {
	config := newTestConfigStore(domain.Configuration{"appname": "Demo"})
	return NewMembers("pod-1", cache, config, func() time.Time { return fixedNow }, log.NewNopLogger())
}

func TestMembers_Run_HeartbeatAndLeave(t *testing.T) {
	cache := &mock.CacheMock[domain.Member]{}
	m := newTestMembers(cache)
	m.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(cache.WriteValueCalls()) >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	first := cache.WriteValueCalls()[0]
	assert.Equal(t, "pod-1", first.Key)
	assert.Equal(t, domain.Member{ID: "pod-1", AppName: "Demo", LastSeen: fixedNow}, first.Item)
	assert.Equal(t, 10000, first.TtlMs)

	deletes := cache.DeleteValueCalls()
	require.Len(t, deletes, 1)
	assert.Equal(t, "pod-1", deletes[0].Key)
}

func TestMembers_Run_SurvivesWriteFailures(t *testing.T) {
	cache := &mock.CacheMock[domain.Member]{
		WriteValueFunc: func(ctx context.Context, key string, item domain.Member, ttlMs int) error {
			return assert.AnError
		},
	}
	m := newTestMembers(cache)
	m.interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(40 * time.Millisecond)
		cancel()
	}()
	m.Run(ctx)

	assert.Greater(t, len(cache.WriteValueCalls()), 1)
}

func TestMembers_List(t *testing.T) {
	cache := &mock.CacheMock[domain.Member]{
		ListAllValuesFunc: func(ctx context.Context) ([]domain.Member, error) {
			return []domain.Member{{ID: "c"}, {ID: "a"}, {ID: "b"}}, nil
		},
	}
	m := newTestMembers(cache)

	all, err := m.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.InstanceID{"a", "b", "c"}, memberIDs(all))

	limited, err := m.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.InstanceID{"a", "b"}, memberIDs(limited))
}

func TestMembers_List_Empty(t *testing.T) {
	cache := &mock.CacheMock[domain.Member]{
		ListAllValuesFunc: func(ctx context.Context) ([]domain.Member, error) {
			return nil, NewEntityNotFoundError("no keys", nil)
		},
	}

	got, err := newTestMembers(cache).List(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMembers_List_Error(t *testing.T) {
	cache := &mock.CacheMock[domain.Member]{
		ListAllValuesFunc: func(ctx context.Context) ([]domain.Member, error) {
			return nil, NewInternalServerError("scan failed", nil)
		},
	}

	_, err := newTestMembers(cache).List(context.Background(), 10)
	require.Error(t, err)
	assert.True(t, IsInternalServerError(err))
}

func memberIDs(members []domain.Member) []domain.InstanceID {
	ids := make([]domain.InstanceID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids
}
