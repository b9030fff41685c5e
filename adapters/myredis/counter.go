package myredis

import (
	"context"
	"errors"
	"fmt"

	"mypodinfo/service"

	"github.com/go-redis/redis/v8"
)

type clusterCounter struct {
	client redis.UniversalClient
	key    string
}

// NewClusterCounter creates a cluster-wide counter stored in a single Redis key and advanced with INCR.
func NewClusterCounter(client redis.UniversalClient, key string) *clusterCounter {
	return &clusterCounter{
		client: client,
		key:    key,
	}
}

func (c *clusterCounter) Increment(ctx context.Context) (int64, error) {
	n, err := c.client.Incr(ctx, c.key).Result()
	if err != nil {
		return 0, service.NewClusterUnavailableError("Redis increment error", fmt.Errorf("can't increment counter (key='%s'), err: %w", c.key, err))
	}
	return n, nil
}

func (c *clusterCounter) Get(ctx context.Context) (int64, error) {
	n, err := c.client.Get(ctx, c.key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, service.NewClusterUnavailableError("Redis read counter error", fmt.Errorf("can't read counter (key='%s'), err: %w", c.key, err))
	}
	return n, nil
}

// Obtain checks that the counter is reachable and readable. Called once during startup.
func (c *clusterCounter) Obtain(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return service.NewClusterUnavailableError("Redis ping error", err)
	}
	if _, err := c.Get(ctx); err != nil {
		return err
	}
	return nil
}
