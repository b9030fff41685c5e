package myredis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"mypodinfo/domain"
	"mypodinfo/interfaces"
	"mypodinfo/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

const listenerBufferSize = 64

// ErrListenerClosed is returned by Register and Unregister after Close.
var ErrListenerClosed = errors.New("bus listener is closed")

type eventBus struct {
	client redis.UniversalClient
	prefix string
	logger log.Logger
}

// NewEventBus creates an event bus over Redis pub/sub. An address maps to the Redis channel {prefix}:{address}.
func NewEventBus(client redis.UniversalClient, prefix string, logger log.Logger) *eventBus {
	return &eventBus{
		client: client,
		prefix: prefix + ":",
		logger: log.With(logger, "component", "event_bus"),
	}
}

func (b *eventBus) Publish(ctx context.Context, address string, body []byte) error {
	if err := b.client.Publish(ctx, b.prefix+address, body).Err(); err != nil {
		return service.NewClusterUnavailableError("Redis publish error", fmt.Errorf("can't publish to '%s', err: %w", address, err))
	}
	return nil
}

func (b *eventBus) Listen() interfaces.BusListener {
	return &busListener{
		bus:  b,
		out:  make(chan domain.BusMessage, listenerBufferSize),
		done: make(chan struct{}),
	}
}

// busListener owns one Redis PubSub connection, opened on the first Register.
type busListener struct {
	bus *eventBus

	mu     sync.Mutex
	ps     *redis.PubSub
	closed bool

	out  chan domain.BusMessage
	done chan struct{}
}

func (l *busListener) Register(ctx context.Context, address string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrListenerClosed
	}

	channel := l.bus.prefix + address
	if l.ps != nil {
		if err := l.ps.Subscribe(ctx, channel); err != nil {
			return service.NewClusterUnavailableError("Redis subscribe error", fmt.Errorf("can't subscribe to '%s', err: %w", address, err))
		}
		return nil
	}

	ps := l.bus.client.Subscribe(ctx)
	if err := ps.Subscribe(ctx, channel); err != nil {
		_ = ps.Close()
		return service.NewClusterUnavailableError("Redis subscribe error", fmt.Errorf("can't subscribe to '%s', err: %w", address, err))
	}
	// Wait for the subscription confirmation so that messages published after Register are delivered.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return service.NewClusterUnavailableError("Redis subscribe error", fmt.Errorf("no subscription confirmation for '%s', err: %w", address, err))
	}
	l.ps = ps
	go l.pump(ps.Channel())
	return nil
}

func (l *busListener) Unregister(ctx context.Context, address string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrListenerClosed
	}
	if l.ps == nil {
		return nil
	}
	if err := l.ps.Unsubscribe(ctx, l.bus.prefix+address); err != nil {
		return service.NewClusterUnavailableError("Redis unsubscribe error", fmt.Errorf("can't unsubscribe from '%s', err: %w", address, err))
	}
	return nil
}

func (l *busListener) Messages() <-chan domain.BusMessage {
	return l.out
}

func (l *busListener) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	close(l.done)
	if l.ps == nil {
		close(l.out)
		return nil
	}
	return l.ps.Close()
}

// pump forwards Redis messages to out until the PubSub is closed. A slow reader loses
// messages instead of stalling the Redis connection.
func (l *busListener) pump(in <-chan *redis.Message) {
	defer close(l.out)
	for msg := range in {
		select {
		case <-l.done:
			continue
		default:
		}

		m := domain.BusMessage{
			Address: strings.TrimPrefix(msg.Channel, l.bus.prefix),
			Body:    []byte(msg.Payload),
		}
		select {
		case l.out <- m:
		default:
			level.Warn(l.bus.logger).Log("msg", "Listener buffer full, dropping message", "address", m.Address)
		}
	}
}
