package interfaces

import (
	"context"

	"mypodinfo/domain"
)

// EventBus is the cluster-wide publish/subscribe channel.
//
//go:generate moq -stub -out mock/event_bus.go -pkg mock . EventBus BusListener
type EventBus interface {
	// Publish delivers body to every listener registered on address, on any instance.
	Publish(ctx context.Context, address string, body []byte) error

	// Listen opens a listener with no registered addresses.
	Listen() BusListener
}

// BusListener receives messages for the addresses it is registered on.
// Used by one bridge connection.
type BusListener interface {
	Register(ctx context.Context, address string) error
	Unregister(ctx context.Context, address string) error
	// Messages is closed after Close.
	Messages() <-chan domain.BusMessage
	Close() error
}
