package interfaces

import (
	"context"
	"time"

	"mypodinfo/domain"
)

// ConfigReader gives non-blocking access to the latest configuration snapshot.
//
//go:generate moq -stub -out mock/config.go -pkg mock . ConfigReader ConfigSource
type ConfigReader interface {
	Snapshot() domain.Configuration
	String(key, fallback string) string
	Int(key string, fallback int) int
	Duration(key string, unit time.Duration, fallback time.Duration) time.Duration
}

// ConfigSource is an external, watched configuration source (e.g. a Kubernetes ConfigMap).
type ConfigSource interface {
	// Probe reports whether the source is available in this environment at all.
	Probe(ctx context.Context) (bool, error)

	// Watch delivers the current content and every later change to onChange until ctx is done.
	// Each delivered Configuration is a partial overlay.
	Watch(ctx context.Context, onChange func(domain.Configuration)) error
}
