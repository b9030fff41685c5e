package interfaces

import "context"

// ClusterCounter is an integer shared by every instance of the cluster.
//
//go:generate moq -stub -out mock/cluster_counter.go -pkg mock . ClusterCounter
type ClusterCounter interface {
	// Increment atomically adds one and returns the new value.
	// Returns cluster_unavailable when the shared store cannot be reached.
	Increment(ctx context.Context) (int64, error)

	// Get returns the current value; an absent counter reads as 0.
	// Returns cluster_unavailable when the shared store cannot be reached.
	Get(ctx context.Context) (int64, error)
}
