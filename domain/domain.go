package domain

import "time"

// InstanceID identifies one running process of the service. Generated once in main.
type InstanceID string

// StatusAddress is the event-bus address status messages are published on.
const StatusAddress = "status"

// CounterKey is the well-known name of the cluster-wide request counter.
const CounterKey = "counter"

// StatusMessage is published on StatusAddress every broadcast tick.
// RequestCount carries the cluster counter snapshot.
type StatusMessage struct {
	ID           InstanceID `json:"id"`
	RequestCount int64      `json:"requestCount"`
	AppName      string     `json:"appname,omitempty"`
}

// PodInfo is the answer to a pod-info request. RequestCount is the caller's session counter.
type PodInfo struct {
	ID           InstanceID
	RequestCount int
}

// Member is the membership record an instance keeps alive in the shared store.
type Member struct {
	ID       InstanceID `json:"id"`
	AppName  string     `json:"appname,omitempty"`
	LastSeen time.Time  `json:"lastSeen"`
}

// BusMessage is one message received from the event bus.
type BusMessage struct {
	Address string
	Body    []byte
}
