package service

import (
	"sync"
	"sync/atomic"
)

// Readiness reports whether the instance finished its startup sequence.
type Readiness struct {
	ready atomic.Bool

	mu      sync.Mutex
	onReady []func()
}

// OnReady registers fn to run when MarkReady is first called. Runs fn at once if already ready.
func (r *Readiness) OnReady(fn func()) {
	r.mu.Lock()
	if !r.ready.Load() {
		r.onReady = append(r.onReady, fn)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	fn()
}

// MarkReady flips the instance to ready and runs the registered callbacks once.
func (r *Readiness) MarkReady() {
	r.mu.Lock()
	if r.ready.Swap(true) {
		r.mu.Unlock()
		return
	}
	callbacks := r.onReady
	r.onReady = nil
	r.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// IsReady reports whether MarkReady was called.
func (r *Readiness) IsReady() bool {
	return r.ready.Load()
}
