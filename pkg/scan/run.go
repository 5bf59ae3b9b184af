// Package scan fans a query out across the provider platforms, merges and
// deduplicates what comes back per category, and pushes incremental renders
// to a sink. Only the most recent run of a surface may touch the sink.
package scan

import (
	"context"
	"sync"
)

// Runner hands out monotonically increasing run tokens for one surface and
// cancels the previous run's context when a new one starts. A render is
// applied only while its token is still the current one, so results from a
// superseded run are discarded even when they arrive later.
type Runner struct {
	mu      sync.Mutex
	current uint64
	cancel  context.CancelFunc
}

// Start cancels any in-flight run and returns a fresh context plus the token
// that identifies the new run.
func (r *Runner) Start(parent context.Context) (context.Context, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	r.current++
	r.cancel = cancel
	return ctx, r.current
}

// IsCurrent reports whether token still identifies the latest run.
func (r *Runner) IsCurrent(token uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return token == r.current
}

// Stop cancels the current run without starting a new one.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.current++
}
