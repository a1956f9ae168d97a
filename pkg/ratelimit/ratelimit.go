// Package ratelimit enforces the process-wide upstream request budget:
// at most maxRequests dispatches in any rolling window.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// minWait is the shortest sleep between budget checks, so a waiter never
// spins when the window edge is imminent.
const minWait = 100 * time.Millisecond

// Window is a sliding-window request counter shared by all upstream callers.
// A request is admitted only if fewer than maxRequests were recorded in the
// trailing window at the moment of the check.
type Window struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	timestamps  []time.Time

	now func() time.Time
}

// NewWindow creates a limiter admitting maxRequests per window.
func NewWindow(maxRequests int, window time.Duration) *Window {
	return &Window{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// CanMakeRequest reports whether budget remains right now.
func (w *Window) CanMakeRequest() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.usedLocked(w.now()) < w.maxRequests
}

// Record consumes one unit of budget unconditionally. WaitForBudget already
// reserves; Record is for callers that dispatch without waiting.
func (w *Window) Record() {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := w.now()
	w.pruneLocked(now)
	w.timestamps = append(w.timestamps, now)
}

// Used returns how much budget the trailing window has consumed.
func (w *Window) Used() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.usedLocked(w.now())
}

// Remaining returns how much budget is left in the trailing window.
func (w *Window) Remaining() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	left := w.maxRequests - w.usedLocked(w.now())
	if left < 0 {
		return 0
	}
	return left
}

// WaitForBudget blocks until budget is available or the context ends, and
// consumes one unit on success. The check and the reservation happen under
// one lock so concurrent waiters can never admit more than maxRequests per
// window between them. Exhausted waiters poll every minWait.
func (w *Window) WaitForBudget(ctx context.Context) error {
	for {
		w.mu.Lock()
		now := w.now()
		w.pruneLocked(now)
		free := len(w.timestamps) < w.maxRequests
		if free {
			w.timestamps = append(w.timestamps, now)
		}
		w.mu.Unlock()
		if free {
			return nil
		}

		timer := time.NewTimer(minWait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// usedLocked counts in-window timestamps. Caller holds the lock.
func (w *Window) usedLocked(now time.Time) int {
	w.pruneLocked(now)
	return len(w.timestamps)
}

// pruneLocked drops timestamps older than the window. Caller holds the lock.
func (w *Window) pruneLocked(now time.Time) {
	cutoff := now.Add(-w.window)
	i := 0
	for i < len(w.timestamps) && !w.timestamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.timestamps = append(w.timestamps[:0], w.timestamps[i:]...)
	}
}
