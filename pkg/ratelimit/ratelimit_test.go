package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func newTestWindow(max int, window time.Duration) (*Window, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	w := NewWindow(max, window)
	w.now = clock.Now
	return w, clock
}

func TestWindow_BudgetEnforced(t *testing.T) {
	w, _ := newTestWindow(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, w.CanMakeRequest(), "request %d", i)
		w.Record()
	}

	assert.False(t, w.CanMakeRequest())
	assert.Equal(t, 3, w.Used())
	assert.Equal(t, 0, w.Remaining())
}

func TestWindow_SlidesOverTime(t *testing.T) {
	w, clock := newTestWindow(2, time.Minute)

	w.Record()
	clock.Advance(30 * time.Second)
	w.Record()
	assert.False(t, w.CanMakeRequest())

	// First timestamp leaves the window; one unit frees.
	clock.Advance(31 * time.Second)
	assert.True(t, w.CanMakeRequest())
	assert.Equal(t, 1, w.Used())

	// Second timestamp leaves too.
	clock.Advance(30 * time.Second)
	assert.Equal(t, 0, w.Used())
	assert.Equal(t, 2, w.Remaining())
}

func TestWindow_RollingWindowNeverExceedsMax(t *testing.T) {
	w, clock := newTestWindow(5, time.Minute)

	// Record at a steady pace and check the invariant at every step.
	for i := 0; i < 30; i++ {
		if w.CanMakeRequest() {
			w.Record()
		}
		assert.LessOrEqual(t, w.Used(), 5)
		clock.Advance(7 * time.Second)
	}
}

func TestWindow_WaitForBudget(t *testing.T) {
	t.Run("returns immediately and reserves the unit", func(t *testing.T) {
		w, _ := newTestWindow(1, time.Minute)
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, w.WaitForBudget(ctx))
		assert.Equal(t, 1, w.Used())
		assert.False(t, w.CanMakeRequest())
	})

	t.Run("respects context cancellation while exhausted", func(t *testing.T) {
		w, _ := newTestWindow(1, time.Minute)
		w.Record()

		ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
		defer cancel()
		err := w.WaitForBudget(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("wakes when budget frees", func(t *testing.T) {
		w, clock := newTestWindow(1, time.Minute)
		w.Record()

		done := make(chan error, 1)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			done <- w.WaitForBudget(ctx)
		}()

		clock.Advance(61 * time.Second)
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("waiter did not wake after the window slid")
		}
	})
}

func TestWindow_ConcurrentWaitersNeverOvershoot(t *testing.T) {
	w, _ := newTestWindow(5, time.Minute)

	var wg sync.WaitGroup
	var admitted int64
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
			defer cancel()
			if w.WaitForBudget(ctx) == nil {
				atomic.AddInt64(&admitted, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 5, admitted)
	assert.Equal(t, 5, w.Used())
}

func TestWindow_ConcurrentRecord(t *testing.T) {
	w, _ := newTestWindow(100, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Record()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, w.Used())
}
