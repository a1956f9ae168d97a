package events

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishTypedAndGlobal(t *testing.T) {
	bus := NewBus(10, time.Second)

	var typed, global atomic.Int32
	bus.Subscribe(TypeVerificationStarted, "typed", func(_ context.Context, _ DomainEvent) error {
		typed.Add(1)
		return nil
	})
	bus.SubscribeAll("global", func(_ context.Context, _ DomainEvent) error {
		global.Add(1)
		return nil
	})

	failures := bus.Publish(context.Background(), NewVerificationStarted("v-1", 100, "alice", "auto_checkup", "start"))
	assert.Empty(t, failures)
	assert.Equal(t, int32(1), typed.Load())
	assert.Equal(t, int32(1), global.Load())

	// A different event type only reaches the global subscriber.
	failures = bus.Publish(context.Background(), NewVerificationExpired("v-2", 100))
	assert.Empty(t, failures)
	assert.Equal(t, int32(1), typed.Load())
	assert.Equal(t, int32(2), global.Load())
}

func TestBus_SubscribeIsIdempotent(t *testing.T) {
	bus := NewBus(10, time.Second)

	h := func(_ context.Context, _ DomainEvent) error { return nil }
	bus.Subscribe(TypeTicketCreated, "notifier", h)
	bus.Subscribe(TypeTicketCreated, "notifier", h)
	assert.Equal(t, 1, bus.HandlerCount(TypeTicketCreated))

	bus.SubscribeAll("audit", h)
	bus.SubscribeAll("audit", h)
	assert.Equal(t, 1, bus.GlobalHandlerCount())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(10, time.Second)
	h := func(_ context.Context, _ DomainEvent) error { return nil }

	bus.Subscribe(TypeTicketCreated, "a", h)
	bus.Subscribe(TypeTicketCreated, "b", h)
	bus.Unsubscribe(TypeTicketCreated, "a")
	assert.Equal(t, 1, bus.HandlerCount(TypeTicketCreated))

	// Removing an unknown name is a no-op.
	bus.Unsubscribe(TypeTicketCreated, "missing")
	assert.Equal(t, 1, bus.HandlerCount(TypeTicketCreated))
}

func TestBus_FailingHandlerDoesNotBlockOthers(t *testing.T) {
	bus := NewBus(10, time.Second)

	var ran atomic.Int32
	bus.Subscribe(TypeTicketCreated, "broken", func(_ context.Context, _ DomainEvent) error {
		return errors.New("boom")
	})
	bus.Subscribe(TypeTicketCreated, "panicky", func(_ context.Context, _ DomainEvent) error {
		panic("much worse")
	})
	bus.Subscribe(TypeTicketCreated, "healthy", func(_ context.Context, _ DomainEvent) error {
		ran.Add(1)
		return nil
	})

	failures := bus.Publish(context.Background(), NewTicketCreated("t-1", 100, "connectivity", "normal", "LOC000001"))
	assert.Equal(t, int32(1), ran.Load())
	require.Len(t, failures, 2)
	names := []string{failures[0].HandlerName, failures[1].HandlerName}
	assert.ElementsMatch(t, []string{"broken", "panicky"}, names)
}

func TestBus_HandlerDeadline(t *testing.T) {
	bus := NewBus(10, 50*time.Millisecond)

	var sawDeadline atomic.Bool
	bus.Subscribe(TypeTicketCreated, "slow", func(ctx context.Context, _ DomainEvent) error {
		select {
		case <-ctx.Done():
			sawDeadline.Store(true)
			return ctx.Err()
		case <-time.After(2 * time.Second):
			return nil
		}
	})

	failures := bus.Publish(context.Background(), NewTicketCreated("t-1", 100, "connectivity", "normal", "LOC000001"))
	require.Len(t, failures, 1)
	assert.True(t, sawDeadline.Load())
}

func TestBus_BoundedFanOut(t *testing.T) {
	bus := NewBus(2, time.Second)

	var current, peak atomic.Int32
	var mu sync.Mutex
	handler := func(_ context.Context, _ DomainEvent) error {
		n := current.Add(1)
		mu.Lock()
		if n > peak.Load() {
			peak.Store(n)
		}
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		current.Add(-1)
		return nil
	}
	for _, name := range []string{"h1", "h2", "h3", "h4", "h5"} {
		bus.Subscribe(TypeTicketCreated, name, handler)
	}

	failures := bus.Publish(context.Background(), NewTicketCreated("t-1", 100, "connectivity", "normal", "LOC000001"))
	assert.Empty(t, failures)
	assert.LessOrEqual(t, peak.Load(), int32(2), "fan-out must respect the semaphore bound")
}

func TestBus_PublishManyDispatchesIndependently(t *testing.T) {
	bus := NewBus(10, time.Second)

	var count atomic.Int32
	bus.SubscribeAll("counter", func(_ context.Context, _ DomainEvent) error {
		count.Add(1)
		return nil
	})

	evts := []DomainEvent{
		NewVerificationStarted("v-1", 100, "alice", "auto_checkup", "start"),
		NewVerificationExpired("v-1", 100),
		NewVerificationCancelled("v-1", 100, "user request"),
	}
	failures := bus.PublishMany(context.Background(), evts)
	assert.Empty(t, failures)
	assert.Equal(t, int32(3), count.Load())
}

func TestBus_CancelledPublishSkipsUnstartedHandlers(t *testing.T) {
	bus := NewBus(1, time.Second)

	release := make(chan struct{})
	var started atomic.Int32
	bus.Subscribe(TypeTicketCreated, "holder", func(_ context.Context, _ DomainEvent) error {
		started.Add(1)
		<-release
		return nil
	})
	bus.Subscribe(TypeTicketCreated, "starved", func(_ context.Context, _ DomainEvent) error {
		started.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan []HandlerError, 1)
	go func() {
		done <- bus.Publish(ctx, NewTicketCreated("t-1", 100, "connectivity", "normal", "LOC000001"))
	}()

	// Wait for the first handler to hold the only semaphore slot, then cancel.
	require.Eventually(t, func() bool { return started.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	close(release)

	failures := <-done
	require.Len(t, failures, 1)
	assert.Equal(t, "starved", failures[0].HandlerName)
	assert.Equal(t, int32(1), started.Load(), "the starved handler must never start")
}

func TestEventIDsDeriveFromTypeAndTime(t *testing.T) {
	e := NewVerificationStarted("v-1", 100, "alice", "auto_checkup", "start")
	assert.Contains(t, e.EventID(), TypeVerificationStarted)
	assert.False(t, e.OccurredAt().IsZero())
	assert.Equal(t, TypeVerificationStarted, e.EventType())
}
