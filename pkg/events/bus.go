package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// Handler processes a single domain event. Handlers must be idempotent: the
// bus offers at-most-best-effort delivery and callers may republish.
type Handler func(ctx context.Context, event DomainEvent) error

// HandlerError records a single handler failure during Publish.
type HandlerError struct {
	HandlerName string
	EventType   string
	Err         error
}

func (e HandlerError) Error() string {
	return fmt.Sprintf("handler %q failed for %s: %v", e.HandlerName, e.EventType, e.Err)
}

// subscription is a named handler registration. Names make registration
// idempotent (funcs are not comparable).
type subscription struct {
	name    string
	handler Handler
}

// Bus is the in-process domain event bus. Per-type subscribers receive
// exact-type matches; global subscribers receive every event. Dispatch is
// parallel across subscribers, bounded by a semaphore, with a per-handler
// deadline. A failing handler never prevents other handlers from running.
//
// Subscriber tables are copied at publish time, so handlers may register
// concurrently with dispatch.
type Bus struct {
	mu       sync.RWMutex
	byType   map[string][]subscription
	global   []subscription
	sem      *semaphore.Weighted
	deadline time.Duration
}

// NewBus creates a bus with the given fan-out bound and per-handler deadline.
func NewBus(maxConcurrentHandlers int, handlerTimeout time.Duration) *Bus {
	if maxConcurrentHandlers <= 0 {
		maxConcurrentHandlers = 10
	}
	if handlerTimeout <= 0 {
		handlerTimeout = 30 * time.Second
	}
	return &Bus{
		byType:   make(map[string][]subscription),
		sem:      semaphore.NewWeighted(int64(maxConcurrentHandlers)),
		deadline: handlerTimeout,
	}
}

// Subscribe registers a named handler for one event type. Registering the
// same name for the same type again is a no-op.
func (b *Bus) Subscribe(eventType, name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.byType[eventType] {
		if sub.name == name {
			return
		}
	}
	b.byType[eventType] = append(b.byType[eventType], subscription{name: name, handler: h})
}

// SubscribeAll registers a named global handler invoked for every event.
// Registering the same name again is a no-op.
func (b *Bus) SubscribeAll(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.global {
		if sub.name == name {
			return
		}
	}
	b.global = append(b.global, subscription{name: name, handler: h})
}

// Unsubscribe removes a named per-type registration. Missing entries are ignored.
func (b *Bus) Unsubscribe(eventType, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.byType[eventType]
	for i, sub := range subs {
		if sub.name == name {
			// Copy-on-write: publishers hold snapshots of the old slice.
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			b.byType[eventType] = next
			return
		}
	}
}

// HandlerCount returns the number of per-type subscribers for an event type.
func (b *Bus) HandlerCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byType[eventType])
}

// GlobalHandlerCount returns the number of global subscribers.
func (b *Bus) GlobalHandlerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.global)
}

// Publish dispatches the event to all matching subscribers and waits for
// them. Handler failures are collected and returned, never re-raised: one
// failing handler does not abort the publish or starve its siblings.
//
// Cancelling ctx stops dispatching to handlers that have not started yet;
// handlers already running keep their own deadline (the per-handler context
// is detached from ctx).
func (b *Bus) Publish(ctx context.Context, event DomainEvent) []HandlerError {
	subs := b.snapshot(event.EventType())
	if len(subs) == 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []HandlerError
	)

	for _, sub := range subs {
		if err := b.sem.Acquire(ctx, 1); err != nil {
			// Publish cancelled before this handler started.
			mu.Lock()
			failures = append(failures, HandlerError{
				HandlerName: sub.name,
				EventType:   event.EventType(),
				Err:         err,
			})
			mu.Unlock()
			continue
		}

		wg.Add(1)
		go func(sub subscription) {
			defer wg.Done()
			defer b.sem.Release(1)

			// Detach from the publish context: a started handler runs to its
			// own deadline even if Publish is cancelled.
			handlerCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.deadline)
			defer cancel()

			if err := b.invoke(handlerCtx, sub, event); err != nil {
				slog.Warn("Event handler failed",
					"handler", sub.name,
					"event_type", event.EventType(),
					"event_id", event.EventID(),
					"error", err)
				mu.Lock()
				failures = append(failures, HandlerError{
					HandlerName: sub.name,
					EventType:   event.EventType(),
					Err:         err,
				})
				mu.Unlock()
			}
		}(sub)
	}

	wg.Wait()
	return failures
}

// PublishMany dispatches each event independently. Ordering across events is
// not guaranteed; failures from all events are concatenated.
func (b *Bus) PublishMany(ctx context.Context, evts []DomainEvent) []HandlerError {
	var failures []HandlerError
	for _, e := range evts {
		failures = append(failures, b.Publish(ctx, e)...)
	}
	return failures
}

// invoke runs one handler, converting panics into errors so a broken
// subscriber cannot take down the publisher.
func (b *Bus) invoke(ctx context.Context, sub subscription, event DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return sub.handler(ctx, event)
}

// snapshot returns the per-type subscribers for eventType plus all global
// subscribers, copied under the read lock.
func (b *Bus) snapshot(eventType string) []subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()
	subs := make([]subscription, 0, len(b.byType[eventType])+len(b.global))
	subs = append(subs, b.byType[eventType]...)
	subs = append(subs, b.global...)
	return subs
}
