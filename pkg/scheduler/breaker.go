package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
)

// Breaker gates upstream dispatches behind a circuit breaker. Only retryable
// failures (connection errors, timeouts, 429, 5xx) count against the breaker;
// business rejections pass through without tripping it. While open, a probe
// loop checks upstream health so the breaker can close again without burning
// a queued request on a dead upstream.
type Breaker struct {
	cb            *gobreaker.CircuitBreaker
	hub           hubsoft.Client
	probeInterval time.Duration
	logger        *slog.Logger
}

// NewBreaker creates a breaker that opens after cfg.BreakerThreshold
// consecutive retryable failures.
func NewBreaker(hub hubsoft.Client, cfg *config.SchedulerConfig) *Breaker {
	if hub == nil {
		panic("NewBreaker: hub must not be nil")
	}
	logger := slog.With("component", "scheduler_breaker")

	settings := gobreaker.Settings{
		Name:        "hubsoft",
		MaxRequests: 1,
		Timeout:     cfg.BreakerProbeInterval,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.BreakerThreshold)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !hubsoft.IsRetryable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				"from", from.String(),
				"to", to.String())
		},
	}

	return &Breaker{
		cb:            gobreaker.NewCircuitBreaker(settings),
		hub:           hub,
		probeInterval: cfg.BreakerProbeInterval,
		logger:        logger,
	}
}

// Allow reports whether a dispatch may be attempted right now. Half-open
// admits a single trial request.
func (b *Breaker) Allow() bool {
	return b.cb.State() != gobreaker.StateOpen
}

// State returns the breaker state as a string for health reporting.
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Execute runs fn through the breaker. When the breaker rejects the call,
// ErrBreakerOpen is returned and fn does not run.
func (b *Breaker) Execute(fn func() error) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrBreakerOpen
	}
	return err
}

// RunProbe periodically checks upstream health while the breaker is not
// closed. A successful probe in half-open closes the breaker, so recovery
// does not depend on sacrificing a real queued request.
func (b *Breaker) RunProbe(ctx context.Context, stopCh <-chan struct{}) {
	ticker := time.NewTicker(b.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			if b.cb.State() == gobreaker.StateClosed {
				continue
			}
			err := b.Execute(func() error {
				probeCtx, cancel := context.WithTimeout(ctx, b.probeInterval)
				defer cancel()
				_, herr := b.hub.CheckHealth(probeCtx)
				return herr
			})
			if err != nil && !errors.Is(err, ErrBreakerOpen) {
				b.logger.Debug("Upstream health probe failed", "error", err)
			}
		}
	}
}
