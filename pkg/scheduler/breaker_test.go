package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
)

func newTestBreaker(threshold int, probeInterval time.Duration) (*Breaker, *hubsoft.Fake) {
	hub := hubsoft.NewFake()
	cfg := config.DefaultSchedulerConfig()
	cfg.BreakerThreshold = threshold
	cfg.BreakerProbeInterval = probeInterval
	return NewBreaker(hub, cfg), hub
}

func TestBreaker_OpensOnConsecutiveRetryableFailures(t *testing.T) {
	b, _ := newTestBreaker(2, time.Minute)
	transient := &hubsoft.APIError{StatusCode: 503, Code: "upstream_unavailable", Retryable: true}

	require.True(t, b.Allow())
	for i := 0; i < 2; i++ {
		err := b.Execute(func() error { return transient })
		assert.ErrorIs(t, err, transient)
	}

	assert.Equal(t, "open", b.State())
	assert.False(t, b.Allow())

	err := b.Execute(func() error {
		t.Fatal("must not run while open")
		return nil
	})
	assert.ErrorIs(t, err, ErrBreakerOpen)
}

func TestBreaker_BusinessErrorsDoNotTrip(t *testing.T) {
	b, _ := newTestBreaker(2, time.Minute)
	rejected := &hubsoft.APIError{StatusCode: 404, Code: "not_found", Retryable: false}

	for i := 0; i < 10; i++ {
		err := b.Execute(func() error { return rejected })
		assert.ErrorIs(t, err, rejected)
	}

	assert.Equal(t, "closed", b.State())
	assert.True(t, b.Allow())
}

func TestBreaker_SuccessResetsTheCount(t *testing.T) {
	b, _ := newTestBreaker(3, time.Minute)
	transient := &hubsoft.APIError{StatusCode: 503, Code: "upstream_unavailable", Retryable: true}

	_ = b.Execute(func() error { return transient })
	_ = b.Execute(func() error { return transient })
	require.NoError(t, b.Execute(func() error { return nil }))
	_ = b.Execute(func() error { return transient })
	_ = b.Execute(func() error { return transient })

	assert.Equal(t, "closed", b.State(), "a success in between resets the consecutive count")
}

func TestBreaker_HalfOpenRecovery(t *testing.T) {
	b, _ := newTestBreaker(1, 30*time.Millisecond)
	transient := &hubsoft.APIError{StatusCode: 503, Code: "upstream_unavailable", Retryable: true}

	_ = b.Execute(func() error { return transient })
	require.Equal(t, "open", b.State())

	time.Sleep(40 * time.Millisecond)
	require.Equal(t, "half-open", b.State())
	assert.True(t, b.Allow(), "half-open admits a trial request")

	require.NoError(t, b.Execute(func() error { return nil }))
	assert.Equal(t, "closed", b.State())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	b, _ := newTestBreaker(1, 30*time.Millisecond)
	transient := &hubsoft.APIError{StatusCode: 503, Code: "upstream_unavailable", Retryable: true}

	_ = b.Execute(func() error { return transient })
	time.Sleep(40 * time.Millisecond)

	err := b.Execute(func() error { return transient })
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBreakerOpen), "the trial request itself runs")
	assert.Equal(t, "open", b.State())
}
