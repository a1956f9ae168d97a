package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIntegration(now time.Time) *IntegrationRequest {
	payload, _ := json.Marshal(TicketSyncPayload{TicketID: "t-1"})
	return NewIntegrationRequest("i-1", IntegrationTypeTicketSync, IntegrationPriorityNormal, payload, now, time.Time{})
}

func TestRetryBackoff(t *testing.T) {
	cases := []struct {
		attempts int
		want     time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 32 * time.Second},
		{6, 60 * time.Second},
		{10, 60 * time.Second},
		{-1, 1 * time.Second},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RetryBackoff(tc.attempts), "attempts=%d", tc.attempts)
	}
}

func TestIntegrationRequest_Retry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("retries allowed up to max", func(t *testing.T) {
		r := newTestIntegration(now)
		for i := 0; i < DefaultIntegrationMaxRetries-1; i++ {
			r.RecordAttempt(IntegrationAttempt{StartedAt: now, FinishedAt: now, Error: "timeout"})
			assert.True(t, r.CanRetry(), "attempt %d", i+1)
			require.NoError(t, r.ScheduleRetry("timeout", RetryBackoff(len(r.Attempts)), now))
			assert.Equal(t, IntegrationStatusScheduled, r.Status)
		}

		r.RecordAttempt(IntegrationAttempt{StartedAt: now, FinishedAt: now, Error: "timeout"})
		assert.False(t, r.CanRetry())
		assert.Error(t, r.ScheduleRetry("timeout", time.Second, now))
	})

	t.Run("force retry bypasses the cap", func(t *testing.T) {
		r := newTestIntegration(now)
		for i := 0; i < DefaultIntegrationMaxRetries+2; i++ {
			r.RecordAttempt(IntegrationAttempt{StartedAt: now, FinishedAt: now, Error: "timeout"})
		}
		assert.False(t, r.CanRetry())

		r.ForceRetry = true
		assert.True(t, r.CanRetry())
		require.NoError(t, r.ScheduleRetry("timeout", 4*time.Second, now))
		assert.Equal(t, now.Add(4*time.Second), r.ScheduledAt)
	})
}

func TestIntegrationRequest_TerminalGuards(t *testing.T) {
	now := time.Now().UTC()

	t.Run("completed is final", func(t *testing.T) {
		r := newTestIntegration(now)
		require.NoError(t, r.MarkCompleted(json.RawMessage(`{"ok":true}`), now))
		assert.Equal(t, IntegrationStatusCompleted, r.Status)
		require.NotNil(t, r.CompletedAt)

		assert.Error(t, r.MarkCompleted(nil, now))
		assert.Error(t, r.MarkFailed("late", now))
		assert.Error(t, r.ScheduleRetry("late", time.Second, now))
		assert.Error(t, r.Cancel(now))
		assert.False(t, r.CanRetry())
	})

	t.Run("failed is retryable with force", func(t *testing.T) {
		r := newTestIntegration(now)
		require.NoError(t, r.MarkFailed("exhausted", now))
		assert.Equal(t, IntegrationStatusFailed, r.Status)
		assert.Equal(t, "exhausted", r.LastError)
		assert.False(t, r.Status.IsTerminal(), "failed requests can be force-retried")

		r.ForceRetry = true
		require.NoError(t, r.ScheduleRetry("retrying", time.Second, now))
	})

	t.Run("cannot cancel in progress", func(t *testing.T) {
		r := newTestIntegration(now)
		r.Status = IntegrationStatusInProgress
		assert.Error(t, r.Cancel(now))

		r.Status = IntegrationStatusPending
		require.NoError(t, r.Cancel(now))
		assert.Equal(t, IntegrationStatusCancelled, r.Status)
	})
}

func TestIntegrationRequest_Events(t *testing.T) {
	now := time.Now().UTC()

	t.Run("completion emits integration completed", func(t *testing.T) {
		r := newTestIntegration(now)
		r.RecordAttempt(IntegrationAttempt{StartedAt: now, FinishedAt: now, Success: true})
		require.NoError(t, r.MarkCompleted(nil, now))

		evts := r.DrainEvents()
		require.Len(t, evts, 1)
		done, ok := evts[0].(events.IntegrationCompleted)
		require.True(t, ok)
		assert.Equal(t, "i-1", done.IntegrationID)
		assert.Equal(t, 1, done.Attempts)
	})

	t.Run("failure emits integration failed", func(t *testing.T) {
		r := newTestIntegration(now)
		require.NoError(t, r.MarkFailed("upstream down", now))

		evts := r.DrainEvents()
		require.Len(t, evts, 1)
		failed, ok := evts[0].(events.IntegrationFailed)
		require.True(t, ok)
		assert.Equal(t, "upstream down", failed.Error)
	})
}

func TestParseIntegrationEnums(t *testing.T) {
	for _, raw := range []string{"ticket_sync", "user_verification", "client_data_fetch", "bulk_sync", "status_update"} {
		got, err := ParseIntegrationType(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(got))
	}
	_, err := ParseIntegrationType("nope")
	assert.Error(t, err)

	for raw, want := range map[string]IntegrationPriority{
		"critical": IntegrationPriorityCritical,
		"high":     IntegrationPriorityHigh,
		"normal":   IntegrationPriorityNormal,
		"low":      IntegrationPriorityLow,
	} {
		got, err := ParseIntegrationPriority(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, raw, got.String())
	}
	_, err = ParseIntegrationPriority("urgent")
	assert.Error(t, err)
}
