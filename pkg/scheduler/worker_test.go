package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/models"
	"github.com/atlasfibra/backoffice/pkg/ratelimit"
	"github.com/atlasfibra/backoffice/pkg/services"
)

func TestWorker_NoWorkAvailable(t *testing.T) {
	f := newFixture(t)
	err := f.worker.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNoWorkAvailable)
}

func TestWorker_DispatchesTicketSync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "t-1")
	r := f.enqueue(t, "ticket_sync", models.TicketSyncPayload{TicketID: "t-1"})

	require.NoError(t, f.worker.pollAndProcess(ctx))

	stored, err := f.integrations.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationStatusCompleted, stored.Status)
	require.Len(t, stored.Attempts, 1)
	assert.True(t, stored.Attempts[0].Success)
	assert.Contains(t, string(stored.Response), "hub-1")

	synced, err := f.tickets.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, synced.Sync)

	assert.Equal(t, 1, f.recorder.countOf(events.TypeIntegrationCompleted))
	assert.Equal(t, 1, f.recorder.countOf(events.TypeTicketSynced))
}

func TestWorker_ClaimOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	low := f.enqueue(t, "ticket_sync", models.TicketSyncPayload{TicketID: "t-1"},
		func(in *services.EnqueueInput) { in.Priority = "low" })
	critical := f.enqueue(t, "ticket_sync", models.TicketSyncPayload{TicketID: "t-2"},
		func(in *services.EnqueueInput) { in.Priority = "critical" })
	normalFirst := f.enqueue(t, "ticket_sync", models.TicketSyncPayload{TicketID: "t-3"})
	normalSecond := f.enqueue(t, "ticket_sync", models.TicketSyncPayload{TicketID: "t-4"})

	var order []string
	for i := 0; i < 4; i++ {
		row, err := f.worker.claimNext(ctx)
		require.NoError(t, err)
		order = append(order, row.ID)
	}

	assert.Equal(t, []string{critical.ID, normalFirst.ID, normalSecond.ID, low.ID}, order,
		"priority first, FIFO within a priority")

	_, err := f.worker.claimNext(ctx)
	assert.ErrorIs(t, err, ErrNoWorkAvailable)
}

func TestWorker_FutureScheduledAtNotClaimable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.enqueue(t, "ticket_sync", models.TicketSyncPayload{TicketID: "t-1"},
		func(in *services.EnqueueInput) { in.ScheduledAt = f.clock.Now().Add(time.Hour) })

	err := f.worker.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrNoWorkAvailable)

	f.clock.Advance(2 * time.Hour)
	f.seedTicket(t, "t-1")
	require.NoError(t, f.worker.pollAndProcess(ctx))
}

func TestWorker_RetryThenExhausted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.hub.FailAll(&hubsoft.APIError{StatusCode: 503, Code: "upstream_unavailable", Retryable: true})
	r := f.enqueue(t, "user_verification",
		models.UserVerificationPayload{UserID: 42, CPF: testCPF},
		func(in *services.EnqueueInput) { in.MaxRetries = 2 })

	require.NoError(t, f.worker.pollAndProcess(ctx))

	stored, err := f.integrations.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationStatusScheduled, stored.Status)
	require.Len(t, stored.Attempts, 1)
	assert.False(t, stored.Attempts[0].Success)
	assert.WithinDuration(t, f.clock.Now().Add(models.RetryBackoff(1)), stored.ScheduledAt, time.Second,
		"backoff pushes scheduled_at forward")

	t.Run("not claimable before the backoff elapses", func(t *testing.T) {
		err := f.worker.pollAndProcess(ctx)
		assert.ErrorIs(t, err, ErrNoWorkAvailable)
	})

	t.Run("final attempt marks the request failed", func(t *testing.T) {
		f.clock.Advance(5 * time.Second)
		require.NoError(t, f.worker.pollAndProcess(ctx))

		stored, err := f.integrations.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, models.IntegrationStatusFailed, stored.Status)
		assert.Len(t, stored.Attempts, 2)
		assert.NotEmpty(t, stored.LastError)
		require.NotNil(t, stored.CompletedAt)

		assert.Equal(t, 1, f.recorder.countOf(events.TypeIntegrationFailed))
		assert.Equal(t, 1, f.recorder.countOf(events.TypeTechNotificationRequired))
	})
}

func TestWorker_RetryAfterHintHonored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.hub.FailNext(&hubsoft.APIError{StatusCode: 429, Code: "rate_limited", Retryable: true, RetryAfter: 45 * time.Second})
	r := f.enqueue(t, "user_verification", models.UserVerificationPayload{UserID: 42, CPF: testCPF})

	require.NoError(t, f.worker.pollAndProcess(ctx))

	stored, err := f.integrations.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationStatusScheduled, stored.Status)
	assert.WithinDuration(t, f.clock.Now().Add(45*time.Second), stored.ScheduledAt, time.Second,
		"server retry hint overrides the backoff")
}

func TestWorker_NonRetryableFailsImmediately(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// No upstream client seeded: lookup fails with a business error.
	r := f.enqueue(t, "user_verification", models.UserVerificationPayload{UserID: 42, CPF: testCPF})

	require.NoError(t, f.worker.pollAndProcess(ctx))

	stored, err := f.integrations.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationStatusFailed, stored.Status)
	assert.Len(t, stored.Attempts, 1, "business rejections do not retry")
	assert.Equal(t, "closed", f.breaker.State(), "business rejections do not trip the breaker")
}

func TestWorker_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	f := newFixture(t)
	// Keep the breaker from probing half-open mid-test.
	f.cfg.BreakerProbeInterval = time.Minute
	f.rebuild()
	ctx := context.Background()

	f.hub.FailAll(&hubsoft.APIError{StatusCode: 503, Code: "upstream_unavailable", Retryable: true})
	f.enqueue(t, "user_verification",
		models.UserVerificationPayload{UserID: 42, CPF: testCPF},
		func(in *services.EnqueueInput) { in.MaxRetries = 10 })

	for i := 0; i < f.cfg.BreakerThreshold; i++ {
		require.NoError(t, f.worker.pollAndProcess(ctx))
		f.clock.Advance(2 * time.Minute)
	}

	assert.Equal(t, "open", f.breaker.State())
	calls := f.hub.CallCount("VerifyClientByCPF")

	err := f.worker.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.Equal(t, calls, f.hub.CallCount("VerifyClientByCPF"), "open breaker blocks before claiming")
}

func TestWorker_RateBudgetGate(t *testing.T) {
	f := newFixture(t)
	f.limiter = ratelimit.NewWindow(2, time.Minute)
	f.rebuild()
	ctx := context.Background()

	f.seedClient(testCPF, "Maria Souza")
	f.seedClient(testCPFOther, "Joana Lima")
	f.seedClient(testCPFThird, "Pedro Reis")
	f.enqueue(t, "client_data_fetch", models.ClientDataFetchPayload{CPF: testCPF})
	f.enqueue(t, "client_data_fetch", models.ClientDataFetchPayload{CPF: testCPFOther})
	f.enqueue(t, "client_data_fetch", models.ClientDataFetchPayload{CPF: testCPFThird})

	require.NoError(t, f.worker.pollAndProcess(ctx))
	require.NoError(t, f.worker.pollAndProcess(ctx))

	err := f.worker.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrNoBudget)

	pending, err := f.integrations.CountByStatus(ctx, models.IntegrationStatusPending)
	require.NoError(t, err)
	assert.Equal(t, 1, pending, "the third request stays queued until the window slides")
}

func TestWorker_ClientDataFetchUsesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedClient(testCPF, "Maria Souza")
	first := f.enqueue(t, "client_data_fetch", models.ClientDataFetchPayload{CPF: testCPF})
	second := f.enqueue(t, "client_data_fetch", models.ClientDataFetchPayload{CPF: testCPF})

	require.NoError(t, f.worker.pollAndProcess(ctx))
	require.NoError(t, f.worker.pollAndProcess(ctx))

	for _, id := range []string{first.ID, second.ID} {
		stored, err := f.integrations.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.IntegrationStatusCompleted, stored.Status)
		assert.Contains(t, string(stored.Response), "Maria Souza")
	}
	assert.Equal(t, 1, f.hub.CallCount("VerifyClientByCPF"), "second fetch is served from the cache")
}

func TestWorker_BulkSync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "t-1")
	f.seedTicket(t, "t-2")

	r := f.enqueue(t, "bulk_sync", models.BulkSyncPayload{TicketIDs: []string{"t-1", "t-2"}})

	require.NoError(t, f.worker.pollAndProcess(ctx))

	stored, err := f.integrations.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationStatusCompleted, stored.Status)
	assert.Equal(t, 2, f.hub.CallCount("CreateTicket"))

	for _, id := range []string{"t-1", "t-2"} {
		synced, err := f.tickets.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.SyncStatusSynced, synced.Sync)
	}
}

func TestWorker_StatusUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "t-1")

	// Sync first so the upstream knows the ticket.
	_, err := f.tickets.SyncWithUpstream(ctx, "t-1")
	require.NoError(t, err)

	r := f.enqueue(t, "status_update", models.StatusUpdatePayload{
		TicketID:   "t-1",
		UpstreamID: "hub-1",
		Status:     "fechado",
	})

	require.NoError(t, f.worker.pollAndProcess(ctx))

	stored, err := f.integrations.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationStatusCompleted, stored.Status)
	assert.Equal(t, 1, f.hub.CallCount("UpdateTicket"))
}

func TestWorker_ForceRetryConsumedByDispatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.hub.FailAll(&hubsoft.APIError{StatusCode: 503, Code: "upstream_unavailable", Retryable: true})
	r := f.enqueue(t, "user_verification",
		models.UserVerificationPayload{UserID: 42, CPF: testCPF},
		func(in *services.EnqueueInput) { in.MaxRetries = 1 })

	require.NoError(t, f.worker.pollAndProcess(ctx))
	stored, err := f.integrations.Get(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, models.IntegrationStatusFailed, stored.Status)

	_, err = f.integrations.ForceRetry(ctx, r.ID)
	require.NoError(t, err)

	require.NoError(t, f.worker.pollAndProcess(ctx))
	stored, err = f.integrations.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationStatusFailed, stored.Status, "forced dispatch gets exactly one extra attempt")
	assert.Len(t, stored.Attempts, 2)
	assert.False(t, stored.ForceRetry)
}
