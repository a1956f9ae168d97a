package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// markOrphaned moves a request into in_progress with a stale heartbeat.
func markOrphaned(t *testing.T, f *fixture, id, podID string, heartbeatAge time.Duration) {
	t.Helper()
	err := f.client.IntegrationRequest.UpdateOneID(id).
		SetStatus(integrationrequest.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(time.Now().Add(-heartbeatAge)).
		SetLastHeartbeatAt(time.Now().Add(-heartbeatAge)).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestOrphanDetection_RequeuesStaleRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pool := NewWorkerPool("pod-test", f.client, f.cfg, nil, f.breaker, f.limiter, f.bus)

	stale := f.enqueue(t, "ticket_sync", models.TicketSyncPayload{TicketID: "t-1"})
	fresh := f.enqueue(t, "ticket_sync", models.TicketSyncPayload{TicketID: "t-2"})
	markOrphaned(t, f, stale.ID, "pod-dead", 10*time.Minute)
	markOrphaned(t, f, fresh.ID, "pod-alive", time.Second)

	require.NoError(t, pool.detectAndRequeueOrphans(ctx))

	t.Run("stale request returns to the queue", func(t *testing.T) {
		got, err := f.integrations.Get(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, models.IntegrationStatusScheduled, got.Status)
		assert.False(t, got.ScheduledAt.After(time.Now()))

		row, err := f.client.IntegrationRequest.Get(ctx, stale.ID)
		require.NoError(t, err)
		assert.Nil(t, row.PodID)
		assert.Nil(t, row.LastHeartbeatAt)
	})

	t.Run("fresh heartbeat survives", func(t *testing.T) {
		got, err := f.integrations.Get(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, models.IntegrationStatusInProgress, got.Status)
	})

	t.Run("scan metrics updated", func(t *testing.T) {
		pool.orphans.mu.Lock()
		defer pool.orphans.mu.Unlock()
		assert.Equal(t, 1, pool.orphans.orphansRecovered)
		assert.False(t, pool.orphans.lastOrphanScan.IsZero())
	})
}

func TestCleanupStartupOrphans(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mine := f.enqueue(t, "ticket_sync", models.TicketSyncPayload{TicketID: "t-1"})
	other := f.enqueue(t, "ticket_sync", models.TicketSyncPayload{TicketID: "t-2"})
	markOrphaned(t, f, mine.ID, "pod-test", time.Second)
	markOrphaned(t, f, other.ID, "pod-other", time.Second)

	require.NoError(t, CleanupStartupOrphans(ctx, f.client, "pod-test"))

	got, err := f.integrations.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationStatusScheduled, got.Status, "own claims are requeued on startup")

	got, err = f.integrations.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationStatusInProgress, got.Status, "other pods' claims are left alone")
}

func TestPool_StartStopAndHealth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	dispatcher := NewDispatcher(f.hub, f.tickets, f.cache, f.limiter)
	pool := NewWorkerPool("pod-test", f.client, f.cfg, dispatcher, f.breaker, f.limiter, f.bus)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	t.Run("duplicate start is a no-op", func(t *testing.T) {
		require.NoError(t, pool.Start(ctx))
		assert.Len(t, pool.workers, f.cfg.WorkerCount)
	})

	t.Run("health reflects the pool", func(t *testing.T) {
		h := pool.Health()
		assert.True(t, h.IsHealthy)
		assert.True(t, h.DBReachable)
		assert.Equal(t, "pod-test", h.PodID)
		assert.Equal(t, f.cfg.WorkerCount, h.TotalWorkers)
		assert.Equal(t, "closed", h.BreakerState)
		assert.Len(t, h.WorkerStats, f.cfg.WorkerCount)
	})
}
