package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/ent/integrationrequest"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned requests.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRequeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRequeueOrphans finds in_progress requests with stale heartbeats
// and returns them to the queue. Their recorded attempts are kept, so a
// request orphaned over and over still runs out of retries.
func (p *WorkerPool) detectAndRequeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.IntegrationRequest.Query().
		Where(
			integrationrequest.StatusEQ(integrationrequest.StatusInProgress),
			integrationrequest.LastHeartbeatAtNotNil(),
			integrationrequest.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned requests: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned integration requests", "count", len(orphans))

	recovered := 0
	for _, row := range orphans {
		if err := requeueOrphan(ctx, row); err != nil {
			slog.Error("Failed to requeue orphaned request",
				"integration_id", row.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphan returns a single orphaned request to the queue for immediate
// re-dispatch.
func requeueOrphan(ctx context.Context, row *ent.IntegrationRequest) error {
	lastHeartbeat := "unknown"
	if row.LastHeartbeatAt != nil {
		lastHeartbeat = row.LastHeartbeatAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if row.PodID != nil {
		podID = *row.PodID
	}

	err := row.Update().
		SetStatus(integrationrequest.StatusScheduled).
		SetScheduledAt(time.Now()).
		ClearPodID().
		ClearStartedAt().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue request: %w", err)
	}

	slog.Warn("Orphaned request returned to the queue",
		"integration_id", row.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans requeues requests claimed by this pod before a
// previous crash. Called once during startup, before the worker pool begins
// processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.IntegrationRequest.Query().
		Where(
			integrationrequest.StatusEQ(integrationrequest.StatusInProgress),
			integrationrequest.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, row := range orphans {
		if err := requeueOrphan(ctx, row); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"integration_id", row.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "integration_id", row.ID)
	}

	return nil
}
