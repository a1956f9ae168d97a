package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/ratelimit"
)

// WorkerPool manages the scheduler workers plus the shared breaker probe and
// orphan detection background tasks.
type WorkerPool struct {
	podID      string
	client     *ent.Client
	config     *config.SchedulerConfig
	dispatcher *Dispatcher
	breaker    *Breaker
	limiter    *ratelimit.Window
	bus        *events.Bus
	workers    []*Worker
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	started    bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.SchedulerConfig, dispatcher *Dispatcher, breaker *Breaker, limiter *ratelimit.Window, bus *events.Bus) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		client:     client,
		config:     cfg,
		dispatcher: dispatcher,
		breaker:    breaker,
		limiter:    limiter,
		bus:        bus,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
	}
}

// Start spawns worker goroutines, the breaker probe, and the orphan
// detection background task. It is safe to call multiple times; subsequent
// calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting scheduler worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.dispatcher, p.breaker, p.limiter, p.bus)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(2)
	go func() {
		defer p.wg.Done()
		p.breaker.RunProbe(ctx, p.stopCh)
	}()
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Scheduler worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current dispatches, bounded by the graceful shutdown timeout.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping scheduler worker pool gracefully")

	done := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.Stop()
		}
		p.stopOnce.Do(func() { close(p.stopCh) })
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Scheduler worker pool stopped gracefully")
	case <-time.After(p.config.GracefulShutdownTimeout):
		slog.Warn("Scheduler shutdown timed out; in-flight dispatches will be recovered as orphans",
			"timeout", p.config.GracefulShutdownTimeout)
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.IntegrationRequest.Query().
		Where(
			integrationrequest.StatusIn(
				integrationrequest.StatusPending,
				integrationrequest.StatusScheduled,
			),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	inProgress, errA := p.client.IntegrationRequest.Query().
		Where(
			integrationrequest.StatusEQ(integrationrequest.StatusInProgress),
			integrationrequest.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query in-progress requests for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("in-progress query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		InProgress:       inProgress,
		QueueDepth:       queueDepth,
		BreakerState:     p.breaker.State(),
		RateBudgetUsed:   p.limiter.Used(),
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}
