package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/models"
	"github.com/atlasfibra/backoffice/pkg/ratelimit"
	"github.com/atlasfibra/backoffice/pkg/services"
)

// defaultDispatchTimeout bounds a single dispatch when the request carries
// no explicit timeout. Bulk syncs with batch delays need headroom.
const defaultDispatchTimeout = 2 * time.Minute

// Worker is a single scheduler worker that polls for and dispatches
// integration requests.
type Worker struct {
	id         string
	podID      string
	client     *ent.Client
	config     *config.SchedulerConfig
	dispatcher *Dispatcher
	breaker    *Breaker
	limiter    *ratelimit.Window
	bus        *events.Bus
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	now func() time.Time

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentRequestID  string
	requestsProcessed int
	lastActivity      time.Time
}

// NewWorker creates a new scheduler worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.SchedulerConfig, dispatcher *Dispatcher, breaker *Breaker, limiter *ratelimit.Window, bus *events.Bus) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		dispatcher:   dispatcher,
		breaker:      breaker,
		limiter:      limiter,
		bus:          bus,
		stopCh:       make(chan struct{}),
		now:          time.Now,
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentRequestID:  w.currentRequestID,
		RequestsProcessed: w.requestsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Scheduler worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoWorkAvailable) || errors.Is(err, ErrNoBudget) || errors.Is(err, ErrBreakerOpen) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing integration request", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess gates on the breaker and the rate budget, claims the next
// dispatchable request, and drives it to completion, retry, or failure.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Gate before claiming: a claimed row on a dead or exhausted upstream
	//    would only bounce back to the queue.
	if !w.breaker.Allow() {
		return ErrBreakerOpen
	}
	if !w.limiter.CanMakeRequest() {
		return ErrNoBudget
	}

	// 2. Claim the next request.
	row, err := w.claimNext(ctx)
	if err != nil {
		return err
	}
	r := services.IntegrationFromRow(row)

	log := slog.With("integration_id", r.ID, "integration_type", r.Type, "worker_id", w.id)
	log.Info("Integration request claimed", "priority", r.Priority.String(), "attempt", len(r.Attempts)+1)

	w.setStatus(WorkerStatusWorking, r.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Dispatch context with timeout.
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}
	dispatchCtx, cancelDispatch := context.WithTimeout(ctx, timeout)
	defer cancelDispatch()

	// 4. Heartbeat for orphan detection.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(ctx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, r.ID)

	// 5. Dispatch through the breaker.
	started := w.now().UTC()
	var response []byte
	err = w.breaker.Execute(func() error {
		var derr error
		response, derr = w.dispatcher.Dispatch(dispatchCtx, r)
		return derr
	})
	finished := w.now().UTC()
	cancelHeartbeat()

	// The breaker flipped open between the gate and the execute. The
	// dispatch never ran, so no attempt is consumed.
	if errors.Is(err, ErrBreakerOpen) {
		if rerr := w.requeueUnclaimed(context.Background(), r.ID); rerr != nil {
			log.Error("Failed to requeue request after breaker rejection", "error", rerr)
			return rerr
		}
		return ErrBreakerOpen
	}

	attempt := models.IntegrationAttempt{
		StartedAt:  started,
		FinishedAt: finished,
		Success:    err == nil,
	}
	if err != nil {
		attempt.Error = err.Error()
	}
	r.RecordAttempt(attempt)

	// 6. Terminal or retry update on a background context; the dispatch
	//    context may already be cancelled.
	if err == nil {
		return w.finishCompleted(context.Background(), r, response, log)
	}
	return w.finishFailed(context.Background(), r, err, log)
}

// claimNext atomically claims the highest-priority dispatchable request
// using FOR UPDATE SKIP LOCKED. FIFO within a priority.
func (w *Worker) claimNext(ctx context.Context) (*ent.IntegrationRequest, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.IntegrationRequest.Query().
		Where(
			integrationrequest.StatusIn(
				integrationrequest.StatusPending,
				integrationrequest.StatusScheduled,
			),
			integrationrequest.ScheduledAtLTE(w.now()),
		).
		Order(
			ent.Asc(integrationrequest.FieldPriority),
			ent.Asc(integrationrequest.FieldScheduledAt),
		).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWorkAvailable
		}
		return nil, fmt.Errorf("failed to query dispatchable request: %w", err)
	}

	now := w.now()
	row, err = row.Update().
		SetStatus(integrationrequest.StatusInProgress).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return row, nil
}

// finishCompleted stores the response and marks the request completed.
func (w *Worker) finishCompleted(ctx context.Context, r *models.IntegrationRequest, response []byte, log *slog.Logger) error {
	if err := r.MarkCompleted(response, w.now().UTC()); err != nil {
		return err
	}
	if err := w.persistOutcome(ctx, r); err != nil {
		log.Error("Failed to persist completed request", "error", err)
		return err
	}
	w.publish(ctx, r.DrainEvents(), log)

	w.mu.Lock()
	w.requestsProcessed++
	w.mu.Unlock()

	log.Info("Integration request completed", "attempts", len(r.Attempts))
	return nil
}

// finishFailed schedules a retry for transient failures with attempts left,
// and marks the request failed otherwise. A force-retried dispatch consumes
// the flag either way.
func (w *Worker) finishFailed(ctx context.Context, r *models.IntegrationRequest, dispatchErr error, log *slog.Logger) error {
	now := w.now().UTC()
	retryable := hubsoft.IsRetryable(dispatchErr) ||
		errors.Is(dispatchErr, context.DeadlineExceeded)

	r.ForceRetry = false

	if retryable && r.CanRetry() {
		delay := models.RetryBackoff(len(r.Attempts))
		if hint, ok := hubsoft.RetryAfterHint(dispatchErr); ok {
			delay = hint
		}
		if err := r.ScheduleRetry(dispatchErr.Error(), delay, now); err != nil {
			return err
		}
		if err := w.persistOutcome(ctx, r); err != nil {
			log.Error("Failed to persist retry schedule", "error", err)
			return err
		}
		log.Warn("Integration request scheduled for retry",
			"attempts", len(r.Attempts),
			"max_retries", r.MaxRetries,
			"retry_in", delay)
		return nil
	}

	if err := r.MarkFailed(dispatchErr.Error(), now); err != nil {
		return err
	}
	if err := w.persistOutcome(ctx, r); err != nil {
		log.Error("Failed to persist failed request", "error", err)
		return err
	}

	evts := r.DrainEvents()
	evts = append(evts, events.NewTechNotificationRequired(
		"Integration request failed",
		fmt.Sprintf("request %s (%s) exhausted after %d attempts: %s",
			r.ID, r.Type, len(r.Attempts), r.LastError),
		"error",
	))
	w.publish(ctx, evts, log)

	w.mu.Lock()
	w.requestsProcessed++
	w.mu.Unlock()

	log.Error("Integration request failed", "attempts", len(r.Attempts), "error", dispatchErr)
	return nil
}

// persistOutcome writes the request's post-dispatch state and releases the
// claim.
func (w *Worker) persistOutcome(ctx context.Context, r *models.IntegrationRequest) error {
	update := w.client.IntegrationRequest.UpdateOneID(r.ID).
		SetStatus(integrationrequest.Status(r.Status)).
		SetAttempts(r.Attempts).
		SetForceRetry(r.ForceRetry).
		SetScheduledAt(r.ScheduledAt).
		ClearPodID().
		ClearLastHeartbeatAt()
	if len(r.Response) > 0 {
		update = update.SetResponse(r.Response)
	}
	if r.LastError != "" {
		update = update.SetLastError(r.LastError)
	}
	if r.CompletedAt != nil {
		update = update.SetCompletedAt(*r.CompletedAt)
	}
	return update.Exec(ctx)
}

// requeueUnclaimed returns a claimed-but-never-dispatched request to the
// queue, delayed until the next breaker probe.
func (w *Worker) requeueUnclaimed(ctx context.Context, id string) error {
	return w.client.IntegrationRequest.UpdateOneID(id).
		SetStatus(integrationrequest.StatusScheduled).
		SetScheduledAt(w.now().Add(w.config.BreakerProbeInterval)).
		ClearPodID().
		ClearStartedAt().
		ClearLastHeartbeatAt().
		Exec(ctx)
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, requestID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.IntegrationRequest.UpdateOneID(requestID).
				SetLastHeartbeatAt(w.now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "integration_id", requestID, "error", err)
			}
		}
	}
}

// publish fans the drained events out; handler errors are logged, never
// propagated.
func (w *Worker) publish(ctx context.Context, evts []events.DomainEvent, log *slog.Logger) {
	if w.bus == nil || len(evts) == 0 {
		return
	}
	for _, herr := range w.bus.PublishMany(ctx, evts) {
		log.Warn("Event handler failed", "error", herr)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, requestID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRequestID = requestID
	w.lastActivity = w.now()
}
