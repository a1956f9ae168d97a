// Package scheduler drives queued integration requests to a terminal state.
// Workers claim rows with FOR UPDATE SKIP LOCKED ordered by priority then
// scheduled_at, dispatch them upstream under the shared rate budget and the
// circuit breaker, and retry transient failures with exponential backoff.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/atlasfibra/backoffice/pkg/models"
)

// Sentinel errors for scheduler operations.
var (
	// ErrNoWorkAvailable indicates no dispatchable request is in the queue.
	ErrNoWorkAvailable = errors.New("no work available")

	// ErrNoBudget indicates the rolling rate window is exhausted.
	ErrNoBudget = errors.New("rate budget exhausted")

	// ErrBreakerOpen indicates the upstream circuit breaker is open.
	ErrBreakerOpen = errors.New("circuit breaker open")
)

// TicketSyncer pushes a locally created ticket into the upstream ERP.
// Implemented by services.TicketService.
type TicketSyncer interface {
	SyncWithUpstream(ctx context.Context, ticketID string) (*models.Ticket, error)
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	InProgress       int            `json:"in_progress"`
	QueueDepth       int            `json:"queue_depth"`
	BreakerState     string         `json:"breaker_state"`
	RateBudgetUsed   int            `json:"rate_budget_used"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	CurrentRequestID  string    `json:"current_request_id,omitempty"`
	RequestsProcessed int       `json:"requests_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
