package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/atlasfibra/backoffice/pkg/events"
)

// IntegrationType classifies the unit of upstream work a request performs.
type IntegrationType string

const (
	IntegrationTypeTicketSync       IntegrationType = "ticket_sync"
	IntegrationTypeUserVerification IntegrationType = "user_verification"
	IntegrationTypeClientDataFetch  IntegrationType = "client_data_fetch"
	IntegrationTypeBulkSync         IntegrationType = "bulk_sync"
	IntegrationTypeStatusUpdate     IntegrationType = "status_update"
)

// ParseIntegrationType validates a raw integration type string.
func ParseIntegrationType(raw string) (IntegrationType, error) {
	switch IntegrationType(raw) {
	case IntegrationTypeTicketSync, IntegrationTypeUserVerification,
		IntegrationTypeClientDataFetch, IntegrationTypeBulkSync,
		IntegrationTypeStatusUpdate:
		return IntegrationType(raw), nil
	}
	return "", fmt.Errorf("unknown integration type %q", raw)
}

// IntegrationPriority orders queue dispatch. Lower value = dispatched first;
// FIFO within a priority.
type IntegrationPriority int

const (
	IntegrationPriorityCritical IntegrationPriority = 0
	IntegrationPriorityHigh     IntegrationPriority = 1
	IntegrationPriorityNormal   IntegrationPriority = 2
	IntegrationPriorityLow      IntegrationPriority = 3
)

// ParseIntegrationPriority validates a raw priority string.
func ParseIntegrationPriority(raw string) (IntegrationPriority, error) {
	switch raw {
	case "critical":
		return IntegrationPriorityCritical, nil
	case "high":
		return IntegrationPriorityHigh, nil
	case "normal":
		return IntegrationPriorityNormal, nil
	case "low":
		return IntegrationPriorityLow, nil
	}
	return 0, fmt.Errorf("unknown integration priority %q", raw)
}

func (p IntegrationPriority) String() string {
	switch p {
	case IntegrationPriorityCritical:
		return "critical"
	case IntegrationPriorityHigh:
		return "high"
	case IntegrationPriorityNormal:
		return "normal"
	case IntegrationPriorityLow:
		return "low"
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// IntegrationStatus is the lifecycle state of an integration request.
type IntegrationStatus string

const (
	IntegrationStatusPending    IntegrationStatus = "pending"
	IntegrationStatusScheduled  IntegrationStatus = "scheduled"
	IntegrationStatusInProgress IntegrationStatus = "in_progress"
	IntegrationStatusCompleted  IntegrationStatus = "completed"
	IntegrationStatusFailed     IntegrationStatus = "failed"
	IntegrationStatusCancelled  IntegrationStatus = "cancelled"
)

// IsTerminal reports whether the request can never be dispatched again.
func (s IntegrationStatus) IsTerminal() bool {
	return s == IntegrationStatusCompleted || s == IntegrationStatusCancelled
}

// DefaultIntegrationMaxRetries bounds dispatch attempts unless force-retry
// is applied.
const DefaultIntegrationMaxRetries = 3

// RetryBackoff returns the delay before the next dispatch attempt:
// min(2^attempts, 60) seconds.
func RetryBackoff(attempts int) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	if attempts > 5 {
		return 60 * time.Second
	}
	d := time.Duration(1<<uint(attempts)) * time.Second
	if d > 60*time.Second {
		return 60 * time.Second
	}
	return d
}

// IntegrationAttempt records one dispatch try.
type IntegrationAttempt struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
}

// Typed payloads, one per IntegrationType.

type TicketSyncPayload struct {
	TicketID string `json:"ticket_id"`
}

type UserVerificationPayload struct {
	UserID int64  `json:"user_id"`
	CPF    string `json:"cpf"`
}

type ClientDataFetchPayload struct {
	CPF              string `json:"cpf"`
	IncludeContracts bool   `json:"include_contracts,omitempty"`
}

type BulkSyncPayload struct {
	TicketIDs  []string      `json:"ticket_ids"`
	BatchSize  int           `json:"batch_size,omitempty"`
	BatchDelay time.Duration `json:"batch_delay,omitempty"`
}

type StatusUpdatePayload struct {
	TicketID   string `json:"ticket_id"`
	UpstreamID string `json:"upstream_id"`
	Status     string `json:"status"`
}

// IntegrationRequest is a queued unit of upstream work: the aggregate the
// scheduler drives to a terminal state under the rate budget.
type IntegrationRequest struct {
	ID          string
	Type        IntegrationType
	Priority    IntegrationPriority
	Status      IntegrationStatus
	Payload     json.RawMessage
	Metadata    map[string]string
	MaxRetries  int
	ForceRetry  bool
	Timeout     time.Duration
	ScheduledAt time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	Response    json.RawMessage
	LastError   string
	Attempts    []IntegrationAttempt
	CreatedAt   time.Time

	pending []events.DomainEvent
}

// NewIntegrationRequest creates a Pending request scheduled at scheduledAt
// (use now for immediate dispatch).
func NewIntegrationRequest(id string, itype IntegrationType, priority IntegrationPriority, payload json.RawMessage, now, scheduledAt time.Time) *IntegrationRequest {
	if scheduledAt.IsZero() {
		scheduledAt = now
	}
	return &IntegrationRequest{
		ID:          id,
		Type:        itype,
		Priority:    priority,
		Status:      IntegrationStatusPending,
		Payload:     payload,
		MaxRetries:  DefaultIntegrationMaxRetries,
		ScheduledAt: scheduledAt,
		CreatedAt:   now,
	}
}

// CanRetry reports whether another dispatch is permitted after a failure.
func (r *IntegrationRequest) CanRetry() bool {
	if r.Status.IsTerminal() {
		return false
	}
	return len(r.Attempts) < r.MaxRetries || r.ForceRetry
}

// RecordAttempt appends a dispatch attempt.
func (r *IntegrationRequest) RecordAttempt(a IntegrationAttempt) {
	r.Attempts = append(r.Attempts, a)
}

// MarkCompleted stores the upstream response and finishes the request.
func (r *IntegrationRequest) MarkCompleted(response json.RawMessage, now time.Time) error {
	if r.Status.IsTerminal() {
		return fmt.Errorf("integration %s: already terminal (%s)", r.ID, r.Status)
	}
	r.Status = IntegrationStatusCompleted
	r.Response = response
	completed := now
	r.CompletedAt = &completed
	r.record(events.NewIntegrationCompleted(r.ID, string(r.Type), len(r.Attempts)))
	return nil
}

// MarkFailed finishes the request after retries are exhausted.
func (r *IntegrationRequest) MarkFailed(errMsg string, now time.Time) error {
	if r.Status.IsTerminal() {
		return fmt.Errorf("integration %s: already terminal (%s)", r.ID, r.Status)
	}
	r.Status = IntegrationStatusFailed
	r.LastError = errMsg
	completed := now
	r.CompletedAt = &completed
	r.record(events.NewIntegrationFailed(r.ID, string(r.Type), errMsg, len(r.Attempts)))
	return nil
}

// ScheduleRetry re-queues a failed dispatch after the given delay.
func (r *IntegrationRequest) ScheduleRetry(errMsg string, delay time.Duration, now time.Time) error {
	if r.Status.IsTerminal() {
		return fmt.Errorf("integration %s: already terminal (%s)", r.ID, r.Status)
	}
	if !r.CanRetry() {
		return fmt.Errorf("integration %s: retries exhausted", r.ID)
	}
	r.Status = IntegrationStatusScheduled
	r.LastError = errMsg
	r.ScheduledAt = now.Add(delay)
	return nil
}

// Cancel removes the request from the queue for good.
func (r *IntegrationRequest) Cancel(now time.Time) error {
	if r.Status.IsTerminal() {
		return fmt.Errorf("integration %s: already terminal (%s)", r.ID, r.Status)
	}
	if r.Status == IntegrationStatusInProgress {
		return fmt.Errorf("integration %s: cannot cancel while in progress", r.ID)
	}
	r.Status = IntegrationStatusCancelled
	completed := now
	r.CompletedAt = &completed
	return nil
}

func (r *IntegrationRequest) record(e events.DomainEvent) {
	r.pending = append(r.pending, e)
}

// PendingEvents returns the collected events without draining them.
func (r *IntegrationRequest) PendingEvents() []events.DomainEvent {
	return r.pending
}

// DrainEvents returns and clears the pending events after a successful save.
func (r *IntegrationRequest) DrainEvents() []events.DomainEvent {
	out := r.pending
	r.pending = nil
	return out
}
