package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// MaxBulkTickets bounds a single bulk_sync request.
const MaxBulkTickets = 100

// EnqueueInput describes a new integration request.
type EnqueueInput struct {
	Type        string `validate:"required"`
	Priority    string `validate:"omitempty,oneof=critical high normal low"`
	Payload     json.RawMessage
	Metadata    map[string]string
	MaxRetries  int `validate:"omitempty,min=1,max=10"`
	Timeout     time.Duration
	ScheduledAt time.Time
}

// IntegrationService owns the integration queue's write side: validated
// enqueue, cancellation, priority changes, and force retry. Dispatching is
// the scheduler's job.
type IntegrationService struct {
	client   *ent.Client
	bus      *events.Bus
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewIntegrationService creates a new IntegrationService.
func NewIntegrationService(client *ent.Client, bus *events.Bus) *IntegrationService {
	if client == nil {
		panic("NewIntegrationService: client must not be nil")
	}
	if bus == nil {
		panic("NewIntegrationService: bus must not be nil")
	}
	return &IntegrationService{
		client:   client,
		bus:      bus,
		validate: validator.New(),
		logger:   slog.With("component", "integration_service"),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// Enqueue validates the input and stores a pending integration request.
func (s *IntegrationService) Enqueue(ctx context.Context, in EnqueueInput) (*models.IntegrationRequest, error) {
	if err := s.validate.Struct(in); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			if in.Priority != "" {
				if _, perr := models.ParseIntegrationPriority(in.Priority); perr != nil {
					return nil, NewCodedError(CodeInvalidPriority, perr.Error())
				}
			}
			return nil, NewValidationError("input", err.Error())
		}
		return nil, err
	}

	itype, err := models.ParseIntegrationType(in.Type)
	if err != nil {
		return nil, NewCodedError(CodeInvalidSyncType, err.Error())
	}

	priority := models.IntegrationPriorityNormal
	if in.Priority != "" {
		priority, err = models.ParseIntegrationPriority(in.Priority)
		if err != nil {
			return nil, NewCodedError(CodeInvalidPriority, err.Error())
		}
	}

	if err := validatePayload(itype, in.Payload); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	r := models.NewIntegrationRequest(s.newID(), itype, priority, in.Payload, now, in.ScheduledAt)
	if in.MaxRetries > 0 {
		r.MaxRetries = in.MaxRetries
	}
	if in.Timeout > 0 {
		r.Timeout = in.Timeout
	}
	r.Metadata = in.Metadata

	builder := s.client.IntegrationRequest.Create().
		SetID(r.ID).
		SetIntegrationType(integrationrequest.IntegrationType(r.Type)).
		SetPriority(int(r.Priority)).
		SetStatus(integrationrequest.Status(r.Status)).
		SetMaxRetries(r.MaxRetries).
		SetScheduledAt(r.ScheduledAt).
		SetCreatedAt(r.CreatedAt)
	if len(r.Payload) > 0 {
		builder.SetPayload(r.Payload)
	}
	if r.Metadata != nil {
		builder.SetMetadata(r.Metadata)
	}
	if r.Timeout > 0 {
		builder.SetTimeoutSeconds(int(r.Timeout / time.Second))
	}
	if _, err := builder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to enqueue integration: %w", err)
	}

	s.logger.Info("Integration queued",
		"integration_id", r.ID, "type", r.Type, "priority", r.Priority.String())
	return r, nil
}

// Get returns an integration request by id.
func (s *IntegrationService) Get(ctx context.Context, id string) (*models.IntegrationRequest, error) {
	row, err := s.client.IntegrationRequest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewCodedError(CodeIntegrationNotFound, fmt.Sprintf("integration %s not found", id))
		}
		return nil, fmt.Errorf("failed to load integration %s: %w", id, err)
	}
	return IntegrationFromRow(row), nil
}

// Cancel removes a queued request. In-progress and terminal requests cannot
// be cancelled.
func (s *IntegrationService) Cancel(ctx context.Context, id string) (*models.IntegrationRequest, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status == models.IntegrationStatusInProgress {
		return r, NewCodedError(CodeCannotCancelRunning, "request is being dispatched")
	}
	now := s.now().UTC()
	if err := r.Cancel(now); err != nil {
		return r, NewCodedError(CodeCannotCancelTerminal, err.Error())
	}

	err = s.client.IntegrationRequest.UpdateOneID(r.ID).
		SetStatus(integrationrequest.Status(r.Status)).
		SetNillableCompletedAt(r.CompletedAt).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel integration %s: %w", id, err)
	}
	s.logger.Info("Integration cancelled", "integration_id", id)
	return r, nil
}

// UpdatePriority changes a queued request's priority. Only pending and
// scheduled requests can move.
func (s *IntegrationService) UpdatePriority(ctx context.Context, id, priority string) (*models.IntegrationRequest, error) {
	p, err := models.ParseIntegrationPriority(priority)
	if err != nil {
		return nil, NewCodedError(CodeInvalidPriority, err.Error())
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != models.IntegrationStatusPending && r.Status != models.IntegrationStatusScheduled {
		return r, NewCodedError(CodeInvalidTransition,
			fmt.Sprintf("cannot reprioritize a %s request", r.Status))
	}

	err = s.client.IntegrationRequest.UpdateOneID(id).
		SetPriority(int(p)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update priority for integration %s: %w", id, err)
	}
	r.Priority = p
	return r, nil
}

// ForceRetry re-queues a failed request for immediate dispatch, bypassing
// the retry cap.
func (s *IntegrationService) ForceRetry(ctx context.Context, id string) (*models.IntegrationRequest, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != models.IntegrationStatusFailed {
		return r, NewCodedError(CodeRetriesNotExhausted,
			fmt.Sprintf("force retry applies to failed requests, status is %s", r.Status))
	}

	now := s.now().UTC()
	err = s.client.IntegrationRequest.UpdateOneID(id).
		SetStatus(integrationrequest.StatusScheduled).
		SetForceRetry(true).
		SetScheduledAt(now).
		ClearCompletedAt().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to force retry integration %s: %w", id, err)
	}

	r.Status = models.IntegrationStatusScheduled
	r.ForceRetry = true
	r.ScheduledAt = now
	r.CompletedAt = nil
	s.logger.Info("Integration force-retried", "integration_id", id, "attempts", len(r.Attempts))
	return r, nil
}

// CountByStatus returns queue depth per status for health reporting.
func (s *IntegrationService) CountByStatus(ctx context.Context, status models.IntegrationStatus) (int, error) {
	n, err := s.client.IntegrationRequest.Query().
		Where(integrationrequest.StatusEQ(integrationrequest.Status(status))).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s integrations: %w", status, err)
	}
	return n, nil
}

// validatePayload applies the per-type payload rules.
func validatePayload(itype models.IntegrationType, payload json.RawMessage) error {
	switch itype {
	case models.IntegrationTypeTicketSync:
		var p models.TicketSyncPayload
		if err := json.Unmarshal(payload, &p); err != nil || p.TicketID == "" {
			return NewValidationError("payload", "ticket_sync requires ticket_id")
		}
	case models.IntegrationTypeUserVerification:
		var p models.UserVerificationPayload
		if err := json.Unmarshal(payload, &p); err != nil || p.UserID == 0 || p.CPF == "" {
			return NewValidationError("payload", "user_verification requires user_id and cpf")
		}
	case models.IntegrationTypeClientDataFetch:
		var p models.ClientDataFetchPayload
		if err := json.Unmarshal(payload, &p); err != nil || p.CPF == "" {
			return NewValidationError("payload", "client_data_fetch requires cpf")
		}
	case models.IntegrationTypeBulkSync:
		var p models.BulkSyncPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return NewValidationError("payload", "bulk_sync payload is malformed")
		}
		if len(p.TicketIDs) == 0 {
			return NewCodedError(CodeEmptyTicketList, "bulk_sync requires at least one ticket id")
		}
		if len(p.TicketIDs) > MaxBulkTickets {
			return NewCodedError(CodeBulkLimitExceeded,
				fmt.Sprintf("bulk_sync is limited to %d tickets, got %d", MaxBulkTickets, len(p.TicketIDs)))
		}
	case models.IntegrationTypeStatusUpdate:
		var p models.StatusUpdatePayload
		if err := json.Unmarshal(payload, &p); err != nil || p.UpstreamID == "" {
			return NewCodedError(CodeMissingHubsoftID, "status_update requires upstream_id")
		}
	}
	return nil
}

// PurgeOld deletes terminal integration requests that finished before the
// cutoff.
func (s *IntegrationService) PurgeOld(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.IntegrationRequest.Delete().
		Where(
			integrationrequest.StatusIn(
				integrationrequest.StatusCompleted,
				integrationrequest.StatusFailed,
				integrationrequest.StatusCancelled,
			),
			integrationrequest.CompletedAtNotNil(),
			integrationrequest.CompletedAtLT(before),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge integration requests: %w", err)
	}
	return n, nil
}
