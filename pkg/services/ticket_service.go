package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/ent/ticket"
	entuser "github.com/atlasfibra/backoffice/ent/user"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// TicketService manages the ticket lifecycle after creation: assignment,
// status transitions, urgency elevation, resolution, and the upstream sync.
type TicketService struct {
	client *ent.Client
	bus    *events.Bus
	hub    hubsoft.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewTicketService creates a new TicketService.
func NewTicketService(client *ent.Client, bus *events.Bus, hub hubsoft.Client) *TicketService {
	if client == nil {
		panic("NewTicketService: client must not be nil")
	}
	if bus == nil {
		panic("NewTicketService: bus must not be nil")
	}
	if hub == nil {
		panic("NewTicketService: hub must not be nil")
	}
	return &TicketService{
		client: client,
		bus:    bus,
		hub:    hub,
		logger: slog.With("component", "ticket_service"),
		now:    time.Now,
	}
}

// Get returns a ticket by id.
func (s *TicketService) Get(ctx context.Context, id string) (*models.Ticket, error) {
	row, err := s.client.Ticket.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewCodedError(CodeTicketNotFound, fmt.Sprintf("ticket %s not found", id))
		}
		return nil, fmt.Errorf("failed to load ticket %s: %w", id, err)
	}
	return TicketFromRow(row), nil
}

// ListByOwner returns the user's tickets, newest first. Terminal tickets are
// included only when includeTerminal is set.
func (s *TicketService) ListByOwner(ctx context.Context, ownerID models.UserID, includeTerminal bool) ([]*models.Ticket, error) {
	q := s.client.Ticket.Query().
		Where(ticket.OwnerID(int64(ownerID))).
		Order(ent.Desc(ticket.FieldCreatedAt))
	if !includeTerminal {
		q = q.Where(ticket.StatusNotIn(ticket.StatusClosed, ticket.StatusCancelled))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets for user %d: %w", ownerID, err)
	}
	out := make([]*models.Ticket, 0, len(rows))
	for _, row := range rows {
		out = append(out, TicketFromRow(row))
	}
	return out, nil
}

// Assign sets the assignee. The first assignment moves Pending to InProgress.
func (s *TicketService) Assign(ctx context.Context, id, assignee string) (*models.Ticket, error) {
	return s.mutate(ctx, id, func(t *models.Ticket, now time.Time) error {
		if err := t.Assign(assignee, now); err != nil {
			return NewCodedError(CodeInvalidTransition, err.Error())
		}
		return nil
	})
}

// ChangeStatus moves the ticket along an allowed status edge.
func (s *TicketService) ChangeStatus(ctx context.Context, id string, next models.TicketStatus) (*models.Ticket, error) {
	return s.mutate(ctx, id, func(t *models.Ticket, now time.Time) error {
		if !t.CanTransitionTo(next) {
			return NewCodedError(CodeInvalidTransition,
				fmt.Sprintf("cannot move ticket from %s to %s", t.Status, next))
		}
		if next == models.TicketStatusClosed && t.Resolution == "" {
			return NewCodedError(CodeResolutionMissing, "resolution notes required to close")
		}
		return t.ChangeStatus(next, now)
	})
}

// ElevateUrgency raises the ticket urgency. Lowering is rejected.
func (s *TicketService) ElevateUrgency(ctx context.Context, id string, next models.TicketUrgency) (*models.Ticket, error) {
	return s.mutate(ctx, id, func(t *models.Ticket, now time.Time) error {
		if err := t.ElevateUrgency(next, now); err != nil {
			return NewCodedError(CodeInvalidTransition, err.Error())
		}
		return nil
	})
}

// CloseWithResolution records resolution notes on a Resolved ticket and
// closes it.
func (s *TicketService) CloseWithResolution(ctx context.Context, id, resolution string) (*models.Ticket, error) {
	if resolution == "" {
		return nil, NewCodedError(CodeResolutionMissing, "resolution notes required to close")
	}
	return s.mutate(ctx, id, func(t *models.Ticket, now time.Time) error {
		if err := t.CloseWithResolution(resolution, now); err != nil {
			return NewCodedError(CodeInvalidTransition, err.Error())
		}
		return nil
	})
}

// Cancel aborts a non-terminal ticket.
func (s *TicketService) Cancel(ctx context.Context, id string) (*models.Ticket, error) {
	return s.ChangeStatus(ctx, id, models.TicketStatusCancelled)
}

// AddMessage appends to the ticket's bounded message history.
func (s *TicketService) AddMessage(ctx context.Context, id, author, text string) (*models.Ticket, error) {
	return s.mutate(ctx, id, func(t *models.Ticket, now time.Time) error {
		if err := t.AddMessage(models.TicketMessage{Author: author, Text: text, SentAt: now}); err != nil {
			return NewValidationError("text", err.Error())
		}
		return nil
	})
}

// SyncWithUpstream creates the ticket in the upstream ERP and stores the
// returned id and protocol atomically. Re-syncing an already synced ticket
// is a no-op. On upstream failure the ticket is flagged sync-failed and the
// error returned for the caller to retry.
func (s *TicketService) SyncWithUpstream(ctx context.Context, id string) (*models.Ticket, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UpstreamID != "" {
		return t, nil
	}

	payload := hubsoft.TicketPayload{
		Category:    t.Category,
		Description: t.Description,
		Urgency:     string(t.Urgency),
	}
	// The owner's service id identifies the client upstream; plaintext CPF
	// is never stored, so it cannot be sent here.
	ownerRow, err := s.client.User.Query().Where(entuser.IDEQ(int64(t.Owner.ID))).Only(ctx)
	if err == nil && ownerRow.Service != nil {
		payload.ServiceID = ownerRow.Service.ServiceID
	}

	now := s.now().UTC()
	ref, err := s.hub.CreateTicket(ctx, payload)
	if err != nil {
		t.MarkSyncFailed(now)
		if saveErr := s.save(ctx, t); saveErr != nil {
			return nil, saveErr
		}
		s.logger.Warn("Ticket sync failed", "ticket_id", t.ID, "error", err)
		return t, fmt.Errorf("upstream ticket creation failed: %w", err)
	}

	if err := t.MarkSynced(ref.UpstreamID, ref.Protocol, now); err != nil {
		return nil, err
	}
	if err := s.save(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("Ticket synced",
		"ticket_id", t.ID, "upstream_id", t.UpstreamID, "protocol", t.Protocol)
	s.bus.PublishMany(ctx, t.DrainEvents())
	return t, nil
}

// mutate loads, applies, saves, and publishes in one pass.
func (s *TicketService) mutate(ctx context.Context, id string, apply func(*models.Ticket, time.Time) error) (*models.Ticket, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if err := apply(t, now); err != nil {
		return t, err
	}
	if err := s.save(ctx, t); err != nil {
		return nil, err
	}
	s.bus.PublishMany(ctx, t.DrainEvents())
	return t, nil
}

// save writes the ticket's mutable columns.
func (s *TicketService) save(ctx context.Context, t *models.Ticket) error {
	update := s.client.Ticket.UpdateOneID(t.ID).
		SetStatus(ticket.Status(t.Status)).
		SetUrgency(ticket.Urgency(t.Urgency)).
		SetAssignee(t.Assignee).
		SetSyncStatus(ticket.SyncStatus(t.Sync)).
		SetProtocol(t.Protocol).
		SetAttachments(t.Attachments).
		SetMessages(t.Messages).
		SetUpdatedAt(t.UpdatedAt)
	if t.Resolution != "" {
		update.SetResolution(t.Resolution)
	}
	if t.UpstreamID != "" {
		update.SetUpstreamID(t.UpstreamID)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save ticket %s: %w", t.ID, err)
	}
	return nil
}

// FailedSyncIDs lists open tickets whose upstream sync failed, oldest first.
// The cleanup loop re-enqueues them.
func (s *TicketService) FailedSyncIDs(ctx context.Context) ([]string, error) {
	rows, err := s.client.Ticket.Query().
		Where(
			ticket.SyncStatusEQ(ticket.SyncStatusFailed),
			ticket.StatusNotIn(ticket.StatusClosed, ticket.StatusCancelled),
		).
		Order(ent.Asc(ticket.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list failed syncs: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// PurgeOld deletes closed and cancelled tickets untouched since the cutoff.
func (s *TicketService) PurgeOld(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.Ticket.Delete().
		Where(
			ticket.StatusIn(ticket.StatusClosed, ticket.StatusCancelled),
			ticket.UpdatedAtLT(before),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge tickets: %w", err)
	}
	return n, nil
}
