package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/ent/supportconversation"
	"github.com/atlasfibra/backoffice/ent/ticket"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// ConversationService drives the multi-step support form. Each step op loads
// the user's active conversation, advances the state machine, persists, and
// publishes. Completion produces a ticket and queues its upstream sync.
type ConversationService struct {
	client       *ent.Client
	bus          *events.Bus
	integrations *IntegrationService
	cfg          *config.ConversationConfig
	logger       *slog.Logger
	now          func() time.Time
	newID        func() string
}

// NewConversationService creates a new ConversationService.
func NewConversationService(client *ent.Client, bus *events.Bus, integrations *IntegrationService, cfg *config.ConversationConfig) *ConversationService {
	if client == nil {
		panic("NewConversationService: client must not be nil")
	}
	if bus == nil {
		panic("NewConversationService: bus must not be nil")
	}
	if integrations == nil {
		panic("NewConversationService: integrations must not be nil")
	}
	if cfg == nil {
		cfg = config.DefaultConversationConfig()
	}
	return &ConversationService{
		client:       client,
		bus:          bus,
		integrations: integrations,
		cfg:          cfg,
		logger:       slog.With("component", "conversation_service"),
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
	}
}

// Start opens a support conversation for a verified user. One active
// conversation per user.
func (s *ConversationService) Start(ctx context.Context, userID models.UserID) (*models.SupportConversation, error) {
	userRow, err := s.client.User.Get(ctx, int64(userID))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewCodedError(CodeUserNotVerified, "user must verify before opening a ticket")
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	user := UserFromRow(userRow)
	if user.Status != models.UserStatusActive {
		return nil, NewCodedError(CodeUserNotVerified,
			fmt.Sprintf("user status is %s, verification required", user.Status))
	}

	if _, err := s.loadActive(ctx, userID); err == nil {
		return nil, NewCodedError(CodeConversationAlreadyActive, "a support conversation is already in progress")
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	c := models.NewSupportConversation(s.newID(), user.Snapshot(), now)

	_, err = s.client.SupportConversation.Create().
		SetID(c.ID).
		SetUserID(int64(userID)).
		SetUsername(user.Username).
		SetState(supportconversation.State(c.State)).
		SetCurrentStep(c.CurrentStep).
		SetIsActive(true).
		SetStartedAt(now).
		SetLastActiveAt(now).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewCodedError(CodeConversationAlreadyActive, "a support conversation is already in progress")
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	s.logger.Info("Conversation started", "conversation_id", c.ID, "user_id", userID)
	s.bus.PublishMany(ctx, c.DrainEvents())
	return c, nil
}

// SelectCategory answers the category step.
func (s *ConversationService) SelectCategory(ctx context.Context, userID models.UserID, category string) (*models.SupportConversation, error) {
	return s.step(ctx, userID, models.ConversationStateCategorySelection,
		func(c *models.SupportConversation, now time.Time) error {
			return c.SelectCategory(category, now)
		})
}

// SelectGame answers the game step.
func (s *ConversationService) SelectGame(ctx context.Context, userID models.UserID, game string) (*models.SupportConversation, error) {
	return s.step(ctx, userID, models.ConversationStateGameSelection,
		func(c *models.SupportConversation, now time.Time) error {
			return c.SelectGame(game, now)
		})
}

// SelectTiming answers the problem-timing step.
func (s *ConversationService) SelectTiming(ctx context.Context, userID models.UserID, timing string) (*models.SupportConversation, error) {
	return s.step(ctx, userID, models.ConversationStateTimingSelection,
		func(c *models.SupportConversation, now time.Time) error {
			return c.SelectTiming(timing, now)
		})
}

// SetDescription answers the free-text description step.
func (s *ConversationService) SetDescription(ctx context.Context, userID models.UserID, description string) (*models.SupportConversation, error) {
	if len(strings.TrimSpace(description)) < models.MinDescriptionLength {
		return nil, NewCodedError(CodeDescriptionTooShort,
			fmt.Sprintf("description must have at least %d characters", models.MinDescriptionLength))
	}
	return s.step(ctx, userID, models.ConversationStateDescriptionInput,
		func(c *models.SupportConversation, now time.Time) error {
			return c.SetDescription(description, now)
		})
}

// AddAttachment stores an attachment during the optional attachments step.
func (s *ConversationService) AddAttachment(ctx context.Context, userID models.UserID, fileID, fileName string) (*models.SupportConversation, error) {
	c, err := s.loadActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewCodedError(CodeConversationNotFound, "no support conversation in progress")
		}
		return nil, err
	}
	if c.State != models.ConversationStateAttachmentsOptional {
		return c, NewCodedError(CodeConversationStepMismatch,
			fmt.Sprintf("attachments are not accepted at step %s", c.State))
	}
	if len(c.Form.Attachments) >= s.cfg.MaxAttachments {
		return c, NewCodedError(CodeAttachmentLimitReached,
			fmt.Sprintf("attachment limit (%d) reached", s.cfg.MaxAttachments))
	}
	now := s.now().UTC()
	if err := c.AddAttachment(models.TicketAttachment{FileID: fileID, FileName: fileName, AddedAt: now}, now); err != nil {
		return c, NewCodedError(CodeAttachmentLimitReached, err.Error())
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	s.bus.PublishMany(ctx, c.DrainEvents())
	return c, nil
}

// SkipAttachments moves past the optional attachments step.
func (s *ConversationService) SkipAttachments(ctx context.Context, userID models.UserID) (*models.SupportConversation, error) {
	return s.step(ctx, userID, models.ConversationStateAttachmentsOptional,
		func(c *models.SupportConversation, now time.Time) error {
			return c.SkipAttachments(now)
		})
}

// ConfirmAndCreateTicket completes the conversation: the ticket and the
// conversation update are committed together, then the upstream sync is
// queued and the collected events published.
func (s *ConversationService) ConfirmAndCreateTicket(ctx context.Context, userID models.UserID) (*models.Ticket, error) {
	c, err := s.loadActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewCodedError(CodeConversationNotFound, "no support conversation in progress")
		}
		return nil, err
	}
	if c.State != models.ConversationStateConfirmation {
		return nil, NewCodedError(CodeConversationStepMismatch,
			fmt.Sprintf("confirmation is not available at step %s", c.State))
	}

	userRow, err := s.client.User.Get(ctx, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	owner := UserFromRow(userRow).Snapshot()

	now := s.now().UTC()
	urgency := models.DeriveUrgency(c.Form.Category, c.Form.Timing)
	t := models.NewTicket(s.newID(), owner, c.Form.Category, c.Form.Game, c.Form.Timing, c.Form.Description, urgency, now)
	for _, a := range c.Form.Attachments {
		if err := t.AddAttachment(a); err != nil {
			return nil, err
		}
	}
	if err := c.Complete(t.ID, now); err != nil {
		return nil, NewCodedError(CodeConversationStepMismatch, err.Error())
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Ticket.Create().
		SetID(t.ID).
		SetOwnerID(int64(owner.ID)).
		SetOwnerUsername(owner.Username).
		SetOwnerCpfMasked(owner.CPFMasked).
		SetCategory(t.Category).
		SetGame(t.Game).
		SetProblemTiming(t.ProblemTiming).
		SetDescription(t.Description).
		SetUrgency(ticket.Urgency(t.Urgency)).
		SetStatus(ticket.Status(t.Status)).
		SetProtocol(t.Protocol).
		SetSyncStatus(ticket.SyncStatus(t.Sync)).
		SetAttachments(t.Attachments).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	err = tx.SupportConversation.UpdateOneID(c.ID).
		SetState(supportconversation.State(c.State)).
		SetIsActive(false).
		SetTicketID(t.ID).
		SetFormData(&c.Form).
		SetLastActiveAt(now).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete conversation %s: %w", c.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ticket creation: %w", err)
	}

	s.logger.Info("Ticket created from conversation",
		"conversation_id", c.ID, "ticket_id", t.ID, "protocol", t.Protocol, "urgency", t.Urgency)

	payload, _ := json.Marshal(models.TicketSyncPayload{TicketID: t.ID})
	if _, err := s.integrations.Enqueue(ctx, EnqueueInput{
		Type:     string(models.IntegrationTypeTicketSync),
		Priority: models.IntegrationPriorityHigh.String(),
		Payload:  payload,
	}); err != nil {
		// The ticket exists either way; the failed-sync sweep will pick it up.
		s.logger.Warn("Failed to queue ticket sync", "ticket_id", t.ID, "error", err)
	}

	evts := append(c.DrainEvents(), t.DrainEvents()...)
	s.bus.PublishMany(ctx, evts)
	return t, nil
}

// Cancel aborts the user's active conversation.
func (s *ConversationService) Cancel(ctx context.Context, userID models.UserID, reason string) (*models.SupportConversation, error) {
	c, err := s.loadActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewCodedError(CodeConversationNotFound, "no support conversation in progress")
		}
		return nil, err
	}
	now := s.now().UTC()
	if err := c.Cancel(reason, now); err != nil {
		return c, NewCodedError(CodeConversationStepMismatch, err.Error())
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("Conversation cancelled", "conversation_id", c.ID, "user_id", userID, "reason", reason)
	s.bus.PublishMany(ctx, c.DrainEvents())
	return c, nil
}

// GetActive returns the user's active conversation, or ErrNotFound.
func (s *ConversationService) GetActive(ctx context.Context, userID models.UserID) (*models.SupportConversation, error) {
	return s.loadActive(ctx, userID)
}

// TimeoutSweep cancels every active conversation idle past the configured
// window. Items are processed independently.
func (s *ConversationService) TimeoutSweep(ctx context.Context) (int, error) {
	now := s.now().UTC()
	cutoff := now.Add(-s.cfg.IdleTimeout)
	rows, err := s.client.SupportConversation.Query().
		Where(
			supportconversation.IsActive(true),
			supportconversation.LastActiveAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query idle conversations: %w", err)
	}

	var processed int
	var errs []error
	for _, row := range rows {
		c := ConversationFromRow(row)
		if err := c.Cancel("timeout", now); err != nil {
			errs = append(errs, fmt.Errorf("conversation %s: %w", c.ID, err))
			continue
		}
		if err := s.save(ctx, c); err != nil {
			errs = append(errs, fmt.Errorf("conversation %s: %w", c.ID, err))
			continue
		}
		s.bus.PublishMany(ctx, c.DrainEvents())
		processed++
	}
	if processed > 0 {
		s.logger.Info("Conversation timeout sweep", "cancelled", processed, "failed", len(errs))
	}
	return processed, errors.Join(errs...)
}

// step runs one linear-form step: load, verify position, mutate, save, publish.
func (s *ConversationService) step(ctx context.Context, userID models.UserID, want models.ConversationState, apply func(*models.SupportConversation, time.Time) error) (*models.SupportConversation, error) {
	c, err := s.loadActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewCodedError(CodeConversationNotFound, "no support conversation in progress")
		}
		return nil, err
	}
	if c.State != want {
		return c, NewCodedError(CodeConversationStepMismatch,
			fmt.Sprintf("at step %s, operation requires %s", c.State, want))
	}
	now := s.now().UTC()
	if err := apply(c, now); err != nil {
		return c, NewCodedError(CodeConversationStepMismatch, err.Error())
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	s.bus.PublishMany(ctx, c.DrainEvents())
	return c, nil
}

// loadActive loads the user's active conversation.
func (s *ConversationService) loadActive(ctx context.Context, userID models.UserID) (*models.SupportConversation, error) {
	row, err := s.client.SupportConversation.Query().
		Where(
			supportconversation.UserID(int64(userID)),
			supportconversation.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load conversation for user %d: %w", userID, err)
	}
	return ConversationFromRow(row), nil
}

// save writes the conversation's mutable columns.
func (s *ConversationService) save(ctx context.Context, c *models.SupportConversation) error {
	err := s.client.SupportConversation.UpdateOneID(c.ID).
		SetState(supportconversation.State(c.State)).
		SetCurrentStep(c.CurrentStep).
		SetFormData(&c.Form).
		SetIsActive(c.IsActive).
		SetTicketID(c.TicketID).
		SetLastActiveAt(c.LastActiveAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save conversation %s: %w", c.ID, err)
	}
	return nil
}

// PurgeOld deletes closed conversations whose last activity predates the
// cutoff. Active conversations are never purged; the timeout sweep closes
// them first.
func (s *ConversationService) PurgeOld(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.SupportConversation.Delete().
		Where(
			supportconversation.IsActive(false),
			supportconversation.LastActiveAtLT(before),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge conversations: %w", err)
	}
	return n, nil
}
