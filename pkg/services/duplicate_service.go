package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlasfibra/backoffice/ent"
	entuser "github.com/atlasfibra/backoffice/ent/user"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// Duplicate resolution actions.
const (
	ResolveActionMerge        = "merge"
	ResolveActionBlock        = "block"
	ResolveActionManualReview = "manual_review"
)

// ResolveDuplicateInput describes an admin decision on a duplicate CPF claim.
type ResolveDuplicateInput struct {
	// CPFHash identifies the contested CPF by its stored hash.
	CPFHash string
	// ClaimantUserID is the user whose verification hit the duplicate.
	ClaimantUserID models.UserID
	// PrimaryUserID is the user that keeps the CPF (merge only).
	PrimaryUserID models.UserID
	Action        string
}

// DuplicateService detects CPF collisions across users and applies admin
// resolutions. A CPF maps to at most one active user; collisions surface as
// events and block verification until resolved.
type DuplicateService struct {
	client *ent.Client
	bus    *events.Bus
	logger *slog.Logger
	now    func() time.Time
}

// NewDuplicateService creates a new DuplicateService.
func NewDuplicateService(client *ent.Client, bus *events.Bus) *DuplicateService {
	if client == nil {
		panic("NewDuplicateService: client must not be nil")
	}
	if bus == nil {
		panic("NewDuplicateService: bus must not be nil")
	}
	return &DuplicateService{
		client: client,
		bus:    bus,
		logger: slog.With("component", "duplicate_service"),
		now:    time.Now,
	}
}

// Holders returns the ids of users other than excluding that hold the CPF.
func (s *DuplicateService) Holders(ctx context.Context, cpfHash string, excluding models.UserID) ([]int64, error) {
	if cpfHash == "" {
		return nil, nil
	}
	rows, err := s.client.User.Query().
		Where(
			entuser.CpfHashEQ(cpfHash),
			entuser.IDNEQ(int64(excluding)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query CPF holders: %w", err)
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// RiskLevel grades a collision by how many other users hold the CPF.
func (s *DuplicateService) RiskLevel(holderCount int) string {
	switch {
	case holderCount <= 0:
		return "none"
	case holderCount == 1:
		return "low"
	case holderCount == 2:
		return "medium"
	}
	return "high"
}

// Resolve applies an admin decision to a duplicate CPF claim.
//
// merge reassigns the CPF to the primary user and deactivates every other
// holder, all-or-nothing. block suspends the claimant and leaves the
// existing mapping untouched. manual_review only escalates to the admin
// channel.
func (s *DuplicateService) Resolve(ctx context.Context, input ResolveDuplicateInput) error {
	if input.CPFHash == "" {
		return NewValidationError("cpf_hash", "required")
	}

	switch input.Action {
	case ResolveActionMerge:
		return s.merge(ctx, input)
	case ResolveActionBlock:
		return s.block(ctx, input)
	case ResolveActionManualReview:
		return s.escalate(ctx, input)
	}
	return NewValidationError("action", fmt.Sprintf("unknown action %q", input.Action))
}

// merge moves the CPF to the primary user and deactivates the other holders
// in one transaction.
func (s *DuplicateService) merge(ctx context.Context, input ResolveDuplicateInput) error {
	if input.PrimaryUserID == 0 {
		return NewValidationError("primary_user_id", "required for merge")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	holders, err := tx.User.Query().
		Where(entuser.CpfHashEQ(input.CPFHash)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load CPF holders: %w", err)
	}
	if len(holders) == 0 {
		return ErrNotFound
	}

	var masked string
	var duplicates []int64
	for _, holder := range holders {
		if holder.CpfMasked != nil {
			masked = *holder.CpfMasked
		}
		if holder.ID == int64(input.PrimaryUserID) {
			continue
		}
		duplicates = append(duplicates, holder.ID)
		// The CPF is detached so the partial unique index admits the primary.
		err := tx.User.UpdateOneID(holder.ID).
			ClearCpfHash().
			ClearCpfMasked().
			SetStatus(entuser.StatusInactive).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to detach CPF from user %d: %w", holder.ID, err)
		}
	}

	err = tx.User.UpdateOneID(int64(input.PrimaryUserID)).
		SetCpfHash(input.CPFHash).
		SetCpfMasked(masked).
		SetStatus(entuser.StatusActive).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to assign CPF to user %d: %w", input.PrimaryUserID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit merge: %w", err)
	}

	s.logger.Info("Duplicate CPF merged",
		"primary_user_id", input.PrimaryUserID, "deactivated", len(duplicates), "cpf", masked)
	s.bus.Publish(ctx, events.NewCPFRemapped(input.CPFHash, int64(input.PrimaryUserID), duplicates))
	return nil
}

// block suspends the claimant without touching the existing mapping.
func (s *DuplicateService) block(ctx context.Context, input ResolveDuplicateInput) error {
	if input.ClaimantUserID == 0 {
		return NewValidationError("claimant_user_id", "required for block")
	}
	err := s.client.User.UpdateOneID(int64(input.ClaimantUserID)).
		SetStatus(entuser.StatusSuspended).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to suspend user %d: %w", input.ClaimantUserID, err)
	}
	s.logger.Info("Duplicate CPF claimant blocked", "user_id", input.ClaimantUserID)
	s.bus.Publish(ctx, events.NewUserBanned(int64(input.ClaimantUserID), "duplicate CPF claim blocked"))
	return nil
}

// escalate asks the admin channel to look at the collision.
func (s *DuplicateService) escalate(ctx context.Context, input ResolveDuplicateInput) error {
	holders, err := s.Holders(ctx, input.CPFHash, input.ClaimantUserID)
	if err != nil {
		return err
	}
	body := fmt.Sprintf("CPF claimed by user %d is already held by %d other user(s); manual review requested",
		input.ClaimantUserID, len(holders))
	s.bus.Publish(ctx, events.NewAdminNotificationRequired("Duplicate CPF review", body))
	return nil
}
