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

// UserService manages user records and administrative actions on them.
type UserService struct {
	client *ent.Client
	bus    *events.Bus
	logger *slog.Logger
	now    func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client, bus *events.Bus) *UserService {
	if client == nil {
		panic("NewUserService: client must not be nil")
	}
	if bus == nil {
		panic("NewUserService: bus must not be nil")
	}
	return &UserService{
		client: client,
		bus:    bus,
		logger: slog.With("component", "user_service"),
		now:    time.Now,
	}
}

// Get returns a user by id, or ErrNotFound.
func (s *UserService) Get(ctx context.Context, id models.UserID) (*models.User, error) {
	row, err := s.client.User.Query().Where(entuser.IDEQ(int64(id))).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return UserFromRow(row), nil
}

// GetOrCreate returns the user, creating a pending-verification record on
// first contact. A changed username is refreshed on the way through.
func (s *UserService) GetOrCreate(ctx context.Context, id models.UserID, username string) (*models.User, error) {
	row, err := s.client.User.Query().Where(entuser.IDEQ(int64(id))).Only(ctx)
	if err == nil {
		if username != "" && row.Username != username {
			row, err = row.Update().SetUsername(username).Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to refresh username for user %d: %w", id, err)
			}
		}
		return UserFromRow(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}

	row, err = s.client.User.Create().
		SetID(int64(id)).
		SetUsername(username).
		SetStatus(entuser.StatusPendingVerification).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the row exists now.
			return s.Get(ctx, id)
		}
		return nil, fmt.Errorf("failed to create user %d: %w", id, err)
	}
	s.logger.Info("User created", "user_id", id, "username", username)
	return UserFromRow(row), nil
}

// Ban suspends a user. Only admins may ban, self-bans are rejected, and
// banning an already suspended user is reported as such.
func (s *UserService) Ban(ctx context.Context, adminID, targetID models.UserID, reason string) error {
	if adminID == targetID {
		return NewCodedError(CodeCannotBanSelf, "admins cannot ban themselves")
	}
	admin, err := s.Get(ctx, adminID)
	if err != nil {
		return err
	}
	if !admin.IsAdmin {
		return NewCodedError(CodeNotAdmin, fmt.Sprintf("user %d is not an admin", adminID))
	}

	target, err := s.Get(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Status == models.UserStatusSuspended {
		return NewCodedError(CodeUserAlreadyBanned, fmt.Sprintf("user %d is already banned", targetID))
	}
	if err := target.TransitionTo(models.UserStatusSuspended); err != nil {
		return NewCodedError(CodeInvalidTransition, err.Error())
	}

	if _, err := s.client.User.UpdateOneID(int64(targetID)).
		SetStatus(entuser.StatusSuspended).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to suspend user %d: %w", targetID, err)
	}

	s.logger.Info("User banned", "user_id", targetID, "admin_id", adminID, "reason", reason)
	s.bus.Publish(ctx, events.NewUserBanned(int64(targetID), reason))
	return nil
}

// Unban lifts a suspension and restores the user to active.
func (s *UserService) Unban(ctx context.Context, adminID, targetID models.UserID) error {
	admin, err := s.Get(ctx, adminID)
	if err != nil {
		return err
	}
	if !admin.IsAdmin {
		return NewCodedError(CodeNotAdmin, fmt.Sprintf("user %d is not an admin", adminID))
	}

	target, err := s.Get(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Status != models.UserStatusSuspended {
		return NewCodedError(CodeUserNotBanned, fmt.Sprintf("user %d is not banned", targetID))
	}

	if _, err := s.client.User.UpdateOneID(int64(targetID)).
		SetStatus(entuser.StatusActive).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to unban user %d: %w", targetID, err)
	}

	s.logger.Info("User unbanned", "user_id", targetID, "admin_id", adminID)
	s.bus.Publish(ctx, events.NewUserUnbanned(int64(targetID)))
	return nil
}

// SetAdmin grants or revokes the admin flag.
func (s *UserService) SetAdmin(ctx context.Context, id models.UserID, isAdmin bool) error {
	err := s.client.User.UpdateOneID(int64(id)).SetIsAdmin(isAdmin).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update admin flag for user %d: %w", id, err)
	}
	return nil
}
