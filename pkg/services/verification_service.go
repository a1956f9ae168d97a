package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atlasfibra/backoffice/ent"
	entuser "github.com/atlasfibra/backoffice/ent/user"
	"github.com/atlasfibra/backoffice/ent/verificationattempt"
	"github.com/atlasfibra/backoffice/ent/verificationrequest"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/cpf"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// VerificationService drives the CPF verification state machine: per-request
// attempt caps, per-user daily caps, duplicate detection, upstream lookup,
// and expiry. Events are published only after the aggregate is persisted.
type VerificationService struct {
	client *ent.Client
	bus    *events.Bus
	hub    hubsoft.Client
	users  *UserService
	dupes  *DuplicateService
	cfg    *config.VerificationConfig
	salt   string
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewVerificationService creates a new VerificationService. The salt feeds
// the stored CPF hash; it must stay stable across deployments or every
// duplicate check breaks.
func NewVerificationService(client *ent.Client, bus *events.Bus, hub hubsoft.Client, users *UserService, dupes *DuplicateService, cfg *config.VerificationConfig, salt string) *VerificationService {
	if client == nil {
		panic("NewVerificationService: client must not be nil")
	}
	if bus == nil {
		panic("NewVerificationService: bus must not be nil")
	}
	if hub == nil {
		panic("NewVerificationService: hub must not be nil")
	}
	if users == nil {
		panic("NewVerificationService: users must not be nil")
	}
	if dupes == nil {
		panic("NewVerificationService: dupes must not be nil")
	}
	if cfg == nil {
		cfg = config.DefaultVerificationConfig()
	}
	return &VerificationService{
		client: client,
		bus:    bus,
		hub:    hub,
		users:  users,
		dupes:  dupes,
		cfg:    cfg,
		salt:   salt,
		logger: slog.With("component", "verification_service"),
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// StartVerification opens a verification request for the user. At most one
// live request per user; a stale live request is lazily expired first.
func (s *VerificationService) StartVerification(ctx context.Context, userID models.UserID, username string, vtype models.VerificationType, sourceAction string) (*models.VerificationRequest, error) {
	if _, err := s.users.GetOrCreate(ctx, userID, username); err != nil {
		return nil, err
	}
	now := s.now().UTC()

	if active, err := s.loadActive(ctx, userID); err == nil {
		if !active.IsExpired(now) {
			return nil, NewCodedError(CodeVerificationAlreadyPending,
				fmt.Sprintf("verification %s is still pending", active.ID))
		}
		if err := s.expireOne(ctx, active, now); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if err := s.checkDailyCap(ctx, userID); err != nil {
		return nil, err
	}

	expiry := time.Duration(s.cfg.ExpiryHours) * time.Hour
	v := models.NewVerificationRequest(s.newID(), userID, username, vtype, sourceAction, now, expiry)

	_, err := s.client.VerificationRequest.Create().
		SetID(v.ID).
		SetUserID(int64(v.UserID)).
		SetUsername(v.Username).
		SetVerificationType(verificationrequest.VerificationType(v.Type)).
		SetSourceAction(v.SourceAction).
		SetStatus(verificationrequest.Status(v.Status)).
		SetCreatedAt(v.CreatedAt).
		SetExpiresAt(v.ExpiresAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a start race against another live request.
			return nil, NewCodedError(CodeVerificationAlreadyPending, "a verification is already pending")
		}
		return nil, fmt.Errorf("failed to create verification: %w", err)
	}

	s.logger.Info("Verification started",
		"verification_id", v.ID, "user_id", userID, "type", vtype)
	s.bus.PublishMany(ctx, v.DrainEvents())
	return v, nil
}

// SubmitCPF runs one CPF submission through the pipeline: format check,
// duplicate check, upstream lookup. Rejections that consume an attempt are
// persisted before the coded error is returned, so the returned aggregate
// (when non-nil) always reflects stored state. Transient upstream failures
// do not consume an attempt.
func (s *VerificationService) SubmitCPF(ctx context.Context, userID models.UserID, raw string) (*models.VerificationRequest, error) {
	v, err := s.loadActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewCodedError(CodeNoPendingVerification, "no verification in progress")
		}
		return nil, err
	}
	now := s.now().UTC()

	if v.IsExpired(now) {
		if err := s.expireOne(ctx, v, now); err != nil {
			return nil, err
		}
		return v, NewCodedError(CodeCannotAttempt, "verification expired")
	}
	if !v.CanAttempt(now) {
		return v, NewCodedError(CodeCannotAttempt, "no attempts left")
	}

	if err := s.checkDailyCap(ctx, userID); err != nil {
		return v, err
	}

	parsed, err := cpf.Parse(raw)
	if err != nil {
		if err := s.recordFailure(ctx, v, "", "", models.AttemptReasonInvalidFormat, now); err != nil {
			return nil, err
		}
		return v, NewCodedError(CodeInvalidCPFFormat, "CPF failed format or checksum validation")
	}
	masked := parsed.Masked()
	hash := parsed.Hash(s.salt)

	holders, err := s.dupes.Holders(ctx, hash, userID)
	if err != nil {
		return nil, err
	}
	if len(holders) > 0 {
		v.RecordEvent(events.NewCPFDuplicateDetected(
			v.ID, int64(userID), masked, hash, holders, s.dupes.RiskLevel(len(holders))))
		if err := s.recordFailure(ctx, v, parsed.Canonical(), masked, models.AttemptReasonDuplicateConflict, now); err != nil {
			return nil, err
		}
		return v, NewCodedError(CodeCPFDuplicate, "CPF is already linked to another user")
	}

	return s.completeAgainstUpstream(ctx, v, parsed, now)
}

// completeAgainstUpstream runs the upstream lookup and, on an active client,
// drives the aggregate through CompleteSuccess and persists it. Not-found
// consumes an attempt; transient upstream failures do not.
func (s *VerificationService) completeAgainstUpstream(ctx context.Context, v *models.VerificationRequest, parsed cpf.CPF, now time.Time) (*models.VerificationRequest, error) {
	masked := parsed.Masked()
	hash := parsed.Hash(s.salt)

	rec, err := s.hub.VerifyClientByCPF(ctx, parsed.Canonical(), false)
	if err != nil {
		if errors.Is(err, hubsoft.ErrClientNotFound) {
			if err := s.recordFailure(ctx, v, "", masked, models.AttemptReasonNotFoundUpstream, now); err != nil {
				return nil, err
			}
			return v, NewCodedError(CodeCPFNotFound, "no active client found for this CPF")
		}
		// Transient upstream failure: the attempt is not consumed.
		s.logger.Warn("Upstream lookup failed",
			"verification_id", v.ID, "user_id", v.UserID, "error", err)
		return v, upstreamError(err)
	}

	snapshot := models.UpstreamClientSnapshot{
		ClientName:    rec.Name,
		ServiceName:   rec.ServiceName,
		ServiceStatus: rec.ServiceStatus,
		ServiceID:     rec.ServiceID,
	}
	if err := v.CompleteSuccess(masked, hash, snapshot, now); err != nil {
		return nil, err
	}
	if err := s.persistSuccess(ctx, v, now); err != nil {
		return nil, err
	}

	s.logger.Info("Verification completed",
		"verification_id", v.ID, "user_id", v.UserID, "cpf", masked)
	evts := v.DrainEvents()
	evts = append(evts, events.NewUserRegistered(int64(v.UserID), v.Username))
	s.bus.PublishMany(ctx, evts)
	return v, nil
}

// CompleteAfterResolution re-drives a verification that was blocked by a
// duplicate conflict through the submission success path, once an admin has
// resolved the conflict in the claimant's favor. The contested digits come
// from the conflict attempt on record.
func (s *VerificationService) CompleteAfterResolution(ctx context.Context, verificationID string) (*models.VerificationRequest, error) {
	v, err := s.loadByID(ctx, verificationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewCodedError(CodeNoPendingVerification, "verification not found")
		}
		return nil, err
	}
	if v.Status.IsTerminal() {
		return v, NewCodedError(CodeNoPendingVerification,
			fmt.Sprintf("verification is already %s", v.Status))
	}
	now := s.now().UTC()
	if v.IsExpired(now) {
		if err := s.expireOne(ctx, v, now); err != nil {
			return nil, err
		}
		return v, NewCodedError(CodeCannotAttempt, "verification expired")
	}
	contested := v.ContestedCPF()
	if contested == "" {
		return v, NewCodedError(CodeNoPendingVerification, "no duplicate conflict on record")
	}
	parsed, err := cpf.Parse(contested)
	if err != nil {
		return v, NewCodedError(CodeInvalidCPFFormat, "stored conflict CPF failed validation")
	}
	return s.completeAgainstUpstream(ctx, v, parsed, now)
}

// checkDailyCap rejects with rate_limited once the rolling 24 h window is
// full, carrying the earliest moment the user may retry.
func (s *VerificationService) checkDailyCap(ctx context.Context, userID models.UserID) error {
	used, err := s.AttemptsInWindow(ctx, userID)
	if err != nil {
		return err
	}
	if used < s.cfg.DailyAttemptCap {
		return nil
	}
	data := map[string]any{}
	if oldest, err := s.oldestAttemptInWindow(ctx, userID); err == nil && !oldest.IsZero() {
		data["retry_after"] = oldest.Add(24 * time.Hour)
	}
	return NewCodedErrorWithData(CodeRateLimited,
		fmt.Sprintf("daily attempt cap (%d) reached", s.cfg.DailyAttemptCap), data)
}

// upstreamError maps an upstream client error onto a stable coded error,
// preserving the client's classification where it has one.
func upstreamError(err error) error {
	var apiErr *hubsoft.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case CodeUpstreamRateLimited:
			data := map[string]any{}
			if apiErr.RetryAfter > 0 {
				data["retry_after_seconds"] = int(apiErr.RetryAfter.Seconds())
			}
			return NewCodedErrorWithData(CodeUpstreamRateLimited, "upstream rate limit hit", data)
		case CodeUpstreamNotFound:
			return NewCodedError(CodeUpstreamNotFound, "upstream resource not found")
		case CodeUpstreamConflict:
			return NewCodedError(CodeUpstreamConflict, "upstream rejected the request as conflicting")
		}
	}
	return NewCodedError(CodeUpstreamUnavailable, "upstream lookup failed, try again later")
}

// CancelVerification cancels the user's live verification.
func (s *VerificationService) CancelVerification(ctx context.Context, userID models.UserID, reason string) (*models.VerificationRequest, error) {
	v, err := s.loadLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewCodedError(CodeNoPendingVerification, "no verification found")
		}
		return nil, err
	}
	if v.Status.IsTerminal() {
		return v, NewCodedError(CodeCannotCancelTerminal,
			fmt.Sprintf("verification is already %s", v.Status))
	}
	now := s.now().UTC()
	if err := v.Cancel(reason, now); err != nil {
		return v, NewCodedError(CodeCannotCancelTerminal, err.Error())
	}
	if err := s.updateStatus(ctx, v); err != nil {
		return nil, err
	}
	s.logger.Info("Verification cancelled",
		"verification_id", v.ID, "user_id", userID, "reason", reason)
	s.bus.PublishMany(ctx, v.DrainEvents())
	return v, nil
}

// GetActive returns the user's live verification, or ErrNotFound.
func (s *VerificationService) GetActive(ctx context.Context, userID models.UserID) (*models.VerificationRequest, error) {
	return s.loadActive(ctx, userID)
}

// AttemptsInWindow counts the user's submissions in the rolling 24 h window,
// across verification requests.
func (s *VerificationService) AttemptsInWindow(ctx context.Context, userID models.UserID) (int, error) {
	cutoff := s.now().UTC().Add(-24 * time.Hour)
	n, err := s.client.VerificationAttempt.Query().
		Where(
			verificationattempt.UserID(int64(userID)),
			verificationattempt.AttemptedAtGT(cutoff),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count attempts for user %d: %w", userID, err)
	}
	return n, nil
}

// ExpireSweep expires every live verification past its deadline. Items are
// processed independently; one failure does not stop the sweep. Per-item
// failures come back as messages so callers can report them alongside the
// processed count.
func (s *VerificationService) ExpireSweep(ctx context.Context) (int, []string, error) {
	now := s.now().UTC()
	rows, err := s.client.VerificationRequest.Query().
		Where(
			verificationrequest.StatusIn(
				verificationrequest.StatusPending,
				verificationrequest.StatusInProgress,
			),
			verificationrequest.ExpiresAtLT(now),
		).
		All(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to query expired verifications: %w", err)
	}

	processed := 0
	failures := []string{}
	for _, row := range rows {
		v := VerificationFromRow(row, nil)
		if err := s.expireOne(ctx, v, now); err != nil {
			failures = append(failures, fmt.Sprintf("verification %s: %v", v.ID, err))
			continue
		}
		processed++
	}
	if processed > 0 || len(failures) > 0 {
		s.logger.Info("Verification expiry sweep", "expired", processed, "failed", len(failures))
	}
	return processed, failures, nil
}

// loadActive loads the user's pending/in-progress request with its attempts.
func (s *VerificationService) loadActive(ctx context.Context, userID models.UserID) (*models.VerificationRequest, error) {
	row, err := s.client.VerificationRequest.Query().
		Where(
			verificationrequest.UserID(int64(userID)),
			verificationrequest.StatusIn(
				verificationrequest.StatusPending,
				verificationrequest.StatusInProgress,
			),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load active verification for user %d: %w", userID, err)
	}
	return s.withAttempts(ctx, row)
}

// loadByID loads a request by id with its attempts.
func (s *VerificationService) loadByID(ctx context.Context, id string) (*models.VerificationRequest, error) {
	row, err := s.client.VerificationRequest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load verification %s: %w", id, err)
	}
	return s.withAttempts(ctx, row)
}

// oldestAttemptInWindow returns the attempted_at of the user's oldest
// in-window submission, or the zero time when the window is empty.
func (s *VerificationService) oldestAttemptInWindow(ctx context.Context, userID models.UserID) (time.Time, error) {
	cutoff := s.now().UTC().Add(-24 * time.Hour)
	row, err := s.client.VerificationAttempt.Query().
		Where(
			verificationattempt.UserID(int64(userID)),
			verificationattempt.AttemptedAtGT(cutoff),
		).
		Order(ent.Asc(verificationattempt.FieldAttemptedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to load oldest attempt for user %d: %w", userID, err)
	}
	return row.AttemptedAt, nil
}

// loadLatest loads the user's most recent request regardless of status.
func (s *VerificationService) loadLatest(ctx context.Context, userID models.UserID) (*models.VerificationRequest, error) {
	row, err := s.client.VerificationRequest.Query().
		Where(verificationrequest.UserID(int64(userID))).
		Order(ent.Desc(verificationrequest.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load latest verification for user %d: %w", userID, err)
	}
	return s.withAttempts(ctx, row)
}

func (s *VerificationService) withAttempts(ctx context.Context, row *ent.VerificationRequest) (*models.VerificationRequest, error) {
	attempts, err := s.client.VerificationAttempt.Query().
		Where(verificationattempt.VerificationID(row.ID)).
		Order(ent.Asc(verificationattempt.FieldAttemptNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts for verification %s: %w", row.ID, err)
	}
	return VerificationFromRow(row, attempts), nil
}

// recordFailure applies a failed attempt to the aggregate, persists the
// status change plus the attempt row in one transaction, and publishes.
func (s *VerificationService) recordFailure(ctx context.Context, v *models.VerificationRequest, provided, masked, reason string, now time.Time) error {
	if err := v.AddFailedAttempt(provided, masked, reason, now); err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.saveStatusTx(ctx, tx, v); err != nil {
		return err
	}
	if err := s.saveAttemptTx(ctx, tx, v, now); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit attempt: %w", err)
	}

	s.bus.PublishMany(ctx, v.DrainEvents())
	return nil
}

// persistSuccess stores the completed verification, its successful attempt
// row, and the activated user in one transaction.
func (s *VerificationService) persistSuccess(ctx context.Context, v *models.VerificationRequest, now time.Time) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.saveStatusTx(ctx, tx, v); err != nil {
		return err
	}
	if err := s.saveAttemptTx(ctx, tx, v, now); err != nil {
		return err
	}

	userUpdate := tx.User.UpdateOneID(int64(v.UserID)).
		SetCpfHash(v.VerifiedCPFHash).
		SetCpfMasked(v.VerifiedCPFMasked).
		SetStatus(entuser.StatusActive)
	if v.Client != nil {
		userUpdate.
			SetClientName(v.Client.ClientName).
			SetService(&models.ServiceDescriptor{
				Name:      v.Client.ServiceName,
				Status:    v.Client.ServiceStatus,
				ServiceID: v.Client.ServiceID,
			})
	}
	if err := userUpdate.Exec(ctx); err != nil {
		return fmt.Errorf("failed to activate user %d: %w", v.UserID, err)
	}

	// Retained conflict digits are dead weight once the request is terminal.
	_, err = tx.VerificationAttempt.Update().
		Where(verificationattempt.VerificationID(v.ID)).
		ClearCpfProvided().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear retained digits for verification %s: %w", v.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit verification success: %w", err)
	}
	return nil
}

// saveStatusTx writes the aggregate's mutable columns inside tx.
func (s *VerificationService) saveStatusTx(ctx context.Context, tx *ent.Tx, v *models.VerificationRequest) error {
	update := tx.VerificationRequest.UpdateOneID(v.ID).
		SetStatus(verificationrequest.Status(v.Status)).
		SetNillableCompletedAt(v.CompletedAt)
	if v.VerifiedCPFHash != "" {
		update.
			SetVerifiedCpfHash(v.VerifiedCPFHash).
			SetVerifiedCpfMasked(v.VerifiedCPFMasked)
	}
	if v.Client != nil {
		update.SetClientSnapshot(v.Client)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update verification %s: %w", v.ID, err)
	}
	return nil
}

// saveAttemptTx inserts the aggregate's newest attempt as a row.
func (s *VerificationService) saveAttemptTx(ctx context.Context, tx *ent.Tx, v *models.VerificationRequest, now time.Time) error {
	last := v.Attempts[len(v.Attempts)-1]
	_, err := tx.VerificationAttempt.Create().
		SetVerificationID(v.ID).
		SetUserID(int64(v.UserID)).
		SetAttemptNumber(len(v.Attempts)).
		SetCpfMasked(last.CPFMasked).
		SetCpfProvided(last.CPFProvided).
		SetSuccess(last.Success).
		SetFailureReason(last.FailureReason).
		SetAttemptedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record attempt for verification %s: %w", v.ID, err)
	}
	return nil
}

// updateStatus writes the aggregate's mutable columns outside a transaction.
func (s *VerificationService) updateStatus(ctx context.Context, v *models.VerificationRequest) error {
	err := s.client.VerificationRequest.UpdateOneID(v.ID).
		SetStatus(verificationrequest.Status(v.Status)).
		SetNillableCompletedAt(v.CompletedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update verification %s: %w", v.ID, err)
	}
	if v.Status.IsTerminal() {
		_, err = s.client.VerificationAttempt.Update().
			Where(verificationattempt.VerificationID(v.ID)).
			ClearCpfProvided().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear retained digits for verification %s: %w", v.ID, err)
		}
	}
	return nil
}

// expireOne expires a single request and publishes the expiry event.
func (s *VerificationService) expireOne(ctx context.Context, v *models.VerificationRequest, now time.Time) error {
	if err := v.Expire(now); err != nil {
		return err
	}
	if err := s.updateStatus(ctx, v); err != nil {
		return err
	}
	s.bus.PublishMany(ctx, v.DrainEvents())
	return nil
}

// PurgeOld deletes terminal verification requests created before the cutoff
// and attempt rows older than it. Attempt rows only feed the rolling 24 h
// cap, so anything past the cutoff is dead weight.
func (s *VerificationService) PurgeOld(ctx context.Context, before time.Time) (int, error) {
	attempts, err := s.client.VerificationAttempt.Delete().
		Where(verificationattempt.AttemptedAtLT(before)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge verification attempts: %w", err)
	}

	requests, err := s.client.VerificationRequest.Delete().
		Where(
			verificationrequest.StatusIn(
				verificationrequest.StatusCompleted,
				verificationrequest.StatusFailed,
				verificationrequest.StatusExpired,
				verificationrequest.StatusCancelled,
			),
			verificationrequest.CreatedAtLT(before),
		).
		Exec(ctx)
	if err != nil {
		return attempts, fmt.Errorf("failed to purge verification requests: %w", err)
	}
	return attempts + requests, nil
}
