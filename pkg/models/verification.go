package models

import (
	"fmt"
	"time"

	"github.com/atlasfibra/backoffice/pkg/events"
)

// VerificationStatus is the lifecycle state of a verification request.
type VerificationStatus string

const (
	VerificationStatusPending    VerificationStatus = "pending"
	VerificationStatusInProgress VerificationStatus = "in_progress"
	VerificationStatusCompleted  VerificationStatus = "completed"
	VerificationStatusFailed     VerificationStatus = "failed"
	VerificationStatusExpired    VerificationStatus = "expired"
	VerificationStatusCancelled  VerificationStatus = "cancelled"
)

// IsTerminal reports whether the status permits no further mutation.
func (s VerificationStatus) IsTerminal() bool {
	switch s {
	case VerificationStatusCompleted, VerificationStatusFailed,
		VerificationStatusExpired, VerificationStatusCancelled:
		return true
	}
	return false
}

// VerificationType classifies why a verification was started.
type VerificationType string

const (
	VerificationTypeAutoCheckup    VerificationType = "auto_checkup"
	VerificationTypeSupportRequest VerificationType = "support_request"
	VerificationTypeManualReview   VerificationType = "manual_review"
	VerificationTypeSecurityCheck  VerificationType = "security_check"
)

// ParseVerificationType validates a raw verification type string.
func ParseVerificationType(raw string) (VerificationType, error) {
	switch VerificationType(raw) {
	case VerificationTypeAutoCheckup, VerificationTypeSupportRequest,
		VerificationTypeManualReview, VerificationTypeSecurityCheck:
		return VerificationType(raw), nil
	}
	return "", fmt.Errorf("unknown verification type %q", raw)
}

// MaxVerificationAttempts is the hard attempt cap per verification.
const MaxVerificationAttempts = 3

// DefaultVerificationExpiry is how long a verification stays actionable.
const DefaultVerificationExpiry = 24 * time.Hour

// Attempt failure reason tags.
const (
	AttemptReasonInvalidFormat     = "invalid_cpf_format"
	AttemptReasonDuplicateConflict = "cpf_duplicate_conflict"
	AttemptReasonNotFoundUpstream  = "cpf_not_found_in_hubsoft"
)

// FailReasonTooManyAttempts is the terminal failure reason at the attempt cap.
const FailReasonTooManyAttempts = "too many attempts"

// VerificationAttempt is one CPF submission, append-only. Only the masked
// form leaves the aggregate; CPFProvided retains the submitted digits for
// duplicate resolution and is excluded from every serialized form.
type VerificationAttempt struct {
	AttemptedAt   time.Time `json:"attempted_at"`
	CPFMasked     string    `json:"cpf_masked"`
	CPFProvided   string    `json:"-"`
	Success       bool      `json:"success"`
	FailureReason string    `json:"failure_reason,omitempty"`
}

// UpstreamClientSnapshot is what the engine keeps from a successful upstream
// lookup.
type UpstreamClientSnapshot struct {
	ClientName    string `json:"client_name"`
	ServiceName   string `json:"service_name,omitempty"`
	ServiceStatus string `json:"service_status,omitempty"`
	ServiceID     string `json:"service_id,omitempty"`
}

// VerificationRequest is the CPF-verification aggregate root.
type VerificationRequest struct {
	ID           string
	UserID       UserID
	Username     string
	Type         VerificationType
	SourceAction string
	Status       VerificationStatus
	CreatedAt    time.Time
	ExpiresAt    time.Time
	CompletedAt  *time.Time
	Attempts     []VerificationAttempt
	VerifiedCPFHash   string
	VerifiedCPFMasked string
	Client            *UpstreamClientSnapshot

	pending []events.DomainEvent
}

// NewVerificationRequest creates a Pending verification and records the
// started event.
func NewVerificationRequest(id string, userID UserID, username string, vtype VerificationType, sourceAction string, now time.Time, expiry time.Duration) *VerificationRequest {
	if expiry <= 0 {
		expiry = DefaultVerificationExpiry
	}
	v := &VerificationRequest{
		ID:           id,
		UserID:       userID,
		Username:     username,
		Type:         vtype,
		SourceAction: sourceAction,
		Status:       VerificationStatusPending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(expiry),
	}
	v.record(events.NewVerificationStarted(id, int64(userID), username, string(vtype), sourceAction))
	return v
}

// IsExpired reports whether the deadline has passed for a non-terminal request.
func (v *VerificationRequest) IsExpired(now time.Time) bool {
	return !v.Status.IsTerminal() && now.After(v.ExpiresAt)
}

// CanAttempt reports whether another CPF submission is allowed.
func (v *VerificationRequest) CanAttempt(now time.Time) bool {
	if v.Status != VerificationStatusPending && v.Status != VerificationStatusInProgress {
		return false
	}
	if v.IsExpired(now) {
		return false
	}
	return len(v.Attempts) < MaxVerificationAttempts
}

// AttemptsLeft returns how many submissions remain before the cap.
func (v *VerificationRequest) AttemptsLeft() int {
	left := MaxVerificationAttempts - len(v.Attempts)
	if left < 0 {
		return 0
	}
	return left
}

// AddFailedAttempt appends a failed attempt with the given reason tag. When
// the cap is reached the aggregate transitions to Failed. cpfProvided is
// kept only for duplicate-conflict attempts, so a later resolution can
// re-drive the lookup; pass "" on every other path.
func (v *VerificationRequest) AddFailedAttempt(cpfProvided, cpfMasked, reason string, now time.Time) error {
	if reason != AttemptReasonDuplicateConflict {
		cpfProvided = ""
	}
	if err := v.appendAttempt(VerificationAttempt{
		AttemptedAt:   now,
		CPFMasked:     cpfMasked,
		CPFProvided:   cpfProvided,
		Success:       false,
		FailureReason: reason,
	}); err != nil {
		return err
	}
	v.record(events.NewVerificationAttemptMade(v.ID, int64(v.UserID), len(v.Attempts), false, reason, cpfMasked))

	if len(v.Attempts) >= MaxVerificationAttempts {
		v.Status = VerificationStatusFailed
		completed := now
		v.CompletedAt = &completed
		v.record(events.NewVerificationFailed(v.ID, int64(v.UserID), FailReasonTooManyAttempts, len(v.Attempts)))
	}
	return nil
}

// CompleteSuccess appends the successful attempt and transitions to
// Completed with the verified CPF and upstream snapshot. It refuses to
// complete without a successful attempt or without the verified CPF —
// the post-success invariants are enforced, not assumed.
func (v *VerificationRequest) CompleteSuccess(cpfMasked, cpfHash string, client UpstreamClientSnapshot, now time.Time) error {
	if err := v.appendAttempt(VerificationAttempt{
		AttemptedAt: now,
		CPFMasked:   cpfMasked,
		Success:     true,
	}); err != nil {
		return err
	}
	if cpfHash == "" {
		return fmt.Errorf("verification %s: cannot complete without verified CPF", v.ID)
	}

	v.Status = VerificationStatusCompleted
	completed := now
	v.CompletedAt = &completed
	v.VerifiedCPFHash = cpfHash
	v.VerifiedCPFMasked = cpfMasked
	v.Client = &client

	v.record(events.NewVerificationAttemptMade(v.ID, int64(v.UserID), len(v.Attempts), true, "", cpfMasked))
	v.record(events.NewVerificationCompleted(v.ID, int64(v.UserID), cpfMasked, client.ClientName, client.ServiceName))
	return nil
}

// Cancel transitions Pending/InProgress to Cancelled.
func (v *VerificationRequest) Cancel(reason string, now time.Time) error {
	if v.Status.IsTerminal() {
		return fmt.Errorf("verification %s: cannot cancel terminal status %s", v.ID, v.Status)
	}
	v.Status = VerificationStatusCancelled
	completed := now
	v.CompletedAt = &completed
	v.record(events.NewVerificationCancelled(v.ID, int64(v.UserID), reason))
	return nil
}

// Expire transitions Pending/InProgress to Expired.
func (v *VerificationRequest) Expire(now time.Time) error {
	if v.Status.IsTerminal() {
		return fmt.Errorf("verification %s: cannot expire terminal status %s", v.ID, v.Status)
	}
	v.Status = VerificationStatusExpired
	completed := now
	v.CompletedAt = &completed
	v.record(events.NewVerificationExpired(v.ID, int64(v.UserID)))
	return nil
}

// appendAttempt enforces the terminal-state and attempt-cap invariants.
func (v *VerificationRequest) appendAttempt(a VerificationAttempt) error {
	if v.Status.IsTerminal() {
		return fmt.Errorf("verification %s: no attempts allowed in terminal status %s", v.ID, v.Status)
	}
	if len(v.Attempts) >= MaxVerificationAttempts {
		return fmt.Errorf("verification %s: attempt cap reached", v.ID)
	}
	v.Attempts = append(v.Attempts, a)
	return nil
}

// ContestedCPF returns the digits of the most recent submission rejected for
// a duplicate conflict, or "" when none is on record.
func (v *VerificationRequest) ContestedCPF() string {
	for i := len(v.Attempts) - 1; i >= 0; i-- {
		a := v.Attempts[i]
		if a.FailureReason == AttemptReasonDuplicateConflict && a.CPFProvided != "" {
			return a.CPFProvided
		}
	}
	return ""
}

// record appends to the pending-event list.
func (v *VerificationRequest) record(e events.DomainEvent) {
	v.pending = append(v.pending, e)
}

// RecordEvent lets the owning service attach an event (e.g. duplicate
// detection) to this aggregate's pending list.
func (v *VerificationRequest) RecordEvent(e events.DomainEvent) {
	v.record(e)
}

// PendingEvents returns the collected events without draining them.
func (v *VerificationRequest) PendingEvents() []events.DomainEvent {
	return v.pending
}

// DrainEvents returns and clears the pending events. Called after a
// successful save, in append order.
func (v *VerificationRequest) DrainEvents() []events.DomainEvent {
	out := v.pending
	v.pending = nil
	return out
}
