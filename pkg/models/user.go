// Package models holds the domain model: aggregate roots, their state
// machines, and the pending-event lists collected during mutations.
// Services persist aggregates and publish the drained events afterwards.
package models

import (
	"fmt"
	"time"
)

// UserID is the opaque numeric identity of a chat user.
type UserID int64

// UserStatus is the lifecycle state of a user.
type UserStatus string

const (
	UserStatusPendingVerification UserStatus = "pending_verification"
	UserStatusActive              UserStatus = "active"
	UserStatusInactive            UserStatus = "inactive"
	UserStatusSuspended           UserStatus = "suspended"
)

// userTransitions is the allowed status edge set:
// Pending→Active, Active↔Inactive, any→Suspended, Suspended→Active (unban).
var userTransitions = map[UserStatus][]UserStatus{
	UserStatusPendingVerification: {UserStatusActive, UserStatusSuspended},
	UserStatusActive:              {UserStatusInactive, UserStatusSuspended},
	UserStatusInactive:            {UserStatusActive, UserStatusSuspended},
	UserStatusSuspended:           {UserStatusActive},
}

// ServiceDescriptor is the active-service snapshot taken from the upstream.
type ServiceDescriptor struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	ServiceID string `json:"service_id"`
}

// User is a chat user known to the engine. CPF is held only as a salted hash
// plus the masked display form; the plaintext never persists.
type User struct {
	ID         UserID
	Username   string
	CPFHash    string
	CPFMasked  string
	ClientName string
	Service    *ServiceDescriptor
	Status     UserStatus
	IsAdmin    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CanTransitionTo reports whether the status edge is allowed.
func (u *User) CanTransitionTo(next UserStatus) bool {
	for _, allowed := range userTransitions[u.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the user along an allowed status edge.
func (u *User) TransitionTo(next UserStatus) error {
	if !u.CanTransitionTo(next) {
		return fmt.Errorf("user %d: invalid status transition %s -> %s", u.ID, u.Status, next)
	}
	u.Status = next
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// UserSnapshot is the immutable copy of a user embedded in tickets and
// verifications. Later changes to the User do not mutate past aggregates.
type UserSnapshot struct {
	ID        UserID `json:"id"`
	Username  string `json:"username"`
	CPFMasked string `json:"cpf_masked,omitempty"`
}

// Snapshot captures the embedding form of this user.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:        u.ID,
		Username:  u.Username,
		CPFMasked: u.CPFMasked,
	}
}
