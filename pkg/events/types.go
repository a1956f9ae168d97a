// Package events defines the domain events emitted by the engines and the
// in-process bus that distributes them to side-effect handlers
// (notifications, audit, metrics).
//
// Events are immutable value objects. Aggregates collect them while an
// operation runs; the owning service publishes them only after the aggregate
// has been persisted. Delivery is best-effort: the bus performs no retries
// and no persistence.
package events

import (
	"fmt"
	"time"
)

// DomainEvent is implemented by every event type in this package.
type DomainEvent interface {
	// EventID uniquely identifies this event instance.
	EventID() string
	// EventType is the stable type string (e.g. "verification.completed").
	EventType() string
	// OccurredAt is when the event was constructed.
	OccurredAt() time.Time
}

// Event type strings. Per-type subscribers match on these exactly.
const (
	TypeVerificationStarted     = "verification.started"
	TypeVerificationAttemptMade = "verification.attempt_made"
	TypeVerificationCompleted   = "verification.completed"
	TypeVerificationFailed      = "verification.failed"
	TypeVerificationExpired     = "verification.expired"
	TypeVerificationCancelled   = "verification.cancelled"

	TypeCPFDuplicateDetected = "cpf.duplicate_detected"
	TypeCPFRemapped          = "cpf.remapped"

	TypeTicketCreated         = "ticket.created"
	TypeTicketAssigned        = "ticket.assigned"
	TypeTicketStatusChanged   = "ticket.status_changed"
	TypeTicketSynced          = "ticket.synced_with_upstream"
	TypeTicketClosed          = "ticket.closed"
	TypeTicketReopened        = "ticket.reopened"
	TypeTicketUrgencyElevated = "ticket.urgency_elevated"

	TypeUserRegistered = "user.registered"
	TypeUserBanned     = "user.banned"
	TypeUserUnbanned   = "user.unbanned"

	TypeConversationStarted       = "conversation.started"
	TypeConversationStepCompleted = "conversation.step_completed"
	TypeConversationCompleted     = "conversation.completed"
	TypeConversationCancelled     = "conversation.cancelled"
	TypeConversationTimedOut      = "conversation.timed_out"

	TypeIntegrationCompleted = "integration.completed"
	TypeIntegrationFailed    = "integration.failed"

	TypeTechNotificationRequired  = "notification.tech_required"
	TypeAdminNotificationRequired = "notification.admin_required"
)

// Base carries the fields shared by every event. Embed it and construct with
// NewBase; the event ID is derived from the type string and timestamp.
type Base struct {
	ID   string    `json:"event_id"`
	Type string    `json:"event_type"`
	At   time.Time `json:"occurred_at"`
}

// NewBase builds the shared event header for the given type string.
func NewBase(eventType string) Base {
	now := time.Now().UTC()
	return Base{
		ID:   fmt.Sprintf("%s-%d", eventType, now.UnixNano()),
		Type: eventType,
		At:   now,
	}
}

func (b Base) EventID() string       { return b.ID }
func (b Base) EventType() string     { return b.Type }
func (b Base) OccurredAt() time.Time { return b.At }

// --- Verification lifecycle ---

type VerificationStarted struct {
	Base
	VerificationID   string `json:"verification_id"`
	UserID           int64  `json:"user_id"`
	Username         string `json:"username"`
	VerificationType string `json:"verification_type"`
	SourceAction     string `json:"source_action"`
}

func NewVerificationStarted(verificationID string, userID int64, username, verificationType, sourceAction string) VerificationStarted {
	return VerificationStarted{
		Base:             NewBase(TypeVerificationStarted),
		VerificationID:   verificationID,
		UserID:           userID,
		Username:         username,
		VerificationType: verificationType,
		SourceAction:     sourceAction,
	}
}

type VerificationAttemptMade struct {
	Base
	VerificationID string `json:"verification_id"`
	UserID         int64  `json:"user_id"`
	AttemptNumber  int    `json:"attempt_number"`
	Success        bool   `json:"success"`
	FailureReason  string `json:"failure_reason,omitempty"`
	CPFMasked      string `json:"cpf_masked,omitempty"`
}

func NewVerificationAttemptMade(verificationID string, userID int64, attemptNumber int, success bool, failureReason, cpfMasked string) VerificationAttemptMade {
	return VerificationAttemptMade{
		Base:           NewBase(TypeVerificationAttemptMade),
		VerificationID: verificationID,
		UserID:         userID,
		AttemptNumber:  attemptNumber,
		Success:        success,
		FailureReason:  failureReason,
		CPFMasked:      cpfMasked,
	}
}

type VerificationCompleted struct {
	Base
	VerificationID string `json:"verification_id"`
	UserID         int64  `json:"user_id"`
	CPFMasked      string `json:"cpf_masked"`
	ClientName     string `json:"client_name"`
	ServiceName    string `json:"service_name,omitempty"`
}

func NewVerificationCompleted(verificationID string, userID int64, cpfMasked, clientName, serviceName string) VerificationCompleted {
	return VerificationCompleted{
		Base:           NewBase(TypeVerificationCompleted),
		VerificationID: verificationID,
		UserID:         userID,
		CPFMasked:      cpfMasked,
		ClientName:     clientName,
		ServiceName:    serviceName,
	}
}

type VerificationFailed struct {
	Base
	VerificationID string `json:"verification_id"`
	UserID         int64  `json:"user_id"`
	Reason         string `json:"reason"`
	AttemptCount   int    `json:"attempt_count"`
}

func NewVerificationFailed(verificationID string, userID int64, reason string, attemptCount int) VerificationFailed {
	return VerificationFailed{
		Base:           NewBase(TypeVerificationFailed),
		VerificationID: verificationID,
		UserID:         userID,
		Reason:         reason,
		AttemptCount:   attemptCount,
	}
}

type VerificationExpired struct {
	Base
	VerificationID string `json:"verification_id"`
	UserID         int64  `json:"user_id"`
}

func NewVerificationExpired(verificationID string, userID int64) VerificationExpired {
	return VerificationExpired{
		Base:           NewBase(TypeVerificationExpired),
		VerificationID: verificationID,
		UserID:         userID,
	}
}

type VerificationCancelled struct {
	Base
	VerificationID string `json:"verification_id"`
	UserID         int64  `json:"user_id"`
	Reason         string `json:"reason,omitempty"`
}

func NewVerificationCancelled(verificationID string, userID int64, reason string) VerificationCancelled {
	return VerificationCancelled{
		Base:           NewBase(TypeVerificationCancelled),
		VerificationID: verificationID,
		UserID:         userID,
		Reason:         reason,
	}
}

// --- Duplicate CPF resolution ---

type CPFDuplicateDetected struct {
	Base
	VerificationID string  `json:"verification_id"`
	UserID         int64   `json:"user_id"`
	CPFMasked      string  `json:"cpf_masked"`
	CPFHash        string  `json:"cpf_hash"`
	HolderUserIDs  []int64 `json:"holder_user_ids"`
	Risk           string  `json:"risk"`
}

func NewCPFDuplicateDetected(verificationID string, userID int64, cpfMasked, cpfHash string, holders []int64, risk string) CPFDuplicateDetected {
	return CPFDuplicateDetected{
		Base:           NewBase(TypeCPFDuplicateDetected),
		VerificationID: verificationID,
		UserID:         userID,
		CPFMasked:      cpfMasked,
		CPFHash:        cpfHash,
		HolderUserIDs:  holders,
		Risk:           risk,
	}
}

type CPFRemapped struct {
	Base
	CPFHash          string  `json:"cpf_hash"`
	PrimaryUserID    int64   `json:"primary_user_id"`
	DuplicateUserIDs []int64 `json:"duplicate_user_ids"`
}

func NewCPFRemapped(cpfHash string, primaryUserID int64, duplicates []int64) CPFRemapped {
	return CPFRemapped{
		Base:             NewBase(TypeCPFRemapped),
		CPFHash:          cpfHash,
		PrimaryUserID:    primaryUserID,
		DuplicateUserIDs: duplicates,
	}
}

// --- Ticket lifecycle ---

type TicketCreated struct {
	Base
	TicketID string `json:"ticket_id"`
	UserID   int64  `json:"user_id"`
	Category string `json:"category"`
	Urgency  string `json:"urgency"`
	Protocol string `json:"protocol"`
}

func NewTicketCreated(ticketID string, userID int64, category, urgency, protocol string) TicketCreated {
	return TicketCreated{
		Base:     NewBase(TypeTicketCreated),
		TicketID: ticketID,
		UserID:   userID,
		Category: category,
		Urgency:  urgency,
		Protocol: protocol,
	}
}

type TicketAssigned struct {
	Base
	TicketID string `json:"ticket_id"`
	Assignee string `json:"assignee"`
}

func NewTicketAssigned(ticketID, assignee string) TicketAssigned {
	return TicketAssigned{
		Base:     NewBase(TypeTicketAssigned),
		TicketID: ticketID,
		Assignee: assignee,
	}
}

type TicketStatusChanged struct {
	Base
	TicketID string `json:"ticket_id"`
	From     string `json:"from"`
	To       string `json:"to"`
}

func NewTicketStatusChanged(ticketID, from, to string) TicketStatusChanged {
	return TicketStatusChanged{
		Base:     NewBase(TypeTicketStatusChanged),
		TicketID: ticketID,
		From:     from,
		To:       to,
	}
}

type TicketSyncedWithUpstream struct {
	Base
	TicketID   string `json:"ticket_id"`
	UpstreamID string `json:"upstream_id"`
	Protocol   string `json:"protocol"`
}

func NewTicketSyncedWithUpstream(ticketID, upstreamID, protocol string) TicketSyncedWithUpstream {
	return TicketSyncedWithUpstream{
		Base:       NewBase(TypeTicketSynced),
		TicketID:   ticketID,
		UpstreamID: upstreamID,
		Protocol:   protocol,
	}
}

type TicketClosed struct {
	Base
	TicketID   string `json:"ticket_id"`
	Resolution string `json:"resolution"`
}

func NewTicketClosed(ticketID, resolution string) TicketClosed {
	return TicketClosed{
		Base:       NewBase(TypeTicketClosed),
		TicketID:   ticketID,
		Resolution: resolution,
	}
}

type TicketReopened struct {
	Base
	TicketID string `json:"ticket_id"`
}

func NewTicketReopened(ticketID string) TicketReopened {
	return TicketReopened{
		Base:     NewBase(TypeTicketReopened),
		TicketID: ticketID,
	}
}

type TicketUrgencyElevated struct {
	Base
	TicketID string `json:"ticket_id"`
	From     string `json:"from"`
	To       string `json:"to"`
}

func NewTicketUrgencyElevated(ticketID, from, to string) TicketUrgencyElevated {
	return TicketUrgencyElevated{
		Base:     NewBase(TypeTicketUrgencyElevated),
		TicketID: ticketID,
		From:     from,
		To:       to,
	}
}

// --- User administration ---

type UserRegistered struct {
	Base
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func NewUserRegistered(userID int64, username string) UserRegistered {
	return UserRegistered{
		Base:     NewBase(TypeUserRegistered),
		UserID:   userID,
		Username: username,
	}
}

type UserBanned struct {
	Base
	UserID int64  `json:"user_id"`
	Reason string `json:"reason,omitempty"`
}

func NewUserBanned(userID int64, reason string) UserBanned {
	return UserBanned{
		Base:   NewBase(TypeUserBanned),
		UserID: userID,
		Reason: reason,
	}
}

type UserUnbanned struct {
	Base
	UserID int64 `json:"user_id"`
}

func NewUserUnbanned(userID int64) UserUnbanned {
	return UserUnbanned{
		Base:   NewBase(TypeUserUnbanned),
		UserID: userID,
	}
}

// --- Support conversation lifecycle ---

type ConversationStarted struct {
	Base
	ConversationID string `json:"conversation_id"`
	UserID         int64  `json:"user_id"`
}

func NewConversationStarted(conversationID string, userID int64) ConversationStarted {
	return ConversationStarted{
		Base:           NewBase(TypeConversationStarted),
		ConversationID: conversationID,
		UserID:         userID,
	}
}

type ConversationStepCompleted struct {
	Base
	ConversationID string `json:"conversation_id"`
	UserID         int64  `json:"user_id"`
	Step           int    `json:"step"`
	State          string `json:"state"`
}

func NewConversationStepCompleted(conversationID string, userID int64, step int, state string) ConversationStepCompleted {
	return ConversationStepCompleted{
		Base:           NewBase(TypeConversationStepCompleted),
		ConversationID: conversationID,
		UserID:         userID,
		Step:           step,
		State:          state,
	}
}

type ConversationCompleted struct {
	Base
	ConversationID string `json:"conversation_id"`
	UserID         int64  `json:"user_id"`
	TicketID       string `json:"ticket_id"`
}

func NewConversationCompleted(conversationID string, userID int64, ticketID string) ConversationCompleted {
	return ConversationCompleted{
		Base:           NewBase(TypeConversationCompleted),
		ConversationID: conversationID,
		UserID:         userID,
		TicketID:       ticketID,
	}
}

type ConversationCancelled struct {
	Base
	ConversationID string `json:"conversation_id"`
	UserID         int64  `json:"user_id"`
	Reason         string `json:"reason,omitempty"`
}

func NewConversationCancelled(conversationID string, userID int64, reason string) ConversationCancelled {
	return ConversationCancelled{
		Base:           NewBase(TypeConversationCancelled),
		ConversationID: conversationID,
		UserID:         userID,
		Reason:         reason,
	}
}

type ConversationTimedOut struct {
	Base
	ConversationID string `json:"conversation_id"`
	UserID         int64  `json:"user_id"`
}

func NewConversationTimedOut(conversationID string, userID int64) ConversationTimedOut {
	return ConversationTimedOut{
		Base:           NewBase(TypeConversationTimedOut),
		ConversationID: conversationID,
		UserID:         userID,
	}
}

// --- Integration scheduler ---

type IntegrationCompleted struct {
	Base
	IntegrationID   string `json:"integration_id"`
	IntegrationType string `json:"integration_type"`
	Attempts        int    `json:"attempts"`
}

func NewIntegrationCompleted(integrationID, integrationType string, attempts int) IntegrationCompleted {
	return IntegrationCompleted{
		Base:            NewBase(TypeIntegrationCompleted),
		IntegrationID:   integrationID,
		IntegrationType: integrationType,
		Attempts:        attempts,
	}
}

type IntegrationFailed struct {
	Base
	IntegrationID   string `json:"integration_id"`
	IntegrationType string `json:"integration_type"`
	Error           string `json:"error"`
	Attempts        int    `json:"attempts"`
}

func NewIntegrationFailed(integrationID, integrationType, errMsg string, attempts int) IntegrationFailed {
	return IntegrationFailed{
		Base:            NewBase(TypeIntegrationFailed),
		IntegrationID:   integrationID,
		IntegrationType: integrationType,
		Error:           errMsg,
		Attempts:        attempts,
	}
}

// --- Operator notifications ---

// TechNotificationRequired asks the chat adapter to alert the tech channel.
type TechNotificationRequired struct {
	Base
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Severity string `json:"severity"`
}

func NewTechNotificationRequired(subject, body, severity string) TechNotificationRequired {
	return TechNotificationRequired{
		Base:     NewBase(TypeTechNotificationRequired),
		Subject:  subject,
		Body:     body,
		Severity: severity,
	}
}

// AdminNotificationRequired asks the chat adapter to alert the admin channel.
type AdminNotificationRequired struct {
	Base
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func NewAdminNotificationRequired(subject, body string) AdminNotificationRequired {
	return AdminNotificationRequired{
		Base:    NewBase(TypeAdminNotificationRequired),
		Subject: subject,
		Body:    body,
	}
}
