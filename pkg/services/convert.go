// Package services implements the application layer: each service loads an
// aggregate from ent storage, drives its state machine, persists the result,
// and publishes the drained domain events afterwards. Events are published
// only after a successful save.
package services

import (
	"time"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// UserFromRow maps an ent row to the domain model.
func UserFromRow(row *ent.User) *models.User {
	u := &models.User{
		ID:        models.UserID(row.ID),
		Username:  row.Username,
		Service:   row.Service,
		Status:    models.UserStatus(row.Status),
		IsAdmin:   row.IsAdmin,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.CpfHash != nil {
		u.CPFHash = *row.CpfHash
	}
	if row.CpfMasked != nil {
		u.CPFMasked = *row.CpfMasked
	}
	if row.ClientName != nil {
		u.ClientName = *row.ClientName
	}
	return u
}

// VerificationFromRow maps an ent row plus its attempt rows to the domain
// model. Attempt rows must be ordered by attempt number.
func VerificationFromRow(row *ent.VerificationRequest, attemptRows []*ent.VerificationAttempt) *models.VerificationRequest {
	v := &models.VerificationRequest{
		ID:           row.ID,
		UserID:       models.UserID(row.UserID),
		Username:     row.Username,
		Type:         models.VerificationType(row.VerificationType),
		SourceAction: row.SourceAction,
		Status:       models.VerificationStatus(row.Status),
		CreatedAt:    row.CreatedAt,
		ExpiresAt:    row.ExpiresAt,
		CompletedAt:  row.CompletedAt,
		Client:       row.ClientSnapshot,
	}
	if row.VerifiedCpfHash != nil {
		v.VerifiedCPFHash = *row.VerifiedCpfHash
	}
	if row.VerifiedCpfMasked != nil {
		v.VerifiedCPFMasked = *row.VerifiedCpfMasked
	}
	for _, a := range attemptRows {
		v.Attempts = append(v.Attempts, models.VerificationAttempt{
			AttemptedAt:   a.AttemptedAt,
			CPFMasked:     a.CpfMasked,
			CPFProvided:   a.CpfProvided,
			Success:       a.Success,
			FailureReason: a.FailureReason,
		})
	}
	return v
}

// TicketFromRow maps an ent row to the domain model.
func TicketFromRow(row *ent.Ticket) *models.Ticket {
	t := &models.Ticket{
		ID: row.ID,
		Owner: models.UserSnapshot{
			ID:        models.UserID(row.OwnerID),
			Username:  row.OwnerUsername,
			CPFMasked: row.OwnerCpfMasked,
		},
		Category:      row.Category,
		Game:          row.Game,
		ProblemTiming: row.ProblemTiming,
		Description:   row.Description,
		Urgency:       models.TicketUrgency(row.Urgency),
		Status:        models.TicketStatus(row.Status),
		Assignee:      row.Assignee,
		Protocol:      row.Protocol,
		Sync:          models.SyncStatus(row.SyncStatus),
		Attachments:   row.Attachments,
		Messages:      row.Messages,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.Resolution != nil {
		t.Resolution = *row.Resolution
	}
	if row.UpstreamID != nil {
		t.UpstreamID = *row.UpstreamID
	}
	return t
}

// ConversationFromRow maps an ent row to the domain model.
func ConversationFromRow(row *ent.SupportConversation) *models.SupportConversation {
	c := &models.SupportConversation{
		ID: row.ID,
		Owner: models.UserSnapshot{
			ID:       models.UserID(row.UserID),
			Username: row.Username,
		},
		State:        models.ConversationState(row.State),
		CurrentStep:  row.CurrentStep,
		IsActive:     row.IsActive,
		TicketID:     row.TicketID,
		StartedAt:    row.StartedAt,
		LastActiveAt: row.LastActiveAt,
	}
	if row.FormData != nil {
		c.Form = *row.FormData
	}
	return c
}

// IntegrationFromRow maps an ent row to the domain model.
func IntegrationFromRow(row *ent.IntegrationRequest) *models.IntegrationRequest {
	r := &models.IntegrationRequest{
		ID:          row.ID,
		Type:        models.IntegrationType(row.IntegrationType),
		Priority:    models.IntegrationPriority(row.Priority),
		Status:      models.IntegrationStatus(row.Status),
		Payload:     row.Payload,
		Metadata:    row.Metadata,
		MaxRetries:  row.MaxRetries,
		ForceRetry:  row.ForceRetry,
		Timeout:     time.Duration(row.TimeoutSeconds) * time.Second,
		ScheduledAt: row.ScheduledAt,
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
		Response:    row.Response,
		LastError:   row.LastError,
		Attempts:    row.Attempts,
		CreatedAt:   row.CreatedAt,
	}
	return r
}
