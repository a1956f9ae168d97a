// Package commands is the inbound surface of the backoffice engine. Every
// externally triggered operation is a Command record dispatched to exactly
// one handler, which answers with a Result envelope. Commands carry data
// only; all behavior lives in the services layer.
package commands

import (
	"encoding/json"
	"time"
)

// Command is any dispatchable record. The name is a stable string used for
// routing and logging.
type Command interface {
	CommandName() string
}

// --- Verification ---

// StartCPFVerification opens a new CPF verification for a user.
type StartCPFVerification struct {
	UserID           int64  `json:"user_id" validate:"required"`
	Username         string `json:"username" validate:"required"`
	UserMention      string `json:"user_mention,omitempty"`
	VerificationType string `json:"verification_type" validate:"required"`
	SourceAction     string `json:"source_action,omitempty"`
}

func (StartCPFVerification) CommandName() string { return "start_cpf_verification" }

// SubmitCPFForVerification submits one CPF attempt against the user's
// pending verification.
type SubmitCPFForVerification struct {
	UserID   int64  `json:"user_id" validate:"required"`
	Username string `json:"username,omitempty"`
	CPF      string `json:"cpf" validate:"required"`
}

func (SubmitCPFForVerification) CommandName() string { return "submit_cpf_for_verification" }

// CancelCPFVerification abandons the user's pending verification.
type CancelCPFVerification struct {
	UserID   int64  `json:"user_id" validate:"required"`
	Username string `json:"username,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

func (CancelCPFVerification) CommandName() string { return "cancel_cpf_verification" }

// ProcessExpiredVerifications runs the expiry sweep once.
type ProcessExpiredVerifications struct{}

func (ProcessExpiredVerifications) CommandName() string { return "process_expired_verifications" }

// ResolveCPFDuplicate applies an admin decision to a CPF collision. On a
// merge, VerificationID names the claimant's blocked verification so it can
// be completed once the CPF is freed up.
type ResolveCPFDuplicate struct {
	CPFHash        string `json:"cpf_hash" validate:"required"`
	ClaimantUserID int64  `json:"claimant_user_id" validate:"required"`
	PrimaryUserID  int64  `json:"primary_user_id,omitempty"`
	VerificationID string `json:"verification_id,omitempty"`
	Action         string `json:"action" validate:"required,oneof=merge block manual_review"`
}

func (ResolveCPFDuplicate) CommandName() string { return "resolve_cpf_duplicate" }

// --- Support conversation ---

// StartSupportConversation opens the ticket form for a verified user.
type StartSupportConversation struct {
	UserID      int64  `json:"user_id" validate:"required"`
	Username    string `json:"username,omitempty"`
	UserMention string `json:"user_mention,omitempty"`
}

func (StartSupportConversation) CommandName() string { return "start_support_conversation" }

// SelectCategory answers step 1 of the form.
type SelectCategory struct {
	UserID   int64  `json:"user_id" validate:"required"`
	Category string `json:"category" validate:"required"`
}

func (SelectCategory) CommandName() string { return "select_category" }

// SelectGame answers step 2 of the form.
type SelectGame struct {
	UserID int64  `json:"user_id" validate:"required"`
	Game   string `json:"game" validate:"required"`
}

func (SelectGame) CommandName() string { return "select_game" }

// SelectTiming answers step 3 of the form.
type SelectTiming struct {
	UserID int64  `json:"user_id" validate:"required"`
	Timing string `json:"timing" validate:"required"`
}

func (SelectTiming) CommandName() string { return "select_timing" }

// SetDescription answers step 4 of the form.
type SetDescription struct {
	UserID      int64  `json:"user_id" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (SetDescription) CommandName() string { return "set_description" }

// AddAttachment attaches an uploaded file at step 5.
type AddAttachment struct {
	UserID   int64  `json:"user_id" validate:"required"`
	FileID   string `json:"file_id" validate:"required"`
	FileName string `json:"file_name,omitempty"`
}

func (AddAttachment) CommandName() string { return "add_attachment" }

// SkipAttachments advances past the optional attachment step.
type SkipAttachments struct {
	UserID int64 `json:"user_id" validate:"required"`
}

func (SkipAttachments) CommandName() string { return "skip_attachments" }

// ConfirmAndCreateTicket turns the completed form into a ticket.
type ConfirmAndCreateTicket struct {
	UserID int64 `json:"user_id" validate:"required"`
}

func (ConfirmAndCreateTicket) CommandName() string { return "confirm_and_create_ticket" }

// CancelConversation abandons the form at any step.
type CancelConversation struct {
	UserID int64  `json:"user_id" validate:"required"`
	Reason string `json:"reason,omitempty"`
}

func (CancelConversation) CommandName() string { return "cancel_conversation" }

// --- Tickets ---

// AssignTicket sets the ticket's back-office assignee.
type AssignTicket struct {
	TicketID string `json:"ticket_id" validate:"required"`
	Assignee string `json:"assignee" validate:"required"`
}

func (AssignTicket) CommandName() string { return "assign_ticket" }

// ChangeTicketStatus moves a ticket along the status edge set.
type ChangeTicketStatus struct {
	TicketID string `json:"ticket_id" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=pending open in_progress resolved closed cancelled"`
}

func (ChangeTicketStatus) CommandName() string { return "change_ticket_status" }

// ElevateTicketUrgency raises a ticket's urgency. Urgency never goes down.
type ElevateTicketUrgency struct {
	TicketID string `json:"ticket_id" validate:"required"`
	Urgency  string `json:"urgency" validate:"required,oneof=low normal high critical"`
}

func (ElevateTicketUrgency) CommandName() string { return "elevate_ticket_urgency" }

// CloseTicketWithResolution resolves and closes a ticket in one step.
type CloseTicketWithResolution struct {
	TicketID   string `json:"ticket_id" validate:"required"`
	Resolution string `json:"resolution" validate:"required"`
}

func (CloseTicketWithResolution) CommandName() string { return "close_ticket_with_resolution" }

// CancelTicket cancels a non-terminal ticket.
type CancelTicket struct {
	TicketID string `json:"ticket_id" validate:"required"`
}

func (CancelTicket) CommandName() string { return "cancel_ticket" }

// AddTicketMessage appends to the ticket's bounded message history.
type AddTicketMessage struct {
	TicketID string `json:"ticket_id" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

func (AddTicketMessage) CommandName() string { return "add_ticket_message" }

// --- Users ---

// BanUser deactivates a user. Admin only; self-bans are refused.
type BanUser struct {
	AdminID  int64  `json:"admin_id" validate:"required"`
	TargetID int64  `json:"target_id" validate:"required"`
	Reason   string `json:"reason,omitempty"`
}

func (BanUser) CommandName() string { return "ban_user" }

// UnbanUser reactivates a banned user. Admin only.
type UnbanUser struct {
	AdminID  int64 `json:"admin_id" validate:"required"`
	TargetID int64 `json:"target_id" validate:"required"`
}

func (UnbanUser) CommandName() string { return "unban_user" }

// --- Integration scheduler ---

// ScheduleHubSoftIntegration enqueues an arbitrary integration request.
type ScheduleHubSoftIntegration struct {
	IntegrationType string            `json:"integration_type" validate:"required"`
	Priority        string            `json:"priority,omitempty"`
	Payload         json.RawMessage   `json:"payload,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	MaxRetries      int               `json:"max_retries,omitempty"`
	TimeoutSeconds  int               `json:"timeout_seconds,omitempty"`
	ScheduledAt     time.Time         `json:"scheduled_at,omitempty"`
}

func (ScheduleHubSoftIntegration) CommandName() string { return "schedule_hubsoft_integration" }

// SyncTicketToUpstream enqueues a single ticket sync.
type SyncTicketToUpstream struct {
	TicketID string `json:"ticket_id" validate:"required"`
	Priority string `json:"priority,omitempty"`
}

func (SyncTicketToUpstream) CommandName() string { return "sync_ticket_to_upstream" }

// VerifyUserInUpstream enqueues a CPF existence check.
type VerifyUserInUpstream struct {
	UserID int64  `json:"user_id" validate:"required"`
	CPF    string `json:"cpf" validate:"required"`
}

func (VerifyUserInUpstream) CommandName() string { return "verify_user_in_upstream" }

// FetchClientDataFromUpstream enqueues a cached client-record fetch.
type FetchClientDataFromUpstream struct {
	CPF              string `json:"cpf" validate:"required"`
	IncludeContracts bool   `json:"include_contracts,omitempty"`
}

func (FetchClientDataFromUpstream) CommandName() string { return "fetch_client_data_from_upstream" }

// UpdateTicketStatusInUpstream enqueues a status push for a synced ticket.
type UpdateTicketStatusInUpstream struct {
	TicketID string `json:"ticket_id" validate:"required"`
	Status   string `json:"status" validate:"required"`
}

func (UpdateTicketStatusInUpstream) CommandName() string { return "update_ticket_status_in_upstream" }

// BulkSyncTicketsToUpstream enqueues a batched sync of many tickets.
type BulkSyncTicketsToUpstream struct {
	TicketIDs []string `json:"ticket_ids" validate:"required,min=1"`
	BatchSize int      `json:"batch_size,omitempty"`
}

func (BulkSyncTicketsToUpstream) CommandName() string { return "bulk_sync_tickets_to_upstream" }

// RetryFailedIntegrations re-enqueues a sync for every open ticket whose
// upstream sync failed.
type RetryFailedIntegrations struct{}

func (RetryFailedIntegrations) CommandName() string { return "retry_failed_integrations" }

// ForceRetryIntegration grants one extra dispatch to a failed request whose
// retries are exhausted.
type ForceRetryIntegration struct {
	IntegrationID string `json:"integration_id" validate:"required"`
}

func (ForceRetryIntegration) CommandName() string { return "force_retry_integration" }

// CancelIntegration cancels a queued integration request.
type CancelIntegration struct {
	IntegrationID string `json:"integration_id" validate:"required"`
}

func (CancelIntegration) CommandName() string { return "cancel_integration" }

// UpdateIntegrationPriority moves a queued request to another priority band.
type UpdateIntegrationPriority struct {
	IntegrationID string `json:"integration_id" validate:"required"`
	Priority      string `json:"priority" validate:"required,oneof=critical high normal low"`
}

func (UpdateIntegrationPriority) CommandName() string { return "update_integration_priority" }

// GetIntegrationStatus reads the current state of an integration request.
type GetIntegrationStatus struct {
	IntegrationID string `json:"integration_id" validate:"required"`
}

func (GetIntegrationStatus) CommandName() string { return "get_integration_status" }
