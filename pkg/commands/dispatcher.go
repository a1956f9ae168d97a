package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/atlasfibra/backoffice/pkg/models"
	"github.com/atlasfibra/backoffice/pkg/services"
)

// Dispatcher routes commands to their handlers. One handler per command
// type; unknown commands and panics both come back as system_error, never
// as a raised failure.
type Dispatcher struct {
	verifications *services.VerificationService
	conversations *services.ConversationService
	tickets       *services.TicketService
	users         *services.UserService
	duplicates    *services.DuplicateService
	integrations  *services.IntegrationService

	validate *validator.Validate
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher. All collaborators are required.
func NewDispatcher(
	verifications *services.VerificationService,
	conversations *services.ConversationService,
	tickets *services.TicketService,
	users *services.UserService,
	duplicates *services.DuplicateService,
	integrations *services.IntegrationService,
) *Dispatcher {
	if verifications == nil || conversations == nil || tickets == nil ||
		users == nil || duplicates == nil || integrations == nil {
		panic("NewDispatcher: all services must be non-nil")
	}
	return &Dispatcher{
		verifications: verifications,
		conversations: conversations,
		tickets:       tickets,
		users:         users,
		duplicates:    duplicates,
		integrations:  integrations,
		validate:      validator.New(),
		logger:        slog.With("component", "dispatcher"),
	}
}

// Execute validates and runs one command. Domain failures come back in the
// Result; only the envelope itself is infallible.
func (d *Dispatcher) Execute(ctx context.Context, cmd Command) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Command handler panicked",
				"command", cmd.CommandName(), "panic", r, "stack", string(debug.Stack()))
			result = Failure(CodeSystemError)
		}
	}()

	if err := d.validate.Struct(cmd); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			d.logger.Error("Command is not validatable", "command", cmd.CommandName(), "error", err)
			return Failure(CodeSystemError)
		}
		return Failure(CodeInvalidInput)
	}

	switch c := cmd.(type) {
	case StartCPFVerification:
		return d.startVerification(ctx, c)
	case SubmitCPFForVerification:
		return d.submitCPF(ctx, c)
	case CancelCPFVerification:
		return d.cancelVerification(ctx, c)
	case ProcessExpiredVerifications:
		return d.processExpired(ctx)
	case ResolveCPFDuplicate:
		return d.resolveDuplicate(ctx, c)

	case StartSupportConversation:
		return d.startConversation(ctx, c)
	case SelectCategory:
		return d.conversationStep(ctx, c.UserID, func(ctx context.Context, id models.UserID) (*models.SupportConversation, error) {
			return d.conversations.SelectCategory(ctx, id, c.Category)
		})
	case SelectGame:
		return d.conversationStep(ctx, c.UserID, func(ctx context.Context, id models.UserID) (*models.SupportConversation, error) {
			return d.conversations.SelectGame(ctx, id, c.Game)
		})
	case SelectTiming:
		return d.conversationStep(ctx, c.UserID, func(ctx context.Context, id models.UserID) (*models.SupportConversation, error) {
			return d.conversations.SelectTiming(ctx, id, c.Timing)
		})
	case SetDescription:
		return d.conversationStep(ctx, c.UserID, func(ctx context.Context, id models.UserID) (*models.SupportConversation, error) {
			return d.conversations.SetDescription(ctx, id, c.Description)
		})
	case AddAttachment:
		return d.conversationStep(ctx, c.UserID, func(ctx context.Context, id models.UserID) (*models.SupportConversation, error) {
			return d.conversations.AddAttachment(ctx, id, c.FileID, c.FileName)
		})
	case SkipAttachments:
		return d.conversationStep(ctx, c.UserID, d.conversations.SkipAttachments)
	case ConfirmAndCreateTicket:
		return d.confirmTicket(ctx, c)
	case CancelConversation:
		return d.cancelConversation(ctx, c)

	case AssignTicket:
		return d.ticketMutation(ctx, func(ctx context.Context) (*models.Ticket, error) {
			return d.tickets.Assign(ctx, c.TicketID, c.Assignee)
		}, "Chamado atribuído.")
	case ChangeTicketStatus:
		return d.ticketMutation(ctx, func(ctx context.Context) (*models.Ticket, error) {
			return d.tickets.ChangeStatus(ctx, c.TicketID, models.TicketStatus(c.Status))
		}, "Status do chamado atualizado.")
	case ElevateTicketUrgency:
		return d.ticketMutation(ctx, func(ctx context.Context) (*models.Ticket, error) {
			return d.tickets.ElevateUrgency(ctx, c.TicketID, models.TicketUrgency(c.Urgency))
		}, "Urgência do chamado atualizada.")
	case CloseTicketWithResolution:
		return d.ticketMutation(ctx, func(ctx context.Context) (*models.Ticket, error) {
			return d.tickets.CloseWithResolution(ctx, c.TicketID, c.Resolution)
		}, "Chamado encerrado.")
	case CancelTicket:
		return d.ticketMutation(ctx, func(ctx context.Context) (*models.Ticket, error) {
			return d.tickets.Cancel(ctx, c.TicketID)
		}, "Chamado cancelado.")
	case AddTicketMessage:
		return d.ticketMutation(ctx, func(ctx context.Context) (*models.Ticket, error) {
			return d.tickets.AddMessage(ctx, c.TicketID, c.Author, c.Text)
		}, "Mensagem registrada no chamado.")

	case BanUser:
		return d.banUser(ctx, c)
	case UnbanUser:
		return d.unbanUser(ctx, c)

	case ScheduleHubSoftIntegration:
		return d.enqueue(ctx, services.EnqueueInput{
			Type:        c.IntegrationType,
			Priority:    c.Priority,
			Payload:     c.Payload,
			Metadata:    c.Metadata,
			MaxRetries:  c.MaxRetries,
			Timeout:     time.Duration(c.TimeoutSeconds) * time.Second,
			ScheduledAt: c.ScheduledAt,
		})
	case SyncTicketToUpstream:
		return d.enqueueTyped(ctx, models.IntegrationTypeTicketSync, c.Priority,
			models.TicketSyncPayload{TicketID: c.TicketID})
	case VerifyUserInUpstream:
		return d.enqueueTyped(ctx, models.IntegrationTypeUserVerification, "",
			models.UserVerificationPayload{UserID: c.UserID, CPF: c.CPF})
	case FetchClientDataFromUpstream:
		return d.enqueueTyped(ctx, models.IntegrationTypeClientDataFetch, "",
			models.ClientDataFetchPayload{CPF: c.CPF, IncludeContracts: c.IncludeContracts})
	case UpdateTicketStatusInUpstream:
		return d.updateTicketStatusUpstream(ctx, c)
	case BulkSyncTicketsToUpstream:
		return d.enqueueTyped(ctx, models.IntegrationTypeBulkSync, "",
			models.BulkSyncPayload{TicketIDs: c.TicketIDs, BatchSize: c.BatchSize})
	case RetryFailedIntegrations:
		return d.retryFailedIntegrations(ctx)
	case ForceRetryIntegration:
		return d.forceRetry(ctx, c)
	case CancelIntegration:
		return d.cancelIntegration(ctx, c)
	case UpdateIntegrationPriority:
		return d.updatePriority(ctx, c)
	case GetIntegrationStatus:
		return d.integrationStatus(ctx, c)
	}

	d.logger.Error("No handler for command", "command", cmd.CommandName())
	return Failure(CodeSystemError)
}

// --- Verification handlers ---

func (d *Dispatcher) startVerification(ctx context.Context, c StartCPFVerification) Result {
	vtype, err := models.ParseVerificationType(c.VerificationType)
	if err != nil {
		return Failure(CodeInvalidVerificationType)
	}
	v, err := d.verifications.StartVerification(
		ctx, models.UserID(c.UserID), c.Username, vtype, c.SourceAction)
	if err != nil {
		return d.failureFromError(c, err)
	}
	return Success("Verificação iniciada. Envie seu CPF (apenas números).", map[string]any{
		"verification_id": v.ID,
		"expires_at":      v.ExpiresAt,
		"attempts_left":   v.AttemptsLeft(),
	})
}

func (d *Dispatcher) submitCPF(ctx context.Context, c SubmitCPFForVerification) Result {
	v, err := d.verifications.SubmitCPF(ctx, models.UserID(c.UserID), c.CPF)
	if err != nil {
		res := d.failureFromError(c, err)
		if v != nil {
			if res.Data == nil {
				res.Data = map[string]any{}
			}
			res.Data["attempts_left"] = v.AttemptsLeft()
		}
		return res
	}

	data := map[string]any{
		"verification_id": v.ID,
		"verified":        true,
		"cpf_masked":      v.VerifiedCPFMasked,
	}
	message := "CPF verificado com sucesso! Seu atendimento está liberado."
	if v.Client != nil {
		data["client_name"] = v.Client.ClientName
		message = fmt.Sprintf("CPF verificado com sucesso! Bem-vindo(a), %s.", v.Client.ClientName)
	}
	return Success(message, data)
}

func (d *Dispatcher) cancelVerification(ctx context.Context, c CancelCPFVerification) Result {
	if _, err := d.verifications.CancelVerification(ctx, models.UserID(c.UserID), c.Reason); err != nil {
		return d.failureFromError(c, err)
	}
	return Success("Verificação cancelada.", nil)
}

func (d *Dispatcher) processExpired(ctx context.Context) Result {
	count, failures, err := d.verifications.ExpireSweep(ctx)
	if err != nil {
		return d.failureFromError(ProcessExpiredVerifications{}, err)
	}
	return Success("Varredura de expiração concluída.", map[string]any{
		"processed": count,
		"errors":    failures,
	})
}

// resolveDuplicate applies the admin decision and, on a merge that names the
// claimant's blocked verification, re-runs that verification through the
// submission success path now that the CPF is free.
func (d *Dispatcher) resolveDuplicate(ctx context.Context, c ResolveCPFDuplicate) Result {
	err := d.duplicates.Resolve(ctx, services.ResolveDuplicateInput{
		CPFHash:        c.CPFHash,
		ClaimantUserID: models.UserID(c.ClaimantUserID),
		PrimaryUserID:  models.UserID(c.PrimaryUserID),
		Action:         c.Action,
	})
	if err != nil {
		return d.failureFromError(c, err)
	}
	if c.Action != services.ResolveActionMerge || c.VerificationID == "" {
		return Success("Conflito de CPF resolvido.", nil)
	}

	v, err := d.verifications.CompleteAfterResolution(ctx, c.VerificationID)
	if err != nil {
		return d.failureFromError(c, err)
	}
	return Success("Conflito de CPF resolvido e verificação concluída.", map[string]any{
		"verification_id": v.ID,
		"verified":        true,
		"cpf_masked":      v.VerifiedCPFMasked,
	})
}

// --- Conversation handlers ---

func (d *Dispatcher) startConversation(ctx context.Context, c StartSupportConversation) Result {
	conv, err := d.conversations.Start(ctx, models.UserID(c.UserID))
	if err != nil {
		return d.failureFromError(c, err)
	}
	return Success("Vamos abrir seu chamado. Qual é a categoria do problema?",
		conversationData(conv))
}

func (d *Dispatcher) conversationStep(
	ctx context.Context,
	userID int64,
	step func(context.Context, models.UserID) (*models.SupportConversation, error),
) Result {
	conv, err := step(ctx, models.UserID(userID))
	if err != nil {
		res := d.failureFromError(nil, err)
		if conv != nil {
			res.Data = conversationData(conv)
		}
		return res
	}
	return Success("Resposta registrada.", conversationData(conv))
}

func (d *Dispatcher) confirmTicket(ctx context.Context, c ConfirmAndCreateTicket) Result {
	t, err := d.conversations.ConfirmAndCreateTicket(ctx, models.UserID(c.UserID))
	if err != nil {
		return d.failureFromError(c, err)
	}
	return Success(fmt.Sprintf("Chamado criado! Seu protocolo é %s.", t.Protocol), map[string]any{
		"ticket_id": t.ID,
		"protocol":  t.Protocol,
		"status":    string(t.Status),
		"urgency":   string(t.Urgency),
	})
}

func (d *Dispatcher) cancelConversation(ctx context.Context, c CancelConversation) Result {
	if _, err := d.conversations.Cancel(ctx, models.UserID(c.UserID), c.Reason); err != nil {
		return d.failureFromError(c, err)
	}
	return Success("Atendimento cancelado. Quando precisar, é só começar de novo.", nil)
}

func conversationData(conv *models.SupportConversation) map[string]any {
	return map[string]any{
		"conversation_id": conv.ID,
		"state":           string(conv.State),
		"step":            conv.CurrentStep,
	}
}

// --- Ticket handlers ---

func (d *Dispatcher) ticketMutation(
	ctx context.Context,
	mutate func(context.Context) (*models.Ticket, error),
	message string,
) Result {
	t, err := mutate(ctx)
	if err != nil {
		return d.failureFromError(nil, err)
	}
	return Success(message, map[string]any{
		"ticket_id": t.ID,
		"protocol":  t.Protocol,
		"status":    string(t.Status),
		"urgency":   string(t.Urgency),
	})
}

// --- User handlers ---

func (d *Dispatcher) banUser(ctx context.Context, c BanUser) Result {
	if err := d.users.Ban(ctx, models.UserID(c.AdminID), models.UserID(c.TargetID), c.Reason); err != nil {
		return d.failureFromError(c, err)
	}
	return Success("Usuário banido.", map[string]any{"user_id": c.TargetID})
}

func (d *Dispatcher) unbanUser(ctx context.Context, c UnbanUser) Result {
	if err := d.users.Unban(ctx, models.UserID(c.AdminID), models.UserID(c.TargetID)); err != nil {
		return d.failureFromError(c, err)
	}
	return Success("Usuário reativado.", map[string]any{"user_id": c.TargetID})
}

// --- Integration handlers ---

func (d *Dispatcher) enqueue(ctx context.Context, in services.EnqueueInput) Result {
	r, err := d.integrations.Enqueue(ctx, in)
	if err != nil {
		return d.failureWithFallback(nil, err, services.CodeScheduleError)
	}
	return Success("Integração agendada.", map[string]any{
		"integration_id": r.ID,
		"type":           string(r.Type),
		"priority":       r.Priority.String(),
		"scheduled_at":   r.ScheduledAt,
	})
}

func (d *Dispatcher) enqueueTyped(ctx context.Context, itype models.IntegrationType, priority string, payload any) Result {
	raw, err := json.Marshal(payload)
	if err != nil {
		d.logger.Error("Failed to marshal integration payload", "type", itype, "error", err)
		return Failure(CodeSystemError)
	}
	return d.enqueue(ctx, services.EnqueueInput{
		Type:     string(itype),
		Priority: priority,
		Payload:  raw,
	})
}

// updateTicketStatusUpstream resolves the ticket's upstream id before
// enqueueing; tickets that never synced cannot receive status pushes.
func (d *Dispatcher) updateTicketStatusUpstream(ctx context.Context, c UpdateTicketStatusInUpstream) Result {
	t, err := d.tickets.Get(ctx, c.TicketID)
	if err != nil {
		return d.failureFromError(c, err)
	}
	if t.UpstreamID == "" {
		return Failure(services.CodeMissingHubsoftID)
	}
	return d.enqueueTyped(ctx, models.IntegrationTypeStatusUpdate, "",
		models.StatusUpdatePayload{TicketID: t.ID, UpstreamID: t.UpstreamID, Status: c.Status})
}

func (d *Dispatcher) retryFailedIntegrations(ctx context.Context) Result {
	ids, err := d.tickets.FailedSyncIDs(ctx)
	if err != nil {
		return d.failureWithFallback(RetryFailedIntegrations{}, err, services.CodeRetryError)
	}
	requeued := 0
	for _, id := range ids {
		res := d.enqueueTyped(ctx, models.IntegrationTypeTicketSync, "",
			models.TicketSyncPayload{TicketID: id})
		if res.OK {
			requeued++
		}
	}
	return Success("Sincronizações com falha reenfileiradas.", map[string]any{"requeued": requeued})
}

func (d *Dispatcher) forceRetry(ctx context.Context, c ForceRetryIntegration) Result {
	r, err := d.integrations.ForceRetry(ctx, c.IntegrationID)
	if err != nil {
		return d.failureWithFallback(c, err, services.CodeRetryError)
	}
	return Success("Nova tentativa autorizada.", integrationData(r))
}

func (d *Dispatcher) cancelIntegration(ctx context.Context, c CancelIntegration) Result {
	r, err := d.integrations.Cancel(ctx, c.IntegrationID)
	if err != nil {
		return d.failureWithFallback(c, err, services.CodeCancelError)
	}
	return Success("Integração cancelada.", integrationData(r))
}

func (d *Dispatcher) updatePriority(ctx context.Context, c UpdateIntegrationPriority) Result {
	r, err := d.integrations.UpdatePriority(ctx, c.IntegrationID, c.Priority)
	if err != nil {
		return d.failureFromError(c, err)
	}
	return Success("Prioridade atualizada.", integrationData(r))
}

func (d *Dispatcher) integrationStatus(ctx context.Context, c GetIntegrationStatus) Result {
	r, err := d.integrations.Get(ctx, c.IntegrationID)
	if err != nil {
		return d.failureFromError(c, err)
	}
	data := integrationData(r)
	data["attempts"] = len(r.Attempts)
	data["max_retries"] = r.MaxRetries
	if r.LastError != "" {
		data["last_error"] = r.LastError
	}
	if r.CompletedAt != nil {
		data["completed_at"] = *r.CompletedAt
	}
	return Success("Situação da integração.", data)
}

func integrationData(r *models.IntegrationRequest) map[string]any {
	return map[string]any{
		"integration_id": r.ID,
		"type":           string(r.Type),
		"status":         string(r.Status),
		"priority":       r.Priority.String(),
		"scheduled_at":   r.ScheduledAt,
	}
}

// failureFromError maps a service error onto the Result envelope. Anything
// without a stable code is unexpected and becomes system_error.
func (d *Dispatcher) failureFromError(cmd Command, err error) Result {
	return d.failureWithFallback(cmd, err, CodeSystemError)
}

// failureWithFallback is failureFromError with an operation-specific code for
// errors that carry no stable one, so scheduler failures surface as
// schedule_error / retry_error / cancel_error instead of system_error.
// Structured details on the error (such as retry_after) ride along in Data.
func (d *Dispatcher) failureWithFallback(cmd Command, err error, fallback string) Result {
	if code := services.ErrorCode(err); code != "" {
		if data := services.ErrorData(err); len(data) > 0 {
			return FailureWithData(code, data)
		}
		return Failure(code)
	}
	if services.IsValidationError(err) {
		return Failure(CodeInvalidInput)
	}
	name := "unknown"
	if cmd != nil {
		name = cmd.CommandName()
	}
	d.logger.Error("Unexpected service error", "command", name, "error", err, "code", fallback)
	return Failure(fallback)
}
