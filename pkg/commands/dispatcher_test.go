package commands

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/ent/ticket"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/cpf"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/services"
	"github.com/atlasfibra/backoffice/test/util"
)

// Checksum-valid CPF used across command tests.
const testCPF = "11144477735"

type fixture struct {
	client       *ent.Client
	dispatcher   *Dispatcher
	hub          *hubsoft.Fake
	users        *services.UserService
	tickets      *services.TicketService
	integrations *services.IntegrationService
}

func newFixture(t *testing.T) *fixture {
	client, _ := util.SetupTestDatabase(t)
	bus := events.NewBus(4, 5*time.Second)
	hub := hubsoft.NewFake()

	users := services.NewUserService(client, bus)
	dupes := services.NewDuplicateService(client, bus)
	verifications := services.NewVerificationService(
		client, bus, hub, users, dupes, config.DefaultVerificationConfig(), "test-salt")
	integrations := services.NewIntegrationService(client, bus)
	conversations := services.NewConversationService(
		client, bus, integrations, config.DefaultConversationConfig())
	tickets := services.NewTicketService(client, bus, hub)

	return &fixture{
		client:       client,
		dispatcher:   NewDispatcher(verifications, conversations, tickets, users, dupes, integrations),
		hub:          hub,
		users:        users,
		tickets:      tickets,
		integrations: integrations,
	}
}

func (f *fixture) seedActiveClient() {
	f.hub.AddClient(testCPF, hubsoft.ClientRecord{
		Name:          "Maria Souza",
		ServiceName:   "Fibra 500MB",
		ServiceStatus: "Serviço Habilitado",
		ServiceID:     "srv-77",
	})
}

// verifyUser drives user 1 through a complete verification.
func (f *fixture) verifyUser(t *testing.T, ctx context.Context, userID int64) {
	t.Helper()
	f.seedActiveClient()
	res := f.dispatcher.Execute(ctx, StartCPFVerification{
		UserID: userID, Username: "maria", VerificationType: "support_request",
	})
	require.True(t, res.OK, "start: %s", res.Message)
	res = f.dispatcher.Execute(ctx, SubmitCPFForVerification{UserID: userID, CPF: testCPF})
	require.True(t, res.OK, "submit: %s", res.Message)
}

// createTicket walks the whole support form and returns the ticket id.
func (f *fixture) createTicket(t *testing.T, ctx context.Context, userID int64) string {
	t.Helper()
	for _, cmd := range []Command{
		StartSupportConversation{UserID: userID},
		SelectCategory{UserID: userID, Category: "connectivity"},
		SelectGame{UserID: userID, Game: "cs2"},
		SelectTiming{UserID: userID, Timing: "today"},
		SetDescription{UserID: userID, Description: "a conexão cai toda noite durante as partidas"},
		SkipAttachments{UserID: userID},
	} {
		res := f.dispatcher.Execute(ctx, cmd)
		require.True(t, res.OK, "%s: %s", cmd.CommandName(), res.Message)
	}
	res := f.dispatcher.Execute(ctx, ConfirmAndCreateTicket{UserID: userID})
	require.True(t, res.OK, res.Message)
	return res.Data["ticket_id"].(string)
}

func TestDispatcher_InputValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.dispatcher.Execute(ctx, StartCPFVerification{Username: "maria", VerificationType: "support_request"})
	assert.False(t, res.OK)
	assert.Equal(t, CodeInvalidInput, res.ErrorCode)
	assert.NotEmpty(t, res.Message)

	res = f.dispatcher.Execute(ctx, StartCPFVerification{
		UserID: 1, Username: "maria", VerificationType: "bogus",
	})
	assert.Equal(t, CodeInvalidVerificationType, res.ErrorCode)

	res = f.dispatcher.Execute(ctx, BulkSyncTicketsToUpstream{})
	assert.Equal(t, CodeInvalidInput, res.ErrorCode)
}

func TestDispatcher_VerificationFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedActiveClient()

	res := f.dispatcher.Execute(ctx, StartCPFVerification{
		UserID: 1, Username: "maria", VerificationType: "support_request",
	})
	require.True(t, res.OK)
	assert.Equal(t, 3, res.Data["attempts_left"])

	t.Run("invalid cpf consumes an attempt", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, SubmitCPFForVerification{UserID: 1, CPF: "12345678900"})
		require.False(t, res.OK)
		assert.Equal(t, services.CodeInvalidCPFFormat, res.ErrorCode)
		assert.Equal(t, "CPF inválido. Confira os 11 dígitos e tente novamente.", res.Message)
		assert.Equal(t, 2, res.Data["attempts_left"])
	})

	t.Run("valid cpf completes", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, SubmitCPFForVerification{UserID: 1, CPF: testCPF})
		require.True(t, res.OK)
		assert.Contains(t, res.Message, "Maria Souza")
		assert.Equal(t, true, res.Data["verified"])
		assert.Equal(t, "111.444.***-**", res.Data["cpf_masked"])
	})

	t.Run("no pending verification afterwards", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, SubmitCPFForVerification{UserID: 1, CPF: testCPF})
		require.False(t, res.OK)
		assert.Equal(t, services.CodeNoPendingVerification, res.ErrorCode)
	})
}

func TestDispatcher_ProcessExpiredVerifications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, userID := range []int64{1, 2} {
		res := f.dispatcher.Execute(ctx, StartCPFVerification{
			UserID: userID, Username: "user", VerificationType: "auto_checkup",
		})
		require.True(t, res.OK, res.Message)
	}

	// Push both requests past their deadline.
	_, err := f.client.VerificationRequest.Update().
		SetExpiresAt(time.Now().UTC().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	res := f.dispatcher.Execute(ctx, ProcessExpiredVerifications{})
	require.True(t, res.OK, res.Message)
	assert.Equal(t, 2, res.Data["processed"])
	assert.Empty(t, res.Data["errors"])
}

func TestDispatcher_ResolveDuplicateMergeCompletesVerification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 1)

	res := f.dispatcher.Execute(ctx, StartCPFVerification{
		UserID: 2, Username: "segundo", VerificationType: "auto_checkup",
	})
	require.True(t, res.OK, res.Message)
	verificationID := res.Data["verification_id"].(string)

	res = f.dispatcher.Execute(ctx, SubmitCPFForVerification{UserID: 2, CPF: testCPF})
	require.False(t, res.OK)
	assert.Equal(t, services.CodeCPFDuplicate, res.ErrorCode)

	parsed, err := cpf.Parse(testCPF)
	require.NoError(t, err)
	res = f.dispatcher.Execute(ctx, ResolveCPFDuplicate{
		CPFHash:        parsed.Hash("test-salt"),
		ClaimantUserID: 2,
		PrimaryUserID:  2,
		VerificationID: verificationID,
		Action:         "merge",
	})
	require.True(t, res.OK, res.Message)
	assert.Equal(t, true, res.Data["verified"])
	assert.Equal(t, verificationID, res.Data["verification_id"])
	assert.Equal(t, "111.444.***-**", res.Data["cpf_masked"])

	t.Run("merge without a verification id only remaps", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, ResolveCPFDuplicate{
			CPFHash:        parsed.Hash("test-salt"),
			ClaimantUserID: 2,
			PrimaryUserID:  2,
			Action:         "merge",
		})
		require.True(t, res.OK, res.Message)
		assert.Nil(t, res.Data)
	})
}

func TestDispatcher_ConversationToTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("unverified users cannot start", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, StartSupportConversation{UserID: 9})
		require.False(t, res.OK)
		assert.Equal(t, services.CodeUserNotVerified, res.ErrorCode)
	})

	f.verifyUser(t, ctx, 1)
	ticketID := f.createTicket(t, ctx, 1)

	row, err := f.tickets.Get(ctx, ticketID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(row.Protocol, "LOC"))

	t.Run("steps out of order are refused", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, StartSupportConversation{UserID: 1})
		require.True(t, res.OK, res.Message)
		res = f.dispatcher.Execute(ctx, SelectGame{UserID: 1, Game: "lol"})
		require.False(t, res.OK)
		assert.Equal(t, services.CodeConversationStepMismatch, res.ErrorCode)
		assert.Equal(t, 1, res.Data["step"])
	})
}

func TestDispatcher_TicketMutations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 1)
	ticketID := f.createTicket(t, ctx, 1)

	res := f.dispatcher.Execute(ctx, ChangeTicketStatus{TicketID: ticketID, Status: "resolved"})
	require.False(t, res.OK, "pending cannot jump to resolved")
	assert.Equal(t, services.CodeInvalidTransition, res.ErrorCode)

	// First assignment moves a pending ticket to in_progress.
	res = f.dispatcher.Execute(ctx, AssignTicket{TicketID: ticketID, Assignee: "suporte-n2"})
	require.True(t, res.OK, res.Message)
	assert.Equal(t, "in_progress", res.Data["status"])

	res = f.dispatcher.Execute(ctx, ElevateTicketUrgency{TicketID: ticketID, Urgency: "high"})
	require.True(t, res.OK, res.Message)

	res = f.dispatcher.Execute(ctx, AddTicketMessage{
		TicketID: ticketID, Author: "suporte-n2", Text: "estamos analisando o sinal da ONU",
	})
	require.True(t, res.OK, res.Message)

	res = f.dispatcher.Execute(ctx, CloseTicketWithResolution{
		TicketID: ticketID, Resolution: "potência ajustada na OLT",
	})
	require.False(t, res.OK, "close requires resolved status")
	assert.Equal(t, services.CodeInvalidTransition, res.ErrorCode)

	res = f.dispatcher.Execute(ctx, ChangeTicketStatus{TicketID: ticketID, Status: "resolved"})
	require.True(t, res.OK, res.Message)

	res = f.dispatcher.Execute(ctx, CloseTicketWithResolution{
		TicketID: ticketID, Resolution: "potência ajustada na OLT",
	})
	require.True(t, res.OK, res.Message)
	assert.Equal(t, "closed", res.Data["status"])

	res = f.dispatcher.Execute(ctx, CancelTicket{TicketID: "missing"})
	require.False(t, res.OK)
	assert.Equal(t, services.CodeTicketNotFound, res.ErrorCode)
}

func TestDispatcher_UserAdministration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.GetOrCreate(ctx, 10, "admin")
	require.NoError(t, err)
	_, err = f.users.GetOrCreate(ctx, 20, "target")
	require.NoError(t, err)

	res := f.dispatcher.Execute(ctx, BanUser{AdminID: 10, TargetID: 20, Reason: "fraude"})
	require.False(t, res.OK)
	assert.Equal(t, services.CodeNotAdmin, res.ErrorCode)

	require.NoError(t, f.users.SetAdmin(ctx, 10, true))

	res = f.dispatcher.Execute(ctx, BanUser{AdminID: 10, TargetID: 10})
	assert.Equal(t, services.CodeCannotBanSelf, res.ErrorCode)

	res = f.dispatcher.Execute(ctx, BanUser{AdminID: 10, TargetID: 20, Reason: "fraude"})
	require.True(t, res.OK, res.Message)

	res = f.dispatcher.Execute(ctx, BanUser{AdminID: 10, TargetID: 20})
	assert.Equal(t, services.CodeUserAlreadyBanned, res.ErrorCode)

	res = f.dispatcher.Execute(ctx, UnbanUser{AdminID: 10, TargetID: 20})
	require.True(t, res.OK, res.Message)
}

func TestDispatcher_IntegrationCommands(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 1)
	ticketID := f.createTicket(t, ctx, 1)

	res := f.dispatcher.Execute(ctx, SyncTicketToUpstream{TicketID: ticketID, Priority: "high"})
	require.True(t, res.OK, res.Message)
	integrationID := res.Data["integration_id"].(string)
	assert.Equal(t, "high", res.Data["priority"])

	t.Run("status query", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, GetIntegrationStatus{IntegrationID: integrationID})
		require.True(t, res.OK, res.Message)
		assert.Equal(t, "ticket_sync", res.Data["type"])
		assert.Equal(t, 0, res.Data["attempts"])
	})

	t.Run("priority change and cancel", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, UpdateIntegrationPriority{
			IntegrationID: integrationID, Priority: "critical",
		})
		require.True(t, res.OK, res.Message)
		assert.Equal(t, "critical", res.Data["priority"])

		res = f.dispatcher.Execute(ctx, CancelIntegration{IntegrationID: integrationID})
		require.True(t, res.OK, res.Message)
		assert.Equal(t, "cancelled", res.Data["status"])

		res = f.dispatcher.Execute(ctx, CancelIntegration{IntegrationID: integrationID})
		require.False(t, res.OK)
		assert.Equal(t, services.CodeCannotCancelTerminal, res.ErrorCode)
	})

	t.Run("status push requires upstream id", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, UpdateTicketStatusInUpstream{
			TicketID: ticketID, Status: "aberto",
		})
		require.False(t, res.OK)
		assert.Equal(t, services.CodeMissingHubsoftID, res.ErrorCode)
	})

	t.Run("force retry needs exhausted retries", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, SyncTicketToUpstream{TicketID: ticketID})
		require.True(t, res.OK, res.Message)
		id := res.Data["integration_id"].(string)

		res = f.dispatcher.Execute(ctx, ForceRetryIntegration{IntegrationID: id})
		require.False(t, res.OK)
		assert.Equal(t, services.CodeRetriesNotExhausted, res.ErrorCode)
	})

	t.Run("schedule with explicit payload", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, ScheduleHubSoftIntegration{
			IntegrationType: "client_data_fetch",
			Payload:         []byte(`{"cpf":"` + testCPF + `"}`),
			MaxRetries:      2,
		})
		require.True(t, res.OK, res.Message)

		res = f.dispatcher.Execute(ctx, ScheduleHubSoftIntegration{IntegrationType: "nope"})
		assert.Equal(t, services.CodeInvalidSyncType, res.ErrorCode)
	})

	t.Run("unknown integration id", func(t *testing.T) {
		res := f.dispatcher.Execute(ctx, GetIntegrationStatus{IntegrationID: "missing"})
		require.False(t, res.OK)
		assert.Equal(t, services.CodeIntegrationNotFound, res.ErrorCode)
	})
}

func TestDispatcher_RetryFailedIntegrations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 1)
	ticketID := f.createTicket(t, ctx, 1)

	err := f.client.Ticket.UpdateOneID(ticketID).
		SetSyncStatus(ticket.SyncStatusFailed).
		Exec(ctx)
	require.NoError(t, err)

	res := f.dispatcher.Execute(ctx, RetryFailedIntegrations{})
	require.True(t, res.OK, res.Message)
	assert.Equal(t, 1, res.Data["requeued"])
}

type bogusCommand struct{}

func (bogusCommand) CommandName() string { return "bogus" }

func TestDispatcher_UnknownCommandIsSystemError(t *testing.T) {
	f := newFixture(t)
	res := f.dispatcher.Execute(context.Background(), bogusCommand{})
	assert.False(t, res.OK)
	assert.Equal(t, CodeSystemError, res.ErrorCode)
}

func TestUserMessage_FallsBackToSystemError(t *testing.T) {
	assert.Equal(t, userMessages[CodeSystemError], UserMessage("no_such_code"))
	assert.NotEmpty(t, UserMessage(services.CodeRateLimited))
}
