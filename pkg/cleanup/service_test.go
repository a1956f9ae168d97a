package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/ent/supportconversation"
	"github.com/atlasfibra/backoffice/ent/ticket"
	"github.com/atlasfibra/backoffice/ent/verificationrequest"
	"github.com/atlasfibra/backoffice/pkg/cache"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/models"
	"github.com/atlasfibra/backoffice/pkg/services"
	"github.com/atlasfibra/backoffice/test/util"
)

type fixture struct {
	client  *ent.Client
	service *Service

	verifications *services.VerificationService
	conversations *services.ConversationService
	tickets       *services.TicketService
	integrations  *services.IntegrationService
	cache         *cache.Cache
}

func newFixture(t *testing.T) *fixture {
	client, _ := util.SetupTestDatabase(t)
	bus := events.NewBus(4, 5*time.Second)
	hub := hubsoft.NewFake()

	f := &fixture{client: client, cache: cache.New(time.Minute, 100)}
	f.integrations = services.NewIntegrationService(client, bus)
	users := services.NewUserService(client, bus)
	dupes := services.NewDuplicateService(client, bus)
	f.verifications = services.NewVerificationService(
		client, bus, hub, users, dupes, config.DefaultVerificationConfig(), "test-salt")
	f.conversations = services.NewConversationService(
		client, bus, f.integrations, config.DefaultConversationConfig())
	f.tickets = services.NewTicketService(client, bus, hub)

	cfg := config.DefaultRetentionConfig()
	f.service = NewService(cfg, f.verifications, f.conversations, f.tickets, f.integrations, f.cache)
	return f
}

func TestService_RunAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	old := time.Now().AddDate(0, 0, -40)

	// Stale pending verification, past its deadline.
	_, err := f.client.VerificationRequest.Create().
		SetID("v-stale").
		SetUserID(1).
		SetUsername("ana").
		SetVerificationType(verificationrequest.VerificationTypeAutoCheckup).
		SetStatus(verificationrequest.StatusPending).
		SetCreatedAt(time.Now().Add(-25 * time.Hour)).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Terminal verification past the retention window.
	_, err = f.client.VerificationRequest.Create().
		SetID("v-ancient").
		SetUserID(2).
		SetVerificationType(verificationrequest.VerificationTypeAutoCheckup).
		SetStatus(verificationrequest.StatusFailed).
		SetCreatedAt(old).
		SetExpiresAt(old.Add(24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Idle active conversation.
	_, err = f.client.SupportConversation.Create().
		SetID("c-idle").
		SetUserID(3).
		SetState(supportconversation.StateGameSelection).
		SetCurrentStep(2).
		SetIsActive(true).
		SetStartedAt(time.Now().Add(-2 * time.Hour)).
		SetLastActiveAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Open ticket whose sync failed.
	_, err = f.client.Ticket.Create().
		SetID("t-failed").
		SetOwnerID(3).
		SetOwnerUsername("bia").
		SetOwnerCpfMasked("111.444.***-**").
		SetCategory("connectivity").
		SetGame("cs2").
		SetProblemTiming("now").
		SetDescription("sync never made it upstream").
		SetUrgency(ticket.UrgencyNormal).
		SetStatus(ticket.StatusPending).
		SetProtocol(models.LocalProtocol("t-failed")).
		SetSyncStatus(ticket.SyncStatusFailed).
		SetCreatedAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	// Closed ticket past retention.
	_, err = f.client.Ticket.Create().
		SetID("t-ancient").
		SetOwnerID(4).
		SetOwnerUsername("caio").
		SetOwnerCpfMasked("529.982.***-**").
		SetCategory("other").
		SetGame("lol").
		SetProblemTiming("before").
		SetDescription("long since resolved").
		SetUrgency(ticket.UrgencyLow).
		SetStatus(ticket.StatusClosed).
		SetProtocol(models.LocalProtocol("t-ancient")).
		SetSyncStatus(ticket.SyncStatusSynced).
		SetCreatedAt(old).
		SetUpdatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	// Completed integration past retention.
	_, err = f.client.IntegrationRequest.Create().
		SetID("i-ancient").
		SetIntegrationType(integrationrequest.IntegrationTypeTicketSync).
		SetStatus(integrationrequest.StatusCompleted).
		SetScheduledAt(old).
		SetCompletedAt(old).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	f.cache.SetWithTTL("dead", "value", -time.Second)

	f.service.RunAll(ctx)

	t.Run("stale verification expired", func(t *testing.T) {
		row, err := f.client.VerificationRequest.Get(ctx, "v-stale")
		require.NoError(t, err)
		assert.Equal(t, verificationrequest.StatusExpired, row.Status)
	})

	t.Run("ancient records purged", func(t *testing.T) {
		_, err := f.client.VerificationRequest.Get(ctx, "v-ancient")
		assert.True(t, ent.IsNotFound(err))
		_, err = f.client.Ticket.Get(ctx, "t-ancient")
		assert.True(t, ent.IsNotFound(err))
		_, err = f.client.IntegrationRequest.Get(ctx, "i-ancient")
		assert.True(t, ent.IsNotFound(err))
	})

	t.Run("idle conversation timed out", func(t *testing.T) {
		row, err := f.client.SupportConversation.Get(ctx, "c-idle")
		require.NoError(t, err)
		assert.False(t, row.IsActive)
		assert.Equal(t, supportconversation.StateCancelled, row.State)
	})

	t.Run("failed sync requeued", func(t *testing.T) {
		n, err := f.integrations.CountByStatus(ctx, models.IntegrationStatusPending)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("expired cache entry dropped", func(t *testing.T) {
		_, ok := f.cache.Get("dead")
		assert.False(t, ok)
	})
}

func TestService_StartStop(t *testing.T) {
	f := newFixture(t)
	f.service.config.CleanupInterval = 10 * time.Millisecond

	f.service.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	f.service.Stop()

	// Stop again is a no-op.
	f.service.Stop()
}