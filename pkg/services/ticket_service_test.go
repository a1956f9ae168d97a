package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/ent/ticket"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// insertTicket seeds a pending ticket row directly, bypassing the
// conversation flow.
func insertTicket(t *testing.T, f *fixture, id string, owner models.UserID) *models.Ticket {
	t.Helper()
	ctx := context.Background()
	now := f.clock.Now()
	_, err := f.client.Ticket.Create().
		SetID(id).
		SetOwnerID(int64(owner)).
		SetOwnerUsername("maria").
		SetOwnerCpfMasked(testCPFMasked).
		SetCategory("connectivity").
		SetGame("valorant").
		SetProblemTiming("now").
		SetDescription("lag spikes every evening").
		SetUrgency(ticket.UrgencyNormal).
		SetStatus(ticket.StatusPending).
		SetProtocol(models.LocalProtocol(id)).
		SetSyncStatus(ticket.SyncStatusPending).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	require.NoError(t, err)

	got, err := f.tickets.Get(ctx, id)
	require.NoError(t, err)
	return got
}

func TestTicketService_Assign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	insertTicket(t, f, "t-1", 42)

	got, err := f.tickets.Assign(ctx, "t-1", "agent.silva")
	require.NoError(t, err)
	assert.Equal(t, "agent.silva", got.Assignee)
	assert.Equal(t, models.TicketStatusInProgress, got.Status, "first assignment activates the ticket")
	assert.Equal(t, 1, f.recorder.countOf(events.TypeTicketAssigned))

	t.Run("reassignment keeps status", func(t *testing.T) {
		got, err := f.tickets.Assign(ctx, "t-1", "agent.costa")
		require.NoError(t, err)
		assert.Equal(t, models.TicketStatusInProgress, got.Status)
	})
}

func TestTicketService_StatusTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	insertTicket(t, f, "t-1", 42)

	t.Run("invalid edge rejected", func(t *testing.T) {
		_, err := f.tickets.ChangeStatus(ctx, "t-1", models.TicketStatusResolved)
		require.Error(t, err)
		assert.Equal(t, CodeInvalidTransition, ErrorCode(err))
	})

	t.Run("resolve then close requires resolution", func(t *testing.T) {
		_, err := f.tickets.ChangeStatus(ctx, "t-1", models.TicketStatusInProgress)
		require.NoError(t, err)
		_, err = f.tickets.ChangeStatus(ctx, "t-1", models.TicketStatusResolved)
		require.NoError(t, err)

		_, err = f.tickets.ChangeStatus(ctx, "t-1", models.TicketStatusClosed)
		require.Error(t, err)
		assert.Equal(t, CodeResolutionMissing, ErrorCode(err))

		got, err := f.tickets.CloseWithResolution(ctx, "t-1", "router replaced")
		require.NoError(t, err)
		assert.Equal(t, models.TicketStatusClosed, got.Status)
		assert.Equal(t, "router replaced", got.Resolution)
		assert.Equal(t, 1, f.recorder.countOf(events.TypeTicketClosed))
	})

	t.Run("closed is terminal", func(t *testing.T) {
		_, err := f.tickets.ChangeStatus(ctx, "t-1", models.TicketStatusOpen)
		require.Error(t, err)
		assert.Equal(t, CodeInvalidTransition, ErrorCode(err))
	})
}

func TestTicketService_UrgencyElevation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	insertTicket(t, f, "t-1", 42)

	got, err := f.tickets.ElevateUrgency(ctx, "t-1", models.TicketUrgencyCritical)
	require.NoError(t, err)
	assert.Equal(t, models.TicketUrgencyCritical, got.Urgency)

	_, err = f.tickets.ElevateUrgency(ctx, "t-1", models.TicketUrgencyLow)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidTransition, ErrorCode(err))
}

func TestTicketService_SyncWithUpstream(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	insertTicket(t, f, "t-1", 42)

	got, err := f.tickets.SyncWithUpstream(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, "hub-1", got.UpstreamID)
	assert.NotRegexp(t, `^LOC`, got.Protocol, "upstream protocol replaces the local one")
	assert.Equal(t, models.SyncStatusSynced, got.Sync)
	assert.Equal(t, 1, f.recorder.countOf(events.TypeTicketSynced))

	t.Run("re-sync is a no-op", func(t *testing.T) {
		again, err := f.tickets.SyncWithUpstream(ctx, "t-1")
		require.NoError(t, err)
		assert.Equal(t, "hub-1", again.UpstreamID)
		assert.Equal(t, 1, f.hub.CallCount("CreateTicket"))
	})
}

func TestTicketService_SyncFailureFlagged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	insertTicket(t, f, "t-1", 42)

	f.hub.FailNext(&hubsoft.APIError{StatusCode: 503, Code: "upstream_unavailable", Retryable: true})
	got, err := f.tickets.SyncWithUpstream(ctx, "t-1")
	require.Error(t, err)
	assert.Equal(t, models.SyncStatusFailed, got.Sync)
	assert.Empty(t, got.UpstreamID)
	assert.Regexp(t, `^LOC`, got.Protocol, "local protocol survives a failed sync")

	stored, err := f.tickets.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusFailed, stored.Sync)
}

func TestTicketService_Messages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	insertTicket(t, f, "t-1", 42)

	got, err := f.tickets.AddMessage(ctx, "t-1", "maria", "any news on this?")
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "maria", got.Messages[0].Author)

	stored, err := f.tickets.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.Len(t, stored.Messages, 1)
}

func TestTicketService_ListByOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	insertTicket(t, f, "t-1", 42)
	insertTicket(t, f, "t-2", 42)
	insertTicket(t, f, "t-3", 99)

	_, err := f.tickets.Cancel(ctx, "t-2")
	require.NoError(t, err)

	open, err := f.tickets.ListByOwner(ctx, 42, false)
	require.NoError(t, err)
	assert.Len(t, open, 1)

	all, err := f.tickets.ListByOwner(ctx, 42, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
