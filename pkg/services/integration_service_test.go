package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/pkg/models"
)

func ticketSyncPayload(t *testing.T, ticketID string) json.RawMessage {
	t.Helper()
	p, err := json.Marshal(models.TicketSyncPayload{TicketID: ticketID})
	require.NoError(t, err)
	return p
}

func TestIntegrationService_Enqueue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.integrations.Enqueue(ctx, EnqueueInput{
		Type:    "ticket_sync",
		Payload: ticketSyncPayload(t, "t-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationStatusPending, r.Status)
	assert.Equal(t, models.IntegrationPriorityNormal, r.Priority, "priority defaults to normal")
	assert.Equal(t, models.DefaultIntegrationMaxRetries, r.MaxRetries)

	stored, err := f.integrations.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ScheduledAt, stored.ScheduledAt)
}

func TestIntegrationService_EnqueueValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		input    EnqueueInput
		wantCode string
	}{
		{
			name:     "unknown type",
			input:    EnqueueInput{Type: "teleport", Payload: ticketSyncPayload(t, "t-1")},
			wantCode: CodeInvalidSyncType,
		},
		{
			name:     "unknown priority",
			input:    EnqueueInput{Type: "ticket_sync", Priority: "urgent", Payload: ticketSyncPayload(t, "t-1")},
			wantCode: CodeInvalidPriority,
		},
		{
			name: "bulk sync without tickets",
			input: EnqueueInput{Type: "bulk_sync",
				Payload: json.RawMessage(`{"ticket_ids":[]}`)},
			wantCode: CodeEmptyTicketList,
		},
		{
			name: "status update without upstream id",
			input: EnqueueInput{Type: "status_update",
				Payload: json.RawMessage(`{"ticket_id":"t-1","status":"fechado"}`)},
			wantCode: CodeMissingHubsoftID,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.integrations.Enqueue(ctx, tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, ErrorCode(err))
		})
	}

	t.Run("bulk sync over the cap", func(t *testing.T) {
		ids := make([]string, MaxBulkTickets+1)
		for i := range ids {
			ids[i] = "t"
		}
		p, err := json.Marshal(models.BulkSyncPayload{TicketIDs: ids})
		require.NoError(t, err)
		_, err = f.integrations.Enqueue(ctx, EnqueueInput{Type: "bulk_sync", Payload: p})
		require.Error(t, err)
		assert.Equal(t, CodeBulkLimitExceeded, ErrorCode(err))
	})

	t.Run("ticket sync without ticket id", func(t *testing.T) {
		_, err := f.integrations.Enqueue(ctx, EnqueueInput{Type: "ticket_sync", Payload: json.RawMessage(`{}`)})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestIntegrationService_Cancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.integrations.Enqueue(ctx, EnqueueInput{Type: "ticket_sync", Payload: ticketSyncPayload(t, "t-1")})
	require.NoError(t, err)

	t.Run("pending cancels", func(t *testing.T) {
		got, err := f.integrations.Cancel(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, models.IntegrationStatusCancelled, got.Status)
	})

	t.Run("terminal rejects", func(t *testing.T) {
		_, err := f.integrations.Cancel(ctx, r.ID)
		require.Error(t, err)
		assert.Equal(t, CodeCannotCancelTerminal, ErrorCode(err))
	})

	t.Run("in-progress rejects", func(t *testing.T) {
		running, err := f.integrations.Enqueue(ctx, EnqueueInput{Type: "ticket_sync", Payload: ticketSyncPayload(t, "t-2")})
		require.NoError(t, err)
		err = f.client.IntegrationRequest.UpdateOneID(running.ID).
			SetStatus(integrationrequest.StatusInProgress).
			Exec(ctx)
		require.NoError(t, err)

		_, err = f.integrations.Cancel(ctx, running.ID)
		require.Error(t, err)
		assert.Equal(t, CodeCannotCancelRunning, ErrorCode(err))
	})
}

func TestIntegrationService_UpdatePriority(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.integrations.Enqueue(ctx, EnqueueInput{Type: "ticket_sync", Payload: ticketSyncPayload(t, "t-1")})
	require.NoError(t, err)

	got, err := f.integrations.UpdatePriority(ctx, r.ID, "critical")
	require.NoError(t, err)
	assert.Equal(t, models.IntegrationPriorityCritical, got.Priority)

	t.Run("completed request cannot move", func(t *testing.T) {
		err := f.client.IntegrationRequest.UpdateOneID(r.ID).
			SetStatus(integrationrequest.StatusCompleted).
			Exec(ctx)
		require.NoError(t, err)

		_, err = f.integrations.UpdatePriority(ctx, r.ID, "low")
		require.Error(t, err)
		assert.Equal(t, CodeInvalidTransition, ErrorCode(err))
	})
}

func TestIntegrationService_ForceRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.integrations.Enqueue(ctx, EnqueueInput{Type: "ticket_sync", Payload: ticketSyncPayload(t, "t-1")})
	require.NoError(t, err)

	t.Run("only failed requests qualify", func(t *testing.T) {
		_, err := f.integrations.ForceRetry(ctx, r.ID)
		require.Error(t, err)
		assert.Equal(t, CodeRetriesNotExhausted, ErrorCode(err))
	})

	t.Run("failed request is requeued immediately", func(t *testing.T) {
		err := f.client.IntegrationRequest.UpdateOneID(r.ID).
			SetStatus(integrationrequest.StatusFailed).
			SetLastError("upstream down").
			SetCompletedAt(f.clock.Now()).
			Exec(ctx)
		require.NoError(t, err)

		got, err := f.integrations.ForceRetry(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, models.IntegrationStatusScheduled, got.Status)
		assert.True(t, got.ForceRetry)
		assert.Nil(t, got.CompletedAt)
		assert.False(t, got.ScheduledAt.After(f.clock.Now()))
	})
}
