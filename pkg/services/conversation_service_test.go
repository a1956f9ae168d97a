package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/models"
)

func TestConversationService_RequiresVerifiedUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.conversations.Start(ctx, 999)
		require.Error(t, err)
		assert.Equal(t, CodeUserNotVerified, ErrorCode(err))
	})

	t.Run("pending-verification user", func(t *testing.T) {
		_, err := f.users.GetOrCreate(ctx, 5, "pend")
		require.NoError(t, err)
		_, err = f.conversations.Start(ctx, 5)
		require.Error(t, err)
		assert.Equal(t, CodeUserNotVerified, ErrorCode(err))
	})
}

func TestConversationService_FullFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 42, "maria")

	c, err := f.conversations.Start(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, models.ConversationStateCategorySelection, c.State)

	_, err = f.conversations.SelectCategory(ctx, 42, "connectivity")
	require.NoError(t, err)
	_, err = f.conversations.SelectGame(ctx, 42, "valorant")
	require.NoError(t, err)
	_, err = f.conversations.SelectTiming(ctx, 42, "now")
	require.NoError(t, err)
	_, err = f.conversations.SetDescription(ctx, 42, "lag spikes every evening since tuesday")
	require.NoError(t, err)
	_, err = f.conversations.AddAttachment(ctx, 42, "file-1", "speedtest.png")
	require.NoError(t, err)
	c, err = f.conversations.SkipAttachments(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, models.ConversationStateConfirmation, c.State)

	ticket, err := f.conversations.ConfirmAndCreateTicket(ctx, 42)
	require.NoError(t, err)

	t.Run("ticket reflects the form", func(t *testing.T) {
		assert.Equal(t, "connectivity", ticket.Category)
		assert.Equal(t, "valorant", ticket.Game)
		assert.Equal(t, models.TicketUrgencyHigh, ticket.Urgency, "recent connectivity problems are high urgency")
		assert.Equal(t, models.TicketStatusPending, ticket.Status)
		assert.Len(t, ticket.Attachments, 1)
		assert.Equal(t, testCPFMasked, ticket.Owner.CPFMasked)
		assert.Regexp(t, `^LOC\d{6}$`, ticket.Protocol)
	})

	t.Run("conversation is closed and linked", func(t *testing.T) {
		_, err := f.conversations.GetActive(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)

		stored, err := f.tickets.Get(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.Protocol, stored.Protocol)
	})

	t.Run("upstream sync is queued", func(t *testing.T) {
		n, err := f.integrations.CountByStatus(ctx, models.IntegrationStatusPending)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("lifecycle events in order", func(t *testing.T) {
		assert.Equal(t, 1, f.recorder.countOf(events.TypeConversationStarted))
		assert.Equal(t, 5, f.recorder.countOf(events.TypeConversationStepCompleted))
		assert.Equal(t, 1, f.recorder.countOf(events.TypeConversationCompleted))
		assert.Equal(t, 1, f.recorder.countOf(events.TypeTicketCreated))
	})
}

func TestConversationService_StepOrderEnforced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 42, "maria")

	_, err := f.conversations.Start(ctx, 42)
	require.NoError(t, err)

	t.Run("cannot skip ahead", func(t *testing.T) {
		_, err := f.conversations.SetDescription(ctx, 42, "jumping past three steps here")
		require.Error(t, err)
		assert.Equal(t, CodeConversationStepMismatch, ErrorCode(err))
	})

	t.Run("cannot repeat a completed step", func(t *testing.T) {
		_, err := f.conversations.SelectCategory(ctx, 42, "connectivity")
		require.NoError(t, err)
		_, err = f.conversations.SelectCategory(ctx, 42, "billing")
		require.Error(t, err)
		assert.Equal(t, CodeConversationStepMismatch, ErrorCode(err))
	})

	t.Run("cannot confirm early", func(t *testing.T) {
		_, err := f.conversations.ConfirmAndCreateTicket(ctx, 42)
		require.Error(t, err)
		assert.Equal(t, CodeConversationStepMismatch, ErrorCode(err))
	})
}

func TestConversationService_OneActivePerUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 42, "maria")

	_, err := f.conversations.Start(ctx, 42)
	require.NoError(t, err)

	_, err = f.conversations.Start(ctx, 42)
	require.Error(t, err)
	assert.Equal(t, CodeConversationAlreadyActive, ErrorCode(err))

	// Cancelling frees the slot.
	_, err = f.conversations.Cancel(ctx, 42, "changed my mind")
	require.NoError(t, err)
	_, err = f.conversations.Start(ctx, 42)
	require.NoError(t, err)
}

func TestConversationService_DescriptionValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 42, "maria")

	_, err := f.conversations.Start(ctx, 42)
	require.NoError(t, err)
	_, err = f.conversations.SelectCategory(ctx, 42, "connectivity")
	require.NoError(t, err)
	_, err = f.conversations.SelectGame(ctx, 42, "cs2")
	require.NoError(t, err)
	_, err = f.conversations.SelectTiming(ctx, 42, "yesterday")
	require.NoError(t, err)

	_, err = f.conversations.SetDescription(ctx, 42, "   short   ")
	require.Error(t, err)
	assert.Equal(t, CodeDescriptionTooShort, ErrorCode(err))

	// The conversation did not advance.
	c, err := f.conversations.GetActive(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, models.ConversationStateDescriptionInput, c.State)
}

func TestConversationService_AttachmentLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 42, "maria")

	_, err := f.conversations.Start(ctx, 42)
	require.NoError(t, err)
	_, err = f.conversations.SelectCategory(ctx, 42, "other")
	require.NoError(t, err)
	_, err = f.conversations.SelectGame(ctx, 42, "lol")
	require.NoError(t, err)
	_, err = f.conversations.SelectTiming(ctx, 42, "always")
	require.NoError(t, err)
	_, err = f.conversations.SetDescription(ctx, 42, "packet loss on every match since forever")
	require.NoError(t, err)

	for i := 0; i < models.MaxConversationAttachments; i++ {
		_, err = f.conversations.AddAttachment(ctx, 42, fmt.Sprintf("file-%d", i), "shot.png")
		require.NoError(t, err)
	}
	_, err = f.conversations.AddAttachment(ctx, 42, "file-extra", "one-too-many.png")
	require.Error(t, err)
	assert.Equal(t, CodeAttachmentLimitReached, ErrorCode(err))
}

func TestConversationService_TimeoutSweep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 42, "maria")

	_, err := f.conversations.Start(ctx, 42)
	require.NoError(t, err)

	t.Run("fresh conversations survive", func(t *testing.T) {
		processed, err := f.conversations.TimeoutSweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, processed)
	})

	t.Run("idle conversations are cancelled as timed out", func(t *testing.T) {
		f.clock.Advance(31 * time.Minute)
		processed, err := f.conversations.TimeoutSweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)
		assert.Equal(t, 1, f.recorder.countOf(events.TypeConversationTimedOut))

		_, err = f.conversations.GetActive(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
