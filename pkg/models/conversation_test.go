package models

import (
	"testing"
	"time"

	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConversation(now time.Time) *SupportConversation {
	return NewSupportConversation("c-1", UserSnapshot{ID: 100, Username: "alice"}, now)
}

func fillConversation(t *testing.T, c *SupportConversation, now time.Time) {
	t.Helper()
	require.NoError(t, c.SelectCategory("connectivity", now))
	require.NoError(t, c.SelectGame("valorant", now))
	require.NoError(t, c.SelectTiming("now", now))
	require.NoError(t, c.SetDescription("lag spikes every evening", now))
	require.NoError(t, c.SkipAttachments(now))
}

func TestSupportConversation_LinearFlow(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	c := newTestConversation(now)

	assert.Equal(t, ConversationStateCategorySelection, c.State)
	assert.Equal(t, 1, c.CurrentStep)
	assert.True(t, c.IsActive)

	fillConversation(t, c, now)
	assert.Equal(t, ConversationStateConfirmation, c.State)
	assert.Equal(t, 6, c.CurrentStep)

	require.NoError(t, c.Complete("t-1", now))
	assert.Equal(t, ConversationStateCompleted, c.State)
	assert.False(t, c.IsActive)
	assert.Equal(t, "t-1", c.TicketID)
}

func TestSupportConversation_StepsCannotBeSkipped(t *testing.T) {
	now := time.Now().UTC()
	c := newTestConversation(now)

	assert.Error(t, c.SelectGame("valorant", now), "game before category")
	assert.Error(t, c.SetDescription("a long enough description", now))
	assert.Error(t, c.ProceedToConfirmation(now))
	assert.Error(t, c.Complete("t-1", now))

	require.NoError(t, c.SelectCategory("connectivity", now))
	assert.Error(t, c.SelectCategory("billing", now), "steps cannot be repeated")
}

func TestSupportConversation_DescriptionValidation(t *testing.T) {
	now := time.Now().UTC()
	c := newTestConversation(now)
	require.NoError(t, c.SelectCategory("connectivity", now))
	require.NoError(t, c.SelectGame("cs2", now))
	require.NoError(t, c.SelectTiming("yesterday", now))

	assert.Error(t, c.SetDescription("short", now))
	assert.Error(t, c.SetDescription("         x         ", now), "whitespace does not count")
	require.NoError(t, c.SetDescription("  connection drops at night  ", now))
	assert.Equal(t, "connection drops at night", c.Form.Description, "stored trimmed")
}

func TestSupportConversation_AttachmentCap(t *testing.T) {
	now := time.Now().UTC()
	c := newTestConversation(now)
	require.NoError(t, c.SelectCategory("connectivity", now))
	require.NoError(t, c.SelectGame("cs2", now))
	require.NoError(t, c.SelectTiming("now", now))
	require.NoError(t, c.SetDescription("upload speed way below plan", now))

	for i := 0; i < MaxConversationAttachments; i++ {
		require.NoError(t, c.AddAttachment(TicketAttachment{FileID: "f", AddedAt: now}, now))
	}
	assert.Error(t, c.AddAttachment(TicketAttachment{FileID: "overflow", AddedAt: now}, now))

	require.NoError(t, c.ProceedToConfirmation(now))
	require.NoError(t, c.Complete("t-9", now))
	assert.Len(t, c.Form.Attachments, MaxConversationAttachments)
}

func TestSupportConversation_Cancel(t *testing.T) {
	now := time.Now().UTC()

	t.Run("explicit cancel emits cancelled", func(t *testing.T) {
		c := newTestConversation(now)
		c.DrainEvents()
		require.NoError(t, c.Cancel("user request", now))
		assert.False(t, c.IsActive)

		evts := c.DrainEvents()
		require.Len(t, evts, 1)
		assert.Equal(t, events.TypeConversationCancelled, evts[0].EventType())
	})

	t.Run("timeout cancel emits timed out", func(t *testing.T) {
		c := newTestConversation(now)
		c.DrainEvents()
		require.NoError(t, c.Cancel("timeout", now))

		evts := c.DrainEvents()
		require.Len(t, evts, 1)
		assert.Equal(t, events.TypeConversationTimedOut, evts[0].EventType())
	})

	t.Run("inactive conversation rejects everything", func(t *testing.T) {
		c := newTestConversation(now)
		require.NoError(t, c.Cancel("user request", now))
		assert.Error(t, c.Cancel("again", now))
		assert.Error(t, c.SelectCategory("connectivity", now))
	})
}

func TestSupportConversation_IdleDetection(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	c := newTestConversation(now)

	assert.False(t, c.IsIdle(now.Add(29*time.Minute), ConversationIdleTimeout))
	assert.True(t, c.IsIdle(now.Add(31*time.Minute), ConversationIdleTimeout))

	require.NoError(t, c.SelectCategory("connectivity", now.Add(20*time.Minute)))
	assert.False(t, c.IsIdle(now.Add(31*time.Minute), ConversationIdleTimeout), "activity resets the idle clock")

	require.NoError(t, c.Cancel("timeout", now.Add(time.Hour)))
	assert.False(t, c.IsIdle(now.Add(2*time.Hour), ConversationIdleTimeout), "inactive conversations are never idle")
}

func TestSupportConversation_StepEvents(t *testing.T) {
	now := time.Now().UTC()
	c := newTestConversation(now)
	fillConversation(t, c, now)
	require.NoError(t, c.Complete("t-1", now))

	evts := c.DrainEvents()
	var steps int
	for _, e := range evts {
		if e.EventType() == events.TypeConversationStepCompleted {
			steps++
		}
	}
	assert.Equal(t, 5, steps, "five advances from category to confirmation")
	assert.Equal(t, events.TypeConversationStarted, evts[0].EventType())
	assert.Equal(t, events.TypeConversationCompleted, evts[len(evts)-1].EventType())
}
