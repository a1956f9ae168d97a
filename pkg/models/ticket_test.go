package models

import (
	"strings"
	"testing"
	"time"

	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTicket(now time.Time) *Ticket {
	owner := UserSnapshot{ID: 100, Username: "alice"}
	return NewTicket("t-1", owner, "connectivity", "valorant", "now", "internet drops every night", TicketUrgencyHigh, now)
}

func TestTicket_StatusGraph(t *testing.T) {
	now := time.Now().UTC()

	valid := []struct {
		from, to TicketStatus
	}{
		{TicketStatusPending, TicketStatusOpen},
		{TicketStatusPending, TicketStatusInProgress},
		{TicketStatusPending, TicketStatusCancelled},
		{TicketStatusOpen, TicketStatusInProgress},
		{TicketStatusOpen, TicketStatusResolved},
		{TicketStatusOpen, TicketStatusCancelled},
		{TicketStatusInProgress, TicketStatusPending},
		{TicketStatusInProgress, TicketStatusResolved},
		{TicketStatusInProgress, TicketStatusCancelled},
		{TicketStatusResolved, TicketStatusOpen},
	}
	for _, tc := range valid {
		tk := newTestTicket(now)
		tk.Status = tc.from
		assert.True(t, tk.CanTransitionTo(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	invalid := []struct {
		from, to TicketStatus
	}{
		{TicketStatusPending, TicketStatusResolved},
		{TicketStatusPending, TicketStatusClosed},
		{TicketStatusOpen, TicketStatusPending},
		{TicketStatusResolved, TicketStatusInProgress},
		{TicketStatusClosed, TicketStatusOpen},
		{TicketStatusCancelled, TicketStatusPending},
	}
	for _, tc := range invalid {
		tk := newTestTicket(now)
		tk.Status = tc.from
		assert.False(t, tk.CanTransitionTo(tc.to), "%s -> %s must be rejected", tc.from, tc.to)
		assert.Error(t, tk.ChangeStatus(tc.to, now))
	}
}

func TestTicket_ResolveThenClose(t *testing.T) {
	now := time.Now().UTC()
	tk := newTestTicket(now)
	tk.Status = TicketStatusResolved
	tk.DrainEvents()

	t.Run("close without resolution notes is rejected", func(t *testing.T) {
		assert.Error(t, tk.ChangeStatus(TicketStatusClosed, now))
		assert.Error(t, tk.CloseWithResolution("", now))
	})

	t.Run("close with resolution succeeds and emits closed", func(t *testing.T) {
		require.NoError(t, tk.CloseWithResolution("router replaced", now))
		assert.Equal(t, TicketStatusClosed, tk.Status)

		evts := tk.DrainEvents()
		var sawClosed bool
		for _, e := range evts {
			if e.EventType() == events.TypeTicketClosed {
				sawClosed = true
			}
		}
		assert.True(t, sawClosed)
	})

	t.Run("close requires resolved", func(t *testing.T) {
		fresh := newTestTicket(now)
		assert.Error(t, fresh.CloseWithResolution("done", now))
	})
}

func TestTicket_Assign(t *testing.T) {
	now := time.Now().UTC()

	t.Run("first assign moves pending to in_progress", func(t *testing.T) {
		tk := newTestTicket(now)
		require.NoError(t, tk.Assign("tech.joao", now))
		assert.Equal(t, "tech.joao", tk.Assignee)
		assert.Equal(t, TicketStatusInProgress, tk.Status)
	})

	t.Run("reassign keeps status", func(t *testing.T) {
		tk := newTestTicket(now)
		require.NoError(t, tk.Assign("tech.joao", now))
		require.NoError(t, tk.Assign("tech.maria", now))
		assert.Equal(t, TicketStatusInProgress, tk.Status)
	})

	t.Run("assign on terminal ticket fails", func(t *testing.T) {
		tk := newTestTicket(now)
		tk.Status = TicketStatusClosed
		assert.Error(t, tk.Assign("tech.joao", now))
	})
}

func TestTicket_UrgencyIsMonotonic(t *testing.T) {
	now := time.Now().UTC()
	tk := newTestTicket(now)
	tk.Urgency = TicketUrgencyNormal

	require.NoError(t, tk.ElevateUrgency(TicketUrgencyCritical, now))
	assert.Error(t, tk.ElevateUrgency(TicketUrgencyHigh, now), "lowering is rejected")
	assert.Error(t, tk.ElevateUrgency(TicketUrgencyCritical, now), "same level is rejected")
}

func TestTicket_UpstreamIDImmutable(t *testing.T) {
	now := time.Now().UTC()
	tk := newTestTicket(now)

	require.NoError(t, tk.MarkSynced("hub-1", "202608/000123", now))
	assert.Equal(t, SyncStatusSynced, tk.Sync)
	assert.Equal(t, "202608/000123", tk.Protocol)

	assert.Error(t, tk.MarkSynced("hub-2", "x", now))
	require.NoError(t, tk.MarkSynced("hub-1", "202608/000123", now), "idempotent re-sync with same id is fine")
}

func TestTicket_BoundedCollections(t *testing.T) {
	now := time.Now().UTC()
	tk := newTestTicket(now)

	for i := 0; i < MaxTicketAttachments; i++ {
		require.NoError(t, tk.AddAttachment(TicketAttachment{FileID: "f", AddedAt: now}))
	}
	assert.Error(t, tk.AddAttachment(TicketAttachment{FileID: "overflow", AddedAt: now}))

	for i := 0; i < MaxTicketMessages; i++ {
		require.NoError(t, tk.AddMessage(TicketMessage{Author: "alice", Text: "oi", SentAt: now}))
	}
	assert.Error(t, tk.AddMessage(TicketMessage{Author: "alice", Text: "overflow", SentAt: now}))
}

func TestLocalProtocol(t *testing.T) {
	p := LocalProtocol("t-1")
	assert.True(t, strings.HasPrefix(p, "LOC"))
	assert.Len(t, p, 9)
	assert.Equal(t, p, LocalProtocol("t-1"), "protocol is stable for the same id")
	assert.NotEqual(t, p, LocalProtocol("t-2"))
}

func TestDeriveUrgency(t *testing.T) {
	cases := []struct {
		category, timing string
		want             TicketUrgency
	}{
		{"connectivity", "now", TicketUrgencyHigh},
		{"connectivity", "yesterday", TicketUrgencyHigh},
		{"billing", "now", TicketUrgencyNormal},
		{"connectivity", "long_time", TicketUrgencyLow},
		{"billing", "always", TicketUrgencyLow},
		{"billing", "last_week", TicketUrgencyNormal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeriveUrgency(tc.category, tc.timing), "%s/%s", tc.category, tc.timing)
	}
}
