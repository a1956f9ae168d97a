package models

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/atlasfibra/backoffice/pkg/events"
)

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
	TicketStatusCancelled  TicketStatus = "cancelled"
)

// IsTerminal reports whether the ticket status is final.
func (s TicketStatus) IsTerminal() bool {
	return s == TicketStatusClosed || s == TicketStatusCancelled
}

// ticketTransitions is the allowed status edge set.
var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusPending:    {TicketStatusOpen, TicketStatusInProgress, TicketStatusCancelled},
	TicketStatusOpen:       {TicketStatusInProgress, TicketStatusResolved, TicketStatusCancelled},
	TicketStatusInProgress: {TicketStatusPending, TicketStatusResolved, TicketStatusCancelled},
	TicketStatusResolved:   {TicketStatusClosed, TicketStatusOpen},
	TicketStatusClosed:     {},
	TicketStatusCancelled:  {},
}

// TicketUrgency orders ticket priority for humans. Elevation is monotonic.
type TicketUrgency string

const (
	TicketUrgencyLow      TicketUrgency = "low"
	TicketUrgencyNormal   TicketUrgency = "normal"
	TicketUrgencyHigh     TicketUrgency = "high"
	TicketUrgencyCritical TicketUrgency = "critical"
)

// urgencyRank maps urgency to a comparable level (higher = more urgent).
var urgencyRank = map[TicketUrgency]int{
	TicketUrgencyLow:      0,
	TicketUrgencyNormal:   1,
	TicketUrgencyHigh:     2,
	TicketUrgencyCritical: 3,
}

// SyncStatus tracks whether the ticket reached the upstream system.
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusFailed  SyncStatus = "failed"
)

// Bounds on embedded ticket collections.
const (
	MaxTicketAttachments = 5
	MaxTicketMessages    = 50
)

// TicketAttachment is a reference to an uploaded file.
type TicketAttachment struct {
	FileID   string    `json:"file_id"`
	FileName string    `json:"file_name,omitempty"`
	AddedAt  time.Time `json:"added_at"`
}

// TicketMessage is one entry in the ticket's bounded message history.
type TicketMessage struct {
	Author string    `json:"author"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// Ticket is the support-ticket aggregate root. The owner is held by
// snapshot; once the upstream id is set it never changes.
type Ticket struct {
	ID            string
	Owner         UserSnapshot
	Category      string
	Game          string
	ProblemTiming string
	Description   string
	Urgency       TicketUrgency
	Status        TicketStatus
	Assignee      string
	Resolution    string
	UpstreamID    string
	Protocol      string
	Sync          SyncStatus
	Attachments   []TicketAttachment
	Messages      []TicketMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time

	pending []events.DomainEvent
}

// NewTicket creates a Pending ticket with a locally minted protocol.
func NewTicket(id string, owner UserSnapshot, category, game, timing, description string, urgency TicketUrgency, now time.Time) *Ticket {
	t := &Ticket{
		ID:            id,
		Owner:         owner,
		Category:      category,
		Game:          game,
		ProblemTiming: timing,
		Description:   description,
		Urgency:       urgency,
		Status:        TicketStatusPending,
		Protocol:      LocalProtocol(id),
		Sync:          SyncStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	t.record(events.NewTicketCreated(id, int64(owner.ID), category, string(urgency), t.Protocol))
	return t
}

// LocalProtocol mints the human-facing LOC###### protocol for a ticket that
// has not synced yet. Derived from the ticket id so it is stable.
func LocalProtocol(ticketID string) string {
	sum := sha256.Sum256([]byte(ticketID))
	n := binary.BigEndian.Uint32(sum[:4]) % 1000000
	return fmt.Sprintf("LOC%06d", n)
}

// DeriveUrgency applies the form-derived urgency rules: recent connectivity
// problems are High, long-standing problems are Low, everything else Normal.
func DeriveUrgency(category, timing string) TicketUrgency {
	switch timing {
	case "now", "yesterday":
		if category == "connectivity" {
			return TicketUrgencyHigh
		}
	case "long_time", "always":
		return TicketUrgencyLow
	}
	return TicketUrgencyNormal
}

// CanTransitionTo reports whether the status edge exists in the graph.
func (t *Ticket) CanTransitionTo(next TicketStatus) bool {
	for _, allowed := range ticketTransitions[t.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ChangeStatus moves the ticket along an allowed edge. Entering Closed
// requires resolution notes (the resolve-then-close path).
func (t *Ticket) ChangeStatus(next TicketStatus, now time.Time) error {
	if !t.CanTransitionTo(next) {
		return fmt.Errorf("ticket %s: invalid status transition %s -> %s", t.ID, t.Status, next)
	}
	if next == TicketStatusClosed && t.Resolution == "" {
		return fmt.Errorf("ticket %s: resolution notes required to close", t.ID)
	}
	from := t.Status
	t.Status = next
	t.UpdatedAt = now
	t.record(events.NewTicketStatusChanged(t.ID, string(from), string(next)))
	if next == TicketStatusOpen && from == TicketStatusResolved {
		t.record(events.NewTicketReopened(t.ID))
	}
	return nil
}

// Assign sets the assignee; the first assignment moves Pending to InProgress.
func (t *Ticket) Assign(assignee string, now time.Time) error {
	if t.Status.IsTerminal() {
		return fmt.Errorf("ticket %s: cannot assign in terminal status %s", t.ID, t.Status)
	}
	first := t.Assignee == ""
	t.Assignee = assignee
	t.UpdatedAt = now
	t.record(events.NewTicketAssigned(t.ID, assignee))
	if first && t.Status == TicketStatusPending {
		return t.ChangeStatus(TicketStatusInProgress, now)
	}
	return nil
}

// ElevateUrgency raises urgency monotonically; lowering is rejected.
func (t *Ticket) ElevateUrgency(next TicketUrgency, now time.Time) error {
	if urgencyRank[next] <= urgencyRank[t.Urgency] {
		return fmt.Errorf("ticket %s: urgency can only be elevated (%s -> %s)", t.ID, t.Urgency, next)
	}
	from := t.Urgency
	t.Urgency = next
	t.UpdatedAt = now
	t.record(events.NewTicketUrgencyElevated(t.ID, string(from), string(next)))
	return nil
}

// CloseWithResolution records resolution notes on a Resolved ticket and
// closes it.
func (t *Ticket) CloseWithResolution(resolution string, now time.Time) error {
	if t.Status != TicketStatusResolved {
		return fmt.Errorf("ticket %s: close requires Resolved status, have %s", t.ID, t.Status)
	}
	if resolution == "" {
		return fmt.Errorf("ticket %s: resolution notes required to close", t.ID)
	}
	t.Resolution = resolution
	if err := t.ChangeStatus(TicketStatusClosed, now); err != nil {
		return err
	}
	t.record(events.NewTicketClosed(t.ID, resolution))
	return nil
}

// MarkSynced sets the upstream id and protocol atomically, exactly once.
func (t *Ticket) MarkSynced(upstreamID, protocol string, now time.Time) error {
	if upstreamID == "" {
		return fmt.Errorf("ticket %s: upstream id required", t.ID)
	}
	if t.UpstreamID != "" && t.UpstreamID != upstreamID {
		return fmt.Errorf("ticket %s: upstream id is immutable once set", t.ID)
	}
	t.UpstreamID = upstreamID
	if protocol != "" {
		t.Protocol = protocol
	}
	t.Sync = SyncStatusSynced
	t.UpdatedAt = now
	t.record(events.NewTicketSyncedWithUpstream(t.ID, upstreamID, t.Protocol))
	return nil
}

// MarkSyncFailed flags the ticket as not having reached the upstream.
func (t *Ticket) MarkSyncFailed(now time.Time) {
	t.Sync = SyncStatusFailed
	t.UpdatedAt = now
}

// AddAttachment appends to the bounded attachment list.
func (t *Ticket) AddAttachment(a TicketAttachment) error {
	if len(t.Attachments) >= MaxTicketAttachments {
		return fmt.Errorf("ticket %s: attachment limit (%d) reached", t.ID, MaxTicketAttachments)
	}
	t.Attachments = append(t.Attachments, a)
	return nil
}

// AddMessage appends to the bounded message history.
func (t *Ticket) AddMessage(m TicketMessage) error {
	if len(t.Messages) >= MaxTicketMessages {
		return fmt.Errorf("ticket %s: message history limit (%d) reached", t.ID, MaxTicketMessages)
	}
	t.Messages = append(t.Messages, m)
	t.UpdatedAt = m.SentAt
	return nil
}

func (t *Ticket) record(e events.DomainEvent) {
	t.pending = append(t.pending, e)
}

// PendingEvents returns the collected events without draining them.
func (t *Ticket) PendingEvents() []events.DomainEvent {
	return t.pending
}

// DrainEvents returns and clears the pending events after a successful save.
func (t *Ticket) DrainEvents() []events.DomainEvent {
	out := t.pending
	t.pending = nil
	return out
}
