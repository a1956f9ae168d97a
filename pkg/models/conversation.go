package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/atlasfibra/backoffice/pkg/events"
)

// ConversationState is the current step of a support-form conversation.
// The machine is linear; the only backward move is Cancel.
type ConversationState string

const (
	ConversationStateCategorySelection   ConversationState = "category_selection"
	ConversationStateGameSelection       ConversationState = "game_selection"
	ConversationStateTimingSelection     ConversationState = "timing_selection"
	ConversationStateDescriptionInput    ConversationState = "description_input"
	ConversationStateAttachmentsOptional ConversationState = "attachments_optional"
	ConversationStateConfirmation        ConversationState = "confirmation"
	ConversationStateCompleted           ConversationState = "completed"
	ConversationStateCancelled           ConversationState = "cancelled"
)

// conversationSteps maps each active state to its 1-based step number.
var conversationSteps = map[ConversationState]int{
	ConversationStateCategorySelection:   1,
	ConversationStateGameSelection:       2,
	ConversationStateTimingSelection:     3,
	ConversationStateDescriptionInput:    4,
	ConversationStateAttachmentsOptional: 5,
	ConversationStateConfirmation:        6,
}

// Conversation form bounds.
const (
	MaxConversationAttachments = 3
	MinDescriptionLength       = 10
	// ConversationIdleTimeout is the default inactivity window before a
	// conversation is cancelled by the timeout sweep.
	ConversationIdleTimeout = 30 * time.Minute
)

// ConversationFormData accumulates the support-form answers.
type ConversationFormData struct {
	Category    string             `json:"category,omitempty"`
	Game        string             `json:"game,omitempty"`
	Timing      string             `json:"timing,omitempty"`
	Description string             `json:"description,omitempty"`
	Attachments []TicketAttachment `json:"attachments,omitempty"`
}

// IsComplete reports whether all required answers are present.
func (f ConversationFormData) IsComplete() bool {
	return f.Category != "" && f.Game != "" && f.Timing != "" && f.Description != ""
}

// SupportConversation is the multi-step support-form aggregate root.
type SupportConversation struct {
	ID           string
	Owner        UserSnapshot
	State        ConversationState
	CurrentStep  int
	Form         ConversationFormData
	IsActive     bool
	TicketID     string
	StartedAt    time.Time
	LastActiveAt time.Time

	pending []events.DomainEvent
}

// NewSupportConversation starts a conversation at the category step.
func NewSupportConversation(id string, owner UserSnapshot, now time.Time) *SupportConversation {
	c := &SupportConversation{
		ID:           id,
		Owner:        owner,
		State:        ConversationStateCategorySelection,
		CurrentStep:  1,
		IsActive:     true,
		StartedAt:    now,
		LastActiveAt: now,
	}
	c.record(events.NewConversationStarted(id, int64(owner.ID)))
	return c
}

// IsIdle reports whether the conversation exceeded the idle window.
func (c *SupportConversation) IsIdle(now time.Time, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = ConversationIdleTimeout
	}
	return c.IsActive && now.Sub(c.LastActiveAt) > timeout
}

// SelectCategory answers step 1 and advances to game selection.
func (c *SupportConversation) SelectCategory(category string, now time.Time) error {
	if err := c.requireState(ConversationStateCategorySelection); err != nil {
		return err
	}
	c.Form.Category = category
	c.advance(ConversationStateGameSelection, now)
	return nil
}

// SelectGame answers step 2 and advances to timing selection.
func (c *SupportConversation) SelectGame(game string, now time.Time) error {
	if err := c.requireState(ConversationStateGameSelection); err != nil {
		return err
	}
	c.Form.Game = game
	c.advance(ConversationStateTimingSelection, now)
	return nil
}

// SelectTiming answers step 3 and advances to description input.
func (c *SupportConversation) SelectTiming(timing string, now time.Time) error {
	if err := c.requireState(ConversationStateTimingSelection); err != nil {
		return err
	}
	c.Form.Timing = timing
	c.advance(ConversationStateDescriptionInput, now)
	return nil
}

// SetDescription answers step 4; the trimmed text must have at least
// MinDescriptionLength characters.
func (c *SupportConversation) SetDescription(description string, now time.Time) error {
	if err := c.requireState(ConversationStateDescriptionInput); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(description)
	if len(trimmed) < MinDescriptionLength {
		return fmt.Errorf("conversation %s: description must have at least %d characters", c.ID, MinDescriptionLength)
	}
	c.Form.Description = trimmed
	c.advance(ConversationStateAttachmentsOptional, now)
	return nil
}

// AddAttachment appends an attachment during the optional attachments step.
func (c *SupportConversation) AddAttachment(a TicketAttachment, now time.Time) error {
	if err := c.requireState(ConversationStateAttachmentsOptional); err != nil {
		return err
	}
	if len(c.Form.Attachments) >= MaxConversationAttachments {
		return fmt.Errorf("conversation %s: attachment limit (%d) reached", c.ID, MaxConversationAttachments)
	}
	c.Form.Attachments = append(c.Form.Attachments, a)
	c.LastActiveAt = now
	return nil
}

// SkipAttachments moves from the attachments step to confirmation.
func (c *SupportConversation) SkipAttachments(now time.Time) error {
	return c.ProceedToConfirmation(now)
}

// ProceedToConfirmation advances to the confirmation step.
func (c *SupportConversation) ProceedToConfirmation(now time.Time) error {
	if err := c.requireState(ConversationStateAttachmentsOptional); err != nil {
		return err
	}
	c.advance(ConversationStateConfirmation, now)
	return nil
}

// Complete marks the conversation done and links the produced ticket.
// The form must be complete and the machine must be at confirmation.
func (c *SupportConversation) Complete(ticketID string, now time.Time) error {
	if err := c.requireState(ConversationStateConfirmation); err != nil {
		return err
	}
	if !c.Form.IsComplete() {
		return fmt.Errorf("conversation %s: form incomplete", c.ID)
	}
	c.State = ConversationStateCompleted
	c.IsActive = false
	c.TicketID = ticketID
	c.LastActiveAt = now
	c.record(events.NewConversationCompleted(c.ID, int64(c.Owner.ID), ticketID))
	return nil
}

// Cancel aborts an active conversation.
func (c *SupportConversation) Cancel(reason string, now time.Time) error {
	if !c.IsActive {
		return fmt.Errorf("conversation %s: already inactive (%s)", c.ID, c.State)
	}
	c.State = ConversationStateCancelled
	c.IsActive = false
	c.LastActiveAt = now
	if reason == "timeout" {
		c.record(events.NewConversationTimedOut(c.ID, int64(c.Owner.ID)))
	} else {
		c.record(events.NewConversationCancelled(c.ID, int64(c.Owner.ID), reason))
	}
	return nil
}

// requireState enforces the linear ordering of steps.
func (c *SupportConversation) requireState(want ConversationState) error {
	if !c.IsActive {
		return fmt.Errorf("conversation %s: inactive (%s)", c.ID, c.State)
	}
	if c.State != want {
		return fmt.Errorf("conversation %s: step mismatch, at %s but operation requires %s", c.ID, c.State, want)
	}
	return nil
}

// advance records the completed step and moves to the next state.
func (c *SupportConversation) advance(next ConversationState, now time.Time) {
	completedStep := c.CurrentStep
	c.State = next
	c.CurrentStep = conversationSteps[next]
	c.LastActiveAt = now
	c.record(events.NewConversationStepCompleted(c.ID, int64(c.Owner.ID), completedStep, string(next)))
}

func (c *SupportConversation) record(e events.DomainEvent) {
	c.pending = append(c.pending, e)
}

// PendingEvents returns the collected events without draining them.
func (c *SupportConversation) PendingEvents() []events.DomainEvent {
	return c.pending
}

// DrainEvents returns and clears the pending events after a successful save.
func (c *SupportConversation) DrainEvents() []events.DomainEvent {
	out := c.pending
	c.pending = nil
	return out
}
