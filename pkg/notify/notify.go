// Package notify delivers operational notifications to Slack. It subscribes
// to the notification events on the bus and posts masked messages; personal
// data never reaches the channel.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/masking"
)

// messagePoster is the subset of the Slack API the service uses.
// Satisfied by *slack.Client.
type messagePoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Service posts notification events to a Slack channel.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	api     messagePoster
	channel string
	masker  *masking.Service
	logger  *slog.Logger
}

// NewService creates a Slack notification service.
// Returns nil if token or channel is empty (notifications disabled).
func NewService(token, channel string, masker *masking.Service) *Service {
	if token == "" || channel == "" {
		return nil
	}
	return newService(slack.New(token), channel, masker)
}

// NewServiceWithClient creates a Service backed by a pre-built poster.
// Useful for testing with a fake API.
func NewServiceWithClient(api messagePoster, channel string, masker *masking.Service) *Service {
	return newService(api, channel, masker)
}

func newService(api messagePoster, channel string, masker *masking.Service) *Service {
	if masker == nil {
		masker = masking.NewService()
	}
	return &Service{
		api:     api,
		channel: channel,
		masker:  masker,
		logger:  slog.With("component", "notify"),
	}
}

// Register subscribes the service to the notification events.
func (s *Service) Register(bus *events.Bus) {
	if s == nil {
		return
	}
	bus.Subscribe(events.TypeTechNotificationRequired, "notify-tech", s.handleTech)
	bus.Subscribe(events.TypeAdminNotificationRequired, "notify-admin", s.handleAdmin)
}

// handleTech posts a tech-team notification. Fail-open: delivery errors are
// logged and reported to the bus, never escalated further.
func (s *Service) handleTech(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(events.TechNotificationRequired)
	if !ok {
		return fmt.Errorf("notify: unexpected event %T for %s", event, event.EventType())
	}
	return s.post(ctx, severityEmoji(e.Severity), e.Subject, e.Body)
}

// handleAdmin posts an admin escalation.
func (s *Service) handleAdmin(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(events.AdminNotificationRequired)
	if !ok {
		return fmt.Errorf("notify: unexpected event %T for %s", event, event.EventType())
	}
	return s.post(ctx, ":rotating_light:", e.Subject, e.Body)
}

func (s *Service) post(ctx context.Context, emoji, subject, body string) error {
	subject = s.masker.MaskText(subject)
	body = s.masker.MaskText(body)

	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("%s *%s*", emoji, subject), false, false),
			nil, nil),
	}
	if body != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, body, false, false),
			nil, nil))
	}

	_, _, err := s.api.PostMessageContext(ctx, s.channel,
		slack.MsgOptionText(fmt.Sprintf("%s %s", emoji, subject), false),
		slack.MsgOptionBlocks(blocks...))
	if err != nil {
		s.logger.Error("Failed to post Slack notification", "subject", subject, "error", err)
		return err
	}
	return nil
}

// severityEmoji maps a notification severity to its channel marker.
func severityEmoji(severity string) string {
	switch severity {
	case "error":
		return ":x:"
	case "warning":
		return ":warning:"
	default:
		return ":information_source:"
	}
}
