package events

import (
	"context"
	"encoding/json"
	"log/slog"
)

// TextMasker redacts personal data from free text. Implemented by
// masking.Service.
type TextMasker interface {
	MaskText(text string) string
}

// AuditLogger is a global bus subscriber that writes one structured log
// line per domain event. Payloads pass through the masker first; plaintext
// CPFs never reach the log.
type AuditLogger struct {
	masker TextMasker
	logger *slog.Logger
}

// NewAuditLogger creates an audit subscriber.
func NewAuditLogger(masker TextMasker) *AuditLogger {
	if masker == nil {
		panic("NewAuditLogger: masker must not be nil")
	}
	return &AuditLogger{
		masker: masker,
		logger: slog.With("component", "audit"),
	}
}

// Register subscribes the audit logger to every event on the bus.
func (a *AuditLogger) Register(bus *Bus) {
	bus.SubscribeAll("audit", a.handle)
}

func (a *AuditLogger) handle(_ context.Context, event DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		a.logger.Warn("Audit: event not serializable",
			"event_type", event.EventType(), "event_id", event.EventID(), "error", err)
		return nil
	}
	a.logger.Info("Domain event",
		"event_type", event.EventType(),
		"event_id", event.EventID(),
		"occurred_at", event.OccurredAt(),
		"payload", a.masker.MaskText(string(payload)))
	return nil
}
