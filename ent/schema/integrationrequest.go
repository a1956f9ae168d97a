package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// IntegrationRequest holds the schema definition for the IntegrationRequest entity.
// Rows double as the scheduler's priority queue: workers claim them with
// FOR UPDATE SKIP LOCKED ordered by priority then scheduled_at.
type IntegrationRequest struct {
	ent.Schema
}

// Fields of the IntegrationRequest.
func (IntegrationRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("integration_id").
			Unique().
			Immutable(),
		field.Enum("integration_type").
			Values("ticket_sync", "user_verification", "client_data_fetch", "bulk_sync", "status_update"),
		field.Int("priority").
			Default(2).
			Comment("0=critical .. 3=low; lower dispatches first"),
		field.Enum("status").
			Values("pending", "scheduled", "in_progress", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("payload", json.RawMessage{}).
			Optional(),
		field.JSON("metadata", map[string]string{}).
			Optional(),
		field.Int("max_retries").
			Default(3),
		field.Bool("force_retry").
			Default(false),
		field.Int("timeout_seconds").
			Optional(),
		field.Time("scheduled_at").
			Default(time.Now).
			Comment("Earliest dispatch time; pushed forward on retry backoff"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.JSON("response", json.RawMessage{}).
			Optional(),
		field.String("last_error").
			Optional(),
		field.JSON("attempts", []models.IntegrationAttempt{}).
			Optional(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Claiming worker pod, for orphan recovery"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the IntegrationRequest.
func (IntegrationRequest) Indexes() []ent.Index {
	return []ent.Index{
		// Claim query: dispatchable work by priority then FIFO.
		index.Fields("status", "priority", "scheduled_at"),
		index.Fields("status"),
		index.Fields("integration_type"),

		// Orphan scan: in-progress rows with stale heartbeats.
		index.Fields("status", "last_heartbeat_at"),
	}
}
