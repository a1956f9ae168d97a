package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// Ticket holds the schema definition for the Ticket entity.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.Int64("owner_id").
			Comment("Snapshot of the owner at creation time"),
		field.String("owner_username").
			Optional(),
		field.String("owner_cpf_masked").
			Optional(),
		field.String("category"),
		field.String("game").
			Optional(),
		field.String("problem_timing").
			Optional(),
		field.Text("description"),
		field.Enum("urgency").
			Values("low", "normal", "high", "critical").
			Default("normal"),
		field.Enum("status").
			Values("pending", "open", "in_progress", "resolved", "closed", "cancelled").
			Default("pending"),
		field.String("assignee").
			Optional(),
		field.Text("resolution").
			Optional().
			Nillable(),
		field.String("upstream_id").
			Optional().
			Nillable().
			Comment("HubSoft ticket id; immutable once set"),
		field.String("protocol").
			Comment("Human-facing protocol; LOC###### until synced"),
		field.Enum("sync_status").
			Values("pending", "synced", "failed").
			Default("pending"),
		field.JSON("attachments", []models.TicketAttachment{}).
			Optional(),
		field.JSON("messages", []models.TicketMessage{}).
			Optional().
			Comment("Bounded message history (last 50)"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("status"),
		index.Fields("status", "urgency"),
		index.Fields("sync_status"),

		index.Fields("upstream_id").
			Unique().
			Annotations(entsql.IndexWhere("upstream_id IS NOT NULL")),
	}
}
