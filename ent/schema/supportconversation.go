package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// SupportConversation holds the schema definition for the SupportConversation entity.
type SupportConversation struct {
	ent.Schema
}

// Fields of the SupportConversation.
func (SupportConversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.Int64("user_id"),
		field.String("username").
			Optional(),
		field.Enum("state").
			Values("category_selection", "game_selection", "timing_selection",
				"description_input", "attachments_optional", "confirmation",
				"completed", "cancelled").
			Default("category_selection"),
		field.Int("current_step").
			Default(1),
		field.JSON("form_data", &models.ConversationFormData{}).
			Optional(),
		field.Bool("is_active").
			Default(true),
		field.String("ticket_id").
			Optional().
			Comment("Ticket produced on completion"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("last_active_at").
			Default(time.Now).
			Comment("For idle-timeout sweep"),
	}
}

// Indexes of the SupportConversation.
func (SupportConversation) Indexes() []ent.Index {
	return []ent.Index{
		// Timeout sweep scans active conversations by last activity.
		index.Fields("is_active", "last_active_at"),

		// One active conversation per user.
		index.Fields("user_id").
			Unique().
			Annotations(entsql.IndexWhere("is_active")),
	}
}
