package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// VerificationRequest holds the schema definition for the VerificationRequest entity.
type VerificationRequest struct {
	ent.Schema
}

// Fields of the VerificationRequest.
func (VerificationRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("verification_id").
			Unique().
			Immutable(),
		field.Int64("user_id"),
		field.String("username").
			Optional(),
		field.Enum("verification_type").
			Values("auto_checkup", "support_request", "manual_review", "security_check"),
		field.String("source_action").
			Optional().
			Comment("What triggered the verification (e.g. 'start', 'ticket_flow')"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "expired", "cancelled").
			Default("pending"),
		field.String("verified_cpf_masked").
			Optional().
			Nillable(),
		field.String("verified_cpf_hash").
			Optional().
			Nillable(),
		field.JSON("client_snapshot", &models.UpstreamClientSnapshot{}).
			Optional().
			Comment("Upstream client data captured on success"),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("expires_at"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the VerificationRequest.
func (VerificationRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("attempts", VerificationAttempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the VerificationRequest.
func (VerificationRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),

		// Expiry sweep scans non-terminal requests past their deadline.
		index.Fields("status", "expires_at"),

		// At most one live verification per user.
		index.Fields("user_id").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('pending', 'in_progress')")),
	}
}
