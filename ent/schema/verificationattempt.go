package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VerificationAttempt holds the schema definition for the VerificationAttempt entity.
// Attempts are rows (not embedded JSON) so the per-user sliding-window rate
// limit can be enforced with a single indexed count.
type VerificationAttempt struct {
	ent.Schema
}

// Fields of the VerificationAttempt.
func (VerificationAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("verification_id"),
		field.Int64("user_id"),
		field.Int("attempt_number"),
		field.String("cpf_masked").
			Optional().
			Comment("Masked form shown to users and written to logs"),
		field.String("cpf_provided").
			Optional().
			Sensitive().
			Comment("Digits retained only for duplicate-conflict attempts; cleared once the request is terminal"),
		field.Bool("success").
			Default(false),
		field.String("failure_reason").
			Optional(),
		field.Time("attempted_at").
			Default(time.Now),
	}
}

// Edges of the VerificationAttempt.
func (VerificationAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("verification", VerificationRequest.Type).
			Ref("attempts").
			Field("verification_id").
			Unique().
			Required(),
	}
}

// Indexes of the VerificationAttempt.
func (VerificationAttempt) Indexes() []ent.Index {
	return []ent.Index{
		// Attempt-count window per user (rate limit lookups).
		index.Fields("user_id", "attempted_at"),
	}
}
