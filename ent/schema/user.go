package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("user_id").
			Unique().
			Immutable().
			Comment("Chat platform user id"),
		field.String("username").
			Optional(),
		field.String("cpf_hash").
			Optional().
			Nillable().
			Comment("Salted SHA-256 of the canonical CPF digits; plaintext never persists"),
		field.String("cpf_masked").
			Optional().
			Nillable().
			Comment("Display form NNN.NNN.***-**"),
		field.String("client_name").
			Optional().
			Nillable(),
		field.JSON("service", &models.ServiceDescriptor{}).
			Optional().
			Comment("Active service snapshot from the upstream"),
		field.Enum("status").
			Values("pending_verification", "active", "inactive", "suspended").
			Default("pending_verification"),
		field.Bool("is_admin").
			Default(false),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),

		// One verified CPF maps to exactly one user.
		index.Fields("cpf_hash").
			Unique().
			Annotations(entsql.IndexWhere("cpf_hash IS NOT NULL")),
	}
}
