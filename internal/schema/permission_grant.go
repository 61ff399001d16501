package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PermissionGrant stores one explicit boolean decision per
// (role, path, type) key. Writes are upserts; there is no history.
type PermissionGrant struct {
	ent.Schema
}

func (PermissionGrant) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PermissionGrant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("role_id", uuid.UUID{}).
			Comment("FK → stakeholder_roles.id"),

		field.String("path").
			MaxLen(255).
			NotEmpty().
			Comment("Dot-delimited resource path, e.g. 'deals.financials'"),

		field.String("permission_type").
			MaxLen(20).
			NotEmpty().
			Comment("view | create | edit | delete"),

		field.Bool("granted").
			Comment("true = explicitly allow, false = explicitly deny"),
	}
}

func (PermissionGrant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("role", StakeholderRole.Type).
			Ref("grants").
			Unique().
			Required().
			Field("role_id"),
	}
}

func (PermissionGrant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role_id", "path", "permission_type").
			Unique(),
	}
}
