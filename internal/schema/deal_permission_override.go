package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DealPermissionOverride punches a per-deal exception into a role's
// otherwise role-wide grants. Overrides are flat: resolution consults
// exact-path matches only, never the ancestor chain.
type DealPermissionOverride struct {
	ent.Schema
}

func (DealPermissionOverride) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DealPermissionOverride) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("role_id", uuid.UUID{}).
			Comment("FK → stakeholder_roles.id"),

		field.UUID("deal_id", uuid.UUID{}).
			Comment("Deal this exception applies to"),

		field.String("path").
			MaxLen(255).
			NotEmpty(),

		field.String("permission_type").
			MaxLen(20).
			NotEmpty(),

		field.Bool("granted"),
	}
}

func (DealPermissionOverride) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("role", StakeholderRole.Type).
			Ref("overrides").
			Unique().
			Required().
			Field("role_id"),
	}
}

func (DealPermissionOverride) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role_id", "deal_id", "path", "permission_type").
			Unique(),
		index.Fields("role_id", "deal_id"),
	}
}
