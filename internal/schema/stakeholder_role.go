package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// StakeholderRole is a fund-scoped role. System roles are provisioned once
// per (fund, base type) and are immutable in name and existence; custom
// roles are created by fund administrators.
type StakeholderRole struct {
	ent.Schema
}

func (StakeholderRole) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (StakeholderRole) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("fund_id", uuid.UUID{}).
			Comment("FK → funds.id"),

		field.String("role_name").
			MaxLen(100).
			NotEmpty(),

		field.Enum("role_kind").
			Values("system", "custom"),

		field.String("base_type").
			MaxLen(50).
			Optional().
			Comment("Stakeholder type this role is anchored to; empty for copied custom roles"),

		field.Bool("is_default").
			Default(false),
	}
}

func (StakeholderRole) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("fund", Fund.Type).
			Ref("roles").
			Unique().
			Required().
			Field("fund_id"),
		edge.To("grants", PermissionGrant.Type),
		edge.To("overrides", DealPermissionOverride.Type),
	}
}

func (StakeholderRole) Indexes() []ent.Index {
	return []ent.Index{
		// One system role per (fund, base type); the provisioning upsert
		// keys on this constraint.
		index.Fields("fund_id", "base_type").
			Unique().
			Annotations(entsql.IndexWhere("role_kind = 'system'")),

		index.Fields("fund_id", "role_name").
			Unique(),
	}
}
