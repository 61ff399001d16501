package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Fund is the tenant anchor. Roles, grants and overrides are all scoped
// to one fund.
type Fund struct {
	ent.Schema
}

func (Fund) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Fund) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(200).
			NotEmpty(),

		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique(),

		field.Bool("is_active").
			Default(true),
	}
}

func (Fund) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("roles", StakeholderRole.Type),
	}
}
