// Code generated by ent, DO NOT EDIT.

package stakeholderrole

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldUpdatedAt, v))
}

// FundID applies equality check predicate on the "fund_id" field. It's identical to FundIDEQ.
func FundID(v uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldFundID, v))
}

// RoleName applies equality check predicate on the "role_name" field. It's identical to RoleNameEQ.
func RoleName(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldRoleName, v))
}

// BaseType applies equality check predicate on the "base_type" field. It's identical to BaseTypeEQ.
func BaseType(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldBaseType, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldIsDefault, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldLTE(FieldUpdatedAt, v))
}

// FundIDEQ applies the EQ predicate on the "fund_id" field.
func FundIDEQ(v uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldFundID, v))
}

// FundIDNEQ applies the NEQ predicate on the "fund_id" field.
func FundIDNEQ(v uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNEQ(FieldFundID, v))
}

// FundIDIn applies the In predicate on the "fund_id" field.
func FundIDIn(vs ...uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldIn(FieldFundID, vs...))
}

// FundIDNotIn applies the NotIn predicate on the "fund_id" field.
func FundIDNotIn(vs ...uuid.UUID) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNotIn(FieldFundID, vs...))
}

// RoleNameEQ applies the EQ predicate on the "role_name" field.
func RoleNameEQ(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldRoleName, v))
}

// RoleNameNEQ applies the NEQ predicate on the "role_name" field.
func RoleNameNEQ(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNEQ(FieldRoleName, v))
}

// RoleNameIn applies the In predicate on the "role_name" field.
func RoleNameIn(vs ...string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldIn(FieldRoleName, vs...))
}

// RoleNameNotIn applies the NotIn predicate on the "role_name" field.
func RoleNameNotIn(vs ...string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNotIn(FieldRoleName, vs...))
}

// RoleNameGT applies the GT predicate on the "role_name" field.
func RoleNameGT(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldGT(FieldRoleName, v))
}

// RoleNameGTE applies the GTE predicate on the "role_name" field.
func RoleNameGTE(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldGTE(FieldRoleName, v))
}

// RoleNameLT applies the LT predicate on the "role_name" field.
func RoleNameLT(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldLT(FieldRoleName, v))
}

// RoleNameLTE applies the LTE predicate on the "role_name" field.
func RoleNameLTE(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldLTE(FieldRoleName, v))
}

// RoleNameContains applies the Contains predicate on the "role_name" field.
func RoleNameContains(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldContains(FieldRoleName, v))
}

// RoleNameHasPrefix applies the HasPrefix predicate on the "role_name" field.
func RoleNameHasPrefix(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldHasPrefix(FieldRoleName, v))
}

// RoleNameHasSuffix applies the HasSuffix predicate on the "role_name" field.
func RoleNameHasSuffix(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldHasSuffix(FieldRoleName, v))
}

// RoleNameEqualFold applies the EqualFold predicate on the "role_name" field.
func RoleNameEqualFold(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEqualFold(FieldRoleName, v))
}

// RoleNameContainsFold applies the ContainsFold predicate on the "role_name" field.
func RoleNameContainsFold(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldContainsFold(FieldRoleName, v))
}

// RoleKindEQ applies the EQ predicate on the "role_kind" field.
func RoleKindEQ(v RoleKind) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldRoleKind, v))
}

// RoleKindNEQ applies the NEQ predicate on the "role_kind" field.
func RoleKindNEQ(v RoleKind) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNEQ(FieldRoleKind, v))
}

// RoleKindIn applies the In predicate on the "role_kind" field.
func RoleKindIn(vs ...RoleKind) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldIn(FieldRoleKind, vs...))
}

// RoleKindNotIn applies the NotIn predicate on the "role_kind" field.
func RoleKindNotIn(vs ...RoleKind) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNotIn(FieldRoleKind, vs...))
}

// BaseTypeEQ applies the EQ predicate on the "base_type" field.
func BaseTypeEQ(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldBaseType, v))
}

// BaseTypeNEQ applies the NEQ predicate on the "base_type" field.
func BaseTypeNEQ(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNEQ(FieldBaseType, v))
}

// BaseTypeIn applies the In predicate on the "base_type" field.
func BaseTypeIn(vs ...string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldIn(FieldBaseType, vs...))
}

// BaseTypeNotIn applies the NotIn predicate on the "base_type" field.
func BaseTypeNotIn(vs ...string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNotIn(FieldBaseType, vs...))
}

// BaseTypeGT applies the GT predicate on the "base_type" field.
func BaseTypeGT(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldGT(FieldBaseType, v))
}

// BaseTypeGTE applies the GTE predicate on the "base_type" field.
func BaseTypeGTE(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldGTE(FieldBaseType, v))
}

// BaseTypeLT applies the LT predicate on the "base_type" field.
func BaseTypeLT(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldLT(FieldBaseType, v))
}

// BaseTypeLTE applies the LTE predicate on the "base_type" field.
func BaseTypeLTE(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldLTE(FieldBaseType, v))
}

// BaseTypeContains applies the Contains predicate on the "base_type" field.
func BaseTypeContains(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldContains(FieldBaseType, v))
}

// BaseTypeHasPrefix applies the HasPrefix predicate on the "base_type" field.
func BaseTypeHasPrefix(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldHasPrefix(FieldBaseType, v))
}

// BaseTypeHasSuffix applies the HasSuffix predicate on the "base_type" field.
func BaseTypeHasSuffix(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldHasSuffix(FieldBaseType, v))
}

// BaseTypeIsNil applies the IsNil predicate on the "base_type" field.
func BaseTypeIsNil() predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldIsNull(FieldBaseType))
}

// BaseTypeNotNil applies the NotNil predicate on the "base_type" field.
func BaseTypeNotNil() predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNotNull(FieldBaseType))
}

// BaseTypeEqualFold applies the EqualFold predicate on the "base_type" field.
func BaseTypeEqualFold(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEqualFold(FieldBaseType, v))
}

// BaseTypeContainsFold applies the ContainsFold predicate on the "base_type" field.
func BaseTypeContainsFold(v string) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldContainsFold(FieldBaseType, v))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.FieldNEQ(FieldIsDefault, v))
}

// HasFund applies the HasEdge predicate on the "fund" edge.
func HasFund() predicate.StakeholderRole {
	return predicate.StakeholderRole(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FundTable, FundColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFundWith applies the HasEdge predicate on the "fund" edge with a given conditions (other predicates).
func HasFundWith(preds ...predicate.Fund) predicate.StakeholderRole {
	return predicate.StakeholderRole(func(s *sql.Selector) {
		step := newFundStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGrants applies the HasEdge predicate on the "grants" edge.
func HasGrants() predicate.StakeholderRole {
	return predicate.StakeholderRole(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GrantsTable, GrantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGrantsWith applies the HasEdge predicate on the "grants" edge with a given conditions (other predicates).
func HasGrantsWith(preds ...predicate.PermissionGrant) predicate.StakeholderRole {
	return predicate.StakeholderRole(func(s *sql.Selector) {
		step := newGrantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOverrides applies the HasEdge predicate on the "overrides" edge.
func HasOverrides() predicate.StakeholderRole {
	return predicate.StakeholderRole(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OverridesTable, OverridesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOverridesWith applies the HasEdge predicate on the "overrides" edge with a given conditions (other predicates).
func HasOverridesWith(preds ...predicate.DealPermissionOverride) predicate.StakeholderRole {
	return predicate.StakeholderRole(func(s *sql.Selector) {
		step := newOverridesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StakeholderRole) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StakeholderRole) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StakeholderRole) predicate.StakeholderRole {
	return predicate.StakeholderRole(sql.NotPredicates(p))
}
