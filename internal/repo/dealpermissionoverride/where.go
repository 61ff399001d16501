// Code generated by ent, DO NOT EDIT.

package dealpermissionoverride

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// RoleID applies equality check predicate on the "role_id" field. It's identical to RoleIDEQ.
func RoleID(v uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldRoleID, v))
}

// DealID applies equality check predicate on the "deal_id" field. It's identical to DealIDEQ.
func DealID(v uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldDealID, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldPath, v))
}

// PermissionType applies equality check predicate on the "permission_type" field. It's identical to PermissionTypeEQ.
func PermissionType(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldPermissionType, v))
}

// Granted applies equality check predicate on the "granted" field. It's identical to GrantedEQ.
func Granted(v bool) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldGranted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLTE(FieldUpdatedAt, v))
}

// RoleIDEQ applies the EQ predicate on the "role_id" field.
func RoleIDEQ(v uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldRoleID, v))
}

// RoleIDNEQ applies the NEQ predicate on the "role_id" field.
func RoleIDNEQ(v uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNEQ(FieldRoleID, v))
}

// RoleIDIn applies the In predicate on the "role_id" field.
func RoleIDIn(vs ...uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldIn(FieldRoleID, vs...))
}

// RoleIDNotIn applies the NotIn predicate on the "role_id" field.
func RoleIDNotIn(vs ...uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNotIn(FieldRoleID, vs...))
}

// DealIDEQ applies the EQ predicate on the "deal_id" field.
func DealIDEQ(v uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldDealID, v))
}

// DealIDNEQ applies the NEQ predicate on the "deal_id" field.
func DealIDNEQ(v uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNEQ(FieldDealID, v))
}

// DealIDIn applies the In predicate on the "deal_id" field.
func DealIDIn(vs ...uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldIn(FieldDealID, vs...))
}

// DealIDNotIn applies the NotIn predicate on the "deal_id" field.
func DealIDNotIn(vs ...uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNotIn(FieldDealID, vs...))
}

// DealIDGT applies the GT predicate on the "deal_id" field.
func DealIDGT(v uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGT(FieldDealID, v))
}

// DealIDGTE applies the GTE predicate on the "deal_id" field.
func DealIDGTE(v uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGTE(FieldDealID, v))
}

// DealIDLT applies the LT predicate on the "deal_id" field.
func DealIDLT(v uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLT(FieldDealID, v))
}

// DealIDLTE applies the LTE predicate on the "deal_id" field.
func DealIDLTE(v uuid.UUID) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLTE(FieldDealID, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldContainsFold(FieldPath, v))
}

// PermissionTypeEQ applies the EQ predicate on the "permission_type" field.
func PermissionTypeEQ(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldPermissionType, v))
}

// PermissionTypeNEQ applies the NEQ predicate on the "permission_type" field.
func PermissionTypeNEQ(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNEQ(FieldPermissionType, v))
}

// PermissionTypeIn applies the In predicate on the "permission_type" field.
func PermissionTypeIn(vs ...string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldIn(FieldPermissionType, vs...))
}

// PermissionTypeNotIn applies the NotIn predicate on the "permission_type" field.
func PermissionTypeNotIn(vs ...string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNotIn(FieldPermissionType, vs...))
}

// PermissionTypeGT applies the GT predicate on the "permission_type" field.
func PermissionTypeGT(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGT(FieldPermissionType, v))
}

// PermissionTypeGTE applies the GTE predicate on the "permission_type" field.
func PermissionTypeGTE(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldGTE(FieldPermissionType, v))
}

// PermissionTypeLT applies the LT predicate on the "permission_type" field.
func PermissionTypeLT(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLT(FieldPermissionType, v))
}

// PermissionTypeLTE applies the LTE predicate on the "permission_type" field.
func PermissionTypeLTE(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldLTE(FieldPermissionType, v))
}

// PermissionTypeContains applies the Contains predicate on the "permission_type" field.
func PermissionTypeContains(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldContains(FieldPermissionType, v))
}

// PermissionTypeHasPrefix applies the HasPrefix predicate on the "permission_type" field.
func PermissionTypeHasPrefix(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldHasPrefix(FieldPermissionType, v))
}

// PermissionTypeHasSuffix applies the HasSuffix predicate on the "permission_type" field.
func PermissionTypeHasSuffix(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldHasSuffix(FieldPermissionType, v))
}

// PermissionTypeEqualFold applies the EqualFold predicate on the "permission_type" field.
func PermissionTypeEqualFold(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEqualFold(FieldPermissionType, v))
}

// PermissionTypeContainsFold applies the ContainsFold predicate on the "permission_type" field.
func PermissionTypeContainsFold(v string) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldContainsFold(FieldPermissionType, v))
}

// GrantedEQ applies the EQ predicate on the "granted" field.
func GrantedEQ(v bool) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldEQ(FieldGranted, v))
}

// GrantedNEQ applies the NEQ predicate on the "granted" field.
func GrantedNEQ(v bool) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.FieldNEQ(FieldGranted, v))
}

// HasRole applies the HasEdge predicate on the "role" edge.
func HasRole() predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoleTable, RoleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoleWith applies the HasEdge predicate on the "role" edge with a given conditions (other predicates).
func HasRoleWith(preds ...predicate.StakeholderRole) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(func(s *sql.Selector) {
		step := newRoleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DealPermissionOverride) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DealPermissionOverride) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DealPermissionOverride) predicate.DealPermissionOverride {
	return predicate.DealPermissionOverride(sql.NotPredicates(p))
}
