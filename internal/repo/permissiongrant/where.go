// Code generated by ent, DO NOT EDIT.

package permissiongrant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldUpdatedAt, v))
}

// RoleID applies equality check predicate on the "role_id" field. It's identical to RoleIDEQ.
func RoleID(v uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldRoleID, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldPath, v))
}

// PermissionType applies equality check predicate on the "permission_type" field. It's identical to PermissionTypeEQ.
func PermissionType(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldPermissionType, v))
}

// Granted applies equality check predicate on the "granted" field. It's identical to GrantedEQ.
func Granted(v bool) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldGranted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldLTE(FieldUpdatedAt, v))
}

// RoleIDEQ applies the EQ predicate on the "role_id" field.
func RoleIDEQ(v uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldRoleID, v))
}

// RoleIDNEQ applies the NEQ predicate on the "role_id" field.
func RoleIDNEQ(v uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNEQ(FieldRoleID, v))
}

// RoleIDIn applies the In predicate on the "role_id" field.
func RoleIDIn(vs ...uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldIn(FieldRoleID, vs...))
}

// RoleIDNotIn applies the NotIn predicate on the "role_id" field.
func RoleIDNotIn(vs ...uuid.UUID) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNotIn(FieldRoleID, vs...))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldContainsFold(FieldPath, v))
}

// PermissionTypeEQ applies the EQ predicate on the "permission_type" field.
func PermissionTypeEQ(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldPermissionType, v))
}

// PermissionTypeNEQ applies the NEQ predicate on the "permission_type" field.
func PermissionTypeNEQ(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNEQ(FieldPermissionType, v))
}

// PermissionTypeIn applies the In predicate on the "permission_type" field.
func PermissionTypeIn(vs ...string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldIn(FieldPermissionType, vs...))
}

// PermissionTypeNotIn applies the NotIn predicate on the "permission_type" field.
func PermissionTypeNotIn(vs ...string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNotIn(FieldPermissionType, vs...))
}

// PermissionTypeGT applies the GT predicate on the "permission_type" field.
func PermissionTypeGT(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldGT(FieldPermissionType, v))
}

// PermissionTypeGTE applies the GTE predicate on the "permission_type" field.
func PermissionTypeGTE(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldGTE(FieldPermissionType, v))
}

// PermissionTypeLT applies the LT predicate on the "permission_type" field.
func PermissionTypeLT(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldLT(FieldPermissionType, v))
}

// PermissionTypeLTE applies the LTE predicate on the "permission_type" field.
func PermissionTypeLTE(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldLTE(FieldPermissionType, v))
}

// PermissionTypeContains applies the Contains predicate on the "permission_type" field.
func PermissionTypeContains(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldContains(FieldPermissionType, v))
}

// PermissionTypeHasPrefix applies the HasPrefix predicate on the "permission_type" field.
func PermissionTypeHasPrefix(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldHasPrefix(FieldPermissionType, v))
}

// PermissionTypeHasSuffix applies the HasSuffix predicate on the "permission_type" field.
func PermissionTypeHasSuffix(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldHasSuffix(FieldPermissionType, v))
}

// PermissionTypeEqualFold applies the EqualFold predicate on the "permission_type" field.
func PermissionTypeEqualFold(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEqualFold(FieldPermissionType, v))
}

// PermissionTypeContainsFold applies the ContainsFold predicate on the "permission_type" field.
func PermissionTypeContainsFold(v string) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldContainsFold(FieldPermissionType, v))
}

// GrantedEQ applies the EQ predicate on the "granted" field.
func GrantedEQ(v bool) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldEQ(FieldGranted, v))
}

// GrantedNEQ applies the NEQ predicate on the "granted" field.
func GrantedNEQ(v bool) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.FieldNEQ(FieldGranted, v))
}

// HasRole applies the HasEdge predicate on the "role" edge.
func HasRole() predicate.PermissionGrant {
	return predicate.PermissionGrant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoleTable, RoleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoleWith applies the HasEdge predicate on the "role" edge with a given conditions (other predicates).
func HasRoleWith(preds ...predicate.StakeholderRole) predicate.PermissionGrant {
	return predicate.PermissionGrant(func(s *sql.Selector) {
		step := newRoleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PermissionGrant) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PermissionGrant) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PermissionGrant) predicate.PermissionGrant {
	return predicate.PermissionGrant(sql.NotPredicates(p))
}
