// Code generated by ent, DO NOT EDIT.

package dealpermissionoverride

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the dealpermissionoverride type in the database.
	Label = "deal_permission_override"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRoleID holds the string denoting the role_id field in the database.
	FieldRoleID = "role_id"
	// FieldDealID holds the string denoting the deal_id field in the database.
	FieldDealID = "deal_id"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldPermissionType holds the string denoting the permission_type field in the database.
	FieldPermissionType = "permission_type"
	// FieldGranted holds the string denoting the granted field in the database.
	FieldGranted = "granted"
	// EdgeRole holds the string denoting the role edge name in mutations.
	EdgeRole = "role"
	// Table holds the table name of the dealpermissionoverride in the database.
	Table = "deal_permission_overrides"
	// RoleTable is the table that holds the role relation/edge.
	RoleTable = "deal_permission_overrides"
	// RoleInverseTable is the table name for the StakeholderRole entity.
	// It exists in this package in order to avoid circular dependency with the "stakeholderrole" package.
	RoleInverseTable = "stakeholder_roles"
	// RoleColumn is the table column denoting the role relation/edge.
	RoleColumn = "role_id"
)

// Columns holds all SQL columns for dealpermissionoverride fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRoleID,
	FieldDealID,
	FieldPath,
	FieldPermissionType,
	FieldGranted,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// PathValidator is a validator for the "path" field. It is called by the builders before save.
	PathValidator func(string) error
	// PermissionTypeValidator is a validator for the "permission_type" field. It is called by the builders before save.
	PermissionTypeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DealPermissionOverride queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRoleID orders the results by the role_id field.
func ByRoleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoleID, opts...).ToFunc()
}

// ByDealID orders the results by the deal_id field.
func ByDealID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDealID, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByPermissionType orders the results by the permission_type field.
func ByPermissionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPermissionType, opts...).ToFunc()
}

// ByGranted orders the results by the granted field.
func ByGranted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGranted, opts...).ToFunc()
}

// ByRoleField orders the results by role field.
func ByRoleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoleStep(), sql.OrderByField(field, opts...))
	}
}
func newRoleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoleInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RoleTable, RoleColumn),
	)
}
