// Code generated by ent, DO NOT EDIT.

package stakeholderrole

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the stakeholderrole type in the database.
	Label = "stakeholder_role"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFundID holds the string denoting the fund_id field in the database.
	FieldFundID = "fund_id"
	// FieldRoleName holds the string denoting the role_name field in the database.
	FieldRoleName = "role_name"
	// FieldRoleKind holds the string denoting the role_kind field in the database.
	FieldRoleKind = "role_kind"
	// FieldBaseType holds the string denoting the base_type field in the database.
	FieldBaseType = "base_type"
	// FieldIsDefault holds the string denoting the is_default field in the database.
	FieldIsDefault = "is_default"
	// EdgeFund holds the string denoting the fund edge name in mutations.
	EdgeFund = "fund"
	// EdgeGrants holds the string denoting the grants edge name in mutations.
	EdgeGrants = "grants"
	// EdgeOverrides holds the string denoting the overrides edge name in mutations.
	EdgeOverrides = "overrides"
	// Table holds the table name of the stakeholderrole in the database.
	Table = "stakeholder_roles"
	// FundTable is the table that holds the fund relation/edge.
	FundTable = "stakeholder_roles"
	// FundInverseTable is the table name for the Fund entity.
	// It exists in this package in order to avoid circular dependency with the "fund" package.
	FundInverseTable = "funds"
	// FundColumn is the table column denoting the fund relation/edge.
	FundColumn = "fund_id"
	// GrantsTable is the table that holds the grants relation/edge.
	GrantsTable = "permission_grants"
	// GrantsInverseTable is the table name for the PermissionGrant entity.
	// It exists in this package in order to avoid circular dependency with the "permissiongrant" package.
	GrantsInverseTable = "permission_grants"
	// GrantsColumn is the table column denoting the grants relation/edge.
	GrantsColumn = "role_id"
	// OverridesTable is the table that holds the overrides relation/edge.
	OverridesTable = "deal_permission_overrides"
	// OverridesInverseTable is the table name for the DealPermissionOverride entity.
	// It exists in this package in order to avoid circular dependency with the "dealpermissionoverride" package.
	OverridesInverseTable = "deal_permission_overrides"
	// OverridesColumn is the table column denoting the overrides relation/edge.
	OverridesColumn = "role_id"
)

// Columns holds all SQL columns for stakeholderrole fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFundID,
	FieldRoleName,
	FieldRoleKind,
	FieldBaseType,
	FieldIsDefault,
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
	// RoleNameValidator is a validator for the "role_name" field. It is called by the builders before save.
	RoleNameValidator func(string) error
	// BaseTypeValidator is a validator for the "base_type" field. It is called by the builders before save.
	BaseTypeValidator func(string) error
	// DefaultIsDefault holds the default value on creation for the "is_default" field.
	DefaultIsDefault bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// RoleKind defines the type for the "role_kind" enum field.
type RoleKind string

// RoleKind values.
const (
	RoleKindSystem RoleKind = "system"
	RoleKindCustom RoleKind = "custom"
)

func (rk RoleKind) String() string {
	return string(rk)
}

// RoleKindValidator is a validator for the "role_kind" field enum values. It is called by the builders before save.
func RoleKindValidator(rk RoleKind) error {
	switch rk {
	case RoleKindSystem, RoleKindCustom:
		return nil
	default:
		return fmt.Errorf("stakeholderrole: invalid enum value for role_kind field: %q", rk)
	}
}

// OrderOption defines the ordering options for the StakeholderRole queries.
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

// ByFundID orders the results by the fund_id field.
func ByFundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFundID, opts...).ToFunc()
}

// ByRoleName orders the results by the role_name field.
func ByRoleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoleName, opts...).ToFunc()
}

// ByRoleKind orders the results by the role_kind field.
func ByRoleKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoleKind, opts...).ToFunc()
}

// ByBaseType orders the results by the base_type field.
func ByBaseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseType, opts...).ToFunc()
}

// ByIsDefault orders the results by the is_default field.
func ByIsDefault(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDefault, opts...).ToFunc()
}

// ByFundField orders the results by fund field.
func ByFundField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFundStep(), sql.OrderByField(field, opts...))
	}
}

// ByGrantsCount orders the results by grants count.
func ByGrantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGrantsStep(), opts...)
	}
}

// ByGrants orders the results by grants terms.
func ByGrants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGrantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOverridesCount orders the results by overrides count.
func ByOverridesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOverridesStep(), opts...)
	}
}

// ByOverrides orders the results by overrides terms.
func ByOverrides(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOverridesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFundStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FundInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FundTable, FundColumn),
	)
}
func newGrantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GrantsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GrantsTable, GrantsColumn),
	)
}
func newOverridesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OverridesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OverridesTable, OverridesColumn),
	)
}
