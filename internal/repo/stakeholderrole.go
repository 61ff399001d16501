// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/google/uuid"
)

// StakeholderRole is the model entity for the StakeholderRole schema.
type StakeholderRole struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → funds.id
	FundID uuid.UUID `json:"fund_id,omitempty"`
	// RoleName holds the value of the "role_name" field.
	RoleName string `json:"role_name,omitempty"`
	// RoleKind holds the value of the "role_kind" field.
	RoleKind stakeholderrole.RoleKind `json:"role_kind,omitempty"`
	// Stakeholder type this role is anchored to; empty for copied custom roles
	BaseType string `json:"base_type,omitempty"`
	// IsDefault holds the value of the "is_default" field.
	IsDefault bool `json:"is_default,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StakeholderRoleQuery when eager-loading is set.
	Edges        StakeholderRoleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StakeholderRoleEdges holds the relations/edges for other nodes in the graph.
type StakeholderRoleEdges struct {
	// Fund holds the value of the fund edge.
	Fund *Fund `json:"fund,omitempty"`
	// Grants holds the value of the grants edge.
	Grants []*PermissionGrant `json:"grants,omitempty"`
	// Overrides holds the value of the overrides edge.
	Overrides []*DealPermissionOverride `json:"overrides,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// FundOrErr returns the Fund value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StakeholderRoleEdges) FundOrErr() (*Fund, error) {
	if e.Fund != nil {
		return e.Fund, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: fund.Label}
	}
	return nil, &NotLoadedError{edge: "fund"}
}

// GrantsOrErr returns the Grants value or an error if the edge
// was not loaded in eager-loading.
func (e StakeholderRoleEdges) GrantsOrErr() ([]*PermissionGrant, error) {
	if e.loadedTypes[1] {
		return e.Grants, nil
	}
	return nil, &NotLoadedError{edge: "grants"}
}

// OverridesOrErr returns the Overrides value or an error if the edge
// was not loaded in eager-loading.
func (e StakeholderRoleEdges) OverridesOrErr() ([]*DealPermissionOverride, error) {
	if e.loadedTypes[2] {
		return e.Overrides, nil
	}
	return nil, &NotLoadedError{edge: "overrides"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StakeholderRole) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stakeholderrole.FieldIsDefault:
			values[i] = new(sql.NullBool)
		case stakeholderrole.FieldRoleName, stakeholderrole.FieldRoleKind, stakeholderrole.FieldBaseType:
			values[i] = new(sql.NullString)
		case stakeholderrole.FieldCreatedAt, stakeholderrole.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case stakeholderrole.FieldID, stakeholderrole.FieldFundID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StakeholderRole fields.
func (_m *StakeholderRole) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stakeholderrole.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stakeholderrole.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stakeholderrole.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case stakeholderrole.FieldFundID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field fund_id", values[i])
			} else if value != nil {
				_m.FundID = *value
			}
		case stakeholderrole.FieldRoleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role_name", values[i])
			} else if value.Valid {
				_m.RoleName = value.String
			}
		case stakeholderrole.FieldRoleKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role_kind", values[i])
			} else if value.Valid {
				_m.RoleKind = stakeholderrole.RoleKind(value.String)
			}
		case stakeholderrole.FieldBaseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_type", values[i])
			} else if value.Valid {
				_m.BaseType = value.String
			}
		case stakeholderrole.FieldIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_default", values[i])
			} else if value.Valid {
				_m.IsDefault = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StakeholderRole.
// This includes values selected through modifiers, order, etc.
func (_m *StakeholderRole) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFund queries the "fund" edge of the StakeholderRole entity.
func (_m *StakeholderRole) QueryFund() *FundQuery {
	return NewStakeholderRoleClient(_m.config).QueryFund(_m)
}

// QueryGrants queries the "grants" edge of the StakeholderRole entity.
func (_m *StakeholderRole) QueryGrants() *PermissionGrantQuery {
	return NewStakeholderRoleClient(_m.config).QueryGrants(_m)
}

// QueryOverrides queries the "overrides" edge of the StakeholderRole entity.
func (_m *StakeholderRole) QueryOverrides() *DealPermissionOverrideQuery {
	return NewStakeholderRoleClient(_m.config).QueryOverrides(_m)
}

// Update returns a builder for updating this StakeholderRole.
// Note that you need to call StakeholderRole.Unwrap() before calling this method if this StakeholderRole
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StakeholderRole) Update() *StakeholderRoleUpdateOne {
	return NewStakeholderRoleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StakeholderRole entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StakeholderRole) Unwrap() *StakeholderRole {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: StakeholderRole is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StakeholderRole) String() string {
	var builder strings.Builder
	builder.WriteString("StakeholderRole(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("fund_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FundID))
	builder.WriteString(", ")
	builder.WriteString("role_name=")
	builder.WriteString(_m.RoleName)
	builder.WriteString(", ")
	builder.WriteString("role_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoleKind))
	builder.WriteString(", ")
	builder.WriteString("base_type=")
	builder.WriteString(_m.BaseType)
	builder.WriteString(", ")
	builder.WriteString("is_default=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDefault))
	builder.WriteByte(')')
	return builder.String()
}

// StakeholderRoles is a parsable slice of StakeholderRole.
type StakeholderRoles []*StakeholderRole
