// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/permissiongrant"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/google/uuid"
)

// PermissionGrant is the model entity for the PermissionGrant schema.
type PermissionGrant struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → stakeholder_roles.id
	RoleID uuid.UUID `json:"role_id,omitempty"`
	// Dot-delimited resource path, e.g. 'deals.financials'
	Path string `json:"path,omitempty"`
	// view | create | edit | delete
	PermissionType string `json:"permission_type,omitempty"`
	// true = explicitly allow, false = explicitly deny
	Granted bool `json:"granted,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PermissionGrantQuery when eager-loading is set.
	Edges        PermissionGrantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PermissionGrantEdges holds the relations/edges for other nodes in the graph.
type PermissionGrantEdges struct {
	// Role holds the value of the role edge.
	Role *StakeholderRole `json:"role,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RoleOrErr returns the Role value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PermissionGrantEdges) RoleOrErr() (*StakeholderRole, error) {
	if e.Role != nil {
		return e.Role, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: stakeholderrole.Label}
	}
	return nil, &NotLoadedError{edge: "role"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PermissionGrant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case permissiongrant.FieldGranted:
			values[i] = new(sql.NullBool)
		case permissiongrant.FieldPath, permissiongrant.FieldPermissionType:
			values[i] = new(sql.NullString)
		case permissiongrant.FieldCreatedAt, permissiongrant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case permissiongrant.FieldID, permissiongrant.FieldRoleID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PermissionGrant fields.
func (_m *PermissionGrant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case permissiongrant.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case permissiongrant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case permissiongrant.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case permissiongrant.FieldRoleID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field role_id", values[i])
			} else if value != nil {
				_m.RoleID = *value
			}
		case permissiongrant.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = value.String
			}
		case permissiongrant.FieldPermissionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field permission_type", values[i])
			} else if value.Valid {
				_m.PermissionType = value.String
			}
		case permissiongrant.FieldGranted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field granted", values[i])
			} else if value.Valid {
				_m.Granted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PermissionGrant.
// This includes values selected through modifiers, order, etc.
func (_m *PermissionGrant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRole queries the "role" edge of the PermissionGrant entity.
func (_m *PermissionGrant) QueryRole() *StakeholderRoleQuery {
	return NewPermissionGrantClient(_m.config).QueryRole(_m)
}

// Update returns a builder for updating this PermissionGrant.
// Note that you need to call PermissionGrant.Unwrap() before calling this method if this PermissionGrant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PermissionGrant) Update() *PermissionGrantUpdateOne {
	return NewPermissionGrantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PermissionGrant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PermissionGrant) Unwrap() *PermissionGrant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PermissionGrant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PermissionGrant) String() string {
	var builder strings.Builder
	builder.WriteString("PermissionGrant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("role_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoleID))
	builder.WriteString(", ")
	builder.WriteString("path=")
	builder.WriteString(_m.Path)
	builder.WriteString(", ")
	builder.WriteString("permission_type=")
	builder.WriteString(_m.PermissionType)
	builder.WriteString(", ")
	builder.WriteString("granted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Granted))
	builder.WriteByte(')')
	return builder.String()
}

// PermissionGrants is a parsable slice of PermissionGrant.
type PermissionGrants []*PermissionGrant
