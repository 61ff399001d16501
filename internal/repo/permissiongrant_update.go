// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/permissiongrant"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/predicate"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/google/uuid"
)

// PermissionGrantUpdate is the builder for updating PermissionGrant entities.
type PermissionGrantUpdate struct {
	config
	hooks    []Hook
	mutation *PermissionGrantMutation
}

// Where appends a list predicates to the PermissionGrantUpdate builder.
func (_u *PermissionGrantUpdate) Where(ps ...predicate.PermissionGrant) *PermissionGrantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PermissionGrantUpdate) SetUpdatedAt(v time.Time) *PermissionGrantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRoleID sets the "role_id" field.
func (_u *PermissionGrantUpdate) SetRoleID(v uuid.UUID) *PermissionGrantUpdate {
	_u.mutation.SetRoleID(v)
	return _u
}

// SetNillableRoleID sets the "role_id" field if the given value is not nil.
func (_u *PermissionGrantUpdate) SetNillableRoleID(v *uuid.UUID) *PermissionGrantUpdate {
	if v != nil {
		_u.SetRoleID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *PermissionGrantUpdate) SetPath(v string) *PermissionGrantUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *PermissionGrantUpdate) SetNillablePath(v *string) *PermissionGrantUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetPermissionType sets the "permission_type" field.
func (_u *PermissionGrantUpdate) SetPermissionType(v string) *PermissionGrantUpdate {
	_u.mutation.SetPermissionType(v)
	return _u
}

// SetNillablePermissionType sets the "permission_type" field if the given value is not nil.
func (_u *PermissionGrantUpdate) SetNillablePermissionType(v *string) *PermissionGrantUpdate {
	if v != nil {
		_u.SetPermissionType(*v)
	}
	return _u
}

// SetGranted sets the "granted" field.
func (_u *PermissionGrantUpdate) SetGranted(v bool) *PermissionGrantUpdate {
	_u.mutation.SetGranted(v)
	return _u
}

// SetNillableGranted sets the "granted" field if the given value is not nil.
func (_u *PermissionGrantUpdate) SetNillableGranted(v *bool) *PermissionGrantUpdate {
	if v != nil {
		_u.SetGranted(*v)
	}
	return _u
}

// SetRole sets the "role" edge to the StakeholderRole entity.
func (_u *PermissionGrantUpdate) SetRole(v *StakeholderRole) *PermissionGrantUpdate {
	return _u.SetRoleID(v.ID)
}

// Mutation returns the PermissionGrantMutation object of the builder.
func (_u *PermissionGrantUpdate) Mutation() *PermissionGrantMutation {
	return _u.mutation
}

// ClearRole clears the "role" edge to the StakeholderRole entity.
func (_u *PermissionGrantUpdate) ClearRole() *PermissionGrantUpdate {
	_u.mutation.ClearRole()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PermissionGrantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PermissionGrantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PermissionGrantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PermissionGrantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PermissionGrantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := permissiongrant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PermissionGrantUpdate) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := permissiongrant.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`repo: validator failed for field "PermissionGrant.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PermissionType(); ok {
		if err := permissiongrant.PermissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "permission_type", err: fmt.Errorf(`repo: validator failed for field "PermissionGrant.permission_type": %w`, err)}
		}
	}
	if _u.mutation.RoleCleared() && len(_u.mutation.RoleIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PermissionGrant.role"`)
	}
	return nil
}

func (_u *PermissionGrantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(permissiongrant.Table, permissiongrant.Columns, sqlgraph.NewFieldSpec(permissiongrant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(permissiongrant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(permissiongrant.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.PermissionType(); ok {
		_spec.SetField(permissiongrant.FieldPermissionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Granted(); ok {
		_spec.SetField(permissiongrant.FieldGranted, field.TypeBool, value)
	}
	if _u.mutation.RoleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   permissiongrant.RoleTable,
			Columns: []string{permissiongrant.RoleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stakeholderrole.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   permissiongrant.RoleTable,
			Columns: []string{permissiongrant.RoleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stakeholderrole.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{permissiongrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PermissionGrantUpdateOne is the builder for updating a single PermissionGrant entity.
type PermissionGrantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PermissionGrantMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PermissionGrantUpdateOne) SetUpdatedAt(v time.Time) *PermissionGrantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRoleID sets the "role_id" field.
func (_u *PermissionGrantUpdateOne) SetRoleID(v uuid.UUID) *PermissionGrantUpdateOne {
	_u.mutation.SetRoleID(v)
	return _u
}

// SetNillableRoleID sets the "role_id" field if the given value is not nil.
func (_u *PermissionGrantUpdateOne) SetNillableRoleID(v *uuid.UUID) *PermissionGrantUpdateOne {
	if v != nil {
		_u.SetRoleID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *PermissionGrantUpdateOne) SetPath(v string) *PermissionGrantUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *PermissionGrantUpdateOne) SetNillablePath(v *string) *PermissionGrantUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetPermissionType sets the "permission_type" field.
func (_u *PermissionGrantUpdateOne) SetPermissionType(v string) *PermissionGrantUpdateOne {
	_u.mutation.SetPermissionType(v)
	return _u
}

// SetNillablePermissionType sets the "permission_type" field if the given value is not nil.
func (_u *PermissionGrantUpdateOne) SetNillablePermissionType(v *string) *PermissionGrantUpdateOne {
	if v != nil {
		_u.SetPermissionType(*v)
	}
	return _u
}

// SetGranted sets the "granted" field.
func (_u *PermissionGrantUpdateOne) SetGranted(v bool) *PermissionGrantUpdateOne {
	_u.mutation.SetGranted(v)
	return _u
}

// SetNillableGranted sets the "granted" field if the given value is not nil.
func (_u *PermissionGrantUpdateOne) SetNillableGranted(v *bool) *PermissionGrantUpdateOne {
	if v != nil {
		_u.SetGranted(*v)
	}
	return _u
}

// SetRole sets the "role" edge to the StakeholderRole entity.
func (_u *PermissionGrantUpdateOne) SetRole(v *StakeholderRole) *PermissionGrantUpdateOne {
	return _u.SetRoleID(v.ID)
}

// Mutation returns the PermissionGrantMutation object of the builder.
func (_u *PermissionGrantUpdateOne) Mutation() *PermissionGrantMutation {
	return _u.mutation
}

// ClearRole clears the "role" edge to the StakeholderRole entity.
func (_u *PermissionGrantUpdateOne) ClearRole() *PermissionGrantUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// Where appends a list predicates to the PermissionGrantUpdate builder.
func (_u *PermissionGrantUpdateOne) Where(ps ...predicate.PermissionGrant) *PermissionGrantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PermissionGrantUpdateOne) Select(field string, fields ...string) *PermissionGrantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PermissionGrant entity.
func (_u *PermissionGrantUpdateOne) Save(ctx context.Context) (*PermissionGrant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PermissionGrantUpdateOne) SaveX(ctx context.Context) *PermissionGrant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PermissionGrantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PermissionGrantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PermissionGrantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := permissiongrant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PermissionGrantUpdateOne) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := permissiongrant.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`repo: validator failed for field "PermissionGrant.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PermissionType(); ok {
		if err := permissiongrant.PermissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "permission_type", err: fmt.Errorf(`repo: validator failed for field "PermissionGrant.permission_type": %w`, err)}
		}
	}
	if _u.mutation.RoleCleared() && len(_u.mutation.RoleIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PermissionGrant.role"`)
	}
	return nil
}

func (_u *PermissionGrantUpdateOne) sqlSave(ctx context.Context) (_node *PermissionGrant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(permissiongrant.Table, permissiongrant.Columns, sqlgraph.NewFieldSpec(permissiongrant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PermissionGrant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, permissiongrant.FieldID)
		for _, f := range fields {
			if !permissiongrant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != permissiongrant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(permissiongrant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(permissiongrant.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.PermissionType(); ok {
		_spec.SetField(permissiongrant.FieldPermissionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Granted(); ok {
		_spec.SetField(permissiongrant.FieldGranted, field.TypeBool, value)
	}
	if _u.mutation.RoleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   permissiongrant.RoleTable,
			Columns: []string{permissiongrant.RoleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stakeholderrole.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   permissiongrant.RoleTable,
			Columns: []string{permissiongrant.RoleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stakeholderrole.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PermissionGrant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{permissiongrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
