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
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/dealpermissionoverride"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/predicate"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/google/uuid"
)

// DealPermissionOverrideUpdate is the builder for updating DealPermissionOverride entities.
type DealPermissionOverrideUpdate struct {
	config
	hooks    []Hook
	mutation *DealPermissionOverrideMutation
}

// Where appends a list predicates to the DealPermissionOverrideUpdate builder.
func (_u *DealPermissionOverrideUpdate) Where(ps ...predicate.DealPermissionOverride) *DealPermissionOverrideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DealPermissionOverrideUpdate) SetUpdatedAt(v time.Time) *DealPermissionOverrideUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRoleID sets the "role_id" field.
func (_u *DealPermissionOverrideUpdate) SetRoleID(v uuid.UUID) *DealPermissionOverrideUpdate {
	_u.mutation.SetRoleID(v)
	return _u
}

// SetNillableRoleID sets the "role_id" field if the given value is not nil.
func (_u *DealPermissionOverrideUpdate) SetNillableRoleID(v *uuid.UUID) *DealPermissionOverrideUpdate {
	if v != nil {
		_u.SetRoleID(*v)
	}
	return _u
}

// SetDealID sets the "deal_id" field.
func (_u *DealPermissionOverrideUpdate) SetDealID(v uuid.UUID) *DealPermissionOverrideUpdate {
	_u.mutation.SetDealID(v)
	return _u
}

// SetNillableDealID sets the "deal_id" field if the given value is not nil.
func (_u *DealPermissionOverrideUpdate) SetNillableDealID(v *uuid.UUID) *DealPermissionOverrideUpdate {
	if v != nil {
		_u.SetDealID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *DealPermissionOverrideUpdate) SetPath(v string) *DealPermissionOverrideUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *DealPermissionOverrideUpdate) SetNillablePath(v *string) *DealPermissionOverrideUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetPermissionType sets the "permission_type" field.
func (_u *DealPermissionOverrideUpdate) SetPermissionType(v string) *DealPermissionOverrideUpdate {
	_u.mutation.SetPermissionType(v)
	return _u
}

// SetNillablePermissionType sets the "permission_type" field if the given value is not nil.
func (_u *DealPermissionOverrideUpdate) SetNillablePermissionType(v *string) *DealPermissionOverrideUpdate {
	if v != nil {
		_u.SetPermissionType(*v)
	}
	return _u
}

// SetGranted sets the "granted" field.
func (_u *DealPermissionOverrideUpdate) SetGranted(v bool) *DealPermissionOverrideUpdate {
	_u.mutation.SetGranted(v)
	return _u
}

// SetNillableGranted sets the "granted" field if the given value is not nil.
func (_u *DealPermissionOverrideUpdate) SetNillableGranted(v *bool) *DealPermissionOverrideUpdate {
	if v != nil {
		_u.SetGranted(*v)
	}
	return _u
}

// SetRole sets the "role" edge to the StakeholderRole entity.
func (_u *DealPermissionOverrideUpdate) SetRole(v *StakeholderRole) *DealPermissionOverrideUpdate {
	return _u.SetRoleID(v.ID)
}

// Mutation returns the DealPermissionOverrideMutation object of the builder.
func (_u *DealPermissionOverrideUpdate) Mutation() *DealPermissionOverrideMutation {
	return _u.mutation
}

// ClearRole clears the "role" edge to the StakeholderRole entity.
func (_u *DealPermissionOverrideUpdate) ClearRole() *DealPermissionOverrideUpdate {
	_u.mutation.ClearRole()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DealPermissionOverrideUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DealPermissionOverrideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DealPermissionOverrideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DealPermissionOverrideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DealPermissionOverrideUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dealpermissionoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DealPermissionOverrideUpdate) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := dealpermissionoverride.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`repo: validator failed for field "DealPermissionOverride.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PermissionType(); ok {
		if err := dealpermissionoverride.PermissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "permission_type", err: fmt.Errorf(`repo: validator failed for field "DealPermissionOverride.permission_type": %w`, err)}
		}
	}
	if _u.mutation.RoleCleared() && len(_u.mutation.RoleIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DealPermissionOverride.role"`)
	}
	return nil
}

func (_u *DealPermissionOverrideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dealpermissionoverride.Table, dealpermissionoverride.Columns, sqlgraph.NewFieldSpec(dealpermissionoverride.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dealpermissionoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DealID(); ok {
		_spec.SetField(dealpermissionoverride.FieldDealID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(dealpermissionoverride.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.PermissionType(); ok {
		_spec.SetField(dealpermissionoverride.FieldPermissionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Granted(); ok {
		_spec.SetField(dealpermissionoverride.FieldGranted, field.TypeBool, value)
	}
	if _u.mutation.RoleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dealpermissionoverride.RoleTable,
			Columns: []string{dealpermissionoverride.RoleColumn},
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
			Table:   dealpermissionoverride.RoleTable,
			Columns: []string{dealpermissionoverride.RoleColumn},
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
			err = &NotFoundError{dealpermissionoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DealPermissionOverrideUpdateOne is the builder for updating a single DealPermissionOverride entity.
type DealPermissionOverrideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DealPermissionOverrideMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DealPermissionOverrideUpdateOne) SetUpdatedAt(v time.Time) *DealPermissionOverrideUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRoleID sets the "role_id" field.
func (_u *DealPermissionOverrideUpdateOne) SetRoleID(v uuid.UUID) *DealPermissionOverrideUpdateOne {
	_u.mutation.SetRoleID(v)
	return _u
}

// SetNillableRoleID sets the "role_id" field if the given value is not nil.
func (_u *DealPermissionOverrideUpdateOne) SetNillableRoleID(v *uuid.UUID) *DealPermissionOverrideUpdateOne {
	if v != nil {
		_u.SetRoleID(*v)
	}
	return _u
}

// SetDealID sets the "deal_id" field.
func (_u *DealPermissionOverrideUpdateOne) SetDealID(v uuid.UUID) *DealPermissionOverrideUpdateOne {
	_u.mutation.SetDealID(v)
	return _u
}

// SetNillableDealID sets the "deal_id" field if the given value is not nil.
func (_u *DealPermissionOverrideUpdateOne) SetNillableDealID(v *uuid.UUID) *DealPermissionOverrideUpdateOne {
	if v != nil {
		_u.SetDealID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *DealPermissionOverrideUpdateOne) SetPath(v string) *DealPermissionOverrideUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *DealPermissionOverrideUpdateOne) SetNillablePath(v *string) *DealPermissionOverrideUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetPermissionType sets the "permission_type" field.
func (_u *DealPermissionOverrideUpdateOne) SetPermissionType(v string) *DealPermissionOverrideUpdateOne {
	_u.mutation.SetPermissionType(v)
	return _u
}

// SetNillablePermissionType sets the "permission_type" field if the given value is not nil.
func (_u *DealPermissionOverrideUpdateOne) SetNillablePermissionType(v *string) *DealPermissionOverrideUpdateOne {
	if v != nil {
		_u.SetPermissionType(*v)
	}
	return _u
}

// SetGranted sets the "granted" field.
func (_u *DealPermissionOverrideUpdateOne) SetGranted(v bool) *DealPermissionOverrideUpdateOne {
	_u.mutation.SetGranted(v)
	return _u
}

// SetNillableGranted sets the "granted" field if the given value is not nil.
func (_u *DealPermissionOverrideUpdateOne) SetNillableGranted(v *bool) *DealPermissionOverrideUpdateOne {
	if v != nil {
		_u.SetGranted(*v)
	}
	return _u
}

// SetRole sets the "role" edge to the StakeholderRole entity.
func (_u *DealPermissionOverrideUpdateOne) SetRole(v *StakeholderRole) *DealPermissionOverrideUpdateOne {
	return _u.SetRoleID(v.ID)
}

// Mutation returns the DealPermissionOverrideMutation object of the builder.
func (_u *DealPermissionOverrideUpdateOne) Mutation() *DealPermissionOverrideMutation {
	return _u.mutation
}

// ClearRole clears the "role" edge to the StakeholderRole entity.
func (_u *DealPermissionOverrideUpdateOne) ClearRole() *DealPermissionOverrideUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// Where appends a list predicates to the DealPermissionOverrideUpdate builder.
func (_u *DealPermissionOverrideUpdateOne) Where(ps ...predicate.DealPermissionOverride) *DealPermissionOverrideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DealPermissionOverrideUpdateOne) Select(field string, fields ...string) *DealPermissionOverrideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DealPermissionOverride entity.
func (_u *DealPermissionOverrideUpdateOne) Save(ctx context.Context) (*DealPermissionOverride, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DealPermissionOverrideUpdateOne) SaveX(ctx context.Context) *DealPermissionOverride {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DealPermissionOverrideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DealPermissionOverrideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DealPermissionOverrideUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dealpermissionoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DealPermissionOverrideUpdateOne) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := dealpermissionoverride.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`repo: validator failed for field "DealPermissionOverride.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PermissionType(); ok {
		if err := dealpermissionoverride.PermissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "permission_type", err: fmt.Errorf(`repo: validator failed for field "DealPermissionOverride.permission_type": %w`, err)}
		}
	}
	if _u.mutation.RoleCleared() && len(_u.mutation.RoleIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DealPermissionOverride.role"`)
	}
	return nil
}

func (_u *DealPermissionOverrideUpdateOne) sqlSave(ctx context.Context) (_node *DealPermissionOverride, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dealpermissionoverride.Table, dealpermissionoverride.Columns, sqlgraph.NewFieldSpec(dealpermissionoverride.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DealPermissionOverride.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dealpermissionoverride.FieldID)
		for _, f := range fields {
			if !dealpermissionoverride.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != dealpermissionoverride.FieldID {
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
		_spec.SetField(dealpermissionoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DealID(); ok {
		_spec.SetField(dealpermissionoverride.FieldDealID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(dealpermissionoverride.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.PermissionType(); ok {
		_spec.SetField(dealpermissionoverride.FieldPermissionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Granted(); ok {
		_spec.SetField(dealpermissionoverride.FieldGranted, field.TypeBool, value)
	}
	if _u.mutation.RoleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dealpermissionoverride.RoleTable,
			Columns: []string{dealpermissionoverride.RoleColumn},
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
			Table:   dealpermissionoverride.RoleTable,
			Columns: []string{dealpermissionoverride.RoleColumn},
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
	_node = &DealPermissionOverride{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dealpermissionoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
