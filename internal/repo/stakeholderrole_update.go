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
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/permissiongrant"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/predicate"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/google/uuid"
)

// StakeholderRoleUpdate is the builder for updating StakeholderRole entities.
type StakeholderRoleUpdate struct {
	config
	hooks    []Hook
	mutation *StakeholderRoleMutation
}

// Where appends a list predicates to the StakeholderRoleUpdate builder.
func (_u *StakeholderRoleUpdate) Where(ps ...predicate.StakeholderRole) *StakeholderRoleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StakeholderRoleUpdate) SetUpdatedAt(v time.Time) *StakeholderRoleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFundID sets the "fund_id" field.
func (_u *StakeholderRoleUpdate) SetFundID(v uuid.UUID) *StakeholderRoleUpdate {
	_u.mutation.SetFundID(v)
	return _u
}

// SetNillableFundID sets the "fund_id" field if the given value is not nil.
func (_u *StakeholderRoleUpdate) SetNillableFundID(v *uuid.UUID) *StakeholderRoleUpdate {
	if v != nil {
		_u.SetFundID(*v)
	}
	return _u
}

// SetRoleName sets the "role_name" field.
func (_u *StakeholderRoleUpdate) SetRoleName(v string) *StakeholderRoleUpdate {
	_u.mutation.SetRoleName(v)
	return _u
}

// SetNillableRoleName sets the "role_name" field if the given value is not nil.
func (_u *StakeholderRoleUpdate) SetNillableRoleName(v *string) *StakeholderRoleUpdate {
	if v != nil {
		_u.SetRoleName(*v)
	}
	return _u
}

// SetRoleKind sets the "role_kind" field.
func (_u *StakeholderRoleUpdate) SetRoleKind(v stakeholderrole.RoleKind) *StakeholderRoleUpdate {
	_u.mutation.SetRoleKind(v)
	return _u
}

// SetNillableRoleKind sets the "role_kind" field if the given value is not nil.
func (_u *StakeholderRoleUpdate) SetNillableRoleKind(v *stakeholderrole.RoleKind) *StakeholderRoleUpdate {
	if v != nil {
		_u.SetRoleKind(*v)
	}
	return _u
}

// SetBaseType sets the "base_type" field.
func (_u *StakeholderRoleUpdate) SetBaseType(v string) *StakeholderRoleUpdate {
	_u.mutation.SetBaseType(v)
	return _u
}

// SetNillableBaseType sets the "base_type" field if the given value is not nil.
func (_u *StakeholderRoleUpdate) SetNillableBaseType(v *string) *StakeholderRoleUpdate {
	if v != nil {
		_u.SetBaseType(*v)
	}
	return _u
}

// ClearBaseType clears the value of the "base_type" field.
func (_u *StakeholderRoleUpdate) ClearBaseType() *StakeholderRoleUpdate {
	_u.mutation.ClearBaseType()
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *StakeholderRoleUpdate) SetIsDefault(v bool) *StakeholderRoleUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *StakeholderRoleUpdate) SetNillableIsDefault(v *bool) *StakeholderRoleUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetFund sets the "fund" edge to the Fund entity.
func (_u *StakeholderRoleUpdate) SetFund(v *Fund) *StakeholderRoleUpdate {
	return _u.SetFundID(v.ID)
}

// AddGrantIDs adds the "grants" edge to the PermissionGrant entity by IDs.
func (_u *StakeholderRoleUpdate) AddGrantIDs(ids ...uuid.UUID) *StakeholderRoleUpdate {
	_u.mutation.AddGrantIDs(ids...)
	return _u
}

// AddGrants adds the "grants" edges to the PermissionGrant entity.
func (_u *StakeholderRoleUpdate) AddGrants(v ...*PermissionGrant) *StakeholderRoleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrantIDs(ids...)
}

// AddOverrideIDs adds the "overrides" edge to the DealPermissionOverride entity by IDs.
func (_u *StakeholderRoleUpdate) AddOverrideIDs(ids ...uuid.UUID) *StakeholderRoleUpdate {
	_u.mutation.AddOverrideIDs(ids...)
	return _u
}

// AddOverrides adds the "overrides" edges to the DealPermissionOverride entity.
func (_u *StakeholderRoleUpdate) AddOverrides(v ...*DealPermissionOverride) *StakeholderRoleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOverrideIDs(ids...)
}

// Mutation returns the StakeholderRoleMutation object of the builder.
func (_u *StakeholderRoleUpdate) Mutation() *StakeholderRoleMutation {
	return _u.mutation
}

// ClearFund clears the "fund" edge to the Fund entity.
func (_u *StakeholderRoleUpdate) ClearFund() *StakeholderRoleUpdate {
	_u.mutation.ClearFund()
	return _u
}

// ClearGrants clears all "grants" edges to the PermissionGrant entity.
func (_u *StakeholderRoleUpdate) ClearGrants() *StakeholderRoleUpdate {
	_u.mutation.ClearGrants()
	return _u
}

// RemoveGrantIDs removes the "grants" edge to PermissionGrant entities by IDs.
func (_u *StakeholderRoleUpdate) RemoveGrantIDs(ids ...uuid.UUID) *StakeholderRoleUpdate {
	_u.mutation.RemoveGrantIDs(ids...)
	return _u
}

// RemoveGrants removes "grants" edges to PermissionGrant entities.
func (_u *StakeholderRoleUpdate) RemoveGrants(v ...*PermissionGrant) *StakeholderRoleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrantIDs(ids...)
}

// ClearOverrides clears all "overrides" edges to the DealPermissionOverride entity.
func (_u *StakeholderRoleUpdate) ClearOverrides() *StakeholderRoleUpdate {
	_u.mutation.ClearOverrides()
	return _u
}

// RemoveOverrideIDs removes the "overrides" edge to DealPermissionOverride entities by IDs.
func (_u *StakeholderRoleUpdate) RemoveOverrideIDs(ids ...uuid.UUID) *StakeholderRoleUpdate {
	_u.mutation.RemoveOverrideIDs(ids...)
	return _u
}

// RemoveOverrides removes "overrides" edges to DealPermissionOverride entities.
func (_u *StakeholderRoleUpdate) RemoveOverrides(v ...*DealPermissionOverride) *StakeholderRoleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOverrideIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StakeholderRoleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StakeholderRoleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StakeholderRoleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StakeholderRoleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StakeholderRoleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stakeholderrole.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StakeholderRoleUpdate) check() error {
	if v, ok := _u.mutation.RoleName(); ok {
		if err := stakeholderrole.RoleNameValidator(v); err != nil {
			return &ValidationError{Name: "role_name", err: fmt.Errorf(`repo: validator failed for field "StakeholderRole.role_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoleKind(); ok {
		if err := stakeholderrole.RoleKindValidator(v); err != nil {
			return &ValidationError{Name: "role_kind", err: fmt.Errorf(`repo: validator failed for field "StakeholderRole.role_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseType(); ok {
		if err := stakeholderrole.BaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "base_type", err: fmt.Errorf(`repo: validator failed for field "StakeholderRole.base_type": %w`, err)}
		}
	}
	if _u.mutation.FundCleared() && len(_u.mutation.FundIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StakeholderRole.fund"`)
	}
	return nil
}

func (_u *StakeholderRoleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stakeholderrole.Table, stakeholderrole.Columns, sqlgraph.NewFieldSpec(stakeholderrole.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stakeholderrole.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RoleName(); ok {
		_spec.SetField(stakeholderrole.FieldRoleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoleKind(); ok {
		_spec.SetField(stakeholderrole.FieldRoleKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaseType(); ok {
		_spec.SetField(stakeholderrole.FieldBaseType, field.TypeString, value)
	}
	if _u.mutation.BaseTypeCleared() {
		_spec.ClearField(stakeholderrole.FieldBaseType, field.TypeString)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(stakeholderrole.FieldIsDefault, field.TypeBool, value)
	}
	if _u.mutation.FundCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stakeholderrole.FundTable,
			Columns: []string{stakeholderrole.FundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fund.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FundIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stakeholderrole.FundTable,
			Columns: []string{stakeholderrole.FundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fund.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.GrantsTable,
			Columns: []string{stakeholderrole.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(permissiongrant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrantsIDs(); len(nodes) > 0 && !_u.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.GrantsTable,
			Columns: []string{stakeholderrole.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(permissiongrant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.GrantsTable,
			Columns: []string{stakeholderrole.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(permissiongrant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OverridesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.OverridesTable,
			Columns: []string{stakeholderrole.OverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealpermissionoverride.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOverridesIDs(); len(nodes) > 0 && !_u.mutation.OverridesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.OverridesTable,
			Columns: []string{stakeholderrole.OverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealpermissionoverride.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OverridesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.OverridesTable,
			Columns: []string{stakeholderrole.OverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealpermissionoverride.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stakeholderrole.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StakeholderRoleUpdateOne is the builder for updating a single StakeholderRole entity.
type StakeholderRoleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StakeholderRoleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StakeholderRoleUpdateOne) SetUpdatedAt(v time.Time) *StakeholderRoleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFundID sets the "fund_id" field.
func (_u *StakeholderRoleUpdateOne) SetFundID(v uuid.UUID) *StakeholderRoleUpdateOne {
	_u.mutation.SetFundID(v)
	return _u
}

// SetNillableFundID sets the "fund_id" field if the given value is not nil.
func (_u *StakeholderRoleUpdateOne) SetNillableFundID(v *uuid.UUID) *StakeholderRoleUpdateOne {
	if v != nil {
		_u.SetFundID(*v)
	}
	return _u
}

// SetRoleName sets the "role_name" field.
func (_u *StakeholderRoleUpdateOne) SetRoleName(v string) *StakeholderRoleUpdateOne {
	_u.mutation.SetRoleName(v)
	return _u
}

// SetNillableRoleName sets the "role_name" field if the given value is not nil.
func (_u *StakeholderRoleUpdateOne) SetNillableRoleName(v *string) *StakeholderRoleUpdateOne {
	if v != nil {
		_u.SetRoleName(*v)
	}
	return _u
}

// SetRoleKind sets the "role_kind" field.
func (_u *StakeholderRoleUpdateOne) SetRoleKind(v stakeholderrole.RoleKind) *StakeholderRoleUpdateOne {
	_u.mutation.SetRoleKind(v)
	return _u
}

// SetNillableRoleKind sets the "role_kind" field if the given value is not nil.
func (_u *StakeholderRoleUpdateOne) SetNillableRoleKind(v *stakeholderrole.RoleKind) *StakeholderRoleUpdateOne {
	if v != nil {
		_u.SetRoleKind(*v)
	}
	return _u
}

// SetBaseType sets the "base_type" field.
func (_u *StakeholderRoleUpdateOne) SetBaseType(v string) *StakeholderRoleUpdateOne {
	_u.mutation.SetBaseType(v)
	return _u
}

// SetNillableBaseType sets the "base_type" field if the given value is not nil.
func (_u *StakeholderRoleUpdateOne) SetNillableBaseType(v *string) *StakeholderRoleUpdateOne {
	if v != nil {
		_u.SetBaseType(*v)
	}
	return _u
}

// ClearBaseType clears the value of the "base_type" field.
func (_u *StakeholderRoleUpdateOne) ClearBaseType() *StakeholderRoleUpdateOne {
	_u.mutation.ClearBaseType()
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *StakeholderRoleUpdateOne) SetIsDefault(v bool) *StakeholderRoleUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *StakeholderRoleUpdateOne) SetNillableIsDefault(v *bool) *StakeholderRoleUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetFund sets the "fund" edge to the Fund entity.
func (_u *StakeholderRoleUpdateOne) SetFund(v *Fund) *StakeholderRoleUpdateOne {
	return _u.SetFundID(v.ID)
}

// AddGrantIDs adds the "grants" edge to the PermissionGrant entity by IDs.
func (_u *StakeholderRoleUpdateOne) AddGrantIDs(ids ...uuid.UUID) *StakeholderRoleUpdateOne {
	_u.mutation.AddGrantIDs(ids...)
	return _u
}

// AddGrants adds the "grants" edges to the PermissionGrant entity.
func (_u *StakeholderRoleUpdateOne) AddGrants(v ...*PermissionGrant) *StakeholderRoleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrantIDs(ids...)
}

// AddOverrideIDs adds the "overrides" edge to the DealPermissionOverride entity by IDs.
func (_u *StakeholderRoleUpdateOne) AddOverrideIDs(ids ...uuid.UUID) *StakeholderRoleUpdateOne {
	_u.mutation.AddOverrideIDs(ids...)
	return _u
}

// AddOverrides adds the "overrides" edges to the DealPermissionOverride entity.
func (_u *StakeholderRoleUpdateOne) AddOverrides(v ...*DealPermissionOverride) *StakeholderRoleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOverrideIDs(ids...)
}

// Mutation returns the StakeholderRoleMutation object of the builder.
func (_u *StakeholderRoleUpdateOne) Mutation() *StakeholderRoleMutation {
	return _u.mutation
}

// ClearFund clears the "fund" edge to the Fund entity.
func (_u *StakeholderRoleUpdateOne) ClearFund() *StakeholderRoleUpdateOne {
	_u.mutation.ClearFund()
	return _u
}

// ClearGrants clears all "grants" edges to the PermissionGrant entity.
func (_u *StakeholderRoleUpdateOne) ClearGrants() *StakeholderRoleUpdateOne {
	_u.mutation.ClearGrants()
	return _u
}

// RemoveGrantIDs removes the "grants" edge to PermissionGrant entities by IDs.
func (_u *StakeholderRoleUpdateOne) RemoveGrantIDs(ids ...uuid.UUID) *StakeholderRoleUpdateOne {
	_u.mutation.RemoveGrantIDs(ids...)
	return _u
}

// RemoveGrants removes "grants" edges to PermissionGrant entities.
func (_u *StakeholderRoleUpdateOne) RemoveGrants(v ...*PermissionGrant) *StakeholderRoleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrantIDs(ids...)
}

// ClearOverrides clears all "overrides" edges to the DealPermissionOverride entity.
func (_u *StakeholderRoleUpdateOne) ClearOverrides() *StakeholderRoleUpdateOne {
	_u.mutation.ClearOverrides()
	return _u
}

// RemoveOverrideIDs removes the "overrides" edge to DealPermissionOverride entities by IDs.
func (_u *StakeholderRoleUpdateOne) RemoveOverrideIDs(ids ...uuid.UUID) *StakeholderRoleUpdateOne {
	_u.mutation.RemoveOverrideIDs(ids...)
	return _u
}

// RemoveOverrides removes "overrides" edges to DealPermissionOverride entities.
func (_u *StakeholderRoleUpdateOne) RemoveOverrides(v ...*DealPermissionOverride) *StakeholderRoleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOverrideIDs(ids...)
}

// Where appends a list predicates to the StakeholderRoleUpdate builder.
func (_u *StakeholderRoleUpdateOne) Where(ps ...predicate.StakeholderRole) *StakeholderRoleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StakeholderRoleUpdateOne) Select(field string, fields ...string) *StakeholderRoleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StakeholderRole entity.
func (_u *StakeholderRoleUpdateOne) Save(ctx context.Context) (*StakeholderRole, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StakeholderRoleUpdateOne) SaveX(ctx context.Context) *StakeholderRole {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StakeholderRoleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StakeholderRoleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StakeholderRoleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stakeholderrole.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StakeholderRoleUpdateOne) check() error {
	if v, ok := _u.mutation.RoleName(); ok {
		if err := stakeholderrole.RoleNameValidator(v); err != nil {
			return &ValidationError{Name: "role_name", err: fmt.Errorf(`repo: validator failed for field "StakeholderRole.role_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoleKind(); ok {
		if err := stakeholderrole.RoleKindValidator(v); err != nil {
			return &ValidationError{Name: "role_kind", err: fmt.Errorf(`repo: validator failed for field "StakeholderRole.role_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseType(); ok {
		if err := stakeholderrole.BaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "base_type", err: fmt.Errorf(`repo: validator failed for field "StakeholderRole.base_type": %w`, err)}
		}
	}
	if _u.mutation.FundCleared() && len(_u.mutation.FundIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StakeholderRole.fund"`)
	}
	return nil
}

func (_u *StakeholderRoleUpdateOne) sqlSave(ctx context.Context) (_node *StakeholderRole, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stakeholderrole.Table, stakeholderrole.Columns, sqlgraph.NewFieldSpec(stakeholderrole.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "StakeholderRole.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stakeholderrole.FieldID)
		for _, f := range fields {
			if !stakeholderrole.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != stakeholderrole.FieldID {
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
		_spec.SetField(stakeholderrole.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RoleName(); ok {
		_spec.SetField(stakeholderrole.FieldRoleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoleKind(); ok {
		_spec.SetField(stakeholderrole.FieldRoleKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaseType(); ok {
		_spec.SetField(stakeholderrole.FieldBaseType, field.TypeString, value)
	}
	if _u.mutation.BaseTypeCleared() {
		_spec.ClearField(stakeholderrole.FieldBaseType, field.TypeString)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(stakeholderrole.FieldIsDefault, field.TypeBool, value)
	}
	if _u.mutation.FundCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stakeholderrole.FundTable,
			Columns: []string{stakeholderrole.FundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fund.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FundIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stakeholderrole.FundTable,
			Columns: []string{stakeholderrole.FundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fund.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.GrantsTable,
			Columns: []string{stakeholderrole.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(permissiongrant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrantsIDs(); len(nodes) > 0 && !_u.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.GrantsTable,
			Columns: []string{stakeholderrole.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(permissiongrant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.GrantsTable,
			Columns: []string{stakeholderrole.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(permissiongrant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OverridesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.OverridesTable,
			Columns: []string{stakeholderrole.OverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealpermissionoverride.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOverridesIDs(); len(nodes) > 0 && !_u.mutation.OverridesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.OverridesTable,
			Columns: []string{stakeholderrole.OverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealpermissionoverride.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OverridesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stakeholderrole.OverridesTable,
			Columns: []string{stakeholderrole.OverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dealpermissionoverride.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StakeholderRole{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stakeholderrole.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
