// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/dealpermissionoverride"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/permissiongrant"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/google/uuid"
)

// StakeholderRoleCreate is the builder for creating a StakeholderRole entity.
type StakeholderRoleCreate struct {
	config
	mutation *StakeholderRoleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StakeholderRoleCreate) SetCreatedAt(v time.Time) *StakeholderRoleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StakeholderRoleCreate) SetNillableCreatedAt(v *time.Time) *StakeholderRoleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StakeholderRoleCreate) SetUpdatedAt(v time.Time) *StakeholderRoleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StakeholderRoleCreate) SetNillableUpdatedAt(v *time.Time) *StakeholderRoleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFundID sets the "fund_id" field.
func (_c *StakeholderRoleCreate) SetFundID(v uuid.UUID) *StakeholderRoleCreate {
	_c.mutation.SetFundID(v)
	return _c
}

// SetRoleName sets the "role_name" field.
func (_c *StakeholderRoleCreate) SetRoleName(v string) *StakeholderRoleCreate {
	_c.mutation.SetRoleName(v)
	return _c
}

// SetRoleKind sets the "role_kind" field.
func (_c *StakeholderRoleCreate) SetRoleKind(v stakeholderrole.RoleKind) *StakeholderRoleCreate {
	_c.mutation.SetRoleKind(v)
	return _c
}

// SetBaseType sets the "base_type" field.
func (_c *StakeholderRoleCreate) SetBaseType(v string) *StakeholderRoleCreate {
	_c.mutation.SetBaseType(v)
	return _c
}

// SetNillableBaseType sets the "base_type" field if the given value is not nil.
func (_c *StakeholderRoleCreate) SetNillableBaseType(v *string) *StakeholderRoleCreate {
	if v != nil {
		_c.SetBaseType(*v)
	}
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *StakeholderRoleCreate) SetIsDefault(v bool) *StakeholderRoleCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *StakeholderRoleCreate) SetNillableIsDefault(v *bool) *StakeholderRoleCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StakeholderRoleCreate) SetID(v uuid.UUID) *StakeholderRoleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StakeholderRoleCreate) SetNillableID(v *uuid.UUID) *StakeholderRoleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFund sets the "fund" edge to the Fund entity.
func (_c *StakeholderRoleCreate) SetFund(v *Fund) *StakeholderRoleCreate {
	return _c.SetFundID(v.ID)
}

// AddGrantIDs adds the "grants" edge to the PermissionGrant entity by IDs.
func (_c *StakeholderRoleCreate) AddGrantIDs(ids ...uuid.UUID) *StakeholderRoleCreate {
	_c.mutation.AddGrantIDs(ids...)
	return _c
}

// AddGrants adds the "grants" edges to the PermissionGrant entity.
func (_c *StakeholderRoleCreate) AddGrants(v ...*PermissionGrant) *StakeholderRoleCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGrantIDs(ids...)
}

// AddOverrideIDs adds the "overrides" edge to the DealPermissionOverride entity by IDs.
func (_c *StakeholderRoleCreate) AddOverrideIDs(ids ...uuid.UUID) *StakeholderRoleCreate {
	_c.mutation.AddOverrideIDs(ids...)
	return _c
}

// AddOverrides adds the "overrides" edges to the DealPermissionOverride entity.
func (_c *StakeholderRoleCreate) AddOverrides(v ...*DealPermissionOverride) *StakeholderRoleCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOverrideIDs(ids...)
}

// Mutation returns the StakeholderRoleMutation object of the builder.
func (_c *StakeholderRoleCreate) Mutation() *StakeholderRoleMutation {
	return _c.mutation
}

// Save creates the StakeholderRole in the database.
func (_c *StakeholderRoleCreate) Save(ctx context.Context) (*StakeholderRole, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StakeholderRoleCreate) SaveX(ctx context.Context) *StakeholderRole {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StakeholderRoleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StakeholderRoleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StakeholderRoleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stakeholderrole.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stakeholderrole.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := stakeholderrole.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := stakeholderrole.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StakeholderRoleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "StakeholderRole.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "StakeholderRole.updated_at"`)}
	}
	if _, ok := _c.mutation.FundID(); !ok {
		return &ValidationError{Name: "fund_id", err: errors.New(`repo: missing required field "StakeholderRole.fund_id"`)}
	}
	if _, ok := _c.mutation.RoleName(); !ok {
		return &ValidationError{Name: "role_name", err: errors.New(`repo: missing required field "StakeholderRole.role_name"`)}
	}
	if v, ok := _c.mutation.RoleName(); ok {
		if err := stakeholderrole.RoleNameValidator(v); err != nil {
			return &ValidationError{Name: "role_name", err: fmt.Errorf(`repo: validator failed for field "StakeholderRole.role_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoleKind(); !ok {
		return &ValidationError{Name: "role_kind", err: errors.New(`repo: missing required field "StakeholderRole.role_kind"`)}
	}
	if v, ok := _c.mutation.RoleKind(); ok {
		if err := stakeholderrole.RoleKindValidator(v); err != nil {
			return &ValidationError{Name: "role_kind", err: fmt.Errorf(`repo: validator failed for field "StakeholderRole.role_kind": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BaseType(); ok {
		if err := stakeholderrole.BaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "base_type", err: fmt.Errorf(`repo: validator failed for field "StakeholderRole.base_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`repo: missing required field "StakeholderRole.is_default"`)}
	}
	if len(_c.mutation.FundIDs()) == 0 {
		return &ValidationError{Name: "fund", err: errors.New(`repo: missing required edge "StakeholderRole.fund"`)}
	}
	return nil
}

func (_c *StakeholderRoleCreate) sqlSave(ctx context.Context) (*StakeholderRole, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StakeholderRoleCreate) createSpec() (*StakeholderRole, *sqlgraph.CreateSpec) {
	var (
		_node = &StakeholderRole{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stakeholderrole.Table, sqlgraph.NewFieldSpec(stakeholderrole.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stakeholderrole.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stakeholderrole.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RoleName(); ok {
		_spec.SetField(stakeholderrole.FieldRoleName, field.TypeString, value)
		_node.RoleName = value
	}
	if value, ok := _c.mutation.RoleKind(); ok {
		_spec.SetField(stakeholderrole.FieldRoleKind, field.TypeEnum, value)
		_node.RoleKind = value
	}
	if value, ok := _c.mutation.BaseType(); ok {
		_spec.SetField(stakeholderrole.FieldBaseType, field.TypeString, value)
		_node.BaseType = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(stakeholderrole.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if nodes := _c.mutation.FundIDs(); len(nodes) > 0 {
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
		_node.FundID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GrantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OverridesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StakeholderRole.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StakeholderRoleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StakeholderRoleCreate) OnConflict(opts ...sql.ConflictOption) *StakeholderRoleUpsertOne {
	_c.conflict = opts
	return &StakeholderRoleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StakeholderRole.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StakeholderRoleCreate) OnConflictColumns(columns ...string) *StakeholderRoleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StakeholderRoleUpsertOne{
		create: _c,
	}
}

type (
	// StakeholderRoleUpsertOne is the builder for "upsert"-ing
	//  one StakeholderRole node.
	StakeholderRoleUpsertOne struct {
		create *StakeholderRoleCreate
	}

	// StakeholderRoleUpsert is the "OnConflict" setter.
	StakeholderRoleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StakeholderRoleUpsert) SetUpdatedAt(v time.Time) *StakeholderRoleUpsert {
	u.Set(stakeholderrole.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StakeholderRoleUpsert) UpdateUpdatedAt() *StakeholderRoleUpsert {
	u.SetExcluded(stakeholderrole.FieldUpdatedAt)
	return u
}

// SetFundID sets the "fund_id" field.
func (u *StakeholderRoleUpsert) SetFundID(v uuid.UUID) *StakeholderRoleUpsert {
	u.Set(stakeholderrole.FieldFundID, v)
	return u
}

// UpdateFundID sets the "fund_id" field to the value that was provided on create.
func (u *StakeholderRoleUpsert) UpdateFundID() *StakeholderRoleUpsert {
	u.SetExcluded(stakeholderrole.FieldFundID)
	return u
}

// SetRoleName sets the "role_name" field.
func (u *StakeholderRoleUpsert) SetRoleName(v string) *StakeholderRoleUpsert {
	u.Set(stakeholderrole.FieldRoleName, v)
	return u
}

// UpdateRoleName sets the "role_name" field to the value that was provided on create.
func (u *StakeholderRoleUpsert) UpdateRoleName() *StakeholderRoleUpsert {
	u.SetExcluded(stakeholderrole.FieldRoleName)
	return u
}

// SetRoleKind sets the "role_kind" field.
func (u *StakeholderRoleUpsert) SetRoleKind(v stakeholderrole.RoleKind) *StakeholderRoleUpsert {
	u.Set(stakeholderrole.FieldRoleKind, v)
	return u
}

// UpdateRoleKind sets the "role_kind" field to the value that was provided on create.
func (u *StakeholderRoleUpsert) UpdateRoleKind() *StakeholderRoleUpsert {
	u.SetExcluded(stakeholderrole.FieldRoleKind)
	return u
}

// SetBaseType sets the "base_type" field.
func (u *StakeholderRoleUpsert) SetBaseType(v string) *StakeholderRoleUpsert {
	u.Set(stakeholderrole.FieldBaseType, v)
	return u
}

// UpdateBaseType sets the "base_type" field to the value that was provided on create.
func (u *StakeholderRoleUpsert) UpdateBaseType() *StakeholderRoleUpsert {
	u.SetExcluded(stakeholderrole.FieldBaseType)
	return u
}

// ClearBaseType clears the value of the "base_type" field.
func (u *StakeholderRoleUpsert) ClearBaseType() *StakeholderRoleUpsert {
	u.SetNull(stakeholderrole.FieldBaseType)
	return u
}

// SetIsDefault sets the "is_default" field.
func (u *StakeholderRoleUpsert) SetIsDefault(v bool) *StakeholderRoleUpsert {
	u.Set(stakeholderrole.FieldIsDefault, v)
	return u
}

// UpdateIsDefault sets the "is_default" field to the value that was provided on create.
func (u *StakeholderRoleUpsert) UpdateIsDefault() *StakeholderRoleUpsert {
	u.SetExcluded(stakeholderrole.FieldIsDefault)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StakeholderRole.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stakeholderrole.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StakeholderRoleUpsertOne) UpdateNewValues() *StakeholderRoleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stakeholderrole.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stakeholderrole.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StakeholderRole.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StakeholderRoleUpsertOne) Ignore() *StakeholderRoleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StakeholderRoleUpsertOne) DoNothing() *StakeholderRoleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StakeholderRoleCreate.OnConflict
// documentation for more info.
func (u *StakeholderRoleUpsertOne) Update(set func(*StakeholderRoleUpsert)) *StakeholderRoleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StakeholderRoleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StakeholderRoleUpsertOne) SetUpdatedAt(v time.Time) *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StakeholderRoleUpsertOne) UpdateUpdatedAt() *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFundID sets the "fund_id" field.
func (u *StakeholderRoleUpsertOne) SetFundID(v uuid.UUID) *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetFundID(v)
	})
}

// UpdateFundID sets the "fund_id" field to the value that was provided on create.
func (u *StakeholderRoleUpsertOne) UpdateFundID() *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateFundID()
	})
}

// SetRoleName sets the "role_name" field.
func (u *StakeholderRoleUpsertOne) SetRoleName(v string) *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetRoleName(v)
	})
}

// UpdateRoleName sets the "role_name" field to the value that was provided on create.
func (u *StakeholderRoleUpsertOne) UpdateRoleName() *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateRoleName()
	})
}

// SetRoleKind sets the "role_kind" field.
func (u *StakeholderRoleUpsertOne) SetRoleKind(v stakeholderrole.RoleKind) *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetRoleKind(v)
	})
}

// UpdateRoleKind sets the "role_kind" field to the value that was provided on create.
func (u *StakeholderRoleUpsertOne) UpdateRoleKind() *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateRoleKind()
	})
}

// SetBaseType sets the "base_type" field.
func (u *StakeholderRoleUpsertOne) SetBaseType(v string) *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetBaseType(v)
	})
}

// UpdateBaseType sets the "base_type" field to the value that was provided on create.
func (u *StakeholderRoleUpsertOne) UpdateBaseType() *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateBaseType()
	})
}

// ClearBaseType clears the value of the "base_type" field.
func (u *StakeholderRoleUpsertOne) ClearBaseType() *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.ClearBaseType()
	})
}

// SetIsDefault sets the "is_default" field.
func (u *StakeholderRoleUpsertOne) SetIsDefault(v bool) *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetIsDefault(v)
	})
}

// UpdateIsDefault sets the "is_default" field to the value that was provided on create.
func (u *StakeholderRoleUpsertOne) UpdateIsDefault() *StakeholderRoleUpsertOne {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateIsDefault()
	})
}

// Exec executes the query.
func (u *StakeholderRoleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StakeholderRoleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StakeholderRoleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StakeholderRoleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: StakeholderRoleUpsertOne.ID is not supported by MySQL driver. Use StakeholderRoleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StakeholderRoleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StakeholderRoleCreateBulk is the builder for creating many StakeholderRole entities in bulk.
type StakeholderRoleCreateBulk struct {
	config
	err      error
	builders []*StakeholderRoleCreate
	conflict []sql.ConflictOption
}

// Save creates the StakeholderRole entities in the database.
func (_c *StakeholderRoleCreateBulk) Save(ctx context.Context) ([]*StakeholderRole, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StakeholderRole, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StakeholderRoleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StakeholderRoleCreateBulk) SaveX(ctx context.Context) []*StakeholderRole {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StakeholderRoleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StakeholderRoleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StakeholderRole.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StakeholderRoleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StakeholderRoleCreateBulk) OnConflict(opts ...sql.ConflictOption) *StakeholderRoleUpsertBulk {
	_c.conflict = opts
	return &StakeholderRoleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StakeholderRole.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StakeholderRoleCreateBulk) OnConflictColumns(columns ...string) *StakeholderRoleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StakeholderRoleUpsertBulk{
		create: _c,
	}
}

// StakeholderRoleUpsertBulk is the builder for "upsert"-ing
// a bulk of StakeholderRole nodes.
type StakeholderRoleUpsertBulk struct {
	create *StakeholderRoleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StakeholderRole.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stakeholderrole.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StakeholderRoleUpsertBulk) UpdateNewValues() *StakeholderRoleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stakeholderrole.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stakeholderrole.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StakeholderRole.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StakeholderRoleUpsertBulk) Ignore() *StakeholderRoleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StakeholderRoleUpsertBulk) DoNothing() *StakeholderRoleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StakeholderRoleCreateBulk.OnConflict
// documentation for more info.
func (u *StakeholderRoleUpsertBulk) Update(set func(*StakeholderRoleUpsert)) *StakeholderRoleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StakeholderRoleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StakeholderRoleUpsertBulk) SetUpdatedAt(v time.Time) *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StakeholderRoleUpsertBulk) UpdateUpdatedAt() *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFundID sets the "fund_id" field.
func (u *StakeholderRoleUpsertBulk) SetFundID(v uuid.UUID) *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetFundID(v)
	})
}

// UpdateFundID sets the "fund_id" field to the value that was provided on create.
func (u *StakeholderRoleUpsertBulk) UpdateFundID() *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateFundID()
	})
}

// SetRoleName sets the "role_name" field.
func (u *StakeholderRoleUpsertBulk) SetRoleName(v string) *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetRoleName(v)
	})
}

// UpdateRoleName sets the "role_name" field to the value that was provided on create.
func (u *StakeholderRoleUpsertBulk) UpdateRoleName() *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateRoleName()
	})
}

// SetRoleKind sets the "role_kind" field.
func (u *StakeholderRoleUpsertBulk) SetRoleKind(v stakeholderrole.RoleKind) *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetRoleKind(v)
	})
}

// UpdateRoleKind sets the "role_kind" field to the value that was provided on create.
func (u *StakeholderRoleUpsertBulk) UpdateRoleKind() *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateRoleKind()
	})
}

// SetBaseType sets the "base_type" field.
func (u *StakeholderRoleUpsertBulk) SetBaseType(v string) *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetBaseType(v)
	})
}

// UpdateBaseType sets the "base_type" field to the value that was provided on create.
func (u *StakeholderRoleUpsertBulk) UpdateBaseType() *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateBaseType()
	})
}

// ClearBaseType clears the value of the "base_type" field.
func (u *StakeholderRoleUpsertBulk) ClearBaseType() *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.ClearBaseType()
	})
}

// SetIsDefault sets the "is_default" field.
func (u *StakeholderRoleUpsertBulk) SetIsDefault(v bool) *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.SetIsDefault(v)
	})
}

// UpdateIsDefault sets the "is_default" field to the value that was provided on create.
func (u *StakeholderRoleUpsertBulk) UpdateIsDefault() *StakeholderRoleUpsertBulk {
	return u.Update(func(s *StakeholderRoleUpsert) {
		s.UpdateIsDefault()
	})
}

// Exec executes the query.
func (u *StakeholderRoleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the StakeholderRoleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StakeholderRoleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StakeholderRoleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
