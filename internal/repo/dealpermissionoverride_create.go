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
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/google/uuid"
)

// DealPermissionOverrideCreate is the builder for creating a DealPermissionOverride entity.
type DealPermissionOverrideCreate struct {
	config
	mutation *DealPermissionOverrideMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DealPermissionOverrideCreate) SetCreatedAt(v time.Time) *DealPermissionOverrideCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DealPermissionOverrideCreate) SetNillableCreatedAt(v *time.Time) *DealPermissionOverrideCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DealPermissionOverrideCreate) SetUpdatedAt(v time.Time) *DealPermissionOverrideCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DealPermissionOverrideCreate) SetNillableUpdatedAt(v *time.Time) *DealPermissionOverrideCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRoleID sets the "role_id" field.
func (_c *DealPermissionOverrideCreate) SetRoleID(v uuid.UUID) *DealPermissionOverrideCreate {
	_c.mutation.SetRoleID(v)
	return _c
}

// SetDealID sets the "deal_id" field.
func (_c *DealPermissionOverrideCreate) SetDealID(v uuid.UUID) *DealPermissionOverrideCreate {
	_c.mutation.SetDealID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *DealPermissionOverrideCreate) SetPath(v string) *DealPermissionOverrideCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetPermissionType sets the "permission_type" field.
func (_c *DealPermissionOverrideCreate) SetPermissionType(v string) *DealPermissionOverrideCreate {
	_c.mutation.SetPermissionType(v)
	return _c
}

// SetGranted sets the "granted" field.
func (_c *DealPermissionOverrideCreate) SetGranted(v bool) *DealPermissionOverrideCreate {
	_c.mutation.SetGranted(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DealPermissionOverrideCreate) SetID(v uuid.UUID) *DealPermissionOverrideCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DealPermissionOverrideCreate) SetNillableID(v *uuid.UUID) *DealPermissionOverrideCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRole sets the "role" edge to the StakeholderRole entity.
func (_c *DealPermissionOverrideCreate) SetRole(v *StakeholderRole) *DealPermissionOverrideCreate {
	return _c.SetRoleID(v.ID)
}

// Mutation returns the DealPermissionOverrideMutation object of the builder.
func (_c *DealPermissionOverrideCreate) Mutation() *DealPermissionOverrideMutation {
	return _c.mutation
}

// Save creates the DealPermissionOverride in the database.
func (_c *DealPermissionOverrideCreate) Save(ctx context.Context) (*DealPermissionOverride, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DealPermissionOverrideCreate) SaveX(ctx context.Context) *DealPermissionOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DealPermissionOverrideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DealPermissionOverrideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DealPermissionOverrideCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dealpermissionoverride.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dealpermissionoverride.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dealpermissionoverride.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DealPermissionOverrideCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DealPermissionOverride.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DealPermissionOverride.updated_at"`)}
	}
	if _, ok := _c.mutation.RoleID(); !ok {
		return &ValidationError{Name: "role_id", err: errors.New(`repo: missing required field "DealPermissionOverride.role_id"`)}
	}
	if _, ok := _c.mutation.DealID(); !ok {
		return &ValidationError{Name: "deal_id", err: errors.New(`repo: missing required field "DealPermissionOverride.deal_id"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`repo: missing required field "DealPermissionOverride.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := dealpermissionoverride.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`repo: validator failed for field "DealPermissionOverride.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PermissionType(); !ok {
		return &ValidationError{Name: "permission_type", err: errors.New(`repo: missing required field "DealPermissionOverride.permission_type"`)}
	}
	if v, ok := _c.mutation.PermissionType(); ok {
		if err := dealpermissionoverride.PermissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "permission_type", err: fmt.Errorf(`repo: validator failed for field "DealPermissionOverride.permission_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Granted(); !ok {
		return &ValidationError{Name: "granted", err: errors.New(`repo: missing required field "DealPermissionOverride.granted"`)}
	}
	if len(_c.mutation.RoleIDs()) == 0 {
		return &ValidationError{Name: "role", err: errors.New(`repo: missing required edge "DealPermissionOverride.role"`)}
	}
	return nil
}

func (_c *DealPermissionOverrideCreate) sqlSave(ctx context.Context) (*DealPermissionOverride, error) {
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

func (_c *DealPermissionOverrideCreate) createSpec() (*DealPermissionOverride, *sqlgraph.CreateSpec) {
	var (
		_node = &DealPermissionOverride{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dealpermissionoverride.Table, sqlgraph.NewFieldSpec(dealpermissionoverride.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dealpermissionoverride.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dealpermissionoverride.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DealID(); ok {
		_spec.SetField(dealpermissionoverride.FieldDealID, field.TypeUUID, value)
		_node.DealID = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(dealpermissionoverride.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.PermissionType(); ok {
		_spec.SetField(dealpermissionoverride.FieldPermissionType, field.TypeString, value)
		_node.PermissionType = value
	}
	if value, ok := _c.mutation.Granted(); ok {
		_spec.SetField(dealpermissionoverride.FieldGranted, field.TypeBool, value)
		_node.Granted = value
	}
	if nodes := _c.mutation.RoleIDs(); len(nodes) > 0 {
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
		_node.RoleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DealPermissionOverride.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DealPermissionOverrideUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DealPermissionOverrideCreate) OnConflict(opts ...sql.ConflictOption) *DealPermissionOverrideUpsertOne {
	_c.conflict = opts
	return &DealPermissionOverrideUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DealPermissionOverride.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DealPermissionOverrideCreate) OnConflictColumns(columns ...string) *DealPermissionOverrideUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DealPermissionOverrideUpsertOne{
		create: _c,
	}
}

type (
	// DealPermissionOverrideUpsertOne is the builder for "upsert"-ing
	//  one DealPermissionOverride node.
	DealPermissionOverrideUpsertOne struct {
		create *DealPermissionOverrideCreate
	}

	// DealPermissionOverrideUpsert is the "OnConflict" setter.
	DealPermissionOverrideUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DealPermissionOverrideUpsert) SetUpdatedAt(v time.Time) *DealPermissionOverrideUpsert {
	u.Set(dealpermissionoverride.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsert) UpdateUpdatedAt() *DealPermissionOverrideUpsert {
	u.SetExcluded(dealpermissionoverride.FieldUpdatedAt)
	return u
}

// SetRoleID sets the "role_id" field.
func (u *DealPermissionOverrideUpsert) SetRoleID(v uuid.UUID) *DealPermissionOverrideUpsert {
	u.Set(dealpermissionoverride.FieldRoleID, v)
	return u
}

// UpdateRoleID sets the "role_id" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsert) UpdateRoleID() *DealPermissionOverrideUpsert {
	u.SetExcluded(dealpermissionoverride.FieldRoleID)
	return u
}

// SetDealID sets the "deal_id" field.
func (u *DealPermissionOverrideUpsert) SetDealID(v uuid.UUID) *DealPermissionOverrideUpsert {
	u.Set(dealpermissionoverride.FieldDealID, v)
	return u
}

// UpdateDealID sets the "deal_id" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsert) UpdateDealID() *DealPermissionOverrideUpsert {
	u.SetExcluded(dealpermissionoverride.FieldDealID)
	return u
}

// SetPath sets the "path" field.
func (u *DealPermissionOverrideUpsert) SetPath(v string) *DealPermissionOverrideUpsert {
	u.Set(dealpermissionoverride.FieldPath, v)
	return u
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsert) UpdatePath() *DealPermissionOverrideUpsert {
	u.SetExcluded(dealpermissionoverride.FieldPath)
	return u
}

// SetPermissionType sets the "permission_type" field.
func (u *DealPermissionOverrideUpsert) SetPermissionType(v string) *DealPermissionOverrideUpsert {
	u.Set(dealpermissionoverride.FieldPermissionType, v)
	return u
}

// UpdatePermissionType sets the "permission_type" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsert) UpdatePermissionType() *DealPermissionOverrideUpsert {
	u.SetExcluded(dealpermissionoverride.FieldPermissionType)
	return u
}

// SetGranted sets the "granted" field.
func (u *DealPermissionOverrideUpsert) SetGranted(v bool) *DealPermissionOverrideUpsert {
	u.Set(dealpermissionoverride.FieldGranted, v)
	return u
}

// UpdateGranted sets the "granted" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsert) UpdateGranted() *DealPermissionOverrideUpsert {
	u.SetExcluded(dealpermissionoverride.FieldGranted)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DealPermissionOverride.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dealpermissionoverride.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DealPermissionOverrideUpsertOne) UpdateNewValues() *DealPermissionOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dealpermissionoverride.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dealpermissionoverride.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DealPermissionOverride.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DealPermissionOverrideUpsertOne) Ignore() *DealPermissionOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DealPermissionOverrideUpsertOne) DoNothing() *DealPermissionOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DealPermissionOverrideCreate.OnConflict
// documentation for more info.
func (u *DealPermissionOverrideUpsertOne) Update(set func(*DealPermissionOverrideUpsert)) *DealPermissionOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DealPermissionOverrideUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DealPermissionOverrideUpsertOne) SetUpdatedAt(v time.Time) *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertOne) UpdateUpdatedAt() *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRoleID sets the "role_id" field.
func (u *DealPermissionOverrideUpsertOne) SetRoleID(v uuid.UUID) *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetRoleID(v)
	})
}

// UpdateRoleID sets the "role_id" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertOne) UpdateRoleID() *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdateRoleID()
	})
}

// SetDealID sets the "deal_id" field.
func (u *DealPermissionOverrideUpsertOne) SetDealID(v uuid.UUID) *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetDealID(v)
	})
}

// UpdateDealID sets the "deal_id" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertOne) UpdateDealID() *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdateDealID()
	})
}

// SetPath sets the "path" field.
func (u *DealPermissionOverrideUpsertOne) SetPath(v string) *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertOne) UpdatePath() *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdatePath()
	})
}

// SetPermissionType sets the "permission_type" field.
func (u *DealPermissionOverrideUpsertOne) SetPermissionType(v string) *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetPermissionType(v)
	})
}

// UpdatePermissionType sets the "permission_type" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertOne) UpdatePermissionType() *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdatePermissionType()
	})
}

// SetGranted sets the "granted" field.
func (u *DealPermissionOverrideUpsertOne) SetGranted(v bool) *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetGranted(v)
	})
}

// UpdateGranted sets the "granted" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertOne) UpdateGranted() *DealPermissionOverrideUpsertOne {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdateGranted()
	})
}

// Exec executes the query.
func (u *DealPermissionOverrideUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DealPermissionOverrideCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DealPermissionOverrideUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DealPermissionOverrideUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DealPermissionOverrideUpsertOne.ID is not supported by MySQL driver. Use DealPermissionOverrideUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DealPermissionOverrideUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DealPermissionOverrideCreateBulk is the builder for creating many DealPermissionOverride entities in bulk.
type DealPermissionOverrideCreateBulk struct {
	config
	err      error
	builders []*DealPermissionOverrideCreate
	conflict []sql.ConflictOption
}

// Save creates the DealPermissionOverride entities in the database.
func (_c *DealPermissionOverrideCreateBulk) Save(ctx context.Context) ([]*DealPermissionOverride, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DealPermissionOverride, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DealPermissionOverrideMutation)
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
func (_c *DealPermissionOverrideCreateBulk) SaveX(ctx context.Context) []*DealPermissionOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DealPermissionOverrideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DealPermissionOverrideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DealPermissionOverride.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DealPermissionOverrideUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DealPermissionOverrideCreateBulk) OnConflict(opts ...sql.ConflictOption) *DealPermissionOverrideUpsertBulk {
	_c.conflict = opts
	return &DealPermissionOverrideUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DealPermissionOverride.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DealPermissionOverrideCreateBulk) OnConflictColumns(columns ...string) *DealPermissionOverrideUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DealPermissionOverrideUpsertBulk{
		create: _c,
	}
}

// DealPermissionOverrideUpsertBulk is the builder for "upsert"-ing
// a bulk of DealPermissionOverride nodes.
type DealPermissionOverrideUpsertBulk struct {
	create *DealPermissionOverrideCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DealPermissionOverride.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dealpermissionoverride.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DealPermissionOverrideUpsertBulk) UpdateNewValues() *DealPermissionOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dealpermissionoverride.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dealpermissionoverride.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DealPermissionOverride.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DealPermissionOverrideUpsertBulk) Ignore() *DealPermissionOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DealPermissionOverrideUpsertBulk) DoNothing() *DealPermissionOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DealPermissionOverrideCreateBulk.OnConflict
// documentation for more info.
func (u *DealPermissionOverrideUpsertBulk) Update(set func(*DealPermissionOverrideUpsert)) *DealPermissionOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DealPermissionOverrideUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DealPermissionOverrideUpsertBulk) SetUpdatedAt(v time.Time) *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertBulk) UpdateUpdatedAt() *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRoleID sets the "role_id" field.
func (u *DealPermissionOverrideUpsertBulk) SetRoleID(v uuid.UUID) *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetRoleID(v)
	})
}

// UpdateRoleID sets the "role_id" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertBulk) UpdateRoleID() *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdateRoleID()
	})
}

// SetDealID sets the "deal_id" field.
func (u *DealPermissionOverrideUpsertBulk) SetDealID(v uuid.UUID) *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetDealID(v)
	})
}

// UpdateDealID sets the "deal_id" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertBulk) UpdateDealID() *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdateDealID()
	})
}

// SetPath sets the "path" field.
func (u *DealPermissionOverrideUpsertBulk) SetPath(v string) *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertBulk) UpdatePath() *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdatePath()
	})
}

// SetPermissionType sets the "permission_type" field.
func (u *DealPermissionOverrideUpsertBulk) SetPermissionType(v string) *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetPermissionType(v)
	})
}

// UpdatePermissionType sets the "permission_type" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertBulk) UpdatePermissionType() *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdatePermissionType()
	})
}

// SetGranted sets the "granted" field.
func (u *DealPermissionOverrideUpsertBulk) SetGranted(v bool) *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.SetGranted(v)
	})
}

// UpdateGranted sets the "granted" field to the value that was provided on create.
func (u *DealPermissionOverrideUpsertBulk) UpdateGranted() *DealPermissionOverrideUpsertBulk {
	return u.Update(func(s *DealPermissionOverrideUpsert) {
		s.UpdateGranted()
	})
}

// Exec executes the query.
func (u *DealPermissionOverrideUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DealPermissionOverrideCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DealPermissionOverrideCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DealPermissionOverrideUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
