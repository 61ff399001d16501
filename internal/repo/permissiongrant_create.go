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
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/permissiongrant"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/google/uuid"
)

// PermissionGrantCreate is the builder for creating a PermissionGrant entity.
type PermissionGrantCreate struct {
	config
	mutation *PermissionGrantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PermissionGrantCreate) SetCreatedAt(v time.Time) *PermissionGrantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PermissionGrantCreate) SetNillableCreatedAt(v *time.Time) *PermissionGrantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PermissionGrantCreate) SetUpdatedAt(v time.Time) *PermissionGrantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PermissionGrantCreate) SetNillableUpdatedAt(v *time.Time) *PermissionGrantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRoleID sets the "role_id" field.
func (_c *PermissionGrantCreate) SetRoleID(v uuid.UUID) *PermissionGrantCreate {
	_c.mutation.SetRoleID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *PermissionGrantCreate) SetPath(v string) *PermissionGrantCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetPermissionType sets the "permission_type" field.
func (_c *PermissionGrantCreate) SetPermissionType(v string) *PermissionGrantCreate {
	_c.mutation.SetPermissionType(v)
	return _c
}

// SetGranted sets the "granted" field.
func (_c *PermissionGrantCreate) SetGranted(v bool) *PermissionGrantCreate {
	_c.mutation.SetGranted(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PermissionGrantCreate) SetID(v uuid.UUID) *PermissionGrantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PermissionGrantCreate) SetNillableID(v *uuid.UUID) *PermissionGrantCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRole sets the "role" edge to the StakeholderRole entity.
func (_c *PermissionGrantCreate) SetRole(v *StakeholderRole) *PermissionGrantCreate {
	return _c.SetRoleID(v.ID)
}

// Mutation returns the PermissionGrantMutation object of the builder.
func (_c *PermissionGrantCreate) Mutation() *PermissionGrantMutation {
	return _c.mutation
}

// Save creates the PermissionGrant in the database.
func (_c *PermissionGrantCreate) Save(ctx context.Context) (*PermissionGrant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PermissionGrantCreate) SaveX(ctx context.Context) *PermissionGrant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PermissionGrantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PermissionGrantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PermissionGrantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := permissiongrant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := permissiongrant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := permissiongrant.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PermissionGrantCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PermissionGrant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PermissionGrant.updated_at"`)}
	}
	if _, ok := _c.mutation.RoleID(); !ok {
		return &ValidationError{Name: "role_id", err: errors.New(`repo: missing required field "PermissionGrant.role_id"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`repo: missing required field "PermissionGrant.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := permissiongrant.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`repo: validator failed for field "PermissionGrant.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PermissionType(); !ok {
		return &ValidationError{Name: "permission_type", err: errors.New(`repo: missing required field "PermissionGrant.permission_type"`)}
	}
	if v, ok := _c.mutation.PermissionType(); ok {
		if err := permissiongrant.PermissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "permission_type", err: fmt.Errorf(`repo: validator failed for field "PermissionGrant.permission_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Granted(); !ok {
		return &ValidationError{Name: "granted", err: errors.New(`repo: missing required field "PermissionGrant.granted"`)}
	}
	if len(_c.mutation.RoleIDs()) == 0 {
		return &ValidationError{Name: "role", err: errors.New(`repo: missing required edge "PermissionGrant.role"`)}
	}
	return nil
}

func (_c *PermissionGrantCreate) sqlSave(ctx context.Context) (*PermissionGrant, error) {
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

func (_c *PermissionGrantCreate) createSpec() (*PermissionGrant, *sqlgraph.CreateSpec) {
	var (
		_node = &PermissionGrant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(permissiongrant.Table, sqlgraph.NewFieldSpec(permissiongrant.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(permissiongrant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(permissiongrant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(permissiongrant.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.PermissionType(); ok {
		_spec.SetField(permissiongrant.FieldPermissionType, field.TypeString, value)
		_node.PermissionType = value
	}
	if value, ok := _c.mutation.Granted(); ok {
		_spec.SetField(permissiongrant.FieldGranted, field.TypeBool, value)
		_node.Granted = value
	}
	if nodes := _c.mutation.RoleIDs(); len(nodes) > 0 {
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
		_node.RoleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PermissionGrant.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PermissionGrantUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PermissionGrantCreate) OnConflict(opts ...sql.ConflictOption) *PermissionGrantUpsertOne {
	_c.conflict = opts
	return &PermissionGrantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PermissionGrant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PermissionGrantCreate) OnConflictColumns(columns ...string) *PermissionGrantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PermissionGrantUpsertOne{
		create: _c,
	}
}

type (
	// PermissionGrantUpsertOne is the builder for "upsert"-ing
	//  one PermissionGrant node.
	PermissionGrantUpsertOne struct {
		create *PermissionGrantCreate
	}

	// PermissionGrantUpsert is the "OnConflict" setter.
	PermissionGrantUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PermissionGrantUpsert) SetUpdatedAt(v time.Time) *PermissionGrantUpsert {
	u.Set(permissiongrant.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PermissionGrantUpsert) UpdateUpdatedAt() *PermissionGrantUpsert {
	u.SetExcluded(permissiongrant.FieldUpdatedAt)
	return u
}

// SetRoleID sets the "role_id" field.
func (u *PermissionGrantUpsert) SetRoleID(v uuid.UUID) *PermissionGrantUpsert {
	u.Set(permissiongrant.FieldRoleID, v)
	return u
}

// UpdateRoleID sets the "role_id" field to the value that was provided on create.
func (u *PermissionGrantUpsert) UpdateRoleID() *PermissionGrantUpsert {
	u.SetExcluded(permissiongrant.FieldRoleID)
	return u
}

// SetPath sets the "path" field.
func (u *PermissionGrantUpsert) SetPath(v string) *PermissionGrantUpsert {
	u.Set(permissiongrant.FieldPath, v)
	return u
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *PermissionGrantUpsert) UpdatePath() *PermissionGrantUpsert {
	u.SetExcluded(permissiongrant.FieldPath)
	return u
}

// SetPermissionType sets the "permission_type" field.
func (u *PermissionGrantUpsert) SetPermissionType(v string) *PermissionGrantUpsert {
	u.Set(permissiongrant.FieldPermissionType, v)
	return u
}

// UpdatePermissionType sets the "permission_type" field to the value that was provided on create.
func (u *PermissionGrantUpsert) UpdatePermissionType() *PermissionGrantUpsert {
	u.SetExcluded(permissiongrant.FieldPermissionType)
	return u
}

// SetGranted sets the "granted" field.
func (u *PermissionGrantUpsert) SetGranted(v bool) *PermissionGrantUpsert {
	u.Set(permissiongrant.FieldGranted, v)
	return u
}

// UpdateGranted sets the "granted" field to the value that was provided on create.
func (u *PermissionGrantUpsert) UpdateGranted() *PermissionGrantUpsert {
	u.SetExcluded(permissiongrant.FieldGranted)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PermissionGrant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(permissiongrant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PermissionGrantUpsertOne) UpdateNewValues() *PermissionGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(permissiongrant.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(permissiongrant.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PermissionGrant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PermissionGrantUpsertOne) Ignore() *PermissionGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PermissionGrantUpsertOne) DoNothing() *PermissionGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PermissionGrantCreate.OnConflict
// documentation for more info.
func (u *PermissionGrantUpsertOne) Update(set func(*PermissionGrantUpsert)) *PermissionGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PermissionGrantUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PermissionGrantUpsertOne) SetUpdatedAt(v time.Time) *PermissionGrantUpsertOne {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PermissionGrantUpsertOne) UpdateUpdatedAt() *PermissionGrantUpsertOne {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRoleID sets the "role_id" field.
func (u *PermissionGrantUpsertOne) SetRoleID(v uuid.UUID) *PermissionGrantUpsertOne {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.SetRoleID(v)
	})
}

// UpdateRoleID sets the "role_id" field to the value that was provided on create.
func (u *PermissionGrantUpsertOne) UpdateRoleID() *PermissionGrantUpsertOne {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.UpdateRoleID()
	})
}

// SetPath sets the "path" field.
func (u *PermissionGrantUpsertOne) SetPath(v string) *PermissionGrantUpsertOne {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *PermissionGrantUpsertOne) UpdatePath() *PermissionGrantUpsertOne {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.UpdatePath()
	})
}

// SetPermissionType sets the "permission_type" field.
func (u *PermissionGrantUpsertOne) SetPermissionType(v string) *PermissionGrantUpsertOne {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.SetPermissionType(v)
	})
}

// UpdatePermissionType sets the "permission_type" field to the value that was provided on create.
func (u *PermissionGrantUpsertOne) UpdatePermissionType() *PermissionGrantUpsertOne {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.UpdatePermissionType()
	})
}

// SetGranted sets the "granted" field.
func (u *PermissionGrantUpsertOne) SetGranted(v bool) *PermissionGrantUpsertOne {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.SetGranted(v)
	})
}

// UpdateGranted sets the "granted" field to the value that was provided on create.
func (u *PermissionGrantUpsertOne) UpdateGranted() *PermissionGrantUpsertOne {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.UpdateGranted()
	})
}

// Exec executes the query.
func (u *PermissionGrantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PermissionGrantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PermissionGrantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PermissionGrantUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PermissionGrantUpsertOne.ID is not supported by MySQL driver. Use PermissionGrantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PermissionGrantUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PermissionGrantCreateBulk is the builder for creating many PermissionGrant entities in bulk.
type PermissionGrantCreateBulk struct {
	config
	err      error
	builders []*PermissionGrantCreate
	conflict []sql.ConflictOption
}

// Save creates the PermissionGrant entities in the database.
func (_c *PermissionGrantCreateBulk) Save(ctx context.Context) ([]*PermissionGrant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PermissionGrant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PermissionGrantMutation)
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
func (_c *PermissionGrantCreateBulk) SaveX(ctx context.Context) []*PermissionGrant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PermissionGrantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PermissionGrantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PermissionGrant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PermissionGrantUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PermissionGrantCreateBulk) OnConflict(opts ...sql.ConflictOption) *PermissionGrantUpsertBulk {
	_c.conflict = opts
	return &PermissionGrantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PermissionGrant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PermissionGrantCreateBulk) OnConflictColumns(columns ...string) *PermissionGrantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PermissionGrantUpsertBulk{
		create: _c,
	}
}

// PermissionGrantUpsertBulk is the builder for "upsert"-ing
// a bulk of PermissionGrant nodes.
type PermissionGrantUpsertBulk struct {
	create *PermissionGrantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PermissionGrant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(permissiongrant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PermissionGrantUpsertBulk) UpdateNewValues() *PermissionGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(permissiongrant.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(permissiongrant.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PermissionGrant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PermissionGrantUpsertBulk) Ignore() *PermissionGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PermissionGrantUpsertBulk) DoNothing() *PermissionGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PermissionGrantCreateBulk.OnConflict
// documentation for more info.
func (u *PermissionGrantUpsertBulk) Update(set func(*PermissionGrantUpsert)) *PermissionGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PermissionGrantUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PermissionGrantUpsertBulk) SetUpdatedAt(v time.Time) *PermissionGrantUpsertBulk {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PermissionGrantUpsertBulk) UpdateUpdatedAt() *PermissionGrantUpsertBulk {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRoleID sets the "role_id" field.
func (u *PermissionGrantUpsertBulk) SetRoleID(v uuid.UUID) *PermissionGrantUpsertBulk {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.SetRoleID(v)
	})
}

// UpdateRoleID sets the "role_id" field to the value that was provided on create.
func (u *PermissionGrantUpsertBulk) UpdateRoleID() *PermissionGrantUpsertBulk {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.UpdateRoleID()
	})
}

// SetPath sets the "path" field.
func (u *PermissionGrantUpsertBulk) SetPath(v string) *PermissionGrantUpsertBulk {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *PermissionGrantUpsertBulk) UpdatePath() *PermissionGrantUpsertBulk {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.UpdatePath()
	})
}

// SetPermissionType sets the "permission_type" field.
func (u *PermissionGrantUpsertBulk) SetPermissionType(v string) *PermissionGrantUpsertBulk {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.SetPermissionType(v)
	})
}

// UpdatePermissionType sets the "permission_type" field to the value that was provided on create.
func (u *PermissionGrantUpsertBulk) UpdatePermissionType() *PermissionGrantUpsertBulk {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.UpdatePermissionType()
	})
}

// SetGranted sets the "granted" field.
func (u *PermissionGrantUpsertBulk) SetGranted(v bool) *PermissionGrantUpsertBulk {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.SetGranted(v)
	})
}

// UpdateGranted sets the "granted" field to the value that was provided on create.
func (u *PermissionGrantUpsertBulk) UpdateGranted() *PermissionGrantUpsertBulk {
	return u.Update(func(s *PermissionGrantUpsert) {
		s.UpdateGranted()
	})
}

// Exec executes the query.
func (u *PermissionGrantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PermissionGrantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PermissionGrantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PermissionGrantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
