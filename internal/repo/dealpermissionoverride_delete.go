// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/dealpermissionoverride"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/predicate"
)

// DealPermissionOverrideDelete is the builder for deleting a DealPermissionOverride entity.
type DealPermissionOverrideDelete struct {
	config
	hooks    []Hook
	mutation *DealPermissionOverrideMutation
}

// Where appends a list predicates to the DealPermissionOverrideDelete builder.
func (_d *DealPermissionOverrideDelete) Where(ps ...predicate.DealPermissionOverride) *DealPermissionOverrideDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DealPermissionOverrideDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DealPermissionOverrideDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DealPermissionOverrideDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dealpermissionoverride.Table, sqlgraph.NewFieldSpec(dealpermissionoverride.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DealPermissionOverrideDeleteOne is the builder for deleting a single DealPermissionOverride entity.
type DealPermissionOverrideDeleteOne struct {
	_d *DealPermissionOverrideDelete
}

// Where appends a list predicates to the DealPermissionOverrideDelete builder.
func (_d *DealPermissionOverrideDeleteOne) Where(ps ...predicate.DealPermissionOverride) *DealPermissionOverrideDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DealPermissionOverrideDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dealpermissionoverride.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DealPermissionOverrideDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
