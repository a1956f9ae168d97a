// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/ent/predicate"
)

// IntegrationRequestDelete is the builder for deleting a IntegrationRequest entity.
type IntegrationRequestDelete struct {
	config
	hooks    []Hook
	mutation *IntegrationRequestMutation
}

// Where appends a list predicates to the IntegrationRequestDelete builder.
func (_d *IntegrationRequestDelete) Where(ps ...predicate.IntegrationRequest) *IntegrationRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *IntegrationRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IntegrationRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *IntegrationRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(integrationrequest.Table, sqlgraph.NewFieldSpec(integrationrequest.FieldID, field.TypeString))
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

// IntegrationRequestDeleteOne is the builder for deleting a single IntegrationRequest entity.
type IntegrationRequestDeleteOne struct {
	_d *IntegrationRequestDelete
}

// Where appends a list predicates to the IntegrationRequestDelete builder.
func (_d *IntegrationRequestDeleteOne) Where(ps ...predicate.IntegrationRequest) *IntegrationRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *IntegrationRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{integrationrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IntegrationRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
