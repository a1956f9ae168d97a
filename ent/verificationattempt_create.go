// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atlasfibra/backoffice/ent/verificationattempt"
	"github.com/atlasfibra/backoffice/ent/verificationrequest"
)

// VerificationAttemptCreate is the builder for creating a VerificationAttempt entity.
type VerificationAttemptCreate struct {
	config
	mutation *VerificationAttemptMutation
	hooks    []Hook
}

// SetVerificationID sets the "verification_id" field.
func (_c *VerificationAttemptCreate) SetVerificationID(v string) *VerificationAttemptCreate {
	_c.mutation.SetVerificationID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *VerificationAttemptCreate) SetUserID(v int64) *VerificationAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *VerificationAttemptCreate) SetAttemptNumber(v int) *VerificationAttemptCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetCpfMasked sets the "cpf_masked" field.
func (_c *VerificationAttemptCreate) SetCpfMasked(v string) *VerificationAttemptCreate {
	_c.mutation.SetCpfMasked(v)
	return _c
}

// SetNillableCpfMasked sets the "cpf_masked" field if the given value is not nil.
func (_c *VerificationAttemptCreate) SetNillableCpfMasked(v *string) *VerificationAttemptCreate {
	if v != nil {
		_c.SetCpfMasked(*v)
	}
	return _c
}

// SetCpfProvided sets the "cpf_provided" field.
func (_c *VerificationAttemptCreate) SetCpfProvided(v string) *VerificationAttemptCreate {
	_c.mutation.SetCpfProvided(v)
	return _c
}

// SetNillableCpfProvided sets the "cpf_provided" field if the given value is not nil.
func (_c *VerificationAttemptCreate) SetNillableCpfProvided(v *string) *VerificationAttemptCreate {
	if v != nil {
		_c.SetCpfProvided(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *VerificationAttemptCreate) SetSuccess(v bool) *VerificationAttemptCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *VerificationAttemptCreate) SetNillableSuccess(v *bool) *VerificationAttemptCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *VerificationAttemptCreate) SetFailureReason(v string) *VerificationAttemptCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *VerificationAttemptCreate) SetNillableFailureReason(v *string) *VerificationAttemptCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetAttemptedAt sets the "attempted_at" field.
func (_c *VerificationAttemptCreate) SetAttemptedAt(v time.Time) *VerificationAttemptCreate {
	_c.mutation.SetAttemptedAt(v)
	return _c
}

// SetNillableAttemptedAt sets the "attempted_at" field if the given value is not nil.
func (_c *VerificationAttemptCreate) SetNillableAttemptedAt(v *time.Time) *VerificationAttemptCreate {
	if v != nil {
		_c.SetAttemptedAt(*v)
	}
	return _c
}

// SetVerification sets the "verification" edge to the VerificationRequest entity.
func (_c *VerificationAttemptCreate) SetVerification(v *VerificationRequest) *VerificationAttemptCreate {
	return _c.SetVerificationID(v.ID)
}

// Mutation returns the VerificationAttemptMutation object of the builder.
func (_c *VerificationAttemptCreate) Mutation() *VerificationAttemptMutation {
	return _c.mutation
}

// Save creates the VerificationAttempt in the database.
func (_c *VerificationAttemptCreate) Save(ctx context.Context) (*VerificationAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationAttemptCreate) SaveX(ctx context.Context) *VerificationAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationAttemptCreate) defaults() {
	if _, ok := _c.mutation.Success(); !ok {
		v := verificationattempt.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		v := verificationattempt.DefaultAttemptedAt()
		_c.mutation.SetAttemptedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationAttemptCreate) check() error {
	if _, ok := _c.mutation.VerificationID(); !ok {
		return &ValidationError{Name: "verification_id", err: errors.New(`ent: missing required field "VerificationAttempt.verification_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "VerificationAttempt.user_id"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "VerificationAttempt.attempt_number"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "VerificationAttempt.success"`)}
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		return &ValidationError{Name: "attempted_at", err: errors.New(`ent: missing required field "VerificationAttempt.attempted_at"`)}
	}
	if len(_c.mutation.VerificationIDs()) == 0 {
		return &ValidationError{Name: "verification", err: errors.New(`ent: missing required edge "VerificationAttempt.verification"`)}
	}
	return nil
}

func (_c *VerificationAttemptCreate) sqlSave(ctx context.Context) (*VerificationAttempt, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationAttemptCreate) createSpec() (*VerificationAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationattempt.Table, sqlgraph.NewFieldSpec(verificationattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(verificationattempt.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(verificationattempt.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.CpfMasked(); ok {
		_spec.SetField(verificationattempt.FieldCpfMasked, field.TypeString, value)
		_node.CpfMasked = value
	}
	if value, ok := _c.mutation.CpfProvided(); ok {
		_spec.SetField(verificationattempt.FieldCpfProvided, field.TypeString, value)
		_node.CpfProvided = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(verificationattempt.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(verificationattempt.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = value
	}
	if value, ok := _c.mutation.AttemptedAt(); ok {
		_spec.SetField(verificationattempt.FieldAttemptedAt, field.TypeTime, value)
		_node.AttemptedAt = value
	}
	if nodes := _c.mutation.VerificationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationattempt.VerificationTable,
			Columns: []string{verificationattempt.VerificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VerificationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationAttemptCreateBulk is the builder for creating many VerificationAttempt entities in bulk.
type VerificationAttemptCreateBulk struct {
	config
	err      error
	builders []*VerificationAttemptCreate
}

// Save creates the VerificationAttempt entities in the database.
func (_c *VerificationAttemptCreateBulk) Save(ctx context.Context) ([]*VerificationAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationAttemptMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *VerificationAttemptCreateBulk) SaveX(ctx context.Context) []*VerificationAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
