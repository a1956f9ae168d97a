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
	"github.com/atlasfibra/backoffice/pkg/models"
)

// VerificationRequestCreate is the builder for creating a VerificationRequest entity.
type VerificationRequestCreate struct {
	config
	mutation *VerificationRequestMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *VerificationRequestCreate) SetUserID(v int64) *VerificationRequestCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *VerificationRequestCreate) SetUsername(v string) *VerificationRequestCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *VerificationRequestCreate) SetNillableUsername(v *string) *VerificationRequestCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetVerificationType sets the "verification_type" field.
func (_c *VerificationRequestCreate) SetVerificationType(v verificationrequest.VerificationType) *VerificationRequestCreate {
	_c.mutation.SetVerificationType(v)
	return _c
}

// SetSourceAction sets the "source_action" field.
func (_c *VerificationRequestCreate) SetSourceAction(v string) *VerificationRequestCreate {
	_c.mutation.SetSourceAction(v)
	return _c
}

// SetNillableSourceAction sets the "source_action" field if the given value is not nil.
func (_c *VerificationRequestCreate) SetNillableSourceAction(v *string) *VerificationRequestCreate {
	if v != nil {
		_c.SetSourceAction(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerificationRequestCreate) SetStatus(v verificationrequest.Status) *VerificationRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VerificationRequestCreate) SetNillableStatus(v *verificationrequest.Status) *VerificationRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVerifiedCpfMasked sets the "verified_cpf_masked" field.
func (_c *VerificationRequestCreate) SetVerifiedCpfMasked(v string) *VerificationRequestCreate {
	_c.mutation.SetVerifiedCpfMasked(v)
	return _c
}

// SetNillableVerifiedCpfMasked sets the "verified_cpf_masked" field if the given value is not nil.
func (_c *VerificationRequestCreate) SetNillableVerifiedCpfMasked(v *string) *VerificationRequestCreate {
	if v != nil {
		_c.SetVerifiedCpfMasked(*v)
	}
	return _c
}

// SetVerifiedCpfHash sets the "verified_cpf_hash" field.
func (_c *VerificationRequestCreate) SetVerifiedCpfHash(v string) *VerificationRequestCreate {
	_c.mutation.SetVerifiedCpfHash(v)
	return _c
}

// SetNillableVerifiedCpfHash sets the "verified_cpf_hash" field if the given value is not nil.
func (_c *VerificationRequestCreate) SetNillableVerifiedCpfHash(v *string) *VerificationRequestCreate {
	if v != nil {
		_c.SetVerifiedCpfHash(*v)
	}
	return _c
}

// SetClientSnapshot sets the "client_snapshot" field.
func (_c *VerificationRequestCreate) SetClientSnapshot(v *models.UpstreamClientSnapshot) *VerificationRequestCreate {
	_c.mutation.SetClientSnapshot(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *VerificationRequestCreate) SetFailureReason(v string) *VerificationRequestCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *VerificationRequestCreate) SetNillableFailureReason(v *string) *VerificationRequestCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationRequestCreate) SetCreatedAt(v time.Time) *VerificationRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationRequestCreate) SetNillableCreatedAt(v *time.Time) *VerificationRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *VerificationRequestCreate) SetExpiresAt(v time.Time) *VerificationRequestCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *VerificationRequestCreate) SetCompletedAt(v time.Time) *VerificationRequestCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *VerificationRequestCreate) SetNillableCompletedAt(v *time.Time) *VerificationRequestCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationRequestCreate) SetID(v string) *VerificationRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAttemptIDs adds the "attempts" edge to the VerificationAttempt entity by IDs.
func (_c *VerificationRequestCreate) AddAttemptIDs(ids ...int) *VerificationRequestCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the VerificationAttempt entity.
func (_c *VerificationRequestCreate) AddAttempts(v ...*VerificationAttempt) *VerificationRequestCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the VerificationRequestMutation object of the builder.
func (_c *VerificationRequestCreate) Mutation() *VerificationRequestMutation {
	return _c.mutation
}

// Save creates the VerificationRequest in the database.
func (_c *VerificationRequestCreate) Save(ctx context.Context) (*VerificationRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationRequestCreate) SaveX(ctx context.Context) *VerificationRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationRequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := verificationrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationRequestCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "VerificationRequest.user_id"`)}
	}
	if _, ok := _c.mutation.VerificationType(); !ok {
		return &ValidationError{Name: "verification_type", err: errors.New(`ent: missing required field "VerificationRequest.verification_type"`)}
	}
	if v, ok := _c.mutation.VerificationType(); ok {
		if err := verificationrequest.VerificationTypeValidator(v); err != nil {
			return &ValidationError{Name: "verification_type", err: fmt.Errorf(`ent: validator failed for field "VerificationRequest.verification_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VerificationRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := verificationrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationRequest.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "VerificationRequest.expires_at"`)}
	}
	return nil
}

func (_c *VerificationRequestCreate) sqlSave(ctx context.Context) (*VerificationRequest, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected VerificationRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationRequestCreate) createSpec() (*VerificationRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationrequest.Table, sqlgraph.NewFieldSpec(verificationrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(verificationrequest.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(verificationrequest.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.VerificationType(); ok {
		_spec.SetField(verificationrequest.FieldVerificationType, field.TypeEnum, value)
		_node.VerificationType = value
	}
	if value, ok := _c.mutation.SourceAction(); ok {
		_spec.SetField(verificationrequest.FieldSourceAction, field.TypeString, value)
		_node.SourceAction = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verificationrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.VerifiedCpfMasked(); ok {
		_spec.SetField(verificationrequest.FieldVerifiedCpfMasked, field.TypeString, value)
		_node.VerifiedCpfMasked = &value
	}
	if value, ok := _c.mutation.VerifiedCpfHash(); ok {
		_spec.SetField(verificationrequest.FieldVerifiedCpfHash, field.TypeString, value)
		_node.VerifiedCpfHash = &value
	}
	if value, ok := _c.mutation.ClientSnapshot(); ok {
		_spec.SetField(verificationrequest.FieldClientSnapshot, field.TypeJSON, value)
		_node.ClientSnapshot = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(verificationrequest.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(verificationrequest.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(verificationrequest.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verificationrequest.AttemptsTable,
			Columns: []string{verificationrequest.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationattempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationRequestCreateBulk is the builder for creating many VerificationRequest entities in bulk.
type VerificationRequestCreateBulk struct {
	config
	err      error
	builders []*VerificationRequestCreate
}

// Save creates the VerificationRequest entities in the database.
func (_c *VerificationRequestCreateBulk) Save(ctx context.Context) ([]*VerificationRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationRequestMutation)
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
func (_c *VerificationRequestCreateBulk) SaveX(ctx context.Context) []*VerificationRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
