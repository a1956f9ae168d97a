// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// IntegrationRequestCreate is the builder for creating a IntegrationRequest entity.
type IntegrationRequestCreate struct {
	config
	mutation *IntegrationRequestMutation
	hooks    []Hook
}

// SetIntegrationType sets the "integration_type" field.
func (_c *IntegrationRequestCreate) SetIntegrationType(v integrationrequest.IntegrationType) *IntegrationRequestCreate {
	_c.mutation.SetIntegrationType(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *IntegrationRequestCreate) SetPriority(v int) *IntegrationRequestCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillablePriority(v *int) *IntegrationRequestCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IntegrationRequestCreate) SetStatus(v integrationrequest.Status) *IntegrationRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillableStatus(v *integrationrequest.Status) *IntegrationRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *IntegrationRequestCreate) SetPayload(v json.RawMessage) *IntegrationRequestCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *IntegrationRequestCreate) SetMetadata(v map[string]string) *IntegrationRequestCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *IntegrationRequestCreate) SetMaxRetries(v int) *IntegrationRequestCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillableMaxRetries(v *int) *IntegrationRequestCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetForceRetry sets the "force_retry" field.
func (_c *IntegrationRequestCreate) SetForceRetry(v bool) *IntegrationRequestCreate {
	_c.mutation.SetForceRetry(v)
	return _c
}

// SetNillableForceRetry sets the "force_retry" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillableForceRetry(v *bool) *IntegrationRequestCreate {
	if v != nil {
		_c.SetForceRetry(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *IntegrationRequestCreate) SetTimeoutSeconds(v int) *IntegrationRequestCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillableTimeoutSeconds(v *int) *IntegrationRequestCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *IntegrationRequestCreate) SetScheduledAt(v time.Time) *IntegrationRequestCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillableScheduledAt(v *time.Time) *IntegrationRequestCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *IntegrationRequestCreate) SetStartedAt(v time.Time) *IntegrationRequestCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillableStartedAt(v *time.Time) *IntegrationRequestCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *IntegrationRequestCreate) SetCompletedAt(v time.Time) *IntegrationRequestCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillableCompletedAt(v *time.Time) *IntegrationRequestCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetResponse sets the "response" field.
func (_c *IntegrationRequestCreate) SetResponse(v json.RawMessage) *IntegrationRequestCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *IntegrationRequestCreate) SetLastError(v string) *IntegrationRequestCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillableLastError(v *string) *IntegrationRequestCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *IntegrationRequestCreate) SetAttempts(v []models.IntegrationAttempt) *IntegrationRequestCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *IntegrationRequestCreate) SetPodID(v string) *IntegrationRequestCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillablePodID(v *string) *IntegrationRequestCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *IntegrationRequestCreate) SetLastHeartbeatAt(v time.Time) *IntegrationRequestCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillableLastHeartbeatAt(v *time.Time) *IntegrationRequestCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntegrationRequestCreate) SetCreatedAt(v time.Time) *IntegrationRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntegrationRequestCreate) SetNillableCreatedAt(v *time.Time) *IntegrationRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntegrationRequestCreate) SetID(v string) *IntegrationRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IntegrationRequestMutation object of the builder.
func (_c *IntegrationRequestCreate) Mutation() *IntegrationRequestMutation {
	return _c.mutation
}

// Save creates the IntegrationRequest in the database.
func (_c *IntegrationRequestCreate) Save(ctx context.Context) (*IntegrationRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntegrationRequestCreate) SaveX(ctx context.Context) *IntegrationRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntegrationRequestCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := integrationrequest.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := integrationrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := integrationrequest.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.ForceRetry(); !ok {
		v := integrationrequest.DefaultForceRetry
		_c.mutation.SetForceRetry(v)
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		v := integrationrequest.DefaultScheduledAt()
		_c.mutation.SetScheduledAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := integrationrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntegrationRequestCreate) check() error {
	if _, ok := _c.mutation.IntegrationType(); !ok {
		return &ValidationError{Name: "integration_type", err: errors.New(`ent: missing required field "IntegrationRequest.integration_type"`)}
	}
	if v, ok := _c.mutation.IntegrationType(); ok {
		if err := integrationrequest.IntegrationTypeValidator(v); err != nil {
			return &ValidationError{Name: "integration_type", err: fmt.Errorf(`ent: validator failed for field "IntegrationRequest.integration_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "IntegrationRequest.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IntegrationRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := integrationrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntegrationRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "IntegrationRequest.max_retries"`)}
	}
	if _, ok := _c.mutation.ForceRetry(); !ok {
		return &ValidationError{Name: "force_retry", err: errors.New(`ent: missing required field "IntegrationRequest.force_retry"`)}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`ent: missing required field "IntegrationRequest.scheduled_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IntegrationRequest.created_at"`)}
	}
	return nil
}

func (_c *IntegrationRequestCreate) sqlSave(ctx context.Context) (*IntegrationRequest, error) {
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
			return nil, fmt.Errorf("unexpected IntegrationRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntegrationRequestCreate) createSpec() (*IntegrationRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &IntegrationRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(integrationrequest.Table, sqlgraph.NewFieldSpec(integrationrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IntegrationType(); ok {
		_spec.SetField(integrationrequest.FieldIntegrationType, field.TypeEnum, value)
		_node.IntegrationType = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(integrationrequest.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(integrationrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(integrationrequest.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(integrationrequest.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(integrationrequest.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.ForceRetry(); ok {
		_spec.SetField(integrationrequest.FieldForceRetry, field.TypeBool, value)
		_node.ForceRetry = value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(integrationrequest.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(integrationrequest.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(integrationrequest.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(integrationrequest.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(integrationrequest.FieldResponse, field.TypeJSON, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(integrationrequest.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(integrationrequest.FieldAttempts, field.TypeJSON, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(integrationrequest.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(integrationrequest.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(integrationrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// IntegrationRequestCreateBulk is the builder for creating many IntegrationRequest entities in bulk.
type IntegrationRequestCreateBulk struct {
	config
	err      error
	builders []*IntegrationRequestCreate
}

// Save creates the IntegrationRequest entities in the database.
func (_c *IntegrationRequestCreateBulk) Save(ctx context.Context) ([]*IntegrationRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntegrationRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntegrationRequestMutation)
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
func (_c *IntegrationRequestCreateBulk) SaveX(ctx context.Context) []*IntegrationRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
