// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atlasfibra/backoffice/ent/supportconversation"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// SupportConversationCreate is the builder for creating a SupportConversation entity.
type SupportConversationCreate struct {
	config
	mutation *SupportConversationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SupportConversationCreate) SetUserID(v int64) *SupportConversationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *SupportConversationCreate) SetUsername(v string) *SupportConversationCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *SupportConversationCreate) SetNillableUsername(v *string) *SupportConversationCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *SupportConversationCreate) SetState(v supportconversation.State) *SupportConversationCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *SupportConversationCreate) SetNillableState(v *supportconversation.State) *SupportConversationCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *SupportConversationCreate) SetCurrentStep(v int) *SupportConversationCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *SupportConversationCreate) SetNillableCurrentStep(v *int) *SupportConversationCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetFormData sets the "form_data" field.
func (_c *SupportConversationCreate) SetFormData(v *models.ConversationFormData) *SupportConversationCreate {
	_c.mutation.SetFormData(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SupportConversationCreate) SetIsActive(v bool) *SupportConversationCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SupportConversationCreate) SetNillableIsActive(v *bool) *SupportConversationCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetTicketID sets the "ticket_id" field.
func (_c *SupportConversationCreate) SetTicketID(v string) *SupportConversationCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_c *SupportConversationCreate) SetNillableTicketID(v *string) *SupportConversationCreate {
	if v != nil {
		_c.SetTicketID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SupportConversationCreate) SetStartedAt(v time.Time) *SupportConversationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SupportConversationCreate) SetNillableStartedAt(v *time.Time) *SupportConversationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastActiveAt sets the "last_active_at" field.
func (_c *SupportConversationCreate) SetLastActiveAt(v time.Time) *SupportConversationCreate {
	_c.mutation.SetLastActiveAt(v)
	return _c
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_c *SupportConversationCreate) SetNillableLastActiveAt(v *time.Time) *SupportConversationCreate {
	if v != nil {
		_c.SetLastActiveAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupportConversationCreate) SetID(v string) *SupportConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SupportConversationMutation object of the builder.
func (_c *SupportConversationCreate) Mutation() *SupportConversationMutation {
	return _c.mutation
}

// Save creates the SupportConversation in the database.
func (_c *SupportConversationCreate) Save(ctx context.Context) (*SupportConversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupportConversationCreate) SaveX(ctx context.Context) *SupportConversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupportConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupportConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupportConversationCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := supportconversation.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		v := supportconversation.DefaultCurrentStep
		_c.mutation.SetCurrentStep(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := supportconversation.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := supportconversation.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.LastActiveAt(); !ok {
		v := supportconversation.DefaultLastActiveAt()
		_c.mutation.SetLastActiveAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupportConversationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SupportConversation.user_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "SupportConversation.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := supportconversation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "SupportConversation.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "SupportConversation.current_step"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "SupportConversation.is_active"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SupportConversation.started_at"`)}
	}
	if _, ok := _c.mutation.LastActiveAt(); !ok {
		return &ValidationError{Name: "last_active_at", err: errors.New(`ent: missing required field "SupportConversation.last_active_at"`)}
	}
	return nil
}

func (_c *SupportConversationCreate) sqlSave(ctx context.Context) (*SupportConversation, error) {
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
			return nil, fmt.Errorf("unexpected SupportConversation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SupportConversationCreate) createSpec() (*SupportConversation, *sqlgraph.CreateSpec) {
	var (
		_node = &SupportConversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supportconversation.Table, sqlgraph.NewFieldSpec(supportconversation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(supportconversation.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(supportconversation.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(supportconversation.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(supportconversation.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.FormData(); ok {
		_spec.SetField(supportconversation.FieldFormData, field.TypeJSON, value)
		_node.FormData = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(supportconversation.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(supportconversation.FieldTicketID, field.TypeString, value)
		_node.TicketID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(supportconversation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.LastActiveAt(); ok {
		_spec.SetField(supportconversation.FieldLastActiveAt, field.TypeTime, value)
		_node.LastActiveAt = value
	}
	return _node, _spec
}

// SupportConversationCreateBulk is the builder for creating many SupportConversation entities in bulk.
type SupportConversationCreateBulk struct {
	config
	err      error
	builders []*SupportConversationCreate
}

// Save creates the SupportConversation entities in the database.
func (_c *SupportConversationCreateBulk) Save(ctx context.Context) ([]*SupportConversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupportConversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupportConversationMutation)
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
func (_c *SupportConversationCreateBulk) SaveX(ctx context.Context) []*SupportConversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupportConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupportConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
