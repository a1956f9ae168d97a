// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atlasfibra/backoffice/ent/ticket"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// TicketCreate is the builder for creating a Ticket entity.
type TicketCreate struct {
	config
	mutation *TicketMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *TicketCreate) SetOwnerID(v int64) *TicketCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetOwnerUsername sets the "owner_username" field.
func (_c *TicketCreate) SetOwnerUsername(v string) *TicketCreate {
	_c.mutation.SetOwnerUsername(v)
	return _c
}

// SetNillableOwnerUsername sets the "owner_username" field if the given value is not nil.
func (_c *TicketCreate) SetNillableOwnerUsername(v *string) *TicketCreate {
	if v != nil {
		_c.SetOwnerUsername(*v)
	}
	return _c
}

// SetOwnerCpfMasked sets the "owner_cpf_masked" field.
func (_c *TicketCreate) SetOwnerCpfMasked(v string) *TicketCreate {
	_c.mutation.SetOwnerCpfMasked(v)
	return _c
}

// SetNillableOwnerCpfMasked sets the "owner_cpf_masked" field if the given value is not nil.
func (_c *TicketCreate) SetNillableOwnerCpfMasked(v *string) *TicketCreate {
	if v != nil {
		_c.SetOwnerCpfMasked(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *TicketCreate) SetCategory(v string) *TicketCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetGame sets the "game" field.
func (_c *TicketCreate) SetGame(v string) *TicketCreate {
	_c.mutation.SetGame(v)
	return _c
}

// SetNillableGame sets the "game" field if the given value is not nil.
func (_c *TicketCreate) SetNillableGame(v *string) *TicketCreate {
	if v != nil {
		_c.SetGame(*v)
	}
	return _c
}

// SetProblemTiming sets the "problem_timing" field.
func (_c *TicketCreate) SetProblemTiming(v string) *TicketCreate {
	_c.mutation.SetProblemTiming(v)
	return _c
}

// SetNillableProblemTiming sets the "problem_timing" field if the given value is not nil.
func (_c *TicketCreate) SetNillableProblemTiming(v *string) *TicketCreate {
	if v != nil {
		_c.SetProblemTiming(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *TicketCreate) SetDescription(v string) *TicketCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *TicketCreate) SetUrgency(v ticket.Urgency) *TicketCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUrgency(v *ticket.Urgency) *TicketCreate {
	if v != nil {
		_c.SetUrgency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TicketCreate) SetStatus(v ticket.Status) *TicketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TicketCreate) SetNillableStatus(v *ticket.Status) *TicketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAssignee sets the "assignee" field.
func (_c *TicketCreate) SetAssignee(v string) *TicketCreate {
	_c.mutation.SetAssignee(v)
	return _c
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAssignee(v *string) *TicketCreate {
	if v != nil {
		_c.SetAssignee(*v)
	}
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *TicketCreate) SetResolution(v string) *TicketCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *TicketCreate) SetNillableResolution(v *string) *TicketCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetUpstreamID sets the "upstream_id" field.
func (_c *TicketCreate) SetUpstreamID(v string) *TicketCreate {
	_c.mutation.SetUpstreamID(v)
	return _c
}

// SetNillableUpstreamID sets the "upstream_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUpstreamID(v *string) *TicketCreate {
	if v != nil {
		_c.SetUpstreamID(*v)
	}
	return _c
}

// SetProtocol sets the "protocol" field.
func (_c *TicketCreate) SetProtocol(v string) *TicketCreate {
	_c.mutation.SetProtocol(v)
	return _c
}

// SetSyncStatus sets the "sync_status" field.
func (_c *TicketCreate) SetSyncStatus(v ticket.SyncStatus) *TicketCreate {
	_c.mutation.SetSyncStatus(v)
	return _c
}

// SetNillableSyncStatus sets the "sync_status" field if the given value is not nil.
func (_c *TicketCreate) SetNillableSyncStatus(v *ticket.SyncStatus) *TicketCreate {
	if v != nil {
		_c.SetSyncStatus(*v)
	}
	return _c
}

// SetAttachments sets the "attachments" field.
func (_c *TicketCreate) SetAttachments(v []models.TicketAttachment) *TicketCreate {
	_c.mutation.SetAttachments(v)
	return _c
}

// SetMessages sets the "messages" field.
func (_c *TicketCreate) SetMessages(v []models.TicketMessage) *TicketCreate {
	_c.mutation.SetMessages(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketCreate) SetCreatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCreatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TicketCreate) SetUpdatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUpdatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketCreate) SetID(v string) *TicketCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TicketMutation object of the builder.
func (_c *TicketCreate) Mutation() *TicketMutation {
	return _c.mutation
}

// Save creates the Ticket in the database.
func (_c *TicketCreate) Save(ctx context.Context) (*Ticket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketCreate) SaveX(ctx context.Context) *Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketCreate) defaults() {
	if _, ok := _c.mutation.Urgency(); !ok {
		v := ticket.DefaultUrgency
		_c.mutation.SetUrgency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := ticket.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SyncStatus(); !ok {
		v := ticket.DefaultSyncStatus
		_c.mutation.SetSyncStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Ticket.owner_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Ticket.category"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Ticket.description"`)}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`ent: missing required field "Ticket.urgency"`)}
	}
	if v, ok := _c.mutation.Urgency(); ok {
		if err := ticket.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Ticket.urgency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Ticket.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Protocol(); !ok {
		return &ValidationError{Name: "protocol", err: errors.New(`ent: missing required field "Ticket.protocol"`)}
	}
	if _, ok := _c.mutation.SyncStatus(); !ok {
		return &ValidationError{Name: "sync_status", err: errors.New(`ent: missing required field "Ticket.sync_status"`)}
	}
	if v, ok := _c.mutation.SyncStatus(); ok {
		if err := ticket.SyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "sync_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.sync_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Ticket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Ticket.updated_at"`)}
	}
	return nil
}

func (_c *TicketCreate) sqlSave(ctx context.Context) (*Ticket, error) {
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
			return nil, fmt.Errorf("unexpected Ticket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketCreate) createSpec() (*Ticket, *sqlgraph.CreateSpec) {
	var (
		_node = &Ticket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticket.Table, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(ticket.FieldOwnerID, field.TypeInt64, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.OwnerUsername(); ok {
		_spec.SetField(ticket.FieldOwnerUsername, field.TypeString, value)
		_node.OwnerUsername = value
	}
	if value, ok := _c.mutation.OwnerCpfMasked(); ok {
		_spec.SetField(ticket.FieldOwnerCpfMasked, field.TypeString, value)
		_node.OwnerCpfMasked = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(ticket.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Game(); ok {
		_spec.SetField(ticket.FieldGame, field.TypeString, value)
		_node.Game = value
	}
	if value, ok := _c.mutation.ProblemTiming(); ok {
		_spec.SetField(ticket.FieldProblemTiming, field.TypeString, value)
		_node.ProblemTiming = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(ticket.FieldUrgency, field.TypeEnum, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Assignee(); ok {
		_spec.SetField(ticket.FieldAssignee, field.TypeString, value)
		_node.Assignee = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(ticket.FieldResolution, field.TypeString, value)
		_node.Resolution = &value
	}
	if value, ok := _c.mutation.UpstreamID(); ok {
		_spec.SetField(ticket.FieldUpstreamID, field.TypeString, value)
		_node.UpstreamID = &value
	}
	if value, ok := _c.mutation.Protocol(); ok {
		_spec.SetField(ticket.FieldProtocol, field.TypeString, value)
		_node.Protocol = value
	}
	if value, ok := _c.mutation.SyncStatus(); ok {
		_spec.SetField(ticket.FieldSyncStatus, field.TypeEnum, value)
		_node.SyncStatus = value
	}
	if value, ok := _c.mutation.Attachments(); ok {
		_spec.SetField(ticket.FieldAttachments, field.TypeJSON, value)
		_node.Attachments = value
	}
	if value, ok := _c.mutation.Messages(); ok {
		_spec.SetField(ticket.FieldMessages, field.TypeJSON, value)
		_node.Messages = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TicketCreateBulk is the builder for creating many Ticket entities in bulk.
type TicketCreateBulk struct {
	config
	err      error
	builders []*TicketCreate
}

// Save creates the Ticket entities in the database.
func (_c *TicketCreateBulk) Save(ctx context.Context) ([]*Ticket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ticket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketMutation)
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
func (_c *TicketCreateBulk) SaveX(ctx context.Context) []*Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
