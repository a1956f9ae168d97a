// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/atlasfibra/backoffice/ent/predicate"
	"github.com/atlasfibra/backoffice/ent/ticket"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// TicketUpdate is the builder for updating Ticket entities.
type TicketUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdate) Where(ps ...predicate.Ticket) *TicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *TicketUpdate) SetOwnerID(v int64) *TicketUpdate {
	_u.mutation.ResetOwnerID()
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableOwnerID(v *int64) *TicketUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// AddOwnerID adds value to the "owner_id" field.
func (_u *TicketUpdate) AddOwnerID(v int64) *TicketUpdate {
	_u.mutation.AddOwnerID(v)
	return _u
}

// SetOwnerUsername sets the "owner_username" field.
func (_u *TicketUpdate) SetOwnerUsername(v string) *TicketUpdate {
	_u.mutation.SetOwnerUsername(v)
	return _u
}

// SetNillableOwnerUsername sets the "owner_username" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableOwnerUsername(v *string) *TicketUpdate {
	if v != nil {
		_u.SetOwnerUsername(*v)
	}
	return _u
}

// ClearOwnerUsername clears the value of the "owner_username" field.
func (_u *TicketUpdate) ClearOwnerUsername() *TicketUpdate {
	_u.mutation.ClearOwnerUsername()
	return _u
}

// SetOwnerCpfMasked sets the "owner_cpf_masked" field.
func (_u *TicketUpdate) SetOwnerCpfMasked(v string) *TicketUpdate {
	_u.mutation.SetOwnerCpfMasked(v)
	return _u
}

// SetNillableOwnerCpfMasked sets the "owner_cpf_masked" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableOwnerCpfMasked(v *string) *TicketUpdate {
	if v != nil {
		_u.SetOwnerCpfMasked(*v)
	}
	return _u
}

// ClearOwnerCpfMasked clears the value of the "owner_cpf_masked" field.
func (_u *TicketUpdate) ClearOwnerCpfMasked() *TicketUpdate {
	_u.mutation.ClearOwnerCpfMasked()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TicketUpdate) SetCategory(v string) *TicketUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableCategory(v *string) *TicketUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGame sets the "game" field.
func (_u *TicketUpdate) SetGame(v string) *TicketUpdate {
	_u.mutation.SetGame(v)
	return _u
}

// SetNillableGame sets the "game" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableGame(v *string) *TicketUpdate {
	if v != nil {
		_u.SetGame(*v)
	}
	return _u
}

// ClearGame clears the value of the "game" field.
func (_u *TicketUpdate) ClearGame() *TicketUpdate {
	_u.mutation.ClearGame()
	return _u
}

// SetProblemTiming sets the "problem_timing" field.
func (_u *TicketUpdate) SetProblemTiming(v string) *TicketUpdate {
	_u.mutation.SetProblemTiming(v)
	return _u
}

// SetNillableProblemTiming sets the "problem_timing" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableProblemTiming(v *string) *TicketUpdate {
	if v != nil {
		_u.SetProblemTiming(*v)
	}
	return _u
}

// ClearProblemTiming clears the value of the "problem_timing" field.
func (_u *TicketUpdate) ClearProblemTiming() *TicketUpdate {
	_u.mutation.ClearProblemTiming()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdate) SetDescription(v string) *TicketUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDescription(v *string) *TicketUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *TicketUpdate) SetUrgency(v ticket.Urgency) *TicketUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableUrgency(v *ticket.Urgency) *TicketUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdate) SetStatus(v ticket.Status) *TicketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableStatus(v *ticket.Status) *TicketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *TicketUpdate) SetAssignee(v string) *TicketUpdate {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAssignee(v *string) *TicketUpdate {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// ClearAssignee clears the value of the "assignee" field.
func (_u *TicketUpdate) ClearAssignee() *TicketUpdate {
	_u.mutation.ClearAssignee()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *TicketUpdate) SetResolution(v string) *TicketUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableResolution(v *string) *TicketUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *TicketUpdate) ClearResolution() *TicketUpdate {
	_u.mutation.ClearResolution()
	return _u
}

// SetUpstreamID sets the "upstream_id" field.
func (_u *TicketUpdate) SetUpstreamID(v string) *TicketUpdate {
	_u.mutation.SetUpstreamID(v)
	return _u
}

// SetNillableUpstreamID sets the "upstream_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableUpstreamID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetUpstreamID(*v)
	}
	return _u
}

// ClearUpstreamID clears the value of the "upstream_id" field.
func (_u *TicketUpdate) ClearUpstreamID() *TicketUpdate {
	_u.mutation.ClearUpstreamID()
	return _u
}

// SetProtocol sets the "protocol" field.
func (_u *TicketUpdate) SetProtocol(v string) *TicketUpdate {
	_u.mutation.SetProtocol(v)
	return _u
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableProtocol(v *string) *TicketUpdate {
	if v != nil {
		_u.SetProtocol(*v)
	}
	return _u
}

// SetSyncStatus sets the "sync_status" field.
func (_u *TicketUpdate) SetSyncStatus(v ticket.SyncStatus) *TicketUpdate {
	_u.mutation.SetSyncStatus(v)
	return _u
}

// SetNillableSyncStatus sets the "sync_status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableSyncStatus(v *ticket.SyncStatus) *TicketUpdate {
	if v != nil {
		_u.SetSyncStatus(*v)
	}
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *TicketUpdate) SetAttachments(v []models.TicketAttachment) *TicketUpdate {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *TicketUpdate) AppendAttachments(v []models.TicketAttachment) *TicketUpdate {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *TicketUpdate) ClearAttachments() *TicketUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// SetMessages sets the "messages" field.
func (_u *TicketUpdate) SetMessages(v []models.TicketMessage) *TicketUpdate {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *TicketUpdate) AppendMessages(v []models.TicketMessage) *TicketUpdate {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *TicketUpdate) ClearMessages() *TicketUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TicketUpdate) SetCreatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableCreatedAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdate) SetUpdatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdate) Mutation() *TicketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdate) check() error {
	if v, ok := _u.mutation.Urgency(); ok {
		if err := ticket.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Ticket.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncStatus(); ok {
		if err := ticket.SyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "sync_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.sync_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(ticket.FieldOwnerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOwnerID(); ok {
		_spec.AddField(ticket.FieldOwnerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OwnerUsername(); ok {
		_spec.SetField(ticket.FieldOwnerUsername, field.TypeString, value)
	}
	if _u.mutation.OwnerUsernameCleared() {
		_spec.ClearField(ticket.FieldOwnerUsername, field.TypeString)
	}
	if value, ok := _u.mutation.OwnerCpfMasked(); ok {
		_spec.SetField(ticket.FieldOwnerCpfMasked, field.TypeString, value)
	}
	if _u.mutation.OwnerCpfMaskedCleared() {
		_spec.ClearField(ticket.FieldOwnerCpfMasked, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(ticket.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Game(); ok {
		_spec.SetField(ticket.FieldGame, field.TypeString, value)
	}
	if _u.mutation.GameCleared() {
		_spec.ClearField(ticket.FieldGame, field.TypeString)
	}
	if value, ok := _u.mutation.ProblemTiming(); ok {
		_spec.SetField(ticket.FieldProblemTiming, field.TypeString, value)
	}
	if _u.mutation.ProblemTimingCleared() {
		_spec.ClearField(ticket.FieldProblemTiming, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(ticket.FieldUrgency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(ticket.FieldAssignee, field.TypeString, value)
	}
	if _u.mutation.AssigneeCleared() {
		_spec.ClearField(ticket.FieldAssignee, field.TypeString)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(ticket.FieldResolution, field.TypeString, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(ticket.FieldResolution, field.TypeString)
	}
	if value, ok := _u.mutation.UpstreamID(); ok {
		_spec.SetField(ticket.FieldUpstreamID, field.TypeString, value)
	}
	if _u.mutation.UpstreamIDCleared() {
		_spec.ClearField(ticket.FieldUpstreamID, field.TypeString)
	}
	if value, ok := _u.mutation.Protocol(); ok {
		_spec.SetField(ticket.FieldProtocol, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyncStatus(); ok {
		_spec.SetField(ticket.FieldSyncStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(ticket.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(ticket.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(ticket.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(ticket.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ticket.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketUpdateOne is the builder for updating a single Ticket entity.
type TicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *TicketUpdateOne) SetOwnerID(v int64) *TicketUpdateOne {
	_u.mutation.ResetOwnerID()
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableOwnerID(v *int64) *TicketUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// AddOwnerID adds value to the "owner_id" field.
func (_u *TicketUpdateOne) AddOwnerID(v int64) *TicketUpdateOne {
	_u.mutation.AddOwnerID(v)
	return _u
}

// SetOwnerUsername sets the "owner_username" field.
func (_u *TicketUpdateOne) SetOwnerUsername(v string) *TicketUpdateOne {
	_u.mutation.SetOwnerUsername(v)
	return _u
}

// SetNillableOwnerUsername sets the "owner_username" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableOwnerUsername(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetOwnerUsername(*v)
	}
	return _u
}

// ClearOwnerUsername clears the value of the "owner_username" field.
func (_u *TicketUpdateOne) ClearOwnerUsername() *TicketUpdateOne {
	_u.mutation.ClearOwnerUsername()
	return _u
}

// SetOwnerCpfMasked sets the "owner_cpf_masked" field.
func (_u *TicketUpdateOne) SetOwnerCpfMasked(v string) *TicketUpdateOne {
	_u.mutation.SetOwnerCpfMasked(v)
	return _u
}

// SetNillableOwnerCpfMasked sets the "owner_cpf_masked" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableOwnerCpfMasked(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetOwnerCpfMasked(*v)
	}
	return _u
}

// ClearOwnerCpfMasked clears the value of the "owner_cpf_masked" field.
func (_u *TicketUpdateOne) ClearOwnerCpfMasked() *TicketUpdateOne {
	_u.mutation.ClearOwnerCpfMasked()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TicketUpdateOne) SetCategory(v string) *TicketUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableCategory(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGame sets the "game" field.
func (_u *TicketUpdateOne) SetGame(v string) *TicketUpdateOne {
	_u.mutation.SetGame(v)
	return _u
}

// SetNillableGame sets the "game" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableGame(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetGame(*v)
	}
	return _u
}

// ClearGame clears the value of the "game" field.
func (_u *TicketUpdateOne) ClearGame() *TicketUpdateOne {
	_u.mutation.ClearGame()
	return _u
}

// SetProblemTiming sets the "problem_timing" field.
func (_u *TicketUpdateOne) SetProblemTiming(v string) *TicketUpdateOne {
	_u.mutation.SetProblemTiming(v)
	return _u
}

// SetNillableProblemTiming sets the "problem_timing" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableProblemTiming(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetProblemTiming(*v)
	}
	return _u
}

// ClearProblemTiming clears the value of the "problem_timing" field.
func (_u *TicketUpdateOne) ClearProblemTiming() *TicketUpdateOne {
	_u.mutation.ClearProblemTiming()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdateOne) SetDescription(v string) *TicketUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDescription(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *TicketUpdateOne) SetUrgency(v ticket.Urgency) *TicketUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableUrgency(v *ticket.Urgency) *TicketUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdateOne) SetStatus(v ticket.Status) *TicketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableStatus(v *ticket.Status) *TicketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *TicketUpdateOne) SetAssignee(v string) *TicketUpdateOne {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAssignee(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// ClearAssignee clears the value of the "assignee" field.
func (_u *TicketUpdateOne) ClearAssignee() *TicketUpdateOne {
	_u.mutation.ClearAssignee()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *TicketUpdateOne) SetResolution(v string) *TicketUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableResolution(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *TicketUpdateOne) ClearResolution() *TicketUpdateOne {
	_u.mutation.ClearResolution()
	return _u
}

// SetUpstreamID sets the "upstream_id" field.
func (_u *TicketUpdateOne) SetUpstreamID(v string) *TicketUpdateOne {
	_u.mutation.SetUpstreamID(v)
	return _u
}

// SetNillableUpstreamID sets the "upstream_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableUpstreamID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetUpstreamID(*v)
	}
	return _u
}

// ClearUpstreamID clears the value of the "upstream_id" field.
func (_u *TicketUpdateOne) ClearUpstreamID() *TicketUpdateOne {
	_u.mutation.ClearUpstreamID()
	return _u
}

// SetProtocol sets the "protocol" field.
func (_u *TicketUpdateOne) SetProtocol(v string) *TicketUpdateOne {
	_u.mutation.SetProtocol(v)
	return _u
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableProtocol(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetProtocol(*v)
	}
	return _u
}

// SetSyncStatus sets the "sync_status" field.
func (_u *TicketUpdateOne) SetSyncStatus(v ticket.SyncStatus) *TicketUpdateOne {
	_u.mutation.SetSyncStatus(v)
	return _u
}

// SetNillableSyncStatus sets the "sync_status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableSyncStatus(v *ticket.SyncStatus) *TicketUpdateOne {
	if v != nil {
		_u.SetSyncStatus(*v)
	}
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *TicketUpdateOne) SetAttachments(v []models.TicketAttachment) *TicketUpdateOne {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *TicketUpdateOne) AppendAttachments(v []models.TicketAttachment) *TicketUpdateOne {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *TicketUpdateOne) ClearAttachments() *TicketUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// SetMessages sets the "messages" field.
func (_u *TicketUpdateOne) SetMessages(v []models.TicketMessage) *TicketUpdateOne {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *TicketUpdateOne) AppendMessages(v []models.TicketMessage) *TicketUpdateOne {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *TicketUpdateOne) ClearMessages() *TicketUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TicketUpdateOne) SetCreatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableCreatedAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdateOne) SetUpdatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdateOne) Mutation() *TicketMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdateOne) Where(ps ...predicate.Ticket) *TicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketUpdateOne) Select(field string, fields ...string) *TicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ticket entity.
func (_u *TicketUpdateOne) Save(ctx context.Context) (*Ticket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdateOne) SaveX(ctx context.Context) *Ticket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdateOne) check() error {
	if v, ok := _u.mutation.Urgency(); ok {
		if err := ticket.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Ticket.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncStatus(); ok {
		if err := ticket.SyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "sync_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.sync_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdateOne) sqlSave(ctx context.Context) (_node *Ticket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ticket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticket.FieldID)
		for _, f := range fields {
			if !ticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticket.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(ticket.FieldOwnerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOwnerID(); ok {
		_spec.AddField(ticket.FieldOwnerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OwnerUsername(); ok {
		_spec.SetField(ticket.FieldOwnerUsername, field.TypeString, value)
	}
	if _u.mutation.OwnerUsernameCleared() {
		_spec.ClearField(ticket.FieldOwnerUsername, field.TypeString)
	}
	if value, ok := _u.mutation.OwnerCpfMasked(); ok {
		_spec.SetField(ticket.FieldOwnerCpfMasked, field.TypeString, value)
	}
	if _u.mutation.OwnerCpfMaskedCleared() {
		_spec.ClearField(ticket.FieldOwnerCpfMasked, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(ticket.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Game(); ok {
		_spec.SetField(ticket.FieldGame, field.TypeString, value)
	}
	if _u.mutation.GameCleared() {
		_spec.ClearField(ticket.FieldGame, field.TypeString)
	}
	if value, ok := _u.mutation.ProblemTiming(); ok {
		_spec.SetField(ticket.FieldProblemTiming, field.TypeString, value)
	}
	if _u.mutation.ProblemTimingCleared() {
		_spec.ClearField(ticket.FieldProblemTiming, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(ticket.FieldUrgency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(ticket.FieldAssignee, field.TypeString, value)
	}
	if _u.mutation.AssigneeCleared() {
		_spec.ClearField(ticket.FieldAssignee, field.TypeString)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(ticket.FieldResolution, field.TypeString, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(ticket.FieldResolution, field.TypeString)
	}
	if value, ok := _u.mutation.UpstreamID(); ok {
		_spec.SetField(ticket.FieldUpstreamID, field.TypeString, value)
	}
	if _u.mutation.UpstreamIDCleared() {
		_spec.ClearField(ticket.FieldUpstreamID, field.TypeString)
	}
	if value, ok := _u.mutation.Protocol(); ok {
		_spec.SetField(ticket.FieldProtocol, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyncStatus(); ok {
		_spec.SetField(ticket.FieldSyncStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(ticket.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(ticket.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(ticket.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(ticket.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ticket.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Ticket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
