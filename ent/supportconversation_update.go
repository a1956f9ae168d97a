// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atlasfibra/backoffice/ent/predicate"
	"github.com/atlasfibra/backoffice/ent/supportconversation"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// SupportConversationUpdate is the builder for updating SupportConversation entities.
type SupportConversationUpdate struct {
	config
	hooks    []Hook
	mutation *SupportConversationMutation
}

// Where appends a list predicates to the SupportConversationUpdate builder.
func (_u *SupportConversationUpdate) Where(ps ...predicate.SupportConversation) *SupportConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SupportConversationUpdate) SetUserID(v int64) *SupportConversationUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SupportConversationUpdate) SetNillableUserID(v *int64) *SupportConversationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *SupportConversationUpdate) AddUserID(v int64) *SupportConversationUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *SupportConversationUpdate) SetUsername(v string) *SupportConversationUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *SupportConversationUpdate) SetNillableUsername(v *string) *SupportConversationUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *SupportConversationUpdate) ClearUsername() *SupportConversationUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetState sets the "state" field.
func (_u *SupportConversationUpdate) SetState(v supportconversation.State) *SupportConversationUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SupportConversationUpdate) SetNillableState(v *supportconversation.State) *SupportConversationUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *SupportConversationUpdate) SetCurrentStep(v int) *SupportConversationUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *SupportConversationUpdate) SetNillableCurrentStep(v *int) *SupportConversationUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *SupportConversationUpdate) AddCurrentStep(v int) *SupportConversationUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetFormData sets the "form_data" field.
func (_u *SupportConversationUpdate) SetFormData(v *models.ConversationFormData) *SupportConversationUpdate {
	_u.mutation.SetFormData(v)
	return _u
}

// ClearFormData clears the value of the "form_data" field.
func (_u *SupportConversationUpdate) ClearFormData() *SupportConversationUpdate {
	_u.mutation.ClearFormData()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SupportConversationUpdate) SetIsActive(v bool) *SupportConversationUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SupportConversationUpdate) SetNillableIsActive(v *bool) *SupportConversationUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *SupportConversationUpdate) SetTicketID(v string) *SupportConversationUpdate {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *SupportConversationUpdate) SetNillableTicketID(v *string) *SupportConversationUpdate {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *SupportConversationUpdate) ClearTicketID() *SupportConversationUpdate {
	_u.mutation.ClearTicketID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SupportConversationUpdate) SetStartedAt(v time.Time) *SupportConversationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SupportConversationUpdate) SetNillableStartedAt(v *time.Time) *SupportConversationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *SupportConversationUpdate) SetLastActiveAt(v time.Time) *SupportConversationUpdate {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *SupportConversationUpdate) SetNillableLastActiveAt(v *time.Time) *SupportConversationUpdate {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// Mutation returns the SupportConversationMutation object of the builder.
func (_u *SupportConversationUpdate) Mutation() *SupportConversationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupportConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupportConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupportConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupportConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupportConversationUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := supportconversation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "SupportConversation.state": %w`, err)}
		}
	}
	return nil
}

func (_u *SupportConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supportconversation.Table, supportconversation.Columns, sqlgraph.NewFieldSpec(supportconversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(supportconversation.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(supportconversation.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(supportconversation.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(supportconversation.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(supportconversation.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(supportconversation.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(supportconversation.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FormData(); ok {
		_spec.SetField(supportconversation.FieldFormData, field.TypeJSON, value)
	}
	if _u.mutation.FormDataCleared() {
		_spec.ClearField(supportconversation.FieldFormData, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(supportconversation.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(supportconversation.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(supportconversation.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(supportconversation.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(supportconversation.FieldLastActiveAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supportconversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupportConversationUpdateOne is the builder for updating a single SupportConversation entity.
type SupportConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupportConversationMutation
}

// SetUserID sets the "user_id" field.
func (_u *SupportConversationUpdateOne) SetUserID(v int64) *SupportConversationUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SupportConversationUpdateOne) SetNillableUserID(v *int64) *SupportConversationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *SupportConversationUpdateOne) AddUserID(v int64) *SupportConversationUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *SupportConversationUpdateOne) SetUsername(v string) *SupportConversationUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *SupportConversationUpdateOne) SetNillableUsername(v *string) *SupportConversationUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *SupportConversationUpdateOne) ClearUsername() *SupportConversationUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetState sets the "state" field.
func (_u *SupportConversationUpdateOne) SetState(v supportconversation.State) *SupportConversationUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SupportConversationUpdateOne) SetNillableState(v *supportconversation.State) *SupportConversationUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *SupportConversationUpdateOne) SetCurrentStep(v int) *SupportConversationUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *SupportConversationUpdateOne) SetNillableCurrentStep(v *int) *SupportConversationUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *SupportConversationUpdateOne) AddCurrentStep(v int) *SupportConversationUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetFormData sets the "form_data" field.
func (_u *SupportConversationUpdateOne) SetFormData(v *models.ConversationFormData) *SupportConversationUpdateOne {
	_u.mutation.SetFormData(v)
	return _u
}

// ClearFormData clears the value of the "form_data" field.
func (_u *SupportConversationUpdateOne) ClearFormData() *SupportConversationUpdateOne {
	_u.mutation.ClearFormData()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SupportConversationUpdateOne) SetIsActive(v bool) *SupportConversationUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SupportConversationUpdateOne) SetNillableIsActive(v *bool) *SupportConversationUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *SupportConversationUpdateOne) SetTicketID(v string) *SupportConversationUpdateOne {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *SupportConversationUpdateOne) SetNillableTicketID(v *string) *SupportConversationUpdateOne {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *SupportConversationUpdateOne) ClearTicketID() *SupportConversationUpdateOne {
	_u.mutation.ClearTicketID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SupportConversationUpdateOne) SetStartedAt(v time.Time) *SupportConversationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SupportConversationUpdateOne) SetNillableStartedAt(v *time.Time) *SupportConversationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *SupportConversationUpdateOne) SetLastActiveAt(v time.Time) *SupportConversationUpdateOne {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *SupportConversationUpdateOne) SetNillableLastActiveAt(v *time.Time) *SupportConversationUpdateOne {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// Mutation returns the SupportConversationMutation object of the builder.
func (_u *SupportConversationUpdateOne) Mutation() *SupportConversationMutation {
	return _u.mutation
}

// Where appends a list predicates to the SupportConversationUpdate builder.
func (_u *SupportConversationUpdateOne) Where(ps ...predicate.SupportConversation) *SupportConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupportConversationUpdateOne) Select(field string, fields ...string) *SupportConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupportConversation entity.
func (_u *SupportConversationUpdateOne) Save(ctx context.Context) (*SupportConversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupportConversationUpdateOne) SaveX(ctx context.Context) *SupportConversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupportConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupportConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupportConversationUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := supportconversation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "SupportConversation.state": %w`, err)}
		}
	}
	return nil
}

func (_u *SupportConversationUpdateOne) sqlSave(ctx context.Context) (_node *SupportConversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supportconversation.Table, supportconversation.Columns, sqlgraph.NewFieldSpec(supportconversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SupportConversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supportconversation.FieldID)
		for _, f := range fields {
			if !supportconversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supportconversation.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(supportconversation.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(supportconversation.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(supportconversation.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(supportconversation.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(supportconversation.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(supportconversation.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(supportconversation.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FormData(); ok {
		_spec.SetField(supportconversation.FieldFormData, field.TypeJSON, value)
	}
	if _u.mutation.FormDataCleared() {
		_spec.ClearField(supportconversation.FieldFormData, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(supportconversation.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(supportconversation.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(supportconversation.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(supportconversation.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(supportconversation.FieldLastActiveAt, field.TypeTime, value)
	}
	_node = &SupportConversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supportconversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
