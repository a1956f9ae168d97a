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
	"github.com/atlasfibra/backoffice/ent/verificationattempt"
	"github.com/atlasfibra/backoffice/ent/verificationrequest"
)

// VerificationAttemptUpdate is the builder for updating VerificationAttempt entities.
type VerificationAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationAttemptMutation
}

// Where appends a list predicates to the VerificationAttemptUpdate builder.
func (_u *VerificationAttemptUpdate) Where(ps ...predicate.VerificationAttempt) *VerificationAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVerificationID sets the "verification_id" field.
func (_u *VerificationAttemptUpdate) SetVerificationID(v string) *VerificationAttemptUpdate {
	_u.mutation.SetVerificationID(v)
	return _u
}

// SetNillableVerificationID sets the "verification_id" field if the given value is not nil.
func (_u *VerificationAttemptUpdate) SetNillableVerificationID(v *string) *VerificationAttemptUpdate {
	if v != nil {
		_u.SetVerificationID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *VerificationAttemptUpdate) SetUserID(v int64) *VerificationAttemptUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VerificationAttemptUpdate) SetNillableUserID(v *int64) *VerificationAttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *VerificationAttemptUpdate) AddUserID(v int64) *VerificationAttemptUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *VerificationAttemptUpdate) SetAttemptNumber(v int) *VerificationAttemptUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *VerificationAttemptUpdate) SetNillableAttemptNumber(v *int) *VerificationAttemptUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *VerificationAttemptUpdate) AddAttemptNumber(v int) *VerificationAttemptUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetCpfMasked sets the "cpf_masked" field.
func (_u *VerificationAttemptUpdate) SetCpfMasked(v string) *VerificationAttemptUpdate {
	_u.mutation.SetCpfMasked(v)
	return _u
}

// SetNillableCpfMasked sets the "cpf_masked" field if the given value is not nil.
func (_u *VerificationAttemptUpdate) SetNillableCpfMasked(v *string) *VerificationAttemptUpdate {
	if v != nil {
		_u.SetCpfMasked(*v)
	}
	return _u
}

// ClearCpfMasked clears the value of the "cpf_masked" field.
func (_u *VerificationAttemptUpdate) ClearCpfMasked() *VerificationAttemptUpdate {
	_u.mutation.ClearCpfMasked()
	return _u
}

// SetCpfProvided sets the "cpf_provided" field.
func (_u *VerificationAttemptUpdate) SetCpfProvided(v string) *VerificationAttemptUpdate {
	_u.mutation.SetCpfProvided(v)
	return _u
}

// SetNillableCpfProvided sets the "cpf_provided" field if the given value is not nil.
func (_u *VerificationAttemptUpdate) SetNillableCpfProvided(v *string) *VerificationAttemptUpdate {
	if v != nil {
		_u.SetCpfProvided(*v)
	}
	return _u
}

// ClearCpfProvided clears the value of the "cpf_provided" field.
func (_u *VerificationAttemptUpdate) ClearCpfProvided() *VerificationAttemptUpdate {
	_u.mutation.ClearCpfProvided()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *VerificationAttemptUpdate) SetSuccess(v bool) *VerificationAttemptUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *VerificationAttemptUpdate) SetNillableSuccess(v *bool) *VerificationAttemptUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *VerificationAttemptUpdate) SetFailureReason(v string) *VerificationAttemptUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *VerificationAttemptUpdate) SetNillableFailureReason(v *string) *VerificationAttemptUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *VerificationAttemptUpdate) ClearFailureReason() *VerificationAttemptUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetAttemptedAt sets the "attempted_at" field.
func (_u *VerificationAttemptUpdate) SetAttemptedAt(v time.Time) *VerificationAttemptUpdate {
	_u.mutation.SetAttemptedAt(v)
	return _u
}

// SetNillableAttemptedAt sets the "attempted_at" field if the given value is not nil.
func (_u *VerificationAttemptUpdate) SetNillableAttemptedAt(v *time.Time) *VerificationAttemptUpdate {
	if v != nil {
		_u.SetAttemptedAt(*v)
	}
	return _u
}

// SetVerification sets the "verification" edge to the VerificationRequest entity.
func (_u *VerificationAttemptUpdate) SetVerification(v *VerificationRequest) *VerificationAttemptUpdate {
	return _u.SetVerificationID(v.ID)
}

// Mutation returns the VerificationAttemptMutation object of the builder.
func (_u *VerificationAttemptUpdate) Mutation() *VerificationAttemptMutation {
	return _u.mutation
}

// ClearVerification clears the "verification" edge to the VerificationRequest entity.
func (_u *VerificationAttemptUpdate) ClearVerification() *VerificationAttemptUpdate {
	_u.mutation.ClearVerification()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationAttemptUpdate) check() error {
	if _u.mutation.VerificationCleared() && len(_u.mutation.VerificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationAttempt.verification"`)
	}
	return nil
}

func (_u *VerificationAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationattempt.Table, verificationattempt.Columns, sqlgraph.NewFieldSpec(verificationattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(verificationattempt.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(verificationattempt.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(verificationattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(verificationattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CpfMasked(); ok {
		_spec.SetField(verificationattempt.FieldCpfMasked, field.TypeString, value)
	}
	if _u.mutation.CpfMaskedCleared() {
		_spec.ClearField(verificationattempt.FieldCpfMasked, field.TypeString)
	}
	if value, ok := _u.mutation.CpfProvided(); ok {
		_spec.SetField(verificationattempt.FieldCpfProvided, field.TypeString, value)
	}
	if _u.mutation.CpfProvidedCleared() {
		_spec.ClearField(verificationattempt.FieldCpfProvided, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(verificationattempt.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(verificationattempt.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(verificationattempt.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptedAt(); ok {
		_spec.SetField(verificationattempt.FieldAttemptedAt, field.TypeTime, value)
	}
	if _u.mutation.VerificationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationAttemptUpdateOne is the builder for updating a single VerificationAttempt entity.
type VerificationAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationAttemptMutation
}

// SetVerificationID sets the "verification_id" field.
func (_u *VerificationAttemptUpdateOne) SetVerificationID(v string) *VerificationAttemptUpdateOne {
	_u.mutation.SetVerificationID(v)
	return _u
}

// SetNillableVerificationID sets the "verification_id" field if the given value is not nil.
func (_u *VerificationAttemptUpdateOne) SetNillableVerificationID(v *string) *VerificationAttemptUpdateOne {
	if v != nil {
		_u.SetVerificationID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *VerificationAttemptUpdateOne) SetUserID(v int64) *VerificationAttemptUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VerificationAttemptUpdateOne) SetNillableUserID(v *int64) *VerificationAttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *VerificationAttemptUpdateOne) AddUserID(v int64) *VerificationAttemptUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *VerificationAttemptUpdateOne) SetAttemptNumber(v int) *VerificationAttemptUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *VerificationAttemptUpdateOne) SetNillableAttemptNumber(v *int) *VerificationAttemptUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *VerificationAttemptUpdateOne) AddAttemptNumber(v int) *VerificationAttemptUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetCpfMasked sets the "cpf_masked" field.
func (_u *VerificationAttemptUpdateOne) SetCpfMasked(v string) *VerificationAttemptUpdateOne {
	_u.mutation.SetCpfMasked(v)
	return _u
}

// SetNillableCpfMasked sets the "cpf_masked" field if the given value is not nil.
func (_u *VerificationAttemptUpdateOne) SetNillableCpfMasked(v *string) *VerificationAttemptUpdateOne {
	if v != nil {
		_u.SetCpfMasked(*v)
	}
	return _u
}

// ClearCpfMasked clears the value of the "cpf_masked" field.
func (_u *VerificationAttemptUpdateOne) ClearCpfMasked() *VerificationAttemptUpdateOne {
	_u.mutation.ClearCpfMasked()
	return _u
}

// SetCpfProvided sets the "cpf_provided" field.
func (_u *VerificationAttemptUpdateOne) SetCpfProvided(v string) *VerificationAttemptUpdateOne {
	_u.mutation.SetCpfProvided(v)
	return _u
}

// SetNillableCpfProvided sets the "cpf_provided" field if the given value is not nil.
func (_u *VerificationAttemptUpdateOne) SetNillableCpfProvided(v *string) *VerificationAttemptUpdateOne {
	if v != nil {
		_u.SetCpfProvided(*v)
	}
	return _u
}

// ClearCpfProvided clears the value of the "cpf_provided" field.
func (_u *VerificationAttemptUpdateOne) ClearCpfProvided() *VerificationAttemptUpdateOne {
	_u.mutation.ClearCpfProvided()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *VerificationAttemptUpdateOne) SetSuccess(v bool) *VerificationAttemptUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *VerificationAttemptUpdateOne) SetNillableSuccess(v *bool) *VerificationAttemptUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *VerificationAttemptUpdateOne) SetFailureReason(v string) *VerificationAttemptUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *VerificationAttemptUpdateOne) SetNillableFailureReason(v *string) *VerificationAttemptUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *VerificationAttemptUpdateOne) ClearFailureReason() *VerificationAttemptUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetAttemptedAt sets the "attempted_at" field.
func (_u *VerificationAttemptUpdateOne) SetAttemptedAt(v time.Time) *VerificationAttemptUpdateOne {
	_u.mutation.SetAttemptedAt(v)
	return _u
}

// SetNillableAttemptedAt sets the "attempted_at" field if the given value is not nil.
func (_u *VerificationAttemptUpdateOne) SetNillableAttemptedAt(v *time.Time) *VerificationAttemptUpdateOne {
	if v != nil {
		_u.SetAttemptedAt(*v)
	}
	return _u
}

// SetVerification sets the "verification" edge to the VerificationRequest entity.
func (_u *VerificationAttemptUpdateOne) SetVerification(v *VerificationRequest) *VerificationAttemptUpdateOne {
	return _u.SetVerificationID(v.ID)
}

// Mutation returns the VerificationAttemptMutation object of the builder.
func (_u *VerificationAttemptUpdateOne) Mutation() *VerificationAttemptMutation {
	return _u.mutation
}

// ClearVerification clears the "verification" edge to the VerificationRequest entity.
func (_u *VerificationAttemptUpdateOne) ClearVerification() *VerificationAttemptUpdateOne {
	_u.mutation.ClearVerification()
	return _u
}

// Where appends a list predicates to the VerificationAttemptUpdate builder.
func (_u *VerificationAttemptUpdateOne) Where(ps ...predicate.VerificationAttempt) *VerificationAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationAttemptUpdateOne) Select(field string, fields ...string) *VerificationAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationAttempt entity.
func (_u *VerificationAttemptUpdateOne) Save(ctx context.Context) (*VerificationAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationAttemptUpdateOne) SaveX(ctx context.Context) *VerificationAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationAttemptUpdateOne) check() error {
	if _u.mutation.VerificationCleared() && len(_u.mutation.VerificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationAttempt.verification"`)
	}
	return nil
}

func (_u *VerificationAttemptUpdateOne) sqlSave(ctx context.Context) (_node *VerificationAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationattempt.Table, verificationattempt.Columns, sqlgraph.NewFieldSpec(verificationattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationattempt.FieldID)
		for _, f := range fields {
			if !verificationattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationattempt.FieldID {
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
		_spec.SetField(verificationattempt.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(verificationattempt.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(verificationattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(verificationattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CpfMasked(); ok {
		_spec.SetField(verificationattempt.FieldCpfMasked, field.TypeString, value)
	}
	if _u.mutation.CpfMaskedCleared() {
		_spec.ClearField(verificationattempt.FieldCpfMasked, field.TypeString)
	}
	if value, ok := _u.mutation.CpfProvided(); ok {
		_spec.SetField(verificationattempt.FieldCpfProvided, field.TypeString, value)
	}
	if _u.mutation.CpfProvidedCleared() {
		_spec.ClearField(verificationattempt.FieldCpfProvided, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(verificationattempt.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(verificationattempt.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(verificationattempt.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptedAt(); ok {
		_spec.SetField(verificationattempt.FieldAttemptedAt, field.TypeTime, value)
	}
	if _u.mutation.VerificationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
