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
	"github.com/atlasfibra/backoffice/pkg/models"
)

// VerificationRequestUpdate is the builder for updating VerificationRequest entities.
type VerificationRequestUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationRequestMutation
}

// Where appends a list predicates to the VerificationRequestUpdate builder.
func (_u *VerificationRequestUpdate) Where(ps ...predicate.VerificationRequest) *VerificationRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *VerificationRequestUpdate) SetUserID(v int64) *VerificationRequestUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableUserID(v *int64) *VerificationRequestUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *VerificationRequestUpdate) AddUserID(v int64) *VerificationRequestUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *VerificationRequestUpdate) SetUsername(v string) *VerificationRequestUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableUsername(v *string) *VerificationRequestUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *VerificationRequestUpdate) ClearUsername() *VerificationRequestUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetVerificationType sets the "verification_type" field.
func (_u *VerificationRequestUpdate) SetVerificationType(v verificationrequest.VerificationType) *VerificationRequestUpdate {
	_u.mutation.SetVerificationType(v)
	return _u
}

// SetNillableVerificationType sets the "verification_type" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableVerificationType(v *verificationrequest.VerificationType) *VerificationRequestUpdate {
	if v != nil {
		_u.SetVerificationType(*v)
	}
	return _u
}

// SetSourceAction sets the "source_action" field.
func (_u *VerificationRequestUpdate) SetSourceAction(v string) *VerificationRequestUpdate {
	_u.mutation.SetSourceAction(v)
	return _u
}

// SetNillableSourceAction sets the "source_action" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableSourceAction(v *string) *VerificationRequestUpdate {
	if v != nil {
		_u.SetSourceAction(*v)
	}
	return _u
}

// ClearSourceAction clears the value of the "source_action" field.
func (_u *VerificationRequestUpdate) ClearSourceAction() *VerificationRequestUpdate {
	_u.mutation.ClearSourceAction()
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationRequestUpdate) SetStatus(v verificationrequest.Status) *VerificationRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableStatus(v *verificationrequest.Status) *VerificationRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVerifiedCpfMasked sets the "verified_cpf_masked" field.
func (_u *VerificationRequestUpdate) SetVerifiedCpfMasked(v string) *VerificationRequestUpdate {
	_u.mutation.SetVerifiedCpfMasked(v)
	return _u
}

// SetNillableVerifiedCpfMasked sets the "verified_cpf_masked" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableVerifiedCpfMasked(v *string) *VerificationRequestUpdate {
	if v != nil {
		_u.SetVerifiedCpfMasked(*v)
	}
	return _u
}

// ClearVerifiedCpfMasked clears the value of the "verified_cpf_masked" field.
func (_u *VerificationRequestUpdate) ClearVerifiedCpfMasked() *VerificationRequestUpdate {
	_u.mutation.ClearVerifiedCpfMasked()
	return _u
}

// SetVerifiedCpfHash sets the "verified_cpf_hash" field.
func (_u *VerificationRequestUpdate) SetVerifiedCpfHash(v string) *VerificationRequestUpdate {
	_u.mutation.SetVerifiedCpfHash(v)
	return _u
}

// SetNillableVerifiedCpfHash sets the "verified_cpf_hash" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableVerifiedCpfHash(v *string) *VerificationRequestUpdate {
	if v != nil {
		_u.SetVerifiedCpfHash(*v)
	}
	return _u
}

// ClearVerifiedCpfHash clears the value of the "verified_cpf_hash" field.
func (_u *VerificationRequestUpdate) ClearVerifiedCpfHash() *VerificationRequestUpdate {
	_u.mutation.ClearVerifiedCpfHash()
	return _u
}

// SetClientSnapshot sets the "client_snapshot" field.
func (_u *VerificationRequestUpdate) SetClientSnapshot(v *models.UpstreamClientSnapshot) *VerificationRequestUpdate {
	_u.mutation.SetClientSnapshot(v)
	return _u
}

// ClearClientSnapshot clears the value of the "client_snapshot" field.
func (_u *VerificationRequestUpdate) ClearClientSnapshot() *VerificationRequestUpdate {
	_u.mutation.ClearClientSnapshot()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *VerificationRequestUpdate) SetFailureReason(v string) *VerificationRequestUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableFailureReason(v *string) *VerificationRequestUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *VerificationRequestUpdate) ClearFailureReason() *VerificationRequestUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VerificationRequestUpdate) SetCreatedAt(v time.Time) *VerificationRequestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableCreatedAt(v *time.Time) *VerificationRequestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *VerificationRequestUpdate) SetExpiresAt(v time.Time) *VerificationRequestUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableExpiresAt(v *time.Time) *VerificationRequestUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *VerificationRequestUpdate) SetCompletedAt(v time.Time) *VerificationRequestUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *VerificationRequestUpdate) SetNillableCompletedAt(v *time.Time) *VerificationRequestUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *VerificationRequestUpdate) ClearCompletedAt() *VerificationRequestUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the VerificationAttempt entity by IDs.
func (_u *VerificationRequestUpdate) AddAttemptIDs(ids ...int) *VerificationRequestUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the VerificationAttempt entity.
func (_u *VerificationRequestUpdate) AddAttempts(v ...*VerificationAttempt) *VerificationRequestUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the VerificationRequestMutation object of the builder.
func (_u *VerificationRequestUpdate) Mutation() *VerificationRequestMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the VerificationAttempt entity.
func (_u *VerificationRequestUpdate) ClearAttempts() *VerificationRequestUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to VerificationAttempt entities by IDs.
func (_u *VerificationRequestUpdate) RemoveAttemptIDs(ids ...int) *VerificationRequestUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to VerificationAttempt entities.
func (_u *VerificationRequestUpdate) RemoveAttempts(v ...*VerificationAttempt) *VerificationRequestUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRequestUpdate) check() error {
	if v, ok := _u.mutation.VerificationType(); ok {
		if err := verificationrequest.VerificationTypeValidator(v); err != nil {
			return &ValidationError{Name: "verification_type", err: fmt.Errorf(`ent: validator failed for field "VerificationRequest.verification_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *VerificationRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrequest.Table, verificationrequest.Columns, sqlgraph.NewFieldSpec(verificationrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(verificationrequest.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(verificationrequest.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(verificationrequest.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(verificationrequest.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.VerificationType(); ok {
		_spec.SetField(verificationrequest.FieldVerificationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceAction(); ok {
		_spec.SetField(verificationrequest.FieldSourceAction, field.TypeString, value)
	}
	if _u.mutation.SourceActionCleared() {
		_spec.ClearField(verificationrequest.FieldSourceAction, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VerifiedCpfMasked(); ok {
		_spec.SetField(verificationrequest.FieldVerifiedCpfMasked, field.TypeString, value)
	}
	if _u.mutation.VerifiedCpfMaskedCleared() {
		_spec.ClearField(verificationrequest.FieldVerifiedCpfMasked, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedCpfHash(); ok {
		_spec.SetField(verificationrequest.FieldVerifiedCpfHash, field.TypeString, value)
	}
	if _u.mutation.VerifiedCpfHashCleared() {
		_spec.ClearField(verificationrequest.FieldVerifiedCpfHash, field.TypeString)
	}
	if value, ok := _u.mutation.ClientSnapshot(); ok {
		_spec.SetField(verificationrequest.FieldClientSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ClientSnapshotCleared() {
		_spec.ClearField(verificationrequest.FieldClientSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(verificationrequest.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(verificationrequest.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(verificationrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(verificationrequest.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(verificationrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(verificationrequest.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationRequestUpdateOne is the builder for updating a single VerificationRequest entity.
type VerificationRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationRequestMutation
}

// SetUserID sets the "user_id" field.
func (_u *VerificationRequestUpdateOne) SetUserID(v int64) *VerificationRequestUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableUserID(v *int64) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *VerificationRequestUpdateOne) AddUserID(v int64) *VerificationRequestUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *VerificationRequestUpdateOne) SetUsername(v string) *VerificationRequestUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableUsername(v *string) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *VerificationRequestUpdateOne) ClearUsername() *VerificationRequestUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetVerificationType sets the "verification_type" field.
func (_u *VerificationRequestUpdateOne) SetVerificationType(v verificationrequest.VerificationType) *VerificationRequestUpdateOne {
	_u.mutation.SetVerificationType(v)
	return _u
}

// SetNillableVerificationType sets the "verification_type" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableVerificationType(v *verificationrequest.VerificationType) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetVerificationType(*v)
	}
	return _u
}

// SetSourceAction sets the "source_action" field.
func (_u *VerificationRequestUpdateOne) SetSourceAction(v string) *VerificationRequestUpdateOne {
	_u.mutation.SetSourceAction(v)
	return _u
}

// SetNillableSourceAction sets the "source_action" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableSourceAction(v *string) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetSourceAction(*v)
	}
	return _u
}

// ClearSourceAction clears the value of the "source_action" field.
func (_u *VerificationRequestUpdateOne) ClearSourceAction() *VerificationRequestUpdateOne {
	_u.mutation.ClearSourceAction()
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationRequestUpdateOne) SetStatus(v verificationrequest.Status) *VerificationRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableStatus(v *verificationrequest.Status) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVerifiedCpfMasked sets the "verified_cpf_masked" field.
func (_u *VerificationRequestUpdateOne) SetVerifiedCpfMasked(v string) *VerificationRequestUpdateOne {
	_u.mutation.SetVerifiedCpfMasked(v)
	return _u
}

// SetNillableVerifiedCpfMasked sets the "verified_cpf_masked" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableVerifiedCpfMasked(v *string) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetVerifiedCpfMasked(*v)
	}
	return _u
}

// ClearVerifiedCpfMasked clears the value of the "verified_cpf_masked" field.
func (_u *VerificationRequestUpdateOne) ClearVerifiedCpfMasked() *VerificationRequestUpdateOne {
	_u.mutation.ClearVerifiedCpfMasked()
	return _u
}

// SetVerifiedCpfHash sets the "verified_cpf_hash" field.
func (_u *VerificationRequestUpdateOne) SetVerifiedCpfHash(v string) *VerificationRequestUpdateOne {
	_u.mutation.SetVerifiedCpfHash(v)
	return _u
}

// SetNillableVerifiedCpfHash sets the "verified_cpf_hash" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableVerifiedCpfHash(v *string) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetVerifiedCpfHash(*v)
	}
	return _u
}

// ClearVerifiedCpfHash clears the value of the "verified_cpf_hash" field.
func (_u *VerificationRequestUpdateOne) ClearVerifiedCpfHash() *VerificationRequestUpdateOne {
	_u.mutation.ClearVerifiedCpfHash()
	return _u
}

// SetClientSnapshot sets the "client_snapshot" field.
func (_u *VerificationRequestUpdateOne) SetClientSnapshot(v *models.UpstreamClientSnapshot) *VerificationRequestUpdateOne {
	_u.mutation.SetClientSnapshot(v)
	return _u
}

// ClearClientSnapshot clears the value of the "client_snapshot" field.
func (_u *VerificationRequestUpdateOne) ClearClientSnapshot() *VerificationRequestUpdateOne {
	_u.mutation.ClearClientSnapshot()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *VerificationRequestUpdateOne) SetFailureReason(v string) *VerificationRequestUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableFailureReason(v *string) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *VerificationRequestUpdateOne) ClearFailureReason() *VerificationRequestUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VerificationRequestUpdateOne) SetCreatedAt(v time.Time) *VerificationRequestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableCreatedAt(v *time.Time) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *VerificationRequestUpdateOne) SetExpiresAt(v time.Time) *VerificationRequestUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableExpiresAt(v *time.Time) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *VerificationRequestUpdateOne) SetCompletedAt(v time.Time) *VerificationRequestUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *VerificationRequestUpdateOne) SetNillableCompletedAt(v *time.Time) *VerificationRequestUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *VerificationRequestUpdateOne) ClearCompletedAt() *VerificationRequestUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the VerificationAttempt entity by IDs.
func (_u *VerificationRequestUpdateOne) AddAttemptIDs(ids ...int) *VerificationRequestUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the VerificationAttempt entity.
func (_u *VerificationRequestUpdateOne) AddAttempts(v ...*VerificationAttempt) *VerificationRequestUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the VerificationRequestMutation object of the builder.
func (_u *VerificationRequestUpdateOne) Mutation() *VerificationRequestMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the VerificationAttempt entity.
func (_u *VerificationRequestUpdateOne) ClearAttempts() *VerificationRequestUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to VerificationAttempt entities by IDs.
func (_u *VerificationRequestUpdateOne) RemoveAttemptIDs(ids ...int) *VerificationRequestUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to VerificationAttempt entities.
func (_u *VerificationRequestUpdateOne) RemoveAttempts(v ...*VerificationAttempt) *VerificationRequestUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the VerificationRequestUpdate builder.
func (_u *VerificationRequestUpdateOne) Where(ps ...predicate.VerificationRequest) *VerificationRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationRequestUpdateOne) Select(field string, fields ...string) *VerificationRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationRequest entity.
func (_u *VerificationRequestUpdateOne) Save(ctx context.Context) (*VerificationRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRequestUpdateOne) SaveX(ctx context.Context) *VerificationRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRequestUpdateOne) check() error {
	if v, ok := _u.mutation.VerificationType(); ok {
		if err := verificationrequest.VerificationTypeValidator(v); err != nil {
			return &ValidationError{Name: "verification_type", err: fmt.Errorf(`ent: validator failed for field "VerificationRequest.verification_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *VerificationRequestUpdateOne) sqlSave(ctx context.Context) (_node *VerificationRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrequest.Table, verificationrequest.Columns, sqlgraph.NewFieldSpec(verificationrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationrequest.FieldID)
		for _, f := range fields {
			if !verificationrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationrequest.FieldID {
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
		_spec.SetField(verificationrequest.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(verificationrequest.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(verificationrequest.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(verificationrequest.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.VerificationType(); ok {
		_spec.SetField(verificationrequest.FieldVerificationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceAction(); ok {
		_spec.SetField(verificationrequest.FieldSourceAction, field.TypeString, value)
	}
	if _u.mutation.SourceActionCleared() {
		_spec.ClearField(verificationrequest.FieldSourceAction, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VerifiedCpfMasked(); ok {
		_spec.SetField(verificationrequest.FieldVerifiedCpfMasked, field.TypeString, value)
	}
	if _u.mutation.VerifiedCpfMaskedCleared() {
		_spec.ClearField(verificationrequest.FieldVerifiedCpfMasked, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedCpfHash(); ok {
		_spec.SetField(verificationrequest.FieldVerifiedCpfHash, field.TypeString, value)
	}
	if _u.mutation.VerifiedCpfHashCleared() {
		_spec.ClearField(verificationrequest.FieldVerifiedCpfHash, field.TypeString)
	}
	if value, ok := _u.mutation.ClientSnapshot(); ok {
		_spec.SetField(verificationrequest.FieldClientSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ClientSnapshotCleared() {
		_spec.ClearField(verificationrequest.FieldClientSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(verificationrequest.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(verificationrequest.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(verificationrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(verificationrequest.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(verificationrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(verificationrequest.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
