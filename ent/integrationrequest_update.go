// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/ent/predicate"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// IntegrationRequestUpdate is the builder for updating IntegrationRequest entities.
type IntegrationRequestUpdate struct {
	config
	hooks    []Hook
	mutation *IntegrationRequestMutation
}

// Where appends a list predicates to the IntegrationRequestUpdate builder.
func (_u *IntegrationRequestUpdate) Where(ps ...predicate.IntegrationRequest) *IntegrationRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntegrationType sets the "integration_type" field.
func (_u *IntegrationRequestUpdate) SetIntegrationType(v integrationrequest.IntegrationType) *IntegrationRequestUpdate {
	_u.mutation.SetIntegrationType(v)
	return _u
}

// SetNillableIntegrationType sets the "integration_type" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableIntegrationType(v *integrationrequest.IntegrationType) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetIntegrationType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *IntegrationRequestUpdate) SetPriority(v int) *IntegrationRequestUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillablePriority(v *int) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *IntegrationRequestUpdate) AddPriority(v int) *IntegrationRequestUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntegrationRequestUpdate) SetStatus(v integrationrequest.Status) *IntegrationRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableStatus(v *integrationrequest.Status) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *IntegrationRequestUpdate) SetPayload(v json.RawMessage) *IntegrationRequestUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *IntegrationRequestUpdate) AppendPayload(v json.RawMessage) *IntegrationRequestUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *IntegrationRequestUpdate) ClearPayload() *IntegrationRequestUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *IntegrationRequestUpdate) SetMetadata(v map[string]string) *IntegrationRequestUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *IntegrationRequestUpdate) ClearMetadata() *IntegrationRequestUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *IntegrationRequestUpdate) SetMaxRetries(v int) *IntegrationRequestUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableMaxRetries(v *int) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *IntegrationRequestUpdate) AddMaxRetries(v int) *IntegrationRequestUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetForceRetry sets the "force_retry" field.
func (_u *IntegrationRequestUpdate) SetForceRetry(v bool) *IntegrationRequestUpdate {
	_u.mutation.SetForceRetry(v)
	return _u
}

// SetNillableForceRetry sets the "force_retry" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableForceRetry(v *bool) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetForceRetry(*v)
	}
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *IntegrationRequestUpdate) SetTimeoutSeconds(v int) *IntegrationRequestUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableTimeoutSeconds(v *int) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *IntegrationRequestUpdate) AddTimeoutSeconds(v int) *IntegrationRequestUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (_u *IntegrationRequestUpdate) ClearTimeoutSeconds() *IntegrationRequestUpdate {
	_u.mutation.ClearTimeoutSeconds()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *IntegrationRequestUpdate) SetScheduledAt(v time.Time) *IntegrationRequestUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableScheduledAt(v *time.Time) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IntegrationRequestUpdate) SetStartedAt(v time.Time) *IntegrationRequestUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableStartedAt(v *time.Time) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *IntegrationRequestUpdate) ClearStartedAt() *IntegrationRequestUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *IntegrationRequestUpdate) SetCompletedAt(v time.Time) *IntegrationRequestUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableCompletedAt(v *time.Time) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *IntegrationRequestUpdate) ClearCompletedAt() *IntegrationRequestUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetResponse sets the "response" field.
func (_u *IntegrationRequestUpdate) SetResponse(v json.RawMessage) *IntegrationRequestUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// AppendResponse appends value to the "response" field.
func (_u *IntegrationRequestUpdate) AppendResponse(v json.RawMessage) *IntegrationRequestUpdate {
	_u.mutation.AppendResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *IntegrationRequestUpdate) ClearResponse() *IntegrationRequestUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *IntegrationRequestUpdate) SetLastError(v string) *IntegrationRequestUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableLastError(v *string) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *IntegrationRequestUpdate) ClearLastError() *IntegrationRequestUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *IntegrationRequestUpdate) SetAttempts(v []models.IntegrationAttempt) *IntegrationRequestUpdate {
	_u.mutation.SetAttempts(v)
	return _u
}

// AppendAttempts appends value to the "attempts" field.
func (_u *IntegrationRequestUpdate) AppendAttempts(v []models.IntegrationAttempt) *IntegrationRequestUpdate {
	_u.mutation.AppendAttempts(v)
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *IntegrationRequestUpdate) ClearAttempts() *IntegrationRequestUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *IntegrationRequestUpdate) SetPodID(v string) *IntegrationRequestUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillablePodID(v *string) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *IntegrationRequestUpdate) ClearPodID() *IntegrationRequestUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *IntegrationRequestUpdate) SetLastHeartbeatAt(v time.Time) *IntegrationRequestUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableLastHeartbeatAt(v *time.Time) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *IntegrationRequestUpdate) ClearLastHeartbeatAt() *IntegrationRequestUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IntegrationRequestUpdate) SetCreatedAt(v time.Time) *IntegrationRequestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IntegrationRequestUpdate) SetNillableCreatedAt(v *time.Time) *IntegrationRequestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the IntegrationRequestMutation object of the builder.
func (_u *IntegrationRequestUpdate) Mutation() *IntegrationRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntegrationRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntegrationRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationRequestUpdate) check() error {
	if v, ok := _u.mutation.IntegrationType(); ok {
		if err := integrationrequest.IntegrationTypeValidator(v); err != nil {
			return &ValidationError{Name: "integration_type", err: fmt.Errorf(`ent: validator failed for field "IntegrationRequest.integration_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := integrationrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntegrationRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntegrationRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integrationrequest.Table, integrationrequest.Columns, sqlgraph.NewFieldSpec(integrationrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IntegrationType(); ok {
		_spec.SetField(integrationrequest.FieldIntegrationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(integrationrequest.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(integrationrequest.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(integrationrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(integrationrequest.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integrationrequest.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(integrationrequest.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(integrationrequest.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(integrationrequest.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(integrationrequest.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(integrationrequest.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ForceRetry(); ok {
		_spec.SetField(integrationrequest.FieldForceRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(integrationrequest.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(integrationrequest.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSecondsCleared() {
		_spec.ClearField(integrationrequest.FieldTimeoutSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(integrationrequest.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(integrationrequest.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(integrationrequest.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(integrationrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(integrationrequest.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(integrationrequest.FieldResponse, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponse(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integrationrequest.FieldResponse, value)
		})
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(integrationrequest.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(integrationrequest.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(integrationrequest.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(integrationrequest.FieldAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integrationrequest.FieldAttempts, value)
		})
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(integrationrequest.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(integrationrequest.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(integrationrequest.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(integrationrequest.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(integrationrequest.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(integrationrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integrationrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntegrationRequestUpdateOne is the builder for updating a single IntegrationRequest entity.
type IntegrationRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntegrationRequestMutation
}

// SetIntegrationType sets the "integration_type" field.
func (_u *IntegrationRequestUpdateOne) SetIntegrationType(v integrationrequest.IntegrationType) *IntegrationRequestUpdateOne {
	_u.mutation.SetIntegrationType(v)
	return _u
}

// SetNillableIntegrationType sets the "integration_type" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableIntegrationType(v *integrationrequest.IntegrationType) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetIntegrationType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *IntegrationRequestUpdateOne) SetPriority(v int) *IntegrationRequestUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillablePriority(v *int) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *IntegrationRequestUpdateOne) AddPriority(v int) *IntegrationRequestUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntegrationRequestUpdateOne) SetStatus(v integrationrequest.Status) *IntegrationRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableStatus(v *integrationrequest.Status) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *IntegrationRequestUpdateOne) SetPayload(v json.RawMessage) *IntegrationRequestUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *IntegrationRequestUpdateOne) AppendPayload(v json.RawMessage) *IntegrationRequestUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *IntegrationRequestUpdateOne) ClearPayload() *IntegrationRequestUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *IntegrationRequestUpdateOne) SetMetadata(v map[string]string) *IntegrationRequestUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *IntegrationRequestUpdateOne) ClearMetadata() *IntegrationRequestUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *IntegrationRequestUpdateOne) SetMaxRetries(v int) *IntegrationRequestUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableMaxRetries(v *int) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *IntegrationRequestUpdateOne) AddMaxRetries(v int) *IntegrationRequestUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetForceRetry sets the "force_retry" field.
func (_u *IntegrationRequestUpdateOne) SetForceRetry(v bool) *IntegrationRequestUpdateOne {
	_u.mutation.SetForceRetry(v)
	return _u
}

// SetNillableForceRetry sets the "force_retry" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableForceRetry(v *bool) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetForceRetry(*v)
	}
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *IntegrationRequestUpdateOne) SetTimeoutSeconds(v int) *IntegrationRequestUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableTimeoutSeconds(v *int) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *IntegrationRequestUpdateOne) AddTimeoutSeconds(v int) *IntegrationRequestUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (_u *IntegrationRequestUpdateOne) ClearTimeoutSeconds() *IntegrationRequestUpdateOne {
	_u.mutation.ClearTimeoutSeconds()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *IntegrationRequestUpdateOne) SetScheduledAt(v time.Time) *IntegrationRequestUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableScheduledAt(v *time.Time) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IntegrationRequestUpdateOne) SetStartedAt(v time.Time) *IntegrationRequestUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableStartedAt(v *time.Time) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *IntegrationRequestUpdateOne) ClearStartedAt() *IntegrationRequestUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *IntegrationRequestUpdateOne) SetCompletedAt(v time.Time) *IntegrationRequestUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableCompletedAt(v *time.Time) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *IntegrationRequestUpdateOne) ClearCompletedAt() *IntegrationRequestUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetResponse sets the "response" field.
func (_u *IntegrationRequestUpdateOne) SetResponse(v json.RawMessage) *IntegrationRequestUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// AppendResponse appends value to the "response" field.
func (_u *IntegrationRequestUpdateOne) AppendResponse(v json.RawMessage) *IntegrationRequestUpdateOne {
	_u.mutation.AppendResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *IntegrationRequestUpdateOne) ClearResponse() *IntegrationRequestUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *IntegrationRequestUpdateOne) SetLastError(v string) *IntegrationRequestUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableLastError(v *string) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *IntegrationRequestUpdateOne) ClearLastError() *IntegrationRequestUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *IntegrationRequestUpdateOne) SetAttempts(v []models.IntegrationAttempt) *IntegrationRequestUpdateOne {
	_u.mutation.SetAttempts(v)
	return _u
}

// AppendAttempts appends value to the "attempts" field.
func (_u *IntegrationRequestUpdateOne) AppendAttempts(v []models.IntegrationAttempt) *IntegrationRequestUpdateOne {
	_u.mutation.AppendAttempts(v)
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *IntegrationRequestUpdateOne) ClearAttempts() *IntegrationRequestUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *IntegrationRequestUpdateOne) SetPodID(v string) *IntegrationRequestUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillablePodID(v *string) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *IntegrationRequestUpdateOne) ClearPodID() *IntegrationRequestUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *IntegrationRequestUpdateOne) SetLastHeartbeatAt(v time.Time) *IntegrationRequestUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *IntegrationRequestUpdateOne) ClearLastHeartbeatAt() *IntegrationRequestUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IntegrationRequestUpdateOne) SetCreatedAt(v time.Time) *IntegrationRequestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IntegrationRequestUpdateOne) SetNillableCreatedAt(v *time.Time) *IntegrationRequestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the IntegrationRequestMutation object of the builder.
func (_u *IntegrationRequestUpdateOne) Mutation() *IntegrationRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntegrationRequestUpdate builder.
func (_u *IntegrationRequestUpdateOne) Where(ps ...predicate.IntegrationRequest) *IntegrationRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntegrationRequestUpdateOne) Select(field string, fields ...string) *IntegrationRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntegrationRequest entity.
func (_u *IntegrationRequestUpdateOne) Save(ctx context.Context) (*IntegrationRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationRequestUpdateOne) SaveX(ctx context.Context) *IntegrationRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntegrationRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationRequestUpdateOne) check() error {
	if v, ok := _u.mutation.IntegrationType(); ok {
		if err := integrationrequest.IntegrationTypeValidator(v); err != nil {
			return &ValidationError{Name: "integration_type", err: fmt.Errorf(`ent: validator failed for field "IntegrationRequest.integration_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := integrationrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntegrationRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntegrationRequestUpdateOne) sqlSave(ctx context.Context) (_node *IntegrationRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integrationrequest.Table, integrationrequest.Columns, sqlgraph.NewFieldSpec(integrationrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IntegrationRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, integrationrequest.FieldID)
		for _, f := range fields {
			if !integrationrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != integrationrequest.FieldID {
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
	if value, ok := _u.mutation.IntegrationType(); ok {
		_spec.SetField(integrationrequest.FieldIntegrationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(integrationrequest.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(integrationrequest.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(integrationrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(integrationrequest.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integrationrequest.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(integrationrequest.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(integrationrequest.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(integrationrequest.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(integrationrequest.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(integrationrequest.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ForceRetry(); ok {
		_spec.SetField(integrationrequest.FieldForceRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(integrationrequest.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(integrationrequest.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSecondsCleared() {
		_spec.ClearField(integrationrequest.FieldTimeoutSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(integrationrequest.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(integrationrequest.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(integrationrequest.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(integrationrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(integrationrequest.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(integrationrequest.FieldResponse, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponse(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integrationrequest.FieldResponse, value)
		})
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(integrationrequest.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(integrationrequest.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(integrationrequest.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(integrationrequest.FieldAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integrationrequest.FieldAttempts, value)
		})
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(integrationrequest.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(integrationrequest.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(integrationrequest.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(integrationrequest.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(integrationrequest.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(integrationrequest.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &IntegrationRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integrationrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
