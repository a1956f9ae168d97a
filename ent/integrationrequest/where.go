// Code generated by ent, DO NOT EDIT.

package integrationrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/atlasfibra/backoffice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldContainsFold(FieldID, id))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldPriority, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldMaxRetries, v))
}

// ForceRetry applies equality check predicate on the "force_retry" field. It's identical to ForceRetryEQ.
func ForceRetry(v bool) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldForceRetry, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldScheduledAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldLastError, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// IntegrationTypeEQ applies the EQ predicate on the "integration_type" field.
func IntegrationTypeEQ(v IntegrationType) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldIntegrationType, v))
}

// IntegrationTypeNEQ applies the NEQ predicate on the "integration_type" field.
func IntegrationTypeNEQ(v IntegrationType) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldIntegrationType, v))
}

// IntegrationTypeIn applies the In predicate on the "integration_type" field.
func IntegrationTypeIn(vs ...IntegrationType) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldIntegrationType, vs...))
}

// IntegrationTypeNotIn applies the NotIn predicate on the "integration_type" field.
func IntegrationTypeNotIn(vs ...IntegrationType) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldIntegrationType, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldPriority, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotNull(FieldPayload))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotNull(FieldMetadata))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldMaxRetries, v))
}

// ForceRetryEQ applies the EQ predicate on the "force_retry" field.
func ForceRetryEQ(v bool) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldForceRetry, v))
}

// ForceRetryNEQ applies the NEQ predicate on the "force_retry" field.
func ForceRetryNEQ(v bool) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldForceRetry, v))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v int) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIsNil applies the IsNil predicate on the "timeout_seconds" field.
func TimeoutSecondsIsNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIsNull(FieldTimeoutSeconds))
}

// TimeoutSecondsNotNil applies the NotNil predicate on the "timeout_seconds" field.
func TimeoutSecondsNotNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotNull(FieldTimeoutSeconds))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldScheduledAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotNull(FieldCompletedAt))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotNull(FieldResponse))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldContainsFold(FieldLastError, v))
}

// AttemptsIsNil applies the IsNil predicate on the "attempts" field.
func AttemptsIsNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIsNull(FieldAttempts))
}

// AttemptsNotNil applies the NotNil predicate on the "attempts" field.
func AttemptsNotNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotNull(FieldAttempts))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IntegrationRequest) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IntegrationRequest) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IntegrationRequest) predicate.IntegrationRequest {
	return predicate.IntegrationRequest(sql.NotPredicates(p))
}
