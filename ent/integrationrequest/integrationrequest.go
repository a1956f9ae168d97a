// Code generated by ent, DO NOT EDIT.

package integrationrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the integrationrequest type in the database.
	Label = "integration_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "integration_id"
	// FieldIntegrationType holds the string denoting the integration_type field in the database.
	FieldIntegrationType = "integration_type"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldForceRetry holds the string denoting the force_retry field in the database.
	FieldForceRetry = "force_retry"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// FieldScheduledAt holds the string denoting the scheduled_at field in the database.
	FieldScheduledAt = "scheduled_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the integrationrequest in the database.
	Table = "integration_requests"
)

// Columns holds all SQL columns for integrationrequest fields.
var Columns = []string{
	FieldID,
	FieldIntegrationType,
	FieldPriority,
	FieldStatus,
	FieldPayload,
	FieldMetadata,
	FieldMaxRetries,
	FieldForceRetry,
	FieldTimeoutSeconds,
	FieldScheduledAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldResponse,
	FieldLastError,
	FieldAttempts,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// DefaultForceRetry holds the default value on creation for the "force_retry" field.
	DefaultForceRetry bool
	// DefaultScheduledAt holds the default value on creation for the "scheduled_at" field.
	DefaultScheduledAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// IntegrationType defines the type for the "integration_type" enum field.
type IntegrationType string

// IntegrationType values.
const (
	IntegrationTypeTicketSync       IntegrationType = "ticket_sync"
	IntegrationTypeUserVerification IntegrationType = "user_verification"
	IntegrationTypeClientDataFetch  IntegrationType = "client_data_fetch"
	IntegrationTypeBulkSync         IntegrationType = "bulk_sync"
	IntegrationTypeStatusUpdate     IntegrationType = "status_update"
)

func (it IntegrationType) String() string {
	return string(it)
}

// IntegrationTypeValidator is a validator for the "integration_type" field enum values. It is called by the builders before save.
func IntegrationTypeValidator(it IntegrationType) error {
	switch it {
	case IntegrationTypeTicketSync, IntegrationTypeUserVerification, IntegrationTypeClientDataFetch, IntegrationTypeBulkSync, IntegrationTypeStatusUpdate:
		return nil
	default:
		return fmt.Errorf("integrationrequest: invalid enum value for integration_type field: %q", it)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusScheduled, StatusInProgress, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("integrationrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the IntegrationRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIntegrationType orders the results by the integration_type field.
func ByIntegrationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntegrationType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByForceRetry orders the results by the force_retry field.
func ByForceRetry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForceRetry, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByScheduledAt orders the results by the scheduled_at field.
func ByScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
