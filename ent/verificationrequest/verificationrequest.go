// Code generated by ent, DO NOT EDIT.

package verificationrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the verificationrequest type in the database.
	Label = "verification_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "verification_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldVerificationType holds the string denoting the verification_type field in the database.
	FieldVerificationType = "verification_type"
	// FieldSourceAction holds the string denoting the source_action field in the database.
	FieldSourceAction = "source_action"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVerifiedCpfMasked holds the string denoting the verified_cpf_masked field in the database.
	FieldVerifiedCpfMasked = "verified_cpf_masked"
	// FieldVerifiedCpfHash holds the string denoting the verified_cpf_hash field in the database.
	FieldVerifiedCpfHash = "verified_cpf_hash"
	// FieldClientSnapshot holds the string denoting the client_snapshot field in the database.
	FieldClientSnapshot = "client_snapshot"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeAttempts holds the string denoting the attempts edge name in mutations.
	EdgeAttempts = "attempts"
	// VerificationAttemptFieldID holds the string denoting the ID field of the VerificationAttempt.
	VerificationAttemptFieldID = "id"
	// Table holds the table name of the verificationrequest in the database.
	Table = "verification_requests"
	// AttemptsTable is the table that holds the attempts relation/edge.
	AttemptsTable = "verification_attempts"
	// AttemptsInverseTable is the table name for the VerificationAttempt entity.
	// It exists in this package in order to avoid circular dependency with the "verificationattempt" package.
	AttemptsInverseTable = "verification_attempts"
	// AttemptsColumn is the table column denoting the attempts relation/edge.
	AttemptsColumn = "verification_id"
)

// Columns holds all SQL columns for verificationrequest fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldUsername,
	FieldVerificationType,
	FieldSourceAction,
	FieldStatus,
	FieldVerifiedCpfMasked,
	FieldVerifiedCpfHash,
	FieldClientSnapshot,
	FieldFailureReason,
	FieldCreatedAt,
	FieldExpiresAt,
	FieldCompletedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// VerificationType defines the type for the "verification_type" enum field.
type VerificationType string

// VerificationType values.
const (
	VerificationTypeAutoCheckup    VerificationType = "auto_checkup"
	VerificationTypeSupportRequest VerificationType = "support_request"
	VerificationTypeManualReview   VerificationType = "manual_review"
	VerificationTypeSecurityCheck  VerificationType = "security_check"
)

func (vt VerificationType) String() string {
	return string(vt)
}

// VerificationTypeValidator is a validator for the "verification_type" field enum values. It is called by the builders before save.
func VerificationTypeValidator(vt VerificationType) error {
	switch vt {
	case VerificationTypeAutoCheckup, VerificationTypeSupportRequest, VerificationTypeManualReview, VerificationTypeSecurityCheck:
		return nil
	default:
		return fmt.Errorf("verificationrequest: invalid enum value for verification_type field: %q", vt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusExpired    Status = "expired"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed, StatusExpired, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("verificationrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the VerificationRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByVerificationType orders the results by the verification_type field.
func ByVerificationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationType, opts...).ToFunc()
}

// BySourceAction orders the results by the source_action field.
func BySourceAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceAction, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVerifiedCpfMasked orders the results by the verified_cpf_masked field.
func ByVerifiedCpfMasked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedCpfMasked, opts...).ToFunc()
}

// ByVerifiedCpfHash orders the results by the verified_cpf_hash field.
func ByVerifiedCpfHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedCpfHash, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByAttemptsCount orders the results by attempts count.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptsStep(), opts...)
	}
}

// ByAttempts orders the results by attempts terms.
func ByAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptsInverseTable, VerificationAttemptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
	)
}
