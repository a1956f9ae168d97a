// Code generated by ent, DO NOT EDIT.

package verificationattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the verificationattempt type in the database.
	Label = "verification_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVerificationID holds the string denoting the verification_id field in the database.
	FieldVerificationID = "verification_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldCpfMasked holds the string denoting the cpf_masked field in the database.
	FieldCpfMasked = "cpf_masked"
	// FieldCpfProvided holds the string denoting the cpf_provided field in the database.
	FieldCpfProvided = "cpf_provided"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldAttemptedAt holds the string denoting the attempted_at field in the database.
	FieldAttemptedAt = "attempted_at"
	// EdgeVerification holds the string denoting the verification edge name in mutations.
	EdgeVerification = "verification"
	// VerificationRequestFieldID holds the string denoting the ID field of the VerificationRequest.
	VerificationRequestFieldID = "verification_id"
	// Table holds the table name of the verificationattempt in the database.
	Table = "verification_attempts"
	// VerificationTable is the table that holds the verification relation/edge.
	VerificationTable = "verification_attempts"
	// VerificationInverseTable is the table name for the VerificationRequest entity.
	// It exists in this package in order to avoid circular dependency with the "verificationrequest" package.
	VerificationInverseTable = "verification_requests"
	// VerificationColumn is the table column denoting the verification relation/edge.
	VerificationColumn = "verification_id"
)

// Columns holds all SQL columns for verificationattempt fields.
var Columns = []string{
	FieldID,
	FieldVerificationID,
	FieldUserID,
	FieldAttemptNumber,
	FieldCpfMasked,
	FieldCpfProvided,
	FieldSuccess,
	FieldFailureReason,
	FieldAttemptedAt,
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
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultAttemptedAt holds the default value on creation for the "attempted_at" field.
	DefaultAttemptedAt func() time.Time
)

// OrderOption defines the ordering options for the VerificationAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVerificationID orders the results by the verification_id field.
func ByVerificationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByCpfMasked orders the results by the cpf_masked field.
func ByCpfMasked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCpfMasked, opts...).ToFunc()
}

// ByCpfProvided orders the results by the cpf_provided field.
func ByCpfProvided(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCpfProvided, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByAttemptedAt orders the results by the attempted_at field.
func ByAttemptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptedAt, opts...).ToFunc()
}

// ByVerificationField orders the results by verification field.
func ByVerificationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVerificationStep(), sql.OrderByField(field, opts...))
	}
}
func newVerificationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VerificationInverseTable, VerificationRequestFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VerificationTable, VerificationColumn),
	)
}
