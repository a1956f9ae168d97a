// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ticket type in the database.
	Label = "ticket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ticket_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldOwnerUsername holds the string denoting the owner_username field in the database.
	FieldOwnerUsername = "owner_username"
	// FieldOwnerCpfMasked holds the string denoting the owner_cpf_masked field in the database.
	FieldOwnerCpfMasked = "owner_cpf_masked"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldGame holds the string denoting the game field in the database.
	FieldGame = "game"
	// FieldProblemTiming holds the string denoting the problem_timing field in the database.
	FieldProblemTiming = "problem_timing"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldUrgency holds the string denoting the urgency field in the database.
	FieldUrgency = "urgency"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssignee holds the string denoting the assignee field in the database.
	FieldAssignee = "assignee"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// FieldUpstreamID holds the string denoting the upstream_id field in the database.
	FieldUpstreamID = "upstream_id"
	// FieldProtocol holds the string denoting the protocol field in the database.
	FieldProtocol = "protocol"
	// FieldSyncStatus holds the string denoting the sync_status field in the database.
	FieldSyncStatus = "sync_status"
	// FieldAttachments holds the string denoting the attachments field in the database.
	FieldAttachments = "attachments"
	// FieldMessages holds the string denoting the messages field in the database.
	FieldMessages = "messages"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the ticket in the database.
	Table = "tickets"
)

// Columns holds all SQL columns for ticket fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldOwnerUsername,
	FieldOwnerCpfMasked,
	FieldCategory,
	FieldGame,
	FieldProblemTiming,
	FieldDescription,
	FieldUrgency,
	FieldStatus,
	FieldAssignee,
	FieldResolution,
	FieldUpstreamID,
	FieldProtocol,
	FieldSyncStatus,
	FieldAttachments,
	FieldMessages,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Urgency defines the type for the "urgency" enum field.
type Urgency string

// UrgencyNormal is the default value of the Urgency enum.
const DefaultUrgency = UrgencyNormal

// Urgency values.
const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

func (u Urgency) String() string {
	return string(u)
}

// UrgencyValidator is a validator for the "urgency" field enum values. It is called by the builders before save.
func UrgencyValidator(u Urgency) error {
	switch u {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyCritical:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for urgency field: %q", u)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusOpen, StatusInProgress, StatusResolved, StatusClosed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for status field: %q", s)
	}
}

// SyncStatus defines the type for the "sync_status" enum field.
type SyncStatus string

// SyncStatusPending is the default value of the SyncStatus enum.
const DefaultSyncStatus = SyncStatusPending

// SyncStatus values.
const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusFailed  SyncStatus = "failed"
)

func (ss SyncStatus) String() string {
	return string(ss)
}

// SyncStatusValidator is a validator for the "sync_status" field enum values. It is called by the builders before save.
func SyncStatusValidator(ss SyncStatus) error {
	switch ss {
	case SyncStatusPending, SyncStatusSynced, SyncStatusFailed:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for sync_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the Ticket queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByOwnerUsername orders the results by the owner_username field.
func ByOwnerUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUsername, opts...).ToFunc()
}

// ByOwnerCpfMasked orders the results by the owner_cpf_masked field.
func ByOwnerCpfMasked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerCpfMasked, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByGame orders the results by the game field.
func ByGame(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGame, opts...).ToFunc()
}

// ByProblemTiming orders the results by the problem_timing field.
func ByProblemTiming(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemTiming, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByUrgency orders the results by the urgency field.
func ByUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgency, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAssignee orders the results by the assignee field.
func ByAssignee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignee, opts...).ToFunc()
}

// ByResolution orders the results by the resolution field.
func ByResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolution, opts...).ToFunc()
}

// ByUpstreamID orders the results by the upstream_id field.
func ByUpstreamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpstreamID, opts...).ToFunc()
}

// ByProtocol orders the results by the protocol field.
func ByProtocol(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtocol, opts...).ToFunc()
}

// BySyncStatus orders the results by the sync_status field.
func BySyncStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
