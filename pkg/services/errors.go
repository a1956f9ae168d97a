package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// Stable error codes carried by CodedError. The command layer maps these to
// user-facing messages; services never embed presentation text.
const (
	CodeVerificationAlreadyPending = "verification_already_pending"
	CodeNoPendingVerification      = "no_pending_verification"
	CodeRateLimited                = "rate_limited"
	CodeInvalidCPFFormat           = "invalid_cpf_format"
	CodeCPFDuplicate               = "cpf_duplicate"
	CodeCPFNotFound                = "cpf_not_found"
	CodeCannotAttempt              = "cannot_attempt"
	CodeCannotCancelTerminal       = "cannot_cancel_terminal"

	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeUpstreamRateLimited = "upstream_rate_limited"
	CodeUpstreamNotFound    = "upstream_not_found"
	CodeUpstreamConflict    = "upstream_conflict"

	CodeConversationAlreadyActive = "conversation_already_active"
	CodeConversationNotFound      = "conversation_not_found"
	CodeUserNotVerified           = "user_not_verified"
	CodeConversationStepMismatch  = "conversation_step_mismatch"
	CodeDescriptionTooShort       = "description_too_short"
	CodeAttachmentLimitReached    = "attachment_limit_reached"

	CodeTicketNotFound    = "ticket_not_found"
	CodeInvalidTransition = "invalid_transition"
	CodeResolutionMissing = "resolution_missing"
	CodeAlreadySynced     = "already_synced"

	CodeUserNotFound      = "user_not_found"
	CodeUserAlreadyBanned = "user_already_banned"
	CodeUserNotBanned     = "user_not_banned"
	CodeCannotBanSelf     = "cannot_ban_self"
	CodeNotAdmin          = "not_admin"

	CodeIntegrationNotFound = "integration_not_found"
	CodeInvalidPriority     = "invalid_priority"
	CodeInvalidSyncType     = "invalid_sync_type"
	CodeMissingHubsoftID    = "missing_hubsoft_id"
	CodeEmptyTicketList     = "empty_ticket_list"
	CodeBulkLimitExceeded   = "bulk_limit_exceeded"
	CodeCannotCancelRunning = "cannot_cancel_running"
	CodeRetriesNotExhausted = "retries_not_exhausted"
	CodeScheduleError       = "schedule_error"
	CodeRetryError          = "retry_error"
	CodeCancelError         = "cancel_error"
)

// CodedError is a domain rejection with a stable machine-readable code.
// Data carries structured details the caller may relay (e.g. retry_after
// on rate_limited); it must never contain plaintext CPFs.
type CodedError struct {
	Code    string
	Message string
	Data    map[string]any
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewCodedError creates a coded domain error.
func NewCodedError(code, message string) error {
	return &CodedError{Code: code, Message: message}
}

// NewCodedErrorWithData creates a coded domain error carrying detail fields.
func NewCodedErrorWithData(code, message string, data map[string]any) error {
	return &CodedError{Code: code, Message: message, Data: data}
}

// ErrorCode extracts the stable code from an error chain, or "" if none.
func ErrorCode(err error) string {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// ErrorData extracts the detail fields from a coded error, or nil.
func ErrorData(err error) map[string]any {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Data
	}
	return nil
}

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
