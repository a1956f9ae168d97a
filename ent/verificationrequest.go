// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/atlasfibra/backoffice/ent/verificationrequest"
	"github.com/atlasfibra/backoffice/pkg/models"
)

// VerificationRequest is the model entity for the VerificationRequest schema.
type VerificationRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// VerificationType holds the value of the "verification_type" field.
	VerificationType verificationrequest.VerificationType `json:"verification_type,omitempty"`
	// What triggered the verification (e.g. 'start', 'ticket_flow')
	SourceAction string `json:"source_action,omitempty"`
	// Status holds the value of the "status" field.
	Status verificationrequest.Status `json:"status,omitempty"`
	// VerifiedCpfMasked holds the value of the "verified_cpf_masked" field.
	VerifiedCpfMasked *string `json:"verified_cpf_masked,omitempty"`
	// VerifiedCpfHash holds the value of the "verified_cpf_hash" field.
	VerifiedCpfHash *string `json:"verified_cpf_hash,omitempty"`
	// Upstream client data captured on success
	ClientSnapshot *models.UpstreamClientSnapshot `json:"client_snapshot,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationRequestQuery when eager-loading is set.
	Edges        VerificationRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationRequestEdges holds the relations/edges for other nodes in the graph.
type VerificationRequestEdges struct {
	// Attempts holds the value of the attempts edge.
	Attempts []*VerificationAttempt `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e VerificationRequestEdges) AttemptsOrErr() ([]*VerificationAttempt, error) {
	if e.loadedTypes[0] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationrequest.FieldClientSnapshot:
			values[i] = new([]byte)
		case verificationrequest.FieldUserID:
			values[i] = new(sql.NullInt64)
		case verificationrequest.FieldID, verificationrequest.FieldUsername, verificationrequest.FieldVerificationType, verificationrequest.FieldSourceAction, verificationrequest.FieldStatus, verificationrequest.FieldVerifiedCpfMasked, verificationrequest.FieldVerifiedCpfHash, verificationrequest.FieldFailureReason:
			values[i] = new(sql.NullString)
		case verificationrequest.FieldCreatedAt, verificationrequest.FieldExpiresAt, verificationrequest.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationRequest fields.
func (_m *VerificationRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case verificationrequest.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case verificationrequest.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case verificationrequest.FieldVerificationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_type", values[i])
			} else if value.Valid {
				_m.VerificationType = verificationrequest.VerificationType(value.String)
			}
		case verificationrequest.FieldSourceAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_action", values[i])
			} else if value.Valid {
				_m.SourceAction = value.String
			}
		case verificationrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = verificationrequest.Status(value.String)
			}
		case verificationrequest.FieldVerifiedCpfMasked:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verified_cpf_masked", values[i])
			} else if value.Valid {
				_m.VerifiedCpfMasked = new(string)
				*_m.VerifiedCpfMasked = value.String
			}
		case verificationrequest.FieldVerifiedCpfHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verified_cpf_hash", values[i])
			} else if value.Valid {
				_m.VerifiedCpfHash = new(string)
				*_m.VerifiedCpfHash = value.String
			}
		case verificationrequest.FieldClientSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field client_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ClientSnapshot); err != nil {
					return fmt.Errorf("unmarshal field client_snapshot: %w", err)
				}
			}
		case verificationrequest.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case verificationrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case verificationrequest.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case verificationrequest.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationRequest.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttempts queries the "attempts" edge of the VerificationRequest entity.
func (_m *VerificationRequest) QueryAttempts() *VerificationAttemptQuery {
	return NewVerificationRequestClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this VerificationRequest.
// Note that you need to call VerificationRequest.Unwrap() before calling this method if this VerificationRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationRequest) Update() *VerificationRequestUpdateOne {
	return NewVerificationRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationRequest) Unwrap() *VerificationRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationRequest) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("verification_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerificationType))
	builder.WriteString(", ")
	builder.WriteString("source_action=")
	builder.WriteString(_m.SourceAction)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.VerifiedCpfMasked; v != nil {
		builder.WriteString("verified_cpf_masked=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VerifiedCpfHash; v != nil {
		builder.WriteString("verified_cpf_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("client_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientSnapshot))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// VerificationRequests is a parsable slice of VerificationRequest.
type VerificationRequests []*VerificationRequest
