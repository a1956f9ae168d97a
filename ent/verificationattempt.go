// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/atlasfibra/backoffice/ent/verificationattempt"
	"github.com/atlasfibra/backoffice/ent/verificationrequest"
)

// VerificationAttempt is the model entity for the VerificationAttempt schema.
type VerificationAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// VerificationID holds the value of the "verification_id" field.
	VerificationID string `json:"verification_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// AttemptNumber holds the value of the "attempt_number" field.
	AttemptNumber int `json:"attempt_number,omitempty"`
	// Masked form shown to users and written to logs
	CpfMasked string `json:"cpf_masked,omitempty"`
	// Digits retained only for duplicate-conflict attempts; cleared once the request is terminal
	CpfProvided string `json:"-"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason string `json:"failure_reason,omitempty"`
	// AttemptedAt holds the value of the "attempted_at" field.
	AttemptedAt time.Time `json:"attempted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationAttemptQuery when eager-loading is set.
	Edges        VerificationAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationAttemptEdges holds the relations/edges for other nodes in the graph.
type VerificationAttemptEdges struct {
	// Verification holds the value of the verification edge.
	Verification *VerificationRequest `json:"verification,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VerificationOrErr returns the Verification value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationAttemptEdges) VerificationOrErr() (*VerificationRequest, error) {
	if e.Verification != nil {
		return e.Verification, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: verificationrequest.Label}
	}
	return nil, &NotLoadedError{edge: "verification"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationattempt.FieldSuccess:
			values[i] = new(sql.NullBool)
		case verificationattempt.FieldID, verificationattempt.FieldUserID, verificationattempt.FieldAttemptNumber:
			values[i] = new(sql.NullInt64)
		case verificationattempt.FieldVerificationID, verificationattempt.FieldCpfMasked, verificationattempt.FieldCpfProvided, verificationattempt.FieldFailureReason:
			values[i] = new(sql.NullString)
		case verificationattempt.FieldAttemptedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationAttempt fields.
func (_m *VerificationAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case verificationattempt.FieldVerificationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_id", values[i])
			} else if value.Valid {
				_m.VerificationID = value.String
			}
		case verificationattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case verificationattempt.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case verificationattempt.FieldCpfMasked:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cpf_masked", values[i])
			} else if value.Valid {
				_m.CpfMasked = value.String
			}
		case verificationattempt.FieldCpfProvided:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cpf_provided", values[i])
			} else if value.Valid {
				_m.CpfProvided = value.String
			}
		case verificationattempt.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case verificationattempt.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = value.String
			}
		case verificationattempt.FieldAttemptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field attempted_at", values[i])
			} else if value.Valid {
				_m.AttemptedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVerification queries the "verification" edge of the VerificationAttempt entity.
func (_m *VerificationAttempt) QueryVerification() *VerificationRequestQuery {
	return NewVerificationAttemptClient(_m.config).QueryVerification(_m)
}

// Update returns a builder for updating this VerificationAttempt.
// Note that you need to call VerificationAttempt.Unwrap() before calling this method if this VerificationAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationAttempt) Update() *VerificationAttemptUpdateOne {
	return NewVerificationAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationAttempt) Unwrap() *VerificationAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("verification_id=")
	builder.WriteString(_m.VerificationID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("cpf_masked=")
	builder.WriteString(_m.CpfMasked)
	builder.WriteString(", ")
	builder.WriteString("cpf_provided=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("failure_reason=")
	builder.WriteString(_m.FailureReason)
	builder.WriteString(", ")
	builder.WriteString("attempted_at=")
	builder.WriteString(_m.AttemptedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VerificationAttempts is a parsable slice of VerificationAttempt.
type VerificationAttempts []*VerificationAttempt
