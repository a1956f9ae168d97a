// Code generated by ent, DO NOT EDIT.

package verificationattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/atlasfibra/backoffice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLTE(FieldID, id))
}

// VerificationID applies equality check predicate on the "verification_id" field. It's identical to VerificationIDEQ.
func VerificationID(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldVerificationID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldUserID, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldAttemptNumber, v))
}

// CpfMasked applies equality check predicate on the "cpf_masked" field. It's identical to CpfMaskedEQ.
func CpfMasked(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldCpfMasked, v))
}

// CpfProvided applies equality check predicate on the "cpf_provided" field. It's identical to CpfProvidedEQ.
func CpfProvided(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldCpfProvided, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldSuccess, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldFailureReason, v))
}

// AttemptedAt applies equality check predicate on the "attempted_at" field. It's identical to AttemptedAtEQ.
func AttemptedAt(v time.Time) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldAttemptedAt, v))
}

// VerificationIDEQ applies the EQ predicate on the "verification_id" field.
func VerificationIDEQ(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldVerificationID, v))
}

// VerificationIDNEQ applies the NEQ predicate on the "verification_id" field.
func VerificationIDNEQ(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNEQ(FieldVerificationID, v))
}

// VerificationIDIn applies the In predicate on the "verification_id" field.
func VerificationIDIn(vs ...string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIn(FieldVerificationID, vs...))
}

// VerificationIDNotIn applies the NotIn predicate on the "verification_id" field.
func VerificationIDNotIn(vs ...string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotIn(FieldVerificationID, vs...))
}

// VerificationIDGT applies the GT predicate on the "verification_id" field.
func VerificationIDGT(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGT(FieldVerificationID, v))
}

// VerificationIDGTE applies the GTE predicate on the "verification_id" field.
func VerificationIDGTE(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGTE(FieldVerificationID, v))
}

// VerificationIDLT applies the LT predicate on the "verification_id" field.
func VerificationIDLT(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLT(FieldVerificationID, v))
}

// VerificationIDLTE applies the LTE predicate on the "verification_id" field.
func VerificationIDLTE(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLTE(FieldVerificationID, v))
}

// VerificationIDContains applies the Contains predicate on the "verification_id" field.
func VerificationIDContains(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldContains(FieldVerificationID, v))
}

// VerificationIDHasPrefix applies the HasPrefix predicate on the "verification_id" field.
func VerificationIDHasPrefix(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldHasPrefix(FieldVerificationID, v))
}

// VerificationIDHasSuffix applies the HasSuffix predicate on the "verification_id" field.
func VerificationIDHasSuffix(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldHasSuffix(FieldVerificationID, v))
}

// VerificationIDEqualFold applies the EqualFold predicate on the "verification_id" field.
func VerificationIDEqualFold(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEqualFold(FieldVerificationID, v))
}

// VerificationIDContainsFold applies the ContainsFold predicate on the "verification_id" field.
func VerificationIDContainsFold(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldContainsFold(FieldVerificationID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLTE(FieldUserID, v))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLTE(FieldAttemptNumber, v))
}

// CpfMaskedEQ applies the EQ predicate on the "cpf_masked" field.
func CpfMaskedEQ(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldCpfMasked, v))
}

// CpfMaskedNEQ applies the NEQ predicate on the "cpf_masked" field.
func CpfMaskedNEQ(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNEQ(FieldCpfMasked, v))
}

// CpfMaskedIn applies the In predicate on the "cpf_masked" field.
func CpfMaskedIn(vs ...string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIn(FieldCpfMasked, vs...))
}

// CpfMaskedNotIn applies the NotIn predicate on the "cpf_masked" field.
func CpfMaskedNotIn(vs ...string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotIn(FieldCpfMasked, vs...))
}

// CpfMaskedGT applies the GT predicate on the "cpf_masked" field.
func CpfMaskedGT(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGT(FieldCpfMasked, v))
}

// CpfMaskedGTE applies the GTE predicate on the "cpf_masked" field.
func CpfMaskedGTE(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGTE(FieldCpfMasked, v))
}

// CpfMaskedLT applies the LT predicate on the "cpf_masked" field.
func CpfMaskedLT(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLT(FieldCpfMasked, v))
}

// CpfMaskedLTE applies the LTE predicate on the "cpf_masked" field.
func CpfMaskedLTE(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLTE(FieldCpfMasked, v))
}

// CpfMaskedContains applies the Contains predicate on the "cpf_masked" field.
func CpfMaskedContains(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldContains(FieldCpfMasked, v))
}

// CpfMaskedHasPrefix applies the HasPrefix predicate on the "cpf_masked" field.
func CpfMaskedHasPrefix(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldHasPrefix(FieldCpfMasked, v))
}

// CpfMaskedHasSuffix applies the HasSuffix predicate on the "cpf_masked" field.
func CpfMaskedHasSuffix(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldHasSuffix(FieldCpfMasked, v))
}

// CpfMaskedIsNil applies the IsNil predicate on the "cpf_masked" field.
func CpfMaskedIsNil() predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIsNull(FieldCpfMasked))
}

// CpfMaskedNotNil applies the NotNil predicate on the "cpf_masked" field.
func CpfMaskedNotNil() predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotNull(FieldCpfMasked))
}

// CpfMaskedEqualFold applies the EqualFold predicate on the "cpf_masked" field.
func CpfMaskedEqualFold(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEqualFold(FieldCpfMasked, v))
}

// CpfMaskedContainsFold applies the ContainsFold predicate on the "cpf_masked" field.
func CpfMaskedContainsFold(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldContainsFold(FieldCpfMasked, v))
}

// CpfProvidedEQ applies the EQ predicate on the "cpf_provided" field.
func CpfProvidedEQ(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldCpfProvided, v))
}

// CpfProvidedNEQ applies the NEQ predicate on the "cpf_provided" field.
func CpfProvidedNEQ(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNEQ(FieldCpfProvided, v))
}

// CpfProvidedIn applies the In predicate on the "cpf_provided" field.
func CpfProvidedIn(vs ...string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIn(FieldCpfProvided, vs...))
}

// CpfProvidedNotIn applies the NotIn predicate on the "cpf_provided" field.
func CpfProvidedNotIn(vs ...string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotIn(FieldCpfProvided, vs...))
}

// CpfProvidedGT applies the GT predicate on the "cpf_provided" field.
func CpfProvidedGT(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGT(FieldCpfProvided, v))
}

// CpfProvidedGTE applies the GTE predicate on the "cpf_provided" field.
func CpfProvidedGTE(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGTE(FieldCpfProvided, v))
}

// CpfProvidedLT applies the LT predicate on the "cpf_provided" field.
func CpfProvidedLT(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLT(FieldCpfProvided, v))
}

// CpfProvidedLTE applies the LTE predicate on the "cpf_provided" field.
func CpfProvidedLTE(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLTE(FieldCpfProvided, v))
}

// CpfProvidedContains applies the Contains predicate on the "cpf_provided" field.
func CpfProvidedContains(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldContains(FieldCpfProvided, v))
}

// CpfProvidedHasPrefix applies the HasPrefix predicate on the "cpf_provided" field.
func CpfProvidedHasPrefix(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldHasPrefix(FieldCpfProvided, v))
}

// CpfProvidedHasSuffix applies the HasSuffix predicate on the "cpf_provided" field.
func CpfProvidedHasSuffix(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldHasSuffix(FieldCpfProvided, v))
}

// CpfProvidedIsNil applies the IsNil predicate on the "cpf_provided" field.
func CpfProvidedIsNil() predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIsNull(FieldCpfProvided))
}

// CpfProvidedNotNil applies the NotNil predicate on the "cpf_provided" field.
func CpfProvidedNotNil() predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotNull(FieldCpfProvided))
}

// CpfProvidedEqualFold applies the EqualFold predicate on the "cpf_provided" field.
func CpfProvidedEqualFold(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEqualFold(FieldCpfProvided, v))
}

// CpfProvidedContainsFold applies the ContainsFold predicate on the "cpf_provided" field.
func CpfProvidedContainsFold(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldContainsFold(FieldCpfProvided, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNEQ(FieldSuccess, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldContainsFold(FieldFailureReason, v))
}

// AttemptedAtEQ applies the EQ predicate on the "attempted_at" field.
func AttemptedAtEQ(v time.Time) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldEQ(FieldAttemptedAt, v))
}

// AttemptedAtNEQ applies the NEQ predicate on the "attempted_at" field.
func AttemptedAtNEQ(v time.Time) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNEQ(FieldAttemptedAt, v))
}

// AttemptedAtIn applies the In predicate on the "attempted_at" field.
func AttemptedAtIn(vs ...time.Time) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldIn(FieldAttemptedAt, vs...))
}

// AttemptedAtNotIn applies the NotIn predicate on the "attempted_at" field.
func AttemptedAtNotIn(vs ...time.Time) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldNotIn(FieldAttemptedAt, vs...))
}

// AttemptedAtGT applies the GT predicate on the "attempted_at" field.
func AttemptedAtGT(v time.Time) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGT(FieldAttemptedAt, v))
}

// AttemptedAtGTE applies the GTE predicate on the "attempted_at" field.
func AttemptedAtGTE(v time.Time) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldGTE(FieldAttemptedAt, v))
}

// AttemptedAtLT applies the LT predicate on the "attempted_at" field.
func AttemptedAtLT(v time.Time) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLT(FieldAttemptedAt, v))
}

// AttemptedAtLTE applies the LTE predicate on the "attempted_at" field.
func AttemptedAtLTE(v time.Time) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.FieldLTE(FieldAttemptedAt, v))
}

// HasVerification applies the HasEdge predicate on the "verification" edge.
func HasVerification() predicate.VerificationAttempt {
	return predicate.VerificationAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VerificationTable, VerificationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerificationWith applies the HasEdge predicate on the "verification" edge with a given conditions (other predicates).
func HasVerificationWith(preds ...predicate.VerificationRequest) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(func(s *sql.Selector) {
		step := newVerificationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationAttempt) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationAttempt) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationAttempt) predicate.VerificationAttempt {
	return predicate.VerificationAttempt(sql.NotPredicates(p))
}
