// Code generated by ent, DO NOT EDIT.

package verificationrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/atlasfibra/backoffice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldUserID, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldUsername, v))
}

// SourceAction applies equality check predicate on the "source_action" field. It's identical to SourceActionEQ.
func SourceAction(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldSourceAction, v))
}

// VerifiedCpfMasked applies equality check predicate on the "verified_cpf_masked" field. It's identical to VerifiedCpfMaskedEQ.
func VerifiedCpfMasked(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfHash applies equality check predicate on the "verified_cpf_hash" field. It's identical to VerifiedCpfHashEQ.
func VerifiedCpfHash(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldVerifiedCpfHash, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldFailureReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldExpiresAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLTE(FieldUserID, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameIsNil applies the IsNil predicate on the "username" field.
func UsernameIsNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIsNull(FieldUsername))
}

// UsernameNotNil applies the NotNil predicate on the "username" field.
func UsernameNotNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotNull(FieldUsername))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContainsFold(FieldUsername, v))
}

// VerificationTypeEQ applies the EQ predicate on the "verification_type" field.
func VerificationTypeEQ(v VerificationType) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldVerificationType, v))
}

// VerificationTypeNEQ applies the NEQ predicate on the "verification_type" field.
func VerificationTypeNEQ(v VerificationType) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldVerificationType, v))
}

// VerificationTypeIn applies the In predicate on the "verification_type" field.
func VerificationTypeIn(vs ...VerificationType) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldVerificationType, vs...))
}

// VerificationTypeNotIn applies the NotIn predicate on the "verification_type" field.
func VerificationTypeNotIn(vs ...VerificationType) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldVerificationType, vs...))
}

// SourceActionEQ applies the EQ predicate on the "source_action" field.
func SourceActionEQ(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldSourceAction, v))
}

// SourceActionNEQ applies the NEQ predicate on the "source_action" field.
func SourceActionNEQ(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldSourceAction, v))
}

// SourceActionIn applies the In predicate on the "source_action" field.
func SourceActionIn(vs ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldSourceAction, vs...))
}

// SourceActionNotIn applies the NotIn predicate on the "source_action" field.
func SourceActionNotIn(vs ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldSourceAction, vs...))
}

// SourceActionGT applies the GT predicate on the "source_action" field.
func SourceActionGT(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGT(FieldSourceAction, v))
}

// SourceActionGTE applies the GTE predicate on the "source_action" field.
func SourceActionGTE(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGTE(FieldSourceAction, v))
}

// SourceActionLT applies the LT predicate on the "source_action" field.
func SourceActionLT(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLT(FieldSourceAction, v))
}

// SourceActionLTE applies the LTE predicate on the "source_action" field.
func SourceActionLTE(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLTE(FieldSourceAction, v))
}

// SourceActionContains applies the Contains predicate on the "source_action" field.
func SourceActionContains(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContains(FieldSourceAction, v))
}

// SourceActionHasPrefix applies the HasPrefix predicate on the "source_action" field.
func SourceActionHasPrefix(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldHasPrefix(FieldSourceAction, v))
}

// SourceActionHasSuffix applies the HasSuffix predicate on the "source_action" field.
func SourceActionHasSuffix(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldHasSuffix(FieldSourceAction, v))
}

// SourceActionIsNil applies the IsNil predicate on the "source_action" field.
func SourceActionIsNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIsNull(FieldSourceAction))
}

// SourceActionNotNil applies the NotNil predicate on the "source_action" field.
func SourceActionNotNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotNull(FieldSourceAction))
}

// SourceActionEqualFold applies the EqualFold predicate on the "source_action" field.
func SourceActionEqualFold(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEqualFold(FieldSourceAction, v))
}

// SourceActionContainsFold applies the ContainsFold predicate on the "source_action" field.
func SourceActionContainsFold(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContainsFold(FieldSourceAction, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// VerifiedCpfMaskedEQ applies the EQ predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedEQ(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfMaskedNEQ applies the NEQ predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedNEQ(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfMaskedIn applies the In predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedIn(vs ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldVerifiedCpfMasked, vs...))
}

// VerifiedCpfMaskedNotIn applies the NotIn predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedNotIn(vs ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldVerifiedCpfMasked, vs...))
}

// VerifiedCpfMaskedGT applies the GT predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedGT(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGT(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfMaskedGTE applies the GTE predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedGTE(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGTE(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfMaskedLT applies the LT predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedLT(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLT(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfMaskedLTE applies the LTE predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedLTE(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLTE(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfMaskedContains applies the Contains predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedContains(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContains(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfMaskedHasPrefix applies the HasPrefix predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedHasPrefix(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldHasPrefix(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfMaskedHasSuffix applies the HasSuffix predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedHasSuffix(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldHasSuffix(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfMaskedIsNil applies the IsNil predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedIsNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIsNull(FieldVerifiedCpfMasked))
}

// VerifiedCpfMaskedNotNil applies the NotNil predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedNotNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotNull(FieldVerifiedCpfMasked))
}

// VerifiedCpfMaskedEqualFold applies the EqualFold predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedEqualFold(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEqualFold(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfMaskedContainsFold applies the ContainsFold predicate on the "verified_cpf_masked" field.
func VerifiedCpfMaskedContainsFold(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContainsFold(FieldVerifiedCpfMasked, v))
}

// VerifiedCpfHashEQ applies the EQ predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashEQ(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldVerifiedCpfHash, v))
}

// VerifiedCpfHashNEQ applies the NEQ predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashNEQ(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldVerifiedCpfHash, v))
}

// VerifiedCpfHashIn applies the In predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashIn(vs ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldVerifiedCpfHash, vs...))
}

// VerifiedCpfHashNotIn applies the NotIn predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashNotIn(vs ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldVerifiedCpfHash, vs...))
}

// VerifiedCpfHashGT applies the GT predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashGT(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGT(FieldVerifiedCpfHash, v))
}

// VerifiedCpfHashGTE applies the GTE predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashGTE(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGTE(FieldVerifiedCpfHash, v))
}

// VerifiedCpfHashLT applies the LT predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashLT(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLT(FieldVerifiedCpfHash, v))
}

// VerifiedCpfHashLTE applies the LTE predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashLTE(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLTE(FieldVerifiedCpfHash, v))
}

// VerifiedCpfHashContains applies the Contains predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashContains(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContains(FieldVerifiedCpfHash, v))
}

// VerifiedCpfHashHasPrefix applies the HasPrefix predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashHasPrefix(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldHasPrefix(FieldVerifiedCpfHash, v))
}

// VerifiedCpfHashHasSuffix applies the HasSuffix predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashHasSuffix(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldHasSuffix(FieldVerifiedCpfHash, v))
}

// VerifiedCpfHashIsNil applies the IsNil predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashIsNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIsNull(FieldVerifiedCpfHash))
}

// VerifiedCpfHashNotNil applies the NotNil predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashNotNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotNull(FieldVerifiedCpfHash))
}

// VerifiedCpfHashEqualFold applies the EqualFold predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashEqualFold(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEqualFold(FieldVerifiedCpfHash, v))
}

// VerifiedCpfHashContainsFold applies the ContainsFold predicate on the "verified_cpf_hash" field.
func VerifiedCpfHashContainsFold(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContainsFold(FieldVerifiedCpfHash, v))
}

// ClientSnapshotIsNil applies the IsNil predicate on the "client_snapshot" field.
func ClientSnapshotIsNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIsNull(FieldClientSnapshot))
}

// ClientSnapshotNotNil applies the NotNil predicate on the "client_snapshot" field.
func ClientSnapshotNotNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotNull(FieldClientSnapshot))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldContainsFold(FieldFailureReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLTE(FieldExpiresAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.FieldNotNull(FieldCompletedAt))
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.VerificationRequest {
	return predicate.VerificationRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.VerificationAttempt) predicate.VerificationRequest {
	return predicate.VerificationRequest(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationRequest) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationRequest) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationRequest) predicate.VerificationRequest {
	return predicate.VerificationRequest(sql.NotPredicates(p))
}
