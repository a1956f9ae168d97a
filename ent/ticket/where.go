// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/atlasfibra/backoffice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerUsername applies equality check predicate on the "owner_username" field. It's identical to OwnerUsernameEQ.
func OwnerUsername(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldOwnerUsername, v))
}

// OwnerCpfMasked applies equality check predicate on the "owner_cpf_masked" field. It's identical to OwnerCpfMaskedEQ.
func OwnerCpfMasked(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldOwnerCpfMasked, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCategory, v))
}

// Game applies equality check predicate on the "game" field. It's identical to GameEQ.
func Game(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldGame, v))
}

// ProblemTiming applies equality check predicate on the "problem_timing" field. It's identical to ProblemTimingEQ.
func ProblemTiming(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProblemTiming, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDescription, v))
}

// Assignee applies equality check predicate on the "assignee" field. It's identical to AssigneeEQ.
func Assignee(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAssignee, v))
}

// Resolution applies equality check predicate on the "resolution" field. It's identical to ResolutionEQ.
func Resolution(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldResolution, v))
}

// UpstreamID applies equality check predicate on the "upstream_id" field. It's identical to UpstreamIDEQ.
func UpstreamID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpstreamID, v))
}

// Protocol applies equality check predicate on the "protocol" field. It's identical to ProtocolEQ.
func Protocol(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProtocol, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerUsernameEQ applies the EQ predicate on the "owner_username" field.
func OwnerUsernameEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldOwnerUsername, v))
}

// OwnerUsernameNEQ applies the NEQ predicate on the "owner_username" field.
func OwnerUsernameNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldOwnerUsername, v))
}

// OwnerUsernameIn applies the In predicate on the "owner_username" field.
func OwnerUsernameIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldOwnerUsername, vs...))
}

// OwnerUsernameNotIn applies the NotIn predicate on the "owner_username" field.
func OwnerUsernameNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldOwnerUsername, vs...))
}

// OwnerUsernameGT applies the GT predicate on the "owner_username" field.
func OwnerUsernameGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldOwnerUsername, v))
}

// OwnerUsernameGTE applies the GTE predicate on the "owner_username" field.
func OwnerUsernameGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldOwnerUsername, v))
}

// OwnerUsernameLT applies the LT predicate on the "owner_username" field.
func OwnerUsernameLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldOwnerUsername, v))
}

// OwnerUsernameLTE applies the LTE predicate on the "owner_username" field.
func OwnerUsernameLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldOwnerUsername, v))
}

// OwnerUsernameContains applies the Contains predicate on the "owner_username" field.
func OwnerUsernameContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldOwnerUsername, v))
}

// OwnerUsernameHasPrefix applies the HasPrefix predicate on the "owner_username" field.
func OwnerUsernameHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldOwnerUsername, v))
}

// OwnerUsernameHasSuffix applies the HasSuffix predicate on the "owner_username" field.
func OwnerUsernameHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldOwnerUsername, v))
}

// OwnerUsernameIsNil applies the IsNil predicate on the "owner_username" field.
func OwnerUsernameIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldOwnerUsername))
}

// OwnerUsernameNotNil applies the NotNil predicate on the "owner_username" field.
func OwnerUsernameNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldOwnerUsername))
}

// OwnerUsernameEqualFold applies the EqualFold predicate on the "owner_username" field.
func OwnerUsernameEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldOwnerUsername, v))
}

// OwnerUsernameContainsFold applies the ContainsFold predicate on the "owner_username" field.
func OwnerUsernameContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldOwnerUsername, v))
}

// OwnerCpfMaskedEQ applies the EQ predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldOwnerCpfMasked, v))
}

// OwnerCpfMaskedNEQ applies the NEQ predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldOwnerCpfMasked, v))
}

// OwnerCpfMaskedIn applies the In predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldOwnerCpfMasked, vs...))
}

// OwnerCpfMaskedNotIn applies the NotIn predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldOwnerCpfMasked, vs...))
}

// OwnerCpfMaskedGT applies the GT predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldOwnerCpfMasked, v))
}

// OwnerCpfMaskedGTE applies the GTE predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldOwnerCpfMasked, v))
}

// OwnerCpfMaskedLT applies the LT predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldOwnerCpfMasked, v))
}

// OwnerCpfMaskedLTE applies the LTE predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldOwnerCpfMasked, v))
}

// OwnerCpfMaskedContains applies the Contains predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldOwnerCpfMasked, v))
}

// OwnerCpfMaskedHasPrefix applies the HasPrefix predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldOwnerCpfMasked, v))
}

// OwnerCpfMaskedHasSuffix applies the HasSuffix predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldOwnerCpfMasked, v))
}

// OwnerCpfMaskedIsNil applies the IsNil predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldOwnerCpfMasked))
}

// OwnerCpfMaskedNotNil applies the NotNil predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldOwnerCpfMasked))
}

// OwnerCpfMaskedEqualFold applies the EqualFold predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldOwnerCpfMasked, v))
}

// OwnerCpfMaskedContainsFold applies the ContainsFold predicate on the "owner_cpf_masked" field.
func OwnerCpfMaskedContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldOwnerCpfMasked, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldCategory, v))
}

// GameEQ applies the EQ predicate on the "game" field.
func GameEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldGame, v))
}

// GameNEQ applies the NEQ predicate on the "game" field.
func GameNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldGame, v))
}

// GameIn applies the In predicate on the "game" field.
func GameIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldGame, vs...))
}

// GameNotIn applies the NotIn predicate on the "game" field.
func GameNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldGame, vs...))
}

// GameGT applies the GT predicate on the "game" field.
func GameGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldGame, v))
}

// GameGTE applies the GTE predicate on the "game" field.
func GameGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldGame, v))
}

// GameLT applies the LT predicate on the "game" field.
func GameLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldGame, v))
}

// GameLTE applies the LTE predicate on the "game" field.
func GameLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldGame, v))
}

// GameContains applies the Contains predicate on the "game" field.
func GameContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldGame, v))
}

// GameHasPrefix applies the HasPrefix predicate on the "game" field.
func GameHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldGame, v))
}

// GameHasSuffix applies the HasSuffix predicate on the "game" field.
func GameHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldGame, v))
}

// GameIsNil applies the IsNil predicate on the "game" field.
func GameIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldGame))
}

// GameNotNil applies the NotNil predicate on the "game" field.
func GameNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldGame))
}

// GameEqualFold applies the EqualFold predicate on the "game" field.
func GameEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldGame, v))
}

// GameContainsFold applies the ContainsFold predicate on the "game" field.
func GameContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldGame, v))
}

// ProblemTimingEQ applies the EQ predicate on the "problem_timing" field.
func ProblemTimingEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProblemTiming, v))
}

// ProblemTimingNEQ applies the NEQ predicate on the "problem_timing" field.
func ProblemTimingNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldProblemTiming, v))
}

// ProblemTimingIn applies the In predicate on the "problem_timing" field.
func ProblemTimingIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldProblemTiming, vs...))
}

// ProblemTimingNotIn applies the NotIn predicate on the "problem_timing" field.
func ProblemTimingNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldProblemTiming, vs...))
}

// ProblemTimingGT applies the GT predicate on the "problem_timing" field.
func ProblemTimingGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldProblemTiming, v))
}

// ProblemTimingGTE applies the GTE predicate on the "problem_timing" field.
func ProblemTimingGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldProblemTiming, v))
}

// ProblemTimingLT applies the LT predicate on the "problem_timing" field.
func ProblemTimingLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldProblemTiming, v))
}

// ProblemTimingLTE applies the LTE predicate on the "problem_timing" field.
func ProblemTimingLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldProblemTiming, v))
}

// ProblemTimingContains applies the Contains predicate on the "problem_timing" field.
func ProblemTimingContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldProblemTiming, v))
}

// ProblemTimingHasPrefix applies the HasPrefix predicate on the "problem_timing" field.
func ProblemTimingHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldProblemTiming, v))
}

// ProblemTimingHasSuffix applies the HasSuffix predicate on the "problem_timing" field.
func ProblemTimingHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldProblemTiming, v))
}

// ProblemTimingIsNil applies the IsNil predicate on the "problem_timing" field.
func ProblemTimingIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldProblemTiming))
}

// ProblemTimingNotNil applies the NotNil predicate on the "problem_timing" field.
func ProblemTimingNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldProblemTiming))
}

// ProblemTimingEqualFold applies the EqualFold predicate on the "problem_timing" field.
func ProblemTimingEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldProblemTiming, v))
}

// ProblemTimingContainsFold applies the ContainsFold predicate on the "problem_timing" field.
func ProblemTimingContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldProblemTiming, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldDescription, v))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v Urgency) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v Urgency) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...Urgency) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...Urgency) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldUrgency, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldStatus, vs...))
}

// AssigneeEQ applies the EQ predicate on the "assignee" field.
func AssigneeEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAssignee, v))
}

// AssigneeNEQ applies the NEQ predicate on the "assignee" field.
func AssigneeNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldAssignee, v))
}

// AssigneeIn applies the In predicate on the "assignee" field.
func AssigneeIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldAssignee, vs...))
}

// AssigneeNotIn applies the NotIn predicate on the "assignee" field.
func AssigneeNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldAssignee, vs...))
}

// AssigneeGT applies the GT predicate on the "assignee" field.
func AssigneeGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldAssignee, v))
}

// AssigneeGTE applies the GTE predicate on the "assignee" field.
func AssigneeGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldAssignee, v))
}

// AssigneeLT applies the LT predicate on the "assignee" field.
func AssigneeLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldAssignee, v))
}

// AssigneeLTE applies the LTE predicate on the "assignee" field.
func AssigneeLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldAssignee, v))
}

// AssigneeContains applies the Contains predicate on the "assignee" field.
func AssigneeContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldAssignee, v))
}

// AssigneeHasPrefix applies the HasPrefix predicate on the "assignee" field.
func AssigneeHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldAssignee, v))
}

// AssigneeHasSuffix applies the HasSuffix predicate on the "assignee" field.
func AssigneeHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldAssignee, v))
}

// AssigneeIsNil applies the IsNil predicate on the "assignee" field.
func AssigneeIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldAssignee))
}

// AssigneeNotNil applies the NotNil predicate on the "assignee" field.
func AssigneeNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldAssignee))
}

// AssigneeEqualFold applies the EqualFold predicate on the "assignee" field.
func AssigneeEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldAssignee, v))
}

// AssigneeContainsFold applies the ContainsFold predicate on the "assignee" field.
func AssigneeContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldAssignee, v))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldResolution, vs...))
}

// ResolutionGT applies the GT predicate on the "resolution" field.
func ResolutionGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldResolution, v))
}

// ResolutionGTE applies the GTE predicate on the "resolution" field.
func ResolutionGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldResolution, v))
}

// ResolutionLT applies the LT predicate on the "resolution" field.
func ResolutionLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldResolution, v))
}

// ResolutionLTE applies the LTE predicate on the "resolution" field.
func ResolutionLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldResolution, v))
}

// ResolutionContains applies the Contains predicate on the "resolution" field.
func ResolutionContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldResolution, v))
}

// ResolutionHasPrefix applies the HasPrefix predicate on the "resolution" field.
func ResolutionHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldResolution, v))
}

// ResolutionHasSuffix applies the HasSuffix predicate on the "resolution" field.
func ResolutionHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldResolution, v))
}

// ResolutionIsNil applies the IsNil predicate on the "resolution" field.
func ResolutionIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldResolution))
}

// ResolutionNotNil applies the NotNil predicate on the "resolution" field.
func ResolutionNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldResolution))
}

// ResolutionEqualFold applies the EqualFold predicate on the "resolution" field.
func ResolutionEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldResolution, v))
}

// ResolutionContainsFold applies the ContainsFold predicate on the "resolution" field.
func ResolutionContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldResolution, v))
}

// UpstreamIDEQ applies the EQ predicate on the "upstream_id" field.
func UpstreamIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpstreamID, v))
}

// UpstreamIDNEQ applies the NEQ predicate on the "upstream_id" field.
func UpstreamIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldUpstreamID, v))
}

// UpstreamIDIn applies the In predicate on the "upstream_id" field.
func UpstreamIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldUpstreamID, vs...))
}

// UpstreamIDNotIn applies the NotIn predicate on the "upstream_id" field.
func UpstreamIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldUpstreamID, vs...))
}

// UpstreamIDGT applies the GT predicate on the "upstream_id" field.
func UpstreamIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldUpstreamID, v))
}

// UpstreamIDGTE applies the GTE predicate on the "upstream_id" field.
func UpstreamIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldUpstreamID, v))
}

// UpstreamIDLT applies the LT predicate on the "upstream_id" field.
func UpstreamIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldUpstreamID, v))
}

// UpstreamIDLTE applies the LTE predicate on the "upstream_id" field.
func UpstreamIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldUpstreamID, v))
}

// UpstreamIDContains applies the Contains predicate on the "upstream_id" field.
func UpstreamIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldUpstreamID, v))
}

// UpstreamIDHasPrefix applies the HasPrefix predicate on the "upstream_id" field.
func UpstreamIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldUpstreamID, v))
}

// UpstreamIDHasSuffix applies the HasSuffix predicate on the "upstream_id" field.
func UpstreamIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldUpstreamID, v))
}

// UpstreamIDIsNil applies the IsNil predicate on the "upstream_id" field.
func UpstreamIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldUpstreamID))
}

// UpstreamIDNotNil applies the NotNil predicate on the "upstream_id" field.
func UpstreamIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldUpstreamID))
}

// UpstreamIDEqualFold applies the EqualFold predicate on the "upstream_id" field.
func UpstreamIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldUpstreamID, v))
}

// UpstreamIDContainsFold applies the ContainsFold predicate on the "upstream_id" field.
func UpstreamIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldUpstreamID, v))
}

// ProtocolEQ applies the EQ predicate on the "protocol" field.
func ProtocolEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProtocol, v))
}

// ProtocolNEQ applies the NEQ predicate on the "protocol" field.
func ProtocolNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldProtocol, v))
}

// ProtocolIn applies the In predicate on the "protocol" field.
func ProtocolIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldProtocol, vs...))
}

// ProtocolNotIn applies the NotIn predicate on the "protocol" field.
func ProtocolNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldProtocol, vs...))
}

// ProtocolGT applies the GT predicate on the "protocol" field.
func ProtocolGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldProtocol, v))
}

// ProtocolGTE applies the GTE predicate on the "protocol" field.
func ProtocolGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldProtocol, v))
}

// ProtocolLT applies the LT predicate on the "protocol" field.
func ProtocolLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldProtocol, v))
}

// ProtocolLTE applies the LTE predicate on the "protocol" field.
func ProtocolLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldProtocol, v))
}

// ProtocolContains applies the Contains predicate on the "protocol" field.
func ProtocolContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldProtocol, v))
}

// ProtocolHasPrefix applies the HasPrefix predicate on the "protocol" field.
func ProtocolHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldProtocol, v))
}

// ProtocolHasSuffix applies the HasSuffix predicate on the "protocol" field.
func ProtocolHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldProtocol, v))
}

// ProtocolEqualFold applies the EqualFold predicate on the "protocol" field.
func ProtocolEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldProtocol, v))
}

// ProtocolContainsFold applies the ContainsFold predicate on the "protocol" field.
func ProtocolContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldProtocol, v))
}

// SyncStatusEQ applies the EQ predicate on the "sync_status" field.
func SyncStatusEQ(v SyncStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldSyncStatus, v))
}

// SyncStatusNEQ applies the NEQ predicate on the "sync_status" field.
func SyncStatusNEQ(v SyncStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldSyncStatus, v))
}

// SyncStatusIn applies the In predicate on the "sync_status" field.
func SyncStatusIn(vs ...SyncStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldSyncStatus, vs...))
}

// SyncStatusNotIn applies the NotIn predicate on the "sync_status" field.
func SyncStatusNotIn(vs ...SyncStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldSyncStatus, vs...))
}

// AttachmentsIsNil applies the IsNil predicate on the "attachments" field.
func AttachmentsIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldAttachments))
}

// AttachmentsNotNil applies the NotNil predicate on the "attachments" field.
func AttachmentsNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldAttachments))
}

// MessagesIsNil applies the IsNil predicate on the "messages" field.
func MessagesIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldMessages))
}

// MessagesNotNil applies the NotNil predicate on the "messages" field.
func MessagesNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldMessages))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.NotPredicates(p))
}
