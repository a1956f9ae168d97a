// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/atlasfibra/backoffice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// CpfHash applies equality check predicate on the "cpf_hash" field. It's identical to CpfHashEQ.
func CpfHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCpfHash, v))
}

// CpfMasked applies equality check predicate on the "cpf_masked" field. It's identical to CpfMaskedEQ.
func CpfMasked(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCpfMasked, v))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldClientName, v))
}

// IsAdmin applies equality check predicate on the "is_admin" field. It's identical to IsAdminEQ.
func IsAdmin(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsAdmin, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameIsNil applies the IsNil predicate on the "username" field.
func UsernameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldUsername))
}

// UsernameNotNil applies the NotNil predicate on the "username" field.
func UsernameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldUsername))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldUsername, v))
}

// CpfHashEQ applies the EQ predicate on the "cpf_hash" field.
func CpfHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCpfHash, v))
}

// CpfHashNEQ applies the NEQ predicate on the "cpf_hash" field.
func CpfHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCpfHash, v))
}

// CpfHashIn applies the In predicate on the "cpf_hash" field.
func CpfHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldCpfHash, vs...))
}

// CpfHashNotIn applies the NotIn predicate on the "cpf_hash" field.
func CpfHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCpfHash, vs...))
}

// CpfHashGT applies the GT predicate on the "cpf_hash" field.
func CpfHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldCpfHash, v))
}

// CpfHashGTE applies the GTE predicate on the "cpf_hash" field.
func CpfHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCpfHash, v))
}

// CpfHashLT applies the LT predicate on the "cpf_hash" field.
func CpfHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldCpfHash, v))
}

// CpfHashLTE applies the LTE predicate on the "cpf_hash" field.
func CpfHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCpfHash, v))
}

// CpfHashContains applies the Contains predicate on the "cpf_hash" field.
func CpfHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldCpfHash, v))
}

// CpfHashHasPrefix applies the HasPrefix predicate on the "cpf_hash" field.
func CpfHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldCpfHash, v))
}

// CpfHashHasSuffix applies the HasSuffix predicate on the "cpf_hash" field.
func CpfHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldCpfHash, v))
}

// CpfHashIsNil applies the IsNil predicate on the "cpf_hash" field.
func CpfHashIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldCpfHash))
}

// CpfHashNotNil applies the NotNil predicate on the "cpf_hash" field.
func CpfHashNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldCpfHash))
}

// CpfHashEqualFold applies the EqualFold predicate on the "cpf_hash" field.
func CpfHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldCpfHash, v))
}

// CpfHashContainsFold applies the ContainsFold predicate on the "cpf_hash" field.
func CpfHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldCpfHash, v))
}

// CpfMaskedEQ applies the EQ predicate on the "cpf_masked" field.
func CpfMaskedEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCpfMasked, v))
}

// CpfMaskedNEQ applies the NEQ predicate on the "cpf_masked" field.
func CpfMaskedNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCpfMasked, v))
}

// CpfMaskedIn applies the In predicate on the "cpf_masked" field.
func CpfMaskedIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldCpfMasked, vs...))
}

// CpfMaskedNotIn applies the NotIn predicate on the "cpf_masked" field.
func CpfMaskedNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCpfMasked, vs...))
}

// CpfMaskedGT applies the GT predicate on the "cpf_masked" field.
func CpfMaskedGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldCpfMasked, v))
}

// CpfMaskedGTE applies the GTE predicate on the "cpf_masked" field.
func CpfMaskedGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCpfMasked, v))
}

// CpfMaskedLT applies the LT predicate on the "cpf_masked" field.
func CpfMaskedLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldCpfMasked, v))
}

// CpfMaskedLTE applies the LTE predicate on the "cpf_masked" field.
func CpfMaskedLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCpfMasked, v))
}

// CpfMaskedContains applies the Contains predicate on the "cpf_masked" field.
func CpfMaskedContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldCpfMasked, v))
}

// CpfMaskedHasPrefix applies the HasPrefix predicate on the "cpf_masked" field.
func CpfMaskedHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldCpfMasked, v))
}

// CpfMaskedHasSuffix applies the HasSuffix predicate on the "cpf_masked" field.
func CpfMaskedHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldCpfMasked, v))
}

// CpfMaskedIsNil applies the IsNil predicate on the "cpf_masked" field.
func CpfMaskedIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldCpfMasked))
}

// CpfMaskedNotNil applies the NotNil predicate on the "cpf_masked" field.
func CpfMaskedNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldCpfMasked))
}

// CpfMaskedEqualFold applies the EqualFold predicate on the "cpf_masked" field.
func CpfMaskedEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldCpfMasked, v))
}

// CpfMaskedContainsFold applies the ContainsFold predicate on the "cpf_masked" field.
func CpfMaskedContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldCpfMasked, v))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameIsNil applies the IsNil predicate on the "client_name" field.
func ClientNameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldClientName))
}

// ClientNameNotNil applies the NotNil predicate on the "client_name" field.
func ClientNameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldClientName))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldClientName, v))
}

// ServiceIsNil applies the IsNil predicate on the "service" field.
func ServiceIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldService))
}

// ServiceNotNil applies the NotNil predicate on the "service" field.
func ServiceNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldService))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.User {
	return predicate.User(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldStatus, vs...))
}

// IsAdminEQ applies the EQ predicate on the "is_admin" field.
func IsAdminEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsAdmin, v))
}

// IsAdminNEQ applies the NEQ predicate on the "is_admin" field.
func IsAdminNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldIsAdmin, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
