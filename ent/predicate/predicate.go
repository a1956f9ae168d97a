// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// IntegrationRequest is the predicate function for integrationrequest builders.
type IntegrationRequest func(*sql.Selector)

// SupportConversation is the predicate function for supportconversation builders.
type SupportConversation func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// VerificationAttempt is the predicate function for verificationattempt builders.
type VerificationAttempt func(*sql.Selector)

// VerificationRequest is the predicate function for verificationrequest builders.
type VerificationRequest func(*sql.Selector)
