// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/ent/schema"
	"github.com/atlasfibra/backoffice/ent/supportconversation"
	"github.com/atlasfibra/backoffice/ent/ticket"
	"github.com/atlasfibra/backoffice/ent/user"
	"github.com/atlasfibra/backoffice/ent/verificationattempt"
	"github.com/atlasfibra/backoffice/ent/verificationrequest"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	integrationrequestFields := schema.IntegrationRequest{}.Fields()
	_ = integrationrequestFields
	// integrationrequestDescPriority is the schema descriptor for priority field.
	integrationrequestDescPriority := integrationrequestFields[2].Descriptor()
	// integrationrequest.DefaultPriority holds the default value on creation for the priority field.
	integrationrequest.DefaultPriority = integrationrequestDescPriority.Default.(int)
	// integrationrequestDescMaxRetries is the schema descriptor for max_retries field.
	integrationrequestDescMaxRetries := integrationrequestFields[6].Descriptor()
	// integrationrequest.DefaultMaxRetries holds the default value on creation for the max_retries field.
	integrationrequest.DefaultMaxRetries = integrationrequestDescMaxRetries.Default.(int)
	// integrationrequestDescForceRetry is the schema descriptor for force_retry field.
	integrationrequestDescForceRetry := integrationrequestFields[7].Descriptor()
	// integrationrequest.DefaultForceRetry holds the default value on creation for the force_retry field.
	integrationrequest.DefaultForceRetry = integrationrequestDescForceRetry.Default.(bool)
	// integrationrequestDescScheduledAt is the schema descriptor for scheduled_at field.
	integrationrequestDescScheduledAt := integrationrequestFields[9].Descriptor()
	// integrationrequest.DefaultScheduledAt holds the default value on creation for the scheduled_at field.
	integrationrequest.DefaultScheduledAt = integrationrequestDescScheduledAt.Default.(func() time.Time)
	// integrationrequestDescCreatedAt is the schema descriptor for created_at field.
	integrationrequestDescCreatedAt := integrationrequestFields[17].Descriptor()
	// integrationrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	integrationrequest.DefaultCreatedAt = integrationrequestDescCreatedAt.Default.(func() time.Time)
	supportconversationFields := schema.SupportConversation{}.Fields()
	_ = supportconversationFields
	// supportconversationDescCurrentStep is the schema descriptor for current_step field.
	supportconversationDescCurrentStep := supportconversationFields[4].Descriptor()
	// supportconversation.DefaultCurrentStep holds the default value on creation for the current_step field.
	supportconversation.DefaultCurrentStep = supportconversationDescCurrentStep.Default.(int)
	// supportconversationDescIsActive is the schema descriptor for is_active field.
	supportconversationDescIsActive := supportconversationFields[6].Descriptor()
	// supportconversation.DefaultIsActive holds the default value on creation for the is_active field.
	supportconversation.DefaultIsActive = supportconversationDescIsActive.Default.(bool)
	// supportconversationDescStartedAt is the schema descriptor for started_at field.
	supportconversationDescStartedAt := supportconversationFields[8].Descriptor()
	// supportconversation.DefaultStartedAt holds the default value on creation for the started_at field.
	supportconversation.DefaultStartedAt = supportconversationDescStartedAt.Default.(func() time.Time)
	// supportconversationDescLastActiveAt is the schema descriptor for last_active_at field.
	supportconversationDescLastActiveAt := supportconversationFields[9].Descriptor()
	// supportconversation.DefaultLastActiveAt holds the default value on creation for the last_active_at field.
	supportconversation.DefaultLastActiveAt = supportconversationDescLastActiveAt.Default.(func() time.Time)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[17].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[18].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[7].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	verificationattemptFields := schema.VerificationAttempt{}.Fields()
	_ = verificationattemptFields
	// verificationattemptDescSuccess is the schema descriptor for success field.
	verificationattemptDescSuccess := verificationattemptFields[5].Descriptor()
	// verificationattempt.DefaultSuccess holds the default value on creation for the success field.
	verificationattempt.DefaultSuccess = verificationattemptDescSuccess.Default.(bool)
	// verificationattemptDescAttemptedAt is the schema descriptor for attempted_at field.
	verificationattemptDescAttemptedAt := verificationattemptFields[7].Descriptor()
	// verificationattempt.DefaultAttemptedAt holds the default value on creation for the attempted_at field.
	verificationattempt.DefaultAttemptedAt = verificationattemptDescAttemptedAt.Default.(func() time.Time)
	verificationrequestFields := schema.VerificationRequest{}.Fields()
	_ = verificationrequestFields
	// verificationrequestDescCreatedAt is the schema descriptor for created_at field.
	verificationrequestDescCreatedAt := verificationrequestFields[10].Descriptor()
	// verificationrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationrequest.DefaultCreatedAt = verificationrequestDescCreatedAt.Default.(func() time.Time)
}
