// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/ent/predicate"
	"github.com/atlasfibra/backoffice/ent/supportconversation"
	"github.com/atlasfibra/backoffice/ent/ticket"
	"github.com/atlasfibra/backoffice/ent/user"
	"github.com/atlasfibra/backoffice/ent/verificationattempt"
	"github.com/atlasfibra/backoffice/ent/verificationrequest"
	"github.com/atlasfibra/backoffice/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIntegrationRequest  = "IntegrationRequest"
	TypeSupportConversation = "SupportConversation"
	TypeTicket              = "Ticket"
	TypeUser                = "User"
	TypeVerificationAttempt = "VerificationAttempt"
	TypeVerificationRequest = "VerificationRequest"
)

// IntegrationRequestMutation represents an operation that mutates the IntegrationRequest nodes in the graph.
type IntegrationRequestMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	integration_type   *integrationrequest.IntegrationType
	priority           *int
	addpriority        *int
	status             *integrationrequest.Status
	payload            *json.RawMessage
	appendpayload      json.RawMessage
	metadata           *map[string]string
	max_retries        *int
	addmax_retries     *int
	force_retry        *bool
	timeout_seconds    *int
	addtimeout_seconds *int
	scheduled_at       *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	response           *json.RawMessage
	appendresponse     json.RawMessage
	last_error         *string
	attempts           *[]models.IntegrationAttempt
	appendattempts     []models.IntegrationAttempt
	pod_id             *string
	last_heartbeat_at  *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*IntegrationRequest, error)
	predicates         []predicate.IntegrationRequest
}

var _ ent.Mutation = (*IntegrationRequestMutation)(nil)

// integrationrequestOption allows management of the mutation configuration using functional options.
type integrationrequestOption func(*IntegrationRequestMutation)

// newIntegrationRequestMutation creates new mutation for the IntegrationRequest entity.
func newIntegrationRequestMutation(c config, op Op, opts ...integrationrequestOption) *IntegrationRequestMutation {
	m := &IntegrationRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeIntegrationRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntegrationRequestID sets the ID field of the mutation.
func withIntegrationRequestID(id string) integrationrequestOption {
	return func(m *IntegrationRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *IntegrationRequest
		)
		m.oldValue = func(ctx context.Context) (*IntegrationRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IntegrationRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntegrationRequest sets the old IntegrationRequest of the mutation.
func withIntegrationRequest(node *IntegrationRequest) integrationrequestOption {
	return func(m *IntegrationRequestMutation) {
		m.oldValue = func(context.Context) (*IntegrationRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntegrationRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntegrationRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IntegrationRequest entities.
func (m *IntegrationRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntegrationRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntegrationRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IntegrationRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntegrationType sets the "integration_type" field.
func (m *IntegrationRequestMutation) SetIntegrationType(it integrationrequest.IntegrationType) {
	m.integration_type = &it
}

// IntegrationType returns the value of the "integration_type" field in the mutation.
func (m *IntegrationRequestMutation) IntegrationType() (r integrationrequest.IntegrationType, exists bool) {
	v := m.integration_type
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationType returns the old "integration_type" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldIntegrationType(ctx context.Context) (v integrationrequest.IntegrationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationType: %w", err)
	}
	return oldValue.IntegrationType, nil
}

// ResetIntegrationType resets all changes to the "integration_type" field.
func (m *IntegrationRequestMutation) ResetIntegrationType() {
	m.integration_type = nil
}

// SetPriority sets the "priority" field.
func (m *IntegrationRequestMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *IntegrationRequestMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *IntegrationRequestMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *IntegrationRequestMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *IntegrationRequestMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *IntegrationRequestMutation) SetStatus(i integrationrequest.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IntegrationRequestMutation) Status() (r integrationrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldStatus(ctx context.Context) (v integrationrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IntegrationRequestMutation) ResetStatus() {
	m.status = nil
}

// SetPayload sets the "payload" field.
func (m *IntegrationRequestMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *IntegrationRequestMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *IntegrationRequestMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *IntegrationRequestMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ClearPayload clears the value of the "payload" field.
func (m *IntegrationRequestMutation) ClearPayload() {
	m.payload = nil
	m.appendpayload = nil
	m.clearedFields[integrationrequest.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *IntegrationRequestMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[integrationrequest.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *IntegrationRequestMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
	delete(m.clearedFields, integrationrequest.FieldPayload)
}

// SetMetadata sets the "metadata" field.
func (m *IntegrationRequestMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *IntegrationRequestMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *IntegrationRequestMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[integrationrequest.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *IntegrationRequestMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[integrationrequest.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *IntegrationRequestMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, integrationrequest.FieldMetadata)
}

// SetMaxRetries sets the "max_retries" field.
func (m *IntegrationRequestMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *IntegrationRequestMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *IntegrationRequestMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *IntegrationRequestMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *IntegrationRequestMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetForceRetry sets the "force_retry" field.
func (m *IntegrationRequestMutation) SetForceRetry(b bool) {
	m.force_retry = &b
}

// ForceRetry returns the value of the "force_retry" field in the mutation.
func (m *IntegrationRequestMutation) ForceRetry() (r bool, exists bool) {
	v := m.force_retry
	if v == nil {
		return
	}
	return *v, true
}

// OldForceRetry returns the old "force_retry" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldForceRetry(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForceRetry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForceRetry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForceRetry: %w", err)
	}
	return oldValue.ForceRetry, nil
}

// ResetForceRetry resets all changes to the "force_retry" field.
func (m *IntegrationRequestMutation) ResetForceRetry() {
	m.force_retry = nil
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *IntegrationRequestMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *IntegrationRequestMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *IntegrationRequestMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *IntegrationRequestMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (m *IntegrationRequestMutation) ClearTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
	m.clearedFields[integrationrequest.FieldTimeoutSeconds] = struct{}{}
}

// TimeoutSecondsCleared returns if the "timeout_seconds" field was cleared in this mutation.
func (m *IntegrationRequestMutation) TimeoutSecondsCleared() bool {
	_, ok := m.clearedFields[integrationrequest.FieldTimeoutSeconds]
	return ok
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *IntegrationRequestMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
	delete(m.clearedFields, integrationrequest.FieldTimeoutSeconds)
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *IntegrationRequestMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *IntegrationRequestMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldScheduledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *IntegrationRequestMutation) ResetScheduledAt() {
	m.scheduled_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *IntegrationRequestMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IntegrationRequestMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *IntegrationRequestMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[integrationrequest.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *IntegrationRequestMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[integrationrequest.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IntegrationRequestMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, integrationrequest.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *IntegrationRequestMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *IntegrationRequestMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *IntegrationRequestMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[integrationrequest.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *IntegrationRequestMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[integrationrequest.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *IntegrationRequestMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, integrationrequest.FieldCompletedAt)
}

// SetResponse sets the "response" field.
func (m *IntegrationRequestMutation) SetResponse(jm json.RawMessage) {
	m.response = &jm
	m.appendresponse = nil
}

// Response returns the value of the "response" field in the mutation.
func (m *IntegrationRequestMutation) Response() (r json.RawMessage, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldResponse(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// AppendResponse adds jm to the "response" field.
func (m *IntegrationRequestMutation) AppendResponse(jm json.RawMessage) {
	m.appendresponse = append(m.appendresponse, jm...)
}

// AppendedResponse returns the list of values that were appended to the "response" field in this mutation.
func (m *IntegrationRequestMutation) AppendedResponse() (json.RawMessage, bool) {
	if len(m.appendresponse) == 0 {
		return nil, false
	}
	return m.appendresponse, true
}

// ClearResponse clears the value of the "response" field.
func (m *IntegrationRequestMutation) ClearResponse() {
	m.response = nil
	m.appendresponse = nil
	m.clearedFields[integrationrequest.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *IntegrationRequestMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[integrationrequest.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *IntegrationRequestMutation) ResetResponse() {
	m.response = nil
	m.appendresponse = nil
	delete(m.clearedFields, integrationrequest.FieldResponse)
}

// SetLastError sets the "last_error" field.
func (m *IntegrationRequestMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *IntegrationRequestMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *IntegrationRequestMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[integrationrequest.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *IntegrationRequestMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[integrationrequest.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *IntegrationRequestMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, integrationrequest.FieldLastError)
}

// SetAttempts sets the "attempts" field.
func (m *IntegrationRequestMutation) SetAttempts(ma []models.IntegrationAttempt) {
	m.attempts = &ma
	m.appendattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *IntegrationRequestMutation) Attempts() (r []models.IntegrationAttempt, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldAttempts(ctx context.Context) (v []models.IntegrationAttempt, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AppendAttempts adds ma to the "attempts" field.
func (m *IntegrationRequestMutation) AppendAttempts(ma []models.IntegrationAttempt) {
	m.appendattempts = append(m.appendattempts, ma...)
}

// AppendedAttempts returns the list of values that were appended to the "attempts" field in this mutation.
func (m *IntegrationRequestMutation) AppendedAttempts() ([]models.IntegrationAttempt, bool) {
	if len(m.appendattempts) == 0 {
		return nil, false
	}
	return m.appendattempts, true
}

// ClearAttempts clears the value of the "attempts" field.
func (m *IntegrationRequestMutation) ClearAttempts() {
	m.attempts = nil
	m.appendattempts = nil
	m.clearedFields[integrationrequest.FieldAttempts] = struct{}{}
}

// AttemptsCleared returns if the "attempts" field was cleared in this mutation.
func (m *IntegrationRequestMutation) AttemptsCleared() bool {
	_, ok := m.clearedFields[integrationrequest.FieldAttempts]
	return ok
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *IntegrationRequestMutation) ResetAttempts() {
	m.attempts = nil
	m.appendattempts = nil
	delete(m.clearedFields, integrationrequest.FieldAttempts)
}

// SetPodID sets the "pod_id" field.
func (m *IntegrationRequestMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *IntegrationRequestMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *IntegrationRequestMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[integrationrequest.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *IntegrationRequestMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[integrationrequest.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *IntegrationRequestMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, integrationrequest.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *IntegrationRequestMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *IntegrationRequestMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *IntegrationRequestMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[integrationrequest.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *IntegrationRequestMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[integrationrequest.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *IntegrationRequestMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, integrationrequest.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *IntegrationRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntegrationRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IntegrationRequest entity.
// If the IntegrationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IntegrationRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IntegrationRequestMutation builder.
func (m *IntegrationRequestMutation) Where(ps ...predicate.IntegrationRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntegrationRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntegrationRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IntegrationRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntegrationRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntegrationRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IntegrationRequest).
func (m *IntegrationRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntegrationRequestMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.integration_type != nil {
		fields = append(fields, integrationrequest.FieldIntegrationType)
	}
	if m.priority != nil {
		fields = append(fields, integrationrequest.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, integrationrequest.FieldStatus)
	}
	if m.payload != nil {
		fields = append(fields, integrationrequest.FieldPayload)
	}
	if m.metadata != nil {
		fields = append(fields, integrationrequest.FieldMetadata)
	}
	if m.max_retries != nil {
		fields = append(fields, integrationrequest.FieldMaxRetries)
	}
	if m.force_retry != nil {
		fields = append(fields, integrationrequest.FieldForceRetry)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, integrationrequest.FieldTimeoutSeconds)
	}
	if m.scheduled_at != nil {
		fields = append(fields, integrationrequest.FieldScheduledAt)
	}
	if m.started_at != nil {
		fields = append(fields, integrationrequest.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, integrationrequest.FieldCompletedAt)
	}
	if m.response != nil {
		fields = append(fields, integrationrequest.FieldResponse)
	}
	if m.last_error != nil {
		fields = append(fields, integrationrequest.FieldLastError)
	}
	if m.attempts != nil {
		fields = append(fields, integrationrequest.FieldAttempts)
	}
	if m.pod_id != nil {
		fields = append(fields, integrationrequest.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, integrationrequest.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, integrationrequest.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntegrationRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case integrationrequest.FieldIntegrationType:
		return m.IntegrationType()
	case integrationrequest.FieldPriority:
		return m.Priority()
	case integrationrequest.FieldStatus:
		return m.Status()
	case integrationrequest.FieldPayload:
		return m.Payload()
	case integrationrequest.FieldMetadata:
		return m.Metadata()
	case integrationrequest.FieldMaxRetries:
		return m.MaxRetries()
	case integrationrequest.FieldForceRetry:
		return m.ForceRetry()
	case integrationrequest.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case integrationrequest.FieldScheduledAt:
		return m.ScheduledAt()
	case integrationrequest.FieldStartedAt:
		return m.StartedAt()
	case integrationrequest.FieldCompletedAt:
		return m.CompletedAt()
	case integrationrequest.FieldResponse:
		return m.Response()
	case integrationrequest.FieldLastError:
		return m.LastError()
	case integrationrequest.FieldAttempts:
		return m.Attempts()
	case integrationrequest.FieldPodID:
		return m.PodID()
	case integrationrequest.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case integrationrequest.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntegrationRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case integrationrequest.FieldIntegrationType:
		return m.OldIntegrationType(ctx)
	case integrationrequest.FieldPriority:
		return m.OldPriority(ctx)
	case integrationrequest.FieldStatus:
		return m.OldStatus(ctx)
	case integrationrequest.FieldPayload:
		return m.OldPayload(ctx)
	case integrationrequest.FieldMetadata:
		return m.OldMetadata(ctx)
	case integrationrequest.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case integrationrequest.FieldForceRetry:
		return m.OldForceRetry(ctx)
	case integrationrequest.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case integrationrequest.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case integrationrequest.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case integrationrequest.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case integrationrequest.FieldResponse:
		return m.OldResponse(ctx)
	case integrationrequest.FieldLastError:
		return m.OldLastError(ctx)
	case integrationrequest.FieldAttempts:
		return m.OldAttempts(ctx)
	case integrationrequest.FieldPodID:
		return m.OldPodID(ctx)
	case integrationrequest.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case integrationrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IntegrationRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case integrationrequest.FieldIntegrationType:
		v, ok := value.(integrationrequest.IntegrationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationType(v)
		return nil
	case integrationrequest.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case integrationrequest.FieldStatus:
		v, ok := value.(integrationrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case integrationrequest.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case integrationrequest.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case integrationrequest.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case integrationrequest.FieldForceRetry:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForceRetry(v)
		return nil
	case integrationrequest.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case integrationrequest.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case integrationrequest.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case integrationrequest.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case integrationrequest.FieldResponse:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case integrationrequest.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case integrationrequest.FieldAttempts:
		v, ok := value.([]models.IntegrationAttempt)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case integrationrequest.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case integrationrequest.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case integrationrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IntegrationRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntegrationRequestMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, integrationrequest.FieldPriority)
	}
	if m.addmax_retries != nil {
		fields = append(fields, integrationrequest.FieldMaxRetries)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, integrationrequest.FieldTimeoutSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntegrationRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case integrationrequest.FieldPriority:
		return m.AddedPriority()
	case integrationrequest.FieldMaxRetries:
		return m.AddedMaxRetries()
	case integrationrequest.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case integrationrequest.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case integrationrequest.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case integrationrequest.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown IntegrationRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntegrationRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(integrationrequest.FieldPayload) {
		fields = append(fields, integrationrequest.FieldPayload)
	}
	if m.FieldCleared(integrationrequest.FieldMetadata) {
		fields = append(fields, integrationrequest.FieldMetadata)
	}
	if m.FieldCleared(integrationrequest.FieldTimeoutSeconds) {
		fields = append(fields, integrationrequest.FieldTimeoutSeconds)
	}
	if m.FieldCleared(integrationrequest.FieldStartedAt) {
		fields = append(fields, integrationrequest.FieldStartedAt)
	}
	if m.FieldCleared(integrationrequest.FieldCompletedAt) {
		fields = append(fields, integrationrequest.FieldCompletedAt)
	}
	if m.FieldCleared(integrationrequest.FieldResponse) {
		fields = append(fields, integrationrequest.FieldResponse)
	}
	if m.FieldCleared(integrationrequest.FieldLastError) {
		fields = append(fields, integrationrequest.FieldLastError)
	}
	if m.FieldCleared(integrationrequest.FieldAttempts) {
		fields = append(fields, integrationrequest.FieldAttempts)
	}
	if m.FieldCleared(integrationrequest.FieldPodID) {
		fields = append(fields, integrationrequest.FieldPodID)
	}
	if m.FieldCleared(integrationrequest.FieldLastHeartbeatAt) {
		fields = append(fields, integrationrequest.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntegrationRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntegrationRequestMutation) ClearField(name string) error {
	switch name {
	case integrationrequest.FieldPayload:
		m.ClearPayload()
		return nil
	case integrationrequest.FieldMetadata:
		m.ClearMetadata()
		return nil
	case integrationrequest.FieldTimeoutSeconds:
		m.ClearTimeoutSeconds()
		return nil
	case integrationrequest.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case integrationrequest.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case integrationrequest.FieldResponse:
		m.ClearResponse()
		return nil
	case integrationrequest.FieldLastError:
		m.ClearLastError()
		return nil
	case integrationrequest.FieldAttempts:
		m.ClearAttempts()
		return nil
	case integrationrequest.FieldPodID:
		m.ClearPodID()
		return nil
	case integrationrequest.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown IntegrationRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntegrationRequestMutation) ResetField(name string) error {
	switch name {
	case integrationrequest.FieldIntegrationType:
		m.ResetIntegrationType()
		return nil
	case integrationrequest.FieldPriority:
		m.ResetPriority()
		return nil
	case integrationrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case integrationrequest.FieldPayload:
		m.ResetPayload()
		return nil
	case integrationrequest.FieldMetadata:
		m.ResetMetadata()
		return nil
	case integrationrequest.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case integrationrequest.FieldForceRetry:
		m.ResetForceRetry()
		return nil
	case integrationrequest.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case integrationrequest.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case integrationrequest.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case integrationrequest.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case integrationrequest.FieldResponse:
		m.ResetResponse()
		return nil
	case integrationrequest.FieldLastError:
		m.ResetLastError()
		return nil
	case integrationrequest.FieldAttempts:
		m.ResetAttempts()
		return nil
	case integrationrequest.FieldPodID:
		m.ResetPodID()
		return nil
	case integrationrequest.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case integrationrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IntegrationRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntegrationRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntegrationRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntegrationRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntegrationRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntegrationRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntegrationRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntegrationRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IntegrationRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntegrationRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IntegrationRequest edge %s", name)
}

// SupportConversationMutation represents an operation that mutates the SupportConversation nodes in the graph.
type SupportConversationMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *int64
	adduser_id      *int64
	username        *string
	state           *supportconversation.State
	current_step    *int
	addcurrent_step *int
	form_data       **models.ConversationFormData
	is_active       *bool
	ticket_id       *string
	started_at      *time.Time
	last_active_at  *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SupportConversation, error)
	predicates      []predicate.SupportConversation
}

var _ ent.Mutation = (*SupportConversationMutation)(nil)

// supportconversationOption allows management of the mutation configuration using functional options.
type supportconversationOption func(*SupportConversationMutation)

// newSupportConversationMutation creates new mutation for the SupportConversation entity.
func newSupportConversationMutation(c config, op Op, opts ...supportconversationOption) *SupportConversationMutation {
	m := &SupportConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeSupportConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupportConversationID sets the ID field of the mutation.
func withSupportConversationID(id string) supportconversationOption {
	return func(m *SupportConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *SupportConversation
		)
		m.oldValue = func(ctx context.Context) (*SupportConversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SupportConversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupportConversation sets the old SupportConversation of the mutation.
func withSupportConversation(node *SupportConversation) supportconversationOption {
	return func(m *SupportConversationMutation) {
		m.oldValue = func(context.Context) (*SupportConversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupportConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupportConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SupportConversation entities.
func (m *SupportConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupportConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupportConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SupportConversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SupportConversationMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SupportConversationMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SupportConversation entity.
// If the SupportConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportConversationMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *SupportConversationMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *SupportConversationMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SupportConversationMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetUsername sets the "username" field.
func (m *SupportConversationMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *SupportConversationMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the SupportConversation entity.
// If the SupportConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportConversationMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *SupportConversationMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[supportconversation.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *SupportConversationMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[supportconversation.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *SupportConversationMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, supportconversation.FieldUsername)
}

// SetState sets the "state" field.
func (m *SupportConversationMutation) SetState(s supportconversation.State) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *SupportConversationMutation) State() (r supportconversation.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the SupportConversation entity.
// If the SupportConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportConversationMutation) OldState(ctx context.Context) (v supportconversation.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *SupportConversationMutation) ResetState() {
	m.state = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *SupportConversationMutation) SetCurrentStep(i int) {
	m.current_step = &i
	m.addcurrent_step = nil
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *SupportConversationMutation) CurrentStep() (r int, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the SupportConversation entity.
// If the SupportConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportConversationMutation) OldCurrentStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// AddCurrentStep adds i to the "current_step" field.
func (m *SupportConversationMutation) AddCurrentStep(i int) {
	if m.addcurrent_step != nil {
		*m.addcurrent_step += i
	} else {
		m.addcurrent_step = &i
	}
}

// AddedCurrentStep returns the value that was added to the "current_step" field in this mutation.
func (m *SupportConversationMutation) AddedCurrentStep() (r int, exists bool) {
	v := m.addcurrent_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *SupportConversationMutation) ResetCurrentStep() {
	m.current_step = nil
	m.addcurrent_step = nil
}

// SetFormData sets the "form_data" field.
func (m *SupportConversationMutation) SetFormData(mfd *models.ConversationFormData) {
	m.form_data = &mfd
}

// FormData returns the value of the "form_data" field in the mutation.
func (m *SupportConversationMutation) FormData() (r *models.ConversationFormData, exists bool) {
	v := m.form_data
	if v == nil {
		return
	}
	return *v, true
}

// OldFormData returns the old "form_data" field's value of the SupportConversation entity.
// If the SupportConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportConversationMutation) OldFormData(ctx context.Context) (v *models.ConversationFormData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormData: %w", err)
	}
	return oldValue.FormData, nil
}

// ClearFormData clears the value of the "form_data" field.
func (m *SupportConversationMutation) ClearFormData() {
	m.form_data = nil
	m.clearedFields[supportconversation.FieldFormData] = struct{}{}
}

// FormDataCleared returns if the "form_data" field was cleared in this mutation.
func (m *SupportConversationMutation) FormDataCleared() bool {
	_, ok := m.clearedFields[supportconversation.FieldFormData]
	return ok
}

// ResetFormData resets all changes to the "form_data" field.
func (m *SupportConversationMutation) ResetFormData() {
	m.form_data = nil
	delete(m.clearedFields, supportconversation.FieldFormData)
}

// SetIsActive sets the "is_active" field.
func (m *SupportConversationMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *SupportConversationMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the SupportConversation entity.
// If the SupportConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportConversationMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *SupportConversationMutation) ResetIsActive() {
	m.is_active = nil
}

// SetTicketID sets the "ticket_id" field.
func (m *SupportConversationMutation) SetTicketID(s string) {
	m.ticket_id = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *SupportConversationMutation) TicketID() (r string, exists bool) {
	v := m.ticket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the SupportConversation entity.
// If the SupportConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportConversationMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ClearTicketID clears the value of the "ticket_id" field.
func (m *SupportConversationMutation) ClearTicketID() {
	m.ticket_id = nil
	m.clearedFields[supportconversation.FieldTicketID] = struct{}{}
}

// TicketIDCleared returns if the "ticket_id" field was cleared in this mutation.
func (m *SupportConversationMutation) TicketIDCleared() bool {
	_, ok := m.clearedFields[supportconversation.FieldTicketID]
	return ok
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *SupportConversationMutation) ResetTicketID() {
	m.ticket_id = nil
	delete(m.clearedFields, supportconversation.FieldTicketID)
}

// SetStartedAt sets the "started_at" field.
func (m *SupportConversationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SupportConversationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SupportConversation entity.
// If the SupportConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportConversationMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SupportConversationMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetLastActiveAt sets the "last_active_at" field.
func (m *SupportConversationMutation) SetLastActiveAt(t time.Time) {
	m.last_active_at = &t
}

// LastActiveAt returns the value of the "last_active_at" field in the mutation.
func (m *SupportConversationMutation) LastActiveAt() (r time.Time, exists bool) {
	v := m.last_active_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActiveAt returns the old "last_active_at" field's value of the SupportConversation entity.
// If the SupportConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportConversationMutation) OldLastActiveAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActiveAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActiveAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActiveAt: %w", err)
	}
	return oldValue.LastActiveAt, nil
}

// ResetLastActiveAt resets all changes to the "last_active_at" field.
func (m *SupportConversationMutation) ResetLastActiveAt() {
	m.last_active_at = nil
}

// Where appends a list predicates to the SupportConversationMutation builder.
func (m *SupportConversationMutation) Where(ps ...predicate.SupportConversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupportConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupportConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SupportConversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupportConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupportConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SupportConversation).
func (m *SupportConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupportConversationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, supportconversation.FieldUserID)
	}
	if m.username != nil {
		fields = append(fields, supportconversation.FieldUsername)
	}
	if m.state != nil {
		fields = append(fields, supportconversation.FieldState)
	}
	if m.current_step != nil {
		fields = append(fields, supportconversation.FieldCurrentStep)
	}
	if m.form_data != nil {
		fields = append(fields, supportconversation.FieldFormData)
	}
	if m.is_active != nil {
		fields = append(fields, supportconversation.FieldIsActive)
	}
	if m.ticket_id != nil {
		fields = append(fields, supportconversation.FieldTicketID)
	}
	if m.started_at != nil {
		fields = append(fields, supportconversation.FieldStartedAt)
	}
	if m.last_active_at != nil {
		fields = append(fields, supportconversation.FieldLastActiveAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupportConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supportconversation.FieldUserID:
		return m.UserID()
	case supportconversation.FieldUsername:
		return m.Username()
	case supportconversation.FieldState:
		return m.State()
	case supportconversation.FieldCurrentStep:
		return m.CurrentStep()
	case supportconversation.FieldFormData:
		return m.FormData()
	case supportconversation.FieldIsActive:
		return m.IsActive()
	case supportconversation.FieldTicketID:
		return m.TicketID()
	case supportconversation.FieldStartedAt:
		return m.StartedAt()
	case supportconversation.FieldLastActiveAt:
		return m.LastActiveAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupportConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supportconversation.FieldUserID:
		return m.OldUserID(ctx)
	case supportconversation.FieldUsername:
		return m.OldUsername(ctx)
	case supportconversation.FieldState:
		return m.OldState(ctx)
	case supportconversation.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case supportconversation.FieldFormData:
		return m.OldFormData(ctx)
	case supportconversation.FieldIsActive:
		return m.OldIsActive(ctx)
	case supportconversation.FieldTicketID:
		return m.OldTicketID(ctx)
	case supportconversation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case supportconversation.FieldLastActiveAt:
		return m.OldLastActiveAt(ctx)
	}
	return nil, fmt.Errorf("unknown SupportConversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupportConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supportconversation.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case supportconversation.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case supportconversation.FieldState:
		v, ok := value.(supportconversation.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case supportconversation.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case supportconversation.FieldFormData:
		v, ok := value.(*models.ConversationFormData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormData(v)
		return nil
	case supportconversation.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case supportconversation.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case supportconversation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case supportconversation.FieldLastActiveAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActiveAt(v)
		return nil
	}
	return fmt.Errorf("unknown SupportConversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupportConversationMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, supportconversation.FieldUserID)
	}
	if m.addcurrent_step != nil {
		fields = append(fields, supportconversation.FieldCurrentStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupportConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case supportconversation.FieldUserID:
		return m.AddedUserID()
	case supportconversation.FieldCurrentStep:
		return m.AddedCurrentStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupportConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case supportconversation.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case supportconversation.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStep(v)
		return nil
	}
	return fmt.Errorf("unknown SupportConversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupportConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supportconversation.FieldUsername) {
		fields = append(fields, supportconversation.FieldUsername)
	}
	if m.FieldCleared(supportconversation.FieldFormData) {
		fields = append(fields, supportconversation.FieldFormData)
	}
	if m.FieldCleared(supportconversation.FieldTicketID) {
		fields = append(fields, supportconversation.FieldTicketID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupportConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupportConversationMutation) ClearField(name string) error {
	switch name {
	case supportconversation.FieldUsername:
		m.ClearUsername()
		return nil
	case supportconversation.FieldFormData:
		m.ClearFormData()
		return nil
	case supportconversation.FieldTicketID:
		m.ClearTicketID()
		return nil
	}
	return fmt.Errorf("unknown SupportConversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupportConversationMutation) ResetField(name string) error {
	switch name {
	case supportconversation.FieldUserID:
		m.ResetUserID()
		return nil
	case supportconversation.FieldUsername:
		m.ResetUsername()
		return nil
	case supportconversation.FieldState:
		m.ResetState()
		return nil
	case supportconversation.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case supportconversation.FieldFormData:
		m.ResetFormData()
		return nil
	case supportconversation.FieldIsActive:
		m.ResetIsActive()
		return nil
	case supportconversation.FieldTicketID:
		m.ResetTicketID()
		return nil
	case supportconversation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case supportconversation.FieldLastActiveAt:
		m.ResetLastActiveAt()
		return nil
	}
	return fmt.Errorf("unknown SupportConversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupportConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupportConversationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupportConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupportConversationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupportConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupportConversationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupportConversationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SupportConversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupportConversationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SupportConversation edge %s", name)
}

// TicketMutation represents an operation that mutates the Ticket nodes in the graph.
type TicketMutation struct {
	config
	op                Op
	typ               string
	id                *string
	owner_id          *int64
	addowner_id       *int64
	owner_username    *string
	owner_cpf_masked  *string
	category          *string
	game              *string
	problem_timing    *string
	description       *string
	urgency           *ticket.Urgency
	status            *ticket.Status
	assignee          *string
	resolution        *string
	upstream_id       *string
	protocol          *string
	sync_status       *ticket.SyncStatus
	attachments       *[]models.TicketAttachment
	appendattachments []models.TicketAttachment
	messages          *[]models.TicketMessage
	appendmessages    []models.TicketMessage
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Ticket, error)
	predicates        []predicate.Ticket
}

var _ ent.Mutation = (*TicketMutation)(nil)

// ticketOption allows management of the mutation configuration using functional options.
type ticketOption func(*TicketMutation)

// newTicketMutation creates new mutation for the Ticket entity.
func newTicketMutation(c config, op Op, opts ...ticketOption) *TicketMutation {
	m := &TicketMutation{
		config:        c,
		op:            op,
		typ:           TypeTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketID sets the ID field of the mutation.
func withTicketID(id string) ticketOption {
	return func(m *TicketMutation) {
		var (
			err   error
			once  sync.Once
			value *Ticket
		)
		m.oldValue = func(ctx context.Context) (*Ticket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ticket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicket sets the old Ticket of the mutation.
func withTicket(node *Ticket) ticketOption {
	return func(m *TicketMutation) {
		m.oldValue = func(context.Context) (*Ticket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Ticket entities.
func (m *TicketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ticket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *TicketMutation) SetOwnerID(i int64) {
	m.owner_id = &i
	m.addowner_id = nil
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *TicketMutation) OwnerID() (r int64, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldOwnerID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// AddOwnerID adds i to the "owner_id" field.
func (m *TicketMutation) AddOwnerID(i int64) {
	if m.addowner_id != nil {
		*m.addowner_id += i
	} else {
		m.addowner_id = &i
	}
}

// AddedOwnerID returns the value that was added to the "owner_id" field in this mutation.
func (m *TicketMutation) AddedOwnerID() (r int64, exists bool) {
	v := m.addowner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *TicketMutation) ResetOwnerID() {
	m.owner_id = nil
	m.addowner_id = nil
}

// SetOwnerUsername sets the "owner_username" field.
func (m *TicketMutation) SetOwnerUsername(s string) {
	m.owner_username = &s
}

// OwnerUsername returns the value of the "owner_username" field in the mutation.
func (m *TicketMutation) OwnerUsername() (r string, exists bool) {
	v := m.owner_username
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUsername returns the old "owner_username" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldOwnerUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUsername: %w", err)
	}
	return oldValue.OwnerUsername, nil
}

// ClearOwnerUsername clears the value of the "owner_username" field.
func (m *TicketMutation) ClearOwnerUsername() {
	m.owner_username = nil
	m.clearedFields[ticket.FieldOwnerUsername] = struct{}{}
}

// OwnerUsernameCleared returns if the "owner_username" field was cleared in this mutation.
func (m *TicketMutation) OwnerUsernameCleared() bool {
	_, ok := m.clearedFields[ticket.FieldOwnerUsername]
	return ok
}

// ResetOwnerUsername resets all changes to the "owner_username" field.
func (m *TicketMutation) ResetOwnerUsername() {
	m.owner_username = nil
	delete(m.clearedFields, ticket.FieldOwnerUsername)
}

// SetOwnerCpfMasked sets the "owner_cpf_masked" field.
func (m *TicketMutation) SetOwnerCpfMasked(s string) {
	m.owner_cpf_masked = &s
}

// OwnerCpfMasked returns the value of the "owner_cpf_masked" field in the mutation.
func (m *TicketMutation) OwnerCpfMasked() (r string, exists bool) {
	v := m.owner_cpf_masked
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerCpfMasked returns the old "owner_cpf_masked" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldOwnerCpfMasked(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerCpfMasked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerCpfMasked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerCpfMasked: %w", err)
	}
	return oldValue.OwnerCpfMasked, nil
}

// ClearOwnerCpfMasked clears the value of the "owner_cpf_masked" field.
func (m *TicketMutation) ClearOwnerCpfMasked() {
	m.owner_cpf_masked = nil
	m.clearedFields[ticket.FieldOwnerCpfMasked] = struct{}{}
}

// OwnerCpfMaskedCleared returns if the "owner_cpf_masked" field was cleared in this mutation.
func (m *TicketMutation) OwnerCpfMaskedCleared() bool {
	_, ok := m.clearedFields[ticket.FieldOwnerCpfMasked]
	return ok
}

// ResetOwnerCpfMasked resets all changes to the "owner_cpf_masked" field.
func (m *TicketMutation) ResetOwnerCpfMasked() {
	m.owner_cpf_masked = nil
	delete(m.clearedFields, ticket.FieldOwnerCpfMasked)
}

// SetCategory sets the "category" field.
func (m *TicketMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TicketMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *TicketMutation) ResetCategory() {
	m.category = nil
}

// SetGame sets the "game" field.
func (m *TicketMutation) SetGame(s string) {
	m.game = &s
}

// Game returns the value of the "game" field in the mutation.
func (m *TicketMutation) Game() (r string, exists bool) {
	v := m.game
	if v == nil {
		return
	}
	return *v, true
}

// OldGame returns the old "game" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldGame(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGame is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGame requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGame: %w", err)
	}
	return oldValue.Game, nil
}

// ClearGame clears the value of the "game" field.
func (m *TicketMutation) ClearGame() {
	m.game = nil
	m.clearedFields[ticket.FieldGame] = struct{}{}
}

// GameCleared returns if the "game" field was cleared in this mutation.
func (m *TicketMutation) GameCleared() bool {
	_, ok := m.clearedFields[ticket.FieldGame]
	return ok
}

// ResetGame resets all changes to the "game" field.
func (m *TicketMutation) ResetGame() {
	m.game = nil
	delete(m.clearedFields, ticket.FieldGame)
}

// SetProblemTiming sets the "problem_timing" field.
func (m *TicketMutation) SetProblemTiming(s string) {
	m.problem_timing = &s
}

// ProblemTiming returns the value of the "problem_timing" field in the mutation.
func (m *TicketMutation) ProblemTiming() (r string, exists bool) {
	v := m.problem_timing
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemTiming returns the old "problem_timing" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldProblemTiming(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemTiming is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemTiming requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemTiming: %w", err)
	}
	return oldValue.ProblemTiming, nil
}

// ClearProblemTiming clears the value of the "problem_timing" field.
func (m *TicketMutation) ClearProblemTiming() {
	m.problem_timing = nil
	m.clearedFields[ticket.FieldProblemTiming] = struct{}{}
}

// ProblemTimingCleared returns if the "problem_timing" field was cleared in this mutation.
func (m *TicketMutation) ProblemTimingCleared() bool {
	_, ok := m.clearedFields[ticket.FieldProblemTiming]
	return ok
}

// ResetProblemTiming resets all changes to the "problem_timing" field.
func (m *TicketMutation) ResetProblemTiming() {
	m.problem_timing = nil
	delete(m.clearedFields, ticket.FieldProblemTiming)
}

// SetDescription sets the "description" field.
func (m *TicketMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TicketMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TicketMutation) ResetDescription() {
	m.description = nil
}

// SetUrgency sets the "urgency" field.
func (m *TicketMutation) SetUrgency(t ticket.Urgency) {
	m.urgency = &t
}

// Urgency returns the value of the "urgency" field in the mutation.
func (m *TicketMutation) Urgency() (r ticket.Urgency, exists bool) {
	v := m.urgency
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgency returns the old "urgency" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUrgency(ctx context.Context) (v ticket.Urgency, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgency: %w", err)
	}
	return oldValue.Urgency, nil
}

// ResetUrgency resets all changes to the "urgency" field.
func (m *TicketMutation) ResetUrgency() {
	m.urgency = nil
}

// SetStatus sets the "status" field.
func (m *TicketMutation) SetStatus(t ticket.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TicketMutation) Status() (r ticket.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldStatus(ctx context.Context) (v ticket.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TicketMutation) ResetStatus() {
	m.status = nil
}

// SetAssignee sets the "assignee" field.
func (m *TicketMutation) SetAssignee(s string) {
	m.assignee = &s
}

// Assignee returns the value of the "assignee" field in the mutation.
func (m *TicketMutation) Assignee() (r string, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignee returns the old "assignee" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldAssignee(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignee: %w", err)
	}
	return oldValue.Assignee, nil
}

// ClearAssignee clears the value of the "assignee" field.
func (m *TicketMutation) ClearAssignee() {
	m.assignee = nil
	m.clearedFields[ticket.FieldAssignee] = struct{}{}
}

// AssigneeCleared returns if the "assignee" field was cleared in this mutation.
func (m *TicketMutation) AssigneeCleared() bool {
	_, ok := m.clearedFields[ticket.FieldAssignee]
	return ok
}

// ResetAssignee resets all changes to the "assignee" field.
func (m *TicketMutation) ResetAssignee() {
	m.assignee = nil
	delete(m.clearedFields, ticket.FieldAssignee)
}

// SetResolution sets the "resolution" field.
func (m *TicketMutation) SetResolution(s string) {
	m.resolution = &s
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *TicketMutation) Resolution() (r string, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldResolution(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ClearResolution clears the value of the "resolution" field.
func (m *TicketMutation) ClearResolution() {
	m.resolution = nil
	m.clearedFields[ticket.FieldResolution] = struct{}{}
}

// ResolutionCleared returns if the "resolution" field was cleared in this mutation.
func (m *TicketMutation) ResolutionCleared() bool {
	_, ok := m.clearedFields[ticket.FieldResolution]
	return ok
}

// ResetResolution resets all changes to the "resolution" field.
func (m *TicketMutation) ResetResolution() {
	m.resolution = nil
	delete(m.clearedFields, ticket.FieldResolution)
}

// SetUpstreamID sets the "upstream_id" field.
func (m *TicketMutation) SetUpstreamID(s string) {
	m.upstream_id = &s
}

// UpstreamID returns the value of the "upstream_id" field in the mutation.
func (m *TicketMutation) UpstreamID() (r string, exists bool) {
	v := m.upstream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUpstreamID returns the old "upstream_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUpstreamID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpstreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpstreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpstreamID: %w", err)
	}
	return oldValue.UpstreamID, nil
}

// ClearUpstreamID clears the value of the "upstream_id" field.
func (m *TicketMutation) ClearUpstreamID() {
	m.upstream_id = nil
	m.clearedFields[ticket.FieldUpstreamID] = struct{}{}
}

// UpstreamIDCleared returns if the "upstream_id" field was cleared in this mutation.
func (m *TicketMutation) UpstreamIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldUpstreamID]
	return ok
}

// ResetUpstreamID resets all changes to the "upstream_id" field.
func (m *TicketMutation) ResetUpstreamID() {
	m.upstream_id = nil
	delete(m.clearedFields, ticket.FieldUpstreamID)
}

// SetProtocol sets the "protocol" field.
func (m *TicketMutation) SetProtocol(s string) {
	m.protocol = &s
}

// Protocol returns the value of the "protocol" field in the mutation.
func (m *TicketMutation) Protocol() (r string, exists bool) {
	v := m.protocol
	if v == nil {
		return
	}
	return *v, true
}

// OldProtocol returns the old "protocol" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldProtocol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtocol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtocol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtocol: %w", err)
	}
	return oldValue.Protocol, nil
}

// ResetProtocol resets all changes to the "protocol" field.
func (m *TicketMutation) ResetProtocol() {
	m.protocol = nil
}

// SetSyncStatus sets the "sync_status" field.
func (m *TicketMutation) SetSyncStatus(ts ticket.SyncStatus) {
	m.sync_status = &ts
}

// SyncStatus returns the value of the "sync_status" field in the mutation.
func (m *TicketMutation) SyncStatus() (r ticket.SyncStatus, exists bool) {
	v := m.sync_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncStatus returns the old "sync_status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldSyncStatus(ctx context.Context) (v ticket.SyncStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncStatus: %w", err)
	}
	return oldValue.SyncStatus, nil
}

// ResetSyncStatus resets all changes to the "sync_status" field.
func (m *TicketMutation) ResetSyncStatus() {
	m.sync_status = nil
}

// SetAttachments sets the "attachments" field.
func (m *TicketMutation) SetAttachments(ma []models.TicketAttachment) {
	m.attachments = &ma
	m.appendattachments = nil
}

// Attachments returns the value of the "attachments" field in the mutation.
func (m *TicketMutation) Attachments() (r []models.TicketAttachment, exists bool) {
	v := m.attachments
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachments returns the old "attachments" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldAttachments(ctx context.Context) (v []models.TicketAttachment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachments: %w", err)
	}
	return oldValue.Attachments, nil
}

// AppendAttachments adds ma to the "attachments" field.
func (m *TicketMutation) AppendAttachments(ma []models.TicketAttachment) {
	m.appendattachments = append(m.appendattachments, ma...)
}

// AppendedAttachments returns the list of values that were appended to the "attachments" field in this mutation.
func (m *TicketMutation) AppendedAttachments() ([]models.TicketAttachment, bool) {
	if len(m.appendattachments) == 0 {
		return nil, false
	}
	return m.appendattachments, true
}

// ClearAttachments clears the value of the "attachments" field.
func (m *TicketMutation) ClearAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	m.clearedFields[ticket.FieldAttachments] = struct{}{}
}

// AttachmentsCleared returns if the "attachments" field was cleared in this mutation.
func (m *TicketMutation) AttachmentsCleared() bool {
	_, ok := m.clearedFields[ticket.FieldAttachments]
	return ok
}

// ResetAttachments resets all changes to the "attachments" field.
func (m *TicketMutation) ResetAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	delete(m.clearedFields, ticket.FieldAttachments)
}

// SetMessages sets the "messages" field.
func (m *TicketMutation) SetMessages(mm []models.TicketMessage) {
	m.messages = &mm
	m.appendmessages = nil
}

// Messages returns the value of the "messages" field in the mutation.
func (m *TicketMutation) Messages() (r []models.TicketMessage, exists bool) {
	v := m.messages
	if v == nil {
		return
	}
	return *v, true
}

// OldMessages returns the old "messages" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldMessages(ctx context.Context) (v []models.TicketMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessages: %w", err)
	}
	return oldValue.Messages, nil
}

// AppendMessages adds mm to the "messages" field.
func (m *TicketMutation) AppendMessages(mm []models.TicketMessage) {
	m.appendmessages = append(m.appendmessages, mm...)
}

// AppendedMessages returns the list of values that were appended to the "messages" field in this mutation.
func (m *TicketMutation) AppendedMessages() ([]models.TicketMessage, bool) {
	if len(m.appendmessages) == 0 {
		return nil, false
	}
	return m.appendmessages, true
}

// ClearMessages clears the value of the "messages" field.
func (m *TicketMutation) ClearMessages() {
	m.messages = nil
	m.appendmessages = nil
	m.clearedFields[ticket.FieldMessages] = struct{}{}
}

// MessagesCleared returns if the "messages" field was cleared in this mutation.
func (m *TicketMutation) MessagesCleared() bool {
	_, ok := m.clearedFields[ticket.FieldMessages]
	return ok
}

// ResetMessages resets all changes to the "messages" field.
func (m *TicketMutation) ResetMessages() {
	m.messages = nil
	m.appendmessages = nil
	delete(m.clearedFields, ticket.FieldMessages)
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TicketMutation builder.
func (m *TicketMutation) Where(ps ...predicate.Ticket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ticket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ticket).
func (m *TicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.owner_id != nil {
		fields = append(fields, ticket.FieldOwnerID)
	}
	if m.owner_username != nil {
		fields = append(fields, ticket.FieldOwnerUsername)
	}
	if m.owner_cpf_masked != nil {
		fields = append(fields, ticket.FieldOwnerCpfMasked)
	}
	if m.category != nil {
		fields = append(fields, ticket.FieldCategory)
	}
	if m.game != nil {
		fields = append(fields, ticket.FieldGame)
	}
	if m.problem_timing != nil {
		fields = append(fields, ticket.FieldProblemTiming)
	}
	if m.description != nil {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.urgency != nil {
		fields = append(fields, ticket.FieldUrgency)
	}
	if m.status != nil {
		fields = append(fields, ticket.FieldStatus)
	}
	if m.assignee != nil {
		fields = append(fields, ticket.FieldAssignee)
	}
	if m.resolution != nil {
		fields = append(fields, ticket.FieldResolution)
	}
	if m.upstream_id != nil {
		fields = append(fields, ticket.FieldUpstreamID)
	}
	if m.protocol != nil {
		fields = append(fields, ticket.FieldProtocol)
	}
	if m.sync_status != nil {
		fields = append(fields, ticket.FieldSyncStatus)
	}
	if m.attachments != nil {
		fields = append(fields, ticket.FieldAttachments)
	}
	if m.messages != nil {
		fields = append(fields, ticket.FieldMessages)
	}
	if m.created_at != nil {
		fields = append(fields, ticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ticket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldOwnerID:
		return m.OwnerID()
	case ticket.FieldOwnerUsername:
		return m.OwnerUsername()
	case ticket.FieldOwnerCpfMasked:
		return m.OwnerCpfMasked()
	case ticket.FieldCategory:
		return m.Category()
	case ticket.FieldGame:
		return m.Game()
	case ticket.FieldProblemTiming:
		return m.ProblemTiming()
	case ticket.FieldDescription:
		return m.Description()
	case ticket.FieldUrgency:
		return m.Urgency()
	case ticket.FieldStatus:
		return m.Status()
	case ticket.FieldAssignee:
		return m.Assignee()
	case ticket.FieldResolution:
		return m.Resolution()
	case ticket.FieldUpstreamID:
		return m.UpstreamID()
	case ticket.FieldProtocol:
		return m.Protocol()
	case ticket.FieldSyncStatus:
		return m.SyncStatus()
	case ticket.FieldAttachments:
		return m.Attachments()
	case ticket.FieldMessages:
		return m.Messages()
	case ticket.FieldCreatedAt:
		return m.CreatedAt()
	case ticket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticket.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case ticket.FieldOwnerUsername:
		return m.OldOwnerUsername(ctx)
	case ticket.FieldOwnerCpfMasked:
		return m.OldOwnerCpfMasked(ctx)
	case ticket.FieldCategory:
		return m.OldCategory(ctx)
	case ticket.FieldGame:
		return m.OldGame(ctx)
	case ticket.FieldProblemTiming:
		return m.OldProblemTiming(ctx)
	case ticket.FieldDescription:
		return m.OldDescription(ctx)
	case ticket.FieldUrgency:
		return m.OldUrgency(ctx)
	case ticket.FieldStatus:
		return m.OldStatus(ctx)
	case ticket.FieldAssignee:
		return m.OldAssignee(ctx)
	case ticket.FieldResolution:
		return m.OldResolution(ctx)
	case ticket.FieldUpstreamID:
		return m.OldUpstreamID(ctx)
	case ticket.FieldProtocol:
		return m.OldProtocol(ctx)
	case ticket.FieldSyncStatus:
		return m.OldSyncStatus(ctx)
	case ticket.FieldAttachments:
		return m.OldAttachments(ctx)
	case ticket.FieldMessages:
		return m.OldMessages(ctx)
	case ticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ticket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldOwnerID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case ticket.FieldOwnerUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUsername(v)
		return nil
	case ticket.FieldOwnerCpfMasked:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerCpfMasked(v)
		return nil
	case ticket.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case ticket.FieldGame:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGame(v)
		return nil
	case ticket.FieldProblemTiming:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemTiming(v)
		return nil
	case ticket.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case ticket.FieldUrgency:
		v, ok := value.(ticket.Urgency)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgency(v)
		return nil
	case ticket.FieldStatus:
		v, ok := value.(ticket.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ticket.FieldAssignee:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignee(v)
		return nil
	case ticket.FieldResolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case ticket.FieldUpstreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpstreamID(v)
		return nil
	case ticket.FieldProtocol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtocol(v)
		return nil
	case ticket.FieldSyncStatus:
		v, ok := value.(ticket.SyncStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncStatus(v)
		return nil
	case ticket.FieldAttachments:
		v, ok := value.([]models.TicketAttachment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachments(v)
		return nil
	case ticket.FieldMessages:
		v, ok := value.([]models.TicketMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessages(v)
		return nil
	case ticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMutation) AddedFields() []string {
	var fields []string
	if m.addowner_id != nil {
		fields = append(fields, ticket.FieldOwnerID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldOwnerID:
		return m.AddedOwnerID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldOwnerID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnerID(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticket.FieldOwnerUsername) {
		fields = append(fields, ticket.FieldOwnerUsername)
	}
	if m.FieldCleared(ticket.FieldOwnerCpfMasked) {
		fields = append(fields, ticket.FieldOwnerCpfMasked)
	}
	if m.FieldCleared(ticket.FieldGame) {
		fields = append(fields, ticket.FieldGame)
	}
	if m.FieldCleared(ticket.FieldProblemTiming) {
		fields = append(fields, ticket.FieldProblemTiming)
	}
	if m.FieldCleared(ticket.FieldAssignee) {
		fields = append(fields, ticket.FieldAssignee)
	}
	if m.FieldCleared(ticket.FieldResolution) {
		fields = append(fields, ticket.FieldResolution)
	}
	if m.FieldCleared(ticket.FieldUpstreamID) {
		fields = append(fields, ticket.FieldUpstreamID)
	}
	if m.FieldCleared(ticket.FieldAttachments) {
		fields = append(fields, ticket.FieldAttachments)
	}
	if m.FieldCleared(ticket.FieldMessages) {
		fields = append(fields, ticket.FieldMessages)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMutation) ClearField(name string) error {
	switch name {
	case ticket.FieldOwnerUsername:
		m.ClearOwnerUsername()
		return nil
	case ticket.FieldOwnerCpfMasked:
		m.ClearOwnerCpfMasked()
		return nil
	case ticket.FieldGame:
		m.ClearGame()
		return nil
	case ticket.FieldProblemTiming:
		m.ClearProblemTiming()
		return nil
	case ticket.FieldAssignee:
		m.ClearAssignee()
		return nil
	case ticket.FieldResolution:
		m.ClearResolution()
		return nil
	case ticket.FieldUpstreamID:
		m.ClearUpstreamID()
		return nil
	case ticket.FieldAttachments:
		m.ClearAttachments()
		return nil
	case ticket.FieldMessages:
		m.ClearMessages()
		return nil
	}
	return fmt.Errorf("unknown Ticket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMutation) ResetField(name string) error {
	switch name {
	case ticket.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case ticket.FieldOwnerUsername:
		m.ResetOwnerUsername()
		return nil
	case ticket.FieldOwnerCpfMasked:
		m.ResetOwnerCpfMasked()
		return nil
	case ticket.FieldCategory:
		m.ResetCategory()
		return nil
	case ticket.FieldGame:
		m.ResetGame()
		return nil
	case ticket.FieldProblemTiming:
		m.ResetProblemTiming()
		return nil
	case ticket.FieldDescription:
		m.ResetDescription()
		return nil
	case ticket.FieldUrgency:
		m.ResetUrgency()
		return nil
	case ticket.FieldStatus:
		m.ResetStatus()
		return nil
	case ticket.FieldAssignee:
		m.ResetAssignee()
		return nil
	case ticket.FieldResolution:
		m.ResetResolution()
		return nil
	case ticket.FieldUpstreamID:
		m.ResetUpstreamID()
		return nil
	case ticket.FieldProtocol:
		m.ResetProtocol()
		return nil
	case ticket.FieldSyncStatus:
		m.ResetSyncStatus()
		return nil
	case ticket.FieldAttachments:
		m.ResetAttachments()
		return nil
	case ticket.FieldMessages:
		m.ResetMessages()
		return nil
	case ticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Ticket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Ticket edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	username      *string
	cpf_hash      *string
	cpf_masked    *string
	client_name   *string
	service       **models.ServiceDescriptor
	status        *user.Status
	is_admin      *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int64) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *UserMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[user.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *UserMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[user.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, user.FieldUsername)
}

// SetCpfHash sets the "cpf_hash" field.
func (m *UserMutation) SetCpfHash(s string) {
	m.cpf_hash = &s
}

// CpfHash returns the value of the "cpf_hash" field in the mutation.
func (m *UserMutation) CpfHash() (r string, exists bool) {
	v := m.cpf_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldCpfHash returns the old "cpf_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCpfHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCpfHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCpfHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCpfHash: %w", err)
	}
	return oldValue.CpfHash, nil
}

// ClearCpfHash clears the value of the "cpf_hash" field.
func (m *UserMutation) ClearCpfHash() {
	m.cpf_hash = nil
	m.clearedFields[user.FieldCpfHash] = struct{}{}
}

// CpfHashCleared returns if the "cpf_hash" field was cleared in this mutation.
func (m *UserMutation) CpfHashCleared() bool {
	_, ok := m.clearedFields[user.FieldCpfHash]
	return ok
}

// ResetCpfHash resets all changes to the "cpf_hash" field.
func (m *UserMutation) ResetCpfHash() {
	m.cpf_hash = nil
	delete(m.clearedFields, user.FieldCpfHash)
}

// SetCpfMasked sets the "cpf_masked" field.
func (m *UserMutation) SetCpfMasked(s string) {
	m.cpf_masked = &s
}

// CpfMasked returns the value of the "cpf_masked" field in the mutation.
func (m *UserMutation) CpfMasked() (r string, exists bool) {
	v := m.cpf_masked
	if v == nil {
		return
	}
	return *v, true
}

// OldCpfMasked returns the old "cpf_masked" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCpfMasked(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCpfMasked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCpfMasked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCpfMasked: %w", err)
	}
	return oldValue.CpfMasked, nil
}

// ClearCpfMasked clears the value of the "cpf_masked" field.
func (m *UserMutation) ClearCpfMasked() {
	m.cpf_masked = nil
	m.clearedFields[user.FieldCpfMasked] = struct{}{}
}

// CpfMaskedCleared returns if the "cpf_masked" field was cleared in this mutation.
func (m *UserMutation) CpfMaskedCleared() bool {
	_, ok := m.clearedFields[user.FieldCpfMasked]
	return ok
}

// ResetCpfMasked resets all changes to the "cpf_masked" field.
func (m *UserMutation) ResetCpfMasked() {
	m.cpf_masked = nil
	delete(m.clearedFields, user.FieldCpfMasked)
}

// SetClientName sets the "client_name" field.
func (m *UserMutation) SetClientName(s string) {
	m.client_name = &s
}

// ClientName returns the value of the "client_name" field in the mutation.
func (m *UserMutation) ClientName() (r string, exists bool) {
	v := m.client_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClientName returns the old "client_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldClientName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientName: %w", err)
	}
	return oldValue.ClientName, nil
}

// ClearClientName clears the value of the "client_name" field.
func (m *UserMutation) ClearClientName() {
	m.client_name = nil
	m.clearedFields[user.FieldClientName] = struct{}{}
}

// ClientNameCleared returns if the "client_name" field was cleared in this mutation.
func (m *UserMutation) ClientNameCleared() bool {
	_, ok := m.clearedFields[user.FieldClientName]
	return ok
}

// ResetClientName resets all changes to the "client_name" field.
func (m *UserMutation) ResetClientName() {
	m.client_name = nil
	delete(m.clearedFields, user.FieldClientName)
}

// SetService sets the "service" field.
func (m *UserMutation) SetService(md *models.ServiceDescriptor) {
	m.service = &md
}

// Service returns the value of the "service" field in the mutation.
func (m *UserMutation) Service() (r *models.ServiceDescriptor, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldService returns the old "service" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldService(ctx context.Context) (v *models.ServiceDescriptor, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldService: %w", err)
	}
	return oldValue.Service, nil
}

// ClearService clears the value of the "service" field.
func (m *UserMutation) ClearService() {
	m.service = nil
	m.clearedFields[user.FieldService] = struct{}{}
}

// ServiceCleared returns if the "service" field was cleared in this mutation.
func (m *UserMutation) ServiceCleared() bool {
	_, ok := m.clearedFields[user.FieldService]
	return ok
}

// ResetService resets all changes to the "service" field.
func (m *UserMutation) ResetService() {
	m.service = nil
	delete(m.clearedFields, user.FieldService)
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// SetIsAdmin sets the "is_admin" field.
func (m *UserMutation) SetIsAdmin(b bool) {
	m.is_admin = &b
}

// IsAdmin returns the value of the "is_admin" field in the mutation.
func (m *UserMutation) IsAdmin() (r bool, exists bool) {
	v := m.is_admin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAdmin returns the old "is_admin" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsAdmin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAdmin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAdmin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAdmin: %w", err)
	}
	return oldValue.IsAdmin, nil
}

// ResetIsAdmin resets all changes to the "is_admin" field.
func (m *UserMutation) ResetIsAdmin() {
	m.is_admin = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.cpf_hash != nil {
		fields = append(fields, user.FieldCpfHash)
	}
	if m.cpf_masked != nil {
		fields = append(fields, user.FieldCpfMasked)
	}
	if m.client_name != nil {
		fields = append(fields, user.FieldClientName)
	}
	if m.service != nil {
		fields = append(fields, user.FieldService)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	if m.is_admin != nil {
		fields = append(fields, user.FieldIsAdmin)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldCpfHash:
		return m.CpfHash()
	case user.FieldCpfMasked:
		return m.CpfMasked()
	case user.FieldClientName:
		return m.ClientName()
	case user.FieldService:
		return m.Service()
	case user.FieldStatus:
		return m.Status()
	case user.FieldIsAdmin:
		return m.IsAdmin()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldCpfHash:
		return m.OldCpfHash(ctx)
	case user.FieldCpfMasked:
		return m.OldCpfMasked(ctx)
	case user.FieldClientName:
		return m.OldClientName(ctx)
	case user.FieldService:
		return m.OldService(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	case user.FieldIsAdmin:
		return m.OldIsAdmin(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldCpfHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCpfHash(v)
		return nil
	case user.FieldCpfMasked:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCpfMasked(v)
		return nil
	case user.FieldClientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientName(v)
		return nil
	case user.FieldService:
		v, ok := value.(*models.ServiceDescriptor)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetService(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case user.FieldIsAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAdmin(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldUsername) {
		fields = append(fields, user.FieldUsername)
	}
	if m.FieldCleared(user.FieldCpfHash) {
		fields = append(fields, user.FieldCpfHash)
	}
	if m.FieldCleared(user.FieldCpfMasked) {
		fields = append(fields, user.FieldCpfMasked)
	}
	if m.FieldCleared(user.FieldClientName) {
		fields = append(fields, user.FieldClientName)
	}
	if m.FieldCleared(user.FieldService) {
		fields = append(fields, user.FieldService)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ClearUsername()
		return nil
	case user.FieldCpfHash:
		m.ClearCpfHash()
		return nil
	case user.FieldCpfMasked:
		m.ClearCpfMasked()
		return nil
	case user.FieldClientName:
		m.ClearClientName()
		return nil
	case user.FieldService:
		m.ClearService()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldCpfHash:
		m.ResetCpfHash()
		return nil
	case user.FieldCpfMasked:
		m.ResetCpfMasked()
		return nil
	case user.FieldClientName:
		m.ResetClientName()
		return nil
	case user.FieldService:
		m.ResetService()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	case user.FieldIsAdmin:
		m.ResetIsAdmin()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// VerificationAttemptMutation represents an operation that mutates the VerificationAttempt nodes in the graph.
type VerificationAttemptMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *int64
	adduser_id          *int64
	attempt_number      *int
	addattempt_number   *int
	cpf_masked          *string
	cpf_provided        *string
	success             *bool
	failure_reason      *string
	attempted_at        *time.Time
	clearedFields       map[string]struct{}
	verification        *string
	clearedverification bool
	done                bool
	oldValue            func(context.Context) (*VerificationAttempt, error)
	predicates          []predicate.VerificationAttempt
}

var _ ent.Mutation = (*VerificationAttemptMutation)(nil)

// verificationattemptOption allows management of the mutation configuration using functional options.
type verificationattemptOption func(*VerificationAttemptMutation)

// newVerificationAttemptMutation creates new mutation for the VerificationAttempt entity.
func newVerificationAttemptMutation(c config, op Op, opts ...verificationattemptOption) *VerificationAttemptMutation {
	m := &VerificationAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationAttemptID sets the ID field of the mutation.
func withVerificationAttemptID(id int) verificationattemptOption {
	return func(m *VerificationAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationAttempt
		)
		m.oldValue = func(ctx context.Context) (*VerificationAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationAttempt sets the old VerificationAttempt of the mutation.
func withVerificationAttempt(node *VerificationAttempt) verificationattemptOption {
	return func(m *VerificationAttemptMutation) {
		m.oldValue = func(context.Context) (*VerificationAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVerificationID sets the "verification_id" field.
func (m *VerificationAttemptMutation) SetVerificationID(s string) {
	m.verification = &s
}

// VerificationID returns the value of the "verification_id" field in the mutation.
func (m *VerificationAttemptMutation) VerificationID() (r string, exists bool) {
	v := m.verification
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationID returns the old "verification_id" field's value of the VerificationAttempt entity.
// If the VerificationAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationAttemptMutation) OldVerificationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationID: %w", err)
	}
	return oldValue.VerificationID, nil
}

// ResetVerificationID resets all changes to the "verification_id" field.
func (m *VerificationAttemptMutation) ResetVerificationID() {
	m.verification = nil
}

// SetUserID sets the "user_id" field.
func (m *VerificationAttemptMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *VerificationAttemptMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the VerificationAttempt entity.
// If the VerificationAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationAttemptMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *VerificationAttemptMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *VerificationAttemptMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *VerificationAttemptMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *VerificationAttemptMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *VerificationAttemptMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the VerificationAttempt entity.
// If the VerificationAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationAttemptMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *VerificationAttemptMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *VerificationAttemptMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *VerificationAttemptMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetCpfMasked sets the "cpf_masked" field.
func (m *VerificationAttemptMutation) SetCpfMasked(s string) {
	m.cpf_masked = &s
}

// CpfMasked returns the value of the "cpf_masked" field in the mutation.
func (m *VerificationAttemptMutation) CpfMasked() (r string, exists bool) {
	v := m.cpf_masked
	if v == nil {
		return
	}
	return *v, true
}

// OldCpfMasked returns the old "cpf_masked" field's value of the VerificationAttempt entity.
// If the VerificationAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationAttemptMutation) OldCpfMasked(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCpfMasked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCpfMasked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCpfMasked: %w", err)
	}
	return oldValue.CpfMasked, nil
}

// ClearCpfMasked clears the value of the "cpf_masked" field.
func (m *VerificationAttemptMutation) ClearCpfMasked() {
	m.cpf_masked = nil
	m.clearedFields[verificationattempt.FieldCpfMasked] = struct{}{}
}

// CpfMaskedCleared returns if the "cpf_masked" field was cleared in this mutation.
func (m *VerificationAttemptMutation) CpfMaskedCleared() bool {
	_, ok := m.clearedFields[verificationattempt.FieldCpfMasked]
	return ok
}

// ResetCpfMasked resets all changes to the "cpf_masked" field.
func (m *VerificationAttemptMutation) ResetCpfMasked() {
	m.cpf_masked = nil
	delete(m.clearedFields, verificationattempt.FieldCpfMasked)
}

// SetCpfProvided sets the "cpf_provided" field.
func (m *VerificationAttemptMutation) SetCpfProvided(s string) {
	m.cpf_provided = &s
}

// CpfProvided returns the value of the "cpf_provided" field in the mutation.
func (m *VerificationAttemptMutation) CpfProvided() (r string, exists bool) {
	v := m.cpf_provided
	if v == nil {
		return
	}
	return *v, true
}

// OldCpfProvided returns the old "cpf_provided" field's value of the VerificationAttempt entity.
// If the VerificationAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationAttemptMutation) OldCpfProvided(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCpfProvided is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCpfProvided requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCpfProvided: %w", err)
	}
	return oldValue.CpfProvided, nil
}

// ClearCpfProvided clears the value of the "cpf_provided" field.
func (m *VerificationAttemptMutation) ClearCpfProvided() {
	m.cpf_provided = nil
	m.clearedFields[verificationattempt.FieldCpfProvided] = struct{}{}
}

// CpfProvidedCleared returns if the "cpf_provided" field was cleared in this mutation.
func (m *VerificationAttemptMutation) CpfProvidedCleared() bool {
	_, ok := m.clearedFields[verificationattempt.FieldCpfProvided]
	return ok
}

// ResetCpfProvided resets all changes to the "cpf_provided" field.
func (m *VerificationAttemptMutation) ResetCpfProvided() {
	m.cpf_provided = nil
	delete(m.clearedFields, verificationattempt.FieldCpfProvided)
}

// SetSuccess sets the "success" field.
func (m *VerificationAttemptMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *VerificationAttemptMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the VerificationAttempt entity.
// If the VerificationAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationAttemptMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *VerificationAttemptMutation) ResetSuccess() {
	m.success = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *VerificationAttemptMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *VerificationAttemptMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the VerificationAttempt entity.
// If the VerificationAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationAttemptMutation) OldFailureReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *VerificationAttemptMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[verificationattempt.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *VerificationAttemptMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[verificationattempt.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *VerificationAttemptMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, verificationattempt.FieldFailureReason)
}

// SetAttemptedAt sets the "attempted_at" field.
func (m *VerificationAttemptMutation) SetAttemptedAt(t time.Time) {
	m.attempted_at = &t
}

// AttemptedAt returns the value of the "attempted_at" field in the mutation.
func (m *VerificationAttemptMutation) AttemptedAt() (r time.Time, exists bool) {
	v := m.attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptedAt returns the old "attempted_at" field's value of the VerificationAttempt entity.
// If the VerificationAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationAttemptMutation) OldAttemptedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptedAt: %w", err)
	}
	return oldValue.AttemptedAt, nil
}

// ResetAttemptedAt resets all changes to the "attempted_at" field.
func (m *VerificationAttemptMutation) ResetAttemptedAt() {
	m.attempted_at = nil
}

// ClearVerification clears the "verification" edge to the VerificationRequest entity.
func (m *VerificationAttemptMutation) ClearVerification() {
	m.clearedverification = true
	m.clearedFields[verificationattempt.FieldVerificationID] = struct{}{}
}

// VerificationCleared reports if the "verification" edge to the VerificationRequest entity was cleared.
func (m *VerificationAttemptMutation) VerificationCleared() bool {
	return m.clearedverification
}

// VerificationIDs returns the "verification" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VerificationID instead. It exists only for internal usage by the builders.
func (m *VerificationAttemptMutation) VerificationIDs() (ids []string) {
	if id := m.verification; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVerification resets all changes to the "verification" edge.
func (m *VerificationAttemptMutation) ResetVerification() {
	m.verification = nil
	m.clearedverification = false
}

// Where appends a list predicates to the VerificationAttemptMutation builder.
func (m *VerificationAttemptMutation) Where(ps ...predicate.VerificationAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationAttempt).
func (m *VerificationAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationAttemptMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.verification != nil {
		fields = append(fields, verificationattempt.FieldVerificationID)
	}
	if m.user_id != nil {
		fields = append(fields, verificationattempt.FieldUserID)
	}
	if m.attempt_number != nil {
		fields = append(fields, verificationattempt.FieldAttemptNumber)
	}
	if m.cpf_masked != nil {
		fields = append(fields, verificationattempt.FieldCpfMasked)
	}
	if m.cpf_provided != nil {
		fields = append(fields, verificationattempt.FieldCpfProvided)
	}
	if m.success != nil {
		fields = append(fields, verificationattempt.FieldSuccess)
	}
	if m.failure_reason != nil {
		fields = append(fields, verificationattempt.FieldFailureReason)
	}
	if m.attempted_at != nil {
		fields = append(fields, verificationattempt.FieldAttemptedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationattempt.FieldVerificationID:
		return m.VerificationID()
	case verificationattempt.FieldUserID:
		return m.UserID()
	case verificationattempt.FieldAttemptNumber:
		return m.AttemptNumber()
	case verificationattempt.FieldCpfMasked:
		return m.CpfMasked()
	case verificationattempt.FieldCpfProvided:
		return m.CpfProvided()
	case verificationattempt.FieldSuccess:
		return m.Success()
	case verificationattempt.FieldFailureReason:
		return m.FailureReason()
	case verificationattempt.FieldAttemptedAt:
		return m.AttemptedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationattempt.FieldVerificationID:
		return m.OldVerificationID(ctx)
	case verificationattempt.FieldUserID:
		return m.OldUserID(ctx)
	case verificationattempt.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case verificationattempt.FieldCpfMasked:
		return m.OldCpfMasked(ctx)
	case verificationattempt.FieldCpfProvided:
		return m.OldCpfProvided(ctx)
	case verificationattempt.FieldSuccess:
		return m.OldSuccess(ctx)
	case verificationattempt.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case verificationattempt.FieldAttemptedAt:
		return m.OldAttemptedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationattempt.FieldVerificationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationID(v)
		return nil
	case verificationattempt.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case verificationattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case verificationattempt.FieldCpfMasked:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCpfMasked(v)
		return nil
	case verificationattempt.FieldCpfProvided:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCpfProvided(v)
		return nil
	case verificationattempt.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case verificationattempt.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case verificationattempt.FieldAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationAttemptMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, verificationattempt.FieldUserID)
	}
	if m.addattempt_number != nil {
		fields = append(fields, verificationattempt.FieldAttemptNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationattempt.FieldUserID:
		return m.AddedUserID()
	case verificationattempt.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationattempt.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case verificationattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationattempt.FieldCpfMasked) {
		fields = append(fields, verificationattempt.FieldCpfMasked)
	}
	if m.FieldCleared(verificationattempt.FieldCpfProvided) {
		fields = append(fields, verificationattempt.FieldCpfProvided)
	}
	if m.FieldCleared(verificationattempt.FieldFailureReason) {
		fields = append(fields, verificationattempt.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationAttemptMutation) ClearField(name string) error {
	switch name {
	case verificationattempt.FieldCpfMasked:
		m.ClearCpfMasked()
		return nil
	case verificationattempt.FieldCpfProvided:
		m.ClearCpfProvided()
		return nil
	case verificationattempt.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown VerificationAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationAttemptMutation) ResetField(name string) error {
	switch name {
	case verificationattempt.FieldVerificationID:
		m.ResetVerificationID()
		return nil
	case verificationattempt.FieldUserID:
		m.ResetUserID()
		return nil
	case verificationattempt.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case verificationattempt.FieldCpfMasked:
		m.ResetCpfMasked()
		return nil
	case verificationattempt.FieldCpfProvided:
		m.ResetCpfProvided()
		return nil
	case verificationattempt.FieldSuccess:
		m.ResetSuccess()
		return nil
	case verificationattempt.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case verificationattempt.FieldAttemptedAt:
		m.ResetAttemptedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.verification != nil {
		edges = append(edges, verificationattempt.EdgeVerification)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationattempt.EdgeVerification:
		if id := m.verification; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedverification {
		edges = append(edges, verificationattempt.EdgeVerification)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationattempt.EdgeVerification:
		return m.clearedverification
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationAttemptMutation) ClearEdge(name string) error {
	switch name {
	case verificationattempt.EdgeVerification:
		m.ClearVerification()
		return nil
	}
	return fmt.Errorf("unknown VerificationAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationAttemptMutation) ResetEdge(name string) error {
	switch name {
	case verificationattempt.EdgeVerification:
		m.ResetVerification()
		return nil
	}
	return fmt.Errorf("unknown VerificationAttempt edge %s", name)
}

// VerificationRequestMutation represents an operation that mutates the VerificationRequest nodes in the graph.
type VerificationRequestMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *int64
	adduser_id          *int64
	username            *string
	verification_type   *verificationrequest.VerificationType
	source_action       *string
	status              *verificationrequest.Status
	verified_cpf_masked *string
	verified_cpf_hash   *string
	client_snapshot     **models.UpstreamClientSnapshot
	failure_reason      *string
	created_at          *time.Time
	expires_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	attempts            map[int]struct{}
	removedattempts     map[int]struct{}
	clearedattempts     bool
	done                bool
	oldValue            func(context.Context) (*VerificationRequest, error)
	predicates          []predicate.VerificationRequest
}

var _ ent.Mutation = (*VerificationRequestMutation)(nil)

// verificationrequestOption allows management of the mutation configuration using functional options.
type verificationrequestOption func(*VerificationRequestMutation)

// newVerificationRequestMutation creates new mutation for the VerificationRequest entity.
func newVerificationRequestMutation(c config, op Op, opts ...verificationrequestOption) *VerificationRequestMutation {
	m := &VerificationRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationRequestID sets the ID field of the mutation.
func withVerificationRequestID(id string) verificationrequestOption {
	return func(m *VerificationRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationRequest
		)
		m.oldValue = func(ctx context.Context) (*VerificationRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationRequest sets the old VerificationRequest of the mutation.
func withVerificationRequest(node *VerificationRequest) verificationrequestOption {
	return func(m *VerificationRequestMutation) {
		m.oldValue = func(context.Context) (*VerificationRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationRequest entities.
func (m *VerificationRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *VerificationRequestMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *VerificationRequestMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *VerificationRequestMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *VerificationRequestMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *VerificationRequestMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetUsername sets the "username" field.
func (m *VerificationRequestMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *VerificationRequestMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *VerificationRequestMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[verificationrequest.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *VerificationRequestMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[verificationrequest.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *VerificationRequestMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, verificationrequest.FieldUsername)
}

// SetVerificationType sets the "verification_type" field.
func (m *VerificationRequestMutation) SetVerificationType(vt verificationrequest.VerificationType) {
	m.verification_type = &vt
}

// VerificationType returns the value of the "verification_type" field in the mutation.
func (m *VerificationRequestMutation) VerificationType() (r verificationrequest.VerificationType, exists bool) {
	v := m.verification_type
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationType returns the old "verification_type" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldVerificationType(ctx context.Context) (v verificationrequest.VerificationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationType: %w", err)
	}
	return oldValue.VerificationType, nil
}

// ResetVerificationType resets all changes to the "verification_type" field.
func (m *VerificationRequestMutation) ResetVerificationType() {
	m.verification_type = nil
}

// SetSourceAction sets the "source_action" field.
func (m *VerificationRequestMutation) SetSourceAction(s string) {
	m.source_action = &s
}

// SourceAction returns the value of the "source_action" field in the mutation.
func (m *VerificationRequestMutation) SourceAction() (r string, exists bool) {
	v := m.source_action
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAction returns the old "source_action" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldSourceAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAction: %w", err)
	}
	return oldValue.SourceAction, nil
}

// ClearSourceAction clears the value of the "source_action" field.
func (m *VerificationRequestMutation) ClearSourceAction() {
	m.source_action = nil
	m.clearedFields[verificationrequest.FieldSourceAction] = struct{}{}
}

// SourceActionCleared returns if the "source_action" field was cleared in this mutation.
func (m *VerificationRequestMutation) SourceActionCleared() bool {
	_, ok := m.clearedFields[verificationrequest.FieldSourceAction]
	return ok
}

// ResetSourceAction resets all changes to the "source_action" field.
func (m *VerificationRequestMutation) ResetSourceAction() {
	m.source_action = nil
	delete(m.clearedFields, verificationrequest.FieldSourceAction)
}

// SetStatus sets the "status" field.
func (m *VerificationRequestMutation) SetStatus(v verificationrequest.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VerificationRequestMutation) Status() (r verificationrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldStatus(ctx context.Context) (v verificationrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VerificationRequestMutation) ResetStatus() {
	m.status = nil
}

// SetVerifiedCpfMasked sets the "verified_cpf_masked" field.
func (m *VerificationRequestMutation) SetVerifiedCpfMasked(s string) {
	m.verified_cpf_masked = &s
}

// VerifiedCpfMasked returns the value of the "verified_cpf_masked" field in the mutation.
func (m *VerificationRequestMutation) VerifiedCpfMasked() (r string, exists bool) {
	v := m.verified_cpf_masked
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedCpfMasked returns the old "verified_cpf_masked" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldVerifiedCpfMasked(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedCpfMasked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedCpfMasked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedCpfMasked: %w", err)
	}
	return oldValue.VerifiedCpfMasked, nil
}

// ClearVerifiedCpfMasked clears the value of the "verified_cpf_masked" field.
func (m *VerificationRequestMutation) ClearVerifiedCpfMasked() {
	m.verified_cpf_masked = nil
	m.clearedFields[verificationrequest.FieldVerifiedCpfMasked] = struct{}{}
}

// VerifiedCpfMaskedCleared returns if the "verified_cpf_masked" field was cleared in this mutation.
func (m *VerificationRequestMutation) VerifiedCpfMaskedCleared() bool {
	_, ok := m.clearedFields[verificationrequest.FieldVerifiedCpfMasked]
	return ok
}

// ResetVerifiedCpfMasked resets all changes to the "verified_cpf_masked" field.
func (m *VerificationRequestMutation) ResetVerifiedCpfMasked() {
	m.verified_cpf_masked = nil
	delete(m.clearedFields, verificationrequest.FieldVerifiedCpfMasked)
}

// SetVerifiedCpfHash sets the "verified_cpf_hash" field.
func (m *VerificationRequestMutation) SetVerifiedCpfHash(s string) {
	m.verified_cpf_hash = &s
}

// VerifiedCpfHash returns the value of the "verified_cpf_hash" field in the mutation.
func (m *VerificationRequestMutation) VerifiedCpfHash() (r string, exists bool) {
	v := m.verified_cpf_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedCpfHash returns the old "verified_cpf_hash" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldVerifiedCpfHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedCpfHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedCpfHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedCpfHash: %w", err)
	}
	return oldValue.VerifiedCpfHash, nil
}

// ClearVerifiedCpfHash clears the value of the "verified_cpf_hash" field.
func (m *VerificationRequestMutation) ClearVerifiedCpfHash() {
	m.verified_cpf_hash = nil
	m.clearedFields[verificationrequest.FieldVerifiedCpfHash] = struct{}{}
}

// VerifiedCpfHashCleared returns if the "verified_cpf_hash" field was cleared in this mutation.
func (m *VerificationRequestMutation) VerifiedCpfHashCleared() bool {
	_, ok := m.clearedFields[verificationrequest.FieldVerifiedCpfHash]
	return ok
}

// ResetVerifiedCpfHash resets all changes to the "verified_cpf_hash" field.
func (m *VerificationRequestMutation) ResetVerifiedCpfHash() {
	m.verified_cpf_hash = nil
	delete(m.clearedFields, verificationrequest.FieldVerifiedCpfHash)
}

// SetClientSnapshot sets the "client_snapshot" field.
func (m *VerificationRequestMutation) SetClientSnapshot(mcs *models.UpstreamClientSnapshot) {
	m.client_snapshot = &mcs
}

// ClientSnapshot returns the value of the "client_snapshot" field in the mutation.
func (m *VerificationRequestMutation) ClientSnapshot() (r *models.UpstreamClientSnapshot, exists bool) {
	v := m.client_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldClientSnapshot returns the old "client_snapshot" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldClientSnapshot(ctx context.Context) (v *models.UpstreamClientSnapshot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientSnapshot: %w", err)
	}
	return oldValue.ClientSnapshot, nil
}

// ClearClientSnapshot clears the value of the "client_snapshot" field.
func (m *VerificationRequestMutation) ClearClientSnapshot() {
	m.client_snapshot = nil
	m.clearedFields[verificationrequest.FieldClientSnapshot] = struct{}{}
}

// ClientSnapshotCleared returns if the "client_snapshot" field was cleared in this mutation.
func (m *VerificationRequestMutation) ClientSnapshotCleared() bool {
	_, ok := m.clearedFields[verificationrequest.FieldClientSnapshot]
	return ok
}

// ResetClientSnapshot resets all changes to the "client_snapshot" field.
func (m *VerificationRequestMutation) ResetClientSnapshot() {
	m.client_snapshot = nil
	delete(m.clearedFields, verificationrequest.FieldClientSnapshot)
}

// SetFailureReason sets the "failure_reason" field.
func (m *VerificationRequestMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *VerificationRequestMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *VerificationRequestMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[verificationrequest.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *VerificationRequestMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[verificationrequest.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *VerificationRequestMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, verificationrequest.FieldFailureReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *VerificationRequestMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *VerificationRequestMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *VerificationRequestMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *VerificationRequestMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *VerificationRequestMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the VerificationRequest entity.
// If the VerificationRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRequestMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *VerificationRequestMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[verificationrequest.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *VerificationRequestMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[verificationrequest.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *VerificationRequestMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, verificationrequest.FieldCompletedAt)
}

// AddAttemptIDs adds the "attempts" edge to the VerificationAttempt entity by ids.
func (m *VerificationRequestMutation) AddAttemptIDs(ids ...int) {
	if m.attempts == nil {
		m.attempts = make(map[int]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the VerificationAttempt entity.
func (m *VerificationRequestMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the VerificationAttempt entity was cleared.
func (m *VerificationRequestMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the VerificationAttempt entity by IDs.
func (m *VerificationRequestMutation) RemoveAttemptIDs(ids ...int) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the VerificationAttempt entity.
func (m *VerificationRequestMutation) RemovedAttemptsIDs() (ids []int) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *VerificationRequestMutation) AttemptsIDs() (ids []int) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *VerificationRequestMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the VerificationRequestMutation builder.
func (m *VerificationRequestMutation) Where(ps ...predicate.VerificationRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationRequest).
func (m *VerificationRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationRequestMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, verificationrequest.FieldUserID)
	}
	if m.username != nil {
		fields = append(fields, verificationrequest.FieldUsername)
	}
	if m.verification_type != nil {
		fields = append(fields, verificationrequest.FieldVerificationType)
	}
	if m.source_action != nil {
		fields = append(fields, verificationrequest.FieldSourceAction)
	}
	if m.status != nil {
		fields = append(fields, verificationrequest.FieldStatus)
	}
	if m.verified_cpf_masked != nil {
		fields = append(fields, verificationrequest.FieldVerifiedCpfMasked)
	}
	if m.verified_cpf_hash != nil {
		fields = append(fields, verificationrequest.FieldVerifiedCpfHash)
	}
	if m.client_snapshot != nil {
		fields = append(fields, verificationrequest.FieldClientSnapshot)
	}
	if m.failure_reason != nil {
		fields = append(fields, verificationrequest.FieldFailureReason)
	}
	if m.created_at != nil {
		fields = append(fields, verificationrequest.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, verificationrequest.FieldExpiresAt)
	}
	if m.completed_at != nil {
		fields = append(fields, verificationrequest.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationrequest.FieldUserID:
		return m.UserID()
	case verificationrequest.FieldUsername:
		return m.Username()
	case verificationrequest.FieldVerificationType:
		return m.VerificationType()
	case verificationrequest.FieldSourceAction:
		return m.SourceAction()
	case verificationrequest.FieldStatus:
		return m.Status()
	case verificationrequest.FieldVerifiedCpfMasked:
		return m.VerifiedCpfMasked()
	case verificationrequest.FieldVerifiedCpfHash:
		return m.VerifiedCpfHash()
	case verificationrequest.FieldClientSnapshot:
		return m.ClientSnapshot()
	case verificationrequest.FieldFailureReason:
		return m.FailureReason()
	case verificationrequest.FieldCreatedAt:
		return m.CreatedAt()
	case verificationrequest.FieldExpiresAt:
		return m.ExpiresAt()
	case verificationrequest.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationrequest.FieldUserID:
		return m.OldUserID(ctx)
	case verificationrequest.FieldUsername:
		return m.OldUsername(ctx)
	case verificationrequest.FieldVerificationType:
		return m.OldVerificationType(ctx)
	case verificationrequest.FieldSourceAction:
		return m.OldSourceAction(ctx)
	case verificationrequest.FieldStatus:
		return m.OldStatus(ctx)
	case verificationrequest.FieldVerifiedCpfMasked:
		return m.OldVerifiedCpfMasked(ctx)
	case verificationrequest.FieldVerifiedCpfHash:
		return m.OldVerifiedCpfHash(ctx)
	case verificationrequest.FieldClientSnapshot:
		return m.OldClientSnapshot(ctx)
	case verificationrequest.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case verificationrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case verificationrequest.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case verificationrequest.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationrequest.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case verificationrequest.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case verificationrequest.FieldVerificationType:
		v, ok := value.(verificationrequest.VerificationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationType(v)
		return nil
	case verificationrequest.FieldSourceAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAction(v)
		return nil
	case verificationrequest.FieldStatus:
		v, ok := value.(verificationrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verificationrequest.FieldVerifiedCpfMasked:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedCpfMasked(v)
		return nil
	case verificationrequest.FieldVerifiedCpfHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedCpfHash(v)
		return nil
	case verificationrequest.FieldClientSnapshot:
		v, ok := value.(*models.UpstreamClientSnapshot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientSnapshot(v)
		return nil
	case verificationrequest.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case verificationrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case verificationrequest.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case verificationrequest.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationRequestMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, verificationrequest.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationrequest.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationrequest.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationrequest.FieldUsername) {
		fields = append(fields, verificationrequest.FieldUsername)
	}
	if m.FieldCleared(verificationrequest.FieldSourceAction) {
		fields = append(fields, verificationrequest.FieldSourceAction)
	}
	if m.FieldCleared(verificationrequest.FieldVerifiedCpfMasked) {
		fields = append(fields, verificationrequest.FieldVerifiedCpfMasked)
	}
	if m.FieldCleared(verificationrequest.FieldVerifiedCpfHash) {
		fields = append(fields, verificationrequest.FieldVerifiedCpfHash)
	}
	if m.FieldCleared(verificationrequest.FieldClientSnapshot) {
		fields = append(fields, verificationrequest.FieldClientSnapshot)
	}
	if m.FieldCleared(verificationrequest.FieldFailureReason) {
		fields = append(fields, verificationrequest.FieldFailureReason)
	}
	if m.FieldCleared(verificationrequest.FieldCompletedAt) {
		fields = append(fields, verificationrequest.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationRequestMutation) ClearField(name string) error {
	switch name {
	case verificationrequest.FieldUsername:
		m.ClearUsername()
		return nil
	case verificationrequest.FieldSourceAction:
		m.ClearSourceAction()
		return nil
	case verificationrequest.FieldVerifiedCpfMasked:
		m.ClearVerifiedCpfMasked()
		return nil
	case verificationrequest.FieldVerifiedCpfHash:
		m.ClearVerifiedCpfHash()
		return nil
	case verificationrequest.FieldClientSnapshot:
		m.ClearClientSnapshot()
		return nil
	case verificationrequest.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case verificationrequest.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationRequestMutation) ResetField(name string) error {
	switch name {
	case verificationrequest.FieldUserID:
		m.ResetUserID()
		return nil
	case verificationrequest.FieldUsername:
		m.ResetUsername()
		return nil
	case verificationrequest.FieldVerificationType:
		m.ResetVerificationType()
		return nil
	case verificationrequest.FieldSourceAction:
		m.ResetSourceAction()
		return nil
	case verificationrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case verificationrequest.FieldVerifiedCpfMasked:
		m.ResetVerifiedCpfMasked()
		return nil
	case verificationrequest.FieldVerifiedCpfHash:
		m.ResetVerifiedCpfHash()
		return nil
	case verificationrequest.FieldClientSnapshot:
		m.ResetClientSnapshot()
		return nil
	case verificationrequest.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case verificationrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case verificationrequest.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case verificationrequest.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.attempts != nil {
		edges = append(edges, verificationrequest.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationrequest.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedattempts != nil {
		edges = append(edges, verificationrequest.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationRequestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case verificationrequest.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedattempts {
		edges = append(edges, verificationrequest.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationrequest.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationRequestMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown VerificationRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationRequestMutation) ResetEdge(name string) error {
	switch name {
	case verificationrequest.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown VerificationRequest edge %s", name)
}
