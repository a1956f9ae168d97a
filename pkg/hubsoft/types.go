// Package hubsoft is the authenticated HTTP client for the upstream ERP.
// It owns token caching, retryable-error classification, and client-side
// burst smoothing; the scheduler owns the process-wide rate budget.
package hubsoft

import (
	"errors"
	"fmt"
	"time"
)

// ClientRecord is what the engine reads from an upstream client lookup.
type ClientRecord struct {
	Name          string     `json:"nome_razaosocial"`
	ServiceName   string     `json:"servico_nome"`
	ServiceStatus string     `json:"servico_status"`
	ServiceID     string     `json:"servico_id"`
	Contracts     []Contract `json:"contratos,omitempty"`
}

// Contract is one service contract attached to a client.
type Contract struct {
	ID          string `json:"id"`
	Description string `json:"descricao"`
	Status      string `json:"status"`
}

// TicketPayload is the upstream ticket creation request. Locally created
// tickets identify the client by service id (the engine never keeps the
// plaintext CPF); CPF-keyed creation is only used when the caller supplies it.
type TicketPayload struct {
	ClientCPF   string `json:"cpf_cnpj,omitempty"`
	ServiceID   string `json:"id_cliente_servico,omitempty"`
	Category    string `json:"tipo_atendimento"`
	Description string `json:"descricao"`
	Urgency     string `json:"prioridade"`
}

// TicketRef identifies a ticket in the upstream after creation.
type TicketRef struct {
	UpstreamID string `json:"id_atendimento"`
	Protocol   string `json:"protocolo"`
}

// TicketPatch carries partial ticket updates.
type TicketPatch struct {
	Status      string `json:"status,omitempty"`
	Description string `json:"descricao,omitempty"`
	Resolution  string `json:"resolucao,omitempty"`
}

// TicketStatus is the upstream's view of a ticket.
type TicketStatus struct {
	UpstreamID string `json:"id_atendimento"`
	Protocol   string `json:"protocolo"`
	Status     string `json:"status"`
	UpdatedAt  string `json:"data_atualizacao"`
}

// HealthStatus is the result of an upstream health probe.
type HealthStatus struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

// ErrClientNotFound is returned when no upstream client matches the CPF or
// the matched client has no active service.
var ErrClientNotFound = errors.New("client not found in upstream")

// APIError is a classified upstream failure. Retryable covers connection
// errors, timeouts, 429, and 5xx; on 429 RetryAfter carries the server hint.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Retryable  bool
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("hubsoft: %s (status %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("hubsoft: %s: %s", e.Code, e.Message)
}

// IsRetryable reports whether the error is worth retrying. Unknown error
// types (including wrapped context errors) are not.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}
	return false
}

// RetryAfterHint extracts the server-provided retry delay, if any.
func RetryAfterHint(err error) (time.Duration, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
		return apiErr.RetryAfter, true
	}
	return 0, false
}
