package hubsoft

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Client is the upstream capability surface the engine consumes. The
// production implementation is HTTPClient; tests use the in-memory Fake.
type Client interface {
	VerifyClientByCPF(ctx context.Context, cpf string, includeContracts bool) (*ClientRecord, error)
	CreateTicket(ctx context.Context, payload TicketPayload) (*TicketRef, error)
	UpdateTicket(ctx context.Context, upstreamID string, patch TicketPatch) error
	GetTicketStatus(ctx context.Context, upstreamID string) (*TicketStatus, error)
	SearchTicketsByCPF(ctx context.Context, cpf string, limit int) ([]TicketStatus, error)
	GetClientContracts(ctx context.Context, cpf string) ([]Contract, error)
	CheckHealth(ctx context.Context) (*HealthStatus, error)
}

// Options configures the HTTP client.
type Options struct {
	BaseURL        string
	Username       string
	Password       string
	RequestTimeout time.Duration

	// BurstLimit smooths request bursts client-side. The process-wide
	// sliding-window budget lives in the scheduler, not here.
	BurstLimit int
}

// HTTPClient talks to the upstream over HTTP with a cached bearer token.
type HTTPClient struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger

	tokenMu     sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewHTTPClient creates the production upstream client.
func NewHTTPClient(opts Options) *HTTPClient {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	burst := opts.BurstLimit
	if burst <= 0 {
		burst = 5
	}
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		username:   opts.Username,
		password:   opts.Password,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(burst), burst),
		logger:     slog.With("component", "hubsoft"),
	}
}

// VerifyClientByCPF looks up a client and accepts it only when the returned
// record has an active service (servico_status contains "habilitado",
// case-insensitive). Inactive or missing clients return ErrClientNotFound.
func (c *HTTPClient) VerifyClientByCPF(ctx context.Context, cpf string, includeContracts bool) (*ClientRecord, error) {
	q := url.Values{}
	q.Set("busca", "cpf_cnpj")
	q.Set("termo_busca", cpf)
	if includeContracts {
		q.Set("incluir_contratos", "sim")
	}

	var out struct {
		Clients []ClientRecord `json:"clientes"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/integracao/cliente?"+q.Encode(), nil, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	for i := range out.Clients {
		if strings.Contains(strings.ToLower(out.Clients[i].ServiceStatus), "habilitado") {
			return &out.Clients[i], nil
		}
	}
	return nil, ErrClientNotFound
}

// CreateTicket opens a ticket in the upstream and returns its id + protocol.
func (c *HTTPClient) CreateTicket(ctx context.Context, payload TicketPayload) (*TicketRef, error) {
	var out struct {
		Ticket TicketRef `json:"atendimento"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/integracao/atendimento", payload, &out); err != nil {
		return nil, err
	}
	return &out.Ticket, nil
}

// UpdateTicket patches an existing upstream ticket.
func (c *HTTPClient) UpdateTicket(ctx context.Context, upstreamID string, patch TicketPatch) error {
	path := "/api/v1/integracao/atendimento/" + url.PathEscape(upstreamID)
	return c.doJSON(ctx, http.MethodPut, path, patch, nil)
}

// GetTicketStatus reads the upstream's view of a ticket.
func (c *HTTPClient) GetTicketStatus(ctx context.Context, upstreamID string) (*TicketStatus, error) {
	path := "/api/v1/integracao/atendimento/" + url.PathEscape(upstreamID) + "/status"
	var out struct {
		Ticket TicketStatus `json:"atendimento"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.Ticket, nil
}

// SearchTicketsByCPF lists upstream tickets for a client, newest first.
func (c *HTTPClient) SearchTicketsByCPF(ctx context.Context, cpf string, limit int) ([]TicketStatus, error) {
	q := url.Values{}
	q.Set("busca", "cpf_cnpj")
	q.Set("termo_busca", cpf)
	if limit > 0 {
		q.Set("limite", strconv.Itoa(limit))
	}
	var out struct {
		Tickets []TicketStatus `json:"atendimentos"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/integracao/atendimento?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Tickets, nil
}

// GetClientContracts lists a client's service contracts.
func (c *HTTPClient) GetClientContracts(ctx context.Context, cpf string) ([]Contract, error) {
	q := url.Values{}
	q.Set("busca", "cpf_cnpj")
	q.Set("termo_busca", cpf)
	var out struct {
		Contracts []Contract `json:"contratos"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/integracao/cliente/contrato?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Contracts, nil
}

// CheckHealth probes the upstream and measures the round trip.
func (c *HTTPClient) CheckHealth(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()
	err := c.doJSON(ctx, http.MethodGet, "/api/v1/integracao/status", nil, nil)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		return &HealthStatus{Status: "unhealthy", ResponseTime: elapsed}, err
	}
	return &HealthStatus{Status: "healthy", ResponseTime: elapsed}, nil
}

// doJSON performs one authenticated request, refreshing the token once on
// 401. The body and response are JSON.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("burst limiter: %w", err)
	}

	token, err := c.getToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, body, token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		_ = resp.Body.Close()
		token, err = c.refreshToken(ctx)
		if err != nil {
			return err
		}
		resp, err = c.send(ctx, method, path, body, token)
		if err != nil {
			return err
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Code: "invalid_response", Message: err.Error(), Retryable: false}
	}
	return nil
}

func (c *HTTPClient) send(ctx context.Context, method, path string, body any, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Connection failures and client timeouts are retryable.
		return nil, &APIError{Code: "connection_error", Message: transportMessage(err), Retryable: true}
	}
	return resp, nil
}

// transportMessage renders a transport error without the request URL.
// Lookup queries carry the search term, so the URL must never be echoed
// into error messages.
func transportMessage(err error) string {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Sprintf("%s: %v", ue.Op, ue.Err)
	}
	return err.Error()
}

// getToken returns the cached token, fetching a fresh one when missing or
// near expiry.
func (c *HTTPClient) getToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-30*time.Second)) {
		return c.token, nil
	}
	return c.fetchTokenLocked(ctx)
}

// refreshToken discards the cached token and fetches a new one.
func (c *HTTPClient) refreshToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	c.token = ""
	return c.fetchTokenLocked(ctx)
}

func (c *HTTPClient) fetchTokenLocked(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", c.username)
	form.Set("password", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &APIError{Code: "connection_error", Message: transportMessage(err), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", classifyResponse(resp)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", &APIError{Code: "invalid_response", Message: err.Error(), Retryable: false}
	}
	if tok.AccessToken == "" {
		return "", &APIError{Code: "auth_failed", Message: "empty access token", Retryable: false}
	}

	c.token = tok.AccessToken
	if tok.ExpiresIn > 0 {
		c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	} else {
		c.tokenExpiry = time.Now().Add(time.Hour)
	}
	c.logger.Debug("Upstream token refreshed", "expires_in_s", tok.ExpiresIn)
	return c.token, nil
}

// classifyResponse maps a non-2xx response to an APIError with the
// retryability flag. 429 carries the Retry-After hint.
func classifyResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(body))

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		apiErr.Code = "upstream_rate_limited"
		apiErr.Retryable = true
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			if secs, err := strconv.Atoi(ra); err == nil && secs > 0 {
				apiErr.RetryAfter = time.Duration(secs) * time.Second
			}
		}
	case resp.StatusCode >= 500:
		apiErr.Code = "upstream_unavailable"
		apiErr.Retryable = true
	case resp.StatusCode == http.StatusNotFound:
		apiErr.Code = "upstream_not_found"
	case resp.StatusCode == http.StatusConflict:
		apiErr.Code = "upstream_conflict"
	case resp.StatusCode == http.StatusUnauthorized:
		apiErr.Code = "auth_failed"
	default:
		apiErr.Code = "upstream_error"
	}
	return apiErr
}
