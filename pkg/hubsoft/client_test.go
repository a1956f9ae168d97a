package hubsoft

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCPF = "52998224725"

// upstreamStub is a configurable httptest upstream with a token endpoint.
type upstreamStub struct {
	t            *testing.T
	tokenCalls   atomic.Int32
	clientStatus int
	clientBody   string
	rejectToken  string // when set, requests bearing this token get 401
}

func (s *upstreamStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		n := s.tokenCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-" + string(rune('0'+n)),
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/api/v1/integracao/cliente", func(w http.ResponseWriter, r *http.Request) {
		if s.rejectToken != "" && r.Header.Get("Authorization") == "Bearer "+s.rejectToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if s.clientStatus != 0 && s.clientStatus != http.StatusOK {
			if s.clientStatus == http.StatusTooManyRequests {
				w.Header().Set("Retry-After", "7")
			}
			w.WriteHeader(s.clientStatus)
			return
		}
		_, _ = w.Write([]byte(s.clientBody))
	})
	return mux
}

func newStubClient(t *testing.T, stub *upstreamStub) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	return NewHTTPClient(Options{
		BaseURL:        srv.URL,
		Username:       "backoffice",
		Password:       "secret",
		RequestTimeout: 5 * time.Second,
		BurstLimit:     100,
	})
}

func TestHTTPClient_VerifyClientByCPF(t *testing.T) {
	t.Run("active service accepted", func(t *testing.T) {
		stub := &upstreamStub{
			clientBody: `{"clientes":[{"nome_razaosocial":"Alice","servico_nome":"Fibra 500","servico_status":"Serviço Habilitado"}]}`,
		}
		c := newStubClient(t, stub)

		record, err := c.VerifyClientByCPF(context.Background(), testCPF, false)
		require.NoError(t, err)
		assert.Equal(t, "Alice", record.Name)
		assert.Equal(t, "Fibra 500", record.ServiceName)
	})

	t.Run("inactive service rejected", func(t *testing.T) {
		stub := &upstreamStub{
			clientBody: `{"clientes":[{"nome_razaosocial":"Bob","servico_status":"Cancelado"}]}`,
		}
		c := newStubClient(t, stub)

		_, err := c.VerifyClientByCPF(context.Background(), testCPF, false)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("empty result rejected", func(t *testing.T) {
		stub := &upstreamStub{clientBody: `{"clientes":[]}`}
		c := newStubClient(t, stub)

		_, err := c.VerifyClientByCPF(context.Background(), testCPF, false)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		stub := &upstreamStub{clientStatus: http.StatusNotFound}
		c := newStubClient(t, stub)

		_, err := c.VerifyClientByCPF(context.Background(), testCPF, false)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})
}

func TestHTTPClient_TokenCacheAndRefresh(t *testing.T) {
	stub := &upstreamStub{
		clientBody: `{"clientes":[{"nome_razaosocial":"Alice","servico_status":"habilitado"}]}`,
	}
	c := newStubClient(t, stub)

	_, err := c.VerifyClientByCPF(context.Background(), testCPF, false)
	require.NoError(t, err)
	_, err = c.VerifyClientByCPF(context.Background(), testCPF, false)
	require.NoError(t, err)
	assert.Equal(t, int32(1), stub.tokenCalls.Load(), "token is cached across calls")

	// Invalidate the first token server-side; the client must refresh once
	// and replay the request.
	stub.rejectToken = "tok-1"
	_, err = c.VerifyClientByCPF(context.Background(), testCPF, false)
	require.NoError(t, err)
	assert.Equal(t, int32(2), stub.tokenCalls.Load())
}

func TestHTTPClient_ErrorClassification(t *testing.T) {
	t.Run("429 is retryable with retry-after hint", func(t *testing.T) {
		stub := &upstreamStub{clientStatus: http.StatusTooManyRequests}
		c := newStubClient(t, stub)

		_, err := c.VerifyClientByCPF(context.Background(), testCPF, false)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "upstream_rate_limited", apiErr.Code)
		assert.True(t, apiErr.Retryable)
		assert.Equal(t, 7*time.Second, apiErr.RetryAfter)

		hint, ok := RetryAfterHint(err)
		assert.True(t, ok)
		assert.Equal(t, 7*time.Second, hint)
	})

	t.Run("500 is retryable", func(t *testing.T) {
		stub := &upstreamStub{clientStatus: http.StatusInternalServerError}
		c := newStubClient(t, stub)

		_, err := c.VerifyClientByCPF(context.Background(), testCPF, false)
		require.Error(t, err)
		assert.True(t, IsRetryable(err))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "upstream_unavailable", apiErr.Code)
	})

	t.Run("409 is not retryable", func(t *testing.T) {
		stub := &upstreamStub{clientStatus: http.StatusConflict}
		c := newStubClient(t, stub)

		_, err := c.VerifyClientByCPF(context.Background(), testCPF, false)
		require.Error(t, err)
		assert.False(t, IsRetryable(err))
	})

	t.Run("connection error is retryable", func(t *testing.T) {
		c := NewHTTPClient(Options{
			BaseURL:        "http://127.0.0.1:1", // nothing listens here
			RequestTimeout: 500 * time.Millisecond,
		})
		_, err := c.CheckHealth(context.Background())
		require.Error(t, err)
		assert.True(t, IsRetryable(err))
	})

	t.Run("cancelled context is not retryable", func(t *testing.T) {
		stub := &upstreamStub{clientBody: `{"clientes":[]}`}
		c := newStubClient(t, stub)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.VerifyClientByCPF(ctx, testCPF, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, IsRetryable(err))
	})
}

func TestFake_Behavior(t *testing.T) {
	f := NewFake()
	f.AddClient(testCPF, ClientRecord{Name: "Alice", ServiceStatus: "Serviço Habilitado"})

	t.Run("verify seeded client", func(t *testing.T) {
		record, err := f.VerifyClientByCPF(context.Background(), testCPF, false)
		require.NoError(t, err)
		assert.Equal(t, "Alice", record.Name)
	})

	t.Run("unknown cpf not found", func(t *testing.T) {
		_, err := f.VerifyClientByCPF(context.Background(), "11144477735", false)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("ticket round trip", func(t *testing.T) {
		ref, err := f.CreateTicket(context.Background(), TicketPayload{ClientCPF: testCPF, Category: "connectivity"})
		require.NoError(t, err)
		require.NotEmpty(t, ref.UpstreamID)

		status, err := f.GetTicketStatus(context.Background(), ref.UpstreamID)
		require.NoError(t, err)
		assert.Equal(t, "aberto", status.Status)
	})

	t.Run("failure injection", func(t *testing.T) {
		f.FailNext(&APIError{StatusCode: 500, Code: "upstream_unavailable", Retryable: true})
		_, err := f.CheckHealth(context.Background())
		require.Error(t, err)
		assert.True(t, IsRetryable(err))

		_, err = f.CheckHealth(context.Background())
		require.NoError(t, err, "injected failure is consumed")
	})

	t.Run("call accounting", func(t *testing.T) {
		assert.GreaterOrEqual(t, f.CallCount("VerifyClientByCPF"), 2)
	})
}
