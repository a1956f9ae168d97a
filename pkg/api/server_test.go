package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/pkg/commands"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/database"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/services"
	"github.com/atlasfibra/backoffice/test/util"
)

func newTestServer(t *testing.T) (*Server, *hubsoft.Fake) {
	client, db := util.SetupTestDatabase(t)
	bus := events.NewBus(4, 5*time.Second)
	hub := hubsoft.NewFake()

	users := services.NewUserService(client, bus)
	dupes := services.NewDuplicateService(client, bus)
	verifications := services.NewVerificationService(
		client, bus, hub, users, dupes, config.DefaultVerificationConfig(), "test-salt")
	integrations := services.NewIntegrationService(client, bus)
	conversations := services.NewConversationService(
		client, bus, integrations, config.DefaultConversationConfig())
	tickets := services.NewTicketService(client, bus, hub)

	dispatcher := commands.NewDispatcher(verifications, conversations, tickets, users, dupes, integrations)
	return NewServer(dispatcher, database.NewClientFromEnt(client, db), nil), hub
}

func post(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) commands.Result {
	t.Helper()
	var res commands.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestCommandEndpoint(t *testing.T) {
	s, hub := newTestServer(t)
	hub.AddClient("11144477735", hubsoft.ClientRecord{
		Name:          "Maria Souza",
		ServiceStatus: "Serviço Habilitado",
	})

	t.Run("malformed body", func(t *testing.T) {
		w := post(t, s, `{"command":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown command", func(t *testing.T) {
		w := post(t, s, `{"command":"make_coffee"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decodeResult(t, w)
		assert.False(t, res.OK)
		assert.Equal(t, commands.CodeInvalidInput, res.ErrorCode)
	})

	t.Run("validation failure", func(t *testing.T) {
		w := post(t, s, `{"command":"start_cpf_verification","params":{"username":"maria"}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decodeResult(t, w)
		assert.Equal(t, commands.CodeInvalidInput, res.ErrorCode)
	})

	t.Run("domain rejection is 422", func(t *testing.T) {
		w := post(t, s, `{"command":"submit_cpf_for_verification","params":{"user_id":5,"cpf":"11144477735"}}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		res := decodeResult(t, w)
		assert.Equal(t, services.CodeNoPendingVerification, res.ErrorCode)
		assert.NotEmpty(t, res.Message)
	})

	t.Run("successful flow", func(t *testing.T) {
		w := post(t, s, `{"command":"start_cpf_verification","params":{"user_id":1,"username":"maria","verification_type":"support_request"}}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		res := decodeResult(t, w)
		require.True(t, res.OK)
		assert.EqualValues(t, 3, res.Data["attempts_left"])

		w = post(t, s, `{"command":"submit_cpf_for_verification","params":{"user_id":1,"cpf":"11144477735"}}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		res = decodeResult(t, w)
		require.True(t, res.OK)
		assert.Equal(t, "111.444.***-**", res.Data["cpf_masked"])
	})

	t.Run("not found is 404", func(t *testing.T) {
		w := post(t, s, `{"command":"get_integration_status","params":{"integration_id":"missing"}}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, healthStatusHealthy, res.Status)
	assert.Equal(t, healthStatusHealthy, res.Checks["database"].Status)
	assert.NotEmpty(t, res.Version)

	t.Run("security headers set", func(t *testing.T) {
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})
}

func TestQueueHealthEndpoint_NoPool(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/queue/health", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
