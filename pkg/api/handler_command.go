package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasfibra/backoffice/pkg/commands"
	"github.com/atlasfibra/backoffice/pkg/services"
)

// CommandRequest is the body of POST /api/v1/commands.
type CommandRequest struct {
	Command string          `json:"command" binding:"required"`
	Params  json.RawMessage `json:"params"`
}

// decode unmarshals command params into a concrete command record.
func decode[T commands.Command](raw json.RawMessage) (commands.Command, error) {
	var cmd T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &cmd); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

// decoders routes command names to their record types. One entry per
// inbound operation.
var decoders = map[string]func(json.RawMessage) (commands.Command, error){
	"start_cpf_verification":        decode[commands.StartCPFVerification],
	"submit_cpf_for_verification":   decode[commands.SubmitCPFForVerification],
	"cancel_cpf_verification":       decode[commands.CancelCPFVerification],
	"process_expired_verifications": decode[commands.ProcessExpiredVerifications],
	"resolve_cpf_duplicate":         decode[commands.ResolveCPFDuplicate],

	"start_support_conversation": decode[commands.StartSupportConversation],
	"select_category":            decode[commands.SelectCategory],
	"select_game":                decode[commands.SelectGame],
	"select_timing":              decode[commands.SelectTiming],
	"set_description":            decode[commands.SetDescription],
	"add_attachment":             decode[commands.AddAttachment],
	"skip_attachments":           decode[commands.SkipAttachments],
	"confirm_and_create_ticket":  decode[commands.ConfirmAndCreateTicket],
	"cancel_conversation":        decode[commands.CancelConversation],

	"assign_ticket":                decode[commands.AssignTicket],
	"change_ticket_status":         decode[commands.ChangeTicketStatus],
	"elevate_ticket_urgency":       decode[commands.ElevateTicketUrgency],
	"close_ticket_with_resolution": decode[commands.CloseTicketWithResolution],
	"cancel_ticket":                decode[commands.CancelTicket],
	"add_ticket_message":           decode[commands.AddTicketMessage],

	"ban_user":   decode[commands.BanUser],
	"unban_user": decode[commands.UnbanUser],

	"schedule_hubsoft_integration":     decode[commands.ScheduleHubSoftIntegration],
	"sync_ticket_to_upstream":          decode[commands.SyncTicketToUpstream],
	"verify_user_in_upstream":          decode[commands.VerifyUserInUpstream],
	"fetch_client_data_from_upstream":  decode[commands.FetchClientDataFromUpstream],
	"update_ticket_status_in_upstream": decode[commands.UpdateTicketStatusInUpstream],
	"bulk_sync_tickets_to_upstream":    decode[commands.BulkSyncTicketsToUpstream],
	"retry_failed_integrations":        decode[commands.RetryFailedIntegrations],
	"force_retry_integration":          decode[commands.ForceRetryIntegration],
	"cancel_integration":               decode[commands.CancelIntegration],
	"update_integration_priority":      decode[commands.UpdateIntegrationPriority],
	"get_integration_status":           decode[commands.GetIntegrationStatus],
}

// commandHandler handles POST /api/v1/commands. The Result envelope is the
// body on both success and domain failure; HTTP status mirrors the outcome
// class so callers can branch without parsing.
func (s *Server) commandHandler(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, commands.Failure(commands.CodeInvalidInput))
		return
	}

	dec, ok := decoders[req.Command]
	if !ok {
		c.JSON(http.StatusBadRequest, commands.FailureWithData(
			commands.CodeInvalidInput, map[string]any{"command": req.Command}))
		return
	}
	cmd, err := dec(req.Params)
	if err != nil {
		c.JSON(http.StatusBadRequest, commands.Failure(commands.CodeInvalidInput))
		return
	}

	result := s.dispatcher.Execute(c.Request.Context(), cmd)
	c.JSON(httpStatus(result), result)
}

// notFoundCodes are rejections where the addressed entity does not exist.
var notFoundCodes = map[string]bool{
	services.CodeTicketNotFound:      true,
	services.CodeUserNotFound:        true,
	services.CodeIntegrationNotFound: true,
}

// badInputCodes are rejections of the request shape itself, as opposed to
// domain rules.
var badInputCodes = map[string]bool{
	commands.CodeInvalidInput:            true,
	commands.CodeInvalidVerificationType: true,
	services.CodeInvalidPriority:         true,
	services.CodeInvalidSyncType:         true,
	services.CodeMissingHubsoftID:        true,
	services.CodeEmptyTicketList:         true,
	services.CodeBulkLimitExceeded:       true,
}

// httpStatus maps a Result to an HTTP status code. Domain rule rejections
// are 422; the Result body is authoritative either way.
func httpStatus(r commands.Result) int {
	switch {
	case r.OK:
		return http.StatusOK
	case r.ErrorCode == commands.CodeSystemError:
		return http.StatusInternalServerError
	case r.ErrorCode == services.CodeRateLimited,
		r.ErrorCode == services.CodeUpstreamRateLimited:
		return http.StatusTooManyRequests
	case notFoundCodes[r.ErrorCode]:
		return http.StatusNotFound
	case badInputCodes[r.ErrorCode]:
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}
