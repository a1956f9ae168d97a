package commands

import "github.com/atlasfibra/backoffice/pkg/services"

// userMessages maps stable error codes to the Portuguese strings relayed to
// end users. The chat adapter shows these verbatim; codes are what callers
// branch on.
var userMessages = map[string]string{
	services.CodeInvalidCPFFormat:           "CPF inválido. Confira os 11 dígitos e tente novamente.",
	services.CodeCPFDuplicate:               "Este CPF já está vinculado a outra conta. O caso foi encaminhado para análise.",
	services.CodeCPFNotFound:                "Não encontramos um contrato ativo para este CPF.",
	services.CodeCannotAttempt:              "Esta verificação não aceita mais tentativas.",
	services.CodeVerificationAlreadyPending: "Você já tem uma verificação em andamento.",
	services.CodeNoPendingVerification:      "Nenhuma verificação em andamento. Inicie uma nova para continuar.",
	services.CodeRateLimited:                "Limite de tentativas atingido. Aguarde antes de tentar novamente.",
	services.CodeCannotCancelTerminal:       "Esta operação já foi finalizada e não pode ser cancelada.",
	services.CodeUpstreamUnavailable:        "O sistema do provedor está indisponível no momento. Tente novamente em instantes.",
	services.CodeUpstreamRateLimited:        "O sistema do provedor está limitando requisições. Tente novamente em instantes.",
	services.CodeUpstreamNotFound:           "O registro não foi encontrado no sistema do provedor.",
	services.CodeUpstreamConflict:           "O sistema do provedor recusou a operação por conflito.",

	services.CodeConversationAlreadyActive: "Você já tem um atendimento em andamento.",
	services.CodeConversationNotFound:      "Nenhum atendimento em andamento.",
	services.CodeUserNotVerified:           "Verifique seu CPF antes de abrir um chamado.",
	services.CodeConversationStepMismatch:  "Essa ação não é válida nesta etapa do atendimento.",
	services.CodeDescriptionTooShort:       "Descreva o problema com um pouco mais de detalhes.",
	services.CodeAttachmentLimitReached:    "Limite de anexos atingido.",

	services.CodeTicketNotFound:    "Chamado não encontrado.",
	services.CodeInvalidTransition: "Mudança de status não permitida para este chamado.",
	services.CodeResolutionMissing: "Informe a resolução para fechar o chamado.",
	services.CodeAlreadySynced:     "Este chamado já foi sincronizado.",

	services.CodeUserNotFound:      "Usuário não encontrado.",
	services.CodeUserAlreadyBanned: "Este usuário já está banido.",
	services.CodeUserNotBanned:     "Este usuário não está banido.",
	services.CodeCannotBanSelf:     "Você não pode banir a si mesmo.",
	services.CodeNotAdmin:          "Apenas administradores podem executar esta ação.",

	services.CodeIntegrationNotFound: "Integração não encontrada.",
	services.CodeInvalidPriority:     "Prioridade inválida.",
	services.CodeInvalidSyncType:     "Tipo de integração inválido.",
	services.CodeMissingHubsoftID:    "O chamado ainda não tem identificador no HubSoft.",
	services.CodeEmptyTicketList:     "Informe ao menos um chamado.",
	services.CodeBulkLimitExceeded:   "Quantidade de chamados acima do limite por lote.",
	services.CodeCannotCancelRunning: "A integração está em execução e não pode ser cancelada.",
	services.CodeRetriesNotExhausted: "A integração ainda tem tentativas automáticas pendentes.",
	services.CodeScheduleError:       "Não foi possível agendar a integração.",
	services.CodeRetryError:          "Não foi possível reenfileirar a integração.",
	services.CodeCancelError:         "Não foi possível cancelar a integração.",

	CodeInvalidVerificationType: "Tipo de verificação inválido.",
	CodeInvalidInput:            "Dados inválidos. Confira os campos e tente novamente.",
	CodeSystemError:             "Erro interno. Nossa equipe já foi notificada.",
}

// UserMessage returns the Portuguese message for a code, falling back to the
// system_error string for unregistered codes.
func UserMessage(code string) string {
	if msg, ok := userMessages[code]; ok {
		return msg
	}
	return userMessages[CodeSystemError]
}
