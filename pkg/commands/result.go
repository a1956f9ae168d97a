package commands

// Result is the envelope every handler answers with. Success and failure
// are both normal return values; handlers never panic for domain reasons.
type Result struct {
	OK        bool           `json:"ok"`
	Message   string         `json:"message,omitempty"`
	ErrorCode string         `json:"error_code,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// Codes owned by the command layer. Domain codes live in pkg/services.
const (
	CodeInvalidVerificationType = "invalid_verification_type"
	CodeInvalidInput            = "invalid_input"
	CodeSystemError             = "system_error"
)

// Success builds an OK result with an optional data map.
func Success(message string, data map[string]any) Result {
	return Result{OK: true, Message: message, Data: data}
}

// Failure builds a failed result. The message is the user-facing Portuguese
// string registered for the code.
func Failure(code string) Result {
	return Result{OK: false, ErrorCode: code, Message: UserMessage(code)}
}

// FailureWithData builds a failed result carrying extra context, such as
// attempts_left on a rejected CPF submission.
func FailureWithData(code string, data map[string]any) Result {
	r := Failure(code)
	r.Data = data
	return r
}
