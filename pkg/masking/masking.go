// Package masking scrubs personal data (CPF, email, phone) from outbound
// text: notifications, audit log lines, and error messages.
package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns are applied in order; CPF patterns run before the phone
// sweep so bare 11-digit sequences get the CPF treatment.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
	description string
}{
	{
		name:        "cpf_formatted",
		pattern:     `\b(\d{3}\.\d{3})\.\d{3}-\d{2}\b`,
		replacement: `$1.***-**`,
		description: "Formatted CPF (NNN.NNN.NNN-NN)",
	},
	{
		name:        "cpf_bare",
		pattern:     `\b(\d{3})(\d{3})\d{3}\d{2}\b`,
		replacement: `$1.$2.***-**`,
		description: "Bare 11-digit CPF",
	},
	{
		name:        "email",
		pattern:     `\b([A-Za-z0-9._%+\-])[A-Za-z0-9._%+\-]*@([A-Za-z0-9.\-]+\.[A-Za-z]{2,})\b`,
		replacement: `$1***@$2`,
		description: "Email address",
	},
	{
		name:        "phone_br",
		pattern:     `\(\d{2}\)\s?9?\d{4}-?\d{4}\b`,
		replacement: `[telefone]`,
		description: "Brazilian phone number with area code",
	},
}

// Service applies personal-data masking to outbound text. Created once at
// application startup. Thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	patterns []*CompiledPattern
}

// NewService compiles the built-in patterns eagerly. Invalid patterns are
// logged and skipped.
func NewService() *Service {
	s := &Service{}
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        p.name,
			Regex:       compiled,
			Replacement: p.replacement,
			Description: p.description,
		})
	}

	slog.Info("Masking service initialized", "patterns", len(s.patterns))
	return s
}

// MaskText applies every pattern in order and returns the scrubbed text.
func (s *Service) MaskText(content string) string {
	if content == "" {
		return content
	}
	masked := content
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// PatternCount reports how many patterns compiled.
func (s *Service) PatternCount() int {
	return len(s.patterns)
}
