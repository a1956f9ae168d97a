package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_MaskText(t *testing.T) {
	s := NewService()
	assert.Equal(t, 4, s.PatternCount())

	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "formatted cpf",
			in:   "cliente CPF 529.982.247-25 verificado",
			want: "cliente CPF 529.982.***-** verificado",
		},
		{
			name: "bare cpf",
			in:   "cpf=52998224725",
			want: "cpf=529.982.***-**",
		},
		{
			name: "email",
			in:   "contato: joao.silva@example.com.br",
			want: "contato: j***@example.com.br",
		},
		{
			name: "phone",
			in:   "ligar para (11) 98765-4321 amanhã",
			want: "ligar para [telefone] amanhã",
		},
		{
			name: "multiple occurrences",
			in:   "529.982.247-25 e 111.444.777-35",
			want: "529.982.***-** e 111.444.***-**",
		},
		{
			name: "clean text untouched",
			in:   "protocolo LOC001234 aberto",
			want: "protocolo LOC001234 aberto",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.MaskText(tc.in))
		})
	}
}

func TestService_MaskedFormNeverContainsFullCPF(t *testing.T) {
	s := NewService()
	out := s.MaskText("o CPF do cliente é 52998224725, repetido 529.982.247-25")
	assert.NotContains(t, out, "52998224725")
	assert.NotContains(t, out, "247-25")
}
