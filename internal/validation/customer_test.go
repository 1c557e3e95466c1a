package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/pkg/ptr"
)

func TestCustomerInput(t *testing.T) {
	tests := []struct {
		name   string
		input  domain.CustomerInput
		fields map[string]string
	}{
		{
			name:   "valid without phone",
			input:  domain.CustomerInput{Name: "Ana García", Email: "ana@example.com"},
			fields: map[string]string{},
		},
		{
			name:   "valid with phone",
			input:  domain.CustomerInput{Name: "Ana García", Email: "ana@example.com", Phone: ptr.Ptr("+34 612 345 678")},
			fields: map[string]string{},
		},
		{
			name:   "empty name",
			input:  domain.CustomerInput{Name: "   ", Email: "ana@example.com"},
			fields: map[string]string{"name": "El nombre es obligatorio"},
		},
		{
			name:   "single-rune name",
			input:  domain.CustomerInput{Name: "A", Email: "ana@example.com"},
			fields: map[string]string{"name": "El nombre debe tener al menos 2 caracteres"},
		},
		{
			name:   "missing email",
			input:  domain.CustomerInput{Name: "Ana"},
			fields: map[string]string{"email": "El email es obligatorio"},
		},
		{
			name:   "malformed email",
			input:  domain.CustomerInput{Name: "Ana", Email: "ana@@example"},
			fields: map[string]string{"email": "Introduce un email válido"},
		},
		{
			name:   "phone with letters",
			input:  domain.CustomerInput{Name: "Ana", Email: "ana@example.com", Phone: ptr.Ptr("seis uno dos")},
			fields: map[string]string{"phone": "Introduce un teléfono válido"},
		},
		{
			name:   "phone too short",
			input:  domain.CustomerInput{Name: "Ana", Email: "ana@example.com", Phone: ptr.Ptr("612 345")},
			fields: map[string]string{"phone": "Introduce un teléfono válido"},
		},
		{
			name:   "blank phone is skipped",
			input:  domain.CustomerInput{Name: "Ana", Email: "ana@example.com", Phone: ptr.Ptr("  ")},
			fields: map[string]string{},
		},
		{
			name:  "everything wrong",
			input: domain.CustomerInput{Name: "", Email: "nope", Phone: ptr.Ptr("abc")},
			fields: map[string]string{
				"name":  "El nombre es obligatorio",
				"email": "Introduce un email válido",
				"phone": "Introduce un teléfono válido",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fields, CustomerInput(tt.input))
		})
	}
}
