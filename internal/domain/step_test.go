package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStep_Order(t *testing.T) {
	assert.True(t, StepCalendar.Before(StepService))
	assert.True(t, StepService.Before(StepSuccess))
	assert.False(t, StepSuccess.Before(StepCalendar))
	assert.False(t, StepCustomer.Before(StepCustomer))
}

func TestParseBookingStep(t *testing.T) {
	step, err := ParseBookingStep("confirmation")
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, step)

	_, err = ParseBookingStep("checkout")
	assert.Error(t, err)
}

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		first string
		last  string
	}{
		{name: "two tokens", input: "María García", first: "María", last: "García"},
		{name: "three tokens", input: "José Luis Rodríguez", first: "José", last: "Luis Rodríguez"},
		{name: "single token", input: "Madonna", first: "Madonna", last: ""},
		{name: "surrounding whitespace", input: "  Ana   Belén  ", first: "Ana", last: "Belén"},
		{name: "empty", input: "", first: "", last: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitFullName(tt.input)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}
