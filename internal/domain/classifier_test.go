package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_IsAddOn(t *testing.T) {
	c := DefaultClassifier()

	tests := []struct {
		name     string
		service  string
		expected bool
	}{
		{name: "basic wash is main", service: "Limpieza Básica - Turismo Pequeño", expected: false},
		{name: "upholstery is add-on", service: "Limpieza de Tapicerías (por plaza)", expected: true},
		{name: "headlight polishing is add-on", service: "Pulido de Faros", expected: true},
		{name: "pet hair supplement is add-on", service: "Suplemento Pelos de Animal / Suciedad Extrema", expected: true},
		{name: "case insensitive match", service: "SUPLEMENTO ESPECIAL", expected: true},
		{name: "keyword as substring", service: "Tratamiento extraordinario", expected: true},
		{name: "unrelated name is main", service: "Encerado Premium", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.IsAddOn(Service{Name: tt.service})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassifier_CategoryOf(t *testing.T) {
	c := DefaultClassifier()

	tests := []struct {
		service  string
		expected string
	}{
		{service: "Limpieza Básica - Turismo Pequeño", expected: "Turismos Pequeños"},
		{service: "Limpieza Completa - Turismo Grande", expected: "Turismos Grandes"},
		{service: "Limpieza Integral - Todo Terreno/Monovolumen", expected: "Todo Terreno / Monovolumen"},
		{service: "Pulido de Faros", expected: "Servicios Adicionales"},
		{service: "Encerado Premium", expected: "Otros"},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			got := c.CategoryOf(Service{Name: tt.service})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassifier_Split(t *testing.T) {
	c := DefaultClassifier()

	services := []Service{
		{ID: "s1", Name: "Limpieza Básica - Turismo Pequeño"},
		{ID: "s10", Name: "Limpieza de Tapicerías (por plaza)"},
		{ID: "s2", Name: "Limpieza Completa - Turismo Grande"},
		{ID: "s11", Name: "Pulido de Faros"},
	}

	main, addOns := c.Split(services)

	assert.Equal(t, []string{"s1", "s2"}, serviceIDs(main))
	assert.Equal(t, []string{"s10", "s11"}, serviceIDs(addOns))
}

func TestClassifier_CustomKeywords(t *testing.T) {
	c := NewClassifier(
		[]string{"addon"},
		[]CategoryRule{{Name: "Small", Keywords: []string{"small"}}},
		"Extras", "Uncategorized",
	)

	assert.True(t, c.IsAddOn(Service{Name: "Wheel Addon"}))
	assert.Equal(t, "Small", c.CategoryOf(Service{Name: "Small wash"}))
	assert.Equal(t, "Extras", c.CategoryOf(Service{Name: "Wheel Addon"}))
	assert.Equal(t, "Uncategorized", c.CategoryOf(Service{Name: "Mystery"}))
}

func serviceIDs(services []Service) []string {
	ids := make([]string, len(services))
	for i, s := range services {
		ids[i] = s.ID
	}
	return ids
}
