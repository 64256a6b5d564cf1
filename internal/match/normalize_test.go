package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PCF", "pcf"},
		{"Product Carbon Footprint", "productcarbonfootprint"},
		{"Product (Carbon) Footprint", "productcarbonfootprint"},
		{"Technological DQR", "technologicaldqr"},
		{"partner_product-ID", "partnerproductid"},
		{"CO2e (kg) total", "co2ekgtotal"},
		{"Größe", "gre"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Equivalences(t *testing.T) {
	assert.Equal(t, Normalize("Product Carbon Footprint"), Normalize("Product (Carbon) Footprint"))
	assert.Equal(t, "pcf", Normalize("PCF"))
}

func TestNormalizeBase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Product Carbon Footprint (PCF)", "productcarbonfootprint"},
		{"CO2e (kg) total", "co2etotal"},
		{"unbalanced (paren", "unbalanced"},
		{"(only)", ""},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeBase(tt.input))
		})
	}
}

func TestNameKeys(t *testing.T) {
	assert.Equal(t, []string{"productcarbonfootprintpcf", "productcarbonfootprint"},
		NameKeys("Product Carbon Footprint (PCF)"))
	assert.Equal(t, []string{"pcf"}, NameKeys("PCF"))
	assert.Equal(t, []string{"only"}, NameKeys("(only)"))
	assert.Nil(t, NameKeys("()"))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"dataQualityRating (DQR)", []string{"data", "quality", "rating"}},
		{"The PCF value, in kg", []string{"the", "pcf", "value", "in", "kg"}},
		{"PCFRating", []string{"pcf", "rating"}},
		{"co2 emissions", []string{"co2", "emissions"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"technologicalDQR", []string{"technological", "DQR"}},
		{"PCFRating", []string{"PCF", "Rating"}},
		{"attestationType", []string{"attestation", "Type"}},
		{"lower", []string{"lower"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizeCamelCase(tt.input))
		})
	}
}
