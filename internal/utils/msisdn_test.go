package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMSISDN_ValidForms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0100000000", ""}, // too short, 9 digits after the 0
		{"01000000000", "+201000000000"},
		{"+201000000000", "+201000000000"},
		{"201000000000", "+201000000000"},
		{"011 2345 6789", "+201123456789"},
		{"012-3456-7890", "+201234567890"},
		{"01512345678", "+201512345678"},
	}

	for _, tt := range tests {
		ok, formatted, err := ValidateMSISDN(tt.input)
		if tt.want == "" {
			assert.False(t, ok, "input %q should be invalid", tt.input)
			assert.Error(t, err)
			continue
		}
		assert.True(t, ok, "input %q should be valid", tt.input)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, formatted)
	}
}

func TestValidateMSISDN_InvalidPrefix(t *testing.T) {
	ok, _, err := ValidateMSISDN("01312345678")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("admin@karhabty.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.eg"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("@domain.com"))
}

func TestIsValidNationalID(t *testing.T) {
	assert.True(t, IsValidNationalID("29901011234567"))
	assert.False(t, IsValidNationalID("12345"))
	assert.False(t, IsValidNationalID("2990101123456X"))
}

func TestIsValidVIN(t *testing.T) {
	assert.True(t, IsValidVIN("1HGBH41JXMN109186"))
	assert.True(t, IsValidVIN("1hgbh41jxmn109186")) // case-insensitive
	assert.False(t, IsValidVIN("1HGBH41JXMN10918"))  // 16 chars
	assert.False(t, IsValidVIN("IHGBH41JXMN109186")) // contains I
}
