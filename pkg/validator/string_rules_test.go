package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/censussample/pkg/validator"
)

var noRow validator.Record

func TestMandatory(t *testing.T) {
	rule := validator.Mandatory()

	t.Run("accepts non-empty value", func(t *testing.T) {
		assert.NoError(t, rule.Validate("a", noRow))
		assert.NoError(t, rule.Validate(" ", noRow))
	})

	t.Run("rejects empty value", func(t *testing.T) {
		err := rule.Validate("", noRow)
		assert.EqualError(t, err, "Empty mandatory value")
		assert.ErrorIs(t, err, validator.ErrInvalidValue)
	})
}

func TestMaxLength(t *testing.T) {
	rule := validator.MaxLength(10)

	t.Run("accepts values up to the bound", func(t *testing.T) {
		assert.NoError(t, rule.Validate(strings.Repeat("a", 9), noRow))
		assert.NoError(t, rule.Validate(strings.Repeat("a", 10), noRow))
	})

	t.Run("rejects longer values", func(t *testing.T) {
		err := rule.Validate(strings.Repeat("a", 11), noRow)
		assert.EqualError(t, err, "Value has length 11, exceeds maximum length of 10")
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		assert.NoError(t, validator.MaxLength(5).Validate("Ynysé", noRow))
	})

	t.Run("does not trim", func(t *testing.T) {
		assert.Error(t, validator.MaxLength(3).Validate(" abc", noRow))
	})

	t.Run("empty value is valid", func(t *testing.T) {
		assert.NoError(t, validator.MaxLength(5).Validate("", noRow))
		assert.NoError(t, validator.MaxLength(0).Validate("", noRow))
	})
}

func TestNoPaddingWhitespace(t *testing.T) {
	rule := validator.NoPaddingWhitespace()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain", "1 High Street", true},
		{"empty", "", true},
		{"leading space", " High Street", false},
		{"trailing space", "High Street ", false},
		{"trailing tab", "High Street\t", false},
		{"trailing newline", "High Street\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.value, noRow)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, "leading or trailing whitespace")
			}
		})
	}
}
