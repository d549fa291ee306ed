package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClasses(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{"parse", NewSpecificationParseError("RSAx", cause), ErrSpecificationParse, `"RSAx": boom`},
		{"parse without cause", NewSpecificationParseError("RSAx", nil), ErrSpecificationParse, `"RSAx"`},
		{"enum", NewInvalidEnumValueError("easter.type", "Bogus", []string{"Unused", "Standard"}), ErrInvalidEnumValue, "allowed: Unused, Standard"},
		{"validation", NewValidationWarning("usrdef.outliersDate", "%d dates, %d types", 3, 2), ErrValidation, "3 dates, 2 types"},
		{"date", NewDateParseError("estimate.from", "2020-13-01", cause), ErrDateParse, `"2020-13-01"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("mapping: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}

func TestSpecificationParseError_KeepsCause(t *testing.T) {
	cause := errors.New("yaml: line 1")
	err := NewSpecificationParseError("{", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestSpecificationParseError_TruncatesInput(t *testing.T) {
	long := "base: RSA0\ntramo:\n  arima:\n    p: 2\n    q: 1\n    bp: 0\n    bq: 0\n"
	err := NewSpecificationParseError(long, nil)
	assert.Contains(t, err.Error(), "...")
}

func TestInvalidEnumValueError_As(t *testing.T) {
	var err error = NewInvalidEnumValueError("seats.method", "Fast", nil)
	var target *InvalidEnumValueError
	if assert.True(t, errors.As(err, &target)) {
		assert.Equal(t, "seats.method", target.Field)
		assert.Equal(t, "Fast", target.Value)
	}
}
