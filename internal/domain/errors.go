package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes of the specification builder.
var (
	// ErrSpecificationParse is returned when a baseline specification cannot be parsed.
	ErrSpecificationParse = errors.New("specification parse error")

	// ErrInvalidEnumValue is returned when a categorical field holds an unknown value.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrValidation marks non-fatal data-integrity problems in the configuration.
	ErrValidation = errors.New("validation warning")

	// ErrDateParse marks a date string that could not be parsed.
	ErrDateParse = errors.New("date parse error")
)

// SpecificationParseError wraps ErrSpecificationParse with the offending input.
type SpecificationParseError struct {
	Input string
	Err   error
}

func (e *SpecificationParseError) Error() string {
	msg := "cannot parse specification " + quoteShort(e.Input)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SpecificationParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSpecificationParse}
	}
	return []error{ErrSpecificationParse, e.Err}
}

// NewSpecificationParseError creates a new SpecificationParseError.
func NewSpecificationParseError(input string, err error) *SpecificationParseError {
	return &SpecificationParseError{Input: input, Err: err}
}

// InvalidEnumValueError wraps ErrInvalidEnumValue with the field and its allowed values.
type InvalidEnumValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *InvalidEnumValueError) Unwrap() error {
	return ErrInvalidEnumValue
}

// NewInvalidEnumValueError creates a new InvalidEnumValueError.
func NewInvalidEnumValueError(field, value string, allowed []string) *InvalidEnumValueError {
	return &InvalidEnumValueError{Field: field, Value: value, Allowed: allowed}
}

// ValidationWarning wraps ErrValidation with the field concerned.
type ValidationWarning struct {
	Field   string
	Message string
}

func (e *ValidationWarning) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationWarning) Unwrap() error {
	return ErrValidation
}

// NewValidationWarning creates a new ValidationWarning.
func NewValidationWarning(field, format string, args ...interface{}) *ValidationWarning {
	return &ValidationWarning{Field: field, Message: fmt.Sprintf(format, args...)}
}

// DateParseError wraps ErrDateParse with the field and the rejected value.
type DateParseError struct {
	Field string
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	msg := fmt.Sprintf("%s: cannot parse date %q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DateParseError) Unwrap() error {
	return ErrDateParse
}

// NewDateParseError creates a new DateParseError.
func NewDateParseError(field, value string, err error) *DateParseError {
	return &DateParseError{Field: field, Value: value, Err: err}
}

func quoteShort(s string) string {
	const maxLen = 40
	s = strings.TrimSpace(s)
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return fmt.Sprintf("%q", s)
}
