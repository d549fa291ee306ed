package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saltfish/tramoseats/internal/spec"
	"github.com/saltfish/tramoseats/internal/timeseries"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "validation errors: " + strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[cfg.Env] {
		errs = append(errs, ValidationError{
			Field:   "env",
			Message: "must be one of: development, staging, production, test",
		})
	}

	errs = append(errs, validateBuilder(&cfg.Builder)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateBuilder(b *BuilderConfig) ValidationErrors {
	var errs ValidationErrors

	if !spec.IsBaseline(b.DefaultBaseline) {
		errs = append(errs, ValidationError{
			Field:   "builder.default_baseline",
			Message: "must be one of: " + strings.Join(spec.BaselineNames(), ", "),
		})
	}

	if !timeseries.Frequency(b.DefaultFrequency).IsValid() {
		errs = append(errs, ValidationError{
			Field:   "builder.default_frequency",
			Message: "must be one of: 1, 2, 3, 4, 6, 12",
		})
	}

	if b.DefaultCriticalValue <= 0 {
		errs = append(errs, ValidationError{
			Field:   "builder.default_critical_value",
			Message: "must be greater than 0",
		})
	}

	return errs
}

func validateLogging(l *LoggingConfig) ValidationErrors {
	var errs ValidationErrors

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: "must be one of: debug, info, warn, error",
		})
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}
	if !validFormats[l.Format] {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: "must be one of: json, console",
		})
	}

	return errs
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve ValidationError
	var ves ValidationErrors
	return errors.As(err, &ve) || errors.As(err, &ves)
}
