package builder

import (
	"strings"

	"github.com/saltfish/tramoseats/internal/domain"
)

// unknownPolicy decides what an unrecognized value does to the build.
type unknownPolicy int

const (
	// failOnUnknown aborts the section with an InvalidEnumValueError.
	failOnUnknown unknownPolicy = iota
	// warnOnUnknown records a ValidationWarning and leaves the field untouched.
	warnOnUnknown
)

// lookupEntry is one recognized string. keep marks values that are accepted
// but leave the target field as it is.
type lookupEntry[T any] struct {
	key   string
	value T
	keep  bool
}

func set[T any](key string, value T) lookupEntry[T] {
	return lookupEntry[T]{key: key, value: value}
}

func keep[T any](key string) lookupEntry[T] {
	return lookupEntry[T]{key: key, keep: true}
}

// lookup resolves the strings of one enumerated domain.
type lookup[T any] struct {
	field   string
	policy  unknownPolicy
	entries map[string]lookupEntry[T]
	allowed []string
}

func newLookup[T any](field string, policy unknownPolicy, entries ...lookupEntry[T]) *lookup[T] {
	l := &lookup[T]{
		field:   field,
		policy:  policy,
		entries: make(map[string]lookupEntry[T], len(entries)),
	}
	for _, e := range entries {
		l.entries[e.key] = e
		l.allowed = append(l.allowed, e.key)
	}
	return l
}

// resolve returns the variant for s and whether the target field should be
// set. Warnings are appended to warnings; the returned error is fatal.
//
// An empty or blank s is not a variant: it means the field was not supplied,
// so resolve reports ok=false and the target keeps its baseline value under
// either policy.
func (l *lookup[T]) resolve(s string, warnings *[]error) (T, bool, error) {
	var zero T
	s = strings.TrimSpace(s)
	if s == "" {
		return zero, false, nil
	}

	e, ok := l.entries[s]
	if !ok {
		if l.policy == warnOnUnknown {
			*warnings = append(*warnings, domain.NewValidationWarning(l.field,
				"unknown value %q, allowed: %s; field left unchanged", s, strings.Join(l.allowed, ", ")))
			return zero, false, nil
		}
		return zero, false, domain.NewInvalidEnumValueError(l.field, s, l.allowed)
	}
	if e.keep {
		return zero, false, nil
	}
	return e.value, true, nil
}

var transformFunctions = newLookup("transform.function", failOnUnknown,
	set("None", domain.TransformNone),
	set("Log", domain.TransformLog),
	set("Auto", domain.TransformAuto),
)

// UserDefined keeps the current type: the regressors are supplied to the engine separately.
var tradingDaysModes = newLookup("tradingdays.option", warnOnUnknown,
	set("TradingDays", domain.TradingDaysTradingDays),
	set("WorkingDays", domain.TradingDaysWorkingDays),
	keep[domain.TradingDaysType]("UserDefined"),
	set("None", domain.TradingDaysNone),
	set(domain.NA, domain.TradingDaysNone),
)

var tradingDaysAutoMethods = newLookup("tradingdays.mauto", failOnUnknown,
	set("Unused", domain.AutoMethodUnused),
	set("FTest", domain.AutoMethodFTest),
	set("WaldTest", domain.AutoMethodWaldTest),
)

var easterTypes = newLookup("easter.type", failOnUnknown,
	set("Unused", domain.EasterUnused),
	set("Standard", domain.EasterStandard),
	set("IncludeEaster", domain.EasterIncludeEaster),
	set("IncludeEasterMonday", domain.EasterIncludeEasterMonday),
)

// Undefined coefficients are estimated by the engine.
var coefficientKinds = newLookup("arima.coefType", warnOnUnknown,
	set("Undefined", domain.ParameterEstimated),
	set("Fixed", domain.ParameterFixed),
	set("Initial", domain.ParameterInitial),
	set("Derived", domain.ParameterDerived),
)

var approximationModes = newLookup("seats.approx", failOnUnknown,
	set("None", domain.ApproximationNone),
	set("Legacy", domain.ApproximationLegacy),
	set("Noisy", domain.ApproximationNoisy),
)

var estimationMethods = newLookup("seats.method", failOnUnknown,
	set("Burman", domain.EstimationBurman),
	set("KalmanSmoother", domain.EstimationKalmanSmoother),
	set("McElroyMatrix", domain.EstimationMcElroyMatrix),
)
