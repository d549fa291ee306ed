// Package domain contains the configuration record and the enumerated value
// domains shared by the TRAMO/SEATS specification builder.
package domain

// TransformFunction is the series transformation applied before modelling.
type TransformFunction string

const (
	TransformNone TransformFunction = "None"
	TransformLog  TransformFunction = "Log"
	TransformAuto TransformFunction = "Auto"
)

// IsValid returns true if f is a valid TransformFunction.
func (f TransformFunction) IsValid() bool {
	switch f {
	case TransformNone, TransformLog, TransformAuto:
		return true
	default:
		return false
	}
}

// String returns the string representation of the function.
func (f TransformFunction) String() string {
	return string(f)
}

// TradingDaysType selects the calendar regressors.
type TradingDaysType string

const (
	TradingDaysNone        TradingDaysType = "None"
	TradingDaysTradingDays TradingDaysType = "TradingDays"
	TradingDaysWorkingDays TradingDaysType = "WorkingDays"
)

// IsValid returns true if t is a valid TradingDaysType.
func (t TradingDaysType) IsValid() bool {
	switch t {
	case TradingDaysNone, TradingDaysTradingDays, TradingDaysWorkingDays:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t TradingDaysType) String() string {
	return string(t)
}

// TradingDaysAutoMethod selects how trading-day regressors are pre-tested.
type TradingDaysAutoMethod string

const (
	AutoMethodUnused   TradingDaysAutoMethod = "Unused"
	AutoMethodFTest    TradingDaysAutoMethod = "FTest"
	AutoMethodWaldTest TradingDaysAutoMethod = "WaldTest"
)

// IsValid returns true if m is a valid TradingDaysAutoMethod.
func (m TradingDaysAutoMethod) IsValid() bool {
	switch m {
	case AutoMethodUnused, AutoMethodFTest, AutoMethodWaldTest:
		return true
	default:
		return false
	}
}

// String returns the string representation of the method.
func (m TradingDaysAutoMethod) String() string {
	return string(m)
}

// EasterType selects the Easter regressor.
type EasterType string

const (
	EasterUnused              EasterType = "Unused"
	EasterStandard            EasterType = "Standard"
	EasterIncludeEaster       EasterType = "IncludeEaster"
	EasterIncludeEasterMonday EasterType = "IncludeEasterMonday"
)

// IsValid returns true if t is a valid EasterType.
func (t EasterType) IsValid() bool {
	switch t {
	case EasterUnused, EasterStandard, EasterIncludeEaster, EasterIncludeEasterMonday:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t EasterType) String() string {
	return string(t)
}

// OutlierType is the code of an outlier kind.
type OutlierType string

const (
	OutlierAO OutlierType = "AO" // additive outlier
	OutlierLS OutlierType = "LS" // level shift
	OutlierTC OutlierType = "TC" // transitory change
	OutlierSO OutlierType = "SO" // seasonal outlier
)

// IsValid returns true if t is a valid OutlierType.
func (t OutlierType) IsValid() bool {
	switch t {
	case OutlierAO, OutlierLS, OutlierTC, OutlierSO:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t OutlierType) String() string {
	return string(t)
}

// ParameterType tells the estimation engine how to treat a coefficient.
type ParameterType string

const (
	ParameterUndefined ParameterType = "Undefined"
	ParameterEstimated ParameterType = "Estimated"
	ParameterFixed     ParameterType = "Fixed"
	ParameterInitial   ParameterType = "Initial"
	ParameterDerived   ParameterType = "Derived"
)

// IsValid returns true if t is a valid ParameterType.
func (t ParameterType) IsValid() bool {
	switch t {
	case ParameterUndefined, ParameterEstimated, ParameterFixed, ParameterInitial, ParameterDerived:
		return true
	default:
		return false
	}
}

// HasValue returns true if a parameter of this type carries a numeric value.
func (t ParameterType) HasValue() bool {
	return t == ParameterFixed || t == ParameterInitial || t == ParameterDerived
}

// String returns the string representation of the type.
func (t ParameterType) String() string {
	return string(t)
}

// ApproximationMode is the SEATS behaviour on inadmissible decompositions.
type ApproximationMode string

const (
	ApproximationNone   ApproximationMode = "None"
	ApproximationLegacy ApproximationMode = "Legacy"
	ApproximationNoisy  ApproximationMode = "Noisy"
)

// IsValid returns true if m is a valid ApproximationMode.
func (m ApproximationMode) IsValid() bool {
	switch m {
	case ApproximationNone, ApproximationLegacy, ApproximationNoisy:
		return true
	default:
		return false
	}
}

// String returns the string representation of the mode.
func (m ApproximationMode) String() string {
	return string(m)
}

// EstimationMethod is the SEATS component estimation algorithm.
type EstimationMethod string

const (
	EstimationBurman         EstimationMethod = "Burman"
	EstimationKalmanSmoother EstimationMethod = "KalmanSmoother"
	EstimationMcElroyMatrix  EstimationMethod = "McElroyMatrix"
)

// IsValid returns true if m is a valid EstimationMethod.
func (m EstimationMethod) IsValid() bool {
	switch m {
	case EstimationBurman, EstimationKalmanSmoother, EstimationMcElroyMatrix:
		return true
	default:
		return false
	}
}

// String returns the string representation of the method.
func (m EstimationMethod) String() string {
	return string(m)
}
