package spec

import "github.com/saltfish/tramoseats/internal/domain"

// Engine defaults applied to newly created sub-specifications.
const (
	DefaultFct              = 0.95
	DefaultTol              = 1e-7
	DefaultUbp              = 0.96
	DefaultPFTD             = 0.01
	DefaultEasterDuration   = 6
	DefaultDeltaTC          = 0.7
	DefaultCancel           = 0.05
	DefaultUb1              = 0.97
	DefaultUb2              = 0.91
	DefaultTsig             = 1.0
	DefaultPc               = 0.12
	DefaultPcr              = 0.95
	DefaultXlBoundary       = 0.95
	DefaultTrendBoundary    = 0.5
	DefaultSeasBoundary     = 0.8
	DefaultSeasBoundary1    = 0.8
	DefaultSeasTolerance    = 2.0
	DefaultPredictionLength = -1
)

// NewTransformSpec returns a transform specification with engine defaults.
func NewTransformSpec() *TransformSpec {
	return &TransformSpec{Function: domain.TransformNone, Fct: DefaultFct}
}

// NewEstimateSpec returns an estimate specification with engine defaults.
func NewEstimateSpec() *EstimateSpec {
	return &EstimateSpec{Ubp: DefaultUbp, Tol: DefaultTol, EML: true}
}

// NewTradingDaysSpec returns a trading-days specification without regressors.
func NewTradingDaysSpec() *TradingDaysSpec {
	return &TradingDaysSpec{
		Type:                domain.TradingDaysNone,
		AutomaticMethod:     domain.AutoMethodUnused,
		ProbabilityForFTest: DefaultPFTD,
	}
}

// NewEasterSpec returns an unused Easter specification.
func NewEasterSpec() *EasterSpec {
	return &EasterSpec{Option: domain.EasterUnused, Duration: DefaultEasterDuration}
}

// NewOutlierSpec returns an outlier specification with no enabled type.
func NewOutlierSpec() *OutlierSpec {
	return &OutlierSpec{DeltaTC: DefaultDeltaTC, EML: false}
}

// NewAutoModelSpec returns a disabled automatic model specification.
func NewAutoModelSpec() *AutoModelSpec {
	return &AutoModelSpec{
		Cancel: DefaultCancel,
		Ub1:    DefaultUb1,
		Ub2:    DefaultUb2,
		Tsig:   DefaultTsig,
		Pc:     DefaultPc,
		Pcr:    DefaultPcr,
	}
}

// NewSeatsSpec returns a SEATS specification with engine defaults.
func NewSeatsSpec() *SeatsSpec {
	return &SeatsSpec{
		XlBoundary:        DefaultXlBoundary,
		TrendBoundary:     DefaultTrendBoundary,
		SeasBoundary:      DefaultSeasBoundary,
		SeasBoundary1:     DefaultSeasBoundary1,
		SeasTolerance:     DefaultSeasTolerance,
		PredictionLength:  DefaultPredictionLength,
		ApproximationMode: domain.ApproximationNone,
		Method:            domain.EstimationBurman,
	}
}

// The Ensure methods return a sub-specification, creating it with engine
// defaults first when it is missing.

// EnsureTramo returns s.Tramo, creating it if needed.
func (s *TramoSeatsSpec) EnsureTramo() *TramoSpec {
	if s.Tramo == nil {
		s.Tramo = &TramoSpec{}
	}
	return s.Tramo
}

// EnsureSeats returns s.Seats, creating it if needed.
func (s *TramoSeatsSpec) EnsureSeats() *SeatsSpec {
	if s.Seats == nil {
		s.Seats = NewSeatsSpec()
	}
	return s.Seats
}

// EnsureTransform returns t.Transform, creating it if needed.
func (t *TramoSpec) EnsureTransform() *TransformSpec {
	if t.Transform == nil {
		t.Transform = NewTransformSpec()
	}
	return t.Transform
}

// EnsureEstimate returns t.Estimate, creating it if needed.
func (t *TramoSpec) EnsureEstimate() *EstimateSpec {
	if t.Estimate == nil {
		t.Estimate = NewEstimateSpec()
	}
	return t.Estimate
}

// EnsureRegression returns t.Regression, creating it if needed.
func (t *TramoSpec) EnsureRegression() *RegressionSpec {
	if t.Regression == nil {
		t.Regression = &RegressionSpec{}
	}
	return t.Regression
}

// EnsureCalendar returns the calendar of the regression, creating both if needed.
func (t *TramoSpec) EnsureCalendar() *CalendarSpec {
	r := t.EnsureRegression()
	if r.Calendar == nil {
		r.Calendar = &CalendarSpec{}
	}
	return r.Calendar
}

// EnsureTradingDays returns the trading-days specification, creating it if needed.
func (t *TramoSpec) EnsureTradingDays() *TradingDaysSpec {
	c := t.EnsureCalendar()
	if c.TradingDays == nil {
		c.TradingDays = NewTradingDaysSpec()
	}
	return c.TradingDays
}

// EnsureEaster returns the Easter specification, creating it if needed.
func (t *TramoSpec) EnsureEaster() *EasterSpec {
	c := t.EnsureCalendar()
	if c.Easter == nil {
		c.Easter = NewEasterSpec()
	}
	return c.Easter
}

// EnsureOutliers returns t.Outliers, creating it if needed.
func (t *TramoSpec) EnsureOutliers() *OutlierSpec {
	if t.Outliers == nil {
		t.Outliers = NewOutlierSpec()
	}
	return t.Outliers
}

// EnsureAutoModel returns t.AutoModel, creating it if needed.
func (t *TramoSpec) EnsureAutoModel() *AutoModelSpec {
	if t.AutoModel == nil {
		t.AutoModel = NewAutoModelSpec()
	}
	return t.AutoModel
}

// EnsureArima returns t.Arima, creating the airline model if needed.
func (t *TramoSpec) EnsureArima() *ArimaSpec {
	if t.Arima == nil {
		t.Arima = NewAirline()
	}
	return t.Arima
}
