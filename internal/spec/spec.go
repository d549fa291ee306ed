// Package spec defines the TRAMO/SEATS specification handed to the
// decomposition engine, the named baseline specifications and the
// per-build processing context.
package spec

import (
	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/timeseries"
)

// TramoSeatsSpec is the complete specification of a TRAMO/SEATS run.
// Nil sub-specifications mean "engine default".
type TramoSeatsSpec struct {
	Tramo *TramoSpec `yaml:"tramo,omitempty"`
	Seats *SeatsSpec `yaml:"seats,omitempty"`
}

// TramoSpec is the pre-adjustment (regARIMA) part of the specification.
type TramoSpec struct {
	Transform  *TransformSpec  `yaml:"transform,omitempty"`
	Estimate   *EstimateSpec   `yaml:"estimate,omitempty"`
	Regression *RegressionSpec `yaml:"regression,omitempty"`
	Outliers   *OutlierSpec    `yaml:"outliers,omitempty"`
	AutoModel  *AutoModelSpec  `yaml:"automodel,omitempty"`
	Arima      *ArimaSpec      `yaml:"arima,omitempty"`
}

// TransformSpec selects the series transformation.
type TransformSpec struct {
	Function         domain.TransformFunction `yaml:"function"`
	Fct              float64                  `yaml:"fct"`
	PreliminaryCheck bool                     `yaml:"preliminary_check"`
}

// EstimateSpec holds the likelihood estimation options.
type EstimateSpec struct {
	Ubp  float64                    `yaml:"ubp"`
	Tol  float64                    `yaml:"tol"`
	EML  bool                       `yaml:"eml"`
	Span *timeseries.PeriodSelector `yaml:"span,omitempty"`
}

// RegressionSpec holds the calendar effects and the pre-specified outliers.
type RegressionSpec struct {
	Calendar *CalendarSpec       `yaml:"calendar,omitempty"`
	Outliers []OutlierDefinition `yaml:"outliers,omitempty"`
}

// Add appends an outlier definition. Duplicates are kept.
func (r *RegressionSpec) Add(o OutlierDefinition) {
	r.Outliers = append(r.Outliers, o)
}

// CalendarSpec groups the calendar regressors.
type CalendarSpec struct {
	TradingDays *TradingDaysSpec `yaml:"tradingdays,omitempty"`
	Easter      *EasterSpec      `yaml:"easter,omitempty"`
}

// TradingDaysSpec configures the trading-day regressors.
type TradingDaysSpec struct {
	Type                domain.TradingDaysType       `yaml:"type"`
	AutomaticMethod     domain.TradingDaysAutoMethod `yaml:"automatic_method"`
	ProbabilityForFTest float64                      `yaml:"pftd"`
	LeapYear            bool                         `yaml:"leap_year"`
	StockTradingDays    int                          `yaml:"stock_trading_days"`
	Test                bool                         `yaml:"test"`
}

// EasterSpec configures the Easter regressor.
type EasterSpec struct {
	Option   domain.EasterType `yaml:"option"`
	Duration int               `yaml:"duration"`
	Julian   bool              `yaml:"julian"`
	Test     bool              `yaml:"test"`
}

// OutlierDefinition is a pre-specified outlier at a given period.
type OutlierDefinition struct {
	Position timeseries.Period `yaml:"position"`
	Code     string            `yaml:"code"`
}

// OutlierSpec configures automatic outlier detection.
type OutlierSpec struct {
	Types         []domain.OutlierType       `yaml:"types,omitempty"`
	CriticalValue float64                    `yaml:"critical_value"`
	DeltaTC       float64                    `yaml:"delta_tc"`
	EML           bool                       `yaml:"eml"`
	Span          *timeseries.PeriodSelector `yaml:"span,omitempty"`
}

// Add enables detection of outliers of type t. Adding a type twice has no effect.
func (o *OutlierSpec) Add(t domain.OutlierType) {
	if o.Contains(t) {
		return
	}
	o.Types = append(o.Types, t)
}

// Contains reports whether detection of type t is enabled.
func (o *OutlierSpec) Contains(t domain.OutlierType) bool {
	for _, x := range o.Types {
		if x == t {
			return true
		}
	}
	return false
}

// IsUsed reports whether any outlier type is enabled.
func (o *OutlierSpec) IsUsed() bool {
	return o != nil && len(o.Types) > 0
}

// AutoModelSpec configures automatic ARIMA order selection.
type AutoModelSpec struct {
	Enabled       bool    `yaml:"enabled"`
	AcceptDefault bool    `yaml:"accept_default"`
	AmiCompare    bool    `yaml:"ami_compare"`
	Cancel        float64 `yaml:"cancel"`
	Ub1           float64 `yaml:"ub1"`
	Ub2           float64 `yaml:"ub2"`
	Tsig          float64 `yaml:"tsig"`
	Pc            float64 `yaml:"pc"`
	Pcr           float64 `yaml:"pcr"`
}

// Parameter is one ARIMA coefficient.
type Parameter struct {
	Value float64              `yaml:"value"`
	Type  domain.ParameterType `yaml:"type"`
}

// NewParameter creates a Parameter.
func NewParameter(value float64, t domain.ParameterType) *Parameter {
	return &Parameter{Value: value, Type: t}
}

// ArimaSpec is the ARIMA model (P,D,Q)(BP,BD,BQ). Coefficient slices are
// either nil (all estimated) or of length P, Q, BP and BQ; a nil element is
// an unset coefficient.
type ArimaSpec struct {
	P      int          `yaml:"p"`
	D      int          `yaml:"d"`
	Q      int          `yaml:"q"`
	BP     int          `yaml:"bp"`
	BD     int          `yaml:"bd"`
	BQ     int          `yaml:"bq"`
	Mean   bool         `yaml:"mean"`
	Phi    []*Parameter `yaml:"phi,omitempty"`
	Theta  []*Parameter `yaml:"theta,omitempty"`
	BPhi   []*Parameter `yaml:"bphi,omitempty"`
	BTheta []*Parameter `yaml:"btheta,omitempty"`
}

// NewAirline returns the airline model (0,1,1)(0,1,1).
func NewAirline() *ArimaSpec {
	return &ArimaSpec{D: 1, Q: 1, BD: 1, BQ: 1}
}

// HasFixedCoefficients reports whether any coefficient is fixed.
func (a *ArimaSpec) HasFixedCoefficients() bool {
	for _, group := range [][]*Parameter{a.Phi, a.Theta, a.BPhi, a.BTheta} {
		for _, p := range group {
			if p != nil && p.Type == domain.ParameterFixed {
				return true
			}
		}
	}
	return false
}

// SeatsSpec configures the SEATS decomposition.
type SeatsSpec struct {
	XlBoundary        float64                  `yaml:"xl_boundary"`
	TrendBoundary     float64                  `yaml:"trend_boundary"`
	SeasBoundary      float64                  `yaml:"seas_boundary"`
	SeasBoundary1     float64                  `yaml:"seas_boundary1"`
	SeasTolerance     float64                  `yaml:"seas_tolerance"`
	PredictionLength  int                      `yaml:"prediction_length"`
	ApproximationMode domain.ApproximationMode `yaml:"approximation_mode"`
	Method            domain.EstimationMethod  `yaml:"method"`
}
