package domain

// NA is the placeholder producers write for a missing list entry.
const NA = "NA"

// ConfigModel is the flat, user-editable description of a seasonal-adjustment
// run. It is produced upstream and never modified by the builder. Optional
// values are pointers or slices; nil means the producer omitted them.
type ConfigModel struct {
	// Spec is the baseline specification, either a name such as "RSAfull" or
	// a YAML/JSON document. Nil or empty selects the default baseline.
	Spec      *string `json:"spec,omitempty" yaml:"spec,omitempty"`
	Frequency int     `json:"frequency" yaml:"frequency"`

	// Transform
	TransformFunction string  `json:"transform.function" yaml:"transform.function"`
	TransformFct      float64 `json:"transform.fct" yaml:"transform.fct"`
	PreliminaryCheck  bool    `json:"preliminary.check" yaml:"preliminary.check"`

	// Estimate
	EstimateFrom      *string `json:"estimate.from,omitempty" yaml:"estimate.from,omitempty"`
	EstimateTo        *string `json:"estimate.to,omitempty" yaml:"estimate.to,omitempty"`
	EstimateExclFirst int     `json:"estimate.exclFirst" yaml:"estimate.exclFirst"`
	EstimateExclLast  int     `json:"estimate.exclLast" yaml:"estimate.exclLast"`
	EstimateFirst     int     `json:"estimate.first" yaml:"estimate.first"`
	EstimateLast      int     `json:"estimate.last" yaml:"estimate.last"`
	EstimateTol       float64 `json:"estimate.tol" yaml:"estimate.tol"`
	EstimateURFinal   float64 `json:"estimate.urfinal" yaml:"estimate.urfinal"`
	EstimateEML       bool    `json:"estimate.eml" yaml:"estimate.eml"`

	// Trading days
	TradingDaysOption     *string `json:"tradingdays.option,omitempty" yaml:"tradingdays.option,omitempty"`
	TradingDaysAutoMethod string  `json:"tradingdays.mauto" yaml:"tradingdays.mauto"`
	TradingDaysPFTD       float64 `json:"tradingdays.pftd" yaml:"tradingdays.pftd"`
	TradingDaysLeapYear   bool    `json:"tradingdays.leapyear" yaml:"tradingdays.leapyear"`
	TradingDaysStockTD    int     `json:"tradingdays.stocktd" yaml:"tradingdays.stocktd"`
	TradingDaysTest       bool    `json:"tradingdays.test" yaml:"tradingdays.test"`

	// Easter
	EasterType     string `json:"easter.type" yaml:"easter.type"`
	EasterDuration int    `json:"easter.duration" yaml:"easter.duration"`
	EasterJulian   bool   `json:"easter.julian" yaml:"easter.julian"`
	EasterTest     bool   `json:"easter.test" yaml:"easter.test"`

	// User-defined outliers, parallel lists
	UserOutlierDates []string `json:"usrdef.outliersDate,omitempty" yaml:"usrdef.outliersDate,omitempty"`
	UserOutlierTypes []string `json:"usrdef.outliersType,omitempty" yaml:"usrdef.outliersType,omitempty"`

	// Automatic outlier detection
	OutlierEnabled   bool    `json:"outlier.enabled" yaml:"outlier.enabled"`
	OutlierFrom      *string `json:"outlier.from,omitempty" yaml:"outlier.from,omitempty"`
	OutlierTo        *string `json:"outlier.to,omitempty" yaml:"outlier.to,omitempty"`
	OutlierExclFirst int     `json:"outlier.exclFirst" yaml:"outlier.exclFirst"`
	OutlierExclLast  int     `json:"outlier.exclLast" yaml:"outlier.exclLast"`
	OutlierFirst     int     `json:"outlier.first" yaml:"outlier.first"`
	OutlierLast      int     `json:"outlier.last" yaml:"outlier.last"`
	OutlierAO        bool    `json:"outlier.ao" yaml:"outlier.ao"`
	OutlierTC        bool    `json:"outlier.tc" yaml:"outlier.tc"`
	OutlierLS        bool    `json:"outlier.ls" yaml:"outlier.ls"`
	OutlierSO        bool    `json:"outlier.so" yaml:"outlier.so"`
	OutlierCV        float64 `json:"outlier.cv" yaml:"outlier.cv"`
	OutlierUseDefCV  bool    `json:"outlier.usedefcv" yaml:"outlier.usedefcv"`
	OutlierEML       bool    `json:"outlier.eml" yaml:"outlier.eml"`
	OutlierTCRate    float64 `json:"outlier.tcrate" yaml:"outlier.tcrate"`

	// Automatic model identification
	AutoModelEnabled       bool    `json:"automdl.enabled" yaml:"automdl.enabled"`
	AutoModelAcceptDefault bool    `json:"automdl.acceptdefault" yaml:"automdl.acceptdefault"`
	AutoModelCompare       bool    `json:"automdl.compare" yaml:"automdl.compare"`
	AutoModelCancel        float64 `json:"automdl.cancel" yaml:"automdl.cancel"`
	AutoModelUB1           float64 `json:"automdl.ub1" yaml:"automdl.ub1"`
	AutoModelUB2           float64 `json:"automdl.ub2" yaml:"automdl.ub2"`
	AutoModelARMALimit     float64 `json:"automdl.armalimit" yaml:"automdl.armalimit"`
	AutoModelReduceCV      float64 `json:"automdl.reducecv" yaml:"automdl.reducecv"`
	AutoModelLjungBoxLimit float64 `json:"automdl.ljungboxlimit" yaml:"automdl.ljungboxlimit"`

	// ARIMA model
	ArimaMean        bool     `json:"arima.mu" yaml:"arima.mu"`
	ArimaP           int      `json:"arima.p" yaml:"arima.p"`
	ArimaD           int      `json:"arima.d" yaml:"arima.d"`
	ArimaQ           int      `json:"arima.q" yaml:"arima.q"`
	ArimaBP          int      `json:"arima.bp" yaml:"arima.bp"`
	ArimaBD          int      `json:"arima.bd" yaml:"arima.bd"`
	ArimaBQ          int      `json:"arima.bq" yaml:"arima.bq"`
	ArimaCoefEnabled bool     `json:"arima.coefEnabled" yaml:"arima.coefEnabled"`
	ArimaCoef        []string `json:"arima.coef,omitempty" yaml:"arima.coef,omitempty"`
	ArimaCoefType    []string `json:"arima.coefType,omitempty" yaml:"arima.coefType,omitempty"`

	// SEATS decomposition
	SeatsMABoundary       float64 `json:"seats.maBoundary" yaml:"seats.maBoundary"`
	SeatsTrendBoundary    float64 `json:"seats.trendBoundary" yaml:"seats.trendBoundary"`
	SeatsSeasBoundary     float64 `json:"seats.seasdBoundary" yaml:"seats.seasdBoundary"`
	SeatsSeasBoundary1    float64 `json:"seats.seasdBoundary1" yaml:"seats.seasdBoundary1"`
	SeatsSeasTolerance    float64 `json:"seats.seasTol" yaml:"seats.seasTol"`
	SeatsPredictionLength int     `json:"seats.predictionLength" yaml:"seats.predictionLength"`
	SeatsApproximation    string  `json:"seats.approx" yaml:"seats.approx"`
	SeatsMethod           string  `json:"seats.method" yaml:"seats.method"`
}

// Baseline returns the baseline specification string, or "" when none is set.
func (m *ConfigModel) Baseline() string {
	if m == nil || m.Spec == nil {
		return ""
	}
	return *m.Spec
}

// HasUserOutliers returns true if the model lists user-defined outliers.
func (m *ConfigModel) HasUserOutliers() bool {
	return len(m.UserOutlierDates) > 0 || len(m.UserOutlierTypes) > 0
}

// HasExplicitCoefficients returns true if explicit ARIMA coefficients are
// enabled and both parallel lists are present.
func (m *ConfigModel) HasExplicitCoefficients() bool {
	return m.ArimaCoefEnabled && m.ArimaCoef != nil && m.ArimaCoefType != nil
}
