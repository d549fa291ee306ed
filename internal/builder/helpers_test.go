package builder

import (
	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/spec"
	"github.com/saltfish/tramoseats/internal/timeseries"
)

func strPtr(s string) *string {
	return &s
}

// validModel returns a model every mapper accepts without diagnostics.
func validModel() *domain.ConfigModel {
	return &domain.ConfigModel{
		Spec:      strPtr(spec.RSAfull),
		Frequency: 12,

		TransformFunction: "Log",
		TransformFct:      0.95,
		PreliminaryCheck:  true,

		EstimateTol:     1e-7,
		EstimateURFinal: 0.96,
		EstimateEML:     true,

		TradingDaysOption:     strPtr("WorkingDays"),
		TradingDaysAutoMethod: "FTest",
		TradingDaysPFTD:       0.01,
		TradingDaysLeapYear:   true,
		TradingDaysTest:       true,

		EasterType:     "IncludeEaster",
		EasterDuration: 8,
		EasterTest:     true,

		OutlierEnabled: true,
		OutlierAO:      true,
		OutlierTC:      true,
		OutlierLS:      true,
		OutlierTCRate:  0.7,

		AutoModelEnabled:       true,
		AutoModelCancel:        0.05,
		AutoModelUB1:           0.97,
		AutoModelUB2:           0.91,
		AutoModelARMALimit:     1,
		AutoModelReduceCV:      0.14,
		AutoModelLjungBoxLimit: 0.95,

		ArimaD:  1,
		ArimaQ:  1,
		ArimaBD: 1,
		ArimaBQ: 1,

		SeatsMABoundary:       0.95,
		SeatsTrendBoundary:    0.5,
		SeatsSeasBoundary:     0.8,
		SeatsSeasBoundary1:    0.8,
		SeatsSeasTolerance:    2,
		SeatsPredictionLength: -1,
		SeatsApproximation:    "Legacy",
		SeatsMethod:           "Burman",
	}
}

func testOptions() options {
	return options{defaultFrequency: timeseries.Monthly, criticalValue: 3.5}
}
