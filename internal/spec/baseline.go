package spec

import (
	"fmt"
	"sort"

	"github.com/saltfish/tramoseats/internal/domain"
)

// Names of the predefined baselines.
const (
	RSA0    = "RSA0"
	RSA1    = "RSA1"
	RSA2    = "RSA2"
	RSA3    = "RSA3"
	RSA4    = "RSA4"
	RSA5    = "RSA5"
	RSAfull = "RSAfull"

	// DefaultBaseline is used when a run carries no baseline.
	DefaultBaseline = RSAfull
)

// baselines build a fresh, independently owned specification on every call.
var baselines = map[string]func() *TramoSeatsSpec{
	RSA0:    rsa0,
	RSA1:    rsa1,
	RSA2:    rsa2,
	RSA3:    rsa3,
	RSA4:    rsa4,
	RSA5:    rsa5,
	RSAfull: rsaFull,
}

// Baseline returns a new instance of the named baseline.
func Baseline(name string) (*TramoSeatsSpec, error) {
	factory, ok := baselines[name]
	if !ok {
		return nil, fmt.Errorf("unknown baseline %q", name)
	}
	return factory(), nil
}

// MustBaseline is like Baseline but panics on unknown names.
func MustBaseline(name string) *TramoSeatsSpec {
	s, err := Baseline(name)
	if err != nil {
		panic(err)
	}
	return s
}

// IsBaseline reports whether name is a predefined baseline.
func IsBaseline(name string) bool {
	_, ok := baselines[name]
	return ok
}

// BaselineNames returns the predefined baseline names in sorted order.
func BaselineNames() []string {
	names := make([]string, 0, len(baselines))
	for name := range baselines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rsa0: levels, airline model, no calendar, no outliers.
func rsa0() *TramoSeatsSpec {
	return &TramoSeatsSpec{
		Tramo: &TramoSpec{
			Transform: NewTransformSpec(),
			Estimate:  NewEstimateSpec(),
			Arima:     NewAirline(),
		},
		Seats: NewSeatsSpec(),
	}
}

// rsa1: log/level test, outlier detection, airline model.
func rsa1() *TramoSeatsSpec {
	s := rsa0()
	s.Tramo.Transform.Function = domain.TransformAuto
	s.Tramo.Outliers = defaultDetection()
	return s
}

// rsa2: rsa1 plus working days and Easter, both pre-tested.
func rsa2() *TramoSeatsSpec {
	s := rsa1()
	s.Tramo.Regression = calendarRegression(domain.TradingDaysWorkingDays)
	return s
}

// rsa3: rsa1 with automatic model identification.
func rsa3() *TramoSeatsSpec {
	s := rsa1()
	s.Tramo.AutoModel = NewAutoModelSpec()
	s.Tramo.AutoModel.Enabled = true
	return s
}

// rsa4: rsa3 plus working days and Easter.
func rsa4() *TramoSeatsSpec {
	s := rsa3()
	s.Tramo.Regression = calendarRegression(domain.TradingDaysWorkingDays)
	return s
}

// rsa5: rsa3 plus trading days and Easter.
func rsa5() *TramoSeatsSpec {
	s := rsa3()
	s.Tramo.Regression = calendarRegression(domain.TradingDaysTradingDays)
	return s
}

// rsaFull: rsa5 with automatic choice of the trading-day regressors.
func rsaFull() *TramoSeatsSpec {
	s := rsa5()
	s.Tramo.Regression.Calendar.TradingDays.AutomaticMethod = domain.AutoMethodFTest
	return s
}

func defaultDetection() *OutlierSpec {
	o := NewOutlierSpec()
	o.Add(domain.OutlierAO)
	o.Add(domain.OutlierLS)
	o.Add(domain.OutlierTC)
	return o
}

func calendarRegression(td domain.TradingDaysType) *RegressionSpec {
	tradingDays := NewTradingDaysSpec()
	tradingDays.Type = td
	tradingDays.LeapYear = true
	tradingDays.Test = true

	easter := NewEasterSpec()
	easter.Option = domain.EasterStandard
	easter.Test = true

	return &RegressionSpec{
		Calendar: &CalendarSpec{TradingDays: tradingDays, Easter: easter},
	}
}
