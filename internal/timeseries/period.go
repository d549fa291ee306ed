package timeseries

import (
	"errors"
	"fmt"
	"time"
)

// Frequency is the number of observations per year.
type Frequency int

const (
	Yearly        Frequency = 1
	HalfYearly    Frequency = 2
	QuadriMonthly Frequency = 3
	Quarterly     Frequency = 4
	BiMonthly     Frequency = 6
	Monthly       Frequency = 12
)

// ErrInvalidFrequency is returned for frequencies that do not divide a year into whole months.
var ErrInvalidFrequency = errors.New("invalid frequency")

// IsValid returns true if f is one of the supported frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case Yearly, HalfYearly, QuadriMonthly, Quarterly, BiMonthly, Monthly:
		return true
	default:
		return false
	}
}

// MonthsPerPeriod returns the number of calendar months covered by one period.
func (f Frequency) MonthsPerPeriod() int {
	if !f.IsValid() {
		return 0
	}
	return 12 / int(f)
}

func (f Frequency) String() string {
	switch f {
	case Yearly:
		return "Yearly"
	case HalfYearly:
		return "HalfYearly"
	case QuadriMonthly:
		return "QuadriMonthly"
	case Quarterly:
		return "Quarterly"
	case BiMonthly:
		return "BiMonthly"
	case Monthly:
		return "Monthly"
	default:
		return fmt.Sprintf("Frequency(%d)", int(f))
	}
}

// FrequencyFromInt converts an observations-per-year count to a Frequency.
func FrequencyFromInt(n int) (Frequency, error) {
	f := Frequency(n)
	if !f.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFrequency, n)
	}
	return f, nil
}

// Period is one observation period of a series, e.g. March 2020 at monthly
// frequency. Position is zero-based within the year.
type Period struct {
	Frequency Frequency `yaml:"frequency"`
	Year      int       `yaml:"year"`
	Position  int       `yaml:"position"`
}

// PeriodOf returns the period at frequency f that contains d.
func PeriodOf(f Frequency, d Day) (Period, error) {
	if !f.IsValid() {
		return Period{}, fmt.Errorf("%w: %d", ErrInvalidFrequency, int(f))
	}
	return Period{
		Frequency: f,
		Year:      d.Year,
		Position:  (int(d.Month) - 1) / f.MonthsPerPeriod(),
	}, nil
}

// Start returns the first day of the period.
func (p Period) Start() Day {
	return NewDay(p.Year, time.Month(p.Position*p.Frequency.MonthsPerPeriod()+1), 1)
}

// End returns the last day of the period.
func (p Period) End() Day {
	next := NewDay(p.Year, time.Month((p.Position+1)*p.Frequency.MonthsPerPeriod()+1), 1)
	return DayOf(next.Time().AddDate(0, 0, -1))
}

// Contains reports whether d falls inside the period.
func (p Period) Contains(d Day) bool {
	return !d.Before(p.Start()) && !d.After(p.End())
}

func (p Period) String() string {
	switch p.Frequency {
	case Monthly:
		return fmt.Sprintf("%d-%02d", p.Year, p.Position+1)
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", p.Year, p.Position+1)
	case Yearly:
		return fmt.Sprintf("%d", p.Year)
	default:
		return fmt.Sprintf("%d:%d/%d", p.Year, p.Position+1, int(p.Frequency))
	}
}
