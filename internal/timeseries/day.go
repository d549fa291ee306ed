package timeseries

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DayLayout is the only accepted textual form of a Day.
const DayLayout = "2006-01-02"

// Day is a calendar date without time of day.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDay creates a Day. Out-of-range values are normalized the way time.Date does.
func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf returns the Day of t in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Before reports whether d is strictly before o.
func (d Day) Before(o Day) bool {
	return d.Time().Before(o.Time())
}

// After reports whether d is strictly after o.
func (d Day) After(o Day) bool {
	return d.Time().After(o.Time())
}

func (d Day) String() string {
	return d.Time().Format(DayLayout)
}

// MarshalYAML writes the day in DayLayout.
func (d Day) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML reads a day written in DayLayout.
func (d *Day) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
