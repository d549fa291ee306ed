// Package timeseries provides the calendar primitives used by a TRAMO/SEATS
// specification: calendar days, observation periods at a given frequency and
// span selectors restricting the part of a series used for estimation or
// outlier detection.
//
// # Days
//
// Days are parsed from the fixed ISO layout YYYY-MM-DD:
//
//	d, err := timeseries.ParseDay("2020-03-15")
//
// # Periods
//
// A Period is the observation period containing a day at a frequency:
//
//	p, _ := timeseries.PeriodOf(timeseries.Monthly, d) // March 2020
//	q, _ := timeseries.PeriodOf(timeseries.Quarterly, d) // 2020-Q1
//
// # Span selectors
//
// A PeriodSelector bounds a series by two days and can additionally drop
// leading/trailing observations or keep only the first/last ones:
//
//	span := timeseries.Between(from, to).Excluding(2, 0)
package timeseries
