package builder

import (
	"strings"

	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/spec"
	"github.com/saltfish/tramoseats/internal/timeseries"
)

// mapOutliers adds the user-defined outliers to the regression and, when
// enabled, configures automatic outlier detection.
func mapOutliers(s *spec.TramoSeatsSpec, m *domain.ConfigModel, o options) (*spec.TramoSeatsSpec, []error, error) {
	var warnings []error

	warnings = append(warnings, addUserOutliers(s.EnsureTramo(), m, o)...)

	if m.OutlierEnabled {
		warnings = append(warnings, configureDetection(s.EnsureTramo().EnsureOutliers(), m, o)...)
	}

	return s, warnings, nil
}

// addUserOutliers appends one definition per usable (date, type) pair. Bad
// entries are reported and skipped; repeated entries are kept. Entries
// outside the estimation span are reported and kept.
func addUserOutliers(t *spec.TramoSpec, m *domain.ConfigModel, o options) []error {
	if !m.HasUserOutliers() {
		return nil
	}

	var warnings []error
	dates, types := m.UserOutlierDates, m.UserOutlierTypes
	n := len(dates)
	if len(types) != n {
		warnings = append(warnings, domain.NewValidationWarning("usrdef.outliersDate",
			"%d outlier dates but %d outlier types; only the first %d pairs are used",
			len(dates), len(types), min(len(dates), len(types))))
		n = min(n, len(types))
	}

	freq, err := o.frequency(m)
	if err != nil {
		return append(warnings, domain.NewValidationWarning("frequency",
			"%v; user-defined outliers ignored", err))
	}

	for i := 0; i < n; i++ {
		date, code := strings.TrimSpace(dates[i]), strings.TrimSpace(types[i])
		if date == "" || date == domain.NA || code == "" || code == domain.NA {
			continue
		}

		day, err := timeseries.ParseDay(date)
		if err != nil {
			warnings = append(warnings, domain.NewDateParseError("usrdef.outliersDate", date, err))
			continue
		}
		if !domain.OutlierType(code).IsValid() {
			warnings = append(warnings, domain.NewValidationWarning("usrdef.outliersType",
				"unknown outlier type %q for %s; entry skipped", code, date))
			continue
		}

		period, err := timeseries.PeriodOf(freq, day)
		if err != nil {
			warnings = append(warnings, domain.NewValidationWarning("usrdef.outliersDate", "%v", err))
			continue
		}
		if t.Estimate != nil && !t.Estimate.Span.Overlaps(period) {
			warnings = append(warnings, domain.NewValidationWarning("usrdef.outliersDate",
				"%s outlier at %s lies outside the estimation span; entry kept", code, period))
		}
		t.EnsureRegression().Add(spec.OutlierDefinition{Position: period, Code: code})
	}

	return warnings
}

// configureDetection copies the detection options into out.
func configureDetection(out *spec.OutlierSpec, m *domain.ConfigModel, o options) []error {
	var warnings []error

	out.DeltaTC = m.OutlierTCRate
	if m.OutlierUseDefCV {
		out.CriticalValue = m.OutlierCV
	} else {
		out.CriticalValue = o.criticalValue
	}

	if m.OutlierAO {
		out.Add(domain.OutlierAO)
	}
	if m.OutlierTC {
		out.Add(domain.OutlierTC)
	}
	if m.OutlierLS {
		out.Add(domain.OutlierLS)
	}
	if m.OutlierSO {
		out.Add(domain.OutlierSO)
	}
	out.EML = m.OutlierEML

	span, err := buildSpan(spanFields{
		prefix:    "outlier",
		from:      m.OutlierFrom,
		to:        m.OutlierTo,
		exclFirst: m.OutlierExclFirst,
		exclLast:  m.OutlierExclLast,
		first:     m.OutlierFirst,
		last:      m.OutlierLast,
	})
	if err != nil {
		warnings = append(warnings, err)
	}
	if span != nil {
		out.Span = span
	}

	return warnings
}
