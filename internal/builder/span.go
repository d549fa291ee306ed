package builder

import (
	"strings"

	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/timeseries"
)

// spanFields are the flat span options of one section, named by prefix
// ("estimate", "outlier").
type spanFields struct {
	prefix              string
	from, to            *string
	exclFirst, exclLast int
	first, last         int
}

// buildSpan returns the selector described by f, or nil when the section
// keeps the engine default span. A span is only built when both bounds are
// present and valid; otherwise the reason is returned as a non-fatal error
// (nil when both bounds are simply absent).
func buildSpan(f spanFields) (*timeseries.PeriodSelector, error) {
	from, hasFrom := bound(f.from)
	to, hasTo := bound(f.to)

	switch {
	case !hasFrom && !hasTo:
		return nil, nil
	case !hasFrom:
		return nil, domain.NewValidationWarning(f.prefix+".from", "missing while %s.to is set; span ignored", f.prefix)
	case !hasTo:
		return nil, domain.NewValidationWarning(f.prefix+".to", "missing while %s.from is set; span ignored", f.prefix)
	}

	d0, err := timeseries.ParseDay(from)
	if err != nil {
		return nil, domain.NewDateParseError(f.prefix+".from", from, err)
	}
	d1, err := timeseries.ParseDay(to)
	if err != nil {
		return nil, domain.NewDateParseError(f.prefix+".to", to, err)
	}
	if d0.After(d1) {
		return nil, domain.NewValidationWarning(f.prefix+".from", "%s is after %s.to %s; span ignored", d0, f.prefix, d1)
	}

	return timeseries.Between(d0, d1).
		Excluding(f.exclFirst, f.exclLast).
		KeepFirst(f.first).
		KeepLast(f.last), nil
}

// bound returns the trimmed value of an optional date and whether it is set.
func bound(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	if v == "" || v == domain.NA {
		return "", false
	}
	return v, true
}
