package builder

import (
	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/spec"
)

// mapEstimate sets the estimation options and, when both bounds are valid,
// the estimation span.
func mapEstimate(s *spec.TramoSeatsSpec, m *domain.ConfigModel, _ options) (*spec.TramoSeatsSpec, []error, error) {
	var warnings []error
	est := s.EnsureTramo().EnsureEstimate()

	est.Ubp = m.EstimateURFinal
	est.Tol = m.EstimateTol
	est.EML = m.EstimateEML

	span, err := buildSpan(spanFields{
		prefix:    "estimate",
		from:      m.EstimateFrom,
		to:        m.EstimateTo,
		exclFirst: m.EstimateExclFirst,
		exclLast:  m.EstimateExclLast,
		first:     m.EstimateFirst,
		last:      m.EstimateLast,
	})
	if err != nil {
		warnings = append(warnings, err)
	}
	if span != nil {
		est.Span = span
	}

	return s, warnings, nil
}
