package builder

import (
	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/spec"
)

// mapTransform sets the transformation function, the power parameter and the
// preliminary check.
func mapTransform(s *spec.TramoSeatsSpec, m *domain.ConfigModel, _ options) (*spec.TramoSeatsSpec, []error, error) {
	var warnings []error
	tf := s.EnsureTramo().EnsureTransform()

	fn, ok, err := transformFunctions.resolve(m.TransformFunction, &warnings)
	if err != nil {
		return s, warnings, err
	}
	if ok {
		tf.Function = fn
	}
	tf.Fct = m.TransformFct
	tf.PreliminaryCheck = m.PreliminaryCheck

	return s, warnings, nil
}
