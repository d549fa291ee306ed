package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/spec"
)

// mapAutoModel copies the automatic model identification options.
func mapAutoModel(s *spec.TramoSeatsSpec, m *domain.ConfigModel, _ options) (*spec.TramoSeatsSpec, []error, error) {
	am := s.EnsureTramo().EnsureAutoModel()

	am.Tsig = m.AutoModelARMALimit
	am.Pc = m.AutoModelReduceCV
	am.Pcr = m.AutoModelLjungBoxLimit
	am.Ub1 = m.AutoModelUB1
	am.Ub2 = m.AutoModelUB2
	am.Cancel = m.AutoModelCancel
	am.Enabled = m.AutoModelEnabled
	am.AcceptDefault = m.AutoModelAcceptDefault
	am.AmiCompare = m.AutoModelCompare

	return s, nil, nil
}

// mapArima assigns explicit coefficients, sized by the orders currently on
// the specification, then copies the mean and the orders of the model. The
// model orders therefore only size coefficients of a later build.
func mapArima(s *spec.TramoSeatsSpec, m *domain.ConfigModel, _ options) (*spec.TramoSeatsSpec, []error, error) {
	var warnings []error
	a := s.EnsureTramo().EnsureArima()

	switch {
	case m.ArimaCoef != nil && m.ArimaCoefType != nil && len(m.ArimaCoef) != len(m.ArimaCoefType):
		warnings = append(warnings, domain.NewValidationWarning("arima.coef",
			"%d coefficients but %d coefficient types; explicit coefficients ignored",
			len(m.ArimaCoef), len(m.ArimaCoefType)))
	case m.HasExplicitCoefficients():
		warnings = append(warnings, assignCoefficients(a, m.ArimaCoef, m.ArimaCoefType)...)
	case m.ArimaCoefEnabled:
		warnings = append(warnings, domain.NewValidationWarning("arima.coef",
			"explicit coefficients enabled but no coefficients supplied"))
	}

	a.Mean = m.ArimaMean
	a.P = m.ArimaP
	a.D = m.ArimaD
	a.Q = m.ArimaQ
	a.BP = m.ArimaBP
	a.BD = m.ArimaBD
	a.BQ = m.ArimaBQ

	return s, warnings, nil
}

// assignCoefficients fills the coefficient groups of a with order > 0.
// Groups of order 0 are left as they are.
func assignCoefficients(a *spec.ArimaSpec, values, kinds []string) []error {
	var warnings []error

	segments, err := Partition(values, kinds, Orders{P: a.P, Q: a.Q, BP: a.BP, BQ: a.BQ})
	if err != nil {
		warnings = append(warnings, err)
	}

	for _, seg := range segments {
		if seg.Size == 0 {
			continue
		}
		params := make([]*spec.Parameter, seg.Size)
		for j := range seg.Values {
			field := fmt.Sprintf("arima.coef[%d]", seg.Offset+j)
			params[j] = newCoefficient(field, seg.Values[j], seg.Kinds[j], &warnings)
		}
		switch seg.Group {
		case GroupAR:
			a.Phi = params
		case GroupMA:
			a.Theta = params
		case GroupSeasonalAR:
			a.BPhi = params
		case GroupSeasonalMA:
			a.BTheta = params
		}
	}

	return warnings
}

// newCoefficient builds one coefficient, or returns nil (unset) when its kind
// is unknown or its value cannot be read.
func newCoefficient(field, value, kind string, warnings *[]error) *spec.Parameter {
	if strings.TrimSpace(kind) == "" {
		*warnings = append(*warnings, domain.NewValidationWarning(field, "missing coefficient type; coefficient left unset"))
		return nil
	}

	t, ok, _ := coefficientKinds.resolve(kind, warnings)
	if !ok {
		return nil
	}
	if !t.HasValue() {
		return &spec.Parameter{Type: t}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		*warnings = append(*warnings, domain.NewValidationWarning(field,
			"%s coefficient has non-numeric value %q; coefficient left unset", t, value))
		return nil
	}
	return spec.NewParameter(v, t)
}

// checkArimaConsistency reports coefficient groups whose length no longer
// matches the final orders.
func checkArimaConsistency(a *spec.ArimaSpec) []error {
	if a == nil {
		return nil
	}

	var warnings []error
	groups := []struct {
		group  CoefficientGroup
		params []*spec.Parameter
		order  int
	}{
		{GroupAR, a.Phi, a.P},
		{GroupMA, a.Theta, a.Q},
		{GroupSeasonalAR, a.BPhi, a.BP},
		{GroupSeasonalMA, a.BTheta, a.BQ},
	}
	for _, g := range groups {
		if g.params != nil && len(g.params) != g.order {
			warnings = append(warnings, domain.NewValidationWarning("arima."+string(g.group),
				"%d coefficients for order %d", len(g.params), g.order))
		}
	}
	return warnings
}
