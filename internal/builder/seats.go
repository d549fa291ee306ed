package builder

import (
	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/spec"
)

// mapSeats sets the decomposition options.
func mapSeats(s *spec.TramoSeatsSpec, m *domain.ConfigModel, _ options) (*spec.TramoSeatsSpec, []error, error) {
	var warnings []error
	seats := s.EnsureSeats()

	seats.XlBoundary = m.SeatsMABoundary
	seats.TrendBoundary = m.SeatsTrendBoundary
	seats.SeasBoundary = m.SeatsSeasBoundary
	seats.SeasBoundary1 = m.SeatsSeasBoundary1
	seats.SeasTolerance = m.SeatsSeasTolerance
	seats.PredictionLength = m.SeatsPredictionLength

	mode, ok, err := approximationModes.resolve(m.SeatsApproximation, &warnings)
	if err != nil {
		return s, warnings, err
	}
	if ok {
		seats.ApproximationMode = mode
	}

	method, ok, err := estimationMethods.resolve(m.SeatsMethod, &warnings)
	if err != nil {
		return s, warnings, err
	}
	if ok {
		seats.Method = method
	}

	return s, warnings, nil
}
