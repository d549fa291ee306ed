package builder

import (
	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/spec"
)

// mapTradingDays resolves the trading-days mode, then copies the remaining
// trading-day options unconditionally.
func mapTradingDays(s *spec.TramoSeatsSpec, m *domain.ConfigModel, _ options) (*spec.TramoSeatsSpec, []error, error) {
	var warnings []error
	td := s.EnsureTramo().EnsureTradingDays()

	if m.TradingDaysOption != nil {
		mode, ok, err := tradingDaysModes.resolve(*m.TradingDaysOption, &warnings)
		if err != nil {
			return s, warnings, err
		}
		if ok {
			td.Type = mode
		}
	}

	method, ok, err := tradingDaysAutoMethods.resolve(m.TradingDaysAutoMethod, &warnings)
	if err != nil {
		return s, warnings, err
	}
	if ok {
		td.AutomaticMethod = method
	}
	td.ProbabilityForFTest = m.TradingDaysPFTD
	td.LeapYear = m.TradingDaysLeapYear
	td.StockTradingDays = m.TradingDaysStockTD
	td.Test = m.TradingDaysTest

	return s, warnings, nil
}

// mapEaster sets the Easter effect.
func mapEaster(s *spec.TramoSeatsSpec, m *domain.ConfigModel, _ options) (*spec.TramoSeatsSpec, []error, error) {
	var warnings []error
	easter := s.EnsureTramo().EnsureEaster()

	option, ok, err := easterTypes.resolve(m.EasterType, &warnings)
	if err != nil {
		return s, warnings, err
	}
	if ok {
		easter.Option = option
	}
	easter.Duration = m.EasterDuration
	easter.Julian = m.EasterJulian
	easter.Test = m.EasterTest

	return s, warnings, nil
}
