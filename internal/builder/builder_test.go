package builder

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/saltfish/tramoseats/internal/config"
	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/spec"
	"github.com/saltfish/tramoseats/internal/timeseries"
)

func newTestBuilder(t *testing.T) *Builder {
	return New(config.Default().Builder, zaptest.NewLogger(t))
}

func TestBuild_NilModelYieldsDefaultBaseline(t *testing.T) {
	b := newTestBuilder(t)

	result, err := b.Build(nil)
	require.NoError(t, err)

	assert.Equal(t, spec.MustBaseline(spec.RSAfull), result.Spec)
	require.NotNil(t, result.Context)
	assert.True(t, result.Context.IsEmpty())
	assert.Empty(t, result.Diagnostics)
}

func TestBuild_ModelWithoutBaselineIsIgnored(t *testing.T) {
	b := newTestBuilder(t)

	for _, baseline := range []*string{nil, strPtr(""), strPtr("   ")} {
		m := validModel()
		m.Spec = baseline
		m.TransformFunction = "Bogus"

		result, err := b.Build(m)
		require.NoError(t, err)
		assert.Equal(t, spec.MustBaseline(spec.RSAfull), result.Spec)
	}
}

func TestBuild_ConfiguredDefaultBaseline(t *testing.T) {
	b := New(config.BuilderConfig{DefaultBaseline: spec.RSA0}, zap.NewNop())

	result, err := b.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, spec.MustBaseline(spec.RSA0), result.Spec)

	broken := New(config.BuilderConfig{DefaultBaseline: "RSA9"}, nil)
	_, err = broken.Build(nil)
	assert.True(t, errors.Is(err, domain.ErrSpecificationParse))
}

func TestBuild_MalformedBaseline(t *testing.T) {
	b := newTestBuilder(t)

	m := validModel()
	m.Spec = strPtr("RSA42")

	result, err := b.Build(m)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrSpecificationParse))
}

func TestBuild_ValidModel(t *testing.T) {
	b := newTestBuilder(t)

	m := validModel()
	m.EstimateFrom = strPtr("2000-01-01")
	m.EstimateTo = strPtr("2020-12-01")
	m.UserOutlierDates = []string{"2020-03-15", "2008-11-01"}
	m.UserOutlierTypes = []string{"AO", "LS"}

	result, err := b.Build(m)
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)
	assert.True(t, result.Context.IsEmpty())

	tramo := result.Spec.Tramo
	assert.Equal(t, domain.TransformLog, tramo.Transform.Function)
	assert.True(t, tramo.Transform.PreliminaryCheck)

	require.NotNil(t, tramo.Estimate.Span)
	assert.Equal(t, timeseries.NewDay(2000, time.January, 1), tramo.Estimate.Span.From)

	cal := tramo.Regression.Calendar
	assert.Equal(t, domain.TradingDaysWorkingDays, cal.TradingDays.Type)
	assert.Equal(t, domain.AutoMethodFTest, cal.TradingDays.AutomaticMethod)
	assert.Equal(t, domain.EasterIncludeEaster, cal.Easter.Option)
	assert.Equal(t, 8, cal.Easter.Duration)

	require.Len(t, tramo.Regression.Outliers, 2)
	assert.Equal(t, "2008-11", tramo.Regression.Outliers[1].Position.String())
	assert.Equal(t, "LS", tramo.Regression.Outliers[1].Code)

	assert.Equal(t, 3.5, tramo.Outliers.CriticalValue)
	assert.Equal(t, 0.14, tramo.AutoModel.Pc)
	assert.Equal(t, spec.NewAirline(), tramo.Arima)

	assert.Equal(t, domain.ApproximationLegacy, result.Spec.Seats.ApproximationMode)
	assert.Equal(t, domain.EstimationBurman, result.Spec.Seats.Method)
}

func TestBuild_LazilyCreatesMissingSections(t *testing.T) {
	b := newTestBuilder(t)

	m := validModel()
	m.Spec = strPtr(spec.RSA0)

	result, err := b.Build(m)
	require.NoError(t, err)

	tramo := result.Spec.Tramo
	require.NotNil(t, tramo.Regression)
	require.NotNil(t, tramo.Regression.Calendar)
	require.NotNil(t, tramo.Regression.Calendar.TradingDays)
	require.NotNil(t, tramo.Regression.Calendar.Easter)
	require.NotNil(t, tramo.Outliers)
	require.NotNil(t, tramo.AutoModel)

	assert.Equal(t, domain.TradingDaysWorkingDays, tramo.Regression.Calendar.TradingDays.Type)
	assert.Equal(t, []domain.OutlierType{domain.OutlierAO, domain.OutlierTC, domain.OutlierLS}, tramo.Outliers.Types)
	assert.True(t, tramo.AutoModel.Enabled)
}

func TestBuild_InvalidEnumIsFatal(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *domain.ConfigModel)
		section string
		field   string
	}{
		{"transform", func(m *domain.ConfigModel) { m.TransformFunction = "Sqrt" }, SectionTransform, "transform.function"},
		{"trading days method", func(m *domain.ConfigModel) { m.TradingDaysAutoMethod = "TTest" }, SectionTradingDays, "tradingdays.mauto"},
		{"easter", func(m *domain.ConfigModel) { m.EasterType = "Orthodox" }, SectionEaster, "easter.type"},
		{"seats approximation", func(m *domain.ConfigModel) { m.SeatsApproximation = "Exact" }, SectionSeats, "seats.approx"},
		{"seats method", func(m *domain.ConfigModel) { m.SeatsMethod = "Wiener" }, SectionSeats, "seats.method"},
	}

	b := newTestBuilder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validModel()
			tt.mutate(m)

			result, err := b.Build(m)
			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidEnumValue))
			assert.Contains(t, err.Error(), tt.section)

			var enumErr *domain.InvalidEnumValueError
			require.True(t, errors.As(err, &enumErr))
			assert.Equal(t, tt.field, enumErr.Field)
		})
	}
}

func TestBuild_BogusTradingDaysKeepsBaselineType(t *testing.T) {
	b := newTestBuilder(t)

	m := validModel()
	m.TradingDaysOption = strPtr("Bogus")

	result, err := b.Build(m)
	require.NoError(t, err)

	assert.Equal(t, domain.TradingDaysTradingDays, result.Spec.Tramo.Regression.Calendar.TradingDays.Type)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, SectionTradingDays, result.Diagnostics[0].Section)
	assert.True(t, result.Diagnostics.Has(domain.ErrValidation))
}

func TestBuild_OutlierLengthMismatch(t *testing.T) {
	b := newTestBuilder(t)

	m := validModel()
	m.UserOutlierDates = []string{"2020-03-15", "2020-04-15", "2020-05-15"}
	m.UserOutlierTypes = []string{"AO", "TC"}

	result, err := b.Build(m)
	require.NoError(t, err)

	outliers := result.Spec.Tramo.Regression.Outliers
	require.Len(t, outliers, 2)
	assert.Equal(t, "2020-03", outliers[0].Position.String())
	assert.Equal(t, "2020-04", outliers[1].Position.String())

	diags := result.Diagnostics.Section(SectionOutliers)
	require.Len(t, diags, 1)
	assert.True(t, errors.Is(diags[0], domain.ErrValidation))
}

func TestBuild_ExplicitCoefficients(t *testing.T) {
	b := newTestBuilder(t)

	m := validModel()
	m.Spec = strPtr("base: RSA0\ntramo:\n  arima: {p: 2, d: 1, q: 1, bp: 0, bd: 1, bq: 0}\n")
	m.ArimaP, m.ArimaD, m.ArimaQ, m.ArimaBP, m.ArimaBD, m.ArimaBQ = 2, 1, 1, 0, 1, 0
	m.ArimaCoefEnabled = true
	m.ArimaCoef = []string{"-0.3", "0.1", "NA"}
	m.ArimaCoefType = []string{"Fixed", "Initial", "Undefined"}

	result, err := b.Build(m)
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)

	a := result.Spec.Tramo.Arima
	assert.Equal(t, []*spec.Parameter{
		spec.NewParameter(-0.3, domain.ParameterFixed),
		spec.NewParameter(0.1, domain.ParameterInitial),
	}, a.Phi)
	assert.Equal(t, []*spec.Parameter{{Type: domain.ParameterEstimated}}, a.Theta)
	assert.Nil(t, a.BPhi)
	assert.Nil(t, a.BTheta)
	assert.True(t, a.HasFixedCoefficients())
}

func TestBuild_ConsistencyCheck(t *testing.T) {
	m := validModel()
	m.Spec = strPtr(`{"base": "RSA0", "tramo": {"arima": {"p": 1, "bq": 0}}}`)
	m.ArimaP = 2
	m.ArimaBQ = 0
	m.ArimaCoefEnabled = true
	m.ArimaCoef = []string{"0.5", "NA"}
	m.ArimaCoefType = []string{"Fixed", "Undefined"}

	result, err := newTestBuilder(t).Build(m)
	require.NoError(t, err)

	a := result.Spec.Tramo.Arima
	assert.Len(t, a.Phi, 1, "sized by the baseline order")
	assert.Len(t, a.Theta, 1)
	assert.Equal(t, 2, a.P)

	// two coefficients for P=1, Q=1; only phi against the final P is reported
	diags := result.Diagnostics.Section(SectionArima)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Error(), "arima.phi")
	assert.Contains(t, diags[0].Error(), "1 coefficients for order 2")

	cfg := config.Default().Builder
	cfg.ConsistencyCheck = false
	result, err = New(cfg, zap.NewNop()).Build(m)
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)
}

func TestBuild_OutlierOutsideEstimationSpan(t *testing.T) {
	b := newTestBuilder(t)

	m := validModel()
	m.EstimateFrom = strPtr("2000-01-01")
	m.EstimateTo = strPtr("2019-12-01")
	m.UserOutlierDates = []string{"1999-12-31", "2000-01-20", "2020-01-01"}
	m.UserOutlierTypes = []string{"AO", "LS", "TC"}

	result, err := b.Build(m)
	require.NoError(t, err)

	require.Len(t, result.Spec.Tramo.Regression.Outliers, 3, "outliers outside the span are kept")

	diags := result.Diagnostics.Section(SectionOutliers)
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Error(), "1999-12")
	assert.Contains(t, diags[1].Error(), "2020-01")
	assert.True(t, errors.Is(diags[0], domain.ErrValidation))
}

func TestBuild_LogsCompletion(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	b := New(config.Default().Builder, zap.New(core))

	_, err := b.Build(validModel())
	require.NoError(t, err)

	entries := logs.FilterMessage("Built specification").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, spec.RSAfull, fields["baseline"])
	assert.Equal(t, true, fields["outlier_detection"])
	assert.Equal(t, int64(0), fields["user_outliers"])
}

func TestBuild_LogsDiagnostics(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	b := New(config.Default().Builder, zap.New(core))

	m := validModel()
	m.EstimateFrom = strPtr("2000-01-01")
	m.EstimateTo = strPtr("2019-13-01")

	result, err := b.Build(m)
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)
	assert.True(t, result.Diagnostics.Has(domain.ErrDateParse))

	entries := logs.FilterMessage("Specification diagnostic").All()
	require.Len(t, entries, 1)
	assert.Equal(t, SectionEstimate, entries[0].ContextMap()["section"])
}

func TestBuild_IndependentInstances(t *testing.T) {
	b := newTestBuilder(t)
	m := validModel()
	m.UserOutlierDates = []string{"2020-03-15"}
	m.UserOutlierTypes = []string{"AO"}

	first, err := b.Build(m)
	require.NoError(t, err)
	second, err := b.Build(m)
	require.NoError(t, err)

	assert.Equal(t, first.Spec, second.Spec)
	assert.NotSame(t, first.Spec, second.Spec)
	assert.NotEqual(t, first.Context.ID, second.Context.ID)

	first.Spec.Tramo.Regression.Add(spec.OutlierDefinition{Code: "LS"})
	assert.Len(t, second.Spec.Tramo.Regression.Outliers, 1)
}

func TestBuild_Concurrent(t *testing.T) {
	b := New(config.Default().Builder, zap.NewNop())
	want, err := b.Build(validModel())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Result, 16)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = b.Build(validModel())
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want.Spec, r.Spec)
	}
}
