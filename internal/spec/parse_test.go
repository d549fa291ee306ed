package spec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/timeseries"
)

func TestParse_Name(t *testing.T) {
	s, err := Parse(" RSA3 ")
	require.NoError(t, err)
	assert.Equal(t, MustBaseline(RSA3), s)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", "   "},
		{"unknown name", "RSA7"},
		{"broken yaml", "tramo: [1, 2"},
		{"not a mapping", "[base: RSA0]"},
		{"unknown base", "base: RSA9"},
		{"unknown field", "tramo:\n  arima:\n    order: 3\n"},
		{"bad enum", "seats:\n  method: Fast\n"},
		{"bad transform", `{"tramo":{"transform":{"function":"Sqrt"}}}`},
		{"bad outlier type", "tramo:\n  outliers:\n    types: [AO, XX]\n"},
		{"bad date", "tramo:\n  estimate:\n    span:\n      type: Between\n      from: 2000-13-01\n"},
		{"repeated outlier type", "tramo: {outliers: {types: [AO, AO, LS]}}"},
		{"negative order", `{"tramo":{"arima":{"p":-3}}}`},
		{"negative seasonal difference", "tramo:\n  arima:\n    bd: -1\n"},
		{"unknown span type", `{"tramo":{"estimate":{"span":{"type":"Weird"}}}}`},
		{"reversed span", "tramo:\n  estimate:\n    span: {type: Between, from: 2010-01-01, to: 2000-01-01}\n"},
		{"half-open span", "tramo:\n  outliers:\n    span: {type: Between, from: 2010-01-01}\n"},
		{"negative span count", "tramo:\n  estimate:\n    span: {type: All, last: -12}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.input)
			assert.Nil(t, s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrSpecificationParse))

			var pe *domain.SpecificationParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.input, pe.Input)
		})
	}
}

func TestParse_DocumentOverridesBaseline(t *testing.T) {
	doc := `
base: RSA0
tramo:
  arima:
    p: 2
    q: 1
    bq: 0
  estimate:
    tol: 0.0001
    span:
      type: Between
      from: 2000-01-01
      to: 2019-12-01
seats:
  method: KalmanSmoother
`
	s, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Tramo.Arima.P)
	assert.Equal(t, 1, s.Tramo.Arima.D, "untouched fields keep the baseline value")
	assert.Equal(t, 1, s.Tramo.Arima.Q)
	assert.Equal(t, 1, s.Tramo.Arima.BD)
	assert.Equal(t, 0, s.Tramo.Arima.BQ)

	assert.Equal(t, 0.0001, s.Tramo.Estimate.Tol)
	assert.Equal(t, DefaultUbp, s.Tramo.Estimate.Ubp)
	require.NotNil(t, s.Tramo.Estimate.Span)
	assert.Equal(t, timeseries.NewDay(2000, time.January, 1), s.Tramo.Estimate.Span.From)
	assert.Equal(t, timeseries.NewDay(2019, time.December, 1), s.Tramo.Estimate.Span.To)

	assert.Equal(t, domain.EstimationKalmanSmoother, s.Seats.Method)
	assert.Equal(t, DefaultXlBoundary, s.Seats.XlBoundary)
	assert.Nil(t, s.Tramo.Outliers, "RSA0 has no outlier detection")
}

func TestParse_JSONDocumentDefaultsToRSAfull(t *testing.T) {
	s, err := Parse(`{"tramo": {"automodel": {"enabled": false}}}`)
	require.NoError(t, err)

	want := MustBaseline(RSAfull)
	want.Tramo.AutoModel.Enabled = false
	assert.Equal(t, want, s)
}

func TestParse_BaseOnly(t *testing.T) {
	s, err := Parse("base: RSA4")
	require.NoError(t, err)
	assert.Equal(t, MustBaseline(RSA4), s)
}

func TestParse_ValidSpans(t *testing.T) {
	s, err := Parse("base: RSA1\ntramo:\n  outliers:\n    span: {type: All, first: 24}\n")
	require.NoError(t, err)
	require.NotNil(t, s.Tramo.Outliers.Span)
	assert.Equal(t, timeseries.SelectorAll, s.Tramo.Outliers.Span.Type)
	assert.Equal(t, 24, s.Tramo.Outliers.Span.First)
	assert.Equal(t, []domain.OutlierType{domain.OutlierAO, domain.OutlierLS, domain.OutlierTC}, s.Tramo.Outliers.Types)
}
