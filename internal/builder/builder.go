// Package builder turns a flat ConfigModel into a TRAMO/SEATS specification.
//
// The builder starts from a baseline specification and overlays the
// configuration section by section: transform, estimate, trading days,
// Easter, outliers, automatic model, ARIMA and SEATS. Categorical values that
// cannot be mapped abort the build; per-entry data problems are collected as
// Diagnostics next to the finished specification.
package builder

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/saltfish/tramoseats/internal/config"
	"github.com/saltfish/tramoseats/internal/domain"
	"github.com/saltfish/tramoseats/internal/spec"
	"github.com/saltfish/tramoseats/internal/timeseries"
)

// Builder builds specifications. It holds no per-build state and is safe for
// concurrent use.
type Builder struct {
	cfg    config.BuilderConfig
	logger *zap.Logger
}

// New creates a new Builder. Zero baseline, frequency and critical value
// settings fall back to config.Default(); ConsistencyCheck is used as given.
func New(cfg config.BuilderConfig, logger *zap.Logger) *Builder {
	defaults := config.Default().Builder
	if cfg.DefaultBaseline == "" {
		cfg.DefaultBaseline = defaults.DefaultBaseline
	}
	if cfg.DefaultFrequency == 0 {
		cfg.DefaultFrequency = defaults.DefaultFrequency
	}
	if cfg.DefaultCriticalValue == 0 {
		cfg.DefaultCriticalValue = defaults.DefaultCriticalValue
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{cfg: cfg, logger: logger}
}

// Result contains the result of one build.
type Result struct {
	// Spec is the finished specification, owned by the caller.
	Spec *spec.TramoSeatsSpec

	// Context is the execution context to hand to the engine with Spec.
	Context *spec.ProcessingContext

	// Diagnostics lists the non-fatal problems met while mapping.
	Diagnostics Diagnostics
}

// options are the settings the section mappers need.
type options struct {
	defaultFrequency timeseries.Frequency
	criticalValue    float64
}

// frequency returns the frequency of m, or the default one when m has none.
func (o options) frequency(m *domain.ConfigModel) (timeseries.Frequency, error) {
	if m.Frequency == 0 {
		return o.defaultFrequency, nil
	}
	return timeseries.FrequencyFromInt(m.Frequency)
}

// mapper overlays one section of the model onto s. It returns s, the
// non-fatal problems found and a fatal error, if any.
type mapper func(s *spec.TramoSeatsSpec, m *domain.ConfigModel, o options) (*spec.TramoSeatsSpec, []error, error)

// Section names, in mapping order.
const (
	SectionTransform   = "transform"
	SectionEstimate    = "estimate"
	SectionTradingDays = "tradingdays"
	SectionEaster      = "easter"
	SectionOutliers    = "outliers"
	SectionAutoModel   = "automodel"
	SectionArima       = "arima"
	SectionSeats       = "seats"
)

var sections = []struct {
	name  string
	apply mapper
}{
	{SectionTransform, mapTransform},
	{SectionEstimate, mapEstimate},
	{SectionTradingDays, mapTradingDays},
	{SectionEaster, mapEaster},
	{SectionOutliers, mapOutliers},
	{SectionAutoModel, mapAutoModel},
	{SectionArima, mapArima},
	{SectionSeats, mapSeats},
}

// Build creates the specification described by model. A nil model, or one
// without a baseline, yields the default baseline unchanged.
func (b *Builder) Build(model *domain.ConfigModel) (*Result, error) {
	baseline := strings.TrimSpace(model.Baseline())
	if baseline == "" {
		return b.buildDefault()
	}

	// 1. Parse the baseline into a fresh specification
	s, err := spec.Parse(baseline)
	if err != nil {
		b.logger.Error("Failed to parse baseline specification", zap.Error(err))
		return nil, err
	}

	// 2. Overlay the sections in order
	opts := options{
		defaultFrequency: timeseries.Frequency(b.cfg.DefaultFrequency),
		criticalValue:    b.cfg.DefaultCriticalValue,
	}
	var diags Diagnostics
	for _, section := range sections {
		var warnings []error
		s, warnings, err = section.apply(s, model, opts)
		diags = diags.add(section.name, warnings)
		if err != nil {
			b.logger.Error("Failed to map section",
				zap.String("section", section.name),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to map %s section: %w", section.name, err)
		}
		b.logger.Debug("Mapped section",
			zap.String("section", section.name),
			zap.Int("warnings", len(warnings)),
		)
	}

	// 3. Check the coefficients against the final orders
	if b.cfg.ConsistencyCheck {
		diags = diags.add(SectionArima, checkArimaConsistency(s.Tramo.Arima))
	}

	for _, d := range diags {
		b.logger.Warn("Specification diagnostic",
			zap.String("section", d.Section),
			zap.Error(d.Err),
		)
	}

	result := &Result{
		Spec:        s,
		Context:     spec.NewProcessingContext(),
		Diagnostics: diags,
	}

	b.logger.Info("Built specification",
		zap.String("baseline", baselineLabel(baseline)),
		zap.String("context_id", result.Context.ID.String()),
		zap.Int("diagnostics", len(diags)),
		zap.Int("user_outliers", countUserOutliers(s)),
		zap.Bool("outlier_detection", s.Tramo.Outliers.IsUsed()),
	)

	return result, nil
}

// buildDefault returns the configured default baseline with an empty context.
func (b *Builder) buildDefault() (*Result, error) {
	s, err := spec.Baseline(b.cfg.DefaultBaseline)
	if err != nil {
		return nil, domain.NewSpecificationParseError(b.cfg.DefaultBaseline, err)
	}

	result := &Result{Spec: s, Context: spec.NewProcessingContext()}
	b.logger.Info("Using default specification",
		zap.String("baseline", b.cfg.DefaultBaseline),
		zap.String("context_id", result.Context.ID.String()),
	)
	return result, nil
}

// baselineLabel names the baseline in logs; documents are not logged.
func baselineLabel(baseline string) string {
	if spec.IsBaseline(baseline) {
		return baseline
	}
	return "document"
}

func countUserOutliers(s *spec.TramoSeatsSpec) int {
	if s.Tramo == nil || s.Tramo.Regression == nil {
		return 0
	}
	return len(s.Tramo.Regression.Outliers)
}
