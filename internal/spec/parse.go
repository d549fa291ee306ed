package spec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/saltfish/tramoseats/internal/domain"
)

// baseKey names the baseline a specification document starts from.
const baseKey = "base"

// Parse turns a baseline string into a new specification. The string is
// either a baseline name ("RSA0" ... "RSA5", "RSAfull") or a YAML/JSON
// document whose optional "base" key selects the baseline (RSAfull by
// default) and whose other keys override it:
//
//	base: RSA0
//	tramo:
//	  arima: {p: 2, q: 1, bq: 0}
//
// Parse keeps no state; every call returns a new instance.
func Parse(input string) (*TramoSeatsSpec, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, domain.NewSpecificationParseError(input, errors.New("empty specification"))
	}

	if IsBaseline(trimmed) {
		return Baseline(trimmed)
	}

	if !looksLikeDocument(trimmed) {
		return nil, domain.NewSpecificationParseError(input,
			fmt.Errorf("unknown baseline, expected one of: %s", strings.Join(BaselineNames(), ", ")))
	}

	s, err := parseDocument(trimmed)
	if err != nil {
		return nil, domain.NewSpecificationParseError(input, err)
	}
	return s, nil
}

func looksLikeDocument(s string) bool {
	return strings.HasPrefix(s, "{") || strings.Contains(s, ":")
}

// parseDocument decodes a specification document over its baseline.
func parseDocument(doc string) (*TramoSeatsSpec, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, errors.New("specification document must be a mapping")
	}

	mapping := root.Content[0]
	base := DefaultBaseline
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != baseKey {
			continue
		}
		base = mapping.Content[i+1].Value
		mapping.Content = append(mapping.Content[:i], mapping.Content[i+2:]...)
		break
	}

	s, err := Baseline(base)
	if err != nil {
		return nil, err
	}

	// Re-encode without the base key so unknown fields can be rejected.
	overrides, err := yaml.Marshal(mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode overrides: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(overrides))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("failed to apply overrides to %s: %w", base, err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// validate rejects documents that break the invariants of the model:
// unknown categorical values, repeated outlier types, negative ARIMA orders
// and malformed spans.
func (s *TramoSeatsSpec) validate() error {
	if t := s.Tramo; t != nil {
		if err := t.validate(); err != nil {
			return err
		}
	}
	if seats := s.Seats; seats != nil {
		if !seats.ApproximationMode.IsValid() {
			return fmt.Errorf("seats.approximation_mode: unknown value %q", seats.ApproximationMode)
		}
		if !seats.Method.IsValid() {
			return fmt.Errorf("seats.method: unknown value %q", seats.Method)
		}
	}
	return nil
}

func (t *TramoSpec) validate() error {
	if t.Transform != nil && !t.Transform.Function.IsValid() {
		return fmt.Errorf("tramo.transform.function: unknown value %q", t.Transform.Function)
	}
	if t.Estimate != nil {
		if err := t.Estimate.Span.Validate(); err != nil {
			return fmt.Errorf("tramo.estimate.span: %w", err)
		}
	}
	if t.Regression != nil && t.Regression.Calendar != nil {
		if td := t.Regression.Calendar.TradingDays; td != nil {
			if !td.Type.IsValid() {
				return fmt.Errorf("tramo.regression.calendar.tradingdays.type: unknown value %q", td.Type)
			}
			if !td.AutomaticMethod.IsValid() {
				return fmt.Errorf("tramo.regression.calendar.tradingdays.automatic_method: unknown value %q", td.AutomaticMethod)
			}
		}
		if e := t.Regression.Calendar.Easter; e != nil && !e.Option.IsValid() {
			return fmt.Errorf("tramo.regression.calendar.easter.option: unknown value %q", e.Option)
		}
	}
	if o := t.Outliers; o != nil {
		seen := make(map[domain.OutlierType]bool, len(o.Types))
		for _, ot := range o.Types {
			if !ot.IsValid() {
				return fmt.Errorf("tramo.outliers.types: unknown value %q", ot)
			}
			if seen[ot] {
				return fmt.Errorf("tramo.outliers.types: %s listed twice", ot)
			}
			seen[ot] = true
		}
		if err := o.Span.Validate(); err != nil {
			return fmt.Errorf("tramo.outliers.span: %w", err)
		}
	}
	if a := t.Arima; a != nil {
		orders := []struct {
			name  string
			value int
		}{
			{"p", a.P}, {"d", a.D}, {"q", a.Q},
			{"bp", a.BP}, {"bd", a.BD}, {"bq", a.BQ},
		}
		for _, o := range orders {
			if o.value < 0 {
				return fmt.Errorf("tramo.arima.%s: order %d is negative", o.name, o.value)
			}
		}
	}
	return nil
}
