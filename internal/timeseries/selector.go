package timeseries

import (
	"errors"
	"fmt"
)

// SelectorType tells which part of a series a PeriodSelector keeps.
type SelectorType string

const (
	SelectorAll     SelectorType = "All"
	SelectorBetween SelectorType = "Between"
)

// IsValid returns true if the selector type is known.
func (t SelectorType) IsValid() bool {
	return t == SelectorAll || t == SelectorBetween
}

// PeriodSelector describes the sub-range of a series taking part in a
// computation. A Between selector keeps the observations in [From, To], then
// drops ExcludeFirst leading and ExcludeLast trailing observations. First and
// Last, when positive, further restrict the range to its first or last n
// observations.
type PeriodSelector struct {
	Type         SelectorType `yaml:"type"`
	From         Day          `yaml:"from,omitempty"`
	To           Day          `yaml:"to,omitempty"`
	ExcludeFirst int          `yaml:"exclude_first,omitempty"`
	ExcludeLast  int          `yaml:"exclude_last,omitempty"`
	First        int          `yaml:"first,omitempty"`
	Last         int          `yaml:"last,omitempty"`
}

// Between returns a selector bounded by from and to, both inclusive.
func Between(from, to Day) *PeriodSelector {
	return &PeriodSelector{Type: SelectorBetween, From: from, To: to}
}

// Excluding drops n0 leading and n1 trailing observations. Negative counts are ignored.
func (s *PeriodSelector) Excluding(n0, n1 int) *PeriodSelector {
	s.ExcludeFirst = nonNegative(n0)
	s.ExcludeLast = nonNegative(n1)
	return s
}

// KeepFirst restricts the selection to its first n observations; 0 keeps all.
func (s *PeriodSelector) KeepFirst(n int) *PeriodSelector {
	s.First = nonNegative(n)
	return s
}

// KeepLast restricts the selection to its last n observations; 0 keeps all.
func (s *PeriodSelector) KeepLast(n int) *PeriodSelector {
	s.Last = nonNegative(n)
	return s
}

// Contains reports whether d lies inside the date bounds of the selector. A
// nil or All selector contains every day. Observation counts are not
// considered since they depend on the series.
func (s *PeriodSelector) Contains(d Day) bool {
	if s == nil || s.Type != SelectorBetween {
		return true
	}
	return !d.Before(s.From) && !d.After(s.To)
}

// Validate checks the selector type, the observation counts and, for Between
// selectors, that both bounds are set and ordered.
func (s *PeriodSelector) Validate() error {
	if s == nil {
		return nil
	}
	if !s.Type.IsValid() {
		return fmt.Errorf("unknown selector type %q", s.Type)
	}
	if s.ExcludeFirst < 0 || s.ExcludeLast < 0 || s.First < 0 || s.Last < 0 {
		return errors.New("observation counts must not be negative")
	}
	if s.Type != SelectorBetween {
		return nil
	}
	if s.From.IsZero() || s.To.IsZero() {
		return errors.New("between selector needs both from and to")
	}
	if s.From.After(s.To) {
		return fmt.Errorf("from %s is after to %s", s.From, s.To)
	}
	return nil
}

// Overlaps reports whether any day of p lies inside the date bounds of s.
func (s *PeriodSelector) Overlaps(p Period) bool {
	if s == nil || s.Type != SelectorBetween {
		return true
	}
	return s.Contains(p.Start()) || s.Contains(p.End()) || p.Contains(s.From)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
