package builder

import (
	"errors"
	"strings"
)

// Diagnostic is a non-fatal problem found while mapping one section. Err is a
// *domain.ValidationWarning or a *domain.DateParseError.
type Diagnostic struct {
	Section string
	Err     error
}

func (d Diagnostic) Error() string {
	return d.Section + ": " + d.Err.Error()
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Diagnostics is the collection of non-fatal problems of one build.
type Diagnostics []Diagnostic

func (d Diagnostics) Error() string {
	if len(d) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(d))
	for _, diag := range d {
		msgs = append(msgs, diag.Error())
	}
	return "diagnostics: " + strings.Join(msgs, "; ")
}

// Has reports whether any diagnostic matches target as reported by errors.Is.
func (d Diagnostics) Has(target error) bool {
	for _, diag := range d {
		if errors.Is(diag, target) {
			return true
		}
	}
	return false
}

// Section returns the diagnostics of one section.
func (d Diagnostics) Section(name string) Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if diag.Section == name {
			out = append(out, diag)
		}
	}
	return out
}

func (d Diagnostics) add(section string, errs []error) Diagnostics {
	for _, err := range errs {
		d = append(d, Diagnostic{Section: section, Err: err})
	}
	return d
}
