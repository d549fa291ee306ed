package builder

import (
	"github.com/saltfish/tramoseats/internal/domain"
)

// CoefficientGroup identifies one of the four ARIMA polynomials.
type CoefficientGroup string

const (
	GroupAR         CoefficientGroup = "phi"
	GroupMA         CoefficientGroup = "theta"
	GroupSeasonalAR CoefficientGroup = "bphi"
	GroupSeasonalMA CoefficientGroup = "btheta"
)

// Orders are the polynomial orders that size the coefficient groups.
type Orders struct {
	P, Q, BP, BQ int
}

// Total returns the number of coefficients the orders call for.
func (o Orders) Total() int {
	return clampOrder(o.P) + clampOrder(o.Q) + clampOrder(o.BP) + clampOrder(o.BQ)
}

// Segment is the part of the flat coefficient lists belonging to one group.
// Size is the group order; Values and Kinds hold the entries actually
// available at [Offset, Offset+Size), so they are shorter than Size when the
// lists run out.
type Segment struct {
	Group  CoefficientGroup
	Offset int
	Size   int
	Values []string
	Kinds  []string
}

// Partition splits the parallel coefficient lists into the AR, MA, seasonal
// AR and seasonal MA groups, in that order, as consecutive non-overlapping
// ranges of sizes P, Q, BP and BQ. The four segments are always returned. A
// non-nil *domain.ValidationWarning reports lists of unequal length (no
// segment is filled then) or a count that does not match the orders.
func Partition(values, kinds []string, orders Orders) ([]Segment, error) {
	sizes := []struct {
		group CoefficientGroup
		size  int
	}{
		{GroupAR, clampOrder(orders.P)},
		{GroupMA, clampOrder(orders.Q)},
		{GroupSeasonalAR, clampOrder(orders.BP)},
		{GroupSeasonalMA, clampOrder(orders.BQ)},
	}

	if len(values) != len(kinds) {
		segments := make([]Segment, 0, len(sizes))
		offset := 0
		for _, s := range sizes {
			segments = append(segments, Segment{Group: s.group, Offset: offset, Size: s.size})
			offset += s.size
		}
		return segments, domain.NewValidationWarning("arima.coef",
			"%d coefficients but %d coefficient types", len(values), len(kinds))
	}

	n := len(values)
	segments := make([]Segment, 0, len(sizes))
	offset := 0
	for _, s := range sizes {
		lo, hi := min(offset, n), min(offset+s.size, n)
		segments = append(segments, Segment{
			Group:  s.group,
			Offset: offset,
			Size:   s.size,
			Values: values[lo:hi:hi],
			Kinds:  kinds[lo:hi:hi],
		})
		offset += s.size
	}

	if n != offset {
		return segments, domain.NewValidationWarning("arima.coef",
			"%d coefficients supplied for P+Q+BP+BQ=%d", n, offset)
	}
	return segments, nil
}

func clampOrder(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
