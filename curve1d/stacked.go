package curve1d

import "github.com/go-roadspaces/roadspaces/interval"

// Combiner selects how Stacked folds its member values together.
type Combiner int

const (
	// Sum adds member values/slopes.
	Sum Combiner = iota
	// Product multiplies member values; Slope uses the product rule.
	Product
)

// Stacked combines several functions sharing overlapping domains into one,
// over the intersection of their domains. StackedOfSum is used by the
// PR→Roadspaces transformer, e.g. to add a repeat object's height ramp to
// its z-offset ramp, giving the top edge of its cross-section.
type Stacked struct {
	members  []Function
	combiner Combiner
	domain   interval.Range
	tol      float64
}

// StackedOfSum builds a Stacked function that sums its members.
func StackedOfSum(tol float64, members ...Function) (Stacked, error) {
	return newStacked(Sum, tol, members...)
}

// StackedOfProduct builds a Stacked function that multiplies its members.
func StackedOfProduct(tol float64, members ...Function) (Stacked, error) {
	return newStacked(Product, tol, members...)
}

func newStacked(combiner Combiner, tol float64, members ...Function) (Stacked, error) {
	if len(members) == 0 {
		return Stacked{}, ErrEmptyStack
	}
	domain := members[0].Domain()
	for _, m := range members[1:] {
		domain = domain.Intersect(m.Domain())
	}
	return Stacked{
		members:  append([]Function(nil), members...),
		combiner: combiner,
		domain:   domain,
		tol:      tol,
	}, nil
}

func (s Stacked) Domain() interval.Range { return s.domain }

func (s Stacked) Value(x float64) (float64, error) {
	if err := checkDomain(x, s.domain, s.tol); err != nil {
		return 0, err
	}
	return s.ValueUnbounded(x), nil
}

func (s Stacked) Slope(x float64) (float64, error) {
	if err := checkDomain(x, s.domain, s.tol); err != nil {
		return 0, err
	}
	return s.SlopeUnbounded(x), nil
}

func (s Stacked) ValueUnbounded(x float64) float64 {
	switch s.combiner {
	case Product:
		acc := 1.0
		for _, m := range s.members {
			acc *= m.ValueUnbounded(x)
		}
		return acc
	default: // Sum
		var acc float64
		for _, m := range s.members {
			acc += m.ValueUnbounded(x)
		}
		return acc
	}
}

func (s Stacked) SlopeUnbounded(x float64) float64 {
	switch s.combiner {
	case Product:
		// d/dx (f1*f2*...*fn) = sum_i ( f_i' * prod_{j!=i} f_j )
		var acc float64
		for i := range s.members {
			term := s.members[i].SlopeUnbounded(x)
			for j, m := range s.members {
				if j == i {
					continue
				}
				term *= m.ValueUnbounded(x)
			}
			acc += term
		}
		return acc
	default: // Sum
		var acc float64
		for _, m := range s.members {
			acc += m.SlopeUnbounded(x)
		}
		return acc
	}
}
