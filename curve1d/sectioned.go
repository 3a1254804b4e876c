package curve1d

import "github.com/go-roadspaces/roadspaces/interval"

// Sectioned re-exposes a sub-domain of wrapped under its own, zero-based
// parameter: value(x) == wrapped.value(sub.LowerEndpoint() + x) for x in
// [0, sub.Length()]. This is how a single elevation/shape Concatenated
// spanning an entire road is exposed per-lane-section as if it started at
// s=0.
type Sectioned struct {
	wrapped Function
	sub     interval.Range
	tol     float64
}

// NewSectioned builds a Sectioned view of wrapped restricted to sub.
// Requires wrapped.Domain() to fuzzily enclose sub (tolerance tol);
// otherwise returns ErrSectionNotEnclosed.
func NewSectioned(wrapped Function, sub interval.Range, tol float64) (Sectioned, error) {
	if !wrapped.Domain().FuzzyEncloses(sub, tol) {
		return Sectioned{}, ErrSectionNotEnclosed
	}
	return Sectioned{wrapped: wrapped, sub: sub, tol: tol}, nil
}

// localDomain is [0, sub.Length()] with the same bound types as sub.
func (s Sectioned) Domain() interval.Range {
	return s.sub.ShiftLowerEndpointTo(0)
}

func (s Sectioned) Value(x float64) (float64, error) {
	if err := checkDomain(x, s.Domain(), s.tol); err != nil {
		return 0, err
	}
	return s.wrapped.Value(s.sub.LowerEndpoint() + x)
}

func (s Sectioned) Slope(x float64) (float64, error) {
	if err := checkDomain(x, s.Domain(), s.tol); err != nil {
		return 0, err
	}
	return s.wrapped.Slope(s.sub.LowerEndpoint() + x)
}

func (s Sectioned) ValueUnbounded(x float64) float64 {
	return s.wrapped.ValueUnbounded(s.sub.LowerEndpoint() + x)
}

func (s Sectioned) SlopeUnbounded(x float64) float64 {
	return s.wrapped.SlopeUnbounded(s.sub.LowerEndpoint() + x)
}
