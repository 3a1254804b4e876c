package curve1d

import "github.com/go-roadspaces/roadspaces/interval"

// Linear is slope*x + intercept over domain, evaluated in the function's
// own parameter (not a local, breakpoint-relative one — that convention
// belongs to Concatenated's pieces only).
type Linear struct {
	slope, intercept float64
	domain           interval.Range
	tol              float64
}

// NewLinear builds a Linear function. tol is the fuzzy-domain tolerance
// used by Value/Slope (normally config.Parameters.NumberTolerance).
func NewLinear(slope, intercept float64, domain interval.Range, tol float64) Linear {
	return Linear{slope: slope, intercept: intercept, domain: domain, tol: tol}
}

// LinearOfInclusivePoints builds the unique Linear function whose graph
// passes through p1 and p2, with domain [min(x1,x2), max(x1,x2)].
// Requires p1.X != p2.X.
func LinearOfInclusivePoints(x1, y1, x2, y2, tol float64) (Linear, error) {
	if x1 == x2 {
		return Linear{}, ErrDegenerateLinear
	}
	lo, hi := x1, x2
	if lo > hi {
		lo, hi = hi, lo
	}
	domain, err := interval.NewClosed(lo, hi)
	if err != nil {
		return Linear{}, err
	}
	slope := (y2 - y1) / (x2 - x1)
	intercept := y1 - slope*x1
	return NewLinear(slope, intercept, domain, tol), nil
}

func (l Linear) Domain() interval.Range { return l.domain }

func (l Linear) Value(x float64) (float64, error) {
	if err := checkDomain(x, l.domain, l.tol); err != nil {
		return 0, err
	}
	return l.ValueUnbounded(x), nil
}

func (l Linear) Slope(x float64) (float64, error) {
	if err := checkDomain(x, l.domain, l.tol); err != nil {
		return 0, err
	}
	return l.SlopeUnbounded(x), nil
}

func (l Linear) ValueUnbounded(x float64) float64 { return l.slope*x + l.intercept }
func (l Linear) SlopeUnbounded(float64) float64   { return l.slope }
