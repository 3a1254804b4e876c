package curve1d

import (
	"sort"

	"github.com/go-roadspaces/roadspaces/interval"
)

// Concatenated glues an ordered list of piece functions end to end along
// ascending breakpoints. Piece i is evaluated on [breakpoints[i],
// breakpoints[i+1]) — except the last piece, which is closed at its upper
// end — and, critically, is evaluated in the LOCAL parameter x -
// breakpoints[i], never in the global x. This local-parameter convention
// is depended on by every caller (elevation profiles, superelevation,
// lane widths).
//
// When prependConstant is set, the domain is extended to (-Inf,
// breakpoints[0]] with a constant value (prependConstantValue, or else
// value(breakpoints[0]) if prependConstantValue was not supplied) — used by
// the PR→Roadspaces transformer to extend superelevation/shape functions
// backwards from s=0.
type Concatenated struct {
	breakpoints     []float64
	pieces          []Function
	prependConstant bool
	prependValue    float64
	domain          interval.Range
	tol             float64
}

// ConcatenatedOfPolynomials builds a Concatenated whose pieces are
// Polynomials, one per breakpoint, each defined by its own ascending-degree
// coefficient slice evaluated in the local parameter.
func ConcatenatedOfPolynomials(breakpoints []float64, coeffs [][]float64, prependConstant bool, prependConstantValue *float64, tol float64) (Concatenated, error) {
	if len(breakpoints) == 0 {
		return Concatenated{}, ErrEmptyConcatenation
	}
	if len(breakpoints) != len(coeffs) {
		return Concatenated{}, ErrPieceCountMismatch
	}
	if !sort.SliceIsSorted(breakpoints, func(i, j int) bool { return breakpoints[i] < breakpoints[j] }) {
		return Concatenated{}, ErrBreakpointsNotStrictlyAscending
	}
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i] <= breakpoints[i-1] {
			return Concatenated{}, ErrBreakpointsNotStrictlyAscending
		}
	}

	pieces := make([]Function, len(breakpoints))
	for i, c := range coeffs {
		var localDomain interval.Range
		var err error
		if i == len(breakpoints)-1 {
			localDomain = interval.AtLeast(0)
		} else {
			localDomain, err = interval.NewClosedOpen(0, breakpoints[i+1]-breakpoints[i])
			if err != nil {
				return Concatenated{}, err
			}
		}
		pieces[i] = NewPolynomial(c, localDomain, tol)
	}

	return newConcatenated(breakpoints, pieces, prependConstant, prependConstantValue, tol)
}

func newConcatenated(breakpoints []float64, pieces []Function, prependConstant bool, prependConstantValue *float64, tol float64) (Concatenated, error) {
	domain := interval.AtLeast(breakpoints[0])
	if prependConstant {
		domain = interval.All()
	}

	c := Concatenated{
		breakpoints:     append([]float64(nil), breakpoints...),
		pieces:          append([]Function(nil), pieces...),
		prependConstant: prependConstant,
		domain:          domain,
		tol:             tol,
	}

	if prependConstant {
		if prependConstantValue != nil {
			c.prependValue = *prependConstantValue
		} else {
			c.prependValue = c.ValueUnbounded(breakpoints[0])
		}
	}

	return c, nil
}

func (c Concatenated) Domain() interval.Range { return c.domain }

// pieceIndex returns the index of the piece responsible for global x,
// clamped to the first/last piece when x falls in the prepended-constant
// region or past the final breakpoint (callers are expected to have
// already validated x against Domain()).
func (c Concatenated) pieceIndex(x float64) int {
	// breakpoints[i] is the start of piece i; find the last breakpoint <= x.
	idx := sort.Search(len(c.breakpoints), func(i int) bool { return c.breakpoints[i] > x })
	if idx == 0 {
		return 0
	}
	return idx - 1
}

func (c Concatenated) Value(x float64) (float64, error) {
	if err := checkDomain(x, c.domain, c.tol); err != nil {
		return 0, err
	}
	return c.ValueUnbounded(x), nil
}

func (c Concatenated) Slope(x float64) (float64, error) {
	if err := checkDomain(x, c.domain, c.tol); err != nil {
		return 0, err
	}
	return c.SlopeUnbounded(x), nil
}

func (c Concatenated) ValueUnbounded(x float64) float64 {
	if c.prependConstant && x < c.breakpoints[0] {
		return c.prependValue
	}
	i := c.pieceIndex(x)
	return c.pieces[i].ValueUnbounded(x - c.breakpoints[i])
}

func (c Concatenated) SlopeUnbounded(x float64) float64 {
	if c.prependConstant && x < c.breakpoints[0] {
		return 0
	}
	i := c.pieceIndex(x)
	return c.pieces[i].SlopeUnbounded(x - c.breakpoints[i])
}

// Breakpoints returns the ascending breakpoint slice (a defensive copy).
func (c Concatenated) Breakpoints() []float64 { return append([]float64(nil), c.breakpoints...) }
