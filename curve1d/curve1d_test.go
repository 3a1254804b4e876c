package curve1d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/interval"
)

const tol = 1e-7

func TestLinearOfInclusivePoints(t *testing.T) {
	l, err := curve1d.LinearOfInclusivePoints(0, 1, 10, 11, tol)
	require.NoError(t, err)
	v1, err := l.Value(0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, v1, 1e-12)
	v2, err := l.Value(10)
	require.NoError(t, err)
	require.InDelta(t, 11.0, v2, 1e-12)
}

func TestLinearOfInclusivePointsDegenerate(t *testing.T) {
	_, err := curve1d.LinearOfInclusivePoints(5, 1, 5, 2, tol)
	require.ErrorIs(t, err, curve1d.ErrDegenerateLinear)
}

func TestPolynomialValueAndSlope(t *testing.T) {
	domain, err := interval.NewClosed(0, 10)
	require.NoError(t, err)
	// f(x) = 1 + 2x + 3x^2
	p := curve1d.NewPolynomial([]float64{1, 2, 3}, domain, tol)
	v, err := p.Value(2)
	require.NoError(t, err)
	require.InDelta(t, 1+4+12, v, 1e-12)
	sl, err := p.Slope(2)
	require.NoError(t, err)
	require.InDelta(t, 2+12, sl, 1e-12) // f'(x) = 2 + 6x
}

func TestPolynomialOutOfDomain(t *testing.T) {
	domain, _ := interval.NewClosed(0, 10)
	p := curve1d.NewPolynomial([]float64{1}, domain, tol)
	_, err := p.Value(11)
	var domErr curve1d.OutOfDomainError
	require.ErrorAs(t, err, &domErr)
}

func TestPolynomialBoundaryWithinTolerance(t *testing.T) {
	domain, _ := interval.NewClosed(0, 10)
	p := curve1d.NewPolynomial([]float64{1}, domain, 1e-6)
	_, err := p.Value(10 + 1e-7)
	require.NoError(t, err)
	_, err = p.Value(10 + 1e-5)
	require.Error(t, err)
}

func TestConcatenatedLocalParameterConvention(t *testing.T) {
	// piece 0 on [0,5): f(x_local) = x_local (i.e. global value == x at s=0..5)
	// piece 1 on [5,10]: f(x_local) = 10 + x_local (global value == 10+（x-5) )
	c, err := curve1d.ConcatenatedOfPolynomials(
		[]float64{0, 5},
		[][]float64{{0, 1}, {10, 1}},
		false, nil, tol,
	)
	require.NoError(t, err)

	v0, err := c.Value(0)
	require.NoError(t, err)
	require.InDelta(t, 0.0, v0, 1e-12)

	v4, err := c.Value(4)
	require.NoError(t, err)
	require.InDelta(t, 4.0, v4, 1e-12)

	v5, err := c.Value(5)
	require.NoError(t, err)
	require.InDelta(t, 10.0, v5, 1e-12, "piece 1 starts fresh in its local parameter")

	v10, err := c.Value(10)
	require.NoError(t, err)
	require.InDelta(t, 15.0, v10, 1e-12, "last piece is closed at its upper end")
}

func TestConcatenatedRejectsNonAscendingBreakpoints(t *testing.T) {
	_, err := curve1d.ConcatenatedOfPolynomials(
		[]float64{0, 0},
		[][]float64{{0}, {0}},
		false, nil, tol,
	)
	require.ErrorIs(t, err, curve1d.ErrBreakpointsNotStrictlyAscending)
}

func TestConcatenatedPrependConstant(t *testing.T) {
	c, err := curve1d.ConcatenatedOfPolynomials(
		[]float64{0},
		[][]float64{{3}},
		true, nil, tol,
	)
	require.NoError(t, err)
	require.InDelta(t, 3.0, c.ValueUnbounded(-100), 1e-12)
}

func TestSectionedRoundTrip(t *testing.T) {
	domain, _ := interval.NewClosed(0, 100)
	f := curve1d.NewLinear(2, 1, domain, tol)
	sub, _ := interval.NewClosed(10, 20)
	sec, err := curve1d.NewSectioned(f, sub, tol)
	require.NoError(t, err)

	for x := 0.0; x <= 10; x += 2.5 {
		want, werr := f.Value(sub.LowerEndpoint() + x)
		require.NoError(t, werr)
		got, gerr := sec.Value(x)
		require.NoError(t, gerr)
		require.InDelta(t, want, got, 1e-12)
	}
}

func TestSectionedRequiresEnclosure(t *testing.T) {
	domain, _ := interval.NewClosed(0, 10)
	f := curve1d.NewLinear(1, 0, domain, tol)
	sub, _ := interval.NewClosed(5, 20)
	_, err := curve1d.NewSectioned(f, sub, tol)
	require.ErrorIs(t, err, curve1d.ErrSectionNotEnclosed)
}

func TestStackedOfSum(t *testing.T) {
	d1, _ := interval.NewClosed(0, 10)
	d2, _ := interval.NewClosed(5, 15)
	a := curve1d.NewLinear(1, 0, d1, tol)
	b := curve1d.NewLinear(2, 1, d2, tol)
	sum, err := curve1d.StackedOfSum(tol, a, b)
	require.NoError(t, err)
	require.Equal(t, 5.0, sum.Domain().LowerEndpoint())
	require.Equal(t, 10.0, sum.Domain().UpperEndpoint())

	v, err := sum.Value(5)
	require.NoError(t, err)
	require.InDelta(t, 5+11, v, 1e-12)

	sl, err := sum.Slope(5)
	require.NoError(t, err)
	require.InDelta(t, 3.0, sl, 1e-12)
}

func TestAllFiniteOverDomain(t *testing.T) {
	// value/slope must stay finite everywhere across the domain.
	domain, _ := interval.NewClosed(-5, 5)
	p := curve1d.NewPolynomial([]float64{1, -2, 0.5}, domain, tol)
	for x := -5.0; x <= 5.0; x += 0.5 {
		v, err := p.Value(x)
		require.NoError(t, err)
		require.False(t, isNaNOrInf(v))
		sl, err := p.Slope(x)
		require.NoError(t, err)
		require.False(t, isNaNOrInf(sl))
	}
}

func isNaNOrInf(v float64) bool {
	return v != v || v > 1e300 || v < -1e300
}
