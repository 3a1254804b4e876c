package interval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-roadspaces/roadspaces/interval"
)

func TestNewClosedInvalid(t *testing.T) {
	_, err := interval.NewClosed(5, 1)
	require.Error(t, err)
	require.ErrorAs(t, err, &interval.ErrInvalidRange{})
}

func TestContainsClosedOpen(t *testing.T) {
	r, err := interval.NewClosedOpen(0, 10)
	require.NoError(t, err)
	require.True(t, r.Contains(0))
	require.True(t, r.Contains(9.999))
	require.False(t, r.Contains(10))
}

func TestFuzzyContains(t *testing.T) {
	r, err := interval.NewClosed(0, 10)
	require.NoError(t, err)
	require.True(t, r.FuzzyContains(-1e-9, 1e-7))
	require.False(t, r.FuzzyContains(-1, 1e-7))
	require.True(t, r.FuzzyContains(10+1e-9, 1e-7))
}

func TestFuzzyEncloses(t *testing.T) {
	outer, _ := interval.NewClosed(0, 10)
	inner, _ := interval.NewClosed(1, 9)
	require.True(t, outer.FuzzyEncloses(inner, 1e-7))
	require.False(t, inner.FuzzyEncloses(outer, 1e-7))

	almostInner, _ := interval.NewClosed(-1e-9, 10+1e-9)
	require.True(t, outer.FuzzyEncloses(almostInner, 1e-7))
}

func TestIntersect(t *testing.T) {
	a, _ := interval.NewClosed(0, 10)
	b, _ := interval.NewClosed(5, 15)
	got := a.Intersect(b)
	require.Equal(t, 5.0, got.LowerEndpoint())
	require.Equal(t, 10.0, got.UpperEndpoint())

	c, _ := interval.NewClosed(20, 30)
	disjoint := a.Intersect(c)
	require.True(t, disjoint.IsEmpty())
}

func TestShiftLowerEndpointTo(t *testing.T) {
	r, _ := interval.NewClosed(5, 15)
	shifted := r.ShiftLowerEndpointTo(0)
	require.Equal(t, 0.0, shifted.LowerEndpoint())
	require.Equal(t, 10.0, shifted.UpperEndpoint())
	require.Equal(t, r.Length(), shifted.Length())
}

func TestRangeSetEnclosesNoGaps(t *testing.T) {
	a, _ := interval.NewClosedOpen(0, 5)
	b, _ := interval.NewClosedOpen(5, 10)
	set := interval.NewRangeSet(a, b)
	full, _ := interval.NewClosed(0, 10)
	require.Empty(t, set.Gaps(full))
}

func TestRangeSetGap(t *testing.T) {
	a, _ := interval.NewClosedOpen(0, 5)
	b, _ := interval.NewClosedOpen(6, 10)
	set := interval.NewRangeSet(a, b)
	full, _ := interval.NewClosed(0, 10)
	gaps := set.Gaps(full)
	require.Len(t, gaps, 1)
	require.Equal(t, 5.0, gaps[0].LowerEndpoint())
	require.Equal(t, 6.0, gaps[0].UpperEndpoint())
}
