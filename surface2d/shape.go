package surface2d

import (
	"errors"
	"sort"

	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/interval"
)

// ErrEmptyShape is returned by NewShape when no sections are supplied.
var ErrEmptyShape = errors.New("surface2d: shape requires at least one section")

// Shape assembles the lateralProfile.shape table: one lateral cross-section
// curve1d.Function (in t) recorded at each of several arc-length positions
// s, valid from its recorded position until the next one (the same
// piecewise-by-position convention as curve1d.Concatenated, but selecting a
// whole sub-function rather than a polynomial piece). ExtrapolateS controls
// whether s before the first recorded position clamps to that first
// section (true) or errors (false); ExtrapolateT does the same for t
// falling outside the selected section's own domain.
type Shape struct {
	positions     []float64
	sections      []curve1d.Function
	extrapolateS  bool
	extrapolateT  bool
	domainX       interval.Range
	domainY       interval.Range
	tol           float64
}

// NewShape builds a Shape from a position->function table.
func NewShape(entries map[float64]curve1d.Function, extrapolateS, extrapolateT bool, domainX, domainY interval.Range, tol float64) (Shape, error) {
	if len(entries) == 0 {
		return Shape{}, ErrEmptyShape
	}
	positions := make([]float64, 0, len(entries))
	for s := range entries {
		positions = append(positions, s)
	}
	sort.Float64s(positions)
	sections := make([]curve1d.Function, len(positions))
	for i, s := range positions {
		sections[i] = entries[s]
	}
	return Shape{
		positions:    positions,
		sections:     sections,
		extrapolateS: extrapolateS,
		extrapolateT: extrapolateT,
		domainX:      domainX,
		domainY:      domainY,
		tol:          tol,
	}, nil
}

func (sh Shape) DomainX() interval.Range { return sh.domainX }
func (sh Shape) DomainY() interval.Range { return sh.domainY }

// sectionFor returns the index of the section responsible for position s,
// i.e. the last recorded position <= s.
func (sh Shape) sectionFor(s float64) int {
	idx := sort.Search(len(sh.positions), func(i int) bool { return sh.positions[i] > s })
	if idx == 0 {
		return 0
	}
	return idx - 1
}

func (sh Shape) Value(s, t float64) (float64, error) {
	if !sh.domainX.FuzzyContains(s, sh.tol) {
		return 0, OutOfDomainError{Axis: "s", Value: s, Domain: sh.domainX}
	}
	if !sh.domainY.FuzzyContains(t, sh.tol) && !sh.extrapolateT {
		return 0, OutOfDomainError{Axis: "t", Value: t, Domain: sh.domainY}
	}

	if s < sh.positions[0] {
		if !sh.extrapolateS {
			return 0, OutOfDomainError{Axis: "s", Value: s, Domain: sh.domainX}
		}
		return sh.sections[0].ValueUnbounded(t), nil
	}

	fn := sh.sections[sh.sectionFor(s)]
	v, err := fn.Value(t)
	if err == nil {
		return v, nil
	}
	var domErr curve1d.OutOfDomainError
	if errors.As(err, &domErr) && sh.extrapolateT {
		return fn.ValueUnbounded(t), nil
	}
	return 0, err
}
