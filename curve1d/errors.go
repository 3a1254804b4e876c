package curve1d

import "errors"

// Sentinel errors for curve1d constructors, named "curve1d: message" per
// this module's per-package sentinel-error convention.
var (
	// ErrDegenerateLinear is returned by LinearOfInclusivePoints when the
	// two points share the same x coordinate (no function exists).
	ErrDegenerateLinear = errors.New("curve1d: linear function requires x1 != x2")

	// ErrBreakpointsNotStrictlyAscending is returned when Concatenated's
	// breakpoints are not strictly increasing.
	ErrBreakpointsNotStrictlyAscending = errors.New("curve1d: concatenated breakpoints must be strictly ascending")

	// ErrPieceCountMismatch is returned when Concatenated receives a
	// different number of pieces than breakpoints.
	ErrPieceCountMismatch = errors.New("curve1d: concatenated piece count must equal breakpoint count")

	// ErrEmptyConcatenation is returned when Concatenated receives no pieces.
	ErrEmptyConcatenation = errors.New("curve1d: concatenated requires at least one piece")

	// ErrSectionNotEnclosed is returned when Sectioned's sub-domain is not
	// fuzzily enclosed by the wrapped function's domain.
	ErrSectionNotEnclosed = errors.New("curve1d: sectioned sub-domain not enclosed by wrapped domain")

	// ErrEmptyStack is returned when Stacked receives no members.
	ErrEmptyStack = errors.New("curve1d: stacked requires at least one member")
)
