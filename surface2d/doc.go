// Package surface2d implements BivariateFunction: value(x,y) over a pair of
// domains (domainX, domainY), plus two variants —
// Plane (a linear a*x+b*y+c form, used for superelevation-free flat road
// cross-sections) and Shape (a family of curve1d.Function lateral
// cross-sections indexed by arc-length position, used for
// lateralProfile.shape).
package surface2d

import (
	"fmt"

	"github.com/go-roadspaces/roadspaces/interval"
)

// Function is the shared contract for bivariate functions over (x, y),
// conventionally (s, t) in this module's usage.
type Function interface {
	DomainX() interval.Range
	DomainY() interval.Range
	// Value evaluates the function at (x, y); it is a domain error if x is
	// outside DomainX, or if y is outside DomainY and the variant does not
	// extrapolate on that axis.
	Value(x, y float64) (float64, error)
}

// OutOfDomainError mirrors curve1d.OutOfDomainError for the 2-argument case.
type OutOfDomainError struct {
	Axis   string // "x" or "y"
	Value  float64
	Domain interval.Range
}

func (e OutOfDomainError) Error() string {
	return fmt.Sprintf("surface2d: %s=%g out of domain %s", e.Axis, e.Value, e.Domain.String())
}
