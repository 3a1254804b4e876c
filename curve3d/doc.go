// Package curve3d lifts a plane curve into 3-space: Curve3D pairs a
// curve2d.Curve2D with a height function and a torsion (roll) function,
// and CurveRelativeParametricSurface3D layers a bivariate height field on
// top of a Curve3D to resolve any (s,t) pair to a global point — the
// representation a road's reference line and its paved surface use
// throughout this module.
package curve3d

import (
	"fmt"

	"github.com/go-roadspaces/roadspaces/interval"
)

// OutOfDomainError mirrors curve1d.OutOfDomainError for curve3d's s-domain.
type OutOfDomainError struct {
	S      float64
	Domain interval.Range
}

func (e OutOfDomainError) Error() string {
	return fmt.Sprintf("curve3d: s=%g out of domain %s", e.S, e.Domain.String())
}

// DomainMismatchError is returned by constructors when the sub-models do
// not share a common domain within tolerance.
type DomainMismatchError struct {
	Detail string
}

func (e DomainMismatchError) Error() string {
	return fmt.Sprintf("curve3d: domain mismatch between sub-models: %s", e.Detail)
}
