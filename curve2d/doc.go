// Package curve2d implements AbstractCurve2D and its variants: parametric
// plane curves defined over an arc-length domain, each able to report its
// local-frame position, heading, and pose at any parameter inside (or, via
// the Unbounded methods, outside) its domain.
//
// Domain membership is fuzzy, governed by each curve's own tolerance, the
// same contract curve1d.Function uses — OutOfDomain is a typed, returned
// error rather than a panic. The variant set (LineSegment2D, ArcSegment2D,
// SpiralSegment2D, CubicCurve2D, ParameterTransformedCurve2D,
// CompositeCurve2D) follows the tagged-interface pattern curve1d already
// established, rather than a class hierarchy.
package curve2d

import (
	"fmt"

	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// Curve2D is the shared contract every plane-curve primitive satisfies.
type Curve2D interface {
	Domain() interval.Range
	Tolerance() float64

	// Point/Rotation/Pose evaluate within Domain(); OutOfDomainError is
	// returned (never panicked) outside it.
	PointLocalCS(s float64) (spatial.Vector2D, error)
	RotationLocalCS(s float64) (spatial.Rotation2D, error)
	PoseLocalCS(s float64) (Pose2D, error)

	// Unbounded variants never fail; callers are responsible for clamping
	// or extrapolating meaningfully outside the domain.
	PointLocalCSUnbounded(s float64) spatial.Vector2D
	RotationLocalCSUnbounded(s float64) spatial.Rotation2D
	PoseLocalCSUnbounded(s float64) Pose2D
}

// Pose2D is a plane position plus heading, the 2D analogue of spatial.Pose.
type Pose2D struct {
	Point    spatial.Vector2D
	Rotation spatial.Rotation2D
}

// OutOfDomainError mirrors curve1d.OutOfDomainError for plane curves.
type OutOfDomainError struct {
	Value  float64
	Domain interval.Range
}

func (e OutOfDomainError) Error() string {
	return fmt.Sprintf("curve2d: s=%g out of domain %s", e.Value, e.Domain.String())
}

func checkDomain(domain interval.Range, tol, s float64) error {
	if !domain.FuzzyContains(s, tol) {
		return OutOfDomainError{Value: s, Domain: domain}
	}
	return nil
}
