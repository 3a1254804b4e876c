package curve2d

import (
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// ParameterTransformedCurve2D reparameterizes a wrapped curve whose own
// domain is [a,b] so that callers see domain [0, reportedLength] instead:
// evaluating at s maps affinely to a + (s/reportedLength)*(b-a) before
// delegating. This reconciles a geometry's declared domain with a length
// value reported independently (and possibly inconsistently) elsewhere in
// a road description.
type ParameterTransformedCurve2D struct {
	wrapped        Curve2D
	reportedLength float64
	domain         interval.Range
	tol            float64
}

// NewParameterTransformedCurve2D builds the reparameterized view. Requires
// reportedLength > 0.
func NewParameterTransformedCurve2D(wrapped Curve2D, reportedLength float64, tol float64) (ParameterTransformedCurve2D, error) {
	if reportedLength <= 0 {
		return ParameterTransformedCurve2D{}, ErrNonPositiveLength
	}
	domain, err := interval.NewClosed(0, reportedLength)
	if err != nil {
		return ParameterTransformedCurve2D{}, err
	}
	return ParameterTransformedCurve2D{wrapped: wrapped, reportedLength: reportedLength, domain: domain, tol: tol}, nil
}

func (c ParameterTransformedCurve2D) Domain() interval.Range { return c.domain }
func (c ParameterTransformedCurve2D) Tolerance() float64     { return c.tol }

func (c ParameterTransformedCurve2D) mapParameter(s float64) float64 {
	wd := c.wrapped.Domain()
	a, b := wd.LowerEndpoint(), wd.UpperEndpoint()
	return a + (s/c.reportedLength)*(b-a)
}

func (c ParameterTransformedCurve2D) PointLocalCS(s float64) (spatial.Vector2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Vector2D{}, err
	}
	return c.wrapped.PointLocalCSUnbounded(c.mapParameter(s)), nil
}

func (c ParameterTransformedCurve2D) PointLocalCSUnbounded(s float64) spatial.Vector2D {
	return c.wrapped.PointLocalCSUnbounded(c.mapParameter(s))
}

func (c ParameterTransformedCurve2D) RotationLocalCS(s float64) (spatial.Rotation2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Rotation2D{}, err
	}
	return c.wrapped.RotationLocalCSUnbounded(c.mapParameter(s)), nil
}

func (c ParameterTransformedCurve2D) RotationLocalCSUnbounded(s float64) spatial.Rotation2D {
	return c.wrapped.RotationLocalCSUnbounded(c.mapParameter(s))
}

func (c ParameterTransformedCurve2D) PoseLocalCS(s float64) (Pose2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return Pose2D{}, err
	}
	return c.wrapped.PoseLocalCSUnbounded(c.mapParameter(s)), nil
}

func (c ParameterTransformedCurve2D) PoseLocalCSUnbounded(s float64) Pose2D {
	return c.wrapped.PoseLocalCSUnbounded(c.mapParameter(s))
}
