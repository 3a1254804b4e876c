package curve2d

import (
	"math"

	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/numeric"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// ArcSegment2D is a constant-curvature circular arc. Curvature sign
// determines turn direction: positive curves left (counter-clockwise),
// negative curves right.
type ArcSegment2D struct {
	curvature float64
	domain    interval.Range
	tol       float64
	startPose Pose2D
}

// NewArcSegment2D builds a circular arc. curvature == 0 degenerates to a
// straight line and is accepted (the radius-based formulas below handle it
// via a small-curvature branch).
func NewArcSegment2D(curvature float64, domain interval.Range, tol float64, startPose Pose2D) ArcSegment2D {
	return ArcSegment2D{curvature: curvature, domain: domain, tol: tol, startPose: startPose}
}

func (c ArcSegment2D) Domain() interval.Range { return c.domain }
func (c ArcSegment2D) Tolerance() float64     { return c.tol }
func (c ArcSegment2D) Curvature() float64     { return c.curvature }

func (c ArcSegment2D) PointLocalCS(s float64) (spatial.Vector2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Vector2D{}, err
	}
	return c.PointLocalCSUnbounded(s), nil
}

func (c ArcSegment2D) PointLocalCSUnbounded(s float64) spatial.Vector2D {
	l := s - c.domain.LowerEndpoint()
	if numeric.FuzzyEquals(c.curvature, 0, 1e-14) {
		return LineSegment2D{domain: c.domain, startPose: c.startPose}.PointLocalCSUnbounded(s)
	}
	h0 := c.startPose.Rotation.Angle()
	r := 1 / c.curvature
	dTheta := l * c.curvature
	dx := r * (math.Sin(h0+dTheta) - math.Sin(h0))
	dy := -r * (math.Cos(h0+dTheta) - math.Cos(h0))
	return c.startPose.Point.Add(spatial.Vector2D{X: dx, Y: dy})
}

func (c ArcSegment2D) RotationLocalCS(s float64) (spatial.Rotation2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Rotation2D{}, err
	}
	return c.RotationLocalCSUnbounded(s), nil
}

func (c ArcSegment2D) RotationLocalCSUnbounded(s float64) spatial.Rotation2D {
	l := s - c.domain.LowerEndpoint()
	return spatial.NewRotation2D(c.startPose.Rotation.Angle() + l*c.curvature)
}

func (c ArcSegment2D) PoseLocalCS(s float64) (Pose2D, error) {
	p, err := c.PointLocalCS(s)
	if err != nil {
		return Pose2D{}, err
	}
	return Pose2D{Point: p, Rotation: c.RotationLocalCSUnbounded(s)}, nil
}

func (c ArcSegment2D) PoseLocalCSUnbounded(s float64) Pose2D {
	return Pose2D{Point: c.PointLocalCSUnbounded(s), Rotation: c.RotationLocalCSUnbounded(s)}
}
