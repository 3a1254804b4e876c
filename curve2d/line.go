package curve2d

import (
	"math"

	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// LineSegment2D is a straight run of length domain.Length() starting at
// startPose, extending in startPose's heading direction.
type LineSegment2D struct {
	domain    interval.Range
	tol       float64
	startPose Pose2D
}

// NewLineSegment2D builds a straight segment.
func NewLineSegment2D(domain interval.Range, tol float64, startPose Pose2D) LineSegment2D {
	return LineSegment2D{domain: domain, tol: tol, startPose: startPose}
}

func (c LineSegment2D) Domain() interval.Range { return c.domain }
func (c LineSegment2D) Tolerance() float64     { return c.tol }

func (c LineSegment2D) PointLocalCS(s float64) (spatial.Vector2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Vector2D{}, err
	}
	return c.PointLocalCSUnbounded(s), nil
}

func (c LineSegment2D) PointLocalCSUnbounded(s float64) spatial.Vector2D {
	l := s - c.domain.LowerEndpoint()
	dir := spatial.Vector2D{X: math.Cos(c.startPose.Rotation.Angle()), Y: math.Sin(c.startPose.Rotation.Angle())}
	return c.startPose.Point.Add(dir.Scale(l))
}

func (c LineSegment2D) RotationLocalCS(s float64) (spatial.Rotation2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Rotation2D{}, err
	}
	return c.RotationLocalCSUnbounded(s), nil
}

func (c LineSegment2D) RotationLocalCSUnbounded(float64) spatial.Rotation2D {
	return c.startPose.Rotation
}

func (c LineSegment2D) PoseLocalCS(s float64) (Pose2D, error) {
	p, err := c.PointLocalCS(s)
	if err != nil {
		return Pose2D{}, err
	}
	return Pose2D{Point: p, Rotation: c.startPose.Rotation}, nil
}

func (c LineSegment2D) PoseLocalCSUnbounded(s float64) Pose2D {
	return Pose2D{Point: c.PointLocalCSUnbounded(s), Rotation: c.startPose.Rotation}
}
