package curve2d

import (
	"math"

	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// CubicCurve2D is a parametric cubic: local x and y are each a cubic
// polynomial in the local parameter l = s - domain.LowerEndpoint(), then
// rotated and translated by startPose — the param_poly3-style primitive.
type CubicCurve2D struct {
	polyX, polyY curve1d.Polynomial
	domain       interval.Range
	tol          float64
	startPose    Pose2D
}

// NewCubicCurve2D builds a parametric cubic curve. polyX and polyY must
// both be unbounded-safe over the local parameter range [0, domain.Length()].
func NewCubicCurve2D(polyX, polyY curve1d.Polynomial, domain interval.Range, tol float64, startPose Pose2D) CubicCurve2D {
	return CubicCurve2D{polyX: polyX, polyY: polyY, domain: domain, tol: tol, startPose: startPose}
}

func (c CubicCurve2D) Domain() interval.Range { return c.domain }
func (c CubicCurve2D) Tolerance() float64     { return c.tol }

func (c CubicCurve2D) localPoint(l float64) spatial.Vector2D {
	return spatial.Vector2D{X: c.polyX.ValueUnbounded(l), Y: c.polyY.ValueUnbounded(l)}
}

func (c CubicCurve2D) PointLocalCS(s float64) (spatial.Vector2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Vector2D{}, err
	}
	return c.PointLocalCSUnbounded(s), nil
}

func (c CubicCurve2D) PointLocalCSUnbounded(s float64) spatial.Vector2D {
	l := s - c.domain.LowerEndpoint()
	local := c.localPoint(l)
	return c.startPose.Point.Add(c.startPose.Rotation.Apply(local))
}

func (c CubicCurve2D) RotationLocalCS(s float64) (spatial.Rotation2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Rotation2D{}, err
	}
	return c.RotationLocalCSUnbounded(s), nil
}

func (c CubicCurve2D) RotationLocalCSUnbounded(s float64) spatial.Rotation2D {
	l := s - c.domain.LowerEndpoint()
	dx, dy := c.polyX.SlopeUnbounded(l), c.polyY.SlopeUnbounded(l)
	return c.startPose.Rotation.Compose(spatial.NewRotation2D(math.Atan2(dy, dx)))
}

func (c CubicCurve2D) PoseLocalCS(s float64) (Pose2D, error) {
	p, err := c.PointLocalCS(s)
	if err != nil {
		return Pose2D{}, err
	}
	return Pose2D{Point: p, Rotation: c.RotationLocalCSUnbounded(s)}, nil
}

func (c CubicCurve2D) PoseLocalCSUnbounded(s float64) Pose2D {
	return Pose2D{Point: c.PointLocalCSUnbounded(s), Rotation: c.RotationLocalCSUnbounded(s)}
}
