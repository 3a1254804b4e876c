package curve2d

import (
	"math"

	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/numeric"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// SpiralSegment2D is an Euler spiral (clothoid): curvature varies linearly
// with arc length l over [0, length], from curvatureRange.ValueUnbounded(0)
// at l=0 to curvatureRange.ValueUnbounded(length) at l=length. domain is
// the segment's own global s-range; startPose is the pose at domain's
// lower endpoint.
type SpiralSegment2D struct {
	curvatureRange curve1d.Linear
	domain         interval.Range
	tol            float64
	startPose      Pose2D

	curvatureDot float64 // dkappa/dl, constant for a linear curvature schedule
	l0           float64 // arc length, measured from the canonical kappa=0 point, at domain's lower endpoint
}

// NewSpiralSegment2D builds a clothoid segment. curvatureRange.Domain()
// must be [0, domain.Length()] within tol.
func NewSpiralSegment2D(curvatureRange curve1d.Linear, domain interval.Range, tol float64, startPose Pose2D) SpiralSegment2D {
	kappa0 := curvatureRange.ValueUnbounded(0)
	dk := curvatureRange.SlopeUnbounded(0)

	var l0 float64
	if !numeric.FuzzyEquals(dk, 0, 1e-14) {
		l0 = kappa0 / dk
	}
	return SpiralSegment2D{
		curvatureRange: curvatureRange,
		domain:         domain,
		tol:            tol,
		startPose:      startPose,
		curvatureDot:   dk,
		l0:             l0,
	}
}

func (c SpiralSegment2D) Domain() interval.Range { return c.domain }
func (c SpiralSegment2D) Tolerance() float64     { return c.tol }

// basePoint and baseHeading evaluate the canonical clothoid (the one whose
// curvature is zero at arc length zero) at arc length ltotal, using the
// scaled-Fresnel-integral closed form.
func (c SpiralSegment2D) basePoint(ltotal float64) spatial.Vector2D {
	if numeric.FuzzyEquals(c.curvatureDot, 0, 1e-14) {
		// Constant curvature: the clothoid degenerates to a circular arc,
		// or to a straight line if curvature is also zero.
		kappa0 := c.curvatureRange.ValueUnbounded(0)
		if numeric.FuzzyEquals(kappa0, 0, 1e-14) {
			return spatial.Vector2D{X: ltotal, Y: 0}
		}
		r := 1 / kappa0
		theta := ltotal * kappa0
		return spatial.Vector2D{X: r * math.Sin(theta), Y: r * (1 - math.Cos(theta))}
	}
	a := 1 / math.Sqrt(math.Abs(c.curvatureDot))
	scale := a * math.Sqrt(math.Pi)
	u := ltotal / scale
	cc, ss := fresnel(u)
	sign := 1.0
	if c.curvatureDot < 0 {
		sign = -1.0
	}
	return spatial.Vector2D{X: scale * cc, Y: sign * scale * ss}
}

func (c SpiralSegment2D) baseHeading(ltotal float64) float64 {
	return ltotal * ltotal * c.curvatureDot / 2
}

func (c SpiralSegment2D) PointLocalCS(s float64) (spatial.Vector2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Vector2D{}, err
	}
	return c.PointLocalCSUnbounded(s), nil
}

func (c SpiralSegment2D) PointLocalCSUnbounded(s float64) spatial.Vector2D {
	l := s - c.domain.LowerEndpoint()
	ltotal := c.l0 + l

	originPoint := c.basePoint(c.l0)
	originHeading := c.baseHeading(c.l0)
	raw := c.basePoint(ltotal).Sub(originPoint)

	local := spatial.NewRotation2D(-originHeading).Apply(raw)
	return c.startPose.Point.Add(c.startPose.Rotation.Apply(local))
}

func (c SpiralSegment2D) RotationLocalCS(s float64) (spatial.Rotation2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Rotation2D{}, err
	}
	return c.RotationLocalCSUnbounded(s), nil
}

func (c SpiralSegment2D) RotationLocalCSUnbounded(s float64) spatial.Rotation2D {
	l := s - c.domain.LowerEndpoint()
	ltotal := c.l0 + l
	dTheta := c.baseHeading(ltotal) - c.baseHeading(c.l0)
	return c.startPose.Rotation.Compose(spatial.NewRotation2D(dTheta))
}

func (c SpiralSegment2D) PoseLocalCS(s float64) (Pose2D, error) {
	p, err := c.PointLocalCS(s)
	if err != nil {
		return Pose2D{}, err
	}
	return Pose2D{Point: p, Rotation: c.RotationLocalCSUnbounded(s)}, nil
}

func (c SpiralSegment2D) PoseLocalCSUnbounded(s float64) Pose2D {
	return Pose2D{Point: c.PointLocalCSUnbounded(s), Rotation: c.RotationLocalCSUnbounded(s)}
}
