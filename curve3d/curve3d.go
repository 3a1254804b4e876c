package curve3d

import (
	"math"

	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/curve2d"
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// Curve3D lifts baseCurve2D into 3-space: position gets a z component from
// heightFunction, and orientation gains pitch (from heightFunction's slope)
// and roll (from torsionFunction, the superelevation angle) on top of
// baseCurve2D's heading.
type Curve3D struct {
	baseCurve2D     curve2d.Curve2D
	heightFunction  curve1d.Function
	torsionFunction curve1d.Function
	domain          interval.Range
	tol             float64
}

// NewCurve3D builds a Curve3D. The three sub-models must share a domain
// within tol; the narrowest of the three is not accepted as a silent
// substitute because a reference line whose height or torsion don't cover
// its full plan-view range is a modeling defect, not something to clamp
// around quietly.
func NewCurve3D(baseCurve2D curve2d.Curve2D, heightFunction, torsionFunction curve1d.Function, tol float64) (Curve3D, error) {
	planDomain := baseCurve2D.Domain()
	if !heightFunction.Domain().FuzzyEncloses(planDomain, tol) {
		return Curve3D{}, DomainMismatchError{Detail: "heightFunction does not cover baseCurve2D's domain"}
	}
	if !torsionFunction.Domain().FuzzyEncloses(planDomain, tol) {
		return Curve3D{}, DomainMismatchError{Detail: "torsionFunction does not cover baseCurve2D's domain"}
	}
	return Curve3D{
		baseCurve2D:     baseCurve2D,
		heightFunction:  heightFunction,
		torsionFunction: torsionFunction,
		domain:          planDomain,
		tol:             tol,
	}, nil
}

func (c Curve3D) Domain() interval.Range { return c.domain }
func (c Curve3D) Tolerance() float64     { return c.tol }

// PoseGlobal returns the 3D pose at arc length s.
func (c Curve3D) PoseGlobal(s float64) (spatial.Pose, error) {
	if !c.domain.FuzzyContains(s, c.tol) {
		return spatial.Pose{}, OutOfDomainError{S: s, Domain: c.domain}
	}
	return c.PoseGlobalUnbounded(s), nil
}

// PoseGlobalUnbounded evaluates the pose formula without checking domain
// membership.
func (c Curve3D) PoseGlobalUnbounded(s float64) spatial.Pose {
	planPose := c.baseCurve2D.PoseLocalCSUnbounded(s)
	z := c.heightFunction.ValueUnbounded(s)
	slope := c.heightFunction.SlopeUnbounded(s)
	pitch := math.Atan(slope / math.Sqrt(1+slope*slope))
	roll := c.torsionFunction.ValueUnbounded(s)

	position := spatial.Vector3D{X: planPose.Point.X, Y: planPose.Point.Y, Z: z}
	orientation := spatial.NewRotation3D(planPose.Rotation.Angle(), pitch, roll)
	return spatial.NewPose(position, orientation)
}

// Affine returns the AffineSequence that lifts a point local to the frame
// at s (e.g. (0, t, h)) into the global frame.
func (c Curve3D) Affine(s float64) (spatial.AffineSequence, error) {
	pose, err := c.PoseGlobal(s)
	if err != nil {
		return spatial.AffineSequence{}, err
	}
	return spatial.NewAffineSequence(spatial.PoseMat4(pose)), nil
}

// AffineUnbounded is Affine without the domain check.
func (c Curve3D) AffineUnbounded(s float64) spatial.AffineSequence {
	return spatial.NewAffineSequence(spatial.PoseMat4(c.PoseGlobalUnbounded(s)))
}
