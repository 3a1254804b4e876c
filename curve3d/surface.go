package curve3d

import (
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/spatial"
	"github.com/go-roadspaces/roadspaces/surface2d"
)

// CurveRelativeParametricSurface3D resolves a curve-relative (s, t, deltaH)
// triple to a global point by evaluating heightField at (s, t), adding
// deltaH, and lifting the local offset (0, t, height) through baseCurve3D's
// affine frame at s — the representation of a road's paved surface, its
// lane boundaries, and any other quantity measured laterally off the
// reference line.
type CurveRelativeParametricSurface3D struct {
	baseCurve3D Curve3D
	heightField surface2d.Function
	tol         float64
}

// NewCurveRelativeParametricSurface3D builds the surface. heightField's
// DomainX must enclose baseCurve3D's domain within tol.
func NewCurveRelativeParametricSurface3D(baseCurve3D Curve3D, heightField surface2d.Function, tol float64) (CurveRelativeParametricSurface3D, error) {
	if !heightField.DomainX().FuzzyEncloses(baseCurve3D.Domain(), tol) {
		return CurveRelativeParametricSurface3D{}, DomainMismatchError{Detail: "heightField.DomainX does not cover baseCurve3D's domain"}
	}
	return CurveRelativeParametricSurface3D{baseCurve3D: baseCurve3D, heightField: heightField, tol: tol}, nil
}

func (c CurveRelativeParametricSurface3D) Domain() interval.Range      { return c.baseCurve3D.Domain() }
func (c CurveRelativeParametricSurface3D) DomainT() interval.Range     { return c.heightField.DomainY() }
func (c CurveRelativeParametricSurface3D) BaseCurve3D() Curve3D        { return c.baseCurve3D }

// PointGlobal evaluates pointGlobal(s,t,deltaH). s must lie within
// baseCurve3D's domain and t within heightField.DomainY, each within the
// configured tolerance.
func (c CurveRelativeParametricSurface3D) PointGlobal(s, t, deltaH float64) (spatial.Vector3D, error) {
	affine, err := c.baseCurve3D.Affine(s)
	if err != nil {
		return spatial.Vector3D{}, err
	}
	h, err := c.heightField.Value(s, t)
	if err != nil {
		return spatial.Vector3D{}, err
	}
	local := spatial.Vector3D{X: 0, Y: t, Z: h + deltaH}
	return affine.Transform(local)
}
