package spatial

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-roadspaces/roadspaces/numeric"
)

// ErrNonFiniteComponent is returned by the vector constructors when a
// component is NaN or infinite.
var ErrNonFiniteComponent = errors.New("spatial: vector component is not finite")

// Vector2D is a point or displacement in the x-y plane.
type Vector2D struct {
	X, Y float64
}

// NewVector2D validates that both components are finite.
func NewVector2D(x, y float64) (Vector2D, error) {
	if !isFinite(x) || !isFinite(y) {
		return Vector2D{}, fmt.Errorf("%w: (%g, %g)", ErrNonFiniteComponent, x, y)
	}
	return Vector2D{X: x, Y: y}, nil
}

func (v Vector2D) Add(o Vector2D) Vector2D { return Vector2D{v.X + o.X, v.Y + o.Y} }
func (v Vector2D) Sub(o Vector2D) Vector2D { return Vector2D{v.X - o.X, v.Y - o.Y} }
func (v Vector2D) Scale(k float64) Vector2D { return Vector2D{v.X * k, v.Y * k} }
func (v Vector2D) Dot(o Vector2D) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vector2D) Length() float64          { return math.Hypot(v.X, v.Y) }

func (v Vector2D) Normalize() (Vector2D, error) {
	l := v.Length()
	if numeric.FuzzyEquals(l, 0, 1e-12) {
		return Vector2D{}, fmt.Errorf("spatial: cannot normalize zero-length Vector2D")
	}
	return v.Scale(1 / l), nil
}

func (v Vector2D) FuzzyEquals(o Vector2D, tol float64) bool {
	return numeric.FuzzyEquals(v.X, o.X, tol) && numeric.FuzzyEquals(v.Y, o.Y, tol)
}

// Vector3D is a point or displacement in 3-space.
type Vector3D struct {
	X, Y, Z float64
}

// NewVector3D validates that all three components are finite.
func NewVector3D(x, y, z float64) (Vector3D, error) {
	if !isFinite(x) || !isFinite(y) || !isFinite(z) {
		return Vector3D{}, fmt.Errorf("%w: (%g, %g, %g)", ErrNonFiniteComponent, x, y, z)
	}
	return Vector3D{X: x, Y: y, Z: z}, nil
}

func (v Vector3D) Add(o Vector3D) Vector3D  { return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3D) Sub(o Vector3D) Vector3D  { return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3D) Scale(k float64) Vector3D { return Vector3D{v.X * k, v.Y * k, v.Z * k} }
func (v Vector3D) Dot(o Vector3D) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3D) Length() float64          { return math.Sqrt(v.Dot(v)) }

func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3D) Normalize() (Vector3D, error) {
	l := v.Length()
	if numeric.FuzzyEquals(l, 0, 1e-12) {
		return Vector3D{}, fmt.Errorf("spatial: cannot normalize zero-length Vector3D")
	}
	return v.Scale(1 / l), nil
}

func (v Vector3D) FuzzyEquals(o Vector3D, tol float64) bool {
	return numeric.FuzzyEquals(v.X, o.X, tol) &&
		numeric.FuzzyEquals(v.Y, o.Y, tol) &&
		numeric.FuzzyEquals(v.Z, o.Z, tol)
}

// CurveRelativeVector1D is a longitudinal offset along a curve (arc length).
type CurveRelativeVector1D struct {
	S float64
}

// CurveRelativeVector2D is a (longitudinal, lateral) offset in a curve's
// moving frame, e.g. (s, t) on a road's planView.
type CurveRelativeVector2D struct {
	S, T float64
}

// CurveRelativeVector3D adds height to CurveRelativeVector2D, e.g. (s, t, h)
// within a lane section.
type CurveRelativeVector3D struct {
	S, T, H float64
}
