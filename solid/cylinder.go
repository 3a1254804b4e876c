package solid

import (
	"math"

	"github.com/go-roadspaces/roadspaces/spatial"
)

// Cylinder is a right circular cylinder of radius r and height h, base
// polygon at z=0, top polygon at z=h, each approximated by slices vertices.
type Cylinder struct {
	r, h   float64
	slices int
	tol    float64
}

// NewCylinder validates r, h > 0 and slices >= 3.
func NewCylinder(r, h float64, slices int, tol float64) (Cylinder, error) {
	if r <= tol || h <= tol {
		return Cylinder{}, ErrNonPositiveDimension
	}
	if slices < 3 {
		return Cylinder{}, ErrTooFewSlices
	}
	return Cylinder{r: r, h: h, slices: slices, tol: tol}, nil
}

func (c Cylinder) ringPoint(i int, z float64) spatial.Vector3D {
	theta := 2 * math.Pi * float64(i) / float64(c.slices)
	return spatial.Vector3D{X: c.r * math.Cos(theta), Y: c.r * math.Sin(theta), Z: z}
}

// Faces returns the base n-gon (normal -z), the top n-gon (normal +z), and
// slices rectangular side faces, each normal pointing radially outward.
func (c Cylinder) Faces() ([]Polygon3D, error) {
	base := make([]spatial.Vector3D, c.slices)
	top := make([]spatial.Vector3D, c.slices)
	for i := 0; i < c.slices; i++ {
		// base wound clockwise when viewed from +z, so its Newell normal
		// points -z; top wound counter-clockwise so its normal points +z.
		base[i] = c.ringPoint(c.slices-1-i, 0)
		top[i] = c.ringPoint(i, c.h)
	}

	faces := make([]Polygon3D, 0, c.slices+2)
	baseRing, err := NewLinearRing3D(base, c.tol)
	if err != nil {
		return nil, err
	}
	faces = append(faces, NewPolygon3D(baseRing))

	topRing, err := NewLinearRing3D(top, c.tol)
	if err != nil {
		return nil, err
	}
	faces = append(faces, NewPolygon3D(topRing))

	for i := 0; i < c.slices; i++ {
		j := (i + 1) % c.slices
		sideVerts := []spatial.Vector3D{
			c.ringPoint(i, 0),
			c.ringPoint(j, 0),
			c.ringPoint(j, c.h),
			c.ringPoint(i, c.h),
		}
		sideRing, err := NewLinearRing3D(sideVerts, c.tol)
		if err != nil {
			return nil, err
		}
		faces = append(faces, NewPolygon3D(sideRing))
	}
	return faces, nil
}
