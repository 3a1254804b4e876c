package solid

import (
	"github.com/go-roadspaces/roadspaces/spatial"
)

// Cuboid is an axis-aligned box of length l (x), width w (y), height h
// (z), spanning [0,l] x [0,w] x [0,h] in its local frame — base at z=0,
// top at z=h, matching Cylinder's convention.
type Cuboid struct {
	l, w, h float64
	tol     float64
}

// NewCuboid validates that l, w, h are each strictly positive (within
// tolerance).
func NewCuboid(l, w, h, tol float64) (Cuboid, error) {
	if l <= tol || w <= tol || h <= tol {
		return Cuboid{}, ErrNonPositiveDimension
	}
	return Cuboid{l: l, w: w, h: h, tol: tol}, nil
}

// Faces returns the 6 faces, each wound so its normal points outward.
func (c Cuboid) Faces() ([]Polygon3D, error) {
	l, w, h := c.l, c.w, c.h
	v := func(x, y, z float64) spatial.Vector3D { return spatial.Vector3D{X: x, Y: y, Z: z} }

	rings := [][]spatial.Vector3D{
		{v(0, 0, 0), v(0, w, 0), v(l, w, 0), v(l, 0, 0)}, // bottom, normal -z
		{v(0, 0, h), v(l, 0, h), v(l, w, h), v(0, w, h)}, // top, normal +z
		{v(0, 0, 0), v(l, 0, 0), v(l, 0, h), v(0, 0, h)}, // y=0 side, normal -y
		{v(0, w, 0), v(0, w, h), v(l, w, h), v(l, w, 0)}, // y=w side, normal +y
		{v(0, 0, 0), v(0, 0, h), v(0, w, h), v(0, w, 0)}, // x=0 side, normal -x
		{v(l, 0, 0), v(l, w, 0), v(l, w, h), v(l, 0, h)}, // x=l side, normal +x
	}

	faces := make([]Polygon3D, 0, len(rings))
	for _, verts := range rings {
		ring, err := NewLinearRing3D(verts, c.tol)
		if err != nil {
			return nil, err
		}
		faces = append(faces, NewPolygon3D(ring))
	}
	return faces, nil
}
