package solid

import (
	"fmt"

	"github.com/go-roadspaces/roadspaces/spatial"
)

// LinearRing3D is a closed, planar polygon boundary: at least 3 distinct
// vertices, no two consecutive ones (including the closing edge) equal,
// not all colinear, and all coplanar within tolerance.
type LinearRing3D struct {
	vertices []spatial.Vector3D
	normal   spatial.Vector3D
	tol      float64
}

// NewLinearRing3D validates vertices and computes the ring's plane normal
// via Newell's method, which tolerates small coplanarity noise better than
// a three-point cross product.
func NewLinearRing3D(vertices []spatial.Vector3D, tol float64) (LinearRing3D, error) {
	if len(vertices) < 3 {
		return LinearRing3D{}, ErrTooFewVertices
	}
	n := len(vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if vertices[i].FuzzyEquals(vertices[j], tol) {
			return LinearRing3D{}, fmt.Errorf("%w: vertex %d and %d", ErrConsecutiveDuplicateVertices, i, j)
		}
	}

	normal := newellNormal(vertices)
	if normal.Length() < tol {
		return LinearRing3D{}, ErrColinearVertices
	}
	unitNormal, err := normal.Normalize()
	if err != nil {
		return LinearRing3D{}, ErrColinearVertices
	}

	centroid := centroidOf(vertices)
	for i, v := range vertices {
		dist := v.Sub(centroid).Dot(unitNormal)
		if dist < -tol || dist > tol {
			return LinearRing3D{}, fmt.Errorf("%w: vertex %d is %g off-plane", ErrNonCoplanarVertices, i, dist)
		}
	}

	cp := append([]spatial.Vector3D(nil), vertices...)
	return LinearRing3D{vertices: cp, normal: unitNormal, tol: tol}, nil
}

// newellNormal computes an (unnormalized) plane normal robust to
// near-planar vertex noise, summing the cross products of consecutive
// edge pairs.
func newellNormal(vertices []spatial.Vector3D) spatial.Vector3D {
	var n spatial.Vector3D
	count := len(vertices)
	for i := 0; i < count; i++ {
		cur := vertices[i]
		next := vertices[(i+1)%count]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n
}

func centroidOf(vertices []spatial.Vector3D) spatial.Vector3D {
	var sum spatial.Vector3D
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(vertices)))
}

func (r LinearRing3D) Vertices() []spatial.Vector3D {
	return append([]spatial.Vector3D(nil), r.vertices...)
}

// Normal returns the ring's unit plane normal, oriented by vertex winding
// order (right-hand rule).
func (r LinearRing3D) Normal() spatial.Vector3D { return r.normal }

// Polygon3D is a single-ring planar face: its exterior boundary plus the
// derived normal used for outward-orientation checks.
type Polygon3D struct {
	exterior LinearRing3D
}

// NewPolygon3D wraps a validated exterior ring.
func NewPolygon3D(exterior LinearRing3D) Polygon3D { return Polygon3D{exterior: exterior} }

func (p Polygon3D) Exterior() LinearRing3D      { return p.exterior }
func (p Polygon3D) Vertices() []spatial.Vector3D { return p.exterior.Vertices() }
func (p Polygon3D) Normal() spatial.Vector3D     { return p.exterior.Normal() }
