// Package solid implements Polygon3D/LinearRing3D and the Solid3D family
// (Cuboid, Cylinder, Polyhedron, ParametricSweep), each yielding a
// non-empty list of planar Polygon3D faces in a local frame that a caller
// lifts into the global frame with a spatial.AffineSequence.
package solid

import "errors"

// ErrTooFewVertices is returned by NewLinearRing3D when fewer than 3
// vertices are given.
var ErrTooFewVertices = errors.New("solid: a ring requires at least 3 vertices")

// ErrConsecutiveDuplicateVertices is returned when two adjacent vertices
// (including the closing edge) fuzzy-equal each other.
var ErrConsecutiveDuplicateVertices = errors.New("solid: ring has consecutive duplicate vertices")

// ErrColinearVertices is returned when every vertex lies on a single line,
// leaving no well-defined plane normal.
var ErrColinearVertices = errors.New("solid: ring vertices are colinear")

// ErrNonCoplanarVertices is returned when a vertex lies off the plane
// defined by the others by more than tolerance.
var ErrNonCoplanarVertices = errors.New("solid: ring vertices are not coplanar")

// ErrNonPositiveDimension is returned by Cuboid/Cylinder constructors when
// a length, width, height, or radius is not strictly positive.
var ErrNonPositiveDimension = errors.New("solid: dimension must be strictly positive")

// ErrTooFewSlices is returned by NewCylinder when the slice count is too
// small to form a polygon.
var ErrTooFewSlices = errors.New("solid: need at least 3 slices")

// ErrTooFewPolygons is returned by NewPolyhedron with fewer than 4 faces.
var ErrTooFewPolygons = errors.New("solid: a polyhedron requires at least 4 faces")
