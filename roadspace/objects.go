package roadspace

import "github.com/go-roadspaces/roadspaces/solid"

// ObjectGeometryKind names which of the priority-ordered geometry
// strategies (4.9 step 4's nine-entry list) produced a RoadspaceObject's
// geometry, kept around for downstream classification in the SB
// transformer without needing to re-inspect the solid shape.
type ObjectGeometryKind int

const (
	ObjectGeometryPolyhedronFromRoadCorners ObjectGeometryKind = iota
	ObjectGeometryPolyhedronFromLocalCorners
	ObjectGeometryLinearRingFromRoadCorners
	ObjectGeometryLinearRingFromLocalCorners
	ObjectGeometryCuboid
	ObjectGeometryRectangle
	ObjectGeometryCylinder
	ObjectGeometryCircle
	ObjectGeometryPoint
)

// RoadspaceObject is a single road-object entry resolved to concrete
// geometry: a list of faces in global coordinates. A single point cannot
// be a face (solid.NewLinearRing3D rejects repeated vertices), so
// ObjectGeometryPoint objects carry an empty Faces list and rely on Point
// instead.
type RoadspaceObject struct {
	ID            Identifier
	GeometryKind  ObjectGeometryKind
	Faces         []solid.Polygon3D
	Point         *PointLocation
	Material      string
	Attributes    map[string]string
}

// PointLocation is the degenerate geometry of an ObjectGeometryPoint
// object: a single global-frame location plus heading/pitch/roll, used
// to place implicit geometry (e.g. city furniture) rather than a solid.
type PointLocation struct {
	X, Y, Z            float64
	Heading, Pitch, Roll float64
}

// NewRoadspaceObject builds a RoadspaceObject, defensively copying Faces
// and Attributes.
func NewRoadspaceObject(id Identifier, kind ObjectGeometryKind, faces []solid.Polygon3D, point *PointLocation, material string, attributes map[string]string) RoadspaceObject {
	facesCopy := make([]solid.Polygon3D, len(faces))
	copy(facesCopy, faces)

	var attrsCopy map[string]string
	if attributes != nil {
		attrsCopy = make(map[string]string, len(attributes))
		for k, v := range attributes {
			attrsCopy[k] = v
		}
	}

	return RoadspaceObject{
		ID:           id,
		GeometryKind: kind,
		Faces:        facesCopy,
		Point:        point,
		Material:     material,
		Attributes:   attrsCopy,
	}
}
