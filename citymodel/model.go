package citymodel

import "github.com/go-roadspaces/roadspaces/solid"

// FeatureKind is the top-level SB feature family a Feature belongs to.
type FeatureKind int

const (
	FeatureRoad FeatureKind = iota
	FeatureRailway
	FeatureSquare
)

// BoundarySurfaceKind distinguishes the two boundary-surface type slots
// a lane surface's classification assigns it to.
type BoundarySurfaceKind int

const (
	BoundaryTrafficArea BoundarySurfaceKind = iota
	BoundaryAuxiliaryTrafficArea
)

// CityObjectKind is the road-object mapping target: furniture, a solid
// building, vegetation, or the generic fallback.
type CityObjectKind int

const (
	CityObjectFurniture CityObjectKind = iota
	CityObjectBuilding
	CityObjectVegetation
	CityObjectGenericObject
)

// MultiSurface is a LOD2 polygon list: the discretized form of a lane
// surface, filler surface, road-marking surface, or solid road object.
type MultiSurface []solid.Polygon3D

// PointLocation mirrors roadspace.PointLocation for a CityObject placed
// without a discretized solid (e.g. implicit city furniture).
type PointLocation struct {
	X, Y, Z              float64
	Heading, Pitch, Roll float64
}

// BoundarySurface is one discretized surface patch attached to a Feature:
// a lane surface, a filler surface, or a road-marking strip.
type BoundarySurface struct {
	ID         string
	Kind       BoundarySurfaceKind
	Function   string
	Geometry   MultiSurface
	Attributes map[string]string
}

// NewBoundarySurface builds a BoundarySurface, defensively copying its
// mutable fields.
func NewBoundarySurface(id string, kind BoundarySurfaceKind, function string, geometry MultiSurface, attributes map[string]string) BoundarySurface {
	geomCopy := make(MultiSurface, len(geometry))
	copy(geomCopy, geometry)
	return BoundarySurface{ID: id, Kind: kind, Function: function, Geometry: geomCopy, Attributes: copyAttributes(attributes)}
}

// Feature is one Road/Railway/Square-kind SB feature: the boundary
// surfaces discretized from one Roadspace's road body.
type Feature struct {
	ID               string
	Kind             FeatureKind
	BoundarySurfaces []BoundarySurface
	Attributes       map[string]string
}

// NewFeature builds a Feature, defensively copying BoundarySurfaces.
func NewFeature(id string, kind FeatureKind, boundarySurfaces []BoundarySurface, attributes map[string]string) Feature {
	surfacesCopy := make([]BoundarySurface, len(boundarySurfaces))
	copy(surfacesCopy, boundarySurfaces)
	return Feature{ID: id, Kind: kind, BoundarySurfaces: surfacesCopy, Attributes: copyAttributes(attributes)}
}

// CityObject is a resolved road-object entry: either a discretized solid
// (Geometry) or a degenerate placement (Point), never both.
type CityObject struct {
	ID         string
	Kind       CityObjectKind
	Geometry   MultiSurface
	Point      *PointLocation
	Attributes map[string]string
}

// NewCityObject builds a CityObject, defensively copying Geometry.
func NewCityObject(id string, kind CityObjectKind, geometry MultiSurface, point *PointLocation, attributes map[string]string) CityObject {
	geomCopy := make(MultiSurface, len(geometry))
	copy(geomCopy, geometry)
	return CityObject{ID: id, Kind: kind, Geometry: geomCopy, Point: point, Attributes: copyAttributes(attributes)}
}

// Header carries the coordinate-reference-system metadata shared by an
// entire SB dataset, mirrored from the source Roadspaces document.
type Header struct {
	CrsEpsg int
}

// CityModel is the top-level SB dataset: one Feature per source Roadspace
// plus every resolved CityObject.
type CityModel struct {
	Header      Header
	Features    []Feature
	CityObjects []CityObject
}

// NewCityModel builds a CityModel, defensively copying its slices.
func NewCityModel(header Header, features []Feature, cityObjects []CityObject) CityModel {
	featuresCopy := make([]Feature, len(features))
	copy(featuresCopy, features)
	objectsCopy := make([]CityObject, len(cityObjects))
	copy(objectsCopy, cityObjects)
	return CityModel{Header: header, Features: featuresCopy, CityObjects: objectsCopy}
}

func copyAttributes(attributes map[string]string) map[string]string {
	if attributes == nil {
		return nil
	}
	out := make(map[string]string, len(attributes))
	for k, v := range attributes {
		out[k] = v
	}
	return out
}
