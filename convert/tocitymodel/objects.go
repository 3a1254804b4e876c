package tocitymodel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-roadspaces/roadspaces/citymodel"
	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/roadspace"
)

// cityObjectKind maps a road object onto the road-object taxonomy:
// vegetation and building are detected from the object's type
// attribute (carried through from opendrive.RoadObject.Type by
// convert/fromopendrive); a bare point placement with no type match falls
// to GenericObject rather than CityFurniture, since furniture implies a
// physical footprint this object never had one of.
func cityObjectKind(obj roadspace.RoadspaceObject) citymodel.CityObjectKind {
	t := strings.ToLower(obj.Attributes["type"])
	switch {
	case strings.Contains(t, "tree") || strings.Contains(t, "vegetation") || strings.Contains(t, "plant"):
		return citymodel.CityObjectVegetation
	case strings.Contains(t, "building"):
		return citymodel.CityObjectBuilding
	case obj.GeometryKind == roadspace.ObjectGeometryPoint:
		return citymodel.CityObjectGenericObject
	default:
		return citymodel.CityObjectFurniture
	}
}

// buildCityObjects resolves every RoadspaceObject attached to a
// Roadspace to a CityObject, carrying its already-global-frame faces (or
// point placement) through unchanged — C12 already did the geometric
// work; this stage only classifies and assigns an id.
func buildCityObjects(objects []roadspace.RoadspaceObject, roadspaceKey string, registry *citymodel.Registry, params config.Parameters) ([]citymodel.CityObject, error) {
	out := make([]citymodel.CityObject, 0, len(objects))
	for _, obj := range objects {
		hashKey := fmt.Sprintf("%s|%s", roadspaceKey, obj.ID.Canonical())
		id, err := registry.Resolve("CityObject", hashKey)
		if err != nil {
			return nil, err
		}

		var point *citymodel.PointLocation
		if obj.Point != nil {
			point = &citymodel.PointLocation{
				X: obj.Point.X, Y: obj.Point.Y, Z: obj.Point.Z,
				Heading: obj.Point.Heading, Pitch: obj.Point.Pitch, Roll: obj.Point.Roll,
			}
		}

		out = append(out, citymodel.NewCityObject(id, cityObjectKind(obj), obj.Faces, point, objectAttributes(obj, params)))
	}
	return out, nil
}

// objectAttributes builds the prefix-namespaced attribute set: the
// object's own attributes under attributesPrefix, the
// identifier's fields under identifierAttributesPrefix, and — only for a
// point placement, where an orientation actually exists — the
// heading/pitch/roll rotation triple.
func objectAttributes(obj roadspace.RoadspaceObject, params config.Parameters) map[string]string {
	attrs := make(map[string]string, len(obj.Attributes)+len(obj.ID.Fields())+3)
	for k, v := range obj.Attributes {
		attrs[params.AttributesPrefix+k] = v
	}
	for _, field := range obj.ID.Fields() {
		attrs[params.IdentifierAttributesPrefix+field[0]] = field[1]
	}
	if obj.Point != nil {
		attrs[params.GeometryAttributesPrefix+"heading"] = strconv.FormatFloat(obj.Point.Heading, 'g', -1, 64)
		attrs[params.GeometryAttributesPrefix+"pitch"] = strconv.FormatFloat(obj.Point.Pitch, 'g', -1, 64)
		attrs[params.GeometryAttributesPrefix+"roll"] = strconv.FormatFloat(obj.Point.Roll, 'g', -1, 64)
	}
	return attrs
}
