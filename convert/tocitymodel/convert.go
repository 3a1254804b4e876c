// Package tocitymodel's convert.go is the top-level entry point: it turns
// a roadspace.Document into a citymodel.CityModel, one Feature per
// Roadspace plus every resolved CityObject, sharing one citymodel.Registry
// across the whole document so every emitted id is unique dataset-wide.
package tocitymodel

import (
	"fmt"

	"github.com/go-roadspaces/roadspaces/citymodel"
	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/curve3d"
	"github.com/go-roadspaces/roadspaces/roadspace"
)

// Convert discretizes every lane surface, filler surface, and
// road-marking surface in doc to a MultiSurface on a
// Road/Railway/Square Feature; every RoadspaceObject resolves to a
// CityObject. Roadspaces are processed in doc.Roadspaces order, which
// convert/fromopendrive already guarantees is deterministic regardless of
// worker count, so this stage's output order is deterministic too.
func Convert(doc roadspace.Document, params config.Parameters) (citymodel.CityModel, error) {
	registry := citymodel.NewRegistry(params.GmlIDPrefix)

	features := make([]citymodel.Feature, 0, len(doc.Roadspaces))
	var cityObjects []citymodel.CityObject

	for _, rs := range doc.Roadspaces {
		roadspaceKey := rs.ID.Canonical()

		feature, err := buildFeature(rs, roadspaceKey, registry, params)
		if err != nil {
			return citymodel.CityModel{}, err
		}
		features = append(features, feature)

		objects, err := buildCityObjects(rs.Objects, roadspaceKey, registry, params)
		if err != nil {
			return citymodel.CityModel{}, err
		}
		cityObjects = append(cityObjects, objects...)
	}

	header := citymodel.Header{CrsEpsg: doc.Header.CrsEpsg}
	return citymodel.NewCityModel(header, features, cityObjects), nil
}

// buildFeature discretizes one Roadspace's road body into the
// BoundarySurfaces of a single Feature.
func buildFeature(rs roadspace.Roadspace, roadspaceKey string, registry *citymodel.Registry, params config.Parameters) (citymodel.Feature, error) {
	var surfaces []citymodel.BoundarySurface
	var laneTypes []string

	for _, section := range rs.Road.LaneSections {
		sectionStart := section.SRange.LowerEndpoint()
		length := section.SRange.Length()

		lanes := make([]roadspace.Lane, 0, len(section.Left)+len(section.Right))
		lanes = append(lanes, section.Left...)
		lanes = append(lanes, section.Right...)

		for _, lane := range lanes {
			laneTypes = append(laneTypes, lane.Type)

			surface, err := buildLaneBoundarySurface(lane, sectionStart, length, rs.Road.Surface, roadspaceKey, registry, params)
			if err != nil {
				return citymodel.Feature{}, err
			}
			surfaces = append(surfaces, surface)
		}
	}

	fillerSurfaces, err := buildFillerSurfaces(rs.Road, roadspaceKey, registry, params)
	if err != nil {
		return citymodel.Feature{}, err
	}
	surfaces = append(surfaces, fillerSurfaces...)

	markingSurfaces, err := buildMarkingSurfaces(rs.Road, roadspaceKey, registry, params)
	if err != nil {
		return citymodel.Feature{}, err
	}
	surfaces = append(surfaces, markingSurfaces...)

	id, err := registry.Resolve("Feature", roadspaceKey)
	if err != nil {
		return citymodel.Feature{}, err
	}

	attrs := make(map[string]string, len(rs.Attributes))
	for k, v := range rs.Attributes {
		attrs[params.AttributesPrefix+k] = v
	}
	for _, field := range rs.ID.Fields() {
		attrs[params.IdentifierAttributesPrefix+field[0]] = field[1]
	}

	return citymodel.NewFeature(id, featureKindForRoadspace(laneTypes), surfaces, attrs), nil
}

func buildLaneBoundarySurface(lane roadspace.Lane, sectionStart, length float64, surface curve3d.CurveRelativeParametricSurface3D, roadspaceKey string, registry *citymodel.Registry, params config.Parameters) (citymodel.BoundarySurface, error) {
	grid, err := laneBoundaryGrid(lane, sectionStart, length, surface, params.DiscretizationStepSize)
	if err != nil {
		return citymodel.BoundarySurface{}, err
	}
	geometry, err := gridMesh(grid, params.NumberTolerance)
	if err != nil {
		return citymodel.BoundarySurface{}, err
	}

	_, boundaryKind, function := laneFeatureKind(lane.Type)
	hashKey := fmt.Sprintf("%s|lane=%d|s=%g", roadspaceKey, lane.ID, sectionStart)
	id, err := registry.Resolve("BoundarySurface", hashKey)
	if err != nil {
		return citymodel.BoundarySurface{}, err
	}

	attrs := map[string]string{
		params.AttributesPrefix + "laneId":   fmt.Sprintf("%d", lane.ID),
		params.AttributesPrefix + "laneType": lane.Type,
	}
	return citymodel.NewBoundarySurface(id, boundaryKind, function, geometry, attrs), nil
}

func buildFillerSurfaces(body roadspace.RoadBody, roadspaceKey string, registry *citymodel.Registry, params config.Parameters) ([]citymodel.BoundarySurface, error) {
	out := make([]citymodel.BoundarySurface, 0, len(body.FillerSurfaces))
	for _, filler := range body.FillerSurfaces {
		halfSpan := params.DiscretizationStepSize / 4
		if clamp := minNeighboringSectionLength(body, filler.S) / 4; clamp > 0 && clamp < halfSpan {
			halfSpan = clamp
		}

		grid, err := fillerGrid(filler, body.Surface, halfSpan)
		if err != nil {
			return nil, err
		}
		geometry, err := gridMesh(grid, params.NumberTolerance)
		if err != nil {
			return nil, err
		}

		hashKey := fmt.Sprintf("%s|filler|%s|s=%g", roadspaceKey, filler.Side, filler.S)
		id, err := registry.Resolve("BoundarySurface", hashKey)
		if err != nil {
			return nil, err
		}

		attrs := map[string]string{
			params.AttributesPrefix + "side": filler.Side,
		}
		out = append(out, citymodel.NewBoundarySurface(id, citymodel.BoundaryAuxiliaryTrafficArea, "FillerSurface", geometry, attrs))
	}
	return out, nil
}

// minNeighboringSectionLength returns the shorter of the two lane
// sections adjacent to s, so a filler surface's longitudinal half-span
// never reaches past either neighbor's own extent.
func minNeighboringSectionLength(body roadspace.RoadBody, s float64) float64 {
	min := -1.0
	for _, section := range body.LaneSections {
		lower, upper := section.SRange.LowerEndpoint(), section.SRange.UpperEndpoint()
		if lower <= s && s <= upper {
			length := section.SRange.Length()
			if min < 0 || length < min {
				min = length
			}
		}
	}
	if min < 0 {
		return 0
	}
	return min
}

func buildMarkingSurfaces(body roadspace.RoadBody, roadspaceKey string, registry *citymodel.Registry, params config.Parameters) ([]citymodel.BoundarySurface, error) {
	out := make([]citymodel.BoundarySurface, 0, len(body.RoadMarkings))
	for _, marking := range body.RoadMarkings {
		section, lane, ok := findLaneForMarking(body, marking, params.NumberTolerance)
		if !ok {
			return nil, ErrLaneNotFoundForMarking
		}

		sectionStart := section.SRange.LowerEndpoint()
		localStart := marking.SRange.LowerEndpoint() - sectionStart
		length := marking.SRange.Length()
		if length <= params.NumberTolerance {
			continue
		}

		grid, err := markingGrid(lane, localStart, length, marking.Record.Width, sectionStart, body.Surface, params.DiscretizationStepSize)
		if err != nil {
			return nil, err
		}
		geometry, err := gridMesh(grid, params.NumberTolerance)
		if err != nil {
			return nil, err
		}

		hashKey := fmt.Sprintf("%s|marking|lane=%d|s=%g", roadspaceKey, marking.LaneID, marking.SRange.LowerEndpoint())
		id, err := registry.Resolve("BoundarySurface", hashKey)
		if err != nil {
			return nil, err
		}

		attrs := map[string]string{
			params.AttributesPrefix + "laneId":    fmt.Sprintf("%d", marking.LaneID),
			params.AttributesPrefix + "markType":   marking.Record.Type,
			params.AttributesPrefix + "markColor":  marking.Record.Color,
		}
		out = append(out, citymodel.NewBoundarySurface(id, citymodel.BoundaryAuxiliaryTrafficArea, "RoadMark", geometry, attrs))
	}
	return out, nil
}

func findLaneForMarking(body roadspace.RoadBody, marking roadspace.RoadMarking, tol float64) (roadspace.LaneSection, roadspace.Lane, bool) {
	for _, section := range body.LaneSections {
		if !section.SRange.FuzzyEncloses(marking.SRange, tol) {
			continue
		}
		all := make([]roadspace.Lane, 0, len(section.Left)+len(section.Right)+1)
		all = append(all, section.Center)
		all = append(all, section.Left...)
		all = append(all, section.Right...)
		for _, lane := range all {
			if lane.ID == marking.LaneID {
				return section, lane, true
			}
		}
	}
	return roadspace.LaneSection{}, roadspace.Lane{}, false
}
