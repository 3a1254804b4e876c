package tocitymodel

import "github.com/go-roadspaces/roadspaces/citymodel"

// laneFeatureKind classifies a lane type into which Feature family its
// surface belongs to, which
// BoundarySurface type slot it fills, and the function tag (if any) that
// slot carries.
func laneFeatureKind(laneType string) (citymodel.FeatureKind, citymodel.BoundarySurfaceKind, string) {
	switch laneType {
	case "driving", "exit", "entry", "onRamp", "offRamp":
		return citymodel.FeatureRoad, citymodel.BoundaryTrafficArea, ""
	case "sidewalk", "walking":
		return citymodel.FeatureRoad, citymodel.BoundaryAuxiliaryTrafficArea, "Footpath"
	case "biking":
		return citymodel.FeatureRoad, citymodel.BoundaryTrafficArea, "Cyclepath"
	case "rail", "tram":
		return citymodel.FeatureRailway, citymodel.BoundaryTrafficArea, ""
	case "parking":
		return citymodel.FeatureRoad, citymodel.BoundaryAuxiliaryTrafficArea, ""
	default:
		return citymodel.FeatureRoad, citymodel.BoundaryAuxiliaryTrafficArea, ""
	}
}

// featureKindForRoadspace picks one FeatureKind for an entire Roadspace's
// Feature: Railway if any of its lanes carry a rail/tram type, Road
// otherwise. Lanes classify per surface, but one Roadspace maps onto a
// single Road or Railway feature as its geometry's container, so a
// mixed-type road (rare — a dedicated tram lane beside driving lanes)
// resolves to the rarer, more specific kind rather than splitting one
// Roadspace across multiple Features.
func featureKindForRoadspace(laneTypes []string) citymodel.FeatureKind {
	for _, t := range laneTypes {
		if t == "rail" || t == "tram" {
			return citymodel.FeatureRailway
		}
	}
	return citymodel.FeatureRoad
}
