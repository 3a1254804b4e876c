package tocitymodel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-roadspaces/roadspaces/citymodel"
	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/convert/fromopendrive"
	"github.com/go-roadspaces/roadspaces/opendrive"
	"github.com/go-roadspaces/roadspaces/roadspace"
	"github.com/go-roadspaces/roadspaces/spatial"
)

const tol = 1e-7

// straightRoad builds a single-segment, flat, three-lane road: one
// driving lane and one sidewalk each side of a center lane, constant
// width, with a single road object placed as a point.
func straightRoad(t *testing.T, id string, length float64) opendrive.Road {
	t.Helper()
	return opendrive.Road{
		ID:     id,
		Name:   "test road " + id,
		Length: length,
		PlanView: []opendrive.PlanViewGeometry{
			{S: 0, X: 0, Y: 0, Hdg: 0, Length: length, Primitive: opendrive.Line{}},
		},
		Lanes: opendrive.LanesModel{
			LaneSections: []opendrive.LaneSection{
				{
					S:      0,
					Center: []opendrive.Lane{{ID: 0, Type: "none"}},
					Left: []opendrive.Lane{
						{ID: 2, Type: "sidewalk", Width: []opendrive.CubicRecord{{S: 0, A: 2.0}}},
						{ID: 1, Type: "driving", Width: []opendrive.CubicRecord{{S: 0, A: 3.5}}},
					},
					Right: []opendrive.Lane{
						{ID: -1, Type: "driving", Width: []opendrive.CubicRecord{{S: 0, A: 3.5}}},
					},
				},
			},
		},
		Objects: []opendrive.RoadObject{
			{
				ID:   "obj-1",
				Type: "tree",
				S:    length / 2,
				T:    5,
			},
		},
	}
}

func buildDocument(t *testing.T, params config.Parameters) roadspace.Document {
	t.Helper()
	pr := opendrive.PR{Roads: []opendrive.Road{straightRoad(t, "1", 100)}}
	doc, err := fromopendrive.Convert(pr, params)
	require.NoError(t, err)
	return doc
}

func TestLaneFeatureKindClassification(t *testing.T) {
	cases := []struct {
		laneType string
		feature  citymodel.FeatureKind
		boundary citymodel.BoundarySurfaceKind
		function string
	}{
		{"driving", citymodel.FeatureRoad, citymodel.BoundaryTrafficArea, ""},
		{"exit", citymodel.FeatureRoad, citymodel.BoundaryTrafficArea, ""},
		{"onRamp", citymodel.FeatureRoad, citymodel.BoundaryTrafficArea, ""},
		{"sidewalk", citymodel.FeatureRoad, citymodel.BoundaryAuxiliaryTrafficArea, "Footpath"},
		{"walking", citymodel.FeatureRoad, citymodel.BoundaryAuxiliaryTrafficArea, "Footpath"},
		{"biking", citymodel.FeatureRoad, citymodel.BoundaryTrafficArea, "Cyclepath"},
		{"rail", citymodel.FeatureRailway, citymodel.BoundaryTrafficArea, ""},
		{"tram", citymodel.FeatureRailway, citymodel.BoundaryTrafficArea, ""},
		{"parking", citymodel.FeatureRoad, citymodel.BoundaryAuxiliaryTrafficArea, ""},
		{"shoulder", citymodel.FeatureRoad, citymodel.BoundaryAuxiliaryTrafficArea, ""},
	}
	for _, tc := range cases {
		feature, boundary, function := laneFeatureKind(tc.laneType)
		require.Equal(t, tc.feature, feature, tc.laneType)
		require.Equal(t, tc.boundary, boundary, tc.laneType)
		require.Equal(t, tc.function, function, tc.laneType)
	}
}

func TestFeatureKindForRoadspacePrefersRailway(t *testing.T) {
	require.Equal(t, citymodel.FeatureRoad, featureKindForRoadspace([]string{"driving", "sidewalk"}))
	require.Equal(t, citymodel.FeatureRailway, featureKindForRoadspace([]string{"driving", "tram"}))
	require.Equal(t, citymodel.FeatureRailway, featureKindForRoadspace([]string{"rail"}))
}

func TestSampleParametersEvenSpacing(t *testing.T) {
	samples := sampleParameters(10, 3)
	require.Equal(t, 0.0, samples[0])
	require.InDelta(t, 10.0, samples[len(samples)-1], tol)
	for i := 1; i < len(samples); i++ {
		require.LessOrEqual(t, samples[i]-samples[i-1], 3.0+tol)
	}
}

func TestSampleParametersZeroLengthReturnsSinglePoint(t *testing.T) {
	samples := sampleParameters(0, 3)
	require.Equal(t, []float64{0}, samples)
}

func TestGridMeshConnectedGridProducesTwoTrianglesPerCell(t *testing.T) {
	grid := [][]spatial.Vector3D{
		{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}},
		{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 2, Y: 1, Z: 0}},
	}
	surface, err := gridMesh(grid, tol)
	require.NoError(t, err)
	require.Len(t, surface, 4)
}

func TestGridMeshRejectsGridTooSmallToFormACell(t *testing.T) {
	grid := [][]spatial.Vector3D{
		{{X: 0, Y: 0, Z: 0}},
	}
	_, err := gridMesh(grid, tol)
	require.ErrorIs(t, err, ErrBoundaryGenerationFailure)
}

func TestGridMeshRejectsRaggedGrid(t *testing.T) {
	grid := [][]spatial.Vector3D{
		{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}},
		{{X: 0, Y: 1, Z: 0}},
	}
	_, err := gridMesh(grid, tol)
	require.ErrorIs(t, err, ErrBoundaryGenerationFailure)
}

func TestCityObjectKindClassification(t *testing.T) {
	treeObj := roadspace.NewRoadspaceObject(roadspace.NewIdentifier([2]string{"object", "1"}), roadspace.ObjectGeometryPoint, nil, &roadspace.PointLocation{}, "", map[string]string{"type": "tree"})
	require.Equal(t, citymodel.CityObjectVegetation, cityObjectKind(treeObj))

	buildingObj := roadspace.NewRoadspaceObject(roadspace.NewIdentifier([2]string{"object", "2"}), roadspace.ObjectGeometryCuboid, nil, nil, "", map[string]string{"type": "building"})
	require.Equal(t, citymodel.CityObjectBuilding, cityObjectKind(buildingObj))

	pointObj := roadspace.NewRoadspaceObject(roadspace.NewIdentifier([2]string{"object", "3"}), roadspace.ObjectGeometryPoint, nil, &roadspace.PointLocation{}, "", map[string]string{"type": "signal"})
	require.Equal(t, citymodel.CityObjectGenericObject, cityObjectKind(pointObj))

	furnitureObj := roadspace.NewRoadspaceObject(roadspace.NewIdentifier([2]string{"object", "4"}), roadspace.ObjectGeometryCylinder, nil, nil, "", map[string]string{"type": "pole"})
	require.Equal(t, citymodel.CityObjectFurniture, cityObjectKind(furnitureObj))
}

func TestRegistryResolveIsUniquePerKey(t *testing.T) {
	registry := citymodel.NewRegistry("UUID_")
	a, err := registry.Resolve("Feature", "road=1")
	require.NoError(t, err)
	b, err := registry.Resolve("Feature", "road=1")
	require.NoError(t, err)
	c, err := registry.Resolve("Feature", "road=2")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NotEqual(t, a, c)
	require.NotEqual(t, b, c)
	require.Contains(t, a, "UUID_")
}

func TestConvertBuildsOneFeaturePerRoadspaceAndResolvesObjects(t *testing.T) {
	params := config.Default()
	doc := buildDocument(t, params)

	model, err := Convert(doc, params)
	require.NoError(t, err)

	require.Len(t, model.Features, 1)
	feature := model.Features[0]
	require.Equal(t, citymodel.FeatureRoad, feature.Kind)
	require.NotEmpty(t, feature.BoundarySurfaces)
	for _, surface := range feature.BoundarySurfaces {
		require.NotEmpty(t, surface.Geometry)
	}

	require.Len(t, model.CityObjects, 1)
	require.Equal(t, citymodel.CityObjectVegetation, model.CityObjects[0].Kind)
	require.NotNil(t, model.CityObjects[0].Point)

	require.Equal(t, params.CrsEpsg, model.Header.CrsEpsg)
}

func TestConvertAssignsDistinctIdsAcrossFeaturesAndObjects(t *testing.T) {
	params := config.Default()
	doc := buildDocument(t, params)

	model, err := Convert(doc, params)
	require.NoError(t, err)

	seen := map[string]bool{}
	seen[model.Features[0].ID] = true
	for _, surface := range model.Features[0].BoundarySurfaces {
		require.False(t, seen[surface.ID], "duplicate id %s", surface.ID)
		seen[surface.ID] = true
	}
	for _, obj := range model.CityObjects {
		require.False(t, seen[obj.ID], "duplicate id %s", obj.ID)
		seen[obj.ID] = true
	}
}
