package fromopendrive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/opendrive"
	"github.com/go-roadspaces/roadspaces/roadspace"
)

const tol = 1e-7

// straightRoad builds a single-segment, flat, two-lane road of the given
// length: one driving lane each side of a center lane, constant width.
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
					Left:   []opendrive.Lane{{ID: 1, Type: "driving", Width: []opendrive.CubicRecord{{S: 0, A: 3.5}}}},
					Right:  []opendrive.Lane{{ID: -1, Type: "driving", Width: []opendrive.CubicRecord{{S: 0, A: 3.5}}}},
				},
			},
		},
	}
}

func TestBuildReferenceLineLinePrimitive(t *testing.T) {
	params := config.Default()
	road := straightRoad(t, "1", 100)

	refLine, err := buildReferenceLine(road, params)
	require.NoError(t, err)

	start, err := refLine.PoseGlobal(0)
	require.NoError(t, err)
	require.InDelta(t, 0, start.Position.X, tol)
	require.InDelta(t, 0, start.Position.Y, tol)

	end, err := refLine.PoseGlobal(100)
	require.NoError(t, err)
	require.InDelta(t, 100, end.Position.X, tol)
	require.InDelta(t, 0, end.Position.Y, tol)
}

func TestBuildReferenceLineRejectsUnknownPrimitive(t *testing.T) {
	params := config.Default()
	road := straightRoad(t, "1", 100)
	road.PlanView[0].Primitive = nil

	_, err := buildReferenceLine(road, params)
	require.ErrorIs(t, err, ErrUnknownPlanViewPrimitive)
}

func TestBuildRoadSurfaceFallsBackToPlaneWhenNoShapeRecords(t *testing.T) {
	params := config.Default()
	road := straightRoad(t, "1", 100)

	refLine, err := buildReferenceLine(road, params)
	require.NoError(t, err)

	surface, err := buildRoadSurface(road, refLine, params)
	require.NoError(t, err)

	point, err := surface.PointGlobal(50, 2, 0)
	require.NoError(t, err)
	require.InDelta(t, 0, point.Z, tol)
}

func TestBuildRoadBodyComputesLaneBoundariesFromWidth(t *testing.T) {
	params := config.Default()
	road := straightRoad(t, "1", 100)

	refLine, err := buildReferenceLine(road, params)
	require.NoError(t, err)
	surface, err := buildRoadSurface(road, refLine, params)
	require.NoError(t, err)

	body, err := buildRoadBody(road, surface, params)
	require.NoError(t, err)
	require.Len(t, body.LaneSections, 1)

	section := body.LaneSections[0]
	require.Len(t, section.Left, 1)
	require.Len(t, section.Right, 1)

	leftOuter := section.Left[0].OuterBoundary.ValueUnbounded(25)
	require.InDelta(t, 3.5, leftOuter, tol)
	rightOuter := section.Right[0].OuterBoundary.ValueUnbounded(25)
	require.InDelta(t, -3.5, rightOuter, tol)

	leftCenter := section.Left[0].CenterLine.ValueUnbounded(25)
	require.InDelta(t, 1.75, leftCenter, tol)
}

func TestBuildRoadBodyGeneratesFillerSurfaceOnWidthMismatch(t *testing.T) {
	params := config.Default()
	params.GenerateLongitudinalFillerSurfaces = true

	road := straightRoad(t, "1", 100)
	road.Lanes.LaneSections = []opendrive.LaneSection{
		{
			S:      0,
			Center: []opendrive.Lane{{ID: 0, Type: "none"}},
			Left:   []opendrive.Lane{{ID: 1, Type: "driving", Width: []opendrive.CubicRecord{{S: 0, A: 3.5}}}},
		},
		{
			S:      50,
			Center: []opendrive.Lane{{ID: 0, Type: "none"}},
			Left:   []opendrive.Lane{{ID: 1, Type: "driving", Width: []opendrive.CubicRecord{{S: 0, A: 5.0}}}},
		},
	}

	refLine, err := buildReferenceLine(road, params)
	require.NoError(t, err)
	surface, err := buildRoadSurface(road, refLine, params)
	require.NoError(t, err)

	body, err := buildRoadBody(road, surface, params)
	require.NoError(t, err)
	require.Len(t, body.LaneSections, 2)
	require.Len(t, body.FillerSurfaces, 1)

	filler := body.FillerSurfaces[0]
	require.Equal(t, "left", filler.Side)
	require.InDelta(t, 50, filler.S, tol)
	require.InDelta(t, 3.5, filler.TOuterBefore, tol)
	require.InDelta(t, 5.0, filler.TOuterAfter, tol)
}

func TestBuildRoadBodySkipsFillerSurfacesWhenDisabled(t *testing.T) {
	params := config.Default()
	params.GenerateLongitudinalFillerSurfaces = false

	road := straightRoad(t, "1", 100)
	road.Lanes.LaneSections = []opendrive.LaneSection{
		{S: 0, Center: []opendrive.Lane{{ID: 0}}, Left: []opendrive.Lane{{ID: 1, Width: []opendrive.CubicRecord{{S: 0, A: 3.5}}}}},
		{S: 50, Center: []opendrive.Lane{{ID: 0}}, Left: []opendrive.Lane{{ID: 1, Width: []opendrive.CubicRecord{{S: 0, A: 5.0}}}}},
	}

	refLine, err := buildReferenceLine(road, params)
	require.NoError(t, err)
	surface, err := buildRoadSurface(road, refLine, params)
	require.NoError(t, err)

	body, err := buildRoadBody(road, surface, params)
	require.NoError(t, err)
	require.Empty(t, body.FillerSurfaces)
}

func TestBuildObjectsResolvesSimpleGeometryPriorityList(t *testing.T) {
	params := config.Default()
	road := straightRoad(t, "1", 100)
	road.Objects = []opendrive.RoadObject{
		{ID: "cuboid", S: 10, T: 0, Length: 2, Width: 2, Height: 2},
		{ID: "rect", S: 20, T: 0, Length: 2, Width: 2},
		{ID: "cyl", S: 30, T: 0, Radius: 1, Height: 2},
		{ID: "circ", S: 40, T: 0, Radius: 1},
		{ID: "pt", S: 50, T: 0},
	}

	refLine, err := buildReferenceLine(road, params)
	require.NoError(t, err)

	objects, err := buildObjects(road, refLine, params)
	require.NoError(t, err)
	require.Len(t, objects, 5)

	require.Equal(t, roadspace.ObjectGeometryCuboid, objects[0].GeometryKind)
	require.NotEmpty(t, objects[0].Faces)
	require.Equal(t, roadspace.ObjectGeometryRectangle, objects[1].GeometryKind)
	require.Equal(t, roadspace.ObjectGeometryCylinder, objects[2].GeometryKind)
	require.Equal(t, roadspace.ObjectGeometryCircle, objects[3].GeometryKind)
	require.Equal(t, roadspace.ObjectGeometryPoint, objects[4].GeometryKind)
	require.NotNil(t, objects[4].Point)
	require.Nil(t, objects[4].Faces)
}

func TestBuildObjectsExpandsRepeatIntoSweptPolyhedron(t *testing.T) {
	params := config.Default()
	road := straightRoad(t, "1", 100)
	road.Objects = []opendrive.RoadObject{
		{
			ID: "fence", S: 0, T: 3,
			Repeat: &opendrive.RepeatSpec{
				S: 0, Length: 20, Distance: 5,
				TStart: 3, TEnd: 3,
				WidthStart: 0.1, WidthEnd: 0.1,
				HeightStart: 1, HeightEnd: 1,
			},
		},
	}

	refLine, err := buildReferenceLine(road, params)
	require.NoError(t, err)

	objects, err := buildObjects(road, refLine, params)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	require.Equal(t, roadspace.ObjectGeometryPolyhedronFromRoadCorners, objects[0].GeometryKind)
	require.NotEmpty(t, objects[0].Faces)
}

func TestBuildJunctionsResolvesConnectionAndLaneLinks(t *testing.T) {
	incoming := straightRoad(t, "1", 100)
	incoming.Link.SuccessorIsJunction = true
	incoming.Link.SuccessorID = "J"

	connecting := straightRoad(t, "2", 20)
	connecting.JunctionID = "J"

	roadsByID := map[string]opendrive.Road{"1": incoming, "2": connecting}

	pr := opendrive.PR{
		Junctions: []opendrive.Junction{
			{
				ID:   "J",
				Name: "test junction",
				Connections: []opendrive.Connection{
					{
						ID:             "c1",
						IncomingRoad:   "1",
						ConnectingRoad: "2",
						ContactPoint:   opendrive.ContactPointStart,
						LaneLinks:      []opendrive.LaneLink{{From: 1, To: 1}, {From: -1, To: -1}},
					},
				},
			},
		},
	}

	junctions, err := buildJunctions(pr, roadsByID)
	require.NoError(t, err)
	require.Len(t, junctions, 1)
	require.Len(t, junctions[0].Connections, 1)

	conn := junctions[0].Connections[0]
	require.Equal(t, opendrive.ContactPointEnd, conn.Incoming.ContactPoint)
	require.Equal(t, opendrive.ContactPointStart, conn.Connecting.ContactPoint)
	require.Equal(t, map[int]int{1: 1, -1: -1}, conn.LaneLinks)

	roadID, ok := conn.Incoming.RoadspaceID.FieldValue("road")
	require.True(t, ok)
	require.Equal(t, "1", roadID)
}

func TestBuildJunctionsRejectsConnectionNotAtJunction(t *testing.T) {
	incoming := straightRoad(t, "1", 100) // link does not reference any junction
	connecting := straightRoad(t, "2", 20)
	roadsByID := map[string]opendrive.Road{"1": incoming, "2": connecting}

	pr := opendrive.PR{
		Junctions: []opendrive.Junction{
			{
				ID: "J",
				Connections: []opendrive.Connection{
					{ID: "c1", IncomingRoad: "1", ConnectingRoad: "2", ContactPoint: opendrive.ContactPointStart},
				},
			},
		},
	}

	_, err := buildJunctions(pr, roadsByID)
	require.ErrorIs(t, err, ErrConnectionNotAtJunction)
}

func TestBuildJunctionsRejectsUnknownRoad(t *testing.T) {
	incoming := straightRoad(t, "1", 100)
	incoming.Link.SuccessorIsJunction = true
	incoming.Link.SuccessorID = "J"
	roadsByID := map[string]opendrive.Road{"1": incoming}

	pr := opendrive.PR{
		Junctions: []opendrive.Junction{
			{
				ID: "J",
				Connections: []opendrive.Connection{
					{ID: "c1", IncomingRoad: "1", ConnectingRoad: "missing", ContactPoint: opendrive.ContactPointStart},
				},
			},
		},
	}

	_, err := buildJunctions(pr, roadsByID)
	require.ErrorIs(t, err, ErrRoadNotFound)
}

func TestConvertResolvesEveryRoadAndPreservesOrder(t *testing.T) {
	pr := opendrive.PR{
		Roads: []opendrive.Road{
			straightRoad(t, "1", 50),
			straightRoad(t, "2", 75),
			straightRoad(t, "3", 100),
		},
	}

	sequential := config.Default()
	sequential.ConcurrentProcessing = false
	docSeq, err := Convert(pr, sequential)
	require.NoError(t, err)

	concurrent := config.Default()
	concurrent.ConcurrentProcessing = true
	docConc, err := Convert(pr, concurrent)
	require.NoError(t, err)

	require.Len(t, docSeq.Roadspaces, 3)
	require.Len(t, docConc.Roadspaces, 3)
	for i := range docSeq.Roadspaces {
		require.Equal(t, docSeq.Roadspaces[i].ID.Canonical(), docConc.Roadspaces[i].ID.Canonical())
	}
	require.Equal(t, "road=1", docSeq.Roadspaces[0].ID.Canonical())
	require.Equal(t, "road=2", docSeq.Roadspaces[1].ID.Canonical())
	require.Equal(t, "road=3", docSeq.Roadspaces[2].ID.Canonical())
}

func TestConvertCarriesCrsEpsgFromParameters(t *testing.T) {
	pr := opendrive.PR{Roads: []opendrive.Road{straightRoad(t, "1", 10)}}
	params := config.Default()
	params.CrsEpsg = 25832

	doc, err := Convert(pr, params)
	require.NoError(t, err)
	require.Equal(t, 25832, doc.Header.CrsEpsg)
}
