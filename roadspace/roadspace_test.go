package roadspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/curve2d"
	"github.com/go-roadspaces/roadspaces/curve3d"
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/roadspace"
	"github.com/go-roadspaces/roadspaces/spatial"
	"github.com/go-roadspaces/roadspaces/surface2d"
)

const tol = 1e-7

func flatCurve3D(t *testing.T, length float64) curve3d.Curve3D {
	t.Helper()
	domain, err := interval.NewClosed(0, length)
	require.NoError(t, err)

	start := curve2d.Pose2D{Point: spatial.Vector2D{X: 0, Y: 0}, Rotation: spatial.NewRotation2D(0)}
	planView := curve2d.NewLineSegment2D(domain, tol, start)
	zero := curve1d.NewLinear(0, 0, domain, tol)

	c3, err := curve3d.NewCurve3D(planView, zero, zero, tol)
	require.NoError(t, err)
	return c3
}

func flatSurface(t *testing.T, length float64) curve3d.CurveRelativeParametricSurface3D {
	t.Helper()
	domainX, err := interval.NewClosed(0, length)
	require.NoError(t, err)
	domainY, err := interval.NewClosed(-5, 5)
	require.NoError(t, err)

	plane := surface2d.NewPlane(0, 0, 0, domainX, domainY, tol)
	surface, err := curve3d.NewCurveRelativeParametricSurface3D(flatCurve3D(t, length), plane, tol)
	require.NoError(t, err)
	return surface
}

func TestIdentifierCanonicalIsDeterministicAndOrdered(t *testing.T) {
	id := roadspace.NewIdentifier([2]string{"roadId", "7"}, [2]string{"contactPoint", "start"})
	require.Equal(t, "roadId=7|contactPoint=start", id.Canonical())

	value, ok := id.FieldValue("contactPoint")
	require.True(t, ok)
	require.Equal(t, "start", value)

	_, ok = id.FieldValue("missing")
	require.False(t, ok)
}

func TestNewLaneSectionRejectsEmptySides(t *testing.T) {
	sRange, err := interval.NewClosed(0, 10)
	require.NoError(t, err)
	_, err = roadspace.NewLaneSection(sRange, nil, roadspace.Lane{ID: 0}, nil)
	require.ErrorIs(t, err, roadspace.ErrEmptyLaneSide)
}

func TestNewRoadBodyRejectsNonAscendingSections(t *testing.T) {
	surface := flatSurface(t, 100)

	sRangeA, err := interval.NewClosed(0, 50)
	require.NoError(t, err)
	sRangeB, err := interval.NewClosed(25, 100)
	require.NoError(t, err)

	left := []roadspace.Lane{{ID: 1, Type: "driving"}}
	sectionA, err := roadspace.NewLaneSection(sRangeA, left, roadspace.Lane{ID: 0}, nil)
	require.NoError(t, err)
	sectionB, err := roadspace.NewLaneSection(sRangeB, left, roadspace.Lane{ID: 0}, nil)
	require.NoError(t, err)

	_, err = roadspace.NewRoadBody(surface, []roadspace.LaneSection{sectionB, sectionA}, nil, nil)
	require.ErrorIs(t, err, roadspace.ErrLaneSectionsNotAscending)
}

func TestDocumentRoadspaceByID(t *testing.T) {
	surface := flatSurface(t, 100)
	sRange, err := interval.NewClosed(0, 100)
	require.NoError(t, err)
	left := []roadspace.Lane{{ID: 1, Type: "driving"}}
	section, err := roadspace.NewLaneSection(sRange, left, roadspace.Lane{ID: 0}, nil)
	require.NoError(t, err)
	body, err := roadspace.NewRoadBody(surface, []roadspace.LaneSection{section}, nil, nil)
	require.NoError(t, err)

	id := roadspace.NewIdentifier([2]string{"roadId", "1"})
	rs := roadspace.NewRoadspace(id, flatCurve3D(t, 100), body, nil, nil)
	doc := roadspace.NewDocument(roadspace.Header{CrsEpsg: 25832}, []roadspace.Roadspace{rs}, nil)

	got, ok := doc.RoadspaceByID(id)
	require.True(t, ok)
	require.Equal(t, rs.ID.Canonical(), got.ID.Canonical())

	_, ok = doc.RoadspaceByID(roadspace.NewIdentifier([2]string{"roadId", "999"}))
	require.False(t, ok)
}
