package curve3d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/curve2d"
	"github.com/go-roadspaces/roadspaces/curve3d"
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/spatial"
	"github.com/go-roadspaces/roadspaces/surface2d"
)

const tol = 1e-7

func flatPlanView(length float64) curve2d.Curve2D {
	domain, _ := interval.NewClosed(0, length)
	start := curve2d.Pose2D{Point: spatial.Vector2D{X: 0, Y: 0}, Rotation: spatial.NewRotation2D(0)}
	return curve2d.NewLineSegment2D(domain, tol, start)
}

func TestCurve3DFlatPoseIsPlanPoseWithZeroHeight(t *testing.T) {
	domain, _ := interval.NewClosed(0, 100)
	height := curve1d.NewLinear(0, 0, domain, tol)
	torsion := curve1d.NewLinear(0, 0, domain, tol)

	c3, err := curve3d.NewCurve3D(flatPlanView(100), height, torsion, tol)
	require.NoError(t, err)

	pose, err := c3.PoseGlobal(10)
	require.NoError(t, err)
	require.True(t, pose.Position.FuzzyEquals(spatial.Vector3D{X: 10, Y: 0, Z: 0}, 1e-9))
}

func TestCurve3DAppliesHeightAndSlopePitch(t *testing.T) {
	domain, _ := interval.NewClosed(0, 100)
	slope := 0.05
	height := curve1d.NewLinear(slope, 0, domain, tol)
	torsion := curve1d.NewLinear(0, 0, domain, tol)

	c3, err := curve3d.NewCurve3D(flatPlanView(100), height, torsion, tol)
	require.NoError(t, err)

	pose, err := c3.PoseGlobal(20)
	require.NoError(t, err)
	require.InDelta(t, 1.0, pose.Position.Z, 1e-9)

	expectedPitch := math.Atan(slope / math.Sqrt(1+slope*slope))
	require.InDelta(t, expectedPitch, pose.Orientation.Pitch(), 1e-9)
}

func TestCurve3DRejectsNarrowerSubModelDomain(t *testing.T) {
	shortDomain, _ := interval.NewClosed(0, 50)
	height := curve1d.NewLinear(0, 0, shortDomain, tol)
	torsion := curve1d.NewLinear(0, 0, shortDomain, tol)

	_, err := curve3d.NewCurve3D(flatPlanView(100), height, torsion, tol)
	var mismatch curve3d.DomainMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestCurveRelativeParametricSurface3DPointGlobal(t *testing.T) {
	domain, _ := interval.NewClosed(0, 100)
	height := curve1d.NewLinear(0, 0, domain, tol)
	torsion := curve1d.NewLinear(0, 0, domain, tol)
	c3, err := curve3d.NewCurve3D(flatPlanView(100), height, torsion, tol)
	require.NoError(t, err)

	domainY, _ := interval.NewClosed(-5, 5)
	heightField := surface2d.NewPlane(0, 0, 0.2, domain, domainY, tol)

	surf, err := curve3d.NewCurveRelativeParametricSurface3D(c3, heightField, tol)
	require.NoError(t, err)

	p, err := surf.PointGlobal(10, 2, 0)
	require.NoError(t, err)
	require.True(t, p.FuzzyEquals(spatial.Vector3D{X: 10, Y: 2, Z: 0.2}, 1e-9))
}

func TestCurveRelativeParametricSurface3DOutOfDomain(t *testing.T) {
	domain, _ := interval.NewClosed(0, 100)
	height := curve1d.NewLinear(0, 0, domain, tol)
	torsion := curve1d.NewLinear(0, 0, domain, tol)
	c3, err := curve3d.NewCurve3D(flatPlanView(100), height, torsion, tol)
	require.NoError(t, err)

	domainY, _ := interval.NewClosed(-5, 5)
	heightField := surface2d.NewPlane(0, 0, 0, domain, domainY, tol)
	surf, err := curve3d.NewCurveRelativeParametricSurface3D(c3, heightField, tol)
	require.NoError(t, err)

	_, err = surf.PointGlobal(10, 20, 0)
	require.Error(t, err)
}
