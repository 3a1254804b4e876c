package fromopendrive

import (
	"math"
	"strconv"

	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/curve2d"
	"github.com/go-roadspaces/roadspaces/curve3d"
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/opendrive"
	"github.com/go-roadspaces/roadspaces/roadspace"
	"github.com/go-roadspaces/roadspaces/solid"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// buildObjects resolves every road object to one of the nine
// priority-ordered geometry kinds, expanding a repeat specification into
// a swept run first.
func buildObjects(road opendrive.Road, referenceLine curve3d.Curve3D, params config.Parameters) ([]roadspace.RoadspaceObject, error) {
	out := make([]roadspace.RoadspaceObject, 0, len(road.Objects))
	for _, obj := range road.Objects {
		if obj.Repeat != nil && obj.Repeat.Length > params.NumberTolerance {
			built, err := buildRepeatedObject(road.ID, obj, referenceLine, params)
			if err != nil {
				return nil, err
			}
			out = append(out, built)
			continue
		}
		built, err := buildSingleObject(road.ID, obj, referenceLine, params)
		if err != nil {
			return nil, err
		}
		out = append(out, built)
	}
	return out, nil
}

// buildSingleObject walks the nine-entry geometry-kind priority list in
// order, returning the first kind whose precondition holds.
func buildSingleObject(roadID string, obj opendrive.RoadObject, referenceLine curve3d.Curve3D, params config.Parameters) (roadspace.RoadspaceObject, error) {
	tol := params.NumberTolerance
	id := objectIdentifier(roadID, obj.ID, -1)
	attrs := objectAttributes(obj)

	affine, err := objectAffine(referenceLine, obj)
	if err != nil {
		return roadspace.RoadspaceObject{}, err
	}

	if len(obj.Outlines) > 0 && len(obj.Outlines[0].Corners) >= 3 {
		outline := obj.Outlines[0]
		roadRelative := !outline.Corners[0].IsLocal
		faces, extruded, err := facesFromOutline(outline, referenceLine, affine, tol)
		if err != nil {
			return roadspace.RoadspaceObject{}, err
		}
		return roadspace.NewRoadspaceObject(id, objectGeometryKindForOutline(roadRelative, extruded), faces, nil, obj.Material, attrs), nil
	}

	switch {
	case obj.Length > tol && obj.Width > tol && obj.Height > tol:
		faces, err := cuboidFaces(obj, affine, tol)
		if err != nil {
			return roadspace.RoadspaceObject{}, err
		}
		return roadspace.NewRoadspaceObject(id, roadspace.ObjectGeometryCuboid, faces, nil, obj.Material, attrs), nil

	case obj.Length > tol && obj.Width > tol:
		faces, err := rectangleFaces(obj, affine, tol)
		if err != nil {
			return roadspace.RoadspaceObject{}, err
		}
		return roadspace.NewRoadspaceObject(id, roadspace.ObjectGeometryRectangle, faces, nil, obj.Material, attrs), nil

	case obj.Radius > tol && obj.Height > tol:
		faces, err := cylinderFaces(obj, affine, params)
		if err != nil {
			return roadspace.RoadspaceObject{}, err
		}
		return roadspace.NewRoadspaceObject(id, roadspace.ObjectGeometryCylinder, faces, nil, obj.Material, attrs), nil

	case obj.Radius > tol:
		faces, err := circleFaces(obj, affine, params)
		if err != nil {
			return roadspace.RoadspaceObject{}, err
		}
		return roadspace.NewRoadspaceObject(id, roadspace.ObjectGeometryCircle, faces, nil, obj.Material, attrs), nil
	}

	point, err := pointLocation(referenceLine, obj)
	if err != nil {
		return roadspace.RoadspaceObject{}, err
	}
	return roadspace.NewRoadspaceObject(id, roadspace.ObjectGeometryPoint, nil, &point, obj.Material, attrs), nil
}

// objectAffine is the global pose of an object's own local frame: the
// reference line's pose at obj.S, offset laterally by T and vertically by
// ZOffset, then rotated by the object's own heading/pitch/roll.
func objectAffine(referenceLine curve3d.Curve3D, obj opendrive.RoadObject) (spatial.AffineSequence, error) {
	roadPose, err := referenceLine.PoseGlobal(obj.S)
	if err != nil {
		return spatial.AffineSequence{}, err
	}
	position := roadPose.Transform(spatial.Vector3D{X: 0, Y: obj.T, Z: obj.ZOffset})
	orientation := roadPose.Orientation.Compose(spatial.NewRotation3D(obj.Hdg, obj.Pitch, obj.Roll))
	return spatial.NewAffineSequence(spatial.PoseMat4(spatial.NewPose(position, orientation))), nil
}

func pointLocation(referenceLine curve3d.Curve3D, obj opendrive.RoadObject) (roadspace.PointLocation, error) {
	roadPose, err := referenceLine.PoseGlobal(obj.S)
	if err != nil {
		return roadspace.PointLocation{}, err
	}
	position := roadPose.Transform(spatial.Vector3D{X: 0, Y: obj.T, Z: obj.ZOffset})
	orientation := roadPose.Orientation.Compose(spatial.NewRotation3D(obj.Hdg, obj.Pitch, obj.Roll))
	return roadspace.PointLocation{
		X: position.X, Y: position.Y, Z: position.Z,
		Heading: orientation.Heading(), Pitch: orientation.Pitch(), Roll: orientation.Roll(),
	}, nil
}

// facesFromOutline builds faces for a road object's outline: a flat single
// polygon when no corner carries a height (a footprint), or a closed prism
// between a bottom and a top ring when at least one corner does.
func facesFromOutline(outline opendrive.Outline, referenceLine curve3d.Curve3D, affine spatial.AffineSequence, tol float64) ([]solid.Polygon3D, bool, error) {
	extruded := false
	for _, c := range outline.Corners {
		if c.Height > tol {
			extruded = true
			break
		}
	}

	n := len(outline.Corners)
	bottom := make([]spatial.Vector3D, n)
	top := make([]spatial.Vector3D, n)
	for i, c := range outline.Corners {
		b, t, err := cornerPoints(c, referenceLine, affine, extruded)
		if err != nil {
			return nil, false, err
		}
		bottom[i] = b
		top[i] = t
	}

	if !extruded {
		ring, err := solid.NewLinearRing3D(bottom, tol)
		if err != nil {
			return nil, false, err
		}
		return []solid.Polygon3D{solid.NewPolygon3D(ring)}, false, nil
	}

	var faces []solid.Polygon3D
	bottomRing, err := solid.NewLinearRing3D(reverseVertices(bottom), tol)
	if err != nil {
		return nil, false, err
	}
	faces = append(faces, solid.NewPolygon3D(bottomRing))

	topRing, err := solid.NewLinearRing3D(top, tol)
	if err != nil {
		return nil, false, err
	}
	faces = append(faces, solid.NewPolygon3D(topRing))

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sideRing, err := solid.NewLinearRing3D([]spatial.Vector3D{bottom[i], bottom[j], top[j], top[i]}, tol)
		if err != nil {
			return nil, false, err
		}
		faces = append(faces, solid.NewPolygon3D(sideRing))
	}

	if _, err := solid.NewPolyhedron(faces); err != nil {
		return nil, false, err
	}
	return faces, true, nil
}

func cornerPoints(c opendrive.OutlineCorner, referenceLine curve3d.Curve3D, affine spatial.AffineSequence, extruded bool) (spatial.Vector3D, spatial.Vector3D, error) {
	if c.IsLocal {
		bottom, err := affine.Transform(spatial.Vector3D{X: c.U, Y: c.V, Z: c.Z})
		if err != nil {
			return spatial.Vector3D{}, spatial.Vector3D{}, err
		}
		if !extruded {
			return bottom, spatial.Vector3D{}, nil
		}
		top, err := affine.Transform(spatial.Vector3D{X: c.U, Y: c.V, Z: c.Z + c.Height})
		if err != nil {
			return spatial.Vector3D{}, spatial.Vector3D{}, err
		}
		return bottom, top, nil
	}

	aff, err := referenceLine.Affine(c.S)
	if err != nil {
		return spatial.Vector3D{}, spatial.Vector3D{}, err
	}
	bottom, err := aff.Transform(spatial.Vector3D{X: 0, Y: c.T, Z: c.Dz})
	if err != nil {
		return spatial.Vector3D{}, spatial.Vector3D{}, err
	}
	if !extruded {
		return bottom, spatial.Vector3D{}, nil
	}
	top, err := aff.Transform(spatial.Vector3D{X: 0, Y: c.T, Z: c.Dz + c.Height})
	if err != nil {
		return spatial.Vector3D{}, spatial.Vector3D{}, err
	}
	return bottom, top, nil
}

func reverseVertices(vs []spatial.Vector3D) []spatial.Vector3D {
	out := make([]spatial.Vector3D, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}

func objectGeometryKindForOutline(roadRelative, extruded bool) roadspace.ObjectGeometryKind {
	switch {
	case roadRelative && extruded:
		return roadspace.ObjectGeometryPolyhedronFromRoadCorners
	case !roadRelative && extruded:
		return roadspace.ObjectGeometryPolyhedronFromLocalCorners
	case roadRelative && !extruded:
		return roadspace.ObjectGeometryLinearRingFromRoadCorners
	default:
		return roadspace.ObjectGeometryLinearRingFromLocalCorners
	}
}

// liftFaces transforms a solid's local-frame faces into the global frame
// described by affine, first centering them at (centerX, centerY) so a
// Cuboid/Cylinder's footprint is anchored under the object's own (s,t)
// point rather than offset by half its length/width.
func liftFaces(localFaces []solid.Polygon3D, centerX, centerY float64, affine spatial.AffineSequence, tol float64) ([]solid.Polygon3D, error) {
	out := make([]solid.Polygon3D, len(localFaces))
	for i, f := range localFaces {
		verts := f.Vertices()
		centered := make([]spatial.Vector3D, len(verts))
		for j, v := range verts {
			centered[j] = spatial.Vector3D{X: v.X - centerX, Y: v.Y - centerY, Z: v.Z}
		}
		global, err := affine.TransformPolygon(centered)
		if err != nil {
			return nil, err
		}
		ring, err := solid.NewLinearRing3D(global, tol)
		if err != nil {
			return nil, err
		}
		out[i] = solid.NewPolygon3D(ring)
	}
	return out, nil
}

func cuboidFaces(obj opendrive.RoadObject, affine spatial.AffineSequence, tol float64) ([]solid.Polygon3D, error) {
	cuboid, err := solid.NewCuboid(obj.Length, obj.Width, obj.Height, tol)
	if err != nil {
		return nil, err
	}
	faces, err := cuboid.Faces()
	if err != nil {
		return nil, err
	}
	return liftFaces(faces, obj.Length/2, obj.Width/2, affine, tol)
}

func cylinderFaces(obj opendrive.RoadObject, affine spatial.AffineSequence, params config.Parameters) ([]solid.Polygon3D, error) {
	cyl, err := solid.NewCylinder(obj.Radius, obj.Height, params.CircleSlices, params.NumberTolerance)
	if err != nil {
		return nil, err
	}
	faces, err := cyl.Faces()
	if err != nil {
		return nil, err
	}
	return liftFaces(faces, 0, 0, affine, params.NumberTolerance)
}

func rectangleFaces(obj opendrive.RoadObject, affine spatial.AffineSequence, tol float64) ([]solid.Polygon3D, error) {
	l, w := obj.Length, obj.Width
	local := []spatial.Vector3D{
		{X: -l / 2, Y: -w / 2, Z: 0},
		{X: l / 2, Y: -w / 2, Z: 0},
		{X: l / 2, Y: w / 2, Z: 0},
		{X: -l / 2, Y: w / 2, Z: 0},
	}
	global, err := affine.TransformPolygon(local)
	if err != nil {
		return nil, err
	}
	ring, err := solid.NewLinearRing3D(global, tol)
	if err != nil {
		return nil, err
	}
	return []solid.Polygon3D{solid.NewPolygon3D(ring)}, nil
}

func circleFaces(obj opendrive.RoadObject, affine spatial.AffineSequence, params config.Parameters) ([]solid.Polygon3D, error) {
	n := params.CircleSlices
	if n < 3 {
		n = 3
	}
	local := make([]spatial.Vector3D, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		local[i] = spatial.Vector3D{X: obj.Radius * math.Cos(theta), Y: obj.Radius * math.Sin(theta), Z: 0}
	}
	global, err := affine.TransformPolygon(local)
	if err != nil {
		return nil, err
	}
	ring, err := solid.NewLinearRing3D(global, params.NumberTolerance)
	if err != nil {
		return nil, err
	}
	return []solid.Polygon3D{solid.NewPolygon3D(ring)}, nil
}

func objectAttributes(obj opendrive.RoadObject) map[string]string {
	attrs := map[string]string{"type": obj.Type}
	if obj.Validity != nil {
		attrs["fromLane"] = strconv.Itoa(obj.Validity.FromLane)
		attrs["toLane"] = strconv.Itoa(obj.Validity.ToLane)
	}
	return attrs
}

// repeatCrossSection is the rectangular (t,h)-local profile of a repeat
// run, varying along its own local [0,Length] parameter: t and width ramp
// linearly between the repeat's start/end values, and the top edge is a
// Stacked sum of the z-offset ramp and the height ramp riding on top of it.
type repeatCrossSection struct {
	tFn, widthFn, baseFn curve1d.Function
	topFn                curve1d.Function
}

func (r repeatCrossSection) Points(s float64) ([]spatial.Vector2D, error) {
	t := r.tFn.ValueUnbounded(s)
	width := r.widthFn.ValueUnbounded(s)
	base := r.baseFn.ValueUnbounded(s)
	top := r.topFn.ValueUnbounded(s)
	half := width / 2
	return []spatial.Vector2D{
		{X: t - half, Y: base},
		{X: t + half, Y: base},
		{X: t + half, Y: top},
		{X: t - half, Y: top},
	}, nil
}

// buildRepeatedObject approximates a repeat run as a straight chord between
// the reference line's pose at its start and end s — a reasonable
// approximation for the short spans repeat objects (guardrails, fences,
// tree rows) actually cover — then sweeps a ramped rectangular
// cross-section along it.
func buildRepeatedObject(roadID string, obj opendrive.RoadObject, referenceLine curve3d.Curve3D, params config.Parameters) (roadspace.RoadspaceObject, error) {
	tol := params.NumberTolerance
	rep := obj.Repeat

	axis, err := buildRepeatAxis(referenceLine, rep, tol)
	if err != nil {
		return roadspace.RoadspaceObject{}, err
	}

	tFn, err := curve1d.LinearOfInclusivePoints(0, rep.TStart, rep.Length, rep.TEnd, tol)
	if err != nil {
		return roadspace.RoadspaceObject{}, err
	}
	widthFn, err := curve1d.LinearOfInclusivePoints(0, rep.WidthStart, rep.Length, rep.WidthEnd, tol)
	if err != nil {
		return roadspace.RoadspaceObject{}, err
	}
	baseFn, err := curve1d.LinearOfInclusivePoints(0, rep.ZOffsetStart, rep.Length, rep.ZOffsetEnd, tol)
	if err != nil {
		return roadspace.RoadspaceObject{}, err
	}
	heightRampFn, err := curve1d.LinearOfInclusivePoints(0, rep.HeightStart, rep.Length, rep.HeightEnd, tol)
	if err != nil {
		return roadspace.RoadspaceObject{}, err
	}
	topFn, err := curve1d.StackedOfSum(tol, baseFn, heightRampFn)
	if err != nil {
		return roadspace.RoadspaceObject{}, err
	}

	crossSection := repeatCrossSection{tFn: tFn, widthFn: widthFn, baseFn: baseFn, topFn: topFn}
	sweep, err := solid.NewParametricSweep(axis, crossSection, params.SweepDiscretizationStepSize, tol)
	if err != nil {
		return roadspace.RoadspaceObject{}, err
	}
	faces, err := sweep.Faces()
	if err != nil {
		return roadspace.RoadspaceObject{}, err
	}

	id := objectIdentifier(roadID, obj.ID, 0)
	return roadspace.NewRoadspaceObject(id, roadspace.ObjectGeometryPolyhedronFromRoadCorners, faces, nil, obj.Material, objectAttributes(obj)), nil
}

// buildRepeatAxis builds a straight Curve3D over exactly [0, rep.Length],
// so a ParametricSweep's domain matches the repeat's own span instead of
// the whole road. The line starts at referenceLine's position at rep.S and
// heads along the chord toward its position at rep.S + rep.Length, at unit
// speed; height and roll run linearly between the poses at the two ends.
func buildRepeatAxis(referenceLine curve3d.Curve3D, rep *opendrive.RepeatSpec, tol float64) (curve3d.Curve3D, error) {
	startPose, err := referenceLine.PoseGlobal(rep.S)
	if err != nil {
		return curve3d.Curve3D{}, err
	}
	endPose, err := referenceLine.PoseGlobal(rep.S + rep.Length)
	if err != nil {
		return curve3d.Curve3D{}, err
	}

	domain, err := interval.NewClosed(0, rep.Length)
	if err != nil {
		return curve3d.Curve3D{}, err
	}
	plan := curve2d.NewLineSegment2D(domain, tol, curve2d.Pose2D{
		Point:    spatial.Vector2D{X: startPose.Position.X, Y: startPose.Position.Y},
		Rotation: spatial.NewRotation2D(math.Atan2(endPose.Position.Y-startPose.Position.Y, endPose.Position.X-startPose.Position.X)),
	})

	heightFn, err := curve1d.LinearOfInclusivePoints(0, startPose.Position.Z, rep.Length, endPose.Position.Z, tol)
	if err != nil {
		return curve3d.Curve3D{}, err
	}
	torsionFn, err := curve1d.LinearOfInclusivePoints(0, startPose.Orientation.Roll(), rep.Length, endPose.Orientation.Roll(), tol)
	if err != nil {
		return curve3d.Curve3D{}, err
	}

	return curve3d.NewCurve3D(plan, heightFn, torsionFn, tol)
}
