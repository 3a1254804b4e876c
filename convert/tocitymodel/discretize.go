package tocitymodel

import (
	"math"

	"github.com/go-roadspaces/roadspaces/curve3d"
	"github.com/go-roadspaces/roadspaces/roadspace"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// sampleParameters returns evenly spaced parameter values over [0,
// length], inclusive of both endpoints, with spacing no larger than step
// — the same "ceil(length/step) equal sub-intervals" scheme that keeps
// discretization deterministic and avoids float drift from repeatedly
// adding step.
func sampleParameters(length, step float64) []float64 {
	if length <= 0 {
		return []float64{0}
	}
	n := int(math.Ceil(length / step))
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		out[i] = float64(i) * length / float64(n)
	}
	return out
}

// laneBoundaryGrid samples a lane's inner and outer boundary across its
// section's s-range, producing the two-row point grid gridMesh turns into
// a MultiSurface. Lane boundary functions are defined over the section's
// local, zero-based s parameter (roadspace.LaneSection's Sectioned
// rebasing — see convert/fromopendrive/roadbody.go), so each local sample
// is offset by sectionStart before it is handed to the surface, which
// expects global road s.
func laneBoundaryGrid(lane roadspace.Lane, sectionStart, length float64, surface curve3d.CurveRelativeParametricSurface3D, step float64) ([][]spatial.Vector3D, error) {
	samples := sampleParameters(length, step)
	inner := make([]spatial.Vector3D, len(samples))
	outer := make([]spatial.Vector3D, len(samples))
	for i, localS := range samples {
		globalS := sectionStart + localS
		tInner := lane.InnerBoundary.ValueUnbounded(localS)
		tOuter := lane.OuterBoundary.ValueUnbounded(localS)

		p, err := surface.PointGlobal(globalS, tInner, 0)
		if err != nil {
			return nil, err
		}
		inner[i] = p

		p, err = surface.PointGlobal(globalS, tOuter, 0)
		if err != nil {
			return nil, err
		}
		outer[i] = p
	}
	return [][]spatial.Vector3D{inner, outer}, nil
}

// markingGrid samples a road-marking strip centered on a lane's outer
// boundary, offset laterally by half the marking's recorded width on each
// side, over the marking's own (section-local) s-span.
func markingGrid(lane roadspace.Lane, localStart, length, width, sectionStart float64, surface curve3d.CurveRelativeParametricSurface3D, step float64) ([][]spatial.Vector3D, error) {
	samples := sampleParameters(length, step)
	inner := make([]spatial.Vector3D, len(samples))
	outer := make([]spatial.Vector3D, len(samples))
	half := width / 2
	for i, offset := range samples {
		localS := localStart + offset
		globalS := sectionStart + localS
		centerT := lane.OuterBoundary.ValueUnbounded(localS)

		p, err := surface.PointGlobal(globalS, centerT-half, 0)
		if err != nil {
			return nil, err
		}
		inner[i] = p

		p, err = surface.PointGlobal(globalS, centerT+half, 0)
		if err != nil {
			return nil, err
		}
		outer[i] = p
	}
	return [][]spatial.Vector3D{inner, outer}, nil
}

// fillerGrid samples a filler surface as a short longitudinal strip
// straddling its s position, bridging the lateral gap between the
// lane-section-before and lane-section-after outer boundaries. halfSpan
// is clamped by the caller to stay inside both neighboring sections.
func fillerGrid(filler roadspace.FillerSurface, surface curve3d.CurveRelativeParametricSurface3D, halfSpan float64) ([][]spatial.Vector3D, error) {
	row := func(s float64) ([]spatial.Vector3D, error) {
		before, err := surface.PointGlobal(s, filler.TOuterBefore, 0)
		if err != nil {
			return nil, err
		}
		after, err := surface.PointGlobal(s, filler.TOuterAfter, 0)
		if err != nil {
			return nil, err
		}
		return []spatial.Vector3D{before, after}, nil
	}

	r0, err := row(filler.S - halfSpan)
	if err != nil {
		return nil, err
	}
	r1, err := row(filler.S + halfSpan)
	if err != nil {
		return nil, err
	}
	return [][]spatial.Vector3D{r0, r1}, nil
}
