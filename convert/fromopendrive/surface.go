package fromopendrive

import (
	"sort"

	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/curve3d"
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/opendrive"
	"github.com/go-roadspaces/roadspaces/surface2d"
)

// buildRoadSurface builds a CurveRelativeParametricSurface3D over
// referenceLine, whose height field
// is a Shape assembled from lateralProfile.shape entries grouped by s. A
// road with no shape entries gets a flat Plane (z = 0 everywhere), since a
// lane cross-section with no recorded shape correction is simply level.
func buildRoadSurface(road opendrive.Road, referenceLine curve3d.Curve3D, params config.Parameters) (curve3d.CurveRelativeParametricSurface3D, error) {
	tol := params.NumberTolerance
	domainT := interval.All()

	if len(road.LateralProfile.Shape) == 0 {
		plane := surface2d.NewPlane(0, 0, 0, referenceLine.Domain(), domainT, tol)
		return curve3d.NewCurveRelativeParametricSurface3D(referenceLine, plane, tol)
	}

	grouped := make(map[float64][]opendrive.ShapeRecord)
	for _, rec := range road.LateralProfile.Shape {
		grouped[rec.S] = append(grouped[rec.S], rec)
	}

	entries := make(map[float64]curve1d.Function, len(grouped))
	for s, recs := range grouped {
		sort.Slice(recs, func(i, j int) bool { return recs[i].T < recs[j].T })
		breakpoints := make([]float64, len(recs))
		coeffs := make([][]float64, len(recs))
		for i, r := range recs {
			breakpoints[i] = r.T
			coeffs[i] = []float64{r.A, r.B, r.C, r.D}
		}
		fn, err := curve1d.ConcatenatedOfPolynomials(breakpoints, coeffs, true, nil, tol)
		if err != nil {
			return curve3d.CurveRelativeParametricSurface3D{}, err
		}
		entries[s] = fn
	}

	shape, err := surface2d.NewShape(entries, params.ExtrapolateLateralRoadShapes, params.ExtrapolateLateralRoadShapes, referenceLine.Domain(), domainT, tol)
	if err != nil {
		return curve3d.CurveRelativeParametricSurface3D{}, err
	}

	return curve3d.NewCurveRelativeParametricSurface3D(referenceLine, shape, tol)
}
