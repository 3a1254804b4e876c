package fromopendrive

import (
	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/curve2d"
	"github.com/go-roadspaces/roadspaces/curve3d"
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/opendrive"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// buildReferenceLine builds a road's reference line: a plan-view composite
// curve lifted by an elevation concatenation and a superelevation-derived
// torsion concatenation, the latter extended leftward by a constant
// prepended piece so it always encloses the plan view's domain.
func buildReferenceLine(road opendrive.Road, params config.Parameters) (curve3d.Curve3D, error) {
	planCurve, err := buildPlanView(road, params)
	if err != nil {
		return curve3d.Curve3D{}, err
	}

	heightFn, err := buildElevationFunction(road.ElevationProfile, params)
	if err != nil {
		return curve3d.Curve3D{}, err
	}

	torsionFn, err := buildSuperelevationFunction(road.LateralProfile.Superelevation, params)
	if err != nil {
		return curve3d.Curve3D{}, err
	}

	return curve3d.NewCurve3D(planCurve, heightFn, torsionFn, params.NumberTolerance)
}

func buildPlanView(road opendrive.Road, params config.Parameters) (curve2d.CompositeCurve2D, error) {
	tol := params.NumberTolerance
	angleTol := params.PlanViewGeometryAngleTolerance

	segments := make([]curve2d.Curve2D, len(road.PlanView))
	for i, seg := range road.PlanView {
		upper := road.Length
		closed := true
		if i+1 < len(road.PlanView) {
			upper = seg.S + seg.Length
			closed = false
		}
		var domain interval.Range
		var err error
		if closed {
			domain, err = interval.NewClosed(seg.S, upper)
		} else {
			domain, err = interval.NewClosedOpen(seg.S, upper)
		}
		if err != nil {
			return curve2d.CompositeCurve2D{}, err
		}

		curve, err := buildPlanViewSegment(seg, domain, tol)
		if err != nil {
			return curve2d.CompositeCurve2D{}, err
		}
		segments[i] = curve
	}

	return curve2d.NewCompositeCurve2D(segments, tol, angleTol)
}

func buildPlanViewSegment(seg opendrive.PlanViewGeometry, domain interval.Range, tol float64) (curve2d.Curve2D, error) {
	startPose := curve2d.Pose2D{
		Point:    spatial.Vector2D{X: seg.X, Y: seg.Y},
		Rotation: spatial.NewRotation2D(seg.Hdg),
	}

	switch p := seg.Primitive.(type) {
	case opendrive.Line:
		return curve2d.NewLineSegment2D(domain, tol, startPose), nil

	case opendrive.Arc:
		return curve2d.NewArcSegment2D(p.Curvature, domain, tol, startPose), nil

	case opendrive.Spiral:
		curvDomain, err := interval.NewClosed(0, seg.Length)
		if err != nil {
			return nil, err
		}
		slope := (p.CurvEnd - p.CurvStart) / seg.Length
		curvatureRange := curve1d.NewLinear(slope, p.CurvStart, curvDomain, tol)
		return curve2d.NewSpiralSegment2D(curvatureRange, domain, tol, startPose), nil

	case opendrive.Poly3:
		polyX := curve1d.NewPolynomial([]float64{0, 1}, domain, tol)
		polyY := curve1d.NewPolynomial([]float64{p.A, p.B, p.C, p.D}, domain, tol)
		return curve2d.NewCubicCurve2D(polyX, polyY, domain, tol, startPose), nil

	case opendrive.ParamPoly3:
		au, bu, cu, du := p.AU, p.BU, p.CU, p.DU
		av, bv, cv, dv := p.AV, p.BV, p.CV, p.DV
		if p.PRangeNormalized && seg.Length > 0 {
			bu, cu, du = bu/seg.Length, cu/(seg.Length*seg.Length), du/(seg.Length*seg.Length*seg.Length)
			bv, cv, dv = bv/seg.Length, cv/(seg.Length*seg.Length), dv/(seg.Length*seg.Length*seg.Length)
		}
		polyX := curve1d.NewPolynomial([]float64{au, bu, cu, du}, domain, tol)
		polyY := curve1d.NewPolynomial([]float64{av, bv, cv, dv}, domain, tol)
		return curve2d.NewCubicCurve2D(polyX, polyY, domain, tol, startPose), nil

	default:
		return nil, ErrUnknownPlanViewPrimitive
	}
}

// buildElevationFunction concatenates the elevationProfile's cubic
// records, each a polynomial in its own ds = s - S parameter, over
// exactly their recorded s ranges — the reference line's height never
// needs to be extrapolated below s=0, unlike superelevation.
func buildElevationFunction(records []opendrive.CubicRecord, params config.Parameters) (curve1d.Function, error) {
	return buildConcatenation(records, false, params.NumberTolerance)
}

// buildSuperelevationFunction concatenates the lateralProfile's
// superelevation records the same way, but with a constant piece
// prepended before the first recorded s so the torsion function always
// encloses a plan view that starts at s=0 even when the first
// superelevation record does not.
func buildSuperelevationFunction(records []opendrive.CubicRecord, params config.Parameters) (curve1d.Function, error) {
	return buildConcatenation(records, true, params.NumberTolerance)
}

// buildConcatenation is the shared (s,a,b,c,d) cubic-record-list-to-function
// builder behind elevation, superelevation, and the lane-offset table: all
// three record types share the same "a + b*ds + c*ds^2 + d*ds^3" shape.
func buildConcatenation(records []opendrive.CubicRecord, prependConstant bool, tol float64) (curve1d.Function, error) {
	if len(records) == 0 {
		return curve1d.NewLinear(0, 0, interval.All(), tol), nil
	}
	breakpoints, coeffs := cubicRecordsToPieces(records)
	return curve1d.ConcatenatedOfPolynomials(breakpoints, coeffs, prependConstant, nil, tol)
}

func cubicRecordsToPieces(records []opendrive.CubicRecord) ([]float64, [][]float64) {
	breakpoints := make([]float64, len(records))
	coeffs := make([][]float64, len(records))
	for i, r := range records {
		breakpoints[i] = r.S
		coeffs[i] = []float64{r.A, r.B, r.C, r.D}
	}
	return breakpoints, coeffs
}
