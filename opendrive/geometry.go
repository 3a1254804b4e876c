package opendrive

// PlanViewGeometry is one ordered plan-view segment: its s-offset, start
// pose, declared length, and exactly one geometric primitive.
type PlanViewGeometry struct {
	S      float64
	X, Y   float64
	Hdg    float64
	Length float64

	Primitive GeometryPrimitive
}

// GeometryPrimitive is the tagged union of plan-view primitive shapes.
// Exactly one concrete type below is assigned per PlanViewGeometry.
type GeometryPrimitive interface {
	isGeometryPrimitive()
}

// Line is a straight segment; its shape needs no additional parameters.
type Line struct{}

func (Line) isGeometryPrimitive() {}

// Arc is a constant-curvature circular segment.
type Arc struct {
	Curvature float64
}

func (Arc) isGeometryPrimitive() {}

// Spiral is a clothoid segment whose curvature varies linearly with arc
// length from CurvStart to CurvEnd.
type Spiral struct {
	CurvStart, CurvEnd float64
}

func (Spiral) isGeometryPrimitive() {}

// Poly3 is a cubic polynomial v = a + b*u + c*u^2 + d*u^3 in the segment's
// own local u-axis (u along the segment's start heading).
type Poly3 struct {
	A, B, C, D float64
}

func (Poly3) isGeometryPrimitive() {}

// ParamPoly3 is a parametric cubic: both u(p) and v(p) are cubics in a
// parameter p, optionally normalized to [0,1] (PRangeNormalized) instead of
// running over arc length.
type ParamPoly3 struct {
	AU, BU, CU, DU float64
	AV, BV, CV, DV float64
	PRangeNormalized bool
}

func (ParamPoly3) isGeometryPrimitive() {}
