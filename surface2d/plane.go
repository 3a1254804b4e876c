package surface2d

import "github.com/go-roadspaces/roadspaces/interval"

// Plane is a*x + b*y + c, used for a road cross-section with constant
// superelevation but no shape correction.
type Plane struct {
	a, b, c float64
	domainX interval.Range
	domainY interval.Range
	tol     float64
}

// NewPlane builds a Plane bivariate function.
func NewPlane(a, b, c float64, domainX, domainY interval.Range, tol float64) Plane {
	return Plane{a: a, b: b, c: c, domainX: domainX, domainY: domainY, tol: tol}
}

func (p Plane) DomainX() interval.Range { return p.domainX }
func (p Plane) DomainY() interval.Range { return p.domainY }

func (p Plane) Value(x, y float64) (float64, error) {
	if !p.domainX.FuzzyContains(x, p.tol) {
		return 0, OutOfDomainError{Axis: "x", Value: x, Domain: p.domainX}
	}
	if !p.domainY.FuzzyContains(y, p.tol) {
		return 0, OutOfDomainError{Axis: "y", Value: y, Domain: p.domainY}
	}
	return p.a*x + p.b*y + p.c, nil
}
