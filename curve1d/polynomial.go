package curve1d

import "github.com/go-roadspaces/roadspaces/interval"

// Polynomial evaluates Σ coeffs[i]*x^i over domain, in the function's own
// parameter. Concatenated pieces reparameterize into a local parameter
// before delegating here (see concatenated.go).
type Polynomial struct {
	coeffs []float64
	domain interval.Range
	tol    float64
}

// NewPolynomial builds a Polynomial from ascending-degree coefficients
// (coeffs[0] is the constant term).
func NewPolynomial(coeffs []float64, domain interval.Range, tol float64) Polynomial {
	c := append([]float64(nil), coeffs...)
	return Polynomial{coeffs: c, domain: domain, tol: tol}
}

func (p Polynomial) Domain() interval.Range { return p.domain }

func (p Polynomial) Value(x float64) (float64, error) {
	if err := checkDomain(x, p.domain, p.tol); err != nil {
		return 0, err
	}
	return p.ValueUnbounded(x), nil
}

func (p Polynomial) Slope(x float64) (float64, error) {
	if err := checkDomain(x, p.domain, p.tol); err != nil {
		return 0, err
	}
	return p.SlopeUnbounded(x), nil
}

func (p Polynomial) ValueUnbounded(x float64) float64 {
	// Horner's method, evaluated from the highest-degree term down.
	var acc float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}
	return acc
}

func (p Polynomial) SlopeUnbounded(x float64) float64 {
	if len(p.coeffs) <= 1 {
		return 0
	}
	var acc float64
	for i := len(p.coeffs) - 1; i >= 1; i-- {
		acc = acc*x + p.coeffs[i]*float64(i)
	}
	return acc
}

// Coeffs returns the ascending-degree coefficient slice (a defensive copy).
func (p Polynomial) Coeffs() []float64 { return append([]float64(nil), p.coeffs...) }
