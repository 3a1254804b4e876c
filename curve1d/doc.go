// Package curve1d implements UnivariateFunction: value(x) and slope(x),
// each fallible over a bounded Range<float> domain, plus five concrete
// variants — Linear, Polynomial, Concatenated, Sectioned, and Stacked.
//
// Function is a small interface implemented by five concrete struct types
// rather than a class hierarchy, favoring sum types over inheritance.
// Concatenated, Sectioned and Stacked hold their members as Function
// values and call them through the interface (Concatenated picks its
// piece by binary search over the breakpoints).
//
// Every bounded evaluation returns (float64, error) — never panics, never
// returns NaN silently — and every variant also exposes an *Unbounded
// method that evaluates the underlying formula outside the domain without
// failing, for callers (Concatenated evaluating its pieces, curve3d's
// Curve3D) that intentionally probe past a sub-domain boundary.
package curve1d

import (
	"fmt"

	"github.com/go-roadspaces/roadspaces/interval"
)

// Function is the shared contract of every univariate-function variant.
type Function interface {
	// Domain returns the range over which Value/Slope are defined.
	Domain() interval.Range
	// Value evaluates the function at x, or returns OutOfDomainError if x
	// falls (more than tolerance) outside Domain().
	Value(x float64) (float64, error)
	// Slope evaluates the first derivative at x under the same domain rule
	// as Value.
	Slope(x float64) (float64, error)
	// ValueUnbounded evaluates the function formula at x ignoring Domain().
	ValueUnbounded(x float64) float64
	// SlopeUnbounded evaluates the derivative formula at x ignoring Domain().
	SlopeUnbounded(x float64) float64
}

// OutOfDomainError is returned by bounded evaluation when x falls outside
// Domain() by more than the function's tolerance. It is a value, never a
// panic.
type OutOfDomainError struct {
	X      float64
	Domain interval.Range
}

func (e OutOfDomainError) Error() string {
	return fmt.Sprintf("curve1d: x=%g out of domain %s", e.X, e.Domain.String())
}

// checkDomain is the shared bounded-evaluation guard used by every variant.
func checkDomain(x float64, domain interval.Range, tol float64) error {
	if !domain.FuzzyContains(x, tol) {
		return OutOfDomainError{X: x, Domain: domain}
	}
	return nil
}
