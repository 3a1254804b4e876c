// Package numeric provides the fuzzy-comparison and sequence-pruning
// primitives shared by every other package in this module.
//
// Every geometric and tabular comparison in the conversion core bottoms out
// in FuzzyEquals: two floats are the same value if they are within a
// caller-supplied tolerance, never by exact equality. FilterToStrictlySortedBy
// is the single place that implements the evaluator's "drop entries that
// break a strict ordering, keep the first of each duplicate" healing used
// throughout spec plan 1.
package numeric

import "math"

// FuzzyEquals reports whether a and b differ by at most tol.
//
// Complexity: O(1).
func FuzzyEquals(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// FuzzyLess reports whether a is strictly less than b outside tolerance,
// i.e. a < b and the two are not FuzzyEquals.
func FuzzyLess(a, b, tol float64) bool {
	return a < b && !FuzzyEquals(a, b, tol)
}

// FuzzyLessOrEqual reports whether a <= b within tolerance.
func FuzzyLessOrEqual(a, b, tol float64) bool {
	return a < b || FuzzyEquals(a, b, tol)
}

// NormalizeAngle wraps a radian angle into (-pi, pi].
func NormalizeAngle(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad <= -math.Pi {
		rad += 2 * math.Pi
	} else if rad > math.Pi {
		rad -= 2 * math.Pi
	}
	return rad
}

// AngleFuzzyEquals compares two radian angles after normalizing both,
// accounting for the wrap-around at +/-pi.
func AngleFuzzyEquals(a, b, tol float64) bool {
	diff := NormalizeAngle(a - b)
	return math.Abs(diff) <= tol
}
