// Package opendrive defines the PR object model: a parametric road tree
// (Header, Road, Junction, Controller) that mirrors a road-network
// description file field for field, before any geometric evaluation or
// healing happens. Types in this package are plain data — no method does
// domain math; that's evaluator and convert/fromopendrive's job.
package opendrive

import "errors"

// ErrEmptyContactPoint indicates a Connection or lane-link contact point
// string outside {"start", "end"}.
var ErrEmptyContactPoint = errors.New("opendrive: contact point must be \"start\" or \"end\"")

// ContactPoint is where a connecting element attaches: the start or the
// end of the target road's s-range.
type ContactPoint string

const (
	ContactPointStart ContactPoint = "start"
	ContactPointEnd   ContactPoint = "end"
)
