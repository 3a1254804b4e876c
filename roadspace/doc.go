// Package roadspace holds the Roadspaces object model: the healed,
// continuous-geometry intermediate tree a PR document is transformed
// into before discretization into an SB city-object dataset. Every type
// here is built once by a transformer and is immutable afterward — there
// is no in-place mutation API on any exported type.
package roadspace

import "errors"

// ErrLaneSectionsNotAscending is returned when a RoadBody's lane
// sections are not supplied in strictly ascending s-range order.
var ErrLaneSectionsNotAscending = errors.New("roadspace: lane sections are not in ascending s order")

// ErrNoCenterLane is returned when a lane section carries no center lane.
var ErrNoCenterLane = errors.New("roadspace: lane section has no center lane")

// ErrEmptyLaneSide is returned when a lane section has neither a left
// nor a right lane.
var ErrEmptyLaneSide = errors.New("roadspace: lane section has no left or right lanes")
