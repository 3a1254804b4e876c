// Package fromopendrive implements the PR → Roadspaces transformer: for
// each road, in order, it builds the reference line, the road surface, the
// lane-section/lane/marking road body, and the roadspace objects, then
// resolves junctions across the whole document. Per-road work shares no
// mutable state and can run on a worker pool (see parallel.go); junction
// resolution runs sequentially afterward, once every road has a Roadspace.
package fromopendrive

import "errors"

// ErrUnknownPlanViewPrimitive is returned when a PlanViewGeometry carries a
// GeometryPrimitive this transformer doesn't recognize.
var ErrUnknownPlanViewPrimitive = errors.New("fromopendrive: unknown plan-view geometry primitive")

// ErrRoadNotFound is returned when a junction connection or road link names
// a road id absent from the document.
var ErrRoadNotFound = errors.New("fromopendrive: referenced road not found")

// ErrConnectionNotAtJunction is returned when a junction connection's
// incoming road does not actually terminate at that junction.
var ErrConnectionNotAtJunction = errors.New("fromopendrive: incoming road does not terminate at this junction")

// ErrDegenerateObjectGeometry names a road object that resolved to no
// usable geometry. No function in this package returns it: an object that
// matches none of the other geometry kinds falls back to a point, and an
// error from building the matched kind's solid is returned as it is.
var ErrDegenerateObjectGeometry = errors.New("fromopendrive: road object resolved to no usable geometry")
