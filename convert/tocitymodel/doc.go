// Package tocitymodel is the Roadspaces → SB transformer. Every lane
// surface, filler surface, and road-marking
// surface is discretized into a polygon mesh (at discretizationStepSize,
// sweepDiscretizationStepSize for swept road objects) and classified onto
// a Road/Railway/Square feature; road objects map onto CityFurniture,
// Building, Vegetation, or GenericObject. Every emitted SB object is
// assigned a deterministic id by a citymodel.Registry shared across the
// whole conversion.
package tocitymodel

import "errors"

// ErrBoundaryGenerationFailure is the geometric domain error for a
// discretized mesh that fails its connectivity check or degenerates below
// the minimum vertex count a polygon needs.
var ErrBoundaryGenerationFailure = errors.New("tocitymodel: boundary generation failure")

// ErrLaneNotFoundForMarking is returned when a RoadMarking's lane id does
// not resolve to any lane in the section its s-range falls within — a
// defect the evaluator's healing passes should have already prevented.
var ErrLaneNotFoundForMarking = errors.New("tocitymodel: road marking references unknown lane")
