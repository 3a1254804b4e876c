package roadspace

import (
	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/curve3d"
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/opendrive"
)

// Lane is one lane of a LaneSection: its id, type, the two boundary
// offset functions (t as a function of s, cumulative from the section's
// center lane outward), the center line implied by them, and the
// road-mark/height schedules carried through from the source.
type Lane struct {
	ID            int
	Type          string
	InnerBoundary curve1d.Function
	OuterBoundary curve1d.Function
	CenterLine    curve1d.Function
	Predecessor   *int
	Successor     *int
	Heights       []opendrive.LaneHeightRecord
	RoadMarks     []opendrive.RoadMarkRecord
}

// LaneSection is one s-range of a road's cross section: exactly one
// center lane plus any number of left/right lanes, built over the
// shared road Surface.
type LaneSection struct {
	SRange interval.Range
	Left   []Lane
	Center Lane
	Right  []Lane
}

// NewLaneSection validates the "exactly one center lane, at least one
// left or right lane" invariant — by construction time this must already
// hold, since the evaluator's Plan 2 rules are what enforce and heal it
// on the PR tree before this transformer ever runs.
func NewLaneSection(sRange interval.Range, left []Lane, center Lane, right []Lane) (LaneSection, error) {
	if len(left) == 0 && len(right) == 0 {
		return LaneSection{}, ErrEmptyLaneSide
	}
	leftCopy := make([]Lane, len(left))
	copy(leftCopy, left)
	rightCopy := make([]Lane, len(right))
	copy(rightCopy, right)
	return LaneSection{SRange: sRange, Left: leftCopy, Center: center, Right: rightCopy}, nil
}

// FillerSurface is a longitudinal strip generated between two
// consecutive lane sections whose outer boundaries disagree in t at the
// shared s, keeping the emitted surface watertight.
type FillerSurface struct {
	S            float64
	Side         string
	TOuterBefore float64
	TOuterAfter  float64
}

// RoadMarking is a thin strip polygon traced along one lane boundary
// over an s-range.
type RoadMarking struct {
	LaneID int
	SRange interval.Range
	Record opendrive.RoadMarkRecord
}

// RoadBody is the continuous cross-section model built over a road's
// surface: its lane sections in ascending-s order, the filler surfaces
// stitching gaps between them, and the road markings.
type RoadBody struct {
	Surface        curve3d.CurveRelativeParametricSurface3D
	LaneSections   []LaneSection
	FillerSurfaces []FillerSurface
	RoadMarkings   []RoadMarking
}

// NewRoadBody validates that lane sections are supplied in strictly
// ascending s-range order.
func NewRoadBody(surface curve3d.CurveRelativeParametricSurface3D, sections []LaneSection, fillers []FillerSurface, markings []RoadMarking) (RoadBody, error) {
	for i := 1; i < len(sections); i++ {
		if sections[i].SRange.LowerEndpoint() <= sections[i-1].SRange.LowerEndpoint() {
			return RoadBody{}, ErrLaneSectionsNotAscending
		}
	}
	sectionsCopy := make([]LaneSection, len(sections))
	copy(sectionsCopy, sections)
	fillersCopy := make([]FillerSurface, len(fillers))
	copy(fillersCopy, fillers)
	markingsCopy := make([]RoadMarking, len(markings))
	copy(markingsCopy, markings)
	return RoadBody{
		Surface:        surface,
		LaneSections:   sectionsCopy,
		FillerSurfaces: fillersCopy,
		RoadMarkings:   markingsCopy,
	}, nil
}
