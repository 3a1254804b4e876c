package fromopendrive

import (
	"sort"

	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/curve1d"
	"github.com/go-roadspaces/roadspaces/curve3d"
	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/numeric"
	"github.com/go-roadspaces/roadspaces/opendrive"
	"github.com/go-roadspaces/roadspaces/roadspace"
)

// scaledFunction multiplies a wrapped curve1d.Function's value and slope by
// a constant — negating a lane width onto the right side of the reference
// line, and averaging two boundaries into a center line.
type scaledFunction struct {
	wrapped curve1d.Function
	k       float64
}

func scale(fn curve1d.Function, k float64) scaledFunction { return scaledFunction{wrapped: fn, k: k} }

func (s scaledFunction) Domain() interval.Range { return s.wrapped.Domain() }

func (s scaledFunction) Value(x float64) (float64, error) {
	v, err := s.wrapped.Value(x)
	if err != nil {
		return 0, err
	}
	return v * s.k, nil
}

func (s scaledFunction) Slope(x float64) (float64, error) {
	v, err := s.wrapped.Slope(x)
	if err != nil {
		return 0, err
	}
	return v * s.k, nil
}

func (s scaledFunction) ValueUnbounded(x float64) float64 { return s.wrapped.ValueUnbounded(x) * s.k }
func (s scaledFunction) SlopeUnbounded(x float64) float64 { return s.wrapped.SlopeUnbounded(x) * s.k }

// average returns the midpoint function of a and b, over their shared
// domain — used to derive a lane's center line from its two boundaries.
func average(a, b curve1d.Function, tol float64) (curve1d.Function, error) {
	summed, err := curve1d.StackedOfSum(tol, a, b)
	if err != nil {
		return nil, err
	}
	return scale(summed, 0.5), nil
}

// buildRoadBody resolves lane boundaries as cumulative-width offsets from
// the lane-offset baseline, center lines as the mean of each lane's
// boundaries, and road marks and filler surfaces carried or derived per
// section.
func buildRoadBody(road opendrive.Road, surface curve3d.CurveRelativeParametricSurface3D, params config.Parameters) (roadspace.RoadBody, error) {
	tol := params.NumberTolerance

	laneOffsetFn, err := buildConcatenation(road.Lanes.LaneOffset, false, tol)
	if err != nil {
		return roadspace.RoadBody{}, err
	}

	sections := road.Lanes.LaneSections
	built := make([]roadspace.LaneSection, len(sections))
	ranges := make([]interval.Range, len(sections))

	for i, section := range sections {
		upper := road.Length
		closed := true
		if i+1 < len(sections) {
			upper = sections[i+1].S
			closed = false
		}

		var sRange interval.Range
		if closed {
			sRange, err = interval.NewClosed(section.S, upper)
		} else {
			sRange, err = interval.NewClosedOpen(section.S, upper)
		}
		if err != nil {
			return roadspace.RoadBody{}, err
		}
		ranges[i] = sRange

		laneOffsetLocal, err := curve1d.NewSectioned(laneOffsetFn, sRange, tol)
		if err != nil {
			return roadspace.RoadBody{}, err
		}

		builtSection, err := buildLaneSection(section, sRange, laneOffsetLocal, tol)
		if err != nil {
			return roadspace.RoadBody{}, err
		}
		built[i] = builtSection
	}

	var fillers []roadspace.FillerSurface
	var markings []roadspace.RoadMarking
	for i, section := range built {
		markings = append(markings, collectRoadMarkings(sections[i], section)...)
		if i+1 < len(built) && params.GenerateLongitudinalFillerSurfaces {
			fillers = append(fillers, fillersBetween(section, built[i+1], tol)...)
		}
	}

	return roadspace.NewRoadBody(surface, built, fillers, markings)
}

func buildLaneSection(section opendrive.LaneSection, sRange interval.Range, laneOffsetLocal curve1d.Function, tol float64) (roadspace.LaneSection, error) {
	left, err := buildLaneSide(sortedByAbsID(section.Left), laneOffsetLocal, 1, tol)
	if err != nil {
		return roadspace.LaneSection{}, err
	}
	right, err := buildLaneSide(sortedByAbsID(section.Right), laneOffsetLocal, -1, tol)
	if err != nil {
		return roadspace.LaneSection{}, err
	}
	if len(section.Center) == 0 {
		return roadspace.LaneSection{}, roadspace.ErrNoCenterLane
	}
	centerSrc := section.Center[0]
	center := roadspace.Lane{
		ID:            centerSrc.ID,
		Type:          centerSrc.Type,
		InnerBoundary: laneOffsetLocal,
		OuterBoundary: laneOffsetLocal,
		CenterLine:    laneOffsetLocal,
		Predecessor:   centerSrc.Predecessor,
		Successor:     centerSrc.Successor,
		Heights:       centerSrc.Height,
		RoadMarks:     centerSrc.RoadMark,
	}
	return roadspace.NewLaneSection(sRange, left, center, right)
}

// buildLaneSide walks lanes in away-from-center order, accumulating each
// lane's width onto the previous lane's outer boundary. sign is +1 for the
// left side (t grows positive outward) and -1 for the right side.
func buildLaneSide(lanes []opendrive.Lane, laneOffsetLocal curve1d.Function, sign float64, tol float64) ([]roadspace.Lane, error) {
	out := make([]roadspace.Lane, len(lanes))
	var inner curve1d.Function = laneOffsetLocal
	for i, src := range lanes {
		widthFn, err := buildConcatenation(src.Width, false, tol)
		if err != nil {
			return nil, err
		}
		outer, err := curve1d.StackedOfSum(tol, inner, scale(widthFn, sign))
		if err != nil {
			return nil, err
		}
		center, err := average(inner, outer, tol)
		if err != nil {
			return nil, err
		}
		out[i] = roadspace.Lane{
			ID:            src.ID,
			Type:          src.Type,
			InnerBoundary: inner,
			OuterBoundary: outer,
			CenterLine:    center,
			Predecessor:   src.Predecessor,
			Successor:     src.Successor,
			Heights:       src.Height,
			RoadMarks:     src.RoadMark,
		}
		inner = outer
	}
	return out, nil
}

func sortedByAbsID(lanes []opendrive.Lane) []opendrive.Lane {
	out := make([]opendrive.Lane, len(lanes))
	copy(out, lanes)
	sort.Slice(out, func(i, j int) bool { return absInt(out[i].ID) < absInt(out[j].ID) })
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// collectRoadMarkings expands every lane's RoadMark schedule into one
// RoadMarking per record, each running from its SOffset until the next
// record's SOffset (or the section end for the last one).
func collectRoadMarkings(section opendrive.LaneSection, built roadspace.LaneSection) []roadspace.RoadMarking {
	var out []roadspace.RoadMarking
	all := make([]opendrive.Lane, 0, len(section.Left)+len(section.Right))
	all = append(all, section.Left...)
	all = append(all, section.Right...)

	for _, lane := range all {
		recs := append([]opendrive.RoadMarkRecord(nil), lane.RoadMark...)
		sort.Slice(recs, func(i, j int) bool { return recs[i].SOffset < recs[j].SOffset })
		for i, rec := range recs {
			start := section.S + rec.SOffset
			end := built.SRange.UpperEndpoint()
			endType := built.SRange.UpperBoundType()
			if i+1 < len(recs) {
				end = section.S + recs[i+1].SOffset
				endType = interval.Open
			}
			var r interval.Range
			var err error
			if endType == interval.Closed {
				r, err = interval.NewClosed(start, end)
			} else {
				r, err = interval.NewClosedOpen(start, end)
			}
			if err != nil {
				continue
			}
			out = append(out, roadspace.RoadMarking{LaneID: lane.ID, SRange: r, Record: rec})
		}
	}
	return out
}

// fillersBetween checks, per side, whether the outermost lane boundaries of
// two consecutive sections disagree in t at the shared s beyond tolerance,
// emitting a FillerSurface when they do.
func fillersBetween(before, after roadspace.LaneSection, tol float64) []roadspace.FillerSurface {
	var out []roadspace.FillerSurface
	sharedS := before.SRange.UpperEndpoint()
	beforeLocalEnd := before.SRange.Length()

	if fs, ok := fillerForSide("left", before.Left, after.Left, beforeLocalEnd, sharedS, tol); ok {
		out = append(out, fs)
	}
	if fs, ok := fillerForSide("right", before.Right, after.Right, beforeLocalEnd, sharedS, tol); ok {
		out = append(out, fs)
	}
	return out
}

func fillerForSide(side string, before, after []roadspace.Lane, beforeLocalEnd, sharedS, tol float64) (roadspace.FillerSurface, bool) {
	if len(before) == 0 || len(after) == 0 {
		return roadspace.FillerSurface{}, false
	}
	outerBefore := before[len(before)-1].OuterBoundary.ValueUnbounded(beforeLocalEnd)
	outerAfter := after[len(after)-1].OuterBoundary.ValueUnbounded(0)
	if numeric.FuzzyEquals(outerBefore, outerAfter, tol) {
		return roadspace.FillerSurface{}, false
	}
	return roadspace.FillerSurface{S: sharedS, Side: side, TOuterBefore: outerBefore, TOuterAfter: outerAfter}, true
}
