package evaluator

import (
	"fmt"
	"sort"

	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/issue"
	"github.com/go-roadspaces/roadspaces/numeric"
	"github.com/go-roadspaces/roadspaces/opendrive"
)

// evaluatePlan2Fatal checks cross-field consistency rules that abort the
// pipeline on violation: a plan-view segment starting beyond the road's
// own length, a lane section without exactly one center lane or without
// any left/right lane, and a lane section whose left or right ids have a
// gap (as opposed to merely being out of order, which is non-fatal).
func evaluatePlan2Fatal(pr opendrive.PR, params config.Parameters) issue.IssueList {
	var issues issue.IssueList
	tol := params.NumberTolerance

	for _, road := range pr.Roads {
		location := fmt.Sprintf("road=%s", road.ID)

		for _, seg := range road.PlanView {
			if numeric.FuzzyLess(road.Length, seg.S, tol) {
				issues.Append(issue.New(KindPlanViewSegmentExceedsRoadLength,
					fmt.Sprintf("plan-view segment at s=%g starts beyond road length %g", seg.S, road.Length),
					location, issue.SeverityFatalError, false).
					WithInfo("s", fmt.Sprintf("%g", seg.S)).
					WithInfo("roadLength", fmt.Sprintf("%g", road.Length)))
			}
		}

		for i, section := range road.Lanes.LaneSections {
			sectionLocation := fmt.Sprintf("%s/laneSection[%d]", location, i)

			if len(section.Center) != 1 {
				issues.Append(issue.New(KindLaneSectionMissingCenterLane,
					fmt.Sprintf("lane section has %d center lanes, expected exactly 1", len(section.Center)),
					sectionLocation, issue.SeverityFatalError, false))
			}
			if len(section.Left) == 0 && len(section.Right) == 0 {
				issues.Append(issue.New(KindLaneSectionEmptySide,
					"lane section has no left or right lanes", sectionLocation, issue.SeverityFatalError, false))
			}
			if gap := laneIDGap(section.Left); gap {
				issues.Append(issue.New(KindLaneIdsNotDense, "left lane ids have a gap", sectionLocation+"/left", issue.SeverityFatalError, false))
			}
			if gap := laneIDGap(section.Right); gap {
				issues.Append(issue.New(KindLaneIdsNotDense, "right lane ids have a gap", sectionLocation+"/right", issue.SeverityFatalError, false))
			}
		}
	}

	return issues
}

// laneIDGap reports whether lanes' ids, taken by absolute value away from
// the center lane, skip a value (e.g. {1,3} instead of {1,2,3}).
func laneIDGap(lanes []opendrive.Lane) bool {
	if len(lanes) == 0 {
		return false
	}
	ids := make([]int, len(lanes))
	for i, l := range lanes {
		ids[i] = abs(l.ID)
	}
	sort.Ints(ids)
	for i, id := range ids {
		if id != i+1 {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// evaluatePlan2NonFatal returns a healed copy with: plan-view segment
// lengths overwritten from the next segment's s (next-s authoritative,
// per this module's documented resolution of the source's length-vs-s
// ambiguity), the last segment's length adjusted to the road length, and
// out-of-order (but gap-free) lane ids re-sorted into canonical
// away-from-center order.
func evaluatePlan2NonFatal(pr opendrive.PR, params config.Parameters) (opendrive.PR, issue.IssueList) {
	var issues issue.IssueList
	tol := params.NumberTolerance
	healed := pr

	healedRoads := make([]opendrive.Road, len(healed.Roads))
	for i, road := range healed.Roads {
		healedRoads[i] = healPlanView(road, tol, &issues)
		healedRoads[i] = healLaneIDOrder(healedRoads[i], &issues)
	}
	healed.Roads = healedRoads

	issues.AppendAll(checkLaneSectionCoverage(healed, params))
	issues.AppendAll(checkLaneLinkageCycles(healed))

	return healed, issues
}

func healPlanView(road opendrive.Road, tol float64, issues *issue.IssueList) opendrive.Road {
	if len(road.PlanView) == 0 {
		return road
	}
	location := fmt.Sprintf("road=%s", road.ID)

	segments := make([]opendrive.PlanViewGeometry, len(road.PlanView))
	copy(segments, road.PlanView)
	sort.Slice(segments, func(i, j int) bool { return segments[i].S < segments[j].S })

	for i := 0; i < len(segments)-1; i++ {
		gap := segments[i+1].S - segments[i].S
		if !numeric.FuzzyEquals(gap, segments[i].Length, tol) {
			issues.Append(issue.New(KindPlanViewLengthMismatch,
				fmt.Sprintf("segment length %g disagrees with next-s gap %g, overwritten", segments[i].Length, gap),
				fmt.Sprintf("%s/planView[%d]", location, i), issue.SeverityWarning, true))
			segments[i].Length = gap
		}
	}

	last := len(segments) - 1
	expectedLast := road.Length - segments[last].S
	if !numeric.FuzzyEquals(expectedLast, segments[last].Length, tol) {
		issues.Append(issue.New(KindLastSegmentLengthMismatch,
			fmt.Sprintf("last segment length %g disagrees with road length, overwritten to %g", segments[last].Length, expectedLast),
			fmt.Sprintf("%s/planView[%d]", location, last), issue.SeverityWarning, true))
		segments[last].Length = expectedLast
	}

	road.PlanView = segments
	return road
}

func healLaneIDOrder(road opendrive.Road, issues *issue.IssueList) opendrive.Road {
	sections := make([]opendrive.LaneSection, len(road.Lanes.LaneSections))
	for i, section := range road.Lanes.LaneSections {
		location := fmt.Sprintf("road=%s/laneSection[%d]", road.ID, i)
		section.Left = sortLanesAwayFromCenter(section.Left, location+"/left", issues)
		section.Right = sortLanesAwayFromCenter(section.Right, location+"/right", issues)
		sections[i] = section
	}
	road.Lanes.LaneSections = sections
	return road
}

func sortLanesAwayFromCenter(lanes []opendrive.Lane, location string, issues *issue.IssueList) []opendrive.Lane {
	if len(lanes) < 2 {
		return lanes
	}
	sorted := make([]opendrive.Lane, len(lanes))
	copy(sorted, lanes)

	alreadySorted := sort.SliceIsSorted(sorted, func(i, j int) bool { return abs(sorted[i].ID) < abs(sorted[j].ID) })
	if alreadySorted {
		return lanes
	}

	sort.Slice(sorted, func(i, j int) bool { return abs(sorted[i].ID) < abs(sorted[j].ID) })
	issues.Append(issue.New(KindLaneIdsUnsorted, "lane ids were not in away-from-center order, re-sorted", location, issue.SeverityWarning, true))
	return sorted
}
