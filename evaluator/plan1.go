package evaluator

import (
	"fmt"
	"math"

	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/issue"
	"github.com/go-roadspaces/roadspaces/numeric"
	"github.com/go-roadspaces/roadspaces/opendrive"
)

// evaluatePlan1Fatal accumulates Plan 1 fatal issues without touching the
// model. Nothing in spec plan 1's documented rule set is fatal — every
// representative healing it names is a local repair — so this phase
// exists for pipeline symmetry with plans 2 and 3 and returns an empty
// list today.
func evaluatePlan1Fatal(pr opendrive.PR) issue.IssueList {
	var issues issue.IssueList
	return issues
}

// evaluatePlan1NonFatal returns a healed copy of pr plus the non-fatal
// issues recorded while healing it: non-finite header offsets replaced
// with 0.0, non-strictly-sorted cubic lists pruned, and empty
// center-lane lists given a default center lane.
func evaluatePlan1NonFatal(pr opendrive.PR, params config.Parameters) (opendrive.PR, issue.IssueList) {
	var issues issue.IssueList
	healed := pr

	healed.Header = healHeaderOffsets(healed.Header, &issues)

	healedRoads := make([]opendrive.Road, len(healed.Roads))
	for i, road := range healed.Roads {
		healedRoads[i] = healRoad(road, &issues)
	}
	healed.Roads = healedRoads

	return healed, issues
}

func healHeaderOffsets(h opendrive.Header, issues *issue.IssueList) opendrive.Header {
	fields := []*float64{&h.OffsetX, &h.OffsetY, &h.OffsetZ, &h.OffsetHdg}
	names := []string{"offsetX", "offsetY", "offsetZ", "offsetHdg"}
	for i, f := range fields {
		if math.IsNaN(*f) || math.IsInf(*f, 0) {
			*f = 0.0
			issues.Append(issue.New(KindNonFiniteValue, fmt.Sprintf("header.%s was non-finite, replaced with 0.0", names[i]), "header", issue.SeverityWarning, true))
		}
	}
	return h
}

func healRoad(road opendrive.Road, issues *issue.IssueList) opendrive.Road {
	location := fmt.Sprintf("road=%s", road.ID)

	road.ElevationProfile = healCubicSort(road.ElevationProfile, location+"/elevationProfile", issues)
	road.LateralProfile.Superelevation = healCubicSort(road.LateralProfile.Superelevation, location+"/lateralProfile/superelevation", issues)

	sections := make([]opendrive.LaneSection, len(road.Lanes.LaneSections))
	for i, section := range road.Lanes.LaneSections {
		sectionLocation := fmt.Sprintf("%s/laneSection[%d]", location, i)
		sections[i] = healLaneSection(section, sectionLocation, issues)
	}
	road.Lanes.LaneSections = sections

	return road
}

func healCubicSort(records []opendrive.CubicRecord, location string, issues *issue.IssueList) []opendrive.CubicRecord {
	if numeric.IsStrictlySortedBy(records, func(r opendrive.CubicRecord) float64 { return r.S }) {
		return records
	}
	filtered := numeric.FilterToStrictlySortedBy(records, func(r opendrive.CubicRecord) float64 { return r.S })
	issues.Append(issue.New(KindNonStrictlySortedList, "cubic record list was not strictly sorted by s, entries dropped", location, issue.SeverityWarning, true).
		WithInfo("before", fmt.Sprintf("%d", len(records))).
		WithInfo("after", fmt.Sprintf("%d", len(filtered))))
	return filtered
}

func healLaneSection(section opendrive.LaneSection, location string, issues *issue.IssueList) opendrive.LaneSection {
	section.Left = healLaneList(section.Left, location+"/left", issues)
	section.Right = healLaneList(section.Right, location+"/right", issues)

	if len(section.Center) == 0 {
		issues.Append(issue.New(KindEmptyCenterLaneList, "lane section had no center lane, inserted a default", location+"/center", issue.SeverityWarning, true))
		section.Center = []opendrive.Lane{{ID: 0, Type: "none"}}
	}

	return section
}

func healLaneList(lanes []opendrive.Lane, location string, issues *issue.IssueList) []opendrive.Lane {
	healed := make([]opendrive.Lane, len(lanes))
	for i, lane := range lanes {
		laneLocation := fmt.Sprintf("%s/lane[%d]", location, lane.ID)
		lane.Width = healCubicSort(lane.Width, laneLocation+"/width", issues)
		lane.Height = healLaneHeightSort(lane.Height, laneLocation+"/height", issues)
		healed[i] = lane
	}
	return healed
}

func healLaneHeightSort(records []opendrive.LaneHeightRecord, location string, issues *issue.IssueList) []opendrive.LaneHeightRecord {
	if numeric.IsStrictlySortedBy(records, func(r opendrive.LaneHeightRecord) float64 { return r.SOffset }) {
		return records
	}
	filtered := numeric.FilterToStrictlySortedBy(records, func(r opendrive.LaneHeightRecord) float64 { return r.SOffset })
	issues.Append(issue.New(KindNonStrictlySortedList, "lane height record list was not strictly sorted by sOffset, entries dropped", location, issue.SeverityWarning, true))
	return filtered
}
