package evaluator

import (
	"fmt"
	"sort"

	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/issue"
	"github.com/go-roadspaces/roadspaces/numeric"
	"github.com/go-roadspaces/roadspaces/opendrive"
)

// checkLaneSectionCoverage enforces that a road's lane sections tile its
// reference-line domain with no gaps or overlaps beyond tolerance.
//
// A PR lane section only records its start s — its end is implicitly the
// next section's start, or the road length for the last one — so an
// interior gap or overlap between two otherwise-ordinary sections is not
// representable: the end of one is, by construction, the start of the
// next. The only two ways this model can still fail to tile
// [0, roadLength) are: the first section doesn't start at 0 (a leading
// gap), or two sections share (within tolerance) the same start (a
// degenerate, zero-length overlap) — both checked directly below.
func checkLaneSectionCoverage(pr opendrive.PR, params config.Parameters) issue.IssueList {
	var issues issue.IssueList
	tol := params.NumberTolerance

	for _, road := range pr.Roads {
		checkRoadCoverage(road, tol, &issues)
	}
	return issues
}

func checkRoadCoverage(road opendrive.Road, tol float64, issues *issue.IssueList) {
	n := len(road.Lanes.LaneSections)
	if n == 0 {
		return
	}

	sections := make([]opendrive.LaneSection, n)
	copy(sections, road.Lanes.LaneSections)
	sort.Slice(sections, func(i, j int) bool { return sections[i].S < sections[j].S })

	location := fmt.Sprintf("road=%s", road.ID)

	if !numeric.FuzzyEquals(sections[0].S, 0, tol) {
		issues.Append(issue.New(KindLaneSectionCoverage,
			fmt.Sprintf("lane sections start at s=%g, expected 0", sections[0].S), location, issue.SeverityWarning, false).
			WithInfo("gapStart", "0").WithInfo("gapEnd", fmt.Sprintf("%g", sections[0].S)))
	}

	for i := 1; i < n; i++ {
		if numeric.FuzzyEquals(sections[i].S, sections[i-1].S, tol) {
			issues.Append(issue.New(KindLaneSectionCoverage,
				fmt.Sprintf("two lane sections both start at s=%g, a degenerate overlap", sections[i].S), location, issue.SeverityWarning, false).
				WithInfo("gapStart", fmt.Sprintf("%g", sections[i].S)).WithInfo("gapEnd", fmt.Sprintf("%g", sections[i].S)))
		}
	}
}
