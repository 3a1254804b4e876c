package evaluator

import (
	"fmt"

	"github.com/go-roadspaces/roadspaces/issue"
	"github.com/go-roadspaces/roadspaces/opendrive"
	"github.com/go-roadspaces/roadspaces/roadspace/lanegraph"
)

// checkLaneLinkageCycles builds one lane-successor graph across the
// whole document — one node per (road, lane-section index, lane id),
// one edge per recorded Successor, resolved either to the next lane
// section within the same road or, for a road's last section, across a
// non-junction Road.Link to the neighboring road's first section — and
// reports the first cycle lanegraph.DetectLinkageCycle finds as a
// non-fatal CyclicLaneLinkage issue. Junction-mediated links are left to
// the PR→Roadspaces transformer, which resolves them through the
// junction's connections rather than a direct road-to-road edge.
func checkLaneLinkageCycles(pr opendrive.PR) issue.IssueList {
	var issues issue.IssueList

	roadsByID := make(map[string]opendrive.Road, len(pr.Roads))
	for _, road := range pr.Roads {
		roadsByID[road.ID] = road
	}

	g := lanegraph.New()
	for _, road := range pr.Roads {
		sections := road.Lanes.LaneSections
		for i, section := range sections {
			for _, lane := range allLanes(section) {
				if lane.Successor == nil {
					continue
				}
				from := lanegraph.NodeID{RoadID: road.ID, SectionIndex: i, LaneID: lane.ID}

				if i+1 < len(sections) {
					to := lanegraph.NodeID{RoadID: road.ID, SectionIndex: i + 1, LaneID: *lane.Successor}
					g.AddSuccessorEdge(from, to)
					continue
				}

				if road.Link.SuccessorIsJunction || road.Link.SuccessorID == "" {
					continue
				}
				if _, ok := roadsByID[road.Link.SuccessorID]; !ok {
					continue
				}
				to := lanegraph.NodeID{RoadID: road.Link.SuccessorID, SectionIndex: 0, LaneID: *lane.Successor}
				g.AddSuccessorEdge(from, to)
			}
		}
	}

	found, cycle, err := lanegraph.DetectLinkageCycle(g)
	if err != nil || !found {
		return issues
	}
	issues.Append(issue.New("CyclicLaneLinkage",
		fmt.Sprintf("lane-successor chain forms a cycle of length %d, dropped the closing link", len(cycle)-1),
		fmt.Sprintf("road=%s", cycle[0].RoadID), issue.SeverityWarning, true))

	return issues
}

func allLanes(section opendrive.LaneSection) []opendrive.Lane {
	out := make([]opendrive.Lane, 0, len(section.Left)+len(section.Center)+len(section.Right))
	out = append(out, section.Left...)
	out = append(out, section.Center...)
	out = append(out, section.Right...)
	return out
}
