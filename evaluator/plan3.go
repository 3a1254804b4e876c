package evaluator

import (
	"fmt"

	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/issue"
	"github.com/go-roadspaces/roadspaces/opendrive"
)

// evaluatePlan3Fatal checks the one rule required only by the target
// surface model that is fatal: a default-type junction with a connection
// missing either its incoming or its connecting road can never be
// resolved into a Connection, so the pipeline aborts rather than produce
// a partial junction.
func evaluatePlan3Fatal(pr opendrive.PR, params config.Parameters) issue.IssueList {
	var issues issue.IssueList

	for _, junction := range pr.Junctions {
		if junction.Type != opendrive.JunctionTypeDefault {
			continue
		}
		location := fmt.Sprintf("junction=%s", junction.ID)
		for _, conn := range junction.Connections {
			if conn.IncomingRoad == "" {
				issues.Append(issue.New(KindDefaultJunctionWithoutIncomingRoad,
					"default junction connection has no incoming road", location, issue.SeverityFatalError, false))
			}
			if conn.ConnectingRoad == "" {
				issues.Append(issue.New(KindDefaultJunctionWithoutConnectingRoad,
					"default junction connection has no connecting road", location, issue.SeverityFatalError, false))
			}
		}
	}

	return issues
}

// evaluatePlan3NonFatal drops plan-view segments whose length is at or
// below tolerance — too short to carry any geometry — and defaults an
// unspecified junction-connection contact point to "start".
func evaluatePlan3NonFatal(pr opendrive.PR, params config.Parameters) (opendrive.PR, issue.IssueList) {
	var issues issue.IssueList
	tol := params.NumberTolerance
	healed := pr

	healedRoads := make([]opendrive.Road, len(healed.Roads))
	for i, road := range healed.Roads {
		healedRoads[i] = dropShortPlanViewSegments(road, tol, &issues)
	}
	healed.Roads = healedRoads

	healedJunctions := make([]opendrive.Junction, len(healed.Junctions))
	for i, junction := range healed.Junctions {
		healedJunctions[i] = defaultConnectionContactPoints(junction)
	}
	healed.Junctions = healedJunctions

	return healed, issues
}

func dropShortPlanViewSegments(road opendrive.Road, tol float64, issues *issue.IssueList) opendrive.Road {
	location := fmt.Sprintf("road=%s", road.ID)
	kept := make([]opendrive.PlanViewGeometry, 0, len(road.PlanView))
	for i, seg := range road.PlanView {
		if seg.Length <= tol {
			issues.Append(issue.New(KindShortPlanViewSegmentDropped,
				fmt.Sprintf("plan-view segment at s=%g has length %g, at or below tolerance, dropped", seg.S, seg.Length),
				fmt.Sprintf("%s/planView[%d]", location, i), issue.SeverityWarning, true))
			continue
		}
		kept = append(kept, seg)
	}
	road.PlanView = kept
	return road
}

func defaultConnectionContactPoints(junction opendrive.Junction) opendrive.Junction {
	connections := make([]opendrive.Connection, len(junction.Connections))
	for i, conn := range junction.Connections {
		if conn.ContactPoint == "" {
			conn.ContactPoint = opendrive.ContactPointStart
		}
		connections[i] = conn
	}
	junction.Connections = connections
	return junction
}
