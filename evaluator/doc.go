// Package evaluator runs the three-plan validate-and-heal pipeline over a
// PR document: Plan 1 (basic data types), Plan 2 (modeling rules), Plan 3
// (conversion requirements). Each plan first accumulates fatal issues
// without touching the model (evaluateFatal), then — if none were fatal —
// returns a healed copy plus any non-fatal issues (evaluateNonFatal). A
// fatal issue at any plan short-circuits the pipeline: the healed model
// for that and every later plan is nil, and the returned Report carries
// only the issues collected up to and including the failing plan.
//
// Nothing here logs; the issue.IssueList built along the way is the
// evaluator's entire observable output besides the healed model itself.
package evaluator

const (
	KindNonFiniteValue                  = "NonFiniteValue"
	KindNonStrictlySortedList           = "NonStrictlySortedList"
	KindEmptyCenterLaneList             = "EmptyCenterLaneList"
	KindPlanViewSegmentExceedsRoadLength = "PlanViewSegmentExceedsRoadLength"
	KindPlanViewLengthMismatch          = "PlanViewLengthMismatch"
	KindLastSegmentLengthMismatch       = "LastSegmentLengthMismatch"
	KindLaneSectionMissingCenterLane    = "LaneSectionMissingCenterLane"
	KindLaneSectionEmptySide            = "LaneSectionEmptySide"
	KindLaneIdsNotDense                 = "LaneIdsNotDense"
	KindLaneIdsUnsorted                 = "LaneIdsUnsorted"
	KindDefaultJunctionWithoutIncomingRoad = "DefaultJunctionWithoutIncomingRoad"
	KindDefaultJunctionWithoutConnectingRoad = "DefaultJunctionWithoutConnectingRoad"
	KindShortPlanViewSegmentDropped     = "ShortPlanViewSegmentDropped"
	KindOverlapOrGapInCurve             = "OverlapOrGapInCurve"
	KindLaneSectionCoverage             = "LaneSectionCoverage"
)
