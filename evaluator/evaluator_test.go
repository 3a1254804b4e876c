package evaluator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/evaluator"
	"github.com/go-roadspaces/roadspaces/issue"
	"github.com/go-roadspaces/roadspaces/opendrive"
)

func oneSegmentRoad(id string, length float64) opendrive.Road {
	return opendrive.Road{
		ID:     id,
		Length: length,
		PlanView: []opendrive.PlanViewGeometry{
			{S: 0, Length: length, Primitive: opendrive.Line{}},
		},
		Lanes: opendrive.LanesModel{
			LaneSections: []opendrive.LaneSection{
				{
					S:      0,
					Center: []opendrive.Lane{{ID: 0, Type: "none"}},
					Left:   []opendrive.Lane{{ID: 1, Type: "driving"}},
				},
			},
		},
	}
}

func TestPlan1HealsNonFiniteHeaderOffset(t *testing.T) {
	pr := opendrive.PR{Header: opendrive.Header{OffsetX: math.NaN()}}
	result := evaluator.Evaluate(pr, config.Default())
	require.NotNil(t, result.Healed)
	require.Equal(t, 0.0, result.Healed.Header.OffsetX)
	require.Len(t, result.Report.Plan1Issues, 1)
	require.Equal(t, evaluator.KindNonFiniteValue, result.Report.Plan1Issues[0].Kind)
	require.True(t, result.Report.Plan1Issues[0].WasFixed)
}

func TestPlan1HealsWidthListAutoRepair(t *testing.T) {
	road := oneSegmentRoad("1", 10)
	road.Lanes.LaneSections[0].Left[0].Width = []opendrive.CubicRecord{
		{S: 0.0}, {S: 0.5}, {S: 0.3}, {S: 1.0},
	}
	pr := opendrive.PR{Roads: []opendrive.Road{road}}

	result := evaluator.Evaluate(pr, config.Default())
	require.NotNil(t, result.Healed)

	healedWidth := result.Healed.Roads[0].Lanes.LaneSections[0].Left[0].Width
	require.Len(t, healedWidth, 3)
	require.Equal(t, 0.0, healedWidth[0].S)
	require.Equal(t, 0.5, healedWidth[1].S)
	require.Equal(t, 1.0, healedWidth[2].S)

	var found bool
	for _, i := range result.Report.Plan1Issues {
		if i.Kind == evaluator.KindNonStrictlySortedList {
			found = true
			require.True(t, i.WasFixed)
		}
	}
	require.True(t, found)
}

func TestPlan1HealsEmptyCenterLaneList(t *testing.T) {
	road := oneSegmentRoad("1", 10)
	road.Lanes.LaneSections[0].Center = nil
	pr := opendrive.PR{Roads: []opendrive.Road{road}}

	result := evaluator.Evaluate(pr, config.Default())
	require.NotNil(t, result.Healed)
	require.Len(t, result.Healed.Roads[0].Lanes.LaneSections[0].Center, 1)
}

func TestPlan2OverwritesSegmentLengthFromNextS(t *testing.T) {
	road := oneSegmentRoad("1", 10)
	road.PlanView = []opendrive.PlanViewGeometry{
		{S: 0, Length: 4, Primitive: opendrive.Line{}},
		{S: 5, Length: 5, Primitive: opendrive.Line{}},
	}
	pr := opendrive.PR{Roads: []opendrive.Road{road}}

	result := evaluator.Evaluate(pr, config.Default())
	require.NotNil(t, result.Healed)
	require.Equal(t, 5.0, result.Healed.Roads[0].PlanView[0].Length)

	var found bool
	for _, i := range result.Report.Plan2Issues {
		if i.Kind == evaluator.KindPlanViewLengthMismatch {
			found = true
		}
	}
	require.True(t, found)
}

func TestPlan2FatalWhenSegmentExceedsRoadLength(t *testing.T) {
	road := oneSegmentRoad("1", 10)
	road.PlanView[0].S = 20
	pr := opendrive.PR{Roads: []opendrive.Road{road}}

	result := evaluator.Evaluate(pr, config.Default())
	require.Nil(t, result.Healed)
	require.Equal(t, 2, result.Report.ExitCode())

	var found bool
	for _, i := range result.Report.Plan2Issues {
		if i.Kind == evaluator.KindPlanViewSegmentExceedsRoadLength {
			found = true
			require.Equal(t, issue.SeverityFatalError, i.IncidentSeverity)
		}
	}
	require.True(t, found)
}

func TestPlan2ReportsLaneSectionCoverageLeadingGap(t *testing.T) {
	road := oneSegmentRoad("1", 10)
	road.Lanes.LaneSections[0].S = 2
	pr := opendrive.PR{Roads: []opendrive.Road{road}}

	result := evaluator.Evaluate(pr, config.Default())
	require.NotNil(t, result.Healed)

	var found bool
	for _, i := range result.Report.Plan2Issues {
		if i.Kind == evaluator.KindLaneSectionCoverage {
			found = true
		}
	}
	require.True(t, found)
}

func TestPlan2ReportsLaneSectionCoverageOverlap(t *testing.T) {
	road := oneSegmentRoad("1", 10)
	duplicate := road.Lanes.LaneSections[0]
	road.Lanes.LaneSections = append(road.Lanes.LaneSections, duplicate)
	pr := opendrive.PR{Roads: []opendrive.Road{road}}

	result := evaluator.Evaluate(pr, config.Default())
	require.NotNil(t, result.Healed)

	var found bool
	for _, i := range result.Report.Plan2Issues {
		if i.Kind == evaluator.KindLaneSectionCoverage {
			found = true
		}
	}
	require.True(t, found)
}

func TestPlan2DetectsCrossRoadLaneLinkageCycle(t *testing.T) {
	laneID := 1

	roadA := oneSegmentRoad("A", 10)
	roadA.Lanes.LaneSections[0].Left[0].Successor = &laneID
	roadA.Link.SuccessorID = "B"

	roadB := oneSegmentRoad("B", 10)
	roadB.Lanes.LaneSections[0].Left[0].Successor = &laneID
	roadB.Link.SuccessorID = "A"

	pr := opendrive.PR{Roads: []opendrive.Road{roadA, roadB}}
	result := evaluator.Evaluate(pr, config.Default())
	require.NotNil(t, result.Healed)

	var found bool
	for _, i := range result.Report.Plan2Issues {
		if i.Kind == "CyclicLaneLinkage" {
			found = true
		}
	}
	require.True(t, found)
}

func TestPlan3DropsShortPlanViewSegment(t *testing.T) {
	road := oneSegmentRoad("1", 10)
	road.PlanView = append(road.PlanView, opendrive.PlanViewGeometry{S: 10, Length: 1e-10, Primitive: opendrive.Line{}})
	pr := opendrive.PR{Roads: []opendrive.Road{road}}

	result := evaluator.Evaluate(pr, config.Default())
	require.NotNil(t, result.Healed)
	require.Len(t, result.Healed.Roads[0].PlanView, 1)
}

func TestPlan3FatalDefaultJunctionMissingIncomingRoad(t *testing.T) {
	pr := opendrive.PR{
		Junctions: []opendrive.Junction{
			{
				ID:   "j1",
				Type: opendrive.JunctionTypeDefault,
				Connections: []opendrive.Connection{
					{ID: "c1", ConnectingRoad: "2"},
				},
			},
		},
	}

	result := evaluator.Evaluate(pr, config.Default())
	require.Nil(t, result.Healed)
	require.Equal(t, 2, result.Report.ExitCode())

	var found bool
	for _, i := range result.Report.Plan3Issues {
		if i.Kind == evaluator.KindDefaultJunctionWithoutIncomingRoad {
			found = true
		}
	}
	require.True(t, found)
}

func TestEvaluateIsIdempotentAfterHealing(t *testing.T) {
	road := oneSegmentRoad("1", 10)
	road.Lanes.LaneSections[0].Left[0].Width = []opendrive.CubicRecord{{S: 0}, {S: 0.5}, {S: 0.3}}
	pr := opendrive.PR{Roads: []opendrive.Road{road}}

	first := evaluator.Evaluate(pr, config.Default())
	require.NotNil(t, first.Healed)

	second := evaluator.Evaluate(*first.Healed, config.Default())
	require.NotNil(t, second.Healed)

	require.Equal(t, first.Healed.Roads[0].PlanView, second.Healed.Roads[0].PlanView)
	require.Equal(t, first.Healed.Roads[0].Lanes.LaneSections[0].Left[0].Width, second.Healed.Roads[0].Lanes.LaneSections[0].Left[0].Width)
}
