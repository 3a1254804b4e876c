package evaluator

import (
	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/issue"
	"github.com/go-roadspaces/roadspaces/opendrive"
)

// Result is the outcome of running Evaluate: the healed PR document, or
// nil if some plan recorded a fatal issue, plus the Report every plan
// contributed to.
type Result struct {
	Healed *opendrive.PR
	Report issue.Report
}

// Evaluate runs the three-plan pipeline over pr: Plan 1 (basic data
// types), Plan 2 (modeling rules), Plan 3 (conversion requirements).
// Each plan's evaluateFatal phase runs against the previous plan's
// healed output; if it records any fatal issue, the pipeline stops
// there and Result.Healed is nil. Otherwise the plan's evaluateNonFatal
// phase runs, producing the healed copy the next plan evaluates.
func Evaluate(pr opendrive.PR, params config.Parameters) Result {
	parameters := params.AsMap()

	plan1Fatal := evaluatePlan1Fatal(pr)
	if plan1Fatal.HasFatal() {
		return Result{Healed: nil, Report: issue.NewReport(parameters, plan1Fatal, issue.IssueList{}, issue.IssueList{})}
	}
	healed1, plan1NonFatal := evaluatePlan1NonFatal(pr, params)
	var plan1Issues issue.IssueList
	plan1Issues.AppendAll(plan1Fatal)
	plan1Issues.AppendAll(plan1NonFatal)

	plan2Fatal := evaluatePlan2Fatal(healed1, params)
	if plan2Fatal.HasFatal() {
		return Result{Healed: nil, Report: issue.NewReport(parameters, plan1Issues, plan2Fatal, issue.IssueList{})}
	}
	healed2, plan2NonFatal := evaluatePlan2NonFatal(healed1, params)
	var plan2Issues issue.IssueList
	plan2Issues.AppendAll(plan2Fatal)
	plan2Issues.AppendAll(plan2NonFatal)

	plan3Fatal := evaluatePlan3Fatal(healed2, params)
	if plan3Fatal.HasFatal() {
		return Result{Healed: nil, Report: issue.NewReport(parameters, plan1Issues, plan2Issues, plan3Fatal)}
	}
	healed3, plan3NonFatal := evaluatePlan3NonFatal(healed2, params)
	var plan3Issues issue.IssueList
	plan3Issues.AppendAll(plan3Fatal)
	plan3Issues.AppendAll(plan3NonFatal)

	return Result{Healed: &healed3, Report: issue.NewReport(parameters, plan1Issues, plan2Issues, plan3Issues)}
}
