package issue

import (
	"github.com/bytedance/sonic"
)

// Report is the JSON-serializable tree a caller writes under its own
// reports/ directory: the configuration the run used, plus one issue list
// per evaluator plan.
type Report struct {
	Parameters   map[string]string `json:"parameters"`
	Plan1Issues  []Issue           `json:"plan1_issues"`
	Plan2Issues  []Issue           `json:"plan2_issues"`
	Plan3Issues  []Issue           `json:"plan3_issues"`
	Cancelled    bool              `json:"cancelled,omitempty"`
}

// NewReport builds a Report from three plans' accumulated issue lists.
func NewReport(parameters map[string]string, plan1, plan2, plan3 IssueList) Report {
	return Report{
		Parameters:  parameters,
		Plan1Issues: plan1.Issues(),
		Plan2Issues: plan2.Issues(),
		Plan3Issues: plan3.Issues(),
	}
}

// ToJSON serializes the report with sonic, consistent with the rest of the
// module's JSON boundary.
func (r Report) ToJSON() ([]byte, error) {
	return sonic.Marshal(r)
}

// ReportFromJSON parses a report previously written by ToJSON.
func ReportFromJSON(data []byte) (Report, error) {
	var r Report
	if err := sonic.Unmarshal(data, &r); err != nil {
		return Report{}, err
	}
	return r, nil
}

// allIssues concatenates every plan's issues, in plan order.
func (r Report) allIssues() []Issue {
	out := make([]Issue, 0, len(r.Plan1Issues)+len(r.Plan2Issues)+len(r.Plan3Issues))
	out = append(out, r.Plan1Issues...)
	out = append(out, r.Plan2Issues...)
	out = append(out, r.Plan3Issues...)
	return out
}

// ExitCode maps the report's worst severity to a process exit code:
// 0 = no issues, 1 = non-fatal issues only, 2 = a fatal issue was
// recorded.
func (r Report) ExitCode() int {
	worst := -1
	for _, i := range r.allIssues() {
		if int(i.IncidentSeverity) > worst {
			worst = int(i.IncidentSeverity)
		}
	}
	switch {
	case r.Cancelled:
		return 2
	case worst < 0:
		return 0
	case Severity(worst) == SeverityFatalError:
		return 2
	default:
		return 1
	}
}
